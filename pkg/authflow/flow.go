// Package authflow implements the OTP/recovery login step machine,
// independent of any rendering or transport concern. The backend is an
// injected collaborator; token persistence is the caller's job.
package authflow

import (
	"strings"

	"github.com/krownhq/krown-cli/pkg/errors"
)

// Step identifies the current state of the login flow.
type Step int

const (
	StepPhone Step = iota
	StepOTP
	StepRecovery
	StepAuthenticated
)

func (s Step) String() string {
	switch s {
	case StepPhone:
		return "phone"
	case StepOTP:
		return "otp"
	case StepRecovery:
		return "recovery"
	case StepAuthenticated:
		return "authenticated"
	}
	return "unknown"
}

// Outcome is the terminal product of a successful login. RecoveryPass is only
// set on first-time OTP logins, when the backend hands out the pre-shared
// secret for later recovery.
type Outcome struct {
	Token        string
	RecoveryPass string
}

// Backend is the auth collaborator. Each method issues exactly one request.
type Backend interface {
	SendOTP(phone string) error
	VerifyOTP(phone, code string) (*Outcome, error)
	RecoveryLogin(phone, recoveryPass string) (*Outcome, error)
}

// ErrBusy is returned when an action is attempted while a request from a
// previous action is still in flight.
var ErrBusy = errors.NewCLIError(errors.ErrorTypeConflict, "another request is already in flight", nil)

// ErrNoToken is returned when the backend acknowledges a login without
// issuing a token.
var ErrNoToken = errors.AuthError("login failed: no token received")

// Flow is the 3-state login machine: Phone → OTP → Authenticated, with
// Recovery reachable from Phone and re-entrant to it. Token issuance is the
// only path to StepAuthenticated.
type Flow struct {
	backend Backend

	step  Step
	phone string
	busy  bool
}

// New creates a flow in the Phone step.
func New(backend Backend) *Flow {
	return &Flow{backend: backend, step: StepPhone}
}

// Step returns the current step.
func (f *Flow) Step() Step {
	return f.step
}

// Phone returns the normalized phone captured by the last successful
// RequestCode or Recover attempt.
func (f *Flow) Phone() string {
	return f.phone
}

// Busy reports whether a request is in flight.
func (f *Flow) Busy() bool {
	return f.busy
}

func (f *Flow) begin() error {
	if f.busy {
		return ErrBusy
	}
	f.busy = true
	return nil
}

func (f *Flow) end() {
	f.busy = false
}

// RequestCode validates and normalizes the phone, asks the backend to send a
// one-time code and, on success, moves Phone → OTP. Validation failures are
// local and never reach the backend; backend failures keep the flow in Phone.
func (f *Flow) RequestCode(rawPhone string) error {
	if f.step != StepPhone && f.step != StepOTP {
		return errors.NewCLIError(errors.ErrorTypeConflict, "cannot request a code from step "+f.step.String(), nil)
	}

	phone, err := NormalizePhone(rawPhone)
	if err != nil {
		return err
	}

	if err := f.begin(); err != nil {
		return err
	}
	defer f.end()

	if err := f.backend.SendOTP(phone); err != nil {
		return err
	}

	f.phone = phone
	f.step = StepOTP
	return nil
}

// ResendCode re-invokes the send-OTP request for the captured phone without
// resetting any other state. Only valid from the OTP step.
func (f *Flow) ResendCode() error {
	if f.step != StepOTP {
		return errors.NewCLIError(errors.ErrorTypeConflict, "no code has been requested yet", nil)
	}
	return f.RequestCode(f.phone)
}

// VerifyCode submits the one-time code for the captured phone. On success the
// flow transitions to Authenticated exactly once and the outcome carries a
// non-empty token. On failure the flow stays in OTP.
func (f *Flow) VerifyCode(code string) (*Outcome, error) {
	if f.step != StepOTP {
		return nil, errors.NewCLIError(errors.ErrorTypeConflict, "cannot verify a code from step "+f.step.String(), nil)
	}

	code = strings.TrimSpace(code)
	if err := ValidateOTP(code); err != nil {
		return nil, err
	}

	if err := f.begin(); err != nil {
		return nil, err
	}
	defer f.end()

	outcome, err := f.backend.VerifyOTP(f.phone, code)
	if err != nil {
		return nil, err
	}
	if outcome == nil || outcome.Token == "" {
		return nil, ErrNoToken
	}

	f.step = StepAuthenticated
	return outcome, nil
}

// UseRecovery switches from Phone to the Recovery step, the explicit
// "can't receive OTP" path.
func (f *Flow) UseRecovery() error {
	if f.step != StepPhone {
		return errors.NewCLIError(errors.ErrorTypeConflict, "recovery is only reachable from the phone step", nil)
	}
	f.step = StepRecovery
	return nil
}

// Recover submits phone plus the pre-shared recovery secret. Success is
// identical to VerifyCode's: a token and transition to Authenticated.
// Failure keeps the flow in Recovery.
func (f *Flow) Recover(rawPhone, recoveryPass string) (*Outcome, error) {
	if f.step != StepRecovery {
		return nil, errors.NewCLIError(errors.ErrorTypeConflict, "cannot recover from step "+f.step.String(), nil)
	}

	phone, err := NormalizePhone(rawPhone)
	if err != nil {
		return nil, err
	}
	recoveryPass = strings.TrimSpace(recoveryPass)
	if err := ValidateRecoveryPass(recoveryPass); err != nil {
		return nil, err
	}

	if err := f.begin(); err != nil {
		return nil, err
	}
	defer f.end()

	outcome, err := f.backend.RecoveryLogin(phone, recoveryPass)
	if err != nil {
		return nil, err
	}
	if outcome == nil || outcome.Token == "" {
		return nil, ErrNoToken
	}

	f.phone = phone
	f.step = StepAuthenticated
	return outcome, nil
}

// Back returns unconditionally to the Phone step, discarding partial OTP or
// recovery input. A no-op once authenticated.
func (f *Flow) Back() {
	if f.step == StepAuthenticated {
		return
	}
	f.step = StepPhone
}
