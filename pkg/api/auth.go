package api

import (
	json "github.com/json-iterator/go"
	"github.com/krownhq/krown-cli/pkg/authflow"
	"github.com/krownhq/krown-cli/pkg/client"
	"github.com/krownhq/krown-cli/pkg/logger"
)

// SendOTP asks the backend to deliver a one-time code to phone
func SendOTP(phone string) error {
	logger.Debug("Sending OTP", "phone", phone)

	reqBody, err := json.Marshal(sendOTPRequest{Phone: phone})
	if err != nil {
		return err
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Post("/admin/send-otp")

	return CheckResponse(resp, err)
}

// VerifyOTP exchanges phone + code for a bearer token
func VerifyOTP(phone, code string) (*authflow.Outcome, error) {
	logger.Debug("Verifying OTP", "phone", phone)

	reqBody, err := json.Marshal(verifyOTPRequest{Phone: phone, Code: code})
	if err != nil {
		return nil, err
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Post("/admin/verify-otp")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var verifyResp verifyOTPResponse
	if err := json.Unmarshal(resp.Body(), &verifyResp); err != nil {
		return nil, err
	}

	logger.Debug("OTP verified")
	return &authflow.Outcome{
		Token:        verifyResp.Data.Token,
		RecoveryPass: verifyResp.RecoveryPass,
	}, nil
}

// RecoveryLogin exchanges phone + pre-shared recovery pass for a bearer token
func RecoveryLogin(phone, recoveryPass string) (*authflow.Outcome, error) {
	logger.Debug("Attempting recovery login", "phone", phone)

	reqBody, err := json.Marshal(recoveryLoginRequest{Phone: phone, RecoveryPass: recoveryPass})
	if err != nil {
		return nil, err
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Post("/admin/recovery-login")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var verifyResp verifyOTPResponse
	if err := json.Unmarshal(resp.Body(), &verifyResp); err != nil {
		return nil, err
	}

	logger.Debug("Recovery login successful")
	return &authflow.Outcome{Token: verifyResp.Data.Token}, nil
}

// GetCurrentAdmin gets the authenticated admin identity
func GetCurrentAdmin() (*Admin, error) {
	logger.Debug("Fetching current admin")

	resp, err := client.GetClient().
		R().
		Get("/admin/me")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var meResp adminMeResponse
	if err := json.Unmarshal(resp.Body(), &meResp); err != nil {
		return nil, err
	}

	if meResp.Data != nil {
		logger.Debug("Current admin fetched", "name", meResp.Data.Name, "role", meResp.Data.Role)
	}
	return meResp.Data, nil
}

// Logout invalidates the session server-side. Token invalidation is the
// backend's responsibility; the caller still deletes local credentials.
func Logout() error {
	logger.Debug("Logging out")

	resp, err := client.GetClient().
		R().
		Post("/admin/logout")

	return CheckResponse(resp, err)
}

// AuthBackend adapts the package-level auth calls to authflow.Backend.
type AuthBackend struct{}

func (AuthBackend) SendOTP(phone string) error {
	return SendOTP(phone)
}

func (AuthBackend) VerifyOTP(phone, code string) (*authflow.Outcome, error) {
	return VerifyOTP(phone, code)
}

func (AuthBackend) RecoveryLogin(phone, recoveryPass string) (*authflow.Outcome, error) {
	return RecoveryLogin(phone, recoveryPass)
}
