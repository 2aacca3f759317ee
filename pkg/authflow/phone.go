package authflow

import (
	"regexp"
	"strings"

	"github.com/krownhq/krown-cli/pkg/errors"
)

var (
	tenDigits  = regexp.MustCompile(`^\d{10}$`)
	intlPhone  = regexp.MustCompile(`^\+\d{8,15}$`)
	otpPattern = regexp.MustCompile(`^\d{6,7}$`)
)

// NormalizePhone turns raw user input into a consistent international
// number. Bare 10-digit numbers are assumed domestic and get the +91 prefix;
// numbers already carrying a leading "+" pass through unchanged. A single
// leading trunk zero is dropped before the domestic check.
func NormalizePhone(raw string) (string, error) {
	p := strings.TrimSpace(raw)
	p = strings.NewReplacer(" ", "", "-", "").Replace(p)

	if p == "" {
		return "", errors.ValidationError("phone", "phone number is required")
	}
	if strings.HasPrefix(p, "+") {
		if !intlPhone.MatchString(p) {
			return "", errors.ValidationError("phone", "enter a valid phone number (e.g., +91XXXXXXXXXX)")
		}
		return p, nil
	}
	if strings.HasPrefix(p, "0") {
		p = p[1:]
	}
	if tenDigits.MatchString(p) {
		return "+91" + p, nil
	}
	return "", errors.ValidationError("phone", "enter a valid phone number (e.g., +91XXXXXXXXXX)")
}

// ValidateOTP checks the one-time code format: 6-7 digits.
func ValidateOTP(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errors.ValidationError("otp", "OTP is required")
	}
	if !otpPattern.MatchString(code) {
		return errors.ValidationError("otp", "enter a valid OTP (6-7 digits)")
	}
	return nil
}

// ValidateRecoveryPass checks the pre-shared recovery secret format.
func ValidateRecoveryPass(pass string) error {
	pass = strings.TrimSpace(pass)
	if pass == "" {
		return errors.ValidationError("recovery_pass", "recovery pass is required")
	}
	if len(pass) < 6 {
		return errors.ValidationError("recovery_pass", "recovery pass must be at least 6 characters")
	}
	return nil
}
