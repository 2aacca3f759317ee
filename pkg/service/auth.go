package service

import (
	"fmt"
	"time"

	"github.com/krownhq/krown-cli/pkg/api"
	"github.com/krownhq/krown-cli/pkg/authflow"
	"github.com/krownhq/krown-cli/pkg/client"
	"github.com/krownhq/krown-cli/pkg/credentials"
	clierrors "github.com/krownhq/krown-cli/pkg/errors"
	"github.com/krownhq/krown-cli/pkg/formatter"
	"github.com/krownhq/krown-cli/pkg/logger"
	"github.com/krownhq/krown-cli/pkg/prompter"
)

type AuthService struct{}

// NewAuthService creates a new auth service
func NewAuthService() *AuthService {
	return &AuthService{}
}

// Login runs the phone + OTP flow interactively and stores the session token
func (s *AuthService) Login() error {
	creds, err := credentials.Load()
	if err != nil {
		logger.Error("Failed to load credentials", "error", err)
		return err
	}

	if creds != nil && creds.IsValid() {
		formatter.PrintWarning("Already logged in as %s", creds.Name)
		confirm, err := prompter.PromptConfirm("Continue with new login?")
		if err != nil {
			return err
		}
		if !confirm {
			return nil
		}
	}

	client.Init()
	flow := authflow.New(api.AuthBackend{})

	phone, err := prompter.PromptString("Phone number: ")
	if err != nil {
		return err
	}

	formatter.PrintInfo("Sending OTP...")
	if err := flow.RequestCode(phone); err != nil {
		if clierrors.IsValidation(err) {
			formatter.PrintError("%s", clierrors.FormatError(err))
			return err
		}
		formatter.PrintError("%s", api.Message(err, "Failed to send OTP"))
		return err
	}
	formatter.PrintSuccess("✓ OTP sent to %s", flow.Phone())

	// Three attempts before bailing out; 'r' resends the code
	for attempt := 0; attempt < 3; attempt++ {
		code, err := prompter.PromptString("Enter OTP (or 'r' to resend): ")
		if err != nil {
			return err
		}

		if code == "r" {
			if err := flow.ResendCode(); err != nil {
				formatter.PrintError("%s", api.Message(err, "Failed to resend OTP"))
			} else {
				formatter.PrintSuccess("✓ OTP resent")
			}
			attempt--
			continue
		}

		outcome, err := flow.VerifyCode(code)
		if err != nil {
			if clierrors.IsValidation(err) {
				formatter.PrintError("%s", clierrors.FormatError(err))
			} else {
				formatter.PrintError("%s", api.Message(err, "Verification failed"))
			}
			continue
		}

		return s.finishLogin(outcome)
	}

	return fmt.Errorf("too many failed attempts")
}

// RecoveryLogin authenticates with the pre-shared recovery pass, the path
// for admins who cannot receive an OTP
func (s *AuthService) RecoveryLogin() error {
	client.Init()
	flow := authflow.New(api.AuthBackend{})
	if err := flow.UseRecovery(); err != nil {
		return err
	}

	phone, err := prompter.PromptString("Phone number: ")
	if err != nil {
		return err
	}

	recoveryPass, err := prompter.PromptSecret("Recovery pass: ")
	if err != nil {
		return err
	}

	formatter.PrintInfo("Authenticating...")
	outcome, err := flow.Recover(phone, recoveryPass)
	if err != nil {
		if clierrors.IsValidation(err) {
			formatter.PrintError("%s", clierrors.FormatError(err))
			return err
		}
		formatter.PrintError("%s", api.Message(err, "Recovery login failed"))
		return err
	}

	return s.finishLogin(outcome)
}

func (s *AuthService) finishLogin(outcome *authflow.Outcome) error {
	client.SetAuthToken(outcome.Token)

	creds := &credentials.Credentials{
		Token:   outcome.Token,
		SavedAt: time.Now(),
	}

	// Identity is display-only; a failed lookup does not fail the login
	admin, err := api.GetCurrentAdmin()
	if err != nil {
		logger.Warn("Could not fetch admin identity", "error", err)
	} else if admin != nil {
		creds.AdminID = admin.AdminID
		creds.Name = admin.Name
		creds.Phone = admin.Phone
		creds.Role = admin.Role
	}

	if err := credentials.Save(creds); err != nil {
		formatter.PrintError("Failed to save credentials: %v", err)
		return err
	}

	formatter.PrintSuccess("✓ Login successful!")
	if creds.Name != "" {
		formatter.PrintInfo("Logged in as %s (%s)", formatter.Bold.Sprint(creds.Name), creds.Role)
	}

	if outcome.RecoveryPass != "" {
		fmt.Printf("\n")
		formatter.PrintWarning("First login: your recovery pass is %s", formatter.Bold.Sprint(outcome.RecoveryPass))
		formatter.PrintWarning("Store it safely. It is shown only once and is the only way in without OTP.")
	}

	return nil
}

// Logout invalidates the session and removes stored credentials
func (s *AuthService) Logout() error {
	creds, err := credentials.Load()
	if err != nil {
		logger.Error("Failed to load credentials", "error", err)
		return err
	}

	if creds == nil || !creds.IsValid() {
		formatter.PrintWarning("Not logged in")
		return nil
	}

	confirm, err := prompter.PromptConfirm("Logout?")
	if err != nil {
		return err
	}
	if !confirm {
		return nil
	}

	client.Init()
	client.SetAuthToken(creds.Token)

	// Best effort; the local session dies either way
	if err := api.Logout(); err != nil {
		logger.Warn("Server-side logout failed", "error", err)
	}

	if err := credentials.Delete(); err != nil {
		formatter.PrintError("Failed to delete credentials: %v", err)
		return err
	}
	client.ClearAuthToken()

	formatter.PrintSuccess("✓ Logged out successfully")
	return nil
}

// GetMe displays the authenticated admin identity
func (s *AuthService) GetMe() error {
	creds, err := requireAuth()
	if err != nil {
		return err
	}

	admin, err := api.GetCurrentAdmin()
	if err != nil {
		if handleSessionExpiry(err, api.IsUnauthorized(err)) {
			return fmt.Errorf("unauthorized")
		}
		formatter.PrintError("%s", api.Message(err, "Failed to fetch admin"))
		return err
	}
	if admin == nil {
		return fmt.Errorf("empty admin response")
	}

	fmt.Printf("\n")
	formatter.PrintKeyValue(map[string]interface{}{
		"Name":       admin.Name,
		"Phone":      admin.Phone,
		"Role":       admin.Role,
		"Admin ID":   admin.AdminID,
		"Session at": creds.SavedAt.Format("2006-01-02 15:04:05"),
	})

	return nil
}
