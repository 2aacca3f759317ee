package cmd

import (
	"github.com/spf13/cobra"

	"github.com/krownhq/krown-cli/pkg/service"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  "Manage the admin session with the Krown backend",
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login with phone number and OTP",
	Long:  "Request a one-time code for your registered phone number and exchange it for a session",
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService()
		return authSvc.Login()
	},
}

var recoverCmd = &cobra.Command{
	Use:   "recover",
	Short: "Login with your recovery pass",
	Long:  "Fallback login for admins who cannot receive an OTP. Uses the recovery pass issued on first login.",
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService()
		return authSvc.RecoveryLogin()
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout and clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService()
		return authSvc.Logout()
	},
}

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Display the current admin identity",
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService()
		return authSvc.GetMe()
	},
}

func init() {
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(recoverCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(meCmd)
}
