package cmd

import (
	"github.com/spf13/cobra"

	"github.com/krownhq/krown-cli/pkg/api"
	"github.com/krownhq/krown-cli/pkg/service"
)

var cafeCreateInput api.CreateCafeInput

var (
	cafeUserCreateInput api.CreateCafeUserInput
	cafeUserUpdateInput api.UpdateCafeUserInput
	cafeUsersCafeID     string
)

var cafeCmd = &cobra.Command{
	Use:   "cafe",
	Short: "Manage cafés",
	Long:  "Create, list and delete cafés and their staff accounts",
}

var cafeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all cafés",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewCafeService()
		return svc.List()
	},
}

var cafeCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a new café",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewCafeService()
		return svc.Create(cafeCreateInput)
	},
}

var cafeDeleteCmd = &cobra.Command{
	Use:   "delete <cafe-id>",
	Short: "Delete a café",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewCafeService()
		return svc.Delete(args[0])
	},
}

var cafeUserCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage café staff accounts",
}

var cafeUserListCmd = &cobra.Command{
	Use:   "list",
	Short: "List staff accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewCafeService()
		return svc.ListUsers(cafeUsersCafeID)
	},
}

var cafeUserCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a staff account",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewCafeService()
		return svc.CreateUser(cafeUserCreateInput)
	},
}

var cafeUserUpdateCmd = &cobra.Command{
	Use:   "update <user-id>",
	Short: "Update a staff account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cafeUserUpdateInput.UserID = args[0]
		svc := service.NewCafeService()
		return svc.UpdateUser(cafeUserUpdateInput)
	},
}

var cafeUserDeleteCmd = &cobra.Command{
	Use:   "delete <user-id>",
	Short: "Delete a staff account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewCafeService()
		return svc.DeleteUser(args[0])
	},
}

func init() {
	cafeCreateCmd.Flags().StringVar(&cafeCreateInput.CafeName, "name", "", "Café name (required)")
	cafeCreateCmd.Flags().StringVar(&cafeCreateInput.CafeLocation, "location", "", "Café address (required)")
	cafeCreateCmd.Flags().StringVar(&cafeCreateInput.CafeDescription, "description", "", "Short description")
	cafeCreateCmd.Flags().StringVar(&cafeCreateInput.CafeMobileNo, "mobile", "", "Contact number (required)")
	cafeCreateCmd.Flags().StringVar(&cafeCreateInput.CafeUpiID, "upi", "", "UPI payment id (required)")
	cafeCreateCmd.Flags().StringVar(&cafeCreateInput.OpeningTime, "opens", "", "Opening time, HH:MM (required)")
	cafeCreateCmd.Flags().StringVar(&cafeCreateInput.ClosingTime, "closes", "", "Closing time, HH:MM (required)")
	cafeCreateCmd.MarkFlagRequired("name")
	cafeCreateCmd.MarkFlagRequired("location")
	cafeCreateCmd.MarkFlagRequired("mobile")
	cafeCreateCmd.MarkFlagRequired("upi")
	cafeCreateCmd.MarkFlagRequired("opens")
	cafeCreateCmd.MarkFlagRequired("closes")

	cafeUserListCmd.Flags().StringVar(&cafeUsersCafeID, "cafe", "", "Scope to one café id")

	cafeUserCreateCmd.Flags().StringVar(&cafeUserCreateInput.UserName, "name", "", "Staff member name (required)")
	cafeUserCreateCmd.Flags().StringVar(&cafeUserCreateInput.UserEmail, "email", "", "Email address (required)")
	cafeUserCreateCmd.Flags().StringVar(&cafeUserCreateInput.UserMobileNo, "mobile", "", "Mobile number")
	cafeUserCreateCmd.Flags().StringVar(&cafeUserCreateInput.LoginUserName, "login", "", "Login username (required)")
	cafeUserCreateCmd.Flags().StringVar(&cafeUserCreateInput.PasswordHash, "password", "", "Login password (required)")
	cafeUserCreateCmd.Flags().StringVar(&cafeUserCreateInput.CafeID, "cafe", "", "Café id (required)")
	cafeUserCreateCmd.MarkFlagRequired("name")
	cafeUserCreateCmd.MarkFlagRequired("email")
	cafeUserCreateCmd.MarkFlagRequired("login")
	cafeUserCreateCmd.MarkFlagRequired("password")
	cafeUserCreateCmd.MarkFlagRequired("cafe")

	cafeUserUpdateCmd.Flags().StringVar(&cafeUserUpdateInput.UserName, "name", "", "Staff member name")
	cafeUserUpdateCmd.Flags().StringVar(&cafeUserUpdateInput.UserEmail, "email", "", "Email address")
	cafeUserUpdateCmd.Flags().StringVar(&cafeUserUpdateInput.UserMobileNo, "mobile", "", "Mobile number")
	cafeUserUpdateCmd.Flags().StringVar(&cafeUserUpdateInput.LoginUserName, "login", "", "Login username")
	cafeUserUpdateCmd.Flags().StringVar(&cafeUserUpdateInput.PasswordHash, "password", "", "New password")

	cafeUserCmd.AddCommand(cafeUserListCmd)
	cafeUserCmd.AddCommand(cafeUserCreateCmd)
	cafeUserCmd.AddCommand(cafeUserUpdateCmd)
	cafeUserCmd.AddCommand(cafeUserDeleteCmd)

	cafeCmd.AddCommand(cafeListCmd)
	cafeCmd.AddCommand(cafeCreateCmd)
	cafeCmd.AddCommand(cafeDeleteCmd)
	cafeCmd.AddCommand(cafeUserCmd)
}
