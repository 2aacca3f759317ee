package cmd

import (
	"github.com/spf13/cobra"

	"github.com/krownhq/krown-cli/pkg/service"
)

var (
	pushTitle string
	pushBody  string
	pushData  string
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Send push notifications",
}

var pushUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "List notification recipients",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewPushService()
		return svc.ListUsers()
	},
}

var pushSendCmd = &cobra.Command{
	Use:   "send <user-id>",
	Short: "Send a notification to one user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewPushService()
		return svc.Send(args[0], pushTitle, pushBody, pushData)
	},
}

var pushBroadcastCmd = &cobra.Command{
	Use:   "broadcast",
	Short: "Send a notification to all users",
	Long:  "Broadcast a notification to every registered user. Requires a master admin account.",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewPushService()
		return svc.Broadcast(pushTitle, pushBody, pushData)
	},
}

func init() {
	for _, c := range []*cobra.Command{pushSendCmd, pushBroadcastCmd} {
		c.Flags().StringVar(&pushTitle, "title", "", "Notification title (required)")
		c.Flags().StringVar(&pushBody, "body", "", "Notification body (required)")
		c.Flags().StringVar(&pushData, "data", "", "Extra payload as a JSON object")
		c.MarkFlagRequired("title")
		c.MarkFlagRequired("body")
	}

	pushCmd.AddCommand(pushUsersCmd)
	pushCmd.AddCommand(pushSendCmd)
	pushCmd.AddCommand(pushBroadcastCmd)
}
