package cmd

import (
	"github.com/spf13/cobra"

	"github.com/krownhq/krown-cli/pkg/service"
)

var bannerCmd = &cobra.Command{
	Use:   "banner",
	Short: "Manage promotional banners",
}

var bannerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List banners",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewBannerService()
		return svc.List()
	},
}

var bannerUploadCmd = &cobra.Command{
	Use:   "upload <image-file>",
	Short: "Upload a banner image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewBannerService()
		return svc.Upload(args[0])
	},
}

var bannerDeleteCmd = &cobra.Command{
	Use:   "delete <image-id>",
	Short: "Delete a banner",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewBannerService()
		return svc.Delete(args[0])
	},
}

func init() {
	bannerCmd.AddCommand(bannerListCmd)
	bannerCmd.AddCommand(bannerUploadCmd)
	bannerCmd.AddCommand(bannerDeleteCmd)
}
