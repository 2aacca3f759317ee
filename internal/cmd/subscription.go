package cmd

import (
	"github.com/spf13/cobra"

	"github.com/krownhq/krown-cli/pkg/api"
	"github.com/krownhq/krown-cli/pkg/service"
)

var (
	planName     string
	planPrice    float64
	planDays     int
	planFeatures []string
	planActive   bool
)

var subscriptionCmd = &cobra.Command{
	Use:     "subscription",
	Aliases: []string{"plan"},
	Short:   "Manage subscription plans",
}

var subscriptionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List subscription plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewSubscriptionService()
		return svc.List()
	},
}

func planFromFlags(id string) api.SubscriptionPlan {
	features := make([]api.PlanFeature, 0, len(planFeatures))
	for _, f := range planFeatures {
		features = append(features, api.PlanFeature{FeatureText: f})
	}
	return api.SubscriptionPlan{
		SubscriptionID: id,
		PlanName:       planName,
		Price:          planPrice,
		DurationDays:   planDays,
		Features:       features,
		IsActive:       planActive,
	}
}

var subscriptionAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a subscription plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewSubscriptionService()
		return svc.Add(planFromFlags(""))
	},
}

var subscriptionUpdateCmd = &cobra.Command{
	Use:   "update <subscription-id>",
	Short: "Update a subscription plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewSubscriptionService()
		return svc.Update(planFromFlags(args[0]))
	},
}

var subscriptionDeleteCmd = &cobra.Command{
	Use:   "delete <subscription-id>",
	Short: "Delete a subscription plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewSubscriptionService()
		return svc.Delete(args[0])
	},
}

var subscriptionIconUploadCmd = &cobra.Command{
	Use:   "upload-icon <image-file>",
	Short: "Upload a feature icon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewSubscriptionService()
		return svc.UploadIcon(args[0])
	},
}

var subscriptionIconDeleteCmd = &cobra.Command{
	Use:   "delete-icon <icon-url>",
	Short: "Delete a feature icon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewSubscriptionService()
		return svc.DeleteIcon(args[0])
	},
}

func init() {
	for _, c := range []*cobra.Command{subscriptionAddCmd, subscriptionUpdateCmd} {
		c.Flags().StringVar(&planName, "name", "", "Plan name (required)")
		c.Flags().Float64Var(&planPrice, "price", 0, "Plan price in INR (required)")
		c.Flags().IntVar(&planDays, "days", 0, "Plan duration in days (required)")
		c.Flags().StringSliceVar(&planFeatures, "feature", nil, "Plan feature, repeatable (required)")
		c.Flags().BoolVar(&planActive, "active", true, "Whether the plan is offered")
		c.MarkFlagRequired("name")
		c.MarkFlagRequired("price")
		c.MarkFlagRequired("days")
		c.MarkFlagRequired("feature")
	}

	subscriptionCmd.AddCommand(subscriptionListCmd)
	subscriptionCmd.AddCommand(subscriptionAddCmd)
	subscriptionCmd.AddCommand(subscriptionUpdateCmd)
	subscriptionCmd.AddCommand(subscriptionDeleteCmd)
	subscriptionCmd.AddCommand(subscriptionIconUploadCmd)
	subscriptionCmd.AddCommand(subscriptionIconDeleteCmd)
}
