package service

import (
	"fmt"
	"strconv"

	"github.com/krownhq/krown-cli/pkg/api"
	clierrors "github.com/krownhq/krown-cli/pkg/errors"
	"github.com/krownhq/krown-cli/pkg/formatter"
	"github.com/krownhq/krown-cli/pkg/prompter"
)

// SubscriptionService manages café subscription plans
type SubscriptionService struct{}

// NewSubscriptionService creates a new subscription service
func NewSubscriptionService() *SubscriptionService {
	return &SubscriptionService{}
}

func validatePlan(plan api.SubscriptionPlan) error {
	if len(plan.PlanName) < 3 {
		return clierrors.ValidationError("plan name", "must be at least 3 characters")
	}
	if plan.Price <= 0 {
		return clierrors.ValidationError("price", "must be greater than zero")
	}
	if plan.DurationDays <= 0 {
		return clierrors.ValidationError("duration", "must be at least 1 day")
	}
	if len(plan.Features) == 0 {
		return clierrors.ValidationError("features", "at least one feature is required")
	}
	for _, f := range plan.Features {
		if f.FeatureText == "" {
			return clierrors.ValidationError("features", "feature text cannot be empty")
		}
	}
	return nil
}

// List displays all subscription plans
func (ss *SubscriptionService) List() error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	plans, err := api.ListSubscriptionPlans()
	if err != nil {
		formatter.PrintError("%s", api.Message(err, "Failed to fetch plans"))
		return err
	}

	if len(plans) == 0 {
		fmt.Println("No subscription plans defined.")
		return nil
	}

	rows := make([][]string, 0, len(plans))
	for _, p := range plans {
		active := "no"
		if p.IsActive {
			active = "yes"
		}
		rows = append(rows, []string{
			p.SubscriptionID,
			p.PlanName,
			fmt.Sprintf("%.2f", p.Price),
			strconv.Itoa(p.DurationDays),
			strconv.Itoa(len(p.Features)),
			active,
		})
	}
	formatter.PrintTable([]string{"ID", "Plan", "Price", "Days", "Features", "Active"}, rows)
	return nil
}

// Add validates and creates a subscription plan
func (ss *SubscriptionService) Add(plan api.SubscriptionPlan) error {
	if err := validatePlan(plan); err != nil {
		formatter.PrintError("%s", clierrors.FormatError(err))
		return err
	}

	if _, err := requireAuth(); err != nil {
		return err
	}

	if err := api.AddSubscriptionPlan(plan); err != nil {
		formatter.PrintError("%s", api.Message(err, "Failed to add plan"))
		return err
	}

	formatter.PrintSuccess("✓ Plan %s added", formatter.Bold.Sprint(plan.PlanName))
	return nil
}

// Update validates and replaces an existing plan
func (ss *SubscriptionService) Update(plan api.SubscriptionPlan) error {
	if plan.SubscriptionID == "" {
		err := clierrors.ValidationError("subscription id", "is required")
		formatter.PrintError("%s", clierrors.FormatError(err))
		return err
	}
	if err := validatePlan(plan); err != nil {
		formatter.PrintError("%s", clierrors.FormatError(err))
		return err
	}

	if _, err := requireAuth(); err != nil {
		return err
	}

	if err := api.UpdateSubscriptionPlan(plan); err != nil {
		formatter.PrintError("%s", api.Message(err, "Failed to update plan"))
		return err
	}

	formatter.PrintSuccess("✓ Plan updated")
	return nil
}

// Delete removes a plan after confirmation
func (ss *SubscriptionService) Delete(id string) error {
	if id == "" {
		err := clierrors.ValidationError("subscription id", "is required")
		formatter.PrintError("%s", clierrors.FormatError(err))
		return err
	}

	if _, err := requireAuth(); err != nil {
		return err
	}

	confirm, err := prompter.PromptConfirm("Delete plan " + id + "?")
	if err != nil {
		return err
	}
	if !confirm {
		return nil
	}

	if err := api.DeleteSubscriptionPlan(id); err != nil {
		formatter.PrintError("%s", api.Message(err, "Failed to delete plan"))
		return err
	}

	formatter.PrintSuccess("✓ Plan deleted")
	return nil
}

// UploadIcon uploads a feature icon image
func (ss *SubscriptionService) UploadIcon(iconPath string) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	if err := api.UploadFeatureIcon(iconPath); err != nil {
		formatter.PrintError("%s", api.Message(err, "Failed to upload icon"))
		return err
	}

	formatter.PrintSuccess("✓ Icon uploaded")
	return nil
}

// DeleteIcon removes a feature icon
func (ss *SubscriptionService) DeleteIcon(iconURL string) error {
	if iconURL == "" {
		err := clierrors.ValidationError("icon url", "is required")
		formatter.PrintError("%s", clierrors.FormatError(err))
		return err
	}

	if _, err := requireAuth(); err != nil {
		return err
	}

	if err := api.DeleteFeatureIcon(iconURL); err != nil {
		formatter.PrintError("%s", api.Message(err, "Failed to delete icon"))
		return err
	}

	formatter.PrintSuccess("✓ Icon deleted")
	return nil
}
