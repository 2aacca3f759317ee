package api

import (
	"fmt"
	"os"

	json "github.com/json-iterator/go"
	"github.com/krownhq/krown-cli/pkg/client"
	"github.com/krownhq/krown-cli/pkg/logger"
)

// ListSubscriptionPlans retrieves all subscription plans
func ListSubscriptionPlans() ([]SubscriptionPlan, error) {
	logger.Debug("Fetching subscription plans")

	resp, err := client.GetClient().
		R().
		Get("/subscriptions/all")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var listResp subscriptionListResponse
	if err := json.Unmarshal(resp.Body(), &listResp); err != nil {
		return nil, err
	}

	return listResp.Data, nil
}

// AddSubscriptionPlan creates a subscription plan
func AddSubscriptionPlan(plan SubscriptionPlan) error {
	logger.Debug("Adding subscription plan", "name", plan.PlanName)

	reqBody, err := json.Marshal(plan)
	if err != nil {
		return err
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Post("/subscriptions/add")

	return CheckResponse(resp, err)
}

// UpdateSubscriptionPlan updates an existing subscription plan
func UpdateSubscriptionPlan(plan SubscriptionPlan) error {
	logger.Debug("Updating subscription plan", "id", plan.SubscriptionID)

	reqBody, err := json.Marshal(plan)
	if err != nil {
		return err
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Put(fmt.Sprintf("/subscriptions/%s", plan.SubscriptionID))

	return CheckResponse(resp, err)
}

// DeleteSubscriptionPlan deletes a subscription plan by id
func DeleteSubscriptionPlan(id string) error {
	logger.Debug("Deleting subscription plan", "id", id)

	resp, err := client.GetClient().
		R().
		Delete(fmt.Sprintf("/subscriptions/%s", id))

	return CheckResponse(resp, err)
}

// UploadFeatureIcon uploads a plan feature icon
func UploadFeatureIcon(iconPath string) error {
	logger.Debug("Uploading feature icon", "path", iconPath)

	if _, err := os.Stat(iconPath); err != nil {
		return err
	}

	resp, err := client.GetClient().
		R().
		SetFile("icon", iconPath).
		Post("/subscriptions/feature/icon-upload")

	return CheckResponse(resp, err)
}

// DeleteFeatureIcon deletes a plan feature icon
func DeleteFeatureIcon(iconURL string) error {
	logger.Debug("Deleting feature icon", "url", iconURL)

	reqBody, err := json.Marshal(map[string]string{"icon_url": iconURL})
	if err != nil {
		return err
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Post("/subscriptions/feature/icon-delete")

	return CheckResponse(resp, err)
}
