package api

import (
	"fmt"

	json "github.com/json-iterator/go"
	"github.com/krownhq/krown-cli/pkg/client"
	"github.com/krownhq/krown-cli/pkg/logger"
)

// ListCafes retrieves all cafés. The same list also populates the analytics
// café filter selector.
func ListCafes() ([]Cafe, error) {
	logger.Debug("Fetching cafe list")

	resp, err := client.GetClient().
		R().
		Get("/admin/cafe_name/list")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var listResp cafeListResponse
	if err := json.Unmarshal(resp.Body(), &listResp); err != nil {
		return nil, err
	}

	return listResp.Data, nil
}

// CreateCafe creates a café
func CreateCafe(input CreateCafeInput) error {
	logger.Debug("Creating cafe", "name", input.CafeName)

	reqBody, err := json.Marshal(input)
	if err != nil {
		return err
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Post("/admin/cafe/create")

	return CheckResponse(resp, err)
}

// DeleteCafe deletes a café by id
func DeleteCafe(cafeID string) error {
	logger.Debug("Deleting cafe", "cafe_id", cafeID)

	reqBody, err := json.Marshal(map[string]string{"cafe_id": cafeID})
	if err != nil {
		return err
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Delete("/admin/cafe/delete")

	return CheckResponse(resp, err)
}

// ListCafeUsers retrieves the staff accounts of one café
func ListCafeUsers(cafeID string) ([]CafeUser, error) {
	logger.Debug("Fetching cafe users", "cafe_id", cafeID)

	resp, err := client.GetClient().
		R().
		Get(fmt.Sprintf("/admin/cafe/%s/users", cafeID))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var listResp cafeUserListResponse
	if err := json.Unmarshal(resp.Body(), &listResp); err != nil {
		return nil, err
	}

	return listResp.Data, nil
}

// ListAllCafeUsers retrieves staff accounts across all cafés
func ListAllCafeUsers() ([]CafeUser, error) {
	logger.Debug("Fetching all cafe users")

	resp, err := client.GetClient().
		R().
		Get("/admin/cafe/users")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var listResp cafeUserListResponse
	if err := json.Unmarshal(resp.Body(), &listResp); err != nil {
		return nil, err
	}

	return listResp.Data, nil
}

// CreateCafeUser creates a café staff account
func CreateCafeUser(input CreateCafeUserInput) error {
	logger.Debug("Creating cafe user", "login", input.LoginUserName, "cafe_id", input.CafeID)

	reqBody, err := json.Marshal(input)
	if err != nil {
		return err
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Post("/admin/cafe/user/create")

	return CheckResponse(resp, err)
}

// UpdateCafeUser updates a café staff account
func UpdateCafeUser(input UpdateCafeUserInput) error {
	logger.Debug("Updating cafe user", "user_id", input.UserID)

	reqBody, err := json.Marshal(input)
	if err != nil {
		return err
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Put("/admin/cafe/user/update")

	return CheckResponse(resp, err)
}

// DeleteCafeUser deletes a café staff account
func DeleteCafeUser(userID string) error {
	logger.Debug("Deleting cafe user", "user_id", userID)

	reqBody, err := json.Marshal(map[string]string{"user_id": userID})
	if err != nil {
		return err
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Delete("/admin/cafe/user/delete")

	return CheckResponse(resp, err)
}
