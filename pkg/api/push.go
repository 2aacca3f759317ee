package api

import (
	json "github.com/json-iterator/go"
	"github.com/krownhq/krown-cli/pkg/client"
	"github.com/krownhq/krown-cli/pkg/logger"
)

// ListPushUsers retrieves the registered notification recipients
func ListPushUsers() ([]PushUser, error) {
	logger.Debug("Fetching push users")

	resp, err := client.GetClient().
		R().
		Get("/push/users")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var usersResp pushUsersResponse
	if err := json.Unmarshal(resp.Body(), &usersResp); err != nil {
		return nil, err
	}

	return usersResp.Users, nil
}

// SendPush sends a notification to a single user
func SendPush(msg PushMessage) (map[string]interface{}, error) {
	logger.Debug("Sending push", "user_id", msg.UserID, "title", msg.Title)

	reqBody, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Post("/push/send")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var result map[string]interface{}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, err
	}

	return result, nil
}

// BroadcastPush sends a notification to every user. Role gating happens at
// the service layer before this call.
func BroadcastPush(msg PushMessage) (map[string]interface{}, error) {
	logger.Debug("Broadcasting push", "title", msg.Title)

	msg.UserID = ""
	reqBody, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Post("/push/broadcast")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var result map[string]interface{}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, err
	}

	return result, nil
}
