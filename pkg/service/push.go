package service

import (
	"fmt"

	json "github.com/json-iterator/go"
	"github.com/krownhq/krown-cli/pkg/api"
	clierrors "github.com/krownhq/krown-cli/pkg/errors"
	"github.com/krownhq/krown-cli/pkg/formatter"
	"github.com/krownhq/krown-cli/pkg/prompter"
)

// PushService sends notifications to app users
type PushService struct{}

// NewPushService creates a new push service
func NewPushService() *PushService {
	return &PushService{}
}

// parseDataPayload parses the optional free-form JSON attached to a push.
// An empty string means no payload.
func parseDataPayload(raw string) (map[string]interface{}, error) {
	if raw == "" {
		return nil, nil
	}
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, clierrors.ValidationError("data", "must be a JSON object")
	}
	return data, nil
}

// ListUsers displays the registered notification recipients
func (ps *PushService) ListUsers() error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	users, err := api.ListPushUsers()
	if err != nil {
		formatter.PrintError("%s", api.Message(err, "Failed to fetch push users"))
		return err
	}

	if len(users) == 0 {
		fmt.Println("No users registered for notifications.")
		return nil
	}

	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{u.UserID, u.UserName, u.UserMobileNo})
	}
	formatter.PrintTable([]string{"ID", "Name", "Mobile"}, rows)
	fmt.Printf("\n%d users\n", len(users))
	return nil
}

// Send delivers a notification to one user
func (ps *PushService) Send(userID, title, body, rawData string) error {
	if userID == "" {
		err := clierrors.ValidationError("user id", "is required")
		formatter.PrintError("%s", clierrors.FormatError(err))
		return err
	}
	if title == "" || body == "" {
		err := clierrors.ValidationError("notification", "title and body are required")
		formatter.PrintError("%s", clierrors.FormatError(err))
		return err
	}

	data, err := parseDataPayload(rawData)
	if err != nil {
		formatter.PrintError("%s", clierrors.FormatError(err))
		return err
	}

	if _, err := requireAuth(); err != nil {
		return err
	}

	result, err := api.SendPush(api.PushMessage{
		UserID: userID,
		Title:  title,
		Body:   body,
		Data:   data,
	})
	if err != nil {
		formatter.PrintError("%s", api.Message(err, "Failed to send notification"))
		return err
	}

	formatter.PrintSuccess("✓ Notification sent")
	if sent, ok := result["sent"]; ok {
		formatter.PrintInfo("Delivered to %v device(s)", sent)
	}
	return nil
}

// Broadcast delivers a notification to every user. Restricted to master
// admins; the backend enforces this too, this check just fails fast.
func (ps *PushService) Broadcast(title, body, rawData string) error {
	if title == "" || body == "" {
		err := clierrors.ValidationError("notification", "title and body are required")
		formatter.PrintError("%s", clierrors.FormatError(err))
		return err
	}

	data, err := parseDataPayload(rawData)
	if err != nil {
		formatter.PrintError("%s", clierrors.FormatError(err))
		return err
	}

	creds, err := requireAuth()
	if err != nil {
		return err
	}

	if !creds.IsMasterRole() {
		formatter.PrintError("Broadcast requires a master admin account")
		return fmt.Errorf("forbidden")
	}

	confirm, err := prompter.PromptConfirm("Broadcast to ALL users?")
	if err != nil {
		return err
	}
	if !confirm {
		return nil
	}

	result, err := api.BroadcastPush(api.PushMessage{Title: title, Body: body, Data: data})
	if err != nil {
		formatter.PrintError("%s", api.Message(err, "Failed to broadcast"))
		return err
	}

	formatter.PrintSuccess("✓ Broadcast sent")
	if sent, ok := result["sent"]; ok {
		formatter.PrintInfo("Delivered to %v device(s)", sent)
	}
	return nil
}
