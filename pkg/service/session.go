package service

import (
	"fmt"

	"github.com/krownhq/krown-cli/pkg/client"
	"github.com/krownhq/krown-cli/pkg/credentials"
	"github.com/krownhq/krown-cli/pkg/formatter"
	"github.com/krownhq/krown-cli/pkg/logger"
)

// requireAuth loads stored credentials and prepares the HTTP client for an
// authenticated call. Every service method that talks to a protected
// endpoint goes through here first.
func requireAuth() (*credentials.Credentials, error) {
	creds, err := credentials.Load()
	if err != nil {
		logger.Error("Failed to load credentials", "error", err)
		return nil, err
	}

	if creds == nil || !creds.IsValid() {
		formatter.PrintError("Not logged in. Please run 'krown-cli auth login'")
		return nil, fmt.Errorf("not authenticated")
	}

	client.Init()
	client.SetAuthToken(creds.Token)
	return creds, nil
}

// handleSessionExpiry clears a dead session. Returns true when the error was
// a 401 and has been handled.
func handleSessionExpiry(err error, isUnauthorized bool) bool {
	if !isUnauthorized {
		return false
	}
	formatter.PrintError("Session expired. Please login again.")
	credentials.Delete()
	client.ClearAuthToken()
	return true
}
