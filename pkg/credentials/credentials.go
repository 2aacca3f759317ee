package credentials

import (
	"encoding/json"
	"os"
	"time"

	"github.com/krownhq/krown-cli/pkg/config"
)

// Credentials holds the bearer token issued by the backend plus the admin
// identity it belongs to. The token is opaque; the backend owns its lifetime.
type Credentials struct {
	Token   string    `json:"token"`
	AdminID string    `json:"admin_id"`
	Name    string    `json:"name"`
	Phone   string    `json:"phone"`
	Role    string    `json:"role"`
	SavedAt time.Time `json:"saved_at"`
}

// Load loads credentials from disk
func Load() (*Credentials, error) {
	path := config.GetCredentialsPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // Credentials don't exist yet
		}
		return nil, err
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, err
	}

	return &creds, nil
}

// Save saves credentials to disk
func Save(creds *Credentials) error {
	path := config.GetCredentialsPath()

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return err
	}

	// Write with restricted permissions (owner read/write only)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return err
	}

	return nil
}

// Delete deletes credentials from disk
func Delete() error {
	path := config.GetCredentialsPath()
	return os.Remove(path)
}

// IsValid checks if credentials carry a usable token
func (c *Credentials) IsValid() bool {
	return c.Token != ""
}

// IsMasterRole reports whether the admin may broadcast push notifications
func (c *Credentials) IsMasterRole() bool {
	return c.Role == "master_admin" || c.Role == "krown_admin"
}
