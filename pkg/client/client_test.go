package client

import (
	"testing"
)

// TestGetClientInitialization validates client initialization
func TestGetClientInitialization(t *testing.T) {
	httpClient = nil

	client := GetClient()

	if client == nil {
		t.Fatal("GetClient should not return nil")
	}
}

// TestGetClientSingleton validates that GetClient returns same instance
func TestGetClientSingleton(t *testing.T) {
	httpClient = nil

	client1 := GetClient()
	client2 := GetClient()

	if client1 != client2 {
		t.Error("GetClient should return same instance")
	}
}

// TestSetAuthToken validates auth token setting
func TestSetAuthToken(t *testing.T) {
	httpClient = nil

	SetAuthToken("test_token_12345")

	client := GetClient()
	if client == nil {
		t.Fatal("Client should be initialized after SetAuthToken")
	}

	if got := client.Header.Get("Authorization"); got != "Bearer test_token_12345" {
		t.Errorf("Authorization header = %q, want Bearer prefix with token", got)
	}
}

// TestClearAuthToken validates auth token clearing
func TestClearAuthToken(t *testing.T) {
	httpClient = nil

	SetAuthToken("test_token")
	ClearAuthToken()

	client := GetClient()
	if got := client.Header.Get("Authorization"); got != "" {
		t.Errorf("Authorization header should be cleared, got %q", got)
	}
}

// TestSetBaseURL validates base URL override
func TestSetBaseURL(t *testing.T) {
	httpClient = nil

	SetBaseURL("http://127.0.0.1:9999/api")

	client := GetClient()
	if client.BaseURL != "http://127.0.0.1:9999/api" {
		t.Errorf("BaseURL = %q, want override", client.BaseURL)
	}
}
