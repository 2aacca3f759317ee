package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/krownhq/krown-cli/pkg/client"
)

func TestSendOTP(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"OTP sent"}`))
	}))
	defer server.Close()
	client.SetBaseURL(server.URL)

	if err := SendOTP("+919876543210"); err != nil {
		t.Fatalf("SendOTP failed: %v", err)
	}
	if gotPath != "/admin/send-otp" {
		t.Errorf("Expected /admin/send-otp, got %s", gotPath)
	}
}

func TestVerifyOTP_FirstLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/admin/verify-otp" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"token":"tok-abc"},"recovery_pass":"r3cov3r"}`))
	}))
	defer server.Close()
	client.SetBaseURL(server.URL)

	outcome, err := VerifyOTP("+919876543210", "482910")
	if err != nil {
		t.Fatalf("VerifyOTP failed: %v", err)
	}
	if outcome.Token != "tok-abc" {
		t.Errorf("Expected token tok-abc, got %s", outcome.Token)
	}
	if outcome.RecoveryPass != "r3cov3r" {
		t.Errorf("Expected recovery pass on first login, got %q", outcome.RecoveryPass)
	}
}

func TestVerifyOTP_ReturningLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"token":"tok-def"}}`))
	}))
	defer server.Close()
	client.SetBaseURL(server.URL)

	outcome, err := VerifyOTP("+919876543210", "482910")
	if err != nil {
		t.Fatalf("VerifyOTP failed: %v", err)
	}
	if outcome.RecoveryPass != "" {
		t.Errorf("Expected no recovery pass for returning login, got %q", outcome.RecoveryPass)
	}
}

func TestVerifyOTP_BackendMessageSurfaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid or expired OTP"}`))
	}))
	defer server.Close()
	client.SetBaseURL(server.URL)

	_, err := VerifyOTP("+919876543210", "000000")
	if err == nil {
		t.Fatal("Expected error for rejected OTP")
	}
	if got := Message(err, "Verification failed"); got != "Invalid or expired OTP" {
		t.Errorf("Expected backend message verbatim, got %q", got)
	}
	if !IsUnauthorized(err) {
		t.Error("Expected 401 to be classified as unauthorized")
	}
}

func TestRecoveryLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/admin/recovery-login" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"token":"tok-recovery"}}`))
	}))
	defer server.Close()
	client.SetBaseURL(server.URL)

	outcome, err := RecoveryLogin("+919876543210", "r3cov3r")
	if err != nil {
		t.Fatalf("RecoveryLogin failed: %v", err)
	}
	if outcome.Token != "tok-recovery" {
		t.Errorf("Expected token tok-recovery, got %s", outcome.Token)
	}
}

func TestGetCurrentAdmin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/admin/me" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"admin_id":"a1","name":"Asha","phone":"+919876543210","role":"master_admin"}}`))
	}))
	defer server.Close()
	client.SetBaseURL(server.URL)

	admin, err := GetCurrentAdmin()
	if err != nil {
		t.Fatalf("GetCurrentAdmin failed: %v", err)
	}
	if admin == nil {
		t.Fatal("GetCurrentAdmin returned nil admin")
	}
	if admin.Role != "master_admin" {
		t.Errorf("Expected role master_admin, got %s", admin.Role)
	}
}

func TestLogout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Logged out"}`))
	}))
	defer server.Close()
	client.SetBaseURL(server.URL)

	if err := Logout(); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
}
