package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/krownhq/krown-cli/pkg/client"
)

func TestListPushUsers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/push/users" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"users":[{"user_id":"u1","user_name":"Asha","user_mobile_no":"+919876543210"}]}`))
	}))
	defer server.Close()
	client.SetBaseURL(server.URL)

	users, err := ListPushUsers()
	if err != nil {
		t.Fatalf("ListPushUsers failed: %v", err)
	}
	if len(users) != 1 || users[0].UserName != "Asha" {
		t.Errorf("Unexpected users: %+v", users)
	}
}

func TestSendPush(t *testing.T) {
	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/push/send" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"sent":1}`))
	}))
	defer server.Close()
	client.SetBaseURL(server.URL)

	result, err := SendPush(PushMessage{
		UserID: "u1",
		Title:  "Table ready",
		Body:   "Your booking starts in 15 minutes",
		Data:   map[string]interface{}{"booking_id": "b1"},
	})
	if err != nil {
		t.Fatalf("SendPush failed: %v", err)
	}
	if result["sent"] == nil {
		t.Error("Expected sent count in response")
	}
	if !strings.Contains(gotBody, `"user_id":"u1"`) {
		t.Errorf("Expected user_id in payload, got %s", gotBody)
	}
}

func TestBroadcastPush_OmitsUserID(t *testing.T) {
	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/push/broadcast" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"sent":42}`))
	}))
	defer server.Close()
	client.SetBaseURL(server.URL)

	_, err := BroadcastPush(PushMessage{
		UserID: "should-be-dropped",
		Title:  "Weekend offer",
		Body:   "Flat 20% off on bookings",
	})
	if err != nil {
		t.Fatalf("BroadcastPush failed: %v", err)
	}
	if strings.Contains(gotBody, "user_id") {
		t.Errorf("Broadcast payload must not target a single user, got %s", gotBody)
	}
}
