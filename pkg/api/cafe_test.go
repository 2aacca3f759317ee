package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/krownhq/krown-cli/pkg/client"
)

func TestListCafes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[
			{"cafe_id":"c1","cafe_name":"Beanline","cafe_location":"Indiranagar","cafe_mobile_no":"+919876543210","cafe_upi_id":"beanline@upi","opening_time":"09:00","closing_time":"23:00"},
			{"cafe_id":"c2","cafe_name":"Roast House","cafe_location":"Koramangala","cafe_mobile_no":"+919812345678","cafe_upi_id":"roast@upi","opening_time":"08:30","closing_time":"22:00"}
		]}`))
	}))
	defer server.Close()
	client.SetBaseURL(server.URL)

	cafes, err := ListCafes()
	if err != nil {
		t.Fatalf("ListCafes failed: %v", err)
	}
	if len(cafes) != 2 {
		t.Fatalf("Expected 2 cafes, got %d", len(cafes))
	}
	if cafes[0].CafeName != "Beanline" {
		t.Errorf("Expected Beanline, got %s", cafes[0].CafeName)
	}
}

func TestDeleteCafe_SendsIDInBody(t *testing.T) {
	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("Expected DELETE, got %s", r.Method)
		}
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Cafe deleted"}`))
	}))
	defer server.Close()
	client.SetBaseURL(server.URL)

	if err := DeleteCafe("c1"); err != nil {
		t.Fatalf("DeleteCafe failed: %v", err)
	}
	if !strings.Contains(gotBody, `"cafe_id":"c1"`) {
		t.Errorf("Expected cafe_id in request body, got %s", gotBody)
	}
}

func TestCreateCafeUser_BackendRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"Login username already taken"}`))
	}))
	defer server.Close()
	client.SetBaseURL(server.URL)

	err := CreateCafeUser(CreateCafeUserInput{
		UserName:      "asha",
		UserEmail:     "asha@example.com",
		LoginUserName: "asha01",
		PasswordHash:  "secret1",
		CafeID:        "c1",
	})
	if err == nil {
		t.Fatal("Expected error for conflicting username")
	}
	if got := Message(err, "Failed to create user"); got != "Login username already taken" {
		t.Errorf("Expected backend message verbatim, got %q", got)
	}
}

func TestListCafeUsers_Path(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()
	client.SetBaseURL(server.URL)

	users, err := ListCafeUsers("c1")
	if err != nil {
		t.Fatalf("ListCafeUsers failed: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("Expected no users, got %d", len(users))
	}
	if !strings.Contains(gotPath, "c1") {
		t.Errorf("Expected cafe id in path, got %s", gotPath)
	}
}
