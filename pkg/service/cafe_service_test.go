package service

import (
	"testing"

	"github.com/krownhq/krown-cli/pkg/api"
)

func TestNewCafeService(t *testing.T) {
	service := NewCafeService()
	if service == nil {
		t.Error("NewCafeService returned nil")
	}
}

func validCafeInput() api.CreateCafeInput {
	return api.CreateCafeInput{
		CafeName:     "Beanline",
		CafeLocation: "Indiranagar, Bangalore",
		CafeMobileNo: "+919876543210",
		CafeUpiID:    "beanline@upi",
		OpeningTime:  "09:00",
		ClosingTime:  "23:00",
	}
}

func TestValidateCafeInput_Valid(t *testing.T) {
	if err := validateCafeInput(validCafeInput()); err != nil {
		t.Errorf("Valid input rejected: %v", err)
	}

	// Seconds are allowed in operating hours
	input := validCafeInput()
	input.OpeningTime = "09:00:00"
	if err := validateCafeInput(input); err != nil {
		t.Errorf("HH:MM:SS time rejected: %v", err)
	}
}

func TestValidateCafeInput_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*api.CreateCafeInput)
	}{
		{"short name", func(i *api.CreateCafeInput) { i.CafeName = "ab" }},
		{"short location", func(i *api.CreateCafeInput) { i.CafeLocation = "blr" }},
		{"short mobile", func(i *api.CreateCafeInput) { i.CafeMobileNo = "12345" }},
		{"non-numeric mobile", func(i *api.CreateCafeInput) { i.CafeMobileNo = "+91abcdefghij" }},
		{"short upi", func(i *api.CreateCafeInput) { i.CafeUpiID = "a@b" }},
		{"bad opening time", func(i *api.CreateCafeInput) { i.OpeningTime = "25:00" }},
		{"bad closing time", func(i *api.CreateCafeInput) { i.ClosingTime = "9pm" }},
	}

	for _, tt := range tests {
		input := validCafeInput()
		tt.mutate(&input)
		if err := validateCafeInput(input); err == nil {
			t.Errorf("%s: expected validation error, got nil", tt.name)
		}
	}
}

func TestValidateCafeUserInput(t *testing.T) {
	valid := api.CreateCafeUserInput{
		UserName:      "asha",
		UserEmail:     "asha@example.com",
		LoginUserName: "asha01",
		PasswordHash:  "secret1",
		CafeID:        "c1",
	}
	if err := validateCafeUserInput(valid); err != nil {
		t.Errorf("Valid user rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*api.CreateCafeUserInput)
	}{
		{"name too short", func(i *api.CreateCafeUserInput) { i.UserName = "ab" }},
		{"name too long", func(i *api.CreateCafeUserInput) { i.UserName = "averyverylongname" }},
		{"bad email", func(i *api.CreateCafeUserInput) { i.UserEmail = "not-an-email" }},
		{"bad mobile", func(i *api.CreateCafeUserInput) { i.UserMobileNo = "12-34" }},
		{"login too short", func(i *api.CreateCafeUserInput) { i.LoginUserName = "ab" }},
		{"short password", func(i *api.CreateCafeUserInput) { i.PasswordHash = "12345" }},
		{"missing cafe", func(i *api.CreateCafeUserInput) { i.CafeID = "" }},
	}

	for _, tt := range tests {
		input := valid
		tt.mutate(&input)
		if err := validateCafeUserInput(input); err == nil {
			t.Errorf("%s: expected validation error, got nil", tt.name)
		}
	}
}
