package authflow

import "testing"

// TestNormalizePhone validates domestic prefixing and pass-through
func TestNormalizePhone(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect string
		valid  bool
	}{
		{"bare domestic", "9876543210", "+919876543210", true},
		{"already international", "+447700900000", "+447700900000", true},
		{"domestic with plus", "+919876543210", "+919876543210", true},
		{"trunk zero dropped", "09876543210", "+919876543210", true},
		{"spaces and hyphens stripped", " 98765 432-10 ", "+919876543210", true},
		{"empty", "", "", false},
		{"too short", "98765", "", false},
		{"letters", "98765abcde", "", false},
		{"plus but too short", "+1234", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizePhone(tc.input)
			if tc.valid {
				if err != nil {
					t.Fatalf("NormalizePhone(%q) unexpected error: %v", tc.input, err)
				}
				if got != tc.expect {
					t.Errorf("NormalizePhone(%q) = %q, want %q", tc.input, got, tc.expect)
				}
			} else if err == nil {
				t.Errorf("NormalizePhone(%q) should fail, got %q", tc.input, got)
			}
		})
	}
}

// TestValidateOTP validates code-length rules
func TestValidateOTP(t *testing.T) {
	for _, code := range []string{"123456", "1234567"} {
		if err := ValidateOTP(code); err != nil {
			t.Errorf("ValidateOTP(%q) should pass: %v", code, err)
		}
	}
	for _, code := range []string{"", "12345", "12345678", "12345a", "abcdef"} {
		if err := ValidateOTP(code); err == nil {
			t.Errorf("ValidateOTP(%q) should fail", code)
		}
	}
}

// TestValidateRecoveryPass validates secret-length rules
func TestValidateRecoveryPass(t *testing.T) {
	if err := ValidateRecoveryPass("secret-pass"); err != nil {
		t.Errorf("Valid recovery pass rejected: %v", err)
	}
	for _, pass := range []string{"", "12345", "   "} {
		if err := ValidateRecoveryPass(pass); err == nil {
			t.Errorf("ValidateRecoveryPass(%q) should fail", pass)
		}
	}
}
