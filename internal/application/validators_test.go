package application

import (
	"strings"
	"testing"
)

func TestValidateEmail(t *testing.T) {
	v := &Validator{}

	tests := []struct {
		email   string
		wantErr bool
	}{
		{"donor@example.org", false},
		{"first.last+tag@sub.example.co.in", false},
		{"", true},
		{"not-an-email", true},
		{"missing@tld", true},
	}

	for _, tt := range tests {
		err := v.ValidateEmail(tt.email)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateEmail(%q) error = %v, wantErr %v", tt.email, err, tt.wantErr)
		}
	}
}

func TestValidatePhone(t *testing.T) {
	v := &Validator{}

	tests := []struct {
		phone   string
		wantErr bool
	}{
		{"+919876543210", false},
		{"98765 43210", false},
		{"(022) 2745-1234", false},
		{"", true},
		{"12345", true},
		{"abcdefghij", true},
	}

	for _, tt := range tests {
		err := v.ValidatePhone(tt.phone)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePhone(%q) error = %v, wantErr %v", tt.phone, err, tt.wantErr)
		}
	}
}

func TestValidateContactRequestCollectsAllErrors(t *testing.T) {
	v := &Validator{}

	errs := v.ValidateContactRequest("", "bad-email", "123", "")
	if len(errs) != 4 {
		t.Fatalf("expected 4 errors, got %d: %v", len(errs), errs)
	}

	errs = v.ValidateContactRequest("Asha Patil", "asha@example.org", "", "I would like to volunteer at the next camp.")
	if len(errs) != 0 {
		t.Fatalf("expected no errors for a valid request without phone, got %v", errs)
	}
}

func TestValidateMessageBounds(t *testing.T) {
	v := &Validator{}

	if err := v.ValidateMessage(strings.Repeat("a", 2001)); err == nil {
		t.Error("overlong message should be rejected")
	}
	if err := v.ValidateMessage("   "); err == nil {
		t.Error("whitespace-only message should be rejected")
	}
	if err := v.ValidateMessage("Hello"); err != nil {
		t.Errorf("valid message rejected: %v", err)
	}
}
