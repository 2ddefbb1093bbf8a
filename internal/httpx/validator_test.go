package httpx

import (
	"testing"
)

type credentialsInput struct {
	Username string `validate:"required,username"`
	Password string `validate:"required"`
}

func TestValidateStruct_Valid(t *testing.T) {
	input := credentialsInput{Username: "alice_01", Password: "pw1"}

	if details := ValidateStruct(input); details != nil {
		t.Errorf("Expected no validation errors, got %v", details)
	}
}

func TestValidateStruct_MissingFields(t *testing.T) {
	input := credentialsInput{}

	details := ValidateStruct(input)
	if len(details) != 2 {
		t.Fatalf("Expected 2 validation errors, got %d", len(details))
	}
	if details[0].Field != "username" {
		t.Errorf("Expected first error on username, got %s", details[0].Field)
	}
}

func TestValidateStruct_UsernameRule(t *testing.T) {
	tests := []struct {
		name     string
		username string
		valid    bool
	}{
		{"minimum length", "abc", true},
		{"underscore and digits", "user_42", true},
		{"too short", "ab", false},
		{"space", "bad name", false},
		{"punctuation", "name!", false},
		{"hyphen", "user-name", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := credentialsInput{Username: tt.username, Password: "pw"}
			details := ValidateStruct(input)
			if tt.valid && details != nil {
				t.Errorf("Expected %q to be valid, got %v", tt.username, details)
			}
			if !tt.valid && details == nil {
				t.Errorf("Expected %q to be rejected", tt.username)
			}
		})
	}
}
