package utils

import "testing"

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"empty is a no-op", "", false},
		{"plain address", "dana@example.com", false},
		{"subdomain", "dana@mail.example.ca", false},
		{"plus tag", "dana+quotes@example.com", false},
		{"bare word", "x", true},
		{"missing domain dot", "dana@example", true},
		{"missing local part", "@example.com", true},
		{"missing domain", "dana@", true},
		{"embedded space", "dana smith@example.com", true},
		{"double at", "dana@@example.com", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEmail(%q) error = %v, wantErr %v", tt.email, err, tt.wantErr)
			}
			if err != nil && err != ErrInvalidEmail {
				t.Errorf("ValidateEmail(%q) returned %v, want ErrInvalidEmail", tt.email, err)
			}
		})
	}
}

func TestCleanEmail(t *testing.T) {
	got, err := CleanEmail("  Dana@Example.COM ")
	if err != nil {
		t.Fatalf("CleanEmail error: %v", err)
	}
	if got != "dana@example.com" {
		t.Errorf("CleanEmail = %q, want dana@example.com", got)
	}
	if _, err := CleanEmail("not-an-address"); err != ErrInvalidEmail {
		t.Errorf("CleanEmail(invalid) error = %v, want ErrInvalidEmail", err)
	}
}
