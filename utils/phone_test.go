package utils

import "testing"

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		wantErr bool
	}{
		{"empty is a no-op", "", false},
		{"formatted national", "(506) 234-5678", false},
		{"plain national", "5062345678", false},
		{"with trunk prefix", "1 506 234 5678", false},
		{"with country code", "+1 506-234-5678", false},
		{"unassigned area code", "455 334-6677", true},
		{"area code starting with zero", "(016) 234-5678", true},
		{"too short", "506-234-567", true},
		{"not a number", "call me maybe", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePhone(tt.phone)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePhone(%q) error = %v, wantErr %v", tt.phone, err, tt.wantErr)
			}
			if err != nil && err != ErrInvalidPhone {
				t.Errorf("ValidatePhone(%q) returned %v, want ErrInvalidPhone", tt.phone, err)
			}
		})
	}
}

func TestCleanPhone(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		want    string
		wantErr bool
	}{
		{"empty stays empty", "", "", false},
		{"formatted national", "(506) 234-5678", "+15062345678", false},
		{"with trunk prefix", "1 506 234 5678", "+15062345678", false},
		{"already E.164", "+15062345678", "+15062345678", false},
		{"invalid rejected", "455 334-6677", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CleanPhone(tt.phone)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CleanPhone(%q) error = %v, wantErr %v", tt.phone, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("CleanPhone(%q) = %q, want %q", tt.phone, got, tt.want)
			}
		})
	}
}

func TestNormalizeLoose(t *testing.T) {
	tests := []struct {
		phone string
		want  string
	}{
		{"", ""},
		{"5062345678", "+15062345678"},
		{"1 (506) 234-5678", "+15062345678"},
		{"+15062345678", "+15062345678"},
		{"0123", "0123"},
		{"hello", "hello"},
	}
	for _, tt := range tests {
		if got := NormalizeLoose(tt.phone); got != tt.want {
			t.Errorf("NormalizeLoose(%q) = %q, want %q", tt.phone, got, tt.want)
		}
	}
}
