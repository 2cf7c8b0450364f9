package middleware

import "testing"

func TestLoggableBody(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
		want string
	}{
		{"login body redacted", "/api/auth/login", `{"email":"dana@example.com","password":"hunter2"}`, "[redacted]"},
		{"register body redacted", "/api/auth/register", `{"email":"dana@example.com","password":"hunter2"}`, "[redacted]"},
		{"booking body kept", "/api/bookings", `{"name":"Dana"}`, `{"name":"Dana"}`},
		{"profile body kept", "/api/portal/profile", `{"phone":"(506) 234-5678"}`, `{"phone":"(506) 234-5678"}`},
		{"empty body on open route", "/api/services", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := loggableBody(tt.path, []byte(tt.body))
			if got != tt.want {
				t.Errorf("loggableBody(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
