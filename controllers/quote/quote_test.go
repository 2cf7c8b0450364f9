package quote

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"plumber-backend/types"

	"github.com/gofiber/fiber/v2"
)

func TestStoreRejectsMalformedEmail(t *testing.T) {
	qc := NewQuoteController(nil, nil, nil)
	app := fiber.New()
	app.Post("/api/quotes", qc.Store)

	for _, email := range []string{"x", "dana@example", "@example.com"} {
		t.Run(email, func(t *testing.T) {
			body := `{"customer_name":"Dana","email":"` + email + `","phone":"(506) 234-5678","address":"45 King St","service_id":1}`
			req := httptest.NewRequest("POST", "/api/quotes", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req, -1)
			if err != nil {
				t.Fatalf("POST /api/quotes: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != fiber.StatusBadRequest {
				t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusBadRequest)
			}
			var parsed types.ApiResponse
			if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if parsed.Message != "Enter a valid email address." {
				t.Errorf("message = %q, want email validation error", parsed.Message)
			}
		})
	}
}
