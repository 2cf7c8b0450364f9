package intake

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	areaModel "plumber-backend/models/area"
	bookingModel "plumber-backend/models/booking"
	contactModel "plumber-backend/models/contact"
	customerModel "plumber-backend/models/customer"
	serviceModel "plumber-backend/models/service"
	"plumber-backend/services/notify"
	"plumber-backend/types"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type noopEmail struct{}

func (noopEmail) Send(to, subject, textBody, htmlBody string) error { return nil }

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&customerModel.User{},
		&customerModel.CustomerProfile{},
		&areaModel.ServiceArea{},
		&serviceModel.Service{},
		&serviceModel.Testimonial{},
		&bookingModel.Booking{},
		&contactModel.ContactMessage{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// seedCatalog inserts one active service, one active area and one
// inactive area, returning them in that order.
func seedCatalog(t *testing.T, db *gorm.DB) (serviceModel.Service, areaModel.ServiceArea, areaModel.ServiceArea) {
	t.Helper()
	service := serviceModel.Service{
		Name:        "Drain Cleaning",
		Description: "Clog removal and drain maintenance",
		PriceRange:  "$100 - $300",
		IsActive:    true,
	}
	if err := db.Create(&service).Error; err != nil {
		t.Fatalf("seed service: %v", err)
	}
	active := areaModel.ServiceArea{
		Name:    "Downtown",
		Phone:   "+15062345678",
		Email:   "downtown@example.com",
		Address: "1 Main St",
	}
	if err := db.Create(&active).Error; err != nil {
		t.Fatalf("seed active area: %v", err)
	}
	inactive := areaModel.ServiceArea{
		Name:    "Old Quarter",
		Phone:   "+15062345678",
		Email:   "oldquarter@example.com",
		Address: "2 Side St",
	}
	if err := db.Create(&inactive).Error; err != nil {
		t.Fatalf("seed inactive area: %v", err)
	}
	if err := db.Model(&inactive).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate area: %v", err)
	}
	return service, active, inactive
}

func testApp(db *gorm.DB) *fiber.App {
	ic := NewIntakeController(db, nil, notify.NewNotifierWithSenders(db, noopEmail{}, nil, ""))
	app := fiber.New()
	app.Post("/api/bookings", ic.StoreBooking)
	app.Post("/api/contact", ic.StoreContact)
	app.Post("/api/feedback", ic.StoreFeedback)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body []byte) (int, types.ApiResponse) {
	t.Helper()
	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	defer resp.Body.Close()
	var parsed types.ApiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, parsed
}

func bookingPayload(serviceID uint, areaID *uint, email string) []byte {
	payload := map[string]any{
		"customer_name":  "Dana Leblanc",
		"email":          email,
		"phone":          "(506) 234-5678",
		"address":        "45 King St, Moncton",
		"service_id":     serviceID,
		"urgency":        "medium",
		"preferred_date": time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		"description":    "Kitchen sink drains slowly",
	}
	if areaID != nil {
		payload["service_area_id"] = *areaID
	}
	body, _ := json.Marshal(payload)
	return body
}

func TestIntakeRejectsMalformedEmail(t *testing.T) {
	db := testDB(t)
	service, _, _ := seedCatalog(t, db)
	app := testApp(db)

	tests := []struct {
		name string
		path string
		body []byte
	}{
		{"booking", "/api/bookings", bookingPayload(service.ID, nil, "x")},
		{"contact", "/api/contact", []byte(`{"name":"Dana","email":"dana@example","subject":"Hi","message":"Leaky tap"}`)},
		{"feedback", "/api/feedback", []byte(`{"customer_name":"Dana","email":"@example.com","rating":5,"comment":"Great work"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := postJSON(t, app, tt.path, tt.body)
			if status != fiber.StatusBadRequest {
				t.Fatalf("status = %d, want %d (message %q)", status, fiber.StatusBadRequest, resp.Message)
			}
			if resp.Message != "Enter a valid email address." {
				t.Errorf("message = %q, want email validation error", resp.Message)
			}
		})
	}

	var bookings, messages, testimonials int64
	db.Model(&bookingModel.Booking{}).Count(&bookings)
	db.Model(&contactModel.ContactMessage{}).Count(&messages)
	db.Model(&serviceModel.Testimonial{}).Count(&testimonials)
	if bookings != 0 || messages != 0 || testimonials != 0 {
		t.Errorf("rejected submissions persisted: bookings=%d messages=%d testimonials=%d", bookings, messages, testimonials)
	}
}

func TestIntakeRejectsUnavailableServiceArea(t *testing.T) {
	db := testDB(t)
	service, _, inactive := seedCatalog(t, db)
	app := testApp(db)
	missing := inactive.ID + 100

	tests := []struct {
		name   string
		areaID uint
	}{
		{"inactive area", inactive.ID},
		{"nonexistent area", missing},
	}

	for _, tt := range tests {
		t.Run("booking "+tt.name, func(t *testing.T) {
			status, resp := postJSON(t, app, "/api/bookings", bookingPayload(service.ID, &tt.areaID, "dana@example.com"))
			if status != fiber.StatusBadRequest {
				t.Fatalf("status = %d, want %d (message %q)", status, fiber.StatusBadRequest, resp.Message)
			}
			if resp.Message != "Selected service area is not available" {
				t.Errorf("message = %q, want area availability error", resp.Message)
			}
		})
		t.Run("contact "+tt.name, func(t *testing.T) {
			body := fmt.Appendf(nil, `{"name":"Dana","email":"dana@example.com","subject":"Hi","message":"Leaky tap","service_area_id":%d}`, tt.areaID)
			status, _ := postJSON(t, app, "/api/contact", body)
			if status != fiber.StatusBadRequest {
				t.Fatalf("status = %d, want %d", status, fiber.StatusBadRequest)
			}
		})
	}

	var bookings int64
	db.Model(&bookingModel.Booking{}).Count(&bookings)
	if bookings != 0 {
		t.Errorf("bookings persisted despite bad area: %d", bookings)
	}
}

func TestStoreBookingPersistsWithActiveArea(t *testing.T) {
	db := testDB(t)
	service, active, _ := seedCatalog(t, db)
	app := testApp(db)

	status, resp := postJSON(t, app, "/api/bookings", bookingPayload(service.ID, &active.ID, "Dana@Example.COM"))
	if status != fiber.StatusCreated {
		t.Fatalf("status = %d, want %d (message %q)", status, fiber.StatusCreated, resp.Message)
	}

	var booking bookingModel.Booking
	if err := db.First(&booking).Error; err != nil {
		t.Fatalf("booking not persisted: %v", err)
	}
	if booking.Email != "dana@example.com" {
		t.Errorf("email = %q, want canonicalized lowercase", booking.Email)
	}
	if booking.Phone != "+15062345678" {
		t.Errorf("phone = %q, want E.164", booking.Phone)
	}
	if booking.ServiceAreaID == nil || *booking.ServiceAreaID != active.ID {
		t.Errorf("service area = %v, want %d", booking.ServiceAreaID, active.ID)
	}
	if booking.Status != bookingModel.BookingStatusPending {
		t.Errorf("status = %q, want pending", booking.Status)
	}
}
