package intake

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"plumber-backend/constants"
	"plumber-backend/logger"
	"plumber-backend/middleware"
	areaModel "plumber-backend/models/area"
	bookingModel "plumber-backend/models/booking"
	contactModel "plumber-backend/models/contact"
	serviceModel "plumber-backend/models/service"
	"plumber-backend/services/notify"
	"plumber-backend/types"
	intakeTypes "plumber-backend/types/intake"
	"plumber-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// IntakeController handles the public submission forms: bookings, contact
// messages and feedback. Records persist even when notifications fail.
type IntakeController struct {
	DB       *gorm.DB
	Logger   *logger.AsyncLogger
	Notifier *notify.Notifier
}

func NewIntakeController(db *gorm.DB, asyncLogger *logger.AsyncLogger, notifier *notify.Notifier) *IntakeController {
	return &IntakeController{
		DB:       db,
		Logger:   asyncLogger,
		Notifier: notifier,
	}
}

// activeServiceArea checks an optional area reference against the active
// rows. A missing or inactive area is a field error, not an FK blowup.
func activeServiceArea(db *gorm.DB, areaID *uint) error {
	if areaID == nil {
		return nil
	}
	var area areaModel.ServiceArea
	if err := db.Where("id = ? AND is_active = ?", *areaID, true).First(&area).Error; err != nil {
		return errors.New("Selected service area is not available")
	}
	return nil
}

// parsePreferredDate accepts RFC3339 and the datetime-local format the
// booking form posts.
func parsePreferredDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.ParseInLocation("2006-01-02T15:04", raw, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date format: %q", raw)
}

// StoreBooking validates and persists a booking request, then dispatches
// confirmation and admin notifications.
func (ic *IntakeController) StoreBooking(c *fiber.Ctx) error {
	var req intakeTypes.BookingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return badRequest(c, "Invalid request body")
	}

	if req.CustomerName == "" || req.Email == "" || req.Address == "" || req.Description == "" {
		return badRequest(c, "Name, email, address and description are required")
	}
	email, err := utils.CleanEmail(req.Email)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if req.ServiceID == 0 {
		return badRequest(c, "A service must be selected")
	}
	if !constants.IsValidUrgency(req.Urgency) {
		return badRequest(c, "Invalid urgency level")
	}

	phone, err := utils.CleanPhone(req.Phone)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if phone == "" {
		return badRequest(c, "Phone number is required")
	}

	preferred, err := parsePreferredDate(req.PreferredDate)
	if err != nil {
		return badRequest(c, "Invalid preferred date")
	}
	if err := utils.ValidatePreferredDate(preferred); err != nil {
		return badRequest(c, err.Error())
	}

	var service serviceModel.Service
	if err := ic.DB.Where("id = ? AND is_active = ?", req.ServiceID, true).First(&service).Error; err != nil {
		return badRequest(c, "Selected service is not available")
	}
	if err := activeServiceArea(ic.DB, req.ServiceAreaID); err != nil {
		return badRequest(c, err.Error())
	}

	booking := bookingModel.Booking{
		CustomerID:    middleware.OptionalProfileID(c, ic.DB),
		CustomerName:  req.CustomerName,
		Email:         email,
		Phone:         phone,
		Address:       req.Address,
		ServiceID:     req.ServiceID,
		ServiceAreaID: req.ServiceAreaID,
		Urgency:       req.Urgency,
		PreferredDate: preferred,
		Description:   req.Description,
		Status:        bookingModel.BookingStatusPending,
	}

	if err := ic.DB.Create(&booking).Error; err != nil {
		logger.Error("Failed to create booking", err)
		return internalError(c)
	}
	booking.Service = service

	result := ic.Notifier.BookingCreated(&booking)
	for _, msg := range result.Errors {
		logger.Warning("Booking notification: " + msg)
	}
	logger.Success(fmt.Sprintf("Booking #%d created for %s", booking.ID, booking.Email))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Your booking request has been received. We will contact you shortly to confirm.",
		Data: intakeTypes.SubmissionResponse{
			ID:        booking.ID,
			EmailSent: result.CustomerEmailSent,
		},
	})
}

// StoreContact persists a contact form message and dispatches
// notifications.
func (ic *IntakeController) StoreContact(c *fiber.Ctx) error {
	var req intakeTypes.ContactCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return badRequest(c, "Invalid request body")
	}

	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		return badRequest(c, "Name, email, subject and message are required")
	}
	email, err := utils.CleanEmail(req.Email)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := activeServiceArea(ic.DB, req.ServiceAreaID); err != nil {
		return badRequest(c, err.Error())
	}

	priority := req.Priority
	if priority == "" {
		priority = constants.PriorityMedium
	}
	if !constants.IsValidPriority(priority) {
		return badRequest(c, "Invalid priority")
	}

	message := contactModel.ContactMessage{
		Name:          req.Name,
		Email:         email,
		Subject:       req.Subject,
		Message:       req.Message,
		ServiceAreaID: req.ServiceAreaID,
		Priority:      priority,
	}

	if req.Phone != "" {
		phone, err := utils.CleanPhone(req.Phone)
		if err != nil {
			return badRequest(c, err.Error())
		}
		message.Phone = &phone
	}

	if err := ic.DB.Create(&message).Error; err != nil {
		logger.Error("Failed to create contact message", err)
		return internalError(c)
	}

	result := ic.Notifier.ContactCreated(&message)
	for _, msg := range result.Errors {
		logger.Warning("Contact notification: " + msg)
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Thank you for reaching out. We will get back to you soon.",
		Data: intakeTypes.SubmissionResponse{
			ID:        message.ID,
			EmailSent: result.CustomerEmailSent,
		},
	})
}

// StoreFeedback accepts a customer testimonial. Submissions enter
// moderation unapproved and never appear publicly until staff approve
// them.
func (ic *IntakeController) StoreFeedback(c *fiber.Ctx) error {
	var req intakeTypes.FeedbackCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return badRequest(c, "Invalid request body")
	}

	if req.CustomerName == "" || req.Comment == "" {
		return badRequest(c, "Name and comment are required")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return badRequest(c, "Rating must be between 1 and 5")
	}
	email, err := utils.CleanEmail(req.Email)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if req.ServiceID != nil {
		var service serviceModel.Service
		if err := ic.DB.Where("id = ? AND is_active = ?", *req.ServiceID, true).First(&service).Error; err != nil {
			return badRequest(c, "Selected service is not available")
		}
	}
	if err := activeServiceArea(ic.DB, req.LocationID); err != nil {
		return badRequest(c, err.Error())
	}

	phone := req.Phone
	if phone != "" {
		cleaned, err := utils.CleanPhone(phone)
		if err != nil {
			return badRequest(c, err.Error())
		}
		phone = cleaned
	}

	testimonial := serviceModel.Testimonial{
		CustomerName: req.CustomerName,
		Email:        email,
		Phone:        phone,
		Title:        req.Title,
		ServiceID:    req.ServiceID,
		LocationID:   req.LocationID,
		Rating:       req.Rating,
		Comment:      req.Comment,
		IsApproved:   false,
	}

	if err := ic.DB.Create(&testimonial).Error; err != nil {
		logger.Error("Failed to create feedback", err)
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Thank you for your feedback! It will appear once reviewed.",
		Data: intakeTypes.SubmissionResponse{
			ID: testimonial.ID,
		},
	})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
		Status:  fiber.StatusBadRequest,
		Message: msg,
		Data:    nil,
	})
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
		Status:  fiber.StatusInternalServerError,
		Message: "Internal server error",
		Data:    nil,
	})
}
