package admin

import (
	"fmt"

	"plumber-backend/logger"
	"plumber-backend/middleware"
	bookingModel "plumber-backend/models/booking"
	contactModel "plumber-backend/models/contact"
	customerModel "plumber-backend/models/customer"
	notificationModel "plumber-backend/models/notification"
	quoteModel "plumber-backend/models/quote"
	bookingEvent "plumber-backend/services/booking_event"
	"plumber-backend/types"
	staffTypes "plumber-backend/types/staff"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminController serves the staff endpoints: status workflows, inbox
// management and customer notes. Routes are gated by RequireStaff.
type AdminController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewAdminController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *AdminController {
	return &AdminController{
		DB:     db,
		Logger: asyncLogger,
	}
}

// Bookings lists all bookings, newest first, optionally by status.
func (ac *AdminController) Bookings(c *fiber.Ctx) error {
	query := ac.DB.Preload("Service").Preload("ServiceArea").Order("created_at desc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	var bookings []bookingModel.Booking
	if err := query.Find(&bookings).Error; err != nil {
		logger.Error("Failed to load bookings", err)
		return internalError(c)
	}
	return ok(c, "Bookings retrieved successfully", bookings)
}

// UpdateBookingStatus applies a workflow transition and records it.
func (ac *AdminController) UpdateBookingStatus(c *fiber.Ctx) error {
	staff, _ := middleware.CurrentUser(c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return notFound(c, "Booking not found")
	}

	var req staffTypes.BookingStatusRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return badRequest(c, "Invalid request body")
	}

	next := bookingModel.BookingStatus(req.Status)
	if !next.IsValid() {
		return badRequest(c, "Unknown booking status")
	}

	var booking bookingModel.Booking
	if err := ac.DB.First(&booking, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return notFound(c, "Booking not found")
		}
		logger.Error("Failed to load booking", err)
		return internalError(c)
	}

	if err := booking.SetStatus(next); err != nil {
		return badRequest(c, fmt.Sprintf("Cannot move booking from %s to %s", booking.Status, next))
	}

	err = ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&booking).Updates(map[string]interface{}{
			"status":       booking.Status,
			"is_confirmed": booking.IsConfirmed,
		}).Error; err != nil {
			return err
		}
		return bookingEvent.RecordStatusEvent(tx, booking.ID, booking.Status, staff.Email)
	})
	if err != nil {
		logger.Error("Failed to update booking status", err)
		return internalError(c)
	}

	logger.Info(fmt.Sprintf("Booking #%d moved to %s by %s", booking.ID, booking.Status, staff.Email))
	return ok(c, "Booking status updated successfully", booking)
}

// Quotes lists all quote requests, newest first, optionally by status.
func (ac *AdminController) Quotes(c *fiber.Ctx) error {
	query := ac.DB.Preload("Service").Order("created_at desc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	var quotes []quoteModel.QuoteRequest
	if err := query.Find(&quotes).Error; err != nil {
		logger.Error("Failed to load quotes", err)
		return internalError(c)
	}
	return ok(c, "Quotes retrieved successfully", quotes)
}

// UpdateQuoteStatus applies a workflow transition. Moving to quoted
// requires the final price.
func (ac *AdminController) UpdateQuoteStatus(c *fiber.Ctx) error {
	staff, _ := middleware.CurrentUser(c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return notFound(c, "Quote not found")
	}

	var req staffTypes.QuoteStatusRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return badRequest(c, "Invalid request body")
	}

	next := quoteModel.QuoteStatus(req.Status)
	if !next.IsValid() {
		return badRequest(c, "Unknown quote status")
	}
	if next == quoteModel.QuoteStatusQuoted && req.FinalQuote == nil {
		return badRequest(c, "A final quote amount is required")
	}

	var quote quoteModel.QuoteRequest
	if err := ac.DB.First(&quote, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return notFound(c, "Quote not found")
		}
		logger.Error("Failed to load quote", err)
		return internalError(c)
	}

	if err := quote.SetStatus(next); err != nil {
		return badRequest(c, fmt.Sprintf("Cannot move quote from %s to %s", quote.Status, next))
	}

	updates := map[string]interface{}{"status": quote.Status}
	if req.FinalQuote != nil {
		quote.FinalQuote = req.FinalQuote
		updates["final_quote"] = req.FinalQuote
	}
	if err := ac.DB.Model(&quote).Updates(updates).Error; err != nil {
		logger.Error("Failed to update quote status", err)
		return internalError(c)
	}

	logger.Info(fmt.Sprintf("Quote #%d moved to %s by %s", quote.ID, quote.Status, staff.Email))
	return ok(c, "Quote status updated successfully", quote)
}

// Contacts lists contact messages, unresolved first, newest first.
func (ac *AdminController) Contacts(c *fiber.Ctx) error {
	query := ac.DB.Preload("ServiceArea").Order("is_resolved asc, created_at desc")
	if c.Query("unread") == "true" {
		query = query.Where("is_read = ?", false)
	}
	var messages []contactModel.ContactMessage
	if err := query.Find(&messages).Error; err != nil {
		logger.Error("Failed to load contact messages", err)
		return internalError(c)
	}
	return ok(c, "Contact messages retrieved successfully", messages)
}

func (ac *AdminController) setContactFlag(c *fiber.Ctx, column string, msg string) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return notFound(c, "Contact message not found")
	}

	var message contactModel.ContactMessage
	if err := ac.DB.First(&message, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return notFound(c, "Contact message not found")
		}
		logger.Error("Failed to load contact message", err)
		return internalError(c)
	}

	updates := map[string]interface{}{column: true}
	if column == "is_resolved" {
		// resolving implies the message was read
		updates["is_read"] = true
	}
	if err := ac.DB.Model(&message).Updates(updates).Error; err != nil {
		logger.Error("Failed to update contact message", err)
		return internalError(c)
	}
	return ok(c, msg, message)
}

// MarkContactRead flags a contact message as read.
func (ac *AdminController) MarkContactRead(c *fiber.Ctx) error {
	return ac.setContactFlag(c, "is_read", "Contact message marked as read")
}

// ResolveContact flags a contact message as resolved.
func (ac *AdminController) ResolveContact(c *fiber.Ctx) error {
	return ac.setContactFlag(c, "is_resolved", "Contact message resolved")
}

// Notifications lists admin notifications with the unread count.
func (ac *AdminController) Notifications(c *fiber.Ctx) error {
	query := ac.DB.Order("created_at desc")
	if c.Query("unread") == "true" {
		query = query.Where("is_read = ?", false)
	}
	var notifications []notificationModel.AdminNotification
	if err := query.Limit(100).Find(&notifications).Error; err != nil {
		logger.Error("Failed to load notifications", err)
		return internalError(c)
	}

	var unread int64
	if err := ac.DB.Model(&notificationModel.AdminNotification{}).
		Where("is_read = ?", false).Count(&unread).Error; err != nil {
		logger.Error("Failed to count notifications", err)
		return internalError(c)
	}

	return ok(c, "Notifications retrieved successfully", fiber.Map{
		"notifications": notifications,
		"unread_count":  unread,
	})
}

// MarkNotificationRead flags one notification as read.
func (ac *AdminController) MarkNotificationRead(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return notFound(c, "Notification not found")
	}

	var notification notificationModel.AdminNotification
	if err := ac.DB.First(&notification, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return notFound(c, "Notification not found")
		}
		logger.Error("Failed to load notification", err)
		return internalError(c)
	}

	if err := ac.DB.Model(&notification).Update("is_read", true).Error; err != nil {
		logger.Error("Failed to update notification", err)
		return internalError(c)
	}
	return ok(c, "Notification marked as read", notification)
}

// MarkAllNotificationsRead flags every unread notification as read.
func (ac *AdminController) MarkAllNotificationsRead(c *fiber.Ctx) error {
	result := ac.DB.Model(&notificationModel.AdminNotification{}).
		Where("is_read = ?", false).Update("is_read", true)
	if result.Error != nil {
		logger.Error("Failed to update notifications", result.Error)
		return internalError(c)
	}
	return ok(c, "All notifications marked as read", fiber.Map{
		"updated": result.RowsAffected,
	})
}

// AddCustomerNote attaches a staff note to a customer profile.
func (ac *AdminController) AddCustomerNote(c *fiber.Ctx) error {
	staff, _ := middleware.CurrentUser(c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return notFound(c, "Customer not found")
	}

	var req staffTypes.NoteCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return badRequest(c, "Invalid request body")
	}
	if req.Note == "" {
		return badRequest(c, "Note text is required")
	}

	var profile customerModel.CustomerProfile
	if err := ac.DB.First(&profile, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return notFound(c, "Customer not found")
		}
		logger.Error("Failed to load customer", err)
		return internalError(c)
	}

	note := customerModel.CustomerNote{
		CustomerID: profile.ID,
		Note:       req.Note,
		CreatedBy:  staff.ID,
		IsInternal: true,
	}
	if req.IsInternal != nil {
		note.IsInternal = *req.IsInternal
	}

	if err := ac.DB.Create(&note).Error; err != nil {
		logger.Error("Failed to create note", err)
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Note added successfully",
		Data:    note,
	})
}

func ok(c *fiber.Ctx, msg string, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: msg,
		Data:    data,
	})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
		Status:  fiber.StatusBadRequest,
		Message: msg,
		Data:    nil,
	})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
		Status:  fiber.StatusNotFound,
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
