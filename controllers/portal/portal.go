package portal

import (
	"fmt"
	"strings"
	"time"

	"plumber-backend/constants"
	"plumber-backend/logger"
	"plumber-backend/middleware"
	bookingModel "plumber-backend/models/booking"
	customerModel "plumber-backend/models/customer"
	quoteModel "plumber-backend/models/quote"
	serviceModel "plumber-backend/models/service"
	bookingEvent "plumber-backend/services/booking_event"
	"plumber-backend/services/notify"
	"plumber-backend/types"
	portalTypes "plumber-backend/types/portal"
	"plumber-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const perPage = 10

// PortalController serves the authenticated customer portal. Every record
// lookup is scoped to the caller: by profile link for portal-created
// records, by email for guest submissions made before the account existed.
// Records outside the scope answer 404, never 403.
type PortalController struct {
	DB       *gorm.DB
	Logger   *logger.AsyncLogger
	Notifier *notify.Notifier
}

func NewPortalController(db *gorm.DB, asyncLogger *logger.AsyncLogger, notifier *notify.Notifier) *PortalController {
	return &PortalController{
		DB:       db,
		Logger:   asyncLogger,
		Notifier: notifier,
	}
}

// profileFor loads the caller's profile, creating an empty one for
// accounts that predate the profile table.
func (pc *PortalController) profileFor(user *customerModel.User) (*customerModel.CustomerProfile, error) {
	var profile customerModel.CustomerProfile
	err := pc.DB.Preload("ServiceArea").Where("user_id = ?", user.ID).First(&profile).Error
	if err == gorm.ErrRecordNotFound {
		profile = customerModel.CustomerProfile{UserID: user.ID}
		if err := pc.DB.Create(&profile).Error; err != nil {
			return nil, err
		}
		return &profile, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (pc *PortalController) bookingScope(profile *customerModel.CustomerProfile, user *customerModel.User) *gorm.DB {
	return pc.DB.Model(&bookingModel.Booking{}).
		Where("customer_id = ? OR email = ?", profile.ID, user.Email)
}

func (pc *PortalController) quoteScope(profile *customerModel.CustomerProfile, user *customerModel.User) *gorm.DB {
	return pc.DB.Model(&quoteModel.QuoteRequest{}).
		Where("customer_id = ? OR email = ?", profile.ID, user.Email)
}

func page(c *fiber.Ctx) (int, int) {
	p := c.QueryInt("page", 1)
	if p < 1 {
		p = 1
	}
	return p, (p - 1) * perPage
}

// Dashboard bundles the portal landing page: profile, recent activity and
// headline counts.
func (pc *PortalController) Dashboard(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)
	profile, err := pc.profileFor(user)
	if err != nil {
		logger.Error("Failed to load profile", err)
		return internalError(c)
	}

	var recentBookings []bookingModel.Booking
	if err := pc.bookingScope(profile, user).Preload("Service").
		Order("created_at desc").Limit(5).Find(&recentBookings).Error; err != nil {
		logger.Error("Failed to load bookings", err)
		return internalError(c)
	}

	var recentQuotes []quoteModel.QuoteRequest
	if err := pc.quoteScope(profile, user).Preload("Service").
		Order("created_at desc").Limit(5).Find(&recentQuotes).Error; err != nil {
		logger.Error("Failed to load quotes", err)
		return internalError(c)
	}

	var upcoming int64
	if err := pc.bookingScope(profile, user).
		Where("status IN ? AND preferred_date >= ?",
			[]string{string(bookingModel.BookingStatusPending), string(bookingModel.BookingStatusConfirmed)},
			time.Now()).
		Count(&upcoming).Error; err != nil {
		logger.Error("Failed to count upcoming bookings", err)
		return internalError(c)
	}

	var pendingQuotes int64
	if err := pc.quoteScope(profile, user).
		Where("status IN ?", []string{
			string(quoteModel.QuoteStatusPending),
			string(quoteModel.QuoteStatusInReview),
			string(quoteModel.QuoteStatusQuoted),
		}).Count(&pendingQuotes).Error; err != nil {
		logger.Error("Failed to count open quotes", err)
		return internalError(c)
	}

	return ok(c, "Dashboard retrieved successfully", fiber.Map{
		"profile":           profile,
		"recent_bookings":   recentBookings,
		"recent_quotes":     recentQuotes,
		"upcoming_bookings": upcoming,
		"open_quotes":       pendingQuotes,
	})
}

// Bookings lists the caller's bookings, newest first, 10 per page.
func (pc *PortalController) Bookings(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)
	profile, err := pc.profileFor(user)
	if err != nil {
		logger.Error("Failed to load profile", err)
		return internalError(c)
	}

	pageNum, offset := page(c)

	var total int64
	if err := pc.bookingScope(profile, user).Count(&total).Error; err != nil {
		logger.Error("Failed to count bookings", err)
		return internalError(c)
	}

	var bookings []bookingModel.Booking
	if err := pc.bookingScope(profile, user).Preload("Service").Preload("ServiceArea").
		Order("created_at desc").Limit(perPage).Offset(offset).
		Find(&bookings).Error; err != nil {
		logger.Error("Failed to load bookings", err)
		return internalError(c)
	}

	return ok(c, "Bookings retrieved successfully", fiber.Map{
		"bookings": bookings,
		"pagination": fiber.Map{
			"page":        pageNum,
			"per_page":    perPage,
			"total":       total,
			"total_pages": (total + perPage - 1) / perPage,
		},
	})
}

func (pc *PortalController) ownedBooking(c *fiber.Ctx, user *customerModel.User, profile *customerModel.CustomerProfile) (*bookingModel.Booking, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var booking bookingModel.Booking
	err = pc.DB.Preload("Service").Preload("ServiceArea").
		Where("id = ? AND (customer_id = ? OR email = ?)", id, profile.ID, user.Email).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// BookingDetail returns one booking with its status history.
func (pc *PortalController) BookingDetail(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)
	profile, err := pc.profileFor(user)
	if err != nil {
		logger.Error("Failed to load profile", err)
		return internalError(c)
	}

	booking, err := pc.ownedBooking(c, user, profile)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return notFound(c, "Booking not found")
		}
		logger.Error("Failed to load booking", err)
		return internalError(c)
	}

	var events []bookingModel.BookingStatusEvent
	if err := pc.DB.Where("booking_id = ?", booking.ID).
		Order("created_at asc").Find(&events).Error; err != nil {
		logger.Error("Failed to load booking history", err)
		return internalError(c)
	}

	return ok(c, "Booking retrieved successfully", fiber.Map{
		"booking": booking,
		"history": events,
	})
}

// CancelBooking cancels a pending or confirmed booking.
func (pc *PortalController) CancelBooking(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)
	profile, err := pc.profileFor(user)
	if err != nil {
		logger.Error("Failed to load profile", err)
		return internalError(c)
	}

	booking, err := pc.ownedBooking(c, user, profile)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return notFound(c, "Booking not found")
		}
		logger.Error("Failed to load booking", err)
		return internalError(c)
	}

	if err := booking.CancelByCustomer(); err != nil {
		return badRequest(c, "This booking can no longer be cancelled. Please call us instead.")
	}

	err = pc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(booking).
			Updates(map[string]interface{}{
				"status":       booking.Status,
				"is_confirmed": booking.IsConfirmed,
			}).Error; err != nil {
			return err
		}
		return bookingEvent.RecordStatusEvent(tx, booking.ID, booking.Status, user.Email)
	})
	if err != nil {
		logger.Error("Failed to cancel booking", err)
		return internalError(c)
	}

	logger.Info(fmt.Sprintf("Booking #%d cancelled by %s", booking.ID, user.Email))
	return ok(c, "Your booking has been cancelled.", booking)
}

// QuickBooking creates a booking from the short portal form, filling the
// contact fields from the caller's profile.
func (pc *PortalController) QuickBooking(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)
	profile, err := pc.profileFor(user)
	if err != nil {
		logger.Error("Failed to load profile", err)
		return internalError(c)
	}

	var req portalTypes.QuickBookingRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return badRequest(c, "Invalid request body")
	}

	if req.ServiceID == 0 {
		return badRequest(c, "A service must be selected")
	}
	if req.Description == "" {
		return badRequest(c, "Please describe the problem")
	}
	if profile.Phone == nil || *profile.Phone == "" {
		return badRequest(c, "Please add a phone number to your profile first")
	}
	address := profile.FullAddress()
	if address == "" {
		return badRequest(c, "Please add your address to your profile first")
	}

	day, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(req.PreferredDate), time.Local)
	if err != nil {
		return badRequest(c, "Invalid preferred date")
	}
	preferred, err := utils.CombineDateSlot(day, req.PreferredTime)
	if err != nil {
		return badRequest(c, "Invalid time slot")
	}
	if err := utils.ValidatePreferredDate(preferred); err != nil {
		return badRequest(c, err.Error())
	}

	var service serviceModel.Service
	if err := pc.DB.Where("id = ? AND is_active = ?", req.ServiceID, true).First(&service).Error; err != nil {
		return badRequest(c, "Selected service is not available")
	}

	urgency := constants.UrgencyMedium
	if req.IsEmergency {
		urgency = constants.UrgencyEmergency
	}

	booking := bookingModel.Booking{
		CustomerID:    &profile.ID,
		CustomerName:  user.FullName(),
		Email:         user.Email,
		Phone:         *profile.Phone,
		Address:       address,
		ServiceID:     req.ServiceID,
		ServiceAreaID: profile.ServiceAreaID,
		Urgency:       urgency,
		PreferredDate: preferred,
		Description:   req.Description,
		Status:        bookingModel.BookingStatusPending,
	}

	if err := pc.DB.Create(&booking).Error; err != nil {
		logger.Error("Failed to create booking", err)
		return internalError(c)
	}
	booking.Service = service
	booking.Customer = profile

	result := pc.Notifier.BookingCreated(&booking)
	for _, msg := range result.Errors {
		logger.Warning("Booking notification: " + msg)
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Your booking request has been received. We will contact you shortly to confirm.",
		Data:    booking,
	})
}

// Quotes lists the caller's quote requests, newest first, 10 per page.
func (pc *PortalController) Quotes(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)
	profile, err := pc.profileFor(user)
	if err != nil {
		logger.Error("Failed to load profile", err)
		return internalError(c)
	}

	pageNum, offset := page(c)

	var total int64
	if err := pc.quoteScope(profile, user).Count(&total).Error; err != nil {
		logger.Error("Failed to count quotes", err)
		return internalError(c)
	}

	var quotes []quoteModel.QuoteRequest
	if err := pc.quoteScope(profile, user).Preload("Service").
		Order("created_at desc").Limit(perPage).Offset(offset).
		Find(&quotes).Error; err != nil {
		logger.Error("Failed to load quotes", err)
		return internalError(c)
	}

	return ok(c, "Quotes retrieved successfully", fiber.Map{
		"quotes": quotes,
		"pagination": fiber.Map{
			"page":        pageNum,
			"per_page":    perPage,
			"total":       total,
			"total_pages": (total + perPage - 1) / perPage,
		},
	})
}

func (pc *PortalController) ownedQuote(c *fiber.Ctx, user *customerModel.User, profile *customerModel.CustomerProfile) (*quoteModel.QuoteRequest, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var quote quoteModel.QuoteRequest
	err = pc.DB.Preload("Service").
		Where("id = ? AND (customer_id = ? OR email = ?)", id, profile.ID, user.Email).
		First(&quote).Error
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

// QuoteDetail returns one quote request.
func (pc *PortalController) QuoteDetail(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)
	profile, err := pc.profileFor(user)
	if err != nil {
		logger.Error("Failed to load profile", err)
		return internalError(c)
	}

	quote, err := pc.ownedQuote(c, user, profile)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return notFound(c, "Quote not found")
		}
		logger.Error("Failed to load quote", err)
		return internalError(c)
	}

	return ok(c, "Quote retrieved successfully", quote)
}

// AcceptQuote marks a quoted request accepted, which unlocks booking
// creation from it.
func (pc *PortalController) AcceptQuote(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)
	profile, err := pc.profileFor(user)
	if err != nil {
		logger.Error("Failed to load profile", err)
		return internalError(c)
	}

	quote, err := pc.ownedQuote(c, user, profile)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return notFound(c, "Quote not found")
		}
		logger.Error("Failed to load quote", err)
		return internalError(c)
	}

	if err := quote.AcceptByCustomer(); err != nil {
		return badRequest(c, "Only a quote with a final price can be accepted.")
	}

	if err := pc.DB.Model(quote).Update("status", quote.Status).Error; err != nil {
		logger.Error("Failed to accept quote", err)
		return internalError(c)
	}

	logger.Info(fmt.Sprintf("Quote #%d accepted by %s", quote.ID, user.Email))
	return ok(c, "Quote accepted. You can now schedule the work.", quote)
}

// BookFromQuote creates a booking pre-filled from an accepted quote.
func (pc *PortalController) BookFromQuote(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)
	profile, err := pc.profileFor(user)
	if err != nil {
		logger.Error("Failed to load profile", err)
		return internalError(c)
	}

	quote, err := pc.ownedQuote(c, user, profile)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return notFound(c, "Quote not found")
		}
		logger.Error("Failed to load quote", err)
		return internalError(c)
	}
	if quote.Status != quoteModel.QuoteStatusAccepted {
		return badRequest(c, "Please accept the quote before scheduling the work.")
	}

	var req portalTypes.BookFromQuoteRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return badRequest(c, "Invalid request body")
	}

	day, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(req.PreferredDate), time.Local)
	if err != nil {
		return badRequest(c, "Invalid preferred date")
	}
	preferred, err := utils.CombineDateSlot(day, req.PreferredTime)
	if err != nil {
		return badRequest(c, "Invalid time slot")
	}
	if err := utils.ValidatePreferredDate(preferred); err != nil {
		return badRequest(c, err.Error())
	}

	description := req.Description
	if description == "" {
		description = fmt.Sprintf("Work from accepted quote #%d (%s)", quote.ID, quote.Service.Name)
	}

	booking := bookingModel.Booking{
		CustomerID:    &profile.ID,
		CustomerName:  quote.CustomerName,
		Email:         quote.Email,
		Phone:         quote.Phone,
		Address:       quote.Address,
		ServiceID:     quote.ServiceID,
		ServiceAreaID: profile.ServiceAreaID,
		Urgency:       constants.UrgencyMedium,
		PreferredDate: preferred,
		Description:   description,
		Status:        bookingModel.BookingStatusPending,
	}

	if err := pc.DB.Create(&booking).Error; err != nil {
		logger.Error("Failed to create booking", err)
		return internalError(c)
	}
	booking.Service = quote.Service

	result := pc.Notifier.BookingCreated(&booking)
	for _, msg := range result.Errors {
		logger.Warning("Booking notification: " + msg)
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Your booking request has been received. We will contact you shortly to confirm.",
		Data:    booking,
	})
}

// History lists completed work with headline stats.
func (pc *PortalController) History(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)
	profile, err := pc.profileFor(user)
	if err != nil {
		logger.Error("Failed to load profile", err)
		return internalError(c)
	}

	var completed []bookingModel.Booking
	if err := pc.bookingScope(profile, user).Preload("Service").
		Where("status = ?", bookingModel.BookingStatusCompleted).
		Order("preferred_date desc").Find(&completed).Error; err != nil {
		logger.Error("Failed to load history", err)
		return internalError(c)
	}

	var thisYear int64
	if err := pc.bookingScope(profile, user).
		Where("status = ? AND preferred_date >= ?",
			bookingModel.BookingStatusCompleted, utils.BeginningOfYear()).
		Count(&thisYear).Error; err != nil {
		logger.Error("Failed to count history", err)
		return internalError(c)
	}

	return ok(c, "Service history retrieved successfully", fiber.Map{
		"bookings":           completed,
		"total_services":     len(completed),
		"services_this_year": thisYear,
	})
}

// Documents lists the caller's portal-visible documents.
func (pc *PortalController) Documents(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)
	profile, err := pc.profileFor(user)
	if err != nil {
		logger.Error("Failed to load profile", err)
		return internalError(c)
	}

	var documents []customerModel.CustomerDocument
	if err := pc.DB.Where("customer_id = ? AND is_public = ?", profile.ID, true).
		Order("created_at desc").Find(&documents).Error; err != nil {
		logger.Error("Failed to load documents", err)
		return internalError(c)
	}

	return ok(c, "Documents retrieved successfully", documents)
}

// GetProfile returns the caller's user and profile.
func (pc *PortalController) GetProfile(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)
	profile, err := pc.profileFor(user)
	if err != nil {
		logger.Error("Failed to load profile", err)
		return internalError(c)
	}
	return ok(c, "Profile retrieved successfully", fiber.Map{
		"user":    user,
		"profile": profile,
	})
}

// UpdateProfile updates identity and contact fields together, the way the
// profile form submits them.
func (pc *PortalController) UpdateProfile(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)
	profile, err := pc.profileFor(user)
	if err != nil {
		logger.Error("Failed to load profile", err)
		return internalError(c)
	}

	var req portalTypes.ProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return badRequest(c, "Invalid request body")
	}

	if req.FirstName == "" || req.LastName == "" {
		return badRequest(c, "First and last name are required")
	}
	email, err := utils.CleanEmail(req.Email)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if email == "" {
		return badRequest(c, "A valid email address is required")
	}
	if email != user.Email {
		var existing customerModel.User
		if err := pc.DB.Where("email = ? AND id <> ?", email, user.ID).First(&existing).Error; err == nil {
			return badRequest(c, "An account with this email already exists")
		} else if err != gorm.ErrRecordNotFound {
			logger.Error("Database error while checking email", err)
			return internalError(c)
		}
	}

	for _, raw := range []*string{req.Phone, req.EmergencyPhone} {
		if raw == nil || *raw == "" {
			continue
		}
		cleaned, err := utils.CleanPhone(*raw)
		if err != nil {
			return badRequest(c, err.Error())
		}
		*raw = cleaned
	}

	if req.PreferredContactMethod != "" {
		switch req.PreferredContactMethod {
		case constants.ContactMethodEmail, constants.ContactMethodPhone, constants.ContactMethodText:
		default:
			return badRequest(c, "Invalid preferred contact method")
		}
		profile.PreferredContactMethod = req.PreferredContactMethod
	}

	profile.Phone = req.Phone
	profile.Address = req.Address
	profile.City = req.City
	profile.PostalCode = req.PostalCode
	profile.ServiceAreaID = req.ServiceAreaID
	profile.EmergencyContact = req.EmergencyContact
	profile.EmergencyPhone = req.EmergencyPhone
	if req.EmailNotifications != nil {
		profile.EmailNotifications = *req.EmailNotifications
	}
	if req.SMSNotifications != nil {
		profile.SMSNotifications = *req.SMSNotifications
	}

	err = pc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(user).Updates(map[string]interface{}{
			"first_name": req.FirstName,
			"last_name":  req.LastName,
			"email":      email,
		}).Error; err != nil {
			return err
		}
		return tx.Save(profile).Error
	})
	if err != nil {
		logger.Error("Failed to update profile", err)
		return internalError(c)
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Email = email

	return ok(c, "Your profile has been updated.", fiber.Map{
		"user":    user,
		"profile": profile,
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
