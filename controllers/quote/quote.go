package quote

import (
	"fmt"

	"plumber-backend/logger"
	"plumber-backend/middleware"
	quoteModel "plumber-backend/models/quote"
	"plumber-backend/services/notify"
	quoteService "plumber-backend/services/quote"
	"plumber-backend/types"
	quoteTypes "plumber-backend/types/quote"
	"plumber-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// QuoteController serves calculator data and accepts quote requests.
// Totals are always recomputed server-side from the stored pricing.
type QuoteController struct {
	DB       *gorm.DB
	Logger   *logger.AsyncLogger
	Notifier *notify.Notifier
}

func NewQuoteController(db *gorm.DB, asyncLogger *logger.AsyncLogger, notifier *notify.Notifier) *QuoteController {
	return &QuoteController{
		DB:       db,
		Logger:   asyncLogger,
		Notifier: notifier,
	}
}

func (qc *QuoteController) activeCalculator(serviceID int) (*quoteModel.QuoteCalculator, error) {
	var calc quoteModel.QuoteCalculator
	err := qc.DB.Where("service_id = ? AND is_active = ?", serviceID, true).
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("\"order\" asc, id asc")
		}).
		Preload("Service").
		First(&calc).Error
	if err != nil {
		return nil, err
	}
	return &calc, nil
}

// CalculatorData returns the pricing template the calculator UI renders
// from.
func (qc *QuoteController) CalculatorData(c *fiber.Ctx) error {
	serviceID, err := c.ParamsInt("serviceID")
	if err != nil || serviceID <= 0 {
		return badRequest(c, "Invalid service id")
	}

	calc, err := qc.activeCalculator(serviceID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return notFound(c, "No calculator available for this service")
		}
		logger.Error("Failed to load calculator", err)
		return internalError(c)
	}

	options := make([]quoteTypes.CalculatorOption, len(calc.Options))
	for i, opt := range calc.Options {
		options[i] = quoteTypes.CalculatorOption{
			ID:          opt.ID,
			Name:        opt.Name,
			Description: opt.Description,
			Price:       opt.PriceModifier,
			Required:    opt.IsRequired,
		}
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Calculator data retrieved successfully",
		Data: quoteTypes.CalculatorData{
			BasePrice:      calc.BasePrice,
			LaborRate:      calc.LaborRatePerHour,
			EstimatedHours: calc.EstimatedHours,
			Options:        options,
		},
	})
}

// Store validates and persists a quote request, computing the estimate
// from the stored pricing and the selected options.
func (qc *QuoteController) Store(c *fiber.Ctx) error {
	var req quoteTypes.QuoteCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return badRequest(c, "Invalid request body")
	}

	if req.CustomerName == "" || req.Email == "" || req.Address == "" {
		return badRequest(c, "Name, email and address are required")
	}
	email, err := utils.CleanEmail(req.Email)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if req.ServiceID == 0 {
		return badRequest(c, "A service must be selected")
	}

	phone, err := utils.CleanPhone(req.Phone)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if phone == "" {
		return badRequest(c, "Phone number is required")
	}

	calc, err := qc.activeCalculator(int(req.ServiceID))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return notFound(c, "No calculator available for this service")
		}
		logger.Error("Failed to load calculator", err)
		return internalError(c)
	}

	selected := quoteModel.OptionIDList(req.SelectedOptions)
	if selected == nil {
		selected = quoteModel.OptionIDList{}
	}
	total := quoteService.Estimate(calc, selected)

	quote := quoteModel.QuoteRequest{
		CustomerID:      middleware.OptionalProfileID(c, qc.DB),
		ServiceID:       req.ServiceID,
		CustomerName:    req.CustomerName,
		Email:           email,
		Phone:           phone,
		Address:         req.Address,
		SelectedOptions: selected,
		EstimatedTotal:  total,
		Status:          quoteModel.QuoteStatusPending,
		Notes:           req.Notes,
	}

	if err := qc.DB.Create(&quote).Error; err != nil {
		logger.Error("Failed to create quote request", err)
		return internalError(c)
	}
	quote.Service = calc.Service

	result := qc.Notifier.QuoteCreated(&quote)
	for _, msg := range result.Errors {
		logger.Warning("Quote notification: " + msg)
	}
	logger.Success(fmt.Sprintf("Quote request #%d created, estimate $%s", quote.ID, total.StringFixed(2)))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Your quote request has been received. We will review it and follow up with a final price.",
		Data: quoteTypes.QuoteSubmissionResponse{
			QuoteID:        quote.ID,
			EstimatedTotal: total,
			EmailSent:      result.CustomerEmailSent,
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
