package auth

import (
	"fmt"
	"strings"
	"time"

	"plumber-backend/logger"
	"plumber-backend/middleware"
	customerModel "plumber-backend/models/customer"
	"plumber-backend/types"
	authTypes "plumber-backend/types/auth"
	"plumber-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthController handles portal registration and login.
type AuthController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewAuthController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *AuthController {
	return &AuthController{
		DB:     db,
		Logger: asyncLogger,
	}
}

// Register creates a portal account with its customer profile and returns
// a token so the new user is signed in immediately.
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req authTypes.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	email, err := utils.CleanEmail(req.Email)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if email == "" {
		return badRequest(c, "A valid email address is required")
	}
	req.Email = email
	if len(req.Password) < 8 {
		return badRequest(c, "Password must contain at least 8 characters")
	}
	if req.FirstName == "" || req.LastName == "" {
		return badRequest(c, "First and last name are required")
	}

	cleanedPhone, err := utils.CleanPhone(req.Phone)
	if err != nil {
		return badRequest(c, err.Error())
	}

	var existing customerModel.User
	if err := ac.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return badRequest(c, "An account with this email already exists")
	} else if err != gorm.ErrRecordNotFound {
		logger.Error("Database error while checking existing user", err)
		return internalError(c)
	}

	user := customerModel.User{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	err = ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile := customerModel.CustomerProfile{
			UserID:        user.ID,
			ServiceAreaID: req.ServiceAreaID,
		}
		if cleanedPhone != "" {
			profile.Phone = &cleanedPhone
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		logger.Error("Failed to create user", err)
		return internalError(c)
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		logger.Error("Failed to issue token", err)
		return internalError(c)
	}

	logger.Success(fmt.Sprintf("Account created for %s", user.Email))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Welcome! Your account has been created successfully.",
		Token:   token,
		Data:    user,
	})
}

// Login authenticates a portal user and returns a JWT.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req authTypes.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return badRequest(c, "Invalid request body")
	}

	var user customerModel.User
	err := ac.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&user).Error
	if err != nil || !utils.CheckPasswordHash(req.Password, user.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid email or password",
			Data:    nil,
		})
	}
	if !user.IsActive {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Account is disabled",
			Data:    nil,
		})
	}

	nowTime := time.Now()
	user.LastLogin = &nowTime
	if err := ac.DB.Model(&user).Update("last_login", nowTime).Error; err != nil {
		logger.Warning("Failed to record last login: " + err.Error())
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		logger.Error("Failed to issue token", err)
		return internalError(c)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Login successful",
		Token:   token,
		Data:    user,
	})
}

// Me returns the authenticated user.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Not authenticated",
			Data:    nil,
		})
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "OK",
		Data:    user,
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
