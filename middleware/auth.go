package middleware

import (
	"strings"

	customerModel "plumber-backend/models/customer"
	"plumber-backend/types"
	"plumber-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequireAuth parses the bearer token, loads the active user, and stores
// it in Locals("user"). Rejection happens before any handler runs.
func RequireAuth(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c, "Authorization header required")
		}

		tokenString := authHeader
		if len(tokenString) > 7 && strings.EqualFold(tokenString[0:6], "bearer") {
			tokenString = strings.TrimSpace(tokenString[7:])
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			return unauthorized(c, "Invalid token")
		}

		userID, err := utils.UserIDFromClaims(claims)
		if err != nil {
			return unauthorized(c, "Invalid token claims")
		}

		var user customerModel.User
		if err := db.First(&user, userID).Error; err != nil {
			return unauthorized(c, "User not found")
		}
		if !user.IsActive {
			return unauthorized(c, "Account is disabled")
		}

		c.Locals("user", &user)
		return c.Next()
	}
}

// RequireStaff gates staff-only endpoints. Must run after RequireAuth.
func RequireStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals("user").(*customerModel.User)
		if !ok || !user.IsStaff() {
			return unauthorized(c, "Staff access required")
		}
		return c.Next()
	}
}

// OptionalProfileID resolves the customer profile behind a bearer token on
// a public route, if one was sent. Missing or bad tokens are not an error:
// the submission simply stays unlinked.
func OptionalProfileID(c *fiber.Ctx, db *gorm.DB) *uint {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil
	}
	tokenString := authHeader
	if len(tokenString) > 7 && strings.EqualFold(tokenString[0:6], "bearer") {
		tokenString = strings.TrimSpace(tokenString[7:])
	}
	claims, err := utils.ParseToken(tokenString)
	if err != nil {
		return nil
	}
	userID, err := utils.UserIDFromClaims(claims)
	if err != nil {
		return nil
	}
	var profile customerModel.CustomerProfile
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil
	}
	return &profile.ID
}

// CurrentUser returns the authenticated user set by RequireAuth.
func CurrentUser(c *fiber.Ctx) (*customerModel.User, bool) {
	user, ok := c.Locals("user").(*customerModel.User)
	return user, ok
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
		Status:  fiber.StatusUnauthorized,
		Message: msg,
		Data:    nil,
	})
}
