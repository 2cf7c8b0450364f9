package health

import (
	"time"

	"plumber-backend/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// HealthController serves the liveness probe.
type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// Check pings the database and reports service health.
func (hc *HealthController) Check(c *fiber.Ctx) error {
	if err := hc.DB.Exec("SELECT 1").Error; err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(types.ApiResponse{
			Status:  fiber.StatusServiceUnavailable,
			Message: "unhealthy",
			Data: fiber.Map{
				"database":  "error",
				"timestamp": time.Now().Unix(),
			},
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "healthy",
		Data: fiber.Map{
			"database":  "ok",
			"timestamp": time.Now().Unix(),
		},
	})
}
