package catalog

import (
	"plumber-backend/logger"
	areaModel "plumber-backend/models/area"
	galleryModel "plumber-backend/models/gallery"
	serviceModel "plumber-backend/models/service"
	"plumber-backend/types"
	"plumber-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CatalogController serves the public marketing content.
type CatalogController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewCatalogController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *CatalogController {
	return &CatalogController{
		DB:     db,
		Logger: asyncLogger,
	}
}

// ServiceView is a service with its derived URL slug. Slugs are computed
// over the active set ordered by name, never stored.
type ServiceView struct {
	serviceModel.Service
	Slug string `json:"slug"`
}

// AreaView is a service area with its derived URL slug.
type AreaView struct {
	areaModel.ServiceArea
	Slug string `json:"slug"`
}

func (cc *CatalogController) activeServices() ([]ServiceView, error) {
	var services []serviceModel.Service
	if err := cc.DB.Where("is_active = ?", true).Order("name asc").Find(&services).Error; err != nil {
		return nil, err
	}
	names := make([]string, len(services))
	for i, s := range services {
		names[i] = s.Name
	}
	slugs := utils.AssignSlugs(names)
	views := make([]ServiceView, len(services))
	for i, s := range services {
		views[i] = ServiceView{Service: s, Slug: slugs[i]}
	}
	return views, nil
}

func (cc *CatalogController) activeAreas() ([]AreaView, error) {
	var areas []areaModel.ServiceArea
	if err := cc.DB.Where("is_active = ?", true).Order("name asc").Find(&areas).Error; err != nil {
		return nil, err
	}
	names := make([]string, len(areas))
	for i, a := range areas {
		names[i] = a.Name
	}
	slugs := utils.AssignSlugs(names)
	views := make([]AreaView, len(areas))
	for i, a := range areas {
		views[i] = AreaView{ServiceArea: a, Slug: slugs[i]}
	}
	return views, nil
}

// Services lists active services with derived slugs.
func (cc *CatalogController) Services(c *fiber.Ctx) error {
	views, err := cc.activeServices()
	if err != nil {
		logger.Error("Failed to load services", err)
		return internalError(c)
	}
	return ok(c, "Services retrieved successfully", views)
}

// ServiceBySlug resolves one service by its derived slug.
func (cc *CatalogController) ServiceBySlug(c *fiber.Ctx) error {
	views, err := cc.activeServices()
	if err != nil {
		logger.Error("Failed to load services", err)
		return internalError(c)
	}
	target := c.Params("slug")
	for _, v := range views {
		if v.Slug == target {
			return ok(c, "Service retrieved successfully", v)
		}
	}
	return notFound(c, "Service not found")
}

// Areas lists active service areas with derived slugs.
func (cc *CatalogController) Areas(c *fiber.Ctx) error {
	views, err := cc.activeAreas()
	if err != nil {
		logger.Error("Failed to load service areas", err)
		return internalError(c)
	}
	return ok(c, "Service areas retrieved successfully", views)
}

// AreaBySlug resolves one service area by its derived slug, bundling the
// reviews and gallery images tied to it.
func (cc *CatalogController) AreaBySlug(c *fiber.Ctx) error {
	views, err := cc.activeAreas()
	if err != nil {
		logger.Error("Failed to load service areas", err)
		return internalError(c)
	}
	target := c.Params("slug")
	for _, v := range views {
		if v.Slug != target {
			continue
		}
		var reviews []areaModel.Review
		if err := cc.DB.Where("service_area_id = ?", v.ID).
			Order("created_at desc").Find(&reviews).Error; err != nil {
			logger.Error("Failed to load area reviews", err)
			return internalError(c)
		}
		var images []galleryModel.GalleryImage
		if err := cc.DB.Where("location_id = ? AND is_active = ?", v.ID, true).
			Order("\"order\" asc, created_at desc").Find(&images).Error; err != nil {
			logger.Error("Failed to load area gallery", err)
			return internalError(c)
		}
		return ok(c, "Service area retrieved successfully", fiber.Map{
			"area":    v,
			"reviews": reviews,
			"gallery": images,
		})
	}
	return notFound(c, "Service area not found")
}

// Gallery lists active gallery images, optionally filtered by category,
// service or location.
func (cc *CatalogController) Gallery(c *fiber.Ctx) error {
	query := cc.DB.Where("is_active = ?", true)
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if serviceID := c.QueryInt("service_id"); serviceID > 0 {
		query = query.Where("service_id = ?", serviceID)
	}
	if locationID := c.QueryInt("location_id"); locationID > 0 {
		query = query.Where("location_id = ?", locationID)
	}

	var images []galleryModel.GalleryImage
	if err := query.Preload("Service").Preload("Location").
		Order("\"order\" asc, created_at desc").Find(&images).Error; err != nil {
		logger.Error("Failed to load gallery", err)
		return internalError(c)
	}
	return ok(c, "Gallery retrieved successfully", images)
}

// Testimonials lists approved testimonials, newest first.
func (cc *CatalogController) Testimonials(c *fiber.Ctx) error {
	var testimonials []serviceModel.Testimonial
	if err := cc.DB.Where("is_approved = ?", true).
		Preload("Service").Preload("Location").
		Order("created_at desc").Find(&testimonials).Error; err != nil {
		logger.Error("Failed to load testimonials", err)
		return internalError(c)
	}
	return ok(c, "Testimonials retrieved successfully", testimonials)
}

// Reviews lists imported platform reviews, optionally by platform.
func (cc *CatalogController) Reviews(c *fiber.Ctx) error {
	query := cc.DB.Order("created_at desc")
	if platform := c.Query("platform"); platform != "" {
		query = query.Where("platform = ?", platform)
	}
	var reviews []areaModel.Review
	if err := query.Preload("ServiceArea").Find(&reviews).Error; err != nil {
		logger.Error("Failed to load reviews", err)
		return internalError(c)
	}
	return ok(c, "Reviews retrieved successfully", reviews)
}

// FAQs lists active questions in display order.
func (cc *CatalogController) FAQs(c *fiber.Ctx) error {
	var faqs []serviceModel.FAQ
	if err := cc.DB.Where("is_active = ?", true).
		Order("\"order\" asc, id asc").Find(&faqs).Error; err != nil {
		logger.Error("Failed to load FAQs", err)
		return internalError(c)
	}
	return ok(c, "FAQs retrieved successfully", faqs)
}

// TrustBadges lists active badges in display order.
func (cc *CatalogController) TrustBadges(c *fiber.Ctx) error {
	var badges []areaModel.TrustBadge
	if err := cc.DB.Where("is_active = ?", true).
		Order("\"order\" asc, id asc").Find(&badges).Error; err != nil {
		logger.Error("Failed to load trust badges", err)
		return internalError(c)
	}
	return ok(c, "Trust badges retrieved successfully", badges)
}

// Home bundles everything the homepage renders in one round trip.
func (cc *CatalogController) Home(c *fiber.Ctx) error {
	services, err := cc.activeServices()
	if err != nil {
		logger.Error("Failed to load services", err)
		return internalError(c)
	}
	areas, err := cc.activeAreas()
	if err != nil {
		logger.Error("Failed to load service areas", err)
		return internalError(c)
	}

	var featured []galleryModel.GalleryImage
	if err := cc.DB.Where("is_active = ? AND is_featured = ?", true, true).
		Order("\"order\" asc").Limit(6).Find(&featured).Error; err != nil {
		logger.Error("Failed to load featured gallery", err)
		return internalError(c)
	}

	var testimonials []serviceModel.Testimonial
	if err := cc.DB.Where("is_approved = ? AND is_featured = ?", true, true).
		Order("created_at desc").Limit(6).Find(&testimonials).Error; err != nil {
		logger.Error("Failed to load featured testimonials", err)
		return internalError(c)
	}

	var faqs []serviceModel.FAQ
	if err := cc.DB.Where("is_active = ?", true).
		Order("\"order\" asc, id asc").Find(&faqs).Error; err != nil {
		logger.Error("Failed to load FAQs", err)
		return internalError(c)
	}

	var badges []areaModel.TrustBadge
	if err := cc.DB.Where("is_active = ?", true).
		Order("\"order\" asc, id asc").Find(&badges).Error; err != nil {
		logger.Error("Failed to load trust badges", err)
		return internalError(c)
	}

	return ok(c, "Home content retrieved successfully", fiber.Map{
		"services":     services,
		"service_areas": areas,
		"gallery":      featured,
		"testimonials": testimonials,
		"faqs":         faqs,
		"trust_badges": badges,
	})
}

func ok(c *fiber.Ctx, msg string, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: msg,
		Data:    data,
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
