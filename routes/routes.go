package routes

import (
	"plumber-backend/controllers/admin"
	"plumber-backend/controllers/auth"
	"plumber-backend/controllers/catalog"
	"plumber-backend/controllers/health"
	"plumber-backend/controllers/intake"
	"plumber-backend/controllers/portal"
	"plumber-backend/controllers/quote"
	"plumber-backend/logger"
	"plumber-backend/middleware"
	"plumber-backend/services/notify"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	asyncLogger := logger.NewAsyncLogger(db)
	notifier := notify.NewNotifier(db)

	healthController := health.NewHealthController(db)
	authController := auth.NewAuthController(db, asyncLogger)
	catalogController := catalog.NewCatalogController(db, asyncLogger)
	intakeController := intake.NewIntakeController(db, asyncLogger, notifier)
	quoteController := quote.NewQuoteController(db, asyncLogger, notifier)
	portalController := portal.NewPortalController(db, asyncLogger, notifier)
	adminController := admin.NewAdminController(db, asyncLogger)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	app.Use(middleware.RequestLogger(asyncLogger))

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api := app.Group("/api")
	api.Get("/health", healthController.Check)

	api.Get("/home", catalogController.Home)
	api.Get("/services", catalogController.Services)
	api.Get("/services/:slug", catalogController.ServiceBySlug)
	api.Get("/areas", catalogController.Areas)
	api.Get("/areas/:slug", catalogController.AreaBySlug)
	api.Get("/gallery", catalogController.Gallery)
	api.Get("/testimonials", catalogController.Testimonials)
	api.Get("/reviews", catalogController.Reviews)
	api.Get("/faqs", catalogController.FAQs)
	api.Get("/trust-badges", catalogController.TrustBadges)
	api.Get("/blog", catalogController.BlogPosts)
	api.Get("/blog/:slug", catalogController.BlogPostBySlug)

	api.Post("/bookings", intakeController.StoreBooking)
	api.Post("/contact", intakeController.StoreContact)
	api.Post("/feedback", intakeController.StoreFeedback)

	api.Get("/quotes/calculator/:serviceID", quoteController.CalculatorData)
	api.Post("/quotes", quoteController.Store)

	api.Post("/auth/register", authController.Register)
	api.Post("/auth/login", authController.Login)

	/*=============================================================================
	| Customer Portal Routes
	===============================================================================*/
	// register/login above share the /auth prefix, so the guard goes on
	// the route rather than the group
	api.Get("/auth/me", middleware.RequireAuth(db), authController.Me)

	portalGroup := api.Group("/portal").Use(middleware.RequireAuth(db))
	portalGroup.Get("/dashboard", portalController.Dashboard)
	portalGroup.Get("/bookings", portalController.Bookings)
	portalGroup.Get("/bookings/:id", portalController.BookingDetail)
	portalGroup.Post("/bookings/:id/cancel", portalController.CancelBooking)
	portalGroup.Post("/quick-booking", portalController.QuickBooking)
	portalGroup.Get("/quotes", portalController.Quotes)
	portalGroup.Get("/quotes/:id", portalController.QuoteDetail)
	portalGroup.Post("/quotes/:id/accept", portalController.AcceptQuote)
	portalGroup.Post("/quotes/:id/book", portalController.BookFromQuote)
	portalGroup.Get("/history", portalController.History)
	portalGroup.Get("/documents", portalController.Documents)
	portalGroup.Get("/profile", portalController.GetProfile)
	portalGroup.Put("/profile", portalController.UpdateProfile)

	/*=============================================================================
	| Staff Routes
	===============================================================================*/
	staffGroup := api.Group("/staff").Use(middleware.RequireAuth(db), middleware.RequireStaff())
	staffGroup.Get("/bookings", adminController.Bookings)
	staffGroup.Put("/bookings/:id/status", adminController.UpdateBookingStatus)
	staffGroup.Get("/quotes", adminController.Quotes)
	staffGroup.Put("/quotes/:id/status", adminController.UpdateQuoteStatus)
	staffGroup.Get("/contacts", adminController.Contacts)
	staffGroup.Put("/contacts/:id/read", adminController.MarkContactRead)
	staffGroup.Put("/contacts/:id/resolve", adminController.ResolveContact)
	staffGroup.Get("/notifications", adminController.Notifications)
	staffGroup.Post("/notifications/read-all", adminController.MarkAllNotificationsRead)
	staffGroup.Post("/notifications/:id/read", adminController.MarkNotificationRead)
	staffGroup.Post("/customers/:id/notes", adminController.AddCustomerNote)
}
