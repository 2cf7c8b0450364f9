package database

import (
	"fmt"
	"os"

	"plumber-backend/logger"
	areaModel "plumber-backend/models/area"
	blogModel "plumber-backend/models/blog"
	bookingModel "plumber-backend/models/booking"
	contactModel "plumber-backend/models/contact"
	customerModel "plumber-backend/models/customer"
	galleryModel "plumber-backend/models/gallery"
	logModel "plumber-backend/models/log"
	notificationModel "plumber-backend/models/notification"
	quoteModel "plumber-backend/models/quote"
	serviceModel "plumber-backend/models/service"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection with auto migration and indexing.
func InitDB() (*gorm.DB, error) {
	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", err)
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	database := os.Getenv("DB_DATABASE")
	user := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	sslmode := os.Getenv("DB_SSLMODE")

	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, database, sslmode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := autoMigrate(); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	if err := createForeignKeyConstraints(); err != nil {
		logger.Error("Failed to create foreign key constraints", err)
		return nil, err
	}

	if err := createIndexes(); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("All indexes created successfully")

	if os.Getenv("SEED_DATA") == "true" {
		if err := Seed(DB); err != nil {
			logger.Error("Failed to seed initial data", err)
			return nil, err
		}
	}

	return DB, nil
}

// autoMigrate runs auto migration for all models in dependency stages.
func autoMigrate() error {
	// Stage 1: catalog and identity models with no cross-entity FKs
	stage1Models := []interface{}{
		&areaModel.ServiceArea{},
		&serviceModel.Service{},
		&customerModel.User{},
	}

	for _, model := range stage1Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 2: models referencing stage 1
	stage2Models := []interface{}{
		&areaModel.Review{},
		&areaModel.TrustBadge{},
		&serviceModel.Testimonial{},
		&serviceModel.FAQ{},
		&galleryModel.GalleryImage{},
		&blogModel.BlogPost{},
		&customerModel.CustomerProfile{},
		&quoteModel.QuoteCalculator{},
		&quoteModel.QuoteOption{},
	}

	for _, model := range stage2Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 3: records referencing profiles and catalogs
	stage3Models := []interface{}{
		&customerModel.CustomerNote{},
		&customerModel.CustomerDocument{},
		&bookingModel.Booking{},
		&bookingModel.BookingStatusEvent{},
		&contactModel.ContactMessage{},
		&quoteModel.QuoteRequest{},
	}

	for _, model := range stage3Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Remaining models
	remainingModels := []interface{}{
		&notificationModel.AdminNotification{},
		&logModel.Log{},
	}

	for _, model := range remainingModels {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	return nil
}

// createIndexes creates additional indexes for better performance.
func createIndexes() error {
	indexes := []struct {
		name string
		sql  string
	}{
		{"idx_bookings_email_status", "CREATE INDEX IF NOT EXISTS idx_bookings_email_status ON bookings(email, status)"},
		{"idx_bookings_urgency_status", "CREATE INDEX IF NOT EXISTS idx_bookings_urgency_status ON bookings(urgency, status)"},
		{"idx_quote_requests_email_status", "CREATE INDEX IF NOT EXISTS idx_quote_requests_email_status ON quote_requests(email, status)"},
		{"idx_contact_messages_unread", "CREATE INDEX IF NOT EXISTS idx_contact_messages_unread ON contact_messages(is_read) WHERE is_read = false"},
		{"idx_admin_notifications_unread", "CREATE INDEX IF NOT EXISTS idx_admin_notifications_unread ON admin_notifications(is_read) WHERE is_read = false"},
		{"idx_service_areas_active_name", "CREATE INDEX IF NOT EXISTS idx_service_areas_active_name ON service_areas(is_active, name)"},
		{"idx_services_active_name", "CREATE INDEX IF NOT EXISTS idx_services_active_name ON services(is_active, name)"},
		{"idx_logs_created_at", "CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at)"},
	}

	for _, idx := range indexes {
		if err := DB.Exec(idx.sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}

// createForeignKeyConstraints creates foreign key constraints after auto
// migration. The weak references null out on delete; bookings keep their
// service row alive.
func createForeignKeyConstraints() error {
	constraints := []struct {
		name string
		sql  string
	}{
		{
			name: "fk_bookings_service",
			sql: `ALTER TABLE bookings ADD CONSTRAINT fk_bookings_service
				  FOREIGN KEY (service_id) REFERENCES services(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
		{
			name: "fk_bookings_service_area",
			sql: `ALTER TABLE bookings ADD CONSTRAINT fk_bookings_service_area
				  FOREIGN KEY (service_area_id) REFERENCES service_areas(id)
				  ON UPDATE CASCADE ON DELETE SET NULL`,
		},
		{
			name: "fk_contact_messages_service_area",
			sql: `ALTER TABLE contact_messages ADD CONSTRAINT fk_contact_messages_service_area
				  FOREIGN KEY (service_area_id) REFERENCES service_areas(id)
				  ON UPDATE CASCADE ON DELETE SET NULL`,
		},
		{
			name: "fk_quote_requests_service",
			sql: `ALTER TABLE quote_requests ADD CONSTRAINT fk_quote_requests_service
				  FOREIGN KEY (service_id) REFERENCES services(id)
				  ON UPDATE CASCADE ON DELETE CASCADE`,
		},
		{
			name: "fk_customer_notes_customer",
			sql: `ALTER TABLE customer_notes ADD CONSTRAINT fk_customer_notes_customer
				  FOREIGN KEY (customer_id) REFERENCES customer_profiles(id)
				  ON UPDATE CASCADE ON DELETE CASCADE`,
		},
		{
			name: "fk_customer_documents_customer",
			sql: `ALTER TABLE customer_documents ADD CONSTRAINT fk_customer_documents_customer
				  FOREIGN KEY (customer_id) REFERENCES customer_profiles(id)
				  ON UPDATE CASCADE ON DELETE CASCADE`,
		},
	}

	for _, constraint := range constraints {
		var exists bool
		checkSQL := `
			SELECT EXISTS (
				SELECT 1 FROM information_schema.table_constraints
				WHERE constraint_name = $1
			)
		`

		err := DB.Raw(checkSQL, constraint.name).Scan(&exists).Error
		if err != nil {
			logger.Warning(fmt.Sprintf("Failed to check constraint existence: %s - Error: %v", constraint.name, err))
			continue
		}

		if !exists {
			if err := DB.Exec(constraint.sql).Error; err != nil {
				logger.Warning(fmt.Sprintf("Failed to create constraint: %s - Error: %v", constraint.name, err))
			} else {
				logger.Success(fmt.Sprintf("Successfully created constraint: %s", constraint.name))
			}
		}
	}

	return nil
}

// GetDB returns the database instance.
func GetDB() *gorm.DB {
	return DB
}
