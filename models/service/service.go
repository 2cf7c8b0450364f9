package service

import (
	"time"

	areaModel "plumber-backend/models/area"
)

// Service is a plumbing service offered on the site.
type Service struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null;index" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	PriceRange  string    `gorm:"type:varchar(50);not null" json:"price_range"`
	Icon        string    `gorm:"type:varchar(50);not null;default:'wrench'" json:"icon"`
	IsEmergency bool      `gorm:"default:false;index" json:"is_emergency"`
	IsActive    bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Testimonial is customer feedback submitted through the site.
// Customer submissions start unapproved and are moderated by staff.
type Testimonial struct {
	ID           uint                   `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerName string                 `gorm:"type:varchar(100);not null" json:"customer_name"`
	Email        string                 `gorm:"type:varchar(100)" json:"email,omitempty"`
	Phone        string                 `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Title        string                 `gorm:"type:varchar(200)" json:"title,omitempty"`
	LocationID   *uint                  `json:"location_id,omitempty"`
	Location     *areaModel.ServiceArea `gorm:"foreignKey:LocationID;constraint:OnDelete:SET NULL" json:"location,omitempty"`
	ServiceID    *uint                  `json:"service_id,omitempty"`
	Service      *Service               `gorm:"foreignKey:ServiceID;constraint:OnDelete:SET NULL" json:"service,omitempty"`
	Rating       int                    `gorm:"not null" json:"rating"`
	Comment      string                 `gorm:"type:text;not null" json:"comment"`
	IsFeatured   bool                   `gorm:"default:false;index" json:"is_featured"`
	IsApproved   bool                   `gorm:"default:false;index" json:"is_approved"`
	IsVerified   bool                   `gorm:"default:false" json:"is_verified"`
	CreatedAt    time.Time              `gorm:"autoCreateTime;index" json:"created_at"`
}

// FAQ is a frequently asked question shown on the homepage.
type FAQ struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Question  string    `gorm:"type:varchar(255);not null" json:"question"`
	Answer    string    `gorm:"type:text;not null" json:"answer"`
	Order     int       `gorm:"default:0;index" json:"order"`
	IsActive  bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
