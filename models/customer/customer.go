package customer

import (
	"strings"
	"time"

	areaModel "plumber-backend/models/area"
)

// CustomerProfile holds contact and address details for a portal user.
// Notes and documents cascade-delete with the profile.
type CustomerProfile struct {
	ID                     uint                   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID                 uint                   `gorm:"uniqueIndex;not null" json:"user_id"`
	User                   User                   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`
	Phone                  *string                `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Address                *string                `gorm:"type:text" json:"address,omitempty"`
	City                   *string                `gorm:"type:varchar(100)" json:"city,omitempty"`
	PostalCode             *string                `gorm:"type:varchar(10)" json:"postal_code,omitempty"`
	ServiceAreaID          *uint                  `json:"service_area_id,omitempty"`
	ServiceArea            *areaModel.ServiceArea `gorm:"foreignKey:ServiceAreaID;constraint:OnDelete:SET NULL" json:"service_area,omitempty"`
	EmergencyContact       *string                `gorm:"type:varchar(100)" json:"emergency_contact,omitempty"`
	EmergencyPhone         *string                `gorm:"type:varchar(20)" json:"emergency_phone,omitempty"`
	PreferredContactMethod string                 `gorm:"type:varchar(20);not null;default:'email'" json:"preferred_contact_method"`
	EmailNotifications     bool                   `gorm:"default:true" json:"email_notifications"`
	SMSNotifications       bool                   `gorm:"default:false" json:"sms_notifications"`
	Notes                  []CustomerNote         `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"notes,omitempty"`
	Documents              []CustomerDocument     `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"documents,omitempty"`
	CreatedAt              time.Time              `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time              `gorm:"autoUpdateTime" json:"updated_at"`
}

// FullAddress joins the address parts that are present.
func (p *CustomerProfile) FullAddress() string {
	parts := make([]string, 0, 3)
	for _, v := range []*string{p.Address, p.City, p.PostalCode} {
		if v != nil && *v != "" {
			parts = append(parts, *v)
		}
	}
	return strings.Join(parts, ", ")
}

// CustomerNote is a staff-authored note on a customer.
// Internal notes are never returned to the customer.
type CustomerNote struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	Note       string    `gorm:"type:text;not null" json:"note"`
	CreatedBy  uint      `gorm:"not null" json:"created_by"`
	Author     User      `gorm:"foreignKey:CreatedBy" json:"author"`
	IsInternal bool      `gorm:"not null" json:"is_internal"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

// CustomerDocument is a typed file attachment on a customer profile.
// Public documents are visible in the portal.
type CustomerDocument struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID   uint      `gorm:"not null;index" json:"customer_id"`
	Title        string    `gorm:"type:varchar(200);not null" json:"title"`
	DocumentType string    `gorm:"type:varchar(20);not null;default:'other'" json:"document_type"`
	StorageKey   string    `gorm:"type:varchar(255);not null" json:"storage_key"`
	Description  *string   `gorm:"type:text" json:"description,omitempty"`
	IsPublic     bool      `gorm:"default:true" json:"is_public"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}
