package contact

import (
	"time"

	areaModel "plumber-backend/models/area"
)

// ContactMessage is a general inquiry submitted through the contact form.
type ContactMessage struct {
	ID            uint                   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string                 `gorm:"type:varchar(100);not null" json:"name"`
	Email         string                 `gorm:"type:varchar(255);not null" json:"email"`
	Phone         *string                `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Subject       string                 `gorm:"type:varchar(200);not null" json:"subject"`
	Message       string                 `gorm:"type:text;not null" json:"message"`
	ServiceAreaID *uint                  `json:"service_area_id,omitempty"`
	ServiceArea   *areaModel.ServiceArea `gorm:"foreignKey:ServiceAreaID;constraint:OnDelete:SET NULL" json:"service_area,omitempty"`
	Priority      string                 `gorm:"type:varchar(10);not null;default:'medium';index" json:"priority"`
	IsRead        bool                   `gorm:"default:false;index" json:"is_read"`
	IsResolved    bool                   `gorm:"default:false;index" json:"is_resolved"`
	CreatedAt     time.Time              `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt     time.Time              `gorm:"autoUpdateTime" json:"updated_at"`
}
