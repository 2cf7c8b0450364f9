package area

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceArea is a geographic market the business operates in.
// Other records reference it weakly: deleting an area nulls the reference.
type ServiceArea struct {
	ID         uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string           `gorm:"type:varchar(100);not null;index" json:"name"`
	Phone      string           `gorm:"type:varchar(20);not null" json:"phone"`
	Email      string           `gorm:"type:varchar(255);not null" json:"email"`
	Address    string           `gorm:"type:text;not null" json:"address"`
	City       string           `gorm:"type:varchar(100);not null;default:'Toronto';index" json:"city"`
	Province   string           `gorm:"type:varchar(50);not null;default:'Ontario'" json:"province"`
	PostalCode string           `gorm:"type:varchar(10)" json:"postal_code"`
	MapEmbed   string           `gorm:"type:text" json:"map_embed,omitempty"`
	Latitude   *decimal.Decimal `gorm:"type:decimal(9,6)" json:"latitude,omitempty"`
	Longitude  *decimal.Decimal `gorm:"type:decimal(9,6)" json:"longitude,omitempty"`
	IsActive   bool             `gorm:"default:true;index" json:"is_active"`
	CreatedAt  time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

// Review is an imported third-party platform review shown on location pages.
type Review struct {
	ID            uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerName  string       `gorm:"type:varchar(100);not null" json:"customer_name"`
	Platform      string       `gorm:"type:varchar(20);not null;index" json:"platform"`
	Rating        int          `gorm:"not null" json:"rating"`
	ReviewText    string       `gorm:"type:text;not null" json:"review_text"`
	ServiceAreaID *uint        `json:"service_area_id,omitempty"`
	ServiceArea   *ServiceArea `gorm:"foreignKey:ServiceAreaID;constraint:OnDelete:SET NULL" json:"service_area,omitempty"`
	ReviewURL     string       `gorm:"type:text" json:"review_url,omitempty"`
	IsFeatured    bool         `gorm:"default:false;index" json:"is_featured"`
	IsVerified    bool         `gorm:"default:false;index" json:"is_verified"`
	CreatedAt     time.Time    `gorm:"autoCreateTime;index" json:"created_at"`
}

// TrustBadge is a certification badge displayed site-wide.
type TrustBadge struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Icon        string    `gorm:"type:varchar(50);not null" json:"icon"`
	Description string    `gorm:"type:varchar(200);not null" json:"description"`
	URL         string    `gorm:"type:text" json:"url,omitempty"`
	Order       int       `gorm:"default:0;index" json:"order"`
	IsActive    bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}
