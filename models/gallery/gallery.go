package gallery

import (
	"time"

	areaModel "plumber-backend/models/area"
	serviceModel "plumber-backend/models/service"
)

// GalleryImage is a portfolio photo, optionally a before/after pair.
type GalleryImage struct {
	ID          uint                   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string                 `gorm:"type:varchar(200);not null" json:"title"`
	Description string                 `gorm:"type:text" json:"description,omitempty"`
	ImagePath   string                 `gorm:"type:text;not null" json:"image_path"`
	BeforePath  *string                `gorm:"type:text" json:"before_path,omitempty"`
	AfterPath   *string                `gorm:"type:text" json:"after_path,omitempty"`
	Category    string                 `gorm:"type:varchar(20);not null;default:'installation';index" json:"category"`
	ServiceID   *uint                  `json:"service_id,omitempty"`
	Service     *serviceModel.Service  `gorm:"foreignKey:ServiceID;constraint:OnDelete:SET NULL" json:"service,omitempty"`
	LocationID  *uint                  `json:"location_id,omitempty"`
	Location    *areaModel.ServiceArea `gorm:"foreignKey:LocationID;constraint:OnDelete:SET NULL" json:"location,omitempty"`
	IsFeatured  bool                   `gorm:"default:false;index" json:"is_featured"`
	IsActive    bool                   `gorm:"default:true;index" json:"is_active"`
	Order       int                    `gorm:"default:0;index" json:"order"`
	CreatedAt   time.Time              `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time              `gorm:"autoUpdateTime" json:"updated_at"`
}

// IsBeforeAfter reports whether the image carries a before/after pair.
func (g *GalleryImage) IsBeforeAfter() bool {
	return g.BeforePath != nil && g.AfterPath != nil
}

// PrimaryPath returns the path to display: the after shot for pairs,
// the plain image otherwise.
func (g *GalleryImage) PrimaryPath() string {
	if g.IsBeforeAfter() {
		return *g.AfterPath
	}
	return g.ImagePath
}
