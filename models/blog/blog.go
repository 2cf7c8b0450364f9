package blog

import (
	"strings"
	"time"

	areaModel "plumber-backend/models/area"
	serviceModel "plumber-backend/models/service"
	"plumber-backend/utils"

	"gorm.io/gorm"
)

// BlogPost is a marketing article. Unlike catalog slugs, post slugs are
// persisted: they are part of the published URL and must survive retitling.
type BlogPost struct {
	ID               uint                   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title            string                 `gorm:"type:varchar(200);not null" json:"title"`
	Slug             string                 `gorm:"type:varchar(200);uniqueIndex;not null" json:"slug"`
	Excerpt          string                 `gorm:"type:varchar(300);not null" json:"excerpt"`
	Content          string                 `gorm:"type:text;not null" json:"content"`
	Category         string                 `gorm:"type:varchar(20);not null;index" json:"category"`
	FeaturedImage    string                 `gorm:"type:text" json:"featured_image,omitempty"`
	RelatedServiceID *uint                  `json:"related_service_id,omitempty"`
	RelatedService   *serviceModel.Service  `gorm:"foreignKey:RelatedServiceID;constraint:OnDelete:SET NULL" json:"related_service,omitempty"`
	RelatedAreaID    *uint                  `json:"related_area_id,omitempty"`
	RelatedArea      *areaModel.ServiceArea `gorm:"foreignKey:RelatedAreaID;constraint:OnDelete:SET NULL" json:"related_area,omitempty"`
	MetaTitle        string                 `gorm:"type:varchar(60)" json:"meta_title,omitempty"`
	MetaDescription  string                 `gorm:"type:varchar(160)" json:"meta_description,omitempty"`
	Tags             string                 `gorm:"type:varchar(200)" json:"tags,omitempty"`
	IsPublished      bool                   `gorm:"default:false;index" json:"is_published"`
	IsFeatured       bool                   `gorm:"default:false;index" json:"is_featured"`
	Views            uint                   `gorm:"not null;default:0" json:"views"`
	CreatedAt        time.Time              `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt        time.Time              `gorm:"autoUpdateTime" json:"updated_at"`
}

// BeforeSave fills the slug and SEO fields from the title and excerpt
// when they were left blank.
func (p *BlogPost) BeforeSave(tx *gorm.DB) error {
	if p.Slug == "" {
		p.Slug = utils.Slugify(p.Title)
	}
	if p.MetaTitle == "" {
		p.MetaTitle = truncate(p.Title, 60)
	}
	if p.MetaDescription == "" {
		p.MetaDescription = truncate(p.Excerpt, 160)
	}
	return nil
}

// TagsList splits the comma-separated tags field.
func (p *BlogPost) TagsList() []string {
	tags := make([]string, 0, 4)
	for _, tag := range strings.Split(p.Tags, ",") {
		if t := strings.TrimSpace(tag); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
