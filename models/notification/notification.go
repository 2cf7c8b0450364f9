package notification

import (
	"time"
)

// Notification types.
const (
	TypeBooking = "booking"
	TypeContact = "contact"
	TypeQuote   = "quote"
)

// AdminNotification is an append log for the staff dashboard. It carries
// no delivery guarantee; a failed append is logged and ignored.
type AdminNotification struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Type      string    `gorm:"type:varchar(20);not null;index" json:"type"`
	Title     string    `gorm:"type:varchar(200);not null" json:"title"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	IsRead    bool      `gorm:"default:false;index" json:"is_read"`
	RelatedID uint      `gorm:"not null" json:"related_id"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}
