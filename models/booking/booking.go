package booking

import (
	"time"

	"plumber-backend/constants"
	areaModel "plumber-backend/models/area"
	customerModel "plumber-backend/models/customer"
	serviceModel "plumber-backend/models/service"
)

// Booking is a customer service request. Never hard-deleted; cancellation
// is a status transition.
type Booking struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Optional link to a portal account. Guest submissions leave this nil
	// and are matched by email in the portal.
	CustomerID *uint                          `gorm:"index" json:"customer_id,omitempty"`
	Customer   *customerModel.CustomerProfile `gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL" json:"customer,omitempty"`

	CustomerName string `gorm:"type:varchar(100);not null" json:"customer_name"`
	Email        string `gorm:"type:varchar(255);not null;index" json:"email"`
	Phone        string `gorm:"type:varchar(20);not null" json:"phone"`
	Address      string `gorm:"type:text;not null" json:"address"`

	ServiceID uint                 `gorm:"not null" json:"service_id"`
	Service   serviceModel.Service `gorm:"foreignKey:ServiceID;constraint:OnDelete:RESTRICT" json:"service"`

	ServiceAreaID *uint                  `json:"service_area_id,omitempty"`
	ServiceArea   *areaModel.ServiceArea `gorm:"foreignKey:ServiceAreaID;constraint:OnDelete:SET NULL" json:"service_area,omitempty"`

	Urgency       string    `gorm:"type:varchar(20);not null;index" json:"urgency"`
	PreferredDate time.Time `gorm:"not null" json:"preferred_date"`
	Description   string    `gorm:"type:text;not null" json:"description"`

	Status      BookingStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	IsConfirmed bool          `gorm:"default:false;index" json:"is_confirmed"`

	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// IsEmergency reports whether the booking was flagged as an emergency.
func (b *Booking) IsEmergency() bool {
	return b.Urgency == constants.UrgencyEmergency
}

// SetStatus applies a workflow transition and re-derives IsConfirmed.
// It is the only sanctioned way to change Status.
func (b *Booking) SetStatus(next BookingStatus) error {
	if !b.Status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	b.Status = next
	b.IsConfirmed = next.Confirms()
	return nil
}

// CancelByCustomer is the customer-initiated cancellation entry point,
// permitted only from pending or confirmed.
func (b *Booking) CancelByCustomer() error {
	if b.Status != BookingStatusPending && b.Status != BookingStatusConfirmed {
		return ErrNotCancellable
	}
	return b.SetStatus(BookingStatusCancelled)
}
