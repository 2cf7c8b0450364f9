package booking_event

import (
	bookingModel "plumber-backend/models/booking"

	"gorm.io/gorm"
)

// RecordStatusEvent appends a status change row for a booking. Events are
// many per booking and never updated.
func RecordStatusEvent(tx *gorm.DB, bookingID uint, status bookingModel.BookingStatus, createdBy string) error {
	ev := bookingModel.BookingStatusEvent{
		BookingID: bookingID,
		Status:    status,
		CreatedBy: createdBy,
	}
	return tx.Create(&ev).Error
}
