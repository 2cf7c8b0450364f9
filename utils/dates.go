package utils

import (
	"errors"
	"time"

	"github.com/jinzhu/now"
)

// ErrDateInPast carries the user-facing preferred-date message.
var ErrDateInPast = errors.New("Preferred date cannot be in the past.")

// ValidatePreferredDate rejects a preferred date earlier than the current
// instant. The comparison is timezone-aware: both sides are instants.
func ValidatePreferredDate(preferred time.Time) error {
	if preferred.Before(time.Now()) {
		return ErrDateInPast
	}
	return nil
}

// Quick-booking time slots.
const (
	SlotMorning   = "morning"   // 8AM - 12PM
	SlotAfternoon = "afternoon" // 12PM - 5PM
	SlotEvening   = "evening"   // 5PM - 8PM
)

// CombineDateSlot turns a calendar date plus a named slot into a concrete
// local datetime: morning 9:00, afternoon 14:00, evening 17:00.
func CombineDateSlot(date time.Time, slot string) (time.Time, error) {
	var hour int
	switch slot {
	case SlotMorning:
		hour = 9
	case SlotAfternoon:
		hour = 14
	case SlotEvening:
		hour = 17
	default:
		return time.Time{}, errors.New("unknown time slot")
	}
	day := now.With(date).BeginningOfDay()
	return day.Add(time.Duration(hour) * time.Hour), nil
}

// BeginningOfYear returns the start of the current year, for the
// services-this-year statistic.
func BeginningOfYear() time.Time {
	return now.BeginningOfYear()
}
