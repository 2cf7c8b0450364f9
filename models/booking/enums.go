package booking

import "errors"

// BookingStatus is the booking workflow state.
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

var (
	// ErrInvalidTransition is returned for a status change the workflow
	// does not permit.
	ErrInvalidTransition = errors.New("invalid booking status transition")
	// ErrNotCancellable is returned when a customer tries to cancel a
	// booking that is past the cancellable states.
	ErrNotCancellable = errors.New("booking can no longer be cancelled")
)

// transitions enumerates the permitted forward moves.
var transitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:    {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed:  {BookingStatusInProgress, BookingStatusCancelled},
	BookingStatusInProgress: {BookingStatusCompleted},
	BookingStatusCompleted:  {},
	BookingStatusCancelled:  {},
}

func (bs BookingStatus) String() string {
	return string(bs)
}

func (bs BookingStatus) IsValid() bool {
	_, ok := transitions[bs]
	return ok
}

// IsTerminal reports whether no further transition is possible.
func (bs BookingStatus) IsTerminal() bool {
	return bs == BookingStatusCompleted || bs == BookingStatusCancelled
}

// Confirms reports whether the status implies a confirmed booking.
// IsConfirmed on the record must equal this after every transition.
func (bs BookingStatus) Confirms() bool {
	switch bs {
	case BookingStatusConfirmed, BookingStatusInProgress, BookingStatusCompleted:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the workflow permits moving to next.
func (bs BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, t := range transitions[bs] {
		if t == next {
			return true
		}
	}
	return false
}

// AllBookingStatuses returns every defined booking status.
func AllBookingStatuses() []BookingStatus {
	return []BookingStatus{
		BookingStatusPending,
		BookingStatusConfirmed,
		BookingStatusInProgress,
		BookingStatusCompleted,
		BookingStatusCancelled,
	}
}
