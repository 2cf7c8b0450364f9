package booking

import "testing"

func TestBookingStatusTransitions(t *testing.T) {
	tests := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusPending, BookingStatusCancelled, true},
		{BookingStatusPending, BookingStatusInProgress, false},
		{BookingStatusPending, BookingStatusCompleted, false},
		{BookingStatusConfirmed, BookingStatusInProgress, true},
		{BookingStatusConfirmed, BookingStatusCancelled, true},
		{BookingStatusConfirmed, BookingStatusCompleted, false},
		{BookingStatusInProgress, BookingStatusCompleted, true},
		{BookingStatusInProgress, BookingStatusCancelled, false},
		{BookingStatusCompleted, BookingStatusPending, false},
		{BookingStatusCancelled, BookingStatusConfirmed, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.allowed {
			t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.allowed)
		}
	}
}

func TestSetStatusDerivesIsConfirmed(t *testing.T) {
	b := Booking{Status: BookingStatusPending}

	steps := []struct {
		next          BookingStatus
		wantConfirmed bool
	}{
		{BookingStatusConfirmed, true},
		{BookingStatusInProgress, true},
		{BookingStatusCompleted, true},
	}
	for _, step := range steps {
		if err := b.SetStatus(step.next); err != nil {
			t.Fatalf("SetStatus(%s) error: %v", step.next, err)
		}
		if b.IsConfirmed != step.wantConfirmed {
			t.Errorf("after %s, IsConfirmed = %v, want %v", step.next, b.IsConfirmed, step.wantConfirmed)
		}
	}

	cancelled := Booking{Status: BookingStatusPending, IsConfirmed: true}
	if err := cancelled.SetStatus(BookingStatusCancelled); err != nil {
		t.Fatalf("SetStatus(cancelled) error: %v", err)
	}
	if cancelled.IsConfirmed {
		t.Error("cancelled booking still confirmed")
	}
}

func TestSetStatusRejectsIllegalJump(t *testing.T) {
	b := Booking{Status: BookingStatusPending}
	if err := b.SetStatus(BookingStatusCompleted); err != ErrInvalidTransition {
		t.Errorf("SetStatus(completed) from pending error = %v, want ErrInvalidTransition", err)
	}
	if b.Status != BookingStatusPending {
		t.Errorf("failed transition mutated status to %s", b.Status)
	}
}

func TestCancelByCustomer(t *testing.T) {
	tests := []struct {
		from    BookingStatus
		wantErr error
	}{
		{BookingStatusPending, nil},
		{BookingStatusConfirmed, nil},
		{BookingStatusInProgress, ErrNotCancellable},
		{BookingStatusCompleted, ErrNotCancellable},
		{BookingStatusCancelled, ErrNotCancellable},
	}
	for _, tt := range tests {
		b := Booking{Status: tt.from}
		err := b.CancelByCustomer()
		if err != tt.wantErr {
			t.Errorf("CancelByCustomer from %s error = %v, want %v", tt.from, err, tt.wantErr)
			continue
		}
		if err == nil && b.Status != BookingStatusCancelled {
			t.Errorf("CancelByCustomer from %s left status %s", tt.from, b.Status)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	for _, s := range AllBookingStatuses() {
		want := s == BookingStatusCompleted || s == BookingStatusCancelled
		if got := s.IsTerminal(); got != want {
			t.Errorf("%s.IsTerminal() = %v, want %v", s, got, want)
		}
	}
}
