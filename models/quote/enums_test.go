package quote

import "testing"

func TestQuoteStatusTransitions(t *testing.T) {
	tests := []struct {
		from    QuoteStatus
		to      QuoteStatus
		allowed bool
	}{
		{QuoteStatusPending, QuoteStatusInReview, true},
		{QuoteStatusPending, QuoteStatusQuoted, true},
		{QuoteStatusPending, QuoteStatusAccepted, false},
		{QuoteStatusPending, QuoteStatusDeclined, false},
		{QuoteStatusInReview, QuoteStatusQuoted, true},
		{QuoteStatusInReview, QuoteStatusDeclined, true},
		{QuoteStatusInReview, QuoteStatusAccepted, false},
		{QuoteStatusQuoted, QuoteStatusAccepted, true},
		{QuoteStatusQuoted, QuoteStatusDeclined, true},
		{QuoteStatusQuoted, QuoteStatusPending, false},
		{QuoteStatusAccepted, QuoteStatusDeclined, false},
		{QuoteStatusDeclined, QuoteStatusQuoted, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.allowed {
			t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.allowed)
		}
	}
}

func TestSetStatusRejectsIllegalJump(t *testing.T) {
	q := QuoteRequest{Status: QuoteStatusPending}
	if err := q.SetStatus(QuoteStatusAccepted); err != ErrInvalidTransition {
		t.Errorf("SetStatus(accepted) from pending error = %v, want ErrInvalidTransition", err)
	}
	if q.Status != QuoteStatusPending {
		t.Errorf("failed transition mutated status to %s", q.Status)
	}
}

func TestAcceptByCustomer(t *testing.T) {
	tests := []struct {
		from    QuoteStatus
		wantErr error
	}{
		{QuoteStatusPending, ErrNotAcceptable},
		{QuoteStatusInReview, ErrNotAcceptable},
		{QuoteStatusQuoted, nil},
		{QuoteStatusAccepted, ErrNotAcceptable},
		{QuoteStatusDeclined, ErrNotAcceptable},
	}
	for _, tt := range tests {
		q := QuoteRequest{Status: tt.from}
		err := q.AcceptByCustomer()
		if err != tt.wantErr {
			t.Errorf("AcceptByCustomer from %s error = %v, want %v", tt.from, err, tt.wantErr)
			continue
		}
		if err == nil && q.Status != QuoteStatusAccepted {
			t.Errorf("AcceptByCustomer from %s left status %s", tt.from, q.Status)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	for _, s := range AllQuoteStatuses() {
		want := s == QuoteStatusAccepted || s == QuoteStatusDeclined
		if got := s.IsTerminal(); got != want {
			t.Errorf("%s.IsTerminal() = %v, want %v", s, got, want)
		}
	}
}
