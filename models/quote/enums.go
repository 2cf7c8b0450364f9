package quote

import "errors"

// QuoteStatus is the quote request workflow state.
type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusInReview QuoteStatus = "in_review"
	QuoteStatusQuoted   QuoteStatus = "quoted"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusDeclined QuoteStatus = "declined"
)

var (
	// ErrInvalidTransition is returned for a status change the workflow
	// does not permit.
	ErrInvalidTransition = errors.New("invalid quote status transition")
	// ErrNotAcceptable is returned when a customer tries to accept a
	// quote that has not been quoted yet or is already settled.
	ErrNotAcceptable = errors.New("quote is not awaiting acceptance")
)

// Staff bulk actions in practice move pending straight to quoted, so that
// skip is permitted alongside the stepwise path.
var transitions = map[QuoteStatus][]QuoteStatus{
	QuoteStatusPending:  {QuoteStatusInReview, QuoteStatusQuoted},
	QuoteStatusInReview: {QuoteStatusQuoted, QuoteStatusDeclined},
	QuoteStatusQuoted:   {QuoteStatusAccepted, QuoteStatusDeclined},
	QuoteStatusAccepted: {},
	QuoteStatusDeclined: {},
}

func (qs QuoteStatus) String() string {
	return string(qs)
}

func (qs QuoteStatus) IsValid() bool {
	_, ok := transitions[qs]
	return ok
}

// IsTerminal reports whether no further transition is possible.
func (qs QuoteStatus) IsTerminal() bool {
	return qs == QuoteStatusAccepted || qs == QuoteStatusDeclined
}

// CanTransitionTo reports whether the workflow permits moving to next.
func (qs QuoteStatus) CanTransitionTo(next QuoteStatus) bool {
	for _, t := range transitions[qs] {
		if t == next {
			return true
		}
	}
	return false
}

// AllQuoteStatuses returns every defined quote status.
func AllQuoteStatuses() []QuoteStatus {
	return []QuoteStatus{
		QuoteStatusPending,
		QuoteStatusInReview,
		QuoteStatusQuoted,
		QuoteStatusAccepted,
		QuoteStatusDeclined,
	}
}
