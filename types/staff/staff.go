package staff

import (
	"github.com/shopspring/decimal"
)

// BookingStatusRequest is the staff booking status payload.
type BookingStatusRequest struct {
	Status string `json:"status"`
}

// QuoteStatusRequest is the staff quote status payload. FinalQuote is
// required when moving to quoted.
type QuoteStatusRequest struct {
	Status     string           `json:"status"`
	FinalQuote *decimal.Decimal `json:"final_quote,omitempty"`
}

// NoteCreateRequest adds a staff note to a customer profile.
type NoteCreateRequest struct {
	Note       string `json:"note"`
	IsInternal *bool  `json:"is_internal,omitempty"`
}
