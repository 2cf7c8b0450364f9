package quote

import (
	"github.com/shopspring/decimal"
)

// QuoteCreateRequest is the calculator submission payload. The server
// recomputes the estimate from the selection; a client-sent total is
// ignored.
type QuoteCreateRequest struct {
	ServiceID       uint   `json:"service_id"`
	CustomerName    string `json:"customer_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	SelectedOptions []uint `json:"selected_options"`
	Notes           string `json:"notes,omitempty"`
}

// CalculatorOption is one add-on in the calculator data payload.
type CalculatorOption struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Required    bool            `json:"required"`
}

// CalculatorData is the GET payload the calculator UI renders from.
type CalculatorData struct {
	BasePrice      decimal.Decimal    `json:"base_price"`
	LaborRate      decimal.Decimal    `json:"labor_rate"`
	EstimatedHours decimal.Decimal    `json:"estimated_hours"`
	Options        []CalculatorOption `json:"options"`
}

// QuoteSubmissionResponse reports the created quote and notification
// outcome.
type QuoteSubmissionResponse struct {
	QuoteID        uint            `json:"quote_id"`
	EstimatedTotal decimal.Decimal `json:"estimated_total"`
	EmailSent      bool            `json:"email_sent"`
}
