package quote

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	customerModel "plumber-backend/models/customer"
	serviceModel "plumber-backend/models/service"

	"github.com/shopspring/decimal"
)

// QuoteCalculator is the per-service pricing template: one per service.
type QuoteCalculator struct {
	ID               uint                 `gorm:"primaryKey;autoIncrement" json:"id"`
	ServiceID        uint                 `gorm:"uniqueIndex;not null" json:"service_id"`
	Service          serviceModel.Service `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE" json:"service"`
	BasePrice        decimal.Decimal      `gorm:"type:decimal(8,2);not null" json:"base_price"`
	LaborRatePerHour decimal.Decimal      `gorm:"type:decimal(6,2);not null" json:"labor_rate_per_hour"`
	EstimatedHours   decimal.Decimal      `gorm:"type:decimal(4,1);not null" json:"estimated_hours"`
	IsActive         bool                 `gorm:"default:true" json:"is_active"`
	Options          []QuoteOption        `gorm:"foreignKey:CalculatorID;constraint:OnDelete:CASCADE" json:"options"`
}

// QuoteOption is a named add-on owned by a calculator.
type QuoteOption struct {
	ID            uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	CalculatorID  uint            `gorm:"not null;index" json:"calculator_id"`
	Name          string          `gorm:"type:varchar(100);not null" json:"name"`
	Description   string          `gorm:"type:varchar(200)" json:"description"`
	PriceModifier decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"price_modifier"`
	IsRequired    bool            `gorm:"default:false" json:"is_required"`
	Order         int             `gorm:"default:0;index" json:"order"`
}

// OptionIDList stores the customer's selected option ids as a JSON array.
type OptionIDList []uint

func (l OptionIDList) Value() (driver.Value, error) {
	if l == nil {
		l = OptionIDList{}
	}
	return json.Marshal(l)
}

func (l *OptionIDList) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			b = []byte(s)
		} else {
			return errors.New("type assertion to []byte failed")
		}
	}
	return json.Unmarshal(b, l)
}

// QuoteRequest is a customer estimate request produced by the calculator.
type QuoteRequest struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	CustomerID *uint                          `gorm:"index" json:"customer_id,omitempty"`
	Customer   *customerModel.CustomerProfile `gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL" json:"customer,omitempty"`

	ServiceID uint                 `gorm:"not null" json:"service_id"`
	Service   serviceModel.Service `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE" json:"service"`

	CustomerName string `gorm:"type:varchar(100);not null" json:"customer_name"`
	Email        string `gorm:"type:varchar(255);not null;index" json:"email"`
	Phone        string `gorm:"type:varchar(20);not null" json:"phone"`
	Address      string `gorm:"type:text;not null" json:"address"`

	SelectedOptions OptionIDList     `gorm:"type:jsonb;not null;default:'[]'" json:"selected_options"`
	EstimatedTotal  decimal.Decimal  `gorm:"type:decimal(8,2);not null" json:"estimated_total"`
	FinalQuote      *decimal.Decimal `gorm:"type:decimal(8,2)" json:"final_quote,omitempty"`

	Status     QuoteStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Notes      string      `gorm:"type:text" json:"notes,omitempty"`
	AdminNotes string      `gorm:"type:text" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// SetStatus applies a workflow transition; illegal jumps are rejected.
func (q *QuoteRequest) SetStatus(next QuoteStatus) error {
	if !q.Status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	q.Status = next
	return nil
}

// AcceptByCustomer is the customer entry point: only a quoted request can
// be accepted, which then permits booking creation from the quote.
func (q *QuoteRequest) AcceptByCustomer() error {
	if q.Status != QuoteStatusQuoted {
		return ErrNotAcceptable
	}
	return q.SetStatus(QuoteStatusAccepted)
}
