package quote

import (
	"testing"

	quoteModel "plumber-backend/models/quote"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testCalculator() *quoteModel.QuoteCalculator {
	return &quoteModel.QuoteCalculator{
		BasePrice:        dec("150.00"),
		LaborRatePerHour: dec("85.00"),
		EstimatedHours:   dec("2.0"),
		Options: []quoteModel.QuoteOption{
			{ID: 1, Name: "Camera Inspection", PriceModifier: dec("125.00")},
			{ID: 2, Name: "Permit Handling", PriceModifier: dec("200.00"), IsRequired: true},
			{ID: 3, Name: "Weekend Service", PriceModifier: dec("75.00")},
		},
	}
}

func TestEstimate(t *testing.T) {
	tests := []struct {
		name     string
		selected quoteModel.OptionIDList
		want     string
	}{
		{"no options", nil, "320.00"},
		{"two options", quoteModel.OptionIDList{1, 2}, "645.00"},
		{"all options", quoteModel.OptionIDList{1, 2, 3}, "720.00"},
		{"unknown ids ignored", quoteModel.OptionIDList{1, 2, 99}, "645.00"},
		{"required option not force-included", quoteModel.OptionIDList{1}, "445.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Estimate(testCalculator(), tt.selected)
			if got.StringFixed(2) != tt.want {
				t.Errorf("Estimate(%v) = %s, want %s", tt.selected, got.StringFixed(2), tt.want)
			}
		})
	}
}

func TestEstimateFractionalHours(t *testing.T) {
	calc := &quoteModel.QuoteCalculator{
		BasePrice:        dec("100.00"),
		LaborRatePerHour: dec("95.00"),
		EstimatedHours:   dec("1.5"),
	}
	got := Estimate(calc, nil)
	if got.StringFixed(2) != "242.50" {
		t.Errorf("Estimate = %s, want 242.50", got.StringFixed(2))
	}
}
