package quote

import (
	quoteModel "plumber-backend/models/quote"

	"github.com/shopspring/decimal"
)

// Estimate computes base_price + labor_rate_per_hour * estimated_hours +
// the sum of the selected option modifiers, rounded to two fractional
// digits. Selection ids that do not belong to the calculator are ignored.
// Required options are not force-included; the selection is taken as
// given and enforcement is left to the client.
func Estimate(calc *quoteModel.QuoteCalculator, selected quoteModel.OptionIDList) decimal.Decimal {
	total := calc.BasePrice.Add(calc.LaborRatePerHour.Mul(calc.EstimatedHours))

	chosen := make(map[uint]struct{}, len(selected))
	for _, id := range selected {
		chosen[id] = struct{}{}
	}
	for _, opt := range calc.Options {
		if _, ok := chosen[opt.ID]; ok {
			total = total.Add(opt.PriceModifier)
		}
	}

	return total.Round(2)
}
