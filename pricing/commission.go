package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"liveaboard-booking/models"
)

// CommissionPolicy decides the agency commission on a booking.
// GroupRate applies when a FOC discount was granted or the party reaches
// GroupMinPax guests; BaseRate applies otherwise.
type CommissionPolicy struct {
	BaseRate    decimal.Decimal `json:"baseRate"`
	GroupRate   decimal.Decimal `json:"groupRate"`
	GroupMinPax int             `json:"groupMinPax"`
}

// DefaultCommissionPolicy is 10%, or 15% for FOC or 3+ guest bookings
var DefaultCommissionPolicy = CommissionPolicy{
	BaseRate:    decimal.RequireFromString("0.10"),
	GroupRate:   decimal.RequireFromString("0.15"),
	GroupMinPax: 3,
}

// CalculateCommission applies DefaultCommissionPolicy
func CalculateCommission(totalPrice, focDiscount decimal.Decimal, pax int) (models.Commission, error) {
	return DefaultCommissionPolicy.Calculate(totalPrice, focDiscount, pax)
}

// Calculate returns the rate, the commission rounded to whole currency units
// (half away from zero) and what remains payable. No currency conversion
// happens here.
func (p CommissionPolicy) Calculate(totalPrice, focDiscount decimal.Decimal, pax int) (models.Commission, error) {
	if pax < 0 {
		return models.Commission{}, fmt.Errorf("commission for %d pax: %w", pax, ErrInvalidPax)
	}
	rate := p.BaseRate
	if focDiscount.IsPositive() || pax >= p.GroupMinPax {
		rate = p.GroupRate
	}
	amount := totalPrice.Mul(rate).Round(0)
	return models.Commission{
		Rate:        rate,
		Amount:      amount,
		FinalAmount: totalPrice.Sub(amount),
	}, nil
}
