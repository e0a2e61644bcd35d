package pricing

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"liveaboard-booking/models"
)

// AllocateDiscount makes the freeUnits cheapest guests free and returns the
// amount that removes. When freeUnits exceeds the number of guests, every
// guest is free. guestPrices is not modified.
func AllocateDiscount(freeUnits int, guestPrices []decimal.Decimal) (decimal.Decimal, error) {
	if freeUnits < 0 {
		return decimal.Zero, fmt.Errorf("allocate %d free units: %w", freeUnits, ErrInvalidFreeUnits)
	}
	if freeUnits == 0 || len(guestPrices) == 0 {
		return decimal.Zero, nil
	}

	sorted := make([]decimal.Decimal, len(guestPrices))
	copy(sorted, guestPrices)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].LessThan(sorted[j]) })

	if freeUnits > len(sorted) {
		freeUnits = len(sorted)
	}
	return decimal.Sum(decimal.Zero, sorted[:freeUnits]...), nil
}

// GuestPrices expands booked units into one per-person price per guest:
// a double contributes its price twice.
func GuestPrices(units []models.BookedUnit) ([]decimal.Decimal, error) {
	if units == nil {
		return nil, ErrNilUnits
	}
	prices := make([]decimal.Decimal, 0, len(units)*2)
	for _, u := range units {
		for i := 0; i < u.Guests; i++ {
			prices = append(prices, u.Price)
		}
	}
	return prices, nil
}

// TotalGuests is the pax of a booking: the sum of guests over all units
func TotalGuests(units []models.BookedUnit) int {
	pax := 0
	for _, u := range units {
		pax += u.Guests
	}
	return pax
}
