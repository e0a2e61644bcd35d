package pricing

import (
	"fmt"
	"sort"

	"liveaboard-booking/models"
)

type offerCandidate struct {
	offer models.ParsedOffer
	free  int
}

// betterOffer orders candidates by free units desc, efficiency rate desc,
// bonus desc, required paid asc. Rates are compared by cross-multiplying so
// the comparison stays exact.
func betterOffer(a, b offerCandidate) bool {
	if a.free != b.free {
		return a.free > b.free
	}
	ra := a.offer.BonusFree * (b.offer.RequiredPaid + b.offer.BonusFree)
	rb := b.offer.BonusFree * (a.offer.RequiredPaid + a.offer.BonusFree)
	if ra != rb {
		return ra > rb
	}
	if a.offer.BonusFree != b.offer.BonusFree {
		return a.offer.BonusFree > b.offer.BonusFree
	}
	return a.offer.RequiredPaid < b.offer.RequiredPaid
}

// SelectBestOffer picks the single offer that frees the most guests for a
// party of pax. Offers freeing nobody are ignored; if none remain the result is
// nil with no error. Offers equal on every key resolve to the earliest in input
// order.
func SelectBestOffer(offers []models.ParsedOffer, pax int) (*models.ParsedOffer, error) {
	if pax < 0 {
		return nil, fmt.Errorf("select offer for %d pax: %w", pax, ErrInvalidPax)
	}

	candidates := make([]offerCandidate, 0, len(offers))
	for _, o := range offers {
		if free := o.FreeUnits(pax); free > 0 {
			candidates = append(candidates, offerCandidate{offer: o, free: free})
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return betterOffer(candidates[i], candidates[j])
	})
	best := candidates[0].offer
	return &best, nil
}
