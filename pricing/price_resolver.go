package pricing

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"

	"liveaboard-booking/models"
)

// DefaultBadgeMinDiscountPercent is the smallest discount shown as a badge
const DefaultBadgeMinDiscountPercent = 5

var (
	// Plans with these words are not publicly bookable rates
	restrictedPlanName = regexp.MustCompile(`(?i)\b(group|charter|foc|instructor|agent|private)\b|free\s+of\s+charge`)
	promoPlanName      = regexp.MustCompile(`(?i)\b(promo|promotion|special|offer|deal|discount|sale)\b|early\s*bird|last\s*minute`)
)

type priceCandidate struct {
	price  decimal.Decimal
	parent *decimal.Decimal
	planID string
	plan   string
}

// fromPriceResolver scans rate plans for the lowest displayable price
type fromPriceResolver struct {
	minBadgePercent int
}

// ResolveFromPrice finds a trip's headline price with the default badge
// threshold. It returns nil when no plan carries a usable price.
func ResolveFromPrice(plans []map[string]any, role models.Role) *models.FromPrice {
	return fromPriceResolver{minBadgePercent: DefaultBadgeMinDiscountPercent}.resolve(plans, role)
}

func (r fromPriceResolver) resolve(plans []map[string]any, role models.Role) *models.FromPrice {
	var best *priceCandidate
	consider := func(rec map[string]any, planID, planName string) {
		price, ok := firstAmount(rec, sellPriceFields)
		if !ok {
			return
		}
		parent := parentAmount(rec, price)
		switch {
		case best == nil || price.LessThan(best.price):
			best = &priceCandidate{price: price, parent: parent, planID: planID, plan: planName}
		case price.Equal(best.price) && parent != nil && (best.parent == nil || parent.GreaterThan(*best.parent)):
			// same sell price, better list price
			best.parent = parent
		}
	}

	for _, plan := range plans {
		name := stringField(plan, nameFields)
		if role != models.RolePrivileged && restrictedPlanName.MatchString(name) {
			continue
		}
		planID := stringField(plan, append([]string{"rate_plan_id", "ratePlanId"}, idFields...))

		cabins := firstList(plan, cabinTypeFields)
		nested := false
		for _, cabin := range cabins {
			for _, occ := range occupancyRecords(cabin) {
				nested = true
				consider(occ, planID, name)
			}
		}
		if !nested {
			consider(plan, planID, name)
		}
	}
	if best == nil {
		return nil
	}

	out := &models.FromPrice{
		Price:        best.price,
		ParentPrice:  best.parent,
		RatePlanID:   best.planID,
		RatePlanName: best.plan,
	}
	if best.parent != nil {
		out.DiscountPercent = discountPercent(best.price, *best.parent)
	}
	switch {
	case out.DiscountPercent >= r.minBadgePercent:
		out.Badge = fmt.Sprintf("-%d%%", out.DiscountPercent)
	case promoPlanName.MatchString(best.plan):
		out.Badge = best.plan
	}
	return out
}

// discountPercent is round((parent - price) / parent * 100); parent must be > price
func discountPercent(price, parent decimal.Decimal) int {
	if !parent.IsPositive() {
		return 0
	}
	pct := parent.Sub(price).Div(parent).Mul(decimal.NewFromInt(100)).Round(0)
	return int(pct.IntPart())
}
