package pricing

import (
	"fmt"

	"liveaboard-booking/models"
)

// Upstream collections that may hold rate plans, with the kind each implies.
// Plain "rate_plans" entries are treated as retail.
var ratePlanSources = []struct {
	field string
	kind  string
}{
	{"rate_plans", models.RatePlanRetail},
	{"ratePlans", models.RatePlanRetail},
	{"retail_rate_plans", models.RatePlanRetail},
	{"retailRatePlans", models.RatePlanRetail},
	{"charter_rate_plans", models.RatePlanCharter},
	{"charterRatePlans", models.RatePlanCharter},
}

// RawRatePlans collects every rate plan record of a raw trip document in
// source order: retail collections first, then charter.
func RawRatePlans(raw map[string]any) []map[string]any {
	var plans []map[string]any
	for _, src := range ratePlanSources {
		plans = append(plans, recordList(raw[src.field])...)
	}
	return plans
}

// NormalizeRatePlan canonicalizes one raw rate plan record. Flat plans with
// no cabin structure come back with no cabin types.
func NormalizeRatePlan(raw map[string]any, kind string) models.RatePlan {
	plan := models.RatePlan{
		ID:   stringField(raw, append([]string{"rate_plan_id", "ratePlanId"}, idFields...)),
		Name: stringField(raw, nameFields),
		Kind: kind,
	}
	for _, cabin := range firstList(raw, cabinTypeFields) {
		ct := NormalizeCabinType(cabin)
		if len(ct.Occupancies) == 0 {
			continue
		}
		plan.CabinTypes = append(plan.CabinTypes, ct)
	}
	return plan
}

// NormalizeTrip rebuilds a Trip from an upstream document. Only a nil document
// is an error; missing or odd fields just leave the corresponding parts empty.
func NormalizeTrip(raw map[string]any) (*models.Trip, error) {
	if raw == nil {
		return nil, fmt.Errorf("normalize trip: %w", ErrNilTrip)
	}

	trip := &models.Trip{
		ID:        stringField(raw, []string{"id", "trip_id", "tripId"}),
		StartDate: stringField(raw, []string{"start_date", "startDate", "start"}),
		EndDate:   stringField(raw, []string{"end_date", "endDate", "end"}),
	}
	if boat := mapField(raw, "boat"); boat != nil {
		trip.Boat = models.Boat{ID: stringField(boat, idFields), Name: stringField(boat, nameFields)}
	}
	if product := mapField(raw, "product"); product != nil {
		trip.Product = models.Product{Name: stringField(product, nameFields)}
	}
	for _, src := range ratePlanSources {
		for _, rp := range recordList(raw[src.field]) {
			trip.RatePlans = append(trip.RatePlans, NormalizeRatePlan(rp, src.kind))
		}
	}
	if spaces := mapField(raw, "spaces"); spaces != nil {
		trip.Spaces = normalizeSpaces(spaces)
	}
	return trip, nil
}

func normalizeSpaces(raw map[string]any) models.Spaces {
	count := func(key string) int {
		n, _ := intField(raw, []string{key})
		return n
	}
	spaces := models.Spaces{
		Available: count("available"),
		Held:      count("held"),
		Booked:    count("booked"),
	}

	byCabin := make(map[string]int)
	switch v := raw["cabin_types"].(type) {
	case map[string]any:
		for id, n := range v {
			if i, ok := toInt(n); ok {
				byCabin[id] = i
			}
		}
	case []any:
		for _, rec := range recordList(v) {
			id := stringField(rec, append([]string{"cabin_type_id"}, idFields...))
			if n, ok := intField(rec, []string{"available"}); ok && id != "" {
				byCabin[id] = n
			}
		}
	}
	if len(byCabin) > 0 {
		spaces.ByCabinType = byCabin
	}
	return spaces
}
