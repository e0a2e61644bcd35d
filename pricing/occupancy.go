package pricing

import (
	"sort"
	"strconv"

	"liveaboard-booking/models"
)

// NormalizeOccupancies canonicalizes a cabin type's raw occupancy records.
//
// The result holds at most one option per code in {1,2,3}, ordered by code.
// Unknown codes and unpriceable records are dropped, and the first record seen
// for a code wins. When a single (1) exists but a double (2) does not, a double
// is synthesized from the single's per-person price: each guest in a double
// pays the single rate. The input records are never modified.
func NormalizeOccupancies(raw []map[string]any) []models.OccupancyOption {
	byCode := make(map[int]models.OccupancyOption, 3)
	for _, rec := range raw {
		code, ok := intField(rec, occupancyCodeFields)
		if !ok {
			continue
		}
		label, known := models.OccupancyLabel(code)
		if !known {
			continue
		}
		if _, seen := byCode[code]; seen {
			continue
		}
		price, ok := firstAmount(rec, sellPriceFields)
		if !ok {
			continue
		}
		byCode[code] = models.OccupancyOption{
			Code:        code,
			Label:       label,
			VendorLabel: stringField(rec, []string{"label", "description"}),
			Price:       price,
			ParentPrice: parentAmount(rec, price),
		}
	}

	if single, ok := byCode[models.OccupancySingle]; ok {
		if _, hasDouble := byCode[models.OccupancyDouble]; !hasDouble {
			byCode[models.OccupancyDouble] = synthesizeDouble(single)
		}
	}

	out := make([]models.OccupancyOption, 0, len(byCode))
	for _, opt := range byCode {
		out = append(out, opt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

func synthesizeDouble(single models.OccupancyOption) models.OccupancyOption {
	double := models.OccupancyOption{
		Code:        models.OccupancyDouble,
		Price:       single.Price,
		Synthesized: true,
	}
	double.Label, _ = models.OccupancyLabel(models.OccupancyDouble)
	if single.ParentPrice != nil {
		parent := *single.ParentPrice
		double.ParentPrice = &parent
	}
	return double
}

// occupancyRecords extracts raw occupancy records from a cabin type. Vendors
// send either an array of objects or an object keyed by occupancy code whose
// values are objects or bare prices. Keyed entries are copied, never edited.
func occupancyRecords(cabin map[string]any) []map[string]any {
	for _, field := range occupancyListFields {
		switch v := cabin[field].(type) {
		case []any, []map[string]any:
			if list := recordList(v); len(list) > 0 {
				return list
			}
		case map[string]any:
			if list := keyedOccupancies(v); len(list) > 0 {
				return list
			}
		}
	}
	return nil
}

func keyedOccupancies(m map[string]any) []map[string]any {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]map[string]any, 0, len(keys))
	for _, k := range keys {
		code, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		switch v := m[k].(type) {
		case map[string]any:
			rec := make(map[string]any, len(v)+1)
			for field, value := range v {
				rec[field] = value
			}
			if _, ok := rec["occupancy"]; !ok {
				rec["occupancy"] = code
			}
			out = append(out, rec)
		default:
			out = append(out, map[string]any{"occupancy": code, "price": v})
		}
	}
	return out
}

// NormalizeCabinType canonicalizes one raw cabin type record
func NormalizeCabinType(raw map[string]any) models.CabinType {
	return models.CabinType{
		ID:          stringField(raw, append([]string{"cabin_type_id", "cabinTypeId"}, idFields...)),
		Name:        stringField(raw, append([]string{"cabin_name"}, nameFields...)),
		Occupancies: NormalizeOccupancies(occupancyRecords(raw)),
	}
}
