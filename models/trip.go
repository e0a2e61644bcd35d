package models

import "github.com/shopspring/decimal"

// Occupancy codes used by the upstream inventory provider
const (
	OccupancySingle  = 1
	OccupancyDouble  = 2
	OccupancySoleUse = 3
)

var occupancyLabels = map[int]string{
	OccupancySingle:  "Single",
	OccupancyDouble:  "Double",
	OccupancySoleUse: "Sole-use",
}

// OccupancyLabel returns the display label for an occupancy code.
// The second return value is false for codes outside {1,2,3}.
func OccupancyLabel(code int) (string, bool) {
	label, ok := occupancyLabels[code]
	return label, ok
}

// GuestCount returns how many guests a booking of the given occupancy code seats
func GuestCount(code int) int {
	if code == OccupancyDouble {
		return 2
	}
	return 1
}

// Boat identifies the vessel operating a trip
type Boat struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Product is the itinerary sold for a trip
type Product struct {
	Name string `json:"name"`
}

// Spaces holds seat counts reported by the inventory provider.
// They are informational only; nothing here locks or reserves seats.
type Spaces struct {
	Available   int            `json:"available"`
	Held        int            `json:"held"`
	Booked      int            `json:"booked"`
	ByCabinType map[string]int `json:"byCabinType,omitempty"`
}

// Trip is a normalized snapshot of an upstream trip document
type Trip struct {
	ID        string     `json:"id"`
	StartDate string     `json:"startDate"`
	EndDate   string     `json:"endDate"`
	Boat      Boat       `json:"boat"`
	Product   Product    `json:"product"`
	RatePlans []RatePlan `json:"ratePlans"`
	Spaces    Spaces     `json:"spaces"`
}

// Rate plan kinds, taken from the upstream collection the plan was found in
const (
	RatePlanRetail  = "retail"
	RatePlanCharter = "charter"
)

// RatePlan is a named set of cabin prices. The name is free text and is the
// only signal for group/FOC offer semantics.
type RatePlan struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Kind       string      `json:"kind"`
	CabinTypes []CabinType `json:"cabinTypes"`
}

// CabinType is a cabin category with its canonical occupancy prices
type CabinType struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Occupancies []OccupancyOption `json:"occupancies"`
}

// Occupancy returns the option for the given code, if present
func (c CabinType) Occupancy(code int) (OccupancyOption, bool) {
	for _, o := range c.Occupancies {
		if o.Code == code {
			return o, true
		}
	}
	return OccupancyOption{}, false
}

// OccupancyOption is a per-person price for one occupancy code.
// ParentPrice is only set when it is strictly greater than Price.
type OccupancyOption struct {
	Code        int              `json:"code"`
	Label       string           `json:"label"`
	VendorLabel string           `json:"vendorLabel,omitempty"`
	Price       decimal.Decimal  `json:"price"`
	ParentPrice *decimal.Decimal `json:"parentPrice,omitempty"`
	Synthesized bool             `json:"synthesized,omitempty"`
}
