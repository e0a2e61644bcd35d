package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Selection is one user choice of cabin and occupancy.
// Example: {"ratePlanId": "rp-1", "cabinTypeId": "deluxe", "occupancy": 2, "quantity": 1}
// ratePlanId may be empty, in which case the first plan offering the cabin is used.
// quantity defaults to 1.
type Selection struct {
	RatePlanID  string `json:"ratePlanId,omitempty"`
	CabinTypeID string `json:"cabinTypeId"`
	Occupancy   int    `json:"occupancy"`
	Quantity    int    `json:"quantity,omitempty"`
}

// BookedUnit is a single selected cabin-occupancy instance
type BookedUnit struct {
	RatePlanID  string          `json:"ratePlanId"`
	CabinTypeID string          `json:"cabinTypeId"`
	CabinName   string          `json:"cabinName"`
	Occupancy   int             `json:"occupancy"`
	Label       string          `json:"label"`
	Price       decimal.Decimal `json:"price"` // per person
	Guests      int             `json:"guests"`
}

// Total returns what the unit costs before any discount
func (u BookedUnit) Total() decimal.Decimal {
	return u.Price.Mul(decimal.NewFromInt(int64(u.Guests)))
}

// QuoteRequest is the input of a single pricing computation.
// Currency is resolved by the caller; the engine never looks it up.
type QuoteRequest struct {
	Trip       *Trip
	Selections []Selection
	Currency   string
}

// CreateQuoteRequest represents the request body for POST /api/quotes.
// Either trip (the raw upstream document) or tripId (a stored snapshot) must be set.
type CreateQuoteRequest struct {
	TripID     string         `json:"tripId,omitempty"`
	Trip       map[string]any `json:"trip,omitempty"`
	Selections []Selection    `json:"selections"`
}

// FromPriceRequest represents the request body for POST /api/trips/from-price
type FromPriceRequest struct {
	Role string         `json:"role"`
	Trip map[string]any `json:"trip"`
}

// PricingResult is the complete outcome of a quote. It is recomputed from
// scratch whenever the selections change.
type PricingResult struct {
	ID               string          `json:"id,omitempty"`
	TripID           string          `json:"tripId"`
	BoatName         string          `json:"boatName,omitempty"`
	Currency         string          `json:"currency"`
	Pax              int             `json:"pax"`
	Units            []BookedUnit    `json:"units"`
	BaseTotal        decimal.Decimal `json:"baseTotal"`
	FocDiscount      decimal.Decimal `json:"focDiscount"`
	FreeUnits        int             `json:"freeUnits"`
	WinningOffer     *ParsedOffer    `json:"winningOffer"`
	TotalPrice       decimal.Decimal `json:"totalPrice"`
	CommissionRate   decimal.Decimal `json:"commissionRate"`
	CommissionAmount decimal.Decimal `json:"commissionAmount"`
	FinalAmount      decimal.Decimal `json:"finalAmount"`
	CreatedAt        time.Time       `json:"createdAt,omitempty"`
}
