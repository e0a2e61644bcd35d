package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParsedOffer is a group offer read from a rate plan name, e.g. "7+1 FOC":
// for every RequiredPaid paying guests, BonusFree more travel free.
type ParsedOffer struct {
	Source       string `json:"source"`
	RequiredPaid int    `json:"requiredPaid"`
	BonusFree    int    `json:"bonusFree"`
}

// FreeUnits returns how many guests travel free for a party of pax
func (o ParsedOffer) FreeUnits(pax int) int {
	block := o.RequiredPaid + o.BonusFree
	if block <= 0 || pax < o.RequiredPaid {
		return 0
	}
	return pax / block * o.BonusFree
}

// EfficiencyRate is bonusFree / (requiredPaid + bonusFree)
func (o ParsedOffer) EfficiencyRate() float64 {
	block := o.RequiredPaid + o.BonusFree
	if block <= 0 {
		return 0
	}
	return float64(o.BonusFree) / float64(block)
}

// Role decides which rate plans a caller may see
type Role string

const (
	RolePublic     Role = "public"
	RolePrivileged Role = "privileged"
)

// ParseRole maps a request value to a Role. Anything unrecognized is public.
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "privileged", "agent", "admin", "staff":
		return RolePrivileged
	default:
		return RolePublic
	}
}

// FromPrice is the headline "from" price displayed for a trip
type FromPrice struct {
	Price           decimal.Decimal  `json:"price"`
	ParentPrice     *decimal.Decimal `json:"parentPrice,omitempty"`
	DiscountPercent int              `json:"discountPercent"`
	Badge           string           `json:"badge,omitempty"`
	RatePlanID      string           `json:"ratePlanId,omitempty"`
	RatePlanName    string           `json:"ratePlanName,omitempty"`
}

// Commission holds the agency cut applied to a discounted subtotal
type Commission struct {
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
	FinalAmount decimal.Decimal `json:"finalAmount"`
}
