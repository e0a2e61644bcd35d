package pricing

import "errors"

// Precondition violations. Irregular vendor data never produces these; it is
// excluded from consideration instead.
var (
	ErrInvalidPax       = errors.New("pax must not be negative")
	ErrInvalidFreeUnits = errors.New("free units must not be negative")
	ErrNilUnits         = errors.New("booked unit list is required")
	ErrNilTrip          = errors.New("trip is required")
	ErrInvalidQuantity  = errors.New("selection quantity must not be negative")
	ErrUnknownSelection = errors.New("selection does not match any cabin occupancy")
)
