package controller

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"liveaboard-booking/pricing"
	"liveaboard-booking/repository"
	"liveaboard-booking/service"
)

// statusForError maps domain errors to HTTP status codes
func statusForError(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidRequest),
		errors.Is(err, pricing.ErrNilTrip),
		errors.Is(err, pricing.ErrNilUnits),
		errors.Is(err, pricing.ErrInvalidPax),
		errors.Is(err, pricing.ErrInvalidFreeUnits),
		errors.Is(err, pricing.ErrInvalidQuantity),
		errors.Is(err, pricing.ErrUnknownSelection):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeJSON encodes v with the given status
func writeJSON(w http.ResponseWriter, status int, v any, handler string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("❌ %s: Error encoding response: %v", handler, err)
	}
}
