package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"liveaboard-booking/models"
	"liveaboard-booking/service"
)

// TripController handles HTTP requests for trip documents
type TripController struct {
	service service.QuoteServiceInterface
}

// NewTripController creates a new TripController
func NewTripController(svc service.QuoteServiceInterface) *TripController {
	return &TripController{
		service: svc,
	}
}

// SaveTrip handles POST /api/trips
// The body is the upstream trip document as received from the inventory API.
func (c *TripController) SaveTrip(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 SaveTrip: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		log.Printf("❌ SaveTrip: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	trip, err := c.service.SaveTrip(r.Context(), raw)
	if err != nil {
		log.Printf("❌ SaveTrip: Error storing trip: %v", err)
		http.Error(w, err.Error(), statusForError(err))
		return
	}
	writeJSON(w, http.StatusOK, trip, "SaveTrip")
}

// FromPrice handles POST /api/trips/from-price
// Example request:
// {"role": "public", "trip": {"rate_plans": [...]}}
// Example response:
// {"price": "800", "parentPrice": "1000", "discountPercent": 20, "badge": "-20%"}
// The response body is null when no plan has a usable price.
func (c *TripController) FromPrice(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.FromPriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	fromPrice, err := c.service.FromPrice(r.Context(), &req)
	if err != nil {
		log.Printf("❌ FromPrice: %v", err)
		http.Error(w, err.Error(), statusForError(err))
		return
	}
	writeJSON(w, http.StatusOK, fromPrice, "FromPrice")
}
