package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"liveaboard-booking/models"
	"liveaboard-booking/service"
)

// QuoteController handles HTTP requests for quotes
type QuoteController struct {
	service service.QuoteServiceInterface
}

// NewQuoteController creates a new QuoteController
func NewQuoteController(svc service.QuoteServiceInterface) *QuoteController {
	return &QuoteController{
		service: svc,
	}
}

// CreateQuote handles POST /api/quotes
// Example request:
// POST /api/quotes
// {
//   "tripId": "trip-42",
//   "selections": [{"cabinTypeId": "lower", "occupancy": 1, "quantity": 8}]
// }
// Example response:
// {
//   "id": "5b1c...",
//   "tripId": "trip-42",
//   "currency": "EUR",
//   "pax": 8,
//   "baseTotal": "3200",
//   "focDiscount": "400",
//   "freeUnits": 1,
//   "totalPrice": "2800",
//   "commissionRate": "0.15",
//   "commissionAmount": "420",
//   "finalAmount": "2380"
// }
func (c *QuoteController) CreateQuote(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateQuote: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		log.Printf("❌ CreateQuote: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.CreateQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CreateQuote: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	quote, err := c.service.CreateQuote(r.Context(), &req)
	if err != nil {
		log.Printf("❌ CreateQuote: Error pricing quote: %v", err)
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	log.Printf("✅ CreateQuote: Created quote id=%s", quote.ID)
	writeJSON(w, http.StatusCreated, quote, "CreateQuote")
}

// ListQuotes handles GET /api/quotes?tripId=trip-42
func (c *QuoteController) ListQuotes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tripID := strings.TrimSpace(r.URL.Query().Get("tripId"))
	quotes, err := c.service.ListQuotes(r.Context(), tripID)
	if err != nil {
		log.Printf("❌ ListQuotes: Error listing quotes: %v", err)
		http.Error(w, err.Error(), statusForError(err))
		return
	}
	writeJSON(w, http.StatusOK, quotes, "ListQuotes")
}

// GetQuote handles GET /api/quotes/:id
func (c *QuoteController) GetQuote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/quotes/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "quote id parameter is required", http.StatusBadRequest)
		return
	}

	quote, err := c.service.GetQuote(r.Context(), id)
	if err != nil {
		log.Printf("❌ GetQuote: Error fetching quote id=%s: %v", id, err)
		http.Error(w, err.Error(), statusForError(err))
		return
	}
	writeJSON(w, http.StatusOK, quote, "GetQuote")
}
