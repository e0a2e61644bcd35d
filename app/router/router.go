package router

import (
	"net/http"
	"strings"

	"liveaboard-booking/app/controller"
)

type Controllers struct {
	Quote   *controller.QuoteController
	Trip    *controller.TripController
	Invoice *controller.InvoiceController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(mux *http.ServeMux, controllers *Controllers) {
	// Ping endpoint
	mux.HandleFunc("/ping", pingHandler)

	// Trip routes
	mux.HandleFunc("/api/trips", controllers.Trip.SaveTrip)
	mux.HandleFunc("/api/trips/from-price", controllers.Trip.FromPrice)

	// Quote routes
	mux.HandleFunc("/api/quotes", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			controllers.Quote.CreateQuote(w, r)
		} else if r.Method == http.MethodGet {
			controllers.Quote.ListQuotes(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Quote by id and its invoice (suffix routes first)
	mux.HandleFunc("/api/quotes/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/api/quotes/")

		if strings.HasSuffix(path, "/invoice.pdf") {
			controllers.Invoice.DownloadPDF(w, r)
			return
		}
		if strings.HasSuffix(path, "/invoice") {
			controllers.Invoice.RenderHTML(w, r)
			return
		}
		if strings.Contains(path, "/") {
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}
		controllers.Quote.GetQuote(w, r)
	})
}
