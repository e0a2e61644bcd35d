package router

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"liveaboard-booking/app/controller"
	"liveaboard-booking/models"
	"liveaboard-booking/pricing"
	"liveaboard-booking/repository"
	"liveaboard-booking/service"
)

// mockQuoteService implements service.QuoteServiceInterface
type mockQuoteService struct {
	lastCreate *models.CreateQuoteRequest
	createErr  error
	fromPrice  *models.FromPrice
}

func (m *mockQuoteService) CreateQuote(ctx context.Context, req *models.CreateQuoteRequest) (*models.PricingResult, error) {
	m.lastCreate = req
	if m.createErr != nil {
		return nil, m.createErr
	}
	return &models.PricingResult{ID: "q-1", TripID: req.TripID, Pax: 8, TotalPrice: decimal.NewFromInt(2800)}, nil
}

func (m *mockQuoteService) GetQuote(ctx context.Context, id string) (*models.PricingResult, error) {
	if id != "q-1" {
		return nil, fmt.Errorf("quote %s: %w", id, repository.ErrNotFound)
	}
	return &models.PricingResult{ID: id}, nil
}

func (m *mockQuoteService) ListQuotes(ctx context.Context, tripID string) ([]models.PricingResult, error) {
	if tripID == "" {
		return nil, service.ErrInvalidRequest
	}
	return []models.PricingResult{{ID: "q-1", TripID: tripID}}, nil
}

func (m *mockQuoteService) FromPrice(ctx context.Context, req *models.FromPriceRequest) (*models.FromPrice, error) {
	return m.fromPrice, nil
}

func (m *mockQuoteService) SaveTrip(ctx context.Context, raw map[string]any) (*models.Trip, error) {
	return &models.Trip{ID: fmt.Sprint(raw["id"])}, nil
}

// mockInvoiceService implements service.InvoiceServiceInterface
type mockInvoiceService struct{}

func (mockInvoiceService) RenderInvoiceHTML(ctx context.Context, quoteID string) (string, error) {
	return "<h1>" + quoteID + "</h1>", nil
}

func (mockInvoiceService) GeneratePDF(ctx context.Context, quoteID string) ([]byte, error) {
	return []byte("%PDF-" + quoteID), nil
}

func setupTestRouter(quotes *mockQuoteService) *http.ServeMux {
	mux := http.NewServeMux()
	SetupRoutes(mux, &Controllers{
		Quote:   controller.NewQuoteController(quotes),
		Trip:    controller.NewTripController(quotes),
		Invoice: controller.NewInvoiceController(mockInvoiceService{}),
	})
	return mux
}

func TestPing(t *testing.T) {
	w := httptest.NewRecorder()
	setupTestRouter(&mockQuoteService{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "ok") {
		t.Fatalf("ping returned %d %q", w.Code, w.Body.String())
	}
}

func TestCreateQuote(t *testing.T) {
	quotes := &mockQuoteService{}
	body := `{"tripId":"trip-42","selections":[{"cabinTypeId":"lower","occupancy":1,"quantity":8}]}`

	w := httptest.NewRecorder()
	setupTestRouter(quotes).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/quotes", strings.NewReader(body)))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if quotes.lastCreate == nil || len(quotes.lastCreate.Selections) != 1 || quotes.lastCreate.Selections[0].Quantity != 8 {
		t.Fatalf("request not decoded: %+v", quotes.lastCreate)
	}
	var got models.PricingResult
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.ID != "q-1" || !got.TotalPrice.Equal(decimal.NewFromInt(2800)) {
		t.Fatalf("unexpected response %+v", got)
	}
}

func TestCreateQuoteErrorStatus(t *testing.T) {
	cases := []struct {
		name string
		body string
		err  error
		want int
	}{
		{"bad json", `{`, nil, http.StatusBadRequest},
		{"unknown selection", `{"selections":[]}`, fmt.Errorf("selection 0: %w", pricing.ErrUnknownSelection), http.StatusBadRequest},
		{"missing trip", `{"tripId":"x","selections":[]}`, fmt.Errorf("trip x: %w", repository.ErrNotFound), http.StatusNotFound},
		{"storage failure", `{"selections":[]}`, fmt.Errorf("failed to insert quote"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux := setupTestRouter(&mockQuoteService{createErr: tc.err})
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/quotes", strings.NewReader(tc.body)))
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}

func TestQuoteRoutes(t *testing.T) {
	mux := setupTestRouter(&mockQuoteService{})

	cases := []struct {
		method, path string
		want         int
		contains     string
	}{
		{http.MethodGet, "/api/quotes/q-1", http.StatusOK, `"id":"q-1"`},
		{http.MethodGet, "/api/quotes/q-2", http.StatusNotFound, "not found"},
		{http.MethodGet, "/api/quotes?tripId=trip-42", http.StatusOK, `"tripId":"trip-42"`},
		{http.MethodGet, "/api/quotes", http.StatusBadRequest, "invalid request"},
		{http.MethodDelete, "/api/quotes", http.StatusMethodNotAllowed, ""},
		{http.MethodGet, "/api/quotes/q-1/invoice", http.StatusOK, "<h1>q-1</h1>"},
		{http.MethodGet, "/api/quotes/q-1/invoice.pdf", http.StatusOK, "%PDF-q-1"},
		{http.MethodGet, "/api/quotes/q-1/other", http.StatusNotFound, ""},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
		if w.Code != tc.want {
			t.Errorf("%s %s: expected %d, got %d", tc.method, tc.path, tc.want, w.Code)
			continue
		}
		if !strings.Contains(w.Body.String(), tc.contains) {
			t.Errorf("%s %s: body %q does not contain %q", tc.method, tc.path, w.Body.String(), tc.contains)
		}
	}
}

func TestTripRoutes(t *testing.T) {
	quotes := &mockQuoteService{fromPrice: &models.FromPrice{Price: decimal.NewFromInt(800), Badge: "-20%"}}
	mux := setupTestRouter(quotes)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/trips", strings.NewReader(`{"id":"trip-42"}`)))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"id":"trip-42"`) {
		t.Fatalf("save trip returned %d %q", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/trips/from-price", strings.NewReader(`{"role":"public","trip":{}}`)))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"badge":"-20%"`) {
		t.Fatalf("from-price returned %d %q", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/trips/from-price", nil))
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", w.Code)
	}
}
