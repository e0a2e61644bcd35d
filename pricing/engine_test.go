package pricing

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"liveaboard-booking/models"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngineFromConfig(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	return engine
}

func focTrip() *models.Trip {
	return &models.Trip{
		ID:   "trip-1",
		Boat: models.Boat{ID: "ocean-rover", Name: "Ocean Rover"},
		RatePlans: []models.RatePlan{{
			ID:   "rp-1",
			Name: "7+1 FOC",
			CabinTypes: []models.CabinType{{
				ID:          "lower",
				Name:        "Lower Deck",
				Occupancies: NormalizeOccupancies([]map[string]any{{"occupancy": 1, "price": 400}}),
			}},
		}},
	}
}

func TestQuoteEndToEnd(t *testing.T) {
	engine := newTestEngine(t)
	result, err := engine.Quote(models.QuoteRequest{
		Trip:       focTrip(),
		Selections: []models.Selection{{CabinTypeID: "lower", Occupancy: models.OccupancySingle, Quantity: 8}},
		Currency:   "usd",
	})
	if err != nil {
		t.Fatal(err)
	}

	if result.Pax != 8 || result.FreeUnits != 1 || len(result.Units) != 8 {
		t.Fatalf("pax=%d free=%d units=%d, want 8/1/8", result.Pax, result.FreeUnits, len(result.Units))
	}
	if result.WinningOffer == nil || result.WinningOffer.RequiredPaid != 7 {
		t.Fatalf("winning offer = %+v, want 7+1", result.WinningOffer)
	}
	checks := []struct {
		name string
		got  decimal.Decimal
		want string
	}{
		{"base", result.BaseTotal, "3200"},
		{"discount", result.FocDiscount, "400"},
		{"total", result.TotalPrice, "2800"},
		{"rate", result.CommissionRate, "0.15"},
		{"commission", result.CommissionAmount, "420"},
		{"final", result.FinalAmount, "2380"},
	}
	for _, c := range checks {
		if !c.got.Equal(dec(c.want)) {
			t.Errorf("%s = %s, want %s", c.name, c.got, c.want)
		}
	}
	if result.Currency != "USD" {
		t.Errorf("currency = %q, want USD", result.Currency)
	}
}

func TestQuoteDoubleCabinsCountTwoGuests(t *testing.T) {
	engine := newTestEngine(t)
	trip := focTrip()
	trip.RatePlans[0].Name = "Standard"

	result, err := engine.Quote(models.QuoteRequest{
		Trip:       trip,
		Selections: []models.Selection{{RatePlanID: "rp-1", CabinTypeID: "lower", Occupancy: models.OccupancyDouble}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.Pax != 2 || !result.BaseTotal.Equal(dec("800")) {
		t.Fatalf("pax=%d base=%s, want 2 / 800", result.Pax, result.BaseTotal)
	}
	if result.WinningOffer != nil || !result.FocDiscount.IsZero() {
		t.Fatalf("no offer should apply, got %+v", result.WinningOffer)
	}
	if !result.CommissionRate.Equal(dec("0.10")) || !result.FinalAmount.Equal(dec("720")) {
		t.Fatalf("rate=%s final=%s, want 0.10 / 720", result.CommissionRate, result.FinalAmount)
	}
	if result.Currency != "USD" {
		t.Fatalf("blank currency should fall back to the default, got %q", result.Currency)
	}
}

func TestQuoteFreesCheapestGuests(t *testing.T) {
	engine := newTestEngine(t)
	trip := focTrip()
	trip.RatePlans = append(trip.RatePlans, models.RatePlan{
		ID:   "rp-2",
		Name: "Standard",
		CabinTypes: []models.CabinType{{
			ID: "master",
			Occupancies: NormalizeOccupancies([]map[string]any{
				{"occupancy": 1, "price": 700},
			}),
		}},
	})

	result, err := engine.Quote(models.QuoteRequest{
		Trip: trip,
		Selections: []models.Selection{
			{RatePlanID: "rp-2", CabinTypeID: "master", Occupancy: models.OccupancyDouble, Quantity: 3},
			{CabinTypeID: "lower", Occupancy: models.OccupancySingle, Quantity: 2},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	// 8 guests: six at 700, two at 400; the 7+1 offer frees one 400 guest
	if result.Pax != 8 || !result.FocDiscount.Equal(dec("400")) || !result.TotalPrice.Equal(dec("4600")) {
		t.Fatalf("pax=%d discount=%s total=%s, want 8 / 400 / 4600", result.Pax, result.FocDiscount, result.TotalPrice)
	}
}

func TestQuotePreconditions(t *testing.T) {
	engine := newTestEngine(t)
	if _, err := engine.Quote(models.QuoteRequest{Selections: []models.Selection{}}); !errors.Is(err, ErrNilTrip) {
		t.Fatalf("expected ErrNilTrip, got %v", err)
	}
	if _, err := engine.Quote(models.QuoteRequest{Trip: focTrip()}); !errors.Is(err, ErrNilUnits) {
		t.Fatalf("expected ErrNilUnits, got %v", err)
	}
	_, err := engine.Quote(models.QuoteRequest{
		Trip:       focTrip(),
		Selections: []models.Selection{{CabinTypeID: "lower", Occupancy: models.OccupancySoleUse}},
	})
	if !errors.Is(err, ErrUnknownSelection) {
		t.Fatalf("expected ErrUnknownSelection, got %v", err)
	}
	_, err = engine.Quote(models.QuoteRequest{
		Trip:       focTrip(),
		Selections: []models.Selection{{CabinTypeID: "lower", Occupancy: 1, Quantity: -1}},
	})
	if !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestQuoteEmptySelection(t *testing.T) {
	result, err := newTestEngine(t).Quote(models.QuoteRequest{Trip: focTrip(), Selections: []models.Selection{}})
	if err != nil {
		t.Fatal(err)
	}
	if result.Pax != 0 || !result.FinalAmount.IsZero() || result.WinningOffer != nil {
		t.Fatalf("empty selection should price to zero, got %+v", result)
	}
}

func TestCurrencyForBoat(t *testing.T) {
	engine := newTestEngine(t)
	if got := engine.CurrencyForBoat(models.Boat{ID: "Ocean-Rover"}); got != "EUR" {
		t.Fatalf("listed vessel by id: got %q, want EUR", got)
	}
	if got := engine.CurrencyForBoat(models.Boat{ID: "x", Name: "Komodo-Dancer"}); got != "IDR" {
		t.Fatalf("listed vessel by name: got %q, want IDR", got)
	}
	if got := engine.CurrencyForBoat(models.Boat{ID: "other"}); got != "USD" {
		t.Fatalf("unlisted vessel: got %q, want USD", got)
	}
}

func TestNewEngineFromConfigValidation(t *testing.T) {
	bad := []func(*PricingConfig){
		func(c *PricingConfig) { c.DefaultCurrency = "" },
		func(c *PricingConfig) { c.Commission.GroupRate = dec("1.5") },
		func(c *PricingConfig) { c.Commission.BaseRate = dec("-0.1") },
		func(c *PricingConfig) { c.Commission.GroupMinPax = 0 },
		func(c *PricingConfig) { c.BadgeMinDiscountPercent = -1 },
		func(c *PricingConfig) { c.VesselCurrencies = map[string]string{"boat": "euro"} },
	}
	for i, mutate := range bad {
		cfg := DefaultConfig()
		mutate(&cfg)
		if _, err := NewEngineFromConfig(cfg); err == nil {
			t.Errorf("config %d should be rejected", i)
		}
	}
}

func TestNewEngineLoadsConfigFile(t *testing.T) {
	engineInstance = nil
	t.Cleanup(func() { engineInstance = nil })
	t.Setenv("DEFAULT_CURRENCY", "")

	path := filepath.Join(t.TempDir(), "pricing.json")
	body := `{"defaultCurrency":"eur","commission":{"baseRate":"0.08","groupRate":"0.12","groupMinPax":4},"badgeMinDiscountPercent":10}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	engine, err := NewEngine(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg := engine.Config()
	if cfg.DefaultCurrency != "EUR" || cfg.Commission.GroupMinPax != 4 || !cfg.Commission.BaseRate.Equal(dec("0.08")) {
		t.Fatalf("config not loaded: %+v", cfg)
	}
	if GetEngine() != engine {
		t.Fatalf("NewEngine should register the shared instance")
	}

	plans := []map[string]any{nestedPlan("a", "Standard", map[string]any{"occupancy": 1, "price": 920, "parent_price": 1000})}
	if fp := engine.ResolveFromPrice(plans, models.RolePublic); fp.Badge != "" {
		t.Fatalf("8%% is below the configured 10%% threshold, got badge %q", fp.Badge)
	}
}

func TestNewEngineMissingFileUsesDefaults(t *testing.T) {
	engineInstance = nil
	t.Cleanup(func() { engineInstance = nil })
	t.Setenv("DEFAULT_CURRENCY", "")

	engine, err := NewEngine(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatal(err)
	}
	if engine.Config().DefaultCurrency != "USD" {
		t.Fatalf("expected defaults, got %+v", engine.Config())
	}
}
