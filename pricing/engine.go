package pricing

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"liveaboard-booking/models"
	"liveaboard-booking/utils"
)

// PricingConfig represents the pricing configuration structure
type PricingConfig struct {
	DefaultCurrency         string            `json:"defaultCurrency"`
	VesselCurrencies        map[string]string `json:"vesselCurrencies"`
	Commission              CommissionPolicy  `json:"commission"`
	BadgeMinDiscountPercent int               `json:"badgeMinDiscountPercent"`
}

// DefaultConfig returns the built-in configuration used when no config file exists
func DefaultConfig() PricingConfig {
	return PricingConfig{
		DefaultCurrency:         utils.DefaultCurrency,
		VesselCurrencies:        utils.DefaultVesselCurrencies(),
		Commission:              DefaultCommissionPolicy,
		BadgeMinDiscountPercent: DefaultBadgeMinDiscountPercent,
	}
}

// Engine prices trips and bookings. It holds only read-only configuration, so
// one instance can serve concurrent requests.
type Engine struct {
	config   PricingConfig
	resolver fromPriceResolver
}

var engineInstance *Engine

// NewEngine loads the pricing config from configPath and registers the result
// as the shared engine. A missing file falls back to DefaultConfig.
func NewEngine(configPath string) (*Engine, error) {
	if engineInstance != nil {
		return engineInstance, nil
	}

	// Resolve config path
	if !filepath.IsAbs(configPath) {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		configPath = filepath.Join(wd, configPath)
	}

	config := DefaultConfig()
	data, err := os.ReadFile(configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Printf("⚠️  PricingEngine: %s not found, using built-in defaults", configPath)
	case err != nil:
		return nil, fmt.Errorf("failed to read pricing config: %w", err)
	default:
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse pricing config: %w", err)
		}
	}
	// Environment wins over the file
	if code := os.Getenv("DEFAULT_CURRENCY"); code != "" {
		config.DefaultCurrency = code
	}

	engine, err := NewEngineFromConfig(config)
	if err != nil {
		return nil, err
	}

	engineInstance = engine
	log.Printf("✅ PricingEngine: Loaded pricing config (currency=%s, vessels=%d, commission=%s/%s)",
		config.DefaultCurrency, len(config.VesselCurrencies), config.Commission.BaseRate, config.Commission.GroupRate)
	return engine, nil
}

// NewEngineFromConfig builds an engine without touching the shared instance
func NewEngineFromConfig(config PricingConfig) (*Engine, error) {
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid pricing config: %w", err)
	}
	return &Engine{
		config:   config,
		resolver: fromPriceResolver{minBadgePercent: config.BadgeMinDiscountPercent},
	}, nil
}

func validateConfig(config *PricingConfig) error {
	config.DefaultCurrency = utils.NormalizeCurrencyCode(config.DefaultCurrency)
	if config.DefaultCurrency == "" {
		return fmt.Errorf("defaultCurrency is required")
	}
	c := config.Commission
	one := decimal.NewFromInt(1)
	if c.BaseRate.IsNegative() || c.GroupRate.IsNegative() || c.BaseRate.GreaterThanOrEqual(one) || c.GroupRate.GreaterThanOrEqual(one) {
		return fmt.Errorf("commission rates must be in [0, 1)")
	}
	if c.GroupMinPax < 1 {
		return fmt.Errorf("commission groupMinPax must be at least 1")
	}
	if config.BadgeMinDiscountPercent < 0 {
		return fmt.Errorf("badgeMinDiscountPercent must not be negative")
	}
	vessels := make(map[string]string, len(config.VesselCurrencies))
	for vessel, code := range config.VesselCurrencies {
		code = utils.NormalizeCurrencyCode(code)
		if code == "" {
			return fmt.Errorf("vessel %q has an empty currency", vessel)
		}
		vessels[strings.ToLower(strings.TrimSpace(vessel))] = code
	}
	config.VesselCurrencies = vessels
	return nil
}

// GetEngine returns the shared pricing engine instance
func GetEngine() *Engine {
	return engineInstance
}

// Config returns a copy of the engine configuration
func (e *Engine) Config() PricingConfig {
	return e.config
}

// CurrencyForBoat resolves the billing currency of a vessel, by id or name.
// Vessels not listed bill in the default currency.
func (e *Engine) CurrencyForBoat(boat models.Boat) string {
	for _, key := range []string{boat.ID, boat.Name} {
		if code, ok := e.config.VesselCurrencies[strings.ToLower(strings.TrimSpace(key))]; ok && key != "" {
			return code
		}
	}
	return e.config.DefaultCurrency
}

// ResolveFromPrice finds a trip's headline price using the configured badge threshold
func (e *Engine) ResolveFromPrice(plans []map[string]any, role models.Role) *models.FromPrice {
	return e.resolver.resolve(plans, role)
}

// Commission applies the configured commission policy
func (e *Engine) Commission(totalPrice, focDiscount decimal.Decimal, pax int) (models.Commission, error) {
	return e.config.Commission.Calculate(totalPrice, focDiscount, pax)
}

// BuildBookedUnits turns selections into one booked unit per selected cabin.
// A selection without a rate plan id uses the first plan offering its cabin.
func BuildBookedUnits(trip *models.Trip, selections []models.Selection) ([]models.BookedUnit, error) {
	if trip == nil {
		return nil, ErrNilTrip
	}
	if selections == nil {
		return nil, ErrNilUnits
	}

	units := make([]models.BookedUnit, 0, len(selections))
	for i, sel := range selections {
		qty := sel.Quantity
		if qty < 0 {
			return nil, fmt.Errorf("selection %d: %w", i, ErrInvalidQuantity)
		}
		if qty == 0 {
			qty = 1
		}
		plan, cabin, opt, ok := findOccupancy(trip, sel)
		if !ok {
			return nil, fmt.Errorf("selection %d (plan=%q cabin=%q occupancy=%d): %w",
				i, sel.RatePlanID, sel.CabinTypeID, sel.Occupancy, ErrUnknownSelection)
		}
		for n := 0; n < qty; n++ {
			units = append(units, models.BookedUnit{
				RatePlanID:  plan.ID,
				CabinTypeID: cabin.ID,
				CabinName:   cabin.Name,
				Occupancy:   opt.Code,
				Label:       opt.Label,
				Price:       opt.Price,
				Guests:      models.GuestCount(opt.Code),
			})
		}
	}
	return units, nil
}

func findOccupancy(trip *models.Trip, sel models.Selection) (models.RatePlan, models.CabinType, models.OccupancyOption, bool) {
	for _, plan := range trip.RatePlans {
		if sel.RatePlanID != "" && plan.ID != sel.RatePlanID {
			continue
		}
		for _, cabin := range plan.CabinTypes {
			if cabin.ID != sel.CabinTypeID {
				continue
			}
			if opt, ok := cabin.Occupancy(sel.Occupancy); ok {
				return plan, cabin, opt, true
			}
		}
	}
	return models.RatePlan{}, models.CabinType{}, models.OccupancyOption{}, false
}

// Quote prices a set of selections on a trip: base total, best FOC offer,
// discount on the cheapest guests, then commission. The result is built from
// scratch on every call.
func (e *Engine) Quote(req models.QuoteRequest) (*models.PricingResult, error) {
	if req.Trip == nil {
		return nil, ErrNilTrip
	}
	units, err := BuildBookedUnits(req.Trip, req.Selections)
	if err != nil {
		return nil, err
	}
	guestPrices, err := GuestPrices(units)
	if err != nil {
		return nil, err
	}
	pax := TotalGuests(units)
	baseTotal := decimal.Sum(decimal.Zero, guestPrices...)

	offer, err := SelectBestOffer(ParseOffers(req.Trip.RatePlans), pax)
	if err != nil {
		return nil, err
	}
	freeUnits := 0
	if offer != nil {
		freeUnits = offer.FreeUnits(pax)
	}
	discount, err := AllocateDiscount(freeUnits, guestPrices)
	if err != nil {
		return nil, err
	}

	totalPrice := baseTotal.Sub(discount)
	commission, err := e.Commission(totalPrice, discount, pax)
	if err != nil {
		return nil, err
	}

	currency := utils.NormalizeCurrencyCode(req.Currency)
	if currency == "" {
		currency = e.config.DefaultCurrency
	}

	log.Printf("💰 Quote: trip=%s pax=%d base=%s foc=%s total=%s final=%s %s",
		req.Trip.ID, pax, baseTotal, discount, totalPrice, commission.FinalAmount, currency)

	return &models.PricingResult{
		TripID:           req.Trip.ID,
		BoatName:         req.Trip.Boat.Name,
		Currency:         currency,
		Pax:              pax,
		Units:            units,
		BaseTotal:        baseTotal,
		FocDiscount:      discount,
		FreeUnits:        freeUnits,
		WinningOffer:     offer,
		TotalPrice:       totalPrice,
		CommissionRate:   commission.Rate,
		CommissionAmount: commission.Amount,
		FinalAmount:      commission.FinalAmount,
	}, nil
}
