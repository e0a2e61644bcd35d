package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"liveaboard-booking/models"
	"liveaboard-booking/pricing"
	"liveaboard-booking/repository"
)

// ErrInvalidRequest marks requests that are missing required input
var ErrInvalidRequest = errors.New("invalid request")

// QuoteService prices selections against trips and keeps the results
type QuoteService struct {
	engine *pricing.Engine
	quotes repository.QuoteRepositoryInterface
	trips  repository.TripRepositoryInterface
	now    func() time.Time
}

// NewQuoteService creates a new QuoteService
func NewQuoteService(
	engine *pricing.Engine,
	quotes repository.QuoteRepositoryInterface,
	trips repository.TripRepositoryInterface,
) *QuoteService {
	return &QuoteService{
		engine: engine,
		quotes: quotes,
		trips:  trips,
		now:    time.Now,
	}
}

// Ensure QuoteService implements QuoteServiceInterface
var _ QuoteServiceInterface = (*QuoteService)(nil)

// CreateQuote prices the selections and stores the result under a new id.
// The trip comes from the request body, or from the stored snapshot when only
// tripId is given.
func (s *QuoteService) CreateQuote(ctx context.Context, req *models.CreateQuoteRequest) (*models.PricingResult, error) {
	if req.Selections == nil {
		return nil, fmt.Errorf("%w: selections are required", ErrInvalidRequest)
	}

	raw := req.Trip
	if raw == nil {
		if req.TripID == "" {
			return nil, fmt.Errorf("%w: trip or tripId is required", ErrInvalidRequest)
		}
		var err error
		raw, err = s.trips.GetRaw(ctx, req.TripID)
		if err != nil {
			return nil, err
		}
	}

	trip, err := pricing.NormalizeTrip(raw)
	if err != nil {
		return nil, err
	}
	if trip.ID == "" {
		trip.ID = req.TripID
	}

	result, err := s.engine.Quote(models.QuoteRequest{
		Trip:       trip,
		Selections: req.Selections,
		Currency:   s.engine.CurrencyForBoat(trip.Boat),
	})
	if err != nil {
		return nil, err
	}
	result.ID = uuid.NewString()
	result.CreatedAt = s.now().UTC()

	if err := s.quotes.Save(ctx, result); err != nil {
		return nil, err
	}
	log.Printf("✅ CreateQuote: id=%s trip=%s pax=%d final=%s %s",
		result.ID, result.TripID, result.Pax, result.FinalAmount, result.Currency)
	return result, nil
}

// GetQuote returns a stored quote
func (s *QuoteService) GetQuote(ctx context.Context, id string) (*models.PricingResult, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("quote %s: %w", id, repository.ErrNotFound)
	}
	return s.quotes.GetByID(ctx, id)
}

// ListQuotes returns the stored quotes of a trip
func (s *QuoteService) ListQuotes(ctx context.Context, tripID string) ([]models.PricingResult, error) {
	if tripID == "" {
		return nil, fmt.Errorf("%w: tripId is required", ErrInvalidRequest)
	}
	return s.quotes.ListByTrip(ctx, tripID)
}

// FromPrice resolves the headline price of a trip for the caller's role.
// A nil result means no plan carries a usable price.
func (s *QuoteService) FromPrice(ctx context.Context, req *models.FromPriceRequest) (*models.FromPrice, error) {
	if req.Trip == nil {
		return nil, fmt.Errorf("%w: trip is required", ErrInvalidRequest)
	}
	return s.engine.ResolveFromPrice(pricing.RawRatePlans(req.Trip), models.ParseRole(req.Role)), nil
}

// SaveTrip stores an upstream trip document and returns its normalized form
func (s *QuoteService) SaveTrip(ctx context.Context, raw map[string]any) (*models.Trip, error) {
	trip, err := pricing.NormalizeTrip(raw)
	if err != nil {
		return nil, err
	}
	if trip.ID == "" {
		return nil, fmt.Errorf("%w: trip id is required", ErrInvalidRequest)
	}
	if err := s.trips.Upsert(ctx, trip.ID, raw); err != nil {
		return nil, err
	}
	return trip, nil
}
