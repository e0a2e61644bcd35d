package repository

import (
	"context"
	"errors"

	"liveaboard-booking/models"
)

// ErrNotFound is returned when a requested row does not exist
var ErrNotFound = errors.New("not found")

// QuoteRepositoryInterface defines the contract for quote repository operations
type QuoteRepositoryInterface interface {
	Save(ctx context.Context, quote *models.PricingResult) error
	GetByID(ctx context.Context, id string) (*models.PricingResult, error)
	ListByTrip(ctx context.Context, tripID string) ([]models.PricingResult, error)
}

// TripRepositoryInterface defines the contract for trip snapshot operations
type TripRepositoryInterface interface {
	Upsert(ctx context.Context, tripID string, raw map[string]any) error
	GetRaw(ctx context.Context, tripID string) (map[string]any, error)
}
