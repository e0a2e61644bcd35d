package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"liveaboard-booking/db"
)

// TripRepository stores raw upstream trip documents so quotes can be priced
// against the snapshot the customer saw
type TripRepository struct{}

// NewTripRepository creates a new TripRepository
func NewTripRepository() *TripRepository {
	return &TripRepository{}
}

// Ensure TripRepository implements TripRepositoryInterface
var _ TripRepositoryInterface = (*TripRepository)(nil)

// Upsert stores or replaces a trip snapshot
func (r *TripRepository) Upsert(ctx context.Context, tripID string, raw map[string]any) error {
	payload, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to encode trip: %w", err)
	}

	query := `
		INSERT INTO trip_snapshots (trip_id, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (trip_id) DO UPDATE
		SET payload = EXCLUDED.payload, updated_at = NOW()
	`
	if _, err := db.DB.ExecContext(ctx, query, tripID, payload); err != nil {
		log.Printf("❌ UpsertTrip: Error storing trip=%s: %v", tripID, err)
		return fmt.Errorf("failed to store trip: %w", err)
	}
	log.Printf("✅ UpsertTrip: Stored snapshot for trip=%s", tripID)
	return nil
}

// GetRaw loads a stored trip snapshot as the original JSON document
func (r *TripRepository) GetRaw(ctx context.Context, tripID string) (map[string]any, error) {
	var payload []byte
	query := `SELECT payload FROM trip_snapshots WHERE trip_id = $1`
	err := db.DB.QueryRowContext(ctx, query, tripID).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("trip %s: %w", tripID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch trip: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode trip %s: %w", tripID, err)
	}
	return raw, nil
}
