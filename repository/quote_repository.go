package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"liveaboard-booking/db"
	"liveaboard-booking/models"
)

// QuoteRepository handles database operations for quotes
type QuoteRepository struct{}

// NewQuoteRepository creates a new QuoteRepository
func NewQuoteRepository() *QuoteRepository {
	return &QuoteRepository{}
}

// Ensure QuoteRepository implements QuoteRepositoryInterface
var _ QuoteRepositoryInterface = (*QuoteRepository)(nil)

// Save inserts a priced quote. The full result is stored as JSONB next to
// the columns used for reporting.
func (r *QuoteRepository) Save(ctx context.Context, quote *models.PricingResult) error {
	log.Printf("💾 SaveQuote: id=%s trip=%s", quote.ID, quote.TripID)

	payload, err := json.Marshal(quote)
	if err != nil {
		return fmt.Errorf("failed to encode quote: %w", err)
	}

	query := `
		INSERT INTO quotes (id, trip_id, currency, pax, total_price, final_amount, result, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = db.DB.ExecContext(ctx, query,
		quote.ID,
		quote.TripID,
		quote.Currency,
		quote.Pax,
		quote.TotalPrice.String(),
		quote.FinalAmount.String(),
		payload,
		quote.CreatedAt,
	)
	if err != nil {
		log.Printf("❌ SaveQuote: Error inserting quote: %v", err)
		return fmt.Errorf("failed to insert quote: %w", err)
	}
	return nil
}

// GetByID loads a stored quote
func (r *QuoteRepository) GetByID(ctx context.Context, id string) (*models.PricingResult, error) {
	var payload []byte
	query := `SELECT result FROM quotes WHERE id = $1`
	err := db.DB.QueryRowContext(ctx, query, id).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("quote %s: %w", id, ErrNotFound)
		}
		log.Printf("❌ GetQuote: Error fetching quote id=%s: %v", id, err)
		return nil, fmt.Errorf("failed to fetch quote: %w", err)
	}

	var quote models.PricingResult
	if err := json.Unmarshal(payload, &quote); err != nil {
		return nil, fmt.Errorf("failed to decode quote %s: %w", id, err)
	}
	return &quote, nil
}

// ListByTrip returns the quotes of a trip, newest first
func (r *QuoteRepository) ListByTrip(ctx context.Context, tripID string) ([]models.PricingResult, error) {
	query := `SELECT result FROM quotes WHERE trip_id = $1 ORDER BY created_at DESC`
	rows, err := db.DB.QueryContext(ctx, query, tripID)
	if err != nil {
		log.Printf("❌ ListQuotes: Error querying quotes for trip=%s: %v", tripID, err)
		return nil, fmt.Errorf("failed to query quotes: %w", err)
	}
	defer rows.Close()

	quotes := []models.PricingResult{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan quote: %w", err)
		}
		var quote models.PricingResult
		if err := json.Unmarshal(payload, &quote); err != nil {
			return nil, fmt.Errorf("failed to decode quote: %w", err)
		}
		quotes = append(quotes, quote)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating quotes: %w", err)
	}
	return quotes, nil
}
