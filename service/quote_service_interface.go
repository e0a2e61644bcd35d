package service

import (
	"context"

	"liveaboard-booking/models"
)

// QuoteServiceInterface defines the contract for quoting and trip operations
type QuoteServiceInterface interface {
	CreateQuote(ctx context.Context, req *models.CreateQuoteRequest) (*models.PricingResult, error)
	GetQuote(ctx context.Context, id string) (*models.PricingResult, error)
	ListQuotes(ctx context.Context, tripID string) ([]models.PricingResult, error)
	FromPrice(ctx context.Context, req *models.FromPriceRequest) (*models.FromPrice, error)
	SaveTrip(ctx context.Context, raw map[string]any) (*models.Trip, error)
}

// InvoiceServiceInterface defines the contract for invoice rendering
type InvoiceServiceInterface interface {
	RenderInvoiceHTML(ctx context.Context, quoteID string) (string, error)
	GeneratePDF(ctx context.Context, quoteID string) ([]byte, error)
}
