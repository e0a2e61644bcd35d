package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/shopspring/decimal"

	"liveaboard-booking/models"
	"liveaboard-booking/repository"
	"liveaboard-booking/utils"
)

// InvoiceService renders stored quotes as HTML and PDF invoices
type InvoiceService struct {
	quotes       repository.QuoteRepositoryInterface
	baseURL      string // Base URL the browser loads the HTML invoice from (e.g., "http://localhost:8080")
	templatePath string
}

// invoiceLine groups identical booked units
type invoiceLine struct {
	Description string
	Quantity    int
	Guests      int
	UnitPrice   decimal.Decimal
	Amount      decimal.Decimal
}

// detectChromePath detects the path to Chrome/Chromium executable
// Checks CHROME_PATH env var first, then common installation paths
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(quotes repository.QuoteRepositoryInterface, baseURL, templatePath string) *InvoiceService {
	return &InvoiceService{
		quotes:       quotes,
		baseURL:      baseURL,
		templatePath: templatePath,
	}
}

// Ensure InvoiceService implements InvoiceServiceInterface
var _ InvoiceServiceInterface = (*InvoiceService)(nil)

var invoiceFuncs = template.FuncMap{
	"money": utils.FormatAmount,
	"rate":  utils.FormatRate,
}

// invoiceLines collapses units sharing plan, cabin and occupancy into one line
func invoiceLines(units []models.BookedUnit) []invoiceLine {
	lines := []invoiceLine{}
	index := map[string]int{}
	for _, u := range units {
		key := fmt.Sprintf("%s|%s|%d|%s", u.RatePlanID, u.CabinTypeID, u.Occupancy, u.Price)
		i, ok := index[key]
		if !ok {
			name := u.CabinName
			if name == "" {
				name = u.CabinTypeID
			}
			lines = append(lines, invoiceLine{
				Description: fmt.Sprintf("%s (%s)", name, u.Label),
				UnitPrice:   u.Price,
				Amount:      decimal.Zero,
			})
			i = len(lines) - 1
			index[key] = i
		}
		lines[i].Quantity++
		lines[i].Guests += u.Guests
		lines[i].Amount = lines[i].Amount.Add(u.Total())
	}
	return lines
}

// RenderInvoiceHTML renders the invoice template for a stored quote
func (s *InvoiceService) RenderInvoiceHTML(ctx context.Context, quoteID string) (string, error) {
	quote, err := s.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return "", err
	}
	return s.renderQuote(quote)
}

func (s *InvoiceService) renderQuote(quote *models.PricingResult) (string, error) {
	templateData := struct {
		Quote  *models.PricingResult
		Lines  []invoiceLine
		Issued string
	}{
		Quote:  quote,
		Lines:  invoiceLines(quote.Units),
		Issued: quote.CreatedAt.Format("2 Jan 2006"),
	}

	tmpl, err := template.New(filepath.Base(s.templatePath)).Funcs(invoiceFuncs).ParseFiles(s.templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// GeneratePDF prints the HTML invoice to PDF using chromedp
func (s *InvoiceService) GeneratePDF(ctx context.Context, quoteID string) ([]byte, error) {
	// Fail fast before starting a browser
	if _, err := s.quotes.GetByID(ctx, quoteID); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if chromePath := detectChromePath(); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	} else {
		log.Printf("⚠️  GeneratePDF: Chrome not found, letting chromedp auto-detect")
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	renderURL := fmt.Sprintf("%s/api/quotes/%s/invoice", s.baseURL, quoteID)

	var pdfBuf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		chromedp.Evaluate(`document.fonts.ready`, nil),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4 in inches
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0.4).
				WithMarginBottom(0.4).
				WithMarginLeft(0.4).
				WithMarginRight(0.4).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	log.Printf("✅ GeneratePDF: quote=%s bytes=%d", quoteID, len(pdfBuf))
	return pdfBuf, nil
}
