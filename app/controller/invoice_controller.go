package controller

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"liveaboard-booking/service"
)

// InvoiceController handles HTTP requests for quote invoices
type InvoiceController struct {
	service service.InvoiceServiceInterface
}

// NewInvoiceController creates a new InvoiceController
func NewInvoiceController(svc service.InvoiceServiceInterface) *InvoiceController {
	return &InvoiceController{
		service: svc,
	}
}

// quoteIDFromInvoicePath extracts the id from /api/quotes/:id/invoice[.pdf]
func quoteIDFromInvoicePath(path string) string {
	path = strings.TrimPrefix(path, "/api/quotes/")
	path = strings.TrimSuffix(path, "/invoice.pdf")
	path = strings.TrimSuffix(path, "/invoice")
	return path
}

// RenderHTML handles GET /api/quotes/:id/invoice
func (c *InvoiceController) RenderHTML(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := quoteIDFromInvoicePath(r.URL.Path)
	html, err := c.service.RenderInvoiceHTML(r.Context(), id)
	if err != nil {
		log.Printf("❌ RenderInvoice: Error rendering quote id=%s: %v", id, err)
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

// DownloadPDF handles GET /api/quotes/:id/invoice.pdf
func (c *InvoiceController) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 DownloadPDF: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := quoteIDFromInvoicePath(r.URL.Path)
	pdf, err := c.service.GeneratePDF(r.Context(), id)
	if err != nil {
		log.Printf("❌ DownloadPDF: Error generating PDF for quote id=%s: %v", id, err)
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"invoice-%s.pdf\"", id))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}
