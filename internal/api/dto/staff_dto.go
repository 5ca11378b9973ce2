package dto

import (
	"github.com/petcarex/console/internal/domain"
	"github.com/petcarex/console/internal/gateway"
)

// DesksResponse tells the staff console which desks the session may open
// and which one it lands on.
type DesksResponse struct {
	Default domain.Desk   `json:"default"`
	Visible []domain.Desk `json:"visible"`
}

// SalesDesk is the sales work surface view-model.
type SalesDesk struct {
	Inventory gateway.Row   `json:"inventory"`
	Invoices  []gateway.Row `json:"invoices"`
	Revenue   []gateway.Row `json:"revenue"`
}

// ReceptionDesk is the reception work surface view-model. FirstInvoices is
// loaded after, and from, the bookings list.
type ReceptionDesk struct {
	Bookings      []gateway.Row `json:"bookings"`
	Exams         []gateway.Row `json:"exams"`
	Vaccinations  []gateway.Row `json:"vaccinations"`
	FirstInvoices []gateway.Row `json:"first_invoices,omitempty"`
}

// ClinicalDesk is the clinical work surface view-model.
type ClinicalDesk struct {
	Exams     []gateway.Row `json:"exams"`
	Vaccines  []gateway.Row `json:"vaccines"`
	Medicines []gateway.Row `json:"medicines"`
}

// CreateInvoiceRequest opens a new invoice.
type CreateInvoiceRequest struct {
	InvoiceID  string `json:"invoice_id"`
	CustomerID string `json:"customer_id"`
	Method     string `json:"method"`
}

// ImportStockRequest records a product stock import.
type ImportStockRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CompleteExamRequest records an examination outcome.
type CompleteExamRequest struct {
	SessionID string `json:"session_id"`
	Diagnosis string `json:"diagnosis"`
}

// CompleteVaccinationRequest marks a vaccination as done.
type CompleteVaccinationRequest struct {
	SessionID string `json:"session_id"`
	VaccineID string `json:"vaccine_id"`
}
