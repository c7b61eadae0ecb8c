package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentStatus indicates where a business document sits in its lifecycle.
type DocumentStatus string

const (
	StatusDraft         DocumentStatus = "DRAFT"
	StatusPosted        DocumentStatus = "POSTED"
	StatusPartiallyPaid DocumentStatus = "PARTIALLY_PAID"
	StatusPaid          DocumentStatus = "PAID"
	StatusVoided        DocumentStatus = "VOIDED"
)

// Invoice represents a customer-facing business document. An invoice with a
// nil JournalEntryID has not been posted; once posted the ID is set and the
// status becomes POSTED. Voiding retains JournalEntryID for audit and records
// the reversing entry separately.
type Invoice struct {
	InvoiceID          string          `json:"invoiceID"`   // Primary key (UUID)
	InvoiceNumber      string          `json:"invoiceNumber"`
	CustomerID         string          `json:"customerID"`
	InvoiceDate        time.Time       `json:"invoiceDate"`
	TotalAmount        decimal.Decimal `json:"totalAmount"`
	AmountPaid         decimal.Decimal `json:"amountPaid"`
	Status             DocumentStatus  `json:"status"`
	JournalEntryID     *string         `json:"journalEntryID"`     // Set when posted
	ReversingEntryID   *string         `json:"reversingEntryID"`   // Set when voided
	PostedBy           string          `json:"postedBy"`
	AuditFields
}

// Bill represents a vendor-facing business document, mirroring Invoice.
type Bill struct {
	BillID           string          `json:"billID"` // Primary key (UUID)
	BillNumber       string          `json:"billNumber"`
	VendorID         string          `json:"vendorID"`
	BillDate         time.Time       `json:"billDate"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	AmountPaid       decimal.Decimal `json:"amountPaid"`
	Status           DocumentStatus  `json:"status"`
	JournalEntryID   *string         `json:"journalEntryID"`
	ReversingEntryID *string         `json:"reversingEntryID"`
	PostedBy         string          `json:"postedBy"`
	AuditFields
}

// DocumentLine is a single line item belonging to exactly one invoice or bill.
// Bill lines must carry the expense AccountID; invoice lines may carry a
// revenue AccountID or leave it empty to use the configured default.
type DocumentLine struct {
	LineID      string          `json:"lineID"`     // Primary key (UUID)
	DocumentID  string          `json:"documentID"` // FK -> Invoice.invoiceID or Bill.billID
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	AccountID   string          `json:"accountID"` // Empty when not explicitly assigned
	AuditFields
}

// IsPosted reports whether the invoice already carries a journal entry.
func (i Invoice) IsPosted() bool {
	return i.JournalEntryID != nil && *i.JournalEntryID != ""
}

// IsPosted reports whether the bill already carries a journal entry.
func (b Bill) IsPosted() bool {
	return b.JournalEntryID != nil && *b.JournalEntryID != ""
}
