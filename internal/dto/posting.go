package dto

import "github.com/shopspring/decimal"

// PostInvoiceResult is returned by a successful invoice posting.
type PostInvoiceResult struct {
	InvoiceID      string          `json:"invoiceID"`
	JournalEntryID string          `json:"journalEntryID"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	LinesCount     int             `json:"linesCount"`
}

// PostBillResult is returned by a successful bill posting.
type PostBillResult struct {
	BillID         string          `json:"billID"`
	JournalEntryID string          `json:"journalEntryID"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	LinesCount     int             `json:"linesCount"`
}

// VoidResult is returned by a successful reversal of a posted document.
type VoidResult struct {
	DocumentID              string `json:"documentID"`
	OriginalJournalEntryID  string `json:"originalJournalEntryID"`
	ReversingJournalEntryID string `json:"reversingJournalEntryID"`
}
