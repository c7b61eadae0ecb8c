package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntryStatus indicates the state of a journal entry. Entries are
// immutable once created; corrections are made by reversing entries.
type JournalEntryStatus string

const (
	EntryPosted JournalEntryStatus = "POSTED"
)

// JournalEntry represents a single, balanced accounting event composed of
// multiple lines.
type JournalEntry struct {
	EntryID         string             `json:"entryID"` // Primary key (UUID)
	TransactionDate time.Time          `json:"transactionDate"`
	Description     string             `json:"description"`
	Status          JournalEntryStatus `json:"status"`
	AuditFields
}

// JournalEntryLine is a single debit or credit within a JournalEntry.
// Exactly one of Debit/Credit is non-zero. Position preserves the order the
// lines were built in so the remote store keeps debit/credit pairs readable
// for audit.
type JournalEntryLine struct {
	LineID      string          `json:"lineID"`  // Primary key (UUID)
	EntryID     string          `json:"entryID"` // FK -> JournalEntry.entryID
	AccountID   string          `json:"accountID"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
	Position    int             `json:"position"`
}
