package repositories

import (
	"context"

	"github.com/openbooks-app/openbooks_backend/internal/core/domain"
)

// JournalEntryReader defines read operations for journal entry data.
type JournalEntryReader interface {
	// FindEntryLines retrieves all lines of a journal entry in their
	// original position order.
	FindEntryLines(ctx context.Context, entryID string) ([]domain.JournalEntryLine, error)
}

// JournalEntryWriter defines write operations for journal entry data.
type JournalEntryWriter interface {
	// SaveEntry persists a journal entry and then its lines, one write per
	// line in position order. The remote store offers no transaction across
	// the two resources; a partial failure is reported with the step that
	// failed so the orphan can be reconciled.
	SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalEntryLine) error
}

// JournalEntryRepositoryFacade combines all journal entry repository
// interfaces.
type JournalEntryRepositoryFacade interface {
	JournalEntryReader
	JournalEntryWriter
}
