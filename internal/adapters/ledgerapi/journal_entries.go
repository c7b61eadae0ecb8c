package ledgerapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/openbooks-app/openbooks_backend/internal/core/domain"
	portsrepo "github.com/openbooks-app/openbooks_backend/internal/core/ports/repositories"
)

// JournalEntryRepository implements the journal entry ports against the data
// service.
type JournalEntryRepository struct {
	client *Client
}

// NewJournalEntryRepository creates a new JournalEntryRepository.
func NewJournalEntryRepository(client *Client) *JournalEntryRepository {
	return &JournalEntryRepository{client: client}
}

var _ portsrepo.JournalEntryRepositoryFacade = (*JournalEntryRepository)(nil)

func (r *JournalEntryRepository) FindEntryLines(ctx context.Context, entryID string) ([]domain.JournalEntryLine, error) {
	var resp journalEntryLinesResponse
	if err := r.client.do(ctx, http.MethodGet, "/journal-entries/"+entryID+"/lines", nil, nil, &resp); err != nil {
		return nil, err
	}
	lines := make([]domain.JournalEntryLine, 0, len(resp.Lines))
	for _, p := range resp.Lines {
		lines = append(lines, p.toDomain())
	}
	return lines, nil
}

// SaveEntry creates the entry header, then its lines one request at a time in
// position order. The data service has no multi-resource transaction; when a
// line write fails the error names the failed position so the partial entry
// can be reconciled.
func (r *JournalEntryRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalEntryLine) error {
	if err := r.client.do(ctx, http.MethodPost, "/journal-entries", nil, fromDomainEntry(entry), nil); err != nil {
		return fmt.Errorf("failed to create journal entry %s: %w", entry.EntryID, err)
	}

	for _, line := range lines {
		payload := fromDomainEntryLine(line)
		if err := r.client.do(ctx, http.MethodPost, "/journal-entries/"+entry.EntryID+"/lines", nil, payload, nil); err != nil {
			return fmt.Errorf("failed to create line %d of journal entry %s: %w", line.Position, entry.EntryID, err)
		}
	}
	return nil
}
