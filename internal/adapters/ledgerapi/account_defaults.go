package ledgerapi

import (
	"context"
	"net/http"

	"github.com/openbooks-app/openbooks_backend/internal/core/domain"
	portsrepo "github.com/openbooks-app/openbooks_backend/internal/core/ports/repositories"
)

// AccountDefaultRepository implements the account-default port against the
// data service.
type AccountDefaultRepository struct {
	client *Client
}

// NewAccountDefaultRepository creates a new AccountDefaultRepository.
func NewAccountDefaultRepository(client *Client) *AccountDefaultRepository {
	return &AccountDefaultRepository{client: client}
}

var _ portsrepo.AccountDefaultReader = (*AccountDefaultRepository)(nil)

func (r *AccountDefaultRepository) FindAccountDefaults(ctx context.Context) ([]domain.AccountDefault, error) {
	var resp accountDefaultsResponse
	if err := r.client.do(ctx, http.MethodGet, "/account-defaults", nil, nil, &resp); err != nil {
		return nil, err
	}
	defaults := make([]domain.AccountDefault, 0, len(resp.Defaults))
	for _, p := range resp.Defaults {
		defaults = append(defaults, p.toDomain())
	}
	return defaults, nil
}
