package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/openbooks-app/openbooks_backend/internal/apperrors"
	"github.com/openbooks-app/openbooks_backend/internal/core/domain"
	portsrepo "github.com/openbooks-app/openbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/openbooks-app/openbooks_backend/internal/core/ports/services"
	"github.com/openbooks-app/openbooks_backend/internal/middleware"
)

// accountDefaultsService resolves semantic account roles to concrete ledger
// accounts, caching the resolved map for a TTL. The cache is a single shared
// value; a race during population costs at most a redundant fetch.
type accountDefaultsService struct {
	repo portsrepo.AccountDefaultReader
	ttl  time.Duration

	mu        sync.Mutex
	cached    map[domain.AccountDefaultType]domain.AccountDefault
	fetchedAt time.Time
}

// NewAccountDefaultsService creates a new AccountDefaultsService with the
// given cache TTL. External changes to defaults are observed only after the
// TTL elapses.
func NewAccountDefaultsService(repo portsrepo.AccountDefaultReader, ttl time.Duration) portssvc.AccountDefaultsSvcFacade {
	return &accountDefaultsService{
		repo: repo,
		ttl:  ttl,
	}
}

var _ portssvc.AccountDefaultsSvcFacade = (*accountDefaultsService)(nil)

// GetAccountDefaults returns the active defaults indexed by role. A repeated
// call within the TTL window returns the cached map without a remote fetch.
// Missing roles are simply absent from the map; RequireDefault turns absence
// into a configuration error at the call site.
func (s *accountDefaultsService) GetAccountDefaults(ctx context.Context) (map[domain.AccountDefaultType]domain.AccountDefault, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && time.Since(s.fetchedAt) < s.ttl {
		return s.cached, nil
	}

	logger := middleware.GetLoggerFromCtx(ctx)

	defaults, err := s.repo.FindAccountDefaults(ctx)
	if err != nil {
		logger.Error("Failed to fetch account defaults", "error", err)
		return nil, fmt.Errorf("failed to fetch account defaults: %w", err)
	}

	resolved := make(map[domain.AccountDefaultType]domain.AccountDefault, len(defaults))
	for _, d := range defaults {
		if !d.IsActive {
			continue
		}
		resolved[d.AccountType] = d
	}

	s.cached = resolved
	s.fetchedAt = time.Now()

	logger.Debug("Account defaults cache refreshed", "count", len(resolved))
	return resolved, nil
}

// Reset clears the cached defaults so the next call refetches.
func (s *accountDefaultsService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached = nil
	s.fetchedAt = time.Time{}
}

// RequireDefault returns the ledger account configured for the given role,
// or a configuration error naming the missing role.
func RequireDefault(defaults map[domain.AccountDefaultType]domain.AccountDefault, accountType domain.AccountDefaultType) (string, error) {
	d, ok := defaults[accountType]
	if !ok {
		return "", fmt.Errorf("%w: %s default account not configured", apperrors.ErrConfiguration, accountType.DisplayName())
	}
	return d.AccountID, nil
}
