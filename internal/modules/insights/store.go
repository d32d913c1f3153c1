// Package insights holds the in-memory order query engine behind the admin
// dashboard: a refreshable snapshot of the full order set, composable filter
// predicates, selectable sort orders and summary aggregation. Filtering and
// aggregation are pure functions over the snapshot; only Refresh talks to the
// database.
package insights

import (
	"context"
	"sync"
	"time"

	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/metrics"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/modules/orders"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/shared/apperr"
)

// OrderLister is the paginated listing contract (orders.Repo satisfies it).
type OrderLister interface {
	ListOrders(ctx context.Context, page, pageSize int) ([]orders.Order, int64, error)
}

const refreshPageSize = 100

// Store keeps the base set: the full unfiltered order collection, replaced
// wholesale on every refresh. Reads hand out the current snapshot; a failed
// refresh leaves the previous snapshot untouched.
type Store struct {
	lister OrderLister

	mu          sync.RWMutex
	base        []orders.Order
	refreshedAt time.Time
}

func NewStore(lister OrderLister) *Store {
	return &Store{lister: lister}
}

// Refresh pages through the listing service and replaces the snapshot in one
// step. Any page failure aborts the refresh with a fetch error and retains
// the previous base set; there is no partial overwrite.
func (s *Store) Refresh(ctx context.Context) error {
	var all []orders.Order

	for page := 1; ; page++ {
		items, total, err := s.lister.ListOrders(ctx, page, refreshPageSize)
		if err != nil {
			return apperr.FetchErr("Orders could not be loaded.", err)
		}
		all = append(all, items...)
		if len(items) == 0 || int64(len(all)) >= total {
			break
		}
	}

	s.mu.Lock()
	s.base = all
	s.refreshedAt = time.Now()
	s.mu.Unlock()

	metrics.OrderRefreshesTotal.Inc()
	return nil
}

// Snapshot returns the current base set. Callers must treat it as read-only.
func (s *Store) Snapshot() []orders.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.base
}

// RefreshedAt reports when the base set was last replaced (zero if never).
func (s *Store) RefreshedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshedAt
}
