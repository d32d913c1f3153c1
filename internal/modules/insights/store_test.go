package insights

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/modules/orders"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/shared/apperr"
)

type fakeLister struct {
	pages [][]orders.Order
	total int64
	err   error
	calls int
}

func (f *fakeLister) ListOrders(_ context.Context, page, _ int) ([]orders.Order, int64, error) {
	f.calls++
	if f.err != nil {
		return nil, 0, f.err
	}
	if page-1 >= len(f.pages) {
		return nil, f.total, nil
	}
	return f.pages[page-1], f.total, nil
}

func TestRefreshReplacesWholeSet(t *testing.T) {
	lister := &fakeLister{
		pages: [][]orders.Order{{order("a"), order("b")}, {order("c")}},
		total: 3,
	}
	s := NewStore(lister)

	require.NoError(t, s.Refresh(context.Background()))
	assert.Equal(t, []string{"a", "b", "c"}, idsOf(s.Snapshot()))
	assert.False(t, s.RefreshedAt().IsZero())

	// second refresh replaces, not appends
	lister.pages = [][]orders.Order{{order("d")}}
	lister.total = 1
	require.NoError(t, s.Refresh(context.Background()))
	assert.Equal(t, []string{"d"}, idsOf(s.Snapshot()))
}

func TestRefreshFailureKeepsPreviousSnapshot(t *testing.T) {
	lister := &fakeLister{pages: [][]orders.Order{{order("a")}}, total: 1}
	s := NewStore(lister)
	require.NoError(t, s.Refresh(context.Background()))

	lister.err = errors.New("connection refused")
	err := s.Refresh(context.Background())
	require.Error(t, err)

	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.Fetch, ae.Kind)

	// previous good state retained, no partial overwrite
	assert.Equal(t, []string{"a"}, idsOf(s.Snapshot()))
}

func TestRefreshEmptyListing(t *testing.T) {
	s := NewStore(&fakeLister{total: 0})
	require.NoError(t, s.Refresh(context.Background()))
	assert.Empty(t, s.Snapshot())
}
