package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(staleTime time.Duration) *Store {
	return NewStore(DefaultGraph(), staleTime, nil)
}

func TestStore_Get_CachesUntilInvalidated(t *testing.T) {
	store := newTestStore(time.Minute)
	ctx := context.Background()
	key := Scoped(ServiceRequests, "client", "c1")

	var calls int32
	fetch := func(context.Context) (any, error) {
		return atomic.AddInt32(&calls, 1), nil
	}

	first, err := store.Get(ctx, key, fetch)
	require.NoError(t, err)
	second, err := store.Get(ctx, key, fetch)
	require.NoError(t, err)

	assert.Equal(t, int32(1), first)
	assert.Equal(t, int32(1), second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	store.InvalidateFor(ctx, MutationServiceRequestCreate)

	third, err := store.Get(ctx, key, fetch)
	require.NoError(t, err)
	assert.Equal(t, int32(2), third)

	stats := store.Stats()[ServiceRequests]
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(2), stats.Misses)
	assert.Equal(t, int64(1), stats.Invalidations)
}

func TestStore_Get_ExpiresAfterStaleTime(t *testing.T) {
	store := newTestStore(time.Second)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	var calls int32
	fetch := func(context.Context) (any, error) {
		return atomic.AddInt32(&calls, 1), nil
	}

	_, err := store.Get(context.Background(), Global(Categories), fetch)
	require.NoError(t, err)

	now = now.Add(2 * time.Second)

	v, err := store.Get(context.Background(), Global(Categories), fetch)
	require.NoError(t, err)
	assert.Equal(t, int32(2), v)
}

func TestStore_Get_CoalescesConcurrentFetches(t *testing.T) {
	store := newTestStore(time.Minute)
	release := make(chan struct{})

	var calls int32
	fetch := func(context.Context) (any, error) {
		atomic.AddInt32(&calls, 1)
		<-release

		return "value", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := store.Get(context.Background(), Global(PlatformSettings), fetch)
			assert.NoError(t, err)
			assert.Equal(t, "value", v)
		}()
	}

	// Give the goroutines time to join the in-flight call.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestStore_Get_DiscardsResultRacedByInvalidation(t *testing.T) {
	store := newTestStore(time.Minute)
	ctx := context.Background()
	key := Global(Products)

	started := make(chan struct{})
	release := make(chan struct{})

	done := make(chan any)
	go func() {
		v, err := store.Get(ctx, key, func(context.Context) (any, error) {
			close(started)
			<-release

			return "stale", nil
		})
		assert.NoError(t, err)
		done <- v
	}()

	<-started
	store.Invalidate(Products)
	close(release)

	// The caller still receives its own result.
	assert.Equal(t, "stale", <-done)
	assert.Equal(t, 0, store.Len())
	assert.Equal(t, int64(1), store.Stats()[Products].Discarded)

	v, err := store.Get(ctx, key, func(context.Context) (any, error) { return "fresh", nil })
	require.NoError(t, err)
	assert.Equal(t, "fresh", v)
}

func TestStore_Get_FetchErrorIsNotCached(t *testing.T) {
	store := newTestStore(time.Minute)
	boom := errors.New("boom")

	_, err := store.Get(context.Background(), Global(Financials), func(context.Context) (any, error) {
		return nil, boom
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Equal(t, 0, store.Len())
}

func TestStore_InvalidateFor_WalletDepositInvalidatesEachDependentOnce(t *testing.T) {
	store := newTestStore(time.Minute)
	ctx := context.Background()

	for _, name := range AllNames {
		_, err := store.Get(ctx, Scoped(name, "admin", "a1"), func(context.Context) (any, error) { return name, nil })
		require.NoError(t, err)
	}

	invalidated := store.InvalidateFor(ctx, MutationWalletDeposit)

	assert.ElementsMatch(t, []Name{WalletTransactions, TechnicianProfile, Technicians, PendingPayments, Financials}, invalidated)

	stats := store.Stats()
	for _, name := range AllNames {
		want := int64(0)
		for _, inv := range invalidated {
			if inv == name {
				want = 1
			}
		}
		assert.Equal(t, want, stats[name].Invalidations, "invalidations of %s", name)
	}
}

func TestStore_InvalidateFor_DropsAllScopes(t *testing.T) {
	store := newTestStore(time.Minute)
	ctx := context.Background()

	for _, scope := range []string{"client:1", "client:2", "technician:3"} {
		_, err := store.Get(ctx, Key{Name: ServiceRequests, Scope: scope}, func(context.Context) (any, error) { return scope, nil })
		require.NoError(t, err)
	}
	_, err := store.Get(ctx, Global(Categories), func(context.Context) (any, error) { return "c", nil })
	require.NoError(t, err)

	store.InvalidateTable(ctx, "service_requests")

	assert.Equal(t, 1, store.Len())
}

func TestFetch_Typed(t *testing.T) {
	store := newTestStore(time.Minute)

	got, err := Fetch(context.Background(), store, Global(Categories), func(context.Context) ([]string, error) {
		return []string{"plumbing"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"plumbing"}, got)

	_, err = Fetch(context.Background(), store, Global(Categories), func(context.Context) (int, error) {
		return 1, nil
	})
	assert.Error(t, err)
}
