package realtime

import (
	"context"
	"sync"
	"testing"
	"time"

	"servihub/internal/cache"
	"servihub/internal/domain/entity"
	"servihub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	wasActive := !t.stopped
	t.stopped = true

	return wasActive
}

type fakeClock struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := &fakeTimer{delay: d, fn: f}
	c.timers = append(c.timers, t)

	return t
}

func (c *fakeClock) scheduled() []*fakeTimer {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]*fakeTimer(nil), c.timers...)
}

// fire runs the timer callback unless it was stopped.
func (c *fakeClock) fire(t *fakeTimer) {
	if t.stopped {
		return
	}
	t.stopped = true
	t.fn()
}

type fakeSubscription struct {
	events chan *entity.RowChange
	done   chan struct{}
	once   sync.Once
	err    error
}

func newFakeSubscription() *fakeSubscription {
	return &fakeSubscription{
		events: make(chan *entity.RowChange, 8),
		done:   make(chan struct{}),
	}
}

func (s *fakeSubscription) Events() <-chan *entity.RowChange { return s.events }
func (s *fakeSubscription) Done() <-chan struct{}            { return s.done }
func (s *fakeSubscription) Err() error                       { return s.err }
func (s *fakeSubscription) Close()                           { s.end(nil) }

func (s *fakeSubscription) end(err error) {
	s.once.Do(func() {
		s.err = err
		close(s.done)
	})
}

type fakeSubscriber struct {
	mu       sync.Mutex
	failures int // remaining attempts that fail
	calls    int
	channels []string
	filters  [][]service.ChangeFilter
	subs     []*fakeSubscription
}

func (f *fakeSubscriber) Subscribe(_ context.Context, channel string, filters ...service.ChangeFilter) (service.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	f.channels = append(f.channels, channel)
	f.filters = append(f.filters, filters)

	if f.failures != 0 {
		if f.failures > 0 {
			f.failures--
		}

		return nil, errors.New("channel error")
	}

	sub := newFakeSubscription()
	f.subs = append(f.subs, sub)

	return sub, nil
}

func (f *fakeSubscriber) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.calls
}

func (f *fakeSubscriber) lastSub() *fakeSubscription {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.subs[len(f.subs)-1]
}

type recordingInvalidator struct {
	mu     sync.Mutex
	tables []string
}

func (r *recordingInvalidator) InvalidateTable(_ context.Context, table string) []cache.Name {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tables = append(r.tables, table)

	return nil
}

func (r *recordingInvalidator) recorded() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.tables...)
}

type bridgeFixtures struct {
	bridge      *Bridge
	clock       *fakeClock
	subscriber  *fakeSubscriber
	invalidator *recordingInvalidator
}

func createTestBridge(t *testing.T, failures int, backoff Backoff) bridgeFixtures {
	t.Helper()

	clock := &fakeClock{}
	subscriber := &fakeSubscriber{failures: failures}
	invalidator := &recordingInvalidator{}

	return bridgeFixtures{
		bridge:      newBridge(subscriber, invalidator, backoff, time.Second, clock, nil),
		clock:       clock,
		subscriber:  subscriber,
		invalidator: invalidator,
	}
}

var defaultBackoff = Backoff{Base: 2 * time.Second, Max: 30 * time.Second, MaxRetries: 6}

func clientIdentity() Identity {
	return Identity{UserID: uuid.New(), Role: entity.RoleClient}
}

func TestSession_SubscribeFailureSchedulesExactlyOneRetry(t *testing.T) {
	fx := createTestBridge(t, 1, defaultBackoff)

	session, err := fx.bridge.Open(context.Background(), clientIdentity())
	require.NoError(t, err)

	timers := fx.clock.scheduled()
	require.Len(t, timers, 1)
	assert.Equal(t, 2000*time.Millisecond, timers[0].delay)
	assert.Equal(t, StateRetrying, session.State())
	assert.Equal(t, 1, fx.subscriber.callCount())
}

func TestSession_CloseCancelsPendingRetry(t *testing.T) {
	fx := createTestBridge(t, 1, defaultBackoff)

	session, err := fx.bridge.Open(context.Background(), clientIdentity())
	require.NoError(t, err)

	timers := fx.clock.scheduled()
	require.Len(t, timers, 1)

	session.Close()

	assert.True(t, timers[0].stopped)
	fx.clock.fire(timers[0])

	assert.Equal(t, 1, fx.subscriber.callCount(), "no retry may run after close")
	assert.Equal(t, StateClosed, session.State())
	assert.Equal(t, 0, fx.bridge.ActiveSessions())
}

func TestSession_RetrySuccessResetsAttempts(t *testing.T) {
	fx := createTestBridge(t, 2, defaultBackoff)

	session, err := fx.bridge.Open(context.Background(), clientIdentity())
	require.NoError(t, err)

	fx.clock.fire(fx.clock.scheduled()[0])
	assert.Equal(t, 2, session.Attempts())

	fx.clock.fire(fx.clock.scheduled()[1])
	assert.Equal(t, StateSubscribed, session.State())
	assert.Equal(t, 0, session.Attempts())
	assert.Equal(t, 3, fx.subscriber.callCount())

	session.Close()
}

func TestSession_BackoffDoublesCapsAndGoesOffline(t *testing.T) {
	fx := createTestBridge(t, -1, Backoff{Base: 2 * time.Second, Max: 10 * time.Second, MaxRetries: 4})

	session, err := fx.bridge.Open(context.Background(), clientIdentity())
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		timers := fx.clock.scheduled()
		require.Len(t, timers, i+1)
		fx.clock.fire(timers[i])
	}

	var delays []time.Duration
	for _, tm := range fx.clock.scheduled() {
		delays = append(delays, tm.delay)
	}

	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second, 8 * time.Second, 10 * time.Second}, delays)
	assert.Equal(t, StateOffline, session.State())
	assert.Equal(t, 5, fx.subscriber.callCount())
	assert.Len(t, fx.clock.scheduled(), 4, "no retry after going offline")

	session.Close()
}

func TestSession_ForwardsChangesAndInvalidates(t *testing.T) {
	fx := createTestBridge(t, 0, defaultBackoff)
	id := clientIdentity()

	session, err := fx.bridge.Open(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, StateSubscribed, session.State())

	change := &entity.RowChange{Table: entity.TableServiceRequests, Type: entity.ChangeUpdate, RecordID: uuid.New()}
	fx.subscriber.lastSub().events <- change

	deadline := time.After(time.Second)
	for {
		select {
		case ev := <-session.Events():
			if ev.Type != EventChange {
				continue
			}
			assert.Equal(t, change, ev.Change)
			assert.Equal(t, []string{entity.TableServiceRequests}, fx.invalidator.recorded())
			session.Close()

			return
		case <-deadline:
			t.Fatal("change event not forwarded")
		}
	}
}

func TestSession_DroppedSubscriptionIsRetried(t *testing.T) {
	fx := createTestBridge(t, 0, defaultBackoff)

	session, err := fx.bridge.Open(context.Background(), clientIdentity())
	require.NoError(t, err)

	fx.subscriber.lastSub().end(errors.New("connection reset"))

	assert.Eventually(t, func() bool {
		return len(fx.clock.scheduled()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, StateRetrying, session.State())
	assert.Equal(t, 2*time.Second, fx.clock.scheduled()[0].delay)

	session.Close()
}

func TestSession_CloseDoesNotTriggerRetry(t *testing.T) {
	fx := createTestBridge(t, 0, defaultBackoff)

	session, err := fx.bridge.Open(context.Background(), clientIdentity())
	require.NoError(t, err)

	sub := fx.subscriber.lastSub()
	session.Close()

	<-sub.Done()
	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, fx.clock.scheduled())
}

func TestBridge_Open_RequiresIdentity(t *testing.T) {
	fx := createTestBridge(t, 0, defaultBackoff)

	_, err := fx.bridge.Open(context.Background(), Identity{Role: entity.RoleClient})
	assert.ErrorIs(t, err, ErrIdentityRequired)

	_, err = fx.bridge.Open(context.Background(), Identity{UserID: uuid.New(), Role: "guest"})
	assert.ErrorIs(t, err, ErrIdentityRequired)
}

func TestBridge_ChannelNameAndFilters(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		role    entity.Role
		channel string
		table   string
		column  string
	}{
		{entity.RoleClient, "service-requests:client:" + userID.String(), entity.TableServiceRequests, "client_id"},
		{entity.RoleTechnician, "service-requests:technician:" + userID.String(), entity.TableServiceRequests, "technician_id"},
		{entity.RoleAdmin, "service-requests:admin:" + userID.String(), entity.TableServiceRequests, ""},
		{entity.RoleVendor, "deliveries:vendor:" + userID.String(), entity.TableDeliveries, "vendor_id"},
		{entity.RoleDelivery, "deliveries:delivery:" + userID.String(), entity.TableDeliveries, "delivery_person_id"},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			id := Identity{UserID: userID, Role: tt.role}
			assert.Equal(t, tt.channel, ChannelName(id))

			filters := FiltersFor(id)
			require.Len(t, filters, 2)
			assert.Equal(t, []entity.ChangeType{entity.ChangeInsert}, filters[0].Types)
			assert.Equal(t, []entity.ChangeType{entity.ChangeUpdate}, filters[1].Types)
			for _, f := range filters {
				assert.Equal(t, tt.table, f.Table)
				assert.Equal(t, tt.column, f.Column)
			}
		})
	}
}

func TestBackoff_Delay(t *testing.T) {
	b := Backoff{Base: 2 * time.Second, Max: 30 * time.Second, MaxRetries: 6}

	assert.Equal(t, 2*time.Second, b.Delay(1))
	assert.Equal(t, 4*time.Second, b.Delay(2))
	assert.Equal(t, 16*time.Second, b.Delay(4))
	assert.Equal(t, 30*time.Second, b.Delay(5))
	assert.Equal(t, 30*time.Second, b.Delay(20))
	assert.False(t, b.Exhausted(6))
	assert.True(t, b.Exhausted(7))
}
