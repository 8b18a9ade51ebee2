package pubsub

import (
	"context"
	"log/slog"
	"sync"

	"servihub/internal/domain/entity"
	"servihub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const subscriptionBuffer = 64

// ErrHubClosed is returned when subscribing to a closed hub.
var ErrHubClosed = errors.New("change hub closed")

// Hub is the in-process change bus feeding realtime sessions.
// Publishing never blocks: a subscription whose buffer is full misses the change.
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]*hubSubscription
	closed bool
	logger *slog.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}

	return &Hub{
		subs:   make(map[string]*hubSubscription),
		logger: logger,
	}
}

// Publish fans a change out to every matching subscription.
func (h *Hub) Publish(_ context.Context, change *entity.RowChange) error {
	if change == nil {
		return nil
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subs {
		if !sub.matches(change) {
			continue
		}

		select {
		case sub.events <- change:
		default:
			h.logger.Warn("Dropping row change for slow subscription",
				slog.String("channel", sub.channel),
				slog.String("table", change.Table),
			)
		}
	}

	return nil
}

// Subscribe registers a subscription on the hub.
func (h *Hub) Subscribe(ctx context.Context, channel string, filters ...service.ChangeFilter) (service.Subscription, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, ErrHubClosed
	}

	sub := &hubSubscription{
		id:      uuid.NewString(),
		channel: channel,
		filters: filters,
		events:  make(chan *entity.RowChange, subscriptionBuffer),
		done:    make(chan struct{}),
		hub:     h,
	}
	h.subs[sub.id] = sub

	return sub, nil
}

// Subscribers returns the number of live subscriptions.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subs)
}

// Fail ends every live subscription with err; new subscriptions are still accepted.
func (h *Hub) Fail(err error) {
	h.mu.Lock()
	subs := h.subs
	h.subs = make(map[string]*hubSubscription)
	h.mu.Unlock()

	for _, sub := range subs {
		sub.finish(err)
	}
}

// Close ends every subscription and rejects new ones.
func (h *Hub) Close() error {
	h.mu.Lock()
	h.closed = true
	subs := h.subs
	h.subs = make(map[string]*hubSubscription)
	h.mu.Unlock()

	for _, sub := range subs {
		sub.finish(ErrHubClosed)
	}

	return nil
}

func (h *Hub) remove(id string) {
	h.mu.Lock()
	delete(h.subs, id)
	h.mu.Unlock()
}

type hubSubscription struct {
	id      string
	channel string
	filters []service.ChangeFilter
	events  chan *entity.RowChange
	done    chan struct{}
	hub     *Hub

	once sync.Once
	err  error
}

func (s *hubSubscription) matches(change *entity.RowChange) bool {
	if len(s.filters) == 0 {
		return true
	}

	for _, f := range s.filters {
		if f.Matches(change) {
			return true
		}
	}

	return false
}

func (s *hubSubscription) Events() <-chan *entity.RowChange { return s.events }

func (s *hubSubscription) Done() <-chan struct{} { return s.done }

func (s *hubSubscription) Err() error {
	select {
	case <-s.done:
		return s.err
	default:
		return nil
	}
}

func (s *hubSubscription) Close() {
	s.hub.remove(s.id)
	s.finish(nil)
}

func (s *hubSubscription) finish(err error) {
	s.once.Do(func() {
		s.err = err
		close(s.done)
	})
}
