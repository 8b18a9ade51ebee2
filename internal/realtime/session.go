package realtime

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"servihub/internal/domain/entity"
	"servihub/internal/domain/service"
)

// Session is one live subscription for an identity.
type Session struct {
	id       string
	identity Identity
	channel  string
	filters  []service.ChangeFilter
	bridge   *Bridge
	events   chan Event
	logger   *slog.Logger

	mu       sync.Mutex
	state    State
	attempts int
	timer    Timer
	sub      service.Subscription
	closed   bool
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Channel returns the channel name of the session.
func (s *Session) Channel() string {
	return s.channel
}

// Events yields change and state events until the session closes.
func (s *Session) Events() <-chan Event {
	return s.events
}

// State returns the current connection state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Attempts returns the number of consecutive failed subscribe attempts.
func (s *Session) Attempts() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.attempts
}

// Close cancels any pending retry and releases the subscription. No retry runs after Close.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return
	}
	s.closed = true
	s.state = StateClosed

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	sub := s.sub
	s.sub = nil
	s.mu.Unlock()

	if sub != nil {
		sub.Close()
	}

	s.bridge.broker.Unsubscribe(s.identity.Role, s.id)
	s.bridge.forget(s.id)
	s.logger.Debug("Realtime session closed")
}

func (s *Session) connect(ctx context.Context) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return
	}
	s.timer = nil
	s.state = StateConnecting
	s.mu.Unlock()

	subCtx := context.WithoutCancel(ctx)
	if s.bridge.subscribeTimeout > 0 {
		var cancel context.CancelFunc
		subCtx, cancel = context.WithTimeout(subCtx, s.bridge.subscribeTimeout)
		defer cancel()
	}

	sub, err := s.bridge.subscriber.Subscribe(subCtx, s.channel, s.filters...)
	if err != nil {
		s.logger.Warn("Realtime subscribe failed", slog.Any("error", err))
		s.fail()

		return
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		sub.Close()

		return
	}
	s.sub = sub
	s.attempts = 0
	s.state = StateSubscribed
	s.mu.Unlock()

	s.logger.Debug("Realtime session subscribed", slog.String("channel", s.channel))
	s.publishState(0, 0)

	go s.pump(sub)
}

func (s *Session) pump(sub service.Subscription) {
	events := sub.Events()
	for {
		select {
		case change, ok := <-events:
			if !ok {
				events = nil

				continue
			}
			s.deliver(change)
		case <-sub.Done():
			// Drain what arrived before the end of the stream.
			for {
				select {
				case change, ok := <-events:
					if !ok {
						s.dropped(sub)

						return
					}
					s.deliver(change)
				default:
					s.dropped(sub)

					return
				}
			}
		}
	}
}

func (s *Session) deliver(change *entity.RowChange) {
	if change == nil {
		return
	}

	s.bridge.invalidator.InvalidateTable(context.Background(), change.Table)
	s.bridge.broker.Publish(s.identity.Role, s.id, Event{
		Type:   EventChange,
		Change: change,
		At:     time.Now(),
	})
}

// dropped handles the end of a subscription. Ends caused by Close are ignored; anything else counts as a failure.
func (s *Session) dropped(sub service.Subscription) {
	s.mu.Lock()
	current := s.sub == sub
	closed := s.closed
	if current {
		s.sub = nil
	}
	s.mu.Unlock()

	if closed || !current {
		return
	}

	s.logger.Warn("Realtime subscription dropped", slog.Any("error", sub.Err()))
	s.fail()
}

// fail records a failed attempt and schedules exactly one retry, or goes offline when the budget is spent.
func (s *Session) fail() {
	s.mu.Lock()
	if s.closed || s.timer != nil {
		s.mu.Unlock()

		return
	}

	s.attempts++
	attempt := s.attempts

	if s.bridge.backoff.Exhausted(attempt) {
		s.state = StateOffline
		s.mu.Unlock()

		s.logger.Warn("Realtime session offline", slog.Int("attempts", attempt-1))
		s.publishState(attempt-1, 0)

		return
	}

	delay := s.bridge.backoff.Delay(attempt)
	s.state = StateRetrying
	s.timer = s.bridge.clock.AfterFunc(delay, func() {
		s.connect(context.Background())
	})
	s.mu.Unlock()

	s.logger.Info("Realtime retry scheduled", slog.Int("attempt", attempt), slog.Duration("delay", delay))
	s.publishState(attempt, delay)
}

func (s *Session) publishState(attempt int, retryIn time.Duration) {
	s.mu.Lock()
	state := s.state
	closed := s.closed
	s.mu.Unlock()

	if closed {
		return
	}

	s.bridge.broker.Publish(s.identity.Role, s.id, Event{
		Type:    EventState,
		State:   state,
		Attempt: attempt,
		RetryIn: retryIn.Milliseconds(),
		At:      time.Now(),
	})
}
