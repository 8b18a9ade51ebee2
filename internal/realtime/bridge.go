// Package realtime keeps one change subscription alive per connected identity, invalidating
// cached queries and forwarding row changes to the identity's event stream.
package realtime

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"servihub/config"
	"servihub/internal/cache"
	"servihub/internal/domain/entity"
	"servihub/internal/domain/lifecycle"
	"servihub/internal/domain/service"
	"servihub/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// State is the connection state of a session.
type State string

const (
	StateConnecting State = "connecting"
	StateSubscribed State = "subscribed"
	StateRetrying   State = "retrying"
	StateOffline    State = "offline"
	StateClosed     State = "closed"
)

// EventType distinguishes row changes from state transitions on a session stream.
type EventType string

const (
	EventChange EventType = "change"
	EventState  EventType = "state"
)

// Event is what a stream client receives.
type Event struct {
	Type    EventType         `json:"type"`
	Change  *entity.RowChange `json:"change,omitempty"`
	State   State             `json:"state,omitempty"`
	Attempt int               `json:"attempt,omitempty"`
	RetryIn int64             `json:"retry_in_ms,omitempty"`
	At      time.Time         `json:"at"`
}

// Identity is who a session belongs to.
type Identity struct {
	UserID uuid.UUID
	Role   entity.Role
}

// Invalidator drops cached queries that depend on a table.
type Invalidator interface {
	InvalidateTable(ctx context.Context, table string) []cache.Name
}

// ErrIdentityRequired is returned by Open for a missing user or an unknown role.
var ErrIdentityRequired = errors.New("realtime identity requires a user and a valid role")

// Bridge opens realtime sessions.
type Bridge struct {
	subscriber       service.ChangeSubscriber
	invalidator      Invalidator
	broker           *Broker
	backoff          Backoff
	subscribeTimeout time.Duration
	clock            Clock
	logger           *slog.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

// BridgeParams defines the dependencies of the bridge.
type BridgeParams struct {
	fx.In
	fx.Lifecycle

	Config      *config.Config
	Subscriber  service.ChangeSubscriber
	Invalidator Invalidator
	Logger      *slog.Logger
}

// NewBridge creates the bridge and closes every session on shutdown.
func NewBridge(params BridgeParams) *Bridge {
	rt := params.Config.Realtime
	b := newBridge(params.Subscriber, params.Invalidator, Backoff{
		Base:       rt.RetryBaseDelay,
		Max:        rt.RetryMaxDelay,
		MaxRetries: rt.MaxRetries,
	}, rt.SubscribeTimeout, systemClock{}, params.Logger)

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			b.Shutdown(stopCtx)

			return nil
		},
	})

	return b
}

func newBridge(
	subscriber service.ChangeSubscriber,
	invalidator Invalidator,
	backoff Backoff,
	subscribeTimeout time.Duration,
	clock Clock,
	logger *slog.Logger,
) *Bridge {
	if logger == nil {
		logger = slog.Default()
	}

	return &Bridge{
		subscriber:       subscriber,
		invalidator:      invalidator,
		broker:           NewBroker(),
		backoff:          backoff,
		subscribeTimeout: subscribeTimeout,
		clock:            clock,
		logger:           logger,
		sessions:         make(map[string]*Session),
	}
}

// Open starts a session for the identity. The first subscribe attempt happens before Open returns;
// a failed attempt leaves the session retrying rather than failing Open.
func (b *Bridge) Open(ctx context.Context, id Identity) (*Session, error) {
	if id.UserID == uuid.Nil || !id.Role.IsValid() {
		return nil, ErrIdentityRequired
	}

	sessionID := uuid.NewString()
	s := &Session{
		id:       sessionID,
		identity: id,
		channel:  ChannelName(id),
		filters:  FiltersFor(id),
		bridge:   b,
		events:   b.broker.Subscribe(id.Role, sessionID),
		state:    StateConnecting,
		logger: b.logger.With(
			slog.String("session", sessionID),
			slog.String("role", id.Role.String()),
			slog.String("userID", id.UserID.String()),
		),
	}

	b.mu.Lock()
	b.sessions[sessionID] = s
	b.mu.Unlock()

	s.publishState(0, 0)
	s.connect(ctx)

	return s, nil
}

// Broker exposes the fan-out used by the sessions.
func (b *Bridge) Broker() *Broker {
	return b.broker
}

// ActiveSessions returns the number of open sessions.
func (b *Bridge) ActiveSessions() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.sessions)
}

// Shutdown closes every open session.
func (b *Bridge) Shutdown(ctx context.Context) {
	b.mu.Lock()
	sessions := make([]*Session, 0, len(b.sessions))
	for _, s := range b.sessions {
		sessions = append(sessions, s)
	}
	b.mu.Unlock()

	for _, s := range sessions {
		if ctx.Err() != nil {
			return
		}
		s.Close()
	}
}

func (b *Bridge) forget(sessionID string) {
	b.mu.Lock()
	delete(b.sessions, sessionID)
	b.mu.Unlock()
}

// ChannelName builds the channel of an identity, e.g. service-requests:client:<id>.
func ChannelName(id Identity) string {
	prefix := "service-requests"
	if id.Role == entity.RoleVendor || id.Role == entity.RoleDelivery {
		prefix = "deliveries"
	}

	return prefix + ":" + id.Role.String() + ":" + id.UserID.String()
}

// FiltersFor returns the insert and update handlers of an identity. Clients see their own requests,
// technicians the requests assigned to them, admins every request. Vendors and delivery people
// follow deliveries instead.
func FiltersFor(id Identity) []service.ChangeFilter {
	table := entity.TableServiceRequests
	column := ""

	switch id.Role {
	case entity.RoleClient:
		column = "client_id"
	case entity.RoleTechnician:
		column = "technician_id"
	case entity.RoleVendor:
		table, column = entity.TableDeliveries, "vendor_id"
	case entity.RoleDelivery:
		table, column = entity.TableDeliveries, "delivery_person_id"
	case entity.RoleAdmin:
	}

	value := ""
	if column != "" {
		value = id.UserID.String()
	}

	return []service.ChangeFilter{
		{Table: table, Types: []entity.ChangeType{entity.ChangeInsert}, Column: column, Value: value},
		{Table: table, Types: []entity.ChangeType{entity.ChangeUpdate}, Column: column, Value: value},
	}
}
