package pubsub

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"servihub/internal/domain/entity"
	"servihub/internal/domain/service"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"
)

const defaultRelistenDelay = 2 * time.Second

var (
	// ErrListenerNotReady is returned by Subscribe while the LISTEN connection is down.
	ErrListenerNotReady = errors.New("change listener not ready")

	errUnsupportedDriver = errors.New("database driver is not pgx")
)

// privateColumns are removed from notifications before they reach subscribers.
var privateColumns = []string{"password_hash", "pickup_code"}

// PgListener feeds the hub from a Postgres LISTEN channel populated by row triggers.
// When the connection drops every live subscription ends with the connection error.
type PgListener struct {
	hub           *Hub
	db            *sql.DB
	channel       string
	relistenDelay time.Duration
	logger        *slog.Logger

	ready  atomic.Bool
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPgListener creates a listener on channel using a dedicated connection from db.
func NewPgListener(db *sql.DB, hub *Hub, channel string, logger *slog.Logger) *PgListener {
	return &PgListener{
		hub:           hub,
		db:            db,
		channel:       channel,
		relistenDelay: defaultRelistenDelay,
		logger:        logger,
	}
}

// Start runs the listen loop until Stop is called.
func (l *PgListener) Start(_ context.Context) error {
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		l.run(ctx)
	}()

	return nil
}

// Stop ends the listen loop and closes the hub.
func (l *PgListener) Stop() error {
	if l.cancel != nil {
		l.cancel()
	}
	l.wg.Wait()

	return l.hub.Close()
}

// Ready reports whether the LISTEN connection is established.
func (l *PgListener) Ready() bool {
	return l.ready.Load()
}

// Subscribe registers on the hub once the listener is connected.
func (l *PgListener) Subscribe(ctx context.Context, channel string, filters ...service.ChangeFilter) (service.Subscription, error) {
	if !l.ready.Load() {
		return nil, ErrListenerNotReady
	}

	return l.hub.Subscribe(ctx, channel, filters...)
}

func (l *PgListener) run(ctx context.Context) {
	for {
		err := l.listen(ctx)
		l.ready.Store(false)

		if ctx.Err() != nil {
			return
		}

		l.logger.Warn("Change listener disconnected",
			slog.String("channel", l.channel),
			slog.Any("error", err),
		)
		l.hub.Fail(err)

		select {
		case <-ctx.Done():
			return
		case <-time.After(l.relistenDelay):
		}
	}
}

func (l *PgListener) listen(ctx context.Context) error {
	conn, err := l.db.Conn(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to acquire listen connection")
	}
	defer conn.Close()

	return conn.Raw(func(driverConn any) error {
		stdConn, ok := driverConn.(*stdlib.Conn)
		if !ok {
			return errUnsupportedDriver
		}
		pgConn := stdConn.Conn()

		if _, err := pgConn.Exec(ctx, "LISTEN "+pgx.Identifier{l.channel}.Sanitize()); err != nil {
			return errors.Wrap(err, "failed to listen")
		}
		l.ready.Store(true)
		l.logger.Info("Change listener connected", slog.String("channel", l.channel))

		for {
			notification, err := pgConn.WaitForNotification(ctx)
			if err != nil {
				return errors.WithStack(err)
			}
			l.dispatch(ctx, notification.Payload)
		}
	})
}

func (l *PgListener) dispatch(ctx context.Context, payload string) {
	var change entity.RowChange
	if err := json.Unmarshal([]byte(payload), &change); err != nil {
		l.logger.Warn("Ignoring malformed row change notification",
			slog.String("channel", l.channel),
			slog.Any("error", err),
		)

		return
	}
	change.Strip(privateColumns...)

	if err := l.hub.Publish(ctx, &change); err != nil {
		l.logger.Warn("Failed to fan out row change", slog.Any("error", err))
	}
}
