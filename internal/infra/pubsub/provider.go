package pubsub

import (
	"context"
	"log/slog"

	"servihub/config"
	"servihub/internal/domain/constants"
	"servihub/internal/domain/entity"
	"servihub/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// noopPublisher is a no-op implementation when Pub/Sub is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) Publish(_ context.Context, change *entity.RowChange) error {
	p.logger.Debug("[NoopPubSub] Row change publishing disabled, skipping",
		slog.String("table", change.Table),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// fanoutPublisher delivers to the in-process hub and to the external transport.
// External failures are logged; the mutation they describe has already committed.
type fanoutPublisher struct {
	local    service.ChangePublisher
	external service.ChangePublisher
	logger   *slog.Logger
}

// NewFanoutPublisher combines a local and an external publisher. Either may be nil.
func NewFanoutPublisher(local, external service.ChangePublisher, logger *slog.Logger) service.ChangePublisher {
	return &fanoutPublisher{
		local:    local,
		external: external,
		logger:   logger,
	}
}

func (p *fanoutPublisher) Publish(ctx context.Context, change *entity.RowChange) error {
	if change == nil {
		return nil
	}

	if p.local != nil {
		if err := p.local.Publish(ctx, change); err != nil {
			return err
		}
	}

	if p.external != nil {
		if err := p.external.Publish(ctx, change); err != nil {
			p.logger.Warn("Failed to publish row change externally",
				slog.String("table", change.Table),
				slog.String("record_id", change.RecordID.String()),
				slog.Any("error", err),
			)
		}
	}

	return nil
}

func (p *fanoutPublisher) Close() error {
	if p.external != nil {
		return p.external.Close()
	}

	return nil
}

// HubParams holds dependencies for the change hub, injected by Fx
type HubParams struct {
	fx.In

	Lc     fx.Lifecycle
	Logger *slog.Logger
}

// NewChangeHub creates the in-process hub and closes it on shutdown.
func NewChangeHub(params HubParams) *Hub {
	hub := NewHub(params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return hub.Close()
		},
	})

	return hub
}

// PublisherParams holds dependencies for ChangePublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Hub    *Hub
	Logger *slog.Logger
}

// NewChangePublisher creates a ChangePublisher based on configuration.
// With the postgres change feed the hub is fed by the database trigger, not by the publisher.
func NewChangePublisher(params PublisherParams) (service.ChangePublisher, error) {
	external, err := NewExternalPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	var local service.ChangePublisher = params.Hub
	if params.Config.Realtime != nil && params.Config.Realtime.Provider == constants.ChangeFeedPostgres {
		local = nil
	}

	publisher := NewFanoutPublisher(local, external, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing ChangePublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// NewExternalPublisher creates the publisher for the configured Pub/Sub provider.
func NewExternalPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.ChangePublisher, error) {
	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.PubSubProviderNone {
		logger.Info("PubSub not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

// SubscriberParams holds dependencies for ChangeSubscriber, injected by Fx
type SubscriberParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Hub    *Hub
	DB     *gorm.DB
	Logger *slog.Logger
}

// NewChangeSubscriber selects the change feed used by realtime sessions.
func NewChangeSubscriber(params SubscriberParams) (service.ChangeSubscriber, error) {
	cfg := params.Config.Realtime
	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.ChangeFeedMemory {
		params.Logger.Info("Using in-process change feed")

		return params.Hub, nil
	}

	if cfg.Provider != constants.ChangeFeedPostgres {
		return nil, errors.Errorf("unknown realtime provider: %s", cfg.Provider)
	}

	sqlDB, err := params.DB.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	listener := NewPgListener(sqlDB, params.Hub, cfg.NotifyChannel, params.Logger)
	params.Lc.Append(fx.Hook{
		OnStart: listener.Start,
		OnStop: func(_ context.Context) error {
			return listener.Stop()
		},
	})

	params.Logger.Info("Using Postgres change feed", slog.String("channel", cfg.NotifyChannel))

	return listener, nil
}

// Module provides the change feed FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewChangeHub,
		NewChangePublisher,
		NewChangeSubscriber,
	),
)
