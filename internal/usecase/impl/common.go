// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"servihub/config"
	"servihub/internal/cache"
	deliverycontext "servihub/internal/delivery/context"
	"servihub/internal/domain/entity"
	domainerrors "servihub/internal/domain/errors"
	"servihub/internal/domain/repository"
	"servihub/internal/domain/service"
	"servihub/internal/errors"
	"servihub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// CommonParams holds the dependencies shared by every mutating use case, injected by Fx.
type CommonParams struct {
	fx.In

	Publisher service.ChangePublisher
	Cache     *cache.Store
	Config    *config.Config
	Logger    *slog.Logger
}

// changeNotifier runs the post-commit steps of a mutation: publish the row changes,
// then invalidate the dependent cache keys once.
type changeNotifier struct {
	publisher service.ChangePublisher
	cache     *cache.Store
	logger    *slog.Logger
}

func newChangeNotifier(params CommonParams) *changeNotifier {
	return &changeNotifier{
		publisher: params.Publisher,
		cache:     params.Cache,
		logger:    params.Logger,
	}
}

// rowChange builds a change event. Encoding failures are logged and yield nil.
func (n *changeNotifier) rowChange(ctx context.Context, table string, changeType entity.ChangeType, id uuid.UUID, record any) *entity.RowChange {
	change, err := entity.NewRowChange(table, changeType, id, record)
	if err != nil {
		n.log(ctx).Error("Failed to encode row change", slog.String("table", table), slog.Any("error", err))

		return nil
	}

	return change
}

// rowUpdate builds an UPDATE change that also carries the previous values in old.
func (n *changeNotifier) rowUpdate(ctx context.Context, table string, id uuid.UUID, record, old any) *entity.RowChange {
	change := n.rowChange(ctx, table, entity.ChangeUpdate, id, record)
	if change == nil || old == nil {
		return change
	}

	raw, err := json.Marshal(old)
	if err != nil {
		n.log(ctx).Error("Failed to encode previous row", slog.String("table", table), slog.Any("error", err))

		return change
	}
	change.OldRecord = raw

	return change
}

// committed publishes the changes and invalidates the keys of the mutation.
// Publish failures are logged only: the write already committed.
func (n *changeNotifier) committed(ctx context.Context, mutation cache.Mutation, changes ...*entity.RowChange) {
	for _, change := range changes {
		if change == nil {
			continue
		}
		if err := n.publisher.Publish(ctx, change); err != nil {
			n.log(ctx).Warn("Failed to publish row change",
				slog.String("table", change.Table),
				slog.String("record_id", change.RecordID.String()),
				slog.Any("error", err),
			)
		}
	}

	n.cache.InvalidateFor(ctx, mutation)
}

func (n *changeNotifier) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, n.logger)
}

// requireRole fails with ErrForbidden unless the actor has one of the roles.
func requireRole(actor usecase.Actor, roles ...entity.Role) error {
	if actor.ID == uuid.Nil {
		return domainerrors.ErrUnauthorized
	}
	if !actor.Is(roles...) {
		return errors.Wrapf(domainerrors.ErrForbidden, "role %s not allowed", actor.Role)
	}

	return nil
}

// validationError returns ErrValidationFailed carrying details for the client.
func validationError(details string) error {
	return domainerrors.ErrValidationFailed.WithDetails(details)
}

// defaultSettings builds the settings used until an admin saves them.
func defaultSettings(cfg *config.Config) *entity.PlatformSettings {
	settings := &entity.PlatformSettings{
		CancellationFee:    2000,
		CommissionRate:     0.10,
		DisputeWindowHours: 48,
		Currency:           "AOA",
	}
	if cfg == nil || cfg.Platform == nil {
		return settings
	}

	p := cfg.Platform
	settings.CancellationFee = p.CancellationFee
	settings.MinTechnicianBalance = p.MinTechnicianBalance
	if p.CommissionRate > 0 {
		settings.CommissionRate = p.CommissionRate
	}
	if p.DisputeWindowHours > 0 {
		settings.DisputeWindowHours = p.DisputeWindowHours
	}
	if p.Currency != "" {
		settings.Currency = p.Currency
	}

	return settings
}

// loadSettings reads the saved settings, falling back to the defaults.
func loadSettings(ctx context.Context, repo repository.SettingsRepository, defaults *entity.PlatformSettings) (*entity.PlatformSettings, error) {
	settings, err := repo.Get(ctx)
	if errors.Is(err, repository.ErrSettingsNotFound) {
		copied := *defaults

		return &copied, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load platform settings")
	}

	return settings, nil
}

// clock is swapped in tests.
type clock func() time.Time

func (c clock) now() time.Time {
	if c == nil {
		return time.Now().UTC()
	}

	return c().UTC()
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func uuidPtr(id uuid.UUID) *uuid.UUID {
	return &id
}
