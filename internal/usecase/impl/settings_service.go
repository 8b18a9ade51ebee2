package impl

import (
	"context"
	"log/slog"
	"strings"

	"servihub/internal/cache"
	deliverycontext "servihub/internal/delivery/context"
	"servihub/internal/domain/entity"
	"servihub/internal/domain/repository"
	"servihub/internal/errors"
	"servihub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type settingsService struct {
	settingsRepo repository.SettingsRepository
	defaults     *entity.PlatformSettings
	notifier     *changeNotifier
	cache        *cache.Store
	now          clock
	logger       *slog.Logger
}

// SettingsServiceParams holds dependencies for SettingsService, injected by Fx.
type SettingsServiceParams struct {
	fx.In
	CommonParams

	SettingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new platform settings service instance
func NewSettingsService(params SettingsServiceParams) usecase.SettingsUsecase {
	return &settingsService{
		settingsRepo: params.SettingsRepo,
		defaults:     defaultSettings(params.Config),
		notifier:     newChangeNotifier(params.CommonParams),
		cache:        params.Cache,
		logger:       params.Logger,
	}
}

func (srv *settingsService) Get(ctx context.Context) (*entity.PlatformSettings, error) {
	return cache.Fetch(ctx, srv.cache, cache.Global(cache.PlatformSettings), func(ctx context.Context) (*entity.PlatformSettings, error) {
		return loadSettings(ctx, srv.settingsRepo, srv.defaults)
	})
}

func (srv *settingsService) Update(ctx context.Context, actor usecase.Actor, input *usecase.SettingsInput) (*entity.PlatformSettings, error) {
	if err := requireRole(actor, entity.RoleAdmin); err != nil {
		return nil, err
	}

	current, err := loadSettings(ctx, srv.settingsRepo, srv.defaults)
	if err != nil {
		return nil, err
	}
	settings := *current

	if input.CancellationFee != nil {
		if *input.CancellationFee < 0 {
			return nil, validationError("cancellation_fee cannot be negative")
		}
		settings.CancellationFee = *input.CancellationFee
	}
	if input.CommissionRate != nil {
		if *input.CommissionRate < 0 || *input.CommissionRate >= 1 {
			return nil, validationError("commission_rate must be in [0, 1)")
		}
		settings.CommissionRate = *input.CommissionRate
	}
	if input.DisputeWindowHours != nil {
		if *input.DisputeWindowHours <= 0 {
			return nil, validationError("dispute_window_hours must be positive")
		}
		settings.DisputeWindowHours = *input.DisputeWindowHours
	}
	if input.MinTechnicianBalance != nil {
		settings.MinTechnicianBalance = *input.MinTechnicianBalance
	}
	if input.Currency != nil {
		currency := strings.ToUpper(strings.TrimSpace(*input.Currency))
		if len(currency) != 3 {
			return nil, validationError("currency must be a 3-letter code")
		}
		settings.Currency = currency
	}
	settings.UpdatedAt = srv.now.now()

	if err := srv.settingsRepo.Save(ctx, &settings); err != nil {
		return nil, errors.Wrap(err, "failed to save platform settings")
	}

	srv.notifier.committed(ctx, cache.MutationSettingsUpdate,
		srv.notifier.rowChange(ctx, entity.TablePlatformSettings, entity.ChangeUpdate, uuid.Nil, &settings),
	)

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Platform settings updated",
		slog.Int64("cancellation_fee", settings.CancellationFee),
		slog.Float64("commission_rate", settings.CommissionRate),
		slog.Int("dispute_window_hours", settings.DisputeWindowHours),
	)

	return &settings, nil
}
