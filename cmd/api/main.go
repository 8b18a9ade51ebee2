package main

import (
	"context"
	"log/slog"
	"os"

	"servihub/config"
	"servihub/internal/cache"
	"servihub/internal/delivery"
	"servihub/internal/delivery/api"
	"servihub/internal/delivery/api/middleware"
	"servihub/internal/delivery/api/router/handler"
	"servihub/internal/domain/service"
	"servihub/internal/errors"
	"servihub/internal/infra/auth"
	logs "servihub/internal/infra/log"
	"servihub/internal/infra/mail"
	"servihub/internal/infra/payment"
	"servihub/internal/infra/persistence/postgres"
	"servihub/internal/infra/pubsub"
	"servihub/internal/infra/qrcode"
	"servihub/internal/infra/storage"
	"servihub/internal/realtime"
	"servihub/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			cache.New,
			newInvalidator,
			realtime.NewBridge,
		),
		pubsub.Module,
	)
}

// newInvalidator lets realtime sessions drop cached queries of changed tables
func newInvalidator(store *cache.Store) realtime.Invalidator {
	return store
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewProfileRepository,
			postgres.NewCredentialRepository,
			postgres.NewTechnicianRepository,
			postgres.NewCategoryRepository,
			postgres.NewSpecialtyRepository,
			postgres.NewServiceOfferingRepository,
			postgres.NewServiceRequestRepository,
			postgres.NewWalletRepository,
			postgres.NewFinancialsRepository,
			postgres.NewSettingsRepository,
			postgres.NewProductRepository,
			postgres.NewOrderRepository,
			postgres.NewDeliveryRepository,
			postgres.NewSupportTicketRepository,
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.New,
			mail.New,
			payment.New,
			newFileStorage,
		),
	)
}

// newFileStorage opens the upload bucket and closes it on shutdown
func newFileStorage(lc fx.Lifecycle, ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.FileStorage, error) {
	if cfg.Storage == nil {
		return nil, errors.New("storage configuration is required")
	}

	fileStorage, closeBucket, err := storage.New(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create file storage")
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return closeBucket()
		},
	})

	return fileStorage, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProfileService,
			impl.NewCatalogService,
			impl.NewServiceRequestService,
			impl.NewWalletService,
			impl.NewFinancialsService,
			impl.NewSettingsService,
			impl.NewProductService,
			impl.NewOrderService,
			impl.NewDeliveryService,
			impl.NewTicketService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewCatalogHandler,
			handler.NewServiceRequestHandler,
			handler.NewWalletHandler,
			handler.NewSettingsHandler,
			handler.NewProductHandler,
			handler.NewOrderHandler,
			handler.NewDeliveryHandler,
			handler.NewTicketHandler,
			handler.NewDeviceHandler,
			handler.NewFileHandler,
			handler.NewRealtimeHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
