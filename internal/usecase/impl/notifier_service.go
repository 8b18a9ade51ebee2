package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"servihub/config"
	deliverycontext "servihub/internal/delivery/context"
	"servihub/internal/domain/entity"
	"servihub/internal/domain/repository"
	"servihub/internal/domain/service"
	"servihub/internal/errors"
	"servihub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	// Firebase batch size limit
	firebaseBatchSize = 500
)

// pushTopic describes who is told about changes of one table and how.
type pushTopic struct {
	title      string
	recipients []string
	statusOnly bool
}

var pushTopics = map[string]pushTopic{
	entity.TableServiceRequests:    {title: "Service request", recipients: []string{"client_id", "technician_id"}, statusOnly: true},
	entity.TableOrders:             {title: "Order", recipients: []string{"client_id", "vendor_id"}, statusOnly: true},
	entity.TableDeliveries:         {title: "Delivery", recipients: []string{"vendor_id", "delivery_person_id"}, statusOnly: true},
	entity.TableSupportTickets:     {title: "Support ticket", recipients: []string{"client_id"}, statusOnly: true},
	entity.TableWalletTransactions: {title: "Wallet", recipients: []string{"technician_id"}},
}

type notifierService struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	settingsRepo    repository.SettingsRepository
	defaults        *entity.PlatformSettings
	logger          *slog.Logger
}

// NotifierServiceParams holds dependencies for NotifierService, injected by Fx.
type NotifierServiceParams struct {
	fx.In

	Config          *config.Config
	DeviceRepo      repository.DeviceRepository
	NotificationSvc service.NotificationService
	SettingsRepo    repository.SettingsRepository
	Logger          *slog.Logger
}

// NewNotifierService creates the service that turns row changes into push notifications
func NewNotifierService(params NotifierServiceParams) usecase.NotifierUsecase {
	return &notifierService{
		deviceRepo:      params.DeviceRepo,
		notificationSvc: params.NotificationSvc,
		settingsRepo:    params.SettingsRepo,
		defaults:        defaultSettings(params.Config),
		logger:          params.Logger,
	}
}

// HandleChange pushes a notification to the devices of every party named in the changed row.
// Changes that do not move a status, and tables nobody follows, are skipped.
func (srv *notifierService) HandleChange(ctx context.Context, change *entity.RowChange) (*usecase.PushResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	result := &usecase.PushResult{}

	if change == nil {
		return result, nil
	}

	topic, ok := pushTopics[change.Table]
	if !ok || change.Type == entity.ChangeDelete {
		return result, nil
	}

	status := change.Field("status")
	if topic.statusOnly && change.Type == entity.ChangeUpdate {
		if status == "" || (len(change.OldRecord) > 0 && change.OldField("status") == status) {
			return result, nil
		}
	}

	recipients := changeRecipients(change, topic.recipients)
	result.Recipients = len(recipients)
	if len(recipients) == 0 {
		return result, nil
	}

	tokens, err := srv.deviceRepo.FindActiveTokens(ctx, recipients)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find device tokens")
	}
	if len(tokens) == 0 {
		return result, nil
	}

	var title, body string
	if change.Table == entity.TableWalletTransactions {
		title, body = "Wallet updated", "New balance: "+srv.balanceLabel(ctx, change.Field("balance_after"))
	} else {
		title, body = pushContent(topic, change, status)
	}
	data := map[string]string{
		"table":     change.Table,
		"type":      string(change.Type),
		"record_id": change.RecordID.String(),
		"status":    status,
	}

	var invalidTokens []string
	for i := 0; i < len(tokens); i += firebaseBatchSize {
		end := min(i+firebaseBatchSize, len(tokens))
		batch := tokens[i:end]

		sent, failed, batchInvalid, err := srv.notificationSvc.SendBatchNotification(ctx, batch, title, body, data)
		if err != nil {
			// Log error but continue with other batches
			logger.Warn("Failed to send push batch",
				slog.String("table", change.Table),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", err),
			)
			result.Failed += len(batch)

			continue
		}

		result.Sent += sent
		result.Failed += failed
		invalidTokens = append(invalidTokens, batchInvalid...)
	}

	if len(invalidTokens) > 0 {
		result.InvalidTokens = len(invalidTokens)
		if err := srv.deviceRepo.DeactivateByTokens(ctx, invalidTokens); err != nil {
			logger.Warn("Failed to deactivate invalid device tokens",
				slog.Int("count", len(invalidTokens)),
				slog.Any("error", err),
			)
		}
	}

	logger.Info("Row change pushed",
		slog.String("table", change.Table),
		slog.String("record_id", change.RecordID.String()),
		slog.Int("recipients", result.Recipients),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
	)

	return result, nil
}

// changeRecipients reads the distinct profile IDs named in the given columns.
func changeRecipients(change *entity.RowChange, columns []string) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(columns))
	recipients := make([]uuid.UUID, 0, len(columns))

	for _, column := range columns {
		id, err := uuid.Parse(change.Field(column))
		if err != nil || id == uuid.Nil {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		recipients = append(recipients, id)
	}

	return recipients
}

// balanceLabel formats a wallet balance in the platform currency.
func (srv *notifierService) balanceLabel(ctx context.Context, raw string) string {
	balance, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return raw
	}

	currency := srv.defaults.Currency
	settings, err := loadSettings(ctx, srv.settingsRepo, srv.defaults)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Failed to load platform currency", slog.Any("error", err))
	} else {
		currency = settings.Currency
	}

	return formatMoney(balance, currency)
}

func pushContent(topic pushTopic, change *entity.RowChange, status string) (string, string) {
	if change.Type == entity.ChangeInsert {
		return topic.title + " created", fmt.Sprintf("A new %s was created.", strings.ToLower(topic.title))
	}

	return topic.title + " updated", fmt.Sprintf("Status changed to %s.", strings.ReplaceAll(status, "_", " "))
}
