package notification

import (
	"context"
	"log/slog"

	"servihub/config"
	"servihub/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// maxMulticastTokens is the FCM limit of tokens per multicast request.
const maxMulticastTokens = 500

type firebaseService struct {
	client *messaging.Client
	logger *slog.Logger
}

// New builds the push notification service from config.
// Without Firebase credentials pushes are only logged.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		logger.Info("Firebase not configured, push notifications will be logged only")

		return NewLogNotifier(logger), nil
	}

	return NewFirebaseService(ctx, cfg.Firebase, logger)
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig, logger *slog.Logger) (service.NotificationService, error) {
	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client: client,
		logger: logger,
	}, nil
}

// SendSingleNotification sends a push notification to a single device token
func (s *firebaseService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

// SendBatchNotification sends push notifications to the tokens in chunks of the FCM multicast limit.
func (s *firebaseService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	invalidTokens = make([]string, 0)

	for start := 0; start < len(tokens); start += maxMulticastTokens {
		end := min(start+maxMulticastTokens, len(tokens))
		chunk := tokens[start:end]

		message := &messaging.MulticastMessage{
			Tokens: chunk,
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
			Data: data,
		}

		response, sendErr := s.client.SendEachForMulticast(ctx, message)
		if sendErr != nil {
			return successCount, failureCount, invalidTokens, errors.Wrap(sendErr, "failed to send multicast notification")
		}

		successCount += response.SuccessCount
		failureCount += response.FailureCount

		for idx, sendResponse := range response.Responses {
			if sendResponse.Error == nil {
				continue
			}
			if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
				invalidTokens = append(invalidTokens, chunk[idx])
			}
		}
	}

	return successCount, failureCount, invalidTokens, nil
}

// logNotifier stands in for FCM in local development.
type logNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier returns a NotificationService that only logs.
func NewLogNotifier(logger *slog.Logger) service.NotificationService {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) SendSingleNotification(ctx context.Context, token, title, body string, _ map[string]string) error {
	n.logger.InfoContext(ctx, "Push notification",
		slog.String("title", title),
		slog.String("body", body),
		slog.Int("tokens", 1),
	)

	return nil
}

func (n *logNotifier) SendBatchNotification(ctx context.Context, tokens []string, title, body string, _ map[string]string) (int, int, []string, error) {
	n.logger.InfoContext(ctx, "Push notification",
		slog.String("title", title),
		slog.String("body", body),
		slog.Int("tokens", len(tokens)),
	)

	return len(tokens), 0, []string{}, nil
}
