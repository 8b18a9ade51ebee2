// Package handler contains the handlers of the notifier worker.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"servihub/config"
	deliverycontext "servihub/internal/delivery/context"
	"servihub/internal/domain/constants"
	"servihub/internal/infra/pubsub"
	"servihub/internal/errors"
	"servihub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// TokenVerifier checks the OIDC token Pub/Sub attaches to push requests.
type TokenVerifier func(req *http.Request) error

// PushHandler handles Pub/Sub push messages carrying row changes
type PushHandler struct {
	verifyPushAuth bool
	verify         TokenVerifier
	notifier       usecase.NotifierUsecase
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Notifier usecase.NotifierUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google pushes carry a token, and only outside local development
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		verify:         verifyPubSubToken,
		notifier:       params.Notifier,
		logger:         params.Logger,
	}
}

// HandlePush decodes the row change and sends the pushes it implies.
// A 5xx answer makes Pub/Sub redeliver; malformed messages are acknowledged with a 4xx.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	change, err := pushMsg.DecodeChange()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode row change",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger).With(
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("table", change.Table),
		slog.String("type", string(change.Type)),
		slog.String("record_id", change.RecordID.String()),
	)
	ctx = deliverycontext.WithLogger(ctx, logger)

	result, err := h.notifier.HandleChange(ctx, change)
	if err != nil {
		logger.Error("[Worker] Failed to process row change", slog.Any("error", err))

		return c.NoContent(http.StatusInternalServerError)
	}

	if result != nil && result.Recipients > 0 {
		logger.Info("[Worker] Row change notified",
			slog.Int("recipients", result.Recipients),
			slog.Int("sent", result.Sent),
			slog.Int("failed", result.Failed),
			slog.Int("invalid_tokens", result.InvalidTokens),
		)
	}

	return c.NoContent(http.StatusNoContent)
}

// verifyPubSubToken validates the Google-signed OIDC token of a push request
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(context.WithoutCancel(req.Context()), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
