package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"servihub/config"
	"servihub/internal/cache"
	"servihub/internal/delivery/api/response"
	deliverycontext "servihub/internal/delivery/context"
	domainerrors "servihub/internal/domain/errors"
	"servihub/internal/errors"
	"servihub/internal/realtime"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultHeartbeat = 25 * time.Second

// RealtimeHandlerParams holds dependencies for RealtimeHandler, injected by Fx.
type RealtimeHandlerParams struct {
	fx.In

	Config *config.Config
	Bridge *realtime.Bridge
	Cache  *cache.Store
	Logger *slog.Logger
}

// RealtimeHandler streams row changes to dashboards over server-sent events.
type RealtimeHandler struct {
	bridge    *realtime.Bridge
	cache     *cache.Store
	heartbeat time.Duration
	logger    *slog.Logger
}

// NewRealtimeHandler is the constructor for RealtimeHandler.
func NewRealtimeHandler(params RealtimeHandlerParams) *RealtimeHandler {
	heartbeat := defaultHeartbeat
	if params.Config.Realtime != nil && params.Config.Realtime.Heartbeat > 0 {
		heartbeat = params.Config.Realtime.Heartbeat
	}

	return &RealtimeHandler{
		bridge:    params.Bridge,
		cache:     params.Cache,
		heartbeat: heartbeat,
		logger:    params.Logger,
	}
}

// Stream opens a realtime session for the caller and relays its events until the client leaves.
func (h *RealtimeHandler) Stream(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	session, err := h.bridge.Open(ctx, realtime.Identity{UserID: a.ID, Role: a.Role})
	if errors.Is(err, realtime.ErrIdentityRequired) {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized.WithDetails(err.Error()))
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer session.Close()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.Header().Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)

	if err := writeEvent(res, "connected", map[string]string{
		"session": session.ID(),
		"channel": session.Channel(),
	}); err != nil {
		return nil
	}

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-session.Events():
			if !ok {
				return nil
			}
			if err := writeEvent(res, string(event.Type), event); err != nil {
				logger.Debug("Realtime client write failed", slog.Any("error", err))

				return nil
			}

		case <-ticker.C:
			if _, err := fmt.Fprint(res, ": heartbeat\n\n"); err != nil {
				return nil
			}
			res.Flush()

		case <-ctx.Done():
			logger.Debug("Realtime client disconnected", slog.String("session", session.ID()))

			return nil
		}
	}
}

// Health reports realtime and cache counters to admins.
func (h *RealtimeHandler) Health(c echo.Context) error {
	stats := make(map[string]cache.Stats)
	for name, s := range h.cache.Stats() {
		stats[string(name)] = s
	}

	return response.OK(c, map[string]any{
		"realtime_sessions": h.bridge.ActiveSessions(),
		"broker":            h.bridge.Broker().Stats(),
		"cache_entries":     h.cache.Len(),
		"cache":             stats,
	})
}

func writeEvent(res *echo.Response, name string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return errors.Wrap(err, "failed to encode event")
	}

	if _, err := fmt.Fprintf(res, "event: %s\ndata: %s\n\n", name, payload); err != nil {
		return errors.WithStack(err)
	}
	res.Flush()

	return nil
}
