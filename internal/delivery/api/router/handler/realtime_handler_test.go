package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"servihub/config"
	deliverycontext "servihub/internal/delivery/context"
	"servihub/internal/domain/entity"
	"servihub/internal/realtime"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

type noopLifecycle struct{}

func (noopLifecycle) Append(fx.Hook) {}

func newTestRealtimeHandler() *RealtimeHandler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Realtime: &config.RealtimeConfig{}}
	bridge := realtime.NewBridge(realtime.BridgeParams{
		Lifecycle: noopLifecycle{},
		Config:    cfg,
		Logger:    logger,
	})

	return NewRealtimeHandler(RealtimeHandlerParams{Config: cfg, Bridge: bridge, Logger: logger})
}

func TestRealtimeHandler_Stream_RejectsUnknownRole(t *testing.T) {
	h := newTestRealtimeHandler()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/realtime", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetIdentity(c, uuid.New(), entity.Role("guest"))

	require.NoError(t, h.Stream(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", responseError(t, rec).Code)
	assert.NotEqual(t, "text/event-stream", rec.Header().Get(echo.HeaderContentType))
}

func TestRealtimeHandler_Stream_RequiresLogin(t *testing.T) {
	h := newTestRealtimeHandler()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/realtime", nil), rec)

	require.NoError(t, h.Stream(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
