package middleware

import (
	"log/slog"
	"strings"
	"time"

	"servihub/config"
	deliverycontext "servihub/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware logs one line per request when debug is on. Slow requests and
// server errors are always logged.
type LoggerMiddleware struct {
	logger        *slog.Logger
	debug         bool
	slowThreshold time.Duration
}

const defaultSlowRequest = 2 * time.Second

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger:        logger,
		debug:         config.Env.Debug,
		slowThreshold: defaultSlowRequest,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		// Stream responses stay open for the whole session.
		if strings.HasSuffix(c.Path(), "/stream") {
			return err
		}

		latency := time.Since(start)
		if m.debug || err != nil || latency >= m.slowThreshold || c.Response().Status >= 500 {
			m.logRequest(c, start, latency, err)
		}

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, latency time.Duration, err error) {
	req := c.Request()
	res := c.Response()

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.String("route", c.Path()),
		slog.Int("status", res.Status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
		slog.String("time", start.Format(time.RFC3339)),
	}

	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if profileID, ok := deliverycontext.GetProfileID(c); ok {
		fields = append(fields, slog.String("profile_id", profileID.String()))
	}
	if role, ok := deliverycontext.GetRole(c); ok {
		fields = append(fields, slog.String("role", role.String()))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if res.Status >= 400 {
		logLevel = slog.LevelWarn
	}
	if res.Status >= 500 {
		logLevel = slog.LevelError
	}

	// request_id comes from the request-scoped logger
	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)
	logger.LogAttrs(req.Context(), logLevel, "HTTP Request", fields...)
}
