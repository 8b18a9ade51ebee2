// Package lifecycle holds shared start/stop bounds for fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds the work done inside a single OnStart or OnStop hook.
const DefaultTimeout = 10 * time.Second

// ShutdownTimeout bounds graceful HTTP shutdown.
const ShutdownTimeout = 15 * time.Second
