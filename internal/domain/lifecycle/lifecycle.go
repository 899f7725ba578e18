// Package lifecycle holds shared constants for component startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds startup checks and graceful shutdown of infrastructure components.
const DefaultTimeout = 10 * time.Second
