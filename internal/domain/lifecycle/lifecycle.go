// Package lifecycle holds shared constants for application start and stop.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown of delivery servers.
const DefaultTimeout = 10 * time.Second
