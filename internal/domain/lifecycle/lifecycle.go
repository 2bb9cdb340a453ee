// Package lifecycle holds shared constants for application start and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful start and shutdown of long-lived components.
const DefaultTimeout = 10 * time.Second
