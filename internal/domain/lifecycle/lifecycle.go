// Package lifecycle holds shared timing constants for component start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown work such as
// database pings and HTTP server drains.
const DefaultTimeout = 10 * time.Second
