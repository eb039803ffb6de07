// Package lifecycle holds shared timing constants for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every fx OnStart/OnStop hook (pings, graceful shutdowns).
const DefaultTimeout = 10 * time.Second
