package service

import "time"

// ReconcileMetrics records reconciliation activity.
type ReconcileMetrics interface {
	ObserveRun(trigger string, err error, duration time.Duration)
	AddCorrections(trigger string, n int)
}
