package usecase

import (
	"context"

	"github.com/google/uuid"
)

// Reconcile triggers, recorded in metrics.
const (
	TriggerSchedule = "schedule"
	TriggerPush     = "push"
	TriggerManual   = "manual"
)

// ReconcileUsecase brings the NFT listing projection in line with the chain.
type ReconcileUsecase interface {
	ReconcileAll(ctx context.Context, trigger string) (*ReconcileReport, error)
	ReconcileToken(ctx context.Context, tokenAddress, trigger string) (*ReconcileReport, error)
	ReconcileDesigner(ctx context.Context, designerID uuid.UUID, trigger string) (*ReconcileReport, error)
}

// ReconcileReport summarises one reconciliation run.
type ReconcileReport struct {
	Checked   int `json:"checked"`
	Corrected int `json:"corrected"`
}
