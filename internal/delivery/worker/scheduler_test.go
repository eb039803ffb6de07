package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"atelier/config"
	deliverycontext "atelier/internal/delivery/context"
	mockUC "atelier/internal/mocks/usecase"
	"atelier/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newSchedulerParams(t *testing.T, schedule string, reconcileUC usecase.ReconcileUsecase) (SchedulerParams, *fxtest.Lifecycle) {
	lc := fxtest.NewLifecycle(t)

	return SchedulerParams{
		Lc:          lc,
		Cfg:         &config.Config{Reconcile: &config.ReconcileConfig{Schedule: schedule}},
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		ReconcileUC: reconcileUC,
	}, lc
}

func TestNewReconcileScheduler_InvalidSchedule(t *testing.T) {
	params, _ := newSchedulerParams(t, "every now and then", mockUC.NewMockReconcileUsecase(t))

	_, err := NewReconcileScheduler(params)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid reconcile schedule")
}

func TestNewReconcileScheduler_DefaultSchedule(t *testing.T) {
	params, _ := newSchedulerParams(t, "", mockUC.NewMockReconcileUsecase(t))

	d, err := NewReconcileScheduler(params)
	require.NoError(t, err)

	s, ok := d.(*reconcileScheduler)
	require.True(t, ok)
	assert.Equal(t, defaultReconcileSchedule, s.schedule)
	assert.Len(t, s.cron.Entries(), 1)
}

func TestReconcileScheduler_RunOnce(t *testing.T) {
	reconcileUC := mockUC.NewMockReconcileUsecase(t)
	params, lc := newSchedulerParams(t, "@every 1h", reconcileUC)

	reconcileUC.EXPECT().
		ReconcileAll(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) != ""
		}), usecase.TriggerSchedule).
		Return(&usecase.ReconcileReport{Checked: 10, Corrected: 2}, nil).
		Once()
	reconcileUC.EXPECT().
		ReconcileAll(mock.Anything, usecase.TriggerSchedule).
		Return(nil, errors.New("rpc down")).
		Once()

	d, err := NewReconcileScheduler(params)
	require.NoError(t, err)
	s := d.(*reconcileScheduler)

	lc.RequireStart()
	require.NoError(t, s.Serve(context.Background()))
	s.runOnce()
	s.runOnce()

	lc.RequireStop()
	assert.ErrorIs(t, s.jobCtx.Err(), context.Canceled)
}
