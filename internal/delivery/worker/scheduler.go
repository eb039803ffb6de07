package worker

import (
	"context"
	"log/slog"
	"time"

	"atelier/config"
	"atelier/internal/delivery"
	deliverycontext "atelier/internal/delivery/context"
	"atelier/internal/domain/lifecycle"
	"atelier/internal/usecase"
	"atelier/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

const defaultReconcileSchedule = "@every 5m"

// cronLogger routes robfig/cron's logging into slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("[Scheduler] "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("[Scheduler] "+msg, append(keysAndValues, slog.Any("error", err))...)
}

type reconcileScheduler struct {
	cron        *cron.Cron
	schedule    string
	reconcileUC usecase.ReconcileUsecase
	logger      *slog.Logger

	jobCtx    context.Context
	cancelJob context.CancelFunc
}

// SchedulerParams holds dependencies for the reconcile scheduler
type SchedulerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	ReconcileUC usecase.ReconcileUsecase
}

// NewReconcileScheduler runs a full reconciliation on the configured cron schedule.
// Overlapping runs are skipped.
func NewReconcileScheduler(params SchedulerParams) (delivery.Delivery, error) {
	schedule := defaultReconcileSchedule
	if params.Cfg.Reconcile != nil && params.Cfg.Reconcile.Schedule != "" {
		schedule = params.Cfg.Reconcile.Schedule
	}

	logger := cronLogger{logger: params.Logger}
	jobCtx, cancelJob := context.WithCancel(context.Background())

	s := &reconcileScheduler{
		cron: cron.New(
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		schedule:    schedule,
		reconcileUC: params.ReconcileUC,
		logger:      params.Logger,
		jobCtx:      jobCtx,
		cancelJob:   cancelJob,
	}

	if _, err := s.cron.AddFunc(schedule, s.runOnce); err != nil {
		cancelJob()

		return nil, errors.Wrapf(err, "invalid reconcile schedule %q", schedule)
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Serve starts the cron loop; jobs run on the scheduler's own goroutines.
func (s *reconcileScheduler) Serve(ctx context.Context) error {
	s.logger.Info("Starting reconcile scheduler", slog.String("schedule", s.schedule))
	s.cron.Start()

	return nil
}

func (s *reconcileScheduler) runOnce() {
	requestID := uuid.New().String()
	reqLogger := s.logger.With(slog.String("request_id", requestID))

	ctx := deliverycontext.WithRequestID(s.jobCtx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	start := time.Now()
	report, err := s.reconcileUC.ReconcileAll(ctx, usecase.TriggerSchedule)
	if err != nil {
		reqLogger.Error("[Scheduler] Reconciliation failed", slog.Any("error", err))

		return
	}

	reqLogger.Info("[Scheduler] Reconciliation finished",
		slog.Int("checked", report.Checked),
		slog.Int("corrected", report.Corrected),
		slog.String("took", util.FormatDuration(time.Since(start))),
	)
}

// stop waits for a running job to finish, cancelling it once the shutdown deadline passes.
func (s *reconcileScheduler) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down reconcile scheduler")

	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-shutdownCtx.Done():
		s.cancelJob()
		<-done.Done()
	}
	s.cancelJob()

	return nil
}
