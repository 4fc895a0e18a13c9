package scheduler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"onboarding-backend/internal/database/models"
	apperrors "onboarding-backend/internal/errors"
	"onboarding-backend/internal/logger"
	"onboarding-backend/internal/repository"
	"onboarding-backend/internal/telemetry"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/semaphore"
)

// Runner executes the step behind a leased job
type Runner interface {
	Run(ctx context.Context, job *models.ScheduledJob) error
}

// Dispatcher polls for due jobs and runs them on a bounded worker pool
type Dispatcher struct {
	jobs     repository.ScheduledJobRepositoryInterface
	runner   Runner
	locker   JobLocker
	opts     Options
	owner    string
	sem      *semaphore.Weighted
	wg       sync.WaitGroup
	inflight atomic.Int64
	now      func() time.Time
}

// NewDispatcher creates a new dispatcher
func NewDispatcher(jobs repository.ScheduledJobRepositoryInterface, runner Runner, locker JobLocker, opts Options) *Dispatcher {
	opts = opts.withDefaults()
	if locker == nil {
		locker = NewMemoryLocker()
	}
	return &Dispatcher{
		jobs:   jobs,
		runner: runner,
		locker: locker,
		opts:   opts,
		owner:  leaseOwner(),
		sem:    semaphore.NewWeighted(int64(opts.Workers)),
		now:    time.Now,
	}
}

func leaseOwner() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "dispatcher"
	}
	return fmt.Sprintf("%s-%s", host, uuid.NewString()[:8])
}

// Owner returns the lease owner id of this dispatcher
func (d *Dispatcher) Owner() string {
	return d.owner
}

// Start polls until ctx is cancelled, then waits for in-flight jobs to finish
func (d *Dispatcher) Start(ctx context.Context) {
	log := logger.WithContext(ctx).WithField("owner", d.owner)
	log.WithFields(map[string]interface{}{
		"workers":       d.opts.Workers,
		"poll_interval": d.opts.PollInterval.String(),
	}).Info("Job dispatcher started")

	ticker := time.NewTicker(d.opts.PollInterval)
	defer ticker.Stop()

	for {
		if _, err := d.Poll(ctx); err != nil && ctx.Err() == nil {
			log.WithError(err).Error("Failed to poll due jobs")
		}
		select {
		case <-ctx.Done():
			d.Wait()
			log.Info("Job dispatcher stopped")
			return
		case <-ticker.C:
		}
	}
}

// Wait blocks until every dispatched job has finished
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Poll leases as many due jobs as there are free workers and dispatches them.
// It returns the number of jobs dispatched.
func (d *Dispatcher) Poll(ctx context.Context) (int, error) {
	free := d.opts.Workers - int(d.inflight.Load())
	if free <= 0 {
		return 0, nil
	}

	due, err := d.jobs.LeaseDue(d.owner, d.now(), d.opts.LeaseDuration, min(free, d.opts.BatchSize))
	if err != nil {
		return 0, err
	}

	// jobs outlive a shutdown request so that they can settle their status
	runCtx := context.WithoutCancel(ctx)
	for i := range due {
		job := due[i]
		if err := d.sem.Acquire(ctx, 1); err != nil {
			d.release(runCtx, &job)
			continue
		}
		d.inflight.Add(1)
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			defer d.inflight.Add(-1)
			defer d.sem.Release(1)
			d.execute(runCtx, &job)
		}()
	}
	return len(due), nil
}

func (d *Dispatcher) execute(ctx context.Context, job *models.ScheduledJob) {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"job_id":        job.ID,
		"enterprise_id": job.EnterpriseID,
		"job_type":      job.JobType,
		"fire_count":    job.FireCount,
	})

	unlock, ok, err := d.locker.TryLock(ctx, job.Key(), d.opts.LeaseDuration)
	if err != nil || !ok {
		if err != nil {
			log.WithError(err).Warn("Failed to acquire job lock")
		} else {
			log.Debug("Job is already running elsewhere, deferring")
		}
		d.release(ctx, job)
		return
	}
	defer unlock()

	ctx, span := telemetry.Tracer().Start(ctx, "job."+string(job.JobType),
		trace.WithAttributes(
			attribute.String("job.id", job.ID.String()),
			attribute.String("enterprise.id", job.EnterpriseID.String()),
			attribute.Int("job.fire_count", job.FireCount),
		))
	defer span.End()

	log.Info("Running job")
	runErr := d.run(ctx, job)
	if runErr != nil {
		span.RecordError(runErr)
		span.SetStatus(codes.Error, runErr.Error())
	}
	d.finish(ctx, job, runErr)
}

func (d *Dispatcher) run(ctx context.Context, job *models.ScheduledJob) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job panicked: %v", r)
		}
	}()
	return d.runner.Run(ctx, job)
}

func (d *Dispatcher) finish(ctx context.Context, job *models.ScheduledJob, runErr error) {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"job_id":        job.ID,
		"enterprise_id": job.EnterpriseID,
		"job_type":      job.JobType,
	})

	lastError := ""
	if runErr != nil {
		lastError = runErr.Error()
	}

	var (
		updated bool
		err     error
	)
	switch {
	case errors.Is(runErr, apperrors.ErrUnknownJobType):
		log.WithError(runErr).Error("Dropping job with unknown type")
		updated, err = d.jobs.Fail(job.ID, d.owner, lastError)
	case job.HasRemainingRepeats():
		if runErr != nil {
			log.WithError(runErr).Warn("Job run failed, next repeat stays scheduled")
		}
		updated, err = d.jobs.Reschedule(job.ID, d.owner, d.now().Add(job.RepeatInterval()), lastError)
	case runErr != nil:
		log.WithError(runErr).Error("Job failed")
		updated, err = d.jobs.Fail(job.ID, d.owner, lastError)
	default:
		log.Info("Job completed")
		updated, err = d.jobs.Complete(job.ID, d.owner)
	}

	if err != nil {
		log.WithError(err).Error("Failed to record job outcome")
		return
	}
	if !updated {
		log.Debug("Job was cancelled or its lease moved on")
	}
}

// release hands a leased job back without counting the fire
func (d *Dispatcher) release(ctx context.Context, job *models.ScheduledJob) {
	if _, err := d.jobs.Release(job.ID, d.owner, d.now().Add(d.opts.LockRetryDelay)); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("job_id", job.ID).Error("Failed to release job")
	}
}

func unknownJobType(jobType models.JobType) error {
	return fmt.Errorf("%w: %q", apperrors.ErrUnknownJobType, jobType)
}
