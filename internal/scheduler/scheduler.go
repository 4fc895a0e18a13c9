package scheduler

import (
	"context"
	"time"

	"onboarding-backend/internal/database/models"
	"onboarding-backend/internal/logger"
	"onboarding-backend/internal/repository"

	"github.com/google/uuid"
)

// JobHandle identifies a scheduled job so that it can be cancelled later
type JobHandle struct {
	ID           uuid.UUID      `json:"id"`
	EnterpriseID uuid.UUID      `json:"enterprise_id"`
	JobType      models.JobType `json:"job_type"`
}

// HandleOf returns the handle of a stored job
func HandleOf(job *models.ScheduledJob) JobHandle {
	return JobHandle{ID: job.ID, EnterpriseID: job.EnterpriseID, JobType: job.JobType}
}

// Options tunes scheduling and dispatching
type Options struct {
	InitialDelay   time.Duration
	RepeatInterval time.Duration
	PollInterval   time.Duration
	LeaseDuration  time.Duration
	LockRetryDelay time.Duration
	Workers        int
	BatchSize      int
}

// DefaultOptions returns the production defaults: first fire 10s after scheduling, repeats 30s apart
func DefaultOptions() Options {
	return Options{
		InitialDelay:   10 * time.Second,
		RepeatInterval: 30 * time.Second,
		PollInterval:   time.Second,
		LeaseDuration:  10 * time.Minute,
		LockRetryDelay: 5 * time.Second,
		Workers:        8,
		BatchSize:      16,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.InitialDelay < 0 {
		o.InitialDelay = 0
	}
	if o.RepeatInterval <= 0 {
		o.RepeatInterval = d.RepeatInterval
	}
	if o.PollInterval <= 0 {
		o.PollInterval = d.PollInterval
	}
	if o.LeaseDuration <= 0 {
		o.LeaseDuration = d.LeaseDuration
	}
	if o.LockRetryDelay <= 0 {
		o.LockRetryDelay = d.LockRetryDelay
	}
	if o.Workers <= 0 {
		o.Workers = d.Workers
	}
	if o.BatchSize <= 0 {
		o.BatchSize = d.BatchSize
	}
	return o
}

// Scheduler persists delayed step invocations
type Scheduler struct {
	jobs repository.ScheduledJobRepositoryInterface
	opts Options
	now  func() time.Time
}

// NewScheduler creates a new scheduler
func NewScheduler(jobs repository.ScheduledJobRepositoryInterface, opts Options) *Scheduler {
	return &Scheduler{
		jobs: jobs,
		opts: opts.withDefaults(),
		now:  time.Now,
	}
}

// NewJob builds an unsaved job firing after the initial delay. The job fires
// 1+repeatCount times, RepeatInterval apart. Callers that need the job stored
// together with other writes pass it to a transactional repository method.
func (s *Scheduler) NewJob(enterpriseID uuid.UUID, jobType models.JobType, repeatCount int) *models.ScheduledJob {
	return s.newJob(enterpriseID, jobType, repeatCount, s.opts.InitialDelay)
}

func (s *Scheduler) newJob(enterpriseID uuid.UUID, jobType models.JobType, repeatCount int, delay time.Duration) *models.ScheduledJob {
	if repeatCount < 0 {
		repeatCount = 0
	}
	return &models.ScheduledJob{
		JobType:               jobType,
		EnterpriseID:          enterpriseID,
		Status:                models.JobStatusScheduled,
		NextRunAt:             s.now().Add(delay),
		RepeatCount:           repeatCount,
		RepeatIntervalSeconds: int(s.opts.RepeatInterval / time.Second),
	}
}

// Schedule stores a job firing after the initial delay
func (s *Scheduler) Schedule(ctx context.Context, enterpriseID uuid.UUID, jobType models.JobType, repeatCount int) (JobHandle, error) {
	return s.store(ctx, s.newJob(enterpriseID, jobType, repeatCount, s.opts.InitialDelay))
}

// ScheduleNow stores a job that is due immediately
func (s *Scheduler) ScheduleNow(ctx context.Context, enterpriseID uuid.UUID, jobType models.JobType, repeatCount int) (JobHandle, error) {
	return s.store(ctx, s.newJob(enterpriseID, jobType, repeatCount, 0))
}

func (s *Scheduler) store(ctx context.Context, job *models.ScheduledJob) (JobHandle, error) {
	if !job.JobType.IsValid() {
		return JobHandle{}, unknownJobType(job.JobType)
	}
	if err := s.jobs.Create(job); err != nil {
		return JobHandle{}, err
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"job_id":        job.ID,
		"enterprise_id": job.EnterpriseID,
		"job_type":      job.JobType,
		"repeat_count":  job.RepeatCount,
		"next_run_at":   job.NextRunAt,
	}).Info("Job scheduled")
	return HandleOf(job), nil
}

// Cancel removes the job behind handle. Failures are logged and swallowed:
// a job that can no longer be found has nothing left to cancel.
func (s *Scheduler) Cancel(ctx context.Context, handle JobHandle) {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"job_id":        handle.ID,
		"enterprise_id": handle.EnterpriseID,
		"job_type":      handle.JobType,
	})
	if err := s.jobs.Delete(handle.ID); err != nil {
		log.WithError(err).Warn("Failed to cancel job")
		return
	}
	log.Info("Job cancelled")
}
