package models

import (
	"time"

	"github.com/google/uuid"
)

// ScheduledJob is a durable, delayed invocation of one onboarding step
type ScheduledJob struct {
	BaseModel
	JobType               JobType    `json:"job_type" gorm:"size:32;not null;index:idx_scheduled_job_identity"`
	EnterpriseID          uuid.UUID  `json:"enterprise_id" gorm:"type:uuid;not null;index:idx_scheduled_job_identity"`
	Status                JobStatus  `json:"status" gorm:"size:16;not null;index:idx_scheduled_job_due"`
	NextRunAt             time.Time  `json:"next_run_at" gorm:"not null;index:idx_scheduled_job_due"`
	RepeatCount           int        `json:"repeat_count" gorm:"not null;default:0"`
	RepeatIntervalSeconds int        `json:"repeat_interval_seconds" gorm:"not null;default:0"`
	FireCount             int        `json:"fire_count" gorm:"not null;default:0"`
	LeaseOwner            string     `json:"lease_owner,omitempty" gorm:"size:64"`
	LeaseExpiresAt        *time.Time `json:"lease_expires_at,omitempty"`
	LastError             string     `json:"last_error,omitempty" gorm:"type:text"`
}

// TableName returns the table name for the model
func (ScheduledJob) TableName() string {
	return "scheduled_jobs"
}

// Key identifies the job for per-identity mutual exclusion
func (j *ScheduledJob) Key() string {
	return j.EnterpriseID.String() + ":" + string(j.JobType)
}

// HasRemainingRepeats reports whether the trigger fires again after the current run.
// FireCount is incremented when the job is leased, so a job fires 1+RepeatCount times.
func (j *ScheduledJob) HasRemainingRepeats() bool {
	return j.FireCount <= j.RepeatCount
}

// RepeatInterval is the delay between two fires of a repeating job
func (j *ScheduledJob) RepeatInterval() time.Duration {
	return time.Duration(j.RepeatIntervalSeconds) * time.Second
}
