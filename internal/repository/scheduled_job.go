package repository

import (
	"time"

	"onboarding-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ScheduledJobRepository is the durable store behind the job scheduler
type ScheduledJobRepository struct {
	db *gorm.DB
}

// NewScheduledJobRepository creates a new scheduled job repository
func NewScheduledJobRepository(db *gorm.DB) *ScheduledJobRepository {
	return &ScheduledJobRepository{db: db}
}

// Create persists a new job
func (r *ScheduledJobRepository) Create(job *models.ScheduledJob) error {
	return r.db.Create(job).Error
}

// GetByID retrieves a job by ID
func (r *ScheduledJobRepository) GetByID(id uuid.UUID) (*models.ScheduledJob, error) {
	var job models.ScheduledJob
	err := r.db.First(&job, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// GetByEnterpriseID lists the jobs of an enterprise, oldest first
func (r *ScheduledJobRepository) GetByEnterpriseID(enterpriseID uuid.UUID) ([]models.ScheduledJob, error) {
	var jobs []models.ScheduledJob
	err := r.db.Where("enterprise_id = ?", enterpriseID).Order("created_at").Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// Delete removes a job; deleting a missing job is not an error
func (r *ScheduledJobRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ScheduledJob{}, "id = ?", id).Error
}

// LeaseDue claims up to limit jobs that are due, or whose previous lease expired,
// for owner. Rows locked by a concurrent poller are skipped.
func (r *ScheduledJobRepository) LeaseDue(owner string, now time.Time, leaseFor time.Duration, limit int) ([]models.ScheduledJob, error) {
	var leased []models.ScheduledJob
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var due []models.ScheduledJob
		err := tx.Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
			Where("(status = ? AND next_run_at <= ?) OR (status = ? AND lease_expires_at < ?)",
				models.JobStatusScheduled, now, models.JobStatusRunning, now).
			Order("next_run_at").
			Limit(limit).
			Find(&due).Error
		if err != nil {
			return err
		}

		expiresAt := now.Add(leaseFor)
		for i := range due {
			job := &due[i]
			err := tx.Model(&models.ScheduledJob{}).Where("id = ?", job.ID).Updates(map[string]interface{}{
				"status":           models.JobStatusRunning,
				"lease_owner":      owner,
				"lease_expires_at": expiresAt,
				"fire_count":       gorm.Expr("fire_count + 1"),
			}).Error
			if err != nil {
				return err
			}
			job.Status = models.JobStatusRunning
			job.LeaseOwner = owner
			job.LeaseExpiresAt = &expiresAt
			job.FireCount++
		}
		leased = due
		return nil
	})
	if err != nil {
		return nil, err
	}
	return leased, nil
}

// Complete marks a leased job as done. It reports false when owner no longer
// holds the lease or the job was cancelled meanwhile.
func (r *ScheduledJobRepository) Complete(id uuid.UUID, owner string) (bool, error) {
	return r.finishLease(id, owner, map[string]interface{}{
		"status": models.JobStatusCompleted,
	})
}

// Fail marks a leased job as failed; failed jobs are never picked up again
func (r *ScheduledJobRepository) Fail(id uuid.UUID, owner string, lastError string) (bool, error) {
	return r.finishLease(id, owner, map[string]interface{}{
		"status":     models.JobStatusFailed,
		"last_error": lastError,
	})
}

// Reschedule puts a leased job back in the queue for its next repeat
func (r *ScheduledJobRepository) Reschedule(id uuid.UUID, owner string, nextRunAt time.Time, lastError string) (bool, error) {
	return r.finishLease(id, owner, map[string]interface{}{
		"status":      models.JobStatusScheduled,
		"next_run_at": nextRunAt,
		"last_error":  lastError,
	})
}

// Release returns a leased job to the queue without counting the fire
func (r *ScheduledJobRepository) Release(id uuid.UUID, owner string, nextRunAt time.Time) (bool, error) {
	return r.finishLease(id, owner, map[string]interface{}{
		"status":      models.JobStatusScheduled,
		"next_run_at": nextRunAt,
		"fire_count":  gorm.Expr("GREATEST(fire_count - 1, 0)"),
	})
}

func (r *ScheduledJobRepository) finishLease(id uuid.UUID, owner string, updates map[string]interface{}) (bool, error) {
	updates["lease_owner"] = ""
	updates["lease_expires_at"] = nil
	result := r.db.Model(&models.ScheduledJob{}).
		Where("id = ? AND lease_owner = ?", id, owner).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
