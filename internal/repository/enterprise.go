package repository

import (
	"database/sql"

	"onboarding-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnterpriseRepository handles database operations for enterprises
type EnterpriseRepository struct {
	db *gorm.DB
}

// NewEnterpriseRepository creates a new enterprise repository
func NewEnterpriseRepository(db *gorm.DB) *EnterpriseRepository {
	return &EnterpriseRepository{db: db}
}

// Create creates a new enterprise
func (r *EnterpriseRepository) Create(enterprise *models.Enterprise) error {
	return r.db.Create(enterprise).Error
}

// CreateWithJob stores the enterprise and its first job in one serializable transaction
func (r *EnterpriseRepository) CreateWithJob(enterprise *models.Enterprise, job *models.ScheduledJob) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(enterprise).Error; err != nil {
			return err
		}
		if job == nil {
			return nil
		}
		job.EnterpriseID = enterprise.ID
		return tx.Create(job).Error
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
}

// GetByID retrieves an enterprise by ID
func (r *EnterpriseRepository) GetByID(id uuid.UUID) (*models.Enterprise, error) {
	var enterprise models.Enterprise
	err := r.db.First(&enterprise, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &enterprise, nil
}

// GetBySubDomainName retrieves an enterprise by its fully qualified sub domain
func (r *EnterpriseRepository) GetBySubDomainName(subDomainName string) (*models.Enterprise, error) {
	var enterprise models.Enterprise
	err := r.db.First(&enterprise, "sub_domain_name = ?", subDomainName).Error
	if err != nil {
		return nil, err
	}
	return &enterprise, nil
}

// GetAll retrieves all enterprises with pagination, newest first
func (r *EnterpriseRepository) GetAll(limit, offset int) ([]models.Enterprise, int64, error) {
	var enterprises []models.Enterprise
	var total int64

	if err := r.db.Model(&models.Enterprise{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&enterprises).Error
	if err != nil {
		return nil, 0, err
	}

	return enterprises, total, nil
}

// ExistsByLegalName checks whether an enterprise with the legal name exists (case insensitive)
func (r *EnterpriseRepository) ExistsByLegalName(legalName string) (bool, error) {
	return r.exists("LOWER(legal_name) = LOWER(?)", legalName)
}

// ExistsByEmail checks whether an enterprise with the email exists (case insensitive)
func (r *EnterpriseRepository) ExistsByEmail(email string) (bool, error) {
	return r.exists("LOWER(email) = LOWER(?)", email)
}

// ExistsBySubDomainName checks whether the sub domain is taken
func (r *EnterpriseRepository) ExistsBySubDomainName(subDomainName string) (bool, error) {
	return r.exists("LOWER(sub_domain_name) = LOWER(?)", subDomainName)
}

func (r *EnterpriseRepository) exists(query string, arg interface{}) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Enterprise{}).Where(query, arg).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update updates an enterprise
func (r *EnterpriseRepository) Update(enterprise *models.Enterprise) error {
	return r.db.Save(enterprise).Error
}

// UpdateStatus writes only the status column of an enterprise
func (r *EnterpriseRepository) UpdateStatus(id uuid.UUID, status models.RegistrationStatus) error {
	result := r.db.Model(&models.Enterprise{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateStatusWithJob writes the status and enqueues job (when non-nil) in one transaction
func (r *EnterpriseRepository) UpdateStatusWithJob(id uuid.UUID, status models.RegistrationStatus, job *models.ScheduledJob) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Enterprise{}).Where("id = ?", id).Update("status", status)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if job == nil {
			return nil
		}
		job.EnterpriseID = id
		return tx.Create(job).Error
	})
}
