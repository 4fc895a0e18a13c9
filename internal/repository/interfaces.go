package repository

import (
	"time"

	"onboarding-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// EnterpriseRepositoryInterface defines the interface for enterprise repository operations
type EnterpriseRepositoryInterface interface {
	Create(enterprise *models.Enterprise) error
	CreateWithJob(enterprise *models.Enterprise, job *models.ScheduledJob) error
	GetByID(id uuid.UUID) (*models.Enterprise, error)
	GetBySubDomainName(subDomainName string) (*models.Enterprise, error)
	GetAll(limit, offset int) ([]models.Enterprise, int64, error)
	ExistsByLegalName(legalName string) (bool, error)
	ExistsByEmail(email string) (bool, error)
	ExistsBySubDomainName(subDomainName string) (bool, error)
	Update(enterprise *models.Enterprise) error
	UpdateStatus(id uuid.UUID, status models.RegistrationStatus) error
	UpdateStatusWithJob(id uuid.UUID, status models.RegistrationStatus, job *models.ScheduledJob) error
}

// EnterpriseCertificateRepositoryInterface defines the interface for enterprise certificate repository operations
type EnterpriseCertificateRepositoryInterface interface {
	GetByEnterpriseID(enterpriseID uuid.UUID) (*models.EnterpriseCertificate, error)
	Upsert(certificate *models.EnterpriseCertificate) error
}

// EnterpriseCredentialRepositoryInterface defines the interface for enterprise credential repository operations
type EnterpriseCredentialRepositoryInterface interface {
	GetByEnterpriseID(enterpriseID uuid.UUID) ([]models.EnterpriseCredential, error)
	GetByEnterpriseIDAndLabel(enterpriseID uuid.UUID, label string) (*models.EnterpriseCredential, error)
	Upsert(credential *models.EnterpriseCredential) error
}

// ScheduledJobRepositoryInterface defines the interface for scheduled job repository operations
type ScheduledJobRepositoryInterface interface {
	Create(job *models.ScheduledJob) error
	GetByID(id uuid.UUID) (*models.ScheduledJob, error)
	GetByEnterpriseID(enterpriseID uuid.UUID) ([]models.ScheduledJob, error)
	Delete(id uuid.UUID) error
	LeaseDue(owner string, now time.Time, leaseFor time.Duration, limit int) ([]models.ScheduledJob, error)
	Complete(id uuid.UUID, owner string) (bool, error)
	Fail(id uuid.UUID, owner string, lastError string) (bool, error)
	Reschedule(id uuid.UUID, owner string, nextRunAt time.Time, lastError string) (bool, error)
	Release(id uuid.UUID, owner string, nextRunAt time.Time) (bool, error)
}
