package service

import (
	"context"

	"onboarding-backend/internal/database/models"
	"onboarding-backend/internal/scheduler"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// RegistrationServiceInterface defines the interface for enterprise registration
type RegistrationServiceInterface interface {
	Register(ctx context.Context, req *RegisterEnterpriseRequest) (*EnterpriseResponse, error)
}

// EnterpriseServiceInterface defines the interface for enterprise queries
type EnterpriseServiceInterface interface {
	GetByID(id uuid.UUID) (*EnterpriseResponse, error)
	GetAll(page, pageSize int) (*EnterpriseListResponse, error)
	GetJobs(id uuid.UUID) ([]ScheduledJobResponse, error)
	GetCredentials(id uuid.UUID) ([]CredentialResponse, error)
	GetWellKnownFile(ctx context.Context, host, fileName string) ([]byte, error)
}

// OnboardingServiceInterface defines the interface for driving the onboarding steps
type OnboardingServiceInterface interface {
	Resume(ctx context.Context, enterpriseID uuid.UUID, jobType models.JobType) (*ResumeResponse, error)
	RunDomainStep(ctx context.Context, enterpriseID uuid.UUID) error
	RunCertificateStep(ctx context.Context, enterpriseID uuid.UUID, recovery *scheduler.JobHandle) error
	RunIngressStep(ctx context.Context, enterpriseID uuid.UUID) error
	RunDIDStep(ctx context.Context, enterpriseID uuid.UUID) error
	RunParticipantStep(ctx context.Context, enterpriseID uuid.UUID) error
}

// JobScheduler defines the scheduler operations the onboarding flow depends on
type JobScheduler interface {
	NewJob(enterpriseID uuid.UUID, jobType models.JobType, repeatCount int) *models.ScheduledJob
	ScheduleNow(ctx context.Context, enterpriseID uuid.UUID, jobType models.JobType, repeatCount int) (scheduler.JobHandle, error)
	Cancel(ctx context.Context, handle scheduler.JobHandle)
}
