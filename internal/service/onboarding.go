package service

import (
	"context"
	"errors"
	"fmt"

	"onboarding-backend/internal/database/models"
	apperrors "onboarding-backend/internal/errors"
	"onboarding-backend/internal/logger"
	"onboarding-backend/internal/repository"
	"onboarding-backend/internal/scheduler"
	"onboarding-backend/internal/telemetry"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

// StepFunc performs the side effects of one onboarding step
type StepFunc func(ctx context.Context, enterprise *models.Enterprise) error

// stepTransition is one row of the onboarding chain: the step to run, the status
// it leaves behind and the job that follows it
type stepTransition struct {
	name    string
	run     StepFunc
	success models.RegistrationStatus
	failure models.RegistrationStatus
	next    models.JobType
}

// Steps groups the step implementations driven by the onboarding service
type Steps struct {
	Domain      *DomainStep
	Certificate *CertificateStep
	Ingress     *IngressStep
	Identity    *IdentitySteps
}

// ResumeResponse describes the job scheduled by a manual resume
type ResumeResponse struct {
	EnterpriseID uuid.UUID      `json:"enterprise_id"`
	JobID        uuid.UUID      `json:"job_id"`
	JobType      models.JobType `json:"job_type"`
	RepeatCount  int            `json:"repeat_count"`
	Message      string         `json:"message"`
}

// OnboardingService advances enterprises through the onboarding chain
type OnboardingService struct {
	enterprises    repository.EnterpriseRepositoryInterface
	scheduler      JobScheduler
	transitions    map[models.JobType]stepTransition
	recoveryRepeat int
}

// NewOnboardingService creates a new onboarding service. recoveryRepeat is the
// number of extra fires given to a manually resumed certificate step.
func NewOnboardingService(enterprises repository.EnterpriseRepositoryInterface, jobs JobScheduler, steps Steps, recoveryRepeat int) *OnboardingService {
	s := &OnboardingService{
		enterprises:    enterprises,
		scheduler:      jobs,
		recoveryRepeat: recoveryRepeat,
	}
	s.transitions = buildTransitions(steps)
	return s
}

func buildTransitions(steps Steps) map[models.JobType]stepTransition {
	return map[models.JobType]stepTransition{
		models.JobTypeDomain: {
			name:    "domain",
			run:     steps.Domain.CreateSubDomain,
			success: models.StatusDomainCreated,
			failure: models.StatusDomainCreationFailed,
			next:    models.JobTypeCertificate,
		},
		models.JobTypeCertificate: {
			name:    "certificate",
			run:     steps.Certificate.Issue,
			success: models.StatusCertificateCreated,
			failure: models.StatusCertificateCreationFailed,
			next:    models.JobTypeIngress,
		},
		models.JobTypeIngress: {
			name:    "ingress",
			run:     steps.Ingress.Publish,
			success: models.StatusIngressCreated,
			failure: models.StatusIngressCreationFailed,
			next:    models.JobTypeDID,
		},
		models.JobTypeDID: {
			name:    "did",
			run:     steps.Identity.CreateDID,
			success: models.StatusDIDJSONCreated,
			failure: models.StatusDIDJSONCreationFailed,
			next:    models.JobTypeParticipant,
		},
		models.JobTypeParticipant: {
			name:    "participant",
			run:     steps.Identity.CreateParticipant,
			success: models.StatusParticipantJSONCreated,
			failure: models.StatusParticipantJSONCreationFailed,
		},
	}
}

// Run implements scheduler.Runner. A certificate job with repeats is a
// recovery job and is cancelled once the certificate is issued.
func (s *OnboardingService) Run(ctx context.Context, job *models.ScheduledJob) error {
	var recovery *scheduler.JobHandle
	if job.JobType == models.JobTypeCertificate && job.RepeatCount > 0 {
		handle := scheduler.HandleOf(job)
		recovery = &handle
	}
	return s.runStep(ctx, job.JobType, job.EnterpriseID, recovery)
}

// RunDomainStep runs the domain step for an enterprise
func (s *OnboardingService) RunDomainStep(ctx context.Context, enterpriseID uuid.UUID) error {
	return s.runStep(ctx, models.JobTypeDomain, enterpriseID, nil)
}

// RunCertificateStep runs the certificate step; recovery, when set, is cancelled on success
func (s *OnboardingService) RunCertificateStep(ctx context.Context, enterpriseID uuid.UUID, recovery *scheduler.JobHandle) error {
	return s.runStep(ctx, models.JobTypeCertificate, enterpriseID, recovery)
}

// RunIngressStep runs the ingress step for an enterprise
func (s *OnboardingService) RunIngressStep(ctx context.Context, enterpriseID uuid.UUID) error {
	return s.runStep(ctx, models.JobTypeIngress, enterpriseID, nil)
}

// RunDIDStep runs the DID step for an enterprise
func (s *OnboardingService) RunDIDStep(ctx context.Context, enterpriseID uuid.UUID) error {
	return s.runStep(ctx, models.JobTypeDID, enterpriseID, nil)
}

// RunParticipantStep runs the participant step for an enterprise
func (s *OnboardingService) RunParticipantStep(ctx context.Context, enterpriseID uuid.UUID) error {
	return s.runStep(ctx, models.JobTypeParticipant, enterpriseID, nil)
}

func (s *OnboardingService) runStep(ctx context.Context, jobType models.JobType, enterpriseID uuid.UUID, recovery *scheduler.JobHandle) error {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"enterprise_id": enterpriseID,
		"job_type":      jobType,
	})

	transition, ok := s.transitions[jobType]
	if !ok {
		log.Error("No step registered for job type")
		return fmt.Errorf("%w: %q", apperrors.ErrUnknownJobType, jobType)
	}

	enterprise, err := s.enterprises.GetByID(enterpriseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("Enterprise not found, skipping step")
			return apperrors.ErrEnterpriseNotFound
		}
		return fmt.Errorf("failed to get enterprise: %w", err)
	}

	ctx, span := telemetry.Tracer().Start(ctx, "step."+transition.name,
		trace.WithAttributes(attribute.String("enterprise.id", enterpriseID.String())))
	defer span.End()

	log.WithField("status", enterprise.Status).Info("Running onboarding step")

	if err := transition.run(ctx, enterprise); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		if isMissingRecord(err) {
			log.WithError(err).Warn("Dependent record missing, status left unchanged")
			return err
		}

		log.WithError(err).WithField("status", transition.failure).Error("Onboarding step failed")
		if updateErr := s.enterprises.UpdateStatus(enterpriseID, transition.failure); updateErr != nil {
			log.WithError(updateErr).Error("Failed to record step failure")
		}
		return apperrors.NewStepError(transition.name, err)
	}

	var next *models.ScheduledJob
	if transition.next != "" {
		next = s.scheduler.NewJob(enterpriseID, transition.next, 0)
	}
	if err := s.enterprises.UpdateStatusWithJob(enterpriseID, transition.success, next); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.WithError(err).Error("Failed to record step success, marking step failed")
		if updateErr := s.enterprises.UpdateStatus(enterpriseID, transition.failure); updateErr != nil {
			log.WithError(updateErr).Error("Failed to record step failure")
		}
		return apperrors.NewStepError(transition.name, err)
	}

	log.WithField("status", transition.success).Info("Onboarding step completed")

	if recovery != nil {
		s.scheduler.Cancel(ctx, *recovery)
	}
	return nil
}

// isMissingRecord reports errors that abort a step without touching its status
func isMissingRecord(err error) bool {
	return errors.Is(err, apperrors.ErrEnterpriseNotFound) ||
		errors.Is(err, apperrors.ErrEnterpriseCertificateNotFound)
}

// Resume schedules the given step to run immediately on the dispatcher pool.
// Resuming the certificate step schedules a repeating recovery job.
func (s *OnboardingService) Resume(ctx context.Context, enterpriseID uuid.UUID, jobType models.JobType) (*ResumeResponse, error) {
	if _, ok := s.transitions[jobType]; !ok {
		return nil, apperrors.NewValidationError("step", fmt.Sprintf("unknown onboarding step %q", jobType))
	}

	if _, err := s.enterprises.GetByID(enterpriseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEnterpriseNotFound
		}
		return nil, fmt.Errorf("failed to get enterprise: %w", err)
	}

	repeatCount := 0
	if jobType == models.JobTypeCertificate {
		repeatCount = s.recoveryRepeat
	}

	handle, err := s.scheduler.ScheduleNow(ctx, enterpriseID, jobType, repeatCount)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule %s job: %w", jobType, err)
	}

	return &ResumeResponse{
		EnterpriseID: enterpriseID,
		JobID:        handle.ID,
		JobType:      jobType,
		RepeatCount:  repeatCount,
		Message:      fmt.Sprintf("%s step scheduled", jobType),
	}, nil
}
