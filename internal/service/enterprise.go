package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"onboarding-backend/internal/clients"
	"onboarding-backend/internal/database/models"
	apperrors "onboarding-backend/internal/errors"
	"onboarding-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnterpriseResponse represents the response for enterprise operations
type EnterpriseResponse struct {
	ID                      uuid.UUID                 `json:"id"`
	LegalName               string                    `json:"legal_name"`
	Email                   string                    `json:"email"`
	SubDomainName           string                    `json:"sub_domain_name"`
	LegalRegistrationNumber string                    `json:"legal_registration_number"`
	LegalRegistrationType   string                    `json:"legal_registration_type"`
	HeadquarterAddress      string                    `json:"headquarter_address"`
	LegalAddress            string                    `json:"legal_address"`
	Status                  models.RegistrationStatus `json:"status"`
	StatusOrdinal           int                       `json:"status_ordinal"`
	Failed                  bool                      `json:"failed"`
	ConnectionID            string                    `json:"connection_id"`
	OfferID                 string                    `json:"offer_id"`
	CreatedAt               string                    `json:"created_at"`
	UpdatedAt               string                    `json:"updated_at"`
}

// EnterpriseListResponse represents a paginated list of enterprises
type EnterpriseListResponse struct {
	Enterprises []EnterpriseResponse `json:"enterprises"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// ScheduledJobResponse represents a scheduled onboarding job
type ScheduledJobResponse struct {
	ID          uuid.UUID        `json:"id"`
	JobType     models.JobType   `json:"job_type"`
	Status      models.JobStatus `json:"status"`
	NextRunAt   string           `json:"next_run_at"`
	RepeatCount int              `json:"repeat_count"`
	FireCount   int              `json:"fire_count"`
	LastError   string           `json:"last_error,omitempty"`
	CreatedAt   string           `json:"created_at"`
}

// CredentialResponse represents a credential issued for an enterprise
type CredentialResponse struct {
	ID          uuid.UUID       `json:"id"`
	Label       string          `json:"label"`
	OfferID     string          `json:"offer_id"`
	Credentials json.RawMessage `json:"credentials" swaggertype:"object"`
	CreatedAt   string          `json:"created_at"`
}

// EnterpriseService handles enterprise queries and public document lookups
type EnterpriseService struct {
	enterprises repository.EnterpriseRepositoryInterface
	jobs        repository.ScheduledJobRepositoryInterface
	credentials repository.EnterpriseCredentialRepositoryInterface
	store       clients.ObjectStore
}

// NewEnterpriseService creates a new enterprise service
func NewEnterpriseService(
	enterprises repository.EnterpriseRepositoryInterface,
	jobs repository.ScheduledJobRepositoryInterface,
	credentials repository.EnterpriseCredentialRepositoryInterface,
	store clients.ObjectStore,
) *EnterpriseService {
	return &EnterpriseService{
		enterprises: enterprises,
		jobs:        jobs,
		credentials: credentials,
		store:       store,
	}
}

// GetByID retrieves an enterprise by ID
func (s *EnterpriseService) GetByID(id uuid.UUID) (*EnterpriseResponse, error) {
	enterprise, err := s.getEnterprise(id)
	if err != nil {
		return nil, err
	}
	return toEnterpriseResponse(enterprise), nil
}

// GetAll retrieves enterprises with pagination
func (s *EnterpriseService) GetAll(page, pageSize int) (*EnterpriseListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	enterprises, total, err := s.enterprises.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get enterprises: %w", err)
	}

	responses := make([]EnterpriseResponse, len(enterprises))
	for i := range enterprises {
		responses[i] = *toEnterpriseResponse(&enterprises[i])
	}

	return &EnterpriseListResponse{
		Enterprises: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// GetJobs lists the onboarding jobs of an enterprise
func (s *EnterpriseService) GetJobs(id uuid.UUID) ([]ScheduledJobResponse, error) {
	if _, err := s.getEnterprise(id); err != nil {
		return nil, err
	}

	jobs, err := s.jobs.GetByEnterpriseID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get jobs: %w", err)
	}

	responses := make([]ScheduledJobResponse, len(jobs))
	for i, job := range jobs {
		responses[i] = ScheduledJobResponse{
			ID:          job.ID,
			JobType:     job.JobType,
			Status:      job.Status,
			NextRunAt:   job.NextRunAt.Format(time.RFC3339),
			RepeatCount: job.RepeatCount,
			FireCount:   job.FireCount,
			LastError:   job.LastError,
			CreatedAt:   job.CreatedAt.Format(time.RFC3339),
		}
	}
	return responses, nil
}

// GetCredentials lists the credentials issued for an enterprise
func (s *EnterpriseService) GetCredentials(id uuid.UUID) ([]CredentialResponse, error) {
	if _, err := s.getEnterprise(id); err != nil {
		return nil, err
	}

	credentials, err := s.credentials.GetByEnterpriseID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get credentials: %w", err)
	}

	responses := make([]CredentialResponse, len(credentials))
	for i, credential := range credentials {
		payload := json.RawMessage(credential.Credentials)
		if !json.Valid(payload) {
			payload = json.RawMessage("null")
		}
		responses[i] = CredentialResponse{
			ID:          credential.ID,
			Label:       credential.Label,
			OfferID:     credential.OfferID,
			Credentials: payload,
			CreatedAt:   credential.CreatedAt.Format(time.RFC3339),
		}
	}
	return responses, nil
}

// GetWellKnownFile returns a public document of the enterprise serving host.
// Keys and signing requests are never served.
func (s *EnterpriseService) GetWellKnownFile(ctx context.Context, host, fileName string) ([]byte, error) {
	if fileName == "" || strings.ContainsAny(fileName, `/\`) || strings.Contains(fileName, "..") {
		return nil, apperrors.NewValidationError("fileName", "invalid file name")
	}
	lower := strings.ToLower(fileName)
	if strings.HasSuffix(lower, "key") || strings.HasSuffix(lower, "csr") {
		return nil, apperrors.ErrFileAccessDenied
	}

	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	enterprise, err := s.enterprises.GetBySubDomainName(strings.ToLower(host))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEnterpriseNotFound
		}
		return nil, fmt.Errorf("failed to get enterprise: %w", err)
	}

	data, err := s.store.Get(ctx, ObjectKey(enterprise.ID, fileName))
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *EnterpriseService) getEnterprise(id uuid.UUID) (*models.Enterprise, error) {
	enterprise, err := s.enterprises.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEnterpriseNotFound
		}
		return nil, fmt.Errorf("failed to get enterprise: %w", err)
	}
	return enterprise, nil
}

func toEnterpriseResponse(enterprise *models.Enterprise) *EnterpriseResponse {
	return &EnterpriseResponse{
		ID:                      enterprise.ID,
		LegalName:               enterprise.LegalName,
		Email:                   enterprise.Email,
		SubDomainName:           enterprise.SubDomainName,
		LegalRegistrationNumber: enterprise.LegalRegistrationNumber,
		LegalRegistrationType:   enterprise.LegalRegistrationType,
		HeadquarterAddress:      enterprise.HeadquarterAddress,
		LegalAddress:            enterprise.LegalAddress,
		Status:                  enterprise.Status,
		StatusOrdinal:           enterprise.Status.Ordinal(),
		Failed:                  enterprise.Status.IsFailed(),
		ConnectionID:            enterprise.ConnectionID,
		OfferID:                 enterprise.OfferID,
		CreatedAt:               enterprise.CreatedAt.Format(time.RFC3339),
		UpdatedAt:               enterprise.UpdatedAt.Format(time.RFC3339),
	}
}
