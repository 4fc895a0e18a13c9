package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"onboarding-backend/internal/clients"
	"onboarding-backend/internal/database/models"
	apperrors "onboarding-backend/internal/errors"
	"onboarding-backend/internal/logger"
	"onboarding-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolationCode is the postgres SQLSTATE of unique_violation
const uniqueViolationCode = "23505"

// subdivisionPattern matches ISO 3166-2 subdivision codes such as "DE-BY" or "FR-75"
var subdivisionPattern = regexp.MustCompile(`^[a-zA-Z]{2}-(?:[a-zA-Z]{1,3}|[0-9]{1,3})$`)

// RegisterValidations adds the onboarding specific rules to v
func RegisterValidations(v *validator.Validate) error {
	return v.RegisterValidation("subdivision", func(fl validator.FieldLevel) bool {
		return subdivisionPattern.MatchString(fl.Field().String())
	})
}

// RegisterEnterpriseRequest represents the request to register an enterprise
type RegisterEnterpriseRequest struct {
	LegalName               string `json:"legalName" validate:"required,min=3,max=32" example:"Acme Corporation"`
	Email                   string `json:"email" validate:"required,email" example:"admin@acme.example"`
	SubDomainName           string `json:"subDomainName" validate:"required,min=3,max=12,alphanum" example:"acme"`
	LegalRegistrationNumber string `json:"legalRegistrationNumber" validate:"required" example:"DE123456789"`
	LegalRegistrationType   string `json:"legalRegistrationType" validate:"required" example:"vatID"`
	HeadquarterAddress      string `json:"headquarterAddress" validate:"required,subdivision" example:"DE-BY"`
	LegalAddress            string `json:"legalAddress" validate:"required,subdivision" example:"DE-BY"`
	ConnectionID            string `json:"connectionId" validate:"required" example:"5d1a0f6e-3c4b-4f0e-9a2b-6f1e2d3c4b5a"`
}

// RegistrationOptions configures enterprise registration
type RegistrationOptions struct {
	AppName                   string
	BaseDomain                string
	MembershipCredentialDefID string
}

// RegistrationService handles enterprise registration
type RegistrationService struct {
	enterprises repository.EnterpriseRepositoryInterface
	issuer      clients.CredentialIssuer
	scheduler   JobScheduler
	validator   *validator.Validate
	opts        RegistrationOptions
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(
	enterprises repository.EnterpriseRepositoryInterface,
	issuer clients.CredentialIssuer,
	jobs JobScheduler,
	validator *validator.Validate,
	opts RegistrationOptions,
) *RegistrationService {
	return &RegistrationService{
		enterprises: enterprises,
		issuer:      issuer,
		scheduler:   jobs,
		validator:   validator,
		opts:        opts,
	}
}

// SubDomainFor returns the fully qualified sub-domain of a requested name
func SubDomainFor(requested, baseDomain string) string {
	return strings.ToLower(requested) + "." + baseDomain
}

// Register validates the request, offers the membership credential and stores the
// enterprise together with its first onboarding job
func (s *RegistrationService) Register(ctx context.Context, req *RegisterEnterpriseRequest) (*EnterpriseResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, toValidationError(err)
	}

	subDomain := SubDomainFor(req.SubDomainName, s.opts.BaseDomain)
	if err := s.checkUnique(req, subDomain); err != nil {
		return nil, err
	}

	offerID, err := s.issuer.OfferCredential(ctx, clients.OfferRequest{
		ConnectionID:           req.ConnectionID,
		CredentialDefinitionID: s.opts.MembershipCredentialDefID,
		Comment:                "Login with " + s.opts.AppName,
		Attributes: []clients.OfferAttribute{
			{Name: "name", Value: req.LegalName},
			{Name: "email", Value: req.Email},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to offer membership credential: %w", err)
	}

	enterprise := &models.Enterprise{
		LegalName:               req.LegalName,
		Email:                   req.Email,
		SubDomainName:           subDomain,
		LegalRegistrationNumber: req.LegalRegistrationNumber,
		LegalRegistrationType:   req.LegalRegistrationType,
		HeadquarterAddress:      req.HeadquarterAddress,
		LegalAddress:            req.LegalAddress,
		Status:                  models.StatusStarted,
		ConnectionID:            req.ConnectionID,
		OfferID:                 offerID,
	}
	job := s.scheduler.NewJob(uuid.Nil, models.JobTypeDomain, 0)
	if err := s.enterprises.CreateWithJob(enterprise, job); err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewAlreadyExistsError("enterprise", "")
		}
		return nil, fmt.Errorf("failed to create enterprise: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"enterprise_id": enterprise.ID,
		"sub_domain":    enterprise.SubDomainName,
		"job_id":        job.ID,
	}).Info("Enterprise registered")

	return toEnterpriseResponse(enterprise), nil
}

func (s *RegistrationService) checkUnique(req *RegisterEnterpriseRequest, subDomain string) error {
	checks := []struct {
		exists func(string) (bool, error)
		value  string
		err    error
	}{
		{s.enterprises.ExistsByLegalName, req.LegalName, apperrors.ErrLegalNameExists},
		{s.enterprises.ExistsByEmail, req.Email, apperrors.ErrEmailExists},
		{s.enterprises.ExistsBySubDomainName, subDomain, apperrors.ErrSubDomainNameExists},
	}
	for _, check := range checks {
		exists, err := check.exists(check.value)
		if err != nil {
			return fmt.Errorf("failed to check enterprise uniqueness: %w", err)
		}
		if exists {
			return check.err
		}
	}
	return nil
}

func toValidationError(err error) error {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		fe := fieldErrors[0]
		return apperrors.NewValidationError(fe.Field(), fmt.Sprintf("failed on the '%s' rule", fe.Tag()))
	}
	return apperrors.NewValidationError("", err.Error())
}

// isUniqueViolation detects a unique index violation raised by a concurrent registration
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
