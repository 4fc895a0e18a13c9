package testutils

import (
	"fmt"
	"strings"
	"time"

	"onboarding-backend/internal/database/models"

	"github.com/google/uuid"
)

// EnterpriseFactory provides methods to create test Enterprise data
type EnterpriseFactory struct{}

// NewEnterpriseFactory creates a new EnterpriseFactory
func NewEnterpriseFactory() *EnterpriseFactory {
	return &EnterpriseFactory{}
}

// Create creates a test Enterprise with unique legal name, email and sub domain
func (f *EnterpriseFactory) Create() *models.Enterprise {
	id := uuid.New()
	suffix := strings.ReplaceAll(id.String(), "-", "")[:8]
	return &models.Enterprise{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		LegalName:               "Acme " + suffix,
		Email:                   fmt.Sprintf("admin-%s@acme.test", suffix),
		SubDomainName:           "acme" + suffix + ".onboarding.test",
		LegalRegistrationNumber: "DE123456789",
		LegalRegistrationType:   "vatID",
		HeadquarterAddress:      "DE-BE",
		LegalAddress:            "DE-BE",
		Status:                  models.StatusStarted,
		ConnectionID:            "conn-" + suffix,
		OfferID:                 "offer-" + suffix,
	}
}

// WithLegalName sets a custom legal name
func (f *EnterpriseFactory) WithLegalName(legalName string) *models.Enterprise {
	enterprise := f.Create()
	enterprise.LegalName = legalName
	return enterprise
}

// WithSubDomainName sets a custom fully qualified sub domain
func (f *EnterpriseFactory) WithSubDomainName(subDomainName string) *models.Enterprise {
	enterprise := f.Create()
	enterprise.SubDomainName = subDomainName
	return enterprise
}

// WithStatus sets a custom registration status
func (f *EnterpriseFactory) WithStatus(status models.RegistrationStatus) *models.Enterprise {
	enterprise := f.Create()
	enterprise.Status = status
	return enterprise
}

// EnterpriseCertificateFactory provides methods to create test EnterpriseCertificate data
type EnterpriseCertificateFactory struct{}

// NewEnterpriseCertificateFactory creates a new EnterpriseCertificateFactory
func NewEnterpriseCertificateFactory() *EnterpriseCertificateFactory {
	return &EnterpriseCertificateFactory{}
}

// ForEnterprise creates certificate object keys laid out like the certificate step writes them
func (f *EnterpriseCertificateFactory) ForEnterprise(enterprise *models.Enterprise) *models.EnterpriseCertificate {
	prefix := enterprise.ID.String() + "/"
	return &models.EnterpriseCertificate{
		EnterpriseID:     enterprise.ID,
		CertificateChain: prefix + "x509CertificateChain.pem",
		CSR:              prefix + enterprise.SubDomainName + ".csr",
		PrivateKey:       prefix + enterprise.SubDomainName + ".key",
	}
}

// EnterpriseCredentialFactory provides methods to create test EnterpriseCredential data
type EnterpriseCredentialFactory struct{}

// NewEnterpriseCredentialFactory creates a new EnterpriseCredentialFactory
func NewEnterpriseCredentialFactory() *EnterpriseCredentialFactory {
	return &EnterpriseCredentialFactory{}
}

// Create creates a participant credential for the enterprise
func (f *EnterpriseCredentialFactory) Create(enterpriseID uuid.UUID) *models.EnterpriseCredential {
	return &models.EnterpriseCredential{
		EnterpriseID: enterpriseID,
		Label:        "participant",
		Credentials:  `{"type":["VerifiablePresentation"]}`,
		OfferID:      "offer-1",
	}
}

// ScheduledJobFactory provides methods to create test ScheduledJob data
type ScheduledJobFactory struct{}

// NewScheduledJobFactory creates a new ScheduledJobFactory
func NewScheduledJobFactory() *ScheduledJobFactory {
	return &ScheduledJobFactory{}
}

// Due creates a job of jobType that is already due
func (f *ScheduledJobFactory) Due(enterpriseID uuid.UUID, jobType models.JobType) *models.ScheduledJob {
	return &models.ScheduledJob{
		JobType:      jobType,
		EnterpriseID: enterpriseID,
		Status:       models.JobStatusScheduled,
		NextRunAt:    time.Now().Add(-time.Second),
	}
}

// At creates a job of jobType due at runAt
func (f *ScheduledJobFactory) At(enterpriseID uuid.UUID, jobType models.JobType, runAt time.Time) *models.ScheduledJob {
	job := f.Due(enterpriseID, jobType)
	job.NextRunAt = runAt
	return job
}

// FactorySet provides access to all factories
type FactorySet struct {
	Enterprise            *EnterpriseFactory
	EnterpriseCertificate *EnterpriseCertificateFactory
	EnterpriseCredential  *EnterpriseCredentialFactory
	ScheduledJob          *ScheduledJobFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Enterprise:            NewEnterpriseFactory(),
		EnterpriseCertificate: NewEnterpriseCertificateFactory(),
		EnterpriseCredential:  NewEnterpriseCredentialFactory(),
		ScheduledJob:          NewScheduledJobFactory(),
	}
}
