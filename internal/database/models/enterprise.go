package models

import (
	"github.com/google/uuid"
)

// Enterprise is a business being onboarded
type Enterprise struct {
	BaseModel
	LegalName               string             `json:"legal_name" gorm:"size:255;not null;uniqueIndex"`
	Email                   string             `json:"email" gorm:"size:255;not null;uniqueIndex"`
	SubDomainName           string             `json:"sub_domain_name" gorm:"size:255;not null;uniqueIndex"`
	LegalRegistrationNumber string             `json:"legal_registration_number" gorm:"size:255;not null"`
	LegalRegistrationType   string             `json:"legal_registration_type" gorm:"size:64;not null"`
	HeadquarterAddress      string             `json:"headquarter_address" gorm:"size:16;not null"`
	LegalAddress            string             `json:"legal_address" gorm:"size:16;not null"`
	Status                  RegistrationStatus `json:"status" gorm:"size:64;not null;index"`
	ConnectionID            string             `json:"connection_id" gorm:"size:255"`
	OfferID                 string             `json:"offer_id" gorm:"size:255"`
}

// TableName returns the table name for the model
func (Enterprise) TableName() string {
	return "enterprises"
}

// EnterpriseCertificate points at the object-store keys of an issued certificate
type EnterpriseCertificate struct {
	BaseModel
	EnterpriseID     uuid.UUID `json:"enterprise_id" gorm:"type:uuid;not null;uniqueIndex"`
	CertificateChain string    `json:"certificate_chain" gorm:"size:512;not null"`
	CSR              string    `json:"csr" gorm:"size:512;not null"`
	PrivateKey       string    `json:"private_key" gorm:"size:512;not null"`

	Enterprise *Enterprise `json:"-" gorm:"foreignKey:EnterpriseID"`
}

// TableName returns the table name for the model
func (EnterpriseCertificate) TableName() string {
	return "enterprise_certificates"
}

// EnterpriseCredential is a verifiable credential issued for an enterprise
type EnterpriseCredential struct {
	BaseModel
	EnterpriseID uuid.UUID `json:"enterprise_id" gorm:"type:uuid;not null;uniqueIndex:idx_enterprise_credential_label"`
	Label        string    `json:"label" gorm:"size:64;not null;uniqueIndex:idx_enterprise_credential_label"`
	Credentials  string    `json:"credentials" gorm:"type:text;not null"`
	OfferID      string    `json:"offer_id" gorm:"size:255"`

	Enterprise *Enterprise `json:"-" gorm:"foreignKey:EnterpriseID"`
}

// TableName returns the table name for the model
func (EnterpriseCredential) TableName() string {
	return "enterprise_credentials"
}
