package service

import (
	"context"
	"fmt"
	"time"

	"onboarding-backend/internal/clients"
	"onboarding-backend/internal/database/models"
	"onboarding-backend/internal/logger"
	"onboarding-backend/internal/repository"
)

const (
	participantTemplateID      = "LegalParticipant"
	participantCredentialLabel = "participant"
)

// IdentityOptions configures DID and participant credential issuance
type IdentityOptions struct {
	AppName                    string
	ParticipantCredentialDefID string
	PresignedKeyURLTTL         time.Duration
}

// IdentitySteps publishes the enterprise DID document and its Gaia-X participant credential
type IdentitySteps struct {
	signer      clients.SignerService
	issuer      clients.CredentialIssuer
	store       clients.ObjectStore
	credentials repository.EnterpriseCredentialRepositoryInterface
	opts        IdentityOptions
}

// NewIdentitySteps creates the DID and participant steps
func NewIdentitySteps(
	signer clients.SignerService,
	issuer clients.CredentialIssuer,
	store clients.ObjectStore,
	credentials repository.EnterpriseCredentialRepositoryInterface,
	opts IdentityOptions,
) *IdentitySteps {
	if opts.PresignedKeyURLTTL <= 0 {
		opts.PresignedKeyURLTTL = 20 * time.Second
	}
	return &IdentitySteps{
		signer:      signer,
		issuer:      issuer,
		store:       store,
		credentials: credentials,
		opts:        opts,
	}
}

// CreateDID mints the did:web document and publishes it as did.json
func (s *IdentitySteps) CreateDID(ctx context.Context, enterprise *models.Enterprise) error {
	document, err := s.signer.CreateDID(ctx, enterprise.SubDomainName)
	if err != nil {
		return fmt.Errorf("failed to create did document: %w", err)
	}

	key := ObjectKey(enterprise.ID, "did.json")
	if err := s.store.Put(ctx, key, document); err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"enterprise_id": enterprise.ID,
		"did":           "did:web:" + enterprise.SubDomainName,
	}).Info("DID document published")
	return nil
}

// CreateParticipant mints the legal participant credential, publishes it as
// participant.json and offers it to the enterprise wallet
func (s *IdentitySteps) CreateParticipant(ctx context.Context, enterprise *models.Enterprise) error {
	domain := enterprise.SubDomainName

	keyURL, err := s.store.Presign(ctx, ObjectKey(enterprise.ID, "pkcs8_"+domain+".key"), s.opts.PresignedKeyURLTTL)
	if err != nil {
		return fmt.Errorf("failed to presign private key: %w", err)
	}

	credential, err := s.signer.CreateCredential(ctx, clients.CredentialRequest{
		TemplateID:    participantTemplateID,
		Domain:        domain,
		PrivateKeyURL: keyURL,
		Data: map[string]string{
			"legalName":               enterprise.LegalName,
			"legalRegistrationType":   enterprise.LegalRegistrationType,
			"legalRegistrationNumber": enterprise.LegalRegistrationNumber,
			"headquarterAddress":      enterprise.HeadquarterAddress,
			"legalAddress":            enterprise.LegalAddress,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create participant credential: %w", err)
	}

	key := ObjectKey(enterprise.ID, "participant.json")
	if err := s.store.Put(ctx, key, credential); err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}

	offerID, err := s.issuer.OfferCredential(ctx, clients.OfferRequest{
		ConnectionID:           enterprise.ConnectionID,
		CredentialDefinitionID: s.opts.ParticipantCredentialDefID,
		Comment:                "gx:LegalParticipant issued on " + s.opts.AppName,
		Attributes: []clients.OfferAttribute{
			{Name: "did", Value: "did:web:" + domain},
			{Name: "id", Value: "https://" + domain + "/.well-known/participant.json"},
			{Name: "type", Value: "gx:LegalParticipant"},
			{Name: "gx:legalName", Value: enterprise.LegalName},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to offer participant credential: %w", err)
	}

	err = s.credentials.Upsert(&models.EnterpriseCredential{
		EnterpriseID: enterprise.ID,
		Label:        participantCredentialLabel,
		Credentials:  string(credential),
		OfferID:      offerID,
	})
	if err != nil {
		return fmt.Errorf("failed to save participant credential: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"enterprise_id": enterprise.ID,
		"offer_id":      offerID,
	}).Info("Participant credential issued")
	return nil
}
