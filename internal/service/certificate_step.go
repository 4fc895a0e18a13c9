package service

import (
	"bytes"
	"context"
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"onboarding-backend/internal/clients"
	"onboarding-backend/internal/database/models"
	apperrors "onboarding-backend/internal/errors"
	"onboarding-backend/internal/logger"
	"onboarding-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// AccountKeyObject is the object-store key of the ACME account key
const AccountKeyObject = "acme/account.key"

const (
	domainKeyBits  = 2048
	challengeDNS01 = "dns-01"
)

// TxtRecordPublisher publishes and withdraws DNS-01 digests
type TxtRecordPublisher interface {
	CreateTxtRecord(ctx context.Context, domain, value string) error
	DeleteTxtRecord(ctx context.Context, domain, value string) error
}

// CertificateOptions bounds the ACME polling loops
type CertificateOptions struct {
	TempDir           string
	ChallengeAttempts int
	ChallengeInterval time.Duration
	OrderAttempts     int
	OrderInterval     time.Duration
}

// DefaultCertificateOptions polls challenges 6 times 30s apart and orders 10 times 6s apart
func DefaultCertificateOptions() CertificateOptions {
	return CertificateOptions{
		TempDir:           "/tmp",
		ChallengeAttempts: 6,
		ChallengeInterval: 30 * time.Second,
		OrderAttempts:     10,
		OrderInterval:     6 * time.Second,
	}
}

// CertificateStep issues a TLS certificate for an enterprise sub-domain over ACME DNS-01
type CertificateStep struct {
	ca           clients.CertificateAuthority
	txt          TxtRecordPublisher
	store        clients.ObjectStore
	certificates repository.EnterpriseCertificateRepositoryInterface
	fs           afero.Fs
	opts         CertificateOptions
}

// NewCertificateStep creates a new certificate step
func NewCertificateStep(
	ca clients.CertificateAuthority,
	txt TxtRecordPublisher,
	store clients.ObjectStore,
	certificates repository.EnterpriseCertificateRepositoryInterface,
	fs afero.Fs,
	opts CertificateOptions,
) *CertificateStep {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if opts.TempDir == "" {
		opts.TempDir = DefaultCertificateOptions().TempDir
	}
	return &CertificateStep{
		ca:           ca,
		txt:          txt,
		store:        store,
		certificates: certificates,
		fs:           fs,
		opts:         opts,
	}
}

// ObjectKey returns the object-store key of an enterprise file
func ObjectKey(enterpriseID uuid.UUID, name string) string {
	return enterpriseID.String() + "/" + name
}

// Issue runs the whole ACME flow for the enterprise sub-domain and stores the result
func (s *CertificateStep) Issue(ctx context.Context, enterprise *models.Enterprise) error {
	domain := enterprise.SubDomainName
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"enterprise_id": enterprise.ID,
		"domain":        domain,
	})

	keyPath := filepath.Join(s.opts.TempDir, domain+".key")
	csrPath := filepath.Join(s.opts.TempDir, domain+".csr")
	defer s.removeTemp(ctx, keyPath, csrPath)

	accountKey, err := s.accountKey(ctx)
	if err != nil {
		return err
	}

	domainKey, err := rsa.GenerateKey(rand.Reader, domainKeyBits)
	if err != nil {
		return fmt.Errorf("failed to generate domain key: %w", err)
	}
	domainKeyPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(domainKey)})
	if err := afero.WriteFile(s.fs, keyPath, domainKeyPEM, 0o600); err != nil {
		return fmt.Errorf("failed to write domain key: %w", err)
	}

	session, err := s.ca.Session(ctx, accountKey)
	if err != nil {
		return fmt.Errorf("failed to open acme session: %w", err)
	}

	order, err := session.NewOrder(ctx, domain)
	if err != nil {
		return fmt.Errorf("failed to create acme order: %w", err)
	}
	log.WithField("order", order.URI).Info("ACME order created")

	for _, authzURL := range order.AuthzURLs {
		if err := s.authorize(ctx, session, authzURL, domain); err != nil {
			return err
		}
	}

	csrDER, err := x509.CreateCertificateRequest(rand.Reader, &x509.CertificateRequest{
		Subject:  pkix.Name{CommonName: domain},
		DNSNames: []string{domain},
	}, domainKey)
	if err != nil {
		return fmt.Errorf("failed to create csr: %w", err)
	}
	csrPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE REQUEST", Bytes: csrDER})
	if err := afero.WriteFile(s.fs, csrPath, csrPEM, 0o600); err != nil {
		return fmt.Errorf("failed to write csr: %w", err)
	}

	order, err = s.finalize(ctx, session, order, csrDER)
	if err != nil {
		return err
	}

	chainDER, err := session.Certificate(ctx, order)
	if err != nil {
		return fmt.Errorf("failed to download certificate: %w", err)
	}
	var chain bytes.Buffer
	for _, der := range chainDER {
		if err := pem.Encode(&chain, &pem.Block{Type: "CERTIFICATE", Bytes: der}); err != nil {
			return fmt.Errorf("failed to encode certificate chain: %w", err)
		}
	}

	pkcs8DER, err := x509.MarshalPKCS8PrivateKey(domainKey)
	if err != nil {
		return fmt.Errorf("failed to encode pkcs8 key: %w", err)
	}
	pkcs8PEM := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: pkcs8DER})

	storedKey, err := afero.ReadFile(s.fs, keyPath)
	if err != nil {
		return fmt.Errorf("failed to read domain key: %w", err)
	}
	storedCSR, err := afero.ReadFile(s.fs, csrPath)
	if err != nil {
		return fmt.Errorf("failed to read csr: %w", err)
	}

	record := &models.EnterpriseCertificate{
		EnterpriseID:     enterprise.ID,
		CertificateChain: ObjectKey(enterprise.ID, "x509CertificateChain.pem"),
		CSR:              ObjectKey(enterprise.ID, domain+".csr"),
		PrivateKey:       ObjectKey(enterprise.ID, domain+".key"),
	}
	uploads := []struct {
		key  string
		data []byte
	}{
		{record.CertificateChain, chain.Bytes()},
		{record.CSR, storedCSR},
		{record.PrivateKey, storedKey},
		{ObjectKey(enterprise.ID, "pkcs8_"+domain+".key"), pkcs8PEM},
	}
	for _, upload := range uploads {
		if err := s.store.Put(ctx, upload.key, upload.data); err != nil {
			return fmt.Errorf("failed to upload %s: %w", upload.key, err)
		}
	}

	if err := s.certificates.Upsert(record); err != nil {
		return fmt.Errorf("failed to save certificate record: %w", err)
	}

	log.Info("Certificate issued")
	return nil
}

// authorize proves control of domain for one authorization. The TXT record is
// withdrawn on every exit path once its publication was attempted.
func (s *CertificateStep) authorize(ctx context.Context, session clients.ACMESession, authzURL, domain string) error {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"domain":        domain,
		"authorization": authzURL,
	})

	authz, err := session.Authorization(ctx, authzURL)
	if err != nil {
		return fmt.Errorf("failed to fetch authorization: %w", err)
	}
	if authz.Status == clients.ACMEStatusValid {
		log.Debug("Authorization already valid")
		return nil
	}

	var challenge *clients.ACMEChallenge
	for i := range authz.Challenges {
		if authz.Challenges[i].Type == challengeDNS01 {
			challenge = &authz.Challenges[i]
			break
		}
	}
	if challenge == nil {
		return apperrors.ErrDNS01ChallengeNotFound
	}
	if challenge.Status == clients.ACMEStatusValid {
		log.Debug("DNS-01 challenge already valid")
		return nil
	}

	digest, err := session.DNS01Record(challenge.Token)
	if err != nil {
		return fmt.Errorf("failed to compute dns-01 digest: %w", err)
	}

	defer func() {
		if err := s.txt.DeleteTxtRecord(context.WithoutCancel(ctx), domain, digest); err != nil {
			log.WithError(err).Warn("Failed to delete challenge TXT record")
		}
	}()
	if err := s.txt.CreateTxtRecord(ctx, domain, digest); err != nil {
		return err
	}

	accepted, err := session.AcceptChallenge(ctx, challenge)
	if err != nil {
		return fmt.Errorf("failed to accept challenge: %w", err)
	}
	return s.awaitChallenge(ctx, session, accepted)
}

func (s *CertificateStep) awaitChallenge(ctx context.Context, session clients.ACMESession, challenge *clients.ACMEChallenge) error {
	for attempt := 0; ; attempt++ {
		switch challenge.Status {
		case clients.ACMEStatusValid:
			return nil
		case clients.ACMEStatusInvalid:
			return fmt.Errorf("%w: %s", apperrors.ErrChallengeInvalid, challenge.Error)
		}
		if attempt >= s.opts.ChallengeAttempts {
			return apperrors.ErrChallengeNotValidated
		}

		if err := sleepContext(ctx, s.opts.ChallengeInterval); err != nil {
			return err
		}
		next, err := session.Challenge(ctx, challenge.URI)
		if err != nil {
			return fmt.Errorf("failed to poll challenge: %w", err)
		}
		challenge = next
	}
}

func (s *CertificateStep) finalize(ctx context.Context, session clients.ACMESession, order *clients.ACMEOrder, csr []byte) (*clients.ACMEOrder, error) {
	finalizeCtx := ctx
	if budget := time.Duration(s.opts.OrderAttempts) * s.opts.OrderInterval; budget > 0 {
		var cancel context.CancelFunc
		finalizeCtx, cancel = context.WithTimeout(ctx, budget)
		defer cancel()
	}

	order, err := session.FinalizeOrder(finalizeCtx, order, csr)
	if err != nil {
		return nil, fmt.Errorf("failed to finalize order: %w", err)
	}

	for attempt := 0; ; attempt++ {
		switch order.Status {
		case clients.ACMEStatusValid:
			return order, nil
		case clients.ACMEStatusInvalid:
			return nil, apperrors.ErrOrderInvalid
		}
		if attempt >= s.opts.OrderAttempts {
			return nil, apperrors.ErrOrderNotReady
		}

		if err := sleepContext(ctx, s.opts.OrderInterval); err != nil {
			return nil, err
		}
		next, err := session.Order(ctx, order.URI)
		if err != nil {
			return nil, fmt.Errorf("failed to poll order: %w", err)
		}
		order = next
	}
}

// accountKey loads the shared ACME account key, creating it on first use
func (s *CertificateStep) accountKey(ctx context.Context) (crypto.Signer, error) {
	data, err := s.store.Get(ctx, AccountKeyObject)
	if err == nil {
		return parsePrivateKey(data)
	}
	if !errors.Is(err, apperrors.ErrObjectNotFound) {
		return nil, fmt.Errorf("failed to load acme account key: %w", err)
	}

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate acme account key: %w", err)
	}
	der, err := x509.MarshalECPrivateKey(key)
	if err != nil {
		return nil, fmt.Errorf("failed to encode acme account key: %w", err)
	}
	if err := s.store.Put(ctx, AccountKeyObject, pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: der})); err != nil {
		return nil, fmt.Errorf("failed to store acme account key: %w", err)
	}

	logger.WithContext(ctx).Info("Created ACME account key")
	return key, nil
}

func parsePrivateKey(data []byte) (crypto.Signer, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, errors.New("acme account key is not PEM encoded")
	}

	switch block.Type {
	case "EC PRIVATE KEY":
		return x509.ParseECPrivateKey(block.Bytes)
	case "RSA PRIVATE KEY":
		return x509.ParsePKCS1PrivateKey(block.Bytes)
	case "PRIVATE KEY":
		key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, err
		}
		signer, ok := key.(crypto.Signer)
		if !ok {
			return nil, fmt.Errorf("unsupported account key type %T", key)
		}
		return signer, nil
	}
	return nil, fmt.Errorf("unsupported PEM block %q", block.Type)
}

func (s *CertificateStep) removeTemp(ctx context.Context, paths ...string) {
	for _, path := range paths {
		if err := s.fs.Remove(path); err != nil && !errors.Is(err, afero.ErrFileNotFound) {
			logger.WithContext(ctx).WithError(err).WithField("path", path).Warn("Failed to remove temporary file")
		}
	}
}
