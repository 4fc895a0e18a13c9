package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"onboarding-backend/internal/clients"
	"onboarding-backend/internal/database/models"
	apperrors "onboarding-backend/internal/errors"
	"onboarding-backend/internal/logger"
	"onboarding-backend/internal/repository"

	"github.com/spf13/afero"
	"gorm.io/gorm"
)

// IngressStep exposes the enterprise host through the cluster ingress controller
type IngressStep struct {
	store        clients.ObjectStore
	certificates repository.EnterpriseCertificateRepositoryInterface
	orchestrator clients.Orchestrator
	template     *clients.IngressTemplate
	namespace    string
	fs           afero.Fs
	tempDir      string
}

// NewIngressStep creates a new ingress step
func NewIngressStep(
	store clients.ObjectStore,
	certificates repository.EnterpriseCertificateRepositoryInterface,
	orchestrator clients.Orchestrator,
	template *clients.IngressTemplate,
	namespace string,
	fs afero.Fs,
	tempDir string,
) *IngressStep {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if namespace == "" {
		namespace = "default"
	}
	if tempDir == "" {
		tempDir = DefaultCertificateOptions().TempDir
	}
	return &IngressStep{
		store:        store,
		certificates: certificates,
		orchestrator: orchestrator,
		template:     template,
		namespace:    namespace,
		fs:           fs,
		tempDir:      tempDir,
	}
}

// Publish stores the certificate as a TLS secret and routes the sub-domain to the service
func (s *IngressStep) Publish(ctx context.Context, enterprise *models.Enterprise) error {
	certificate, err := s.certificates.GetByEnterpriseID(enterprise.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEnterpriseCertificateNotFound
		}
		return fmt.Errorf("failed to get certificate record: %w", err)
	}

	chainPath := filepath.Join(s.tempDir, enterprise.ID.String()+"-x509CertificateChain.pem")
	keyPath := filepath.Join(s.tempDir, enterprise.ID.String()+"-"+enterprise.SubDomainName+".key")
	defer func() {
		for _, path := range []string{chainPath, keyPath} {
			if err := s.fs.Remove(path); err != nil && !errors.Is(err, afero.ErrFileNotFound) {
				logger.WithContext(ctx).WithError(err).WithField("path", path).Warn("Failed to remove temporary file")
			}
		}
	}()

	chain, err := s.stage(ctx, certificate.CertificateChain, chainPath)
	if err != nil {
		return err
	}
	key, err := s.stage(ctx, certificate.PrivateKey, keyPath)
	if err != nil {
		return err
	}

	name := enterprise.SubDomainName
	if err := s.orchestrator.CreateTLSSecret(ctx, s.namespace, name, chain, key); err != nil {
		return fmt.Errorf("failed to create tls secret: %w", err)
	}
	if err := s.orchestrator.CreateIngress(ctx, s.namespace, s.template.Spec(name, name, name)); err != nil {
		return fmt.Errorf("failed to create ingress: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"enterprise_id": enterprise.ID,
		"host":          name,
		"namespace":     s.namespace,
	}).Info("Ingress published")
	return nil
}

// stage downloads an object into a temporary file and returns its content
func (s *IngressStep) stage(ctx context.Context, key, path string) ([]byte, error) {
	data, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", key, err)
	}
	if err := afero.WriteFile(s.fs, path, data, 0o600); err != nil {
		return nil, fmt.Errorf("failed to stage %s: %w", key, err)
	}
	return afero.ReadFile(s.fs, path)
}
