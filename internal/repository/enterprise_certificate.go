package repository

import (
	"onboarding-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EnterpriseCertificateRepository handles database operations for enterprise certificates
type EnterpriseCertificateRepository struct {
	db *gorm.DB
}

// NewEnterpriseCertificateRepository creates a new enterprise certificate repository
func NewEnterpriseCertificateRepository(db *gorm.DB) *EnterpriseCertificateRepository {
	return &EnterpriseCertificateRepository{db: db}
}

// GetByEnterpriseID retrieves the certificate row of an enterprise
func (r *EnterpriseCertificateRepository) GetByEnterpriseID(enterpriseID uuid.UUID) (*models.EnterpriseCertificate, error) {
	var certificate models.EnterpriseCertificate
	err := r.db.First(&certificate, "enterprise_id = ?", enterpriseID).Error
	if err != nil {
		return nil, err
	}
	return &certificate, nil
}

// Upsert inserts the certificate row or replaces the object keys of the existing one
func (r *EnterpriseCertificateRepository) Upsert(certificate *models.EnterpriseCertificate) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "enterprise_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"certificate_chain", "csr", "private_key", "updated_at"}),
	}).Create(certificate).Error
}
