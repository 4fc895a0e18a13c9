package repository

import (
	"onboarding-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EnterpriseCredentialRepository handles database operations for enterprise credentials
type EnterpriseCredentialRepository struct {
	db *gorm.DB
}

// NewEnterpriseCredentialRepository creates a new enterprise credential repository
func NewEnterpriseCredentialRepository(db *gorm.DB) *EnterpriseCredentialRepository {
	return &EnterpriseCredentialRepository{db: db}
}

// GetByEnterpriseID lists the credentials issued for an enterprise
func (r *EnterpriseCredentialRepository) GetByEnterpriseID(enterpriseID uuid.UUID) ([]models.EnterpriseCredential, error) {
	var credentials []models.EnterpriseCredential
	err := r.db.Where("enterprise_id = ?", enterpriseID).Order("created_at").Find(&credentials).Error
	if err != nil {
		return nil, err
	}
	return credentials, nil
}

// GetByEnterpriseIDAndLabel retrieves one credential by its label
func (r *EnterpriseCredentialRepository) GetByEnterpriseIDAndLabel(enterpriseID uuid.UUID, label string) (*models.EnterpriseCredential, error) {
	var credential models.EnterpriseCredential
	err := r.db.First(&credential, "enterprise_id = ? AND label = ?", enterpriseID, label).Error
	if err != nil {
		return nil, err
	}
	return &credential, nil
}

// Upsert inserts the credential or replaces the payload stored under (enterprise_id, label)
func (r *EnterpriseCredentialRepository) Upsert(credential *models.EnterpriseCredential) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "enterprise_id"}, {Name: "label"}},
		DoUpdates: clause.AssignmentColumns([]string{"credentials", "offer_id", "updated_at"}),
	}).Create(credential).Error
}
