//go:build integration
// +build integration

package repository

import (
	"testing"

	"onboarding-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// EnterpriseArtifactsTestSuite tests the certificate and credential repositories
type EnterpriseArtifactsTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	enterprises   *EnterpriseRepository
	certificates  *EnterpriseCertificateRepository
	credentials   *EnterpriseCredentialRepository
	factories     *testutils.FactorySet
}

func (suite *EnterpriseArtifactsTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.enterprises = NewEnterpriseRepository(suite.baseTestSuite.DB)
	suite.certificates = NewEnterpriseCertificateRepository(suite.baseTestSuite.DB)
	suite.credentials = NewEnterpriseCredentialRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *EnterpriseArtifactsTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *EnterpriseArtifactsTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *EnterpriseArtifactsTestSuite) TestCertificateUpsert() {
	enterprise := suite.factories.Enterprise.Create()
	suite.NoError(suite.enterprises.Create(enterprise))

	certificate := suite.factories.EnterpriseCertificate.ForEnterprise(enterprise)
	suite.NoError(suite.certificates.Upsert(certificate))

	// A second issuance replaces the keys instead of adding a row
	again := suite.factories.EnterpriseCertificate.ForEnterprise(enterprise)
	again.CertificateChain = enterprise.ID.String() + "/renewed.pem"
	suite.NoError(suite.certificates.Upsert(again))

	found, err := suite.certificates.GetByEnterpriseID(enterprise.ID)
	suite.NoError(err)
	suite.Equal(enterprise.ID.String()+"/renewed.pem", found.CertificateChain)

	var count int64
	suite.baseTestSuite.DB.Table("enterprise_certificates").Count(&count)
	suite.Equal(int64(1), count)
}

func (suite *EnterpriseArtifactsTestSuite) TestCertificateNotFound() {
	_, err := suite.certificates.GetByEnterpriseID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *EnterpriseArtifactsTestSuite) TestCredentialUpsert() {
	enterprise := suite.factories.Enterprise.Create()
	suite.NoError(suite.enterprises.Create(enterprise))

	credential := suite.factories.EnterpriseCredential.Create(enterprise.ID)
	suite.NoError(suite.credentials.Upsert(credential))

	updated := suite.factories.EnterpriseCredential.Create(enterprise.ID)
	updated.Credentials = `{"id":"updated"}`
	updated.OfferID = "offer-2"
	suite.NoError(suite.credentials.Upsert(updated))

	found, err := suite.credentials.GetByEnterpriseIDAndLabel(enterprise.ID, "participant")
	suite.NoError(err)
	suite.Equal(`{"id":"updated"}`, found.Credentials)
	suite.Equal("offer-2", found.OfferID)

	all, err := suite.credentials.GetByEnterpriseID(enterprise.ID)
	suite.NoError(err)
	suite.Len(all, 1)
}

func TestEnterpriseArtifactsTestSuite(t *testing.T) {
	suite.Run(t, new(EnterpriseArtifactsTestSuite))
}
