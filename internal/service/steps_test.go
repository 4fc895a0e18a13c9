package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"onboarding-backend/internal/clients"
	"onboarding-backend/internal/database/models"
	"onboarding-backend/internal/mocks"
	"onboarding-backend/internal/service"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StepsTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	dns        *mocks.MockDNSProvider
	store      *mocks.MockObjectStore
	enterprise *models.Enterprise
}

func (suite *StepsTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.dns = mocks.NewMockDNSProvider(suite.ctrl)
	suite.store = mocks.NewMockObjectStore(suite.ctrl)
	suite.enterprise = &models.Enterprise{SubDomainName: testDomain, LegalName: "Acme Corporation", ConnectionID: "conn-1"}
	suite.enterprise.ID = uuid.New()
}

func (suite *StepsTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *StepsTestSuite) TestDomainStep_TxtRecordsAreQuoted() {
	step := service.NewDomainStep(suite.dns, testZoneID, testServerIP, 0)
	var seen []clients.DNSRecord
	suite.dns.EXPECT().UpsertRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record clients.DNSRecord) error {
			seen = append(seen, record)
			return nil
		}).Times(2)

	require.NoError(suite.T(), step.CreateTxtRecord(context.Background(), testDomain, "abc"))
	require.NoError(suite.T(), step.DeleteTxtRecord(context.Background(), testDomain, "abc"))

	require.Len(suite.T(), seen, 2)
	assert.Equal(suite.T(), `"abc"`, seen[0].Value)
	assert.Equal(suite.T(), "_acme-challenge."+testDomain, seen[0].Name)
	assert.Equal(suite.T(), int64(300), seen[0].TTL)
	assert.Equal(suite.T(), clients.DNSActionUpsert, seen[0].Action)
	assert.Equal(suite.T(), clients.DNSActionDelete, seen[1].Action)
}

func (suite *StepsTestSuite) TestDomainStep_PropagationWaitHonoursCancellation() {
	step := service.NewDomainStep(suite.dns, testZoneID, testServerIP, 24*time.Hour)
	suite.dns.EXPECT().UpsertRecord(gomock.Any(), gomock.Any()).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := step.CreateTxtRecord(ctx, testDomain, "abc")
	assert.ErrorIs(suite.T(), err, context.Canceled)
}

func (suite *StepsTestSuite) TestIngressStep_RemovesStagedFiles() {
	fs := afero.NewMemMapFs()
	certificates := mocks.NewMockEnterpriseCertificateRepositoryInterface(suite.ctrl)
	orchestrator := mocks.NewMockOrchestrator(suite.ctrl)
	step := service.NewIngressStep(suite.store, certificates, orchestrator, clients.DefaultIngressTemplate("portal"), "", fs, "/stage")

	certificates.EXPECT().GetByEnterpriseID(suite.enterprise.ID).
		Return(&models.EnterpriseCertificate{CertificateChain: "chain", PrivateKey: "key"}, nil)
	suite.store.EXPECT().Get(gomock.Any(), "chain").Return([]byte("chain-pem"), nil)
	suite.store.EXPECT().Get(gomock.Any(), "key").Return([]byte("key-pem"), nil)
	orchestrator.EXPECT().CreateTLSSecret(gomock.Any(), "default", testDomain, []byte("chain-pem"), []byte("key-pem")).Return(nil)
	orchestrator.EXPECT().CreateIngress(gomock.Any(), "default", gomock.Any()).Return(errors.New("admission webhook denied"))

	err := step.Publish(context.Background(), suite.enterprise)

	assert.ErrorContains(suite.T(), err, "admission webhook denied")
	entries, _ := afero.ReadDir(fs, "/stage")
	assert.Empty(suite.T(), entries)
}

func (suite *StepsTestSuite) TestIdentitySteps_DIDUploadFailure() {
	signer := mocks.NewMockSignerService(suite.ctrl)
	step := service.NewIdentitySteps(signer, nil, suite.store, nil, service.IdentityOptions{})

	signer.EXPECT().CreateDID(gomock.Any(), testDomain).Return([]byte(`{}`), nil)
	suite.store.EXPECT().Put(gomock.Any(), suite.enterprise.ID.String()+"/did.json", gomock.Any()).Return(errors.New("SlowDown"))

	err := step.CreateDID(context.Background(), suite.enterprise)
	assert.ErrorContains(suite.T(), err, "SlowDown")
}

func (suite *StepsTestSuite) TestIdentitySteps_PresignsKeyWithDefaultTTL() {
	signer := mocks.NewMockSignerService(suite.ctrl)
	step := service.NewIdentitySteps(signer, nil, suite.store, nil, service.IdentityOptions{})

	suite.store.EXPECT().Presign(gomock.Any(), suite.enterprise.ID.String()+"/pkcs8_"+testDomain+".key", 20*time.Second).
		Return("", errors.New("no credentials"))

	err := step.CreateParticipant(context.Background(), suite.enterprise)
	assert.ErrorContains(suite.T(), err, "no credentials")
}

func TestStepsTestSuite(t *testing.T) {
	suite.Run(t, new(StepsTestSuite))
}
