package service_test

import (
	"context"
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"testing"
	"time"

	"onboarding-backend/internal/clients"
	"onboarding-backend/internal/database/models"
	apperrors "onboarding-backend/internal/errors"
	"onboarding-backend/internal/mocks"
	"onboarding-backend/internal/service"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CertificateStepTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	ca           *mocks.MockCertificateAuthority
	session      *mocks.MockACMESession
	dns          *mocks.MockDNSProvider
	store        *mocks.MockObjectStore
	certificates *mocks.MockEnterpriseCertificateRepositoryInterface
	fs           afero.Fs
	step         *service.CertificateStep
	enterprise   *models.Enterprise
	accountPEM   []byte
}

func (suite *CertificateStepTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.ca = mocks.NewMockCertificateAuthority(suite.ctrl)
	suite.session = mocks.NewMockACMESession(suite.ctrl)
	suite.dns = mocks.NewMockDNSProvider(suite.ctrl)
	suite.store = mocks.NewMockObjectStore(suite.ctrl)
	suite.certificates = mocks.NewMockEnterpriseCertificateRepositoryInterface(suite.ctrl)
	suite.fs = afero.NewMemMapFs()

	suite.step = service.NewCertificateStep(
		suite.ca,
		service.NewDomainStep(suite.dns, testZoneID, testServerIP, 0),
		suite.store,
		suite.certificates,
		suite.fs,
		service.CertificateOptions{TempDir: "/work", ChallengeAttempts: 2, OrderAttempts: 2},
	)

	suite.enterprise = &models.Enterprise{SubDomainName: testDomain}
	suite.enterprise.ID = uuid.New()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(suite.T(), err)
	der, err := x509.MarshalECPrivateKey(key)
	require.NoError(suite.T(), err)
	suite.accountPEM = pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: der})
}

func (suite *CertificateStepTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CertificateStepTestSuite) expectExistingAccount() {
	suite.store.EXPECT().Get(gomock.Any(), service.AccountKeyObject).Return(suite.accountPEM, nil)
	suite.ca.EXPECT().Session(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, signer crypto.Signer) (clients.ACMESession, error) {
			assert.IsType(suite.T(), &ecdsa.PrivateKey{}, signer)
			return suite.session, nil
		})
}

func (suite *CertificateStepTestSuite) assertNoTempFiles() {
	entries, err := afero.ReadDir(suite.fs, "/work")
	if err != nil {
		return
	}
	assert.Empty(suite.T(), entries)
}

func (suite *CertificateStepTestSuite) TestIssue_ReusesStoredAccountKeyAndSkipsValidAuthorization() {
	suite.expectExistingAccount()
	suite.session.EXPECT().NewOrder(gomock.Any(), testDomain).
		Return(&clients.ACMEOrder{URI: "o", Status: clients.ACMEStatusReady, AuthzURLs: []string{"a"}}, nil)
	suite.session.EXPECT().Authorization(gomock.Any(), "a").
		Return(&clients.ACMEAuthorization{URI: "a", Status: clients.ACMEStatusValid}, nil)
	suite.session.EXPECT().FinalizeOrder(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, order *clients.ACMEOrder, csr []byte) (*clients.ACMEOrder, error) {
			request, err := x509.ParseCertificateRequest(csr)
			require.NoError(suite.T(), err)
			assert.Equal(suite.T(), testDomain, request.Subject.CommonName)
			assert.Equal(suite.T(), []string{testDomain}, request.DNSNames)
			return &clients.ACMEOrder{URI: order.URI, Status: clients.ACMEStatusValid}, nil
		})
	suite.session.EXPECT().Certificate(gomock.Any(), gomock.Any()).Return([][]byte{[]byte("leaf")}, nil)

	uploads := map[string][]byte{}
	suite.store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key string, data []byte) error {
			uploads[key] = data
			return nil
		}).Times(4)
	suite.certificates.EXPECT().Upsert(gomock.Any()).Return(nil)

	require.NoError(suite.T(), suite.step.Issue(context.Background(), suite.enterprise))

	assert.NotContains(suite.T(), uploads, service.AccountKeyObject)
	keyBlock, _ := pem.Decode(uploads[service.ObjectKey(suite.enterprise.ID, testDomain+".key")])
	require.NotNil(suite.T(), keyBlock)
	assert.Equal(suite.T(), "RSA PRIVATE KEY", keyBlock.Type)
	pkcs8Block, _ := pem.Decode(uploads[service.ObjectKey(suite.enterprise.ID, "pkcs8_"+testDomain+".key")])
	require.NotNil(suite.T(), pkcs8Block)
	assert.Equal(suite.T(), "PRIVATE KEY", pkcs8Block.Type)
	chainBlock, _ := pem.Decode(uploads[service.ObjectKey(suite.enterprise.ID, "x509CertificateChain.pem")])
	require.NotNil(suite.T(), chainBlock)
	assert.Equal(suite.T(), "CERTIFICATE", chainBlock.Type)
	suite.assertNoTempFiles()
}

func (suite *CertificateStepTestSuite) TestIssue_NoDNS01Challenge() {
	suite.expectExistingAccount()
	suite.session.EXPECT().NewOrder(gomock.Any(), testDomain).
		Return(&clients.ACMEOrder{URI: "o", AuthzURLs: []string{"a"}}, nil)
	suite.session.EXPECT().Authorization(gomock.Any(), "a").Return(&clients.ACMEAuthorization{
		Status:     clients.ACMEStatusPending,
		Challenges: []clients.ACMEChallenge{{Type: "http-01", URI: "c"}},
	}, nil)

	err := suite.step.Issue(context.Background(), suite.enterprise)

	assert.ErrorIs(suite.T(), err, apperrors.ErrDNS01ChallengeNotFound)
	suite.assertNoTempFiles()
}

func (suite *CertificateStepTestSuite) TestIssue_ValidChallengeSkipsTxtRecord() {
	suite.expectExistingAccount()
	suite.session.EXPECT().NewOrder(gomock.Any(), testDomain).
		Return(&clients.ACMEOrder{URI: "o", AuthzURLs: []string{"a"}}, nil)
	suite.session.EXPECT().Authorization(gomock.Any(), "a").Return(&clients.ACMEAuthorization{
		URI:    "a",
		Status: clients.ACMEStatusPending,
		Challenges: []clients.ACMEChallenge{
			{Type: "http-01", URI: "c-http", Status: clients.ACMEStatusPending},
			{Type: "dns-01", URI: "c-dns", Token: "tok", Status: clients.ACMEStatusValid},
		},
	}, nil)
	// No TXT change, DNS01Record or AcceptChallenge is expected on the mocks
	suite.session.EXPECT().FinalizeOrder(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&clients.ACMEOrder{URI: "o", Status: clients.ACMEStatusInvalid}, nil)

	err := suite.step.Issue(context.Background(), suite.enterprise)

	assert.ErrorIs(suite.T(), err, apperrors.ErrOrderInvalid)
	suite.assertNoTempFiles()
}

func (suite *CertificateStepTestSuite) TestIssue_FinalizeBoundedByOrderBudget() {
	step := service.NewCertificateStep(
		suite.ca,
		service.NewDomainStep(suite.dns, testZoneID, testServerIP, 0),
		suite.store,
		suite.certificates,
		suite.fs,
		service.CertificateOptions{TempDir: "/work", OrderAttempts: 3, OrderInterval: 20 * time.Millisecond},
	)

	suite.expectExistingAccount()
	suite.session.EXPECT().NewOrder(gomock.Any(), testDomain).
		Return(&clients.ACMEOrder{URI: "o", Status: clients.ACMEStatusReady}, nil)
	suite.session.EXPECT().FinalizeOrder(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ *clients.ACMEOrder, _ []byte) (*clients.ACMEOrder, error) {
			deadline, ok := ctx.Deadline()
			require.True(suite.T(), ok)
			// OrderAttempts x OrderInterval
			assert.LessOrEqual(suite.T(), time.Until(deadline), 60*time.Millisecond)
			<-ctx.Done()
			return nil, ctx.Err()
		})

	err := step.Issue(context.Background(), suite.enterprise)

	assert.ErrorIs(suite.T(), err, context.DeadlineExceeded)
	suite.assertNoTempFiles()
}

func (suite *CertificateStepTestSuite) TestIssue_InvalidOrder() {
	suite.expectExistingAccount()
	suite.session.EXPECT().NewOrder(gomock.Any(), testDomain).
		Return(&clients.ACMEOrder{URI: "o", AuthzURLs: []string{"a"}}, nil)
	suite.session.EXPECT().Authorization(gomock.Any(), "a").
		Return(&clients.ACMEAuthorization{Status: clients.ACMEStatusValid}, nil)
	suite.session.EXPECT().FinalizeOrder(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&clients.ACMEOrder{URI: "o", Status: clients.ACMEStatusProcessing}, nil)
	suite.session.EXPECT().Order(gomock.Any(), "o").Return(&clients.ACMEOrder{URI: "o", Status: clients.ACMEStatusInvalid}, nil)

	err := suite.step.Issue(context.Background(), suite.enterprise)

	assert.ErrorIs(suite.T(), err, apperrors.ErrOrderInvalid)
	suite.assertNoTempFiles()
}

func (suite *CertificateStepTestSuite) TestIssue_FinalizeFailure() {
	suite.expectExistingAccount()
	suite.session.EXPECT().NewOrder(gomock.Any(), testDomain).
		Return(&clients.ACMEOrder{URI: "o", AuthzURLs: []string{"a"}}, nil)
	suite.session.EXPECT().Authorization(gomock.Any(), "a").
		Return(&clients.ACMEAuthorization{Status: clients.ACMEStatusValid}, nil)
	suite.session.EXPECT().FinalizeOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("badCSR"))

	err := suite.step.Issue(context.Background(), suite.enterprise)
	assert.ErrorContains(suite.T(), err, "badCSR")
}

func (suite *CertificateStepTestSuite) TestIssue_UnreadableAccountKey() {
	suite.store.EXPECT().Get(gomock.Any(), service.AccountKeyObject).Return([]byte("garbage"), nil)

	err := suite.step.Issue(context.Background(), suite.enterprise)
	assert.ErrorContains(suite.T(), err, "not PEM encoded")
}

func (suite *CertificateStepTestSuite) TestIssue_UploadFailure() {
	suite.expectExistingAccount()
	suite.session.EXPECT().NewOrder(gomock.Any(), testDomain).
		Return(&clients.ACMEOrder{URI: "o", AuthzURLs: nil, Status: clients.ACMEStatusReady}, nil)
	suite.session.EXPECT().FinalizeOrder(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&clients.ACMEOrder{URI: "o", Status: clients.ACMEStatusValid}, nil)
	suite.session.EXPECT().Certificate(gomock.Any(), gomock.Any()).Return([][]byte{[]byte("leaf")}, nil)
	suite.store.EXPECT().Put(gomock.Any(), service.ObjectKey(suite.enterprise.ID, "x509CertificateChain.pem"), gomock.Any()).
		Return(errors.New("AccessDenied"))

	err := suite.step.Issue(context.Background(), suite.enterprise)

	assert.ErrorContains(suite.T(), err, "AccessDenied")
	suite.assertNoTempFiles()
}

func TestCertificateStepTestSuite(t *testing.T) {
	suite.Run(t, new(CertificateStepTestSuite))
}
