package service_test

import (
	"context"
	"errors"
	"testing"

	"onboarding-backend/internal/clients"
	"onboarding-backend/internal/database/models"
	apperrors "onboarding-backend/internal/errors"
	"onboarding-backend/internal/mocks"
	"onboarding-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RegistrationServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	enterprises *mocks.MockEnterpriseRepositoryInterface
	issuer      *mocks.MockCredentialIssuer
	jobs        *mocks.MockJobScheduler
	service     *service.RegistrationService
}

func (suite *RegistrationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.enterprises = mocks.NewMockEnterpriseRepositoryInterface(suite.ctrl)
	suite.issuer = mocks.NewMockCredentialIssuer(suite.ctrl)
	suite.jobs = mocks.NewMockJobScheduler(suite.ctrl)

	v := validator.New()
	require.NoError(suite.T(), service.RegisterValidations(v))

	suite.service = service.NewRegistrationService(suite.enterprises, suite.issuer, suite.jobs, v, service.RegistrationOptions{
		AppName:                   "Onboarding",
		BaseDomain:                "onboarding.test",
		MembershipCredentialDefID: "def:membership",
	})
}

func (suite *RegistrationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func validRegistration() *service.RegisterEnterpriseRequest {
	return &service.RegisterEnterpriseRequest{
		LegalName:               "Acme Corporation",
		Email:                   "admin@acme.example",
		SubDomainName:           "Acme",
		LegalRegistrationNumber: "DE123456789",
		LegalRegistrationType:   "vatID",
		HeadquarterAddress:      "DE-BY",
		LegalAddress:            "DE-BE",
		ConnectionID:            "conn-1",
	}
}

func (suite *RegistrationServiceTestSuite) expectUnique() {
	suite.enterprises.EXPECT().ExistsByLegalName("Acme Corporation").Return(false, nil)
	suite.enterprises.EXPECT().ExistsByEmail("admin@acme.example").Return(false, nil)
	suite.enterprises.EXPECT().ExistsBySubDomainName("acme.onboarding.test").Return(false, nil)
}

func (suite *RegistrationServiceTestSuite) TestRegister_Success() {
	suite.expectUnique()
	suite.issuer.EXPECT().OfferCredential(gomock.Any(), clients.OfferRequest{
		ConnectionID:           "conn-1",
		CredentialDefinitionID: "def:membership",
		Comment:                "Login with Onboarding",
		Attributes: []clients.OfferAttribute{
			{Name: "name", Value: "Acme Corporation"},
			{Name: "email", Value: "admin@acme.example"},
		},
	}).Return("offer-1", nil)
	job := &models.ScheduledJob{JobType: models.JobTypeDomain}
	suite.jobs.EXPECT().NewJob(uuid.Nil, models.JobTypeDomain, 0).Return(job)
	suite.enterprises.EXPECT().CreateWithJob(gomock.Any(), job).
		DoAndReturn(func(enterprise *models.Enterprise, job *models.ScheduledJob) error {
			assert.Equal(suite.T(), models.StatusStarted, enterprise.Status)
			assert.Equal(suite.T(), "acme.onboarding.test", enterprise.SubDomainName)
			assert.Equal(suite.T(), "offer-1", enterprise.OfferID)
			enterprise.ID = uuid.New()
			job.EnterpriseID = enterprise.ID
			return nil
		})

	resp, err := suite.service.Register(context.Background(), validRegistration())

	require.NoError(suite.T(), err)
	assert.NotEqual(suite.T(), uuid.Nil, resp.ID)
	assert.Equal(suite.T(), models.StatusStarted, resp.Status)
	assert.Equal(suite.T(), 1, resp.StatusOrdinal)
	assert.False(suite.T(), resp.Failed)
	assert.Equal(suite.T(), "acme.onboarding.test", resp.SubDomainName)
	assert.Equal(suite.T(), resp.ID, job.EnterpriseID)
}

// A duplicate is rejected before any side effect
func (suite *RegistrationServiceTestSuite) TestRegister_DuplicateRejectedBeforeSideEffects() {
	cases := []struct {
		name  string
		setup func()
		want  error
	}{
		{
			name: "legal name",
			setup: func() {
				suite.enterprises.EXPECT().ExistsByLegalName(gomock.Any()).Return(true, nil)
			},
			want: apperrors.ErrLegalNameExists,
		},
		{
			name: "email",
			setup: func() {
				suite.enterprises.EXPECT().ExistsByLegalName(gomock.Any()).Return(false, nil)
				suite.enterprises.EXPECT().ExistsByEmail(gomock.Any()).Return(true, nil)
			},
			want: apperrors.ErrEmailExists,
		},
		{
			name: "sub domain",
			setup: func() {
				suite.enterprises.EXPECT().ExistsByLegalName(gomock.Any()).Return(false, nil)
				suite.enterprises.EXPECT().ExistsByEmail(gomock.Any()).Return(false, nil)
				suite.enterprises.EXPECT().ExistsBySubDomainName("acme.onboarding.test").Return(true, nil)
			},
			want: apperrors.ErrSubDomainNameExists,
		},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			tc.setup()

			resp, err := suite.service.Register(context.Background(), validRegistration())

			assert.Nil(suite.T(), resp)
			assert.ErrorIs(suite.T(), err, tc.want)
			assert.True(suite.T(), apperrors.IsAlreadyExists(err))
		})
	}
}

func (suite *RegistrationServiceTestSuite) TestRegister_ValidationErrors() {
	cases := []struct {
		name   string
		mutate func(*service.RegisterEnterpriseRequest)
		field  string
	}{
		{"missing legal name", func(r *service.RegisterEnterpriseRequest) { r.LegalName = "" }, "LegalName"},
		{"short legal name", func(r *service.RegisterEnterpriseRequest) { r.LegalName = "Ac" }, "LegalName"},
		{"invalid email", func(r *service.RegisterEnterpriseRequest) { r.Email = "not-an-email" }, "Email"},
		{"long sub domain", func(r *service.RegisterEnterpriseRequest) { r.SubDomainName = "averylongsubdomain" }, "SubDomainName"},
		{"sub domain with dot", func(r *service.RegisterEnterpriseRequest) { r.SubDomainName = "acme.evil" }, "SubDomainName"},
		{"bad subdivision", func(r *service.RegisterEnterpriseRequest) { r.HeadquarterAddress = "Bavaria" }, "HeadquarterAddress"},
		{"missing connection", func(r *service.RegisterEnterpriseRequest) { r.ConnectionID = "" }, "ConnectionID"},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			req := validRegistration()
			tc.mutate(req)

			_, err := suite.service.Register(context.Background(), req)

			var validationErr *apperrors.ValidationError
			require.ErrorAs(suite.T(), err, &validationErr)
			assert.Equal(suite.T(), tc.field, validationErr.Field)
		})
	}
}

func (suite *RegistrationServiceTestSuite) TestRegister_OfferFailureStoresNothing() {
	suite.expectUnique()
	suite.issuer.EXPECT().OfferCredential(gomock.Any(), gomock.Any()).Return("", errors.New("pcm unavailable"))

	_, err := suite.service.Register(context.Background(), validRegistration())
	assert.ErrorContains(suite.T(), err, "pcm unavailable")
}

func (suite *RegistrationServiceTestSuite) TestRegister_ConcurrentDuplicate() {
	suite.expectUnique()
	suite.issuer.EXPECT().OfferCredential(gomock.Any(), gomock.Any()).Return("offer-1", nil)
	suite.jobs.EXPECT().NewJob(uuid.Nil, models.JobTypeDomain, 0).Return(&models.ScheduledJob{})
	suite.enterprises.EXPECT().CreateWithJob(gomock.Any(), gomock.Any()).
		Return(&pgconn.PgError{Code: "23505", ConstraintName: "idx_enterprises_email"})

	_, err := suite.service.Register(context.Background(), validRegistration())
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
}

func (suite *RegistrationServiceTestSuite) TestRegister_RepositoryError() {
	suite.enterprises.EXPECT().ExistsByLegalName(gomock.Any()).Return(false, errors.New("connection refused"))

	_, err := suite.service.Register(context.Background(), validRegistration())
	assert.ErrorContains(suite.T(), err, "connection refused")
	assert.False(suite.T(), apperrors.IsAlreadyExists(err))
}

func TestSubDomainFor(t *testing.T) {
	assert.Equal(t, "acme.onboarding.test", service.SubDomainFor("ACME", "onboarding.test"))
}

func TestRegistrationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RegistrationServiceTestSuite))
}
