package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"onboarding-backend/internal/database/models"
	apperrors "onboarding-backend/internal/errors"
	"onboarding-backend/internal/mocks"
	"onboarding-backend/internal/service"
	"onboarding-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RegistrationHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockRegistrationServiceInterface
	handler     *RegistrationHandler
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *RegistrationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockRegistrationServiceInterface(suite.ctrl)
	suite.handler = NewRegistrationHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.POST("/api/v1/register", suite.handler.Register)
}

func (suite *RegistrationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func registrationBody() map[string]interface{} {
	return map[string]interface{}{
		"legalName":               "Acme Corporation",
		"email":                   "admin@acme.example",
		"subDomainName":           "acme",
		"legalRegistrationNumber": "DE123456789",
		"legalRegistrationType":   "vatID",
		"headquarterAddress":      "DE-BY",
		"legalAddress":            "DE-BY",
		"connectionId":            "conn-1",
	}
}

func (suite *RegistrationHandlerTestSuite) TestRegister() {
	id := uuid.New()
	suite.mockService.EXPECT().Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *service.RegisterEnterpriseRequest) (*service.EnterpriseResponse, error) {
			assert.Equal(suite.T(), "Acme Corporation", req.LegalName)
			assert.Equal(suite.T(), "acme", req.SubDomainName)
			assert.Equal(suite.T(), "conn-1", req.ConnectionID)
			return &service.EnterpriseResponse{
				ID:            id,
				LegalName:     req.LegalName,
				SubDomainName: "acme.onboarding.test",
				Status:        models.StatusStarted,
				StatusOrdinal: 1,
			}, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/register", registrationBody())

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
	var resp service.EnterpriseResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &resp)
	assert.Equal(suite.T(), id, resp.ID)
	assert.Equal(suite.T(), models.StatusStarted, resp.Status)
}

func (suite *RegistrationHandlerTestSuite) TestRegister_Errors() {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"duplicate", apperrors.ErrEmailExists, http.StatusConflict, "already exists"},
		{"validation", apperrors.NewValidationError("Email", "failed on the 'email' rule"), http.StatusBadRequest, "validation error"},
		{"internal", errors.New("pcm unavailable"), http.StatusInternalServerError, "Failed to register enterprise"},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.mockService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/register", registrationBody())
			testutils.AssertErrorResponse(suite.T(), recorder, tc.status, tc.message)
		})
	}
}

func (suite *RegistrationHandlerTestSuite) TestRegister_MalformedBody() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/register", "not an object")
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid request body")
}

func TestRegistrationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RegistrationHandlerTestSuite))
}
