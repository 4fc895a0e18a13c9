package routes

import (
	"net/http"
	"testing"
	"time"

	"onboarding-backend/internal/auth"
	"onboarding-backend/internal/config"
	"onboarding-backend/internal/database/models"
	"onboarding-backend/internal/mocks"
	"onboarding-backend/internal/service"
	"onboarding-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoutesTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	registration *mocks.MockRegistrationServiceInterface
	enterprises  *mocks.MockEnterpriseServiceInterface
	onboarding   *mocks.MockOnboardingServiceInterface
	authService  *auth.AuthService
	httpSuite    *testutils.HTTPTestSuite
}

func (suite *RoutesTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.registration = mocks.NewMockRegistrationServiceInterface(suite.ctrl)
	suite.enterprises = mocks.NewMockEnterpriseServiceInterface(suite.ctrl)
	suite.onboarding = mocks.NewMockOnboardingServiceInterface(suite.ctrl)

	authService, err := auth.NewAuthService(&auth.AuthConfig{
		JWTSecret: "routes-secret",
		TokenTTL:  time.Hour,
		APIKey:    "admin-key",
	})
	require.NoError(suite.T(), err)
	suite.authService = authService

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router = SetupRoutes(&config.Config{AllowedOrigins: []string{"*"}}, &Services{
		Registration: suite.registration,
		Enterprises:  suite.enterprises,
		Onboarding:   suite.onboarding,
		Auth:         suite.authService,
	})
}

func (suite *RoutesTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RoutesTestSuite) bearer() map[string]string {
	token, err := suite.authService.GenerateJWT()
	require.NoError(suite.T(), err)
	return map[string]string{"Authorization": "Bearer " + token}
}

func (suite *RoutesTestSuite) TestOperatorRoutesRequireToken() {
	id := uuid.New().String()
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/enterprises"},
		{http.MethodGet, "/api/v1/enterprises/" + id},
		{http.MethodGet, "/api/v1/enterprises/" + id + "/jobs"},
		{http.MethodGet, "/api/v1/enterprises/" + id + "/credentials"},
		{http.MethodPost, "/api/v1/enterprises/" + id + "/certificate"},
		{http.MethodGet, "/api/v1/auth/validate"},
	}

	for _, route := range routes {
		suite.Run(route.method+" "+route.path, func() {
			recorder := suite.httpSuite.MakeRequest(route.method, route.path, nil)
			testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "Authorization header is required")
		})
	}
}

func (suite *RoutesTestSuite) TestOperatorRoutesWithToken() {
	suite.enterprises.EXPECT().GetAll(1, 20).Return(&service.EnterpriseListResponse{Page: 1, PageSize: 20}, nil)

	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/v1/enterprises", nil, suite.bearer())

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *RoutesTestSuite) TestResumeRouteDispatchesStep() {
	id := uuid.New()
	suite.onboarding.EXPECT().Resume(gomock.Any(), id, models.JobTypeIngress).
		Return(&service.ResumeResponse{EnterpriseID: id, JobID: uuid.New(), JobType: models.JobTypeIngress}, nil)

	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/enterprises/"+id.String()+"/ingress", nil, suite.bearer())

	assert.Equal(suite.T(), http.StatusAccepted, recorder.Code)
}

func (suite *RoutesTestSuite) TestPublicRoutes() {
	suite.Run("token exchange", func() {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/auth/token", map[string]string{"api_key": "admin-key"})
		assert.Equal(suite.T(), http.StatusOK, recorder.Code)

		var resp auth.TokenResponse
		testutils.ParseJSONResponse(suite.T(), recorder, &resp)
		assert.NotEmpty(suite.T(), resp.AccessToken)
	})

	suite.Run("registration", func() {
		suite.registration.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(&service.EnterpriseResponse{ID: uuid.New()}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/register", map[string]string{
			"legalName":               "Acme Corporation",
			"email":                   "admin@acme.example",
			"subDomainName":           "acme",
			"legalRegistrationNumber": "DE123456789",
			"legalRegistrationType":   "vatID",
			"headquarterAddress":      "DE-BY",
			"legalAddress":            "DE-BY",
			"connectionId":            "conn-1",
		})
		assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
	})

	suite.Run("well-known", func() {
		suite.enterprises.EXPECT().GetWellKnownFile(gomock.Any(), "acme.onboarding.test", "did.json").
			Return([]byte(`{"id":"did:web:acme.onboarding.test"}`), nil)

		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/.well-known/did.json", nil,
			map[string]string{"Host": "acme.onboarding.test"})
		assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	})

	suite.Run("liveness", func() {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/health/live", nil)
		assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	})
}

func (suite *RoutesTestSuite) TestRequestIDEchoed() {
	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/health", nil,
		map[string]string{"X-Request-ID": "req-42"})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Equal(suite.T(), "req-42", recorder.Header().Get("X-Request-ID"))
}

func (suite *RoutesTestSuite) TestUnknownRoute() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/nope", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "Endpoint not found")
}

func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}
