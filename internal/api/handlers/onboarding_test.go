package handlers

import (
	"errors"
	"fmt"
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

type OnboardingHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockOnboardingServiceInterface
	handler     *OnboardingHandler
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *OnboardingHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockOnboardingServiceInterface(suite.ctrl)
	suite.handler = NewOnboardingHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.POST("/api/v1/enterprises/:id/:step", suite.handler.ResumeStep)
}

func (suite *OnboardingHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OnboardingHandlerTestSuite) TestResumeStep_MapsEveryStep() {
	for step, jobType := range stepJobTypes {
		suite.Run(step, func() {
			id := uuid.New()
			suite.mockService.EXPECT().Resume(gomock.Any(), id, jobType).Return(&service.ResumeResponse{
				EnterpriseID: id,
				JobID:        uuid.New(),
				JobType:      jobType,
				Message:      fmt.Sprintf("%s step scheduled", jobType),
			}, nil)

			recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/enterprises/"+id.String()+"/"+step, nil)

			assert.Equal(suite.T(), http.StatusAccepted, recorder.Code)
			var resp service.ResumeResponse
			testutils.ParseJSONResponse(suite.T(), recorder, &resp)
			assert.Equal(suite.T(), jobType, resp.JobType)
			assert.Equal(suite.T(), id, resp.EnterpriseID)
		})
	}
}

func (suite *OnboardingHandlerTestSuite) TestResumeStep_CertificateReportsRepeats() {
	id := uuid.New()
	suite.mockService.EXPECT().Resume(gomock.Any(), id, models.JobTypeCertificate).Return(&service.ResumeResponse{
		EnterpriseID: id,
		JobType:      models.JobTypeCertificate,
		RepeatCount:  3,
	}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/enterprises/"+id.String()+"/certificate", nil)

	assert.Equal(suite.T(), http.StatusAccepted, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), `"repeat_count":3`)
}

func (suite *OnboardingHandlerTestSuite) TestResumeStep_InvalidID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/enterprises/not-a-uuid/did", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid enterprise ID")
}

func (suite *OnboardingHandlerTestSuite) TestResumeStep_UnknownStep() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/enterprises/"+uuid.NewString()+"/teleport", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Unknown onboarding step")
}

func (suite *OnboardingHandlerTestSuite) TestResumeStep_EnterpriseNotFound() {
	suite.mockService.EXPECT().Resume(gomock.Any(), gomock.Any(), models.JobTypeIngress).Return(nil, apperrors.ErrEnterpriseNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/enterprises/"+uuid.NewString()+"/ingress", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "enterprise not found")
}

func (suite *OnboardingHandlerTestSuite) TestResumeStep_ScheduleFailure() {
	suite.mockService.EXPECT().Resume(gomock.Any(), gomock.Any(), models.JobTypeDID).Return(nil, errors.New("db down"))

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/enterprises/"+uuid.NewString()+"/did", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Failed to schedule step")
}

func TestOnboardingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OnboardingHandlerTestSuite))
}
