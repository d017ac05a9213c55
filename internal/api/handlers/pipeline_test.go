package handlers_test

import (
	"net/http"
	"testing"

	"calyx-crm-backend/internal/api/handlers"
	"calyx-crm-backend/internal/database/models"
	apperrors "calyx-crm-backend/internal/errors"
	"calyx-crm-backend/internal/logger"
	"calyx-crm-backend/internal/mocks"
	"calyx-crm-backend/internal/service"
	"calyx-crm-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// PipelineHandlerTestSuite defines the test suite for PipelineHandler
type PipelineHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockPipelineServiceInterface
	handler     *handlers.PipelineHandler
	httpSuite   *testutils.HTTPTestSuite
	callerID    uuid.UUID
}

// SetupTest sets up the test suite
func (suite *PipelineHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockPipelineServiceInterface(suite.ctrl)
	suite.handler = handlers.NewPipelineHandler(suite.mockService, logger.New())
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.callerID = uuid.New()

	api := suite.httpSuite.Router.Group("/api", func(c *gin.Context) {
		c.Set("user_id", suite.callerID)
		c.Next()
	})
	pipeline := api.Group("/pipeline")
	{
		pipeline.GET("/stats/overview", suite.handler.GetPipelineStats)
		pipeline.POST("", suite.handler.CreatePipeline)
		pipeline.GET("", suite.handler.ListPipelines)
		pipeline.GET("/:id", suite.handler.GetPipeline)
		pipeline.GET("/:id/opportunities", suite.handler.ListPipelineOpportunities)
		pipeline.PUT("/:id", suite.handler.UpdatePipeline)
		pipeline.DELETE("/:id", suite.handler.DeletePipeline)
	}
}

// TearDownTest cleans up after each test
func (suite *PipelineHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PipelineHandlerTestSuite) TestCreatePipeline() {
	body := map[string]interface{}{
		"name": "Enterprise Sales",
		"stages": []map[string]interface{}{
			{"name": "Prospecting", "probability": 10},
			{"name": "Closed Won", "probability": 100},
		},
	}

	created := &models.Pipeline{Name: "Enterprise Sales"}
	created.ID = uuid.New()

	suite.mockService.EXPECT().Create(gomock.Any(), suite.callerID).DoAndReturn(
		func(req *service.CreatePipelineRequest, _ uuid.UUID) (*models.Pipeline, error) {
			suite.Equal("Enterprise Sales", req.Name)
			suite.Len(req.Stages, 2)
			return created, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/pipeline", body)

	var resp handlers.Envelope
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &resp)
	suite.Equal("success", resp.Status)
}

func (suite *PipelineHandlerTestSuite) TestCreatePipelineInvalidBody() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/pipeline", "not json")
	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *PipelineHandlerTestSuite) TestGetPipeline() {
	pipelineID := uuid.New()
	detail := &service.PipelineDetail{
		Pipeline:           &models.Pipeline{Name: "Default"},
		TotalOpportunities: 3,
	}

	suite.mockService.EXPECT().GetByID(pipelineID).Return(detail, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/pipeline/"+pipelineID.String(), nil)

	var resp handlers.Envelope
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Equal("success", resp.Status)
}

func (suite *PipelineHandlerTestSuite) TestGetPipelineNotFound() {
	pipelineID := uuid.New()
	suite.mockService.EXPECT().GetByID(pipelineID).Return(nil, apperrors.ErrPipelineNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/pipeline/"+pipelineID.String(), nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "pipeline not found")
}

func (suite *PipelineHandlerTestSuite) TestListPipelines() {
	pipelines := []models.Pipeline{{Name: "Default"}}

	suite.mockService.EXPECT().List(true, 1, 20).Return(pipelines, service.NewPagination(1, 20, 1), nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/pipeline", nil)
	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *PipelineHandlerTestSuite) TestListPipelinesIncludeInactive() {
	suite.mockService.EXPECT().List(false, 1, 20).Return([]models.Pipeline{}, service.NewPagination(1, 20, 0), nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/pipeline?includeInactive=true", nil)
	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *PipelineHandlerTestSuite) TestListPipelineOpportunities() {
	pipelineID := uuid.New()
	opps := []models.Opportunity{{Title: "Expansion deal"}}

	suite.mockService.EXPECT().
		ListOpportunities(pipelineID, "", "open", 1, 20).
		Return(opps, service.NewPagination(1, 20, 1), nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/pipeline/"+pipelineID.String()+"/opportunities", nil)
	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *PipelineHandlerTestSuite) TestListPipelineOpportunitiesStageFilter() {
	pipelineID := uuid.New()

	suite.mockService.EXPECT().
		ListOpportunities(pipelineID, "Negotiation", "won", 1, 20).
		Return([]models.Opportunity{}, service.NewPagination(1, 20, 0), nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/pipeline/"+pipelineID.String()+"/opportunities?stage=Negotiation&status=won", nil)
	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *PipelineHandlerTestSuite) TestUpdatePipeline() {
	pipelineID := uuid.New()
	body := map[string]interface{}{"name": "Renamed"}

	updated := &models.Pipeline{Name: "Renamed"}
	updated.ID = pipelineID

	suite.mockService.EXPECT().Update(pipelineID, gomock.Any()).DoAndReturn(
		func(_ uuid.UUID, req *service.UpdatePipelineRequest) (*models.Pipeline, error) {
			suite.Require().NotNil(req.Name)
			suite.Equal("Renamed", *req.Name)
			suite.Nil(req.Stages)
			return updated, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/pipeline/"+pipelineID.String(), body)
	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *PipelineHandlerTestSuite) TestDeletePipeline() {
	pipelineID := uuid.New()
	suite.mockService.EXPECT().Delete(pipelineID).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/pipeline/"+pipelineID.String(), nil)

	var resp handlers.Envelope
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Equal("Pipeline deleted", resp.Message)
}

func (suite *PipelineHandlerTestSuite) TestDeletePipelineWithOpportunities() {
	pipelineID := uuid.New()
	suite.mockService.EXPECT().Delete(pipelineID).Return(apperrors.ErrPipelineHasOpportunities)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/pipeline/"+pipelineID.String(), nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "")
}

func (suite *PipelineHandlerTestSuite) TestGetPipelineStats() {
	salespersonID := uuid.New()
	stats := &service.PipelineStatsOverview{TotalOpportunities: 4, TotalValue: 8000}

	suite.mockService.EXPECT().StatsOverview(gomock.Any(), gomock.Any()).DoAndReturn(
		func(team, salesperson *uuid.UUID) (*service.PipelineStatsOverview, error) {
			suite.Nil(team)
			suite.Require().NotNil(salesperson)
			suite.Equal(salespersonID, *salesperson)
			return stats, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/pipeline/stats/overview?salespersonId="+salespersonID.String(), nil)
	suite.Equal(http.StatusOK, recorder.Code)
}

// TestPipelineHandlerTestSuite runs the test suite
func TestPipelineHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PipelineHandlerTestSuite))
}
