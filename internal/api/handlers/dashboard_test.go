package handlers_test

import (
	"net/http"
	"testing"

	"calyx-crm-backend/internal/api/handlers"
	"calyx-crm-backend/internal/database/models"
	"calyx-crm-backend/internal/logger"
	"calyx-crm-backend/internal/mocks"
	"calyx-crm-backend/internal/service"
	"calyx-crm-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// DashboardHandlerTestSuite defines the test suite for DashboardHandler
type DashboardHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockDashboardServiceInterface
	handler     *handlers.DashboardHandler
	httpSuite   *testutils.HTTPTestSuite
	callerID    uuid.UUID
}

// SetupTest sets up the test suite
func (suite *DashboardHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockDashboardServiceInterface(suite.ctrl)
	suite.handler = handlers.NewDashboardHandler(suite.mockService, logger.New())
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.callerID = uuid.New()

	api := suite.httpSuite.Router.Group("/api", func(c *gin.Context) {
		c.Set("user_id", suite.callerID)
		c.Next()
	})
	api.GET("/dashboard/stats", suite.handler.GetDashboard)
	api.GET("/dashboard/recent-activities", suite.handler.GetRecentActivities)

	// route without the caller middleware, for the unauthenticated case
	suite.httpSuite.Router.GET("/bare/dashboard", suite.handler.GetDashboard)
}

// TearDownTest cleans up after each test
func (suite *DashboardHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DashboardHandlerTestSuite) TestGetDashboard() {
	overview := &service.DashboardOverview{
		OpenOpportunities: 7,
		TotalValue:        14000,
		WeightedValue:     6100.25,
		ClosingIn30Days:   2,
		ClosingIn60Days:   5,
		PendingActivities: 3,
		RecentActivities:  []models.Activity{{Subject: "Follow up"}},
	}

	suite.mockService.EXPECT().Overview(suite.callerID).Return(overview, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/dashboard/stats", nil)

	var resp struct {
		Status string                    `json:"status"`
		Data   service.DashboardOverview `json:"data"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Equal(int64(7), resp.Data.OpenOpportunities)
	suite.Equal(6100.25, resp.Data.WeightedValue)
	suite.Len(resp.Data.RecentActivities, 1)
}

func (suite *DashboardHandlerTestSuite) TestGetRecentActivities() {
	activities := []models.Activity{{Subject: "Demo prep"}, {Subject: "Call back"}}

	suite.mockService.EXPECT().RecentActivities(suite.callerID, 10).Return(activities, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/dashboard/recent-activities", nil)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Activities []models.Activity `json:"activities"`
		} `json:"data"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Len(resp.Data.Activities, 2)
	suite.Equal("Demo prep", resp.Data.Activities[0].Subject)
}

func (suite *DashboardHandlerTestSuite) TestGetRecentActivitiesCustomLimit() {
	suite.mockService.EXPECT().RecentActivities(suite.callerID, 3).Return([]models.Activity{}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/dashboard/recent-activities?limit=3", nil)
	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *DashboardHandlerTestSuite) TestGetDashboardUnauthenticated() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/bare/dashboard", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "Authentication required")
}

// TestDashboardHandlerTestSuite runs the test suite
func TestDashboardHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}
