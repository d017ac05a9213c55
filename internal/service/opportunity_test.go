package service_test

import (
	"testing"
	"time"

	"calyx-crm-backend/internal/database/models"
	apperrors "calyx-crm-backend/internal/errors"
	"calyx-crm-backend/internal/mocks"
	"calyx-crm-backend/internal/repository"
	"calyx-crm-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// OpportunityServiceTestSuite defines the test suite for OpportunityService
type OpportunityServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockRepo           *mocks.MockOpportunityRepositoryInterface
	mockPipelineRepo   *mocks.MockPipelineRepositoryInterface
	mockCustomerRepo   *mocks.MockCustomerRepositoryInterface
	opportunityService *service.OpportunityService
}

// SetupTest sets up the test suite
func (suite *OpportunityServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockOpportunityRepositoryInterface(suite.ctrl)
	suite.mockPipelineRepo = mocks.NewMockPipelineRepositoryInterface(suite.ctrl)
	suite.mockCustomerRepo = mocks.NewMockCustomerRepositoryInterface(suite.ctrl)
	suite.opportunityService = service.NewOpportunityService(
		suite.mockRepo,
		suite.mockPipelineRepo,
		suite.mockCustomerRepo,
		validator.New(),
	)
}

// TearDownTest cleans up after each test
func (suite *OpportunityServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OpportunityServiceTestSuite) pipelineWithStages(id uuid.UUID) *models.Pipeline {
	pipeline := &models.Pipeline{Name: "Default", Stages: stagesFixture()}
	pipeline.ID = id
	return pipeline
}

func (suite *OpportunityServiceTestSuite) TestCreateResolvesProbability() {
	callerID := uuid.New()
	customerID := uuid.New()
	pipelineID := uuid.New()

	req := &service.CreateOpportunityRequest{
		Title:      "Q3 renewal",
		CustomerID: customerID,
		PipelineID: pipelineID,
		Stage:      "Qualification",
		Value:      1000,
	}

	suite.mockPipelineRepo.EXPECT().GetByID(pipelineID).Return(suite.pipelineWithStages(pipelineID), nil)
	suite.mockCustomerRepo.EXPECT().GetByID(customerID).Return(&models.Customer{Name: "Acme"}, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(o *models.Opportunity) error {
		suite.Equal(25, o.Probability)
		suite.Equal(250.0, o.WeightedValue())
		suite.Equal("USD", o.Currency)
		suite.Equal(models.SourceOther, o.Source)
		suite.Equal(models.OpportunityStatusOpen, o.Status)
		suite.Equal(callerID, o.SalespersonID)
		suite.Equal(callerID, o.CreatedBy)
		suite.JSONEq("[]", string(o.Tags))
		o.ID = uuid.New()
		return nil
	})
	suite.mockRepo.EXPECT().GetWithRelations(gomock.Any()).DoAndReturn(func(id uuid.UUID) (*models.Opportunity, error) {
		o := &models.Opportunity{Title: "Q3 renewal", Probability: 25}
		o.ID = id
		return o, nil
	})

	opportunity, err := suite.opportunityService.Create(req, callerID)
	suite.Require().NoError(err)
	suite.Equal(25, opportunity.Probability)
}

func (suite *OpportunityServiceTestSuite) TestCreateUnknownStageGetsZeroProbability() {
	callerID := uuid.New()
	customerID := uuid.New()
	pipelineID := uuid.New()

	req := &service.CreateOpportunityRequest{
		Title:      "Mystery deal",
		CustomerID: customerID,
		PipelineID: pipelineID,
		Stage:      "Discovery",
		Value:      5000,
	}

	suite.mockPipelineRepo.EXPECT().GetByID(pipelineID).Return(suite.pipelineWithStages(pipelineID), nil)
	suite.mockCustomerRepo.EXPECT().GetByID(customerID).Return(&models.Customer{Name: "Acme"}, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(o *models.Opportunity) error {
		suite.Equal(0, o.Probability)
		suite.Equal(0.0, o.WeightedValue())
		return nil
	})
	suite.mockRepo.EXPECT().GetWithRelations(gomock.Any()).Return(&models.Opportunity{}, nil)

	_, err := suite.opportunityService.Create(req, callerID)
	suite.NoError(err)
}

func (suite *OpportunityServiceTestSuite) TestCreatePipelineNotFound() {
	pipelineID := uuid.New()
	req := &service.CreateOpportunityRequest{
		Title:      "Orphan",
		CustomerID: uuid.New(),
		PipelineID: pipelineID,
		Stage:      "Prospecting",
	}

	suite.mockPipelineRepo.EXPECT().GetByID(pipelineID).Return(nil, gorm.ErrRecordNotFound)

	opportunity, err := suite.opportunityService.Create(req, uuid.New())
	suite.Nil(opportunity)
	suite.ErrorIs(err, apperrors.ErrPipelineNotFound)
}

func (suite *OpportunityServiceTestSuite) TestCreateCustomerNotFound() {
	customerID := uuid.New()
	pipelineID := uuid.New()
	req := &service.CreateOpportunityRequest{
		Title:      "No customer",
		CustomerID: customerID,
		PipelineID: pipelineID,
		Stage:      "Prospecting",
	}

	suite.mockPipelineRepo.EXPECT().GetByID(pipelineID).Return(suite.pipelineWithStages(pipelineID), nil)
	suite.mockCustomerRepo.EXPECT().GetByID(customerID).Return(nil, gorm.ErrRecordNotFound)

	opportunity, err := suite.opportunityService.Create(req, uuid.New())
	suite.Nil(opportunity)
	suite.ErrorIs(err, apperrors.ErrCustomerNotFound)
}

func (suite *OpportunityServiceTestSuite) TestUpdateStageChangeReResolvesProbability() {
	callerID := uuid.New()
	oppID := uuid.New()
	pipelineID := uuid.New()

	existing := &models.Opportunity{
		Title:         "Deal",
		PipelineID:    pipelineID,
		Stage:         "Qualification",
		Probability:   25,
		Value:         1000,
		SalespersonID: callerID,
		CreatedBy:     callerID,
		Status:        models.OpportunityStatusOpen,
	}
	existing.ID = oppID

	newStage := "Negotiation"
	req := &service.UpdateOpportunityRequest{Stage: &newStage}

	suite.mockRepo.EXPECT().GetByID(oppID).Return(existing, nil)
	suite.mockPipelineRepo.EXPECT().GetByID(pipelineID).Return(suite.pipelineWithStages(pipelineID), nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(o *models.Opportunity) error {
		suite.Equal("Negotiation", o.Stage)
		suite.Equal(75, o.Probability)
		return nil
	})
	suite.mockRepo.EXPECT().GetWithRelations(oppID).Return(existing, nil)

	_, err := suite.opportunityService.Update(oppID, req, callerID)
	suite.NoError(err)
}

func (suite *OpportunityServiceTestSuite) TestUpdateSameStageSkipsReResolution() {
	callerID := uuid.New()
	oppID := uuid.New()

	existing := &models.Opportunity{
		Stage:         "Qualification",
		Probability:   25,
		SalespersonID: callerID,
		CreatedBy:     callerID,
	}
	existing.ID = oppID

	sameStage := "Qualification"
	req := &service.UpdateOpportunityRequest{Stage: &sameStage}

	suite.mockRepo.EXPECT().GetByID(oppID).Return(existing, nil)
	// no pipeline lookup expected
	suite.mockRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(o *models.Opportunity) error {
		suite.Equal(25, o.Probability)
		return nil
	})
	suite.mockRepo.EXPECT().GetWithRelations(oppID).Return(existing, nil)

	_, err := suite.opportunityService.Update(oppID, req, callerID)
	suite.NoError(err)
}

func (suite *OpportunityServiceTestSuite) TestUpdateWonStampsActualCloseDateOnce() {
	callerID := uuid.New()
	oppID := uuid.New()

	existing := &models.Opportunity{
		Stage:         "Closed Won",
		Status:        models.OpportunityStatusOpen,
		SalespersonID: callerID,
		CreatedBy:     callerID,
	}
	existing.ID = oppID

	won := "won"
	req := &service.UpdateOpportunityRequest{Status: &won}

	suite.mockRepo.EXPECT().GetByID(oppID).Return(existing, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(o *models.Opportunity) error {
		suite.Equal(models.OpportunityStatusWon, o.Status)
		suite.Require().NotNil(o.ActualCloseDate)
		suite.WithinDuration(time.Now(), *o.ActualCloseDate, time.Minute)
		return nil
	})
	suite.mockRepo.EXPECT().GetWithRelations(oppID).Return(existing, nil)

	_, err := suite.opportunityService.Update(oppID, req, callerID)
	suite.NoError(err)
}

func (suite *OpportunityServiceTestSuite) TestUpdateClosedAgainKeepsOriginalCloseDate() {
	callerID := uuid.New()
	oppID := uuid.New()
	closedAt := time.Now().AddDate(0, 0, -7)

	existing := &models.Opportunity{
		Status:          models.OpportunityStatusWon,
		ActualCloseDate: &closedAt,
		SalespersonID:   callerID,
		CreatedBy:       callerID,
	}
	existing.ID = oppID

	lost := "lost"
	req := &service.UpdateOpportunityRequest{Status: &lost}

	suite.mockRepo.EXPECT().GetByID(oppID).Return(existing, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(o *models.Opportunity) error {
		suite.Equal(models.OpportunityStatusLost, o.Status)
		suite.Require().NotNil(o.ActualCloseDate)
		suite.Equal(closedAt, *o.ActualCloseDate)
		return nil
	})
	suite.mockRepo.EXPECT().GetWithRelations(oppID).Return(existing, nil)

	_, err := suite.opportunityService.Update(oppID, req, callerID)
	suite.NoError(err)
}

func (suite *OpportunityServiceTestSuite) TestUpdateRejectsNonOwner() {
	oppID := uuid.New()
	existing := &models.Opportunity{
		SalespersonID: uuid.New(),
		CreatedBy:     uuid.New(),
	}
	existing.ID = oppID

	title := "Hijacked"
	req := &service.UpdateOpportunityRequest{Title: &title}

	suite.mockRepo.EXPECT().GetByID(oppID).Return(existing, nil)

	opportunity, err := suite.opportunityService.Update(oppID, req, uuid.New())
	suite.Nil(opportunity)
	suite.ErrorIs(err, apperrors.ErrNotOpportunityOwner)
	suite.True(apperrors.IsAuthorization(err))
}

func (suite *OpportunityServiceTestSuite) TestUpdateCreatorMayModify() {
	creatorID := uuid.New()
	oppID := uuid.New()

	existing := &models.Opportunity{
		SalespersonID: uuid.New(),
		CreatedBy:     creatorID,
	}
	existing.ID = oppID

	title := "Renamed by creator"
	req := &service.UpdateOpportunityRequest{Title: &title}

	suite.mockRepo.EXPECT().GetByID(oppID).Return(existing, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil)
	suite.mockRepo.EXPECT().GetWithRelations(oppID).Return(existing, nil)

	_, err := suite.opportunityService.Update(oppID, req, creatorID)
	suite.NoError(err)
}

func (suite *OpportunityServiceTestSuite) TestUpdatePipelineChangeResolvesAgainstNewPipeline() {
	callerID := uuid.New()
	oppID := uuid.New()
	oldPipelineID := uuid.New()
	newPipelineID := uuid.New()

	existing := &models.Opportunity{
		PipelineID:    oldPipelineID,
		Stage:         "Prospecting",
		Probability:   10,
		SalespersonID: callerID,
		CreatedBy:     callerID,
	}
	existing.ID = oppID

	newPipeline := &models.Pipeline{
		Name: "Alternate",
		Stages: []models.PipelineStage{
			{Name: "Intake", Probability: 5},
			{Name: "Committed", Probability: 90},
		},
	}
	newPipeline.ID = newPipelineID

	stage := "Committed"
	req := &service.UpdateOpportunityRequest{
		PipelineID: &newPipelineID,
		Stage:      &stage,
	}

	suite.mockRepo.EXPECT().GetByID(oppID).Return(existing, nil)
	// once to validate the pipeline switch, once to resolve the new stage
	suite.mockPipelineRepo.EXPECT().GetByID(newPipelineID).Return(newPipeline, nil).Times(2)
	suite.mockRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(o *models.Opportunity) error {
		suite.Equal(newPipelineID, o.PipelineID)
		suite.Equal("Committed", o.Stage)
		suite.Equal(90, o.Probability)
		return nil
	})
	suite.mockRepo.EXPECT().GetWithRelations(oppID).Return(existing, nil)

	_, err := suite.opportunityService.Update(oppID, req, callerID)
	suite.NoError(err)
}

func (suite *OpportunityServiceTestSuite) TestUpdateNotFound() {
	oppID := uuid.New()
	suite.mockRepo.EXPECT().GetByID(oppID).Return(nil, gorm.ErrRecordNotFound)

	title := "Gone"
	opportunity, err := suite.opportunityService.Update(oppID, &service.UpdateOpportunityRequest{Title: &title}, uuid.New())
	suite.Nil(opportunity)
	suite.ErrorIs(err, apperrors.ErrOpportunityNotFound)
}

func (suite *OpportunityServiceTestSuite) TestDelete() {
	callerID := uuid.New()
	oppID := uuid.New()
	existing := &models.Opportunity{SalespersonID: callerID, CreatedBy: callerID}
	existing.ID = oppID

	suite.mockRepo.EXPECT().GetByID(oppID).Return(existing, nil)
	suite.mockRepo.EXPECT().Delete(oppID).Return(nil)

	suite.NoError(suite.opportunityService.Delete(oppID, callerID))
}

func (suite *OpportunityServiceTestSuite) TestDeleteRejectsNonOwner() {
	oppID := uuid.New()
	existing := &models.Opportunity{SalespersonID: uuid.New(), CreatedBy: uuid.New()}
	existing.ID = oppID

	suite.mockRepo.EXPECT().GetByID(oppID).Return(existing, nil)

	err := suite.opportunityService.Delete(oppID, uuid.New())
	suite.ErrorIs(err, apperrors.ErrNotOpportunityOwner)
}

func (suite *OpportunityServiceTestSuite) TestList() {
	opportunities := []models.Opportunity{{Title: "One"}, {Title: "Two"}}

	suite.mockRepo.EXPECT().List(gomock.Any()).DoAndReturn(func(f repository.OpportunityFilter) ([]models.Opportunity, int64, error) {
		suite.Equal(20, f.Limit)
		suite.Equal(20, f.Offset)
		return opportunities, int64(42), nil
	})

	result, pagination, err := suite.opportunityService.List(repository.OpportunityFilter{}, 2, 20)
	suite.Require().NoError(err)
	suite.Len(result, 2)
	suite.Equal(2, pagination.Current)
	suite.Equal(3, pagination.Pages)
	suite.Equal(int64(42), pagination.Total)
}

func (suite *OpportunityServiceTestSuite) TestStatsOverviewRoundsToWholeUnits() {
	callerID := uuid.New()

	suite.mockRepo.EXPECT().StatusStats(gomock.Any()).Return([]repository.StatusStat{}, nil)
	suite.mockRepo.EXPECT().Count(gomock.Any()).Return(int64(2), nil)
	suite.mockRepo.EXPECT().SumValues(gomock.Any()).Return(100.555, 50.555, nil)

	overview, err := suite.opportunityService.StatsOverview(callerID, nil, nil)
	suite.Require().NoError(err)
	suite.Equal(101.0, overview.TotalValue)
	suite.Equal(51.0, overview.WeightedValue)
}

func (suite *OpportunityServiceTestSuite) TestStatsOverviewScopedToCaller() {
	callerID := uuid.New()
	teamID := uuid.New()

	assertFilter := func(f repository.OpportunityFilter) {
		suite.Require().NotNil(f.OwnerID)
		suite.Equal(callerID, *f.OwnerID)
		suite.Require().NotNil(f.TeamID)
		suite.Equal(teamID, *f.TeamID)
	}

	suite.mockRepo.EXPECT().StatusStats(gomock.Any()).DoAndReturn(func(f repository.OpportunityFilter) ([]repository.StatusStat, error) {
		assertFilter(f)
		return []repository.StatusStat{}, nil
	})
	suite.mockRepo.EXPECT().Count(gomock.Any()).DoAndReturn(func(f repository.OpportunityFilter) (int64, error) {
		assertFilter(f)
		return 0, nil
	})
	suite.mockRepo.EXPECT().SumValues(gomock.Any()).DoAndReturn(func(f repository.OpportunityFilter) (float64, float64, error) {
		assertFilter(f)
		return 0, 0, nil
	})

	_, err := suite.opportunityService.StatsOverview(callerID, &teamID, nil)
	suite.NoError(err)
}

// TestOpportunityServiceTestSuite runs the test suite
func TestOpportunityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OpportunityServiceTestSuite))
}
