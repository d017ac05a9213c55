package service_test

import (
	"testing"

	"calyx-crm-backend/internal/database/models"
	apperrors "calyx-crm-backend/internal/errors"
	"calyx-crm-backend/internal/mocks"
	"calyx-crm-backend/internal/repository"
	"calyx-crm-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func stagesFixture() []models.PipelineStage {
	return []models.PipelineStage{
		{Name: "Prospecting", Probability: 10, SortOrder: 1, IsActive: true},
		{Name: "Qualification", Probability: 25, SortOrder: 2, IsActive: true},
		{Name: "Proposal", Probability: 50, SortOrder: 3, IsActive: true},
		{Name: "Negotiation", Probability: 75, SortOrder: 4, IsActive: true},
		{Name: "Closed Won", Probability: 100, SortOrder: 5, IsActive: true},
	}
}

func TestResolveStageProbability(t *testing.T) {
	stages := stagesFixture()

	testCases := []struct {
		name      string
		stages    []models.PipelineStage
		stageName string
		expected  int
	}{
		{
			name:      "Exact match",
			stages:    stages,
			stageName: "Negotiation",
			expected:  75,
		},
		{
			name:      "First stage",
			stages:    stages,
			stageName: "Prospecting",
			expected:  10,
		},
		{
			name:      "Unknown stage resolves to zero",
			stages:    stages,
			stageName: "Discovery",
			expected:  0,
		},
		{
			name:      "Matching is case-sensitive",
			stages:    stages,
			stageName: "negotiation",
			expected:  0,
		},
		{
			name: "First match wins on duplicate names",
			stages: []models.PipelineStage{
				{Name: "Qualification", Probability: 25},
				{Name: "Qualification", Probability: 60},
			},
			stageName: "Qualification",
			expected:  25,
		},
		{
			name:      "Empty stage list",
			stages:    []models.PipelineStage{},
			stageName: "Prospecting",
			expected:  0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, service.ResolveStageProbability(tc.stages, tc.stageName))
		})
	}
}

// PipelineServiceTestSuite defines the test suite for PipelineService
type PipelineServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockRepo        *mocks.MockPipelineRepositoryInterface
	mockOppRepo     *mocks.MockOpportunityRepositoryInterface
	pipelineService *service.PipelineService
}

// SetupTest sets up the test suite
func (suite *PipelineServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockPipelineRepositoryInterface(suite.ctrl)
	suite.mockOppRepo = mocks.NewMockOpportunityRepositoryInterface(suite.ctrl)
	suite.pipelineService = service.NewPipelineService(suite.mockRepo, suite.mockOppRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *PipelineServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PipelineServiceTestSuite) TestCreate() {
	callerID := uuid.New()
	req := &service.CreatePipelineRequest{
		Name:        "Enterprise Sales",
		Description: "Enterprise deal flow",
		Stages: []service.StageInput{
			{Name: "Prospecting", Probability: 10},
			{Name: "Closed Won", Probability: 100},
		},
	}

	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *models.Pipeline) error {
		suite.Equal("Enterprise Sales", p.Name)
		suite.Equal(callerID, p.CreatedBy)
		suite.True(p.IsActive)
		suite.Require().Len(p.Stages, 2)
		suite.Equal("#2196F3", p.Stages[0].Color)
		suite.Equal(1, p.Stages[0].SortOrder)
		suite.Equal(2, p.Stages[1].SortOrder)
		suite.True(p.Stages[0].IsActive)
		return nil
	})

	pipeline, err := suite.pipelineService.Create(req, callerID)
	suite.NoError(err)
	suite.NotNil(pipeline)
}

func (suite *PipelineServiceTestSuite) TestCreateValidationFailure() {
	req := &service.CreatePipelineRequest{
		Name:   "",
		Stages: []service.StageInput{{Name: "Prospecting", Probability: 10}},
	}

	pipeline, err := suite.pipelineService.Create(req, uuid.New())
	suite.Error(err)
	suite.Nil(pipeline)
	suite.Contains(err.Error(), "validation failed")
}

func (suite *PipelineServiceTestSuite) TestCreateRequiresStages() {
	req := &service.CreatePipelineRequest{Name: "No stages"}

	pipeline, err := suite.pipelineService.Create(req, uuid.New())
	suite.Error(err)
	suite.Nil(pipeline)
}

func (suite *PipelineServiceTestSuite) TestGetByIDGroupsOpportunitiesByStage() {
	pipelineID := uuid.New()
	pipeline := &models.Pipeline{
		Name:   "Default",
		Stages: stagesFixture(),
	}
	pipeline.ID = pipelineID

	open := []models.Opportunity{
		{Stage: "Prospecting", Value: 100},
		{Stage: "Prospecting", Value: 200},
		{Stage: "Negotiation", Value: 900},
	}

	suite.mockRepo.EXPECT().GetWithCreator(pipelineID).Return(pipeline, nil)
	suite.mockOppRepo.EXPECT().List(gomock.Any()).Return(open, int64(3), nil)

	detail, err := suite.pipelineService.GetByID(pipelineID)
	suite.Require().NoError(err)
	suite.Equal(3, detail.TotalOpportunities)
	suite.Require().Len(detail.StageData, 5)
	suite.Len(detail.StageData[0].Opportunities, 2)
	suite.Len(detail.StageData[3].Opportunities, 1)
	// stages with no open opportunities still render as empty columns
	suite.NotNil(detail.StageData[1].Opportunities)
	suite.Len(detail.StageData[1].Opportunities, 0)
}

func (suite *PipelineServiceTestSuite) TestGetByIDNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetWithCreator(id).Return(nil, gorm.ErrRecordNotFound)

	detail, err := suite.pipelineService.GetByID(id)
	suite.Nil(detail)
	suite.ErrorIs(err, apperrors.ErrPipelineNotFound)
}

func (suite *PipelineServiceTestSuite) TestUpdateReplacesStages() {
	id := uuid.New()
	existing := &models.Pipeline{Name: "Old name"}
	existing.ID = id
	updated := &models.Pipeline{Name: "New name"}
	updated.ID = id

	newName := "New name"
	req := &service.UpdatePipelineRequest{
		Name:   &newName,
		Stages: []service.StageInput{{Name: "Single", Probability: 50}},
	}

	suite.mockRepo.EXPECT().GetByID(id).Return(existing, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(p *models.Pipeline) error {
		suite.Equal("New name", p.Name)
		return nil
	})
	suite.mockRepo.EXPECT().ReplaceStages(id, gomock.Any()).DoAndReturn(func(_ uuid.UUID, stages []models.PipelineStage) error {
		suite.Require().Len(stages, 1)
		suite.Equal("Single", stages[0].Name)
		suite.Equal(50, stages[0].Probability)
		return nil
	})
	suite.mockRepo.EXPECT().GetByID(id).Return(updated, nil)

	pipeline, err := suite.pipelineService.Update(id, req)
	suite.NoError(err)
	suite.Equal("New name", pipeline.Name)
}

func (suite *PipelineServiceTestSuite) TestUpdatePreservesStagesWhenOmitted() {
	id := uuid.New()
	existing := &models.Pipeline{Name: "Keep stages"}
	existing.ID = id

	desc := "refreshed"
	req := &service.UpdatePipelineRequest{Description: &desc}

	suite.mockRepo.EXPECT().GetByID(id).Return(existing, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil)
	// no ReplaceStages call expected
	suite.mockRepo.EXPECT().GetByID(id).Return(existing, nil)

	_, err := suite.pipelineService.Update(id, req)
	suite.NoError(err)
}

func (suite *PipelineServiceTestSuite) TestListOpportunities() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(&models.Pipeline{}, nil)
	suite.mockOppRepo.EXPECT().List(gomock.Any()).DoAndReturn(func(f repository.OpportunityFilter) ([]models.Opportunity, int64, error) {
		suite.Require().NotNil(f.PipelineID)
		suite.Equal(id, *f.PipelineID)
		suite.Equal("Negotiation", f.Stage)
		suite.Equal("open", f.Status)
		suite.Equal(20, f.Limit)
		suite.Equal(20, f.Offset)
		return []models.Opportunity{{Title: "Renewal"}}, 21, nil
	})

	opps, pagination, err := suite.pipelineService.ListOpportunities(id, "Negotiation", "open", 2, 20)
	suite.Require().NoError(err)
	suite.Len(opps, 1)
	suite.Equal(2, pagination.Current)
	suite.Equal(int64(21), pagination.Total)
}

func (suite *PipelineServiceTestSuite) TestListOpportunitiesPipelineNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, _, err := suite.pipelineService.ListOpportunities(id, "", "open", 1, 20)
	suite.ErrorIs(err, apperrors.ErrPipelineNotFound)
}

func (suite *PipelineServiceTestSuite) TestDelete() {
	id := uuid.New()
	pipeline := &models.Pipeline{Name: "Empty"}
	pipeline.ID = id

	suite.mockRepo.EXPECT().GetByID(id).Return(pipeline, nil)
	suite.mockOppRepo.EXPECT().CountByPipeline(id).Return(int64(0), nil)
	suite.mockRepo.EXPECT().Delete(id).Return(nil)

	suite.NoError(suite.pipelineService.Delete(id))
}

func (suite *PipelineServiceTestSuite) TestDeleteBlockedByOpportunities() {
	id := uuid.New()
	pipeline := &models.Pipeline{Name: "Busy"}
	pipeline.ID = id

	suite.mockRepo.EXPECT().GetByID(id).Return(pipeline, nil)
	suite.mockOppRepo.EXPECT().CountByPipeline(id).Return(int64(4), nil)

	err := suite.pipelineService.Delete(id)
	suite.ErrorIs(err, apperrors.ErrPipelineHasOpportunities)
	suite.True(apperrors.IsConflict(err))
}

func (suite *PipelineServiceTestSuite) TestDeleteNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	err := suite.pipelineService.Delete(id)
	suite.ErrorIs(err, apperrors.ErrPipelineNotFound)
}

func (suite *PipelineServiceTestSuite) TestStatsOverview() {
	stats := []repository.StageStat{
		{Stage: "Prospecting", Count: 2, TotalValue: 300, WeightedValue: 30},
		{Stage: "Negotiation", Count: 1, TotalValue: 900, WeightedValue: 675},
	}

	suite.mockOppRepo.EXPECT().StageStats(gomock.Any()).Return(stats, nil)
	suite.mockOppRepo.EXPECT().Count(gomock.Any()).Return(int64(3), nil)
	suite.mockOppRepo.EXPECT().SumValues(gomock.Any()).Return(1200.0, 705.0, nil)

	overview, err := suite.pipelineService.StatsOverview(nil, nil)
	suite.Require().NoError(err)
	suite.Equal(int64(3), overview.TotalOpportunities)
	suite.Equal(1200.0, overview.TotalValue)
	suite.Len(overview.StageStats, 2)
}

// TestPipelineServiceTestSuite runs the test suite
func TestPipelineServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PipelineServiceTestSuite))
}
