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

// ActivityServiceTestSuite defines the test suite for ActivityService
type ActivityServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockRepo        *mocks.MockActivityRepositoryInterface
	activityService *service.ActivityService
}

// SetupTest sets up the test suite
func (suite *ActivityServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockActivityRepositoryInterface(suite.ctrl)
	suite.activityService = service.NewActivityService(suite.mockRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *ActivityServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ActivityServiceTestSuite) TestCreateDefaults() {
	callerID := uuid.New()
	req := &service.CreateActivityRequest{
		Type:    "call",
		Subject: "Intro call",
	}

	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *models.Activity) error {
		suite.Equal(models.ActivityStatusPending, a.Status)
		suite.Equal(models.ActivityPriorityMedium, a.Priority)
		suite.Equal(callerID, a.AssignedToID)
		suite.Equal(callerID, a.CreatedBy)
		suite.True(a.IsActive)
		return nil
	})

	activity, err := suite.activityService.Create(req, callerID)
	suite.Require().NoError(err)
	suite.Equal("Intro call", activity.Subject)
}

func (suite *ActivityServiceTestSuite) TestCreateKeepsExplicitAssignee() {
	callerID := uuid.New()
	assigneeID := uuid.New()
	req := &service.CreateActivityRequest{
		Type:         "meeting",
		Subject:      "Demo",
		AssignedToID: &assigneeID,
		Priority:     "urgent",
	}

	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *models.Activity) error {
		suite.Equal(assigneeID, a.AssignedToID)
		suite.Equal(callerID, a.CreatedBy)
		suite.Equal(models.ActivityPriorityUrgent, a.Priority)
		return nil
	})

	_, err := suite.activityService.Create(req, callerID)
	suite.Require().NoError(err)
}

func (suite *ActivityServiceTestSuite) TestCreateRejectsUnknownType() {
	req := &service.CreateActivityRequest{
		Type:    "carrier-pigeon",
		Subject: "Message drop",
	}

	_, err := suite.activityService.Create(req, uuid.New())
	suite.Error(err)
	suite.Contains(err.Error(), "validation failed")
}

func (suite *ActivityServiceTestSuite) TestGetByIDNotFound() {
	activityID := uuid.New()
	suite.mockRepo.EXPECT().GetByID(activityID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.activityService.GetByID(activityID)
	suite.ErrorIs(err, apperrors.ErrActivityNotFound)
}

func (suite *ActivityServiceTestSuite) TestListComputesOffset() {
	suite.mockRepo.EXPECT().List(gomock.Any()).DoAndReturn(
		func(f repository.ActivityFilter) ([]models.Activity, int64, error) {
			suite.Equal(20, f.Limit)
			suite.Equal(40, f.Offset)
			return []models.Activity{}, 41, nil
		})

	_, pagination, err := suite.activityService.List(repository.ActivityFilter{}, 3, 20)
	suite.Require().NoError(err)
	suite.Equal(3, pagination.Current)
	suite.Equal(3, pagination.Pages)
}

func (suite *ActivityServiceTestSuite) TestUpdateCompletionStampsDate() {
	activityID := uuid.New()
	existing := &models.Activity{
		Type:    models.ActivityTypeCall,
		Subject: "Intro call",
		Status:  models.ActivityStatusPending,
	}
	existing.ID = activityID

	completed := "completed"
	req := &service.UpdateActivityRequest{Status: &completed}

	suite.mockRepo.EXPECT().GetByID(activityID).Return(existing, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(a *models.Activity) error {
		suite.Equal(models.ActivityStatusCompleted, a.Status)
		suite.Require().NotNil(a.CompletedDate)
		suite.WithinDuration(time.Now(), *a.CompletedDate, time.Minute)
		return nil
	})

	updated, err := suite.activityService.Update(activityID, req)
	suite.Require().NoError(err)
	suite.NotNil(updated.CompletedDate)
}

func (suite *ActivityServiceTestSuite) TestUpdateKeepsOriginalCompletionDate() {
	activityID := uuid.New()
	original := time.Now().Add(-48 * time.Hour)
	existing := &models.Activity{
		Type:          models.ActivityTypeCall,
		Subject:       "Intro call",
		Status:        models.ActivityStatusCompleted,
		CompletedDate: &original,
	}
	existing.ID = activityID

	completed := "completed"
	req := &service.UpdateActivityRequest{Status: &completed}

	suite.mockRepo.EXPECT().GetByID(activityID).Return(existing, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(a *models.Activity) error {
		suite.Require().NotNil(a.CompletedDate)
		suite.Equal(original, *a.CompletedDate)
		return nil
	})

	_, err := suite.activityService.Update(activityID, req)
	suite.Require().NoError(err)
}

func (suite *ActivityServiceTestSuite) TestUpdatePartial() {
	activityID := uuid.New()
	existing := &models.Activity{
		Type:     models.ActivityTypeCall,
		Subject:  "Intro call",
		Status:   models.ActivityStatusPending,
		Priority: models.ActivityPriorityMedium,
	}
	existing.ID = activityID

	outcome := "Agreed to a follow-up demo"
	req := &service.UpdateActivityRequest{Outcome: &outcome}

	suite.mockRepo.EXPECT().GetByID(activityID).Return(existing, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(a *models.Activity) error {
		suite.Equal(outcome, a.Outcome)
		suite.Equal("Intro call", a.Subject)
		suite.Equal(models.ActivityStatusPending, a.Status)
		suite.Nil(a.CompletedDate)
		return nil
	})

	_, err := suite.activityService.Update(activityID, req)
	suite.Require().NoError(err)
}

func (suite *ActivityServiceTestSuite) TestDelete() {
	activityID := uuid.New()
	suite.mockRepo.EXPECT().Deactivate(activityID).Return(nil)

	suite.NoError(suite.activityService.Delete(activityID))
}

func (suite *ActivityServiceTestSuite) TestDeleteNotFound() {
	activityID := uuid.New()
	suite.mockRepo.EXPECT().Deactivate(activityID).Return(gorm.ErrRecordNotFound)

	err := suite.activityService.Delete(activityID)
	suite.ErrorIs(err, apperrors.ErrActivityNotFound)
}

// TestActivityServiceTestSuite runs the test suite
func TestActivityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ActivityServiceTestSuite))
}
