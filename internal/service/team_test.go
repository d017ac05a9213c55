package service_test

import (
	"testing"

	"calyx-crm-backend/internal/database/models"
	apperrors "calyx-crm-backend/internal/errors"
	"calyx-crm-backend/internal/mocks"
	"calyx-crm-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TeamServiceTestSuite defines the test suite for TeamService
type TeamServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *mocks.MockTeamRepositoryInterface
	mockUserRepo *mocks.MockUserRepositoryInterface
	teamService  *service.TeamService
}

// SetupTest sets up the test suite
func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.teamService = service.NewTeamService(suite.mockRepo, suite.mockUserRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamServiceTestSuite) TestCreateDefaultsManagerToCaller() {
	callerID := uuid.New()
	req := &service.CreateTeamRequest{Name: "West Coast", TargetRevenue: 500000}

	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(t *models.Team) error {
		suite.Equal(callerID, t.ManagerID)
		suite.Equal(500000.0, t.TargetRevenue)
		suite.True(t.IsActive)
		return nil
	})

	team, err := suite.teamService.Create(req, callerID)
	suite.Require().NoError(err)
	suite.Equal("West Coast", team.Name)
}

func (suite *TeamServiceTestSuite) TestCreateWithExplicitManager() {
	callerID := uuid.New()
	managerID := uuid.New()
	req := &service.CreateTeamRequest{Name: "East Coast", ManagerID: &managerID}

	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(t *models.Team) error {
		suite.Equal(managerID, t.ManagerID)
		return nil
	})

	_, err := suite.teamService.Create(req, callerID)
	suite.NoError(err)
}

func (suite *TeamServiceTestSuite) TestCreateValidationFailure() {
	team, err := suite.teamService.Create(&service.CreateTeamRequest{}, uuid.New())
	suite.Error(err)
	suite.Nil(team)
}

func (suite *TeamServiceTestSuite) TestAddMember() {
	teamID := uuid.New()
	userID := uuid.New()
	team := &models.Team{Name: "West Coast"}
	team.ID = teamID
	user := &models.User{Email: "rep@example.com"}
	user.ID = userID

	req := &service.AddMemberRequest{UserID: userID}

	suite.mockRepo.EXPECT().GetByID(teamID).Return(team, nil)
	suite.mockUserRepo.EXPECT().GetByID(userID).Return(user, nil)
	suite.mockRepo.EXPECT().HasMember(teamID, userID).Return(false, nil)
	suite.mockRepo.EXPECT().AddMember(gomock.Any()).DoAndReturn(func(m *models.TeamMember) error {
		suite.Equal(teamID, m.TeamID)
		suite.Equal(userID, m.UserID)
		suite.Equal(models.TeamMemberRoleMember, m.Role)
		return nil
	})
	suite.mockUserRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(u *models.User) error {
		suite.Require().NotNil(u.TeamID)
		suite.Equal(teamID, *u.TeamID)
		return nil
	})

	member, err := suite.teamService.AddMember(teamID, req)
	suite.Require().NoError(err)
	suite.NotNil(member.User)
}

func (suite *TeamServiceTestSuite) TestAddMemberTwiceRejected() {
	teamID := uuid.New()
	userID := uuid.New()
	team := &models.Team{Name: "West Coast"}
	team.ID = teamID

	suite.mockRepo.EXPECT().GetByID(teamID).Return(team, nil)
	suite.mockUserRepo.EXPECT().GetByID(userID).Return(&models.User{}, nil)
	suite.mockRepo.EXPECT().HasMember(teamID, userID).Return(true, nil)

	member, err := suite.teamService.AddMember(teamID, &service.AddMemberRequest{UserID: userID})
	suite.Nil(member)
	suite.ErrorIs(err, apperrors.ErrTeamMemberExists)
	suite.True(apperrors.IsAlreadyExists(err))
}

func (suite *TeamServiceTestSuite) TestAddMemberUserNotFound() {
	teamID := uuid.New()
	userID := uuid.New()

	suite.mockRepo.EXPECT().GetByID(teamID).Return(&models.Team{}, nil)
	suite.mockUserRepo.EXPECT().GetByID(userID).Return(nil, gorm.ErrRecordNotFound)

	member, err := suite.teamService.AddMember(teamID, &service.AddMemberRequest{UserID: userID})
	suite.Nil(member)
	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

func (suite *TeamServiceTestSuite) TestAddMemberTeamNotFound() {
	teamID := uuid.New()
	suite.mockRepo.EXPECT().GetByID(teamID).Return(nil, gorm.ErrRecordNotFound)

	member, err := suite.teamService.AddMember(teamID, &service.AddMemberRequest{UserID: uuid.New()})
	suite.Nil(member)
	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
}

func (suite *TeamServiceTestSuite) TestRemoveMember() {
	teamID := uuid.New()
	memberID := uuid.New()

	suite.mockRepo.EXPECT().GetByID(teamID).Return(&models.Team{}, nil)
	suite.mockRepo.EXPECT().RemoveMember(teamID, memberID).Return(nil)

	suite.NoError(suite.teamService.RemoveMember(teamID, memberID))
}

func (suite *TeamServiceTestSuite) TestRemoveMemberNotFound() {
	teamID := uuid.New()
	memberID := uuid.New()

	suite.mockRepo.EXPECT().GetByID(teamID).Return(&models.Team{}, nil)
	suite.mockRepo.EXPECT().RemoveMember(teamID, memberID).Return(gorm.ErrRecordNotFound)

	err := suite.teamService.RemoveMember(teamID, memberID)
	suite.ErrorIs(err, apperrors.ErrTeamMemberNotFound)
}

func (suite *TeamServiceTestSuite) TestUpdatePartial() {
	teamID := uuid.New()
	team := &models.Team{Name: "Old", TargetRevenue: 100}
	team.ID = teamID

	name := "New"
	req := &service.UpdateTeamRequest{Name: &name}

	suite.mockRepo.EXPECT().GetByID(teamID).Return(team, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

	updated, err := suite.teamService.Update(teamID, req)
	suite.Require().NoError(err)
	suite.Equal("New", updated.Name)
	suite.Equal(100.0, updated.TargetRevenue)
}

func (suite *TeamServiceTestSuite) TestDelete() {
	teamID := uuid.New()
	suite.mockRepo.EXPECT().Deactivate(teamID).Return(nil)
	suite.NoError(suite.teamService.Delete(teamID))
}

// TestTeamServiceTestSuite runs the test suite
func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
