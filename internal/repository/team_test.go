//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"calyx-crm-backend/internal/database/models"
	"calyx-crm-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamRepository
	users         *testutils.UserFactory
	teams         *testutils.TeamFactory
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.users = testutils.NewUserFactory()
	suite.teams = testutils.NewTeamFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TeamRepositoryTestSuite) createUser() *models.User {
	user := suite.users.Create()
	suite.NoError(NewUserRepository(suite.baseTestSuite.DB).Create(user))
	return user
}

// TestCreate tests creating a team
func (suite *TeamRepositoryTestSuite) TestCreate() {
	manager := suite.createUser()

	team := suite.teams.Create(manager.ID)
	err := suite.repo.Create(team)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, team.ID)
	suite.NotZero(team.CreatedAt)
}

// TestGetWithMembers tests preloading members and their users
func (suite *TeamRepositoryTestSuite) TestGetWithMembers() {
	manager := suite.createUser()
	member := suite.createUser()

	team := suite.teams.Create(manager.ID)
	suite.NoError(suite.repo.Create(team))

	suite.NoError(suite.repo.AddMember(&models.TeamMember{
		TeamID:   team.ID,
		UserID:   member.ID,
		Role:     models.TeamMemberRoleMember,
		JoinedAt: time.Now(),
	}))

	found, err := suite.repo.GetWithMembers(team.ID)

	suite.NoError(err)
	suite.Require().Len(found.Members, 1)
	suite.Equal(member.ID, found.Members[0].UserID)
	suite.Require().NotNil(found.Members[0].User)
	suite.Equal(member.Email, found.Members[0].User.Email)
}

// TestAddMemberDuplicate tests the unique team and user constraint
func (suite *TeamRepositoryTestSuite) TestAddMemberDuplicate() {
	manager := suite.createUser()
	member := suite.createUser()

	team := suite.teams.Create(manager.ID)
	suite.NoError(suite.repo.Create(team))

	first := &models.TeamMember{TeamID: team.ID, UserID: member.ID, Role: models.TeamMemberRoleMember, JoinedAt: time.Now()}
	suite.NoError(suite.repo.AddMember(first))

	second := &models.TeamMember{TeamID: team.ID, UserID: member.ID, Role: models.TeamMemberRoleSenior, JoinedAt: time.Now()}
	suite.Error(suite.repo.AddMember(second))
}

// TestHasMember tests membership lookup
func (suite *TeamRepositoryTestSuite) TestHasMember() {
	manager := suite.createUser()
	member := suite.createUser()
	outsider := suite.createUser()

	team := suite.teams.Create(manager.ID)
	suite.NoError(suite.repo.Create(team))
	suite.NoError(suite.repo.AddMember(&models.TeamMember{
		TeamID: team.ID, UserID: member.ID, Role: models.TeamMemberRoleMember, JoinedAt: time.Now(),
	}))

	has, err := suite.repo.HasMember(team.ID, member.ID)
	suite.NoError(err)
	suite.True(has)

	has, err = suite.repo.HasMember(team.ID, outsider.ID)
	suite.NoError(err)
	suite.False(has)
}

// TestRemoveMember tests deleting a membership row
func (suite *TeamRepositoryTestSuite) TestRemoveMember() {
	manager := suite.createUser()
	member := suite.createUser()

	team := suite.teams.Create(manager.ID)
	suite.NoError(suite.repo.Create(team))

	membership := &models.TeamMember{TeamID: team.ID, UserID: member.ID, Role: models.TeamMemberRoleMember, JoinedAt: time.Now()}
	suite.NoError(suite.repo.AddMember(membership))

	suite.NoError(suite.repo.RemoveMember(team.ID, membership.ID))

	has, err := suite.repo.HasMember(team.ID, member.ID)
	suite.NoError(err)
	suite.False(has)
}

// TestRemoveMemberNotFound tests removing a membership that does not exist
func (suite *TeamRepositoryTestSuite) TestRemoveMemberNotFound() {
	manager := suite.createUser()
	team := suite.teams.Create(manager.ID)
	suite.NoError(suite.repo.Create(team))

	err := suite.repo.RemoveMember(team.ID, uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDeactivate tests the soft delete
func (suite *TeamRepositoryTestSuite) TestDeactivate() {
	manager := suite.createUser()
	team := suite.teams.Create(manager.ID)
	suite.NoError(suite.repo.Create(team))

	suite.NoError(suite.repo.Deactivate(team.ID))

	teams, total, err := suite.repo.List(true, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(0), total)
	suite.Empty(teams)
}

// TestTeamRepositoryTestSuite runs the test suite
func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
