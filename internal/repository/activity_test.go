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

// ActivityRepositoryTestSuite tests the ActivityRepository
type ActivityRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ActivityRepository
	activities    *testutils.ActivityFactory
	users         *testutils.UserFactory
}

// SetupSuite runs before all tests in the suite
func (suite *ActivityRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewActivityRepository(suite.baseTestSuite.DB)
	suite.activities = testutils.NewActivityFactory()
	suite.users = testutils.NewUserFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *ActivityRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ActivityRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ActivityRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ActivityRepositoryTestSuite) createUser() *models.User {
	user := suite.users.Create()
	suite.NoError(NewUserRepository(suite.baseTestSuite.DB).Create(user))
	return user
}

// TestCreate tests creating an activity
func (suite *ActivityRepositoryTestSuite) TestCreate() {
	user := suite.createUser()

	activity := suite.activities.Create(user.ID)
	err := suite.repo.Create(activity)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, activity.ID)
}

// TestListOverdue tests the overdue filter
func (suite *ActivityRepositoryTestSuite) TestListOverdue() {
	user := suite.createUser()

	overdue := suite.activities.Create(user.ID)
	past := time.Now().AddDate(0, 0, -3)
	overdue.DueDate = &past
	suite.NoError(suite.repo.Create(overdue))

	upcoming := suite.activities.Create(user.ID)
	suite.NoError(suite.repo.Create(upcoming))

	completed := suite.activities.Create(user.ID)
	completed.DueDate = &past
	completed.Status = models.ActivityStatusCompleted
	suite.NoError(suite.repo.Create(completed))

	activities, total, err := suite.repo.List(ActivityFilter{Overdue: true, Limit: 10})

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Require().Len(activities, 1)
	suite.Equal(overdue.ID, activities[0].ID)
}

// TestListDueDate tests filtering to a single day
func (suite *ActivityRepositoryTestSuite) TestListDueDate() {
	user := suite.createUser()

	target := time.Now().AddDate(0, 0, 7).Truncate(24 * time.Hour).Add(10 * time.Hour)
	onDay := suite.activities.Create(user.ID)
	onDay.DueDate = &target
	suite.NoError(suite.repo.Create(onDay))

	offDay := suite.activities.Create(user.ID)
	suite.NoError(suite.repo.Create(offDay))

	day := target.Truncate(24 * time.Hour)
	activities, total, err := suite.repo.List(ActivityFilter{DueDate: &day, Limit: 10})

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Require().Len(activities, 1)
	suite.Equal(onDay.ID, activities[0].ID)
}

// TestCountPendingForUser tests the pending and in-progress count
func (suite *ActivityRepositoryTestSuite) TestCountPendingForUser() {
	user := suite.createUser()
	other := suite.createUser()

	pending := suite.activities.Create(user.ID)
	suite.NoError(suite.repo.Create(pending))

	inProgress := suite.activities.Create(user.ID)
	inProgress.Status = models.ActivityStatusInProgress
	suite.NoError(suite.repo.Create(inProgress))

	done := suite.activities.Create(user.ID)
	done.Status = models.ActivityStatusCompleted
	suite.NoError(suite.repo.Create(done))

	theirs := suite.activities.Create(other.ID)
	suite.NoError(suite.repo.Create(theirs))

	count, err := suite.repo.CountPendingForUser(user.ID)

	suite.NoError(err)
	suite.Equal(int64(2), count)
}

// TestRecentForUser tests the recency cap and the owner-or-creator scope
func (suite *ActivityRepositoryTestSuite) TestRecentForUser() {
	user := suite.createUser()

	for i := 0; i < 7; i++ {
		activity := suite.activities.Create(user.ID)
		suite.NoError(suite.repo.Create(activity))
	}

	activities, err := suite.repo.RecentForUser(user.ID, 5)

	suite.NoError(err)
	suite.Len(activities, 5)
}

// TestDeactivate tests that soft-deleted activities drop out of listings
func (suite *ActivityRepositoryTestSuite) TestDeactivate() {
	user := suite.createUser()
	activity := suite.activities.Create(user.ID)
	suite.NoError(suite.repo.Create(activity))

	suite.NoError(suite.repo.Deactivate(activity.ID))

	activities, total, err := suite.repo.List(ActivityFilter{Limit: 10})
	suite.NoError(err)
	suite.Equal(int64(0), total)
	suite.Empty(activities)
}

// TestDeactivateNotFound tests soft-deleting a nonexistent activity
func (suite *ActivityRepositoryTestSuite) TestDeactivateNotFound() {
	err := suite.repo.Deactivate(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestActivityRepositoryTestSuite runs the test suite
func TestActivityRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ActivityRepositoryTestSuite))
}
