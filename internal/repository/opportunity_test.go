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

// OpportunityRepositoryTestSuite tests the OpportunityRepository
type OpportunityRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *OpportunityRepository

	users         *testutils.UserFactory
	customers     *testutils.CustomerFactory
	pipelines     *testutils.PipelineFactory
	opportunities *testutils.OpportunityFactory
}

// SetupSuite runs before all tests in the suite
func (suite *OpportunityRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewOpportunityRepository(suite.baseTestSuite.DB)

	suite.users = testutils.NewUserFactory()
	suite.customers = testutils.NewCustomerFactory()
	suite.pipelines = testutils.NewPipelineFactory()
	suite.opportunities = testutils.NewOpportunityFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *OpportunityRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *OpportunityRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *OpportunityRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// seed creates a user, customer and pipeline, the prerequisites of any opportunity
func (suite *OpportunityRepositoryTestSuite) seed() (*models.User, *models.Customer, *models.Pipeline) {
	user := suite.users.Create()
	suite.NoError(NewUserRepository(suite.baseTestSuite.DB).Create(user))

	customer := suite.customers.Create()
	suite.NoError(NewCustomerRepository(suite.baseTestSuite.DB).Create(customer))

	pipeline := suite.pipelines.Create(user.ID)
	suite.NoError(NewPipelineRepository(suite.baseTestSuite.DB).Create(pipeline))

	return user, customer, pipeline
}

// TestCreate tests creating a new opportunity
func (suite *OpportunityRepositoryTestSuite) TestCreate() {
	user, customer, pipeline := suite.seed()

	opp := suite.opportunities.Create(customer.ID, pipeline.ID, user.ID)
	err := suite.repo.Create(opp)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, opp.ID)
	suite.NotZero(opp.CreatedAt)
}

// TestGetByID tests retrieving an opportunity
func (suite *OpportunityRepositoryTestSuite) TestGetByID() {
	user, customer, pipeline := suite.seed()
	opp := suite.opportunities.Create(customer.ID, pipeline.ID, user.ID)
	suite.NoError(suite.repo.Create(opp))

	found, err := suite.repo.GetByID(opp.ID)

	suite.NoError(err)
	suite.Equal(opp.Title, found.Title)
	suite.Equal(25, found.Probability)
}

// TestGetByIDNotFound tests retrieving a nonexistent opportunity
func (suite *OpportunityRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetWithRelations tests preloading related records
func (suite *OpportunityRepositoryTestSuite) TestGetWithRelations() {
	user, customer, pipeline := suite.seed()
	opp := suite.opportunities.Create(customer.ID, pipeline.ID, user.ID)
	suite.NoError(suite.repo.Create(opp))

	found, err := suite.repo.GetWithRelations(opp.ID)

	suite.NoError(err)
	suite.Require().NotNil(found.Customer)
	suite.Equal(customer.Name, found.Customer.Name)
	suite.Require().NotNil(found.Pipeline)
	suite.Len(found.Pipeline.Stages, 5)
	suite.Equal("Prospecting", found.Pipeline.Stages[0].Name)
	suite.Require().NotNil(found.Salesperson)
	suite.Equal(user.Email, found.Salesperson.Email)
}

// TestListFiltersByOwner tests the owner scope matching salesperson or creator
func (suite *OpportunityRepositoryTestSuite) TestListFiltersByOwner() {
	user, customer, pipeline := suite.seed()
	other := suite.users.Create()
	suite.NoError(NewUserRepository(suite.baseTestSuite.DB).Create(other))

	mine := suite.opportunities.Create(customer.ID, pipeline.ID, user.ID)
	suite.NoError(suite.repo.Create(mine))

	created := suite.opportunities.Create(customer.ID, pipeline.ID, other.ID)
	created.CreatedBy = user.ID
	suite.NoError(suite.repo.Create(created))

	theirs := suite.opportunities.Create(customer.ID, pipeline.ID, other.ID)
	suite.NoError(suite.repo.Create(theirs))

	opps, total, err := suite.repo.List(OpportunityFilter{OwnerID: &user.ID, Limit: 10})

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(opps, 2)
}

// TestListPagination tests limit and offset
func (suite *OpportunityRepositoryTestSuite) TestListPagination() {
	user, customer, pipeline := suite.seed()
	for i := 0; i < 5; i++ {
		opp := suite.opportunities.Create(customer.ID, pipeline.ID, user.ID)
		suite.NoError(suite.repo.Create(opp))
	}

	opps, total, err := suite.repo.List(OpportunityFilter{Limit: 2, Offset: 4})

	suite.NoError(err)
	suite.Equal(int64(5), total)
	suite.Len(opps, 1)
}

// TestCountByPipeline tests the deletion guard count
func (suite *OpportunityRepositoryTestSuite) TestCountByPipeline() {
	user, customer, pipeline := suite.seed()
	empty := suite.pipelines.Create(user.ID)
	empty.Name = "Empty Pipeline"
	empty.IsDefault = false
	suite.NoError(NewPipelineRepository(suite.baseTestSuite.DB).Create(empty))

	opp := suite.opportunities.Create(customer.ID, pipeline.ID, user.ID)
	suite.NoError(suite.repo.Create(opp))

	count, err := suite.repo.CountByPipeline(pipeline.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)

	count, err = suite.repo.CountByPipeline(empty.ID)
	suite.NoError(err)
	suite.Equal(int64(0), count)
}

// TestCountClosingBetween tests the close-date window count
func (suite *OpportunityRepositoryTestSuite) TestCountClosingBetween() {
	user, customer, pipeline := suite.seed()

	soon := suite.opportunities.Create(customer.ID, pipeline.ID, user.ID)
	closeSoon := time.Now().AddDate(0, 0, 10)
	soon.ExpectedCloseDate = &closeSoon
	suite.NoError(suite.repo.Create(soon))

	later := suite.opportunities.Create(customer.ID, pipeline.ID, user.ID)
	closeLater := time.Now().AddDate(0, 0, 45)
	later.ExpectedCloseDate = &closeLater
	suite.NoError(suite.repo.Create(later))

	undated := suite.opportunities.Create(customer.ID, pipeline.ID, user.ID)
	undated.ExpectedCloseDate = nil
	suite.NoError(suite.repo.Create(undated))

	now := time.Now()

	count, err := suite.repo.CountClosingBetween(OpportunityFilter{}, now, now.AddDate(0, 0, 30))
	suite.NoError(err)
	suite.Equal(int64(1), count)

	count, err = suite.repo.CountClosingBetween(OpportunityFilter{}, now, now.AddDate(0, 0, 60))
	suite.NoError(err)
	suite.Equal(int64(2), count)
}

// TestSumValues tests the value and weighted-value sums
func (suite *OpportunityRepositoryTestSuite) TestSumValues() {
	user, customer, pipeline := suite.seed()

	first := suite.opportunities.Create(customer.ID, pipeline.ID, user.ID)
	first.Value = 1000
	first.Probability = 25
	suite.NoError(suite.repo.Create(first))

	second := suite.opportunities.Create(customer.ID, pipeline.ID, user.ID)
	second.Value = 2000
	second.Probability = 75
	second.Stage = "Negotiation"
	suite.NoError(suite.repo.Create(second))

	total, weighted, err := suite.repo.SumValues(OpportunityFilter{})

	suite.NoError(err)
	suite.InDelta(3000, total, 0.001)
	suite.InDelta(1750, weighted, 0.001)
}

// TestSumValuesEmpty tests the sums over no rows
func (suite *OpportunityRepositoryTestSuite) TestSumValuesEmpty() {
	total, weighted, err := suite.repo.SumValues(OpportunityFilter{})

	suite.NoError(err)
	suite.Zero(total)
	suite.Zero(weighted)
}

// TestStageStats tests the per-stage grouping
func (suite *OpportunityRepositoryTestSuite) TestStageStats() {
	user, customer, pipeline := suite.seed()

	for i := 0; i < 2; i++ {
		opp := suite.opportunities.Create(customer.ID, pipeline.ID, user.ID)
		suite.NoError(suite.repo.Create(opp))
	}
	negotiation := suite.opportunities.Create(customer.ID, pipeline.ID, user.ID)
	negotiation.Stage = "Negotiation"
	negotiation.Probability = 75
	suite.NoError(suite.repo.Create(negotiation))

	stats, err := suite.repo.StageStats(OpportunityFilter{Status: "open"})

	suite.NoError(err)
	suite.Require().Len(stats, 2)
	suite.Equal("Qualification", stats[0].Stage)
	suite.Equal(int64(2), stats[0].Count)
}

// TestDelete tests hard deletion
func (suite *OpportunityRepositoryTestSuite) TestDelete() {
	user, customer, pipeline := suite.seed()
	opp := suite.opportunities.Create(customer.ID, pipeline.ID, user.ID)
	suite.NoError(suite.repo.Create(opp))

	suite.NoError(suite.repo.Delete(opp.ID))

	_, err := suite.repo.GetByID(opp.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestOpportunityRepositoryTestSuite runs the test suite
func TestOpportunityRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OpportunityRepositoryTestSuite))
}
