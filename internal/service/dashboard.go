package service

import (
	"fmt"
	"time"

	"calyx-crm-backend/internal/database/models"
	"calyx-crm-backend/internal/repository"

	"github.com/google/uuid"
)

// DashboardService aggregates the signed-in user's sales picture
type DashboardService struct {
	oppRepo      repository.OpportunityRepositoryInterface
	activityRepo repository.ActivityRepositoryInterface
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(oppRepo repository.OpportunityRepositoryInterface, activityRepo repository.ActivityRepositoryInterface) *DashboardService {
	return &DashboardService{oppRepo: oppRepo, activityRepo: activityRepo}
}

// DashboardOverview is the aggregate view backing the home screen
type DashboardOverview struct {
	OpenOpportunities int64                  `json:"openOpportunities"`
	TotalValue        float64                `json:"totalValue"`
	WeightedValue     float64                `json:"weightedValue"`
	ClosingIn30Days   int64                  `json:"closingIn30Days"`
	ClosingIn60Days   int64                  `json:"closingIn60Days"`
	PendingActivities int64                  `json:"pendingActivities"`
	StageBreakdown    []repository.StageStat `json:"stageBreakdown"`
	RecentActivities  []models.Activity      `json:"recentActivities"`
}

// RecentActivities retrieves the newest activities assigned to or created
// by the user.
func (s *DashboardService) RecentActivities(userID uuid.UUID, limit int) ([]models.Activity, error) {
	activities, err := s.activityRepo.RecentForUser(userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent activities: %w", err)
	}
	return activities, nil
}

// Overview computes the dashboard for one user. Opportunities count when the
// user is the salesperson or the creator. The 30 and 60 day windows both
// start now, so the 60 day window always contains the 30 day one.
func (s *DashboardService) Overview(userID uuid.UUID) (*DashboardOverview, error) {
	filter := repository.OpportunityFilter{
		OwnerID: &userID,
		Status:  string(models.OpportunityStatusOpen),
	}

	openCount, err := s.oppRepo.Count(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count open opportunities: %w", err)
	}

	totalValue, weightedValue, err := s.oppRepo.SumValues(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to sum opportunity values: %w", err)
	}

	now := time.Now()
	in30, err := s.oppRepo.CountClosingBetween(filter, now, now.AddDate(0, 0, 30))
	if err != nil {
		return nil, fmt.Errorf("failed to count 30-day closings: %w", err)
	}
	in60, err := s.oppRepo.CountClosingBetween(filter, now, now.AddDate(0, 0, 60))
	if err != nil {
		return nil, fmt.Errorf("failed to count 60-day closings: %w", err)
	}

	stageStats, err := s.oppRepo.StageStats(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stage breakdown: %w", err)
	}

	pending, err := s.activityRepo.CountPendingForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending activities: %w", err)
	}

	recent, err := s.activityRepo.RecentForUser(userID, 5)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent activities: %w", err)
	}

	return &DashboardOverview{
		OpenOpportunities: openCount,
		TotalValue:        roundSum(totalValue),
		WeightedValue:     roundSum(weightedValue),
		ClosingIn30Days:   in30,
		ClosingIn60Days:   in60,
		PendingActivities: pending,
		StageBreakdown:    stageStats,
		RecentActivities:  recent,
	}, nil
}
