package service

import (
	"fmt"
	"time"

	"calyx-crm-backend/internal/database/models"
	"calyx-crm-backend/internal/repository"

	"github.com/google/uuid"
)

// ForecastService projects revenue from open opportunities
type ForecastService struct {
	oppRepo repository.OpportunityRepositoryInterface
}

// NewForecastService creates a new forecast service
func NewForecastService(oppRepo repository.OpportunityRepositoryInterface) *ForecastService {
	return &ForecastService{oppRepo: oppRepo}
}

// ForecastWindow is the slice of the forecast closing within one horizon
type ForecastWindow struct {
	Opportunities []models.Opportunity `json:"opportunities"`
	Count         int                  `json:"count"`
	TotalValue    float64              `json:"totalValue"`
	WeightedValue float64              `json:"weightedValue"`
}

// ForecastOverview is the revenue projection over open opportunities
type ForecastOverview struct {
	Next30Days    ForecastWindow `json:"next30Days"`
	Next60Days    ForecastWindow `json:"next60Days"`
	TotalOpen     int            `json:"totalOpen"`
	TotalValue    float64        `json:"totalValue"`
	WeightedValue float64        `json:"weightedValue"`
}

func buildWindow(opportunities []models.Opportunity, from, to time.Time) ForecastWindow {
	window := ForecastWindow{Opportunities: []models.Opportunity{}}
	for _, opp := range opportunities {
		if opp.ExpectedCloseDate == nil {
			continue
		}
		d := *opp.ExpectedCloseDate
		if d.Before(from) || d.After(to) {
			continue
		}
		window.Opportunities = append(window.Opportunities, opp)
		window.TotalValue += opp.Value
		window.WeightedValue += opp.WeightedValue()
	}
	window.Count = len(window.Opportunities)
	window.TotalValue = roundSum(window.TotalValue)
	window.WeightedValue = roundSum(window.WeightedValue)
	return window
}

// Overview computes the forecast, optionally narrowed to a team or a
// salesperson. Both horizons start now, so the 60 day window is always a
// superset of the 30 day one. Opportunities without an expected close date
// count toward the totals but fall outside every window.
func (s *ForecastService) Overview(teamID, salespersonID *uuid.UUID) (*ForecastOverview, error) {
	filter := repository.OpportunityFilter{
		TeamID:        teamID,
		SalespersonID: salespersonID,
	}

	open, err := s.oppRepo.ListOpenByCloseDate(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list open opportunities: %w", err)
	}

	var totalValue, weightedValue float64
	for _, opp := range open {
		totalValue += opp.Value
		weightedValue += opp.WeightedValue()
	}

	now := time.Now()
	return &ForecastOverview{
		Next30Days:    buildWindow(open, now, now.AddDate(0, 0, 30)),
		Next60Days:    buildWindow(open, now, now.AddDate(0, 0, 60)),
		TotalOpen:     len(open),
		TotalValue:    roundSum(totalValue),
		WeightedValue: roundSum(weightedValue),
	}, nil
}
