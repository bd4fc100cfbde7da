package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hoteldesk/roomrota/internal/config"
	"github.com/hoteldesk/roomrota/pkg/core/allocator"
	"github.com/hoteldesk/roomrota/pkg/db"
)

// LoadPlan retrieves the persisted plan for a date and reconstructs it as an
// optimization result, so viewing and editing share the engine's types
func LoadPlan(ctx context.Context, store db.PlanStore, cfg *config.Config, logger *zap.Logger, date string) (*allocator.OptimizationResult, error) {
	targetDate, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	logger.Debug("Loading plan", zap.String("date", date))

	plan, assignments, rooms, err := store.GetPlan(ctx, targetDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}

	result := resultFromRecords(plan, assignments, rooms, cfg.EngineSettings())
	logger.Debug("Plan loaded",
		zap.String("plan_id", plan.ID),
		zap.Int("staff", len(result.Assignments)))

	return result, nil
}
