package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hoteldesk/roomrota/internal/config"
	"github.com/hoteldesk/roomrota/pkg/core/allocator"
	"github.com/hoteldesk/roomrota/pkg/core/assigner"
	"github.com/hoteldesk/roomrota/pkg/core/model"
	"github.com/hoteldesk/roomrota/pkg/db"
)

// PlanDayParams holds the inputs for one planning run
type PlanDayParams struct {
	// TargetDate is the cleaning day in 2006-01-02 form
	TargetDate string

	// BathTypeOverride forces a bath duty variant ("none", "normal",
	// "with_draining") instead of resolving it from the configured schedule
	BathTypeOverride string

	// RoomLimits maps staff id to a signed room limit: positive caps the
	// staff's room count, negative sets a minimum
	RoomLimits map[string]int

	// DryRun computes the plan without persisting it
	DryRun bool
}

// PlanDayResult represents the outcome of one planning run
type PlanDayResult struct {
	Result *allocator.OptimizationResult

	// Mismatch is set when the aggregate plan asked for more rooms than the
	// inventory held; the plan is partial but usable
	Mismatch *assigner.InventoryMismatchError
}

// PlanDay produces the cleaning plan for one day: it loads the roster and
// the day's inventory, builds the target workload config, runs the floor
// optimizer, expands the aggregates into concrete room numbers and persists
// the finished plan unless dryRun is set.
func PlanDay(ctx context.Context, database db.Database, cfg *config.Config, logger *zap.Logger, params PlanDayParams) (*PlanDayResult, error) {
	targetDate, err := parseDate(params.TargetDate)
	if err != nil {
		return nil, err
	}

	logger.Debug("Planning cleaning day", zap.String("target_date", params.TargetDate), zap.Bool("dry_run", params.DryRun))

	logger.Debug("Fetching staff roster")
	staffRecords, err := database.GetStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}
	staff := make([]model.Staff, len(staffRecords))
	for i, record := range staffRecords {
		staff[i] = model.Staff{ID: record.ID, Name: record.Name}
	}
	logger.Debug("Found staff", zap.Int("count", len(staff)))

	logger.Debug("Fetching room inventory", zap.String("date", params.TargetDate))
	inventoryRecords, err := database.GetInventory(ctx, targetDate)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch inventory: %w", err)
	}
	if len(inventoryRecords) == 0 {
		return nil, fmt.Errorf("no inventory imported for %s", params.TargetDate)
	}

	rooms := make([]model.Room, len(inventoryRecords))
	for i, record := range inventoryRecords {
		rooms[i] = roomFromRecord(record)
	}
	inventory := model.BuildCleaningData(rooms)
	floors := inventory.FloorSummaries()
	logger.Debug("Inventory loaded",
		zap.Int("rooms", len(rooms)),
		zap.Int("floors", len(floors)))

	bathType, err := resolveBathType(cfg, params.BathTypeOverride, targetDate)
	if err != nil {
		return nil, err
	}
	logger.Debug("Bath duty resolved", zap.String("bath_type", string(bathType)))

	settings := cfg.EngineSettings()
	totals := allocator.TotalsFromFloors(floors, settings.Weights)

	loadConfig, err := allocator.BuildLoadConfig(staff, totals, bathType, params.RoomLimits, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to build load config: %w", err)
	}
	for _, warning := range loadConfig.Warnings {
		logger.Warn(warning)
	}

	result, err := allocator.Optimize(floors, loadConfig, params.TargetDate)
	if err != nil {
		return nil, fmt.Errorf("optimization failed: %w", err)
	}
	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}

	_, mismatch := assigner.AssignRoomNumbers(inventory, result.Assignments)
	if mismatch != nil {
		logger.Warn("Aggregate plan exceeded real inventory", zap.String("detail", mismatch.Error()))
	}

	if params.DryRun {
		logger.Info("Dry run, plan not persisted", zap.String("target_date", params.TargetDate))
		return &PlanDayResult{Result: result, Mismatch: mismatch}, nil
	}

	plan, assignmentRecords, roomRecords, err := planRecords(result)
	if err != nil {
		return nil, err
	}
	if err := database.SavePlan(ctx, plan, assignmentRecords, roomRecords); err != nil {
		return nil, fmt.Errorf("failed to save plan: %w", err)
	}

	logger.Info("Plan saved",
		zap.String("plan_id", plan.ID),
		zap.String("target_date", params.TargetDate),
		zap.Int("staff", len(result.Assignments)))

	return &PlanDayResult{Result: result, Mismatch: mismatch}, nil
}

// resolveBathType applies the override when given, otherwise consults the
// configured bath duty schedule
func resolveBathType(cfg *config.Config, override string, targetDate time.Time) (model.BathCleaningType, error) {
	if override != "" {
		bathType := model.BathCleaningType(override)
		if !bathType.IsValid() {
			return model.BathNone, fmt.Errorf("unknown bath type %q", override)
		}
		return bathType, nil
	}
	return cfg.BathTypeFor(targetDate)
}

// parseDate parses a 2006-01-02 date string at UTC midnight
func parseDate(value string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", value, err)
	}
	return date, nil
}
