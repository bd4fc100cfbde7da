package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hoteldesk/roomrota/internal/config"
	"github.com/hoteldesk/roomrota/pkg/core/allocator"
	"github.com/hoteldesk/roomrota/pkg/core/editor"
	"github.com/hoteldesk/roomrota/pkg/db"
)

// MoveRoom loads the plan for a date, moves one room between two staff
// members and persists the rebuilt plan
func MoveRoom(ctx context.Context, store db.PlanStore, cfg *config.Config, logger *zap.Logger, date, roomNumber, fromStaffID, toStaffID string) (*allocator.OptimizationResult, error) {
	result, err := LoadPlan(ctx, store, cfg, logger, date)
	if err != nil {
		return nil, err
	}

	logger.Debug("Moving room",
		zap.String("room", roomNumber),
		zap.String("from", fromStaffID),
		zap.String("to", toStaffID))

	edited, err := editor.MoveRoom(result, roomNumber, fromStaffID, toStaffID)
	if err != nil {
		return nil, err
	}

	if err := saveEdited(ctx, store, edited); err != nil {
		return nil, err
	}

	logger.Info("Room moved",
		zap.String("date", date),
		zap.String("room", roomNumber),
		zap.String("from", fromStaffID),
		zap.String("to", toStaffID))

	return edited, nil
}

// SwapRooms loads the plan for a date, swaps one room of each of two staff
// members and persists the rebuilt plan
func SwapRooms(ctx context.Context, store db.PlanStore, cfg *config.Config, logger *zap.Logger, date, roomA, staffAID, roomB, staffBID string) (*allocator.OptimizationResult, error) {
	result, err := LoadPlan(ctx, store, cfg, logger, date)
	if err != nil {
		return nil, err
	}

	logger.Debug("Swapping rooms",
		zap.String("room_a", roomA),
		zap.String("staff_a", staffAID),
		zap.String("room_b", roomB),
		zap.String("staff_b", staffBID))

	edited, err := editor.SwapRooms(result, roomA, staffAID, roomB, staffBID)
	if err != nil {
		return nil, err
	}

	if err := saveEdited(ctx, store, edited); err != nil {
		return nil, err
	}

	logger.Info("Rooms swapped",
		zap.String("date", date),
		zap.String("room_a", roomA),
		zap.String("room_b", roomB))

	return edited, nil
}

// saveEdited verifies consistency of an edited plan before writing it back
func saveEdited(ctx context.Context, store db.PlanStore, result *allocator.OptimizationResult) error {
	if err := editor.VerifyConsistency(result); err != nil {
		return fmt.Errorf("edited plan is inconsistent: %w", err)
	}

	plan, assignments, rooms, err := planRecords(result)
	if err != nil {
		return err
	}
	if err := store.SavePlan(ctx, plan, assignments, rooms); err != nil {
		return fmt.Errorf("failed to save edited plan: %w", err)
	}
	return nil
}
