package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hoteldesk/roomrota/pkg/db"
	"github.com/hoteldesk/roomrota/pkg/excel"
)

// ImportResult represents the outcome of an inventory import
type ImportResult struct {
	RoomCount int
	Warnings  []string
}

// ImportInventory reads a day's room inventory from an Excel workbook and
// stores it, replacing any previous import for the same date. Unparseable
// rows are skipped and surfaced as warnings.
func ImportInventory(ctx context.Context, store db.InventoryStore, logger *zap.Logger, path, date string) (*ImportResult, error) {
	cleaningDate, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	logger.Debug("Importing inventory", zap.String("path", path), zap.String("date", date))

	rooms, warnings, err := excel.ReadInventory(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory workbook: %w", err)
	}
	for _, warning := range warnings {
		logger.Warn(warning)
	}
	if len(rooms) == 0 {
		return nil, fmt.Errorf("workbook %s contained no usable rooms", path)
	}

	records := make([]db.InventoryRoom, len(rooms))
	for i, room := range rooms {
		records[i] = db.InventoryRoom{
			ID:           uuid.New().String(),
			CleaningDate: cleaningDate,
			RoomNumber:   room.RoomNumber,
			RoomType:     string(room.Type),
			IsEco:        room.IsEco,
			IsBroken:     room.IsBroken,
			Floor:        room.Floor,
			Building:     string(room.Building),
			Status:       room.Status,
		}
	}

	if err := store.ReplaceInventory(ctx, cleaningDate, records); err != nil {
		return nil, fmt.Errorf("failed to store inventory: %w", err)
	}

	logger.Info("Inventory imported",
		zap.String("date", date),
		zap.Int("rooms", len(records)),
		zap.Int("skipped_rows", len(warnings)))

	return &ImportResult{RoomCount: len(records), Warnings: warnings}, nil
}
