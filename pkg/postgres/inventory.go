package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/hoteldesk/roomrota/pkg/db"
)

// ReplaceInventory replaces the stored room inventory for a cleaning date.
// Re-importing a date overwrites the previous import wholesale so partial
// imports cannot mix with stale rows.
func (d *DB) ReplaceInventory(ctx context.Context, date time.Time, rooms []db.InventoryRoom) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM inventory_room WHERE cleaning_date = $1`, date); err != nil {
		return fmt.Errorf("failed to clear inventory for %s: %w", date.Format("2006-01-02"), err)
	}

	for _, room := range rooms {
		_, err := tx.Exec(ctx, `
			INSERT INTO inventory_room (id, cleaning_date, room_number, room_type, is_eco, is_broken, floor, building, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, room.ID, date, room.RoomNumber, room.RoomType, room.IsEco, room.IsBroken, room.Floor, room.Building, room.Status)
		if err != nil {
			return fmt.Errorf("failed to insert room %s: %w", room.RoomNumber, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetInventory retrieves the room inventory for a cleaning date
func (d *DB) GetInventory(ctx context.Context, date time.Time) ([]db.InventoryRoom, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, cleaning_date, room_number, room_type, is_eco, is_broken, floor, building, status
		FROM inventory_room
		WHERE cleaning_date = $1
		ORDER BY room_number
	`, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory: %w", err)
	}
	defer rows.Close()

	var rooms []db.InventoryRoom
	for rows.Next() {
		var r db.InventoryRoom
		if err := rows.Scan(&r.ID, &r.CleaningDate, &r.RoomNumber, &r.RoomType, &r.IsEco, &r.IsBroken, &r.Floor, &r.Building, &r.Status); err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		rooms = append(rooms, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inventory: %w", err)
	}

	return rooms, nil
}
