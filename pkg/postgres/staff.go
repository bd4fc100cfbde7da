package postgres

import (
	"context"
	"fmt"

	"github.com/hoteldesk/roomrota/pkg/db"
)

// GetStaff retrieves all active staff in roster order (by id)
func (d *DB) GetStaff(ctx context.Context) ([]db.Staff, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, active
		FROM staff
		WHERE active
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff: %w", err)
	}
	defer rows.Close()

	var staff []db.Staff
	for rows.Next() {
		var s db.Staff
		if err := rows.Scan(&s.ID, &s.Name, &s.Active); err != nil {
			return nil, fmt.Errorf("failed to scan staff: %w", err)
		}
		staff = append(staff, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating staff: %w", err)
	}

	return staff, nil
}

// InsertStaff inserts a staff record, updating the name and active flag if
// the id already exists
func (d *DB) InsertStaff(ctx context.Context, staff *db.Staff) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO staff (id, name, active)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, active = EXCLUDED.active
	`, staff.ID, staff.Name, staff.Active)
	if err != nil {
		return fmt.Errorf("failed to insert staff: %w", err)
	}
	return nil
}
