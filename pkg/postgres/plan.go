package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hoteldesk/roomrota/pkg/db"
)

// SavePlan persists a plan with its assignments and concrete rooms in one
// transaction, replacing any existing plan for the same target date
func (d *DB) SavePlan(ctx context.Context, plan *db.Plan, assignments []db.PlanAssignment, rooms []db.PlanRoom) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM plan WHERE target_date = $1`, plan.TargetDate); err != nil {
		return fmt.Errorf("failed to clear existing plan: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO plan (id, target_date, bath_type, bath_duty_staff_id, bath_duty_cost, warnings)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, plan.ID, plan.TargetDate, plan.BathType, nullable(plan.BathDutyStaffID), plan.BathDutyCost, plan.Warnings)
	if err != nil {
		return fmt.Errorf("failed to insert plan: %w", err)
	}

	for _, a := range assignments {
		_, err := tx.Exec(ctx, `
			INSERT INTO plan_assignment (id, plan_id, staff_id, staff_name, position, target_points, total_rooms, total_points, adjusted_score, has_main, has_annex)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, a.ID, a.PlanID, a.StaffID, a.StaffName, a.Position, a.TargetPoints, a.TotalRooms, a.TotalPoints, a.AdjustedScore, a.HasMain, a.HasAnnex)
		if err != nil {
			return fmt.Errorf("failed to insert assignment for staff %s: %w", a.StaffID, err)
		}
	}

	for _, r := range rooms {
		_, err := tx.Exec(ctx, `
			INSERT INTO plan_room (id, assignment_id, room_number, room_type, is_eco, floor, building)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, r.ID, r.AssignmentID, r.RoomNumber, r.RoomType, r.IsEco, r.Floor, r.Building)
		if err != nil {
			return fmt.Errorf("failed to insert plan room %s: %w", r.RoomNumber, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetPlan retrieves the plan for a target date with its assignments (in
// position order) and rooms. Returns pgx.ErrNoRows wrapped when no plan
// exists for the date.
func (d *DB) GetPlan(ctx context.Context, date time.Time) (*db.Plan, []db.PlanAssignment, []db.PlanRoom, error) {
	var plan db.Plan
	var bathDutyStaffID *string
	err := d.pool.QueryRow(ctx, `
		SELECT id, target_date, bath_type, bath_duty_staff_id, bath_duty_cost, warnings, created_at
		FROM plan
		WHERE target_date = $1
	`, date).Scan(&plan.ID, &plan.TargetDate, &plan.BathType, &bathDutyStaffID, &plan.BathDutyCost, &plan.Warnings, &plan.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil, nil, fmt.Errorf("no plan for %s: %w", date.Format("2006-01-02"), err)
		}
		return nil, nil, nil, fmt.Errorf("failed to query plan: %w", err)
	}
	if bathDutyStaffID != nil {
		plan.BathDutyStaffID = *bathDutyStaffID
	}

	rows, err := d.pool.Query(ctx, `
		SELECT id, plan_id, staff_id, staff_name, position, target_points, total_rooms, total_points, adjusted_score, has_main, has_annex
		FROM plan_assignment
		WHERE plan_id = $1
		ORDER BY position
	`, plan.ID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	var assignments []db.PlanAssignment
	for rows.Next() {
		var a db.PlanAssignment
		if err := rows.Scan(&a.ID, &a.PlanID, &a.StaffID, &a.StaffName, &a.Position, &a.TargetPoints, &a.TotalRooms, &a.TotalPoints, &a.AdjustedScore, &a.HasMain, &a.HasAnnex); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, nil, fmt.Errorf("error iterating assignments: %w", err)
	}

	roomRows, err := d.pool.Query(ctx, `
		SELECT r.id, r.assignment_id, r.room_number, r.room_type, r.is_eco, r.floor, r.building
		FROM plan_room r
		JOIN plan_assignment a ON a.id = r.assignment_id
		WHERE a.plan_id = $1
		ORDER BY r.room_number
	`, plan.ID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to query plan rooms: %w", err)
	}
	defer roomRows.Close()

	var rooms []db.PlanRoom
	for roomRows.Next() {
		var r db.PlanRoom
		if err := roomRows.Scan(&r.ID, &r.AssignmentID, &r.RoomNumber, &r.RoomType, &r.IsEco, &r.Floor, &r.Building); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to scan plan room: %w", err)
		}
		rooms = append(rooms, r)
	}
	if err := roomRows.Err(); err != nil {
		return nil, nil, nil, fmt.Errorf("error iterating plan rooms: %w", err)
	}

	return &plan, assignments, rooms, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
