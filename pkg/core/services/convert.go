package services

import (
	"github.com/google/uuid"

	"github.com/hoteldesk/roomrota/pkg/core/allocator"
	"github.com/hoteldesk/roomrota/pkg/core/editor"
	"github.com/hoteldesk/roomrota/pkg/core/model"
	"github.com/hoteldesk/roomrota/pkg/db"
)

// roomFromRecord converts a stored inventory row into the engine's room type
func roomFromRecord(r db.InventoryRoom) model.Room {
	return model.Room{
		RoomNumber: r.RoomNumber,
		Type:       model.RoomType(r.RoomType),
		IsEco:      r.IsEco,
		IsBroken:   r.IsBroken,
		Floor:      r.Floor,
		Building:   model.Building(r.Building),
		Status:     r.Status,
	}
}

// planRecords flattens an optimization result into plan, assignment and room
// records ready for persistence
func planRecords(result *allocator.OptimizationResult) (*db.Plan, []db.PlanAssignment, []db.PlanRoom, error) {
	targetDate, err := parseDate(result.TargetDate)
	if err != nil {
		return nil, nil, nil, err
	}

	plan := &db.Plan{
		ID:         uuid.New().String(),
		TargetDate: targetDate,
		BathType:   string(model.BathNone),
		Warnings:   append([]string{}, result.Warnings...),
	}
	if result.Config != nil {
		plan.BathType = string(result.Config.BathType)
		plan.BathDutyStaffID = result.Config.BathDutyAssignee
		plan.BathDutyCost = result.Config.BathDutyCost
	}

	var (
		assignments []db.PlanAssignment
		rooms       []db.PlanRoom
	)
	for position, assignment := range result.Assignments {
		record := db.PlanAssignment{
			ID:            uuid.New().String(),
			PlanID:        plan.ID,
			StaffID:       assignment.Staff.ID,
			StaffName:     assignment.Staff.Name,
			Position:      position,
			TotalRooms:    assignment.TotalRooms,
			TotalPoints:   assignment.TotalPoints,
			AdjustedScore: assignment.AdjustedScore,
			HasMain:       assignment.HasMainBuilding,
			HasAnnex:      assignment.HasAnnexBuilding,
		}
		if result.Config != nil {
			record.TargetPoints = result.Config.TargetFor(assignment.Staff.ID)
		}
		assignments = append(assignments, record)

		for _, room := range assignment.Rooms {
			rooms = append(rooms, db.PlanRoom{
				ID:           uuid.New().String(),
				AssignmentID: record.ID,
				RoomNumber:   room.RoomNumber,
				RoomType:     string(room.Type),
				IsEco:        room.IsEco,
				Floor:        room.Floor,
				Building:     string(room.Building),
			})
		}
	}

	return plan, assignments, rooms, nil
}

// resultFromRecords reconstructs an optimization result from persisted
// records so plan edits can run through the same engine code paths
func resultFromRecords(plan *db.Plan, assignments []db.PlanAssignment, rooms []db.PlanRoom, settings allocator.Settings) *allocator.OptimizationResult {
	roomsByAssignment := make(map[string][]model.Room)
	for _, r := range rooms {
		roomsByAssignment[r.AssignmentID] = append(roomsByAssignment[r.AssignmentID], model.Room{
			RoomNumber: r.RoomNumber,
			Type:       model.RoomType(r.RoomType),
			IsEco:      r.IsEco,
			Floor:      r.Floor,
			Building:   model.Building(r.Building),
		})
	}

	config := &allocator.LoadConfig{
		Targets:          make(map[string]float64, len(assignments)),
		BathType:         model.BathCleaningType(plan.BathType),
		BathDutyAssignee: plan.BathDutyStaffID,
		BathDutyCost:     plan.BathDutyCost,
		RawLimits:        make(map[string]int),
		Settings:         settings,
	}

	result := &allocator.OptimizationResult{
		TargetDate: plan.TargetDate.Format("2006-01-02"),
		Config:     config,
		Warnings:   append([]string{}, plan.Warnings...),
	}

	for _, record := range assignments {
		staff := model.Staff{ID: record.StaffID, Name: record.StaffName}
		config.Staff = append(config.Staff, staff)
		config.Targets[record.StaffID] = record.TargetPoints

		assignment := allocator.NewStaffAssignment(staff)
		assignment.Rooms = roomsByAssignment[record.ID]
		if assignment.Rooms == nil {
			assignment.Rooms = []model.Room{}
		}
		assignment.RoomsByFloor = editor.AggregatesFromRooms(assignment.Rooms)

		bathCost := 0.0
		if record.StaffID == plan.BathDutyStaffID {
			bathCost = plan.BathDutyCost
		}
		assignment.Finalize(settings.Weights, bathCost)

		result.Assignments = append(result.Assignments, assignment)
	}

	return result
}
