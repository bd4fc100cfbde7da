package db

import "time"

// Staff represents a housekeeping staff member record
type Staff struct {
	ID     string
	Name   string
	Active bool
}

// InventoryRoom represents one room of a day's cleaning inventory
type InventoryRoom struct {
	ID           string
	CleaningDate time.Time
	RoomNumber   string
	RoomType     string
	IsEco        bool
	IsBroken     bool
	Floor        int
	Building     string
	Status       string
}

// Plan represents a persisted allocation plan for one cleaning day
type Plan struct {
	ID              string
	TargetDate      time.Time
	BathType        string
	BathDutyStaffID string
	BathDutyCost    float64
	Warnings        []string
	CreatedAt       time.Time
}

// PlanAssignment represents one staff member's slice of a plan.
// Position preserves roster order so a reloaded plan replays edits
// deterministically.
type PlanAssignment struct {
	ID            string
	PlanID        string
	StaffID       string
	StaffName     string
	Position      int
	TargetPoints  float64
	TotalRooms    int
	TotalPoints   float64
	AdjustedScore float64
	HasMain       bool
	HasAnnex      bool
}

// PlanRoom represents one concrete room inside a plan assignment
type PlanRoom struct {
	ID           string
	AssignmentID string
	RoomNumber   string
	RoomType     string
	IsEco        bool
	Floor        int
	Building     string
}
