package allocator

import (
	"sort"

	"github.com/hoteldesk/roomrota/pkg/core/model"
)

// Settings carries the tunable constants of the allocation engine. The bath
// duty costs and the split threshold are deliberately configuration values
// rather than constants; see internal/config for the yaml surface.
type Settings struct {
	// Weights is the point weight table used for all workload math
	Weights model.PointWeights

	// BathCostNormal is the point cost deducted from the bath duty
	// assignee's target for a normal bath clean
	BathCostNormal float64

	// BathCostWithDraining is the point cost for a bath clean that
	// includes draining and refilling
	BathCostWithDraining float64

	// SplitThreshold is the fraction of a floor's point value by which
	// assigning the whole floor may overshoot the chosen staff's target
	// before the optimizer considers splitting the floor
	SplitThreshold float64
}

// DefaultSettings returns the standard engine settings
func DefaultSettings() Settings {
	return Settings{
		Weights:              model.DefaultPointWeights(),
		BathCostNormal:       1.5,
		BathCostWithDraining: 3.0,
		SplitThreshold:       0.5,
	}
}

// BathDutyCost returns the point cost of the given bath duty variant
func (s Settings) BathDutyCost(t model.BathCleaningType) float64 {
	switch t {
	case model.BathNormal:
		return s.BathCostNormal
	case model.BathWithDraining:
		return s.BathCostWithDraining
	default:
		return 0
	}
}

// InventoryTotals summarizes the day's inventory for target calculation
type InventoryTotals struct {
	TotalRooms  int
	MainRooms   int
	AnnexRooms  int
	TotalPoints float64
}

// TotalsFromFloors computes inventory totals from the floor summary list
func TotalsFromFloors(floors []model.FloorInfo, weights model.PointWeights) InventoryTotals {
	var totals InventoryTotals
	for _, floor := range floors {
		rooms := floor.TotalRooms()
		totals.TotalRooms += rooms
		if floor.IsMainBuilding() {
			totals.MainRooms += rooms
		} else {
			totals.AnnexRooms += rooms
		}
		totals.TotalPoints += weights.FloorPoints(floor)
	}
	return totals
}

// LoadConfig is the target workload plan for one optimizer run
type LoadConfig struct {
	// Staff is the day's roster in input order. Tie-breaks throughout the
	// engine resolve to the first-listed staff member.
	Staff []model.Staff

	// Targets maps staff id to target workload points
	Targets map[string]float64

	// BathType is the day's bath cleaning duty variant
	BathType model.BathCleaningType

	// BathDutyAssignee is the staff id carrying the bath duty, empty when
	// BathType is none
	BathDutyAssignee string

	// BathDutyCost is the resolved point cost of the duty
	BathDutyCost float64

	// RawLimits holds the signed per-staff room limits that produced the
	// targets: a positive limit caps room count, a negative limit's
	// magnitude is a minimum
	RawLimits map[string]int

	// Warnings collects non-fatal findings such as ignored unknown limits
	Warnings []string

	// Settings are the engine settings the config was built with
	Settings Settings
}

// TargetFor returns the target points for a staff id
func (c *LoadConfig) TargetFor(staffID string) float64 {
	return c.Targets[staffID]
}

// RoomCap returns the room-count upper bound for a staff id, if any
func (c *LoadConfig) RoomCap(staffID string) (int, bool) {
	limit, ok := c.RawLimits[staffID]
	if !ok || limit <= 0 {
		return 0, false
	}
	return limit, true
}

// RoomFloor returns the room-count lower bound for a staff id, if any
func (c *LoadConfig) RoomFloor(staffID string) (int, bool) {
	limit, ok := c.RawLimits[staffID]
	if !ok || limit >= 0 {
		return 0, false
	}
	return -limit, true
}

// StaffAssignment is one staff member's share of the day's workload. The
// optimizer produces the aggregate view; the room number assigner later
// attaches the detailed room list without replacing the aggregates.
type StaffAssignment struct {
	Staff model.Staff

	// Floors lists the encoded floor numbers this staff works, ascending
	Floors []int

	// RoomsByFloor holds the aggregate allocation per floor
	RoomsByFloor map[int]model.RoomAllocation

	TotalRooms  int
	TotalPoints float64

	// AdjustedScore is TotalPoints minus the bath duty cost when this
	// staff carries the duty, floored at zero
	AdjustedScore float64

	HasMainBuilding  bool
	HasAnnexBuilding bool

	// Rooms is the detailed room list, attached by the assigner
	Rooms []model.Room
}

// NewStaffAssignment returns an empty assignment for one staff member
func NewStaffAssignment(staff model.Staff) *StaffAssignment {
	return &StaffAssignment{
		Staff:        staff,
		Floors:       []int{},
		RoomsByFloor: make(map[int]model.RoomAllocation),
	}
}

// allocate merges an aggregate allocation for a floor into the assignment
func (a *StaffAssignment) allocate(floorNumber int, alloc model.RoomAllocation) {
	existing, ok := a.RoomsByFloor[floorNumber]
	if !ok {
		a.RoomsByFloor[floorNumber] = alloc.Clone()
		return
	}
	merged := existing.Clone()
	for _, t := range model.RoomTypeOrder {
		if n := alloc.RoomCounts[t]; n > 0 {
			merged.RoomCounts[t] += n
		}
	}
	merged.EcoRooms += alloc.EcoRooms
	a.RoomsByFloor[floorNumber] = merged
}

// Finalize derives the counters and flags from the per-floor allocations.
// bathCost is zero for staff not carrying the bath duty.
func (a *StaffAssignment) Finalize(weights model.PointWeights, bathCost float64) {
	a.Floors = a.Floors[:0]
	a.TotalRooms = 0
	a.TotalPoints = 0
	a.HasMainBuilding = false
	a.HasAnnexBuilding = false

	for floorNumber := range a.RoomsByFloor {
		a.Floors = append(a.Floors, floorNumber)
	}
	sort.Ints(a.Floors)

	for _, floorNumber := range a.Floors {
		alloc := a.RoomsByFloor[floorNumber]
		a.TotalRooms += alloc.TotalRooms()
		a.TotalPoints += weights.AllocationPoints(alloc)
		if model.FloorBuilding(floorNumber) == model.BuildingMain {
			a.HasMainBuilding = true
		} else {
			a.HasAnnexBuilding = true
		}
	}

	a.AdjustedScore = a.TotalPoints - bathCost
	if a.AdjustedScore < 0 {
		a.AdjustedScore = 0
	}
}

// OptimizationResult is the optimizer's output for one run
type OptimizationResult struct {
	TargetDate  string
	Config      *LoadConfig
	Assignments []*StaffAssignment

	// Warnings collects non-fatal findings such as soft limit violations
	Warnings []string
}

// AssignmentFor returns the assignment for a staff id, or nil
func (r *OptimizationResult) AssignmentFor(staffID string) *StaffAssignment {
	for _, assignment := range r.Assignments {
		if assignment.Staff.ID == staffID {
			return assignment
		}
	}
	return nil
}
