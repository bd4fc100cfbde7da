package allocator

import (
	"fmt"
	"sort"

	"github.com/hoteldesk/roomrota/pkg/core/model"
)

// block is an atomic slice of a floor for splitting purposes: all of a
// floor's non-eco rooms of one type, or all of its eco rooms. A split floor
// divides along block boundaries, never inside a block.
type block struct {
	roomType model.RoomType
	eco      bool
	count    int
	points   float64
}

// floorBlocks breaks a floor into its atomic room-type blocks, non-eco
// types in canonical order first, the eco block last
func floorBlocks(floor model.FloorInfo, weights model.PointWeights) []block {
	eco := floor.NormalizedEcoCounts()
	var blocks []block
	for _, t := range model.RoomTypeOrder {
		if n := floor.RoomCounts[t] - eco[t]; n > 0 {
			blocks = append(blocks, block{
				roomType: t,
				count:    n,
				points:   float64(n) * weights.ForType(t),
			})
		}
	}
	if floor.EcoRoomCount > 0 {
		blocks = append(blocks, block{
			eco:    true,
			count:  floor.EcoRoomCount,
			points: float64(floor.EcoRoomCount) * weights.Eco,
		})
	}
	return blocks
}

// asAllocation converts a block to a single-floor aggregate allocation
func (b block) asAllocation() model.RoomAllocation {
	alloc := model.RoomAllocation{RoomCounts: make(map[model.RoomType]int)}
	if b.eco {
		alloc.EcoRooms = b.count
	} else {
		alloc.RoomCounts[b.roomType] = b.count
	}
	return alloc
}

// Optimize partitions the day's floors among the configured staff.
//
// The algorithm is a deterministic greedy pass: floors are walked in
// ascending encoded floor number (main building first, then annex), and each
// floor goes wholly to the staff member with the greatest remaining headroom
// against their target, ties resolving to the first on the roster. A floor
// is split across two staff only when the whole floor would overshoot the
// chosen target by more than the configured fraction of the floor's point
// value (or would break a room-count cap) and a second staff member still
// has headroom; the split divides the floor's room-type blocks, never the
// rooms inside one block.
//
// The call is atomic: it returns a fully consistent result or an error, and
// every room of every floor lands in exactly one assignment. Room-count
// limits are soft; when coverage forces a violation it is recorded in the
// result warnings instead of failing the run.
func Optimize(floors []model.FloorInfo, config *LoadConfig, targetDate string) (*OptimizationResult, error) {
	if len(config.Staff) == 0 {
		if len(floors) > 0 {
			rooms := 0
			for _, floor := range floors {
				rooms += floor.TotalRooms()
			}
			if rooms > 0 {
				return nil, &UnassignableInventoryError{FloorCount: len(floors), RoomCount: rooms}
			}
		}
		return &OptimizationResult{
			TargetDate:  targetDate,
			Config:      config,
			Assignments: []*StaffAssignment{},
		}, nil
	}

	ordered := make([]model.FloorInfo, len(floors))
	copy(ordered, floors)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].FloorNumber < ordered[j].FloorNumber
	})

	run := newOptimizerRun(config)
	for _, floor := range ordered {
		run.placeFloor(floor)
	}

	for _, assignment := range run.assignments {
		bathCost := 0.0
		if assignment.Staff.ID == config.BathDutyAssignee {
			bathCost = config.BathDutyCost
		}
		assignment.Finalize(config.Settings.Weights, bathCost)

		if minRooms, ok := config.RoomFloor(assignment.Staff.ID); ok && assignment.TotalRooms < minRooms {
			run.warnings = append(run.warnings, fmt.Sprintf(
				"staff %s received %d rooms, below the requested minimum of %d (inventory exhausted)",
				assignment.Staff.ID, assignment.TotalRooms, minRooms))
		}
	}

	return &OptimizationResult{
		TargetDate:  targetDate,
		Config:      config,
		Assignments: run.assignments,
		Warnings:    run.warnings,
	}, nil
}

// optimizerRun holds the mutable state of one greedy pass
type optimizerRun struct {
	config      *LoadConfig
	assignments []*StaffAssignment
	running     []float64
	roomsHeld   []int
	warnings    []string
}

func newOptimizerRun(config *LoadConfig) *optimizerRun {
	run := &optimizerRun{
		config:      config,
		assignments: make([]*StaffAssignment, len(config.Staff)),
		running:     make([]float64, len(config.Staff)),
		roomsHeld:   make([]int, len(config.Staff)),
	}
	for i, staff := range config.Staff {
		run.assignments[i] = NewStaffAssignment(staff)
	}
	return run
}

func (r *optimizerRun) headroom(i int) float64 {
	return r.config.TargetFor(r.config.Staff[i].ID) - r.running[i]
}

// capAllows reports whether staff i can take that many more rooms without
// breaking a positive limit
func (r *optimizerRun) capAllows(i, rooms int) bool {
	limit, ok := r.config.RoomCap(r.config.Staff[i].ID)
	if !ok {
		return true
	}
	return r.roomsHeld[i]+rooms <= limit
}

// bestStaff returns the index with the greatest headroom, skipping exclude.
// Equal headroom keeps the earlier roster position.
func (r *optimizerRun) bestStaff(exclude int) int {
	best := -1
	bestHeadroom := 0.0
	for i := range r.config.Staff {
		if i == exclude {
			continue
		}
		h := r.headroom(i)
		if best < 0 || h > bestHeadroom+epsilon {
			best = i
			bestHeadroom = h
		}
	}
	return best
}

func (r *optimizerRun) give(i int, floorNumber int, b block) {
	r.assignments[i].allocate(floorNumber, b.asAllocation())
	r.running[i] += b.points
	r.roomsHeld[i] += b.count
}

// placeFloor assigns one floor, whole or split across two staff
func (r *optimizerRun) placeFloor(floor model.FloorInfo) {
	blocks := floorBlocks(floor, r.config.Settings.Weights)
	if len(blocks) == 0 {
		return
	}

	floorPoints := 0.0
	floorRooms := 0
	for _, b := range blocks {
		floorPoints += b.points
		floorRooms += b.count
	}

	primary := r.bestStaff(-1)
	secondary := r.bestStaff(primary)

	overshoot := r.running[primary] + floorPoints - r.config.TargetFor(r.config.Staff[primary].ID)
	split := secondary >= 0 && r.headroom(secondary) > epsilon &&
		(overshoot > r.config.Settings.SplitThreshold*floorPoints+epsilon ||
			!r.capAllows(primary, floorRooms))

	if !split {
		if !r.capAllows(primary, floorRooms) {
			r.warnCapExceeded(primary)
		}
		for _, b := range blocks {
			r.give(primary, floor.FloorNumber, b)
		}
		return
	}

	// Blocks stay with the primary while they fit its target and cap; the
	// rest spill to the secondary. Coverage wins over limits: a block
	// neither side can take goes to whichever has more headroom.
	primaryTarget := r.config.TargetFor(r.config.Staff[primary].ID)
	for _, b := range blocks {
		switch {
		case r.running[primary]+b.points <= primaryTarget+epsilon && r.capAllows(primary, b.count):
			r.give(primary, floor.FloorNumber, b)
		case r.capAllows(secondary, b.count):
			r.give(secondary, floor.FloorNumber, b)
		case r.capAllows(primary, b.count):
			r.give(primary, floor.FloorNumber, b)
		default:
			target := primary
			if r.headroom(secondary) > r.headroom(primary)+epsilon {
				target = secondary
			}
			r.warnCapExceeded(target)
			r.give(target, floor.FloorNumber, b)
		}
	}
}

func (r *optimizerRun) warnCapExceeded(i int) {
	staff := r.config.Staff[i]
	limit, _ := r.config.RoomCap(staff.ID)
	r.warnings = append(r.warnings, fmt.Sprintf(
		"staff %s exceeds the requested maximum of %d rooms (coverage takes precedence)",
		staff.ID, limit))
}
