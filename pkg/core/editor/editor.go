package editor

import (
	"fmt"

	"github.com/hoteldesk/roomrota/pkg/core/allocator"
	"github.com/hoteldesk/roomrota/pkg/core/model"
)

// The editor applies post-hoc corrections (moving or swapping individual
// rooms between staff) to a finished optimization result. Edits are pure:
// they return a fresh result and always rebuild the aggregate allocations
// from the detailed room lists, so the two views cannot drift apart no
// matter how many edits are applied.

// MoveRoom hands one room from one staff member to another and returns the
// rebuilt result. The input result is not modified.
func MoveRoom(result *allocator.OptimizationResult, roomNumber, fromStaffID, toStaffID string) (*allocator.OptimizationResult, error) {
	if fromStaffID == toStaffID {
		return nil, fmt.Errorf("cannot move room %s: source and destination staff are both %s", roomNumber, fromStaffID)
	}

	from := result.AssignmentFor(fromStaffID)
	if from == nil {
		return nil, fmt.Errorf("unknown staff id %q", fromStaffID)
	}
	to := result.AssignmentFor(toStaffID)
	if to == nil {
		return nil, fmt.Errorf("unknown staff id %q", toStaffID)
	}

	room, remaining, err := takeRoom(from, roomNumber)
	if err != nil {
		return nil, err
	}

	rebuilt := map[string][]model.Room{
		fromStaffID: remaining,
		toStaffID:   append(copyRooms(to.Rooms), room),
	}
	return rebuildResult(result, rebuilt), nil
}

// SwapRooms exchanges one room of each of two staff members and returns the
// rebuilt result. The input result is not modified.
func SwapRooms(result *allocator.OptimizationResult, roomA, staffAID, roomB, staffBID string) (*allocator.OptimizationResult, error) {
	if staffAID == staffBID {
		return nil, fmt.Errorf("cannot swap rooms within one staff member (%s)", staffAID)
	}

	a := result.AssignmentFor(staffAID)
	if a == nil {
		return nil, fmt.Errorf("unknown staff id %q", staffAID)
	}
	b := result.AssignmentFor(staffBID)
	if b == nil {
		return nil, fmt.Errorf("unknown staff id %q", staffBID)
	}

	roomFromA, remainingA, err := takeRoom(a, roomA)
	if err != nil {
		return nil, err
	}
	roomFromB, remainingB, err := takeRoom(b, roomB)
	if err != nil {
		return nil, err
	}

	rebuilt := map[string][]model.Room{
		staffAID: append(remainingA, roomFromB),
		staffBID: append(remainingB, roomFromA),
	}
	return rebuildResult(result, rebuilt), nil
}

// AggregatesFromRooms recomputes per-floor aggregate allocations from a
// detailed room list. This is the single source of truth for the aggregate
// view after any edit.
func AggregatesFromRooms(rooms []model.Room) map[int]model.RoomAllocation {
	byFloor := make(map[int]model.RoomAllocation)
	for _, room := range rooms {
		alloc, ok := byFloor[room.Floor]
		if !ok {
			alloc = model.RoomAllocation{RoomCounts: make(map[model.RoomType]int)}
		}
		if room.IsEco {
			alloc.EcoRooms++
		} else {
			alloc.RoomCounts[room.Type]++
		}
		byFloor[room.Floor] = alloc
	}
	return byFloor
}

// VerifyConsistency checks that every assignment's stored aggregates equal
// the aggregates recomputed from its detailed room list
func VerifyConsistency(result *allocator.OptimizationResult) error {
	for _, assignment := range result.Assignments {
		recomputed := AggregatesFromRooms(assignment.Rooms)
		if len(recomputed) != len(assignment.RoomsByFloor) {
			return fmt.Errorf("staff %s: %d floors in aggregates, %d in detailed rooms",
				assignment.Staff.ID, len(assignment.RoomsByFloor), len(recomputed))
		}
		for floorNumber, alloc := range assignment.RoomsByFloor {
			other, ok := recomputed[floorNumber]
			if !ok {
				return fmt.Errorf("staff %s: floor %d present in aggregates but not in detailed rooms",
					assignment.Staff.ID, floorNumber)
			}
			if other.EcoRooms != alloc.EcoRooms {
				return fmt.Errorf("staff %s floor %d: eco count %d in aggregates, %d recomputed",
					assignment.Staff.ID, floorNumber, alloc.EcoRooms, other.EcoRooms)
			}
			for _, t := range model.RoomTypeOrder {
				if other.RoomCounts[t] != alloc.RoomCounts[t] {
					return fmt.Errorf("staff %s floor %d: %s count %d in aggregates, %d recomputed",
						assignment.Staff.ID, floorNumber, t, alloc.RoomCounts[t], other.RoomCounts[t])
				}
			}
		}
	}
	return nil
}

// takeRoom removes the named room from an assignment's detailed list,
// returning the room and the remaining list as a fresh slice
func takeRoom(assignment *allocator.StaffAssignment, roomNumber string) (model.Room, []model.Room, error) {
	for i, room := range assignment.Rooms {
		if room.RoomNumber == roomNumber {
			remaining := make([]model.Room, 0, len(assignment.Rooms)-1)
			remaining = append(remaining, assignment.Rooms[:i]...)
			remaining = append(remaining, assignment.Rooms[i+1:]...)
			return room, remaining, nil
		}
	}
	return model.Room{}, nil, fmt.Errorf("room %s is not assigned to staff %s", roomNumber, assignment.Staff.ID)
}

func copyRooms(rooms []model.Room) []model.Room {
	fresh := make([]model.Room, len(rooms))
	copy(fresh, rooms)
	return fresh
}

// rebuildResult produces a new result in which the given staff have their
// detailed lists replaced and every touched assignment's aggregates and
// totals recomputed from the details
func rebuildResult(result *allocator.OptimizationResult, replaced map[string][]model.Room) *allocator.OptimizationResult {
	assignments := make([]*allocator.StaffAssignment, len(result.Assignments))
	for i, assignment := range result.Assignments {
		rooms, touched := replaced[assignment.Staff.ID]
		if !touched {
			assignments[i] = assignment
			continue
		}

		fresh := allocator.NewStaffAssignment(assignment.Staff)
		fresh.Rooms = rooms
		fresh.RoomsByFloor = AggregatesFromRooms(rooms)

		bathCost := 0.0
		if result.Config != nil && assignment.Staff.ID == result.Config.BathDutyAssignee {
			bathCost = result.Config.BathDutyCost
		}
		weights := model.DefaultPointWeights()
		if result.Config != nil {
			weights = result.Config.Settings.Weights
		}
		fresh.Finalize(weights, bathCost)
		assignments[i] = fresh
	}

	return &allocator.OptimizationResult{
		TargetDate:  result.TargetDate,
		Config:      result.Config,
		Assignments: assignments,
		Warnings:    result.Warnings,
	}
}
