package assigner

import (
	"sort"
	"strconv"
	"strings"

	"github.com/hoteldesk/roomrota/pkg/core/allocator"
	"github.com/hoteldesk/roomrota/pkg/core/model"
)

// AssignRoomNumbers expands each staff assignment's aggregate per-floor
// counts into concrete room numbers drawn from the real inventory.
//
// For every floor the real rooms are pooled by type, with eco rooms forming
// their own sub-pool. Staff are processed in assignment order; a staff
// member needing N rooms of a type on a floor receives the N lowest
// unassigned room numbers of that type, which tends to hand each staff a
// numerically contiguous block without an explicit contiguity search. Drawn
// rooms leave the pool, so no room is handed out twice.
//
// Assignment is best-effort: when the aggregates ask for more rooms than a
// pool holds, as many as remain are assigned and the shortfall is reported
// in the returned InventoryMismatchError, which is nil when everything
// matched. The detailed list is also attached to each assignment's Rooms
// field, grouped by each room's own floor.
func AssignRoomNumbers(inventory model.CleaningData, assignments []*allocator.StaffAssignment) (map[string][]model.Room, *InventoryMismatchError) {
	pools := buildPools(inventory)

	result := make(map[string][]model.Room, len(assignments))
	var shortfalls []InventoryMismatch

	for _, assignment := range assignments {
		var rooms []model.Room

		floorNumbers := make([]int, 0, len(assignment.RoomsByFloor))
		for floorNumber := range assignment.RoomsByFloor {
			floorNumbers = append(floorNumbers, floorNumber)
		}
		sort.Ints(floorNumbers)

		for _, floorNumber := range floorNumbers {
			alloc := assignment.RoomsByFloor[floorNumber]
			pool := pools[floorNumber]

			for _, t := range model.RoomTypeOrder {
				wanted := alloc.RoomCounts[t]
				if wanted == 0 {
					continue
				}
				drawn := pool.draw(t, wanted)
				rooms = append(rooms, drawn...)
				if len(drawn) < wanted {
					shortfalls = append(shortfalls, InventoryMismatch{
						FloorNumber: floorNumber,
						RoomType:    t,
						Wanted:      wanted,
						Assigned:    len(drawn),
					})
				}
			}

			if alloc.EcoRooms > 0 {
				drawn := pool.drawEco(alloc.EcoRooms)
				rooms = append(rooms, drawn...)
				if len(drawn) < alloc.EcoRooms {
					shortfalls = append(shortfalls, InventoryMismatch{
						FloorNumber: floorNumber,
						Eco:         true,
						Wanted:      alloc.EcoRooms,
						Assigned:    len(drawn),
					})
				}
			}
		}

		if rooms == nil {
			rooms = []model.Room{}
		}
		assignment.Rooms = rooms
		result[assignment.Staff.Name] = rooms
	}

	if len(shortfalls) > 0 {
		return result, &InventoryMismatchError{Shortfalls: shortfalls}
	}
	return result, nil
}

// floorPool holds one floor's unassigned rooms, per type plus the eco
// sub-pool, each sorted ascending by numeric room number
type floorPool struct {
	byType map[model.RoomType][]model.Room
	eco    []model.Room
}

func (p *floorPool) draw(t model.RoomType, n int) []model.Room {
	if p == nil {
		return nil
	}
	available := p.byType[t]
	if n > len(available) {
		n = len(available)
	}
	drawn := available[:n]
	p.byType[t] = available[n:]
	return drawn
}

func (p *floorPool) drawEco(n int) []model.Room {
	if p == nil {
		return nil
	}
	if n > len(p.eco) {
		n = len(p.eco)
	}
	drawn := p.eco[:n]
	p.eco = p.eco[n:]
	return drawn
}

// buildPools indexes the cleanable inventory by floor, type and eco flag
func buildPools(inventory model.CleaningData) map[int]*floorPool {
	pools := make(map[int]*floorPool)
	for _, room := range inventory.AllRooms() {
		if !room.NeedsCleaning() {
			continue
		}
		pool, ok := pools[room.Floor]
		if !ok {
			pool = &floorPool{byType: make(map[model.RoomType][]model.Room)}
			pools[room.Floor] = pool
		}
		if room.IsEco {
			pool.eco = append(pool.eco, room)
		} else {
			pool.byType[room.Type] = append(pool.byType[room.Type], room)
		}
	}

	for _, pool := range pools {
		for t := range pool.byType {
			sortByRoomNumber(pool.byType[t])
		}
		sortByRoomNumber(pool.eco)
	}
	return pools
}

// sortByRoomNumber orders rooms ascending by the numeric value of their
// room number; non-numeric room numbers sort last by raw string
func sortByRoomNumber(rooms []model.Room) {
	sort.SliceStable(rooms, func(i, j int) bool {
		ni, iOK := roomNumberValue(rooms[i].RoomNumber)
		nj, jOK := roomNumberValue(rooms[j].RoomNumber)
		switch {
		case iOK && jOK:
			if ni != nj {
				return ni < nj
			}
			return rooms[i].RoomNumber < rooms[j].RoomNumber
		case iOK:
			return true
		case jOK:
			return false
		default:
			return rooms[i].RoomNumber < rooms[j].RoomNumber
		}
	})
}

func roomNumberValue(roomNumber string) (int, bool) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, roomNumber)
	if digits == "" {
		return 0, false
	}
	value, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return value, true
}
