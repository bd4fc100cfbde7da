package model

import "sort"

// Building identifies which building a floor or room belongs to
type Building string

const (
	BuildingMain  Building = "main"
	BuildingAnnex Building = "annex"
)

// RoomType is the cleaning category of a room
type RoomType string

const (
	RoomTypeSingle       RoomType = "S"
	RoomTypeDouble       RoomType = "D"
	RoomTypeTwin         RoomType = "T"
	RoomTypeFamilyDouble RoomType = "FD"
)

func (t RoomType) IsValid() bool {
	return t == RoomTypeSingle || t == RoomTypeDouble || t == RoomTypeTwin || t == RoomTypeFamilyDouble
}

// RoomTypeOrder is the canonical iteration order for room-type maps.
// All per-type loops must use this order so output stays deterministic.
var RoomTypeOrder = []RoomType{RoomTypeSingle, RoomTypeDouble, RoomTypeTwin, RoomTypeFamilyDouble}

// BathCleaningType is the special bath-cleaning duty variant for a day
type BathCleaningType string

const (
	BathNone         BathCleaningType = "none"
	BathNormal       BathCleaningType = "normal"
	BathWithDraining BathCleaningType = "with_draining"
)

func (b BathCleaningType) IsValid() bool {
	return b == BathNone || b == BathNormal || b == BathWithDraining
}

// Label returns the display label used on published plans
func (b BathCleaningType) Label() string {
	switch b {
	case BathNormal:
		return "Bath cleaning"
	case BathWithDraining:
		return "Bath cleaning (with draining)"
	default:
		return ""
	}
}

// Staff represents one housekeeping staff member on the day's roster
type Staff struct {
	ID   string
	Name string
}

// Room is a single room in the day's cleaning inventory
type Room struct {
	RoomNumber string
	Type       RoomType
	IsEco      bool
	IsBroken   bool
	// Floor is the encoded floor number (see FloorBuilding)
	Floor    int
	Building Building
	Status   string
}

// NeedsCleaning reports whether the room takes part in allocation.
// Broken rooms stay in the inventory but are never assigned.
func (r Room) NeedsCleaning() bool {
	return !r.IsBroken
}

// FloorInfo summarizes one floor of the cleaning inventory.
//
// RoomCounts includes eco rooms under their base type; EcoRoomCount says how
// many of them run the lighter eco protocol, so EcoRoomCount never exceeds
// the sum of RoomCounts. EcoCounts breaks EcoRoomCount down by base type.
type FloorInfo struct {
	// FloorNumber is encoded: values up to 20 are main-building floors,
	// values above 20 are annex floors (annex floor = FloorNumber - 20)
	FloorNumber  int
	RoomCounts   map[RoomType]int
	EcoRoomCount int
	EcoCounts    map[RoomType]int
}

// Building returns which building this floor belongs to
func (f FloorInfo) Building() Building {
	return FloorBuilding(f.FloorNumber)
}

// IsMainBuilding reports whether the floor is in the main building
func (f FloorInfo) IsMainBuilding() bool {
	return f.Building() == BuildingMain
}

// BuildingFloor returns the physical floor number within its building
func (f FloorInfo) BuildingFloor() int {
	if f.FloorNumber > annexFloorOffset {
		return f.FloorNumber - annexFloorOffset
	}
	return f.FloorNumber
}

// TotalRooms returns the number of rooms on the floor
func (f FloorInfo) TotalRooms() int {
	total := 0
	for _, t := range RoomTypeOrder {
		total += f.RoomCounts[t]
	}
	return total
}

// NormalizedEcoCounts returns the per-type breakdown of the floor's eco
// rooms. When EcoCounts was not supplied (summaries built by hand rather
// than from real inventory), the eco rooms are attributed to base types in
// canonical type order, capped by each type's count, so downstream math
// stays deterministic.
func (f FloorInfo) NormalizedEcoCounts() map[RoomType]int {
	sum := 0
	for _, n := range f.EcoCounts {
		sum += n
	}
	if sum == f.EcoRoomCount {
		return f.EcoCounts
	}

	eco := make(map[RoomType]int, len(RoomTypeOrder))
	remaining := f.EcoRoomCount
	for _, t := range RoomTypeOrder {
		n := min(remaining, f.RoomCounts[t])
		eco[t] = n
		remaining -= n
	}
	return eco
}

// RoomAllocation is a floor-scoped aggregate owned by exactly one staff
// assignment. Unlike FloorInfo, RoomCounts here holds only non-eco rooms;
// eco rooms are tracked separately because they share one point weight
// regardless of base type.
type RoomAllocation struct {
	RoomCounts map[RoomType]int
	EcoRooms   int
}

// TotalRooms returns the number of rooms in the allocation
func (a RoomAllocation) TotalRooms() int {
	total := a.EcoRooms
	for _, t := range RoomTypeOrder {
		total += a.RoomCounts[t]
	}
	return total
}

// Clone returns a deep copy of the allocation
func (a RoomAllocation) Clone() RoomAllocation {
	counts := make(map[RoomType]int, len(a.RoomCounts))
	for t, n := range a.RoomCounts {
		counts[t] = n
	}
	return RoomAllocation{RoomCounts: counts, EcoRooms: a.EcoRooms}
}

// CleaningData is the full day's concrete room inventory, partitioned by
// building. It is a read-only pool for the room number assigner.
type CleaningData struct {
	MainRooms  []Room
	AnnexRooms []Room
}

// BuildCleaningData partitions rooms by building, preserving input order
func BuildCleaningData(rooms []Room) CleaningData {
	var data CleaningData
	for _, room := range rooms {
		if room.Building == BuildingAnnex {
			data.AnnexRooms = append(data.AnnexRooms, room)
		} else {
			data.MainRooms = append(data.MainRooms, room)
		}
	}
	return data
}

// AllRooms returns the inventory as a single slice, main building first
func (c CleaningData) AllRooms() []Room {
	rooms := make([]Room, 0, len(c.MainRooms)+len(c.AnnexRooms))
	rooms = append(rooms, c.MainRooms...)
	rooms = append(rooms, c.AnnexRooms...)
	return rooms
}

// FloorSummaries derives the ordered floor summary list from the inventory.
// Broken rooms are excluded. Floors come out sorted by encoded floor number,
// which puts the main building first, then the annex, each ascending.
func (c CleaningData) FloorSummaries() []FloorInfo {
	byFloor := make(map[int]*FloorInfo)
	for _, room := range c.AllRooms() {
		if !room.NeedsCleaning() {
			continue
		}
		info, ok := byFloor[room.Floor]
		if !ok {
			info = &FloorInfo{
				FloorNumber: room.Floor,
				RoomCounts:  make(map[RoomType]int),
				EcoCounts:   make(map[RoomType]int),
			}
			byFloor[room.Floor] = info
		}
		info.RoomCounts[room.Type]++
		if room.IsEco {
			info.EcoRoomCount++
			info.EcoCounts[room.Type]++
		}
	}

	floors := make([]FloorInfo, 0, len(byFloor))
	for _, info := range byFloor {
		floors = append(floors, *info)
	}

	// Ascending encoded floor number is the fixed allocation order:
	// main building first, then annex, each ascending
	sort.Slice(floors, func(i, j int) bool {
		return floors[i].FloorNumber < floors[j].FloorNumber
	})
	return floors
}
