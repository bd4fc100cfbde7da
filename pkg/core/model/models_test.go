package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloorSummaries_GroupsByFloorAndExcludesBroken(t *testing.T) {
	rooms := []Room{
		{RoomNumber: "301", Type: RoomTypeSingle, Floor: 3, Building: BuildingMain},
		{RoomNumber: "302", Type: RoomTypeTwin, Floor: 3, Building: BuildingMain},
		{RoomNumber: "303", Type: RoomTypeTwin, Floor: 3, Building: BuildingMain, IsEco: true},
		{RoomNumber: "304", Type: RoomTypeDouble, Floor: 3, Building: BuildingMain, IsBroken: true},
		{RoomNumber: "2101", Type: RoomTypeFamilyDouble, Floor: 21, Building: BuildingAnnex},
	}

	floors := BuildCleaningData(rooms).FloorSummaries()
	require.Len(t, floors, 2)

	assert.Equal(t, 3, floors[0].FloorNumber, "main building floors come first")
	assert.Equal(t, 1, floors[0].RoomCounts[RoomTypeSingle])
	assert.Equal(t, 2, floors[0].RoomCounts[RoomTypeTwin], "eco rooms count under their base type")
	assert.Equal(t, 0, floors[0].RoomCounts[RoomTypeDouble], "broken rooms are excluded")
	assert.Equal(t, 1, floors[0].EcoRoomCount)
	assert.Equal(t, 1, floors[0].EcoCounts[RoomTypeTwin])

	assert.Equal(t, 21, floors[1].FloorNumber)
	assert.False(t, floors[1].IsMainBuilding())
	assert.Equal(t, 1, floors[1].BuildingFloor())
}

func TestFloorInfo_EcoNeverExceedsRoomCounts(t *testing.T) {
	floor := FloorInfo{
		FloorNumber:  4,
		RoomCounts:   map[RoomType]int{RoomTypeSingle: 2, RoomTypeDouble: 1},
		EcoRoomCount: 3,
	}

	eco := floor.NormalizedEcoCounts()
	total := 0
	for _, rt := range RoomTypeOrder {
		assert.LessOrEqual(t, eco[rt], floor.RoomCounts[rt])
		total += eco[rt]
	}
	assert.Equal(t, floor.EcoRoomCount, total)
}

func TestRoomAllocation_TotalRoomsIncludesEco(t *testing.T) {
	alloc := RoomAllocation{
		RoomCounts: map[RoomType]int{RoomTypeSingle: 2, RoomTypeTwin: 1},
		EcoRooms:   3,
	}
	assert.Equal(t, 6, alloc.TotalRooms())
}

func TestRoomAllocation_CloneIsIndependent(t *testing.T) {
	original := RoomAllocation{RoomCounts: map[RoomType]int{RoomTypeSingle: 1}}
	clone := original.Clone()
	clone.RoomCounts[RoomTypeSingle] = 9
	assert.Equal(t, 1, original.RoomCounts[RoomTypeSingle])
}

func TestDefaultPointWeights(t *testing.T) {
	weights := DefaultPointWeights()
	assert.Equal(t, 1.0, weights.Single)
	assert.Equal(t, 1.0, weights.Double)
	assert.Equal(t, 1.67, weights.Twin)
	assert.Equal(t, 2.0, weights.FamilyDouble)
	assert.Equal(t, 0.2, weights.Eco)
}

func TestFloorPoints_EcoOverridesBaseWeight(t *testing.T) {
	weights := DefaultPointWeights()
	floor := FloorInfo{
		FloorNumber:  3,
		RoomCounts:   map[RoomType]int{RoomTypeSingle: 2, RoomTypeTwin: 3},
		EcoRoomCount: 1,
		EcoCounts:    map[RoomType]int{RoomTypeSingle: 1},
	}

	// 1 single + 3 twins at full weight, 1 eco single at the eco weight
	assert.InDelta(t, 1*1.0+3*1.67+1*0.2, weights.FloorPoints(floor), 1e-9)
}
