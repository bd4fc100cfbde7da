package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomLocation_MainBuildingThreeDigits(t *testing.T) {
	building, floor, err := RoomLocation("305")
	require.NoError(t, err)
	assert.Equal(t, BuildingMain, building)
	assert.Equal(t, 3, floor)
}

func TestRoomLocation_MainBuildingTenthFloor(t *testing.T) {
	building, floor, err := RoomLocation("1001")
	require.NoError(t, err)
	assert.Equal(t, BuildingMain, building)
	assert.Equal(t, 10, floor)
}

func TestRoomLocation_AnnexFourDigits(t *testing.T) {
	building, floor, err := RoomLocation("2103")
	require.NoError(t, err)
	assert.Equal(t, BuildingAnnex, building)
	assert.Equal(t, 21, floor, "annex floors keep their encoded number")
}

func TestRoomLocation_StripsNonDigits(t *testing.T) {
	building, floor, err := RoomLocation("R-305")
	require.NoError(t, err)
	assert.Equal(t, BuildingMain, building)
	assert.Equal(t, 3, floor)
}

func TestRoomLocation_RejectsUnmappableNumbers(t *testing.T) {
	for _, roomNumber := range []string{"", "12", "12345", "lobby"} {
		_, _, err := RoomLocation(roomNumber)
		assert.Error(t, err, "room number %q should not map to a floor", roomNumber)
	}
}

func TestFloorBuilding(t *testing.T) {
	assert.Equal(t, BuildingMain, FloorBuilding(3))
	assert.Equal(t, BuildingMain, FloorBuilding(10))
	assert.Equal(t, BuildingAnnex, FloorBuilding(21))
	assert.Equal(t, BuildingAnnex, FloorBuilding(35))
}

func TestEncodeFloor(t *testing.T) {
	assert.Equal(t, 5, EncodeFloor(BuildingMain, 5))
	assert.Equal(t, 22, EncodeFloor(BuildingAnnex, 2))
	assert.Equal(t, BuildingAnnex, FloorBuilding(EncodeFloor(BuildingAnnex, 1)))
}
