package assigner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoteldesk/roomrota/pkg/core/allocator"
	"github.com/hoteldesk/roomrota/pkg/core/model"
)

func mainRoom(number string, floor int, roomType model.RoomType) model.Room {
	return model.Room{RoomNumber: number, Type: roomType, Floor: floor, Building: model.BuildingMain}
}

func assignmentWith(staffID string, floor int, counts map[model.RoomType]int, ecoRooms int) *allocator.StaffAssignment {
	assignment := allocator.NewStaffAssignment(model.Staff{ID: staffID, Name: "Staff " + staffID})
	assignment.RoomsByFloor[floor] = model.RoomAllocation{RoomCounts: counts, EcoRooms: ecoRooms}
	return assignment
}

func TestAssignRoomNumbers_LowestNumbersFirst(t *testing.T) {
	inventory := model.BuildCleaningData([]model.Room{
		mainRoom("305", 3, model.RoomTypeSingle),
		mainRoom("301", 3, model.RoomTypeSingle),
		mainRoom("303", 3, model.RoomTypeSingle),
		mainRoom("302", 3, model.RoomTypeSingle),
	})
	first := assignmentWith("a", 3, map[model.RoomType]int{model.RoomTypeSingle: 2}, 0)
	second := assignmentWith("b", 3, map[model.RoomType]int{model.RoomTypeSingle: 2}, 0)

	result, mismatch := AssignRoomNumbers(inventory, []*allocator.StaffAssignment{first, second})
	require.Nil(t, mismatch)

	assert.Equal(t, []string{"301", "302"}, roomNumbers(result["Staff a"]),
		"the first staff takes the lowest numbers")
	assert.Equal(t, []string{"303", "305"}, roomNumbers(result["Staff b"]))
}

func TestAssignRoomNumbers_EcoDrawsFromEcoPool(t *testing.T) {
	eco := mainRoom("402", 4, model.RoomTypeDouble)
	eco.IsEco = true
	inventory := model.BuildCleaningData([]model.Room{
		mainRoom("401", 4, model.RoomTypeDouble),
		eco,
		mainRoom("403", 4, model.RoomTypeDouble),
	})
	assignment := assignmentWith("a", 4, map[model.RoomType]int{model.RoomTypeDouble: 2}, 1)

	result, mismatch := AssignRoomNumbers(inventory, []*allocator.StaffAssignment{assignment})
	require.Nil(t, mismatch)

	rooms := result["Staff a"]
	require.Len(t, rooms, 3)
	ecoCount := 0
	for _, room := range rooms {
		if room.IsEco {
			ecoCount++
			assert.Equal(t, "402", room.RoomNumber)
		}
	}
	assert.Equal(t, 1, ecoCount)
}

func TestAssignRoomNumbers_BrokenRoomsNeverAssigned(t *testing.T) {
	broken := mainRoom("501", 5, model.RoomTypeSingle)
	broken.IsBroken = true
	inventory := model.BuildCleaningData([]model.Room{
		broken,
		mainRoom("502", 5, model.RoomTypeSingle),
	})
	assignment := assignmentWith("a", 5, map[model.RoomType]int{model.RoomTypeSingle: 1}, 0)

	result, mismatch := AssignRoomNumbers(inventory, []*allocator.StaffAssignment{assignment})
	require.Nil(t, mismatch)
	assert.Equal(t, []string{"502"}, roomNumbers(result["Staff a"]))
}

func TestAssignRoomNumbers_ShortfallIsReportedNotFatal(t *testing.T) {
	inventory := model.BuildCleaningData([]model.Room{
		mainRoom("601", 6, model.RoomTypeTwin),
	})
	assignment := assignmentWith("a", 6, map[model.RoomType]int{model.RoomTypeTwin: 3}, 0)

	result, mismatch := AssignRoomNumbers(inventory, []*allocator.StaffAssignment{assignment})

	require.NotNil(t, mismatch)
	require.Len(t, mismatch.Shortfalls, 1)
	assert.Equal(t, 6, mismatch.Shortfalls[0].FloorNumber)
	assert.Equal(t, 3, mismatch.Shortfalls[0].Wanted)
	assert.Equal(t, 1, mismatch.Shortfalls[0].Assigned)

	// What could be assigned still is
	assert.Equal(t, []string{"601"}, roomNumbers(result["Staff a"]))
}

func TestAssignRoomNumbers_AttachesDetailToAssignments(t *testing.T) {
	inventory := model.BuildCleaningData([]model.Room{
		mainRoom("701", 7, model.RoomTypeSingle),
	})
	with := assignmentWith("a", 7, map[model.RoomType]int{model.RoomTypeSingle: 1}, 0)
	without := allocator.NewStaffAssignment(model.Staff{ID: "b", Name: "Staff b"})

	_, mismatch := AssignRoomNumbers(inventory, []*allocator.StaffAssignment{with, without})
	require.Nil(t, mismatch)

	assert.Equal(t, []string{"701"}, roomNumbers(with.Rooms))
	assert.NotNil(t, without.Rooms, "staff with no rooms still get an empty detailed list")
	assert.Empty(t, without.Rooms)
}

func roomNumbers(rooms []model.Room) []string {
	numbers := make([]string, len(rooms))
	for i, room := range rooms {
		numbers[i] = room.RoomNumber
	}
	return numbers
}
