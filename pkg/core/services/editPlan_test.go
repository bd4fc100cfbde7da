package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hoteldesk/roomrota/pkg/core/editor"
)

func planForEditing(t *testing.T) *mockDatabase {
	t.Helper()
	database := testDatabase()
	_, err := PlanDay(context.Background(), database, testConfig(), zap.NewNop(), PlanDayParams{
		TargetDate: "2026-08-24",
	})
	require.NoError(t, err)
	return database
}

func TestLoadPlan_ReconstructsStoredPlan(t *testing.T) {
	database := planForEditing(t)

	result, err := LoadPlan(context.Background(), database, testConfig(), zap.NewNop(), "2026-08-24")
	require.NoError(t, err)

	require.Len(t, result.Assignments, 2)
	totalRooms := 0
	for _, assignment := range result.Assignments {
		totalRooms += assignment.TotalRooms
	}
	assert.Equal(t, 20, totalRooms)
	assert.NoError(t, editor.VerifyConsistency(result))
}

func TestLoadPlan_MissingPlanFails(t *testing.T) {
	database := testDatabase()
	_, err := LoadPlan(context.Background(), database, testConfig(), zap.NewNop(), "2026-08-24")
	assert.Error(t, err)
}

func TestMoveRoom_PersistsEditedPlan(t *testing.T) {
	database := planForEditing(t)

	before, err := LoadPlan(context.Background(), database, testConfig(), zap.NewNop(), "2026-08-24")
	require.NoError(t, err)
	source := before.Assignments[0]
	require.NotEmpty(t, source.Rooms)
	roomNumber := source.Rooms[0].RoomNumber
	target := before.Assignments[1]

	saves := database.saveCalls
	edited, err := MoveRoom(context.Background(), database, testConfig(), zap.NewNop(),
		"2026-08-24", roomNumber, source.Staff.ID, target.Staff.ID)
	require.NoError(t, err)

	assert.Equal(t, saves+1, database.saveCalls, "the edit is written back")
	assert.Equal(t, source.TotalRooms-1, edited.AssignmentFor(source.Staff.ID).TotalRooms)
	assert.Equal(t, target.TotalRooms+1, edited.AssignmentFor(target.Staff.ID).TotalRooms)

	// The stored plan reflects the edit
	reloaded, err := LoadPlan(context.Background(), database, testConfig(), zap.NewNop(), "2026-08-24")
	require.NoError(t, err)
	assert.Equal(t, source.TotalRooms-1, reloaded.AssignmentFor(source.Staff.ID).TotalRooms)
	assert.NoError(t, editor.VerifyConsistency(reloaded))
}

func TestMoveRoom_UnknownRoomLeavesPlanUntouched(t *testing.T) {
	database := planForEditing(t)
	saves := database.saveCalls

	_, err := MoveRoom(context.Background(), database, testConfig(), zap.NewNop(),
		"2026-08-24", "9999", "a", "b")
	require.Error(t, err)
	assert.Equal(t, saves, database.saveCalls)
}

func TestSwapRooms_PersistsBothSides(t *testing.T) {
	database := planForEditing(t)

	before, err := LoadPlan(context.Background(), database, testConfig(), zap.NewNop(), "2026-08-24")
	require.NoError(t, err)
	a := before.Assignments[0]
	b := before.Assignments[1]
	require.NotEmpty(t, a.Rooms)
	require.NotEmpty(t, b.Rooms)

	edited, err := SwapRooms(context.Background(), database, testConfig(), zap.NewNop(),
		"2026-08-24", a.Rooms[0].RoomNumber, a.Staff.ID, b.Rooms[0].RoomNumber, b.Staff.ID)
	require.NoError(t, err)

	assert.Equal(t, a.TotalRooms, edited.AssignmentFor(a.Staff.ID).TotalRooms, "a swap keeps the counts")
	assert.Equal(t, b.TotalRooms, edited.AssignmentFor(b.Staff.ID).TotalRooms)
	assert.NoError(t, editor.VerifyConsistency(edited))
}
