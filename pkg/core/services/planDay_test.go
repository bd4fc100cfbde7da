package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hoteldesk/roomrota/internal/config"
	"github.com/hoteldesk/roomrota/pkg/db"
)

// mockDatabase is an in-memory db.Database for service tests
type mockDatabase struct {
	staff     []db.Staff
	inventory map[string][]db.InventoryRoom

	savedPlan        *db.Plan
	savedAssignments []db.PlanAssignment
	savedRooms       []db.PlanRoom
	saveCalls        int
}

func (m *mockDatabase) GetStaff(ctx context.Context) ([]db.Staff, error) {
	return m.staff, nil
}

func (m *mockDatabase) InsertStaff(ctx context.Context, staff *db.Staff) error {
	m.staff = append(m.staff, *staff)
	return nil
}

func (m *mockDatabase) ReplaceInventory(ctx context.Context, date time.Time, rooms []db.InventoryRoom) error {
	if m.inventory == nil {
		m.inventory = make(map[string][]db.InventoryRoom)
	}
	m.inventory[date.Format("2006-01-02")] = rooms
	return nil
}

func (m *mockDatabase) GetInventory(ctx context.Context, date time.Time) ([]db.InventoryRoom, error) {
	return m.inventory[date.Format("2006-01-02")], nil
}

func (m *mockDatabase) SavePlan(ctx context.Context, plan *db.Plan, assignments []db.PlanAssignment, rooms []db.PlanRoom) error {
	m.savedPlan = plan
	m.savedAssignments = assignments
	m.savedRooms = rooms
	m.saveCalls++
	return nil
}

func (m *mockDatabase) GetPlan(ctx context.Context, date time.Time) (*db.Plan, []db.PlanAssignment, []db.PlanRoom, error) {
	if m.savedPlan == nil || !m.savedPlan.TargetDate.Equal(date) {
		return nil, nil, nil, fmt.Errorf("no plan for %s", date.Format("2006-01-02"))
	}
	return m.savedPlan, m.savedAssignments, m.savedRooms, nil
}

func testDatabase() *mockDatabase {
	database := &mockDatabase{
		staff: []db.Staff{
			{ID: "a", Name: "Staff a", Active: true},
			{ID: "b", Name: "Staff b", Active: true},
		},
		inventory: make(map[string][]db.InventoryRoom),
	}

	var rooms []db.InventoryRoom
	for i := 1; i <= 10; i++ {
		rooms = append(rooms, db.InventoryRoom{
			ID:         fmt.Sprintf("id-3%02d", i),
			RoomNumber: fmt.Sprintf("3%02d", i),
			RoomType:   "S",
			Floor:      3,
			Building:   "main",
		})
		rooms = append(rooms, db.InventoryRoom{
			ID:         fmt.Sprintf("id-4%02d", i),
			RoomNumber: fmt.Sprintf("4%02d", i),
			RoomType:   "D",
			Floor:      4,
			Building:   "main",
		})
	}
	database.inventory["2026-08-24"] = rooms
	return database
}

func testConfig() *config.Config {
	return &config.Config{DatabaseURL: "postgres://test"}
}

func TestPlanDay_ComputesAndSavesPlan(t *testing.T) {
	database := testDatabase()

	result, err := PlanDay(context.Background(), database, testConfig(), zap.NewNop(), PlanDayParams{
		TargetDate: "2026-08-24",
	})
	require.NoError(t, err)
	require.Nil(t, result.Mismatch)

	require.Len(t, result.Result.Assignments, 2)
	totalRooms := 0
	for _, assignment := range result.Result.Assignments {
		totalRooms += assignment.TotalRooms
		assert.NotNil(t, assignment.Rooms, "detailed room lists are attached")
	}
	assert.Equal(t, 20, totalRooms)

	require.NotNil(t, database.savedPlan, "the plan is persisted")
	assert.Len(t, database.savedAssignments, 2)
	assert.Len(t, database.savedRooms, 20)
}

func TestPlanDay_DryRunDoesNotPersist(t *testing.T) {
	database := testDatabase()

	result, err := PlanDay(context.Background(), database, testConfig(), zap.NewNop(), PlanDayParams{
		TargetDate: "2026-08-24",
		DryRun:     true,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.Result.Assignments)
	assert.Nil(t, database.savedPlan)
	assert.Zero(t, database.saveCalls)
}

func TestPlanDay_BathOverrideSelectsAssignee(t *testing.T) {
	database := testDatabase()

	result, err := PlanDay(context.Background(), database, testConfig(), zap.NewNop(), PlanDayParams{
		TargetDate:       "2026-08-24",
		BathTypeOverride: "normal",
	})
	require.NoError(t, err)

	config := result.Result.Config
	assert.NotEmpty(t, config.BathDutyAssignee)
	assert.InDelta(t, 1.5, config.BathDutyCost, 1e-9)
}

func TestPlanDay_UnknownBathOverrideFails(t *testing.T) {
	_, err := PlanDay(context.Background(), testDatabase(), testConfig(), zap.NewNop(), PlanDayParams{
		TargetDate:       "2026-08-24",
		BathTypeOverride: "sauna",
	})
	assert.Error(t, err)
}

func TestPlanDay_MissingInventoryFails(t *testing.T) {
	_, err := PlanDay(context.Background(), testDatabase(), testConfig(), zap.NewNop(), PlanDayParams{
		TargetDate: "2026-08-25",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no inventory")
}

func TestPlanDay_BadDateFails(t *testing.T) {
	_, err := PlanDay(context.Background(), testDatabase(), testConfig(), zap.NewNop(), PlanDayParams{
		TargetDate: "24/08/2026",
	})
	assert.Error(t, err)
}

func TestPlanDay_RoomLimitsAreApplied(t *testing.T) {
	database := testDatabase()

	result, err := PlanDay(context.Background(), database, testConfig(), zap.NewNop(), PlanDayParams{
		TargetDate: "2026-08-24",
		RoomLimits: map[string]int{"a": 5},
	})
	require.NoError(t, err)

	a := result.Result.AssignmentFor("a")
	b := result.Result.AssignmentFor("b")
	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.LessOrEqual(t, a.TotalRooms, 10, "the capped staff takes the smaller share")
	assert.Equal(t, 20, a.TotalRooms+b.TotalRooms, "coverage is never sacrificed")
	assert.Less(t, a.TotalRooms, b.TotalRooms)
}
