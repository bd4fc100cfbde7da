package allocator

import (
	"fmt"
	"math"
	"sort"

	"github.com/hoteldesk/roomrota/pkg/core/model"
)

// epsilon absorbs float noise in point comparisons
const epsilon = 1e-9

// BuildLoadConfig turns the day's inventory totals, the roster and the
// per-staff limits into a target workload plan.
//
// Every staff member starts from an equal share of the total inventory
// points. A positive limit caps the staff's target at the point-equivalent
// of that many rooms; a negative limit's magnitude floors it. Unconstrained
// staff absorb whatever the constrained ones give up or demand, so the sum
// of all targets equals the total inventory points. Any leftover lands on
// the staff member currently lowest.
//
// Limits naming a staff id that is not on the roster are ignored and
// surfaced as warnings. An empty roster with a nonzero inventory is a
// ConfigError.
func BuildLoadConfig(
	staff []model.Staff,
	totals InventoryTotals,
	bathType model.BathCleaningType,
	rawLimits map[string]int,
	settings Settings,
) (*LoadConfig, error) {
	if len(staff) == 0 && totals.TotalRooms > 0 {
		return nil, &ConfigError{Reason: fmt.Sprintf("%d rooms to clean but no staff on the roster", totals.TotalRooms)}
	}

	known := make(map[string]bool, len(staff))
	for _, s := range staff {
		known[s.ID] = true
	}

	config := &LoadConfig{
		Staff:     staff,
		Targets:   make(map[string]float64, len(staff)),
		BathType:  bathType,
		RawLimits: make(map[string]int, len(rawLimits)),
		Settings:  settings,
	}

	// Drop limits for unknown staff ids, keep the rest. Unknown ids are
	// reported sorted so warning order is stable.
	var unknown []string
	for id, limit := range rawLimits {
		if !known[id] {
			unknown = append(unknown, id)
			continue
		}
		config.RawLimits[id] = limit
	}
	sort.Strings(unknown)
	for _, id := range unknown {
		config.Warnings = append(config.Warnings, fmt.Sprintf("room limit for unknown staff id %q ignored", id))
	}

	if len(staff) == 0 {
		return config, nil
	}

	pointsPerRoom := 0.0
	if totals.TotalRooms > 0 {
		pointsPerRoom = totals.TotalPoints / float64(totals.TotalRooms)
	}

	// Point-equivalents of the room limits. A minimum larger than the whole
	// inventory is clamped: the staff member simply receives all there is
	// (soft limit).
	capPoints := make(map[string]float64)
	floorPoints := make(map[string]float64)
	for _, s := range staff {
		if limit, ok := config.RoomCap(s.ID); ok {
			capPoints[s.ID] = float64(limit) * pointsPerRoom
		}
		if minRooms, ok := config.RoomFloor(s.ID); ok {
			floorPoints[s.ID] = math.Min(float64(minRooms)*pointsPerRoom, totals.TotalPoints)
		}
	}

	distributeTargets(config, staff, totals.TotalPoints, capPoints, floorPoints)

	// Rounding remainder goes to the staff member currently lowest
	assigned := 0.0
	for _, s := range staff {
		assigned += config.Targets[s.ID]
	}
	if leftover := totals.TotalPoints - assigned; math.Abs(leftover) > epsilon {
		lowest := staff[0].ID
		for _, s := range staff[1:] {
			if config.Targets[s.ID] < config.Targets[lowest]-epsilon {
				lowest = s.ID
			}
		}
		config.Targets[lowest] += leftover
	}

	// Bath duty goes to the least-loaded staff member before deduction;
	// ties resolve to the first on the roster
	if bathType != model.BathNone {
		assignee := staff[0].ID
		for _, s := range staff[1:] {
			if config.Targets[s.ID] < config.Targets[assignee]-epsilon {
				assignee = s.ID
			}
		}
		config.BathDutyAssignee = assignee
		config.BathDutyCost = settings.BathDutyCost(bathType)
		config.Targets[assignee] -= config.BathDutyCost
	}

	return config, nil
}

// distributeTargets water-fills the inventory points across the roster.
// Staff whose cap sits below the running equal share are pinned at their
// cap; staff whose floor sits above it are pinned at their floor; the share
// is recomputed after every pin so the remaining staff absorb the
// difference and the target sum is conserved.
func distributeTargets(
	config *LoadConfig,
	staff []model.Staff,
	totalPoints float64,
	capPoints map[string]float64,
	floorPoints map[string]float64,
) {
	unresolved := make([]string, 0, len(staff))
	for _, s := range staff {
		unresolved = append(unresolved, s.ID)
	}
	remaining := totalPoints

	for len(unresolved) > 0 {
		share := remaining / float64(len(unresolved))

		pinned := -1
		var pinnedAt float64
		for i, id := range unresolved {
			if limit, ok := capPoints[id]; ok && limit < share-epsilon {
				pinned, pinnedAt = i, limit
				break
			}
			if floor, ok := floorPoints[id]; ok && floor > share+epsilon {
				pinned, pinnedAt = i, floor
				break
			}
		}

		if pinned < 0 {
			for _, id := range unresolved {
				config.Targets[id] = share
			}
			return
		}

		id := unresolved[pinned]
		config.Targets[id] = pinnedAt
		remaining -= pinnedAt
		unresolved = append(unresolved[:pinned], unresolved[pinned+1:]...)
	}
}
