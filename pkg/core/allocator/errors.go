package allocator

import "fmt"

// ConfigError reports impossible or contradictory constraints found while
// building a LoadConfig
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("load config: %s", e.Reason)
}

// UnassignableInventoryError reports a nonzero inventory with no staff to
// receive it
type UnassignableInventoryError struct {
	FloorCount int
	RoomCount  int
}

func (e *UnassignableInventoryError) Error() string {
	return fmt.Sprintf("no staff available for %d rooms across %d floors", e.RoomCount, e.FloorCount)
}
