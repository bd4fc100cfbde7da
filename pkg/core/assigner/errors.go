package assigner

import (
	"fmt"
	"strings"

	"github.com/hoteldesk/roomrota/pkg/core/model"
)

// InventoryMismatch records one shortfall: an aggregate count that exceeded
// what the real inventory pool held for a floor and type
type InventoryMismatch struct {
	FloorNumber int
	RoomType    model.RoomType
	Eco         bool
	Wanted      int
	Assigned    int
}

func (m InventoryMismatch) String() string {
	kind := string(m.RoomType)
	if m.Eco {
		kind = "eco"
	}
	return fmt.Sprintf("floor %d: wanted %d %s rooms, inventory had %d", m.FloorNumber, m.Wanted, kind, m.Assigned)
}

// InventoryMismatchError reports aggregate counts exceeding the real
// inventory during detailed assignment. The run it accompanies is partial
// but internally consistent and remains usable downstream.
type InventoryMismatchError struct {
	Shortfalls []InventoryMismatch
}

func (e *InventoryMismatchError) Error() string {
	parts := make([]string, len(e.Shortfalls))
	for i, shortfall := range e.Shortfalls {
		parts[i] = shortfall.String()
	}
	return fmt.Sprintf("inventory mismatch: %s", strings.Join(parts, "; "))
}
