package model

// PointWeights holds the per-room-type workload multipliers used to compare
// cleaning effort across room types. Eco is an override, not an addition: an
// eco-flagged room scores Eco instead of its base-type weight.
type PointWeights struct {
	Single       float64
	Double       float64
	Twin         float64
	FamilyDouble float64
	Eco          float64
}

// DefaultPointWeights returns the standard workload weights
func DefaultPointWeights() PointWeights {
	return PointWeights{
		Single:       1.0,
		Double:       1.0,
		Twin:         1.67,
		FamilyDouble: 2.0,
		Eco:          0.2,
	}
}

// ForType returns the weight for a non-eco room of the given type
func (w PointWeights) ForType(t RoomType) float64 {
	switch t {
	case RoomTypeSingle:
		return w.Single
	case RoomTypeDouble:
		return w.Double
	case RoomTypeTwin:
		return w.Twin
	case RoomTypeFamilyDouble:
		return w.FamilyDouble
	default:
		return 0
	}
}

// RoomPoints returns the workload points for a single room
func (w PointWeights) RoomPoints(room Room) float64 {
	if room.IsEco {
		return w.Eco
	}
	return w.ForType(room.Type)
}

// AllocationPoints returns the workload points of an aggregate allocation
func (w PointWeights) AllocationPoints(alloc RoomAllocation) float64 {
	points := float64(alloc.EcoRooms) * w.Eco
	for _, t := range RoomTypeOrder {
		points += float64(alloc.RoomCounts[t]) * w.ForType(t)
	}
	return points
}

// FloorPoints returns the workload points of a whole floor. Eco rooms score
// the eco weight instead of their base-type weight.
func (w PointWeights) FloorPoints(floor FloorInfo) float64 {
	eco := floor.NormalizedEcoCounts()
	points := 0.0
	for _, t := range RoomTypeOrder {
		points += float64(floor.RoomCounts[t]-eco[t])*w.ForType(t) + float64(eco[t])*w.Eco
	}
	return points
}
