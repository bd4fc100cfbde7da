package model

import (
	"fmt"
	"strings"
)

// annexFloorOffset separates the two buildings in the encoded floor number:
// encoded floors above 20 are annex floors
const annexFloorOffset = 20

// FloorBuilding decodes which building an encoded floor number belongs to
func FloorBuilding(floorNumber int) Building {
	if floorNumber > annexFloorOffset {
		return BuildingAnnex
	}
	return BuildingMain
}

// EncodeFloor returns the encoded floor number for a physical floor in the
// given building
func EncodeFloor(building Building, floor int) int {
	if building == BuildingAnnex {
		return floor + annexFloorOffset
	}
	return floor
}

// RoomLocation derives building and encoded floor number from a raw room
// number string.
//
// Non-digit characters are stripped first. A 3-digit number, or a 4-digit
// number starting with "10", is a main-building room whose floor is the
// leading one or two digits. Any other 4-digit number is an annex room whose
// encoded floor is the leading two digits.
func RoomLocation(roomNumber string) (Building, int, error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, roomNumber)

	switch {
	case len(digits) == 3:
		return BuildingMain, int(digits[0] - '0'), nil
	case len(digits) == 4 && strings.HasPrefix(digits, "10"):
		return BuildingMain, 10, nil
	case len(digits) == 4:
		floor := int(digits[0]-'0')*10 + int(digits[1]-'0')
		return BuildingAnnex, floor, nil
	default:
		return "", 0, fmt.Errorf("room number %q does not map to a floor", roomNumber)
	}
}
