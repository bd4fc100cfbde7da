package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/hoteldesk/roomrota/pkg/core/model"
)

// Expected inventory workbook columns, in order
const (
	colRoomNumber = 0
	colRoomType   = 1
	colEco        = 2
	colBroken     = 3
	colStatus     = 4
)

// ReadInventory reads a day's room inventory from an Excel workbook.
//
// The first sheet is used. The first row is treated as a header. Each data
// row carries room number, room type (S/D/T/FD), an eco flag, a broken flag
// and an optional status. Floor and building are derived from the room
// number itself. Rows that cannot be parsed are skipped and reported as
// warnings rather than failing the whole import.
func ReadInventory(path string) ([]model.Room, []string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("sheet %s is empty", sheets[0])
	}

	var (
		result   []model.Room
		warnings []string
		seen     = make(map[string]bool)
	)

	for i, row := range rows[1:] {
		rowNumber := i + 2

		if isBlankRow(row) {
			continue
		}

		room, err := parseRow(row)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("row %d skipped: %v", rowNumber, err))
			continue
		}
		if seen[room.RoomNumber] {
			warnings = append(warnings, fmt.Sprintf("row %d skipped: duplicate room number %s", rowNumber, room.RoomNumber))
			continue
		}
		seen[room.RoomNumber] = true

		result = append(result, room)
	}

	return result, warnings, nil
}

func parseRow(row []string) (model.Room, error) {
	roomNumber := strings.TrimSpace(cell(row, colRoomNumber))
	if roomNumber == "" {
		return model.Room{}, fmt.Errorf("missing room number")
	}

	building, floor, err := model.RoomLocation(roomNumber)
	if err != nil {
		return model.Room{}, err
	}

	roomType := model.RoomType(strings.ToUpper(strings.TrimSpace(cell(row, colRoomType))))
	if !roomType.IsValid() {
		return model.Room{}, fmt.Errorf("room %s: unknown room type %q", roomNumber, cell(row, colRoomType))
	}

	return model.Room{
		RoomNumber: roomNumber,
		Type:       roomType,
		IsEco:      parseFlag(cell(row, colEco)),
		IsBroken:   parseFlag(cell(row, colBroken)),
		Floor:      floor,
		Building:   building,
		Status:     strings.TrimSpace(cell(row, colStatus)),
	}, nil
}

func cell(row []string, index int) string {
	if index >= len(row) {
		return ""
	}
	return row[index]
}

func parseFlag(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "y", "yes", "true", "eco", "x":
		return true
	default:
		return false
	}
}

func isBlankRow(row []string) bool {
	for _, value := range row {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}
