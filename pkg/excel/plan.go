package excel

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/hoteldesk/roomrota/pkg/core/allocator"
	"github.com/hoteldesk/roomrota/pkg/core/model"
)

const planSheetName = "Cleaning Plan"

// WritePlan renders an optimization result as an Excel workbook: one summary
// row per staff member followed by their concrete room numbers per floor
func WritePlan(result *allocator.OptimizationResult) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(planSheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	title := fmt.Sprintf("Cleaning plan for %s", result.TargetDate)
	if err := f.SetCellValue(planSheetName, "A1", title); err != nil {
		return nil, fmt.Errorf("failed to write title: %w", err)
	}

	headers := []string{"Staff", "Floors", "Rooms", "Points", "Adjusted", "Bath Duty", "Room Numbers"}
	for i, header := range headers {
		cellRef, err := excelize.CoordinatesToCellName(i+1, 3)
		if err != nil {
			return nil, fmt.Errorf("failed to build cell reference: %w", err)
		}
		if err := f.SetCellValue(planSheetName, cellRef, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}
	if err := f.SetCellStyle(planSheetName, "A3", "G3", headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	row := 4
	for _, assignment := range result.Assignments {
		bathDuty := ""
		if result.Config != nil && result.Config.BathDutyAssignee == assignment.Staff.ID {
			bathDuty = result.Config.BathType.Label()
		}

		values := []interface{}{
			assignment.Staff.Name,
			floorList(assignment.Floors),
			assignment.TotalRooms,
			assignment.TotalPoints,
			assignment.AdjustedScore,
			bathDuty,
			roomNumberList(assignment.Rooms),
		}
		for i, value := range values {
			cellRef, err := excelize.CoordinatesToCellName(i+1, row)
			if err != nil {
				return nil, fmt.Errorf("failed to build cell reference: %w", err)
			}
			if err := f.SetCellValue(planSheetName, cellRef, value); err != nil {
				return nil, fmt.Errorf("failed to write assignment row: %w", err)
			}
		}
		row++
	}

	if len(result.Warnings) > 0 {
		row++
		if err := f.SetCellValue(planSheetName, fmt.Sprintf("A%d", row), "Warnings"); err != nil {
			return nil, fmt.Errorf("failed to write warnings header: %w", err)
		}
		for _, warning := range result.Warnings {
			row++
			if err := f.SetCellValue(planSheetName, fmt.Sprintf("A%d", row), warning); err != nil {
				return nil, fmt.Errorf("failed to write warning: %w", err)
			}
		}
	}

	if err := f.SetColWidth(planSheetName, "A", "F", 14); err != nil {
		return nil, fmt.Errorf("failed to set column widths: %w", err)
	}
	if err := f.SetColWidth(planSheetName, "G", "G", 60); err != nil {
		return nil, fmt.Errorf("failed to set column widths: %w", err)
	}

	return f, nil
}

// PlanBytes renders the plan workbook into a byte slice suitable for
// attaching to an email
func PlanBytes(result *allocator.OptimizationResult) ([]byte, error) {
	f, err := WritePlan(result)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func floorList(floors []int) string {
	parts := make([]string, len(floors))
	for i, floor := range floors {
		parts[i] = fmt.Sprintf("%d", floor)
	}
	return strings.Join(parts, ", ")
}

func roomNumberList(rooms []model.Room) string {
	numbers := make([]string, len(rooms))
	for i, room := range rooms {
		numbers[i] = room.RoomNumber
	}
	sort.Strings(numbers)
	return strings.Join(numbers, ", ")
}
