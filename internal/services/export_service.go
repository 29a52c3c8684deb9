package services

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"rigreport/internal/domain"
	"rigreport/internal/engine"
)

const exportSheetName = "Daily Report"

// exportServiceImpl implements the ExportService interface.
type exportServiceImpl struct {
	accountant *engine.Accountant
	logger     *zap.Logger
}

// NewExportService creates a new ExportService instance.
func NewExportService(logger *zap.Logger) ExportService {
	return &exportServiceImpl{
		accountant: engine.NewAccountant(),
		logger:     logger,
	}
}

// ExportReport writes the report header, both time logs, and the
// aggregated totals to an Excel workbook at the given path.
func (s *exportServiceImpl) ExportReport(ctx context.Context, report *domain.DailyReport, well domain.Well, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(exportSheetName)
	if err != nil {
		return fmt.Errorf("create export sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(exportSheetName, "A", "B", 10)
	f.SetColWidth(exportSheetName, "C", "F", 14)
	f.SetColWidth(exportSheetName, "G", "G", 44)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetCellValue(exportSheetName, "A1", fmt.Sprintf("%s — Daily Drilling Report", well.Name))
	f.MergeCell(exportSheetName, "A1", "G1")
	f.SetCellStyle(exportSheetName, "A1", "A1", headerStyle)

	row := 3
	headerFields := [][2]interface{}{
		{"Date", report.ReportDate.Format("2006-01-02")},
		{"Report No.", report.ReportNumber},
		{"Rig Day", report.RigDay},
		{"Depth From (m)", report.DepthStart},
		{"Depth To (m)", report.DepthEnd},
		{"Status", report.Status},
	}
	for _, field := range headerFields {
		f.SetCellValue(exportSheetName, fmt.Sprintf("A%d", row), field[0])
		f.SetCellValue(exportSheetName, fmt.Sprintf("B%d", row), field[1])
		row++
	}
	row++

	row = s.writeLog(f, report.FullDay, "Time Log (24h)", headerStyle, row)
	row = s.writeLog(f, report.MorningTour, "Morning Tour (6h)", headerStyle, row)

	totals := s.accountant.Aggregate(report)
	f.SetCellValue(exportSheetName, fmt.Sprintf("A%d", row), "Total Hours")
	f.SetCellValue(exportSheetName, fmt.Sprintf("B%d", row), totals.TotalHours)
	row++
	f.SetCellValue(exportSheetName, fmt.Sprintf("A%d", row), "NPT Hours")
	f.SetCellValue(exportSheetName, fmt.Sprintf("B%d", row), totals.NPTHours)
	row++
	f.SetCellValue(exportSheetName, fmt.Sprintf("A%d", row), "Productivity %")
	f.SetCellValue(exportSheetName, fmt.Sprintf("B%d", row), fmt.Sprintf("%.2f", totals.ProductivityPct))
	row++
	for _, note := range totals.Notes {
		f.SetCellValue(exportSheetName, fmt.Sprintf("A%d", row), "Note")
		f.SetCellValue(exportSheetName, fmt.Sprintf("B%d", row), note.Message)
		row++
	}

	if err := f.SaveAs(path); err != nil {
		s.logger.Error("write export workbook", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("write export workbook: %w", err)
	}

	s.logger.Info("report exported",
		zap.Int64("report_id", report.ID),
		zap.String("path", path))
	return nil
}

func (s *exportServiceImpl) writeLog(f *excelize.File, log *domain.Log, title string, headerStyle int, row int) int {
	f.SetCellValue(exportSheetName, fmt.Sprintf("A%d", row), title)
	f.MergeCell(exportSheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("G%d", row))
	f.SetCellStyle(exportSheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), headerStyle)
	row++

	columns := []string{"From", "To", "Hours", "Phase", "Code", "NPT", "Description"}
	for i, column := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(exportSheetName, cell, column)
	}
	row++

	for _, entry := range log.Entries {
		npt := ""
		if entry.IsNPT {
			npt = "NPT"
		}
		values := []interface{}{
			entry.From.String(),
			entry.To.String(),
			entry.DurationHours,
			entry.MainPhase,
			fmt.Sprintf("%s/%s", entry.MainCode, entry.SubCode),
			npt,
			entry.Description,
		}
		for i, value := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(exportSheetName, cell, value)
		}
		row++
	}

	return row + 1
}
