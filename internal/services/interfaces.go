package services

import (
	"context"
	"time"

	"rigreport/internal/domain"
	"rigreport/internal/engine"
)

// ReportService handles the daily report lifecycle against the
// persistence layer: creation with derived sequence fields, loading with
// both logs assembled, and the save path that validates first but saves
// regardless.
type ReportService interface {
	NewReport(ctx context.Context, wellID, sectionID int64, reportDate time.Time) (*domain.DailyReport, []string, error)
	LoadReport(ctx context.Context, id int64) (*domain.DailyReport, error)
	LoadReportByDate(ctx context.Context, sectionID int64, reportDate time.Time) (*domain.DailyReport, error)
	SaveReport(ctx context.Context, report *domain.DailyReport) ([]engine.Warning, error)
	ListReports(ctx context.Context, wellID int64) ([]domain.ReportRecord, error)
}

// ExportService renders a daily report to an Excel workbook.
type ExportService interface {
	ExportReport(ctx context.Context, report *domain.DailyReport, well domain.Well, path string) error
}
