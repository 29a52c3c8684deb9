package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"rigreport/internal/domain"
	"rigreport/internal/engine"
	apperrors "rigreport/internal/errors"
	"rigreport/internal/repository/sqlite"
)

// reportServiceImpl implements the ReportService interface.
type reportServiceImpl struct {
	repo       sqlite.Repository
	sequencer  *engine.Sequencer
	accountant *engine.Accountant
	mapper     *domain.Mapper
	logger     *zap.Logger
}

// NewReportService creates a new ReportService instance.
func NewReportService(repo sqlite.Repository, logger *zap.Logger) ReportService {
	return &reportServiceImpl{
		repo:       repo,
		sequencer:  engine.NewSequencer(),
		accountant: engine.NewAccountant(),
		mapper:     domain.NewMapper(),
		logger:     logger,
	}
}

// NewReport creates a report for the given well section and date with
// the sequence fields derived from the stored well and prior report
// history. A sequencing note (missing spud date, report dated before
// spud) leaves the report number at its zero default and is returned to
// the caller alongside the report.
func (s *reportServiceImpl) NewReport(ctx context.Context, wellID, sectionID int64, reportDate time.Time) (*domain.DailyReport, []string, error) {
	dbWell, err := s.repo.GetWell(ctx, wellID)
	if err != nil {
		return nil, nil, err
	}
	well := s.mapper.Well.FromDatabase(*dbWell)

	dbRecords, err := s.repo.ListReportRecords(ctx, sectionID)
	if err != nil {
		return nil, nil, err
	}
	priorReports := s.mapper.ReportRecord.FromDatabaseSlice(dbRecords)

	report := domain.NewDailyReport(wellID, sectionID, reportDate)

	var notes []string
	if number, note := s.sequencer.NextReportNumber(well, reportDate); note != nil {
		notes = append(notes, note.String())
		s.logger.Warn("report number left unchanged",
			zap.Int64("well_id", wellID),
			zap.String("reason", note.String()))
	} else {
		report.ReportNumber = number
	}
	report.RigDay = s.sequencer.NextRigDay(sectionID, reportDate, priorReports)

	row := s.headerRow(report)
	if err := s.repo.CreateReport(ctx, row); err != nil {
		return nil, nil, err
	}
	report.ID = row.ID

	s.logger.Info("report created",
		zap.Int64("report_id", report.ID),
		zap.Int64("well_id", wellID),
		zap.Int64("section_id", sectionID),
		zap.Int("report_number", report.ReportNumber),
		zap.Int("rig_day", report.RigDay))

	return report, notes, nil
}

// LoadReport loads a report and both of its logs by ID.
func (s *reportServiceImpl) LoadReport(ctx context.Context, id int64) (*domain.DailyReport, error) {
	header, err := s.repo.GetReport(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.assemble(ctx, header)
}

// LoadReportByDate loads the report for a section on a specific date.
func (s *reportServiceImpl) LoadReportByDate(ctx context.Context, sectionID int64, reportDate time.Time) (*domain.DailyReport, error) {
	header, err := s.repo.GetReportBySectionDate(ctx, sectionID, reportDate)
	if err != nil {
		return nil, err
	}
	return s.assemble(ctx, header)
}

// SaveReport validates the report's logs and persists the header and all
// entries. Budget warnings are returned for highlighting but never block
// the save.
func (s *reportServiceImpl) SaveReport(ctx context.Context, report *domain.DailyReport) ([]engine.Warning, error) {
	if report.ID == 0 {
		return nil, apperrors.NewInvalidInputError("report_id", report.ID, "report must be created before saving")
	}

	warnings := s.accountant.ValidateReport(report)
	for _, warning := range warnings {
		s.logger.Warn("budget warning",
			zap.Int64("report_id", report.ID),
			zap.String("kind", string(warning.Kind)),
			zap.String("log", string(warning.LogKind)),
			zap.Int("entry_index", warning.EntryIndex))
	}

	if err := s.repo.UpdateReport(ctx, s.headerRow(report)); err != nil {
		return warnings, err
	}
	if err := s.repo.ReplaceEntries(ctx, report.ID, s.mapper.Report.EntriesToDatabase(report)); err != nil {
		return warnings, err
	}

	s.logger.Info("report saved",
		zap.Int64("report_id", report.ID),
		zap.Int("entries", len(report.FullDay.Entries)+len(report.MorningTour.Entries)),
		zap.Int("warnings", len(warnings)))

	return warnings, nil
}

// ListReports returns the sequencing records of all reports for a well.
func (s *reportServiceImpl) ListReports(ctx context.Context, wellID int64) ([]domain.ReportRecord, error) {
	headers, err := s.repo.ListReports(ctx, wellID)
	if err != nil {
		return nil, err
	}
	records := make([]domain.ReportRecord, len(headers))
	for i, header := range headers {
		records[i] = domain.ReportRecord{
			ID:           header.ID,
			SectionID:    header.SectionID,
			WellID:       header.WellID,
			ReportDate:   header.ReportDate,
			ReportNumber: header.ReportNumber,
			RigDay:       header.RigDay,
		}
	}
	return records, nil
}

func (s *reportServiceImpl) assemble(ctx context.Context, header *sqlite.DailyReport) (*domain.DailyReport, error) {
	entries, err := s.repo.ListEntries(ctx, header.ID)
	if err != nil {
		return nil, err
	}
	return s.mapper.Report.FromDatabase(*header, entries)
}

func (s *reportServiceImpl) headerRow(report *domain.DailyReport) *sqlite.DailyReport {
	row := s.mapper.Report.HeaderToDatabase(report)
	return &row
}
