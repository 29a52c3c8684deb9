package api

import (
	"context"
	"time"

	"go.uber.org/zap"

	"rigreport/internal/domain"
	"rigreport/internal/engine"
	"rigreport/internal/repository/sqlite"
	"rigreport/internal/services"
)

// API is the in-process surface the form layer consumes: the pure
// accounting/sequencing operations plus the repository-backed well and
// report lifecycle.
type API interface {
	// Pure engine operations
	ComputeDuration(from, to domain.TimeValue) float64
	SuggestEntry(log *domain.Log) domain.TimeLogEntry
	ValidateLog(log *domain.Log) []engine.Warning
	Aggregate(report *domain.DailyReport) engine.Totals
	NextReportNumber(well domain.Well, reportDate time.Time) (int, *engine.SequencingNote)
	NextRigDay(sectionID int64, reportDate time.Time, priorReports []domain.ReportRecord) int

	// Well operations
	CreateWell(ctx context.Context, name string, spudDate *time.Time) (*domain.Well, error)
	GetWell(ctx context.Context, id int64) (*domain.Well, error)
	ListWells(ctx context.Context) ([]*domain.Well, error)

	// Report lifecycle
	NewReport(ctx context.Context, wellID, sectionID int64, reportDate time.Time) (*domain.DailyReport, []string, error)
	LoadReport(ctx context.Context, id int64) (*domain.DailyReport, error)
	LoadReportByDate(ctx context.Context, sectionID int64, reportDate time.Time) (*domain.DailyReport, error)
	SaveReport(ctx context.Context, report *domain.DailyReport) ([]engine.Warning, error)
	ListReports(ctx context.Context, wellID int64) ([]domain.ReportRecord, error)
	ExportReport(ctx context.Context, reportID int64, path string) error
}

type apiImpl struct {
	repo          sqlite.Repository
	mapper        *domain.Mapper
	suggester     *engine.ChainSuggester
	accountant    *engine.Accountant
	sequencer     *engine.Sequencer
	reportService services.ReportService
	exportService services.ExportService
}

// New creates a new API instance.
func New(repo sqlite.Repository, logger *zap.Logger) API {
	return &apiImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		suggester:     engine.NewChainSuggester(),
		accountant:    engine.NewAccountant(),
		sequencer:     engine.NewSequencer(),
		reportService: services.NewReportService(repo, logger),
		exportService: services.NewExportService(logger),
	}
}

// Pure engine operations

func (a *apiImpl) ComputeDuration(from, to domain.TimeValue) float64 {
	return domain.Duration(from, to)
}

func (a *apiImpl) SuggestEntry(log *domain.Log) domain.TimeLogEntry {
	return a.suggester.SuggestEntry(log)
}

func (a *apiImpl) ValidateLog(log *domain.Log) []engine.Warning {
	return a.accountant.Validate(log)
}

func (a *apiImpl) Aggregate(report *domain.DailyReport) engine.Totals {
	return a.accountant.Aggregate(report)
}

func (a *apiImpl) NextReportNumber(well domain.Well, reportDate time.Time) (int, *engine.SequencingNote) {
	return a.sequencer.NextReportNumber(well, reportDate)
}

func (a *apiImpl) NextRigDay(sectionID int64, reportDate time.Time, priorReports []domain.ReportRecord) int {
	return a.sequencer.NextRigDay(sectionID, reportDate, priorReports)
}

// Well operations

func (a *apiImpl) CreateWell(ctx context.Context, name string, spudDate *time.Time) (*domain.Well, error) {
	dbWell := &sqlite.Well{Name: name, SpudDate: spudDate}
	if err := a.repo.CreateWell(ctx, dbWell); err != nil {
		return nil, err
	}
	well := a.mapper.Well.FromDatabase(*dbWell)
	return &well, nil
}

func (a *apiImpl) GetWell(ctx context.Context, id int64) (*domain.Well, error) {
	dbWell, err := a.repo.GetWell(ctx, id)
	if err != nil {
		return nil, err
	}
	well := a.mapper.Well.FromDatabase(*dbWell)
	return &well, nil
}

func (a *apiImpl) ListWells(ctx context.Context) ([]*domain.Well, error) {
	dbWells, err := a.repo.ListWells(ctx)
	if err != nil {
		return nil, err
	}
	wells := make([]*domain.Well, len(dbWells))
	for i, dbWell := range dbWells {
		well := a.mapper.Well.FromDatabase(*dbWell)
		wells[i] = &well
	}
	return wells, nil
}

// Report lifecycle

func (a *apiImpl) NewReport(ctx context.Context, wellID, sectionID int64, reportDate time.Time) (*domain.DailyReport, []string, error) {
	return a.reportService.NewReport(ctx, wellID, sectionID, reportDate)
}

func (a *apiImpl) LoadReport(ctx context.Context, id int64) (*domain.DailyReport, error) {
	return a.reportService.LoadReport(ctx, id)
}

func (a *apiImpl) LoadReportByDate(ctx context.Context, sectionID int64, reportDate time.Time) (*domain.DailyReport, error) {
	return a.reportService.LoadReportByDate(ctx, sectionID, reportDate)
}

func (a *apiImpl) SaveReport(ctx context.Context, report *domain.DailyReport) ([]engine.Warning, error) {
	return a.reportService.SaveReport(ctx, report)
}

func (a *apiImpl) ListReports(ctx context.Context, wellID int64) ([]domain.ReportRecord, error) {
	return a.reportService.ListReports(ctx, wellID)
}

func (a *apiImpl) ExportReport(ctx context.Context, reportID int64, path string) error {
	report, err := a.reportService.LoadReport(ctx, reportID)
	if err != nil {
		return err
	}
	well, err := a.GetWell(ctx, report.WellID)
	if err != nil {
		return err
	}
	return a.exportService.ExportReport(ctx, report, *well, path)
}
