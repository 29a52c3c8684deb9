package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"rigreport/internal/errors"
	"rigreport/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for database operations
type Repository interface {
	// Well operations
	CreateWell(ctx context.Context, well *Well) error
	GetWell(ctx context.Context, id int64) (*Well, error)
	ListWells(ctx context.Context) ([]*Well, error)
	UpdateWell(ctx context.Context, well *Well) error

	// Daily report operations
	CreateReport(ctx context.Context, report *DailyReport) error
	GetReport(ctx context.Context, id int64) (*DailyReport, error)
	GetReportBySectionDate(ctx context.Context, sectionID int64, date time.Time) (*DailyReport, error)
	ListReports(ctx context.Context, wellID int64) ([]*DailyReport, error)
	UpdateReport(ctx context.Context, report *DailyReport) error
	DeleteReport(ctx context.Context, id int64) error

	// Time log entry operations
	ReplaceEntries(ctx context.Context, reportID int64, entries []*TimeLogEntry) error
	ListEntries(ctx context.Context, reportID int64) ([]*TimeLogEntry, error)

	// Sequencing queries
	ListReportRecords(ctx context.Context, sectionID int64) ([]*ReportRecord, error)
	GetReportRecordByDate(ctx context.Context, sectionID int64, date time.Time) (*ReportRecord, error)

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	// The pragma rides on the DSN so every pooled connection enforces
	// foreign keys, not just the first one opened.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateWell creates a new well
func (r *SQLiteRepository) CreateWell(ctx context.Context, well *Well) error {
	query := `INSERT INTO wells (name, spud_date) VALUES (?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query, well.Name, FormatDatePtrForDB(well.SpudDate))
	if err != nil {
		return err
	}

	well.ID = id
	return nil
}

// GetWell retrieves a well by ID
func (r *SQLiteRepository) GetWell(ctx context.Context, id int64) (*Well, error) {
	query := `SELECT id, name, spud_date FROM wells WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanWell, "well", fmt.Sprintf("%d", id), id)
}

// ListWells retrieves all wells
func (r *SQLiteRepository) ListWells(ctx context.Context) ([]*Well, error) {
	query := `SELECT id, name, spud_date FROM wells ORDER BY name ASC`
	return QueryMultiple(ctx, r.db, query, ScanWells, "wells")
}

// UpdateWell updates an existing well
func (r *SQLiteRepository) UpdateWell(ctx context.Context, well *Well) error {
	query := `UPDATE wells SET name = ?, spud_date = ? WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "well", fmt.Sprintf("%d", well.ID), well.Name, FormatDatePtrForDB(well.SpudDate), well.ID)
}

// CreateReport creates a new daily report header
func (r *SQLiteRepository) CreateReport(ctx context.Context, report *DailyReport) error {
	query := `
	INSERT INTO daily_reports (report_uid, well_id, section_id, report_date, report_number, rig_day, depth_start, depth_end, status, summary)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		report.ReportUID, report.WellID, report.SectionID, FormatDateForDB(report.ReportDate),
		report.ReportNumber, report.RigDay, report.DepthStart, report.DepthEnd, report.Status, report.Summary)
	if err != nil {
		return err
	}

	report.ID = id
	return nil
}

// GetReport retrieves a daily report header by ID
func (r *SQLiteRepository) GetReport(ctx context.Context, id int64) (*DailyReport, error) {
	query := `
	SELECT id, report_uid, well_id, section_id, report_date, report_number, rig_day, depth_start, depth_end, status, summary
	FROM daily_reports
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanDailyReport, "daily report", fmt.Sprintf("%d", id), id)
}

// GetReportBySectionDate retrieves the daily report for a section on a specific date
func (r *SQLiteRepository) GetReportBySectionDate(ctx context.Context, sectionID int64, date time.Time) (*DailyReport, error) {
	query := `
	SELECT id, report_uid, well_id, section_id, report_date, report_number, rig_day, depth_start, depth_end, status, summary
	FROM daily_reports
	WHERE section_id = ? AND report_date = ?`

	id := fmt.Sprintf("%d@%s", sectionID, FormatDateForDB(date))
	return QuerySingle(ctx, r.db, query, ScanDailyReport, "daily report", id, sectionID, FormatDateForDB(date))
}

// ListReports retrieves all daily report headers for a well
func (r *SQLiteRepository) ListReports(ctx context.Context, wellID int64) ([]*DailyReport, error) {
	query := `
	SELECT id, report_uid, well_id, section_id, report_date, report_number, rig_day, depth_start, depth_end, status, summary
	FROM daily_reports
	WHERE well_id = ?
	ORDER BY report_date ASC`

	return QueryMultiple(ctx, r.db, query, ScanDailyReports, "daily reports", wellID)
}

// UpdateReport updates an existing daily report header
func (r *SQLiteRepository) UpdateReport(ctx context.Context, report *DailyReport) error {
	query := `
	UPDATE daily_reports
	SET report_uid = ?, well_id = ?, section_id = ?, report_date = ?, report_number = ?, rig_day = ?, depth_start = ?, depth_end = ?, status = ?, summary = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "daily report", fmt.Sprintf("%d", report.ID),
		report.ReportUID, report.WellID, report.SectionID, FormatDateForDB(report.ReportDate),
		report.ReportNumber, report.RigDay, report.DepthStart, report.DepthEnd, report.Status, report.Summary, report.ID)
}

// DeleteReport deletes a daily report and its entries by ID
func (r *SQLiteRepository) DeleteReport(ctx context.Context, id int64) error {
	query := `DELETE FROM daily_reports WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "daily report", fmt.Sprintf("%d", id), id)
}

// ReplaceEntries replaces all time log entries of a report in a single
// transaction. Saving a report rewrites its entry rows wholesale, so the
// stored sequence always matches the last saved editing state.
func (r *SQLiteRepository) ReplaceEntries(ctx context.Context, reportID int64, entries []*TimeLogEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return HandleDatabaseError("begin transaction", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM time_log_entries WHERE report_id = ?`, reportID); err != nil {
		tx.Rollback()
		return HandleDatabaseError("delete time log entries", err)
	}

	insert := `
	INSERT INTO time_log_entries (report_id, log_kind, position, time_from, time_to, is_from_2400, is_to_2400, main_phase, main_code, sub_code, status, is_npt, description, duration_hours)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	for _, entry := range entries {
		result, err := tx.ExecContext(ctx, insert,
			reportID, entry.LogKind, entry.Position, entry.TimeFrom, entry.TimeTo,
			entry.IsFrom2400, entry.IsTo2400, entry.MainPhase, entry.MainCode, entry.SubCode,
			entry.Status, entry.IsNPT, entry.Description, entry.DurationHours)
		if err != nil {
			tx.Rollback()
			return HandleDatabaseError("insert time log entry", err)
		}
		if entry.ID, err = result.LastInsertId(); err != nil {
			tx.Rollback()
			return HandleDatabaseError("get last insert ID", err)
		}
		entry.ReportID = reportID
	}

	if err := tx.Commit(); err != nil {
		return HandleDatabaseError("commit transaction", err)
	}
	return nil
}

// ListEntries retrieves all time log entries of a report in stored order
func (r *SQLiteRepository) ListEntries(ctx context.Context, reportID int64) ([]*TimeLogEntry, error) {
	query := `
	SELECT id, report_id, log_kind, position, time_from, time_to, is_from_2400, is_to_2400, main_phase, main_code, sub_code, status, is_npt, description, duration_hours
	FROM time_log_entries
	WHERE report_id = ?
	ORDER BY log_kind ASC, position ASC`

	return QueryMultiple(ctx, r.db, query, ScanTimeLogEntries, "time log entries", reportID)
}

// ListReportRecords retrieves the sequencing records of all reports saved
// for a section, ordered by report date
func (r *SQLiteRepository) ListReportRecords(ctx context.Context, sectionID int64) ([]*ReportRecord, error) {
	query := `
	SELECT id, section_id, well_id, report_date, report_number, rig_day
	FROM daily_reports
	WHERE section_id = ?
	ORDER BY report_date ASC`

	return QueryMultiple(ctx, r.db, query, ScanReportRecords, "report records", sectionID)
}

// GetReportRecordByDate retrieves the sequencing record for a section on a
// specific date
func (r *SQLiteRepository) GetReportRecordByDate(ctx context.Context, sectionID int64, date time.Time) (*ReportRecord, error) {
	query := `
	SELECT id, section_id, well_id, report_date, report_number, rig_day
	FROM daily_reports
	WHERE section_id = ? AND report_date = ?`

	id := fmt.Sprintf("%d@%s", sectionID, FormatDateForDB(date))
	return QuerySingle(ctx, r.db, query, ScanReportRecord, "report record", id, sectionID, FormatDateForDB(date))
}
