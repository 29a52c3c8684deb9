package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanWell scans a single well from a database row
func ScanWell(scanner Scanner) (*Well, error) {
	well := &Well{}
	var spudDate sql.NullString

	err := scanner.Scan(
		&well.ID,
		&well.Name,
		&spudDate,
	)
	if err != nil {
		return nil, err
	}

	if spudDate.Valid {
		parsed, err := ParseDateFromDB(spudDate.String)
		if err != nil {
			return nil, err
		}
		well.SpudDate = &parsed
	}

	return well, nil
}

// ScanWells scans multiple wells from database rows
func ScanWells(rows Rows) ([]*Well, error) {
	var wells []*Well
	for rows.Next() {
		well, err := ScanWell(rows)
		if err != nil {
			return nil, err
		}
		wells = append(wells, well)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return wells, nil
}

// ScanDailyReport scans a single daily report header from a database row
func ScanDailyReport(scanner Scanner) (*DailyReport, error) {
	report := &DailyReport{}
	var reportDate string

	err := scanner.Scan(
		&report.ID,
		&report.ReportUID,
		&report.WellID,
		&report.SectionID,
		&reportDate,
		&report.ReportNumber,
		&report.RigDay,
		&report.DepthStart,
		&report.DepthEnd,
		&report.Status,
		&report.Summary,
	)
	if err != nil {
		return nil, err
	}

	report.ReportDate, err = ParseDateFromDB(reportDate)
	if err != nil {
		return nil, err
	}

	return report, nil
}

// ScanDailyReports scans multiple daily report headers from database rows
func ScanDailyReports(rows Rows) ([]*DailyReport, error) {
	var reports []*DailyReport
	for rows.Next() {
		report, err := ScanDailyReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reports, nil
}

// ScanTimeLogEntry scans a single time log entry from a database row
func ScanTimeLogEntry(scanner Scanner) (*TimeLogEntry, error) {
	entry := &TimeLogEntry{}

	err := scanner.Scan(
		&entry.ID,
		&entry.ReportID,
		&entry.LogKind,
		&entry.Position,
		&entry.TimeFrom,
		&entry.TimeTo,
		&entry.IsFrom2400,
		&entry.IsTo2400,
		&entry.MainPhase,
		&entry.MainCode,
		&entry.SubCode,
		&entry.Status,
		&entry.IsNPT,
		&entry.Description,
		&entry.DurationHours,
	)
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// ScanTimeLogEntries scans multiple time log entries from database rows
func ScanTimeLogEntries(rows Rows) ([]*TimeLogEntry, error) {
	var entries []*TimeLogEntry
	for rows.Next() {
		entry, err := ScanTimeLogEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// ScanReportRecord scans a single sequencing record from a database row
func ScanReportRecord(scanner Scanner) (*ReportRecord, error) {
	record := &ReportRecord{}
	var reportDate string

	err := scanner.Scan(
		&record.ID,
		&record.SectionID,
		&record.WellID,
		&reportDate,
		&record.ReportNumber,
		&record.RigDay,
	)
	if err != nil {
		return nil, err
	}

	record.ReportDate, err = ParseDateFromDB(reportDate)
	if err != nil {
		return nil, err
	}

	return record, nil
}

// ScanReportRecords scans multiple sequencing records from database rows
func ScanReportRecords(rows Rows) ([]*ReportRecord, error) {
	var records []*ReportRecord
	for rows.Next() {
		record, err := ScanReportRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
