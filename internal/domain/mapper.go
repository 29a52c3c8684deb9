package domain

import (
	"rigreport/internal/repository/sqlite"
)

// WellMapper handles conversion between domain and database Well models.
type WellMapper struct{}

// NewWellMapper creates a new WellMapper instance.
func NewWellMapper() *WellMapper {
	return &WellMapper{}
}

// ToDatabase converts a domain Well to a database Well.
func (m *WellMapper) ToDatabase(well Well) sqlite.Well {
	return sqlite.Well{
		ID:       well.ID,
		Name:     well.Name,
		SpudDate: well.SpudDate,
	}
}

// FromDatabase converts a database Well to a domain Well.
func (m *WellMapper) FromDatabase(dbWell sqlite.Well) Well {
	return Well{
		ID:       dbWell.ID,
		Name:     dbWell.Name,
		SpudDate: dbWell.SpudDate,
	}
}

// ReportRecordMapper handles conversion of sequencing records.
type ReportRecordMapper struct{}

// NewReportRecordMapper creates a new ReportRecordMapper instance.
func NewReportRecordMapper() *ReportRecordMapper {
	return &ReportRecordMapper{}
}

// FromDatabase converts a database ReportRecord to a domain ReportRecord.
func (m *ReportRecordMapper) FromDatabase(dbRecord sqlite.ReportRecord) ReportRecord {
	return ReportRecord{
		ID:           dbRecord.ID,
		SectionID:    dbRecord.SectionID,
		WellID:       dbRecord.WellID,
		ReportDate:   dbRecord.ReportDate,
		ReportNumber: dbRecord.ReportNumber,
		RigDay:       dbRecord.RigDay,
	}
}

// FromDatabaseSlice converts a slice of database ReportRecords.
func (m *ReportRecordMapper) FromDatabaseSlice(dbRecords []*sqlite.ReportRecord) []ReportRecord {
	records := make([]ReportRecord, len(dbRecords))
	for i, dbRecord := range dbRecords {
		records[i] = m.FromDatabase(*dbRecord)
	}
	return records
}

// EntryMapper handles conversion between domain TimeLogEntry values and
// their persisted rows. The row keeps the clock face and a separate
// end-of-day flag per endpoint, because "00:00" and "24:00" share a face
// but mean opposite ends of the day.
type EntryMapper struct{}

// NewEntryMapper creates a new EntryMapper instance.
func NewEntryMapper() *EntryMapper {
	return &EntryMapper{}
}

// ToDatabase converts a domain entry to a database row for the given log
// kind and position.
func (m *EntryMapper) ToDatabase(entry TimeLogEntry, kind LogKind, position int) sqlite.TimeLogEntry {
	row := sqlite.TimeLogEntry{
		ID:            entry.ID,
		LogKind:       string(kind),
		Position:      position,
		MainPhase:     entry.MainPhase,
		MainCode:      entry.MainCode,
		SubCode:       entry.SubCode,
		Status:        entry.Status,
		IsNPT:         entry.IsNPT,
		Description:   entry.Description,
		DurationHours: entry.DurationHours,
	}

	row.TimeFrom, row.IsFrom2400 = timeValueToColumns(entry.From)
	row.TimeTo, row.IsTo2400 = timeValueToColumns(entry.To)
	return row
}

// FromDatabase converts a database row back to a domain entry.
func (m *EntryMapper) FromDatabase(dbEntry sqlite.TimeLogEntry) (TimeLogEntry, error) {
	from, err := columnsToTimeValue(dbEntry.TimeFrom, dbEntry.IsFrom2400)
	if err != nil {
		return TimeLogEntry{}, err
	}
	to, err := columnsToTimeValue(dbEntry.TimeTo, dbEntry.IsTo2400)
	if err != nil {
		return TimeLogEntry{}, err
	}

	return TimeLogEntry{
		ID:            dbEntry.ID,
		From:          from,
		To:            to,
		MainPhase:     dbEntry.MainPhase,
		MainCode:      dbEntry.MainCode,
		SubCode:       dbEntry.SubCode,
		Status:        dbEntry.Status,
		IsNPT:         dbEntry.IsNPT,
		Description:   dbEntry.Description,
		DurationHours: dbEntry.DurationHours,
	}, nil
}

func timeValueToColumns(tv TimeValue) (string, bool) {
	if tv.IsEndOfDay() {
		return "00:00", true
	}
	return tv.String(), false
}

func columnsToTimeValue(clock string, is2400 bool) (TimeValue, error) {
	if is2400 {
		return EndOfDay(), nil
	}
	return ParseTimeValue(clock)
}

// ReportMapper handles conversion between a domain DailyReport and its
// database header plus entry rows.
type ReportMapper struct {
	entries *EntryMapper
}

// NewReportMapper creates a new ReportMapper instance.
func NewReportMapper() *ReportMapper {
	return &ReportMapper{entries: NewEntryMapper()}
}

// HeaderToDatabase converts a report's header fields to a database row.
func (m *ReportMapper) HeaderToDatabase(report *DailyReport) sqlite.DailyReport {
	return sqlite.DailyReport{
		ID:           report.ID,
		ReportUID:    report.ReportUID,
		WellID:       report.WellID,
		SectionID:    report.SectionID,
		ReportDate:   report.ReportDate,
		ReportNumber: report.ReportNumber,
		RigDay:       report.RigDay,
		DepthStart:   report.DepthStart,
		DepthEnd:     report.DepthEnd,
		Status:       report.Status,
		Summary:      report.Summary,
	}
}

// EntriesToDatabase flattens both logs of a report into entry rows in
// stored order.
func (m *ReportMapper) EntriesToDatabase(report *DailyReport) []*sqlite.TimeLogEntry {
	var rows []*sqlite.TimeLogEntry
	for _, log := range []*Log{report.FullDay, report.MorningTour} {
		for i, entry := range log.Entries {
			row := m.entries.ToDatabase(entry, log.Kind, i)
			rows = append(rows, &row)
		}
	}
	return rows
}

// FromDatabase assembles a domain report from its header row and entry
// rows. Entry rows are expected in stored order.
func (m *ReportMapper) FromDatabase(header sqlite.DailyReport, dbEntries []*sqlite.TimeLogEntry) (*DailyReport, error) {
	report := &DailyReport{
		ID:           header.ID,
		ReportUID:    header.ReportUID,
		WellID:       header.WellID,
		SectionID:    header.SectionID,
		ReportDate:   header.ReportDate,
		ReportNumber: header.ReportNumber,
		RigDay:       header.RigDay,
		DepthStart:   header.DepthStart,
		DepthEnd:     header.DepthEnd,
		Status:       header.Status,
		Summary:      header.Summary,
		FullDay:      NewLog(LogKindFullDay),
		MorningTour:  NewLog(LogKindMorningTour),
	}

	for _, dbEntry := range dbEntries {
		entry, err := m.entries.FromDatabase(*dbEntry)
		if err != nil {
			return nil, err
		}
		report.LogFor(LogKind(dbEntry.LogKind)).AppendEntry(entry)
	}

	return report, nil
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Well         *WellMapper
	ReportRecord *ReportRecordMapper
	Entry        *EntryMapper
	Report       *ReportMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Well:         NewWellMapper(),
		ReportRecord: NewReportRecordMapper(),
		Entry:        NewEntryMapper(),
		Report:       NewReportMapper(),
	}
}
