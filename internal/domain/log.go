package domain

// LogKind identifies which of a report's two logs a set of entries
// belongs to, and determines the hour budget entries are checked against.
type LogKind string

const (
	LogKindFullDay     LogKind = "full_day"
	LogKindMorningTour LogKind = "morning_tour"
)

// BudgetHours returns the hour budget for logs of this kind.
func (k LogKind) BudgetHours() float64 {
	if k == LogKindMorningTour {
		return 6.0
	}
	return 24.0
}

// Log is an ordered sequence of time log entries belonging to exactly one
// daily report. Entries are ordered by insertion position; the accounting
// engine does not require chronological sortedness, since users may
// reorder or insert mid-sequence.
type Log struct {
	Kind    LogKind
	Entries []TimeLogEntry
}

// NewLog creates an empty log of the given kind.
func NewLog(kind LogKind) *Log {
	return &Log{Kind: kind}
}

// BudgetHours returns the hour budget of this log.
func (l *Log) BudgetHours() float64 {
	return l.Kind.BudgetHours()
}

// InsertEntry inserts an entry at the given position, appending when the
// position is past the end. Neighboring entries are never re-chained or
// shifted; filling the gap or overlap that insertion leaves behind is the
// user's responsibility.
func (l *Log) InsertEntry(pos int, e TimeLogEntry) {
	if pos < 0 {
		pos = 0
	}
	if pos >= len(l.Entries) {
		l.Entries = append(l.Entries, e)
		return
	}
	l.Entries = append(l.Entries, TimeLogEntry{})
	copy(l.Entries[pos+1:], l.Entries[pos:])
	l.Entries[pos] = e
}

// AppendEntry adds an entry at the end of the log.
func (l *Log) AppendEntry(e TimeLogEntry) {
	l.Entries = append(l.Entries, e)
}

// RemoveEntry removes the entry at the given position. Remaining entries
// keep their ranges untouched.
func (l *Log) RemoveEntry(pos int) bool {
	if pos < 0 || pos >= len(l.Entries) {
		return false
	}
	l.Entries = append(l.Entries[:pos], l.Entries[pos+1:]...)
	return true
}

// LastEntry returns the final entry, or nil for an empty log.
func (l *Log) LastEntry() *TimeLogEntry {
	if len(l.Entries) == 0 {
		return nil
	}
	return &l.Entries[len(l.Entries)-1]
}
