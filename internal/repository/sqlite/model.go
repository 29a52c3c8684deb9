package sqlite

import "time"

// Well represents a well row.
type Well struct {
	ID       int64
	Name     string
	SpudDate *time.Time // NULL until the well has spudded
}

// DailyReport represents a daily report header row.
type DailyReport struct {
	ID           int64
	ReportUID    string
	WellID       int64
	SectionID    int64
	ReportDate   time.Time
	ReportNumber int
	RigDay       int
	DepthStart   float64
	DepthEnd     float64
	Status       string
	Summary      string
}

// TimeLogEntry represents a persisted time log entry row. TimeFrom and
// TimeTo hold "HH:MM" clock strings; the two 2400 flags are mandatory
// because a plain clock value cannot distinguish 00:00 from the 24:00
// end-of-day sentinel.
type TimeLogEntry struct {
	ID            int64
	ReportID      int64
	LogKind       string
	Position      int
	TimeFrom      string
	TimeTo        string
	IsFrom2400    bool
	IsTo2400      bool
	MainPhase     string
	MainCode      string
	SubCode       string
	Status        string
	IsNPT         bool
	Description   string
	DurationHours float64
}

// ReportRecord is the slim projection of a saved report used for
// sequencing queries.
type ReportRecord struct {
	ID           int64
	SectionID    int64
	WellID       int64
	ReportDate   time.Time
	ReportNumber int
	RigDay       int
}
