package domain

import (
	"time"

	"github.com/google/uuid"
)

// DailyReport is the header of one operational day for a well section
// plus exactly one full-day log and one morning-tour log.
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
	FullDay      *Log
	MorningTour  *Log
}

// NewDailyReport creates an empty report for the given well section and
// date, with both logs initialized and a fresh report UID assigned.
func NewDailyReport(wellID, sectionID int64, reportDate time.Time) *DailyReport {
	return &DailyReport{
		ReportUID:   uuid.NewString(),
		WellID:      wellID,
		SectionID:   sectionID,
		ReportDate:  reportDate,
		FullDay:     NewLog(LogKindFullDay),
		MorningTour: NewLog(LogKindMorningTour),
	}
}

// LogFor returns the report's log of the given kind.
func (r *DailyReport) LogFor(kind LogKind) *Log {
	if kind == LogKindMorningTour {
		return r.MorningTour
	}
	return r.FullDay
}
