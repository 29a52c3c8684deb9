package domain

import "time"

// Well is a read-only snapshot of well metadata supplied by the
// persistence layer. SpudDate is nil for wells that have not spudded.
type Well struct {
	ID       int64
	Name     string
	SpudDate *time.Time
}

// ReportRecord is a read-only snapshot of a previously saved report's
// sequencing fields, supplied by the persistence layer and used to derive
// the next report number and rig day.
type ReportRecord struct {
	ID           int64
	SectionID    int64
	WellID       int64
	ReportDate   time.Time
	ReportNumber int
	RigDay       int
}
