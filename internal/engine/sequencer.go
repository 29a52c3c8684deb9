package engine

import (
	"time"

	"rigreport/internal/domain"
)

// SequencingNote explains why a sequencing derivation left a field
// unchanged. It is informational, not an error: the caller's previous or
// default value stands.
type SequencingNote struct {
	Reason string
}

func (n *SequencingNote) String() string {
	return n.Reason
}

// Sequencer derives a report's sequence fields (report number, rig day)
// from well metadata and prior report history. Both derivations are
// stateless functions over the supplied snapshots; callers serving
// multiple users must serialize calls per section themselves.
type Sequencer struct{}

// NewSequencer creates a new Sequencer instance.
func NewSequencer() *Sequencer {
	return &Sequencer{}
}

// NextReportNumber derives the report number for a report dated
// reportDate on the given well: one on the spud date, counting up one
// per calendar day. A missing spud date or a report dated before spud
// yields a note and no number; the caller keeps whatever value the
// report already has.
func (s *Sequencer) NextReportNumber(well domain.Well, reportDate time.Time) (int, *SequencingNote) {
	if well.SpudDate == nil {
		return 0, &SequencingNote{Reason: "no spud date"}
	}
	if civilDate(reportDate).Before(civilDate(*well.SpudDate)) {
		return 0, &SequencingNote{Reason: "before spud"}
	}
	return daysBetween(*well.SpudDate, reportDate) + 1, nil
}

// NextRigDay derives the rig day for a report dated reportDate in the
// given section, from the section's prior report records. Reloading a
// date that already has a saved report reuses its stored rig day, so
// resaving never shifts the sequence. Otherwise the rig day continues
// from the latest strictly earlier report, or starts at one.
func (s *Sequencer) NextRigDay(sectionID int64, reportDate time.Time, priorReports []domain.ReportRecord) int {
	target := civilDate(reportDate)

	var latest *domain.ReportRecord
	for i := range priorReports {
		prior := &priorReports[i]
		if prior.SectionID != sectionID {
			continue
		}
		priorDate := civilDate(prior.ReportDate)
		if priorDate.Equal(target) {
			return prior.RigDay
		}
		if priorDate.Before(target) && (latest == nil || priorDate.After(civilDate(latest.ReportDate))) {
			latest = prior
		}
	}

	if latest == nil {
		return 1
	}
	return latest.RigDay + 1
}

// civilDate truncates a timestamp to its calendar date in UTC, so the
// day arithmetic is immune to time-of-day and DST artifacts.
func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(civilDate(to).Sub(civilDate(from)).Hours() / 24)
}
