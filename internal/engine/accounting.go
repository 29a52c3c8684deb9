package engine

import (
	"fmt"

	"rigreport/internal/domain"
)

// WarningKind categorizes an advisory finding on a log.
type WarningKind string

const (
	WarningEntryOverBudget WarningKind = "entry_over_budget"
	WarningLogOverBudget   WarningKind = "log_over_budget"
)

// Warning is an advisory budget finding. Warnings are surfaced to the
// caller for highlighting; they never block persistence.
type Warning struct {
	Kind       WarningKind
	LogKind    domain.LogKind
	EntryIndex int // -1 for log-level warnings
	Message    string
}

// NoteKind categorizes an informational note attached to an aggregate.
type NoteKind string

const (
	// NoteDataAnomaly marks an aggregate whose NPT hours exceed its total
	// hours. The computed value is kept as-is; callers decide how to
	// display it.
	NoteDataAnomaly NoteKind = "data_anomaly"
)

// Note is an informational annotation on an aggregation result.
type Note struct {
	Kind    NoteKind
	Message string
}

// Totals is the combined accounting result for a daily report.
type Totals struct {
	TotalHours      float64
	NPTHours        float64
	ProductivityPct float64
	Notes           []Note
}

// Accountant validates logs against their hour budgets and aggregates
// report totals. It holds no state between calls; every Validate call
// returns a fresh finding list.
type Accountant struct{}

// NewAccountant creates a new Accountant instance.
func NewAccountant() *Accountant {
	return &Accountant{}
}

// TotalHours sums the cached durations of all entries in the log.
func (a *Accountant) TotalHours(log *domain.Log) float64 {
	var total float64
	for _, entry := range log.Entries {
		total += entry.DurationHours
	}
	return total
}

// NPTHours sums the cached durations of the log's NPT-flagged entries.
func (a *Accountant) NPTHours(log *domain.Log) float64 {
	var total float64
	for _, entry := range log.Entries {
		if entry.IsNPT {
			total += entry.DurationHours
		}
	}
	return total
}

// Validate checks every entry and the log total against the log's hour
// budget. Findings are advisory: an over-budget log still saves, the
// caller just highlights the offending rows.
func (a *Accountant) Validate(log *domain.Log) []Warning {
	var warnings []Warning
	budget := log.BudgetHours()

	for i, entry := range log.Entries {
		if entry.DurationHours > budget {
			warnings = append(warnings, Warning{
				Kind:       WarningEntryOverBudget,
				LogKind:    log.Kind,
				EntryIndex: i,
				Message:    fmt.Sprintf("entry %d duration %.2fh exceeds the %.0fh budget", i+1, entry.DurationHours, budget),
			})
		}
	}

	if total := a.TotalHours(log); total > budget {
		warnings = append(warnings, Warning{
			Kind:       WarningLogOverBudget,
			LogKind:    log.Kind,
			EntryIndex: -1,
			Message:    fmt.Sprintf("log total %.2fh exceeds the %.0fh budget", total, budget),
		})
	}

	return warnings
}

// ValidateReport validates both logs of a report.
func (a *Accountant) ValidateReport(report *domain.DailyReport) []Warning {
	warnings := a.Validate(report.FullDay)
	return append(warnings, a.Validate(report.MorningTour)...)
}

// Aggregate combines both logs of a report into overall totals. A report
// with no logged hours counts as fully productive. NPT exceeding the
// total is a data-entry anomaly: the (negative) productivity is computed
// anyway and tagged with a note rather than silently clamped.
func (a *Accountant) Aggregate(report *domain.DailyReport) Totals {
	totals := Totals{
		TotalHours: a.TotalHours(report.FullDay) + a.TotalHours(report.MorningTour),
		NPTHours:   a.NPTHours(report.FullDay) + a.NPTHours(report.MorningTour),
	}

	if totals.TotalHours == 0 {
		totals.ProductivityPct = 100.0
		return totals
	}

	totals.ProductivityPct = (totals.TotalHours - totals.NPTHours) / totals.TotalHours * 100.0
	if totals.NPTHours > totals.TotalHours {
		totals.Notes = append(totals.Notes, Note{
			Kind:    NoteDataAnomaly,
			Message: fmt.Sprintf("NPT hours %.2f exceed total hours %.2f", totals.NPTHours, totals.TotalHours),
		})
	}

	return totals
}
