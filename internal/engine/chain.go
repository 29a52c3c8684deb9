// Package engine implements the daily time-log accounting rules: entry
// chaining defaults, budget validation and aggregation, and report
// sequence derivation. Everything here is pure computation over supplied
// snapshots; persistence and presentation live elsewhere.
package engine

import (
	"rigreport/internal/domain"
)

// defaultEntrySpanMinutes is the proposed length of a newly chained
// entry before the user adjusts it.
const defaultEntrySpanMinutes = 8 * 60

// ChainSuggester proposes default from/to values for newly inserted
// entries, chaining off the previous entry's end.
type ChainSuggester struct{}

// NewChainSuggester creates a new ChainSuggester instance.
func NewChainSuggester() *ChainSuggester {
	return &ChainSuggester{}
}

// NextStart proposes the start time for a new entry appended to the log.
// An empty log starts at midnight. A log whose last entry ends at the
// "24:00" sentinel also proposes midnight: a log covers a single calendar
// day, so the sentinel marks day-end rather than rolling into a new day.
func (s *ChainSuggester) NextStart(log *domain.Log) domain.TimeValue {
	last := log.LastEntry()
	if last == nil || last.To.IsEndOfDay() {
		return domain.Midnight()
	}
	return last.To
}

// SuggestEnd proposes an end time eight hours after the given start,
// clipped to 23:59 when the span would reach or pass the end of the day.
// The suggester never assigns the sentinel; only an explicit user or
// import action marks an entry as ending at 24:00.
func (s *ChainSuggester) SuggestEnd(from domain.TimeValue) domain.TimeValue {
	return from.AddMinutes(defaultEntrySpanMinutes)
}

// SuggestEntry proposes a fully defaulted entry for the log, with the
// cached duration derived. Inserting it at any position never re-chains
// or shifts neighboring entries.
func (s *ChainSuggester) SuggestEntry(log *domain.Log) domain.TimeLogEntry {
	from := s.NextStart(log)
	return domain.NewTimeLogEntry(from, s.SuggestEnd(from))
}
