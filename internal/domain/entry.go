package domain

// TimeLogEntry is a single activity record within a log: a time range,
// the operation codes describing what happened, and an NPT flag.
// DurationHours is cached for display and persistence but is always
// derived from (From, To); it is never an independent source of truth.
type TimeLogEntry struct {
	ID            int64
	From          TimeValue
	To            TimeValue
	MainPhase     string
	MainCode      string
	SubCode       string
	Status        string
	IsNPT         bool
	Description   string
	DurationHours float64
}

// NewTimeLogEntry creates an entry for the given range with the cached
// duration already derived.
func NewTimeLogEntry(from, to TimeValue) TimeLogEntry {
	e := TimeLogEntry{From: from, To: to}
	e.Recompute()
	return e
}

// Recompute re-derives DurationHours from the current (From, To) range.
// Must be called after any mutation of From or To.
func (e *TimeLogEntry) Recompute() {
	e.DurationHours = Duration(e.From, e.To)
}

// SetRange mutates the time range and re-derives the cached duration in
// one step, so the two can never drift apart.
func (e *TimeLogEntry) SetRange(from, to TimeValue) {
	e.From = from
	e.To = to
	e.Recompute()
}
