package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogKind_BudgetHours(t *testing.T) {
	assert.Equal(t, 24.0, LogKindFullDay.BudgetHours())
	assert.Equal(t, 6.0, LogKindMorningTour.BudgetHours())
}

func TestLog_InsertEntry(t *testing.T) {
	log := NewLog(LogKindFullDay)
	first := NewTimeLogEntry(Midnight(), MustTimeValue(8, 0))
	second := NewTimeLogEntry(MustTimeValue(8, 0), MustTimeValue(16, 0))
	log.AppendEntry(first)
	log.AppendEntry(second)

	inserted := NewTimeLogEntry(MustTimeValue(10, 0), MustTimeValue(12, 0))
	log.InsertEntry(1, inserted)

	require.Len(t, log.Entries, 3)
	assert.Equal(t, first, log.Entries[0])
	assert.Equal(t, inserted, log.Entries[1])
	// Insertion never re-chains neighbors: the displaced entry keeps its
	// original range even though it now overlaps the inserted one.
	assert.Equal(t, second, log.Entries[2])
}

func TestLog_InsertEntry_Positions(t *testing.T) {
	tests := []struct {
		name     string
		position int
		expected int // resulting index of the inserted entry
	}{
		{name: "negative clamps to front", position: -3, expected: 0},
		{name: "front", position: 0, expected: 0},
		{name: "past end appends", position: 10, expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := NewLog(LogKindFullDay)
			log.AppendEntry(NewTimeLogEntry(Midnight(), MustTimeValue(6, 0)))
			log.AppendEntry(NewTimeLogEntry(MustTimeValue(6, 0), MustTimeValue(12, 0)))

			marker := NewTimeLogEntry(MustTimeValue(20, 0), MustTimeValue(21, 0))
			log.InsertEntry(tt.position, marker)

			require.Len(t, log.Entries, 3)
			assert.Equal(t, marker, log.Entries[tt.expected])
		})
	}
}

func TestLog_RemoveEntry(t *testing.T) {
	log := NewLog(LogKindMorningTour)
	first := NewTimeLogEntry(Midnight(), MustTimeValue(2, 0))
	second := NewTimeLogEntry(MustTimeValue(2, 0), MustTimeValue(4, 0))
	third := NewTimeLogEntry(MustTimeValue(4, 0), MustTimeValue(6, 0))
	log.AppendEntry(first)
	log.AppendEntry(second)
	log.AppendEntry(third)

	assert.True(t, log.RemoveEntry(1))

	// Removal leaves the gap behind; neighbors are untouched.
	require.Len(t, log.Entries, 2)
	assert.Equal(t, first, log.Entries[0])
	assert.Equal(t, third, log.Entries[1])

	assert.False(t, log.RemoveEntry(5))
	assert.False(t, log.RemoveEntry(-1))
}

func TestLog_LastEntry(t *testing.T) {
	log := NewLog(LogKindFullDay)
	assert.Nil(t, log.LastEntry())

	entry := NewTimeLogEntry(Midnight(), MustTimeValue(8, 0))
	log.AppendEntry(entry)
	require.NotNil(t, log.LastEntry())
	assert.Equal(t, entry, *log.LastEntry())
}
