package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2024, 1, 3, hour, minute, 0, 0, time.UTC)
}

func TestOverlaps_HalfOpen(t *testing.T) {
	tests := []struct {
		name string
		aS   time.Time
		aE   time.Time
		bS   time.Time
		bE   time.Time
		want bool
	}{
		{name: "inside", aS: at(10, 0), aE: at(10, 30), bS: at(9, 0), bE: at(11, 0), want: true},
		{name: "partial left", aS: at(10, 0), aE: at(10, 30), bS: at(9, 45), bE: at(10, 15), want: true},
		{name: "touching end", aS: at(10, 0), aE: at(10, 30), bS: at(10, 30), bE: at(11, 0), want: false},
		{name: "touching start", aS: at(10, 0), aE: at(10, 30), bS: at(9, 30), bE: at(10, 0), want: false},
		{name: "disjoint", aS: at(10, 0), aE: at(10, 30), bS: at(12, 0), bE: at(13, 0), want: false},
		{name: "identical", aS: at(10, 0), aE: at(10, 30), bS: at(10, 0), bE: at(10, 30), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aS, tt.aE, tt.bS, tt.bE))
			assert.Equal(t, tt.want, Overlaps(tt.bS, tt.bE, tt.aS, tt.aE))
		})
	}
}

func TestTimeSlot(t *testing.T) {
	slot := NewTimeSlot(at(14, 0))

	assert.Equal(t, at(14, 30), slot.End())
	assert.True(t, slot.IsAligned())
	assert.False(t, NewTimeSlot(at(14, 15)).IsAligned())
	assert.False(t, NewTimeSlot(at(14, 0).Add(time.Second)).IsAligned())

	moscow := time.FixedZone("MSK", 3*3600)
	assert.Equal(t, slot.Key(), NewTimeSlot(at(14, 0).In(moscow)).Key())
}

func TestMergeIntervals(t *testing.T) {
	merged := MergeIntervals([]Interval{
		{Start: at(12, 0), End: at(13, 0)},
		{Start: at(9, 0), End: at(10, 0)},
		{Start: at(10, 0), End: at(10, 30)},
		{Start: at(9, 30), End: at(9, 45)},
		{Start: at(15, 0), End: at(15, 0)},
	})

	require.Len(t, merged, 2)
	assert.Equal(t, Interval{Start: at(9, 0), End: at(10, 30)}, merged[0])
	assert.Equal(t, Interval{Start: at(12, 0), End: at(13, 0)}, merged[1])

	assert.Empty(t, MergeIntervals(nil))
}

func TestSortSlots_Dedupes(t *testing.T) {
	slots := SortSlots([]TimeSlot{
		NewTimeSlot(at(11, 0)),
		NewTimeSlot(at(9, 0)),
		NewTimeSlot(at(11, 0)),
	})

	require.Len(t, slots, 2)
	assert.Equal(t, at(9, 0), slots[0].Start)
	assert.Equal(t, at(11, 0), slots[1].Start)
}

func TestTimeSlot_IsAlignedIn(t *testing.T) {
	kathmandu := time.FixedZone("NPT", 5*3600+45*60)
	offGrid := time.Date(2024, 1, 3, 10, 0, 0, 0, kathmandu) // 04:15 UTC

	assert.True(t, NewTimeSlot(offGrid).IsAligned())
	assert.False(t, NewTimeSlot(offGrid).IsAlignedIn(time.UTC))
	assert.True(t, NewTimeSlot(at(10, 0).In(kathmandu)).IsAlignedIn(time.UTC))
}
