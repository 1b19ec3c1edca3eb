package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DefenceBookingService/pkg/types"
)

func tod(h, m, s int) types.TimeOfDay {
	return types.MustTimeOfDay(h, m, s, 0)
}

func TestPartitionWindow_EvenSplit(t *testing.T) {
	window := TimeWindow{Start: tod(13, 0, 0), End: tod(13, 30, 0)}

	slots, err := PartitionWindow(window, 3, time.Second)
	require.NoError(t, err)

	assert.Equal(t, []TimeWindow{
		{Start: tod(13, 0, 0), End: tod(13, 10, 0)},
		{Start: tod(13, 10, 0), End: tod(13, 20, 0)},
		{Start: tod(13, 20, 0), End: tod(13, 30, 0)},
	}, slots)
}

func TestPartitionWindow_RemainderDropped(t *testing.T) {
	window := TimeWindow{Start: tod(0, 0, 0), End: tod(0, 1, 0)}

	slots, err := PartitionWindow(window, 7, time.Second)
	require.NoError(t, err)
	require.Len(t, slots, 7)

	for i, slot := range slots {
		assert.Equal(t, 8*time.Second, slot.Duration(), "slot %d", i)
	}
	assert.Equal(t, tod(0, 0, 0), slots[0].Start)
	assert.Equal(t, tod(0, 0, 56), slots[6].End)
}

func TestPartitionWindow_MicrosecondFloor(t *testing.T) {
	window := TimeWindow{Start: tod(0, 0, 0), End: tod(0, 1, 0)}

	for _, resolution := range []time.Duration{0, time.Nanosecond, 500 * time.Nanosecond, time.Microsecond} {
		slots, err := PartitionWindow(window, 7, resolution)
		require.NoError(t, err, "resolution=%s", resolution)

		want := (time.Minute / 7).Truncate(time.Microsecond)
		for _, slot := range slots {
			assert.Equal(t, want, slot.Duration())
		}
		assert.Equal(t, 7*want, slots[6].End.Offset())
		assert.True(t, slots[6].End.Before(window.End))
	}
}

func TestPartitionWindow_BoundariesFitTimeColumn(t *testing.T) {
	window := TimeWindow{Start: tod(13, 0, 0), End: tod(13, 30, 0)}

	slots, err := PartitionWindow(window, 7, 0)
	require.NoError(t, err)

	for i, slot := range slots {
		assert.Zero(t, slot.Start.Offset()%MinSlotResolution, "slot %d start %s", i, slot.Start)
		assert.Zero(t, slot.End.Offset()%MinSlotResolution, "slot %d end %s", i, slot.End)
	}
	assert.Equal(t, "13:04:17.142857", slots[1].Start.String())
}

// 1000 слотов по 13:00-13:30: секундное округление отбрасывает почти половину окна
func TestPartitionWindow_ThousandSlots(t *testing.T) {
	window := TimeWindow{Start: tod(13, 0, 0), End: tod(13, 30, 0)}

	slots, err := PartitionWindow(window, 1000, time.Second)
	require.NoError(t, err)
	require.Len(t, slots, 1000)
	assert.Equal(t, time.Second, slots[0].Duration())
	assert.Equal(t, tod(13, 16, 40), slots[999].End)

	slots, err = PartitionWindow(window, 1000, MinSlotResolution)
	require.NoError(t, err)
	require.Len(t, slots, 1000)
	assert.Equal(t, 1800*time.Millisecond, slots[0].Duration())
	assert.Equal(t, window.End, slots[999].End)
}

func TestPartitionWindow_Properties(t *testing.T) {
	window := TimeWindow{Start: tod(9, 15, 0), End: tod(17, 45, 30)}

	for _, count := range []int{1, 2, 3, 7, 13, 60, 1000} {
		slots, err := PartitionWindow(window, count, time.Second)
		require.NoError(t, err, "count=%d", count)
		require.Len(t, slots, count)

		assert.Equal(t, window.Start, slots[0].Start)
		for i, slot := range slots {
			assert.True(t, slot.IsValid(), "count=%d slot=%d", count, i)
			assert.True(t, window.Contains(slot), "count=%d slot=%d", count, i)
			assert.Equal(t, slots[0].Duration(), slot.Duration())
			if i > 0 {
				assert.Equal(t, slots[i-1].End, slot.Start, "slots must be contiguous")
				assert.False(t, slots[i-1].Overlaps(slot))
			}
		}
	}
}

func TestPartitionWindow_SingleSlotCoversWindow(t *testing.T) {
	window := TimeWindow{Start: tod(10, 0, 0), End: tod(12, 0, 0)}

	slots, err := PartitionWindow(window, 1, time.Second)
	require.NoError(t, err)
	assert.Equal(t, []TimeWindow{window}, slots)
}

func TestPartitionWindow_InvalidCount(t *testing.T) {
	window := TimeWindow{Start: tod(10, 0, 0), End: tod(12, 0, 0)}

	for _, count := range []int{0, -1, MaxBookingSlotsCount + 1, math.MaxInt32} {
		slots, err := PartitionWindow(window, count, time.Second)
		assert.ErrorIs(t, err, ErrInvalidSlotsCount)
		assert.Nil(t, slots)
	}
}

func TestPartitionWindow_InvalidWindow(t *testing.T) {
	_, err := PartitionWindow(TimeWindow{Start: tod(12, 0, 0), End: tod(12, 0, 0)}, 2, time.Second)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = PartitionWindow(TimeWindow{Start: tod(12, 0, 0), End: tod(11, 0, 0)}, 2, time.Second)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestPartitionWindow_TooShort(t *testing.T) {
	window := TimeWindow{Start: tod(10, 0, 0), End: tod(10, 0, 5)}

	_, err := PartitionWindow(window, 10, time.Second)
	assert.ErrorIs(t, err, ErrSlotTooShort)

	slots, err := PartitionWindow(window, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, slots[0].Duration())

	// полмикросекунды на слот не хранится в колонке TIME
	_, err = PartitionWindow(TimeWindow{Start: tod(10, 0, 0), End: types.MustTimeOfDay(10, 0, 0, 5000)}, 10, 0)
	assert.ErrorIs(t, err, ErrSlotTooShort)
}
