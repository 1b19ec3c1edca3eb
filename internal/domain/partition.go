package domain

import (
	"fmt"
	"time"
)

// PartitionWindow splits the window into count contiguous slots of equal duration.
//
// The slot duration is (End - Start) / count, truncated to a multiple of resolution.
// Resolution below MinSlotResolution is raised to it. The remainder is dropped: the
// first slot starts exactly at window.Start, the last one may end before window.End.
//
// Example: 13:00-13:30 into 3 slots gives 13:00-13:10, 13:10-13:20, 13:20-13:30.
func PartitionWindow(window TimeWindow, count int, resolution time.Duration) ([]TimeWindow, error) {
	if count <= 0 || count > MaxBookingSlotsCount {
		return nil, fmt.Errorf("%w: count=%d", ErrInvalidSlotsCount, count)
	}
	if !window.IsValid() {
		return nil, fmt.Errorf("%w: %s-%s", ErrInvalidTimeRange, window.Start, window.End)
	}

	if resolution < MinSlotResolution {
		resolution = MinSlotResolution
	}

	slot := (window.Duration() / time.Duration(count)).Truncate(resolution)
	if slot <= 0 {
		return nil, fmt.Errorf("%w: window=%s, count=%d", ErrSlotTooShort, window.Duration(), count)
	}

	slots := make([]TimeWindow, 0, count)
	for i := 0; i < count; i++ {
		// Start + i*slot < End, поэтому Add не выходит за пределы суток
		start, err := window.Start.Add(time.Duration(i) * slot)
		if err != nil {
			return nil, err
		}
		end, err := start.Add(slot)
		if err != nil {
			return nil, err
		}
		slots = append(slots, TimeWindow{Start: start, End: end})
	}

	return slots, nil
}
