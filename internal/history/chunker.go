package history

import "time"

// dateRange is one calendar-month chunk of the overall request range,
// inclusive on both ends.
type dateRange struct {
	start time.Time
	end   time.Time
}

// monthChunks splits [start, end] into one chunk per overlapped calendar
// month. Interior boundaries fall on month edges; the first chunk begins at
// start and the last ends at end, so consecutive chunks are contiguous with
// no gaps or overlaps.
func monthChunks(start, end time.Time) []dateRange {
	var chunks []dateRange

	cur := start
	for !cur.After(end) {
		monthEnd := time.Date(cur.Year(), cur.Month(), 1, 0, 0, 0, 0, cur.Location()).
			AddDate(0, 1, -1)
		chunkEnd := monthEnd
		if chunkEnd.After(end) {
			chunkEnd = end
		}
		chunks = append(chunks, dateRange{start: cur, end: chunkEnd})
		cur = chunkEnd.AddDate(0, 0, 1)
	}

	return chunks
}
