package label

// SplitPages partitions pageCount pages into contiguous groups of groupSize,
// last group possibly shorter. The request is rejected before any range is
// produced when groupSize is not positive or pageCount is negative.
func SplitPages(pageCount, groupSize int) ([]PageRange, error) {
	if groupSize <= 0 {
		return nil, invalidArgf("pages per split must be a positive integer, got %d", groupSize)
	}
	if pageCount < 0 {
		return nil, invalidArgf("page count cannot be negative, got %d", pageCount)
	}

	var ranges []PageRange
	for start := 0; start < pageCount; start += groupSize {
		end := start + groupSize
		if end > pageCount {
			end = pageCount
		}
		ranges = append(ranges, PageRange{Start: start, End: end})
	}
	return ranges, nil
}
