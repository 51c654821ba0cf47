package label

import (
	"fmt"
	"strconv"
	"strings"
)

// ComputeStatistics derives aggregate counts from a record list. It carries
// no state between calls; the same records always produce the same result.
//
// The duplicate key here is (name, address1, address2, mode), case
// insensitive. It intentionally differs from the page fingerprint used by
// the unique-COD filter: this key asks "is this the same order", the
// fingerprint asks "is this the same shipping label".
func ComputeStatistics(records []OrderRecord) Statistics {
	stats := Statistics{
		TotalOrders: len(records),
		SizeCount:   make(map[string]int),
	}

	var revenue float64
	seen := make(map[string]struct{})

	for _, rec := range records {
		stats.SizeCount[rec.Size]++

		if strings.HasPrefix(rec.Total, "Rs.") {
			if v, err := strconv.ParseFloat(strings.TrimPrefix(rec.Total, "Rs."), 64); err == nil {
				revenue += v
			}
		}

		switch rec.Mode {
		case ModeCOD:
			stats.CODCount++
		case ModePrepaid:
			stats.PrepaidCount++
		}

		key := strings.ToLower(rec.Name + "|" + rec.Address1 + "|" + rec.Address2 + "|" + rec.Mode)
		if _, dup := seen[key]; dup && rec.Mode == ModeCOD {
			stats.CODDuplicateCount++
		}
		seen[key] = struct{}{}
	}

	stats.TotalPrice = fmt.Sprintf("%.2f", revenue)
	stats.CODUniqueCount = stats.CODCount - stats.CODDuplicateCount
	return stats
}
