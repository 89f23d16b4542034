// Copyright (c) 2026 GVDB. All rights reserved.

package actor

import (
	"math"
	"sort"
	"time"
)

// Total returns the sum of all five role buckets.
func (b RoleBreakdown) Total() int {
	return b.Top + b.Bottom + b.Giver + b.Receiver + b.Other
}

// Percentages converts raw role counts into rounded percentage buckets.
// A zero total uses 1 as the divisor, so every bucket resolves to 0
// instead of a division error.
func (b RoleBreakdown) Percentages() RoleBreakdown {
	total := b.Total()
	if total == 0 {
		total = 1
	}

	pct := func(count int) int {
		return int(math.Round(float64(count) / float64(total) * 100))
	}

	return RoleBreakdown{
		Top:      pct(b.Top),
		Bottom:   pct(b.Bottom),
		Giver:    pct(b.Giver),
		Receiver: pct(b.Receiver),
		Other:    pct(b.Other),
	}
}

/*
SortRows orders candidate rows in place for one of the listing sort modes.

The name sort honors sortOrder. The latest and count sorts always order
descending regardless of sortOrder; callers rely on that long-standing
behavior, so it is kept rather than corrected (the test suite flags it).
The newest_edit sort orders by the most recent production edit, descending.
*/
func SortRows(rows []*AggregateRow, sortMode, sortOrder string) {
	switch sortMode {
	case SortLatest:
		sort.SliceStable(rows, func(i, j int) bool {
			return latestKey(rows[i]) > latestKey(rows[j])
		})
	case SortCount:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].TotalProductions > rows[j].TotalProductions
		})
	case SortNewestEdit:
		sort.SliceStable(rows, func(i, j int) bool {
			return editKey(rows[i]).After(editKey(rows[j]))
		})
	default:
		descending := sortOrder == "desc"
		sort.SliceStable(rows, func(i, j int) bool {
			if descending {
				return rows[i].ActorTag > rows[j].ActorTag
			}
			return rows[i].ActorTag < rows[j].ActorTag
		})
	}
}

// latestKey orders actors with no release history last under DESC.
func latestKey(row *AggregateRow) string {
	if row.LatestDate == nil {
		return ""
	}
	return *row.LatestDate
}

func editKey(row *AggregateRow) (t time.Time) {
	if row.LatestEdit == nil {
		return
	}
	return *row.LatestEdit
}
