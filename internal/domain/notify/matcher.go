// Package notify decides which deadlines are due for a reminder under a
// recipient's policy and assembles per-recipient notification batches.
//
// The matcher is built for a daily cron trigger, not a precise event
// scheduler: an exact-day match (daysLeft == t) would miss reminders whenever
// the trigger runs late, is skipped, or fires at a different wall-clock hour
// than the day boundary. Two rules compensate: a ±1-day tolerance window
// around every configured threshold, and a catch-all that keeps every run
// inside the smallest threshold window firing daily so the final warning is
// never silently lost.
package notify

import "sort"

// Due reports whether a deadline daysLeft away qualifies for a reminder under
// the threshold set. Thresholds are treated as a mathematical set: duplicates
// and ordering don't matter, non-positive values are ignored. An empty (or
// fully invalid) set never matches.
//
// daysLeft <= 0 should not occur since callers pre-filter to strictly-future
// deadlines, but an overdue-by-a-skipped-run deadline still satisfies the
// catch-all rather than being dropped.
func Due(daysLeft int, thresholds []int) bool {
	ts := normalizeThresholds(thresholds)
	if len(ts) == 0 {
		return false
	}

	// Catch-all: inside the smallest window, every run is due.
	if daysLeft <= ts[0] {
		return true
	}

	// Tolerance: within one day of any configured threshold.
	for _, t := range ts {
		if abs(daysLeft-t) <= 1 {
			return true
		}
	}

	return false
}

// normalizeThresholds dedupes, drops non-positive values, and sorts ascending.
func normalizeThresholds(in []int) []int {
	seen := make(map[int]struct{}, len(in))
	out := make([]int, 0, len(in))
	for _, t := range in {
		if t <= 0 {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Ints(out)
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
