// Package query implements the pure search, filter, and sort operations over
// conference collections. Nothing here mutates its input.
package query

import (
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/aideadlines/slack-deadline-bot/internal/domain/deadline"
	"github.com/aideadlines/slack-deadline-bot/internal/domain/entity"
)

// SortMode selects one of the three supported orderings.
type SortMode string

const (
	SortByDeadline SortMode = "deadline"
	SortByHIndex   SortMode = "hindex"
	SortByStart    SortMode = "start"
)

// ValidSortMode reports whether mode is one of the supported orderings.
func ValidSortMode(mode SortMode) bool {
	switch mode {
	case SortByDeadline, SortByHIndex, SortByStart:
		return true
	}
	return false
}

// normalize lowercases and strips all whitespace so that queries match
// regardless of spacing ("neur ips" finds "NeurIPS").
func normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Search filters by case- and whitespace-insensitive substring match against
// title, year, and full name. An empty query returns the input unchanged.
func Search(confs []entity.Conference, q string) []entity.Conference {
	needle := normalize(q)
	if needle == "" {
		return confs
	}

	var out []entity.Conference
	for _, c := range confs {
		haystack := normalize(c.Title + strconv.Itoa(c.Year) + c.FullName)
		if strings.Contains(haystack, needle) {
			out = append(out, c)
		}
	}
	return out
}

// FilterByYear keeps conferences held in the given year.
func FilterByYear(confs []entity.Conference, year int) []entity.Conference {
	var out []entity.Conference
	for _, c := range confs {
		if c.Year == year {
			out = append(out, c)
		}
	}
	return out
}

// FilterBySubject keeps conferences carrying the given subject tag. The
// subject field is a set: a conference tagged with several subjects matches
// if any of them equals tag.
func FilterBySubject(confs []entity.Conference, tag string) []entity.Conference {
	var out []entity.Conference
	for _, c := range confs {
		if c.HasSubject(tag) {
			out = append(out, c)
		}
	}
	return out
}

// Sort returns a sorted copy of confs. All modes are stable so equal keys
// keep their input order.
//
// The deadline mode partitions the list: conferences with a strictly-future
// next deadline come first, ascending by that deadline; conferences whose
// deadlines have all passed follow, descending by their most recent deadline
// (freshest expiry first); conferences with no deadline at all come last.
func Sort(confs []entity.Conference, mode SortMode, now time.Time) []entity.Conference {
	out := make([]entity.Conference, len(confs))
	copy(out, confs)

	switch mode {
	case SortByDeadline:
		sortByDeadline(out, now)
	case SortByHIndex:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].HIndex > out[j].HIndex
		})
	case SortByStart:
		// Descending by start date; the zero time ranks last.
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Start.After(out[j].Start)
		})
	}

	return out
}

// deadlineKey classifies a conference for the deadline sort.
type deadlineKey struct {
	class int       // 0 = future deadline, 1 = expired only, 2 = no deadline
	at    time.Time // next future deadline, or latest expired one
}

func classify(c *entity.Conference, now time.Time) deadlineKey {
	if up := deadline.Upcoming(c, now); len(up) > 0 {
		return deadlineKey{class: 0, at: up[0].At}
	}
	if all := deadline.All(c); len(all) > 0 {
		// All's display order is not chronological, so take the latest instant.
		latest := all[0].At
		for _, d := range all[1:] {
			if d.At.After(latest) {
				latest = d.At
			}
		}
		return deadlineKey{class: 1, at: latest}
	}
	return deadlineKey{class: 2}
}

func sortByDeadline(confs []entity.Conference, now time.Time) {
	keys := make([]deadlineKey, len(confs))
	for i := range confs {
		keys[i] = classify(&confs[i], now)
	}

	idx := make([]int, len(confs))
	for i := range idx {
		idx[i] = i
	}

	sort.SliceStable(idx, func(a, b int) bool {
		ka, kb := keys[idx[a]], keys[idx[b]]
		if ka.class != kb.class {
			return ka.class < kb.class
		}
		switch ka.class {
		case 0: // both future: nearest first
			return ka.at.Before(kb.at)
		case 1: // both expired: most recently expired first
			return ka.at.After(kb.at)
		default: // both undated: keep input order
			return false
		}
	})

	sorted := make([]entity.Conference, len(confs))
	for i, j := range idx {
		sorted[i] = confs[j]
	}
	copy(confs, sorted)
}

// UpcomingWithin returns every conference whose next strictly-future deadline
// falls inside the given number of days, nearest first. It is the
// threshold-less sibling of the reminder matcher, used for direct "what's due
// soon" queries.
func UpcomingWithin(confs []entity.Conference, days int, now time.Time) []entity.Reminder {
	var out []entity.Reminder
	for _, c := range confs {
		up := deadline.Upcoming(&c, now)
		if len(up) == 0 {
			continue
		}
		left := deadline.DaysLeft(now, up[0].At)
		if left > days {
			continue
		}
		out = append(out, entity.Reminder{Conference: c, Deadline: up[0], DaysLeft: left})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Deadline.At.Before(out[j].Deadline.At)
	})
	return out
}
