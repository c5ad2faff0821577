// Package deadline implements the time and deadline model: parsing
// wall-clock deadline strings into zoned instants and answering "next
// deadline" queries for a conference.
package deadline

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/aideadlines/slack-deadline-bot/internal/domain"
	"github.com/aideadlines/slack-deadline-bot/internal/domain/entity"
)

// Layout is the wall-clock format used by the conference feed.
const Layout = "2006-01-02 15:04"

var (
	// ErrInvalidFormat means the raw string does not match "YYYY-MM-DD HH:MM".
	ErrInvalidFormat = errors.New("deadline does not match YYYY-MM-DD HH:MM")
	// ErrInvalidZone means the zone is not a recognized IANA identifier.
	ErrInvalidZone = errors.New("unrecognized IANA timezone")
	// ErrInvalidCalendarValue means the date/time combination does not exist,
	// e.g. Feb 30 or a time inside a DST spring-forward gap.
	ErrInvalidCalendarValue = errors.New("date/time does not exist")
)

var layoutRe = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2}) (\d{2}):(\d{2})$`)

// Parse combines a wall-clock deadline string with an IANA zone name into an
// instant. Non-existent local times are rejected rather than silently
// normalized: time.Date shifts such values, so any component drift after
// construction means the input named a calendar value that does not exist.
func Parse(raw, zone string) (time.Time, error) {
	m := layoutRe.FindStringSubmatch(raw)
	if m == nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidFormat, raw)
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidZone, zone)
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	hour, _ := strconv.Atoi(m[4])
	minute, _ := strconv.Atoi(m[5])

	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day ||
		t.Hour() != hour || t.Minute() != minute {
		return time.Time{}, fmt.Errorf("%w: %q in %s", ErrInvalidCalendarValue, raw, zone)
	}

	return t, nil
}

// All returns the conference's deadlines in display order: abstract deadline
// first, then paper submission. Absent deadlines are omitted. Deadlines that
// fail to parse are treated as absent; the feed layer already warned about
// them at ingestion.
func All(conf *entity.Conference) []entity.DeadlineInfo {
	var out []entity.DeadlineInfo

	if conf.AbstractDeadline != "" {
		if t, err := Parse(conf.AbstractDeadline, conf.Timezone); err == nil {
			out = append(out, entity.DeadlineInfo{Label: domain.LabelAbstract, At: t, Local: t})
		}
	}
	if conf.Deadline != "" {
		if t, err := Parse(conf.Deadline, conf.Timezone); err == nil {
			out = append(out, entity.DeadlineInfo{Label: domain.LabelSubmission, At: t, Local: t})
		}
	}

	return out
}

// Upcoming returns only the deadlines strictly after ref, nearest first.
// The order is established by comparing instants: the feed tolerates an
// abstract deadline after the submission deadline, so All's display order
// cannot be assumed chronological. The notification path must build on this,
// never on Next's expired fallback.
func Upcoming(conf *entity.Conference, ref time.Time) []entity.DeadlineInfo {
	var out []entity.DeadlineInfo
	for _, d := range All(conf) {
		if d.At.After(ref) {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].At.Before(out[j].At)
	})
	return out
}

// Next returns the earliest deadline strictly after ref. When every deadline
// has passed it falls back to the chronologically last one (the most recently
// expired), so listings still show something useful for a closed conference.
// It returns nil only when the conference has no deadlines at all.
func Next(conf *entity.Conference, ref time.Time) *entity.DeadlineInfo {
	all := All(conf)
	if len(all) == 0 {
		return nil
	}

	var next, latest *entity.DeadlineInfo
	for i := range all {
		d := &all[i]
		if d.At.After(ref) && (next == nil || d.At.Before(next.At)) {
			next = d
		}
		if latest == nil || d.At.After(latest.At) {
			latest = d
		}
	}

	if next == nil {
		next = latest
	}
	out := *next
	return &out
}

// DaysLeft returns the number of days from now until the deadline, counting
// whole calendar days in the deadline's zone and rounding any partial day up.
// Counting by AddDate instead of dividing raw hours keeps a DST transition
// inside the interval from shifting the count. Past deadlines yield a
// non-positive value.
func DaysLeft(now, deadline time.Time) int {
	cur := now.In(deadline.Location())

	if !deadline.After(cur) {
		days := 0
		for {
			prev := cur.AddDate(0, 0, -1)
			if prev.Before(deadline) {
				break
			}
			days--
			cur = prev
		}
		return days
	}

	days := 0
	for {
		next := cur.AddDate(0, 0, 1)
		if next.After(deadline) {
			break
		}
		days++
		cur = next
	}
	if cur.Before(deadline) {
		days++
	}
	return days
}
