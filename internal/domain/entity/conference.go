package entity

import "time"

// Conference is a read-only fact loaded from the conference feed. The feed
// layer normalizes records before the core sees them: ids are lowercased,
// subject tags are always a non-empty slice, and deadline strings are either
// empty or known to parse in the conference's timezone.
type Conference struct {
	ID       string // unique, lowercase, conventionally ends with 2-digit year
	Title    string
	FullName string
	Year     int

	// Timezone is the IANA zone the deadline wall-clock strings belong to.
	Timezone string

	// Deadline and AbstractDeadline are wall-clock strings in the
	// conference's own timezone, format "YYYY-MM-DD HH:MM". Empty means the
	// conference has no such deadline.
	Deadline         string
	AbstractDeadline string

	Start time.Time // zero if unknown
	End   time.Time // zero if unknown

	Place    string
	HIndex   int
	Subjects []string
	Link     string
	Note     string
}

// HasSubject reports whether the conference carries the given subject tag.
func (c *Conference) HasSubject(tag string) bool {
	for _, s := range c.Subjects {
		if s == tag {
			return true
		}
	}
	return false
}

// DeadlineInfo is derived fresh from a Conference on every query; it is never
// persisted since its meaning relative to "now" changes continuously.
type DeadlineInfo struct {
	Label string    // domain.LabelAbstract or domain.LabelSubmission
	At    time.Time // the instant, located in the conference's declared zone
	Local time.Time // the same instant in the viewer's zone; equals At until localized
}

// Localized returns a copy with Local converted to the given zone.
func (d DeadlineInfo) Localized(loc *time.Location) DeadlineInfo {
	d.Local = d.At.In(loc)
	return d
}

// Reminder is one entry of a recipient-scoped notification batch: a
// conference, the deadline that qualified, and the days remaining.
type Reminder struct {
	Conference Conference
	Deadline   DeadlineInfo
	DaysLeft   int
}
