package notify

import (
	"sort"
	"time"

	"github.com/aideadlines/slack-deadline-bot/internal/domain/deadline"
	"github.com/aideadlines/slack-deadline-bot/internal/domain/entity"
)

// BuildBatch assembles the recipient-scoped reminder list for one policy:
// narrow by the policy's subjects, take each conference's next strictly-future
// deadline, keep the ones the matcher considers due, and order nearest first.
//
// Subject narrowing is a union: a conference matching any of the recipient's
// subjects appears exactly once even when it carries several of them. An
// empty subject list means all subjects. An empty conference list yields an
// empty batch, never an error.
func BuildBatch(confs []entity.Conference, policy *entity.ReminderPolicy, now time.Time) []entity.Reminder {
	var out []entity.Reminder

	for _, c := range confs {
		if !subjectMatch(&c, policy.Subjects) {
			continue
		}

		// Strictly-future deadlines only; the display path's expired
		// fallback must never reach a notification.
		up := deadline.Upcoming(&c, now)
		if len(up) == 0 {
			continue
		}

		next := up[0]
		left := deadline.DaysLeft(now, next.At)
		if !Due(left, policy.ReminderDays) {
			continue
		}

		out = append(out, entity.Reminder{Conference: c, Deadline: next, DaysLeft: left})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Deadline.At.Before(out[j].Deadline.At)
	})
	return out
}

func subjectMatch(c *entity.Conference, subjects []string) bool {
	if len(subjects) == 0 {
		return true
	}
	for _, s := range subjects {
		if c.HasSubject(s) {
			return true
		}
	}
	return false
}
