// Package ics renders the conference feed as an iCalendar document so
// deadlines can be subscribed to from any calendar client.
package ics

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/rs/zerolog/log"

	"github.com/aideadlines/slack-deadline-bot/internal/domain"
	"github.com/aideadlines/slack-deadline-bot/internal/domain/contract"
	"github.com/aideadlines/slack-deadline-bot/internal/domain/deadline"
	"github.com/aideadlines/slack-deadline-bot/internal/domain/entity"
)

const productID = "-//slack-deadline-bot//conference deadlines//EN"

// Build emits a VCALENDAR with one VEVENT per announced deadline. Events
// are one hour long and end exactly at the deadline instant, so calendar
// clients show the deadline as the event's end.
func Build(confs []entity.Conference, now time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	for i := range confs {
		c := &confs[i]
		for _, d := range deadline.All(c) {
			ev := cal.AddEvent(eventUID(c, d.Label))
			ev.SetDtStampTime(now)
			ev.SetStartAt(d.At.Add(-time.Hour))
			ev.SetEndAt(d.At)
			ev.SetSummary(fmt.Sprintf("%s %d - %s", c.Title, c.Year, d.Label))

			var desc []string
			if c.FullName != "" {
				desc = append(desc, c.FullName)
			}
			if len(c.Subjects) > 0 {
				desc = append(desc, "Subjects: "+strings.Join(c.Subjects, ", "))
			}
			if c.Note != "" {
				desc = append(desc, c.Note)
			}
			if len(desc) > 0 {
				ev.SetDescription(strings.Join(desc, "\n"))
			}
			if c.Place != "" {
				ev.SetLocation(c.Place)
			}
			if c.Link != "" {
				ev.SetURL(c.Link)
			}
		}
	}

	return cal.Serialize()
}

func eventUID(c *entity.Conference, label string) string {
	kind := "submission"
	if label == domain.LabelAbstract {
		kind = "abstract"
	}
	return fmt.Sprintf("%s-%s@slack-deadline-bot", c.ID, kind)
}

// Handler serves the calendar at /calendar.ics from the live feed snapshot.
type Handler struct {
	provider contract.ConferenceProvider
	now      func() time.Time
}

func NewHandler(provider contract.ConferenceProvider) *Handler {
	return &Handler{provider: provider, now: time.Now}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	confs, err := h.provider.Conferences(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("calendar export failed")
		http.Error(w, "feed unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="deadlines.ics"`)
	if _, err := fmt.Fprint(w, Build(confs, h.now())); err != nil {
		log.Error().Err(err).Msg("failed to write calendar response")
	}
}
