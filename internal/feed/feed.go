// Package feed loads the conference list from its YAML source and normalizes
// records before the core ever sees them: subject tags become a uniform
// slice whether the feed wrote a scalar or a sequence, ids are lowercased,
// and malformed deadlines are stripped (with a warning) rather than passed
// through to the deadline model.
package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/aideadlines/slack-deadline-bot/internal/domain"
	"github.com/aideadlines/slack-deadline-bot/internal/domain/deadline"
	"github.com/aideadlines/slack-deadline-bot/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// subjectList accepts both YAML shapes the feed uses for the sub field:
// a single scalar ("ML") and a sequence (["ML", "CV"]).
type subjectList []string

func (s *subjectList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var single string
		if err := value.Decode(&single); err != nil {
			return err
		}
		*s = subjectList{single}
		return nil
	case yaml.SequenceNode:
		var many []string
		if err := value.Decode(&many); err != nil {
			return err
		}
		*s = subjectList(many)
		return nil
	default:
		return fmt.Errorf("sub must be a string or a list of strings, got %v", value.Kind)
	}
}

// record mirrors one YAML feed entry.
type record struct {
	ID               string      `yaml:"id"`
	Title            string      `yaml:"title"`
	FullName         string      `yaml:"full_name"`
	Year             int         `yaml:"year"`
	Link             string      `yaml:"link"`
	Deadline         string      `yaml:"deadline"`
	AbstractDeadline string      `yaml:"abstract_deadline"`
	Timezone         string      `yaml:"timezone"`
	Place            string      `yaml:"place"`
	Start            string      `yaml:"start"`
	End              string      `yaml:"end"`
	HIndex           int         `yaml:"hindex"`
	Sub              subjectList `yaml:"sub"`
	Note             string      `yaml:"note"`
}

// Parse decodes a YAML feed payload into normalized conferences. Records
// that cannot be salvaged (missing id, out-of-range year, unknown timezone)
// are skipped with a warning; data-quality problems inside an otherwise
// valid record (bad deadline string, abstract after submission) degrade that
// field instead of dropping the conference.
func Parse(data []byte) ([]entity.Conference, error) {
	var records []record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode conference feed: %w", err)
	}

	confs := make([]entity.Conference, 0, len(records))
	for i, rec := range records {
		conf, ok := normalize(i, rec)
		if !ok {
			continue
		}
		confs = append(confs, conf)
	}

	log.Info().Int("total", len(records)).Int("loaded", len(confs)).Msg("conference feed parsed")
	return confs, nil
}

func normalize(idx int, rec record) (entity.Conference, bool) {
	id := strings.ToLower(strings.TrimSpace(rec.ID))
	if id == "" {
		log.Warn().Int("index", idx).Msg("skipping feed record without id")
		return entity.Conference{}, false
	}

	if rec.Year < domain.MinYear || rec.Year > domain.MaxYear {
		log.Warn().Str("id", id).Int("year", rec.Year).Msg("skipping conference with out-of-range year")
		return entity.Conference{}, false
	}

	if _, err := time.LoadLocation(rec.Timezone); err != nil || rec.Timezone == "" {
		log.Warn().Str("id", id).Str("timezone", rec.Timezone).Msg("skipping conference with unknown timezone")
		return entity.Conference{}, false
	}

	conf := entity.Conference{
		ID:       id,
		Title:    rec.Title,
		FullName: rec.FullName,
		Year:     rec.Year,
		Timezone: rec.Timezone,
		Place:    rec.Place,
		HIndex:   rec.HIndex,
		Subjects: normalizeSubjects(id, rec.Sub),
		Link:     rec.Link,
		Note:     rec.Note,
	}

	// A malformed deadline is treated as absent, never coerced to a wrong
	// instant.
	conf.Deadline = checkDeadline(id, "deadline", rec.Deadline, rec.Timezone)
	conf.AbstractDeadline = checkDeadline(id, "abstract_deadline", rec.AbstractDeadline, rec.Timezone)

	if conf.Deadline != "" && conf.AbstractDeadline != "" {
		d, _ := deadline.Parse(conf.Deadline, conf.Timezone)
		a, _ := deadline.Parse(conf.AbstractDeadline, conf.Timezone)
		if a.After(d) {
			log.Warn().Str("id", id).Msg("abstract deadline is after submission deadline")
		}
	}

	conf.Start = parseDate(id, "start", rec.Start)
	conf.End = parseDate(id, "end", rec.End)
	if !conf.Start.IsZero() && !conf.End.IsZero() && conf.Start.After(conf.End) {
		log.Warn().Str("id", id).Msg("conference start date is after end date")
	}

	return conf, true
}

func normalizeSubjects(id string, subs subjectList) []string {
	out := make([]string, 0, len(subs))
	seen := make(map[string]struct{}, len(subs))
	for _, s := range subs {
		tag := strings.ToUpper(strings.TrimSpace(s))
		if tag == "" {
			continue
		}
		if !domain.ValidSubject(tag) {
			log.Warn().Str("id", id).Str("sub", tag).Msg("unknown subject tag kept as-is")
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

func checkDeadline(id, field, raw, zone string) string {
	if raw == "" {
		return ""
	}
	if _, err := deadline.Parse(raw, zone); err != nil {
		log.Warn().Err(err).Str("id", id).Str("field", field).Msg("dropping unparseable deadline")
		return ""
	}
	return raw
}

func parseDate(id, field, raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		log.Warn().Err(err).Str("id", id).Str("field", field).Msg("dropping unparseable date")
		return time.Time{}
	}
	return t
}
