package deadline

import (
	"testing"
	"time"

	"github.com/aideadlines/slack-deadline-bot/internal/domain"
	"github.com/aideadlines/slack-deadline-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		zone    string
		wantErr error
	}{
		{
			name: "valid deadline",
			raw:  "2025-11-15 23:59",
			zone: "America/Los_Angeles",
		},
		{
			name: "valid deadline UTC",
			raw:  "2025-01-01 00:00",
			zone: "UTC",
		},
		{
			name:    "missing time component",
			raw:     "2025-11-15",
			zone:    "UTC",
			wantErr: ErrInvalidFormat,
		},
		{
			name:    "ISO T separator not accepted",
			raw:     "2025-11-15T23:59",
			zone:    "UTC",
			wantErr: ErrInvalidFormat,
		},
		{
			name:    "trailing seconds",
			raw:     "2025-11-15 23:59:00",
			zone:    "UTC",
			wantErr: ErrInvalidFormat,
		},
		{
			name:    "unknown zone",
			raw:     "2025-11-15 23:59",
			zone:    "America/Atlantis",
			wantErr: ErrInvalidZone,
		},
		{
			name:    "February 30th",
			raw:     "2025-02-30 12:00",
			zone:    "UTC",
			wantErr: ErrInvalidCalendarValue,
		},
		{
			name:    "month 13",
			raw:     "2025-13-01 12:00",
			zone:    "UTC",
			wantErr: ErrInvalidCalendarValue,
		},
		{
			name:    "inside DST spring-forward gap",
			raw:     "2025-03-09 02:30",
			zone:    "America/New_York",
			wantErr: ErrInvalidCalendarValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw, tt.zone)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			// Round trip: reformatting in the same zone reproduces the input.
			assert.Equal(t, tt.raw, got.Format(Layout))
			assert.Equal(t, tt.zone, got.Location().String())
		})
	}
}

func TestParse_RoundTripAcrossZones(t *testing.T) {
	zones := []string{"UTC", "America/Los_Angeles", "Europe/Vienna", "Asia/Seoul", "Pacific/Auckland"}
	raws := []string{"2025-06-30 23:59", "2026-02-28 09:00", "2025-12-31 17:30"}

	for _, zone := range zones {
		for _, raw := range raws {
			got, err := Parse(raw, zone)
			require.NoError(t, err, "zone %s raw %s", zone, raw)
			assert.Equal(t, raw, got.Format(Layout), "zone %s", zone)
		}
	}
}

func testConference() *entity.Conference {
	return &entity.Conference{
		ID:               "cvpr25",
		Title:            "CVPR",
		Year:             2025,
		Timezone:         "America/Los_Angeles",
		Deadline:         "2025-11-15 23:59",
		AbstractDeadline: "2025-11-08 23:59",
		Subjects:         []string{domain.SubjectCV},
	}
}

func TestAll(t *testing.T) {
	t.Run("abstract first then submission", func(t *testing.T) {
		all := All(testConference())

		require.Len(t, all, 2)
		assert.Equal(t, domain.LabelAbstract, all[0].Label)
		assert.Equal(t, domain.LabelSubmission, all[1].Label)
		assert.True(t, all[0].At.Before(all[1].At))
	})

	t.Run("absent deadlines omitted", func(t *testing.T) {
		conf := testConference()
		conf.AbstractDeadline = ""

		all := All(conf)

		require.Len(t, all, 1)
		assert.Equal(t, domain.LabelSubmission, all[0].Label)
	})

	t.Run("no deadlines at all", func(t *testing.T) {
		conf := testConference()
		conf.Deadline = ""
		conf.AbstractDeadline = ""

		assert.Empty(t, All(conf))
	})
}

func TestNext(t *testing.T) {
	conf := testConference()

	t.Run("abstract upcoming", func(t *testing.T) {
		ref := time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)

		next := Next(conf, ref)

		require.NotNil(t, next)
		assert.Equal(t, domain.LabelAbstract, next.Label)
	})

	t.Run("abstract passed, submission upcoming", func(t *testing.T) {
		loc, err := time.LoadLocation("America/Los_Angeles")
		require.NoError(t, err)
		ref := time.Date(2025, 11, 12, 12, 0, 0, 0, loc)

		next := Next(conf, ref)

		require.NotNil(t, next)
		assert.Equal(t, domain.LabelSubmission, next.Label)
		assert.Equal(t, "2025-11-15 23:59", next.At.Format(Layout))
	})

	t.Run("all expired falls back to most recent", func(t *testing.T) {
		ref := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

		next := Next(conf, ref)

		require.NotNil(t, next)
		assert.Equal(t, domain.LabelSubmission, next.Label)
		assert.True(t, next.At.Before(ref))
	})

	t.Run("no deadlines returns nil", func(t *testing.T) {
		empty := testConference()
		empty.Deadline = ""
		empty.AbstractDeadline = ""

		assert.Nil(t, Next(empty, time.Now()))
	})
}

func TestUpcoming_ExcludesExpiredFallback(t *testing.T) {
	conf := testConference()
	ref := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	// Next falls back to the expired submission deadline, Upcoming must not.
	require.NotNil(t, Next(conf, ref))
	assert.Empty(t, Upcoming(conf, ref))
}

func TestNext_AbstractAfterSubmission(t *testing.T) {
	// The feed keeps records whose abstract deadline falls after the
	// submission deadline (data-quality warning, not fatal), so selection
	// must compare instants rather than trust All's display order.
	conf := testConference()
	conf.AbstractDeadline = "2025-12-01 00:00"
	conf.Deadline = "2025-11-15 23:59"

	t.Run("earliest future deadline wins", func(t *testing.T) {
		ref := time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)

		next := Next(conf, ref)

		require.NotNil(t, next)
		assert.Equal(t, domain.LabelSubmission, next.Label)
	})

	t.Run("upcoming is chronological", func(t *testing.T) {
		ref := time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)

		up := Upcoming(conf, ref)

		require.Len(t, up, 2)
		assert.Equal(t, domain.LabelSubmission, up[0].Label)
		assert.Equal(t, domain.LabelAbstract, up[1].Label)
		assert.True(t, up[0].At.Before(up[1].At))
	})

	t.Run("expired fallback is the chronologically last", func(t *testing.T) {
		ref := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

		next := Next(conf, ref)

		require.NotNil(t, next)
		assert.Equal(t, domain.LabelAbstract, next.Label)
	})
}

func TestDaysLeft(t *testing.T) {
	la, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	deadline := time.Date(2025, 11, 15, 23, 59, 0, 0, la)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{
			name: "three and a half days out rounds up to 4",
			now:  time.Date(2025, 11, 12, 12, 0, 0, 0, la),
			want: 4,
		},
		{
			name: "two days later",
			now:  time.Date(2025, 11, 14, 12, 0, 0, 0, la),
			want: 2,
		},
		{
			name: "same day",
			now:  time.Date(2025, 11, 15, 9, 0, 0, 0, la),
			want: 1,
		},
		{
			name: "minutes before",
			now:  time.Date(2025, 11, 15, 23, 58, 0, 0, la),
			want: 1,
		},
		{
			name: "already passed",
			now:  time.Date(2025, 11, 16, 10, 0, 0, 0, la),
			want: 0,
		},
		{
			name: "long past",
			now:  time.Date(2025, 11, 20, 10, 0, 0, 0, la),
			want: -4,
		},
		{
			name: "now given in a different zone",
			now:  time.Date(2025, 11, 12, 20, 0, 0, 0, time.UTC), // 12:00 PST
			want: 4,
		},
		{
			name: "fall-back DST transition inside interval",
			// Nov 2 2025 is the PDT->PST change; the extra hour must not
			// bump the count to 16.
			now:  time.Date(2025, 10, 31, 23, 59, 0, 0, la),
			want: 15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysLeft(tt.now, deadline))
		})
	}
}
