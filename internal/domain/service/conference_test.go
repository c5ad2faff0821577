package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aideadlines/slack-deadline-bot/internal/domain/entity"
	"github.com/aideadlines/slack-deadline-bot/internal/domain/query"
	"github.com/aideadlines/slack-deadline-bot/mocks"
)

var confTestNow = time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)

func conferenceFixtures() []entity.Conference {
	return []entity.Conference{
		{
			ID:       "cvpr25",
			Title:    "CVPR",
			Year:     2025,
			Timezone: "America/Los_Angeles",
			Deadline: "2025-11-14 23:59",
			HIndex:   389,
			Subjects: []string{"ML", "CV"},
		},
		{
			ID:       "acl26",
			Title:    "ACL",
			Year:     2026,
			Timezone: "UTC",
			Deadline: "2026-02-15 23:59",
			HIndex:   215,
			Subjects: []string{"NLP"},
		},
		{
			ID:       "neurips24",
			Title:    "NeurIPS",
			Year:     2024,
			Timezone: "UTC",
			Deadline: "2024-05-22 20:00",
			HIndex:   337,
			Subjects: []string{"ML"},
		},
	}
}

func newTestConference(provider *mocks.MockConferenceProvider) *conferenceService {
	s := newConference(provider)
	s.now = func() time.Time { return confTestNow }
	return s
}

func Test_conferenceService_List(t *testing.T) {
	ctx := context.Background()

	type args struct {
		subject string
		year    int
		mode    query.SortMode
	}

	tests := []struct {
		name       string
		args       args
		buildMocks func(m allMocks)
		wantIDs    []string
		wantErr    bool
	}{
		{
			name: "Should sort by deadline with expired last",
			args: args{mode: query.SortByDeadline},
			buildMocks: func(m allMocks) {
				m.mockProvider.EXPECT().Conferences(ctx).Return(conferenceFixtures(), nil).Times(1)
			},
			wantIDs: []string{"cvpr25", "acl26", "neurips24"},
		},
		{
			name: "Should filter by subject",
			args: args{subject: "NLP", mode: query.SortByDeadline},
			buildMocks: func(m allMocks) {
				m.mockProvider.EXPECT().Conferences(ctx).Return(conferenceFixtures(), nil).Times(1)
			},
			wantIDs: []string{"acl26"},
		},
		{
			name: "Should filter by year",
			args: args{year: 2025, mode: query.SortByDeadline},
			buildMocks: func(m allMocks) {
				m.mockProvider.EXPECT().Conferences(ctx).Return(conferenceFixtures(), nil).Times(1)
			},
			wantIDs: []string{"cvpr25"},
		},
		{
			name: "Should sort by h-index descending",
			args: args{mode: query.SortByHIndex},
			buildMocks: func(m allMocks) {
				m.mockProvider.EXPECT().Conferences(ctx).Return(conferenceFixtures(), nil).Times(1)
			},
			wantIDs: []string{"cvpr25", "neurips24", "acl26"},
		},
		{
			name: "Should fall back to deadline order for an unknown mode",
			args: args{mode: query.SortMode("popularity")},
			buildMocks: func(m allMocks) {
				m.mockProvider.EXPECT().Conferences(ctx).Return(conferenceFixtures(), nil).Times(1)
			},
			wantIDs: []string{"cvpr25", "acl26", "neurips24"},
		},
		{
			name: "Should return error when the feed is unavailable",
			args: args{mode: query.SortByDeadline},
			buildMocks: func(m allMocks) {
				m.mockProvider.EXPECT().Conferences(ctx).Return(nil, errors.New("fetch failed")).Times(1)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			if tt.buildMocks != nil {
				tt.buildMocks(m)
			}

			s := newTestConference(m.mockProvider)
			got, err := s.List(ctx, tt.args.subject, tt.args.year, tt.args.mode)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			ids := make([]string, len(got))
			for i, c := range got {
				ids[i] = c.ID
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func Test_conferenceService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("Should match titles case-insensitively", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockProvider.EXPECT().Conferences(ctx).Return(conferenceFixtures(), nil).Times(1)

		got, err := newTestConference(m.mockProvider).Search(ctx, "cVpR")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "cvpr25", got[0].ID)
	})

	t.Run("Should return error when the feed is unavailable", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockProvider.EXPECT().Conferences(ctx).Return(nil, errors.New("fetch failed")).Times(1)

		_, err := newTestConference(m.mockProvider).Search(ctx, "cvpr")
		require.Error(t, err)
	})
}

func Test_conferenceService_Upcoming(t *testing.T) {
	ctx := context.Background()

	t.Run("Should only include deadlines inside the window", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockProvider.EXPECT().Conferences(ctx).Return(conferenceFixtures(), nil).Times(1)

		got, err := newTestConference(m.mockProvider).Upcoming(ctx, 30)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "cvpr25", got[0].Conference.ID)
		assert.Equal(t, 14, got[0].DaysLeft)
	})

	t.Run("Should exclude expired deadlines", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockProvider.EXPECT().Conferences(ctx).Return(conferenceFixtures(), nil).Times(1)

		got, err := newTestConference(m.mockProvider).Upcoming(ctx, 3650)
		require.NoError(t, err)
		for _, rem := range got {
			assert.NotEqual(t, "neurips24", rem.Conference.ID)
		}
	})
}
