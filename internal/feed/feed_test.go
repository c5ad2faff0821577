package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aideadlines/slack-deadline-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `
- id: CVPR25
  title: CVPR
  full_name: Conference on Computer Vision and Pattern Recognition
  year: 2025
  timezone: America/Los_Angeles
  deadline: "2025-11-15 23:59"
  abstract_deadline: "2025-11-08 23:59"
  place: Nashville, USA
  start: "2026-06-10"
  end: "2026-06-15"
  hindex: 389
  sub: CV
- id: neurips25
  title: NeurIPS
  full_name: Conference on Neural Information Processing Systems
  year: 2025
  timezone: UTC
  deadline: "2025-05-15 19:59"
  hindex: 337
  sub:
    - ML
    - DM
`

func TestParse(t *testing.T) {
	confs, err := Parse([]byte(sampleFeed))
	require.NoError(t, err)
	require.Len(t, confs, 2)

	t.Run("scalar sub becomes slice and id is lowercased", func(t *testing.T) {
		cvpr := confs[0]
		assert.Equal(t, "cvpr25", cvpr.ID)
		assert.Equal(t, []string{domain.SubjectCV}, cvpr.Subjects)
		assert.Equal(t, "2025-11-15 23:59", cvpr.Deadline)
		assert.Equal(t, "2025-11-08 23:59", cvpr.AbstractDeadline)
		assert.Equal(t, time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC), cvpr.Start)
	})

	t.Run("sequence sub preserved", func(t *testing.T) {
		neurips := confs[1]
		assert.Equal(t, []string{domain.SubjectML, domain.SubjectDM}, neurips.Subjects)
		assert.Empty(t, neurips.AbstractDeadline)
	})
}

func TestParse_SkipsAndDegrades(t *testing.T) {
	t.Run("record without id skipped", func(t *testing.T) {
		confs, err := Parse([]byte("- title: Mystery\n  year: 2025\n  timezone: UTC\n"))
		require.NoError(t, err)
		assert.Empty(t, confs)
	})

	t.Run("out-of-range year skipped", func(t *testing.T) {
		confs, err := Parse([]byte("- id: old01\n  year: 1815\n  timezone: UTC\n"))
		require.NoError(t, err)
		assert.Empty(t, confs)
	})

	t.Run("unknown timezone skipped", func(t *testing.T) {
		confs, err := Parse([]byte("- id: conf25\n  year: 2025\n  timezone: Mars/Olympus\n"))
		require.NoError(t, err)
		assert.Empty(t, confs)
	})

	t.Run("bad deadline degraded to absent", func(t *testing.T) {
		confs, err := Parse([]byte("- id: conf25\n  year: 2025\n  timezone: UTC\n  deadline: \"TBA\"\n"))
		require.NoError(t, err)
		require.Len(t, confs, 1)
		assert.Empty(t, confs[0].Deadline)
	})

	t.Run("invalid yaml is an error", func(t *testing.T) {
		_, err := Parse([]byte("{{nope"))
		assert.Error(t, err)
	})
}

func TestProvider_CachesWithinTTL(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("ETag", `"v1"`)
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	p := NewProvider(srv.URL, time.Hour)
	ctx := context.Background()

	first, err := p.Conferences(ctx)
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := p.Conferences(ctx)
	require.NoError(t, err)
	require.Len(t, second, 2)

	assert.Equal(t, int32(1), hits.Load(), "second call within TTL must not refetch")
}

func TestProvider_ServesStaleOnOutage(t *testing.T) {
	var fail atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	p := NewProvider(srv.URL, time.Nanosecond) // expire immediately
	ctx := context.Background()

	first, err := p.Conferences(ctx)
	require.NoError(t, err)
	require.Len(t, first, 2)

	fail.Store(true)

	stale, err := p.Conferences(ctx)
	require.NoError(t, err, "outage must degrade to stale snapshot, not error")
	assert.Len(t, stale, 2)
}

func TestProvider_ErrorsWithNoSnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p := NewProvider(srv.URL, time.Hour)

	_, err := p.Conferences(context.Background())
	assert.Error(t, err)
}

func TestFileProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conferences.yml")
	require.NoError(t, os.WriteFile(path, []byte(sampleFeed), 0o600))

	p := NewFileProvider(path)

	confs, err := p.Conferences(context.Background())
	require.NoError(t, err)
	assert.Len(t, confs, 2)
}
