package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/aideadlines/slack-deadline-bot/internal/domain/entity"
)

// Provider serves conference snapshots from an HTTP YAML feed behind a
// read-through cache with TTL. When the upstream is unreachable it falls
// back to the last good snapshot, so a transient outage degrades to stale
// data instead of an empty cycle. ETag revalidation avoids re-downloading
// an unchanged feed.
type Provider struct {
	url    string
	client *http.Client
	ttl    time.Duration

	mu        sync.RWMutex
	snapshot  []entity.Conference
	fetchedAt time.Time
	etag      string
}

// NewProvider creates a Provider for the given feed URL.
func NewProvider(url string, ttl time.Duration) *Provider {
	return &Provider{
		url: url,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
		ttl: ttl,
	}
}

// Conferences returns the current snapshot, refreshing it when the TTL has
// expired. Callers must treat the result as read-only.
func (p *Provider) Conferences(ctx context.Context) ([]entity.Conference, error) {
	p.mu.RLock()
	fresh := p.snapshot != nil && time.Since(p.fetchedAt) < p.ttl
	snapshot := p.snapshot
	p.mu.RUnlock()

	if fresh {
		return snapshot, nil
	}

	return p.refresh(ctx)
}

// Refresh forces a fetch regardless of TTL; the scheduler calls this
// out-of-band so command handlers rarely pay the fetch latency.
func (p *Provider) Refresh(ctx context.Context) error {
	_, err := p.refresh(ctx)
	return err
}

func (p *Provider) refresh(ctx context.Context) ([]entity.Conference, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// Another caller may have refreshed while we waited for the lock.
	if p.snapshot != nil && time.Since(p.fetchedAt) < p.ttl {
		return p.snapshot, nil
	}

	body, notModified, err := p.fetch(ctx)
	if err != nil {
		if p.snapshot != nil {
			log.Warn().Err(err).Msg("feed fetch failed, serving stale snapshot")
			return p.snapshot, nil
		}
		return nil, fmt.Errorf("failed to fetch conference feed: %w", err)
	}

	if notModified {
		p.fetchedAt = time.Now()
		return p.snapshot, nil
	}

	confs, err := Parse(body)
	if err != nil {
		if p.snapshot != nil {
			log.Warn().Err(err).Msg("feed parse failed, serving stale snapshot")
			return p.snapshot, nil
		}
		return nil, err
	}

	p.snapshot = confs
	p.fetchedAt = time.Now()
	return confs, nil
}

func (p *Provider) fetch(ctx context.Context) (body []byte, notModified bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, false, err
	}
	if p.etag != "" && p.snapshot != nil {
		req.Header.Set("If-None-Match", p.etag)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotModified {
		return nil, true, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, err
	}

	p.etag = resp.Header.Get("ETag")
	return body, false, nil
}

// FileProvider reads the feed from a local YAML file on every call; useful
// for development and air-gapped deployments.
type FileProvider struct {
	path string
}

func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

// Refresh is a no-op; the file is re-read on every Conferences call.
func (p *FileProvider) Refresh(_ context.Context) error {
	return nil
}

func (p *FileProvider) Conferences(_ context.Context) ([]entity.Conference, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read conference feed file: %w", err)
	}
	return Parse(data)
}
