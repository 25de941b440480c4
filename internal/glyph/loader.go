package glyph

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

// MaxID is the highest glyph id the editor uses. Fetched pools are clipped to
// ids 1..MaxID.
const MaxID = 78

// Source fetches the raw glyph list from somewhere remote.
type Source interface {
	Fetch(ctx context.Context) ([]Glyph, error)
}

// Cache stores a previously fetched pool. LoadGlyphs returns nil on a miss.
type Cache interface {
	LoadGlyphs() ([]Glyph, error)
	SaveGlyphs(glyphs []Glyph) error
}

// StatusError reports a non-2xx response from the glyph endpoint.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("glyph: unexpected status %d", e.Code)
}

// RateLimited reports whether err carries an HTTP 429.
func RateLimited(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusTooManyRequests
}

// HTTPSource fetches the pool as JSON from URL.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// Fetch implements Source.
func (s *HTTPSource) Fetch(ctx context.Context) ([]Glyph, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("glyph: cannot build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("glyph: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("glyph: cannot read response: %w", err)
	}
	pool, err := ParsePool(body)
	if err != nil {
		return nil, err
	}
	return pool.Glyphs(), nil
}

// RetryPolicy bounds the fetch attempts. The wait before retry i (1-based)
// is Delay*i, doubled when the server rate limited us.
type RetryPolicy struct {
	Attempts int           `yaml:"attempts"`
	Delay    time.Duration `yaml:"delay"`
}

// DefaultRetryPolicy matches the endpoint's documented limits.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{Attempts: 3, Delay: time.Second}
}

// Backoff returns the wait after failed attempt n (0-based).
func (p RetryPolicy) Backoff(n int, err error) time.Duration {
	d := p.Delay * time.Duration(n+1)
	if RateLimited(err) {
		d *= 2
	}
	return d
}

// Origin tells where a loaded pool came from.
type Origin int

const (
	OriginFallback Origin = iota
	OriginCache
	OriginRemote
)

// String returns the origin name.
func (o Origin) String() string {
	switch o {
	case OriginCache:
		return "cache"
	case OriginRemote:
		return "remote"
	default:
		return "fallback"
	}
}

// Loader resolves the glyph pool: cache first, then the remote source with
// retry, then the bundled fallback. Load never fails.
type Loader struct {
	Source Source
	Cache  Cache
	Retry  RetryPolicy
	Logger *log.Logger

	sleep func(ctx context.Context, d time.Duration) error
}

// NewLoader creates a loader with the default retry policy.
func NewLoader(src Source, cache Cache, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{
		Source: src,
		Cache:  cache,
		Retry:  DefaultRetryPolicy(),
		Logger: logger,
	}
}

// Load returns the pool and where it came from.
func (l *Loader) Load(ctx context.Context) (*Pool, Origin) {
	logger := l.logger()

	if l.Cache != nil {
		cached, err := l.Cache.LoadGlyphs()
		if err != nil {
			logger.Warn("glyph cache unreadable", "error", err)
		} else if len(cached) > 0 {
			return NewPool(cached), OriginCache
		}
	}

	if l.Source == nil {
		return Fallback(), OriginFallback
	}

	glyphs, err := l.Fetch(ctx)
	if err != nil {
		logger.Warn("using bundled glyphs", "error", err)
		return Fallback(), OriginFallback
	}

	if l.Cache != nil {
		if err := l.Cache.SaveGlyphs(glyphs); err != nil {
			logger.Warn("cannot cache glyphs", "error", err)
		}
	}
	return NewPool(glyphs), OriginRemote
}

// Fetch queries the source with retry and clips the result to ids 1..MaxID.
// It fails with ErrPoolUnavailable once every attempt is spent.
func (l *Loader) Fetch(ctx context.Context) ([]Glyph, error) {
	attempts := l.Retry.Attempts
	if attempts < 1 {
		attempts = 1
	}
	sleep := l.sleep
	if sleep == nil {
		sleep = sleepContext
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		glyphs, err := l.Source.Fetch(ctx)
		if err == nil {
			return clip(glyphs), nil
		}
		lastErr = err
		if i == attempts-1 {
			break
		}

		wait := l.Retry.Backoff(i, err)
		l.logger().Debug("glyph fetch failed", "attempt", i+1, "retry_in", wait, "error", err)
		if err := sleep(ctx, wait); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPoolUnavailable, err)
		}
	}
	return nil, fmt.Errorf("%w: %w", ErrPoolUnavailable, lastErr)
}

func (l *Loader) logger() *log.Logger {
	if l.Logger == nil {
		return log.Default()
	}
	return l.Logger
}

func clip(glyphs []Glyph) []Glyph {
	out := make([]Glyph, 0, len(glyphs))
	for _, g := range glyphs {
		if g.ID >= 1 && g.ID <= MaxID {
			out = append(out, g)
		}
	}
	return out
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
