package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/i474232898/station-dashboard/internal/station"
	"github.com/i474232898/station-dashboard/internal/weatherlink"
)

// ErrSuperseded is returned by a fetch whose response arrived after a newer
// fetch of the same kind was issued. The response is discarded.
var ErrSuperseded = errors.New("response superseded by a newer fetch")

// Fetcher is the station API as the session needs it.
type Fetcher interface {
	Current(ctx context.Context) (*station.Snapshot, error)
	Historic(ctx context.Context, start, end time.Time) (*station.Snapshot, error)
}

// Window is the time span a historic snapshot covers.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Session owns the snapshots fetched during one dashboard session. Readers get
// the held snapshots by pointer and must treat them as read-only.
type Session struct {
	id      uuid.UUID
	fetcher Fetcher
	timeout time.Duration
	logger  *slog.Logger
	now     func() time.Time

	currentSeq  atomic.Uint64
	historicSeq atomic.Uint64
	inflight    atomic.Int32

	mu             sync.RWMutex
	current        *station.Snapshot
	historic       *station.Snapshot
	historicWindow Window
}

// Option customises a Session.
type Option func(*Session)

// WithTimeout bounds every fetch. Zero leaves the deadline to the caller's
// context and the fetcher.
func WithTimeout(d time.Duration) Option {
	return func(s *Session) { s.timeout = d }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New starts a session backed by fetcher.
func New(fetcher Fetcher, opts ...Option) *Session {
	s := &Session{
		id:      uuid.New(),
		fetcher: fetcher,
		timeout: weatherlink.DefaultTimeout,
		logger:  slog.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("session", s.id.String())
	return s
}

func (s *Session) ID() uuid.UUID { return s.id }

// Busy reports whether any fetch is outstanding.
func (s *Session) Busy() bool { return s.inflight.Load() > 0 }

// Current returns the last accepted current-conditions snapshot.
func (s *Session) Current() *station.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Historic returns the last accepted historic snapshot and its window.
func (s *Session) Historic() (*station.Snapshot, Window) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.historic, s.historicWindow
}

// Ready reports whether both snapshots have been fetched at least once.
func (s *Session) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil && s.historic != nil
}

// LastUpdated is when the station sampled the held current snapshot.
func (s *Session) LastUpdated() (time.Time, bool) {
	return station.LastUpdated(s.Current())
}

func (s *Session) begin(ctx context.Context) (context.Context, func()) {
	s.inflight.Add(1)
	cancel := func() {}
	if s.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
	}
	return ctx, func() {
		cancel()
		s.inflight.Add(-1)
	}
}

// FetchCurrent fetches the current conditions and, unless a newer fetch was
// issued meanwhile, makes them the held snapshot. On any error the held
// snapshot is left untouched.
func (s *Session) FetchCurrent(ctx context.Context) (*station.Snapshot, error) {
	seq := s.currentSeq.Add(1)
	ctx, done := s.begin(ctx)
	defer done()

	snap, err := s.fetcher.Current(ctx)
	if err = checkResponse(ctx, snap, err); err != nil {
		s.logger.Warn("current fetch failed", "seq", seq, "error", err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.currentSeq.Load() {
		s.logger.Debug("discarding stale current response", "seq", seq)
		return nil, ErrSuperseded
	}
	s.current = snap
	return snap, nil
}

// FetchHistoric fetches the archive between start and end. Responses are
// accepted whole or not at all; a stale response never merges into a newer
// one.
func (s *Session) FetchHistoric(ctx context.Context, start, end time.Time) (*station.Snapshot, error) {
	seq := s.historicSeq.Add(1)
	ctx, done := s.begin(ctx)
	defer done()

	snap, err := s.fetcher.Historic(ctx, start, end)
	if err = checkResponse(ctx, snap, err); err != nil {
		s.logger.Warn("historic fetch failed", "seq", seq, "start", start, "end", end, "error", err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.historicSeq.Load() {
		s.logger.Debug("discarding stale historic response", "seq", seq)
		return nil, ErrSuperseded
	}
	s.historic = snap
	s.historicWindow = Window{Start: start, End: end}
	return snap, nil
}

// FetchHistoricLast fetches the window ending now.
func (s *Session) FetchHistoricLast(ctx context.Context, d time.Duration) (*station.Snapshot, error) {
	end := s.now()
	return s.FetchHistoric(ctx, end.Add(-d), end)
}

// Refresh fetches current conditions and the trailing historic window
// concurrently. Each may fail on its own; the failures are joined.
func (s *Session) Refresh(ctx context.Context, window time.Duration) error {
	var (
		wg                  sync.WaitGroup
		currentErr, histErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		_, currentErr = s.FetchCurrent(ctx)
	}()
	go func() {
		defer wg.Done()
		_, histErr = s.FetchHistoricLast(ctx, window)
	}()
	wg.Wait()

	if currentErr != nil {
		currentErr = fmt.Errorf("current: %w", currentErr)
	}
	if histErr != nil {
		histErr = fmt.Errorf("historic: %w", histErr)
	}
	return errors.Join(currentErr, histErr)
}

// checkResponse normalises a fetch result: deadline overruns become
// weatherlink.ErrTimeout and a nil snapshot is an invalid response.
func checkResponse(ctx context.Context, snap *station.Snapshot, err error) error {
	if err != nil {
		if !errors.Is(err, weatherlink.ErrTimeout) &&
			(errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded)) {
			return fmt.Errorf("%w: %w", weatherlink.ErrTimeout, err)
		}
		return err
	}
	if snap == nil {
		return fmt.Errorf("%w: empty response", weatherlink.ErrInvalidResponse)
	}
	return nil
}
