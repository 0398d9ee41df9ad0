package session

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/station-dashboard/internal/station"
	"github.com/i474232898/station-dashboard/internal/weatherlink"
)

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) Current(ctx context.Context) (*station.Snapshot, error) {
	args := m.Called()
	snap, _ := args.Get(0).(*station.Snapshot)
	return snap, args.Error(1)
}

func (m *mockFetcher) Historic(ctx context.Context, start, end time.Time) (*station.Snapshot, error) {
	args := m.Called(start, end)
	snap, _ := args.Get(0).(*station.Snapshot)
	return snap, args.Error(1)
}

// funcFetcher lets a test control when each call returns.
type funcFetcher struct {
	current  func(ctx context.Context) (*station.Snapshot, error)
	historic func(ctx context.Context, start, end time.Time) (*station.Snapshot, error)
}

func (f *funcFetcher) Current(ctx context.Context) (*station.Snapshot, error) {
	return f.current(ctx)
}

func (f *funcFetcher) Historic(ctx context.Context, start, end time.Time) (*station.Snapshot, error) {
	return f.historic(ctx, start, end)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func snapshotWithTemp(temp float64) *station.Snapshot {
	ts := int64(1720544040)
	return &station.Snapshot{Sensors: []station.SensorBlock{
		{SensorType: station.SensorISS, Records: []station.Record{{TS: &ts, Temp: &temp}}},
	}}
}

func TestFetchCurrentStoresSnapshot(t *testing.T) {
	m := new(mockFetcher)
	snap := snapshotWithTemp(67.3)
	m.On("Current").Return(snap, nil).Once()

	s := New(m, WithLogger(quietLogger()))
	assert.Nil(t, s.Current())

	got, err := s.FetchCurrent(context.Background())
	require.NoError(t, err)
	assert.Same(t, snap, got)
	assert.Same(t, snap, s.Current())
	assert.False(t, s.Busy())

	updated, ok := s.LastUpdated()
	require.True(t, ok)
	assert.Equal(t, int64(1720544040), updated.Unix())
	m.AssertExpectations(t)
}

func TestFailuresPreserveHeldSnapshot(t *testing.T) {
	for name, fetchErr := range map[string]error{
		"invalid":   weatherlink.ErrInvalidResponse,
		"timeout":   weatherlink.ErrTimeout,
		"transport": weatherlink.ErrTransport,
	} {
		t.Run(name, func(t *testing.T) {
			m := new(mockFetcher)
			first := snapshotWithTemp(50)
			m.On("Current").Return(first, nil).Once()
			m.On("Current").Return(nil, fetchErr).Once()

			s := New(m, WithLogger(quietLogger()))
			_, err := s.FetchCurrent(context.Background())
			require.NoError(t, err)

			_, err = s.FetchCurrent(context.Background())
			assert.ErrorIs(t, err, fetchErr)
			assert.Same(t, first, s.Current())
			assert.False(t, s.Busy())
		})
	}
}

func TestNilSnapshotIsInvalid(t *testing.T) {
	m := new(mockFetcher)
	m.On("Current").Return(nil, nil)

	s := New(m, WithLogger(quietLogger()))
	_, err := s.FetchCurrent(context.Background())
	assert.ErrorIs(t, err, weatherlink.ErrInvalidResponse)
	assert.Nil(t, s.Current())
}

func TestTimeoutClearsBusy(t *testing.T) {
	f := &funcFetcher{current: func(ctx context.Context) (*station.Snapshot, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}}

	s := New(f, WithTimeout(20*time.Millisecond), WithLogger(quietLogger()))
	_, err := s.FetchCurrent(context.Background())

	assert.ErrorIs(t, err, weatherlink.ErrTimeout)
	assert.False(t, s.Busy())
	assert.Nil(t, s.Current())
}

func TestBusyWhileFetching(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	f := &funcFetcher{current: func(ctx context.Context) (*station.Snapshot, error) {
		close(started)
		<-release
		return snapshotWithTemp(1), nil
	}}

	s := New(f, WithLogger(quietLogger()))
	done := make(chan error, 1)
	go func() {
		_, err := s.FetchCurrent(context.Background())
		done <- err
	}()

	<-started
	assert.True(t, s.Busy())
	close(release)
	require.NoError(t, <-done)
	assert.False(t, s.Busy())
}

func TestStaleHistoricResponseIsDiscarded(t *testing.T) {
	older := snapshotWithTemp(10)
	newer := snapshotWithTemp(20)

	release := make(chan struct{})
	started := make(chan struct{})
	f := &funcFetcher{historic: func(ctx context.Context, start, end time.Time) (*station.Snapshot, error) {
		if start.Unix() == 100 {
			close(started)
			<-release
			return older, nil
		}
		return newer, nil
	}}

	s := New(f, WithLogger(quietLogger()))

	var (
		wg       sync.WaitGroup
		firstErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstErr = s.FetchHistoric(context.Background(), time.Unix(100, 0), time.Unix(200, 0))
	}()

	<-started
	_, err := s.FetchHistoric(context.Background(), time.Unix(300, 0), time.Unix(400, 0))
	require.NoError(t, err)

	close(release)
	wg.Wait()

	assert.ErrorIs(t, firstErr, ErrSuperseded)
	held, window := s.Historic()
	assert.Same(t, newer, held)
	assert.Equal(t, time.Unix(300, 0), window.Start)
	assert.Equal(t, time.Unix(400, 0), window.End)
	assert.Len(t, station.AllRecords(held, station.SensorISS), 1)
}

func TestFetchHistoricLastUsesClock(t *testing.T) {
	now := time.Date(2024, 7, 9, 18, 0, 0, 0, time.UTC)
	m := new(mockFetcher)
	m.On("Historic", now.Add(-6*time.Hour), now).Return(snapshotWithTemp(1), nil)

	s := New(m, WithClock(func() time.Time { return now }), WithLogger(quietLogger()))
	_, err := s.FetchHistoricLast(context.Background(), 6*time.Hour)
	require.NoError(t, err)

	_, window := s.Historic()
	assert.Equal(t, 6*time.Hour, window.End.Sub(window.Start))
	m.AssertExpectations(t)
}

func TestRefreshFailsIndependently(t *testing.T) {
	m := new(mockFetcher)
	hist := snapshotWithTemp(2)
	m.On("Current").Return(nil, weatherlink.ErrTransport)
	m.On("Historic", mock.Anything, mock.Anything).Return(hist, nil)

	s := New(m, WithLogger(quietLogger()))
	err := s.Refresh(context.Background(), 24*time.Hour)

	require.Error(t, err)
	assert.ErrorIs(t, err, weatherlink.ErrTransport)
	assert.Contains(t, err.Error(), "current:")
	held, _ := s.Historic()
	assert.Same(t, hist, held)
	assert.False(t, s.Ready())
}

func TestRefreshSucceeds(t *testing.T) {
	m := new(mockFetcher)
	m.On("Current").Return(snapshotWithTemp(1), nil)
	m.On("Historic", mock.Anything, mock.Anything).Return(snapshotWithTemp(2), nil)

	s := New(m, WithLogger(quietLogger()))
	require.NoError(t, s.Refresh(context.Background(), time.Hour))
	assert.True(t, s.Ready())
	assert.NotEqual(t, s.ID().String(), New(m).ID().String())
}
