package preferences

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/station-dashboard/internal/units"
)

type failingStore struct {
	*MemoryStore
	failSet bool
}

func (s *failingStore) Set(key, value string) error {
	if s.failSet {
		return errors.New("disk full")
	}
	return s.MemoryStore.Set(key, value)
}

func TestDefaults(t *testing.T) {
	p := New(NewMemoryStore(), nil)
	require.NoError(t, p.Load())

	assert.True(t, p.UseMetric())
	assert.Equal(t, units.Metric, p.System())
	assert.False(t, p.AutoRefresh())
	assert.Equal(t, 24, p.ChartTimeRange())
	assert.True(t, p.SectionExpanded(SectionQuickStats))
	assert.True(t, p.SectionExpanded(SectionWindAnalysis))
	assert.True(t, p.SectionExpanded(SectionCharts))
	assert.False(t, p.SectionExpanded(SectionAllMetrics))
	assert.False(t, p.SectionExpanded(SectionSystemHealth))

	v := p.View()
	assert.Equal(t, "metric", v.Units)
	assert.Equal(t, 60, v.RefreshInterval)
	assert.Equal(t, 20, v.TablePageSize)
}

func TestTogglesPersist(t *testing.T) {
	store := NewMemoryStore()
	p := New(store, nil)

	metric, err := p.ToggleUnits()
	require.NoError(t, err)
	assert.False(t, metric)
	assert.Equal(t, units.Imperial, p.System())

	auto, err := p.ToggleAutoRefresh()
	require.NoError(t, err)
	assert.True(t, auto)

	open, err := p.ToggleSection(SectionAllMetrics)
	require.NoError(t, err)
	assert.True(t, open)

	require.NoError(t, p.SetChartTimeRange(6))

	v, ok, err := store.Get(KeyUseMetric)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "false", v)

	reloaded := New(store, nil)
	require.NoError(t, reloaded.Load())
	assert.False(t, reloaded.UseMetric())
	assert.True(t, reloaded.AutoRefresh())
	assert.True(t, reloaded.SectionExpanded(SectionAllMetrics))
	assert.True(t, reloaded.SectionExpanded(SectionCharts))
	assert.Equal(t, 6, reloaded.ChartTimeRange())
}

func TestToggleUnknownSection(t *testing.T) {
	p := New(NewMemoryStore(), nil)
	_, err := p.ToggleSection("radar")
	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestSetChartTimeRangeRejectsNonPositive(t *testing.T) {
	p := New(NewMemoryStore(), nil)
	assert.ErrorIs(t, p.SetChartTimeRange(0), ErrInvalidRange)
	assert.ErrorIs(t, p.SetChartTimeRange(-6), ErrInvalidRange)
	assert.Equal(t, 24, p.ChartTimeRange())
}

func TestFailedWriteKeepsValue(t *testing.T) {
	store := &failingStore{MemoryStore: NewMemoryStore(), failSet: true}
	p := New(store, nil)

	metric, err := p.ToggleUnits()
	require.Error(t, err)
	assert.True(t, metric)
	assert.True(t, p.UseMetric())

	_, err = p.ToggleSection(SectionCharts)
	require.Error(t, err)
	assert.True(t, p.SectionExpanded(SectionCharts))

	require.Error(t, p.SetChartTimeRange(12))
	assert.Equal(t, 24, p.ChartTimeRange())
}

func TestLoadIgnoresCorruptValues(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set(KeyUseMetric, "maybe"))
	require.NoError(t, store.Set(KeyAutoRefresh, "true"))
	require.NoError(t, store.Set(KeyExpandedSections, "{not json"))
	require.NoError(t, store.Set(KeyChartTimeRange, "-3"))

	p := New(store, nil)
	require.NoError(t, p.Load())

	assert.True(t, p.UseMetric())
	assert.True(t, p.AutoRefresh())
	assert.True(t, p.SectionExpanded(SectionQuickStats))
	assert.Equal(t, 24, p.ChartTimeRange())
}

func TestLoadSkipsUnknownSections(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set(KeyExpandedSections, `{"radar":true,"systemHealth":true}`))

	p := New(store, nil)
	require.NoError(t, p.Load())

	sections := p.ExpandedSections()
	assert.Len(t, sections, 5)
	assert.True(t, sections[SectionSystemHealth])
	assert.NotContains(t, sections, "radar")
}

func TestExpandedSectionsReturnsCopy(t *testing.T) {
	p := New(NewMemoryStore(), nil)
	sections := p.ExpandedSections()
	sections[SectionCharts] = false
	assert.True(t, p.SectionExpanded(SectionCharts))
}

func TestReset(t *testing.T) {
	store := NewMemoryStore()
	p := New(store, nil)
	_, err := p.ToggleUnits()
	require.NoError(t, err)
	require.NoError(t, p.SetChartTimeRange(12))

	require.NoError(t, p.Reset())
	assert.True(t, p.UseMetric())
	assert.Equal(t, 24, p.ChartTimeRange())

	_, ok, err := store.Get(KeyUseMetric)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs", "dashboard.db")
	store, err := OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	_, ok, err := store.Get(KeyUseMetric)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(KeyUseMetric, "true"))
	require.NoError(t, store.Set(KeyUseMetric, "false"))

	v, ok, err := store.Get(KeyUseMetric)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "false", v)

	require.NoError(t, store.Clear())
	_, ok, err = store.Get(KeyUseMetric)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.db")

	first, err := OpenSQLite(path)
	require.NoError(t, err)
	p := New(first, nil)
	require.NoError(t, p.SetChartTimeRange(12))
	require.NoError(t, first.Close())

	second, err := OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	reloaded := New(second, nil)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, 12, reloaded.ChartTimeRange())
}
