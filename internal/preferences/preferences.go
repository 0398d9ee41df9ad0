package preferences

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/i474232898/station-dashboard/internal/units"
)

// Persisted keys.
const (
	KeyUseMetric        = "useMetric"
	KeyAutoRefresh      = "autoRefresh"
	KeyExpandedSections = "expandedSections"
	KeyChartTimeRange   = "chartTimeRange"
)

// Dashboard sections that can be collapsed.
const (
	SectionQuickStats   = "quickStats"
	SectionWindAnalysis = "windAnalysis"
	SectionCharts       = "charts"
	SectionAllMetrics   = "allMetrics"
	SectionSystemHealth = "systemHealth"
)

const (
	RefreshInterval       = 60 * time.Second
	TablePageSize         = 20
	DefaultChartTimeRange = 24
)

var (
	ErrUnknownSection = errors.New("unknown section")
	ErrInvalidRange   = errors.New("chart time range must be positive")
)

func defaultSections() map[string]bool {
	return map[string]bool{
		SectionQuickStats:   true,
		SectionWindAnalysis: true,
		SectionCharts:       true,
		SectionAllMetrics:   false,
		SectionSystemHealth: false,
	}
}

// View is a copy of the current preference values.
type View struct {
	UseMetric        bool            `json:"useMetric"`
	AutoRefresh      bool            `json:"autoRefresh"`
	ExpandedSections map[string]bool `json:"expandedSections"`
	ChartTimeRange   int             `json:"chartTimeRange"`
	ChartTimeRanges  []int           `json:"chartTimeRanges"`
	Units            string          `json:"units"`
	RefreshInterval  int             `json:"refreshIntervalSeconds"`
	TablePageSize    int             `json:"tablePageSize"`
}

// Preferences holds typed user preferences backed by a Store. Every setter
// writes through to the store before returning; when the write fails the
// in-memory value is left unchanged.
type Preferences struct {
	store  Store
	logger *slog.Logger

	mu             sync.RWMutex
	useMetric      bool
	autoRefresh    bool
	sections       map[string]bool
	chartTimeRange int
}

// New returns preferences with default values. Call Load to read the
// persisted ones.
func New(store Store, logger *slog.Logger) *Preferences {
	if logger == nil {
		logger = slog.Default()
	}
	return &Preferences{
		store:          store,
		logger:         logger,
		useMetric:      true,
		sections:       defaultSections(),
		chartTimeRange: DefaultChartTimeRange,
	}
}

// Load reads persisted values. Missing or corrupt entries keep their
// defaults; only store failures are returned.
func (p *Preferences) Load() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if v, ok, err := p.store.Get(KeyUseMetric); err != nil {
		return err
	} else if ok {
		if b, err := strconv.ParseBool(v); err == nil {
			p.useMetric = b
		} else {
			p.corrupt(KeyUseMetric, v)
		}
	}

	if v, ok, err := p.store.Get(KeyAutoRefresh); err != nil {
		return err
	} else if ok {
		if b, err := strconv.ParseBool(v); err == nil {
			p.autoRefresh = b
		} else {
			p.corrupt(KeyAutoRefresh, v)
		}
	}

	if v, ok, err := p.store.Get(KeyExpandedSections); err != nil {
		return err
	} else if ok {
		var stored map[string]bool
		if err := json.Unmarshal([]byte(v), &stored); err == nil {
			for name, open := range stored {
				if _, known := p.sections[name]; known {
					p.sections[name] = open
				}
			}
		} else {
			p.corrupt(KeyExpandedSections, v)
		}
	}

	if v, ok, err := p.store.Get(KeyChartTimeRange); err != nil {
		return err
	} else if ok {
		if h, err := strconv.Atoi(v); err == nil && h > 0 {
			p.chartTimeRange = h
		} else {
			p.corrupt(KeyChartTimeRange, v)
		}
	}
	return nil
}

func (p *Preferences) corrupt(key, value string) {
	p.logger.Warn("ignoring corrupt preference", "key", key, "value", value)
}

func (p *Preferences) UseMetric() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.useMetric
}

// System is the unit system selected by UseMetric.
func (p *Preferences) System() units.System {
	return units.SystemFor(p.UseMetric())
}

func (p *Preferences) AutoRefresh() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.autoRefresh
}

func (p *Preferences) ChartTimeRange() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.chartTimeRange
}

// ChartWindow is the chart time range as a duration.
func (p *Preferences) ChartWindow() time.Duration {
	return time.Duration(p.ChartTimeRange()) * time.Hour
}

func (p *Preferences) SectionExpanded(name string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.sections[name]
}

func (p *Preferences) ExpandedSections() map[string]bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return maps.Clone(p.sections)
}

// ToggleUnits flips between metric and imperial and returns the new value.
func (p *Preferences) ToggleUnits() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	next := !p.useMetric
	if err := p.store.Set(KeyUseMetric, strconv.FormatBool(next)); err != nil {
		return p.useMetric, err
	}
	p.useMetric = next
	return next, nil
}

func (p *Preferences) ToggleAutoRefresh() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	next := !p.autoRefresh
	if err := p.store.Set(KeyAutoRefresh, strconv.FormatBool(next)); err != nil {
		return p.autoRefresh, err
	}
	p.autoRefresh = next
	return next, nil
}

// ToggleSection flips the expanded state of a known section.
func (p *Preferences) ToggleSection(name string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	open, ok := p.sections[name]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownSection, name)
	}

	next := maps.Clone(p.sections)
	next[name] = !open
	raw, err := json.Marshal(next)
	if err != nil {
		return open, err
	}
	if err := p.store.Set(KeyExpandedSections, string(raw)); err != nil {
		return open, err
	}
	p.sections = next
	return !open, nil
}

func (p *Preferences) SetChartTimeRange(hours int) error {
	if hours <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRange, hours)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.store.Set(KeyChartTimeRange, strconv.Itoa(hours)); err != nil {
		return err
	}
	p.chartTimeRange = hours
	return nil
}

// Reset clears the store and restores defaults.
func (p *Preferences) Reset() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.store.Clear(); err != nil {
		return err
	}
	p.useMetric = true
	p.autoRefresh = false
	p.sections = defaultSections()
	p.chartTimeRange = DefaultChartTimeRange
	return nil
}

func (p *Preferences) View() View {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return View{
		UseMetric:        p.useMetric,
		AutoRefresh:      p.autoRefresh,
		ExpandedSections: maps.Clone(p.sections),
		ChartTimeRange:   p.chartTimeRange,
		ChartTimeRanges:  slices.Clone(units.ChartTimeRanges),
		Units:            units.SystemFor(p.useMetric).String(),
		RefreshInterval:  int(RefreshInterval / time.Second),
		TablePageSize:    TablePageSize,
	}
}
