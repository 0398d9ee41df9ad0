package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/station-dashboard/internal/dashboard"
	"github.com/i474232898/station-dashboard/internal/preferences"
	"github.com/i474232898/station-dashboard/internal/session"
	"github.com/i474232898/station-dashboard/internal/station"
	"github.com/i474232898/station-dashboard/internal/weatherlink"
)

type stubFetcher struct {
	current  *station.Snapshot
	historic *station.Snapshot
	err      error
}

func (f *stubFetcher) Current(context.Context) (*station.Snapshot, error) {
	return f.current, f.err
}

func (f *stubFetcher) Historic(context.Context, time.Time, time.Time) (*station.Snapshot, error) {
	return f.historic, f.err
}

func ptr(v float64) *float64 { return &v }

func stubSnapshots() (*station.Snapshot, *station.Snapshot) {
	ts := int64(1720544040)
	current := &station.Snapshot{Sensors: []station.SensorBlock{{
		SensorType: station.SensorISS,
		Records:    []station.Record{{TS: &ts, Temp: ptr(67.3), Hum: ptr(78.7)}},
	}}}

	t0, t1 := int64(1720540440), int64(1720541340)
	historic := &station.Snapshot{Sensors: []station.SensorBlock{{
		SensorType: station.SensorISS,
		Records: []station.Record{
			{TS: &t0, TempLast: ptr(66.2), RainfallMM: ptr(0.2)},
			{TS: &t1, TempLast: ptr(67.3)},
		},
	}}}
	return current, historic
}

func newTestApp(t *testing.T, f session.Fetcher) (*fiber.App, *preferences.Preferences) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sess := session.New(f, session.WithLogger(logger), session.WithTimeout(time.Second))
	prefs := preferences.New(preferences.NewMemoryStore(), logger)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	RegisterRoutes(app, Deps{
		Session:     sess,
		Preferences: prefs,
		Renderer:    dashboard.Renderer{Location: time.UTC},
	})
	return app, prefs
}

func do(t *testing.T, app *fiber.App, method, target string, body io.Reader) (*http.Response, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	var out map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp, out
}

func TestNotFoundBeforeRefresh(t *testing.T) {
	app, _ := newTestApp(t, &stubFetcher{})

	for _, path := range []string{"/api/v1/weather/current", "/api/v1/weather/summary", "/api/v1/charts/temperature"} {
		resp, body := do(t, app, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
		assert.Equal(t, true, body["error"])
	}
}

func TestRefreshThenRead(t *testing.T) {
	current, historic := stubSnapshots()
	app, _ := newTestApp(t, &stubFetcher{current: current, historic: historic})

	resp, body := do(t, app, http.MethodPost, "/api/v1/weather/refresh", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "24h0m0s", body["window"])

	resp, body = do(t, app, http.MethodGet, "/api/v1/weather/current", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	temp := body["temperature"].(map[string]any)
	assert.Equal(t, "19.6°C", temp["current"])
	assert.Equal(t, "78.7%", temp["humidity"])

	resp, body = do(t, app, http.MethodGet, "/api/v1/charts/rainfall", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	series := body["series"].([]any)
	require.Len(t, series, 1)
	data := series[0].(map[string]any)["data"].([]any)
	require.Len(t, data, 2)
	assert.EqualValues(t, 1720540440000, data[0].(map[string]any)["x"])
	assert.EqualValues(t, 0.2, data[0].(map[string]any)["y"])
	assert.EqualValues(t, 0, data[1].(map[string]any)["y"])

	resp, body = do(t, app, http.MethodGet, "/api/v1/weather/summary", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	summary := body["summary"].(map[string]any)
	assert.Equal(t, "19.6°C", summary["maxTemperature"])

	resp, body = do(t, app, http.MethodGet, "/api/v1/status", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["ready"])
	assert.Equal(t, false, body["busy"])
}

func TestUnitToggleChangesRendering(t *testing.T) {
	current, historic := stubSnapshots()
	app, prefs := newTestApp(t, &stubFetcher{current: current, historic: historic})

	resp, _ := do(t, app, http.MethodPost, "/api/v1/weather/refresh", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := do(t, app, http.MethodPost, "/api/v1/preferences/units/toggle", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["useMetric"])
	assert.Equal(t, "imperial", body["units"])
	assert.False(t, prefs.UseMetric())

	_, body = do(t, app, http.MethodGet, "/api/v1/weather/current", nil)
	assert.Equal(t, "67.3°F", body["temperature"].(map[string]any)["current"])
}

func TestInvalidQueries(t *testing.T) {
	current, historic := stubSnapshots()
	app, _ := newTestApp(t, &stubFetcher{current: current, historic: historic})
	do(t, app, http.MethodPost, "/api/v1/weather/refresh", nil)

	resp, _ := do(t, app, http.MethodGet, "/api/v1/charts/visibility", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, app, http.MethodGet, "/api/v1/weather/current?lang=fr", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body := do(t, app, http.MethodGet, "/api/v1/charts/wind?lang=nl", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Gemiddeld", body["series"].([]any)[0].(map[string]any)["name"])
}

func TestRefreshErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("%w: deadline", weatherlink.ErrTimeout), http.StatusGatewayTimeout},
		{fmt.Errorf("%w: missing sensors", weatherlink.ErrInvalidResponse), http.StatusBadGateway},
		{fmt.Errorf("%w: refused", weatherlink.ErrTransport), http.StatusBadGateway},
	}
	for _, tc := range cases {
		app, _ := newTestApp(t, &stubFetcher{err: tc.err})
		resp, body := do(t, app, http.MethodPost, "/api/v1/weather/refresh", nil)
		assert.Equal(t, tc.code, resp.StatusCode, tc.err.Error())
		assert.Equal(t, true, body["error"])
	}
}

func TestPreferenceRoutes(t *testing.T) {
	app, prefs := newTestApp(t, &stubFetcher{})

	resp, body := do(t, app, http.MethodGet, "/api/v1/preferences", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 24, body["chartTimeRange"])

	resp, _ = do(t, app, http.MethodPut, "/api/v1/preferences/chart-range", strings.NewReader(`{"hours":12}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 12, prefs.ChartTimeRange())

	resp, _ = do(t, app, http.MethodPut, "/api/v1/preferences/chart-range", strings.NewReader(`{"hours":48}`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 12, prefs.ChartTimeRange())

	resp, body = do(t, app, http.MethodPost, "/api/v1/preferences/auto-refresh/toggle", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["autoRefresh"])

	resp, body = do(t, app, http.MethodPost, "/api/v1/preferences/sections/allMetrics/toggle", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["expandedSections"].(map[string]any)["allMetrics"])

	resp, _ = do(t, app, http.MethodPost, "/api/v1/preferences/sections/radar/toggle", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
