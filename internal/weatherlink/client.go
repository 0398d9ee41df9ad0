package weatherlink

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/station-dashboard/internal/station"
)

// MaxHistoricWindow is the widest window the historic endpoint serves. Wider
// requests are passed through; the API decides what to do with them.
const MaxHistoricWindow = 24 * time.Hour

// DefaultTimeout bounds a request when Options.Timeout is unset.
const DefaultTimeout = 10 * time.Second

// Options configures a Client.
type Options struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Timeout    time.Duration
	Backoff    BackoffConfig
	Logger     *slog.Logger
}

// Client talks to the station API: GET /current and GET /historic.
type Client struct {
	name    string
	baseURL string
	apiKey  string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
	logger  *slog.Logger
}

func NewClient(opts Options) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "weatherlink",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{}
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		name:    "weatherlink",
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		apiKey:  opts.APIKey,
		httpCfg: HTTPClientConfig{
			Client:  client,
			Timeout: timeout,
			Backoff: opts.Backoff,
		},
		circuit: cb,
		logger:  logger.With("component", "weatherlink"),
	}
}

func (c *Client) Name() string {
	return c.name
}

// Current fetches the latest conditions.
func (c *Client) Current(ctx context.Context) (*station.Snapshot, error) {
	return c.get(ctx, "/current", nil)
}

// Historic fetches the archive records between start and end.
func (c *Client) Historic(ctx context.Context, start, end time.Time) (*station.Snapshot, error) {
	if end.Sub(start) > MaxHistoricWindow {
		c.logger.Warn("historic window exceeds what the API serves",
			"start", start, "end", end, "max", MaxHistoricWindow)
	}

	values := url.Values{}
	values.Set("start-timestamp", strconv.FormatInt(start.Unix(), 10))
	values.Set("end-timestamp", strconv.FormatInt(end.Unix(), 10))
	return c.get(ctx, "/historic", values)
}

func (c *Client) get(ctx context.Context, path string, values url.Values) (*station.Snapshot, error) {
	buildRequest := func(ctx context.Context) (*http.Request, error) {
		u := c.baseURL + path
		if len(values) > 0 {
			u = fmt.Sprintf("%s?%s", u, values.Encode())
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		if c.apiKey != "" {
			req.Header.Set("X-Api-Key", c.apiKey)
		}
		return req, nil
	}

	started := time.Now()
	body, err := fetchWithResilience(ctx, c.httpCfg, c.circuit, buildRequest)
	if err != nil {
		err = classify(err)
		c.logger.Error("station request failed", "path", path, "error", err, "elapsed", time.Since(started))
		return nil, err
	}

	snapshot, err := Decode(body)
	if err != nil {
		c.logger.Error("station response rejected", "path", path, "error", err, "bytes", len(body))
		return nil, err
	}

	c.logger.Debug("station request completed", "path", path, "sensors", len(snapshot.Sensors), "elapsed", time.Since(started))
	return snapshot, nil
}

// Decode validates and decodes a station payload. A valid payload is a JSON
// object with a "sensors" key.
func Decode(body []byte) (*station.Snapshot, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil || probe == nil {
		return nil, fmt.Errorf("%w: body is not a JSON object", ErrInvalidResponse)
	}
	if _, ok := probe["sensors"]; !ok {
		return nil, fmt.Errorf("%w: missing sensors", ErrInvalidResponse)
	}

	var snapshot station.Snapshot
	if err := json.Unmarshal(body, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return &snapshot, nil
}

// classify maps a fetch failure onto the package's error taxonomy.
func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %w", ErrTransport, err)
}
