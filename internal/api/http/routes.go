package httpapi

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/station-dashboard/internal/charts"
	"github.com/i474232898/station-dashboard/internal/dashboard"
	"github.com/i474232898/station-dashboard/internal/preferences"
	"github.com/i474232898/station-dashboard/internal/session"
	"github.com/i474232898/station-dashboard/internal/units"
	"github.com/i474232898/station-dashboard/internal/weatherlink"
)

var validate = validator.New()

// requestTimeout bounds the refresh handler beyond the per-fetch deadline.
const requestTimeout = 30 * time.Second

// Deps are the collaborators the handlers read from.
type Deps struct {
	Session     *session.Session
	Preferences *preferences.Preferences
	Renderer    dashboard.Renderer
	Language    units.Language
}

// ErrorHandler renders every error as a JSON body.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": err.Error(),
	})
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	v1 := app.Group("/api/v1")

	v1.Get("/status", func(c *fiber.Ctx) error {
		body := fiber.Map{
			"session": d.Session.ID().String(),
			"busy":    d.Session.Busy(),
			"ready":   d.Session.Ready(),
		}
		if t, ok := d.Session.LastUpdated(); ok {
			body["lastUpdated"] = t
		}
		return c.JSON(body)
	})

	v1.Get("/weather/current", func(c *fiber.Ctx) error {
		lang, err := d.language(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		snapshot := d.Session.Current()
		if snapshot == nil {
			return fiber.NewError(fiber.StatusNotFound, "no current weather fetched yet")
		}
		return c.JSON(d.Renderer.Current(snapshot, d.Preferences.System(), lang))
	})

	v1.Get("/weather/summary", func(c *fiber.Ctx) error {
		lang, err := d.language(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		historic, window := d.Session.Historic()
		if historic == nil {
			return fiber.NewError(fiber.StatusNotFound, "no weather history fetched yet")
		}
		return c.JSON(fiber.Map{
			"window":  window,
			"summary": d.Renderer.Summary(historic, d.Preferences.System(), lang),
		})
	})

	v1.Post("/weather/refresh", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
		defer cancel()

		window := d.Preferences.ChartWindow()
		if err := d.Session.Refresh(ctx, window); err != nil {
			return refreshError(err)
		}
		return c.JSON(fiber.Map{
			"refreshed": true,
			"window":    window.String(),
		})
	})

	v1.Get("/charts/:kind", func(c *fiber.Ctx) error {
		q := chartQuery{Kind: c.Params("kind"), Lang: c.Query("lang")}
		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		historic, window := d.Session.Historic()
		if historic == nil {
			return fiber.NewError(fiber.StatusNotFound, "no weather history fetched yet")
		}

		series, err := charts.Build(charts.Kind(q.Kind), historic, d.Preferences.System(), d.lang(q.Lang))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(fiber.Map{
			"kind":   q.Kind,
			"window": window,
			"series": series,
		})
	})

	registerPreferenceRoutes(v1, d.Preferences)
}

func registerPreferenceRoutes(v1 fiber.Router, prefs *preferences.Preferences) {
	p := v1.Group("/preferences")

	p.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(prefs.View())
	})

	p.Post("/units/toggle", func(c *fiber.Ctx) error {
		if _, err := prefs.ToggleUnits(); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to save preference")
		}
		return c.JSON(prefs.View())
	})

	p.Post("/auto-refresh/toggle", func(c *fiber.Ctx) error {
		if _, err := prefs.ToggleAutoRefresh(); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to save preference")
		}
		return c.JSON(prefs.View())
	})

	p.Post("/sections/:name/toggle", func(c *fiber.Ctx) error {
		if _, err := prefs.ToggleSection(c.Params("name")); err != nil {
			if errors.Is(err, preferences.ErrUnknownSection) {
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to save preference")
		}
		return c.JSON(prefs.View())
	})

	p.Put("/chart-range", func(c *fiber.Ctx) error {
		var req chartRangeRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := prefs.SetChartTimeRange(req.Hours); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to save preference")
		}
		return c.JSON(prefs.View())
	})
}

// langQuery holds the optional language query parameter.
type langQuery struct {
	Lang string `validate:"omitempty,oneof=en nl"`
}

type chartQuery struct {
	Kind string `validate:"required,oneof=temperature wind pressure humidity rainfall"`
	Lang string `validate:"omitempty,oneof=en nl"`
}

type chartRangeRequest struct {
	Hours int `json:"hours" validate:"required,oneof=6 12 24"`
}

func (d Deps) language(c *fiber.Ctx) (units.Language, error) {
	q := langQuery{Lang: c.Query("lang")}
	if err := validate.Struct(q); err != nil {
		return "", err
	}
	return d.lang(q.Lang), nil
}

func (d Deps) lang(s string) units.Language {
	if s == "" {
		if d.Language == "" {
			return units.English
		}
		return d.Language
	}
	return units.ParseLanguage(s)
}

// refreshError maps a failed refresh to a status code. A timeout anywhere
// wins over other failures.
func refreshError(err error) error {
	switch {
	case errors.Is(err, weatherlink.ErrTimeout):
		return fiber.NewError(fiber.StatusGatewayTimeout, err.Error())
	case errors.Is(err, weatherlink.ErrInvalidResponse), errors.Is(err, weatherlink.ErrTransport):
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	case errors.Is(err, session.ErrSuperseded):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}
