package httpapi

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/tripweather/activity-planner/internal/activity"
	"github.com/tripweather/activity-planner/internal/planner"
	"github.com/tripweather/activity-planner/internal/store"
	"github.com/tripweather/activity-planner/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *planner.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/activities/rankings", func(c *fiber.Ctx) error {
		var req forecastQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		report, err := service.GetReport(c.Context(), req.Location.toLocation(), req.Days)
		if err != nil {
			return mapServiceError(err)
		}

		// Presentation-side ordering: best activity first.
		report.Rankings = planner.SortByScore(report.Rankings)

		return c.JSON(report)
	})

	v1.Get("/weather/forecast", func(c *fiber.Ctx) error {
		var req forecastQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		loc := req.Location.toLocation()
		forecast, err := service.GetForecast(c.Context(), loc, req.Days)
		if err != nil {
			return mapServiceError(err)
		}

		return c.JSON(fiber.Map{
			"location": loc,
			"days":     forecast,
		})
	})

	v1.Get("/activities/history", func(c *fiber.Ctx) error {
		var req historyQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		loc := req.Location.toLocation()
		reports, err := service.GetHistory(loc, req.From, req.To)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no report history for requested range")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch report history")
		}

		return c.JSON(fiber.Map{
			"location": loc,
			"from":     req.From,
			"to":       req.To,
			"reports":  reports,
		})
	})
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, activity.ErrInvalidInput):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, planner.ErrNoData):
		return fiber.NewError(fiber.StatusBadGateway, "no forecast data available for requested location")
	case errors.Is(err, store.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "no report for requested location")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to build activity report")
	}
}

// locationQuery holds query parameters for identifying a location.
type locationQuery struct {
	City    string `validate:"required"`
	Country string `validate:"required"`
}

func (l locationQuery) toLocation() weather.Location {
	return weather.Location{
		City:    l.City,
		Country: l.Country,
	}
}

func parseLocationQuery(c *fiber.Ctx) (locationQuery, error) {
	var q locationQuery

	q.City = c.Query("city")
	q.Country = c.Query("country")

	if err := validate.Struct(q); err != nil {
		return q, err
	}

	return q, nil
}

// forecastQuery holds query parameters for the rankings and forecast
// endpoints.
type forecastQuery struct {
	Location locationQuery
	Days     int `validate:"min=1,max=7"`
}

func (f *forecastQuery) bind(c *fiber.Ctx) error {
	loc, err := parseLocationQuery(c)
	if err != nil {
		return err
	}
	f.Location = loc

	f.Days = planner.MaxForecastDays
	if daysStr := c.Query("days"); daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil {
			return errors.New("days must be an integer between 1 and 7")
		}
		f.Days = days
	}

	return validate.Struct(f)
}

// historyQuery holds query parameters for the history endpoint.
type historyQuery struct {
	Location locationQuery
	From     time.Time `validate:"required"`
	To       time.Time `validate:"required,gtefield=From"`
}

func (h *historyQuery) bind(c *fiber.Ctx) error {
	loc, err := parseLocationQuery(c)
	if err != nil {
		return err
	}
	h.Location = loc

	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		return errors.New("from and to query parameters are required")
	}

	from, err := parseTime(fromStr)
	if err != nil {
		return err
	}
	to, err := parseTime(toStr)
	if err != nil {
		return err
	}

	h.From = from
	h.To = to
	return nil
}

// parseTime tries to parse either RFC3339 or Unix seconds.
func parseTime(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	if unix, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(unix, 0).UTC(), nil
	}
	return time.Time{}, errors.New("invalid time format; use RFC3339 or unix seconds")
}
