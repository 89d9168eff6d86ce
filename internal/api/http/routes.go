package httpapi

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/avolkoff/historical-weather/internal/history"
	"github.com/avolkoff/historical-weather/internal/store"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *history.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/history/extract", func(c *fiber.Ctx) error {
		var req extractQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		run, err := service.Extract(c.Context(), history.ExtractRequest{
			Location:  req.Location,
			Country:   req.Country,
			StartDate: req.Start,
			EndDate:   req.End,
			Frequency: req.Frequency,
		})
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, err.Error())
		}

		return c.JSON(run)
	})

	v1.Get("/history/latest", func(c *fiber.Ctx) error {
		loc := c.Query("location")
		if loc == "" {
			return fiber.NewError(fiber.StatusBadRequest, "location query parameter is required")
		}

		run, err := service.GetLatest(loc)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no extraction run for requested location")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch extraction run")
		}

		return c.JSON(run)
	})
}

// extractQuery holds query parameters for triggering an extraction.
// End-after-start ordering is enforced again by the pipeline's own
// parameter validation.
type extractQuery struct {
	Location  string `validate:"required"`
	Country   string
	Start     string `validate:"required,datetime=2006-01-02"`
	End       string `validate:"required,datetime=2006-01-02"`
	Frequency int    `validate:"required,oneof=1 3 6 12"`
}

func (q *extractQuery) bind(c *fiber.Ctx) error {
	q.Location = c.Query("location")
	q.Country = c.Query("country")
	q.Start = c.Query("start")
	q.End = c.Query("end")

	freqStr := c.Query("frequency")
	if freqStr == "" {
		return errors.New("frequency query parameter is required")
	}
	freq, err := strconv.Atoi(freqStr)
	if err != nil {
		return errors.New("frequency must be an integer (1, 3, 6 or 12)")
	}
	q.Frequency = freq

	return nil
}
