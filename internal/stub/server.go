// Package stub serves fixture data over the same HTTP contract as the real
// sailing score backend so the client can be demoed and tested offline.
package stub

import (
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/ngmaloney/sailing-score/internal/forecast"
	"github.com/ngmaloney/sailing-score/internal/models"
)

// maxGeocodeResults matches the page size of the real geocoder.
const maxGeocodeResults = 5

// gazetteer is the fixed set of places the stub can geocode.
var gazetteer = []models.GeocodeResult{
	{Name: "Barcelona", Lat: 41.3851, Lon: 2.1734, Country: "España", Admin1: "Cataluña"},
	{Name: "Palma", Lat: 39.5696, Lon: 2.6502, Country: "España", Admin1: "Islas Baleares"},
	{Name: "Valencia", Lat: 39.4699, Lon: -0.3763, Country: "España", Admin1: "Comunidad Valenciana"},
	{Name: "Cádiz", Lat: 36.5271, Lon: -6.2886, Country: "España", Admin1: "Andalucía"},
	{Name: "Tarifa", Lat: 36.0143, Lon: -5.6044, Country: "España", Admin1: "Andalucía"},
	{Name: "A Coruña", Lat: 43.3623, Lon: -8.4115, Country: "España", Admin1: "Galicia"},
	{Name: "Santander", Lat: 43.4623, Lon: -3.8099, Country: "España", Admin1: "Cantabria"},
	{Name: "Mahón", Lat: 39.8885, Lon: 4.2658, Country: "España", Admin1: "Islas Baleares"},
	{Name: "Lago de Sanabria", Lat: 42.1250, Lon: -6.7197, Country: "España", Admin1: "Castilla y León"},
}

// NewApp builds the fiber app. Access logs go to logOutput.
func NewApp(logOutput io.Writer) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               "sailing-score-stub",
	})
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Output: logOutput,
		Format: "${time} ${status} ${method} ${path} ${latency} ${reqHeader:X-Request-ID}\n",
	}))

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/api/geocode", handleGeocode)
	app.Post("/api/score", handleScore)

	return app
}

func handleGeocode(c *fiber.Ctx) error {
	q := strings.ToLower(strings.TrimSpace(c.Query("q")))
	if q == "" {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "q is required")
	}

	results := []models.GeocodeResult{}
	for _, place := range gazetteer {
		if strings.Contains(strings.ToLower(place.Name), q) {
			results = append(results, place)
		}
		if len(results) == maxGeocodeResults {
			break
		}
	}
	return c.JSON(models.GeocodeResponse{Results: results})
}

func handleScore(c *fiber.Ctx) error {
	var req models.ScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid JSON body")
	}
	if err := models.Validate(req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	windows, err := fixtureWindows(req)
	if err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	resp := models.ScoreResponse{
		Location: models.Location{
			Name: placeName(req.Lat, req.Lon),
			Lat:  req.Lat,
			Lon:  req.Lon,
		},
		Windows: windows,
		Safety:  safetyFor(windows, req.Skill),
	}
	if best, ok := forecast.SelectBest(windows); ok {
		resp.BestWindow = &best
	}
	return c.JSON(resp)
}
