package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/1vor/fulltruck-challenge/internal/config"
	"github.com/1vor/fulltruck-challenge/internal/service"
)

// Deps are the collaborators the HTTP routes are bound to.
type Deps struct {
	DB           *sql.DB
	Users        service.UserService
	Freights     service.FreightService
	Searches     service.FreightSearchService
	Matches      service.MatchService
	Matching     config.MatchingConfig
	MatchLimiter fiber.Handler // applied to the find-matches routes; nil disables it
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers only parse and render; business rules live in the services.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())

	users := app.Group("/users")
	users.Post("/", CreateUser(d.Users))
	users.Get("/:id", GetUser(d.Users))

	freights := app.Group("/freights")
	freights.Post("/", CreateFreight(d.Freights))
	freights.Get("/", ListFreights(d.Freights))
	freights.Get("/:id", GetFreight(d.Freights))

	searches := app.Group("/freight_searches")
	searches.Post("/", CreateFreightSearch(d.Searches))
	searches.Get("/", ListFreightSearches(d.Searches))

	limiter := d.MatchLimiter
	if limiter == nil {
		limiter = func(c *fiber.Ctx) error { return c.Next() }
	}
	app.Get("/freight/:id/find_matches", limiter, FindMatches(d.Matches, d.Matching))
	app.Post("/freight/:id/find_matches/export", limiter, ExportMatches(d.Matches))
}
