package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/1vor/fulltruck-challenge/internal/model"
	"github.com/1vor/fulltruck-challenge/internal/service"
)

// CreateFreightSearch godoc
// @Summary      Save a freight search
// @Description  Every criterion except user_id is optional; an omitted criterion matches any freight.
// @Tags         freight_searches
// @Accept       json
// @Produce      json
// @Param        search  body      model.FreightSearchInput  true  "Search criteria"
// @Success      201     {object}  model.FreightSearch
// @Failure      400     {object}  errorPayload
// @Failure      404     {object}  errorPayload
// @Router       /freight_searches/ [post]
func CreateFreightSearch(svc service.FreightSearchService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.FreightSearchInput
		if ok, err := parseBody(c, &in); !ok {
			return err
		}
		s, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(s)
	}
}

// ListFreightSearches godoc
// @Summary      List freight searches, newest first
// @Tags         freight_searches
// @Produce      json
// @Param        limit   query     int  false  "Page size"  default(10)
// @Param        offset  query     int  false  "Offset"     default(0)
// @Success      200     {object}  service.ListResult[model.FreightSearch]
// @Failure      400     {object}  errorPayload
// @Router       /freight_searches/ [get]
func ListFreightSearches(svc service.FreightSearchService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, ok, err := listParams(c)
		if !ok {
			return err
		}
		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}
