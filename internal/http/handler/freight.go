package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/1vor/fulltruck-challenge/internal/model"
	"github.com/1vor/fulltruck-challenge/internal/service"
)

// CreateFreight godoc
// @Summary      Create a freight
// @Tags         freights
// @Accept       json
// @Produce      json
// @Param        freight  body      model.FreightInput  true  "Freight"
// @Success      201      {object}  model.Freight
// @Failure      400      {object}  errorPayload
// @Router       /freights/ [post]
func CreateFreight(svc service.FreightService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.FreightInput
		if ok, err := parseBody(c, &in); !ok {
			return err
		}
		f, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(f)
	}
}

// ListFreights godoc
// @Summary      List freights
// @Tags         freights
// @Produce      json
// @Param        limit   query     int  false  "Page size"  default(10)
// @Param        offset  query     int  false  "Offset"     default(0)
// @Success      200     {object}  service.ListResult[model.Freight]
// @Failure      400     {object}  errorPayload
// @Router       /freights/ [get]
func ListFreights(svc service.FreightService) fiber.Handler {
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

// GetFreight godoc
// @Summary      Get a freight
// @Tags         freights
// @Produce      json
// @Param        id   path      int  true  "Freight ID"
// @Success      200  {object}  model.Freight
// @Failure      400  {object}  errorPayload
// @Failure      404  {object}  errorPayload
// @Router       /freights/{id} [get]
func GetFreight(svc service.FreightService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		f, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(f)
	}
}
