package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/1vor/fulltruck-challenge/internal/model"
	"github.com/1vor/fulltruck-challenge/internal/service"
)

// CreateUser godoc
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user  body      model.UserInput  true  "User"
// @Success      201   {object}  model.User
// @Failure      400   {object}  errorPayload
// @Failure      409   {object}  errorPayload
// @Router       /users/ [post]
func CreateUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.UserInput
		if ok, err := parseBody(c, &in); !ok {
			return err
		}
		u, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(u)
	}
}

// GetUser godoc
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  model.User
// @Failure      400  {object}  errorPayload
// @Failure      404  {object}  errorPayload
// @Router       /users/{id} [get]
func GetUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		u, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(u)
	}
}
