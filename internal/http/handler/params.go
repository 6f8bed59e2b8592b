package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// pathID parses a positive integer route parameter.
func pathID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// listParams reads limit/offset for the plain CRUD listings.
// A failed parse has already been answered with 400 when ok is false.
func listParams(c *fiber.Ctx) (limit, offset int, ok bool, err error) {
	limit, perr := strconv.Atoi(c.Query("limit", "10"))
	if perr != nil {
		return 0, 0, false, writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
	}
	offset, perr = strconv.Atoi(c.Query("offset", "0"))
	if perr != nil {
		return 0, 0, false, writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
	}
	return limit, offset, true, nil
}

// parseBody decodes the JSON request body into dst.
func parseBody(c *fiber.Ctx, dst any) (bool, error) {
	if err := c.BodyParser(dst); err != nil {
		return false, writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a valid JSON object")
	}
	return true, nil
}
