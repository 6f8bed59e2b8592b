package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/1vor/fulltruck-challenge/internal/config"
	"github.com/1vor/fulltruck-challenge/internal/matching"
	"github.com/1vor/fulltruck-challenge/internal/service"
)

const (
	// HeaderNextBeforeTs and HeaderNextBeforeID carry the continuation cursor of a full page.
	HeaderNextBeforeTs = "X-Next-Before-Ts"
	HeaderNextBeforeID = "X-Next-Before-Id"
)

// pageRequest reads limit, offset and the before_ts/before_id cursor pair.
func pageRequest(c *fiber.Ctx, cfg config.MatchingConfig) (matching.PageRequest, bool, error) {
	var req matching.PageRequest

	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(cfg.DefaultLimit)))
	if err != nil || limit < 1 || limit > cfg.MaxLimit {
		msg := "limit must be an integer between 1 and " + strconv.Itoa(cfg.MaxLimit)
		return req, false, writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", msg)
	}
	offset, err := strconv.Atoi(c.Query("offset", "0"))
	if err != nil || offset < 0 {
		return req, false, writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "offset must be a non-negative integer")
	}
	before, err := matching.ParseCursor(c.Query("before_ts"), c.Query("before_id"))
	if err != nil {
		return req, false, writeError(c, fiber.StatusBadRequest, "INVALID_CURSOR", err.Error())
	}

	req.Limit = limit
	req.Offset = offset
	req.Before = before
	return req, true, nil
}

// FindMatches godoc
// @Summary      Find the saved searches a freight satisfies
// @Description  Results are ordered by created_at then id, newest first. When a page is full the
// @Description  continuation cursor is returned in the X-Next-Before-Ts and X-Next-Before-Id headers;
// @Description  pass them back as before_ts and before_id. A cursor takes precedence over offset.
// @Tags         matching
// @Produce      json
// @Param        id         path      int     true   "Freight ID"
// @Param        limit      query     int     false  "Page size"
// @Param        offset     query     int     false  "Offset, ignored when a cursor is given"
// @Param        before_ts  query     string  false  "Cursor timestamp (RFC 3339; without an offset it is read as UTC)"
// @Param        before_id  query     int     false  "Cursor id"
// @Success      200        {array}   model.FreightSearch
// @Header       200        {string}  X-Next-Before-Ts  "Cursor timestamp of the next page"
// @Header       200        {string}  X-Next-Before-Id  "Cursor id of the next page"
// @Failure      400        {object}  errorPayload
// @Failure      404        {object}  errorPayload
// @Failure      429        {object}  errorPayload
// @Failure      503        {object}  errorPayload
// @Router       /freight/{id}/find_matches/ [get]
func FindMatches(svc service.MatchService, cfg config.MatchingConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		req, ok, err := pageRequest(c, cfg)
		if !ok {
			return err
		}

		page, err := svc.FindMatches(c.UserContext(), id, req)
		if err != nil {
			return writeServiceError(c, err)
		}
		if page.HasMore && page.Next != nil {
			c.Set(HeaderNextBeforeTs, page.Next.Timestamp())
			c.Set(HeaderNextBeforeID, page.Next.IDString())
		}
		return c.JSON(page.Items)
	}
}

// ExportMatches godoc
// @Summary      Export every match of a freight as NDJSON
// @Description  Walks all matching pages, stores them in object storage and returns a presigned URL.
// @Tags         matching
// @Produce      json
// @Param        id   path      int  true  "Freight ID"
// @Success      201  {object}  service.ExportResult
// @Failure      400  {object}  errorPayload
// @Failure      404  {object}  errorPayload
// @Failure      429  {object}  errorPayload
// @Failure      503  {object}  errorPayload
// @Router       /freight/{id}/find_matches/export [post]
func ExportMatches(svc service.MatchService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		res, err := svc.Export(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}
