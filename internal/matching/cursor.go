package matching

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidCursor is returned when a cursor pair cannot be parsed or is incomplete.
var ErrInvalidCursor = errors.New("invalid cursor")

// Cursor is the (created_at, id) position of the last row of a page.
// Rows strictly after it in descending order belong to the next page.
type Cursor struct {
	CreatedAt time.Time
	ID        int64
}

// CursorOf returns the cursor positioned on the given row key.
func CursorOf(createdAt time.Time, id int64) *Cursor {
	return &Cursor{CreatedAt: createdAt, ID: id}
}

// Admits reports whether a row with the given key lies strictly before the cursor.
func (c Cursor) Admits(createdAt time.Time, id int64) bool {
	if createdAt.Before(c.CreatedAt) {
		return true
	}
	return createdAt.Equal(c.CreatedAt) && id < c.ID
}

// Timestamp formats CreatedAt for the before_ts parameter.
func (c Cursor) Timestamp() string {
	return c.CreatedAt.UTC().Format(time.RFC3339Nano)
}

// IDString formats ID for the before_id parameter.
func (c Cursor) IDString() string {
	return strconv.FormatInt(c.ID, 10)
}

// ParseCursor reads a before_ts/before_id pair. Both empty yields a nil cursor;
// exactly one empty is an error.
func ParseCursor(ts, id string) (*Cursor, error) {
	ts = strings.TrimSpace(ts)
	id = strings.TrimSpace(id)
	if ts == "" && id == "" {
		return nil, nil
	}
	if ts == "" || id == "" {
		return nil, fmt.Errorf("%w: before_ts and before_id must be given together", ErrInvalidCursor)
	}

	t, err := parseTimestamp(ts)
	if err != nil {
		return nil, fmt.Errorf("%w: before_ts: %v", ErrInvalidCursor, err)
	}
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n < 1 {
		return nil, fmt.Errorf("%w: before_id must be a positive integer", ErrInvalidCursor)
	}
	return &Cursor{CreatedAt: t, ID: n}, nil
}

// naiveLayouts are ISO 8601 forms without a zone offset; they are read as UTC.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// parseTimestamp accepts RFC 3339 and zone-less ISO 8601 timestamps.
func parseTimestamp(ts string) (time.Time, error) {
	// An unescaped '+' in a query string arrives as a space.
	t, err := time.Parse(time.RFC3339Nano, strings.Replace(ts, " ", "+", 1))
	if err == nil {
		return t, nil
	}
	for _, layout := range naiveLayouts {
		if nt, nerr := time.Parse(layout, ts); nerr == nil {
			return nt, nil
		}
	}
	return time.Time{}, err
}
