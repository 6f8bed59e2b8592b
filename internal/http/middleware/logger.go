package middleware

import (
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

const logTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// accessEntry is one request log line.
type accessEntry struct {
	TS        string  `json:"ts"`
	RequestID string  `json:"request_id"`
	Method    string  `json:"method"`
	Path      string  `json:"path"`
	Route     string  `json:"route,omitempty"`
	Status    int     `json:"status"`
	Bytes     int     `json:"bytes"`
	LatencyMs float64 `json:"latency"`
}

// Logger logs each HTTP request as one JSON object per line on stdout.
func Logger() fiber.Handler {
	return LoggerWithWriter(os.Stdout, time.UTC)
}

// LoggerWithWriter is Logger with an explicit sink and timestamp location.
// The status is the one the error handler will write, so failed requests log
// their final code rather than the 200 still sitting in the response.
func LoggerWithWriter(w io.Writer, loc *time.Location) fiber.Handler {
	if loc == nil {
		loc = time.UTC
	}
	var mu sync.Mutex
	enc := json.NewEncoder(w)

	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		rid, _ := c.Locals(RequestIDLocalKey).(string)
		entry := accessEntry{
			TS:        start.In(loc).Format(logTimeLayout),
			RequestID: rid,
			Method:    c.Method(),
			Path:      c.Path(),
			Route:     c.Route().Path,
			Status:    responseStatus(c, err),
			Bytes:     len(c.Response().Body()),
			LatencyMs: float64(time.Since(start).Microseconds()) / 1000.0,
		}

		mu.Lock()
		_ = enc.Encode(entry)
		mu.Unlock()

		return err
	}
}
