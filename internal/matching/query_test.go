package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const base = "SELECT fs.id FROM freight_searches fs"

func TestQuery_Build_Offset(t *testing.T) {
	q := Query{Predicate: ForFreight(sampleFreight()), Limit: 50, Offset: 100}

	sql, args := q.Build(base)

	assert.Contains(t, sql, base+"\n\tWHERE (fs.pickup_code IS NULL OR fs.pickup_code = $1)")
	assert.NotContains(t, sql, "(fs.created_at, fs.id) <")
	assert.Contains(t, sql, "ORDER BY fs.created_at DESC, fs.id DESC\n\tLIMIT $6 OFFSET $7")
	assert.Len(t, args, 7)
	assert.Equal(t, 50, args[5])
	assert.Equal(t, 100, args[6])
}

func TestQuery_Build_CursorWinsOverOffset(t *testing.T) {
	at := time.Date(2022, 3, 1, 10, 0, 0, 0, time.UTC)
	q := Query{Predicate: ForFreight(sampleFreight()), Before: CursorOf(at, 42), Limit: 10, Offset: 30}

	sql, args := q.Build(base)

	assert.Contains(t, sql, "AND (fs.created_at, fs.id) < ($6, $7)")
	assert.Contains(t, sql, "LIMIT $8")
	assert.NotContains(t, sql, "OFFSET")
	assert.Equal(t, []any{at, int64(42), 10}, args[5:])
}

func TestQuery_Build_ZeroOffset(t *testing.T) {
	sql, args := Query{Predicate: ForFreight(sampleFreight()), Limit: 1}.Build(base)

	assert.NotContains(t, sql, "OFFSET")
	assert.Len(t, args, 6)
}

func TestQuery_String(t *testing.T) {
	assert.Equal(t, "limit=5 offset=10", Query{Limit: 5, Offset: 10}.String())

	at := time.Date(2022, 3, 1, 10, 0, 0, 5, time.UTC)
	assert.Equal(t, "limit=5 before=2022-03-01T10:00:00.000000005Z/9", Query{Limit: 5, Before: CursorOf(at, 9)}.String())
}
