package matching

import (
	"strconv"
	"strings"
)

// Query is one page fetch against the criteria table.
type Query struct {
	Predicate Predicate
	Before    *Cursor
	Limit     int
	Offset    int
}

// Build appends the WHERE, keyset, ORDER BY and LIMIT clauses to base, which
// must select from freight_searches aliased as Alias. OFFSET is rendered only
// when no cursor is set.
func (q Query) Build(base string) (string, []any) {
	var (
		args Args
		sb   strings.Builder
	)
	sb.WriteString(base)
	sb.WriteString("\n\tWHERE ")
	sb.WriteString(q.Predicate.Where(&args))

	if q.Before != nil {
		ts := args.Add(q.Before.CreatedAt)
		id := args.Add(q.Before.ID)
		sb.WriteString("\n\t  AND (" + Alias + ".created_at, " + Alias + ".id) < (" + ts + ", " + id + ")")
	}

	sb.WriteString("\n\tORDER BY " + Alias + ".created_at DESC, " + Alias + ".id DESC")
	sb.WriteString("\n\tLIMIT " + args.Add(q.Limit))
	if q.Before == nil && q.Offset > 0 {
		sb.WriteString(" OFFSET " + args.Add(q.Offset))
	}
	return sb.String(), args.Values()
}

// String is used in logs and span attributes.
func (q Query) String() string {
	s := "limit=" + strconv.Itoa(q.Limit)
	if q.Before != nil {
		return s + " before=" + q.Before.Timestamp() + "/" + q.Before.IDString()
	}
	return s + " offset=" + strconv.Itoa(q.Offset)
}
