package matching

import "strconv"

// Args accumulates positional query parameters and hands out their
// PostgreSQL placeholders ($1, $2, ...).
type Args struct {
	values []any
}

// Add appends v and returns its placeholder.
func (a *Args) Add(v any) string {
	a.values = append(a.values, v)
	return "$" + strconv.Itoa(len(a.values))
}

// Values returns the parameters in placeholder order.
func (a *Args) Values() []any {
	return a.values
}
