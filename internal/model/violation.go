package model

// Violation names a field and the constraint it breaks.
type Violation struct {
	Field string `json:"field"`
	Msg   string `json:"message"`
}
