package model

import (
	"net/mail"
	"strings"
)

// User owns freight searches.
type User struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
}

// UserInput carries the client-supplied fields of a new user.
type UserInput struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
}

// Normalize trims whitespace and lower-cases the e-mail address.
func (in *UserInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Surname = strings.TrimSpace(in.Surname)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
}

// Validate returns the violated constraints, if any.
func (in UserInput) Validate() []Violation {
	var out []Violation
	if in.Name == "" {
		out = append(out, Violation{Field: "name", Msg: "name is required"})
	}
	if in.Surname == "" {
		out = append(out, Violation{Field: "surname", Msg: "surname is required"})
	}
	if in.Email == "" {
		out = append(out, Violation{Field: "email", Msg: "email is required"})
	} else if _, err := mail.ParseAddress(in.Email); err != nil {
		out = append(out, Violation{Field: "email", Msg: "email is not a valid address"})
	}
	return out
}
