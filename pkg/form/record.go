package form

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownField is returned for an input name the form does not have.
	ErrUnknownField = errors.New("unknown form field")
	// ErrInvalidPrice is returned when price text is not a plain decimal number.
	ErrInvalidPrice = errors.New("price is not a number")
)

// Field names a form input. The string value is the key used by the page.
type Field string

const (
	FieldPrice     Field = "price"
	FieldFirstName Field = "firstName"
	FieldLastName  Field = "lastName"
	FieldPhone     Field = "phone"
	FieldEmail     Field = "email"
	FieldPIN       Field = "pin"
)

// Fields lists every input in page order.
var Fields = []Field{FieldPrice, FieldFirstName, FieldLastName, FieldPhone, FieldEmail, FieldPIN}

// ParseField maps an input name to its Field.
func ParseField(name string) (Field, error) {
	for _, f := range Fields {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Record holds the current values of all six inputs.
type Record struct {
	Price     float64 `json:"price"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email"`
	PIN       string  `json:"pin"`
}

// Errors holds the inline messages for email and phone. Empty means no error.
type Errors struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// HasErrors reports whether any message is set.
func (e Errors) HasErrors() bool {
	return e.Email != "" || e.Phone != ""
}

// State is a snapshot of the form for rendering.
type State struct {
	Record Record `json:"record"`
	Errors Errors `json:"errors"`
}

func validate(r Record) Errors {
	return Errors{
		Email: emailMessage(r.Email),
		Phone: phoneMessage(r.Phone),
	}
}
