package models

import "interest-form/pkg/form"

// FieldChangeRequest carries the raw text of one input after a change
type FieldChangeRequest struct {
	Value *string `json:"value" binding:"required"`
}

// RequiredFields mirrors the required attributes of the form page.
// It is checked before a submit reaches the form.
type RequiredFields struct {
	Price     float64 `json:"price" validate:"gte=0"`
	FirstName string  `json:"firstName" validate:"required"`
	LastName  string  `json:"lastName" validate:"required"`
	Phone     string  `json:"phone" validate:"required"`
	Email     string  `json:"email" validate:"required"`
	PIN       string  `json:"pin" validate:"required"`
}

// NewRequiredFields copies the values that the page marks as required
func NewRequiredFields(r form.Record) RequiredFields {
	return RequiredFields(r)
}

// FormResponse is the rendered state of a form session
type FormResponse struct {
	ID     string      `json:"id"`
	Record form.Record `json:"record"`
	Errors form.Errors `json:"errors"`
}

// SubmitResponse reports the outcome of a submit
type SubmitResponse struct {
	FormResponse
	Status    string       `json:"status"`
	Submitted *form.Record `json:"submitted,omitempty"`
}
