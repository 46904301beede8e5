package form

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// decimalRegex matches what a number input submits: optional sign, digits
// with an optional fraction, optional exponent.
var decimalRegex = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][+-]?[0-9]+)?$`)

// Controller owns the values and inline errors of one form.
// It is not safe for concurrent use; callers deliver events one at a time.
type Controller struct {
	record    Record
	errors    Errors
	sink      Sink
	listeners []func(State)
}

// New mounts a form with default values. A nil sink discards submissions.
func New(sink Sink) *Controller {
	if sink == nil {
		sink = discardSink{}
	}
	return &Controller{sink: sink}
}

// OnUpdate registers fn to be called with the new state after every change or submit.
func (c *Controller) OnUpdate(fn func(State)) {
	c.listeners = append(c.listeners, fn)
}

// State returns the current values and messages.
func (c *Controller) State() State {
	return State{Record: c.record, Errors: c.errors}
}

// Change stores raw under field. Phone input is reformatted first, and
// only the changed field's message is recomputed.
func (c *Controller) Change(field Field, raw string) error {
	switch field {
	case FieldPrice:
		price, err := parsePrice(raw)
		if err != nil {
			return err
		}
		c.record.Price = price
	case FieldFirstName:
		c.record.FirstName = raw
	case FieldLastName:
		c.record.LastName = raw
	case FieldPIN:
		c.record.PIN = raw
	case FieldEmail:
		c.record.Email = raw
		c.errors.Email = emailMessage(raw)
	case FieldPhone:
		phone := FormatPhone(raw)
		c.record.Phone = phone
		c.errors.Phone = phoneMessage(phone)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, string(field))
	}

	c.notify()
	return nil
}

// Submit re-validates email and phone against the current values.
// When both pass, the record is emitted to the sink and the form resets;
// the emitted record and true are returned. Otherwise nothing is emitted,
// the values stay as they are, and the current record and false are returned.
func (c *Controller) Submit() (Record, bool) {
	c.errors = validate(c.record)

	if c.errors.HasErrors() {
		c.notify()
		return c.record, false
	}

	submitted := c.record
	c.sink.Emit(submitted)
	c.record = Record{}
	c.notify()

	return submitted, true
}

// Reset restores the defaults and clears every message.
func (c *Controller) Reset() {
	c.record = Record{}
	c.errors = Errors{}
	c.notify()
}

func (c *Controller) notify() {
	state := c.State()
	for _, fn := range c.listeners {
		fn(state)
	}
}

// parsePrice reads a decimal amount; blank input means zero.
func parsePrice(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	if !decimalRegex.MatchString(raw) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, raw)
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, raw)
	}
	return price, nil
}
