package party

import (
	"errors"
	"fmt"

	"github.com/tartampluch/go-partytype/internal/config"
)

var (
	ErrRequired     = errors.New(config.ErrRequired)
	ErrInvalidValue = errors.New(config.ErrInvalidValue)
	ErrNotFound     = errors.New(config.ErrContactNotFound)
)

// FieldError reports a constraint violation on one field.
type FieldError struct {
	Field Field
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Validate checks c against the required states and the selection values.
// All violations are returned joined.
func Validate(c Contact) error {
	var errs []error

	if !c.Type.Valid() {
		errs = append(errs, &FieldError{Field: FieldType, Err: ErrInvalidValue})
	}
	if c.NameOrder != "" && !c.NameOrder.Valid() {
		errs = append(errs, &FieldError{Field: FieldNameOrder, Err: ErrInvalidValue})
	}
	if c.Gender != "" && !c.Gender.Valid() {
		errs = append(errs, &FieldError{Field: FieldGender, Err: ErrInvalidValue})
	}

	for _, f := range Fields {
		if Required(f, c) && c.Value(f) == "" {
			errs = append(errs, &FieldError{Field: f, Err: ErrRequired})
		}
	}
	return errors.Join(errs...)
}
