package core

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ValidationError describes a single rejected config field.
type ValidationError struct {
	Field   string
	Tag     string
	Value   interface{}
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates every problem found in one pass, so a caller
// sees the whole picture instead of fixing fields one run at a time.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return "invalid config: " + strings.Join(msgs, "; ")
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// Validate checks the config eagerly, before any generation begins. Call it
// after WithDefaults; defaults are what make several of the gte tags hold.
func (c Config) Validate() error {
	var verrs ValidationErrors

	if err := structValidator().Struct(c); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			for _, e := range errs {
				verrs = append(verrs, ValidationError{
					Field:   e.Field(),
					Tag:     e.Tag(),
					Value:   e.Value(),
					Message: validationMessage(e),
				})
			}
		} else {
			verrs = append(verrs, ValidationError{Message: err.Error()})
		}
	}

	verrs = append(verrs, c.validateCustomRules()...)

	if len(verrs) > 0 {
		return verrs
	}
	return nil
}

// validateCustomRules covers the cross-field and element-wise rules struct
// tags cannot express.
func (c Config) validateCustomRules() ValidationErrors {
	var verrs ValidationErrors

	if c.TermMax <= c.TermMin {
		verrs = append(verrs, ValidationError{
			Field:   "TermMax",
			Tag:     "gtfield",
			Value:   c.TermMax,
			Message: fmt.Sprintf("terminal range [%v, %v) is empty", c.TermMin, c.TermMax),
		})
	}

	for i, fn := range c.Funcs {
		if fn.Op == nil {
			verrs = append(verrs, ValidationError{
				Field:   "Funcs",
				Tag:     "required",
				Value:   fn.Name,
				Message: fmt.Sprintf("function %d (%q) has a nil Op", i, fn.Name),
			})
		}
		if fn.Arity < 1 {
			verrs = append(verrs, ValidationError{
				Field:   "Funcs",
				Tag:     "gte",
				Value:   fn.Arity,
				Message: fmt.Sprintf("function %d (%q) declares arity %d; operators need at least one child", i, fn.Name, fn.Arity),
			})
		}
	}

	if len(c.Tests) != len(c.Actual) {
		verrs = append(verrs, ValidationError{
			Field:   "Actual",
			Tag:     "eqfield",
			Value:   len(c.Actual),
			Message: fmt.Sprintf("%d test inputs but %d expected outputs", len(c.Tests), len(c.Actual)),
		})
	}
	for i, tuple := range c.Tests {
		if len(tuple) != len(c.Symbols) {
			verrs = append(verrs, ValidationError{
				Field:   "Tests",
				Tag:     "len",
				Value:   len(tuple),
				Message: fmt.Sprintf("test %d has %d values for %d symbols", i, len(tuple), len(c.Symbols)),
			})
		}
	}

	return verrs
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "min":
		return fmt.Sprintf("must not be empty (%s)", e.Tag())
	case "gte":
		return fmt.Sprintf("must be >= %s, got %v", e.Param(), e.Value())
	case "lte":
		return fmt.Sprintf("must be <= %s, got %v", e.Param(), e.Value())
	case "gtefield":
		return fmt.Sprintf("must be >= %s", e.Param())
	case "ltefield":
		return fmt.Sprintf("must be <= %s", e.Param())
	default:
		return fmt.Sprintf("failed %s validation", e.Tag())
	}
}
