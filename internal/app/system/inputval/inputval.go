// Package inputval validates form input structs via `validate` struct
// tags, producing catalog keys instead of validator internals so the
// render site can translate failures into the visitor's language.
//
// Usage:
//
//	type setupInput struct {
//		Name  string `validate:"required,max=200" label:"profile.name"`
//		Email string `validate:"required,email,max=254" label:"profile.email"`
//		Phone string `validate:"required,phone" label:"profile.phone"`
//	}
//
//	if res := inputval.Validate(input); res.HasErrors() {
//		renderWithError(w, r, res.First().Message(loc.T))
//	}
package inputval

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once sync.Once
	v    *validator.Validate
)

// phoneRe accepts digits with optional separators, 8-20 chars.
var phoneRe = regexp.MustCompile(`^[\d\-+() ]{8,20}$`)

func instance() *validator.Validate {
	once.Do(func() {
		v = validator.New(validator.WithRequiredStructEnabled())
		_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return phoneRe.MatchString(fl.Field().String())
		})
		// Report fields by their `label` tag, the catalog key of the
		// field's visible label.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if label := fld.Tag.Get("label"); label != "" {
				return label
			}
			return fld.Name
		})
	})
	return v
}

// FieldError is one failed rule, expressed as catalog keys so the
// caller translates it like upload validation errors.
type FieldError struct {
	// LabelKey is the catalog key of the field's label ("" for
	// failures not tied to a single field).
	LabelKey string
	// RuleKey is the catalog key of the failure template; its value
	// takes the translated label as the first fmt verb.
	RuleKey string
	// Param carries the rule's parameter (e.g. the max length) as a
	// second fmt argument when the template wants one.
	Param string
}

// Message renders the failure through t, which maps catalog keys to
// the active language (typically Locale.T).
func (e FieldError) Message(t func(string) string) string {
	if e.LabelKey == "" {
		return t(e.RuleKey)
	}
	if e.Param != "" {
		return fmt.Sprintf(t(e.RuleKey), t(e.LabelKey), e.Param)
	}
	return fmt.Sprintf(t(e.RuleKey), t(e.LabelKey))
}

// Result holds validation failures in field order.
type Result struct {
	errs []FieldError
}

// HasErrors reports whether any field failed.
func (r Result) HasErrors() bool { return len(r.errs) > 0 }

// First returns the first failure, or the zero FieldError.
func (r Result) First() FieldError {
	if len(r.errs) == 0 {
		return FieldError{}
	}
	return r.errs[0]
}

// All returns every failure.
func (r Result) All() []FieldError { return r.errs }

// Validate checks a struct against its `validate` tags.
func Validate(input any) Result {
	err := instance().Struct(input)
	if err == nil {
		return Result{}
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Result{errs: []FieldError{{RuleKey: "error.generic"}}}
	}
	var res Result
	for _, fe := range verrs {
		res.errs = append(res.errs, fieldError(fe))
	}
	return res
}

func fieldError(fe validator.FieldError) FieldError {
	e := FieldError{LabelKey: fe.Field()}
	switch fe.Tag() {
	case "required":
		e.RuleKey = "form.errRequired"
	case "email":
		e.RuleKey = "form.errEmail"
	case "phone":
		e.RuleKey = "form.errPhone"
	case "max":
		e.RuleKey = "form.errTooLong"
		e.Param = fe.Param()
	case "url", "http_url":
		e.RuleKey = "form.errURL"
	case "datetime":
		e.RuleKey = "form.errDate"
	default:
		e.RuleKey = "form.errInvalid"
	}
	return e
}

// IsValidEmail reports whether s passes the email rule on its own.
func IsValidEmail(s string) bool {
	return instance().Var(strings.TrimSpace(s), "required,email") == nil
}

// IsValidPhone reports whether s looks like a phone number.
func IsValidPhone(s string) bool {
	return phoneRe.MatchString(strings.TrimSpace(s))
}

// IsValidHTTPURL reports whether s is an absolute http(s) URL.
func IsValidHTTPURL(s string) bool {
	return instance().Var(strings.TrimSpace(s), "required,http_url") == nil
}
