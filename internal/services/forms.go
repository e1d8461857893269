package services

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)

// fieldMessages maps "<json field>.<tag>" to the message shown to the shopper.
var fieldMessages = map[string]string{
	"username.min":            "Username must be at least 3 characters",
	"password.min":            "Password must be at least 6 characters",
	"confirmPassword.eqfield": "Passwords do not match",
	"name.min":                "Name is required",
	"email.email":             "Invalid email address",
	"message.min":             "Message must be at least 10 characters",
	"address.min":             "Address is required",
	"card.len":                "Card number must be 16 digits",
	"expiry.expiry":           "Expiry must be MM/YY",
	"cvc.len":                 "CVC must be 3 digits",
}

// FormError carries per-field validation messages keyed by JSON field name.
type FormError struct {
	Fields map[string][]string
}

func (e *FormError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, strings.Join(e.Fields[name], ", ")))
	}
	return "invalid form: " + strings.Join(parts, "; ")
}

func (e *FormError) add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// FormValidator validates submitted forms using struct `validate` tags.
type FormValidator struct {
	validate *validator.Validate
}

func NewFormValidator() *FormValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("expiry", func(fl validator.FieldLevel) bool {
		return expiryPattern.MatchString(fl.Field().String())
	})
	return &FormValidator{validate: v}
}

// Validate returns a *FormError describing every failing field, or nil.
func (fv *FormValidator) Validate(form interface{}) error {
	err := fv.validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating form: %w", err)
	}

	formErr := &FormError{}
	for _, fe := range verrs {
		field := fe.Field()
		msg, ok := fieldMessages[field+"."+fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("%s is invalid", field)
		}
		formErr.add(field, msg)
	}
	return formErr
}
