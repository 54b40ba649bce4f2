package domain

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Client is a customer record managed by the API.
type Client struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"      validate:"required,notblank,min=3,max=100"`
	Email     string    `json:"email"     validate:"required,max=100,email"`
	Phone     string    `json:"phone"     validate:"required,phone"`
	City      string    `json:"city"      validate:"required,notblank,max=50"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

var phonePattern = regexp.MustCompile(`^[0-9]{10,11}$`)

// constraintMessages maps "<field>.<tag>" to the message reported for that violation.
var constraintMessages = map[string]string{
	"name.required":  "name cannot be empty",
	"name.notblank":  "name cannot be empty",
	"name.min":       "name must be between 3 and 100 characters",
	"name.max":       "name must be between 3 and 100 characters",
	"email.required": "email cannot be empty",
	"email.max":      "email must be at most 100 characters",
	"email.email":    "email is invalid",
	"phone.required": "phone cannot be empty",
	"phone.phone":    "phone must contain 10 or 11 numeric digits",
	"city.required":  "city cannot be empty",
	"city.notblank":  "city cannot be empty",
	"city.max":       "city must be at most 50 characters",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON field names so violations match the request payload.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// ALLOW-PANIC: registration only fails on programmer error
	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return v
}

// Validate checks the declarative field constraints on the client.
// It returns a *ValidationError listing one violation per failing field, or nil.
func (c *Client) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	violations := make([]FieldViolation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg, ok := constraintMessages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fe.Field() + " is invalid"
		}
		violations = append(violations, FieldViolation{Field: fe.Field(), Message: msg})
	}
	return NewValidationError(violations...)
}

// NormalizeEmail trims surrounding whitespace and lowercases the address.
// The normalized form is what gets stored and compared for uniqueness.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
