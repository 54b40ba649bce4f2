package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClient() Client {
	return Client{
		Name:   "Ana Souza",
		Email:  "ana@email.com",
		Phone:  "85999999999",
		City:   "Fortaleza",
		Active: true,
	}
}

func TestClientValidate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(c *Client)
		wantFields []string
	}{
		{
			name:   "valid client",
			mutate: func(c *Client) {},
		},
		{
			name:   "ten digit phone",
			mutate: func(c *Client) { c.Phone = "8533334444" },
		},
		{
			name:       "name too short",
			mutate:     func(c *Client) { c.Name = "Al" },
			wantFields: []string{"name"},
		},
		{
			name:       "name too long",
			mutate:     func(c *Client) { c.Name = strings.Repeat("a", 101) },
			wantFields: []string{"name"},
		},
		{
			name:       "blank name",
			mutate:     func(c *Client) { c.Name = "    " },
			wantFields: []string{"name"},
		},
		{
			name:       "invalid email",
			mutate:     func(c *Client) { c.Email = "not-an-email" },
			wantFields: []string{"email"},
		},
		{
			name:       "phone with letters",
			mutate:     func(c *Client) { c.Phone = "85abc999999" },
			wantFields: []string{"phone"},
		},
		{
			name:       "phone too short",
			mutate:     func(c *Client) { c.Phone = "123456789" },
			wantFields: []string{"phone"},
		},
		{
			name:       "city too long",
			mutate:     func(c *Client) { c.City = strings.Repeat("c", 51) },
			wantFields: []string{"city"},
		},
		{
			name: "every field broken",
			mutate: func(c *Client) {
				c.Name = ""
				c.Email = ""
				c.Phone = "12"
				c.City = ""
			},
			wantFields: []string{"name", "email", "phone", "city"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			c := validClient()
			tc.mutate(&c)

			err := c.Validate()
			if len(tc.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))

			fields := make([]string, 0, len(verr.Violations))
			for _, v := range verr.Violations {
				fields = append(fields, v.Field)
				assert.NotEmpty(t, v.Message)
			}
			assert.Equal(t, tc.wantFields, fields)
		})
	}
}

func TestClientValidate_Messages(t *testing.T) {
	c := validClient()
	c.Phone = "abc"

	var verr *ValidationError
	require.True(t, errors.As(c.Validate(), &verr))
	require.Len(t, verr.Violations, 1)
	assert.Equal(t, FieldViolation{
		Field:   "phone",
		Message: "phone must contain 10 or 11 numeric digits",
	}, verr.Violations[0])
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ana@email.com", NormalizeEmail("ANA@Email.com "))
	assert.Equal(t, "ana@email.com", NormalizeEmail("  ana@email.com"))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestValidationError_Error(t *testing.T) {
	err := NewValidationError(
		FieldViolation{Field: "name", Message: "name cannot be empty"},
		FieldViolation{Field: "city", Message: "city cannot be empty"},
	)
	assert.Equal(t, "validation failed: name: name cannot be empty; city: city cannot be empty", err.Error())
	assert.Equal(t, "validation failed", NewValidationError().Error())
}
