package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	CheckIn *string `json:"check_in" validate:"required,datetime=2006-01-02"`
	Guests  *int    `json:"guests" validate:"required,min=1"`
	Email   string  `json:"email" validate:"omitempty,email"`
}

func ptr[T any](v T) *T { return &v }

func TestValidateStruct(t *testing.T) {
	errs := ValidateStruct(sampleRequest{CheckIn: ptr("2024-05-10"), Guests: ptr(2)})
	assert.Empty(t, errs)

	errs = ValidateStruct(sampleRequest{})
	assert.Equal(t, map[string]string{
		"check_in": "This field is required",
		"guests":   "This field is required",
	}, errs)

	errs = ValidateStruct(sampleRequest{CheckIn: ptr("10/05/2024"), Guests: ptr(0), Email: "nope"})
	assert.Equal(t, map[string]string{
		"check_in": "Must match format YYYY-MM-DD",
		"guests":   "Minimum value is 1",
		"email":    "Invalid email format",
	}, errs)
}

func TestFormatValidationErrors(t *testing.T) {
	assert.Equal(t, "guests: Minimum value is 1", FormatValidationErrors(map[string]string{"guests": "Minimum value is 1"}))
	assert.Equal(t, "", FormatValidationErrors(nil))
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 3, ParseInt("3", 1))
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 1, ParseInt("abc", 1))
	assert.Equal(t, 1, ParseInt("-4", 1))
}

func TestPagination(t *testing.T) {
	assert.Equal(t, 3, CalculateTotalPages(21, 10))
	assert.Equal(t, 0, CalculateTotalPages(0, 10))
	assert.Equal(t, 20, CalculateOffset(3, 10))
	assert.Equal(t, 0, CalculateOffset(0, 10))
}
