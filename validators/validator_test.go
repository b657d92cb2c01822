package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type samplePayload struct {
	Email string  `json:"email" validate:"required,email"`
	Name  string  `json:"name" validate:"required,min=3"`
	Year  int     `json:"year" validate:"gte=1888"`
	Sort  string  `query:"sort" validate:"omitempty,oneof=popular title"`
	Value float64 `json:"value" validate:"lte=5"`
}

func TestStructValid(t *testing.T) {
	errs := Struct(&samplePayload{Email: "a@b.co", Name: "Ann", Year: 2000, Sort: "title", Value: 5})
	assert.Empty(t, errs)
}

func TestStructReportsFieldsByWireName(t *testing.T) {
	errs := Struct(&samplePayload{Email: "nope", Name: "Al", Year: 1500, Sort: "random", Value: 6})

	assert.Equal(t, "Invalid email!", errs["email"])
	assert.Equal(t, "name must be at least 3 characters long!", errs["name"])
	assert.Equal(t, "year must be at least 1888!", errs["year"])
	assert.Equal(t, "sort must be one of: popular, title!", errs["sort"])
	assert.Equal(t, "value must be at most 5!", errs["value"])
}

func TestStructRequired(t *testing.T) {
	errs := Struct(&samplePayload{Year: 1900})
	assert.Equal(t, "email is required!", errs["email"])
	assert.Equal(t, "name is required!", errs["name"])
}
