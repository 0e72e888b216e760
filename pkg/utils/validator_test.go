package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Name   string `json:"name" validate:"required,max=5"`
}

func TestValidateStruct(t *testing.T) {
	errs := ValidateStruct(sampleRequest{Email: "bad", Rating: 9, Name: "toolong"})

	assert.Equal(t, map[string]string{
		"email":  "Invalid email format",
		"rating": "Must be at most 5",
		"name":   "Maximum length is 5",
	}, errs)

	assert.Nil(t, ValidateStruct(sampleRequest{Email: "a@x.com", Rating: 3, Name: "A"}))
}

func TestFormatValidationErrors_IsSorted(t *testing.T) {
	got := FormatValidationErrors(map[string]string{
		"rating":  "Must be at most 5",
		"movieId": "This field is required",
	})

	assert.Equal(t, "movieId: This field is required; rating: Must be at most 5", got)
}

func TestValidateStruct_UnmappedTagFallsBack(t *testing.T) {
	type sortRequest struct {
		Order string `json:"order" validate:"oneof=asc desc"`
	}

	errs := ValidateStruct(sortRequest{Order: "sideways"})

	assert.Equal(t, map[string]string{"order": "Invalid order field"}, errs)
}
