package validator_test

import (
	"strings"
	"testing"

	"resort/shared/failure"
	"resort/shared/validator"

	"github.com/stretchr/testify/assert"
)

type availability string

func (a availability) Valid() bool {
	return a == "available" || a == "maintenance"
}

type amenityRequest struct {
	Name         string       `json:"name"         validate:"required,max=100"`
	Rate         float64      `json:"rate"         validate:"gte=0"`
	Availability availability `json:"availability" validate:"omitempty,enum"`
	Contact      string       `json:"contact"      validate:"omitempty,email"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    amenityRequest
		wantMsg string
	}{
		{name: "valid", data: amenityRequest{Name: "Kayak", Rate: 20, Availability: "available"}},
		{name: "missing name", data: amenityRequest{Rate: 20}, wantMsg: "name is required"},
		{name: "negative rate", data: amenityRequest{Name: "Kayak", Rate: -1}, wantMsg: "rate must be greater than or equal to 0"},
		{name: "unknown availability", data: amenityRequest{Name: "Kayak", Availability: "lost"}, wantMsg: "availability has an unknown value"},
		{name: "bad email", data: amenityRequest{Name: "Kayak", Contact: "nope"}, wantMsg: "contact must be a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, failure.KindValidation, failure.GetKind(err))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestValidateStruct_ListsEveryField(t *testing.T) {
	err := validator.ValidateStruct(&amenityRequest{Rate: -5, Contact: "nope"})

	assert.Equal(t, "name is required", err.Error())
	assert.Equal(t, map[string]any{
		"fields": map[string]any{
			"name":    "name is required",
			"rate":    "rate must be greater than or equal to 0",
			"contact": "contact must be a valid email address",
		},
	}, failure.GetDetails(err))
}

func TestValidate(t *testing.T) {
	var req amenityRequest

	err := validator.Validate(strings.NewReader(`{"name":"Cabana","rate":45.5}`), &req)
	assert.NoError(t, err)
	assert.Equal(t, "Cabana", req.Name)

	err = validator.Validate(strings.NewReader(`{"name":`), &req)
	assert.Equal(t, failure.KindValidation, failure.GetKind(err))
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("2025-06-01", "datetime=2006-01-02"))
	assert.Error(t, validator.ValidateVar("06/01/2025", "datetime=2006-01-02"))
	assert.NoError(t, validator.ValidateVar("550e8400-e29b-41d4-a716-446655440000", "uuid"))
	assert.Error(t, validator.ValidateVar("r-1", "uuid"))
}
