package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type pinRequest struct {
	Latitude  *float64 `validate:"required,min=-90,max=90"`
	Longitude *float64 `validate:"required,min=-180,max=180"`
}

func ptr(v float64) *float64 { return &v }

func TestValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		input   pinRequest
		wantErr bool
	}{
		{name: "in range", input: pinRequest{Latitude: ptr(30.28), Longitude: ptr(-97.73)}},
		{name: "zero is a valid coordinate", input: pinRequest{Latitude: ptr(0), Longitude: ptr(0)}},
		{name: "latitude out of range", input: pinRequest{Latitude: ptr(91), Longitude: ptr(0)}, wantErr: true},
		{name: "longitude out of range", input: pinRequest{Latitude: ptr(0), Longitude: ptr(-181)}, wantErr: true},
		{name: "missing latitude", input: pinRequest{Longitude: ptr(0)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
