package validator_test

import (
	"strings"
	"testing"

	"inn/shared/validator"
)

type bookingTestStruct struct {
	GuestID     string  `validate:"required"                      json:"guest_id"`
	BookingType string  `validate:"required,oneof=room hall both" json:"booking_type"`
	Adults      int     `validate:"gte=0,lte=50"                  json:"adults"`
	PaidAmount  float64 `validate:"gte=0"                         json:"paid_amount"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *bookingTestStruct
		expectError bool
	}{
		{
			name: "valid struct",
			data: &bookingTestStruct{
				GuestID:     "guest-1",
				BookingType: "room",
				Adults:      2,
				PaidAmount:  500,
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &bookingTestStruct{
				BookingType: "room",
				Adults:      2,
			},
			expectError: true,
		},
		{
			name: "invalid oneof value",
			data: &bookingTestStruct{
				GuestID:     "guest-1",
				BookingType: "cabin",
				Adults:      2,
			},
			expectError: true,
		},
		{
			name: "adults out of range",
			data: &bookingTestStruct{
				GuestID:     "guest-1",
				BookingType: "hall",
				Adults:      100,
			},
			expectError: true,
		},
		{
			name: "negative paid amount",
			data: &bookingTestStruct{
				GuestID:     "guest-1",
				BookingType: "room",
				PaidAmount:  -1,
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name:        "valid json body",
			body:        `{"guest_id": "guest-1", "booking_type": "room", "adults": 2}`,
			expectError: false,
		},
		{
			name:        "malformed json",
			body:        `{"guest_id": `,
			expectError: true,
		},
		{
			name:        "valid json failing validation",
			body:        `{"booking_type": "room"}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data bookingTestStruct

			err := validator.Validate(strings.NewReader(tt.body), &data)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{
			name:        "valid required string",
			field:       "test",
			tag:         "required",
			expectError: false,
		},
		{
			name:        "empty required string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
		{
			name:        "valid email",
			field:       "operator@example.com",
			tag:         "email",
			expectError: false,
		},
		{
			name:        "invalid email",
			field:       "invalid-email",
			tag:         "email",
			expectError: true,
		},
		{
			name:        "valid number in range",
			field:       25,
			tag:         "gte=0,lte=100",
			expectError: false,
		},
		{
			name:        "number out of range",
			field:       150,
			tag:         "gte=0,lte=100",
			expectError: true,
		},
		{
			name:        "valid oneof",
			field:       "percentage",
			tag:         "oneof=percentage fixed",
			expectError: false,
		},
		{
			name:        "invalid oneof",
			field:       "half-off",
			tag:         "oneof=percentage fixed",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}
