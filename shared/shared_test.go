package shared_test

import (
	"reflect"
	"testing"
	"time"

	"inn/shared"
	"inn/shared/constant"
	"inn/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "valid true string",
			input:    "true",
			expected: boolPtr(true),
		},
		{
			name:     "valid false string",
			input:    "false",
			expected: boolPtr(false),
		},
		{
			name:     "valid 1 string",
			input:    "1",
			expected: boolPtr(true),
		},
		{
			name:     "valid 0 string",
			input:    "0",
			expected: boolPtr(false),
		},
		{
			name:     "valid T string",
			input:    "T",
			expected: boolPtr(true),
		},
		{
			name:     "valid FALSE string",
			input:    "FALSE",
			expected: boolPtr(false),
		},
		{
			name:     "invalid string returns nil",
			input:    "invalid",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}
			} else {
				if result == nil {
					t.Errorf("expected %v, got nil", *tt.expected)
				} else if *result != *tt.expected {
					t.Errorf("expected %v, got %v", *tt.expected, *result)
				}
			}
		})
	}
}

func TestConvertStringToInt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *int
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "valid positive number",
			input:    "42",
			expected: intPtr(42),
		},
		{
			name:     "valid negative number",
			input:    "-7",
			expected: intPtr(-7),
		},
		{
			name:     "zero",
			input:    "0",
			expected: intPtr(0),
		},
		{
			name:     "invalid string returns nil",
			input:    "not-a-number",
			expected: nil,
		},
		{
			name:     "float string returns nil",
			input:    "3.14",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToInt(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}
			} else {
				if result == nil {
					t.Errorf("expected %v, got nil", *tt.expected)
				} else if *result != *tt.expected {
					t.Errorf("expected %v, got %v", *tt.expected, *result)
				}
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns 1",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns 1",
			total:    100,
			limit:    0,
			expected: 1,
		},
		{
			name:     "negative limit returns 1",
			total:    100,
			limit:    -5,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    100,
			limit:    10,
			expected: 10,
		},
		{
			name:     "division with remainder",
			total:    101,
			limit:    10,
			expected: 11,
		},
		{
			name:     "limit greater than total",
			total:    5,
			limit:    10,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type TestStruct struct {
		FullName   string `db:"full_name"`
		Phone      string `db:"phone"`
		EmptyField string `db:"empty_field"`
		NoDBTag    string
	}

	tests := []struct {
		name     string
		data     interface{}
		username string
		expected map[string]any
	}{
		{
			name: "struct with populated fields",
			data: TestStruct{
				FullName:   "Ali Raza",
				Phone:      "0300-1234567",
				EmptyField: "",
				NoDBTag:    "ignored",
			},
			username: "operator-1",
			expected: map[string]any{
				"full_name": "Ali Raza",
				"phone":     "0300-1234567",
			},
		},
		{
			name:     "struct with all zero values",
			data:     TestStruct{},
			username: "operator-1",
			expected: map[string]any{},
		},
		{
			name: "struct with partial fields",
			data: TestStruct{
				Phone: "0311-7654321",
			},
			username: "operator-2",
			expected: map[string]any{
				"phone": "0311-7654321",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.TransformFields(tt.data, tt.username)

			if result[constant.FieldModifiedAt] == nil {
				t.Error("expected modified_at to be set")
			}

			if result[constant.FieldModifiedBy] != tt.username {
				t.Errorf("expected modified_by to be %s, got %v", tt.username, result[constant.FieldModifiedBy])
			}

			if _, ok := result[constant.FieldModifiedAt].(time.Time); !ok {
				t.Error("expected modified_at to be a time.Time")
			}

			for key, expectedValue := range tt.expected {
				if actualValue, exists := result[key]; !exists {
					t.Errorf("expected field %s to exist", key)
				} else if !reflect.DeepEqual(actualValue, expectedValue) {
					t.Errorf("expected field %s to be %v, got %v", key, expectedValue, actualValue)
				}
			}

			for key := range result {
				if key == constant.FieldModifiedAt || key == constant.FieldModifiedBy {
					continue
				}
				if _, expected := tt.expected[key]; !expected {
					t.Errorf("unexpected field %s in result", key)
				}
			}
		})
	}
}

func TestTransformFieldsWithPointers(t *testing.T) {
	type TestStructWithPointers struct {
		Phone *string `db:"phone"`
		IsVip *bool   `db:"is_vip"`
	}

	phone := "0300-1234567"
	isVip := false // false behind a pointer is not a zero value

	data := TestStructWithPointers{
		Phone: &phone,
		IsVip: &isVip,
	}

	result := shared.TransformFields(data, "operator-1")

	expectedFields := map[string]any{
		"phone":  &phone,
		"is_vip": &isVip,
	}

	for key, expectedValue := range expectedFields {
		if actualValue, exists := result[key]; !exists {
			t.Errorf("expected field %s to exist", key)
		} else if !reflect.DeepEqual(actualValue, expectedValue) {
			t.Errorf("expected field %s to be %v, got %v", key, expectedValue, actualValue)
		}
	}
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID("guest-1", "id", "guests")

	expected := dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "id",
				Value:    "guest-1",
				Operator: dto.FilterOperatorEq,
				Table:    "guests",
			},
		},
	}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("expected %+v, got %+v", expected, result)
	}
}

func TestFilterByAccount(t *testing.T) {
	result := shared.FilterByAccount("account-1", "bookings")

	if len(result.Filters) != 1 {
		t.Fatalf("expected 1 filter, got %d", len(result.Filters))
	}

	filter, ok := result.Filters[0].(dto.Filter)
	if !ok {
		t.Fatal("expected filter to be of type dto.Filter")
	}

	if filter.Field != constant.FieldAccountID {
		t.Errorf("expected field to be %s, got %s", constant.FieldAccountID, filter.Field)
	}

	if filter.Value != "account-1" {
		t.Errorf("expected value to be account-1, got %v", filter.Value)
	}

	if filter.Table != "bookings" {
		t.Errorf("expected table to be bookings, got %s", filter.Table)
	}
}

func TestFilterByIDAndAccount(t *testing.T) {
	result := shared.FilterByIDAndAccount("room-1", "id", "account-1", "rooms")

	if len(result.Filters) != 2 {
		t.Fatalf("expected 2 filters, got %d", len(result.Filters))
	}

	idFilter, ok := result.Filters[0].(dto.Filter)
	if !ok {
		t.Fatal("expected first filter to be of type dto.Filter")
	}

	if idFilter.Field != "id" || idFilter.Value != "room-1" {
		t.Errorf("unexpected id filter: %+v", idFilter)
	}

	accountFilter, ok := result.Filters[1].(dto.Filter)
	if !ok {
		t.Fatal("expected second filter to be of type dto.Filter")
	}

	if accountFilter.Field != constant.FieldAccountID || accountFilter.Value != "account-1" {
		t.Errorf("unexpected account filter: %+v", accountFilter)
	}
}

func TestBuildCacheKey(t *testing.T) {
	result := shared.BuildCacheKey("guest:get", "account-1", "guest-1")

	if result != "guest:get:account-1:guest-1" {
		t.Errorf("expected guest:get:account-1:guest-1, got %s", result)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	paramsA := dto.QueryParams{Page: 1, Limit: 10}
	paramsB := dto.QueryParams{Page: 2, Limit: 10}

	filter := shared.FilterByAccount("account-1", "guests")
	otherFilter := shared.FilterByAccount("account-2", "guests")

	keyA := shared.BuildCacheKeyWithQuery("guest:gets", paramsA, filter)
	keyB := shared.BuildCacheKeyWithQuery("guest:gets", paramsB, filter)
	keyC := shared.BuildCacheKeyWithQuery("guest:gets", paramsA, otherFilter)

	if keyA == keyB {
		t.Error("expected different keys for different pages")
	}

	if keyA == keyC {
		t.Error("expected different keys for different accounts")
	}

	// Same inputs must always hash to the same key.
	if keyA != shared.BuildCacheKeyWithQuery("guest:gets", paramsA, filter) {
		t.Error("expected identical keys for identical inputs")
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func intPtr(i int) *int {
	return &i
}
