package dto_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"inn/shared/constant"
	"inn/shared/dto"
	"inn/shared/model"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	if metadata.CreatedAt == "" {
		t.Error("expected CreatedAt to be formatted, got empty string")
	}

	if metadata.ModifiedAt == "" {
		t.Error("expected ModifiedAt to be formatted, got empty string")
	}

	if metadata.CreatedBy != "creator" {
		t.Errorf("expected CreatedBy to be 'creator', got %s", metadata.CreatedBy)
	}

	if metadata.ModifiedBy != "modifier" {
		t.Errorf("expected ModifiedBy to be 'modifier', got %s", metadata.ModifiedBy)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "full_name",
				"sort_dir": "ASC",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "full_name",
				SortDir: "ASC",
			},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  constant.DefaultValueSortBy,
				SortDir: constant.DefaultValueSortDir,
			},
		},
		{
			name:           "with default request disabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    0,
				Limit:   0,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with invalid page parameter",
			queryParams: map[string]string{
				"page": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  constant.DefaultValueSortBy,
				SortDir: constant.DefaultValueSortDir,
			},
		},
		{
			name: "with negative page parameter",
			queryParams: map[string]string{
				"page": "-1",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  constant.DefaultValueSortBy,
				SortDir: constant.DefaultValueSortDir,
			},
		},
		{
			name: "with lowercase sort direction",
			queryParams: map[string]string{
				"sort_dir": "desc",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				SortDir: "DESC",
			},
		},
		{
			name: "with invalid sort direction",
			queryParams: map[string]string{
				"sort_dir": "sideways",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				SortDir: "",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for key, value := range tt.queryParams {
				values.Set(key, value)
			}

			req := &http.Request{
				URL: &url.URL{RawQuery: values.Encode()},
			}

			params := dto.QueryParams{}
			params.FromRequest(req, tt.defaultRequest)

			if params != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, params)
			}
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name          string
		filter        dto.Filter
		expectedWhere string
		expectedArgs  map[string]any
	}{
		{
			name: "eq operator",
			filter: dto.Filter{
				Field:    "guest_id",
				Value:    "guest-1",
				Operator: dto.FilterOperatorEq,
				Table:    "bookings",
			},
			expectedWhere: "bookings.guest_id = :guest_id",
			expectedArgs:  map[string]any{"guest_id": "guest-1"},
		},
		{
			name: "eq operator without table",
			filter: dto.Filter{
				Field:    "id",
				Value:    "1",
				Operator: dto.FilterOperatorEq,
			},
			expectedWhere: "id = :id",
			expectedArgs:  map[string]any{"id": "1"},
		},
		{
			name: "like operator wraps value",
			filter: dto.Filter{
				Field:    "full_name",
				Value:    "ali",
				Operator: dto.FilterOperatorLike,
				Table:    "guests",
			},
			expectedWhere: "LOWER(guests.full_name) LIKE LOWER(:full_name) ",
			expectedArgs:  map[string]any{"full_name": "%ali%"},
		},
		{
			name: "custom arg name",
			filter: dto.Filter{
				ArgName:  "check_in_from",
				Field:    "check_in",
				Value:    "2025-01-01",
				Operator: dto.FilterOperatorGreaterEq,
			},
			expectedWhere: "check_in >= :check_in_from",
			expectedArgs:  map[string]any{"check_in_from": "2025-01-01"},
		},
		{
			name: "is null operator",
			filter: dto.Filter{
				Field:    "coupon_id",
				Operator: dto.FilterIsNull,
			},
			expectedWhere: "coupon_id IS NULL",
			expectedArgs:  map[string]any{},
		},
		{
			name: "unknown operator",
			filter: dto.Filter{
				Field:    "id",
				Operator: "bogus",
			},
			expectedWhere: "",
			expectedArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			if where != tt.expectedWhere {
				t.Errorf("expected where %q, got %q", tt.expectedWhere, where)
			}

			if len(args) != len(tt.expectedArgs) {
				t.Errorf("expected %d args, got %d", len(tt.expectedArgs), len(args))
			}

			for key, expected := range tt.expectedArgs {
				if args[key] != expected {
					t.Errorf("expected arg %s to be %v, got %v", key, expected, args[key])
				}
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	t.Run("empty group", func(t *testing.T) {
		group := dto.FilterGroup{}

		where, args := group.GetWhereClause()
		if where != "" {
			t.Errorf("expected empty where clause, got %q", where)
		}
		if len(args) != 0 {
			t.Errorf("expected no args, got %v", args)
		}
	})

	t.Run("defaults to AND", func(t *testing.T) {
		group := dto.FilterGroup{
			Filters: []any{
				dto.Filter{Field: "account_id", Value: "a", Operator: dto.FilterOperatorEq},
				dto.Filter{Field: "guest_id", Value: "g", Operator: dto.FilterOperatorEq},
			},
		}

		where, args := group.GetWhereClause()
		if where != "(account_id = :account_id AND guest_id = :guest_id)" {
			t.Errorf("unexpected where clause: %q", where)
		}
		if len(args) != 2 {
			t.Errorf("expected 2 args, got %d", len(args))
		}
	})

	t.Run("nested group", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{Field: "account_id", Value: "a", Operator: dto.FilterOperatorEq},
				dto.FilterGroup{
					Operator: dto.FilterGroupOperatorOr,
					Filters: []any{
						dto.Filter{Field: "booking_status", Value: "booked", Operator: dto.FilterOperatorEq},
						dto.Filter{ArgName: "status_checked_in", Field: "booking_status", Value: "checked_in", Operator: dto.FilterOperatorEq},
					},
				},
			},
		}

		where, args := group.GetWhereClause()
		expected := "(account_id = :account_id AND (booking_status = :booking_status OR booking_status = :status_checked_in))"
		if where != expected {
			t.Errorf("expected %q, got %q", expected, where)
		}
		if len(args) != 3 {
			t.Errorf("expected 3 args, got %d", len(args))
		}
	})
}
