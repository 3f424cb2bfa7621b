package dto_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"eljardin/shared/constant"
	"eljardin/shared/dto"
	"eljardin/shared/model"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{CreatedAt: createdAt})

	assert.Equal(t, createdAt.Format(constant.DateFormat), metadata.CreatedAt)
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name       string
		filter     dto.Filter
		wantClause string
		wantArgs   map[string]any
	}{
		{
			name: "eq with table qualifier",
			filter: dto.Filter{
				Field:    "status",
				Value:    "pending",
				Operator: dto.FilterOperatorEq,
				Table:    "bookings",
			},
			wantClause: "bookings.status = :status",
			wantArgs:   map[string]any{"status": "pending"},
		},
		{
			name: "eq without table qualifier",
			filter: dto.Filter{
				Field:    "status",
				Value:    "pending",
				Operator: dto.FilterOperatorEq,
			},
			wantClause: "status = :status",
			wantArgs:   map[string]any{"status": "pending"},
		},
		{
			name: "eq with explicit arg name",
			filter: dto.Filter{
				ArgName:  "filter_user_id",
				Field:    "user_id",
				Value:    "user-1",
				Operator: dto.FilterOperatorEq,
				Table:    "orders",
			},
			wantClause: "orders.user_id = :filter_user_id",
			wantArgs:   map[string]any{"filter_user_id": "user-1"},
		},
		{
			name: "like wraps value in wildcards",
			filter: dto.Filter{
				Field:    "name",
				Value:    "ana",
				Operator: dto.FilterOperatorLike,
				Table:    "users",
			},
			wantClause: "LOWER(users.name) LIKE LOWER(:name) ",
			wantArgs:   map[string]any{"name": "%ana%"},
		},
		{
			name: "in with slice value",
			filter: dto.Filter{
				Field:    "status",
				Value:    []string{"pending", "confirmed"},
				Operator: dto.FilterOperatorIn,
				Table:    "orders",
			},
			wantClause: "orders.status IN (:status_0, :status_1) ",
			wantArgs:   map[string]any{"status_0": "pending", "status_1": "confirmed"},
		},
		{
			name: "not eq",
			filter: dto.Filter{
				Field:    "status",
				Value:    "cancelled",
				Operator: dto.FilterOperatorNotEq,
			},
			wantClause: "status != :status",
			wantArgs:   map[string]any{"status": "cancelled"},
		},
		{
			name: "is null has no args",
			filter: dto.Filter{
				Field:    "cancellation_reason",
				Operator: dto.FilterIsNull,
				Table:    "bookings",
			},
			wantClause: "bookings.cancellation_reason IS NULL",
			wantArgs:   map[string]any{},
		},
		{
			name: "unknown operator yields empty clause",
			filter: dto.Filter{
				Field:    "status",
				Value:    "pending",
				Operator: "between",
			},
			wantClause: "",
			wantArgs:   map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantClause, clause)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	t.Run("empty group", func(t *testing.T) {
		group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

		clause, args := group.GetWhereClause()

		assert.Empty(t, clause)
		assert.Empty(t, args)
	})

	t.Run("two filters joined with AND", func(t *testing.T) {
		group := dto.FilterGroup{
			Filters: []any{
				dto.Filter{Field: "user_id", Value: "user-1", Operator: dto.FilterOperatorEq, Table: "bookings"},
				dto.Filter{Field: "status", Value: "pending", Operator: dto.FilterOperatorEq, Table: "bookings"},
			},
			Operator: dto.FilterGroupOperatorAnd,
		}

		clause, args := group.GetWhereClause()

		assert.Equal(t, "(bookings.user_id = :user_id AND bookings.status = :status)", clause)
		assert.Equal(t, map[string]any{"user_id": "user-1", "status": "pending"}, args)
	})

	t.Run("nested group", func(t *testing.T) {
		group := dto.FilterGroup{
			Filters: []any{
				dto.Filter{Field: "user_id", Value: "user-1", Operator: dto.FilterOperatorEq},
				dto.FilterGroup{
					Filters: []any{
						dto.Filter{ArgName: "status_a", Field: "status", Value: "pending", Operator: dto.FilterOperatorEq},
						dto.Filter{ArgName: "status_b", Field: "status", Value: "confirmed", Operator: dto.FilterOperatorEq},
					},
					Operator: dto.FilterGroupOperatorOr,
				},
			},
			Operator: dto.FilterGroupOperatorAnd,
		}

		clause, args := group.GetWhereClause()

		assert.Equal(t, "(user_id = :user_id AND (status = :status_a OR status = :status_b))", clause)
		assert.Equal(t, map[string]any{
			"user_id":  "user-1",
			"status_a": "pending",
			"status_b": "confirmed",
		}, args)
	})
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
				"sort_by":  "name",
				"sort_dir": "ASC",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "name",
				SortDir: "ASC",
			},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name:           "with default request disabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name: "with invalid page parameter",
			queryParams: map[string]string{
				"page": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name: "with negative page parameter",
			queryParams: map[string]string{
				"page": "-1",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name: "with negative limit parameter",
			queryParams: map[string]string{
				"limit": "-10",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name: "lowercase sort direction is normalised",
			queryParams: map[string]string{
				"sort_dir": "desc",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				SortDir: "DESC",
			},
		},
		{
			name: "invalid sort direction is ignored",
			queryParams: map[string]string{
				"sort_dir": "sideways",
			},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name: "with partial parameters and defaults enabled",
			queryParams: map[string]string{
				"page":    "3",
				"sort_by": "email",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:   3,
				Limit:  constant.DefaultValueLimit,
				SortBy: "email",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse("http://example.com/test")
			if err != nil {
				t.Fatalf("failed to parse URL: %v", err)
			}

			query := u.Query()
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}
			u.RawQuery = query.Encode()

			req, err := http.NewRequest(http.MethodGet, u.String(), nil)
			if err != nil {
				t.Fatalf("failed to create request: %v", err)
			}

			queryParams := &dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, *queryParams)
		})
	}
}
