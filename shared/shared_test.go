package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"eljardin/shared"
	"eljardin/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "zero total", total: 0, limit: 10, want: 1},
		{name: "zero limit", total: 25, limit: 0, want: 1},
		{name: "exact fit", total: 20, limit: 10, want: 2},
		{name: "partial last page", total: 21, limit: 10, want: 3},
		{name: "single page", total: 3, limit: 10, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type updateRequest struct {
		Name    string  `db:"name"`
		Total   float64 `db:"total_amount"`
		Ignored string  `db:"-"`
		NoTag   string
	}

	t.Run("non-zero tagged fields only", func(t *testing.T) {
		got := shared.TransformFields(updateRequest{
			Name:    "Paella",
			Total:   23.00,
			Ignored: "should not appear",
			NoTag:   "should not appear",
		})

		assert.Equal(t, map[string]any{
			"name":         "Paella",
			"total_amount": 23.00,
		}, got)
	})

	t.Run("zero fields are skipped", func(t *testing.T) {
		got := shared.TransformFields(updateRequest{Name: "Paella"})

		assert.Equal(t, map[string]any{"name": "Paella"}, got)
	})

	t.Run("empty struct yields empty map", func(t *testing.T) {
		assert.Empty(t, shared.TransformFields(updateRequest{}))
	})
}

func TestFilterByID(t *testing.T) {
	got := shared.FilterByID("user-1", "id", "users")

	assert.Len(t, got.Filters, 1)
	assert.Equal(t, dto.Filter{
		Field:    "id",
		Value:    "user-1",
		Operator: dto.FilterOperatorEq,
		Table:    "users",
	}, got.Filters[0])
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "limiter:10.0.0.1:curl", shared.BuildCacheKey("limiter", "10.0.0.1", "curl"))
	assert.Equal(t, "single", shared.BuildCacheKey("single"))
}
