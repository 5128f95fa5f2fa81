package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateMeta(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		pageSize   int
		totalItems int64
		want       Meta
	}{
		{
			name: "first page of three", page: 0, pageSize: 10, totalItems: 25,
			want: Meta{Page: 0, PageSize: 10, TotalItems: 25, TotalPages: 3, HasNext: true, HasPrevious: false},
		},
		{
			name: "last page of three", page: 2, pageSize: 10, totalItems: 25,
			want: Meta{Page: 2, PageSize: 10, TotalItems: 25, TotalPages: 3, HasNext: false, HasPrevious: true},
		},
		{
			name: "middle page", page: 1, pageSize: 10, totalItems: 25,
			want: Meta{Page: 1, PageSize: 10, TotalItems: 25, TotalPages: 3, HasNext: true, HasPrevious: true},
		},
		{
			name: "empty result", page: 0, pageSize: 10, totalItems: 0,
			want: Meta{Page: 0, PageSize: 10, TotalItems: 0, TotalPages: 0, HasNext: false, HasPrevious: false},
		},
		{
			name: "exact multiple", page: 1, pageSize: 5, totalItems: 10,
			want: Meta{Page: 1, PageSize: 5, TotalItems: 10, TotalPages: 2, HasNext: false, HasPrevious: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateMeta(tt.page, tt.pageSize, tt.totalItems))
		})
	}
}

func TestParamsNormalize(t *testing.T) {
	p := Params{Page: -3, PageSize: 0}.Normalize(50, 200)
	assert.Equal(t, Params{Page: 0, PageSize: 50}, p)

	p = Params{Page: 2, PageSize: 1000}.Normalize(50, 200)
	assert.Equal(t, Params{Page: 2, PageSize: 200}, p)

	assert.Equal(t, 400, p.Offset())
}
