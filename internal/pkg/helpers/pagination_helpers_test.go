package helpers_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/emre/uniportal/internal/app/models/dto"
	"github.com/emre/uniportal/internal/pkg/helpers"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantOffset uint64
		wantLimit  int
	}{
		{name: "first page", page: 1, size: 20, wantOffset: 0, wantLimit: 20},
		{name: "third page", page: 3, size: 10, wantOffset: 20, wantLimit: 10},
		{name: "zero page clamps to first", page: 0, size: 10, wantOffset: 0, wantLimit: 10},
		{name: "zero size falls back to default", page: 2, size: 0, wantOffset: 20, wantLimit: helpers.DefaultPageSize},
		{name: "oversized page size falls back to default", page: 1, size: 500, wantOffset: 0, wantLimit: helpers.DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)

			offset, limit := helpers.CalculateOffsetLimit(tt.page, tt.size)
			c.Assert(offset, qt.Equals, tt.wantOffset)
			c.Assert(limit, qt.Equals, tt.wantLimit)
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	tests := []struct {
		name       string
		totalItems int64
		page, size int
		want       dto.PaginationInfo
	}{
		{
			name:       "exact pages",
			totalItems: 40, page: 1, size: 20,
			want: dto.PaginationInfo{CurrentPage: 1, TotalPages: 2, PageSize: 20, TotalItems: 40},
		},
		{
			name:       "partial last page",
			totalItems: 45, page: 3, size: 20,
			want: dto.PaginationInfo{CurrentPage: 3, TotalPages: 3, PageSize: 20, TotalItems: 45},
		},
		{
			name:       "page beyond range clamps",
			totalItems: 10, page: 5, size: 20,
			want: dto.PaginationInfo{CurrentPage: 1, TotalPages: 1, PageSize: 20, TotalItems: 10},
		},
		{
			name:       "no items still shows one page",
			totalItems: 0, page: 1, size: 20,
			want: dto.PaginationInfo{CurrentPage: 1, TotalPages: 1, PageSize: 20, TotalItems: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)
			c.Assert(helpers.NewPaginationInfo(tt.totalItems, tt.page, tt.size), qt.DeepEquals, tt.want)
		})
	}
}
