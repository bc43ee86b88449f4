package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func seq(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i + 1
	}
	return s
}

func TestPaginate(t *testing.T) {
	items := seq(19)

	tests := []struct {
		name string
		page int
		want []int
	}{
		{"first page", 1, items[0:10]},
		{"last partial page", 2, items[10:19]},
		{"past the end", 3, []int{}},
		{"far past the end", 100, []int{}},
		{"zero", 0, []int{}},
		{"negative", -2, []int{}},
		{"overflowing page number", math.MaxInt, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Paginate(items, tt.page))
		})
	}
}

func TestPaginateMatchesSliceBounds(t *testing.T) {
	for n := 0; n <= 35; n++ {
		items := seq(n)
		for page := 1; page <= 5; page++ {
			start := min((page-1)*QuestionsPerPage, n)
			end := min(page*QuestionsPerPage, n)
			assert.Equal(t, items[start:end], Paginate(items, page), "n=%d page=%d", n, page)
		}
	}
}

func TestPaginateEmpty(t *testing.T) {
	got := Paginate([]string(nil), 1)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestParsePage(t *testing.T) {
	assert.Equal(t, 1, ParsePage(""))
	assert.Equal(t, 1, ParsePage("abc"))
	assert.Equal(t, 1, ParsePage("1.5"))
	assert.Equal(t, 3, ParsePage("3"))
	assert.Equal(t, -1, ParsePage("-1"))
}
