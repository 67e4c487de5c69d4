// file: internals/helpers/helpers_test.go
package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"sederhana", "Liga Futsal Kota", "liga-futsal-kota"},
		{"spasi ganda", "Tim   A", "tim-a"},
		{"simbol", "FC Barcelona (U-17)!", "fc-barcelona-u-17"},
		{"trim ujung", "  --Liga--  ", "liga"},
		{"angka", "Musim 2025/2026", "musim-2025-2026"},
		{"kosong", "   ", ""},
		{"hanya simbol", "***", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.in))
		})
	}
}

func TestCutToLen(t *testing.T) {
	assert.Equal(t, "abc", cutToLen("abc", 10))
	assert.Equal(t, "ab", cutToLen("abcde", 2))
	// potong tepat di dash → dash ujung ikut dibuang
	assert.Equal(t, "liga", cutToLen("liga-futsal", 5))
	assert.Equal(t, "abc", cutToLen("abc", 0))
}

func TestBuildPagination(t *testing.T) {
	p := Paging{Page: 2, PerPage: 10, Offset: 10, Limit: 10}

	pg := BuildPagination(35, 10, p)
	assert.Equal(t, int64(35), pg.Total)
	assert.Equal(t, 4, pg.TotalPages)
	assert.True(t, pg.HasNext)
	assert.True(t, pg.HasPrev)
	assert.Equal(t, 10, pg.Count)

	last := BuildPagination(35, 5, Paging{Page: 4, PerPage: 10})
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrev)

	empty := BuildPagination(0, 0, Paging{Page: 1, PerPage: 10})
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}
