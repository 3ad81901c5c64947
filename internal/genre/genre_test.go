package genre

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromCategories(t *testing.T) {
	tests := []struct {
		name       string
		categories []string
		want       string
	}{
		{"literary fiction", []string{"Literary Fiction"}, "fiction"},
		{"cooking", []string{"Cooking"}, "hobby"},
		{"computers", []string{"Computers"}, "tech"},
		{"business and economics", []string{"Business & Economics"}, "business"},
		{"history", []string{"History"}, "history"},
		{"self help", []string{"Self-Help"}, "philosophy"},
		{"only first label counts", []string{"Zzyzx", "Cooking"}, "other"},
		{"unrecognized", []string{"Zzyzx"}, "other"},
		{"empty", []string{}, "other"},
		{"nil", nil, "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromCategories(tt.categories))
		})
	}
}

func TestFromCategoriesFirstMatchWins(t *testing.T) {
	// "science fiction" contains both the "fiction" and the "science"
	// keywords; the fiction group is earlier in the table.
	assert.Equal(t, "fiction", FromCategories([]string{"Science Fiction"}))
}

func TestTaxonomy(t *testing.T) {
	list := List()
	assert.Len(t, list, 9)
	assert.Equal(t, "fiction", list[0].ID)
	assert.Equal(t, Other, list[len(list)-1].ID)

	for _, g := range list {
		assert.True(t, Valid(g.ID))
	}
	assert.False(t, Valid("unknown"))
	assert.False(t, Valid(""))
}
