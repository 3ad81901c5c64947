package marketplace

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchURL(t *testing.T) {
	t.Run("isbn takes priority", func(t *testing.T) {
		got := SearchURL("Readable Code", "", "9784873115658")
		assert.Contains(t, got, "k=9784873115658")
		assert.NotContains(t, got, "Readable")
		assert.NotContains(t, got, "i=stripbooks")
	})

	t.Run("title and author", func(t *testing.T) {
		got := SearchURL("Foo", "Bar", "")
		assert.Contains(t, got, "k=Foo+Bar")
		assert.Contains(t, got, "i=stripbooks")
	})

	t.Run("title only", func(t *testing.T) {
		got := SearchURL("Foo", "", "")
		assert.Contains(t, got, "k=Foo")
		assert.Contains(t, got, "i=stripbooks")
	})

	t.Run("empty input gives no link", func(t *testing.T) {
		assert.Equal(t, "", SearchURL("", "", ""))
	})

	t.Run("query is percent encoded", func(t *testing.T) {
		got := SearchURL("吾輩は猫である", "夏目漱石", "")
		assert.True(t, strings.HasPrefix(got, "https://www.amazon.co.jp/s?k=%E5%90%BE"))
		assert.NotContains(t, got, "吾輩")
	})

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, SearchURL("Foo", "Bar", ""), SearchURL("Foo", "Bar", ""))
	})
}
