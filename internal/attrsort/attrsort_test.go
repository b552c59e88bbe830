package attrsort_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/svgmin/svgmin/internal/attrsort"
)

func TestOrderNamespacesFirst(t *testing.T) {
	keys := []attrsort.Key{
		{FullName: "width", IsXMLNS: false},
		{FullName: "xmlns:xlink", IsXMLNS: true},
		{FullName: "fill", IsXMLNS: false},
	}

	order := attrsort.Order(keys)
	assert.Equal(t, []int{1, 2, 0}, order)
}

func TestOrderLexicographicWithinGroup(t *testing.T) {
	keys := []attrsort.Key{
		{FullName: "stroke"},
		{FullName: "fill"},
		{FullName: "d"},
	}

	order := attrsort.Order(keys)
	assert.Equal(t, []int{2, 1, 0}, order)
}

func TestOrderStableOnTies(t *testing.T) {
	keys := []attrsort.Key{
		{FullName: "xmlns:a", IsXMLNS: true},
		{FullName: "xmlns", IsXMLNS: true},
		{FullName: "xmlns:a", IsXMLNS: true},
	}

	order := attrsort.Order(keys)
	assert.Equal(t, []int{1, 0, 2}, order)
}
