package svgmin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svgmin/svgmin"
)

func TestRemoveUnusedNamespacesDropsUnreferencedPrefix(t *testing.T) {
	src := `<svg xmlns="http://www.w3.org/2000/svg" xmlns:unused="http://example.com/unused" xmlns:xlink="http://www.w3.org/1999/xlink"><use xlink:href="#a"/></svg>`
	out, err := svgmin.Minify([]byte(src))
	require.NoError(t, err)
	assert.NotContains(t, string(out), "unused")
	assert.Contains(t, string(out), "xlink:href")
}

func TestRemoveUnusedNamespacesKeepsDefaultNamespace(t *testing.T) {
	src := `<svg xmlns="http://www.w3.org/2000/svg"><rect/></svg>`
	out, err := svgmin.Minify([]byte(src))
	require.NoError(t, err)
	assert.Contains(t, string(out), `xmlns="http://www.w3.org/2000/svg"`)
}

func TestCollapseGroupsInlinesSingleChildPlainGroup(t *testing.T) {
	src := `<svg xmlns="http://www.w3.org/2000/svg"><g><rect/></g></svg>`
	out, err := svgmin.Minify([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, `<svg xmlns="http://www.w3.org/2000/svg"><rect/></svg>`, string(out))
}

func TestCollapseGroupsKeepsGroupWithID(t *testing.T) {
	src := `<svg xmlns="http://www.w3.org/2000/svg"><g id="layer"><rect/></g></svg>`
	out, err := svgmin.Minify([]byte(src))
	require.NoError(t, err)
	assert.Contains(t, string(out), `<g id="layer">`)
}

func TestCollapseGroupsKeepsGroupWithTransform(t *testing.T) {
	src := `<svg xmlns="http://www.w3.org/2000/svg"><g transform="translate(1 1)"><rect/></g></svg>`
	out, err := svgmin.Minify([]byte(src))
	require.NoError(t, err)
	assert.Contains(t, string(out), "transform=")
}

func TestCollapseGroupsKeepsMultiChildGroup(t *testing.T) {
	src := `<svg xmlns="http://www.w3.org/2000/svg"><g><rect/><circle/></g></svg>`
	out, err := svgmin.Minify([]byte(src))
	require.NoError(t, err)
	assert.Contains(t, string(out), "<g>")
}

func TestRemoveEmptyDropsEmptyContainerWithoutID(t *testing.T) {
	src := `<svg xmlns="http://www.w3.org/2000/svg"><defs></defs></svg>`
	out, err := svgmin.Minify([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, `<svg xmlns="http://www.w3.org/2000/svg"/>`, string(out))
}

func TestRemoveEmptyOrderBeforeCollapseGroups(t *testing.T) {
	// The inner group becomes empty once its empty <defs> is pruned, so
	// remove_empty drops it and the outer group is left with a single child
	// that collapse_groups then inlines. With the two passes swapped, the
	// inner group would be inlined first, the outer group would still hold
	// two children, and a <g> would survive in the output.
	src := `<svg xmlns="http://www.w3.org/2000/svg"><g><g><defs></defs></g><rect/></g></svg>`
	out, err := svgmin.Minify([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, `<svg xmlns="http://www.w3.org/2000/svg"><rect/></svg>`, string(out))
}

func TestRemoveHiddenByDisplayNone(t *testing.T) {
	src := `<svg xmlns="http://www.w3.org/2000/svg"><rect display="none"/><rect/></svg>`
	out, err := svgmin.Minify([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, 1, countOccurrences(string(out), "<rect"))
}

func TestRemoveHiddenByStyleDisplayNone(t *testing.T) {
	src := `<svg xmlns="http://www.w3.org/2000/svg"><rect style="display:none"/></svg>`
	out, err := svgmin.Minify([]byte(src))
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<rect")
}

func TestRemoveHiddenByZeroOpacity(t *testing.T) {
	src := `<svg xmlns="http://www.w3.org/2000/svg"><rect opacity="0"/></svg>`
	out, err := svgmin.Minify([]byte(src))
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<rect")
}

func TestRemoveHiddenBeforeCollapseGroupsAvoidsLeakingChildren(t *testing.T) {
	// Swapping remove_hidden after collapse_groups would inline the
	// children of a hidden group before the group itself is dropped.
	src := `<svg xmlns="http://www.w3.org/2000/svg"><g display="none"><rect/></g></svg>`
	out, err := svgmin.Minify([]byte(src))
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<rect")
}

func countOccurrences(s, substr string) int {
	count := 0
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			count++
		}
	}
	return count
}
