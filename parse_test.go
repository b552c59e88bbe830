package svgmin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svgmin/svgmin"
)

func TestParseSimpleSVG(t *testing.T) {
	src := `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100">
    <rect x="10" y="10" width="80" height="80" fill="red"/>
</svg>`

	doc, err := svgmin.ParseDocument([]byte(src))
	require.NoError(t, err)

	require.NotNil(t, doc.XMLDeclaration)
	assert.Equal(t, "1.0", doc.XMLDeclaration.Version)
	assert.Equal(t, "UTF-8", doc.XMLDeclaration.Encoding)

	require.True(t, doc.Root.Is("svg"))
	assert.Equal(t, "100", doc.Root.Attr("width"))

	children := doc.Root.ChildElements()
	require.Len(t, children, 1)
	assert.True(t, children[0].Is("rect"))
	assert.Equal(t, "red", children[0].Attr("fill"))
}

func TestParseWithComments(t *testing.T) {
	src := `<svg xmlns="http://www.w3.org/2000/svg">
    <!-- This is a comment -->
    <rect/>
</svg>`

	doc, err := svgmin.ParseDocument([]byte(src))
	require.NoError(t, err)

	var comments int
	for _, c := range doc.Root.Children {
		if c.Kind == svgmin.CommentNode {
			comments++
		}
	}
	assert.Equal(t, 1, comments)
}

func TestParseNamespacedAttribute(t *testing.T) {
	src := `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink">
    <use xlink:href="#foo"/>
</svg>`

	doc, err := svgmin.ParseDocument([]byte(src))
	require.NoError(t, err)

	use := doc.Root.ChildElements()[0]
	require.True(t, use.Is("use"))

	var found bool
	for _, a := range use.Attributes {
		if a.Name.Prefix == "xlink" && a.Name.Local == "href" {
			found = true
			assert.Equal(t, "#foo", a.Value)
		}
	}
	assert.True(t, found)
}

func TestParseDiscardsPreRootContent(t *testing.T) {
	src := `<!-- leading --><?some-pi data?><svg xmlns="http://www.w3.org/2000/svg"/>`

	doc, err := svgmin.ParseDocument([]byte(src))
	require.NoError(t, err)
	assert.Empty(t, doc.Root.Children)
}

func TestParseDoctype(t *testing.T) {
	src := `<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">
<svg xmlns="http://www.w3.org/2000/svg"/>`

	doc, err := svgmin.ParseDocument([]byte(src))
	require.NoError(t, err)
	assert.True(t, doc.HasDoctype)
	assert.Equal(t, `svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd"`, doc.Doctype)
}

func TestParseCData(t *testing.T) {
	src := `<svg xmlns="http://www.w3.org/2000/svg"><style><![CDATA[.a { fill: red; }]]></style></svg>`

	doc, err := svgmin.ParseDocument([]byte(src))
	require.NoError(t, err)

	style := doc.Root.ChildElements()[0]
	require.Len(t, style.Children, 1)
	assert.Equal(t, svgmin.CDataNode, style.Children[0].Kind)
	assert.Equal(t, ".a { fill: red; }", style.Children[0].Text)
}

func TestParseWhitespaceOnlyTextDroppedBetweenElements(t *testing.T) {
	src := `<svg xmlns="http://www.w3.org/2000/svg">
  <rect/>
  <circle/>
</svg>`

	doc, err := svgmin.ParseDocument([]byte(src))
	require.NoError(t, err)

	for _, c := range doc.Root.Children {
		assert.NotEqual(t, svgmin.TextNode, c.Kind)
	}
}

func TestParseKeepsMixedContentText(t *testing.T) {
	src := `<svg xmlns="http://www.w3.org/2000/svg"><text>Hello <tspan>World</tspan></text></svg>`

	doc, err := svgmin.ParseDocument([]byte(src))
	require.NoError(t, err)

	text := doc.Root.ChildElements()[0]
	require.Len(t, text.Children, 2)
	assert.Equal(t, svgmin.TextNode, text.Children[0].Kind)
	assert.Equal(t, "Hello ", text.Children[0].Text)
}

func TestParseNoRootElementFails(t *testing.T) {
	_, err := svgmin.ParseDocument([]byte(`<!-- just a comment -->`))
	require.Error(t, err)
	assert.IsType(t, &svgmin.InvalidSVGError{}, err)
}

func TestParseUnexpectedEOFFails(t *testing.T) {
	_, err := svgmin.ParseDocument([]byte(`<svg xmlns="http://www.w3.org/2000/svg"><rect>`))
	require.Error(t, err)
}

func TestParseInvalidUTF8Fails(t *testing.T) {
	_, err := svgmin.ParseDocument([]byte{0xff, 0xfe, 0xfd})
	require.Error(t, err)
	assert.IsType(t, &svgmin.UTF8Error{}, err)
}
