package svgmin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svgmin/svgmin"
)

func TestExtractTextChars(t *testing.T) {
	src := `<svg xmlns="http://www.w3.org/2000/svg">
		<text>Hello</text>
		<text><tspan>World</tspan></text>
	</svg>`

	doc, err := svgmin.ParseDocument([]byte(src))
	require.NoError(t, err)

	chars := svgmin.ExtractTextChars(doc)
	_, hasH := chars['H']
	_, hasW := chars['W']
	_, hasX := chars['X']
	assert.True(t, hasH)
	assert.True(t, hasW)
	assert.False(t, hasX)
}

func TestExtractFontFaces(t *testing.T) {
	src := `<svg xmlns="http://www.w3.org/2000/svg">
		<style>
			@font-face {
				font-family: 'Iosevka';
				src: url('fonts/Iosevka.woff2');
				font-weight: bold;
			}
		</style>
	</svg>`

	doc, err := svgmin.ParseDocument([]byte(src))
	require.NoError(t, err)

	faces := svgmin.ExtractFontFaces(doc)
	require.Len(t, faces, 1)
	assert.Equal(t, "Iosevka", faces[0].Family)
	assert.Equal(t, "fonts/Iosevka.woff2", faces[0].URL)
	assert.True(t, faces[0].HasWeight)
	assert.Equal(t, "bold", faces[0].Weight)
}

func TestExtractFontFacesMultiple(t *testing.T) {
	src := `<svg xmlns="http://www.w3.org/2000/svg"><style>
		@font-face { font-family: 'A'; src: url(a.woff2); }
		@font-face { font-family: "B"; src: url("b.woff2"); font-style: italic; }
	</style></svg>`

	doc, err := svgmin.ParseDocument([]byte(src))
	require.NoError(t, err)

	faces := svgmin.ExtractFontFaces(doc)
	require.Len(t, faces, 2)
	assert.Equal(t, "A", faces[0].Family)
	assert.Equal(t, "a.woff2", faces[0].URL)
	assert.Equal(t, "B", faces[1].Family)
	assert.Equal(t, "b.woff2", faces[1].URL)
	assert.True(t, faces[1].HasStyle)
}

func TestReplaceFontURL(t *testing.T) {
	src := `<svg xmlns="http://www.w3.org/2000/svg"><style>@font-face { font-family: 'Test'; src: url('old.woff2'); }</style></svg>`

	doc, err := svgmin.ParseDocument([]byte(src))
	require.NoError(t, err)

	faces := svgmin.ExtractFontFaces(doc)
	require.Len(t, faces, 1)
	assert.Equal(t, "old.woff2", faces[0].URL)

	svgmin.ReplaceFontURL(doc, "old.woff2", "new.woff2")

	faces = svgmin.ExtractFontFaces(doc)
	require.Len(t, faces, 1)
	assert.Equal(t, "new.woff2", faces[0].URL)
}

func TestExtractFontFacesIncompleteBlockIgnored(t *testing.T) {
	src := `<svg xmlns="http://www.w3.org/2000/svg"><style>@font-face { font-family: 'NoSrc'; }</style></svg>`

	doc, err := svgmin.ParseDocument([]byte(src))
	require.NoError(t, err)

	faces := svgmin.ExtractFontFaces(doc)
	assert.Empty(t, faces)
}
