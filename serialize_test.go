package svgmin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svgmin/svgmin"
)

func TestSerializeSortsAttrsNamespacesFirst(t *testing.T) {
	doc := &svgmin.Document{
		Root: &svgmin.Element{
			Name: svgmin.QName{Local: "svg"},
			Attributes: []svgmin.Attribute{
				{Name: svgmin.QName{Local: "width"}, Value: "10"},
				{Name: svgmin.QName{Prefix: "xmlns", Local: "xlink"}, Value: "http://www.w3.org/1999/xlink"},
				{Name: svgmin.QName{Local: "xmlns"}, Value: "http://www.w3.org/2000/svg"},
				{Name: svgmin.QName{Local: "height"}, Value: "5"},
			},
		},
	}

	out := svgmin.SerializeDocument(doc, svgmin.DefaultOptions())
	assert.Equal(t,
		`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" height="5" width="10"/>`,
		string(out))
}

func TestSerializeEscapesAttributeValues(t *testing.T) {
	doc := &svgmin.Document{
		Root: &svgmin.Element{
			Name: svgmin.QName{Local: "svg"},
			Attributes: []svgmin.Attribute{
				{Name: svgmin.QName{Local: "title"}, Value: `a "quoted" <tag> & more`},
			},
		},
	}

	out := svgmin.SerializeDocument(doc, svgmin.DefaultOptions())
	assert.Equal(t, `<svg title="a &quot;quoted&quot; &lt;tag&gt; &amp; more"/>`, string(out))
}

func TestSerializeSelfClosesEmptyElement(t *testing.T) {
	doc := &svgmin.Document{Root: svgmin.NewElement("svg")}
	out := svgmin.SerializeDocument(doc, svgmin.DefaultOptions())
	assert.Equal(t, `<svg/>`, string(out))
}

func TestSerializeSuppressesDeclarationAndDoctypeByDefault(t *testing.T) {
	src := `<?xml version="1.0" encoding="UTF-8"?><!DOCTYPE svg><svg xmlns="http://www.w3.org/2000/svg"/>`
	out, err := svgmin.Minify([]byte(src))
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<?xml")
	assert.NotContains(t, string(out), "<!DOCTYPE")
}

func TestSerializeEmitsDeclarationAndDoctypeWhenKept(t *testing.T) {
	src := `<?xml version="1.0" encoding="UTF-8"?><!DOCTYPE svg><svg xmlns="http://www.w3.org/2000/svg"/>`
	opts := svgmin.DefaultOptions()
	opts.RemoveXMLDeclaration = false
	opts.RemoveDoctype = false
	out, err := svgmin.MinifyWithOptions([]byte(src), opts)
	require.NoError(t, err)
	assert.Contains(t, string(out), `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, string(out), "<!DOCTYPE svg>")
}

func TestSerializeCDataVerbatim(t *testing.T) {
	doc := &svgmin.Document{
		Root: &svgmin.Element{
			Name: svgmin.QName{Local: "style"},
			Children: []svgmin.Node{
				svgmin.NewCDataNode(".a { fill: red; }"),
			},
		},
	}
	out := svgmin.SerializeDocument(doc, svgmin.DefaultOptions())
	assert.Equal(t, `<style><![CDATA[.a { fill: red; }]]></style>`, string(out))
}
