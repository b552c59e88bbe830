package svgmin

import (
	"strings"

	"github.com/svgmin/svgmin/internal/attrsort"
)

// SerializeDocument renders doc as a minified XML byte stream: no
// pretty-printing, no inserted whitespace beyond what a text node already
// carried before trimming.
func SerializeDocument(doc *Document, opts Options) []byte {
	var b strings.Builder

	if !opts.RemoveXMLDeclaration && doc.XMLDeclaration != nil {
		writeXMLDeclaration(&b, doc.XMLDeclaration)
	}

	if !opts.RemoveDoctype && doc.HasDoctype {
		b.WriteString("<!DOCTYPE ")
		b.WriteString(doc.Doctype)
		b.WriteByte('>')
	}

	writeElement(&b, doc.Root, opts)

	return []byte(b.String())
}

func writeXMLDeclaration(b *strings.Builder, decl *XMLDeclaration) {
	b.WriteString(`<?xml version="`)
	b.WriteString(decl.Version)
	b.WriteByte('"')
	if decl.HasEncoding {
		b.WriteString(` encoding="`)
		b.WriteString(decl.Encoding)
		b.WriteByte('"')
	}
	if decl.HasStandalone {
		b.WriteString(` standalone="`)
		if decl.Standalone {
			b.WriteString("yes")
		} else {
			b.WriteString("no")
		}
		b.WriteByte('"')
	}
	b.WriteString("?>")
}

func writeElement(b *strings.Builder, e *Element, opts Options) {
	b.WriteByte('<')
	b.WriteString(e.Name.FullName())

	for _, a := range orderedAttributes(e, opts) {
		b.WriteByte(' ')
		b.WriteString(a.Name.FullName())
		b.WriteString(`="`)
		writeEscapedAttrValue(b, a.Value)
		b.WriteByte('"')
	}

	if len(e.Children) == 0 {
		b.WriteString("/>")
		return
	}

	b.WriteByte('>')
	for _, c := range e.Children {
		writeNode(b, c, opts)
	}
	b.WriteString("</")
	b.WriteString(e.Name.FullName())
	b.WriteByte('>')
}

// orderedAttributes returns e's attributes in output order: unchanged when
// SortAttrs is off, otherwise namespace declarations first and then
// lexicographic by full name, via internal/attrsort.
func orderedAttributes(e *Element, opts Options) []Attribute {
	if !opts.SortAttrs || len(e.Attributes) < 2 {
		return e.Attributes
	}

	keys := make([]attrsort.Key, len(e.Attributes))
	for i, a := range e.Attributes {
		keys[i] = attrsort.Key{FullName: a.Name.FullName(), IsXMLNS: a.Name.IsXMLNS()}
	}

	order := attrsort.Order(keys)
	out := make([]Attribute, len(e.Attributes))
	for i, idx := range order {
		out[i] = e.Attributes[idx]
	}
	return out
}

func writeNode(b *strings.Builder, n Node, opts Options) {
	switch n.Kind {
	case ElementNode:
		writeElement(b, n.Element, opts)
	case TextNode:
		trimmed := strings.TrimSpace(n.Text)
		if trimmed != "" {
			writeEscapedText(b, trimmed)
		}
	case CommentNode:
		if !opts.RemoveComments {
			b.WriteString("<!--")
			b.WriteString(n.Text)
			b.WriteString("-->")
		}
	case CDataNode:
		b.WriteString("<![CDATA[")
		b.WriteString(n.Text)
		b.WriteString("]]>")
	case ProcessingInstructionNode:
		b.WriteString("<?")
		b.WriteString(n.PITarget)
		if n.PIHasContent() {
			b.WriteByte(' ')
			b.WriteString(n.PIContent)
		}
		b.WriteString("?>")
	}
}

func writeEscapedAttrValue(b *strings.Builder, s string) {
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString("&quot;")
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		default:
			b.WriteRune(r)
		}
	}
}

func writeEscapedText(b *strings.Builder, s string) {
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		default:
			b.WriteRune(r)
		}
	}
}
