package svgmin

import (
	"bytes"
	"encoding/xml"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/svgmin/svgmin/internal/stack"
)

// ParseDocument parses UTF-8 XML bytes into a Document tree. It uses the
// same xml.Decoder.RawToken primitive ucarion-c14n's canonicalizer uses,
// which reports prefixes exactly as written rather than resolving them
// against declared namespace URIs — the right primitive here, since QName
// tracks prefixes verbatim.
func ParseDocument(data []byte) (*Document, error) {
	if !utf8.Valid(data) {
		return nil, &UTF8Error{Detail: "input is not valid UTF-8"}
	}

	dec := xml.NewDecoder(bytes.NewReader(data))

	doc := &Document{}
	var open stack.Stack[*Element]
	var root *Element

	for {
		start := dec.InputOffset()
		tok, err := dec.RawToken()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, &XMLParseError{Detail: err.Error(), Err: err}
		}

		switch t := tok.(type) {
		case xml.ProcInst:
			if t.Target == "xml" {
				doc.XMLDeclaration = parseXMLDeclaration(t.Inst)
				continue
			}
			if open.Empty() {
				continue
			}
			parent, _ := open.Peek()
			content := string(t.Inst)
			parent.Children = append(parent.Children,
				NewProcessingInstructionNode(t.Target, content, len(t.Inst) > 0))

		case xml.Directive:
			doc.Doctype = doctypeBody(t)
			doc.HasDoctype = true

		case xml.Comment:
			if open.Empty() {
				continue
			}
			parent, _ := open.Peek()
			parent.Children = append(parent.Children, NewCommentNode(string(t)))

		case xml.CharData:
			if open.Empty() {
				continue
			}
			parent, _ := open.Peek()
			raw := data[start:dec.InputOffset()]
			if bytes.HasPrefix(raw, []byte("<![CDATA[")) {
				parent.Children = append(parent.Children, NewCDataNode(string(t)))
				continue
			}
			text := string(t)
			if strings.TrimSpace(text) == "" && len(parent.Children) == 0 {
				continue
			}
			parent.Children = append(parent.Children, NewTextNode(text))

		case xml.StartElement:
			el := &Element{Name: QName{Prefix: t.Name.Space, Local: t.Name.Local}}
			for _, a := range t.Attr {
				el.Attributes = append(el.Attributes, Attribute{
					Name:  QName{Prefix: a.Name.Space, Local: a.Name.Local},
					Value: a.Value,
				})
			}

			if open.Empty() {
				if root != nil {
					return nil, &InvalidSVGError{Detail: "multiple root elements"}
				}
				root = el
			} else {
				parent, _ := open.Peek()
				parent.Children = append(parent.Children, NewElementNode(el))
			}
			open.Push(el)

		case xml.EndElement:
			if open.Empty() {
				return nil, &InvalidSVGError{Detail: "unexpected end tag </" + t.Name.Local + ">"}
			}
			open.Pop()
		}
	}

	if !open.Empty() {
		return nil, &InvalidSVGError{Detail: "unexpected end of file"}
	}
	if root == nil {
		return nil, &InvalidSVGError{Detail: "no root element found"}
	}

	doc.Root = root
	return doc, nil
}

var xmlDeclAttrRe = regexp.MustCompile(`(\w+)\s*=\s*"([^"]*)"`)

// parseXMLDeclaration extracts version/encoding/standalone out of the raw
// instruction bytes of an <?xml ...?> processing instruction.
func parseXMLDeclaration(inst []byte) *XMLDeclaration {
	decl := &XMLDeclaration{}
	for _, m := range xmlDeclAttrRe.FindAllSubmatch(inst, -1) {
		key, val := string(m[1]), string(m[2])
		switch key {
		case "version":
			decl.Version = val
		case "encoding":
			decl.Encoding = val
			decl.HasEncoding = true
		case "standalone":
			decl.Standalone = val == "yes"
			decl.HasStandalone = true
		}
	}
	return decl
}

// doctypeBody strips the leading "DOCTYPE" keyword from a raw xml.Directive,
// leaving the body the serializer re-wraps as "<!DOCTYPE " + body + ">".
func doctypeBody(d xml.Directive) string {
	s := strings.TrimSpace(string(d))
	if len(s) >= 7 && strings.EqualFold(s[:7], "DOCTYPE") {
		s = strings.TrimSpace(s[7:])
	}
	return s
}
