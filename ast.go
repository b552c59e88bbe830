package svgmin

import "strings"

// QName is a qualified XML name: an optional namespace prefix plus a local
// name, e.g. "xlink:href" parses to Prefix="xlink", Local="href".
type QName struct {
	Prefix string
	Local  string
}

// ParseQName splits s on its first colon, if any.
func ParseQName(s string) QName {
	if prefix, local, ok := strings.Cut(s, ":"); ok {
		return QName{Prefix: prefix, Local: local}
	}
	return QName{Local: s}
}

// FullName reconstructs "prefix:local", or just "local" if there is no
// prefix.
func (q QName) FullName() string {
	if q.Prefix == "" {
		return q.Local
	}
	return q.Prefix + ":" + q.Local
}

// IsXMLNS reports whether q names a namespace declaration: either
// xmlns:prefix, or the bare default-namespace attribute xmlns.
func (q QName) IsXMLNS() bool {
	return q.Prefix == "xmlns" || (q.Prefix == "" && q.Local == "xmlns")
}

// Attribute is a qualified name plus its raw, unescaped string value.
type Attribute struct {
	Name  QName
	Value string
}

// NodeKind discriminates the variants of Node.
type NodeKind int

const (
	ElementNode NodeKind = iota
	TextNode
	CommentNode
	CDataNode
	ProcessingInstructionNode
)

// Node is a single node in the document tree. Exactly one of the fields
// below is meaningful, selected by Kind:
//
//	ElementNode               -> Element
//	TextNode, CommentNode,
//	CDataNode                 -> Text
//	ProcessingInstructionNode -> PITarget, PIContent
type Node struct {
	Kind    NodeKind
	Element *Element

	Text string

	PITarget  string
	PIContent string
	hasPICont bool
}

// NewElementNode wraps e as a Node.
func NewElementNode(e *Element) Node {
	return Node{Kind: ElementNode, Element: e}
}

// NewTextNode builds a text node.
func NewTextNode(text string) Node {
	return Node{Kind: TextNode, Text: text}
}

// NewCommentNode builds a comment node.
func NewCommentNode(text string) Node {
	return Node{Kind: CommentNode, Text: text}
}

// NewCDataNode builds a CDATA section node.
func NewCDataNode(text string) Node {
	return Node{Kind: CDataNode, Text: text}
}

// NewProcessingInstructionNode builds a processing-instruction node. An
// empty content string and "no content" are distinct: pass hasContent=false
// for a PI with no body at all.
func NewProcessingInstructionNode(target, content string, hasContent bool) Node {
	return Node{Kind: ProcessingInstructionNode, PITarget: target, PIContent: content, hasPICont: hasContent}
}

// PIHasContent reports whether the processing instruction carries a body
// distinct from an empty one.
func (n Node) PIHasContent() bool {
	return n.hasPICont
}

// Element is an XML element: a qualified name, an ordered attribute list,
// and an ordered child list. Child order is paint order and is always
// significant; attribute order is not.
type Element struct {
	Name       QName
	Attributes []Attribute
	Children   []Node
}

// NewElement builds a childless, attribute-less element named local.
func NewElement(local string) *Element {
	return &Element{Name: QName{Local: local}}
}

// Is reports whether the element's local name equals name, ignoring any
// namespace prefix.
func (e *Element) Is(name string) bool {
	return e.Name.Local == name
}

// GetAttr returns the value of the attribute with the given local name and
// whether it was present. Namespace prefix is ignored, matching the set
// semantics by local name the data model documents.
func (e *Element) GetAttr(local string) (string, bool) {
	for _, a := range e.Attributes {
		if a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// Attr returns the value of the attribute with the given local name, or ""
// if absent. Convenience wrapper around GetAttr for call sites that treat
// absence and empty-string the same way.
func (e *Element) Attr(local string) string {
	v, _ := e.GetAttr(local)
	return v
}

// HasAttr reports whether an attribute with the given local name is
// present.
func (e *Element) HasAttr(local string) bool {
	_, ok := e.GetAttr(local)
	return ok
}

// SetAttr sets the value of the attribute with the given local name,
// appending a new attribute (with no namespace prefix) if none exists yet.
func (e *Element) SetAttr(local, value string) {
	for i := range e.Attributes {
		if e.Attributes[i].Name.Local == local {
			e.Attributes[i].Value = value
			return
		}
	}
	e.Attributes = append(e.Attributes, Attribute{Name: QName{Local: local}, Value: value})
}

// RemoveAttr drops the attribute with the given local name, if present.
func (e *Element) RemoveAttr(local string) {
	kept := e.Attributes[:0]
	for _, a := range e.Attributes {
		if a.Name.Local != local {
			kept = append(kept, a)
		}
	}
	e.Attributes = kept
}

// ChildElements iterates over child nodes that are elements, skipping text,
// comments, CDATA, and processing instructions.
func (e *Element) ChildElements() []*Element {
	var out []*Element
	for i := range e.Children {
		if c := e.Children[i]; c.Kind == ElementNode {
			out = append(out, c.Element)
		}
	}
	return out
}

// Clone deep-copies the element and its entire subtree.
func (e *Element) Clone() *Element {
	if e == nil {
		return nil
	}
	clone := &Element{
		Name:       e.Name,
		Attributes: append([]Attribute(nil), e.Attributes...),
		Children:   make([]Node, len(e.Children)),
	}
	for i, c := range e.Children {
		if c.Kind == ElementNode {
			c.Element = c.Element.Clone()
		}
		clone.Children[i] = c
	}
	return clone
}

// Document is a parsed XML document: an optional declaration, an optional
// DOCTYPE body, and exactly one root element.
type Document struct {
	XMLDeclaration *XMLDeclaration
	Doctype        string
	HasDoctype     bool
	Root           *Element
}

// XMLDeclaration holds the contents of an <?xml ... ?> declaration.
type XMLDeclaration struct {
	Version    string
	Encoding   string
	HasEncoding bool
	Standalone  bool
	HasStandalone bool
}

// Walk recursively visits every element in the document in pre-order,
// allowing fn to mutate the element (but not reshape Children out from
// under the in-progress traversal — passes that reshape children do so via
// their own explicit move-out/move-back recursion, not this helper).
func (d *Document) Walk(fn func(*Element)) {
	var visit func(*Element)
	visit = func(e *Element) {
		fn(e)
		for _, c := range e.ChildElements() {
			visit(c)
		}
	}
	visit(d.Root)
}

// WalkReadOnly recursively visits every element in pre-order for read-only
// analysis passes.
func (d *Document) WalkReadOnly(fn func(*Element)) {
	d.Walk(fn)
}
