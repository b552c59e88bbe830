package svgmin

import (
	"strconv"
	"strings"

	"github.com/svgmin/svgmin/internal/pathdata"
)

// containerElements are structural grouping elements whose presence alone
// produces no rendering.
var containerElements = map[string]bool{
	"g":        true,
	"defs":     true,
	"symbol":   true,
	"marker":   true,
	"clipPath": true,
	"mask":     true,
	"pattern":  true,
}

// groupCollapsibleAttrs are the attributes that, if present on a <g>, make
// the group meaningful enough to keep even when it has a single child.
var groupCollapsibleAttrs = map[string]bool{
	"class":     true,
	"style":     true,
	"transform": true,
	"fill":      true,
	"stroke":    true,
	"opacity":   true,
}

// optimize runs every enabled pass over doc.Root in the documented order.
// Reordering passes changes output and can break correctness: see the
// order-sensitivity notes carried in this package's tests.
func optimize(doc *Document, opts Options) {
	if opts.RemoveMetadata {
		removeMetadataPass(doc.Root)
	}
	if opts.RemoveUnusedNamespaces {
		removeUnusedNamespacesPass(doc.Root)
	}
	if opts.RemoveComments {
		removeCommentsPass(doc.Root)
	}
	if opts.RemoveHidden {
		removeHiddenPass(doc.Root)
	}
	if opts.RemoveEmpty {
		removeEmptyPass(doc.Root)
	}
	if opts.CollapseGroups {
		collapseGroupsPass(doc.Root)
	}
	if opts.MinifyPaths {
		minifyPathsPass(doc.Root, opts.Precision)
	}
	if opts.MinifyColors {
		minifyColorsPass(doc.Root)
	}
	if opts.RemoveDefaults {
		removeDefaultAttrsPass(doc.Root)
	}
	if opts.MinifyStyles {
		minifyStylesPass(doc.Root)
	}

	cleanupWhitespacePass(doc.Root)
}

// removeMetadataPass drops <metadata>/<title>/<desc>, any element or
// attribute whose prefix or full name begins with "sodipodi:"/"inkscape:",
// and the data-name attribute. Matching elements are removed whether or not
// they carry an id. The pass never strips id attributes themselves: the core
// does not track url(#id)/href="#id" references, so removing an id risks
// breaking a cross-reference it cannot see.
func removeMetadataPass(elem *Element) {
	kept := elem.Children[:0]
	for _, c := range elem.Children {
		if c.Kind == ElementNode && isMetadataElement(c.Element) {
			continue
		}
		kept = append(kept, c)
	}
	elem.Children = kept

	attrs := elem.Attributes[:0]
	for _, a := range elem.Attributes {
		full := a.Name.FullName()
		if strings.HasPrefix(full, "sodipodi:") || strings.HasPrefix(full, "inkscape:") {
			continue
		}
		if a.Name.Local == "data-name" {
			continue
		}
		attrs = append(attrs, a)
	}
	elem.Attributes = attrs

	for _, child := range elem.ChildElements() {
		removeMetadataPass(child)
	}
}

func isMetadataElement(e *Element) bool {
	switch e.Name.Local {
	case "metadata", "title", "desc":
		return true
	}
	full := e.Name.FullName()
	return strings.HasPrefix(full, "sodipodi:") || strings.HasPrefix(full, "inkscape:") ||
		e.Name.Prefix == "sodipodi" || e.Name.Prefix == "inkscape"
}

// removeUnusedNamespacesPass drops xmlns:P declarations whose prefix P is
// not used by any element or non-namespace-declaration attribute anywhere
// in the tree. The default namespace (bare xmlns) is always kept.
func removeUnusedNamespacesPass(root *Element) {
	used := map[string]bool{}
	collectUsedPrefixes(root, used)
	pruneNamespaceDecls(root, used)
}

func pruneNamespaceDecls(elem *Element, used map[string]bool) {
	attrs := elem.Attributes[:0]
	for _, a := range elem.Attributes {
		if a.Name.Local == "xmlns" && a.Name.Prefix == "" {
			attrs = append(attrs, a)
			continue
		}
		if a.Name.Prefix == "xmlns" {
			if used[a.Name.Local] {
				attrs = append(attrs, a)
			}
			continue
		}
		attrs = append(attrs, a)
	}
	elem.Attributes = attrs

	for _, child := range elem.ChildElements() {
		pruneNamespaceDecls(child, used)
	}
}

func collectUsedPrefixes(elem *Element, used map[string]bool) {
	if elem.Name.Prefix != "" {
		used[elem.Name.Prefix] = true
	}
	for _, a := range elem.Attributes {
		if a.Name.Prefix != "" && !a.Name.IsXMLNS() {
			used[a.Name.Prefix] = true
		}
	}
	for _, child := range elem.ChildElements() {
		collectUsedPrefixes(child, used)
	}
}

// removeCommentsPass drops every Comment node, recursively.
func removeCommentsPass(elem *Element) {
	kept := elem.Children[:0]
	for _, c := range elem.Children {
		if c.Kind != CommentNode {
			kept = append(kept, c)
		}
	}
	elem.Children = kept

	for _, child := range elem.ChildElements() {
		removeCommentsPass(child)
	}
}

// removeHiddenPass drops child elements for which isHidden holds,
// recursively.
func removeHiddenPass(elem *Element) {
	kept := elem.Children[:0]
	for _, c := range elem.Children {
		if c.Kind == ElementNode && isHidden(c.Element) {
			continue
		}
		kept = append(kept, c)
	}
	elem.Children = kept

	for _, child := range elem.ChildElements() {
		removeHiddenPass(child)
	}
}

func isHidden(elem *Element) bool {
	if elem.Attr("display") == "none" {
		return true
	}
	if elem.Attr("visibility") == "hidden" {
		return true
	}
	if opacity, ok := elem.GetAttr("opacity"); ok {
		if v, err := strconv.ParseFloat(strings.TrimSpace(opacity), 64); err == nil && v == 0 {
			return true
		}
	}
	if style, ok := elem.GetAttr("style"); ok {
		if strings.Contains(style, "display:none") || strings.Contains(style, "display: none") {
			return true
		}
	}
	return false
}

// removeEmptyPass drops container elements with no children and no id.
// Children are processed first (post-order) so that an inner container
// emptied by this same pass is already gone by the time its parent is
// judged.
func removeEmptyPass(elem *Element) {
	for _, child := range elem.ChildElements() {
		removeEmptyPass(child)
	}

	kept := elem.Children[:0]
	for _, c := range elem.Children {
		if c.Kind == ElementNode {
			e := c.Element
			if containerElements[e.Name.Local] && len(e.Children) == 0 && !e.HasAttr("id") {
				continue
			}
		}
		kept = append(kept, c)
	}
	elem.Children = kept
}

// collapseGroupsPass inlines a <g> in place of its children when the group
// carries no id, none of the dominant presentation attributes, and has
// exactly one child. Children are processed first (post-order) so a group
// nested inside another collapsible group is resolved innermost-first.
func collapseGroupsPass(elem *Element) {
	for _, child := range elem.ChildElements() {
		collapseGroupsPass(child)
	}

	var newChildren []Node
	for _, c := range elem.Children {
		if c.Kind == ElementNode && canCollapseGroup(c.Element) {
			newChildren = append(newChildren, c.Element.Children...)
		} else {
			newChildren = append(newChildren, c)
		}
	}
	elem.Children = newChildren
}

func canCollapseGroup(e *Element) bool {
	if e.Name.Local != "g" {
		return false
	}
	if e.HasAttr("id") {
		return false
	}
	for _, a := range e.Attributes {
		if groupCollapsibleAttrs[a.Name.Local] {
			return false
		}
	}
	return len(e.Children) == 1
}

// minifyPathsPass re-emits every <path> element's d attribute in its
// shortest round-tripping form. A path that fails to parse is left
// untouched: the grammar error is recovered here and never surfaces from
// Minify.
func minifyPathsPass(elem *Element, precision uint) {
	if elem.Name.Local == "path" {
		if d, ok := elem.GetAttr("d"); ok {
			if parsed, err := pathdata.Parse(d); err == nil {
				elem.SetAttr("d", pathdata.Serialize(parsed, precision))
			}
		}
	}

	for _, child := range elem.ChildElements() {
		minifyPathsPass(child, precision)
	}
}

// cleanupWhitespacePass drops Text nodes whose trimmed value is empty,
// recursively. This is the optimizer's second whitespace-elimination pass;
// the parser already performed a coarser first pass at tree-build time.
func cleanupWhitespacePass(elem *Element) {
	kept := elem.Children[:0]
	for _, c := range elem.Children {
		if c.Kind == TextNode && strings.TrimSpace(c.Text) == "" {
			continue
		}
		kept = append(kept, c)
	}
	elem.Children = kept

	for _, child := range elem.ChildElements() {
		cleanupWhitespacePass(child)
	}
}
