package svgmin

// defaultAttrKey identifies one (attribute, value) default, scoped to a
// specific element's local name or to any element via the empty string.
type defaultAttrKey struct {
	element string // "" means any element
	attr    string
	value   string
}

// defaultAttrValues is the exact table of (element, attribute, value)
// triples that a renderer assumes when the attribute is absent, so emitting
// them explicitly is redundant.
var defaultAttrValues = map[defaultAttrKey]bool{
	{"", "version", "1.1"}:                  true,
	{"", "baseProfile", "full"}:              true,
	{"", "preserveAspectRatio", "xMidYMid meet"}: true,

	{"", "fill-opacity", "1"}:        true,
	{"", "stroke-opacity", "1"}:      true,
	{"", "opacity", "1"}:             true,
	{"", "stroke-width", "1"}:        true,
	{"", "stroke-linecap", "butt"}:   true,
	{"", "stroke-linejoin", "miter"}: true,
	{"", "stroke-miterlimit", "4"}:   true,
	{"", "fill-rule", "nonzero"}:     true,
	{"", "clip-rule", "nonzero"}:     true,
	{"", "font-style", "normal"}:     true,
	{"", "font-weight", "normal"}:    true,
	{"", "font-weight", "400"}:       true,
	{"", "text-anchor", "start"}:     true,
	{"", "dominant-baseline", "auto"}: true,
	{"", "visibility", "visible"}:    true,
	{"", "display", "inline"}:        true,
	{"", "overflow", "visible"}:      true,

	{"rect", "rx", "0"}: true,
	{"rect", "ry", "0"}: true,

	{"circle", "cx", "0"}: true,
	{"circle", "cy", "0"}: true,

	{"ellipse", "cx", "0"}: true,
	{"ellipse", "cy", "0"}: true,

	{"line", "x1", "0"}: true,
	{"line", "y1", "0"}: true,
	{"line", "x2", "0"}: true,
	{"line", "y2", "0"}: true,
}

// isDefaultAttrValue reports whether (element, attr, value) is a documented
// SVG default, checked first against the element-scoped table and then
// against the any-element table.
func isDefaultAttrValue(element, attr, value string) bool {
	return defaultAttrValues[defaultAttrKey{element, attr, value}] ||
		defaultAttrValues[defaultAttrKey{"", attr, value}]
}

// defaultStyleValues is the property-scoped subset of defaultAttrValues that
// also applies to declarations inside a style="" attribute.
var defaultStyleValues = map[[2]string]bool{
	{"fill-opacity", "1"}:   true,
	{"stroke-opacity", "1"}: true,
	{"opacity", "1"}:        true,
	{"stroke-width", "1"}:   true,
	{"font-style", "normal"}: true,
	{"font-weight", "normal"}: true,
	{"font-weight", "400"}:   true,
}

func isDefaultStyleValue(prop, value string) bool {
	return defaultStyleValues[[2]string{prop, value}]
}

// removeDefaultAttrsPass drops attributes whose value equals a documented
// default for elem's local name, recursively.
func removeDefaultAttrsPass(elem *Element) {
	kept := elem.Attributes[:0]
	for _, a := range elem.Attributes {
		if !isDefaultAttrValue(elem.Name.Local, a.Name.Local, a.Value) {
			kept = append(kept, a)
		}
	}
	elem.Attributes = kept

	for _, child := range elem.ChildElements() {
		removeDefaultAttrsPass(child)
	}
}
