package svgmin

import (
	"fmt"
	"strconv"
	"strings"
)

// colorAttributes are the presentation attributes whose values name colors.
var colorAttributes = map[string]bool{
	"fill":           true,
	"stroke":         true,
	"stop-color":     true,
	"flood-color":    true,
	"lighting-color": true,
	"color":          true,
}

// styleColorProperties mirrors colorAttributes for declarations found inside
// a style="" attribute.
var styleColorProperties = colorAttributes

// minifyColor rewrites a single color value to its shortest equivalent form.
// Unrecognized values pass through unchanged, trimmed but otherwise intact.
func minifyColor(color string) string {
	trimmed := strings.TrimSpace(color)
	lower := strings.ToLower(trimmed)

	switch lower {
	case "white", "#ffffff", "#fff":
		return "#fff"
	case "black", "#000000", "#000":
		return "#000"
	case "#ff0000", "#f00":
		return "red"
	case "#0000ff", "#00f":
		return "blue"
	case "red", "blue":
		return lower
	}

	if r, g, b, ok := parseHex6(trimmed); ok {
		if r>>4 == r&0xf && g>>4 == g&0xf && b>>4 == b&0xf {
			return fmt.Sprintf("#%x%x%x", r&0xf, g&0xf, b&0xf)
		}
	}

	return trimmed
}

// parseHex6 parses a "#RRGGBB" string into its three channel bytes.
func parseHex6(s string) (r, g, b byte, ok bool) {
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0, false
	}
	hex := s[1:]
	rv, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return 0, 0, 0, false
	}
	gv, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return 0, 0, 0, false
	}
	bv, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return 0, 0, 0, false
	}
	return byte(rv), byte(gv), byte(bv), true
}

// minifyStyleColors rewrites color-valued declarations inside a style=""
// attribute, preserving declaration order and the ";"-joined form.
func minifyStyleColors(style string) string {
	var b strings.Builder
	for _, decl := range strings.Split(style, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}

		if b.Len() > 0 {
			b.WriteByte(';')
		}

		prop, value, hasColon := strings.Cut(decl, ":")
		if !hasColon {
			b.WriteString(decl)
			continue
		}

		prop = strings.TrimSpace(prop)
		value = strings.TrimSpace(value)
		b.WriteString(prop)
		b.WriteByte(':')
		if styleColorProperties[prop] {
			b.WriteString(minifyColor(value))
		} else {
			b.WriteString(value)
		}
	}
	return b.String()
}

// minifyColorsPass rewrites every color-valued presentation attribute and
// every color-valued style declaration under elem, recursively.
func minifyColorsPass(elem *Element) {
	for i := range elem.Attributes {
		if colorAttributes[elem.Attributes[i].Name.Local] {
			elem.Attributes[i].Value = minifyColor(elem.Attributes[i].Value)
		}
	}

	if style, ok := elem.GetAttr("style"); ok {
		elem.SetAttr("style", minifyStyleColors(style))
	}

	for _, child := range elem.ChildElements() {
		minifyColorsPass(child)
	}
}
