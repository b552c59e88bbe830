package svgmin

import "strings"

// minifyStyle parses style as ";"-separated "prop:value" declarations,
// drops any declaration whose value is a documented style default, and
// rejoins what remains with ";". It does not understand CSS quoting or
// comments; a ";" inside a quoted value splits the declaration.
func minifyStyle(style string) string {
	var parts []string

	for _, decl := range strings.Split(style, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}

		prop, value, hasColon := strings.Cut(decl, ":")
		if !hasColon {
			continue
		}

		prop = strings.TrimSpace(prop)
		value = strings.TrimSpace(value)
		if isDefaultStyleValue(prop, value) {
			continue
		}

		parts = append(parts, prop+":"+value)
	}

	return strings.Join(parts, ";")
}

// minifyStylesPass minifies elem's style attribute, removing it entirely if
// nothing survives, recursively.
func minifyStylesPass(elem *Element) {
	if style, ok := elem.GetAttr("style"); ok {
		minified := minifyStyle(style)
		if minified == "" {
			elem.RemoveAttr("style")
		} else {
			elem.SetAttr("style", minified)
		}
	}

	for _, child := range elem.ChildElements() {
		minifyStylesPass(child)
	}
}
