package svgmin

import "strings"

// ExtractTextChars collects every rune appearing as direct text inside a
// <text>, <tspan>, or <textPath> element anywhere in doc. It is a pure,
// read-only analysis used by font-subsetting pipelines that need to know
// which glyphs an SVG actually uses before shipping a font.
func ExtractTextChars(doc *Document) map[rune]struct{} {
	chars := make(map[rune]struct{})

	var visit func(*Element)
	visit = func(e *Element) {
		if e.Is("text") || e.Is("tspan") || e.Is("textPath") {
			for _, c := range e.Children {
				if c.Kind == TextNode {
					for _, r := range c.Text {
						chars[r] = struct{}{}
					}
				}
			}
		}
		for _, child := range e.ChildElements() {
			visit(child)
		}
	}
	visit(doc.Root)

	return chars
}

// FontFace is one parsed @font-face declaration.
type FontFace struct {
	Family string
	URL    string
	Weight string
	Style  string

	HasWeight bool
	HasStyle  bool
}

// ExtractFontFaces scans every <style> element's text/CDATA body for
// @font-face rules and returns the ones that name both a font-family and a
// src url.
func ExtractFontFaces(doc *Document) []FontFace {
	var faces []FontFace

	var visit func(*Element)
	visit = func(e *Element) {
		if e.Is("style") {
			for _, c := range e.Children {
				if c.Kind == TextNode || c.Kind == CDataNode {
					faces = append(faces, parseFontFaces(c.Text)...)
				}
			}
		}
		for _, child := range e.ChildElements() {
			visit(child)
		}
	}
	visit(doc.Root)

	return faces
}

// ReplaceFontURL rewrites the first occurrence of url('oldURL'), url("oldURL"),
// or url(oldURL) found in any <style> body, replacing it with a
// single-quoted url(newURL). It mutates doc in place.
func ReplaceFontURL(doc *Document, oldURL, newURL string) {
	patterns := []string{
		"url('" + oldURL + "')",
		`url("` + oldURL + `")`,
		"url(" + oldURL + ")",
	}
	replacement := "url('" + newURL + "')"

	var visit func(*Element) bool
	visit = func(e *Element) bool {
		if e.Is("style") {
			for i := range e.Children {
				c := &e.Children[i]
				if c.Kind != TextNode && c.Kind != CDataNode {
					continue
				}
				for _, p := range patterns {
					if strings.Contains(c.Text, p) {
						c.Text = strings.Replace(c.Text, p, replacement, 1)
						return true
					}
				}
			}
		}
		for _, child := range e.ChildElements() {
			if visit(child) {
				return true
			}
		}
		return false
	}
	visit(doc.Root)
}

// parseFontFaces finds every brace-balanced @font-face block in css and
// parses the ones that resolve to a complete FontFace.
func parseFontFaces(css string) []FontFace {
	var faces []FontFace
	remaining := css

	for {
		start := strings.Index(remaining, "@font-face")
		if start < 0 {
			break
		}
		remaining = remaining[start+len("@font-face"):]

		braceStart := strings.IndexByte(remaining, '{')
		if braceStart < 0 {
			break
		}
		remaining = remaining[braceStart+1:]

		depth := 1
		blockEnd := -1
		for i, r := range remaining {
			switch r {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					blockEnd = i
				}
			}
			if blockEnd >= 0 {
				break
			}
		}
		if blockEnd < 0 {
			break
		}

		block := remaining[:blockEnd]
		remaining = remaining[blockEnd+1:]

		if face, ok := parseFontFaceBlock(block); ok {
			faces = append(faces, face)
		}
	}

	return faces
}

func parseFontFaceBlock(block string) (FontFace, bool) {
	var face FontFace
	var hasFamily, hasURL bool

	for _, decl := range strings.Split(block, ";") {
		decl = strings.TrimSpace(decl)
		switch {
		case strings.HasPrefix(decl, "font-family:"):
			face.Family = parseFontValue(strings.TrimPrefix(decl, "font-family:"))
			hasFamily = true
		case strings.HasPrefix(decl, "src:"):
			if url, ok := parseFontURL(strings.TrimPrefix(decl, "src:")); ok {
				face.URL = url
				hasURL = true
			}
		case strings.HasPrefix(decl, "font-weight:"):
			face.Weight = strings.TrimSpace(strings.TrimPrefix(decl, "font-weight:"))
			face.HasWeight = true
		case strings.HasPrefix(decl, "font-style:"):
			face.Style = strings.TrimSpace(strings.TrimPrefix(decl, "font-style:"))
			face.HasStyle = true
		}
	}

	if !hasFamily || !hasURL {
		return FontFace{}, false
	}
	return face, true
}

func parseFontValue(v string) string {
	v = strings.TrimSpace(v)
	if first, _, found := strings.Cut(v, ","); found {
		v = first
	}
	v = strings.TrimSpace(v)
	v = strings.Trim(v, `"`)
	v = strings.Trim(v, "'")
	return v
}

func parseFontURL(v string) (string, bool) {
	start := strings.Index(v, "url(")
	if start < 0 {
		return "", false
	}
	start += len("url(")
	end := strings.IndexByte(v[start:], ')')
	if end < 0 {
		return "", false
	}
	inner := strings.TrimSpace(v[start : start+end])
	inner = strings.Trim(inner, `"`)
	inner = strings.Trim(inner, "'")
	return inner, true
}
