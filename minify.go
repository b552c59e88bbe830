package svgmin

// Minify applies DefaultOptions to data. See MinifyWithOptions.
func Minify(data []byte) ([]byte, error) {
	return MinifyWithOptions(data, DefaultOptions())
}

// MinifyWithOptions parses data as SVG, applies the enabled optimizer
// passes, and re-serializes the result. It is a pure function: the same
// bytes and options always produce the same output, and it holds no state
// across calls, so concurrent callers may invoke it with distinct arguments
// without synchronization.
//
// XmlParse, InvalidSvg, and Utf8 errors from the parser propagate to the
// caller. A malformed path "d" attribute does not: the optimizer leaves
// that one attribute untouched and minification continues.
func MinifyWithOptions(data []byte, opts Options) ([]byte, error) {
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, err
	}

	optimize(doc, opts)

	return SerializeDocument(doc, opts), nil
}
