// Package svgmin minifies SVG documents.
//
// Given an SVG byte stream, Minify (or MinifyWithOptions) produces a
// semantically equivalent but byte-smaller SVG byte stream: unused
// namespaces are pruned, hidden and empty elements are dropped, colors and
// path data are re-encoded in their shortest form, and default attribute
// values are stripped. The transformation is a pure function of its input
// bytes and options — it touches no files, clocks, or global state, so it
// is safe to call from many goroutines at once.
package svgmin
