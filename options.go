package svgmin

// Options controls which optimizer passes run and how the path engine
// formats numbers. DefaultOptions enables every pass except the reserved,
// unimplemented MergePaths.
type Options struct {
	// Precision is the number of fractional digits kept when re-emitting
	// path coordinates.
	Precision uint

	RemoveComments          bool
	RemoveMetadata          bool
	RemoveXMLDeclaration    bool
	RemoveDoctype           bool
	RemoveUnusedNamespaces  bool
	CollapseGroups          bool
	RemoveHidden            bool
	RemoveEmpty             bool
	MinifyColors            bool
	RemoveDefaults          bool
	MinifyPaths             bool
	MinifyStyles            bool

	// MergePaths is reserved and has no effect: merging adjacent <path>
	// siblings needs matrix-preserving transform reasoning this package
	// does not implement.
	MergePaths bool

	SortAttrs bool
}

// DefaultOptions returns the default option set: every pass on except
// MergePaths, precision 2.
func DefaultOptions() Options {
	return Options{
		Precision:              2,
		RemoveComments:         true,
		RemoveMetadata:         true,
		RemoveXMLDeclaration:   true,
		RemoveDoctype:          true,
		RemoveUnusedNamespaces: true,
		CollapseGroups:         true,
		RemoveHidden:           true,
		RemoveEmpty:            true,
		MinifyColors:           true,
		RemoveDefaults:         true,
		MinifyPaths:            true,
		MinifyStyles:           true,
		MergePaths:             false,
		SortAttrs:              true,
	}
}
