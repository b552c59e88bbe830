// Package attrsort implements the serializer's deterministic attribute
// ordering: namespace declarations first, then lexicographic by full name.
//
// It is a generalization of ucarion-c14n's SortAttr type, which
// additionally resolved prefixes to namespace URIs via a scope stack —
// the format's ordering rule needs no such resolution, so the type here
// works over plain name/flag pairs instead of xml.Attr.
package attrsort

import "sort"

// Key carries the sort-relevant facts about one attribute: its fully
// qualified name and whether it is itself a namespace declaration.
type Key struct {
	FullName string
	IsXMLNS  bool
}

// Order returns a permutation of 0..len(keys)-1 that, applied to the
// original slice keys was built from, places namespace declarations first
// and otherwise sorts lexicographically by full name. The sort is stable,
// so attributes that compare equal (same full name, which the data model
// otherwise forbids within one element) keep their relative order.
func Order(keys []Key) []int {
	idx := make([]int, len(keys))
	for i := range idx {
		idx[i] = i
	}

	sort.SliceStable(idx, func(i, j int) bool {
		a, b := keys[idx[i]], keys[idx[j]]
		if a.IsXMLNS != b.IsXMLNS {
			return a.IsXMLNS
		}
		return a.FullName < b.FullName
	})

	return idx
}
