package relver

import (
	"fmt"
	"sort"
)

// SortMode controls output ordering.
type SortMode uint8

const (
	// SortNone preserves the existing order.
	SortNone SortMode = iota
	// SortAsc sorts ascending by semver precedence (fallback to lexicographic).
	SortAsc
	// SortDesc sorts descending by semver precedence (fallback to lexicographic).
	SortDesc
)

// String returns a stable textual representation for SortMode.
func (m SortMode) String() string {
	switch m {
	case SortAsc:
		return "ascending"
	case SortDesc:
		return "descending"
	default:
		return "none"
	}
}

// ParseSort maps strings to SortMode.
// Supported aliases:
//
//	asc:  "asc","ascending","inc","increase","up"
//	desc: "desc","descending","dec","decrease","down"
//	none: "none","default","asis"
func ParseSort(s string) SortMode {
	switch toTok(s) {
	// ascending (low -> high)
	case "asc", "ascending", "inc", "increase", "up":
		return SortAsc

	// descending (high -> low)
	case "desc", "descending", "dec", "decrease", "down":
		return SortDesc

	// as is
	case "none", "default", "asis":
		return SortNone

	default:
		return SortNone
	}
}

// Sort orders versions by semver precedence when possible, otherwise falls
// back to lexicographic sort. The fallback is all-or-nothing: a single
// element that fails the relaxed parse switches the WHOLE collection to
// plain string ordering. Original strings are returned in the new order;
// nothing is re-rendered. The sort is stable.
func Sort(in []string, mode SortMode) []string {
	if mode == SortNone || len(in) < 2 {
		return in
	}

	type item struct {
		v    *Version
		orig string
	}

	arr := make([]item, 0, len(in))
	for _, s := range in {
		v, err := Parse(s)
		if err != nil {
			// Fallback: lexicographic sort if any element is not parseable.
			return sortLex(in, mode)
		}
		arr = append(arr, item{v: v, orig: s})
	}

	sort.SliceStable(arr, func(i, j int) bool {
		cmp := arr[i].v.Compare(arr[j].v)
		if mode == SortAsc {
			return cmp < 0
		}
		return cmp > 0 // SortDesc
	})

	out := make([]string, len(arr))
	for i, it := range arr {
		out[i] = it.orig
	}

	return out
}

// SortN sorts and then returns at most N items.
func SortN(in []string, mode SortMode, n int) []string {
	return capStrings(Sort(in, mode), n)
}

// sortLex does a plain lexicographic sort as a fallback.
func sortLex(in []string, mode SortMode) []string {
	out := append([]string(nil), in...)
	if mode == SortAsc {
		sort.Strings(out)
	} else { // SortDesc
		sort.Sort(sort.Reverse(sort.StringSlice(out)))
	}

	return out
}

// Greatest returns the original string of the greatest version in the set.
// Every element must parse; an empty set is a precondition violation.
func Greatest(in []string) (string, error) {
	return pickEdge(in, func(cmp int) bool { return cmp > 0 })
}

// Smallest returns the original string of the smallest version in the set.
// Every element must parse; an empty set is a precondition violation.
func Smallest(in []string) (string, error) {
	return pickEdge(in, func(cmp int) bool { return cmp < 0 })
}

func pickEdge(in []string, better func(cmp int) bool) (string, error) {
	if len(in) == 0 {
		return "", fmt.Errorf("%w: no versions given", ErrPrecondition)
	}

	best, err := Parse(in[0])
	if err != nil {
		return "", err
	}
	bestOrig := in[0]

	for _, s := range in[1:] {
		v, err := Parse(s)
		if err != nil {
			return "", err
		}

		if better(v.Compare(best)) {
			best = v
			bestOrig = s
		}
	}

	return bestOrig, nil
}
