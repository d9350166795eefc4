package relver

import (
	"fmt"
	"sort"
)

// UpgradePath reconstructs the sequence of intermediate versions a consumer
// should inspect when upgrading from whence to whither (e.g. for changelog
// aggregation). versions is the superset of available versions; only
// entries in (whence, whither] are considered, ascending.
//
// When the endpoints differ in major, one representative (the smallest
// entry) is yielded per intermediate major, then every entry of whither's
// major. When only the minor differs, the same collapsing is keyed on the
// minor. When only the patch differs, every entry is yielded. Original
// strings are returned.
//
// whence must be smaller than whither (ErrPrecondition otherwise).
func UpgradePath(whence, whither any, versions []string) ([]string, error) {
	from, err := ParseAny(whence)
	if err != nil {
		return nil, err
	}

	to, err := ParseAny(whither)
	if err != nil {
		return nil, err
	}

	if from.Compare(to) >= 0 {
		return nil, fmt.Errorf("%w: %s must be smaller than %s", ErrPrecondition, from, to)
	}

	arr, err := between(from, to, versions)
	if err != nil {
		return nil, err
	}

	key := func(v *Version) uint64 { return v.Major() }
	if from.Major() == to.Major() {
		if from.Minor() == to.Minor() {
			// Only the patch differs: every entry, no collapsing.
			out := make([]string, 0, len(arr))
			for _, it := range arr {
				out = append(out, it.orig)
			}

			return out, nil
		}

		key = func(v *Version) uint64 { return v.Minor() }
	}

	final := key(to)
	last := key(from)

	out := make([]string, 0, len(arr))
	for _, it := range arr {
		k := key(it.v)

		// Every entry of the final major (or minor) is surfaced.
		if k == final {
			out = append(out, it.orig)
			continue
		}

		// One representative per skipped major (or minor).
		if k > last {
			out = append(out, it.orig)
			last = k
		}
	}

	return out, nil
}

// FindPredecessor returns the closest smaller version of the target under
// minor-version-group semantics, or ok=false when no candidate is smaller.
//
// Candidates are walked in descending order. A candidate sharing both major
// and minor with the target is returned immediately. Otherwise the first
// candidate's minor anchors the scan: subsequent candidates sharing that
// minor keep replacing the result, and the walk stops at the first
// candidate whose minor differs. The net effect is the smallest-patch
// version within the nearest smaller minor group. The original string is
// returned.
func FindPredecessor(version any, versions []string) (string, bool, error) {
	target, err := ParseAny(version)
	if err != nil {
		return "", false, err
	}

	cands := make([]pathItem, 0, len(versions))
	for _, s := range versions {
		v, err := Parse(s)
		if err != nil {
			return "", false, err
		}
		if v.LessThan(target) {
			cands = append(cands, pathItem{orig: s, v: v})
		}
	}

	if len(cands) == 0 {
		return "", false, nil
	}

	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].v.Compare(cands[j].v) > 0
	})

	var current pathItem
	anchored := false
	var anchorMinor uint64

	for _, c := range cands {
		if c.v.Major() == target.Major() && c.v.Minor() == target.Minor() {
			return c.orig, true, nil
		}

		if !anchored {
			anchored = true
			anchorMinor = c.v.Minor()
			current = c

			continue
		}

		if c.v.Minor() != anchorMinor {
			break
		}
		current = c
	}

	return current.orig, true, nil
}

type pathItem struct {
	orig string
	v    *Version
}

// between filters versions to (from, to], ascending, keeping originals.
func between(from, to *Version, versions []string) ([]pathItem, error) {
	arr := make([]pathItem, 0, len(versions))
	for _, s := range versions {
		v, err := Parse(s)
		if err != nil {
			return nil, err
		}
		if v.GreaterThan(from) && !v.GreaterThan(to) {
			arr = append(arr, pathItem{orig: s, v: v})
		}
	}

	sort.SliceStable(arr, func(i, j int) bool {
		return arr[i].v.Compare(arr[j].v) < 0
	})

	return arr, nil
}
