/*
Package relver (RELaxed VERsions) parses, compares, mutates, and selects
release versions under a permissive semver grammar.

The package is network-agnostic: it operates purely on version strings (or
objects carrying one) supplied by the caller. Typical flow:

 1. Collect raw versions elsewhere (registry tags, git tags, release lists).
 2. Parse / Sort / Process them, or feed them to the retention and
    upgrade-path engines.
 3. Use the resulting strings; selection engines return the originals,
    never re-rendered copies.

Relaxed grammar notes:
  - A single leading "v" is accepted on input and restored on output.
  - Shorthand X.Y is expanded to X.Y.0 for parsing.
  - Leading zeroes in the numeric components are tolerated and dropped
    (e.g. "01.02.03" parses as 1.2.3).
  - Anything else that fails a strict semver parse is rejected with
    ErrInvalidVersion.

Sorting note: Sort orders by semver precedence only when every element
parses; a single unparseable element switches the whole collection to
plain lexicographic ordering. Callers depending on semver order must
ensure their inputs parse.

Usage example:

	raw := []string{"1.2.3", "v1.2", "1.3.0-alpha.1", "v01.10.00"}

	fmt.Println(relver.Sort(raw, relver.SortAsc))
	// [v1.2 1.2.3 1.3.0-alpha.1 v01.10.00]

	next, _ := relver.Process("v1.2.3", relver.OpBumpMinor, relver.ProcessOptions{})
	fmt.Println(next) // v1.3.0
*/
package relver
