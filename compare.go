package relver

// Compare coerces both operands via ParseAny and orders them by semver
// precedence. Returns -1, 0, or 1. Either operand failing to coerce is an
// error; use Sort for the lexicographic-fallback behavior over collections.
func Compare(a, b any) (int, error) {
	va, err := ParseAny(a)
	if err != nil {
		return 0, err
	}

	vb, err := ParseAny(b)
	if err != nil {
		return 0, err
	}

	return va.Compare(vb), nil
}
