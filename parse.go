package relver

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	sv "github.com/Masterminds/semver/v3"
)

var (
	// ErrInvalidVersion is returned when a string cannot be coerced into a
	// version under the relaxed grammar.
	ErrInvalidVersion = errors.New("invalid version")

	// ErrPrecondition is returned when required parameters are missing or
	// an ordering precondition is violated.
	ErrPrecondition = errors.New("precondition violated")
)

// Parse coerces a raw string into a Version. A fixed set of deviations from
// strict semver is tolerated, tried in order, first success wins:
//
//  1. a single leading "v" is stripped and remembered;
//  2. the remainder is parsed strictly;
//  3. failing that, the numeric head (before the first "-", else "+") is
//     expanded from X.Y to X.Y.0 and the parse retried;
//  4. failing that, the head must be exactly three dot-separated integers;
//     leading zeroes are dropped by re-rendering each and the parse retried.
//
// Anything else fails with ErrInvalidVersion. The empty string is always
// invalid.
func Parse(s string) (*Version, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidVersion)
	}

	prefix := ""
	rest := s
	if rest[0] == 'v' {
		prefix = "v"
		rest = rest[1:]
	}

	if p, err := sv.StrictNewVersion(rest); err == nil {
		return &Version{sem: p, prefix: prefix, original: s}, nil
	}

	head, sep, suffix := splitSuffix(rest)

	// X.Y shorthand: expand to X.Y.0 and retry.
	if strings.Count(head, ".") == 1 {
		head += ".0"
		if p, err := sv.StrictNewVersion(head + sep + suffix); err == nil {
			return &Version{sem: p, prefix: prefix, original: s}, nil
		}
	}

	// Leading zeroes: re-render each numeric component and retry.
	if fixed, ok := stripLeadingZeroes(head); ok {
		if p, err := sv.StrictNewVersion(fixed + sep + suffix); err == nil {
			return &Version{sem: p, prefix: prefix, original: s}, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
}

// TryParse is Parse for callers that treat unparseable input as "no
// version": it returns nil instead of an error.
func TryParse(s string) *Version {
	v, err := Parse(s)
	if err != nil {
		return nil
	}

	return v
}

// MustParse is Parse that panics on failure. For fixed inputs and tests.
func MustParse(s string) *Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return v
}

// IsParseable reports whether s parses under the relaxed grammar.
func IsParseable(s string) bool {
	return TryParse(s) != nil
}

// ParseAny resolves a version-bearing value into a Version:
// a *Version is returned unchanged, a string is parsed, and anything
// implementing Versioned is parsed from its Version() string. nil is always
// an error. Any other type is coerced through its string conversion as a
// last resort; that path is diagnosed but not fatal.
func ParseAny(v any) (*Version, error) {
	switch t := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil version", ErrInvalidVersion)

	case *Version:
		return t, nil

	case string:
		return Parse(t)

	case Versioned:
		return Parse(t.Version())

	default:
		slog.Warn("unexpected version-bearing type, coercing via string conversion",
			"type", fmt.Sprintf("%T", v))

		return Parse(fmt.Sprint(v))
	}
}

// splitSuffix partitions s at the first "-" (preferred) or "+" into the
// numeric head and the prerelease/metadata suffix.
func splitSuffix(s string) (head, sep, suffix string) {
	if i := strings.IndexByte(s, '-'); i >= 0 {
		return s[:i], "-", s[i+1:]
	}

	if i := strings.IndexByte(s, '+'); i >= 0 {
		return s[:i], "+", s[i+1:]
	}

	return s, "", ""
}

// stripLeadingZeroes re-renders exactly three dot-separated integer
// components as plain integers ("01.02.03" -> "1.2.3").
func stripLeadingZeroes(head string) (string, bool) {
	parts := strings.Split(head, ".")
	if len(parts) != 3 {
		return "", false
	}

	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return "", false
		}
		parts[i] = strconv.FormatUint(n, 10)
	}

	return strings.Join(parts, "."), true
}
