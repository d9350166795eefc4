package relver

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Match selects which kind of versions a retention rule applies to.
type Match uint8

const (
	// MatchAny claims every version.
	MatchAny Match = iota
	// MatchSnapshot claims versions carrying prerelease or build metadata.
	MatchSnapshot
	// MatchRelease claims final versions (neither prerelease nor build metadata).
	MatchRelease
)

// String returns a stable textual representation for Match.
func (m Match) String() string {
	switch m {
	case MatchSnapshot:
		return "snapshot"
	case MatchRelease:
		return "release"
	default:
		return "any"
	}
}

// ParseMatch maps free-form tokens to Match.
// Supported aliases (case-insensitive):
//
//	any:      "", "any", "*", "all"
//	snapshot: "snapshot", "snapshots", "pre", "prerelease"
//	release:  "release", "releases", "final"
func ParseMatch(s string) (Match, bool) {
	switch toTok(s) {
	case "", "any", "*", "all":
		return MatchAny, true
	case "snapshot", "snapshots", "pre", "prerelease":
		return MatchSnapshot, true
	case "release", "releases", "final":
		return MatchRelease, true
	default:
		return MatchAny, false
	}
}

// UnmarshalYAML decodes Match from its token form.
func (m *Match) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	v, ok := ParseMatch(s)
	if !ok {
		return fmt.Errorf("unknown version match type %q", s)
	}
	*m = v

	return nil
}

// MarshalYAML encodes Match as its token form.
func (m Match) MarshalYAML() (any, error) { return m.String(), nil }

// Restrict narrows a retention rule beyond its Match.
type Restrict uint8

const (
	// RestrictNone applies no extra restriction.
	RestrictNone Restrict = iota
	// RestrictSameMinor additionally requires the candidate's minor version
	// to equal the reference version's minor version.
	RestrictSameMinor
)

// String returns a stable textual representation for Restrict.
func (r Restrict) String() string {
	if r == RestrictSameMinor {
		return "same-minor"
	}

	return "none"
}

// ParseRestrict maps free-form tokens to Restrict.
// Supported aliases (case-insensitive):
//
//	none:       "", "none"
//	same-minor: "same-minor", "same_minor", "sameminor"
func ParseRestrict(s string) (Restrict, bool) {
	switch toTok(s) {
	case "", "none":
		return RestrictNone, true
	case "same-minor", "same_minor", "sameminor":
		return RestrictSameMinor, true
	default:
		return RestrictNone, false
	}
}

// UnmarshalYAML decodes Restrict from its token form.
func (r *Restrict) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	v, ok := ParseRestrict(s)
	if !ok {
		return fmt.Errorf("unknown version restriction %q", s)
	}
	*r = v

	return nil
}

// MarshalYAML encodes Restrict as its token form.
func (r Restrict) MarshalYAML() (any, error) { return r.String(), nil }

// KeepCount is a retention count: either the literal "all" or a
// non-negative integer.
type KeepCount struct {
	// All keeps every matched version; N is ignored when set.
	All bool
	// N is the number of greatest matched versions to keep.
	N int
}

// KeepAll returns the "all" count.
func KeepAll() KeepCount { return KeepCount{All: true} }

// Keep returns an integer count.
func Keep(n int) KeepCount { return KeepCount{N: n} }

// String renders "all" or the integer count.
func (k KeepCount) String() string {
	if k.All {
		return "all"
	}

	return fmt.Sprintf("%d", k.N)
}

// UnmarshalYAML decodes either the literal "all" or a non-negative integer.
func (k *KeepCount) UnmarshalYAML(value *yaml.Node) error {
	var n int
	if err := value.Decode(&n); err == nil {
		if n < 0 {
			return fmt.Errorf("keep count must not be negative: %d", n)
		}
		*k = KeepCount{N: n}

		return nil
	}

	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	if toTok(s) != "all" {
		return fmt.Errorf("keep must be \"all\" or a non-negative integer, got %q", s)
	}
	*k = KeepCount{All: true}

	return nil
}

// MarshalYAML encodes "all" or the integer count.
func (k KeepCount) MarshalYAML() (any, error) {
	if k.All {
		return "all", nil
	}

	return k.N, nil
}

// RetentionRule describes which versions to keep.
type RetentionRule struct {
	// Name identifies the rule in configuration and diagnostics.
	Name string `yaml:"name"`

	// Keep is how many of the greatest matched versions survive.
	Keep KeepCount `yaml:"keep"`

	// Match selects snapshot/release/any versions.
	Match Match `yaml:"match"`

	// Restrict optionally narrows matching to the reference version's minor.
	Restrict Restrict `yaml:"restrict"`

	// Recursive is carried through for callers that purge dependent
	// artefacts alongside each version; the engine itself does not act on it.
	Recursive bool `yaml:"recursive"`
}

// MatchesVersion reports whether the rule claims the candidate, relative to
// the reference version (used by the same-minor restriction).
func (r RetentionRule) MatchesVersion(v, ref *Version) bool {
	final := v.IsFinal()

	switch r.Match {
	case MatchSnapshot:
		if final {
			return false
		}
	case MatchRelease:
		if !final {
			return false
		}
	}

	if r.Restrict == RestrictSameMinor {
		if ref == nil || v.Minor() != ref.Minor() {
			return false
		}
	}

	return true
}

// RetentionPolicies is an ordered rule list, evaluated first-match-wins
// per version.
type RetentionPolicies struct {
	Name  string          `yaml:"name"`
	Rules []RetentionRule `yaml:"rules"`
}

// LoadPolicies parses a YAML retention policy document.
func LoadPolicies(data []byte) (*RetentionPolicies, error) {
	var p RetentionPolicies
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse retention policies: %w", err)
	}

	return &p, nil
}
