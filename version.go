package relver

import (
	sv "github.com/Masterminds/semver/v3"
)

// Versioned is implemented by objects that carry a version string
// (release descriptors, tags, component references).
type Versioned interface {
	Version() string
}

// Version is an immutable parsed version. It wraps the strict semver value
// together with the detected "v" prefix and the original raw string, so the
// input form can be round-tripped. Mutating operations never change a
// Version in place; they produce new values (see Process).
type Version struct {
	sem      *sv.Version
	prefix   string // "v" when the input carried one, otherwise ""
	original string
}

// Major returns the major component.
func (v *Version) Major() uint64 { return v.sem.Major() }

// Minor returns the minor component.
func (v *Version) Minor() uint64 { return v.sem.Minor() }

// Patch returns the patch component.
func (v *Version) Patch() uint64 { return v.sem.Patch() }

// Prerelease returns the prerelease component ("" if absent).
func (v *Version) Prerelease() string { return v.sem.Prerelease() }

// Metadata returns the build metadata component ("" if absent).
func (v *Version) Metadata() string { return v.sem.Metadata() }

// Prefix returns the detected leading prefix, "v" or "".
func (v *Version) Prefix() string { return v.prefix }

// Original returns the raw input string the version was parsed from.
func (v *Version) Original() string { return v.original }

// IsFinal reports whether the version carries neither prerelease nor
// build metadata (a release, as opposed to a snapshot).
func (v *Version) IsFinal() bool {
	return v.sem.Prerelease() == "" && v.sem.Metadata() == ""
}

// String renders the normalized version with the original prefix restored.
// Shorthand and leading-zero inputs come out normalized ("v1.2" -> "v1.2.0").
func (v *Version) String() string { return v.prefix + v.sem.String() }

// Compare orders by semver precedence: numeric major.minor.patch, then
// prerelease precedence (a prerelease sorts below the same release).
// Build metadata is ignored. Returns -1, 0, or 1.
func (v *Version) Compare(o *Version) int { return v.sem.Compare(o.sem) }

// Equal reports value equality under Compare (prefix and metadata ignored).
func (v *Version) Equal(o *Version) bool { return v.Compare(o) == 0 }

// LessThan reports v < o under semver precedence.
func (v *Version) LessThan(o *Version) bool { return v.Compare(o) < 0 }

// GreaterThan reports v > o under semver precedence.
func (v *Version) GreaterThan(o *Version) bool { return v.Compare(o) > 0 }
