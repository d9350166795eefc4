package relver

import (
	"fmt"

	sv "github.com/Masterminds/semver/v3"
)

// Op is a named version-processing operation.
type Op uint8

const (
	// OpNoop re-renders the version without semantic change. Shorthand and
	// leading-zero inputs still come out normalized.
	OpNoop Op = iota
	// OpBumpMajor increments major and zeroes minor/patch.
	OpBumpMajor
	// OpBumpMinor increments minor and zeroes patch.
	OpBumpMinor
	// OpBumpPatch increments patch. On a prerelease version the library-native
	// behavior applies: the prerelease is dropped and patch is NOT incremented
	// (1.2.3-rc.1 -> 1.2.3).
	OpBumpPatch
	// OpSetPrerelease clears prerelease and build metadata, then sets the
	// given prerelease.
	OpSetPrerelease
	// OpAppendPrerelease joins the existing prerelease and the given one with
	// a "-". The input version must already carry a prerelease.
	OpAppendPrerelease
	// OpSetBuildMetadata replaces the build metadata (truncated to
	// BuildMetadataLength); the prerelease is kept.
	OpSetBuildMetadata
	// OpSetPrereleaseAndBuild clears both fields, then sets prerelease and
	// truncated build metadata.
	OpSetPrereleaseAndBuild
	// OpSetVerbatim returns the caller-supplied verbatim string as-is,
	// bypassing parsing and prefix restoration.
	OpSetVerbatim
)

// String returns a stable textual representation for Op.
func (o Op) String() string {
	switch o {
	case OpBumpMajor:
		return "bump-major"
	case OpBumpMinor:
		return "bump-minor"
	case OpBumpPatch:
		return "bump-patch"
	case OpSetPrerelease:
		return "set-prerelease"
	case OpAppendPrerelease:
		return "append-prerelease"
	case OpSetBuildMetadata:
		return "set-build-metadata"
	case OpSetPrereleaseAndBuild:
		return "set-prerelease-and-build"
	case OpSetVerbatim:
		return "set-verbatim"
	default:
		return "noop"
	}
}

// ParseOp maps free-form tokens to Op. Both dash and underscore spellings
// are accepted. Unknown tokens report ok=false.
func ParseOp(s string) (Op, bool) {
	switch toTok(s) {
	case "noop", "nop", "none":
		return OpNoop, true
	case "bump-major", "bump_major", "major":
		return OpBumpMajor, true
	case "bump-minor", "bump_minor", "minor":
		return OpBumpMinor, true
	case "bump-patch", "bump_patch", "patch":
		return OpBumpPatch, true
	case "set-prerelease", "set_prerelease", "prerelease":
		return OpSetPrerelease, true
	case "append-prerelease", "append_prerelease":
		return OpAppendPrerelease, true
	case "set-build-metadata", "set_build_metadata", "build-metadata":
		return OpSetBuildMetadata, true
	case "set-prerelease-and-build", "set_prerelease_and_build":
		return OpSetPrereleaseAndBuild, true
	case "set-verbatim", "set_verbatim", "verbatim":
		return OpSetVerbatim, true
	default:
		return OpNoop, false
	}
}

// DefaultBuildMetadataLength is the truncation length applied to build
// metadata when ProcessOptions leaves BuildMetadataLength at zero.
const DefaultBuildMetadataLength = 12

// ProcessOptions carries the operation parameters for Process.
type ProcessOptions struct {
	// Prerelease for OpSetPrerelease / OpAppendPrerelease / OpSetPrereleaseAndBuild.
	Prerelease string

	// BuildMetadata for OpSetBuildMetadata / OpSetPrereleaseAndBuild.
	BuildMetadata string

	// BuildMetadataLength truncates BuildMetadata before applying it.
	// Zero means DefaultBuildMetadataLength; negative is invalid.
	BuildMetadataLength int

	// Verbatim is the output for OpSetVerbatim, returned untouched.
	Verbatim string

	// SkipPatchlevelZero bumps a resulting patch level of exactly 0 to 1.
	SkipPatchlevelZero bool
}

// Process applies op to version and returns the resulting string with the
// detected "v" prefix restored (except for OpSetVerbatim, whose output is
// caller-supplied and returned unprefixed). Missing or conflicting
// parameters fail with ErrPrecondition; an unparseable version fails with
// ErrInvalidVersion.
func Process(version string, op Op, opt ProcessOptions) (string, error) {
	metaLen := opt.BuildMetadataLength
	if metaLen == 0 {
		metaLen = DefaultBuildMetadataLength
	}

	switch op {
	case OpSetPrerelease, OpAppendPrerelease, OpSetPrereleaseAndBuild:
		if opt.Prerelease == "" {
			return "", fmt.Errorf("%w: operation %s requires a prerelease", ErrPrecondition, op)
		}
	}

	switch op {
	case OpSetBuildMetadata, OpSetPrereleaseAndBuild:
		if opt.BuildMetadata == "" {
			return "", fmt.Errorf("%w: operation %s requires build metadata", ErrPrecondition, op)
		}
		if metaLen < 0 {
			return "", fmt.Errorf("%w: build metadata length must not be negative", ErrPrecondition)
		}
	}

	if op == OpSetVerbatim {
		if opt.Verbatim == "" {
			return "", fmt.Errorf("%w: operation %s requires a verbatim version", ErrPrecondition, op)
		}
		if opt.Prerelease != "" || opt.BuildMetadata != "" {
			return "", fmt.Errorf(
				"%w: operation %s forbids prerelease and build metadata", ErrPrecondition, op)
		}

		return opt.Verbatim, nil
	}

	parsed, err := Parse(version)
	if err != nil {
		return "", err
	}

	sem := *parsed.sem

	switch op {
	case OpNoop:

	case OpBumpMajor:
		sem = sem.IncMajor()

	case OpBumpMinor:
		sem = sem.IncMinor()

	case OpBumpPatch:
		sem = sem.IncPatch()

	case OpSetPrerelease, OpSetPrereleaseAndBuild:
		// Clear both fields before applying the new ones.
		sem = *sv.New(sem.Major(), sem.Minor(), sem.Patch(), "", "")
		if sem, err = sem.SetPrerelease(opt.Prerelease); err != nil {
			return "", fmt.Errorf("%w: prerelease %q: %v", ErrInvalidVersion, opt.Prerelease, err)
		}
		if op == OpSetPrereleaseAndBuild {
			meta := truncate(opt.BuildMetadata, metaLen)
			if sem, err = sem.SetMetadata(meta); err != nil {
				return "", fmt.Errorf("%w: build metadata %q: %v", ErrInvalidVersion, meta, err)
			}
		}

	case OpAppendPrerelease:
		if sem.Prerelease() == "" {
			return "", fmt.Errorf(
				"%w: version %q carries no prerelease to append to", ErrPrecondition, version)
		}
		joined := sem.Prerelease() + "-" + opt.Prerelease
		if sem, err = sem.SetPrerelease(joined); err != nil {
			return "", fmt.Errorf("%w: prerelease %q: %v", ErrInvalidVersion, joined, err)
		}

	case OpSetBuildMetadata:
		meta := truncate(opt.BuildMetadata, metaLen)
		if sem, err = sem.SetMetadata(meta); err != nil {
			return "", fmt.Errorf("%w: build metadata %q: %v", ErrInvalidVersion, meta, err)
		}

	default:
		return "", fmt.Errorf("%w: unknown operation %d", ErrPrecondition, uint8(op))
	}

	if opt.SkipPatchlevelZero && sem.Patch() == 0 {
		sem = *sv.New(sem.Major(), sem.Minor(), 1, sem.Prerelease(), sem.Metadata())
	}

	return parsed.prefix + sem.String(), nil
}
