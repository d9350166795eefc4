package relver

import (
	"errors"
	"reflect"
	"testing"
)

func TestUpgradePath_MinorSkip(t *testing.T) {
	t.Parallel()

	got, err := UpgradePath("1.0.0", "1.3.0",
		[]string{"1.1.0", "1.1.5", "1.2.0", "1.3.0", "1.3.1"})
	if err != nil {
		t.Fatalf("UpgradePath failed: %v", err)
	}

	// One representative per skipped minor, then everything of the final
	// minor up to whither; 1.3.1 exceeds whither and is excluded.
	want := []string{"1.1.0", "1.2.0", "1.3.0"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("path got %v; want %v", got, want)
	}
}

func TestUpgradePath_MajorSkip(t *testing.T) {
	t.Parallel()

	got, err := UpgradePath("1.0.0", "3.1.0",
		[]string{"1.2.0", "2.0.1", "2.4.0", "3.0.0", "3.1.0"})
	if err != nil {
		t.Fatalf("UpgradePath failed: %v", err)
	}

	// 1.2.0 shares whence's major and is collapsed away; major 2 yields one
	// representative; every entry of the final major is surfaced.
	want := []string{"2.0.1", "3.0.0", "3.1.0"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("path got %v; want %v", got, want)
	}
}

func TestUpgradePath_PatchOnly(t *testing.T) {
	t.Parallel()

	got, err := UpgradePath("1.2.0", "1.2.5",
		[]string{"1.2.9", "1.2.3", "1.2.1", "1.2.5"})
	if err != nil {
		t.Fatalf("UpgradePath failed: %v", err)
	}

	// Same major and minor: every filtered entry, ascending, no collapsing.
	want := []string{"1.2.1", "1.2.3", "1.2.5"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("path got %v; want %v", got, want)
	}
}

func TestUpgradePath_OriginalsPreserved(t *testing.T) {
	t.Parallel()

	got, err := UpgradePath("1.0.0", "1.3.0",
		[]string{"v1.1", "1.2.0", "v01.03.00"})
	if err != nil {
		t.Fatalf("UpgradePath failed: %v", err)
	}

	want := []string{"v1.1", "1.2.0", "v01.03.00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("path got %v; want %v", got, want)
	}
}

func TestUpgradePath_Precondition(t *testing.T) {
	t.Parallel()

	if _, err := UpgradePath("2.0.0", "1.0.0", nil); !errors.Is(err, ErrPrecondition) {
		t.Fatalf("reversed endpoints err = %v; want ErrPrecondition", err)
	}
	if _, err := UpgradePath("1.0.0", "1.0.0", nil); !errors.Is(err, ErrPrecondition) {
		t.Fatalf("equal endpoints err = %v; want ErrPrecondition", err)
	}
	if _, err := UpgradePath("junk", "1.0.0", nil); !errors.Is(err, ErrInvalidVersion) {
		t.Fatalf("bad whence err = %v; want ErrInvalidVersion", err)
	}
	if _, err := UpgradePath("1.0.0", "2.0.0", []string{"junk"}); !errors.Is(err, ErrInvalidVersion) {
		t.Fatalf("bad candidate err = %v; want ErrInvalidVersion", err)
	}
}

func TestFindPredecessor_NearestMinorGroup(t *testing.T) {
	t.Parallel()

	// No candidate shares major.minor with the target: the first (greatest)
	// candidate anchors its minor group; the scan stops when the minor
	// changes, returning the last accepted entry.
	got, ok, err := FindPredecessor("2.3.0", []string{"1.0.0", "2.2.5", "2.1.0"})
	if err != nil || !ok {
		t.Fatalf("FindPredecessor failed: ok=%v err=%v", ok, err)
	}
	if got != "2.2.5" {
		t.Fatalf("predecessor = %q; want %q", got, "2.2.5")
	}

	// Within the anchored minor group, the smallest patch wins.
	got, ok, err = FindPredecessor("2.3.0", []string{"2.2.5", "2.2.1", "2.1.9"})
	if err != nil || !ok {
		t.Fatalf("FindPredecessor failed: ok=%v err=%v", ok, err)
	}
	if got != "2.2.1" {
		t.Fatalf("predecessor = %q; want %q", got, "2.2.1")
	}
}

func TestFindPredecessor_ExactMinorMatch(t *testing.T) {
	t.Parallel()

	got, ok, err := FindPredecessor("2.3.4", []string{"2.2.9", "2.3.1", "1.9.9"})
	if err != nil || !ok {
		t.Fatalf("FindPredecessor failed: ok=%v err=%v", ok, err)
	}
	if got != "2.3.1" {
		t.Fatalf("predecessor = %q; want %q", got, "2.3.1")
	}
}

func TestFindPredecessor_MinorAnchorCrossesMajors(t *testing.T) {
	t.Parallel()

	// The anchor comparison is on the minor alone. With gaps in the set the
	// scan can keep accepting across majors that happen to share the minor.
	got, ok, err := FindPredecessor("3.0.0", []string{"2.0.1", "1.0.5"})
	if err != nil || !ok {
		t.Fatalf("FindPredecessor failed: ok=%v err=%v", ok, err)
	}
	if got != "1.0.5" {
		t.Fatalf("predecessor = %q; want %q", got, "1.0.5")
	}
}

func TestFindPredecessor_None(t *testing.T) {
	t.Parallel()

	_, ok, err := FindPredecessor("1.0.0", []string{"1.0.0", "1.0.1"})
	if err != nil {
		t.Fatalf("FindPredecessor failed: %v", err)
	}
	if ok {
		t.Fatal("no candidate is smaller; ok should be false")
	}
}

func TestFindPredecessor_Errors(t *testing.T) {
	t.Parallel()

	if _, _, err := FindPredecessor("junk", nil); !errors.Is(err, ErrInvalidVersion) {
		t.Fatalf("bad target err = %v; want ErrInvalidVersion", err)
	}
	if _, _, err := FindPredecessor("2.0.0", []string{"junk"}); !errors.Is(err, ErrInvalidVersion) {
		t.Fatalf("bad candidate err = %v; want ErrInvalidVersion", err)
	}
}
