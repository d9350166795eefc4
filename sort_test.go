package relver

import (
	"errors"
	"reflect"
	"testing"
)

func TestSort_SemverAscDesc(t *testing.T) {
	t.Parallel()

	in := []string{"1.2.3", "1.10.0", "1.2.10", "1.2.3-alpha"}

	// Ascending by semver (prerelease < release)
	gotAsc := Sort(in, SortAsc)
	wantAsc := []string{"1.2.3-alpha", "1.2.3", "1.2.10", "1.10.0"}
	if !reflect.DeepEqual(gotAsc, wantAsc) {
		t.Fatalf("Sort asc got %v; want %v", gotAsc, wantAsc)
	}

	gotDesc := Sort(in, SortDesc)
	wantDesc := []string{"1.10.0", "1.2.10", "1.2.3", "1.2.3-alpha"}
	if !reflect.DeepEqual(gotDesc, wantDesc) {
		t.Fatalf("Sort desc got %v; want %v", gotDesc, wantDesc)
	}
}

func TestSort_FallbackLex(t *testing.T) {
	t.Parallel()

	// A single unparseable element switches the WHOLE collection to
	// lexicographic order, valid semver entries included.
	in := []string{"2.0.0", "1.0.0", "abc"}

	gotAsc := Sort(in, SortAsc)
	wantAsc := []string{"1.0.0", "2.0.0", "abc"}
	if !reflect.DeepEqual(gotAsc, wantAsc) {
		t.Fatalf("lex asc got %v; want %v", gotAsc, wantAsc)
	}

	gotDesc := Sort(in, SortDesc)
	wantDesc := []string{"abc", "2.0.0", "1.0.0"}
	if !reflect.DeepEqual(gotDesc, wantDesc) {
		t.Fatalf("lex desc got %v; want %v", gotDesc, wantDesc)
	}
}

func TestSort_RelaxedForms(t *testing.T) {
	t.Parallel()

	// Shorthand and v-prefixed entries compare by coerced value but are
	// returned in their original spelling.
	in := []string{"v1.10.0", "1.2", "v1.2.3"}

	got := Sort(in, SortAsc)
	want := []string{"1.2", "v1.2.3", "v1.10.0"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("relaxed asc got %v; want %v", got, want)
	}
}

func TestSort_NoneAndSmall(t *testing.T) {
	t.Parallel()

	in := []string{"2.0.0", "1.0.0"}
	if got := Sort(in, SortNone); !reflect.DeepEqual(got, in) {
		t.Fatalf("SortNone got %v; want input order", got)
	}

	single := []string{"zzz"}
	if got := Sort(single, SortAsc); !reflect.DeepEqual(got, single) {
		t.Fatalf("single got %v; want %v", got, single)
	}
}

func TestSortN(t *testing.T) {
	t.Parallel()

	in := []string{"3.0.0", "1.0.0", "2.0.0"}

	got := SortN(in, SortDesc, 2)
	want := []string{"3.0.0", "2.0.0"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SortN got %v; want %v", got, want)
	}

	if got := SortN(in, SortDesc, 0); len(got) != 3 {
		t.Fatalf("SortN limit 0 got %v; want all", got)
	}
}

func TestGreatestSmallest(t *testing.T) {
	t.Parallel()

	in := []string{"1.2.3", "v1.10.0", "1.2.10", "1.10.0-rc.1"}

	greatest, err := Greatest(in)
	if err != nil {
		t.Fatalf("Greatest failed: %v", err)
	}
	if greatest != "v1.10.0" {
		t.Fatalf("Greatest = %q; want %q", greatest, "v1.10.0")
	}

	smallest, err := Smallest(in)
	if err != nil {
		t.Fatalf("Smallest failed: %v", err)
	}
	if smallest != "1.2.3" {
		t.Fatalf("Smallest = %q; want %q", smallest, "1.2.3")
	}

	if _, err := Greatest(nil); !errors.Is(err, ErrPrecondition) {
		t.Fatalf("Greatest(nil) err = %v; want ErrPrecondition", err)
	}

	if _, err := Smallest([]string{"1.0.0", "junk"}); !errors.Is(err, ErrInvalidVersion) {
		t.Fatalf("Smallest with junk err = %v; want ErrInvalidVersion", err)
	}
}

func TestParseSort(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want SortMode
	}{
		{"asc", SortAsc},
		{"UP", SortAsc},
		{"desc", SortDesc},
		{"decrease", SortDesc},
		{"none", SortNone},
		{"bogus", SortNone},
	}

	for _, tc := range cases {
		if got := ParseSort(tc.in); got != tc.want {
			t.Fatalf("ParseSort(%q) = %v; want %v", tc.in, got, tc.want)
		}
	}
}
