package relver

import (
	"log/slog"
	"sort"
)

// VersionsToPurge partitions versions across the policy rules and returns
// the ones to discard, in rule order, smallest first within each rule.
//
// Each candidate is resolved through convert (when given) and ParseAny,
// then claimed by the first rule whose MatchesVersion predicate accepts it;
// later rules are not consulted. Versions no rule claims are diagnosed and
// excluded entirely (neither purged nor kept). Within a claimed bucket,
// a "keep all" rule purges nothing; otherwise the bucket is sorted
// ascending and everything but the greatest Keep.N entries is purged.
//
// Retention is independent per rule bucket; a global cap across rules must
// be encoded as a single rule. Original T values are returned.
func VersionsToPurge[T any](
	versions []T,
	reference any,
	policies *RetentionPolicies,
	convert func(T) any,
) ([]T, error) {
	ref, err := ParseAny(reference)
	if err != nil {
		return nil, err
	}

	buckets := make([][]candidate[T], len(policies.Rules))

	for _, t := range versions {
		var src any = t
		if convert != nil {
			src = convert(t)
		}

		v, err := ParseAny(src)
		if err != nil {
			return nil, err
		}

		claimed := false
		for i := range policies.Rules {
			if policies.Rules[i].MatchesVersion(v, ref) {
				buckets[i] = append(buckets[i], candidate[T]{orig: t, v: v})
				claimed = true

				break
			}
		}

		if !claimed {
			slog.Debug("version matched no retention rule, excluding from purge",
				"version", v.String(), "policies", policies.Name)
		}
	}

	var purge []T
	for i := range policies.Rules {
		rule := policies.Rules[i]
		if rule.Keep.All {
			continue
		}

		b := buckets[i]
		if len(b) <= rule.Keep.N {
			continue
		}

		sort.SliceStable(b, func(x, y int) bool {
			return b[x].v.Compare(b[y].v) < 0
		})

		for _, c := range b[:len(b)-rule.Keep.N] {
			purge = append(purge, c.orig)
		}
	}

	return purge, nil
}

// candidate pairs an input value with its parsed version.
type candidate[T any] struct {
	orig T
	v    *Version
}
