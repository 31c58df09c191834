package utils

import "strings"

// MatchRule pairs a set of trigger values with a result.
type MatchRule[T any] struct {
	Values []string
	Result T
}

// FirstMatch evaluates rules in priority order and returns the result of the
// first rule whose value set intersects candidates, case-insensitively. When
// no rule fires the default is returned. Both retailer selection and
// suggestion accent styling dispatch through this helper, so adding or
// removing a rule is a data edit.
func FirstMatch[T any](candidates []string, rules []MatchRule[T], def T) T {
	set := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		set[strings.ToLower(c)] = struct{}{}
	}
	for _, r := range rules {
		for _, v := range r.Values {
			if _, ok := set[strings.ToLower(v)]; ok {
				return r.Result
			}
		}
	}
	return def
}
