package api

import (
	"slices"
	"sort"

	"github.com/picsart/creative-apis-go/types"
)

// Rule is one declarative field constraint: a predicate over the request
// value and the message reported when it does not hold.
type Rule struct {
	Check   func() bool
	Message string
}

// Validate evaluates every rule against the request and returns nil when all
// hold. Otherwise it returns a *types.ValidationError aggregating every
// violated rule's message, sorted lexicographically. It performs no I/O.
func Validate(action string, rules []Rule) error {
	var violations []string
	for _, r := range rules {
		if !r.Check() {
			violations = append(violations, r.Message)
		}
	}
	if len(violations) == 0 {
		return nil
	}
	sort.Strings(violations)
	return &types.ValidationError{Action: action, Violations: violations}
}

// OptionalRange constrains an optional numeric field: zero means unset and
// always passes.
func OptionalRange(v, min, max int, message string) Rule {
	return Rule{
		Check:   func() bool { return v == 0 || (v >= min && v <= max) },
		Message: message,
	}
}

// OptionalMin constrains an optional numeric field to be at least min when
// set.
func OptionalMin(v, min int, message string) Rule {
	return Rule{
		Check:   func() bool { return v == 0 || v >= min },
		Message: message,
	}
}

// OptionalMax constrains an optional numeric field to be at most max when
// set.
func OptionalMax(v, max int, message string) Rule {
	return Rule{
		Check:   func() bool { return v == 0 || v <= max },
		Message: message,
	}
}

// OptionalOneOf constrains an optional numeric field to an allowed set.
func OptionalOneOf(v int, allowed []int, message string) Rule {
	return Rule{
		Check:   func() bool { return v == 0 || slices.Contains(allowed, v) },
		Message: message,
	}
}

// OptionalFloatRange constrains an optional float field: zero means unset.
func OptionalFloatRange(v, min, max float64, message string) Rule {
	return Rule{
		Check:   func() bool { return v == 0 || (v >= min && v <= max) },
		Message: message,
	}
}

// NotBlank requires a string field to be set.
func NotBlank(v, message string) Rule {
	return Rule{
		Check:   func() bool { return v != "" },
		Message: message,
	}
}

// ExactlyOne requires exactly one of the given source fields to be set.
func ExactlyOne(message string, sources ...string) Rule {
	return Rule{
		Check:   func() bool { return countSet(sources) == 1 },
		Message: message,
	}
}

// AtMostOne allows at most one of the given source fields to be set.
func AtMostOne(message string, sources ...string) Rule {
	return Rule{
		Check:   func() bool { return countSet(sources) <= 1 },
		Message: message,
	}
}

func countSet(sources []string) int {
	n := 0
	for _, s := range sources {
		if s != "" {
			n++
		}
	}
	return n
}
