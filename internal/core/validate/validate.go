// Package validate decides whether an arbitrary decoded JSON payload from
// the scoring service is safe to render as a score card. It is a pure gate:
// no I/O, no mutation, and it never panics outward.
package validate

import (
	"math"
	"strconv"
	"strings"

	"github.com/dabeerhasan15/sounds/internal/core/domain"
)

const (
	minScore = 1
	maxScore = 10
)

// Report checks a decoded JSON value against the score card schema.
// The first failing condition short-circuits to false; the caller re-uses
// the original value unmodified on success.
func Report(value any) (ok bool) {
	// The payload is foreign data; a panic while inspecting it is a
	// validation failure, not a crash.
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	obj, isObj := value.(map[string]any)
	if !isObj || obj == nil {
		return false
	}

	if !nonBlankString(obj["song"]) || !nonBlankString(obj["artist"]) {
		return false
	}

	cats, isMap := obj["core_categories"].(map[string]any)
	if !isMap {
		return false
	}

	if !nonBlankString(obj["summary"]) {
		return false
	}
	if !nonBlankString(obj["runtime"]) || !nonBlankString(obj["year"]) || !nonBlankString(obj["genre"]) {
		return false
	}

	for _, key := range domain.CoreCategoryKeys {
		entry, isEntry := cats[key].(map[string]any)
		if !isEntry {
			return false
		}
		if !integerScoreInRange(entry["score"]) {
			return false
		}
		if _, isStr := entry["comment"].(string); !isStr {
			return false
		}
	}

	expansions, isList := obj["expansion_categories"].([]any)
	if !isList {
		return false
	}
	for _, elem := range expansions {
		if !truthy(elem) {
			continue // holes are tolerated, not failures
		}
		entry, isEntry := elem.(map[string]any)
		if !isEntry {
			return false
		}
		if _, isStr := entry["category"].(string); !isStr {
			return false
		}
		if !integerScoreInRange(entry["score"]) {
			return false
		}
		if _, isStr := entry["comment"].(string); !isStr {
			return false
		}
	}

	if final, present := obj["final_score"]; present && final != nil {
		f, coerced := coerceNumber(final)
		if !coerced {
			return false
		}
		if math.IsNaN(f) || math.IsInf(f, 0) || f < minScore || f > maxScore {
			return false
		}
	}

	return true
}

// Truthy mirrors the looseness of the upstream contract: the explicit
// error flag is "any truthy error field", and expansion holes are "falsy
// entries".
func Truthy(v any) bool { return truthy(v) }

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	default:
		return true
	}
}

func nonBlankString(v any) bool {
	s, isStr := v.(string)
	return isStr && strings.TrimSpace(s) != ""
}

// integerScoreInRange accepts number-typed integers in [1,10]. JSON
// numbers decode as float64, so integrality means a whole float.
func integerScoreInRange(v any) bool {
	f, isNum := v.(float64)
	if !isNum {
		return false
	}
	if f != math.Trunc(f) {
		return false
	}
	return f >= minScore && f <= maxScore
}

// coerceNumber mirrors the tolerant final_score handling: numbers pass
// through, numeric strings are parsed, anything else fails.
func coerceNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
