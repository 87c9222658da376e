package trigger

import (
	"fmt"
	"reflect"
	"strings"
)

// Supported filter operators.
var filterOperators = map[string]bool{
	"$eq":     true,
	"$ne":     true,
	"$gt":     true,
	"$gte":    true,
	"$lt":     true,
	"$lte":    true,
	"$in":     true,
	"$nin":    true,
	"$exists": true,
}

// ValidateFilter rejects filter documents using unknown operators. A filter
// maps payload dot-paths to either a literal (equality) or an operator
// document.
func ValidateFilter(filter map[string]any) error {
	for path, cond := range filter {
		ops, ok := cond.(map[string]any)
		if !ok {
			continue
		}
		for op := range ops {
			if strings.HasPrefix(op, "$") && !filterOperators[op] {
				return fmt.Errorf("unknown filter operator %q at %q", op, path)
			}
		}
	}
	return nil
}

// MatchFilter reports whether the payload satisfies every condition in the
// filter. An empty filter matches everything.
func MatchFilter(filter, payload map[string]any) bool {
	for path, cond := range filter {
		value, present := payloadPath(payload, path)
		if !matchCondition(cond, value, present) {
			return false
		}
	}
	return true
}

func matchCondition(cond, value any, present bool) bool {
	ops, ok := cond.(map[string]any)
	if !ok {
		// Literal condition: plain equality.
		return present && valuesEqual(value, cond)
	}
	// Operator document without operator keys is a literal object match.
	hasOp := false
	for op := range ops {
		if strings.HasPrefix(op, "$") {
			hasOp = true
			break
		}
	}
	if !hasOp {
		return present && valuesEqual(value, cond)
	}

	for op, operand := range ops {
		if !applyOperator(op, operand, value, present) {
			return false
		}
	}
	return true
}

func applyOperator(op string, operand, value any, present bool) bool {
	switch op {
	case "$exists":
		want, _ := operand.(bool)
		return present == want
	case "$eq":
		return present && valuesEqual(value, operand)
	case "$ne":
		return !present || !valuesEqual(value, operand)
	case "$gt", "$gte", "$lt", "$lte":
		if !present {
			return false
		}
		a, aok := asNumber(value)
		b, bok := asNumber(operand)
		if !aok || !bok {
			return false
		}
		switch op {
		case "$gt":
			return a > b
		case "$gte":
			return a >= b
		case "$lt":
			return a < b
		default:
			return a <= b
		}
	case "$in":
		list, ok := operand.([]any)
		if !ok || !present {
			return false
		}
		for _, item := range list {
			if valuesEqual(value, item) {
				return true
			}
		}
		return false
	case "$nin":
		list, ok := operand.([]any)
		if !ok {
			return false
		}
		if !present {
			return true
		}
		for _, item := range list {
			if valuesEqual(value, item) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// valuesEqual compares payload values, treating all numeric types as one
// domain (JSON decodes numbers to float64, stored filters may hold ints).
func valuesEqual(a, b any) bool {
	if an, ok := asNumber(a); ok {
		if bn, ok := asNumber(b); ok {
			return an == bn
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	default:
		return 0, false
	}
}

// payloadPath walks a dot path through nested payload objects.
func payloadPath(payload map[string]any, path string) (any, bool) {
	var cur any = payload
	for _, seg := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
