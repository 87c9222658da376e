package workflow

import (
	"encoding/json"
	"fmt"

	"github.com/parallax-dev/parallax/pkg/pattern"
)

// aggregate combines the results of a preceding parallel step.
func aggregate(method pattern.AggregateMethod, results []any) (any, error) {
	switch method {
	case pattern.AggregateConsensus:
		return aggregateConsensus(results), nil
	case pattern.AggregateMajority:
		return aggregateMajority(results), nil
	case pattern.AggregateMerge:
		return aggregateMerge(results), nil
	case pattern.AggregateBest:
		return aggregateBest(results), nil
	default:
		return nil, fmt.Errorf("unknown aggregation method %q", method)
	}
}

// canonicalKey renders a value for equality grouping. Structurally equal
// values share a key regardless of map iteration order.
func canonicalKey(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

// aggregateConsensus returns the most frequent value; ties break toward the
// value seen first.
func aggregateConsensus(results []any) any {
	if len(results) == 0 {
		return nil
	}
	counts := make(map[string]int, len(results))
	first := make(map[string]int, len(results))
	for i, r := range results {
		key := canonicalKey(r)
		counts[key]++
		if _, ok := first[key]; !ok {
			first[key] = i
		}
	}
	bestKey := ""
	bestCount := -1
	for key, n := range counts {
		if n > bestCount || (n == bestCount && first[key] < first[bestKey]) {
			bestKey, bestCount = key, n
		}
	}
	return results[first[bestKey]]
}

// aggregateMajority returns the first value whose count reaches half the
// result set rounded up, or nil when no value does.
func aggregateMajority(results []any) any {
	if len(results) == 0 {
		return nil
	}
	need := (len(results) + 1) / 2
	counts := make(map[string]int, len(results))
	for _, r := range results {
		key := canonicalKey(r)
		counts[key]++
		if counts[key] >= need {
			return r
		}
	}
	return nil
}

// aggregateMerge deep-merges results when every one is an object (later
// results win on key conflicts); otherwise it returns the list unchanged.
func aggregateMerge(results []any) any {
	if len(results) == 0 {
		return nil
	}
	objects := make([]map[string]any, 0, len(results))
	for _, r := range results {
		m, ok := r.(map[string]any)
		if !ok {
			return results
		}
		objects = append(objects, m)
	}
	merged := make(map[string]any)
	for _, obj := range objects {
		merged = deepMerge(merged, obj)
	}
	return merged
}

func deepMerge(dst, src map[string]any) map[string]any {
	for k, v := range src {
		if sv, ok := v.(map[string]any); ok {
			if dv, ok := dst[k].(map[string]any); ok {
				dst[k] = deepMerge(dv, sv)
				continue
			}
		}
		dst[k] = v
	}
	return dst
}

// aggregateBest returns the result with the highest confidence attribute.
// Results without one score zero; ties break toward the earlier result.
func aggregateBest(results []any) any {
	if len(results) == 0 {
		return nil
	}
	best := results[0]
	bestScore := confidenceOf(results[0])
	for _, r := range results[1:] {
		if score := confidenceOf(r); score > bestScore {
			best, bestScore = r, score
		}
	}
	return best
}

func confidenceOf(v any) float64 {
	m, ok := v.(map[string]any)
	if !ok {
		return 0
	}
	switch c := m["confidence"].(type) {
	case float64:
		return c
	case int:
		return float64(c)
	default:
		return 0
	}
}
