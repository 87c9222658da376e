package workflow

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var interpolationRe = regexp.MustCompile(`\$\{([^}]+)\}`)

// resolveValue resolves a step input value against the run's variable scope.
// A string of the form "$name" or "$name.path" is replaced by the referenced
// value (nil when unbound); any other string gets ${...} interpolation; maps
// and slices are resolved recursively.
func resolveValue(exec *ExecutionContext, v any) any {
	switch val := v.(type) {
	case string:
		if strings.HasPrefix(val, "$") && !strings.HasPrefix(val, "${") {
			return lookupPath(exec, strings.TrimPrefix(val, "$"))
		}
		return interpolate(exec, val)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[k] = resolveValue(exec, elem)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = resolveValue(exec, elem)
		}
		return out
	default:
		return v
	}
}

// interpolate replaces every ${path} occurrence with the referenced value
// rendered as a string. Unbound paths render as the empty string.
func interpolate(exec *ExecutionContext, s string) string {
	if !strings.Contains(s, "${") {
		return s
	}
	return interpolationRe.ReplaceAllStringFunc(s, func(m string) string {
		path := m[2 : len(m)-1]
		return renderValue(lookupPath(exec, path))
	})
}

// lookupPath walks a dot path: the first segment names a variable, the rest
// index into nested maps. A missing segment yields nil.
func lookupPath(exec *ExecutionContext, path string) any {
	segments := strings.Split(path, ".")
	cur, ok := exec.Variable(segments[0])
	if !ok {
		return nil
	}
	for _, seg := range segments[1:] {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur, ok = m[seg]
		if !ok {
			return nil
		}
	}
	return cur
}

// renderValue formats a resolved value for embedding in a task string.
// Strings pass through verbatim; structured values render as compact JSON.
func renderValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case map[string]any, []any:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(data)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// truthy implements condition-check semantics: nil, false, zero numbers,
// empty strings, and empty collections are false.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != "" && val != "false" && val != "0"
	case float64:
		return val != 0
	case int:
		return val != 0
	case int64:
		return val != 0
	case map[string]any:
		return len(val) > 0
	case []any:
		return len(val) > 0
	default:
		return true
	}
}
