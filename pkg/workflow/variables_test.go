package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parallax-dev/parallax/pkg/pattern"
)

func newTestExec(vars map[string]any) *ExecutionContext {
	exec := newExecutionContext(&pattern.Pattern{Name: "test"}, map[string]any{"task": "review"})
	for k, v := range vars {
		exec.SetVariable(k, v)
	}
	return exec
}

func TestResolveValue_References(t *testing.T) {
	exec := newTestExec(map[string]any{
		"step_0_result": map[string]any{
			"verdict": "ok",
			"scores":  []any{1.0, 2.0},
		},
	})

	assert.Equal(t, "ok", resolveValue(exec, "$step_0_result.verdict"))
	assert.Equal(t, map[string]any{"verdict": "ok", "scores": []any{1.0, 2.0}},
		resolveValue(exec, "$step_0_result"))
	assert.Nil(t, resolveValue(exec, "$step_0_result.missing"))
	assert.Nil(t, resolveValue(exec, "$unbound"))
	assert.Equal(t, map[string]any{"task": "review"}, resolveValue(exec, "$input"))
}

func TestResolveValue_Recursive(t *testing.T) {
	exec := newTestExec(map[string]any{"step_0_result": "draft"})

	resolved := resolveValue(exec, map[string]any{
		"text":  "$step_0_result",
		"count": 3,
		"items": []any{"$input.task", "literal"},
	})
	assert.Equal(t, map[string]any{
		"text":  "draft",
		"count": 3,
		"items": []any{"review", "literal"},
	}, resolved)
}

func TestInterpolate(t *testing.T) {
	exec := newTestExec(map[string]any{
		"step_0_result": map[string]any{"summary": "all good"},
	})

	assert.Equal(t, "Verdict: all good, task: review",
		interpolate(exec, "Verdict: ${step_0_result.summary}, task: ${input.task}"))
	assert.Equal(t, "missing: ", interpolate(exec, "missing: ${nope.deep}"))
	assert.Equal(t, "no placeholders", interpolate(exec, "no placeholders"))

	// Structured values render as compact JSON.
	assert.Equal(t, `{"summary":"all good"}`, interpolate(exec, "${step_0_result}"))
}

func TestTruthy(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want bool
	}{
		{"nil", nil, false},
		{"false", false, false},
		{"true", true, true},
		{"empty string", "", false},
		{"false string", "false", false},
		{"zero string", "0", false},
		{"string", "yes", true},
		{"zero float", 0.0, false},
		{"float", 1.5, true},
		{"zero int", 0, false},
		{"int", 7, true},
		{"empty map", map[string]any{}, false},
		{"map", map[string]any{"a": 1}, true},
		{"empty slice", []any{}, false},
		{"slice", []any{1}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, truthy(tc.in))
		})
	}
}

func TestRenderValue(t *testing.T) {
	assert.Equal(t, "", renderValue(nil))
	assert.Equal(t, "plain", renderValue("plain"))
	assert.Equal(t, "42", renderValue(42))
	assert.Equal(t, `["a","b"]`, renderValue([]any{"a", "b"}))
	assert.Equal(t, `{"k":1}`, renderValue(map[string]any{"k": 1}))
}
