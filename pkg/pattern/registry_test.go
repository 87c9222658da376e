package pattern

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reviewPatternYAML = `
name: code-review
version: "1.2"
structure:
  roles:
    - id: lead
      name: Review Lead
      agentTypes: [coder]
    - id: reviewer
      reportsTo: lead
      minInstances: 2
      maxInstances: 3
  escalation:
    defaultBehavior: route_to_reports_to
    timeoutMs: 5000
workflow:
  steps:
    - type: parallel
      steps:
        - type: assign
          role: reviewer
          task: "Review the change"
        - type: assign
          role: reviewer
          task: "Check the tests"
    - type: aggregate
      method: consensus
  output: $step_1_result
`

func writePattern(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writePattern(t, dir, "review.yaml", reviewPatternYAML)
	writePattern(t, dir, "notes.txt", "not a pattern")

	r, err := LoadDir(dir)
	require.NoError(t, err)
	require.Equal(t, 1, r.Len())
	assert.Equal(t, []string{"code-review"}, r.Names())

	p := r.Get("code-review")
	require.NotNil(t, p)
	assert.Equal(t, "1.2", p.Version)
	assert.Equal(t, DefaultStepTimeout, p.StepTimeout())
	assert.Equal(t, 5000, p.Structure.Escalation.TimeoutMs)

	reviewer := p.Structure.Role("reviewer")
	require.NotNil(t, reviewer)
	assert.Equal(t, 2, reviewer.MinInstances)
	assert.Equal(t, "reviewer", reviewer.DisplayName(), "name falls back to id")

	require.Len(t, p.Workflow.Steps, 2)
	assert.Equal(t, StepParallel, p.Workflow.Steps[0].Type)
	assert.Equal(t, AggregateConsensus, p.Workflow.Steps[1].Method)
}

func TestLoadDir_MissingDirIsEmpty(t *testing.T) {
	r, err := LoadDir(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Equal(t, 0, r.Len())
	assert.Nil(t, r.Get("anything"))
}

func TestLoadDir_InvalidPatternFails(t *testing.T) {
	dir := t.TempDir()
	writePattern(t, dir, "bad.yaml", `
name: bad
structure:
  roles:
    - id: a
      reportsTo: missing
workflow:
  steps: []
`)

	_, err := LoadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yaml")
}

func TestLoadDir_DuplicateNameFails(t *testing.T) {
	dir := t.TempDir()
	writePattern(t, dir, "a.yaml", reviewPatternYAML)
	writePattern(t, dir, "b.yaml", reviewPatternYAML)

	_, err := LoadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate pattern name")
}

func TestNewRegistry_ValidatesAndRejectsDuplicates(t *testing.T) {
	p1 := validPattern()
	_, err := NewRegistry(p1, validPattern())
	require.Error(t, err)

	bad := validPattern()
	bad.Workflow.Steps[0].Role = "ghost"
	_, err = NewRegistry(bad)
	require.Error(t, err)
}
