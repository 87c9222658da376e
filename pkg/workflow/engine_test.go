package workflow

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parallax-dev/parallax/pkg/pattern"
	"github.com/parallax-dev/parallax/pkg/runtime"
)

func singleRolePattern(steps ...pattern.Step) *pattern.Pattern {
	return &pattern.Pattern{
		Name: "solo",
		Structure: pattern.OrgStructure{
			Roles: []pattern.Role{{ID: "lead", Name: "Lead"}},
		},
		Workflow: pattern.Workflow{Steps: steps},
	}
}

func TestExecute_AssignAndOutput(t *testing.T) {
	p := singleRolePattern(pattern.Step{
		Type: pattern.StepAssign,
		Role: "lead",
		Task: "Summarize ${input.topic}",
	})
	p.Workflow.Output = "$step_0_result.summary"

	engine, provider := newTestEngine(t, p)
	provider.replyFn = func(agent *runtime.AgentHandle, message string) (string, error) {
		assert.Contains(t, message, "Summarize storage")
		return `{"summary": "all healthy"}`, nil
	}

	result, err := engine.Execute(context.Background(), "solo", map[string]any{"topic": "storage"})
	require.NoError(t, err)
	assert.Equal(t, StateCompleted, result.State)
	assert.Equal(t, "all healthy", result.Output)
	assert.Equal(t, 1, result.AgentsUsed)
	require.Len(t, result.StepResults, 1)
	assert.Equal(t, map[string]any{"summary": "all healthy"}, result.StepResults[0])

	assert.True(t, provider.allStopped(), "agents must not outlive the run")
	assert.Empty(t, engine.ActiveExecutions())
}

func TestExecute_AssignWithStructuredInput(t *testing.T) {
	p := singleRolePattern(pattern.Step{
		Type:  pattern.StepAssign,
		Role:  "lead",
		Task:  "Process this",
		Input: map[string]any{"payload": "$input.data"},
	})

	engine, provider := newTestEngine(t, p)
	provider.replyFn = func(agent *runtime.AgentHandle, message string) (string, error) {
		assert.Contains(t, message, "Input:")
		assert.Contains(t, message, `"payload":"xyz"`)
		return "done", nil
	}

	result, err := engine.Execute(context.Background(), "solo", map[string]any{"data": "xyz"})
	require.NoError(t, err)
	assert.Equal(t, "done", result.Output, "no output expression falls back to the last step result")
}

func TestExecute_ParallelAggregateConsensus(t *testing.T) {
	p := &pattern.Pattern{
		Name: "fanout",
		Structure: pattern.OrgStructure{
			Roles: []pattern.Role{
				{ID: "lead", Name: "Lead"},
				{ID: "reviewer", ReportsTo: "lead", MinInstances: 3},
			},
		},
		Workflow: pattern.Workflow{
			Steps: []pattern.Step{
				{
					Type: pattern.StepParallel,
					Steps: []pattern.Step{
						{Type: pattern.StepAssign, Role: "reviewer", Task: "Review"},
						{Type: pattern.StepAssign, Role: "reviewer", Task: "Review"},
						{Type: pattern.StepAssign, Role: "reviewer", Task: "Review"},
					},
				},
				{Type: pattern.StepAggregate, Method: pattern.AggregateConsensus},
			},
		},
	}

	engine, provider := newTestEngine(t, p)
	var mu sync.Mutex
	calls := 0
	provider.replyFn = func(agent *runtime.AgentHandle, message string) (string, error) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		if calls == 2 {
			return "reject", nil
		}
		return "approve", nil
	}

	result, err := engine.Execute(context.Background(), "fanout", nil)
	require.NoError(t, err)
	assert.Equal(t, 4, result.AgentsUsed, "one lead plus three reviewers")

	parallel, ok := result.StepResults[0].([]any)
	require.True(t, ok)
	assert.Len(t, parallel, 3)
	assert.Equal(t, "approve", result.StepResults[1], "consensus picks the modal reply")
	assert.True(t, provider.allStopped())
}

func TestExecute_SequentialThreadsResults(t *testing.T) {
	p := singleRolePattern(pattern.Step{
		Type: pattern.StepSequential,
		Steps: []pattern.Step{
			{Type: pattern.StepAssign, Role: "lead", Task: "first"},
			{Type: pattern.StepAssign, Role: "lead", Task: "second"},
		},
	})

	engine, provider := newTestEngine(t, p)
	provider.replyFn = func(agent *runtime.AgentHandle, message string) (string, error) {
		if strings.HasPrefix(message, "first") {
			return "alpha", nil
		}
		return "omega", nil
	}

	result, err := engine.Execute(context.Background(), "solo", nil)
	require.NoError(t, err)
	assert.Equal(t, "omega", result.StepResults[0], "sequential yields the last child result")
}

func TestExecute_Condition(t *testing.T) {
	p := singleRolePattern(pattern.Step{
		Type:  pattern.StepCondition,
		Check: "$input.urgent",
		Then:  &pattern.Step{Type: pattern.StepAssign, Role: "lead", Task: "escalate now"},
		Else:  &pattern.Step{Type: pattern.StepAssign, Role: "lead", Task: "file a ticket"},
	})

	engine, provider := newTestEngine(t, p)
	provider.replyFn = func(agent *runtime.AgentHandle, message string) (string, error) {
		return message, nil
	}

	result, err := engine.Execute(context.Background(), "solo", map[string]any{"urgent": true})
	require.NoError(t, err)
	assert.Equal(t, "escalate now", result.Output)

	result, err = engine.Execute(context.Background(), "solo", map[string]any{"urgent": false})
	require.NoError(t, err)
	assert.Equal(t, "file a ticket", result.Output)
}

func TestExecute_Approve(t *testing.T) {
	p := singleRolePattern(pattern.Step{
		Type:     pattern.StepApprove,
		Approver: "lead",
		Subject:  "deploy to production",
	})

	engine, provider := newTestEngine(t, p)
	provider.replyFn = func(agent *runtime.AgentHandle, message string) (string, error) {
		assert.Contains(t, message, "deploy to production")
		return "Approved, ship it.", nil
	}

	result, err := engine.Execute(context.Background(), "solo", nil)
	require.NoError(t, err)
	decision := result.StepResults[0].(map[string]any)
	assert.Equal(t, true, decision["approved"])

	provider.replyFn = func(agent *runtime.AgentHandle, message string) (string, error) {
		return "This should not be approved: rejected.", nil
	}
	result, err = engine.Execute(context.Background(), "solo", nil)
	require.NoError(t, err)
	decision = result.StepResults[0].(map[string]any)
	assert.Equal(t, false, decision["approved"])
}

func TestExecute_SelectRoundRobin(t *testing.T) {
	p := &pattern.Pattern{
		Name: "picker",
		Structure: pattern.OrgStructure{
			Roles: []pattern.Role{{ID: "worker", MinInstances: 2}},
		},
		Workflow: pattern.Workflow{
			Steps: []pattern.Step{
				{Type: pattern.StepSelect, Role: "worker", Criteria: pattern.SelectRoundRobin},
				{Type: pattern.StepSelect, Role: "worker", Criteria: pattern.SelectRoundRobin},
				{Type: pattern.StepSelect, Role: "worker", Criteria: pattern.SelectRoundRobin},
			},
		},
	}

	engine, _ := newTestEngine(t, p)
	result, err := engine.Execute(context.Background(), "picker", nil)
	require.NoError(t, err)
	require.Len(t, result.StepResults, 3)
	assert.NotEqual(t, result.StepResults[0], result.StepResults[1], "round robin alternates instances")
	assert.Equal(t, result.StepResults[0], result.StepResults[2], "rotation wraps around")
}

func TestExecute_SelectExpertise(t *testing.T) {
	p := &pattern.Pattern{
		Name: "expert-picker",
		Structure: pattern.OrgStructure{
			Roles: []pattern.Role{{ID: "worker", MinInstances: 2}},
		},
		Workflow: pattern.Workflow{
			Steps: []pattern.Step{
				{Type: pattern.StepSelect, Role: "worker", Criteria: pattern.SelectExpertise},
				{Type: pattern.StepSelect, Role: "worker", Criteria: pattern.SelectExpertise},
			},
		},
	}

	engine, _ := newTestEngine(t, p)
	result, err := engine.Execute(context.Background(), "expert-picker", nil)
	require.NoError(t, err)
	require.Len(t, result.StepResults, 2)
	// Expertise always resolves to the role's first-spawned instance.
	assert.Equal(t, result.StepResults[0], result.StepResults[1])
}

func TestExecute_PatternNotFound(t *testing.T) {
	engine, _ := newTestEngine(t, singleRolePattern(
		pattern.Step{Type: pattern.StepAssign, Role: "lead", Task: "x"},
	))

	_, err := engine.Execute(context.Background(), "ghost", nil)
	require.Error(t, err)
	assert.Equal(t, FailurePatternNotFound, KindOf(err))
}

func TestExecute_SpawnFailureStopsEverything(t *testing.T) {
	p := singleRolePattern(pattern.Step{Type: pattern.StepAssign, Role: "lead", Task: "x"})
	engine, provider := newTestEngine(t, p)
	provider.spawnErr = errors.New("out of capacity")

	_, err := engine.Execute(context.Background(), "solo", nil)
	require.Error(t, err)
	assert.Equal(t, FailureRoleNotProvisioned, KindOf(err))
	assert.True(t, provider.allStopped())
}

func TestExecute_NoHealthyRuntime(t *testing.T) {
	registry, err := pattern.NewRegistry(singleRolePattern(
		pattern.Step{Type: pattern.StepAssign, Role: "lead", Task: "x"},
	))
	require.NoError(t, err)

	engine := NewEngine(registry, runtime.NewFederation(), nil, nil)
	_, err = engine.Execute(context.Background(), "solo", nil)
	require.Error(t, err)
	assert.Equal(t, FailureNoRuntime, KindOf(err))
}

func TestExecute_StepTimeout(t *testing.T) {
	p := singleRolePattern(pattern.Step{Type: pattern.StepAssign, Role: "lead", Task: "x"})
	p.Workflow.StepTimeout = 50 * time.Millisecond

	engine, provider := newTestEngine(t, p)
	provider.replyFn = func(agent *runtime.AgentHandle, message string) (string, error) {
		return "", context.DeadlineExceeded
	}

	_, err := engine.Execute(context.Background(), "solo", nil)
	require.Error(t, err)
	assert.Equal(t, FailureTimeout, KindOf(err))
	assert.True(t, provider.allStopped(), "agents are stopped even on failure")
}

func TestExecute_CancelledContext(t *testing.T) {
	p := singleRolePattern(pattern.Step{Type: pattern.StepAssign, Role: "lead", Task: "x"})
	engine, provider := newTestEngine(t, p)
	provider.replyFn = func(agent *runtime.AgentHandle, message string) (string, error) {
		return "", context.Canceled
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := engine.Execute(ctx, "solo", nil)
	require.Error(t, err)
	assert.Equal(t, FailureCancelled, KindOf(err))
}
