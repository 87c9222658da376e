// Package workflow interprets pattern workflows: it provisions agents for
// every role, walks the step list, routes peer messages through the org
// tree, and tears everything down when the run ends.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/parallax-dev/parallax/pkg/audit"
	"github.com/parallax-dev/parallax/pkg/pattern"
	"github.com/parallax-dev/parallax/pkg/runtime"
)

// agentStopTimeout bounds each agent stop during teardown.
const agentStopTimeout = 30 * time.Second

// UserEventType tags engine events addressed to the user.
type UserEventType string

// User-facing engine events.
const (
	// UserEventLeadMessage carries a message from a root (lead) role.
	UserEventLeadMessage UserEventType = "lead_agent_message"
	// UserEventSurfaced carries a question no agent in the tree answered.
	UserEventSurfaced UserEventType = "surface_to_user"
)

// UserEvent is one engine event addressed to the user.
type UserEvent struct {
	Type        UserEventType        `json:"type"`
	ExecutionID string               `json:"executionId"`
	AgentID     string               `json:"agentId,omitempty"`
	RoleID      string               `json:"roleId,omitempty"`
	Message     runtime.AgentMessage `json:"message"`
	Reason      string               `json:"reason,omitempty"`
}

// Result summarizes one completed workflow run.
type Result struct {
	ExecutionID string         `json:"executionId"`
	Pattern     string         `json:"pattern"`
	State       ExecutionState `json:"state"`
	Output      any            `json:"output,omitempty"`
	StepResults []any          `json:"stepResults,omitempty"`
	AgentsUsed  int            `json:"agentsUsed"`
	Duration    time.Duration  `json:"duration"`
}

// Engine executes pattern workflows against the runtime federation.
type Engine struct {
	registry *pattern.Registry
	fed      *runtime.Federation
	audit    audit.Sink
	logger   *slog.Logger
	router   *Router

	mu         sync.RWMutex
	executions map[string]*ExecutionContext

	events chan UserEvent
}

// NewEngine creates a workflow engine. A nil sink disables auditing.
func NewEngine(registry *pattern.Registry, fed *runtime.Federation, sink audit.Sink, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if sink == nil {
		sink = audit.NopSink{}
	}
	e := &Engine{
		registry:   registry,
		fed:        fed,
		audit:      sink,
		logger:     logger,
		executions: make(map[string]*ExecutionContext),
		events:     make(chan UserEvent, 64),
	}
	e.router = NewRouter(Delivery{
		Ask: func(ctx context.Context, agentID, content string, timeout time.Duration) (*runtime.AgentMessage, error) {
			return e.fed.Send(ctx, agentID, content, runtime.SendOptions{ExpectResponse: true, Timeout: timeout})
		},
		Tell: func(ctx context.Context, agentID, content string) error {
			_, err := e.fed.Send(ctx, agentID, content, runtime.SendOptions{})
			return err
		},
		Surface: func(exec *ExecutionContext, fromAgentID string, msg runtime.AgentMessage, reason string) {
			inst := exec.Agent(fromAgentID)
			roleID := ""
			if inst != nil {
				roleID = inst.RoleID
			}
			e.emit(UserEvent{
				Type:        UserEventSurfaced,
				ExecutionID: exec.ID,
				AgentID:     fromAgentID,
				RoleID:      roleID,
				Message:     msg,
				Reason:      reason,
			})
		},
	}, logger)
	return e
}

// Events returns the stream of user-facing events (lead-agent messages and
// surfaced questions). Slow consumers drop events rather than block runs.
func (e *Engine) Events() <-chan UserEvent {
	return e.events
}

// Execution returns a tracked (still running) execution, or nil.
func (e *Engine) Execution(id string) *ExecutionContext {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.executions[id]
}

// ActiveExecutions returns all currently running executions.
func (e *Engine) ActiveExecutions() []*ExecutionContext {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]*ExecutionContext, 0, len(e.executions))
	for _, exec := range e.executions {
		out = append(out, exec)
	}
	return out
}

// Execute runs the named pattern to completion. Agents provisioned for the
// run never outlive it: every exit path stops them all.
func (e *Engine) Execute(ctx context.Context, patternName string, input map[string]any) (*Result, error) {
	p := e.registry.Get(patternName)
	if p == nil {
		return nil, newError(FailurePatternNotFound, -1, fmt.Errorf("pattern %q is not registered", patternName))
	}

	exec := newExecutionContext(p, input)
	e.track(exec)
	defer e.forget(exec.ID)

	e.logger.Info("Starting workflow execution",
		"execution_id", exec.ID,
		"pattern", patternName)
	e.audit.Record(ctx, audit.Event{
		Category: audit.CategoryWorkflow,
		Action:   "execution.started",
		Subject:  exec.ID,
		Detail:   map[string]any{"pattern": patternName},
	})

	if err := e.provision(ctx, exec); err != nil {
		exec.setState(StateFailed)
		e.recordOutcome(ctx, exec, err)
		return nil, err
	}

	unsubs, err := e.subscribeAll(ctx, exec)
	defer e.teardown(exec, unsubs)
	if err != nil {
		exec.setState(StateFailed)
		e.recordOutcome(ctx, exec, err)
		return nil, err
	}

	exec.setState(StateRunning)
	stepResults, err := e.runSteps(ctx, exec)
	if err != nil {
		exec.setState(StateFailed)
		e.recordOutcome(ctx, exec, err)
		return nil, err
	}

	output := any(nil)
	if p.Workflow.Output != "" {
		output = resolveValue(exec, p.Workflow.Output)
	} else if len(stepResults) > 0 {
		output = stepResults[len(stepResults)-1]
	}

	exec.setState(StateCompleted)
	e.recordOutcome(ctx, exec, nil)
	return &Result{
		ExecutionID: exec.ID,
		Pattern:     patternName,
		State:       StateCompleted,
		Output:      output,
		StepResults: stepResults,
		AgentsUsed:  exec.AgentCount(),
		Duration:    time.Since(exec.StartedAt),
	}, nil
}

func (e *Engine) track(exec *ExecutionContext) {
	e.mu.Lock()
	e.executions[exec.ID] = exec
	e.mu.Unlock()
}

func (e *Engine) forget(id string) {
	e.mu.Lock()
	delete(e.executions, id)
	e.mu.Unlock()
}

func (e *Engine) recordOutcome(ctx context.Context, exec *ExecutionContext, err error) {
	detail := map[string]any{
		"pattern":     exec.Pattern.Name,
		"duration_ms": time.Since(exec.StartedAt).Milliseconds(),
		"agents_used": exec.AgentCount(),
	}
	action := "execution.completed"
	if err != nil {
		action = "execution.failed"
		detail["error"] = err.Error()
		detail["failure_kind"] = string(KindOf(err))
	}
	e.audit.Record(ctx, audit.Event{
		Category: audit.CategoryWorkflow,
		Action:   action,
		Subject:  exec.ID,
		Detail:   detail,
	})
}

// provision spawns every role's agents in parallel: one instance for
// singleton roles, otherwise max(minInstances, 1). A single spawn failure
// aborts the run and stops everything already spawned.
func (e *Engine) provision(ctx context.Context, exec *ExecutionContext) error {
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for i := range exec.Pattern.Structure.Roles {
		role := &exec.Pattern.Structure.Roles[i]
		count := 1
		if !role.Singleton && role.MinInstances > 1 {
			count = role.MinInstances
		}
		for n := 0; n < count; n++ {
			wg.Add(1)
			go func(role *pattern.Role, n int) {
				defer wg.Done()
				inst, err := e.spawnFor(ctx, role, n)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					return
				}
				exec.addAgent(inst)
			}(role, n)
		}
	}
	wg.Wait()

	if firstErr != nil {
		e.stopAll(exec)
		kind := FailureRoleNotProvisioned
		if errors.Is(firstErr, runtime.ErrNoHealthyRuntime) {
			kind = FailureNoRuntime
		}
		return newError(kind, -1, firstErr)
	}
	return nil
}

func (e *Engine) spawnFor(ctx context.Context, role *pattern.Role, n int) (*AgentInstance, error) {
	agentType := ""
	if len(role.AgentTypes) > 0 {
		agentType = role.AgentTypes[0]
	}
	cfg := runtime.AgentConfig{
		Role:         role.ID,
		Type:         agentType,
		Name:         fmt.Sprintf("%s %d", role.DisplayName(), n+1),
		Capabilities: role.Capabilities,
		Expertise:    role.Expertise,
		Metadata:     role.AgentConfigOverride,
	}
	h, err := e.fed.Spawn(ctx, cfg, "")
	if err != nil {
		return nil, fmt.Errorf("failed to spawn agent for role %s: %w", role.ID, err)
	}
	return &AgentInstance{
		ID:        h.ID,
		RoleID:    role.ID,
		Runtime:   h.Runtime,
		Name:      cfg.Name,
		SpawnedAt: time.Now(),
		status:    string(h.Status),
	}, nil
}

// subscribeAll attaches the peer-message handler to every provisioned
// agent. On partial failure the successful subscriptions are returned so
// teardown can release them.
func (e *Engine) subscribeAll(ctx context.Context, exec *ExecutionContext) ([]runtime.UnsubscribeFunc, error) {
	var unsubs []runtime.UnsubscribeFunc
	for _, inst := range exec.Agents() {
		agentID := inst.ID
		unsub, err := e.fed.Subscribe(ctx, agentID, func(msg runtime.AgentMessage) {
			go e.handleAgentMessage(ctx, exec, agentID, msg)
		})
		if err != nil {
			return unsubs, fmt.Errorf("failed to subscribe to agent %s: %w", agentID, err)
		}
		unsubs = append(unsubs, unsub)
	}
	return unsubs, nil
}

// handleAgentMessage is the side channel for messages agents emit outside
// step request/response: root-role messages surface to the user, everything
// else is routed through the org tree.
func (e *Engine) handleAgentMessage(ctx context.Context, exec *ExecutionContext, agentID string, msg runtime.AgentMessage) {
	inst := exec.Agent(agentID)
	if inst == nil {
		return
	}
	role := exec.Pattern.Structure.Role(inst.RoleID)
	if role == nil {
		return
	}

	if role.ReportsTo == "" {
		e.emit(UserEvent{
			Type:        UserEventLeadMessage,
			ExecutionID: exec.ID,
			AgentID:     agentID,
			RoleID:      role.ID,
			Message:     msg,
		})
		return
	}

	if err := e.router.Route(ctx, exec, agentID, msg); err != nil {
		e.logger.Warn("Failed to route agent message",
			"execution_id", exec.ID,
			"agent_id", agentID,
			"role", role.ID,
			"error", err)
	}
}

func (e *Engine) emit(ev UserEvent) {
	select {
	case e.events <- ev:
	default:
		e.logger.Warn("Dropping user event, channel full",
			"type", string(ev.Type),
			"execution_id", ev.ExecutionID)
	}
}

// teardown releases subscriptions and stops all agents. It runs on every
// exit path and uses a fresh context so a cancelled run still cleans up.
func (e *Engine) teardown(exec *ExecutionContext, unsubs []runtime.UnsubscribeFunc) {
	for _, unsub := range unsubs {
		unsub()
	}
	e.stopAll(exec)
	e.logger.Info("Workflow execution cleaned up",
		"execution_id", exec.ID,
		"state", string(exec.State()))
}

func (e *Engine) stopAll(exec *ExecutionContext) {
	agents := exec.Agents()
	var wg sync.WaitGroup
	for _, inst := range agents {
		wg.Add(1)
		go func(inst *AgentInstance) {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), agentStopTimeout)
			defer cancel()
			if err := e.fed.StopAgent(ctx, inst.ID, runtime.StopOptions{Timeout: agentStopTimeout}); err != nil {
				e.logger.Warn("Failed to stop agent during cleanup",
					"execution_id", exec.ID,
					"agent_id", inst.ID,
					"error", err)
				return
			}
			inst.SetStatus(string(runtime.StatusStopped))
		}(inst)
	}
	wg.Wait()
}

// runSteps walks the top-level step list, binding step_<i>_result after
// each step.
func (e *Engine) runSteps(ctx context.Context, exec *ExecutionContext) ([]any, error) {
	results := make([]any, 0, len(exec.Pattern.Workflow.Steps))
	var prev any
	for i := range exec.Pattern.Workflow.Steps {
		if err := ctx.Err(); err != nil {
			return nil, newError(FailureCancelled, i, err)
		}
		exec.setStepIndex(i)
		step := &exec.Pattern.Workflow.Steps[i]
		res, err := e.executeStep(ctx, exec, step, i, prev)
		if err != nil {
			return nil, err
		}
		exec.SetVariable(fmt.Sprintf("step_%d_result", i), res)
		results = append(results, res)
		prev = res
	}
	return results, nil
}
