package workflow

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/parallax-dev/parallax/pkg/pattern"
)

// ExecutionState is the lifecycle state of one workflow run.
type ExecutionState string

// Execution lifecycle states.
const (
	StateInitializing ExecutionState = "initializing"
	StateRunning      ExecutionState = "running"
	StateWaiting      ExecutionState = "waiting"
	StateCompleted    ExecutionState = "completed"
	StateFailed       ExecutionState = "failed"
)

// AgentInstance tracks one provisioned agent for the lifetime of a run.
type AgentInstance struct {
	ID        string
	RoleID    string
	Runtime   string
	Name      string
	SpawnedAt time.Time

	mu     sync.Mutex
	status string
	task   string
}

// SetStatus records the instance's runtime status.
func (a *AgentInstance) SetStatus(status string) {
	a.mu.Lock()
	a.status = status
	a.mu.Unlock()
}

// Status returns the last recorded status.
func (a *AgentInstance) Status() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.status
}

// SetTask records the task currently assigned to the instance.
func (a *AgentInstance) SetTask(task string) {
	a.mu.Lock()
	a.task = task
	a.mu.Unlock()
}

// Task returns the currently assigned task, if any.
func (a *AgentInstance) Task() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.task
}

// ExecutionContext carries all mutable state of one workflow run. All
// mutation goes through its methods; step goroutines and message handlers
// touch it concurrently.
type ExecutionContext struct {
	ID        string
	Pattern   *pattern.Pattern
	StartedAt time.Time

	mu        sync.RWMutex
	state     ExecutionState
	stepIndex int
	agents    map[string]*AgentInstance // by agent id
	byRole    map[string][]string       // role id -> agent ids, spawn order
	vars      map[string]any
}

func newExecutionContext(p *pattern.Pattern, input map[string]any) *ExecutionContext {
	vars := make(map[string]any, len(input)+4)
	vars["input"] = input
	return &ExecutionContext{
		ID:        uuid.NewString(),
		Pattern:   p,
		StartedAt: time.Now(),
		state:     StateInitializing,
		agents:    make(map[string]*AgentInstance),
		byRole:    make(map[string][]string),
		vars:      vars,
	}
}

// State returns the current lifecycle state.
func (e *ExecutionContext) State() ExecutionState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

func (e *ExecutionContext) setState(s ExecutionState) {
	e.mu.Lock()
	e.state = s
	e.mu.Unlock()
}

// StepIndex returns the index of the top-level step currently executing.
func (e *ExecutionContext) StepIndex() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.stepIndex
}

func (e *ExecutionContext) setStepIndex(i int) {
	e.mu.Lock()
	e.stepIndex = i
	e.mu.Unlock()
}

func (e *ExecutionContext) addAgent(inst *AgentInstance) {
	e.mu.Lock()
	e.agents[inst.ID] = inst
	e.byRole[inst.RoleID] = append(e.byRole[inst.RoleID], inst.ID)
	e.mu.Unlock()
}

// Agent returns the tracked instance for an agent id, or nil.
func (e *ExecutionContext) Agent(id string) *AgentInstance {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.agents[id]
}

// Agents returns all tracked instances.
func (e *ExecutionContext) Agents() []*AgentInstance {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]*AgentInstance, 0, len(e.agents))
	for _, inst := range e.agents {
		out = append(out, inst)
	}
	return out
}

// AgentCount returns the number of provisioned agents.
func (e *ExecutionContext) AgentCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.agents)
}

// RoleAgents returns the agent ids provisioned for a role, in spawn order.
func (e *ExecutionContext) RoleAgents(roleID string) []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	ids := e.byRole[roleID]
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// SetVariable binds a name in the run's variable scope.
func (e *ExecutionContext) SetVariable(name string, value any) {
	e.mu.Lock()
	e.vars[name] = value
	e.mu.Unlock()
}

// Variable returns the bound value and whether the name exists.
func (e *ExecutionContext) Variable(name string) (any, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	v, ok := e.vars[name]
	return v, ok
}

// Variables returns a shallow copy of the variable scope.
func (e *ExecutionContext) Variables() map[string]any {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make(map[string]any, len(e.vars))
	for k, v := range e.vars {
		out[k] = v
	}
	return out
}
