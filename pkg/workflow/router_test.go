package workflow

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parallax-dev/parallax/pkg/pattern"
	"github.com/parallax-dev/parallax/pkg/runtime"
)

// fakeDelivery records asks, tells, and surfaced messages. Ask replies come
// from answers keyed by agent id; missing entries simulate a silent agent.
type fakeDelivery struct {
	mu       sync.Mutex
	asks     []fakeSend
	tells    []fakeSend
	surfaced []string // surface reasons
	answers  map[string]string
}

func (d *fakeDelivery) delivery() Delivery {
	return Delivery{
		Ask: func(ctx context.Context, agentID, content string, timeout time.Duration) (*runtime.AgentMessage, error) {
			d.mu.Lock()
			d.asks = append(d.asks, fakeSend{AgentID: agentID, Message: content, Expect: true})
			answer, ok := d.answers[agentID]
			d.mu.Unlock()
			if !ok {
				return nil, context.DeadlineExceeded
			}
			return &runtime.AgentMessage{AgentID: agentID, Content: answer}, nil
		},
		Tell: func(ctx context.Context, agentID, content string) error {
			d.mu.Lock()
			d.tells = append(d.tells, fakeSend{AgentID: agentID, Message: content})
			d.mu.Unlock()
			return nil
		},
		Surface: func(exec *ExecutionContext, fromAgentID string, msg runtime.AgentMessage, reason string) {
			d.mu.Lock()
			d.surfaced = append(d.surfaced, reason)
			d.mu.Unlock()
		},
	}
}

// orgExec builds an execution over the given structure with one agent per
// role, named "<roleID>-agent".
func orgExec(structure pattern.OrgStructure) *ExecutionContext {
	exec := newExecutionContext(&pattern.Pattern{Name: "org", Structure: structure}, nil)
	for _, role := range structure.Roles {
		exec.addAgent(&AgentInstance{
			ID:     role.ID + "-agent",
			RoleID: role.ID,
			status: string(runtime.StatusIdle),
		})
	}
	return exec
}

func chainStructure() pattern.OrgStructure {
	return pattern.OrgStructure{
		Roles: []pattern.Role{
			{ID: "director", Name: "Director"},
			{ID: "manager", Name: "Manager", ReportsTo: "director"},
			{ID: "worker", Name: "Worker", ReportsTo: "manager"},
		},
	}
}

func question(content string) runtime.AgentMessage {
	return runtime.AgentMessage{Type: "question", Content: content}
}

func TestRoute_EscalationAnsweredByManager(t *testing.T) {
	d := &fakeDelivery{answers: map[string]string{"manager-agent": "use the blue pipeline"}}
	r := NewRouter(d.delivery(), nil)
	exec := orgExec(chainStructure())

	err := r.Route(context.Background(), exec, "worker-agent", question("which pipeline?"))
	require.NoError(t, err)

	require.Len(t, d.asks, 1)
	assert.Equal(t, "manager-agent", d.asks[0].AgentID)
	assert.Equal(t, "Message from Worker (worker):\nwhich pipeline?", d.asks[0].Message)

	require.Len(t, d.tells, 1)
	assert.Equal(t, "worker-agent", d.tells[0].AgentID)
	assert.Equal(t, "Response from Manager:\nuse the blue pipeline", d.tells[0].Message)
	assert.Empty(t, d.surfaced)
}

func TestRoute_EscalationClimbsToAnsweringRole(t *testing.T) {
	// The manager stays silent; the director answers.
	d := &fakeDelivery{answers: map[string]string{"director-agent": "ship it"}}
	r := NewRouter(d.delivery(), nil)
	exec := orgExec(chainStructure())

	err := r.Route(context.Background(), exec, "worker-agent", question("may I deploy?"))
	require.NoError(t, err)

	require.Len(t, d.asks, 2)
	assert.Equal(t, "manager-agent", d.asks[0].AgentID)
	assert.Equal(t, "director-agent", d.asks[1].AgentID)

	require.Len(t, d.tells, 1)
	assert.Equal(t, "worker-agent", d.tells[0].AgentID)
	assert.Equal(t, "Response from Director:\nship it", d.tells[0].Message)
}

func TestRoute_UnansweredQuestionSurfaces(t *testing.T) {
	d := &fakeDelivery{answers: map[string]string{}}
	r := NewRouter(d.delivery(), nil)
	exec := orgExec(chainStructure())

	err := r.Route(context.Background(), exec, "worker-agent", question("anyone?"))
	require.NoError(t, err)

	assert.Len(t, d.asks, 2, "every level of the chain is asked")
	require.Len(t, d.surfaced, 1)
	assert.Contains(t, d.surfaced[0], "root of the org tree")
}

func TestRoute_MaxDepthFail(t *testing.T) {
	structure := chainStructure()
	structure.Escalation.MaxDepth = 1
	structure.Escalation.OnMaxDepth = pattern.MaxDepthFail

	d := &fakeDelivery{answers: map[string]string{}}
	r := NewRouter(d.delivery(), nil)
	exec := orgExec(structure)

	err := r.Route(context.Background(), exec, "worker-agent", question("help"))
	require.Error(t, err)
	assert.Equal(t, FailureEscalation, KindOf(err))
}

func TestRoute_MaxDepthBestEffort(t *testing.T) {
	structure := chainStructure()
	structure.Escalation.MaxDepth = 1
	structure.Escalation.OnMaxDepth = pattern.MaxDepthReturnBestWork

	d := &fakeDelivery{answers: map[string]string{}}
	r := NewRouter(d.delivery(), nil)
	exec := orgExec(structure)

	err := r.Route(context.Background(), exec, "worker-agent", question("help"))
	require.NoError(t, err)

	require.Len(t, d.tells, 1)
	assert.Equal(t, "worker-agent", d.tells[0].AgentID)
	assert.Contains(t, d.tells[0].Message, "best judgment")
}

func TestRoute_RuleMatchDeliversDirectly(t *testing.T) {
	structure := chainStructure()
	structure.Routing = []pattern.RoutingRule{
		{From: "worker", To: "director", MessageTypes: []string{"incident"}},
	}

	d := &fakeDelivery{answers: map[string]string{}}
	r := NewRouter(d.delivery(), nil)
	exec := orgExec(structure)

	msg := runtime.AgentMessage{Type: "incident", Content: "disk full"}
	err := r.Route(context.Background(), exec, "worker-agent", msg)
	require.NoError(t, err)

	// The rule bypasses the manager entirely, fire-and-forget.
	require.Len(t, d.tells, 1)
	assert.Equal(t, "director-agent", d.tells[0].AgentID)
	assert.Equal(t, "Message from Worker (worker):\ndisk full", d.tells[0].Message)
	assert.Empty(t, d.asks)
}

func TestRoute_RuleMatchedQuestionRelaysAnswer(t *testing.T) {
	structure := chainStructure()
	structure.Routing = []pattern.RoutingRule{
		{From: "worker", To: "director", Topics: []string{"budget"}},
	}

	d := &fakeDelivery{answers: map[string]string{"director-agent": "approved"}}
	r := NewRouter(d.delivery(), nil)
	exec := orgExec(structure)

	msg := runtime.AgentMessage{
		Type:     "question",
		Content:  "can we buy more disks?",
		Metadata: map[string]any{"topic": "budget"},
	}
	err := r.Route(context.Background(), exec, "worker-agent", msg)
	require.NoError(t, err)

	require.Len(t, d.asks, 1)
	assert.Equal(t, "director-agent", d.asks[0].AgentID)
	require.Len(t, d.tells, 1)
	assert.Equal(t, "Response from Director:\napproved", d.tells[0].Message)
}

func TestRoute_NonMatchingRuleFallsThrough(t *testing.T) {
	structure := chainStructure()
	structure.Routing = []pattern.RoutingRule{
		{From: "manager", To: "director"},
	}

	d := &fakeDelivery{answers: map[string]string{"manager-agent": "on it"}}
	r := NewRouter(d.delivery(), nil)
	exec := orgExec(structure)

	err := r.Route(context.Background(), exec, "worker-agent", question("status?"))
	require.NoError(t, err)
	require.Len(t, d.asks, 1)
	assert.Equal(t, "manager-agent", d.asks[0].AgentID, "non-matching rule falls back to escalation")
}

func TestRoute_BroadcastBehavior(t *testing.T) {
	structure := pattern.OrgStructure{
		Roles: []pattern.Role{
			{ID: "lead", Name: "Lead"},
			{ID: "worker", Name: "Worker", ReportsTo: "lead"},
		},
		Escalation: pattern.EscalationPolicy{DefaultBehavior: pattern.EscalateBroadcast},
	}
	exec := orgExec(structure)
	exec.addAgent(&AgentInstance{ID: "lead-agent-2", RoleID: "lead", status: string(runtime.StatusIdle)})

	d := &fakeDelivery{answers: map[string]string{}}
	r := NewRouter(d.delivery(), nil)

	err := r.Route(context.Background(), exec, "worker-agent", runtime.AgentMessage{Content: "heads up"})
	require.NoError(t, err)

	require.Len(t, d.tells, 2, "broadcast reaches every instance of the reportsTo role")
	for _, tell := range d.tells {
		assert.Contains(t, tell.Message, "heads up")
	}
}

func TestRoute_SurfaceToUserBehavior(t *testing.T) {
	structure := chainStructure()
	structure.Escalation.DefaultBehavior = pattern.EscalateToUser

	d := &fakeDelivery{answers: map[string]string{}}
	r := NewRouter(d.delivery(), nil)
	exec := orgExec(structure)

	err := r.Route(context.Background(), exec, "worker-agent", question("user please"))
	require.NoError(t, err)
	assert.Empty(t, d.asks)
	require.Len(t, d.surfaced, 1)
}

func TestRoute_UnknownSender(t *testing.T) {
	d := &fakeDelivery{answers: map[string]string{}}
	r := NewRouter(d.delivery(), nil)
	exec := orgExec(chainStructure())

	err := r.Route(context.Background(), exec, "ghost", question("hello?"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown sender")
}
