package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/parallax-dev/parallax/pkg/pattern"
	"github.com/parallax-dev/parallax/pkg/runtime"
)

// DefaultHopTimeout bounds each escalation hop when the pattern does not
// set escalation.timeoutMs.
const DefaultHopTimeout = 30 * time.Second

// Delivery is the transport the router uses to move messages between
// agents. The engine wires it to the runtime federation.
type Delivery struct {
	// Ask sends content to an agent and waits for a reply.
	Ask func(ctx context.Context, agentID, content string, timeout time.Duration) (*runtime.AgentMessage, error)
	// Tell sends content to an agent without waiting.
	Tell func(ctx context.Context, agentID, content string) error
	// Surface hands a message to the user when no agent can answer it.
	Surface func(exec *ExecutionContext, fromAgentID string, msg runtime.AgentMessage, reason string)
}

// Router moves peer messages through the org tree: explicit routing rules
// first, then the pattern's escalation policy up the reportsTo chain.
type Router struct {
	delivery Delivery
	logger   *slog.Logger
}

// NewRouter creates a router over the given delivery transport.
func NewRouter(delivery Delivery, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{delivery: delivery, logger: logger}
}

// Route dispatches one peer message originating from fromAgentID. Matching
// routing rules are tried in declaration order; when none matches, the
// escalation default applies.
func (r *Router) Route(ctx context.Context, exec *ExecutionContext, fromAgentID string, msg runtime.AgentMessage) error {
	inst := exec.Agent(fromAgentID)
	if inst == nil {
		return fmt.Errorf("unknown sender agent %s", fromAgentID)
	}
	structure := &exec.Pattern.Structure

	if rule := matchRule(structure, inst.RoleID, msg); rule != nil {
		return r.deliverToRole(ctx, exec, fromAgentID, rule.To, msg)
	}

	behavior := structure.Escalation.DefaultBehavior
	if behavior == "" {
		behavior = pattern.EscalateToReportsTo
	}
	switch behavior {
	case pattern.EscalateBroadcast:
		return r.broadcast(ctx, exec, fromAgentID, msg)
	case pattern.EscalateToUser:
		r.delivery.Surface(exec, fromAgentID, msg, "escalation policy surfaces messages to the user")
		return nil
	default:
		return r.Escalate(ctx, exec, fromAgentID, msg, nil)
	}
}

// deliverToRole delivers a rule-matched message to the first provisioned
// agent of the target role. Questions wait one hop timeout for an answer
// which is relayed back to the sender; plain messages are fire-and-forget.
func (r *Router) deliverToRole(ctx context.Context, exec *ExecutionContext, fromAgentID, roleID string, msg runtime.AgentMessage) error {
	structure := &exec.Pattern.Structure
	target := structure.Role(roleID)
	if target == nil {
		return fmt.Errorf("routing rule targets unknown role %s", roleID)
	}
	ids := exec.RoleAgents(roleID)
	if len(ids) == 0 {
		return fmt.Errorf("role %s has no provisioned agents", roleID)
	}
	inst := exec.Agent(fromAgentID)
	fromRole := structure.Role(inst.RoleID)
	content := fmt.Sprintf("Message from %s (%s):\n%s", fromRole.DisplayName(), fromRole.ID, msg.Content)

	if msg.Type == "question" {
		answer, err := r.delivery.Ask(ctx, ids[0], content, r.hopTimeout(exec))
		if err != nil {
			return err
		}
		reply := fmt.Sprintf("Response from %s:\n%s", target.DisplayName(), answer.Content)
		return r.delivery.Tell(ctx, fromAgentID, reply)
	}
	return r.delivery.Tell(ctx, ids[0], content)
}

// matchRule returns the first routing rule whose set fields all match.
func matchRule(s *pattern.OrgStructure, fromRole string, msg runtime.AgentMessage) *pattern.RoutingRule {
	topic, _ := msg.Metadata["topic"].(string)
	for i := range s.Routing {
		rule := &s.Routing[i]
		if rule.From != "" && rule.From != fromRole {
			continue
		}
		if len(rule.Topics) > 0 && !contains(rule.Topics, topic) {
			continue
		}
		if len(rule.MessageTypes) > 0 && !contains(rule.MessageTypes, msg.Type) {
			continue
		}
		return rule
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// Escalate walks the question up the reportsTo chain. path holds the role
// ids already visited; its length bounds the chain at the pattern's
// maxDepth. A manager that answers within the hop timeout ends the chain;
// one that does not adds itself to the path and the question moves up.
func (r *Router) Escalate(ctx context.Context, exec *ExecutionContext, fromAgentID string, msg runtime.AgentMessage, path []string) error {
	inst := exec.Agent(fromAgentID)
	if inst == nil {
		return fmt.Errorf("unknown sender agent %s", fromAgentID)
	}
	structure := &exec.Pattern.Structure
	origin := inst
	originRole := structure.Role(origin.RoleID)
	if originRole == nil {
		return fmt.Errorf("agent %s has unknown role %s", fromAgentID, origin.RoleID)
	}

	currentRole := originRole
	for {
		targetID := currentRole.ReportsTo
		if targetID == "" {
			r.delivery.Surface(exec, fromAgentID, msg, "question reached the root of the org tree")
			return nil
		}
		if len(path)+1 > structure.MaxDepth() {
			return r.applyMaxDepth(exec, fromAgentID, msg)
		}
		target := structure.Role(targetID)
		if target == nil {
			return fmt.Errorf("role %s reports to unknown role %s", currentRole.ID, targetID)
		}

		answer, err := r.askRole(ctx, exec, origin, target, msg)
		if err == nil && answer != nil {
			reply := fmt.Sprintf("Response from %s:\n%s", target.DisplayName(), answer.Content)
			return r.delivery.Tell(ctx, fromAgentID, reply)
		}
		if err != nil {
			r.logger.Warn("Escalation hop failed, moving up",
				"execution_id", exec.ID,
				"from_role", currentRole.ID,
				"to_role", targetID,
				"error", err)
		}
		path = append(path, targetID)
		currentRole = target
	}
}

// askRole sends the question to the first provisioned agent of the target
// role and waits one hop timeout for its answer.
func (r *Router) askRole(ctx context.Context, exec *ExecutionContext, origin *AgentInstance, target *pattern.Role, msg runtime.AgentMessage) (*runtime.AgentMessage, error) {
	ids := exec.RoleAgents(target.ID)
	if len(ids) == 0 {
		return nil, fmt.Errorf("role %s has no provisioned agents", target.ID)
	}
	originRole := exec.Pattern.Structure.Role(origin.RoleID)
	content := fmt.Sprintf("Message from %s (%s):\n%s", originRole.DisplayName(), originRole.ID, msg.Content)
	return r.delivery.Ask(ctx, ids[0], content, r.hopTimeout(exec))
}

// broadcast delivers the message to every instance of the sender's
// reportsTo role without waiting for replies.
func (r *Router) broadcast(ctx context.Context, exec *ExecutionContext, fromAgentID string, msg runtime.AgentMessage) error {
	inst := exec.Agent(fromAgentID)
	structure := &exec.Pattern.Structure
	role := structure.Role(inst.RoleID)
	if role == nil || role.ReportsTo == "" {
		r.delivery.Surface(exec, fromAgentID, msg, "broadcast from a root role surfaces to the user")
		return nil
	}
	target := structure.Role(role.ReportsTo)
	content := fmt.Sprintf("Message from %s (%s):\n%s", role.DisplayName(), role.ID, msg.Content)
	var firstErr error
	for _, id := range exec.RoleAgents(target.ID) {
		if err := r.delivery.Tell(ctx, id, content); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (r *Router) applyMaxDepth(exec *ExecutionContext, fromAgentID string, msg runtime.AgentMessage) error {
	structure := &exec.Pattern.Structure
	switch structure.Escalation.OnMaxDepth {
	case pattern.MaxDepthFail:
		return newError(FailureEscalation, -1,
			fmt.Errorf("escalation exceeded max depth %d", structure.MaxDepth()))
	case pattern.MaxDepthReturnBestWork:
		note := "No answer was available within the escalation depth limit; proceed with your best judgment."
		return r.delivery.Tell(context.Background(), fromAgentID, note)
	default:
		r.delivery.Surface(exec, fromAgentID, msg, "escalation exceeded the configured depth limit")
		return nil
	}
}

func (r *Router) hopTimeout(exec *ExecutionContext) time.Duration {
	if ms := exec.Pattern.Structure.Escalation.TimeoutMs; ms > 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return DefaultHopTimeout
}
