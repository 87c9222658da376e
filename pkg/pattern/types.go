// Package pattern defines org-chart patterns: the organizational structure
// (roles, routing, escalation) plus the declarative workflow executed
// against it. Patterns are loaded once at startup and immutable afterwards.
package pattern

import "time"

// StepType tags the workflow step variant.
type StepType string

// Workflow step variants.
const (
	StepAssign     StepType = "assign"
	StepParallel   StepType = "parallel"
	StepSequential StepType = "sequential"
	StepSelect     StepType = "select"
	StepReview     StepType = "review"
	StepApprove    StepType = "approve"
	StepAggregate  StepType = "aggregate"
	StepCondition  StepType = "condition"
)

// SelectCriteria picks an agent within a role.
type SelectCriteria string

// Select criteria.
const (
	SelectAvailability SelectCriteria = "availability"
	SelectExpertise    SelectCriteria = "expertise"
	SelectRoundRobin   SelectCriteria = "round_robin"
)

// AggregateMethod combines the results of a preceding parallel step.
type AggregateMethod string

// Aggregation methods.
const (
	AggregateConsensus AggregateMethod = "consensus"
	AggregateMajority  AggregateMethod = "majority"
	AggregateMerge     AggregateMethod = "merge"
	AggregateBest      AggregateMethod = "best"
)

// EscalationBehavior is the default routing applied when no routing rule
// matches a peer message.
type EscalationBehavior string

// Escalation behaviors.
const (
	EscalateToReportsTo EscalationBehavior = "route_to_reports_to"
	EscalateBroadcast   EscalationBehavior = "broadcast"
	EscalateToUser      EscalationBehavior = "surface_to_user"
)

// OnMaxDepth is the policy applied when an escalation path exceeds MaxDepth.
type OnMaxDepth string

// Max-depth policies.
const (
	MaxDepthSurfaceToUser  OnMaxDepth = "surface_to_user"
	MaxDepthFail           OnMaxDepth = "fail"
	MaxDepthReturnBestWork OnMaxDepth = "return_best_effort"
)

// DefaultMaxDepth bounds escalation chains when the pattern does not set one.
const DefaultMaxDepth = 5

// DefaultStepTimeout bounds each assign/review/approve send.
const DefaultStepTimeout = 60 * time.Second

// Role is a node in the organizational tree.
type Role struct {
	ID                  string         `yaml:"id" json:"id"`
	Name                string         `yaml:"name,omitempty" json:"name,omitempty"`
	AgentTypes          []string       `yaml:"agentTypes,omitempty" json:"agentTypes,omitempty"`
	Capabilities        []string       `yaml:"capabilities,omitempty" json:"capabilities,omitempty"`
	ReportsTo           string         `yaml:"reportsTo,omitempty" json:"reportsTo,omitempty"`
	Singleton           bool           `yaml:"singleton,omitempty" json:"singleton,omitempty"`
	MinInstances        int            `yaml:"minInstances,omitempty" json:"minInstances,omitempty"`
	MaxInstances        int            `yaml:"maxInstances,omitempty" json:"maxInstances,omitempty"`
	Expertise           []string       `yaml:"expertise,omitempty" json:"expertise,omitempty"`
	AgentConfigOverride map[string]any `yaml:"agentConfigOverride,omitempty" json:"agentConfigOverride,omitempty"`
}

// DisplayName returns the human-facing role name (falls back to the id).
func (r Role) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.ID
}

// RoutingRule matches peer messages before escalation defaults apply.
// All set fields must match exactly.
type RoutingRule struct {
	From         string   `yaml:"from,omitempty" json:"from,omitempty"`
	To           string   `yaml:"to" json:"to"`
	Topics       []string `yaml:"topics,omitempty" json:"topics,omitempty"`
	MessageTypes []string `yaml:"messageTypes,omitempty" json:"messageTypes,omitempty"`
	Priority     string   `yaml:"priority,omitempty" json:"priority,omitempty"`
}

// EscalationPolicy controls message routing up the reportsTo hierarchy.
type EscalationPolicy struct {
	DefaultBehavior EscalationBehavior `yaml:"defaultBehavior,omitempty" json:"defaultBehavior,omitempty"`
	TimeoutMs       int                `yaml:"timeoutMs,omitempty" json:"timeoutMs,omitempty"`
	MaxDepth        int                `yaml:"maxDepth,omitempty" json:"maxDepth,omitempty"`
	OnMaxDepth      OnMaxDepth         `yaml:"onMaxDepth,omitempty" json:"onMaxDepth,omitempty"`
}

// OrgStructure is the collection of roles plus routing and escalation.
// Invariant (enforced at load): the reportsTo graph is a forest.
type OrgStructure struct {
	Roles      []Role           `yaml:"roles" json:"roles"`
	Routing    []RoutingRule    `yaml:"routing,omitempty" json:"routing,omitempty"`
	Escalation EscalationPolicy `yaml:"escalation,omitempty" json:"escalation,omitempty"`
}

// Role returns the role with the given id, or nil.
func (s *OrgStructure) Role(id string) *Role {
	for i := range s.Roles {
		if s.Roles[i].ID == id {
			return &s.Roles[i]
		}
	}
	return nil
}

// MaxDepth returns the effective escalation depth bound.
func (s *OrgStructure) MaxDepth() int {
	if s.Escalation.MaxDepth > 0 {
		return s.Escalation.MaxDepth
	}
	return DefaultMaxDepth
}

// Step is one element of a workflow — a tagged union dispatched on Type.
type Step struct {
	Type StepType `yaml:"type" json:"type"`

	// assign / select
	Role     string         `yaml:"role,omitempty" json:"role,omitempty"`
	Task     string         `yaml:"task,omitempty" json:"task,omitempty"`
	Input    map[string]any `yaml:"input,omitempty" json:"input,omitempty"`
	Criteria SelectCriteria `yaml:"criteria,omitempty" json:"criteria,omitempty"`

	// parallel / sequential
	Steps []Step `yaml:"steps,omitempty" json:"steps,omitempty"`

	// review / approve
	Reviewer string `yaml:"reviewer,omitempty" json:"reviewer,omitempty"`
	Approver string `yaml:"approver,omitempty" json:"approver,omitempty"`
	Subject  any    `yaml:"subject,omitempty" json:"subject,omitempty"`

	// aggregate
	Method AggregateMethod `yaml:"method,omitempty" json:"method,omitempty"`

	// condition
	Check string `yaml:"check,omitempty" json:"check,omitempty"`
	Then  *Step  `yaml:"then,omitempty" json:"then,omitempty"`
	Else  *Step  `yaml:"else,omitempty" json:"else,omitempty"`
}

// Workflow is the ordered step list plus result extraction.
type Workflow struct {
	Steps       []Step        `yaml:"steps" json:"steps"`
	Output      string        `yaml:"output,omitempty" json:"output,omitempty"`
	StepTimeout time.Duration `yaml:"stepTimeout,omitempty" json:"stepTimeout,omitempty"`
}

// Pattern combines an org structure and a workflow. Immutable after load.
type Pattern struct {
	Name      string       `yaml:"name" json:"name"`
	Version   string       `yaml:"version,omitempty" json:"version,omitempty"`
	Structure OrgStructure `yaml:"structure" json:"structure"`
	Workflow  Workflow     `yaml:"workflow" json:"workflow"`
}

// StepTimeout returns the effective per-step send timeout.
func (p *Pattern) StepTimeout() time.Duration {
	if p.Workflow.StepTimeout > 0 {
		return p.Workflow.StepTimeout
	}
	return DefaultStepTimeout
}
