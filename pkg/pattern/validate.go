package pattern

import (
	"fmt"
)

// ValidationError reports a contract violation found at pattern ingest.
// Runtime code never observes invalid patterns: loading fails fast instead.
type ValidationError struct {
	Pattern string
	Field   string
	Reason  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %s: %s", e.Pattern, e.Field, e.Reason)
}

func newValidationError(pattern, field, reason string) *ValidationError {
	return &ValidationError{Pattern: pattern, Field: field, Reason: reason}
}

// Validate checks every ingest-time invariant:
//   - at least one role; unique role ids
//   - reportsTo references existing roles and forms a forest whose depth
//     does not exceed the escalation maxDepth
//   - singleton implies minInstances = maxInstances = 1
//   - instance bounds are coherent
//   - escalation enums are known
//   - every workflow step has a known tag, references existing roles, and
//     uses known select criteria / aggregation methods
func Validate(p *Pattern) error {
	if p.Name == "" {
		return newValidationError("", "name", "required")
	}
	if len(p.Structure.Roles) == 0 {
		return newValidationError(p.Name, "structure.roles", "at least one role is required")
	}

	roles := make(map[string]*Role, len(p.Structure.Roles))
	for i := range p.Structure.Roles {
		r := &p.Structure.Roles[i]
		if r.ID == "" {
			return newValidationError(p.Name, "structure.roles", "role id is required")
		}
		if _, dup := roles[r.ID]; dup {
			return newValidationError(p.Name, "structure.roles", fmt.Sprintf("duplicate role id %q", r.ID))
		}
		roles[r.ID] = r
	}

	for _, r := range roles {
		if r.ReportsTo != "" {
			if _, ok := roles[r.ReportsTo]; !ok {
				return newValidationError(p.Name, "structure.roles",
					fmt.Sprintf("role %q reports to unknown role %q", r.ID, r.ReportsTo))
			}
		}
		if r.Singleton && (r.MinInstances > 1 || r.MaxInstances > 1) {
			return newValidationError(p.Name, "structure.roles",
				fmt.Sprintf("singleton role %q must have minInstances = maxInstances = 1", r.ID))
		}
		if r.MinInstances < 0 || r.MaxInstances < 0 {
			return newValidationError(p.Name, "structure.roles",
				fmt.Sprintf("role %q has negative instance bounds", r.ID))
		}
		if r.MaxInstances > 0 && r.MinInstances > r.MaxInstances {
			return newValidationError(p.Name, "structure.roles",
				fmt.Sprintf("role %q has minInstances > maxInstances", r.ID))
		}
	}

	if err := validateHierarchy(p, roles); err != nil {
		return err
	}
	if err := validateEscalation(p); err != nil {
		return err
	}
	for i := range p.Workflow.Steps {
		if err := validateStep(p, &p.Workflow.Steps[i], roles); err != nil {
			return err
		}
	}
	return nil
}

// validateHierarchy rejects cyclic reportsTo chains and chains deeper than
// the escalation maxDepth, via depth-first traversal from every role.
func validateHierarchy(p *Pattern, roles map[string]*Role) error {
	maxDepth := p.Structure.MaxDepth()

	for id := range roles {
		seen := map[string]bool{}
		depth := 0
		current := id
		for current != "" {
			if seen[current] {
				return newValidationError(p.Name, "structure.roles",
					fmt.Sprintf("reportsTo cycle detected at role %q", current))
			}
			seen[current] = true
			depth++
			if depth > maxDepth {
				return newValidationError(p.Name, "structure.roles",
					fmt.Sprintf("reportsTo chain from %q exceeds maxDepth %d", id, maxDepth))
			}
			current = roles[current].ReportsTo
		}
	}
	return nil
}

func validateEscalation(p *Pattern) error {
	esc := p.Structure.Escalation
	switch esc.DefaultBehavior {
	case "", EscalateToReportsTo, EscalateBroadcast, EscalateToUser:
	default:
		return newValidationError(p.Name, "structure.escalation.defaultBehavior",
			fmt.Sprintf("unknown behavior %q", esc.DefaultBehavior))
	}
	switch esc.OnMaxDepth {
	case "", MaxDepthSurfaceToUser, MaxDepthFail, MaxDepthReturnBestWork:
	default:
		return newValidationError(p.Name, "structure.escalation.onMaxDepth",
			fmt.Sprintf("unknown policy %q", esc.OnMaxDepth))
	}
	if esc.TimeoutMs < 0 {
		return newValidationError(p.Name, "structure.escalation.timeoutMs", "must be >= 0")
	}
	if esc.MaxDepth < 0 {
		return newValidationError(p.Name, "structure.escalation.maxDepth", "must be >= 0")
	}
	for _, rule := range p.Structure.Routing {
		if rule.To == "" {
			return newValidationError(p.Name, "structure.routing", "rule target role is required")
		}
		if p.Structure.Role(rule.To) == nil {
			return newValidationError(p.Name, "structure.routing",
				fmt.Sprintf("rule targets unknown role %q", rule.To))
		}
		if rule.From != "" && p.Structure.Role(rule.From) == nil {
			return newValidationError(p.Name, "structure.routing",
				fmt.Sprintf("rule source is unknown role %q", rule.From))
		}
	}
	return nil
}

func validateStep(p *Pattern, s *Step, roles map[string]*Role) error {
	switch s.Type {
	case StepAssign:
		if s.Role == "" {
			return newValidationError(p.Name, "workflow.steps", "assign requires a role")
		}
		if _, ok := roles[s.Role]; !ok {
			return newValidationError(p.Name, "workflow.steps",
				fmt.Sprintf("assign references unknown role %q", s.Role))
		}
		if s.Task == "" {
			return newValidationError(p.Name, "workflow.steps", "assign requires a task")
		}

	case StepParallel, StepSequential:
		if len(s.Steps) == 0 {
			return newValidationError(p.Name, "workflow.steps",
				fmt.Sprintf("%s requires child steps", s.Type))
		}
		for i := range s.Steps {
			if err := validateStep(p, &s.Steps[i], roles); err != nil {
				return err
			}
		}

	case StepSelect:
		if s.Role == "" {
			return newValidationError(p.Name, "workflow.steps", "select requires a role")
		}
		if _, ok := roles[s.Role]; !ok {
			return newValidationError(p.Name, "workflow.steps",
				fmt.Sprintf("select references unknown role %q", s.Role))
		}
		// Unknown criteria are rejected at load rather than silently
		// defaulting at run time.
		switch s.Criteria {
		case "", SelectAvailability, SelectExpertise, SelectRoundRobin:
		default:
			return newValidationError(p.Name, "workflow.steps",
				fmt.Sprintf("unknown select criteria %q", s.Criteria))
		}

	case StepReview:
		if s.Reviewer == "" {
			return newValidationError(p.Name, "workflow.steps", "review requires a reviewer role")
		}
		if _, ok := roles[s.Reviewer]; !ok {
			return newValidationError(p.Name, "workflow.steps",
				fmt.Sprintf("review references unknown role %q", s.Reviewer))
		}

	case StepApprove:
		if s.Approver == "" {
			return newValidationError(p.Name, "workflow.steps", "approve requires an approver role")
		}
		if _, ok := roles[s.Approver]; !ok {
			return newValidationError(p.Name, "workflow.steps",
				fmt.Sprintf("approve references unknown role %q", s.Approver))
		}

	case StepAggregate:
		switch s.Method {
		case AggregateConsensus, AggregateMajority, AggregateMerge, AggregateBest:
		default:
			return newValidationError(p.Name, "workflow.steps",
				fmt.Sprintf("unknown aggregation method %q", s.Method))
		}

	case StepCondition:
		if s.Check == "" {
			return newValidationError(p.Name, "workflow.steps", "condition requires a check expression")
		}
		if s.Then == nil {
			return newValidationError(p.Name, "workflow.steps", "condition requires a then branch")
		}
		if err := validateStep(p, s.Then, roles); err != nil {
			return err
		}
		if s.Else != nil {
			if err := validateStep(p, s.Else, roles); err != nil {
				return err
			}
		}

	default:
		return newValidationError(p.Name, "workflow.steps",
			fmt.Sprintf("unknown step type %q", s.Type))
	}
	return nil
}
