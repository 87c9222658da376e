package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validPattern returns a minimal pattern that passes validation; tests
// mutate a copy to exercise individual invariants.
func validPattern() *Pattern {
	return &Pattern{
		Name: "triage",
		Structure: OrgStructure{
			Roles: []Role{
				{ID: "lead", Name: "Team Lead"},
				{ID: "worker", ReportsTo: "lead", MinInstances: 1, MaxInstances: 3},
			},
		},
		Workflow: Workflow{
			Steps: []Step{
				{Type: StepAssign, Role: "worker", Task: "Do the thing"},
			},
		},
	}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, Validate(validPattern()))
}

func TestValidate_RequiredFields(t *testing.T) {
	p := validPattern()
	p.Name = ""
	assertInvalid(t, p, "name")

	p = validPattern()
	p.Structure.Roles = nil
	assertInvalid(t, p, "structure.roles")

	p = validPattern()
	p.Structure.Roles[1].ID = ""
	assertInvalid(t, p, "structure.roles")
}

func TestValidate_DuplicateRoleID(t *testing.T) {
	p := validPattern()
	p.Structure.Roles = append(p.Structure.Roles, Role{ID: "worker"})
	assertInvalid(t, p, "structure.roles")
}

func TestValidate_UnknownReportsTo(t *testing.T) {
	p := validPattern()
	p.Structure.Roles[1].ReportsTo = "nobody"
	assertInvalid(t, p, "structure.roles")
}

func TestValidate_ReportsToCycle(t *testing.T) {
	p := validPattern()
	p.Structure.Roles[0].ReportsTo = "worker"
	assertInvalid(t, p, "structure.roles")
}

func TestValidate_ChainDeeperThanMaxDepth(t *testing.T) {
	p := validPattern()
	p.Structure.Escalation.MaxDepth = 1
	// lead -> worker is a chain of depth 2.
	assertInvalid(t, p, "structure.roles")
}

func TestValidate_SingletonInstanceBounds(t *testing.T) {
	p := validPattern()
	p.Structure.Roles[1].Singleton = true
	assertInvalid(t, p, "structure.roles")

	p = validPattern()
	p.Structure.Roles[1].MinInstances = 5
	p.Structure.Roles[1].MaxInstances = 2
	assertInvalid(t, p, "structure.roles")
}

func TestValidate_EscalationEnums(t *testing.T) {
	p := validPattern()
	p.Structure.Escalation.DefaultBehavior = "shout"
	assertInvalid(t, p, "structure.escalation.defaultBehavior")

	p = validPattern()
	p.Structure.Escalation.OnMaxDepth = "panic"
	assertInvalid(t, p, "structure.escalation.onMaxDepth")
}

func TestValidate_RoutingRules(t *testing.T) {
	p := validPattern()
	p.Structure.Routing = []RoutingRule{{To: "ghost"}}
	assertInvalid(t, p, "structure.routing")

	p = validPattern()
	p.Structure.Routing = []RoutingRule{{From: "ghost", To: "lead"}}
	assertInvalid(t, p, "structure.routing")

	p = validPattern()
	p.Structure.Routing = []RoutingRule{{From: "worker", To: "lead", Topics: []string{"status"}}}
	require.NoError(t, Validate(p))
}

func TestValidate_Steps(t *testing.T) {
	p := validPattern()
	p.Workflow.Steps = []Step{{Type: "teleport"}}
	assertInvalid(t, p, "workflow.steps")

	p = validPattern()
	p.Workflow.Steps = []Step{{Type: StepAssign, Role: "ghost", Task: "x"}}
	assertInvalid(t, p, "workflow.steps")

	p = validPattern()
	p.Workflow.Steps = []Step{{Type: StepAssign, Role: "worker"}}
	assertInvalid(t, p, "workflow.steps")

	p = validPattern()
	p.Workflow.Steps = []Step{{Type: StepParallel}}
	assertInvalid(t, p, "workflow.steps")

	p = validPattern()
	p.Workflow.Steps = []Step{{Type: StepSelect, Role: "worker", Criteria: "loudest"}}
	assertInvalid(t, p, "workflow.steps")

	p = validPattern()
	p.Workflow.Steps = []Step{{Type: StepAggregate, Method: "average"}}
	assertInvalid(t, p, "workflow.steps")

	p = validPattern()
	p.Workflow.Steps = []Step{{Type: StepCondition, Check: "$input.flag"}}
	assertInvalid(t, p, "workflow.steps")

	// Nested children are validated too.
	p = validPattern()
	p.Workflow.Steps = []Step{{
		Type:  StepSequential,
		Steps: []Step{{Type: StepAssign, Role: "ghost", Task: "x"}},
	}}
	assertInvalid(t, p, "workflow.steps")
}

func TestValidate_ConditionBranches(t *testing.T) {
	p := validPattern()
	p.Workflow.Steps = []Step{{
		Type:  StepCondition,
		Check: "$input.flag",
		Then:  &Step{Type: StepAssign, Role: "worker", Task: "yes"},
		Else:  &Step{Type: StepAssign, Role: "lead", Task: "no"},
	}}
	require.NoError(t, Validate(p))
}

func assertInvalid(t *testing.T, p *Pattern, field string) {
	t.Helper()
	err := Validate(p)
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, field, verr.Field)
}
