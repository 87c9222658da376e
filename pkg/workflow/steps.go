package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/parallax-dev/parallax/pkg/pattern"
	"github.com/parallax-dev/parallax/pkg/runtime"
)

// executeStep interprets one step. idx is the step's position within its
// parent list; prev is the preceding sibling's result (aggregate consumes
// it).
func (e *Engine) executeStep(ctx context.Context, exec *ExecutionContext, step *pattern.Step, idx int, prev any) (any, error) {
	switch step.Type {
	case pattern.StepAssign:
		return e.executeAssign(ctx, exec, step, idx)
	case pattern.StepParallel:
		return e.executeParallel(ctx, exec, step, idx)
	case pattern.StepSequential:
		return e.executeSequential(ctx, exec, step, idx)
	case pattern.StepSelect:
		return e.executeSelect(exec, step, idx)
	case pattern.StepReview:
		return e.executeReview(ctx, exec, step, idx)
	case pattern.StepApprove:
		return e.executeApprove(ctx, exec, step, idx)
	case pattern.StepAggregate:
		return e.executeAggregate(step, idx, prev)
	case pattern.StepCondition:
		return e.executeCondition(ctx, exec, step, idx)
	default:
		return nil, newError(FailureStepFailed, idx, fmt.Errorf("unknown step type %q", step.Type))
	}
}

// executeAssign sends the step's task to one agent of the role and waits
// for the reply within the pattern's step timeout.
func (e *Engine) executeAssign(ctx context.Context, exec *ExecutionContext, step *pattern.Step, idx int) (any, error) {
	agentID, err := e.pickAgent(ctx, exec, step.Role, pattern.SelectAvailability, idx)
	if err != nil {
		return nil, err
	}

	task := interpolate(exec, step.Task)
	if len(step.Input) > 0 {
		resolved := resolveValue(exec, step.Input)
		data, merr := json.Marshal(resolved)
		if merr == nil {
			task = task + "\n\nInput:\n" + string(data)
		}
	}

	inst := exec.Agent(agentID)
	inst.SetStatus(string(runtime.StatusBusy))
	inst.SetTask(task)
	defer func() {
		inst.SetStatus(string(runtime.StatusIdle))
		inst.SetTask("")
	}()

	reply, err := e.fed.Send(ctx, agentID, task, runtime.SendOptions{
		ExpectResponse: true,
		Timeout:        exec.Pattern.StepTimeout(),
	})
	if err != nil {
		return nil, wrapSendError(err, idx, step.Role)
	}
	return parseReply(reply.Content), nil
}

// executeParallel runs the child steps concurrently. Results keep child
// order; the first failure cancels the siblings.
func (e *Engine) executeParallel(ctx context.Context, exec *ExecutionContext, step *pattern.Step, idx int) (any, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]any, len(step.Steps))
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for i := range step.Steps {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := e.executeStep(ctx, exec, &step.Steps[i], idx, nil)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				cancel()
				return
			}
			results[i] = res
		}(i)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

// executeSequential runs the child steps in order and returns the last
// result. Each child sees its predecessor's result as prev.
func (e *Engine) executeSequential(ctx context.Context, exec *ExecutionContext, step *pattern.Step, idx int) (any, error) {
	var prev any
	for i := range step.Steps {
		if err := ctx.Err(); err != nil {
			return nil, newError(FailureCancelled, idx, err)
		}
		res, err := e.executeStep(ctx, exec, &step.Steps[i], idx, prev)
		if err != nil {
			return nil, err
		}
		prev = res
	}
	return prev, nil
}

// executeSelect resolves an agent id within the role by the step's
// criteria. Round robin rotates by the step's position, so consecutive
// select steps walk the role's instances in spawn order.
func (e *Engine) executeSelect(exec *ExecutionContext, step *pattern.Step, idx int) (any, error) {
	ids := exec.RoleAgents(step.Role)
	if len(ids) == 0 {
		return nil, newError(FailureRoleNotProvisioned, idx, fmt.Errorf("role %s has no provisioned agents", step.Role))
	}
	switch step.Criteria {
	case pattern.SelectRoundRobin:
		return ids[idx%len(ids)], nil
	case pattern.SelectExpertise:
		return ids[0], nil
	case pattern.SelectAvailability, "":
		return pickAvailable(exec, ids), nil
	default:
		return nil, newError(FailureStepFailed, idx, fmt.Errorf("unknown select criteria %q", step.Criteria))
	}
}

// executeReview sends the subject to the reviewer role and returns the
// reviewer's assessment.
func (e *Engine) executeReview(ctx context.Context, exec *ExecutionContext, step *pattern.Step, idx int) (any, error) {
	agentID, err := e.pickAgent(ctx, exec, step.Reviewer, pattern.SelectAvailability, idx)
	if err != nil {
		return nil, err
	}
	subject := renderSubject(exec, step.Subject)
	content := "Please review the following and reply with your assessment:\n" + subject
	reply, err := e.fed.Send(ctx, agentID, content, runtime.SendOptions{
		ExpectResponse: true,
		Timeout:        exec.Pattern.StepTimeout(),
	})
	if err != nil {
		return nil, wrapSendError(err, idx, step.Reviewer)
	}
	return parseReply(reply.Content), nil
}

// executeApprove asks the approver role for an approve/reject decision.
func (e *Engine) executeApprove(ctx context.Context, exec *ExecutionContext, step *pattern.Step, idx int) (any, error) {
	agentID, err := e.pickAgent(ctx, exec, step.Approver, pattern.SelectAvailability, idx)
	if err != nil {
		return nil, err
	}
	subject := renderSubject(exec, step.Subject)
	content := "Approval requested for the following:\n" + subject +
		"\nReply with 'approved' or 'rejected' and your reasoning."
	reply, err := e.fed.Send(ctx, agentID, content, runtime.SendOptions{
		ExpectResponse: true,
		Timeout:        exec.Pattern.StepTimeout(),
	})
	if err != nil {
		return nil, wrapSendError(err, idx, step.Approver)
	}
	lower := strings.ToLower(reply.Content)
	approved := strings.Contains(lower, "approved") &&
		!strings.Contains(lower, "not approved") &&
		!strings.Contains(lower, "rejected")
	return map[string]any{
		"approved": approved,
		"response": reply.Content,
	}, nil
}

// executeAggregate combines the preceding sibling's parallel results.
func (e *Engine) executeAggregate(step *pattern.Step, idx int, prev any) (any, error) {
	list, ok := prev.([]any)
	if !ok {
		return nil, newError(FailureStepFailed, idx,
			errors.New("aggregate requires a preceding parallel step result"))
	}
	res, err := aggregate(step.Method, list)
	if err != nil {
		return nil, newError(FailureStepFailed, idx, err)
	}
	return res, nil
}

// executeCondition evaluates the check against the variable scope and runs
// the matching branch. A missing branch yields nil.
func (e *Engine) executeCondition(ctx context.Context, exec *ExecutionContext, step *pattern.Step, idx int) (any, error) {
	val := resolveValue(exec, step.Check)
	branch := step.Else
	if truthy(val) {
		branch = step.Then
	}
	if branch == nil {
		return nil, nil
	}
	return e.executeStep(ctx, exec, branch, idx, nil)
}

// pickAgent resolves a role to one provisioned agent, preferring idle
// instances.
func (e *Engine) pickAgent(ctx context.Context, exec *ExecutionContext, roleID string, _ pattern.SelectCriteria, idx int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", newError(FailureCancelled, idx, err)
	}
	ids := exec.RoleAgents(roleID)
	if len(ids) == 0 {
		return "", newError(FailureRoleNotProvisioned, idx, fmt.Errorf("role %s has no provisioned agents", roleID))
	}
	return pickAvailable(exec, ids), nil
}

// pickAvailable returns the first idle or ready instance, falling back to
// the first instance.
func pickAvailable(exec *ExecutionContext, ids []string) string {
	for _, id := range ids {
		inst := exec.Agent(id)
		if inst == nil {
			continue
		}
		switch inst.Status() {
		case string(runtime.StatusIdle), string(runtime.StatusReady):
			return id
		}
	}
	return ids[0]
}

// renderSubject formats a review/approve subject: strings interpolate
// against the variable scope, structured subjects render as JSON.
func renderSubject(exec *ExecutionContext, subject any) string {
	switch s := subject.(type) {
	case string:
		if strings.HasPrefix(s, "$") && !strings.HasPrefix(s, "${") {
			return renderValue(lookupPath(exec, strings.TrimPrefix(s, "$")))
		}
		return interpolate(exec, s)
	default:
		return renderValue(resolveValue(exec, subject))
	}
}

// parseReply decodes structured replies: content that is a JSON object or
// array becomes the decoded value, everything else stays a string.
func parseReply(content string) any {
	trimmed := strings.TrimSpace(content)
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		var v any
		if err := json.Unmarshal([]byte(trimmed), &v); err == nil {
			return v
		}
	}
	return content
}

// wrapSendError classifies a failed step send.
func wrapSendError(err error, idx int, roleID string) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return newError(FailureTimeout, idx, fmt.Errorf("role %s did not reply in time: %w", roleID, err))
	case errors.Is(err, context.Canceled):
		return newError(FailureCancelled, idx, err)
	default:
		return newError(FailureStepFailed, idx, fmt.Errorf("send to role %s failed: %w", roleID, err))
	}
}
