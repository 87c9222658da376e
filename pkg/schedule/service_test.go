package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parallax-dev/parallax/pkg/pattern"
)

func newValidationService(t *testing.T) *Service {
	t.Helper()
	registry, err := pattern.NewRegistry(&pattern.Pattern{
		Name: "nightly-report",
		Structure: pattern.OrgStructure{
			Roles: []pattern.Role{{ID: "reporter"}},
		},
		Workflow: pattern.Workflow{
			Steps: []pattern.Step{{Type: pattern.StepAssign, Role: "reporter", Task: "Report"}},
		},
	})
	require.NoError(t, err)
	return NewService(nil, registry, nil)
}

func intervalSpec() Spec {
	return Spec{Name: "every-minute", PatternName: "nightly-report", IntervalMs: 60_000}
}

func TestValidate_Spec(t *testing.T) {
	svc := newValidationService(t)

	require.NoError(t, svc.validate(intervalSpec()))
	require.NoError(t, svc.validate(Spec{
		Name: "nightly", PatternName: "nightly-report", Cron: "0 2 * * *", Timezone: "Europe/Berlin",
	}))

	cases := []struct {
		name  string
		spec  Spec
		field string
	}{
		{"missing name", Spec{PatternName: "nightly-report", IntervalMs: 60_000}, "name"},
		{"missing pattern", Spec{Name: "x", IntervalMs: 60_000}, "patternName"},
		{"unregistered pattern", Spec{Name: "x", PatternName: "ghost", IntervalMs: 60_000}, "patternName"},
		{"no cadence", Spec{Name: "x", PatternName: "nightly-report"}, "cron"},
		{"both cadences", Spec{Name: "x", PatternName: "nightly-report", Cron: "* * * * *", IntervalMs: 60_000}, "cron"},
		{"bad cron", Spec{Name: "x", PatternName: "nightly-report", Cron: "not a cron"}, "cron"},
		{"interval too small", Spec{Name: "x", PatternName: "nightly-report", IntervalMs: 500}, "intervalMs"},
		{"bad timezone", Spec{Name: "x", PatternName: "nightly-report", IntervalMs: 60_000, Timezone: "Mars/Olympus"}, "timezone"},
		{"zero maxRuns", Spec{Name: "x", PatternName: "nightly-report", IntervalMs: 60_000, MaxRuns: intPtr(0)}, "maxRuns"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.validate(tc.spec)
			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestValidate_EndBeforeStart(t *testing.T) {
	svc := newValidationService(t)
	start := time.Now().Add(time.Hour)
	end := start.Add(-time.Minute)

	spec := intervalSpec()
	spec.StartAt = &start
	spec.EndAt = &end
	err := svc.validate(spec)
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "endAt", verr.Field)
}

func TestNextRun_Interval(t *testing.T) {
	svc := newValidationService(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	next, err := svc.nextRun(intervalSpec(), base)
	require.NoError(t, err)
	assert.Equal(t, base.Add(time.Minute), next)
}

func intPtr(n int) *int { return &n }
