package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCron(t *testing.T) {
	for _, expr := range []string{
		"0 2 * * *",       // standard five fields
		"*/30 * * * * *",  // six fields with seconds
		"@hourly",         // descriptor
		"15 4 * * MON-FRI",
	} {
		_, err := parseCron(expr)
		assert.NoError(t, err, expr)
	}

	for _, expr := range []string{"", "not a cron", "61 * * * *"} {
		_, err := parseCron(expr)
		assert.Error(t, err, expr)
	}
}

func TestNextCronRun(t *testing.T) {
	after := time.Date(2026, 3, 1, 1, 30, 0, 0, time.UTC)

	next, err := nextCronRun("0 2 * * *", "", after)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 2, 0, 0, 0, time.UTC), next.UTC())

	// Already past today's slot: the run rolls to tomorrow.
	after = time.Date(2026, 3, 1, 2, 30, 0, 0, time.UTC)
	next, err = nextCronRun("0 2 * * *", "", after)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 2, 2, 0, 0, 0, time.UTC), next.UTC())
}

func TestNextCronRun_Timezone(t *testing.T) {
	// 02:00 in Berlin (UTC+1 in winter) is 01:00 UTC.
	after := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	next, err := nextCronRun("0 2 * * *", "Europe/Berlin", after)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 1, 0, 0, 0, time.UTC), next.UTC())

	_, err = nextCronRun("0 2 * * *", "Mars/Olympus", after)
	require.Error(t, err)
}
