package trigger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFilter(t *testing.T) {
	require.NoError(t, ValidateFilter(nil))
	require.NoError(t, ValidateFilter(map[string]any{
		"action":     "opened",
		"pr.commits": map[string]any{"$gte": 1},
		"labels":     map[string]any{"$in": []any{"bug", "urgent"}},
	}))

	err := ValidateFilter(map[string]any{
		"action": map[string]any{"$regex": "open.*"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "$regex")
}

func TestMatchFilter(t *testing.T) {
	payload := map[string]any{
		"action": "opened",
		"pr": map[string]any{
			"commits": 3.0,
			"draft":   false,
			"author":  "sam",
		},
	}

	cases := []struct {
		name   string
		filter map[string]any
		want   bool
	}{
		{"empty filter matches", map[string]any{}, true},
		{"literal equality", map[string]any{"action": "opened"}, true},
		{"literal mismatch", map[string]any{"action": "closed"}, false},
		{"nested path", map[string]any{"pr.author": "sam"}, true},
		{"eq", map[string]any{"action": map[string]any{"$eq": "opened"}}, true},
		{"ne", map[string]any{"action": map[string]any{"$ne": "closed"}}, true},
		{"ne on absent path", map[string]any{"missing": map[string]any{"$ne": "x"}}, true},
		{"gt", map[string]any{"pr.commits": map[string]any{"$gt": 2}}, true},
		{"gt false", map[string]any{"pr.commits": map[string]any{"$gt": 3}}, false},
		{"gte boundary", map[string]any{"pr.commits": map[string]any{"$gte": 3}}, true},
		{"lt", map[string]any{"pr.commits": map[string]any{"$lt": 4}}, true},
		{"lte boundary", map[string]any{"pr.commits": map[string]any{"$lte": 3}}, true},
		{"numeric on absent path", map[string]any{"missing": map[string]any{"$gt": 0}}, false},
		{"in", map[string]any{"action": map[string]any{"$in": []any{"opened", "reopened"}}}, true},
		{"in miss", map[string]any{"action": map[string]any{"$in": []any{"closed"}}}, false},
		{"nin", map[string]any{"action": map[string]any{"$nin": []any{"closed"}}}, true},
		{"nin hit", map[string]any{"action": map[string]any{"$nin": []any{"opened"}}}, false},
		{"nin on absent path", map[string]any{"missing": map[string]any{"$nin": []any{"x"}}}, true},
		{"exists true", map[string]any{"pr.draft": map[string]any{"$exists": true}}, true},
		{"exists false", map[string]any{"missing": map[string]any{"$exists": false}}, true},
		{"exists false on present", map[string]any{"action": map[string]any{"$exists": false}}, false},
		{"multiple operators all apply", map[string]any{
			"pr.commits": map[string]any{"$gte": 1, "$lte": 5},
		}, true},
		{"multiple conditions all apply", map[string]any{
			"action":     "opened",
			"pr.commits": map[string]any{"$gt": 5},
		}, false},
		{"int filter matches float payload", map[string]any{"pr.commits": 3}, true},
		{"object without operators is literal", map[string]any{
			"pr": map[string]any{"commits": 3.0, "draft": false, "author": "sam"},
		}, true},
		{"false value still compares", map[string]any{"pr.draft": false}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MatchFilter(tc.filter, payload))
		})
	}
}

func TestPayloadPath(t *testing.T) {
	payload := map[string]any{"a": map[string]any{"b": "deep"}}

	v, ok := payloadPath(payload, "a.b")
	require.True(t, ok)
	assert.Equal(t, "deep", v)

	_, ok = payloadPath(payload, "a.b.c")
	assert.False(t, ok, "cannot descend through a scalar")

	_, ok = payloadPath(payload, "x")
	assert.False(t, ok)
}
