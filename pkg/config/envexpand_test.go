package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("EXPAND_HOST", "redis.internal")
	t.Setenv("EXPAND_PORT", "6379")

	out := ExpandEnv([]byte("url: {{.EXPAND_HOST}}:{{.EXPAND_PORT}}"))
	assert.Equal(t, "url: redis.internal:6379", string(out))
}

func TestExpandEnv_MissingVariable(t *testing.T) {
	out := ExpandEnv([]byte("url: {{.DEFINITELY_NOT_SET_ANYWHERE}}"))
	assert.Equal(t, "url: ", string(out))
}

func TestExpandEnv_PreservesDollarSyntax(t *testing.T) {
	// Workflow variable references and passwords keep their $ untouched.
	in := []byte("task: \"summarize $input.task then ${step_0_result}\"\npassword: p@ss$word")
	assert.Equal(t, in, ExpandEnv(in))
}

func TestExpandEnv_MalformedTemplatePassthrough(t *testing.T) {
	in := []byte("broken: {{.UNCLOSED")
	assert.Equal(t, in, ExpandEnv(in))
}
