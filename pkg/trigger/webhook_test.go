package trigger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerify(t *testing.T) {
	body := []byte(`{"action":"opened"}`)
	sig := SignPayload("topsecret", body)
	assert.True(t, strings.HasPrefix(sig, SignaturePrefix))

	assert.True(t, VerifySignature("topsecret", body, sig))
	assert.False(t, VerifySignature("wrongsecret", body, sig))
	assert.False(t, VerifySignature("topsecret", []byte("tampered"), sig))
}

func TestVerifySignature_Malformed(t *testing.T) {
	body := []byte("payload")
	assert.False(t, VerifySignature("s", body, ""))
	assert.False(t, VerifySignature("s", body, "md5=abcdef"))
	assert.False(t, VerifySignature("s", body, SignaturePrefix+"not-hex!"))
	assert.False(t, VerifySignature("s", body, SignaturePrefix))
}

func TestWebhookCredentialGeneration(t *testing.T) {
	path, err := newWebhookPath()
	require.NoError(t, err)
	assert.Len(t, path, 32, "16 random bytes hex-encoded")

	secret, err := newWebhookSecret()
	require.NoError(t, err)
	assert.Len(t, secret, 64, "32 random bytes hex-encoded")

	other, err := newWebhookPath()
	require.NoError(t, err)
	assert.NotEqual(t, path, other)
}

func TestMapInput(t *testing.T) {
	payload := map[string]any{
		"action": "opened",
		"pr":     map[string]any{"number": 42.0},
	}

	// No mapping wraps the payload under "event".
	assert.Equal(t, map[string]any{"event": payload}, mapInput(nil, payload))

	// Mapped fields pull from payload dot-paths; literals pass through.
	input := mapInput(map[string]any{
		"what":   "$.action",
		"number": "$.pr.number",
		"gone":   "$.pr.missing",
		"mode":   3,
	}, payload)
	assert.Equal(t, map[string]any{
		"what":   "opened",
		"number": 42.0,
		"gone":   nil,
		"mode":   3,
	}, input)
}
