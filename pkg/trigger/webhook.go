package trigger

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// SignaturePrefix is the scheme tag on webhook signatures.
const SignaturePrefix = "sha256="

// Signature header names accepted on webhook deliveries, checked in order.
var SignatureHeaders = []string{"x-parallax-signature", "x-hub-signature-256"}

// SignPayload computes the signature a caller must present for a body.
func SignPayload(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return SignaturePrefix + hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks a presented signature against the body using a
// constant-time comparison.
func VerifySignature(secret string, body []byte, signature string) bool {
	if !strings.HasPrefix(signature, SignaturePrefix) {
		return false
	}
	presented, err := hex.DecodeString(strings.TrimPrefix(signature, SignaturePrefix))
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hmac.Equal(presented, mac.Sum(nil))
}

// newWebhookPath generates the random path segment a webhook trigger is
// served under.
func newWebhookPath() (string, error) {
	return randomHex(16)
}

// newWebhookSecret generates the HMAC key for a webhook trigger.
func newWebhookSecret() (string, error) {
	return randomHex(32)
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
