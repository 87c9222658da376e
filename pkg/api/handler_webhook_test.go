package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parallax-dev/parallax/ent"
	"github.com/parallax-dev/parallax/pkg/trigger"
)

type fakeDispatcher struct {
	trig       *ent.Trigger
	webhookErr error
	lastPath   string
	lastSig    string
	fired      int
}

func (f *fakeDispatcher) HandleWebhook(ctx context.Context, path string, body []byte, signature string, payload map[string]any) (*ent.Trigger, error) {
	f.lastPath = path
	f.lastSig = signature
	if f.webhookErr != nil {
		return nil, f.webhookErr
	}
	return f.trig, nil
}

func (f *fakeDispatcher) EmitEvent(ctx context.Context, eventType string, payload map[string]any) (int, error) {
	return f.fired, nil
}

func newWebhookTestServer(d Dispatcher) *Server {
	return NewServer(Deps{Dispatcher: d})
}

func postJSON(s *Server, path string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func TestWebhookHandler_AcceptedDelivery(t *testing.T) {
	fake := &fakeDispatcher{trig: &ent.Trigger{ID: "trig-1"}}
	s := newWebhookTestServer(fake)

	rec := postJSON(s, "/api/webhooks/abc123", []byte(`{"action":"opened"}`),
		map[string]string{"x-parallax-signature": "sha256=abc"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp WebhookAcceptedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "trig-1", resp.TriggerID)
	assert.True(t, resp.Accepted)

	assert.Equal(t, "abc123", fake.lastPath)
	assert.Equal(t, "sha256=abc", fake.lastSig, "signature header is forwarded verbatim")
}

func TestWebhookHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"bad signature", trigger.ErrBadSignature, http.StatusUnauthorized},
		{"unknown path", trigger.ErrTriggerNotFound, http.StatusNotFound},
		{"disabled trigger", trigger.ErrTriggerDisabled, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newWebhookTestServer(&fakeDispatcher{webhookErr: tc.err})
			rec := postJSON(s, "/api/webhooks/abc123", []byte(`{}`), nil)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestWebhookHandler_RejectsNonObjectBody(t *testing.T) {
	s := newWebhookTestServer(&fakeDispatcher{trig: &ent.Trigger{ID: "trig-1"}})
	rec := postJSON(s, "/api/webhooks/abc123", []byte(`[1,2,3]`), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEmitEventHandler(t *testing.T) {
	s := newWebhookTestServer(&fakeDispatcher{fired: 2})

	rec := postJSON(s, "/api/events", []byte(`{"eventType":"deploy.finished"}`), nil)
	require.Equal(t, http.StatusAccepted, rec.Code)

	var resp EventAcceptedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "deploy.finished", resp.EventType)
	assert.Equal(t, 2, resp.Fired)

	rec = postJSON(s, "/api/events", []byte(`{}`), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
