package runtime

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The HTTP provider must satisfy the full Provider contract alongside its
// own connection lifecycle.
var (
	_ Provider  = (*HTTPProvider)(nil)
	_ startable = (*HTTPProvider)(nil)
	_ closable  = (*HTTPProvider)(nil)
)

func TestNewHTTPProvider_Validation(t *testing.T) {
	_, err := NewHTTPProvider(HTTPProviderOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base URL is required")

	p, err := NewHTTPProvider(HTTPProviderOptions{BaseURL: "http://runtime.internal:7000/"})
	require.NoError(t, err)
	assert.Equal(t, "http://runtime.internal:7000", p.baseURL)
}

func TestHTTPProvider_CloseWithoutStart(t *testing.T) {
	p, err := NewHTTPProvider(HTTPProviderOptions{BaseURL: "http://localhost:7000"})
	require.NoError(t, err)
	// Must return immediately rather than wait on a loop that never ran.
	p.Close()
	p.Close()
}

func TestHTTPProvider_StartStopEventLoop(t *testing.T) {
	p, err := NewHTTPProvider(HTTPProviderOptions{BaseURL: "http://127.0.0.1:1"})
	require.NoError(t, err)

	p.Start(context.Background())
	p.Start(context.Background()) // idempotent

	done := make(chan struct{})
	go func() {
		p.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not terminate the event loop")
	}
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(&httpError{Status: http.StatusNotFound}))
	assert.False(t, isNotFound(&httpError{Status: http.StatusBadGateway}))
	assert.False(t, isNotFound(errors.New("dial tcp: refused")))
}
