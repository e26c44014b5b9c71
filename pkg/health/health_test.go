package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func probe(t *testing.T, endpoint http.HandlerFunc) (int, report) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	endpoint(w, req)

	var rep report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rep))
	return w.Code, rep
}

func TestLiveEndpoint_NoChecks(t *testing.T) {
	h := New()

	code, rep := probe(t, h.LiveEndpoint)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", rep.Status)
}

func TestLiveEndpoint_FailingCheck(t *testing.T) {
	h := New()
	h.AddLivenessCheck("db", time.Second, func(context.Context) error {
		return errors.New("connection refused")
	})

	code, rep := probe(t, h.LiveEndpoint)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "unavailable", rep.Status)
	assert.Equal(t, "connection refused", rep.Checks["db"])
}

func TestReadyEndpoint_Gate(t *testing.T) {
	h := New()
	h.AddReadinessCheck("noop", time.Second, func(context.Context) error { return nil })

	code, _ := probe(t, h.ReadyEndpoint)
	assert.Equal(t, http.StatusServiceUnavailable, code, "not ready until SetReady")

	h.SetReady(true)
	code, rep := probe(t, h.ReadyEndpoint)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", rep.Checks["noop"])

	h.SetReady(false)
	code, _ = probe(t, h.ReadyEndpoint)
	assert.Equal(t, http.StatusServiceUnavailable, code)
}

func TestReadyEndpoint_IncludesLivenessChecks(t *testing.T) {
	h := New()
	h.SetReady(true)
	h.AddLivenessCheck("goroutines", time.Second, func(context.Context) error {
		return errors.New("too many goroutines")
	})

	code, rep := probe(t, h.ReadyEndpoint)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Contains(t, rep.Checks, "goroutines")
}

func TestGoroutineCountCheck(t *testing.T) {
	assert.NoError(t, GoroutineCountCheck(1_000_000)(context.Background()))
	assert.Error(t, GoroutineCountCheck(0)(context.Background()))
}
