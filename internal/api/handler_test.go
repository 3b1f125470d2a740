// SPDX-License-Identifier: MIT

package api_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/catalog"
	"github.com/katalvlaran/algoviz/internal/api"
	"github.com/katalvlaran/algoviz/internal/platform/metrics"
	"github.com/katalvlaran/algoviz/playback"
)

// stoppedClock never fires, so playing sessions stay where tests put them.
type stoppedClock struct{}

type stoppedTimer struct{}

func (stoppedTimer) Stop() bool { return true }

func (stoppedClock) AfterFunc(time.Duration, func()) playback.Timer { return stoppedTimer{} }

type snapshotWire struct {
	SessionID string `json:"sessionId"`
	Status    string `json:"status"`
	Cursor    int    `json:"cursor"`
	Len       int    `json:"len"`
	DelayMS   int64  `json:"delayMs"`
	Frame     *struct {
		Index       int    `json:"index"`
		Description string `json:"description"`
	} `json:"frame"`
}

type sessionWire struct {
	ID        string       `json:"id"`
	RunID     string       `json:"runId"`
	Algorithm string       `json:"algorithm"`
	Snapshot  snapshotWire `json:"snapshot"`
}

type runWire struct {
	ID     string `json:"id"`
	Frames []struct {
		Description string            `json:"description"`
		Outcome     string            `json:"outcome"`
		Scalars     map[string]string `json:"scalars"`
	} `json:"frames"`
}

func newTestRouter(t *testing.T, maxSessions int, m *metrics.Metrics) *chi.Mux {
	t.Helper()
	store := api.NewStore(maxSessions, playback.WithClock(stoppedClock{}))
	t.Cleanup(store.Close)
	h := api.NewHandler(store, catalog.NewGenerator(catalog.DefaultMaxInput, catalog.DefaultMaxFrames), zerolog.Nop(), m)

	return api.NewRouter(h)
}

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body == "" {
		rd = bytes.NewReader(nil)
	} else {
		rd = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestRouter(t, 4, nil), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAlgorithms(t *testing.T) {
	r := newTestRouter(t, 4, nil)

	rec := do(t, r, http.MethodGet, "/algorithms", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]interface{}
	decode(t, rec, &list)
	assert.Len(t, list, 40)

	rec = do(t, r, http.MethodGet, "/algorithms/binary_search", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var e struct {
		Title string `json:"title"`
	}
	decode(t, rec, &e)
	assert.Equal(t, "Binary Search", e.Title)

	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/algorithms/bogo_sort", "").Code)
}

func TestCreateRun(t *testing.T) {
	r := newTestRouter(t, 4, nil)

	rec := do(t, r, http.MethodPost, "/algorithms/binary_search/runs",
		`{"values":[2,5,8,12,16,23,38,56,72,91],"target":99}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var run runWire
	decode(t, rec, &run)
	require.NotEmpty(t, run.Frames)
	assert.Equal(t, "not-found", run.Frames[len(run.Frames)-1].Outcome)
	assert.NotEmpty(t, run.ID)

	rec = do(t, r, http.MethodPost, "/algorithms/binary_search/runs", "")
	require.Equal(t, http.StatusCreated, rec.Code, "empty body runs demo inputs")
	decode(t, rec, &run)
	assert.Equal(t, "found", run.Frames[len(run.Frames)-1].Outcome)

	rec = do(t, r, http.MethodPost, "/algorithms/binary_search/runs?defaults=true", `{"target":91}`)
	require.Equal(t, http.StatusCreated, rec.Code, "body merged over demo inputs")
	decode(t, rec, &run)
	assert.Equal(t, "found", run.Frames[len(run.Frames)-1].Outcome)

	rec = do(t, r, http.MethodPost, "/algorithms/graph_dfs/runs?defaults=true", `{"topology":"cycle","vertices":5}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	decode(t, rec, &run)
	assert.Equal(t, "A, B, C, D, E", run.Frames[len(run.Frames)-1].Scalars["order"], "topology replaces the demo graph")
}

// valuesBody renders {"values":[n,...,1],"target":1}.
func valuesBody(n int) string {
	values := make([]int, n)
	for i := range values {
		values[i] = n - i
	}
	body, _ := sonic.MarshalString(map[string]interface{}{"values": values, "target": 1})

	return body
}

func TestCreateRun_Errors(t *testing.T) {
	r := newTestRouter(t, 4, nil)

	cases := []struct {
		name, path, body string
		want             int
	}{
		{"missing target", "/algorithms/binary_search/runs", `{"values":[1,2,3]}`, http.StatusUnprocessableEntity},
		{"malformed json", "/algorithms/binary_search/runs", `{"values":`, http.StatusBadRequest},
		{"unknown algorithm", "/algorithms/bogo_sort/runs", `{"values":[1]}`, http.StatusNotFound},
		{"invalid structure", "/algorithms/stack_push/runs", `{"capacity":1,"values":[1,2],"value":3}`, http.StatusUnprocessableEntity},
		{"frame budget", "/algorithms/bubble_sort/runs", valuesBody(200), http.StatusRequestEntityTooLarge},
		{"input bound", "/algorithms/linear_search/runs", valuesBody(300), http.StatusRequestEntityTooLarge},
	}
	for _, tc := range cases {
		rec := do(t, r, http.MethodPost, tc.path, tc.body)
		assert.Equal(t, tc.want, rec.Code, tc.name)
		var body map[string]string
		decode(t, rec, &body)
		assert.NotEmpty(t, body["error"], tc.name)
	}
}

func TestSessionLifecycle(t *testing.T) {
	r := newTestRouter(t, 4, nil)

	rec := do(t, r, http.MethodPost, "/sessions",
		`{"algorithm":"bubble_sort","params":{"values":[5,3,4,1,2]},"delayMs":300}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var s sessionWire
	decode(t, rec, &s)
	assert.Equal(t, "bubble_sort", s.Algorithm)
	assert.Equal(t, "paused", s.Snapshot.Status)
	assert.Equal(t, 0, s.Snapshot.Cursor)
	assert.EqualValues(t, 300, s.Snapshot.DelayMS)
	require.Greater(t, s.Snapshot.Len, 2)
	require.NotNil(t, s.Snapshot.Frame)
	base := "/sessions/" + s.ID

	step := func(method, path, body string) sessionWire {
		t.Helper()
		rec := do(t, r, method, base+path, body)
		require.Equal(t, http.StatusOK, rec.Code, "%s %s: %s", method, path, rec.Body.String())
		var out sessionWire
		decode(t, rec, &out)
		return out
	}

	assert.Equal(t, 1, step(http.MethodPost, "/forward", "").Snapshot.Cursor)
	assert.Equal(t, 0, step(http.MethodPost, "/backward", "").Snapshot.Cursor)
	assert.Equal(t, 0, step(http.MethodPost, "/backward", "").Snapshot.Cursor, "clamped at start")
	assert.Equal(t, s.Snapshot.Len-1, step(http.MethodPost, "/seek/9999", "").Snapshot.Cursor, "clamped at end")
	assert.Equal(t, 0, step(http.MethodPost, "/reset", "").Snapshot.Cursor)
	assert.Equal(t, "playing", step(http.MethodPost, "/play", "").Snapshot.Status)
	assert.Equal(t, "paused", step(http.MethodPost, "/pause", "").Snapshot.Status)
	assert.Equal(t, "paused", step(http.MethodPost, "/pause", "").Snapshot.Status, "pause is idempotent")
	assert.EqualValues(t, 250, step(http.MethodPut, "/delay", `{"delayMs":250}`).Snapshot.DelayMS)
	assert.EqualValues(t, 300, step(http.MethodPut, "/delay", `{"speed":700}`).Snapshot.DelayMS)
	assert.EqualValues(t, 5000, step(http.MethodPut, "/delay", `{"delayMs":9200000000000000}`).Snapshot.DelayMS,
		"huge delays clamp to the maximum")
	assert.EqualValues(t, 50, step(http.MethodPut, "/delay", `{"delayMs":-7}`).Snapshot.DelayMS)

	got := step(http.MethodGet, "", "")
	assert.Equal(t, s.ID, got.ID)
	assert.Equal(t, s.RunID, got.RunID)

	assert.Equal(t, http.StatusUnprocessableEntity, do(t, r, http.MethodPut, base+"/delay", `{}`).Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodPost, base+"/rewind", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPost, base+"/seek/abc", "").Code)

	assert.Equal(t, http.StatusNoContent, do(t, r, http.MethodDelete, base, "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, base, "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodDelete, base, "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/sessions/not-a-uuid", "").Code)
}

func TestCreateSession_Errors(t *testing.T) {
	r := newTestRouter(t, 1, nil)

	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPost, "/sessions", `nope`).Code)
	assert.Equal(t, http.StatusUnprocessableEntity, do(t, r, http.MethodPost, "/sessions", `{}`).Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodPost, "/sessions", `{"algorithm":"bogo_sort"}`).Code)

	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/sessions", `{"algorithm":"graph_dfs"}`).Code)
	assert.Equal(t, http.StatusServiceUnavailable,
		do(t, r, http.MethodPost, "/sessions", `{"algorithm":"graph_bfs"}`).Code, "session limit")
}

func TestMetricsEndpoint(t *testing.T) {
	m := metrics.New()
	r := newTestRouter(t, 4, m)

	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/sessions", `{"algorithm":"hash_search"}`).Code)
	require.Equal(t, http.StatusUnprocessableEntity,
		do(t, r, http.MethodPost, "/algorithms/linear_search/runs", `{"values":[1]}`).Code)

	rec := do(t, r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	out := rec.Body.String()
	assert.Contains(t, out, `algoviz_runs_total{algorithm="hash_search"} 1`)
	assert.Contains(t, out, `algoviz_invalid_inputs_total{algorithm="linear_search"} 1`)
	assert.Contains(t, out, "algoviz_active_sessions 1")
	assert.Contains(t, out, `algoviz_errors_total{class="4xx",route="/algorithms/{id}/runs"} 1`)
	assert.Contains(t, out, `algoviz_requests_total{method="POST",route="/sessions"} 1`)
}
