// SPDX-License-Identifier: MIT

package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/algoviz/catalog"
	"github.com/katalvlaran/algoviz/frame"
	"github.com/katalvlaran/algoviz/internal/platform/metrics"
	"github.com/katalvlaran/algoviz/playback"
)

const maxBodyBytes = 1 << 20

// Handler exposes catalog and playback endpoints using go-chi.
type Handler struct {
	store   *Store
	gen     *catalog.Generator
	log     zerolog.Logger
	metrics *metrics.Metrics
}

// NewHandler returns a Handler over store and gen. m may be nil to disable
// metric recording (e.g. in tests).
func NewHandler(store *Store, gen *catalog.Generator, log zerolog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{store: store, gen: gen, log: log, metrics: m}
}

type errorResponse struct {
	Error string `json:"error"`
}

// sessionView is the wire form of a session.
type sessionView struct {
	ID        string            `json:"id"`
	RunID     string            `json:"runId"`
	Algorithm catalog.ID        `json:"algorithm"`
	Snapshot  playback.Snapshot `json:"snapshot"`
}

type createSessionRequest struct {
	Algorithm catalog.ID      `json:"algorithm"`
	Params    *catalog.Params `json:"params,omitempty"`
	DelayMS   int             `json:"delayMs,omitempty"`
}

type delayRequest struct {
	DelayMS *int `json:"delayMs,omitempty"`
	Speed   *int `json:"speed,omitempty"`
}

var commands = map[string]func(*playback.Controller){
	"play":     (*playback.Controller).Play,
	"pause":    (*playback.Controller).Pause,
	"forward":  (*playback.Controller).StepForward,
	"backward": (*playback.Controller).StepBackward,
	"reset":    (*playback.Controller).Reset,
}

// Health handles GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListAlgorithms handles GET /algorithms.
func (h *Handler) ListAlgorithms(w http.ResponseWriter, _ *http.Request) {
	entries, err := catalog.List()
	if err != nil {
		h.fail(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, entries)
}

// GetAlgorithm handles GET /algorithms/{id}.
func (h *Handler) GetAlgorithm(w http.ResponseWriter, r *http.Request) {
	e, err := catalog.Lookup(catalog.ID(chi.URLParam(r, "id")))
	if err != nil {
		h.fail(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, e)
}

// CreateRun handles POST /algorithms/{id}/runs. An empty body runs the
// demo inputs; ?defaults=true fills fields missing from the body.
func (h *Handler) CreateRun(w http.ResponseWriter, r *http.Request) {
	id := catalog.ID(chi.URLParam(r, "id"))
	body, err := readBody(r)
	if err != nil {
		h.badRequest(w, err)
		return
	}
	var p *catalog.Params
	if len(body) > 0 {
		p = new(catalog.Params)
		if err = sonic.Unmarshal(body, p); err != nil {
			h.badRequest(w, err)
			return
		}
	}
	run, err := h.generate(r.Context(), id, p, r.URL.Query().Get("defaults") == "true")
	if err != nil {
		h.fail(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, run)
}

// CreateSession handles POST /sessions.
// Body: { "algorithm": "bubble_sort", "params": {...}, "delayMs": 300 }.
// Missing params run the demo inputs.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		h.badRequest(w, err)
		return
	}
	var req createSessionRequest
	if err = sonic.Unmarshal(body, &req); err != nil {
		h.badRequest(w, err)
		return
	}
	if req.Algorithm == "" {
		h.fail(w, fmt.Errorf("%w: algorithm", catalog.ErrMissingParam))
		return
	}
	run, err := h.generate(r.Context(), req.Algorithm, req.Params, false)
	if err != nil {
		h.fail(w, err)
		return
	}
	sess, err := h.store.Create(run)
	if err != nil {
		h.fail(w, err)
		return
	}
	if req.DelayMS > 0 {
		sess.Controller.SetDelayMS(int64(req.DelayMS))
	}
	h.log.Info().
		Str("session_id", sess.ID.String()).
		Str("algorithm", string(req.Algorithm)).
		Int("frames", run.Frames.Len()).
		Msg("session created")
	h.writeJSON(w, http.StatusCreated, view(sess))
}

// GetSession handles GET /sessions/{id}.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, view(sess))
}

// Command handles POST /sessions/{id}/{command} for play, pause, forward,
// backward and reset.
func (h *Handler) Command(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "command")
	apply, ok := commands[name]
	if !ok {
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: fmt.Sprintf("unknown command %q", name)})
		return
	}
	sess, err := h.session(r)
	if err != nil {
		h.fail(w, err)
		return
	}
	apply(sess.Controller)
	h.countCommand(name)
	h.writeJSON(w, http.StatusOK, view(sess))
}

// Seek handles POST /sessions/{id}/seek/{index}. Out-of-range indices clamp.
func (h *Handler) Seek(w http.ResponseWriter, r *http.Request) {
	i, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		h.badRequest(w, err)
		return
	}
	sess, err := h.session(r)
	if err != nil {
		h.fail(w, err)
		return
	}
	sess.Controller.Seek(i)
	h.countCommand("seek")
	h.writeJSON(w, http.StatusOK, view(sess))
}

// SetDelay handles PUT /sessions/{id}/delay.
// Body: { "delayMs": 250 } or { "speed": 700 }.
func (h *Handler) SetDelay(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		h.fail(w, err)
		return
	}
	body, err := readBody(r)
	if err != nil {
		h.badRequest(w, err)
		return
	}
	var req delayRequest
	if err = sonic.Unmarshal(body, &req); err != nil {
		h.badRequest(w, err)
		return
	}
	switch {
	case req.DelayMS != nil:
		sess.Controller.SetDelayMS(int64(*req.DelayMS))
	case req.Speed != nil:
		sess.Controller.SetSpeed(*req.Speed)
	default:
		h.fail(w, fmt.Errorf("%w: delayMs or speed", catalog.ErrMissingParam))
		return
	}
	h.countCommand("delay")
	h.writeJSON(w, http.StatusOK, view(sess))
}

// DeleteSession handles DELETE /sessions/{id}.
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, fmt.Errorf("%w: %v", ErrSessionNotFound, err))
		return
	}
	if err = h.store.Delete(id); err != nil {
		h.fail(w, err)
		return
	}
	h.log.Info().Str("session_id", id.String()).Msg("session deleted")
	w.WriteHeader(http.StatusNoContent)
}

// generate resolves params for id and runs it. A nil p means demo inputs.
func (h *Handler) generate(ctx context.Context, id catalog.ID, p *catalog.Params, fill bool) (*catalog.Run, error) {
	var params catalog.Params
	if p == nil || fill {
		d, err := catalog.DefaultParams(id)
		if err != nil {
			return nil, err
		}
		params = d
		if p != nil {
			params = p.Merge(d)
		}
	} else {
		params = *p
	}

	run, err := h.gen.Generate(ctx, id, params)
	if err != nil {
		if h.metrics != nil && errors.Is(err, frame.ErrInvalidInput) {
			h.metrics.IncInvalidInput(string(id))
		}
		return nil, err
	}
	if h.metrics != nil {
		h.metrics.ObserveRun(string(id), run.Frames.Len())
	}

	return run, nil
}

func (h *Handler) session(r *http.Request) (*Session, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionNotFound, err)
	}

	return h.store.Get(id)
}

func (h *Handler) countCommand(name string) {
	if h.metrics != nil {
		h.metrics.IncCommand(name)
	}
}

func view(s *Session) sessionView {
	return sessionView{
		ID:        s.ID.String(),
		RunID:     s.Run.ID.String(),
		Algorithm: s.Run.Algorithm,
		Snapshot:  s.Controller.Snapshot(),
	}
}

// statusFor maps an error class to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrSessionNotFound), errors.Is(err, catalog.ErrUnknownAlgorithm):
		return http.StatusNotFound
	case errors.Is(err, ErrSessionLimit):
		return http.StatusServiceUnavailable
	case errors.Is(err, catalog.ErrInputTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, frame.ErrInvalidInput):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.log.Error().Err(err).Int("status", status).Msg("request failed")
	} else {
		h.log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (h *Handler) badRequest(w http.ResponseWriter, err error) {
	h.log.Debug().Err(err).Msg("malformed request")
	h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := sonic.Marshal(v)
	if err != nil {
		h.log.Error().Err(err).Msg("encode response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func readBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	defer r.Body.Close()

	return io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
}
