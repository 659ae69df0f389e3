package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/yankputra/SPK-AlatMusikKesenian/ahp"
	"github.com/yankputra/SPK-AlatMusikKesenian/internal/scenario"
)

// Handler serves the /api/v1 endpoints.
type Handler struct {
	opts    scenario.Options
	metrics *Metrics
}

// request is a scenario plus optional per-request engine settings.
type request struct {
	scenario.Scenario
	Method    string   `json:"method,omitempty"`
	Threshold *float64 `json:"threshold,omitempty"`
}

type weightsResponse struct {
	RunID string `json:"run_id"`
	*scenario.Weights
}

// Weights handles POST /api/v1/weights: criteria plus pairwise or
// comparisons in, weights and the consistency report out.
func (h *Handler) Weights(w http.ResponseWriter, r *http.Request) {
	const endpoint = "weights"
	req, opts, ok := h.decode(w, r, endpoint)
	if !ok {
		return
	}
	if len(req.Weights) > 0 {
		h.fail(w, endpoint, http.StatusBadRequest, eris.New("weights endpoint derives weights; send pairwise or comparisons"))
		return
	}

	ws, err := scenario.DeriveWeights(&req.Scenario, opts)
	if err != nil {
		h.fail(w, endpoint, http.StatusUnprocessableEntity, err)
		return
	}
	h.observe(endpoint, ws.Consistency)
	writeJSON(w, http.StatusOK, weightsResponse{RunID: uuid.NewString(), Weights: ws})
}

// Rank handles POST /api/v1/rank: criteria, ready-made weights and
// alternatives in, the TOPSIS ranking out.
func (h *Handler) Rank(w http.ResponseWriter, r *http.Request) {
	const endpoint = "rank"
	req, opts, ok := h.decode(w, r, endpoint)
	if !ok {
		return
	}
	if len(req.Pairwise) > 0 || len(req.Comparisons) > 0 {
		h.fail(w, endpoint, http.StatusBadRequest, eris.New("rank endpoint takes weights; use /api/v1/evaluate for pairwise input"))
		return
	}
	h.evaluate(w, r, endpoint, req, opts)
}

// Evaluate handles POST /api/v1/evaluate: a full scenario in, weights,
// consistency and ranking out.
func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	const endpoint = "evaluate"
	req, opts, ok := h.decode(w, r, endpoint)
	if !ok {
		return
	}
	h.evaluate(w, r, endpoint, req, opts)
}

func (h *Handler) evaluate(w http.ResponseWriter, r *http.Request, endpoint string, req *request, opts scenario.Options) {
	out, err := scenario.Evaluate(r.Context(), &req.Scenario, opts)
	if err != nil {
		h.fail(w, endpoint, http.StatusUnprocessableEntity, err)
		return
	}
	h.observe(endpoint, out.Consistency)
	writeJSON(w, http.StatusOK, out)
}

// decode reads the body and applies per-request overrides to the defaults.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, endpoint string) (*request, scenario.Options, bool) {
	opts := h.opts
	var req request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.fail(w, endpoint, http.StatusBadRequest, eris.Wrap(err, "invalid request body"))
		return nil, opts, false
	}
	if req.Method != "" {
		m, err := ahp.ParseMethod(req.Method)
		if err != nil {
			h.fail(w, endpoint, http.StatusBadRequest, err)
			return nil, opts, false
		}
		opts.Method = m
	}
	if req.Threshold != nil {
		if *req.Threshold < 0 {
			h.fail(w, endpoint, http.StatusBadRequest, eris.New("threshold must be >= 0"))
			return nil, opts, false
		}
		opts.Threshold = *req.Threshold
	}
	return &req, opts, true
}

func (h *Handler) observe(endpoint string, c *ahp.ConsistencyReport) {
	result := "ok"
	if c != nil {
		h.metrics.consistency.Observe(c.CR)
		if !c.Acceptable {
			result = "inconsistent"
		}
	}
	h.metrics.evaluations.WithLabelValues(endpoint, result).Inc()
}

func (h *Handler) fail(w http.ResponseWriter, endpoint string, status int, err error) {
	h.metrics.evaluations.WithLabelValues(endpoint, "invalid").Inc()
	zap.L().Warn("request rejected",
		zap.String("endpoint", endpoint),
		zap.Int("status", status),
		zap.Error(err),
	)
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
