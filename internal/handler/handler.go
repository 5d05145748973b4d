package handler

import (
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"finance-engine/internal/engine"
	"finance-engine/internal/metrics"
	"finance-engine/internal/model"
)

// Handler routes the calculation API. The engine itself never fails for
// numeric input, so the only rejections happen here, at the JSON boundary.
type Handler struct {
	defaultYears   int
	metricsHandler fasthttp.RequestHandler
}

func New(defaultYears int) *Handler {
	return &Handler{
		defaultYears:   defaultYears,
		metricsHandler: fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler()),
	}
}

func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/health":
		ctx.SetContentType("application/json")
		ctx.SetBodyString(`{"status":"ok"}`)
	case "/metrics":
		h.metricsHandler(ctx)
	case "/v1/projection":
		h.handleProjection(ctx)
	case "/v1/scenarios":
		h.handleScenarios(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func (h *Handler) handleProjection(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req model.ProjectionRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Parameters == nil {
		writeError(ctx, fasthttp.StatusBadRequest, "parameters is required")
		return
	}

	years := h.defaultYears
	if req.ProjectionYears != nil {
		years = *req.ProjectionYears
	}

	start := time.Now()
	seq := engine.Project(req.Parameters, years)
	elapsed := time.Since(start)

	metrics.ProjectionsTotal.Inc()
	metrics.CalculationDuration.Observe(elapsed.Seconds())

	writeJSON(ctx, model.ProjectionResponse{
		CalculationMetadata: newMetadata(elapsed),
		Years:               seq,
	})
}

func (h *Handler) handleScenarios(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req model.ScenarioRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(req.Scenarios) == 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "At least one scenario is required")
		return
	}

	start := time.Now()
	results := engine.RunScenarios(req.Scenarios)
	elapsed := time.Since(start)

	metrics.ScenarioRunsTotal.Inc()
	metrics.CalculationDuration.Observe(elapsed.Seconds())

	writeJSON(ctx, model.ScenarioResponse{
		CalculationMetadata: newMetadata(elapsed),
		Scenarios:           results,
	})
}

func newMetadata(elapsed time.Duration) model.CalculationMetadata {
	now := time.Now().UTC()
	return model.CalculationMetadata{
		CalculationID:          uuid.New().String(),
		CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
		CalculationCompletedAt: now.Format(time.RFC3339),
		CalculationDurationMs:  elapsed.Milliseconds(),
		CalculationOutcome:     model.OutcomeSuccess,
	}
}

func writeJSON(ctx *fasthttp.RequestCtx, v interface{}) {
	ctx.SetContentType("application/json")
	if err := json.NewEncoder(ctx).Encode(v); err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
	}
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	json.NewEncoder(ctx).Encode(model.ErrorResponse{
		Status:  status,
		Message: message,
	})
}
