package handler

import (
	"math"
	"reflect"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"finance-engine/internal/engine"
	"finance-engine/internal/model"
)

func testParams() model.FinanceParams {
	return model.FinanceParams{
		StartYear:               2025,
		StartWorkYear:           2015,
		CurrentAge:              34,
		RetirementAge:           45,
		OfficialRetirementAge:   60,
		InitialMonthlySalary:    10000,
		LocalAverageSalary:      12307,
		SalaryGrowthRate:        4.0,
		PensionReplacementRatio: 0.4,
		ContributionRatio:       0.6,
		LivingExpenseRatio:      0.5,
		DepositRate:             2.0,
		InitialSavings:          1000000,
		InitialHousingFund:      150000,
		HousingFundRate:         1.5,
	}
}

func doRequest(t *testing.T, h *Handler, method, uri, body string) *fasthttp.RequestCtx {
	t.Helper()

	var req fasthttp.Request
	req.SetRequestURI("http://test" + uri)
	req.Header.SetMethod(method)
	if body != "" {
		req.Header.SetContentType("application/json")
		req.SetBodyString(body)
	}

	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&req, nil, nil)
	h.Handle(ctx)
	return ctx
}

func marshal(t *testing.T, v interface{}) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestHealth(t *testing.T) {
	h := New(engine.DefaultHorizonYears)
	ctx := doRequest(t, h, fasthttp.MethodGet, "/health", "")

	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("expected 200, got %d", ctx.Response.StatusCode())
	}
	if !strings.Contains(string(ctx.Response.Body()), "ok") {
		t.Fatalf("unexpected health body: %s", ctx.Response.Body())
	}
}

func TestProjectionEndpoint(t *testing.T) {
	h := New(engine.DefaultHorizonYears)
	body := marshal(t, model.ProjectionRequest{Parameters: paramsPtr(testParams())})

	ctx := doRequest(t, h, fasthttp.MethodPost, "/v1/projection", body)
	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("expected 200, got %d: %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}

	var resp model.ProjectionResponse
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeSuccess {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if resp.CalculationMetadata.CalculationID == "" {
		t.Fatal("expected a calculation_id")
	}
	if len(resp.Years) != engine.DefaultHorizonYears+1 {
		t.Fatalf("expected %d records, got %d", engine.DefaultHorizonYears+1, len(resp.Years))
	}
	if math.Abs(resp.Years[0].Savings-1044558.00) > 0.005 {
		t.Fatalf("expected first-year savings 1044558.00, got %.2f", resp.Years[0].Savings)
	}
}

func TestProjectionYearsOverride(t *testing.T) {
	h := New(engine.DefaultHorizonYears)
	years := 5
	body := marshal(t, model.ProjectionRequest{
		Parameters:      paramsPtr(testParams()),
		ProjectionYears: &years,
	})

	ctx := doRequest(t, h, fasthttp.MethodPost, "/v1/projection", body)
	var resp model.ProjectionResponse
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Years) != years+1 {
		t.Fatalf("expected %d records, got %d", years+1, len(resp.Years))
	}
}

func TestProjectionMissingParameters(t *testing.T) {
	h := New(engine.DefaultHorizonYears)
	ctx := doRequest(t, h, fasthttp.MethodPost, "/v1/projection", "{}")

	if ctx.Response.StatusCode() != fasthttp.StatusBadRequest {
		t.Fatalf("expected 400, got %d", ctx.Response.StatusCode())
	}
	var errResp model.ErrorResponse
	if err := json.Unmarshal(ctx.Response.Body(), &errResp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if !strings.Contains(errResp.Message, "parameters") {
		t.Fatalf("unexpected error message: %s", errResp.Message)
	}
}

func TestProjectionInvalidBody(t *testing.T) {
	h := New(engine.DefaultHorizonYears)
	ctx := doRequest(t, h, fasthttp.MethodPost, "/v1/projection", "{not json")

	if ctx.Response.StatusCode() != fasthttp.StatusBadRequest {
		t.Fatalf("expected 400, got %d", ctx.Response.StatusCode())
	}
}

func TestProjectionWrongMethod(t *testing.T) {
	h := New(engine.DefaultHorizonYears)
	ctx := doRequest(t, h, fasthttp.MethodGet, "/v1/projection", "")

	if ctx.Response.StatusCode() != fasthttp.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", ctx.Response.StatusCode())
	}
}

func TestScenariosEndpoint(t *testing.T) {
	h := New(engine.DefaultHorizonYears)
	base := testParams()
	late := testParams()
	late.RetirementAge = 55

	body := marshal(t, model.ScenarioRequest{
		Scenarios: map[string]model.FinanceParams{"base": base, "late": late},
	})

	ctx := doRequest(t, h, fasthttp.MethodPost, "/v1/scenarios", body)
	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("expected 200, got %d: %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}

	var resp model.ScenarioResponse
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Scenarios) != 2 {
		t.Fatalf("expected 2 scenarios, got %d", len(resp.Scenarios))
	}

	// The endpoint must return exactly what a standalone projection returns.
	solo := engine.Project(&base, engine.DefaultHorizonYears)
	if !reflect.DeepEqual(resp.Scenarios["base"], solo) {
		t.Fatal("scenario result differs from a standalone projection")
	}
}

func TestScenariosEmpty(t *testing.T) {
	h := New(engine.DefaultHorizonYears)
	ctx := doRequest(t, h, fasthttp.MethodPost, "/v1/scenarios", `{"scenarios":{}}`)

	if ctx.Response.StatusCode() != fasthttp.StatusBadRequest {
		t.Fatalf("expected 400, got %d", ctx.Response.StatusCode())
	}
}

func TestUnknownRoute(t *testing.T) {
	h := New(engine.DefaultHorizonYears)
	ctx := doRequest(t, h, fasthttp.MethodGet, "/v1/nope", "")

	if ctx.Response.StatusCode() != fasthttp.StatusNotFound {
		t.Fatalf("expected 404, got %d", ctx.Response.StatusCode())
	}
}

func paramsPtr(p model.FinanceParams) *model.FinanceParams {
	return &p
}
