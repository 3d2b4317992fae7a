package screens

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/mmdatafocus/positnow_mobile/models"
)

func TestProfit(t *testing.T) {
	env := newTestEnv(t)
	var seen models.ProfitRequest
	env.upstream.routes["/profit/getAllProfit"] = func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &seen)
		w.Write([]byte(`{"salesValue":1250.125,"unitCost":"800.1"}`))
	}
	token := env.login()

	w := env.do(http.MethodPost, "/api/profit", token, ProfitRequest{FromDate: "2024-03-01", ToDate: "2024-03-10"})
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	var resp ProfitResponse
	decodeBody(t, w, &resp)
	if resp.SalesValue != "1250.13" || resp.UnitCost != "800.10" || resp.Profit != "450.03" {
		t.Fatalf("unexpected profit %+v", resp)
	}
	if seen.FromDate != "2024-03-01" || seen.ToDate != "2024-03-10" {
		t.Fatalf("unexpected upstream request %+v", seen)
	}

	w = env.do(http.MethodPost, "/api/profit", token, nil)
	decodeBody(t, w, &resp)
	if resp.FromDate != "2024-03-15" || resp.ToDate != "2024-03-15" {
		t.Fatalf("dates should default to today, got %+v", resp)
	}
}

func TestProfit_Validation(t *testing.T) {
	env := newTestEnv(t)
	token := env.login()

	cases := []ProfitRequest{
		{FromDate: "15/03/2024"},
		{FromDate: "2024-03-10", ToDate: "2024-03-01"},
	}
	for _, req := range cases {
		if w := env.do(http.MethodPost, "/api/profit", token, req); w.Code != http.StatusBadRequest {
			t.Fatalf("%+v: expected 400, got %d", req, w.Code)
		}
	}
}

func TestProfit_UpstreamFailure(t *testing.T) {
	env := newTestEnv(t)
	env.upstream.handle("/profit/getAllProfit", http.StatusInternalServerError, `boom`)
	token := env.login()

	w := env.do(http.MethodPost, "/api/profit", token, ProfitRequest{})
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
	var resp map[string]string
	decodeBody(t, w, &resp)
	if resp["error"] != msgProfitFailed {
		t.Fatalf("unexpected banner %q", resp["error"])
	}
}

func TestProfit_MissingFiguresIsFailure(t *testing.T) {
	env := newTestEnv(t)
	env.upstream.handle("/profit/getAllProfit", http.StatusOK, `{}`)
	token := env.login()

	w := env.do(http.MethodPost, "/api/profit", token, ProfitRequest{})
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", w.Code, w.Body.String())
	}
	var resp map[string]string
	decodeBody(t, w, &resp)
	if resp["error"] != msgProfitFailed || resp["salesValue"] != "" {
		t.Fatalf("unexpected payload %v", resp)
	}
}
