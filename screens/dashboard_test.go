package screens

import (
	"net/http"
	"testing"
)

func TestDashboard(t *testing.T) {
	env := newTestEnv(t)
	env.upstream.handle("/admin/getUserPermissionsByToken", http.StatusOK, `{"viewAllItems":"Y","profit":"N","viewStock":"Y","viewCreditBill":"Y"}`)
	env.upstream.handle("/company/getCompanyByUser", http.StatusOK, `{"companyName":"Acme Trading"}`)
	token := env.login()

	w := env.do(http.MethodGet, "/api/dashboard", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	var resp DashboardResponse
	decodeBody(t, w, &resp)
	if resp.Title != "Acme Trading" || resp.Error != "" {
		t.Fatalf("unexpected header %+v", resp)
	}
	routes := []string{}
	for _, s := range resp.Screens {
		routes = append(routes, s.Route)
	}
	if len(routes) != 3 || routes[0] != "AllItems" || routes[1] != "Stock" || routes[2] != "CreditBill" {
		t.Fatalf("unexpected screens %v", routes)
	}
}

func TestDashboard_DegradesOnFailures(t *testing.T) {
	env := newTestEnv(t)
	env.upstream.handle("/admin/getUserPermissionsByToken", http.StatusInternalServerError, `boom`)
	env.upstream.handle("/company/getCompanyByUser", http.StatusInternalServerError, `boom`)
	token := env.login()

	w := env.do(http.MethodGet, "/api/dashboard", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var resp DashboardResponse
	decodeBody(t, w, &resp)
	if resp.Title != defaultDashboardTitle || resp.Error != msgCompanyFailed || len(resp.Screens) != 0 {
		t.Fatalf("unexpected degraded dashboard %+v", resp)
	}
}
