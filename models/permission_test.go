package models

import "testing"

func TestAllowedScreens(t *testing.T) {
	permissions := map[string]string{
		"viewAllItems":  "Y",
		"profit":        "N",
		"viewStock":     "Y",
		"viewOrderForm": "y",
		"unrelated":     "Y",
	}
	allowed := AllowedScreens(permissions)
	if len(allowed) != 2 {
		t.Fatalf("expected 2 screens, got %+v", allowed)
	}
	if allowed[0].Route != "AllItems" || allowed[1].Route != "Stock" {
		t.Fatalf("screens should keep catalogue order, got %+v", allowed)
	}
	if len(AllowedScreens(nil)) != 0 {
		t.Fatalf("no permissions should allow nothing")
	}
}
