package screens

import (
	"net/http"
	"strings"
	"testing"
)

func creditBillEnv(t *testing.T) (*testEnv, string) {
	env := newTestEnv(t)
	env.upstream.handle("/item/getAllItems", http.StatusOK, `[
		{"id":1,"code":"A1","name":"Apple","sellingPrice":60},
		{"id":2,"code":"B2","name":"Banana","sellingPrice":40},
		{"id":3,"code":"C3","name":"Cherry","sellingPrice":"9.999"}
	]`)
	env.upstream.handle("/customer/getAllCustomers", http.StatusOK, `[
		{"id":10,"name":"John Doe","address":"123 Elm St"},
		{"id":11,"name":"Jane Smith","address":"456 Oak St"}
	]`)
	return env, env.login()
}

type cartResponse struct {
	Cart  CartView `json:"cart"`
	Added *bool    `json:"added"`
}

func TestCreditBill_CartTotals(t *testing.T) {
	env, token := creditBillEnv(t)

	var resp cartResponse
	for _, code := range []string{"A1", "B2", "A1"} {
		w := env.do(http.MethodPost, "/api/credit-bill/cart", token, AddToCartRequest{Code: code})
		if w.Code != http.StatusOK {
			t.Fatalf("add %s: status %d: %s", code, w.Code, w.Body.String())
		}
		decodeBody(t, w, &resp)
	}
	if resp.Added == nil || *resp.Added {
		t.Fatalf("re-adding A1 should report added=false")
	}
	if resp.Cart.ItemCount != 2 || resp.Cart.PieceCount != 2 || resp.Cart.GrossTotal != "100.00" || resp.Cart.NetTotal != "100.00" {
		t.Fatalf("unexpected cart %+v", resp.Cart)
	}

	cases := []struct {
		discount DiscountRequest
		net      string
		label    string
	}{
		{DiscountRequest{Percentage: "10"}, "90.00", "10%"},
		{DiscountRequest{Value: "15"}, "85.00", "$15.00"},
		{DiscountRequest{Value: "15", Percentage: "10"}, "90.00", "10%"},
		{DiscountRequest{Value: "abc"}, "100.00", "none"},
	}
	for _, tc := range cases {
		w := env.do(http.MethodPut, "/api/credit-bill/discount", token, tc.discount)
		decodeBody(t, w, &resp)
		if resp.Cart.NetTotal != tc.net || resp.Cart.DiscountLabel != tc.label {
			t.Fatalf("%+v: expected %s/%s, got %s/%s", tc.discount, tc.net, tc.label, resp.Cart.NetTotal, resp.Cart.DiscountLabel)
		}
	}

	var screen CreditBillResponse
	decodeBody(t, env.do(http.MethodGet, "/api/credit-bill?q=ch", token, nil), &screen)
	if len(screen.Catalog) != 1 || screen.Catalog[0].SellingPrice != "10.00" || screen.Cart.ItemCount != 2 {
		t.Fatalf("unexpected screen %+v", screen)
	}
	if len(screen.Customers) != 0 {
		t.Fatalf("customers are only listed while searching")
	}

	w := env.do(http.MethodDelete, "/api/credit-bill", token, nil)
	decodeBody(t, w, &resp)
	if resp.Cart.ItemCount != 0 {
		t.Fatalf("reset should empty the cart")
	}
	decodeBody(t, env.do(http.MethodGet, "/api/credit-bill", token, nil), &screen)
	if screen.Cart.ItemCount != 0 || screen.Cart.DiscountValue != "" {
		t.Fatalf("cart should stay empty after reset, got %+v", screen.Cart)
	}
}

func TestCreditBill_ReAddIncrementsBehindFlag(t *testing.T) {
	env, token := creditBillEnv(t)
	t.Setenv("CART_READD_INCREMENTS", "true")

	var resp cartResponse
	for i := 0; i < 3; i++ {
		decodeBody(t, env.do(http.MethodPost, "/api/credit-bill/cart", token, AddToCartRequest{Code: "B2"}), &resp)
	}
	if resp.Cart.ItemCount != 1 || resp.Cart.PieceCount != 3 || resp.Cart.GrossTotal != "120.00" {
		t.Fatalf("unexpected cart %+v", resp.Cart)
	}
}

func TestCreditBill_UnknownItem(t *testing.T) {
	env, token := creditBillEnv(t)
	if w := env.do(http.MethodPost, "/api/credit-bill/cart", token, AddToCartRequest{Code: "ZZ"}); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if w := env.do(http.MethodPost, "/api/credit-bill/cart", token, map[string]string{}); w.Code != http.StatusBadRequest {
		t.Fatalf("missing code should be 400, got %d", w.Code)
	}
}

func TestCreditBill_CustomerSearchAndSelection(t *testing.T) {
	env, token := creditBillEnv(t)

	var screen CreditBillResponse
	decodeBody(t, env.do(http.MethodGet, "/api/credit-bill?customerQuery=oak", token, nil), &screen)
	if len(screen.Customers) != 1 || screen.Customers[0].Name != "Jane Smith" {
		t.Fatalf("unexpected customers %+v", screen.Customers)
	}

	var resp cartResponse
	w := env.do(http.MethodPut, "/api/credit-bill/customer", token, SelectCustomerRequest{CustomerID: "11"})
	decodeBody(t, w, &resp)
	if resp.Cart.Customer == nil || resp.Cart.Customer.Name != "Jane Smith" {
		t.Fatalf("customer not selected: %+v", resp.Cart)
	}

	if w := env.do(http.MethodPut, "/api/credit-bill/customer", token, SelectCustomerRequest{CustomerID: "99"}); w.Code != http.StatusNotFound {
		t.Fatalf("unknown customer should 404, got %d", w.Code)
	}

	decodeBody(t, env.do(http.MethodDelete, "/api/credit-bill/customer", token, nil), &resp)
	if resp.Cart.Customer != nil {
		t.Fatalf("customer should be cleared")
	}
}

func TestCreditBill_PrintWithoutJournal(t *testing.T) {
	env, token := creditBillEnv(t)

	if w := env.do(http.MethodPost, "/api/credit-bill/print", token, nil); w.Code != http.StatusBadRequest {
		t.Fatalf("printing an empty cart should be 400, got %d", w.Code)
	}

	env.do(http.MethodPost, "/api/credit-bill/cart", token, AddToCartRequest{Code: "A1"})
	w := env.do(http.MethodPost, "/api/credit-bill/print", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("print status %d: %s", w.Code, w.Body.String())
	}
	if w.Header().Get("Content-Type") != "application/pdf" || w.Header().Get("X-Receipt-No") == "" {
		t.Fatalf("unexpected headers %v", w.Header())
	}
	if !strings.HasPrefix(w.Body.String(), "%PDF") {
		t.Fatalf("body is not a PDF")
	}

	if w := env.do(http.MethodGet, "/api/credit-bill/receipts", token, nil); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("receipts without journal should be 503, got %d", w.Code)
	}
}
