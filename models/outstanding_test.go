package models

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/mmdatafocus/positnow_mobile/utils"
	"github.com/shopspring/decimal"
)

func decodeJSON[T any](t *testing.T, raw string) T {
	t.Helper()
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
	return v
}

func names(rows []MergedCustomer) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.CustomerName)
	}
	return out
}

func TestMergeAndSort_RoundsScenarioTotal(t *testing.T) {
	records := decodeJSON[[]OutstandingRecord](t, `[{"customerId":1,"total":"50.005"}]`)
	customers := decodeJSON[[]Customer](t, `[{"id":1,"name":"Ann","address":"X"}]`)

	merged := MergeAndSort(records, customers, SortByCustomerName, SortAsc)
	if len(merged) != 1 {
		t.Fatalf("expected 1 row, got %d", len(merged))
	}
	m := merged[0]
	if m.CustomerName != "Ann" || m.Address != "X" {
		t.Fatalf("unexpected merge %+v", m)
	}
	if m.Total.String() != "50.005" {
		t.Fatalf("total should be kept exact, got %s", m.Total)
	}
	if got := utils.FormatMoney(m.Total); got != "50.01" {
		t.Fatalf("expected 50.01, got %s", got)
	}
	if m.CreditBills == nil || len(m.CreditBills) != 0 {
		t.Fatalf("missing creditBills should become an empty list, got %#v", m.CreditBills)
	}
}

func TestMergeAndSort_LeftJoinFallbacks(t *testing.T) {
	records := []OutstandingRecord{
		{CustomerID: "1", Total: decimal.NewFromInt(10)},
		{CustomerID: "2", Total: decimal.NewFromInt(20)},
		{CustomerID: "3", Total: decimal.NewFromInt(30)},
	}
	customers := []Customer{
		{ID: "1", Name: "Zed", Address: "Z Road"},
		{ID: "1", Name: "Shadowed", Address: "Nowhere"},
		{ID: "3", Name: "", Address: ""},
		{ID: "99", Name: "Never Shown", Address: "Gone"},
	}

	merged := MergeAndSort(records, customers, SortByCustomerName, SortAsc)
	if len(merged) != len(records) {
		t.Fatalf("every record must appear once, got %d rows", len(merged))
	}
	byID := map[string]MergedCustomer{}
	for _, m := range merged {
		if _, dup := byID[m.CustomerID]; dup {
			t.Fatalf("customer %s appears twice", m.CustomerID)
		}
		byID[m.CustomerID] = m
		if m.CustomerName == "Never Shown" || m.CustomerName == "Shadowed" {
			t.Fatalf("unexpected directory entry leaked: %+v", m)
		}
	}
	if byID["1"].CustomerName != "Zed" {
		t.Fatalf("first directory match should win, got %q", byID["1"].CustomerName)
	}
	for _, id := range []string{"2", "3"} {
		if byID[id].CustomerName != UnknownCustomerName || byID[id].Address != NoAddress {
			t.Fatalf("customer %s should use fallbacks, got %+v", id, byID[id])
		}
	}
}

func TestMergeAndSort_NumericAndStringIDsJoin(t *testing.T) {
	records := decodeJSON[[]OutstandingRecord](t, `[{"customerId":"7","total":1}]`)
	customers := decodeJSON[[]Customer](t, `[{"id":7,"name":"Seven","address":"Lucky St"}]`)
	merged := MergeAndSort(records, customers, SortByCustomerName, SortAsc)
	if merged[0].CustomerName != "Seven" {
		t.Fatalf("expected numeric and string ids to join, got %+v", merged[0])
	}
}

func TestMergeAndSort_OrdersCaseInsensitively(t *testing.T) {
	records := []OutstandingRecord{{CustomerID: "1"}, {CustomerID: "2"}, {CustomerID: "3"}, {CustomerID: "4"}}
	customers := []Customer{
		{ID: "1", Name: "bob", Address: "c street"},
		{ID: "2", Name: "Alice", Address: "B street"},
		{ID: "3", Name: "carol", Address: "a street"},
		{ID: "4", Name: "BOB", Address: "d street"},
	}

	cases := []struct {
		field     SortField
		direction SortDirection
		expected  []string
	}{
		{SortByCustomerName, SortAsc, []string{"Alice", "bob", "BOB", "carol"}},
		{SortByCustomerName, SortDesc, []string{"carol", "bob", "BOB", "Alice"}},
		{SortByAddress, SortAsc, []string{"carol", "Alice", "bob", "BOB"}},
		{SortByAddress, SortDesc, []string{"BOB", "bob", "Alice", "carol"}},
	}
	for _, tc := range cases {
		got := names(MergeAndSort(records, customers, tc.field, tc.direction))
		if !reflect.DeepEqual(got, tc.expected) {
			t.Fatalf("%s %s expected %v, got %v", tc.field, tc.direction, tc.expected, got)
		}
	}
}

func TestMergeAndSort_IsPure(t *testing.T) {
	records := []OutstandingRecord{{CustomerID: "2"}, {CustomerID: "1"}}
	customers := []Customer{{ID: "1", Name: "A"}, {ID: "2", Name: "B"}}
	recordsBefore := append([]OutstandingRecord(nil), records...)
	customersBefore := append([]Customer(nil), customers...)

	first := MergeAndSort(records, customers, SortByCustomerName, SortAsc)
	second := MergeAndSort(records, customers, SortByCustomerName, SortAsc)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same inputs gave different outputs")
	}
	if !reflect.DeepEqual(records, recordsBefore) || !reflect.DeepEqual(customers, customersBefore) {
		t.Fatalf("inputs were mutated")
	}
	if records[0].CreditBills != nil {
		t.Fatalf("input creditBills should stay nil")
	}
}

func TestParseSort(t *testing.T) {
	if f, err := ParseSortField(""); err != nil || f != SortByCustomerName {
		t.Fatalf("blank sort should default to customerName, got %q %v", f, err)
	}
	if f, err := ParseSortField("address"); err != nil || f != SortByAddress {
		t.Fatalf("expected address, got %q %v", f, err)
	}
	if _, err := ParseSortField("total"); err == nil {
		t.Fatalf("expected error for unknown field")
	}
	if d, err := ParseSortDirection(""); err != nil || d != SortAsc {
		t.Fatalf("blank dir should default to asc, got %q %v", d, err)
	}
	if _, err := ParseSortDirection("up"); err == nil {
		t.Fatalf("expected error for unknown direction")
	}
}

func TestBillBalance(t *testing.T) {
	bill := decodeJSON[Bill](t, `{"billNo":"B-1","netAmount":100,"paidAmount":"20.5","creditNote":5,"returnAmount":4.5,"discount":10,"age":12}`)
	if got := utils.FormatMoney(bill.Balance()); got != "60.00" {
		t.Fatalf("expected balance 60.00, got %s", got)
	}
	if bill.Age.String() != "12" {
		t.Fatalf("expected numeric age to decode, got %q", bill.Age)
	}
}

func TestSearchMerged(t *testing.T) {
	rows := []MergedCustomer{
		{CustomerName: "Ann", Address: "Main St"},
		{CustomerName: "Bob", Address: "Harbour Rd"},
		{CustomerName: UnknownCustomerName, Address: NoAddress},
	}
	got := names(SearchMerged(rows, "main"))
	if !reflect.DeepEqual(got, []string{"Ann"}) {
		t.Fatalf("expected address match, got %v", got)
	}
	got = names(SearchMerged(rows, "unknown"))
	if !reflect.DeepEqual(got, []string{UnknownCustomerName}) {
		t.Fatalf("fallback name should be searchable, got %v", got)
	}
}
