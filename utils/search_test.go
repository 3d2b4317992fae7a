package utils

import (
	"reflect"
	"testing"
)

type row struct {
	code string
	name string
}

func rowFields() []func(row) string {
	return []func(row) string{
		func(r row) string { return r.code },
		func(r row) string { return r.name },
	}
}

func TestFilterByQuery_BlankQueryIsIdentity(t *testing.T) {
	items := []row{{"A1", "Apple"}, {"B2", "Banana"}}
	for _, q := range []string{"", " ", "\t\n"} {
		got := FilterByQuery(items, q, rowFields()...)
		if !reflect.DeepEqual(got, items) {
			t.Fatalf("FilterByQuery(%q) expected identity, got %v", q, got)
		}
	}
}

func TestFilterByQuery_MatchesAnyFieldCaseInsensitive(t *testing.T) {
	items := []row{{"A1", "Apple"}, {"B2", "Banana"}, {"C3", "Cherry"}, {"a4", "Avocado"}}
	cases := []struct {
		query    string
		expected []row
	}{
		{"app", []row{{"A1", "Apple"}}},
		{"A", []row{{"A1", "Apple"}, {"B2", "Banana"}, {"a4", "Avocado"}}},
		{"c3", []row{{"C3", "Cherry"}}},
		{"RR", []row{{"C3", "Cherry"}}},
		{"zzz", []row{}},
	}
	for _, tc := range cases {
		got := FilterByQuery(items, tc.query, rowFields()...)
		if !reflect.DeepEqual(got, tc.expected) {
			t.Fatalf("FilterByQuery(%q) expected %v, got %v", tc.query, tc.expected, got)
		}
	}
}

func TestFilterByQuery_SubsequenceAndIdempotent(t *testing.T) {
	items := []row{{"X1", "one"}, {"", ""}, {"X2", "two"}, {"Y3", "xylophone"}}
	once := FilterByQuery(items, "x", rowFields()...)
	twice := FilterByQuery(once, "x", rowFields()...)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("filter not idempotent: %v vs %v", once, twice)
	}
	// order preserved: every result appears in items after the previous one
	pos := 0
	for _, r := range once {
		found := false
		for pos < len(items) {
			if items[pos] == r {
				found = true
				pos++
				break
			}
			pos++
		}
		if !found {
			t.Fatalf("result %v is not a subsequence of the input", once)
		}
	}
	if len(once) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(once))
	}
}

func TestCompareFold(t *testing.T) {
	if CompareFold("ann", "ANN") != 0 {
		t.Fatalf("expected case-insensitive equality")
	}
	if CompareFold("Bob", "alice") <= 0 {
		t.Fatalf("expected Bob after alice")
	}
}
