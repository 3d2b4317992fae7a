package utils

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatMoney_TwoPlacesHalfAwayFromZero(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{"50.005", "50.01"},
		{"50.004", "50.00"},
		{"100", "100.00"},
		{"0", "0.00"},
		{"1.5", "1.50"},
		{"-2.345", "-2.35"},
		{"1234567.891", "1234567.89"},
	}
	for _, tc := range cases {
		got := FormatMoney(decimal.RequireFromString(tc.in))
		if got != tc.expected {
			t.Fatalf("FormatMoney(%s) expected %s, got %s", tc.in, tc.expected, got)
		}
	}
}

func TestFormatQty(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{"5", "5"},
		{"5.000", "5"},
		{"0", "0"},
		{"2.5", "2.500"},
		{"0.1234", "0.123"},
		{"-3", "-3"},
	}
	for _, tc := range cases {
		got := FormatQty(decimal.RequireFromString(tc.in))
		if got != tc.expected {
			t.Fatalf("FormatQty(%s) expected %s, got %s", tc.in, tc.expected, got)
		}
	}
}
