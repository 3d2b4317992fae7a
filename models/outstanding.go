package models

import (
	"fmt"
	"sort"

	"github.com/mmdatafocus/positnow_mobile/utils"
	"github.com/shopspring/decimal"
)

// Bill is one credit bill inside a customer's outstanding balance.
type Bill struct {
	BillNo       FlexString      `json:"billNo"`
	BillingDate  string          `json:"billingDate"`
	NetAmount    decimal.Decimal `json:"netAmount"`
	Discount     decimal.Decimal `json:"discount"`
	ReturnAmount decimal.Decimal `json:"returnAmount"`
	CreditNote   decimal.Decimal `json:"creditNote"`
	PaidAmount   decimal.Decimal `json:"paidAmount"`
	Age          FlexString      `json:"age"`
}

// Balance is derived on every call and never stored.
func (b Bill) Balance() decimal.Decimal {
	return b.NetAmount.
		Sub(b.PaidAmount).
		Sub(b.CreditNote).
		Sub(b.ReturnAmount).
		Sub(b.Discount)
}

type OutstandingRecord struct {
	CustomerID   FlexString      `json:"customerId"`
	Total        decimal.Decimal `json:"total"`
	NoOfInvoices int             `json:"noOfInvoices"`
	CreditBills  []Bill          `json:"creditBills"`
}

// MergedCustomer is an outstanding record enriched with its directory entry.
type MergedCustomer struct {
	CustomerID   string
	CustomerName string
	Address      string
	Total        decimal.Decimal
	NoOfInvoices int
	CreditBills  []Bill
}

func (m MergedCustomer) Key() CustomerRowKey {
	return CustomerRowKey{CustomerID: m.CustomerID}
}

type SortField string

const (
	SortByCustomerName SortField = "customerName"
	SortByAddress      SortField = "address"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ParseSortField accepts "" as customerName.
func ParseSortField(value string) (SortField, error) {
	switch SortField(value) {
	case "", SortByCustomerName:
		return SortByCustomerName, nil
	case SortByAddress:
		return SortByAddress, nil
	}
	return "", utils.NewValidationError(fmt.Sprintf("unknown sort field %q", value), map[string]string{"sort": "oneof"})
}

// ParseSortDirection accepts "" as asc.
func ParseSortDirection(value string) (SortDirection, error) {
	switch SortDirection(value) {
	case "", SortAsc:
		return SortAsc, nil
	case SortDesc:
		return SortDesc, nil
	}
	return "", utils.NewValidationError(fmt.Sprintf("unknown sort direction %q", value), map[string]string{"dir": "oneof"})
}

func (f SortField) value(m MergedCustomer) string {
	if f == SortByAddress {
		return m.Address
	}
	return m.CustomerName
}

// MergeAndSort left-joins records to the directory on customer id and orders the
// result by field. Each record appears exactly once; the first directory match wins.
// Inputs are not modified.
func MergeAndSort(records []OutstandingRecord, customers []Customer, field SortField, direction SortDirection) []MergedCustomer {
	joined := utils.LeftJoinFirst(records, customers,
		func(r OutstandingRecord) string { return r.CustomerID.String() },
		func(c Customer) string { return c.ID.String() },
	)

	merged := make([]MergedCustomer, 0, len(joined))
	for _, j := range joined {
		customer := ResolveCustomer(j.Match)
		bills := j.Primary.CreditBills
		if bills == nil {
			bills = []Bill{}
		}
		merged = append(merged, MergedCustomer{
			CustomerID:   j.Primary.CustomerID.String(),
			CustomerName: customer.Name,
			Address:      customer.Address,
			Total:        j.Primary.Total,
			NoOfInvoices: j.Primary.NoOfInvoices,
			CreditBills:  bills,
		})
	}

	sort.SliceStable(merged, func(i, k int) bool {
		cmp := utils.CompareFold(field.value(merged[i]), field.value(merged[k]))
		if direction == SortDesc {
			return cmp > 0
		}
		return cmp < 0
	})
	return merged
}

func SearchMerged(rows []MergedCustomer, query string) []MergedCustomer {
	return utils.FilterByQuery(rows, query,
		func(m MergedCustomer) string { return m.CustomerName },
		func(m MergedCustomer) string { return m.Address },
	)
}
