package models

import (
	"sort"

	"github.com/mmdatafocus/positnow_mobile/utils"
	"github.com/shopspring/decimal"
)

// StockItem is one (item, supplier) row of the nested stock listing.
type StockItem struct {
	ItemID            FlexString      `json:"itemId"`
	ItemCode          string          `json:"itemCode"`
	ItemName          string          `json:"itemName"`
	Supplier          string          `json:"supplier"`
	SellingPrice      decimal.Decimal `json:"sellingPrice"`
	TotalQty          decimal.Decimal `json:"totalQty"`
	StockInvoiceItems []InvoiceLine   `json:"stockInvoiceItems"`
}

type InvoiceLine struct {
	InvoiceName      string          `json:"invoiceName"`
	UnitCost         decimal.Decimal `json:"unitCost"`
	SellingPrice     decimal.Decimal `json:"sellingPrice"`
	Qty              decimal.Decimal `json:"qty"`
	AlreadyBilledQty decimal.Decimal `json:"alreadyBilledQty"`
	ReturnQty        decimal.Decimal `json:"returnQty"`
	ReservedQty      decimal.Decimal `json:"reservedQty"`
}

// StockRowKey identifies a stock row. The same item from two suppliers is two rows.
type StockRowKey struct {
	ItemID   string `json:"itemId"`
	Supplier string `json:"supplier"`
}

func (s StockItem) Key() StockRowKey {
	return StockRowKey{ItemID: s.ItemID.String(), Supplier: s.Supplier}
}

// SortStockByName returns a copy ordered by item name, case-insensitively.
func SortStockByName(items []StockItem) []StockItem {
	sorted := make([]StockItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return utils.CompareFold(sorted[i].ItemName, sorted[j].ItemName) < 0
	})
	return sorted
}

func SearchStock(items []StockItem, query string) []StockItem {
	return utils.FilterByQuery(items, query,
		func(s StockItem) string { return s.ItemCode },
		func(s StockItem) string { return s.ItemName },
	)
}
