package models

import (
	"github.com/mmdatafocus/positnow_mobile/utils"
	"github.com/shopspring/decimal"
)

// Item is one catalog entry, identified by Code.
type Item struct {
	ID           FlexString      `json:"id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
}

// SearchItems matches on code or name.
func SearchItems(items []Item, query string) []Item {
	return utils.FilterByQuery(items, query,
		func(i Item) string { return i.Code },
		func(i Item) string { return i.Name },
	)
}

func FindItemByCode(items []Item, code string) (Item, bool) {
	for _, item := range items {
		if item.Code == code {
			return item, true
		}
	}
	return Item{}, false
}
