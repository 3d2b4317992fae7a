package models

import (
	"github.com/mmdatafocus/positnow_mobile/utils"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type CartLine struct {
	Item
	Qty        int64           `json:"qty"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// Cart is the credit-bill working set. Discount inputs are kept as typed text.
type Cart struct {
	Lines              []CartLine `json:"lines"`
	DiscountValue      string     `json:"discountValue"`
	DiscountPercentage string     `json:"discountPercentage"`
	Customer           *Customer  `json:"customer,omitempty"`
}

func (c *Cart) findLine(code string) int {
	for i, line := range c.Lines {
		if line.Code == code {
			return i
		}
	}
	return -1
}

// AddToCart appends a single piece of item. An item already in the cart is left
// untouched and false is returned; there is no quantity increment on this path.
func (c *Cart) AddToCart(item Item) bool {
	if c.findLine(item.Code) >= 0 {
		return false
	}
	c.Lines = append(c.Lines, CartLine{Item: item, Qty: 1, TotalPrice: item.SellingPrice})
	return true
}

// AddOrIncrement bumps qty and total of an existing line, or appends a new one.
func (c *Cart) AddOrIncrement(item Item) {
	i := c.findLine(item.Code)
	if i < 0 {
		c.AddToCart(item)
		return
	}
	line := &c.Lines[i]
	line.Qty++
	line.TotalPrice = line.SellingPrice.Mul(decimal.NewFromInt(line.Qty))
}

func (c *Cart) GrossTotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.TotalPrice)
	}
	return total
}

// NetTotal applies the percentage discount when one parses, otherwise the absolute
// discount, otherwise nothing.
func (c *Cart) NetTotal() decimal.Decimal {
	gross := c.GrossTotal()
	if pct, ok := utils.ParseOptionalDecimal(c.DiscountPercentage).Get(); ok {
		return gross.Mul(decimal.NewFromInt(1).Sub(pct.Div(hundred)))
	}
	if value, ok := utils.ParseOptionalDecimal(c.DiscountValue).Get(); ok {
		return gross.Sub(value)
	}
	return gross
}

// DiscountLabel describes the discount NetTotal applies.
func (c *Cart) DiscountLabel() string {
	if pct, ok := utils.ParseOptionalDecimal(c.DiscountPercentage).Get(); ok {
		return pct.String() + "%"
	}
	if value, ok := utils.ParseOptionalDecimal(c.DiscountValue).Get(); ok {
		return "$" + utils.FormatMoney(value)
	}
	return "none"
}

func (c *Cart) ItemCount() int {
	return len(c.Lines)
}

func (c *Cart) PieceCount() int64 {
	var pieces int64
	for _, line := range c.Lines {
		pieces += line.Qty
	}
	return pieces
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
