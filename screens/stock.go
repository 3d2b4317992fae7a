package screens

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/positnow_mobile/middlewares"
	"github.com/mmdatafocus/positnow_mobile/models"
	"github.com/mmdatafocus/positnow_mobile/utils"
)

type InvoiceLineView struct {
	InvoiceName      string `json:"invoiceName"`
	UnitCost         string `json:"unitCost"`
	SellingPrice     string `json:"sellingPrice"`
	Qty              string `json:"qty"`
	AlreadyBilledQty string `json:"alreadyBilledQty"`
	ReturnQty        string `json:"returnQty"`
	ReservedQty      string `json:"reservedQty"`
}

type StockRowView struct {
	ItemID       string            `json:"itemId"`
	ItemCode     string            `json:"itemCode"`
	ItemName     string            `json:"itemName"`
	Supplier     string            `json:"supplier"`
	SellingPrice string            `json:"sellingPrice"`
	TotalQty     string            `json:"totalQty"`
	Expanded     bool              `json:"expanded"`
	InvoiceLines []InvoiceLineView `json:"invoiceLines,omitempty"`
}

type StockResponse struct {
	Rows   []StockRowView `json:"rows"`
	Footer string         `json:"footer"`
}

type StockToggleRequest struct {
	ItemID   string `json:"itemId" binding:"required"`
	Supplier string `json:"supplier"`
}

func stockRowViews(items []models.StockItem, expansion *models.ExpansionState[models.StockRowKey]) []StockRowView {
	rows := make([]StockRowView, 0, len(items))
	for _, s := range items {
		row := StockRowView{
			ItemID:       s.ItemID.String(),
			ItemCode:     s.ItemCode,
			ItemName:     s.ItemName,
			Supplier:     s.Supplier,
			SellingPrice: utils.FormatMoney(s.SellingPrice),
			TotalQty:     utils.FormatQty(s.TotalQty),
			Expanded:     expansion.IsExpanded(s.Key()),
		}
		if row.Expanded {
			row.InvoiceLines = make([]InvoiceLineView, 0, len(s.StockInvoiceItems))
			for _, line := range s.StockInvoiceItems {
				row.InvoiceLines = append(row.InvoiceLines, InvoiceLineView{
					InvoiceName:      line.InvoiceName,
					UnitCost:         utils.FormatMoney(line.UnitCost),
					SellingPrice:     utils.FormatMoney(line.SellingPrice),
					Qty:              utils.FormatQty(line.Qty),
					AlreadyBilledQty: utils.FormatQty(line.AlreadyBilledQty),
					ReturnQty:        utils.FormatQty(line.ReturnQty),
					ReservedQty:      utils.FormatQty(line.ReservedQty),
				})
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// Stock serves the stock screen sorted by item name, with ?q= on code or name.
func (h *Handler) Stock() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middlewares.CurrentSession(c)
		ctx := c.Request.Context()
		empty := gin.H{"rows": []StockRowView{}, "footer": countText(0, "item")}

		items, err := h.API.GetNestedStockItems(ctx, sess)
		if err != nil {
			h.fail(c, "Stock", "Failed to load stock. Please try again.", err, empty)
			return
		}
		expansion, err := h.State.StockExpansion(ctx, sess.ID)
		if err != nil {
			h.internal(c, "Stock", "Failed to load stock. Please try again.", err, empty)
			return
		}

		filtered := models.SearchStock(models.SortStockByName(items), c.Query("q"))
		c.JSON(http.StatusOK, StockResponse{
			Rows:   stockRowViews(filtered, expansion),
			Footer: countText(len(filtered), "item"),
		})
	}
}

// ToggleStock flips one (item, supplier) row open or closed.
func (h *Handler) ToggleStock() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req StockToggleRequest
		if !h.bindJSON(c, &req) {
			return
		}
		sess := middlewares.CurrentSession(c)
		ctx := c.Request.Context()

		release, err := utils.SessionLock(ctx, sess.ID, stateStock, "screens", "ToggleStock")
		if err != nil {
			h.internal(c, "ToggleStock", "Failed to update stock view.", err, nil)
			return
		}
		defer release()

		expansion, err := h.State.StockExpansion(ctx, sess.ID)
		if err != nil {
			h.internal(c, "ToggleStock", "Failed to update stock view.", err, nil)
			return
		}
		key := models.StockRowKey{ItemID: req.ItemID, Supplier: req.Supplier}
		expansion.Toggle(key)
		if err := h.State.SaveStockExpansion(ctx, sess.ID, expansion); err != nil {
			h.internal(c, "ToggleStock", "Failed to update stock view.", err, nil)
			return
		}
		c.JSON(http.StatusOK, gin.H{"itemId": key.ItemID, "supplier": key.Supplier, "expanded": expansion.IsExpanded(key)})
	}
}
