package screens

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/positnow_mobile/config"
	"github.com/mmdatafocus/positnow_mobile/middlewares"
	"github.com/mmdatafocus/positnow_mobile/models"
	"github.com/mmdatafocus/positnow_mobile/reports"
	"github.com/mmdatafocus/positnow_mobile/utils"
)

const msgOutstandingFailed = "Failed to load customer outstanding. Please try again."

type BillView struct {
	BillNo       string `json:"billNo"`
	BillingDate  string `json:"billingDate"`
	NetAmount    string `json:"netAmount"`
	Discount     string `json:"discount"`
	ReturnAmount string `json:"returnAmount"`
	CreditNote   string `json:"creditNote"`
	PaidAmount   string `json:"paidAmount"`
	Balance      string `json:"balance"`
	Age          string `json:"age"`
}

type OutstandingRowView struct {
	CustomerID   string     `json:"customerId"`
	CustomerName string     `json:"customerName"`
	Address      string     `json:"address"`
	Total        string     `json:"total"`
	NoOfInvoices int        `json:"noOfInvoices"`
	Expanded     bool       `json:"expanded"`
	CreditBills  []BillView `json:"creditBills,omitempty"`
}

type OutstandingResponse struct {
	Rows      []OutstandingRowView `json:"rows"`
	Sort      models.SortField     `json:"sort"`
	Direction models.SortDirection `json:"dir"`
	Footer    string               `json:"footer"`
}

type OutstandingToggleRequest struct {
	CustomerID string `json:"customerId" binding:"required"`
}

func billView(b models.Bill) BillView {
	return BillView{
		BillNo:       b.BillNo.String(),
		BillingDate:  b.BillingDate,
		NetAmount:    utils.FormatMoney(b.NetAmount),
		Discount:     utils.FormatMoney(b.Discount),
		ReturnAmount: utils.FormatMoney(b.ReturnAmount),
		CreditNote:   utils.FormatMoney(b.CreditNote),
		PaidAmount:   utils.FormatMoney(b.PaidAmount),
		Balance:      utils.FormatMoney(b.Balance()),
		Age:          b.Age.String(),
	}
}

func outstandingRowViews(rows []models.MergedCustomer, expansion *models.ExpansionState[models.CustomerRowKey]) []OutstandingRowView {
	views := make([]OutstandingRowView, 0, len(rows))
	for _, m := range rows {
		view := OutstandingRowView{
			CustomerID:   m.CustomerID,
			CustomerName: m.CustomerName,
			Address:      m.Address,
			Total:        utils.FormatMoney(m.Total),
			NoOfInvoices: m.NoOfInvoices,
			Expanded:     expansion.IsExpanded(m.Key()),
		}
		if view.Expanded {
			view.CreditBills = make([]BillView, 0, len(m.CreditBills))
			for _, b := range m.CreditBills {
				view.CreditBills = append(view.CreditBills, billView(b))
			}
		}
		views = append(views, view)
	}
	return views
}

type outstandingQuery struct {
	query     string
	field     models.SortField
	direction models.SortDirection
}

func parseOutstandingQuery(c *gin.Context) (outstandingQuery, error) {
	field, err := models.ParseSortField(c.Query("sort"))
	if err != nil {
		return outstandingQuery{}, err
	}
	direction, err := models.ParseSortDirection(c.Query("dir"))
	if err != nil {
		return outstandingQuery{}, err
	}
	return outstandingQuery{query: c.Query("q"), field: field, direction: direction}, nil
}

// loadOutstanding fetches balances and then the directory. The directory request is
// not issued until the balances have arrived.
func (h *Handler) loadOutstanding(ctx context.Context, sess *models.Session, q outstandingQuery) ([]models.MergedCustomer, error) {
	records, err := h.API.GetCustomerOutstanding(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("fetch outstanding: %w", err)
	}
	customers, err := h.API.GetAllCustomers(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("fetch customers: %w", err)
	}
	merged := models.MergeAndSort(records, customers, q.field, q.direction)
	return models.SearchMerged(merged, q.query), nil
}

// Outstanding serves the customer outstanding screen.
// Query: q (name or address), sort (customerName|address), dir (asc|desc).
func (h *Handler) Outstanding() gin.HandlerFunc {
	return func(c *gin.Context) {
		empty := gin.H{"rows": []OutstandingRowView{}, "footer": countText(0, "customer")}
		q, err := parseOutstandingQuery(c)
		if err != nil {
			h.fail(c, "Outstanding", "invalid sort", err, empty)
			return
		}
		sess := middlewares.CurrentSession(c)
		ctx := c.Request.Context()

		rows, err := h.loadOutstanding(ctx, sess, q)
		if err != nil {
			h.fail(c, "Outstanding", msgOutstandingFailed, err, empty)
			return
		}
		expansion, err := h.State.OutstandingExpansion(ctx, sess.ID)
		if err != nil {
			h.internal(c, "Outstanding", msgOutstandingFailed, err, empty)
			return
		}
		c.JSON(http.StatusOK, OutstandingResponse{
			Rows:      outstandingRowViews(rows, expansion),
			Sort:      q.field,
			Direction: q.direction,
			Footer:    countText(len(rows), "customer"),
		})
	}
}

// ToggleOutstanding flips one customer's bill list open or closed.
func (h *Handler) ToggleOutstanding() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req OutstandingToggleRequest
		if !h.bindJSON(c, &req) {
			return
		}
		sess := middlewares.CurrentSession(c)
		ctx := c.Request.Context()

		release, err := utils.SessionLock(ctx, sess.ID, stateOutstanding, "screens", "ToggleOutstanding")
		if err != nil {
			h.internal(c, "ToggleOutstanding", "Failed to update outstanding view.", err, nil)
			return
		}
		defer release()

		expansion, err := h.State.OutstandingExpansion(ctx, sess.ID)
		if err != nil {
			h.internal(c, "ToggleOutstanding", "Failed to update outstanding view.", err, nil)
			return
		}
		key := models.CustomerRowKey{CustomerID: req.CustomerID}
		expansion.Toggle(key)
		if err := h.State.SaveOutstandingExpansion(ctx, sess.ID, expansion); err != nil {
			h.internal(c, "ToggleOutstanding", "Failed to update outstanding view.", err, nil)
			return
		}
		c.JSON(http.StatusOK, gin.H{"customerId": key.CustomerID, "expanded": expansion.IsExpanded(key)})
	}
}

// ExportOutstanding streams the same rows as Outstanding as an xlsx workbook.
func (h *Handler) ExportOutstanding() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !config.OutstandingExportEnabled() {
			c.JSON(http.StatusNotFound, gin.H{"error": "export disabled"})
			return
		}
		q, err := parseOutstandingQuery(c)
		if err != nil {
			h.fail(c, "ExportOutstanding", "invalid sort", err, nil)
			return
		}
		sess := middlewares.CurrentSession(c)
		rows, err := h.loadOutstanding(c.Request.Context(), sess, q)
		if err != nil {
			h.fail(c, "ExportOutstanding", msgOutstandingFailed, err, nil)
			return
		}

		book, err := reports.OutstandingWorkbook(rows)
		if err != nil {
			h.internal(c, "ExportOutstanding", "Failed to build export.", err, nil)
			return
		}
		defer book.Close()

		c.Header("Content-Type", reports.XlsxContentType)
		c.Header("Content-Disposition", "attachment; filename=customer-outstanding.xlsx")
		c.Status(http.StatusOK)
		if err := book.Write(c.Writer); err != nil {
			config.LogError(h.Logger, "screens", "ExportOutstanding", "failed to write workbook", sess.ID, err)
		}
	}
}
