package screens

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/positnow_mobile/middlewares"
	"github.com/mmdatafocus/positnow_mobile/utils"
)

const (
	dateLayout       = "2006-01-02"
	msgProfitFailed  = "Failed to fetch profit data."
	msgProfitBadDate = "From date must not be after to date."
)

type ProfitRequest struct {
	FromDate string `json:"fromDate" binding:"omitempty,datetime=2006-01-02"`
	ToDate   string `json:"toDate" binding:"omitempty,datetime=2006-01-02"`
}

type ProfitResponse struct {
	FromDate   string `json:"fromDate"`
	ToDate     string `json:"toDate"`
	SalesValue string `json:"salesValue"`
	UnitCost   string `json:"unitCost"`
	Profit     string `json:"profit"`
}

// Profit reports sales, cost and their difference for a date range. Missing dates
// default to today.
func (h *Handler) Profit() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProfitRequest
		if c.Request.ContentLength != 0 && !h.bindJSON(c, &req) {
			return
		}
		today := h.Now().Format(dateLayout)
		if req.FromDate == "" {
			req.FromDate = today
		}
		if req.ToDate == "" {
			req.ToDate = today
		}
		// same layout, so string order is date order
		if req.FromDate > req.ToDate {
			h.fail(c, "Profit", msgProfitBadDate, utils.NewValidationError(msgProfitBadDate, map[string]string{"fromDate": "ltefield"}), nil)
			return
		}

		sess := middlewares.CurrentSession(c)
		summary, err := h.API.GetProfit(c.Request.Context(), sess, req.FromDate, req.ToDate)
		if err != nil {
			h.fail(c, "Profit", msgProfitFailed, err, gin.H{"fromDate": req.FromDate, "toDate": req.ToDate})
			return
		}
		c.JSON(http.StatusOK, ProfitResponse{
			FromDate:   req.FromDate,
			ToDate:     req.ToDate,
			SalesValue: utils.FormatMoney(summary.SalesValue.Decimal),
			UnitCost:   utils.FormatMoney(summary.UnitCost.Decimal),
			Profit:     utils.FormatMoney(summary.Profit()),
		})
	}
}
