package screens

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/positnow_mobile/config"
	"github.com/mmdatafocus/positnow_mobile/models"
	"github.com/mmdatafocus/positnow_mobile/posapi"
	"github.com/mmdatafocus/positnow_mobile/utils"
	"github.com/sirupsen/logrus"
)

// Upstream is the part of the positnow API the screens read from.
type Upstream interface {
	Login(ctx context.Context, username string, password string) (string, error)
	GetPermissions(ctx context.Context, sess *models.Session) (map[string]string, error)
	GetCompanyByUser(ctx context.Context, sess *models.Session, username string) (string, error)
	GetAllItems(ctx context.Context, sess *models.Session) ([]models.Item, error)
	GetNestedStockItems(ctx context.Context, sess *models.Session) ([]models.StockItem, error)
	GetProfit(ctx context.Context, sess *models.Session, fromDate string, toDate string) (*models.ProfitSummary, error)
	GetCustomerOutstanding(ctx context.Context, sess *models.Session) ([]models.OutstandingRecord, error)
	GetAllCustomers(ctx context.Context, sess *models.Session) ([]models.Customer, error)
}

type Handler struct {
	API        Upstream
	State      *StateStore
	Logger     *logrus.Logger
	SessionTTL time.Duration
	Now        func() time.Time
}

func NewHandler(api Upstream) *Handler {
	return &Handler{
		API:        api,
		State:      NewStateStore(config.SessionTTL()),
		Logger:     config.GetLogger(),
		SessionTTL: config.SessionTTL(),
		Now:        time.Now,
	}
}

// fail logs err and writes payload with an "error" banner. The status follows the
// error kind: 400 for validation, 401 for an upstream 401, 409 for a busy session,
// 502 for everything upstream.
func (h *Handler) fail(c *gin.Context, funcName string, banner string, err error, payload gin.H) {
	if payload == nil {
		payload = gin.H{}
	}
	status := http.StatusBadGateway

	var validationErr *utils.ValidationError
	var netErr *posapi.NetworkError
	switch {
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
		banner = validationErr.Message
		if len(validationErr.Violations) > 0 {
			payload["violations"] = validationErr.Violations
		}
	case posapi.IsUnauthorized(err):
		status = http.StatusUnauthorized
	case errors.Is(err, utils.ErrSessionBusy):
		status = http.StatusConflict
		banner = err.Error()
	case errors.As(err, &netErr) && errors.Is(err, context.Canceled):
		// the phone went away; nobody reads this response
		h.Logger.WithField("funcName", funcName).Debug("upstream call cancelled by client")
		c.Abort()
		return
	}

	if status != http.StatusBadRequest {
		sid, _ := utils.GetSessionIdFromContext(c.Request.Context())
		config.LogError(h.Logger, "screens", funcName, banner, sid, err)
	}
	payload["error"] = banner
	c.JSON(status, payload)
}

// internal is for gateway-side failures (Redis, receipt journal).
func (h *Handler) internal(c *gin.Context, funcName string, banner string, err error, payload gin.H) {
	if errors.Is(err, utils.ErrSessionBusy) {
		h.fail(c, funcName, banner, err, payload)
		return
	}
	if payload == nil {
		payload = gin.H{}
	}
	sid, _ := utils.GetSessionIdFromContext(c.Request.Context())
	config.LogError(h.Logger, "screens", funcName, banner, sid, err)
	payload["error"] = banner
	c.JSON(http.StatusInternalServerError, payload)
}

func (h *Handler) bindJSON(c *gin.Context, dest any) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "invalid request",
			"violations": utils.ProcessValidationErrors(err),
		})
		return false
	}
	return true
}

func countText(n int, noun string) string {
	if n == 1 {
		return "Showing 1 " + noun
	}
	return "Showing " + strconv.Itoa(n) + " " + noun + "s"
}
