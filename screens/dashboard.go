package screens

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/positnow_mobile/config"
	"github.com/mmdatafocus/positnow_mobile/middlewares"
	"github.com/mmdatafocus/positnow_mobile/models"
	"github.com/mmdatafocus/positnow_mobile/posapi"
)

const (
	defaultDashboardTitle = "Dashboard"
	msgCompanyFailed      = "Failed to load company name. Please try again later."
)

type DashboardResponse struct {
	Title    string          `json:"title"`
	Username string          `json:"username"`
	Screens  []models.Screen `json:"screens"`
	Error    string          `json:"error,omitempty"`
}

// Dashboard lists the screens the user may open. A permission failure shows no
// screens; a company failure keeps the default title and sets the banner.
func (h *Handler) Dashboard() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middlewares.CurrentSession(c)
		ctx := c.Request.Context()

		permissions, err := h.API.GetPermissions(ctx, sess)
		if err != nil {
			if posapi.IsUnauthorized(err) {
				h.fail(c, "Dashboard", "unauthorized", err, gin.H{"screens": []models.Screen{}})
				return
			}
			config.LogError(h.Logger, "screens", "Dashboard", "failed to fetch permissions", sess.ID, err)
			permissions = map[string]string{}
		}

		resp := DashboardResponse{
			Title:    defaultDashboardTitle,
			Username: sess.Username,
			Screens:  models.AllowedScreens(permissions),
		}

		companyName, err := h.API.GetCompanyByUser(ctx, sess, sess.Username)
		if err != nil {
			config.LogError(h.Logger, "screens", "Dashboard", "failed to fetch company name", sess.Username, err)
			resp.Error = msgCompanyFailed
		} else if companyName != "" {
			resp.Title = companyName
		}
		c.JSON(http.StatusOK, resp)
	}
}
