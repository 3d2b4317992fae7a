package screens

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/positnow_mobile/config"
	"github.com/mmdatafocus/positnow_mobile/middlewares"
	"github.com/mmdatafocus/positnow_mobile/models"
	"github.com/mmdatafocus/positnow_mobile/posapi"
	"github.com/mmdatafocus/positnow_mobile/utils"
)

const (
	msgEmptyCredentials = "Username and password cannot be empty."
	msgLoginFailed      = "Login failed"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

func (h *Handler) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if !h.bindJSON(c, &req) {
			return
		}
		if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Password) == "" {
			h.fail(c, "Login", msgEmptyCredentials, utils.NewValidationError(msgEmptyCredentials, nil), nil)
			return
		}

		ctx := c.Request.Context()
		upstreamToken, err := h.API.Login(ctx, req.Username, req.Password)
		if err != nil {
			message := posapi.UpstreamMessage(err)
			if message == "" {
				message = msgLoginFailed
			}
			status := http.StatusBadGateway
			var httpErr *posapi.HTTPError
			if errors.As(err, &httpErr) && httpErr.StatusCode < 500 {
				status = http.StatusUnauthorized
			}
			config.LogError(h.Logger, "screens", "Login", "upstream login failed", req.Username, err)
			c.JSON(status, gin.H{"error": message})
			return
		}

		sess := models.NewSession(upstreamToken, req.Username)
		if err := models.SaveSession(ctx, sess, h.SessionTTL); err != nil {
			h.internal(c, "Login", msgLoginFailed, err, nil)
			return
		}
		token, err := utils.JwtGenerate(sess.ID, sess.Username)
		if err != nil {
			h.internal(c, "Login", msgLoginFailed, err, nil)
			return
		}
		h.Logger.WithField("username", sess.Username).Info("session started")
		c.JSON(http.StatusOK, LoginResponse{Token: token, Username: sess.Username})
	}
}

// Logout ends the session and drops all of its screen state.
func (h *Handler) Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middlewares.CurrentSession(c)
		ctx := c.Request.Context()
		if err := h.State.Clear(ctx, sess.ID); err != nil {
			h.internal(c, "Logout", "Logout failed", err, nil)
			return
		}
		if err := models.DeleteSession(ctx, sess.ID); err != nil {
			h.internal(c, "Logout", "Logout failed", err, nil)
			return
		}
		c.JSON(http.StatusOK, gin.H{"loggedOut": true})
	}
}
