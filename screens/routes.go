package screens

import (
	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/positnow_mobile/middlewares"
)

// RegisterRoutes mounts every screen under /api. Everything but login needs a session.
// loginGuards run in front of the login handler only.
func RegisterRoutes(r gin.IRouter, h *Handler, loginGuards ...gin.HandlerFunc) {
	api := r.Group("/api")
	api.POST("/login", append(loginGuards, h.Login())...)

	authed := api.Group("", middlewares.SessionMiddleware())
	authed.POST("/logout", h.Logout())
	authed.GET("/dashboard", h.Dashboard())
	authed.GET("/items", h.Items())

	authed.GET("/stock", h.Stock())
	authed.POST("/stock/toggle", h.ToggleStock())

	authed.GET("/outstanding", h.Outstanding())
	authed.POST("/outstanding/toggle", h.ToggleOutstanding())
	authed.GET("/outstanding/export", h.ExportOutstanding())

	authed.POST("/profit", h.Profit())

	bill := authed.Group("/credit-bill")
	bill.GET("", h.CreditBill())
	bill.DELETE("", h.ResetCart())
	bill.POST("/cart", h.AddToCart())
	bill.PUT("/discount", h.SetDiscount())
	bill.PUT("/customer", h.SelectCustomer())
	bill.DELETE("/customer", h.ClearCustomer())
	bill.POST("/print", h.PrintReceipt())
	bill.GET("/receipts", h.Receipts())

	authed.GET("/order-form", h.OrderForm())
}
