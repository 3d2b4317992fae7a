package screens

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/positnow_mobile/config"
	"github.com/mmdatafocus/positnow_mobile/middlewares"
	"github.com/mmdatafocus/positnow_mobile/models"
	"github.com/mmdatafocus/positnow_mobile/reports"
	"github.com/mmdatafocus/positnow_mobile/utils"
)

const (
	msgItemsFailed     = "Failed to load items. Please try again."
	msgCustomersFailed = "Failed to load customers. Please try again."
	msgCartFailed      = "Failed to update the cart."
	msgPrintFailed     = "Failed to print the invoice."
)

type CartLineView struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	SellingPrice string `json:"sellingPrice"`
	Qty          int64  `json:"qty"`
	TotalPrice   string `json:"totalPrice"`
}

type CustomerView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type CartView struct {
	Lines              []CartLineView `json:"lines"`
	ItemCount          int            `json:"itemCount"`
	PieceCount         int64          `json:"pieceCount"`
	GrossTotal         string         `json:"grossTotal"`
	NetTotal           string         `json:"netTotal"`
	DiscountValue      string         `json:"discountValue"`
	DiscountPercentage string         `json:"discountPercentage"`
	DiscountLabel      string         `json:"discountLabel"`
	Customer           *CustomerView  `json:"customer"`
}

type CreditBillResponse struct {
	Catalog   []ItemView     `json:"catalog"`
	Customers []CustomerView `json:"customers"`
	Cart      CartView       `json:"cart"`
	Error     string         `json:"error,omitempty"`
}

type AddToCartRequest struct {
	Code string `json:"code" binding:"required"`
}

type DiscountRequest struct {
	Value      string `json:"value"`
	Percentage string `json:"percentage"`
}

type SelectCustomerRequest struct {
	CustomerID string `json:"customerId" binding:"required"`
}

func customerView(c models.Customer) CustomerView {
	return CustomerView{ID: c.ID.String(), Name: c.Name, Address: c.Address}
}

func cartView(cart *models.Cart) CartView {
	view := CartView{
		Lines:              make([]CartLineView, 0, len(cart.Lines)),
		ItemCount:          cart.ItemCount(),
		PieceCount:         cart.PieceCount(),
		GrossTotal:         utils.FormatMoney(cart.GrossTotal()),
		NetTotal:           utils.FormatMoney(cart.NetTotal()),
		DiscountValue:      cart.DiscountValue,
		DiscountPercentage: cart.DiscountPercentage,
		DiscountLabel:      cart.DiscountLabel(),
	}
	for _, line := range cart.Lines {
		view.Lines = append(view.Lines, CartLineView{
			Code:         line.Code,
			Name:         line.Name,
			SellingPrice: utils.FormatMoney(line.SellingPrice),
			Qty:          line.Qty,
			TotalPrice:   utils.FormatMoney(line.TotalPrice),
		})
	}
	if cart.Customer != nil {
		cv := customerView(*cart.Customer)
		view.Customer = &cv
	}
	return view
}

// CreditBill serves the credit-bill screen: catalog search (?q=), customer search
// (?customerQuery=, directory only fetched while searching) and the cart.
func (h *Handler) CreditBill() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middlewares.CurrentSession(c)
		ctx := c.Request.Context()

		cart, err := h.State.Cart(ctx, sess.ID)
		if err != nil {
			h.internal(c, "CreditBill", msgCartFailed, err, nil)
			return
		}
		resp := CreditBillResponse{
			Catalog:   []ItemView{},
			Customers: []CustomerView{},
			Cart:      cartView(cart),
		}

		items, err := h.API.GetAllItems(ctx, sess)
		if err != nil {
			h.fail(c, "CreditBill", msgItemsFailed, err, gin.H{"catalog": resp.Catalog, "customers": resp.Customers, "cart": resp.Cart})
			return
		}
		resp.Catalog = itemViews(models.SearchItems(items, c.Query("q")))

		if customerQuery := c.Query("customerQuery"); customerQuery != "" {
			customers, err := h.API.GetAllCustomers(ctx, sess)
			if err != nil {
				config.LogError(h.Logger, "screens", "CreditBill", "failed to fetch customers", sess.ID, err)
				resp.Error = msgCustomersFailed
			} else {
				for _, cu := range models.SearchCustomers(customers, customerQuery) {
					resp.Customers = append(resp.Customers, customerView(cu))
				}
			}
		}
		c.JSON(http.StatusOK, resp)
	}
}

// mutateCart runs fn on the stored cart under the session's cart lock and saves it.
func (h *Handler) mutateCart(c *gin.Context, funcName string, fn func(cart *models.Cart) gin.H) {
	sess := middlewares.CurrentSession(c)
	ctx := c.Request.Context()

	release, err := utils.SessionLock(ctx, sess.ID, stateCart, "screens", funcName)
	if err != nil {
		h.internal(c, funcName, msgCartFailed, err, nil)
		return
	}
	defer release()

	cart, err := h.State.Cart(ctx, sess.ID)
	if err != nil {
		h.internal(c, funcName, msgCartFailed, err, nil)
		return
	}
	extra := fn(cart)
	if err := h.State.SaveCart(ctx, sess.ID, cart); err != nil {
		h.internal(c, funcName, msgCartFailed, err, nil)
		return
	}
	payload := gin.H{"cart": cartView(cart)}
	for k, v := range extra {
		payload[k] = v
	}
	c.JSON(http.StatusOK, payload)
}

// AddToCart adds one piece of the item with the given code. Re-adding an item
// already in the cart changes nothing unless CART_READD_INCREMENTS is on.
func (h *Handler) AddToCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddToCartRequest
		if !h.bindJSON(c, &req) {
			return
		}
		sess := middlewares.CurrentSession(c)
		items, err := h.API.GetAllItems(c.Request.Context(), sess)
		if err != nil {
			h.fail(c, "AddToCart", msgItemsFailed, err, nil)
			return
		}
		item, ok := models.FindItemByCode(items, req.Code)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}

		h.mutateCart(c, "AddToCart", func(cart *models.Cart) gin.H {
			if config.CartReAddIncrements() {
				cart.AddOrIncrement(item)
				return gin.H{"added": true}
			}
			return gin.H{"added": cart.AddToCart(item)}
		})
	}
}

// SetDiscount stores the discount inputs as typed. Unparseable text counts as no discount.
func (h *Handler) SetDiscount() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DiscountRequest
		if !h.bindJSON(c, &req) {
			return
		}
		h.mutateCart(c, "SetDiscount", func(cart *models.Cart) gin.H {
			cart.DiscountValue = req.Value
			cart.DiscountPercentage = req.Percentage
			return nil
		})
	}
}

func (h *Handler) SelectCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SelectCustomerRequest
		if !h.bindJSON(c, &req) {
			return
		}
		sess := middlewares.CurrentSession(c)
		customers, err := h.API.GetAllCustomers(c.Request.Context(), sess)
		if err != nil {
			h.fail(c, "SelectCustomer", msgCustomersFailed, err, nil)
			return
		}
		customer, ok := models.FindCustomerByID(customers, req.CustomerID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		h.mutateCart(c, "SelectCustomer", func(cart *models.Cart) gin.H {
			cart.Customer = &customer
			return nil
		})
	}
}

func (h *Handler) ClearCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		h.mutateCart(c, "ClearCustomer", func(cart *models.Cart) gin.H {
			cart.Customer = nil
			return nil
		})
	}
}

// ResetCart is called when the credit-bill screen closes.
func (h *Handler) ResetCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middlewares.CurrentSession(c)
		if err := h.State.ResetCart(c.Request.Context(), sess.ID); err != nil {
			h.internal(c, "ResetCart", msgCartFailed, err, nil)
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart": cartView(&models.Cart{})})
	}
}

// PrintReceipt renders the cart as a PDF receipt and records it in the receipt
// journal when one is configured.
func (h *Handler) PrintReceipt() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middlewares.CurrentSession(c)
		ctx := c.Request.Context()

		cart, err := h.State.Cart(ctx, sess.ID)
		if err != nil {
			h.internal(c, "PrintReceipt", msgPrintFailed, err, nil)
			return
		}
		receipt, err := models.NewReceipt(sess.Username, cart)
		if errors.Is(err, models.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		} else if err != nil {
			h.internal(c, "PrintReceipt", msgPrintFailed, err, nil)
			return
		}

		var buf bytes.Buffer
		if err := reports.WriteReceiptPDF(&buf, receipt); err != nil {
			h.internal(c, "PrintReceipt", msgPrintFailed, err, nil)
			return
		}
		if config.GetDB() != nil {
			if err := models.CreateReceipt(ctx, receipt); err != nil {
				h.internal(c, "PrintReceipt", msgPrintFailed, err, nil)
				return
			}
		}

		c.Header("X-Receipt-No", receipt.ReceiptNo)
		c.Header("Content-Disposition", "inline; filename=receipt-"+receipt.ReceiptNo+".pdf")
		c.Data(http.StatusOK, reports.PDFContentType, buf.Bytes())
	}
}

// Receipts lists the signed-in cashier's printed receipts, newest first (?limit=, max 100).
func (h *Handler) Receipts() gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.GetDB() == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"receipts": []models.PrintedReceipt{}, "error": "Receipt journal is not configured"})
			return
		}
		limit, _ := strconv.Atoi(c.Query("limit"))
		receipts, err := models.ListReceipts(c.Request.Context(), limit)
		if err != nil {
			h.internal(c, "Receipts", "Failed to load receipts.", err, gin.H{"receipts": []models.PrintedReceipt{}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"receipts": receipts})
	}
}
