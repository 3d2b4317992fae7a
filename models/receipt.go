package models

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mmdatafocus/positnow_mobile/config"
	"github.com/mmdatafocus/positnow_mobile/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PrintedReceipt is the journal entry written each time a credit bill is printed.
// Queries are scoped to the signed-in cashier by the cashier guard plugin.
type PrintedReceipt struct {
	ID              int                  `gorm:"primary_key" json:"id"`
	ReceiptNo       string               `gorm:"uniqueIndex;size:36;not null" json:"receiptNo"`
	Username        string               `gorm:"index;size:100;not null" json:"username"`
	CustomerID      string               `gorm:"size:64" json:"customerId"`
	CustomerName    string               `gorm:"size:255" json:"customerName"`
	CustomerAddress string               `gorm:"size:255" json:"customerAddress"`
	ItemCount       int                  `gorm:"not null" json:"itemCount"`
	PieceCount      int64                `gorm:"not null" json:"pieceCount"`
	GrossTotal      decimal.Decimal      `gorm:"type:decimal(20,4);not null" json:"grossTotal"`
	DiscountLabel   string               `gorm:"size:50" json:"discountLabel"`
	NetTotal        decimal.Decimal      `gorm:"type:decimal(20,4);not null" json:"netTotal"`
	Lines           []PrintedReceiptLine `gorm:"foreignKey:PrintedReceiptID" json:"lines"`
	CreatedAt       time.Time            `gorm:"autoCreateTime" json:"createdAt"`
}

type PrintedReceiptLine struct {
	ID               int             `gorm:"primary_key" json:"id"`
	PrintedReceiptID int             `gorm:"index;not null" json:"printedReceiptId"`
	ItemCode         string          `gorm:"size:100;not null" json:"itemCode"`
	ItemName         string          `gorm:"size:255" json:"itemName"`
	Qty              int64           `gorm:"not null" json:"qty"`
	UnitPrice        decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"unitPrice"`
	TotalPrice       decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"totalPrice"`
}

var ErrEmptyCart = errors.New("cart is empty")

// NewReceipt snapshots the cart. It does not touch the database.
func NewReceipt(username string, cart *Cart) (*PrintedReceipt, error) {
	if cart == nil || cart.IsEmpty() {
		return nil, ErrEmptyCart
	}
	receipt := PrintedReceipt{
		ReceiptNo:     strings.ToUpper(uuid.NewString()),
		Username:      username,
		ItemCount:     cart.ItemCount(),
		PieceCount:    cart.PieceCount(),
		GrossTotal:    cart.GrossTotal(),
		DiscountLabel: cart.DiscountLabel(),
		NetTotal:      cart.NetTotal(),
		CreatedAt:     time.Now().UTC(),
	}
	if cart.Customer != nil {
		customer := KnownCustomer(*cart.Customer)
		receipt.CustomerID = customer.ID.String()
		receipt.CustomerName = customer.Name
		receipt.CustomerAddress = customer.Address
	}
	for _, line := range cart.Lines {
		receipt.Lines = append(receipt.Lines, PrintedReceiptLine{
			ItemCode:   line.Code,
			ItemName:   line.Name,
			Qty:        line.Qty,
			UnitPrice:  line.SellingPrice,
			TotalPrice: line.TotalPrice,
		})
	}
	return &receipt, nil
}

func CreateReceipt(ctx context.Context, receipt *PrintedReceipt) error {
	db := config.GetDB()
	if db == nil {
		return errors.New("receipt journal is not configured")
	}
	return db.WithContext(ctx).Create(receipt).Error
}

// ListReceipts returns the signed-in cashier's most recent receipts, newest first.
func ListReceipts(ctx context.Context, limit int) ([]PrintedReceipt, error) {
	if username, _ := utils.GetUsernameFromContext(ctx); username == "" {
		return nil, errors.New("username not found in context")
	}
	db := config.GetDB()
	if db == nil {
		return nil, errors.New("receipt journal is not configured")
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var receipts []PrintedReceipt
	err := db.WithContext(ctx).
		Preload("Lines").
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&receipts).Error
	if err != nil {
		return nil, err
	}
	return receipts, nil
}

// PurgeReceiptsBefore deletes every cashier's receipts created before cutoff, lines first.
func PurgeReceiptsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	db := config.GetDB()
	if db == nil {
		return 0, errors.New("receipt journal is not configured")
	}
	ctx = utils.SetSkipCashierScopeInContext(ctx, true)

	var purged int64
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		old := tx.Model(&PrintedReceipt{}).Select("id").Where("created_at < ?", cutoff)
		if err := tx.Where("printed_receipt_id IN (?)", old).Delete(&PrintedReceiptLine{}).Error; err != nil {
			return err
		}
		result := tx.Where("created_at < ?", cutoff).Delete(&PrintedReceipt{})
		if result.Error != nil {
			return result.Error
		}
		purged = result.RowsAffected
		return nil
	})
	return purged, err
}
