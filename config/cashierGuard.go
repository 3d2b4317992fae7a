package config

import (
	"github.com/mmdatafocus/positnow_mobile/appctx"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const cashierColumn = "username"

// CashierGuardPlugin adds "username = <signed-in cashier>" to every read, update and
// delete on a model with a username column, so one cashier never sees another's
// receipts. Creates are not touched; NewReceipt stamps the username itself.
//
// Raw SQL is not scoped. The purge job bypasses via appctx.ContextKeySkipCashierScope.
type CashierGuardPlugin struct{}

func NewCashierGuardPlugin() *CashierGuardPlugin { return &CashierGuardPlugin{} }

func (p *CashierGuardPlugin) Name() string { return "cashier_guard" }

func (p *CashierGuardPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	if err := cb.Query().Before("gorm:query").Register("cashier_guard:query", scopeToCashier); err != nil {
		return err
	}
	if err := cb.Row().Before("gorm:row").Register("cashier_guard:row", scopeToCashier); err != nil {
		return err
	}
	if err := cb.Update().Before("gorm:update").Register("cashier_guard:update", scopeToCashier); err != nil {
		return err
	}
	return cb.Delete().Before("gorm:delete").Register("cashier_guard:delete", scopeToCashier)
}

func scopeToCashier(db *gorm.DB) {
	stmt := db.Statement
	if stmt == nil || stmt.Context == nil || stmt.Schema == nil {
		return
	}
	if skip, _ := appctx.GetBool(stmt.Context, appctx.ContextKeySkipCashierScope); skip {
		return
	}
	username, _ := appctx.GetString(stmt.Context, appctx.ContextKeyUsername)
	if username == "" {
		return
	}
	// receipt lines carry no username; they are reached through their receipt
	if stmt.Schema.LookUpField(cashierColumn) == nil {
		return
	}
	stmt.AddClause(clause.Where{Exprs: []clause.Expression{
		clause.Eq{Column: clause.Column{Table: stmt.Table, Name: cashierColumn}, Value: username},
	}})
}
