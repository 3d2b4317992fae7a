package posapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/mmdatafocus/positnow_mobile/config"
	"github.com/mmdatafocus/positnow_mobile/models"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges credentials for an upstream bearer token.
func (c *Client) Login(ctx context.Context, username string, password string) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	err := c.doJSON(ctx, call{
		op:     "login",
		method: http.MethodPost,
		base:   c.accountURL,
		path:   "/user/login",
		body:   loginRequest{Username: username, Password: password},
	}, &resp)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(resp.Token) == "" {
		return "", &ParseError{Op: "login", Err: errors.New("token missing")}
	}
	return resp.Token, nil
}

// GetPermissions returns the permission map. A null body is an empty map; non-string
// values are kept in their JSON text form so they never equal "Y".
func (c *Client) GetPermissions(ctx context.Context, sess *models.Session) (map[string]string, error) {
	const op = "getUserPermissionsByToken"
	if err := requireSession(op, sess); err != nil {
		return nil, err
	}
	var raw map[string]json.RawMessage
	err := c.doJSON(ctx, call{
		op: op, method: http.MethodGet, base: c.accountURL,
		path: "/admin/getUserPermissionsByToken", sess: sess,
	}, &raw)
	if err != nil {
		return nil, err
	}
	permissions := make(map[string]string, len(raw))
	for key, value := range raw {
		var s string
		if json.Unmarshal(value, &s) == nil {
			permissions[key] = s
			continue
		}
		permissions[key] = string(value)
	}
	return permissions, nil
}

func (c *Client) GetCompanyByUser(ctx context.Context, sess *models.Session, username string) (string, error) {
	const op = "getCompanyByUser"
	if err := requireSession(op, sess); err != nil {
		return "", err
	}
	var resp struct {
		CompanyName string `json:"companyName"`
	}
	err := c.doJSON(ctx, call{
		op: op, method: http.MethodGet, base: c.accountURL,
		path: "/company/getCompanyByUser", params: url.Values{"userName": {username}}, sess: sess,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.CompanyName, nil
}

// GetAllItems returns the catalog. The body is a bare array.
func (c *Client) GetAllItems(ctx context.Context, sess *models.Session) ([]models.Item, error) {
	const op = "getAllItems"
	if err := requireSession(op, sess); err != nil {
		return nil, err
	}
	var items []models.Item
	err := c.doJSON(ctx, call{
		op: op, method: http.MethodGet, base: c.catalogURL,
		path: "/item/getAllItems", sess: sess,
	}, &items)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Item{}
	}
	return items, nil
}

// GetNestedStockItems unwraps the stockItemList envelope. A missing list is a ParseError.
func (c *Client) GetNestedStockItems(ctx context.Context, sess *models.Session) ([]models.StockItem, error) {
	const op = "getAllNestedStockItems"
	if err := requireSession(op, sess); err != nil {
		return nil, err
	}
	var envelope struct {
		StockItemList *[]models.StockItem `json:"stockItemList"`
	}
	err := c.doJSON(ctx, call{
		op: op, method: http.MethodGet, base: c.catalogURL,
		path: "/stock/getAllNestedStockItems", sess: sess,
	}, &envelope)
	if err != nil {
		return nil, err
	}
	if envelope.StockItemList == nil {
		return nil, &ParseError{Op: op, Err: errors.New("stockItemList missing")}
	}
	return *envelope.StockItemList, nil
}

// GetProfit posts the date range (YYYY-MM-DD) and returns the sales/cost summary.
func (c *Client) GetProfit(ctx context.Context, sess *models.Session, fromDate string, toDate string) (*models.ProfitSummary, error) {
	const op = "getAllProfit"
	if err := requireSession(op, sess); err != nil {
		return nil, err
	}
	var summary models.ProfitSummary
	err := c.doJSON(ctx, call{
		op: op, method: http.MethodPost, base: c.catalogURL,
		path: "/profit/getAllProfit", sess: sess,
		body: models.ProfitRequest{FromDate: fromDate, ToDate: toDate, SalesRefId: c.salesRefId},
	}, &summary)
	if err != nil {
		return nil, err
	}
	if !summary.Complete() {
		return nil, &ParseError{Op: op, Err: errors.New("salesValue or unitCost missing")}
	}
	return &summary, nil
}

// GetCustomerOutstanding returns balances per customer. The body is a bare array.
func (c *Client) GetCustomerOutstanding(ctx context.Context, sess *models.Session) ([]models.OutstandingRecord, error) {
	const op = "getAllCustomerOutStanding"
	if err := requireSession(op, sess); err != nil {
		return nil, err
	}
	var records []models.OutstandingRecord
	err := c.doJSON(ctx, call{
		op: op, method: http.MethodGet, base: c.catalogURL,
		path:   "/bill/getAllCustomerOutStanding",
		params: url.Values{"salesRefId": {fmt.Sprint(c.salesRefId)}},
		sess:   sess,
	}, &records)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []models.OutstandingRecord{}
	}
	return records, nil
}

// GetAllCustomers returns the directory. A body that is not an array is treated as an
// empty directory. Records that fail to decode are logged and skipped.
func (c *Client) GetAllCustomers(ctx context.Context, sess *models.Session) ([]models.Customer, error) {
	const op = "getAllCustomers"
	if err := requireSession(op, sess); err != nil {
		return nil, err
	}
	body, err := c.do(ctx, call{
		op: op, method: http.MethodGet, base: c.accountURL,
		path: "/customer/getAllCustomers", sess: sess,
	})
	if err != nil {
		return nil, err
	}
	var records []json.RawMessage
	if json.Unmarshal(body, &records) != nil {
		return []models.Customer{}, nil
	}
	customers := make([]models.Customer, 0, len(records))
	for i, raw := range records {
		var customer models.Customer
		if err := json.Unmarshal(raw, &customer); err != nil {
			config.LogError(config.GetLogger(), "posapi", "GetAllCustomers", "skipping malformed customer record", i, err)
			continue
		}
		customers = append(customers, customer)
	}
	return customers, nil
}
