package models

// Screen is one dashboard navigation target.
type Screen struct {
	Title         string `json:"title"`
	Route         string `json:"route"`
	Icon          string `json:"icon"`
	PermissionKey string `json:"permissionKey"`
}

var AllScreens = []Screen{
	{Title: "All Items", Route: "AllItems", Icon: "list", PermissionKey: "viewAllItems"},
	{Title: "Profit", Route: "Profit", Icon: "trending-up", PermissionKey: "profit"},
	{Title: "Customer Outstanding", Route: "CustomerOutstanding", Icon: "people", PermissionKey: "viewIndividualCustomerOutStanding"},
	{Title: "Stock", Route: "Stock", Icon: "cube", PermissionKey: "viewStock"},
	{Title: "Credit Bill", Route: "CreditBill", Icon: "receipt", PermissionKey: "viewCreditBill"},
	{Title: "Order Form", Route: "OrderForm", Icon: "document-text", PermissionKey: "viewOrderForm"},
}

// AllowedScreens keeps the screens whose permission is exactly "Y", in catalogue order.
func AllowedScreens(permissions map[string]string) []Screen {
	allowed := make([]Screen, 0, len(AllScreens))
	for _, s := range AllScreens {
		if permissions[s.PermissionKey] == "Y" {
			allowed = append(allowed, s)
		}
	}
	return allowed
}
