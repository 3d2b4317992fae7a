package models

import "github.com/mmdatafocus/positnow_mobile/utils"

const (
	UnknownCustomerName = "Unknown"
	NoAddress           = "No Address"
)

// Customer is a directory entry from the account service.
type Customer struct {
	ID      FlexString `json:"id"`
	Name    string     `json:"name"`
	Address string     `json:"address"`
}

// UnknownCustomer is what an outstanding balance shows when the directory has no match.
func UnknownCustomer() Customer {
	return Customer{Name: UnknownCustomerName, Address: NoAddress}
}

// KnownCustomer fills blank directory fields with the same fallbacks as UnknownCustomer.
func KnownCustomer(c Customer) Customer {
	if c.Name == "" {
		c.Name = UnknownCustomerName
	}
	if c.Address == "" {
		c.Address = NoAddress
	}
	return c
}

func ResolveCustomer(match utils.Optional[Customer]) Customer {
	return KnownCustomer(match.OrElse(UnknownCustomer()))
}

func SearchCustomers(customers []Customer, query string) []Customer {
	return utils.FilterByQuery(customers, query,
		func(c Customer) string { return c.Name },
		func(c Customer) string { return c.Address },
	)
}

func FindCustomerByID(customers []Customer, id string) (Customer, bool) {
	for _, c := range customers {
		if c.ID.String() == id {
			return c, true
		}
	}
	return Customer{}, false
}
