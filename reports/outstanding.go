package reports

import (
	"github.com/mmdatafocus/positnow_mobile/models"
	"github.com/mmdatafocus/positnow_mobile/utils"
	"github.com/xuri/excelize/v2"
)

const (
	XlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	OutstandingSheet = "Outstanding"
	BillsSheet       = "Bills"
)

var (
	outstandingHeader = []interface{}{"Customer Name", "Address", "Total Outstanding", "No of Invoices"}
	billsHeader       = []interface{}{"Customer Name", "Bill No", "Billing Date", "Bill Amount", "Discount", "Return", "Credit Note", "Paid Amount", "Balance", "Age"}
)

// OutstandingWorkbook has one sheet of customer totals and one of their bills, in
// row order. Amounts are written as the same 2dp text the screen shows.
func OutstandingWorkbook(rows []models.MergedCustomer) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", OutstandingSheet); err != nil {
		f.Close()
		return nil, err
	}
	if _, err := f.NewSheet(BillsSheet); err != nil {
		f.Close()
		return nil, err
	}

	if err := setRow(f, OutstandingSheet, 1, outstandingHeader); err != nil {
		f.Close()
		return nil, err
	}
	if err := setRow(f, BillsSheet, 1, billsHeader); err != nil {
		f.Close()
		return nil, err
	}

	billRow := 2
	for i, m := range rows {
		err := setRow(f, OutstandingSheet, i+2, []interface{}{
			m.CustomerName, m.Address, utils.FormatMoney(m.Total), m.NoOfInvoices,
		})
		if err != nil {
			f.Close()
			return nil, err
		}
		for _, b := range m.CreditBills {
			err := setRow(f, BillsSheet, billRow, []interface{}{
				m.CustomerName,
				b.BillNo.String(),
				b.BillingDate,
				utils.FormatMoney(b.NetAmount),
				utils.FormatMoney(b.Discount),
				utils.FormatMoney(b.ReturnAmount),
				utils.FormatMoney(b.CreditNote),
				utils.FormatMoney(b.PaidAmount),
				utils.FormatMoney(b.Balance()),
				b.Age.String(),
			})
			if err != nil {
				f.Close()
				return nil, err
			}
			billRow++
		}
	}
	return f, nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
