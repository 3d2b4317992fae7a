package reports

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/mmdatafocus/positnow_mobile/models"
	"github.com/mmdatafocus/positnow_mobile/utils"
)

const PDFContentType = "application/pdf"

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// WriteReceiptPDF renders one printed credit bill.
func WriteReceiptPDF(w io.Writer, receipt *models.PrintedReceipt) error {
	pdf := receiptPDF(receipt)
	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

// receiptPDF lays out the receipt. Names are UTF-8 and the core fonts are cp1252,
// so every free-text field goes through the translator.
func receiptPDF(receipt *models.PrintedReceipt) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Invoice "+receipt.ReceiptNo, true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Invoice")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, "Receipt No: "+receipt.ReceiptNo)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Date: "+receipt.CreatedAt.Format("2006-01-02 15:04"))
	pdf.Ln(7)
	pdf.Cell(0, 7, tr("Cashier: "+receipt.Username))
	pdf.Ln(7)
	pdf.Cell(0, 7, tr("Customer: "+orNA(receipt.CustomerName)))
	pdf.Ln(7)
	pdf.Cell(0, 7, tr("Address: "+orNA(receipt.CustomerAddress)))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(100, 8, "Item Name", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, "Qty", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, "Price", "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	for _, line := range receipt.Lines {
		pdf.CellFormat(100, 8, tr(line.ItemName), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprint(line.Qty), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, utils.FormatMoney(line.TotalPrice), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	pdf.Cell(0, 7, fmt.Sprintf("Items: %d   Pieces: %d", receipt.ItemCount, receipt.PieceCount))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Gross Total: $"+utils.FormatMoney(receipt.GrossTotal))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Discount: "+receipt.DiscountLabel)
	pdf.Ln(7)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Net Total: $"+utils.FormatMoney(receipt.NetTotal))
	return pdf
}
