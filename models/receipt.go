package models

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aakashreddy12/CRMA/utils"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// ReceiptData carries everything the printed payment receipt shows.
type ReceiptData struct {
	ReceiptNo     string          `json:"receipt_no"`
	Date          time.Time       `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	ReceivedFrom  string          `json:"received_from"`
	PaymentMode   PaymentMode     `json:"payment_mode"`
	PlaceOfSupply Region          `json:"place_of_supply"`
	Address       string          `json:"address"`
}

// BuildReceiptData resolves one ledger entry, stored or synthetic, into the
// fields the receipt prints. The advance entry always reports Cash.
func BuildReceiptData(ctx context.Context, projectId int, paymentId string) (*ReceiptData, error) {
	project, err := utils.FetchModel[Project](ctx, projectId)
	if err != nil {
		return nil, err
	}

	data := ReceiptData{
		ReceivedFrom:  project.CustomerName,
		PlaceOfSupply: project.State,
		Address:       project.Address,
	}

	if paymentId == AdvanceEntryID {
		data.ReceiptNo = fmt.Sprintf("ADV-%d", project.ID)
		data.Date = project.AdvanceDate()
		data.Amount = project.AdvancePayment
		data.PaymentMode = PaymentModeCash
		return &data, nil
	}

	entries, err := ListPayments(ctx, projectId)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if entry.ID == paymentId {
			data.ReceiptNo = fmt.Sprintf("PAY-%d-%s", project.ID, entry.ID)
			data.Date = entry.PaymentDate
			data.Amount = entry.Amount
			data.PaymentMode = entry.PaymentMode
			return &data, nil
		}
	}
	return nil, utils.ErrorRecordNotFound
}

// RenderReceiptPDF lays out a one-page A4 receipt and returns the document
// bytes ready to stream as application/pdf.
func RenderReceiptPDF(data *ReceiptData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "Payment Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 8, "Receipt No: "+data.ReceiptNo, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, "Date: "+data.Date.Format("02 Jan 2006"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(55, 9, label, "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 9, value, "1", 1, "L", false, 0, "")
	}

	row("Received From", data.ReceivedFrom)
	row("Amount", "Rs. "+data.Amount.StringFixed(2))
	row("Payment Mode", string(data.PaymentMode))
	row("Place of Supply", string(data.PlaceOfSupply))
	row("Customer Address", data.Address)

	pdf.Ln(16)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 8, "This is a computer generated receipt.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
