package models

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestRenderReceiptPDF(t *testing.T) {
	data := &ReceiptData{
		ReceiptNo:     "PAY-1-7",
		Date:          time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Amount:        decimal.NewFromInt(150000),
		ReceivedFrom:  "Ramesh",
		PaymentMode:   PaymentModeUPI,
		PlaceOfSupply: RegionTelangana,
		Address:       "12-3-456, Hyderabad",
	}
	out, err := RenderReceiptPDF(data)
	if err != nil {
		t.Fatalf("RenderReceiptPDF error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatal("expected PDF output")
	}
}

func TestKwhContribution(t *testing.T) {
	a := CustomerModuleAssignment{
		Module:   Module{Name: "540W Mono", Watt: decimal.NewFromInt(540)},
		Quantity: 10,
	}
	if got := a.KwhContribution(); !got.Equal(decimal.NewFromFloat(5.4)) {
		t.Fatalf("expected 5.4, got %s", got)
	}
}
