package models

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func ledgerProject(proposal, advance int64, start time.Time) *Project {
	return &Project{
		ID:             1,
		Name:           "Rooftop 5kW",
		CustomerName:   "Ramesh",
		ProposalAmount: decimal.NewFromInt(proposal),
		AdvancePayment: decimal.NewFromInt(advance),
		StartDate:      &start,
		CreatedAt:      start,
	}
}

func TestBuildLedger_SyntheticAdvanceFirst(t *testing.T) {
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	project := ledgerProject(500000, 100000, start)

	entries := BuildLedger(project, nil, now)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	adv := entries[0]
	if adv.ID != AdvanceEntryID || !adv.IsAdvance {
		t.Fatalf("expected synthetic advance entry, got %+v", adv)
	}
	if !adv.Amount.Equal(decimal.NewFromInt(100000)) {
		t.Fatalf("advance amount expected 100000, got %s", adv.Amount)
	}
	if adv.PaymentMode != PaymentModeCash {
		t.Fatalf("advance mode expected Cash, got %s", adv.PaymentMode)
	}
	if !adv.PaymentDate.Equal(start) {
		t.Fatalf("advance date expected %v, got %v", start, adv.PaymentDate)
	}

	// Adding a real payment keeps the advance first.
	rows := []*PaymentHistory{{
		ID:          7,
		ProjectId:   1,
		Amount:      decimal.NewFromInt(150000),
		PaymentMode: PaymentModeUPI,
		PaymentDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}}
	entries = BuildLedger(project, rows, now)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != AdvanceEntryID {
		t.Fatalf("expected advance first, got %q", entries[0].ID)
	}
	if entries[1].ID != "7" || !entries[1].Amount.Equal(decimal.NewFromInt(150000)) {
		t.Fatalf("unexpected second entry %+v", entries[1])
	}
}

func TestBuildLedger_NoAdvanceNoSynthetic(t *testing.T) {
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	project := ledgerProject(500000, 0, start)

	entries := BuildLedger(project, nil, time.Now())
	if len(entries) != 0 {
		t.Fatalf("expected empty ledger, got %d entries", len(entries))
	}
}

func TestBuildLedger_MatchingRowSuppressesSynthetic(t *testing.T) {
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	project := ledgerProject(500000, 100000, start)

	// Same amount and same calendar day as the advance: treated as the
	// advance already being recorded, so no synthetic entry.
	rows := []*PaymentHistory{{
		ID:          3,
		ProjectId:   1,
		Amount:      decimal.NewFromInt(100000),
		PaymentMode: PaymentModeCheque,
		PaymentDate: time.Date(2024, 1, 10, 15, 30, 0, 0, time.UTC),
	}}
	entries := BuildLedger(project, rows, time.Now())
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].IsAdvance {
		t.Fatal("synthetic advance should be suppressed by a matching row")
	}
}

func TestBuildLedger_SameAmountDifferentDayKeepsSynthetic(t *testing.T) {
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	project := ledgerProject(500000, 100000, start)

	rows := []*PaymentHistory{{
		ID:          4,
		ProjectId:   1,
		Amount:      decimal.NewFromInt(100000),
		PaymentMode: PaymentModeCash,
		PaymentDate: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
	}}
	entries := BuildLedger(project, rows, time.Now())
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if !entries[0].IsAdvance {
		t.Fatal("expected synthetic advance to survive a non-matching row")
	}
}

func TestBuildLedger_AdvanceDateFallsBackToCreatedAt(t *testing.T) {
	created := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	project := &Project{
		ID:             2,
		AdvancePayment: decimal.NewFromInt(50000),
		CreatedAt:      created,
	}
	entries := BuildLedger(project, nil, time.Now())
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if !entries[0].PaymentDate.Equal(created) {
		t.Fatalf("advance date expected created_at %v, got %v", created, entries[0].PaymentDate)
	}
}

func TestNewPaymentValidate(t *testing.T) {
	date := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		name    string
		input   NewPayment
		wantErr bool
	}{
		{"valid", NewPayment{Amount: decimal.NewFromInt(100), PaymentMode: PaymentModeUPI, PaymentDate: &date}, false},
		{"zero amount", NewPayment{Amount: decimal.Zero, PaymentMode: PaymentModeCash, PaymentDate: &date}, true},
		{"negative amount", NewPayment{Amount: decimal.NewFromInt(-5), PaymentMode: PaymentModeCash, PaymentDate: &date}, true},
		{"missing date", NewPayment{Amount: decimal.NewFromInt(100), PaymentMode: PaymentModeCash}, true},
		{"missing mode", NewPayment{Amount: decimal.NewFromInt(100), PaymentDate: &date}, true},
		{"bad mode", NewPayment{Amount: decimal.NewFromInt(100), PaymentMode: PaymentMode("Barter"), PaymentDate: &date}, true},
	}
	for _, tc := range cases {
		err := tc.input.validate()
		if tc.wantErr && err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !tc.wantErr && err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
	}
}

func TestPaymentCeiling(t *testing.T) {
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	project := ledgerProject(500000, 100000, start)
	project.PaidAmount = decimal.NewFromInt(150000)

	if got := project.PaymentCeiling(); !got.Equal(decimal.NewFromInt(250000)) {
		t.Fatalf("ceiling expected 250000, got %s", got)
	}
}

func TestDeletePayment_RefusesAdvanceSentinel(t *testing.T) {
	err := DeletePayment(context.Background(), AdvanceEntryID)
	if err == nil {
		t.Fatal("expected deleting the advance entry to be refused")
	}
}
