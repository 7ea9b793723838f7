package models

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aakashreddy12/CRMA/config"
	"github.com/aakashreddy12/CRMA/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AdvanceEntryID is the identifier the synthetic advance ledger entry
// carries. It never matches a stored row id.
const AdvanceEntryID = "advance"

type PaymentHistory struct {
	ID          int             `gorm:"primary_key" json:"id"`
	ProjectId   int             `gorm:"not null;index" json:"project_id"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
	PaymentMode PaymentMode     `gorm:"type:enum('Cash','UPI','Cheque','Subsidy');default:'Cash'" json:"payment_mode"`
	PaymentDate time.Time       `gorm:"not null" json:"payment_date"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (PaymentHistory) TableName() string {
	return "payment_histories"
}

type NewPayment struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	PaymentMode PaymentMode     `json:"payment_mode"`
	PaymentDate *time.Time      `json:"payment_date"`
}

// LedgerEntry is the client-facing view of one payment. The synthetic advance
// entry has ID "advance" and IsAdvance set; stored rows carry their numeric
// row id as a string.
type LedgerEntry struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentMode PaymentMode     `json:"payment_mode"`
	PaymentDate time.Time       `json:"payment_date"`
	IsAdvance   bool            `json:"is_advance"`
	Elapsed     string          `json:"elapsed"`
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// BuildLedger assembles the presented ledger for a project: the synthetic
// advance entry first (when the project carries an advance and no stored row
// already looks like that advance), then the stored rows in the order given.
// A stored row "looks like" the advance when its amount equals the advance
// amount and its payment date falls on the advance date's calendar day.
func BuildLedger(project *Project, rows []*PaymentHistory, now time.Time) []*LedgerEntry {
	entries := make([]*LedgerEntry, 0, len(rows)+1)

	if project.AdvancePayment.IsPositive() {
		advDate := project.AdvanceDate()
		matched := false
		for _, row := range rows {
			if row.Amount.Equal(project.AdvancePayment) && sameDay(row.PaymentDate, advDate) {
				matched = true
				break
			}
		}
		if !matched {
			entries = append(entries, &LedgerEntry{
				ID:          AdvanceEntryID,
				Amount:      project.AdvancePayment,
				PaymentMode: PaymentModeCash,
				PaymentDate: advDate,
				IsAdvance:   true,
				Elapsed:     utils.TimeElapsed(advDate, now),
			})
		}
	}

	for _, row := range rows {
		date := row.PaymentDate
		entries = append(entries, &LedgerEntry{
			ID:          strconv.Itoa(row.ID),
			Amount:      row.Amount,
			PaymentMode: row.PaymentMode,
			PaymentDate: date,
			Elapsed:     utils.TimeElapsed(date, now),
		})
	}
	return entries
}

// ListPayments returns the full presented ledger for the project: the
// synthetic advance first, then stored rows oldest first.
func ListPayments(ctx context.Context, projectId int) ([]*LedgerEntry, error) {
	project, err := utils.FetchModel[Project](ctx, projectId)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	var rows []*PaymentHistory
	err = db.WithContext(ctx).
		Where("project_id = ?", projectId).
		Order("created_at ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return BuildLedger(project, rows, time.Now()), nil
}

func (input *NewPayment) validate() error {
	if !input.Amount.IsPositive() {
		return utils.NewValidationError("amount must be greater than zero")
	}
	if input.PaymentDate == nil || input.PaymentDate.IsZero() {
		return utils.NewValidationError("payment date is required")
	}
	if input.PaymentMode == "" {
		return utils.NewValidationError("payment mode is required")
	}
	var mode PaymentMode
	if err := mode.Parse(string(input.PaymentMode)); err != nil {
		return err
	}
	return nil
}

// AddPayment records a ledger payment and bumps the project's cached
// paid_amount in the same transaction, so the two can never drift apart.
// The proposal ceiling is advisory only and is not enforced here.
func AddPayment(ctx context.Context, projectId int, input *NewPayment) (*PaymentHistory, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	var payment *PaymentHistory
	err := utils.WithMutationLock(ctx, projectId, "payment-add", func() error {
		project, err := utils.FetchModel[Project](ctx, projectId)
		if err != nil {
			return err
		}

		payment = &PaymentHistory{
			ProjectId:   project.ID,
			Amount:      input.Amount,
			PaymentMode: input.PaymentMode,
			PaymentDate: *input.PaymentDate,
		}

		db := config.GetDB()
		txErr := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(payment).Error; err != nil {
				return err
			}
			return tx.Model(&Project{}).
				Where("id = ?", project.ID).
				Update("paid_amount", gorm.Expr("paid_amount + ?", input.Amount)).Error
		})
		if txErr != nil {
			config.LogError(config.GetLogger(), "payment.go", "AddPayment", "transaction", payment, txErr)
		}
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// DeletePayment removes a stored ledger row and subtracts its amount from
// the project's cached paid_amount in the same transaction. The synthetic
// advance entry is not a stored row and cannot be deleted.
func DeletePayment(ctx context.Context, paymentId string) error {
	if paymentId == AdvanceEntryID {
		return utils.NewValidationError("the advance entry cannot be removed from the ledger")
	}
	id, err := strconv.Atoi(paymentId)
	if err != nil {
		return utils.NewValidationError(fmt.Sprintf("invalid payment id %q", paymentId))
	}

	payment, err := utils.FetchModel[PaymentHistory](ctx, id)
	if err != nil {
		return err
	}

	return utils.WithMutationLock(ctx, payment.ProjectId, "payment-delete", func() error {
		db := config.GetDB()
		txErr := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			result := tx.Delete(&PaymentHistory{}, payment.ID)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return utils.ErrorRecordNotFound
			}
			return tx.Model(&Project{}).
				Where("id = ?", payment.ProjectId).
				Update("paid_amount", gorm.Expr("paid_amount - ?", payment.Amount)).Error
		})
		if txErr != nil && txErr != utils.ErrorRecordNotFound {
			config.LogError(config.GetLogger(), "payment.go", "DeletePayment", "transaction", payment.ID, txErr)
		}
		return txErr
	})
}
