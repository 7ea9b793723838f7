package models

import (
	"context"
	"time"

	"github.com/aakashreddy12/CRMA/config"
	"github.com/aakashreddy12/CRMA/utils"
	"github.com/shopspring/decimal"
)

type Project struct {
	ID              int                `gorm:"primary_key" json:"id"`
	Name            string             `gorm:"size:100;not null" json:"name" binding:"required"`
	CustomerName    string             `gorm:"size:100;not null;index" json:"customer_name" binding:"required"`
	Email           string             `gorm:"size:100" json:"email"`
	Phone           string             `gorm:"size:20" json:"phone"`
	Address         string             `gorm:"type:text" json:"address"`
	State           Region             `gorm:"type:enum('AP','Telangana');default:'Telangana'" json:"state"`
	DealingPersonal string             `gorm:"size:100" json:"dealing_personal"`
	ProposalAmount  decimal.Decimal    `gorm:"type:decimal(20,4);default:0" json:"proposal_amount"`
	AdvancePayment  decimal.Decimal    `gorm:"type:decimal(20,4);default:0" json:"advance_payment"`
	PaidAmount      decimal.Decimal    `gorm:"type:decimal(20,4);default:0" json:"paid_amount"`
	LoanAmount      decimal.Decimal    `gorm:"type:decimal(20,4);default:0" json:"loan_amount"`
	Status          string             `gorm:"size:50;index" json:"status"`
	CurrentStage    string             `gorm:"size:100" json:"current_stage"`
	ProjectType     ProjectType        `gorm:"type:enum('DCR','Non DCR');default:'DCR'" json:"project_type"`
	PaymentMode     ProjectPaymentMode `gorm:"type:enum('Loan','Cash');default:'Cash'" json:"payment_mode"`
	Kwh             decimal.Decimal    `gorm:"type:decimal(10,2);default:0" json:"kwh"`
	StartDate       *time.Time         `json:"start_date"`
	CreatedAt       time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time          `gorm:"autoUpdateTime" json:"updated_at"`

	// BalanceAmount is a read-only projection, never stored: paid_amount is
	// the cached ledger total and balance is derived from it on every read.
	BalanceAmount decimal.Decimal `gorm:"-" json:"balance_amount"`
}

type NewProject struct {
	Name            string             `json:"name" binding:"required"`
	CustomerName    string             `json:"customer_name" binding:"required"`
	Email           string             `json:"email"`
	Phone           string             `json:"phone"`
	Address         string             `json:"address"`
	State           Region             `json:"state"`
	DealingPersonal string             `json:"dealing_personal"`
	ProposalAmount  decimal.Decimal    `json:"proposal_amount"`
	AdvancePayment  decimal.Decimal    `json:"advance_payment"`
	LoanAmount      decimal.Decimal    `json:"loan_amount"`
	Status          string             `json:"status"`
	CurrentStage    string             `json:"current_stage"`
	ProjectType     ProjectType        `json:"project_type"`
	PaymentMode     ProjectPaymentMode `json:"payment_mode"`
	Kwh             decimal.Decimal    `json:"kwh"`
	StartDate       *time.Time         `json:"start_date"`
}

// CustomerDetailsInput is the customer-facing edit flow. It is independent of
// the project edit flow; the two never overwrite each other's fields.
type CustomerDetailsInput struct {
	CustomerName    string          `json:"customer_name" binding:"required"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	Address         string          `json:"address"`
	Kwh             decimal.Decimal `json:"kwh"`
	LoanAmount      decimal.Decimal `json:"loan_amount"`
	StartDate       *time.Time      `json:"start_date"`
	DealingPersonal string          `json:"dealing_personal"`
}

// ProjectDetailsInput is the project-facing edit flow. CurrentStage here may
// jump to any stage directly; this is the deliberate escape hatch for
// corrections, bypassing the single-step transition rule.
type ProjectDetailsInput struct {
	Name           string          `json:"name" binding:"required"`
	Status         string          `json:"status"`
	ProjectType    ProjectType     `json:"project_type"`
	State          Region          `json:"state"`
	ProposalAmount decimal.Decimal `json:"proposal_amount"`
	LoanAmount     decimal.Decimal `json:"loan_amount"`
	StartDate      *time.Time      `json:"start_date"`
	CurrentStage   string          `json:"current_stage"`
	Kwh            decimal.Decimal `json:"kwh"`
}

// computeBalance fills the derived balance projection:
// proposal - (advance + paid). Over-collected projects go negative.
func (p *Project) computeBalance() {
	p.BalanceAmount = p.ProposalAmount.Sub(p.AdvancePayment.Add(p.PaidAmount))
}

// PaymentCeiling is the advisory maximum for a new ledger payment:
// proposal - (advance + paid). It is reported to the UI, never enforced.
func (p *Project) PaymentCeiling() decimal.Decimal {
	return p.ProposalAmount.Sub(p.AdvancePayment.Add(p.PaidAmount))
}

// AdvanceDate is the date the synthetic advance ledger entry carries:
// start_date, falling back to created_at.
func (p *Project) AdvanceDate() time.Time {
	if start := utils.DereferencePtr(p.StartDate); !start.IsZero() {
		return start
	}
	return p.CreatedAt
}

func (input *NewProject) validate() error {
	if input.ProposalAmount.IsNegative() || input.AdvancePayment.IsNegative() ||
		input.LoanAmount.IsNegative() || input.Kwh.IsNegative() {
		return utils.NewValidationError("amounts must not be negative")
	}
	if input.Email != "" && !utils.IsValidEmail(input.Email) {
		return utils.NewValidationError("invalid email address")
	}
	if input.Phone != "" {
		if err := utils.ValidatePhoneNumber(input.Phone, utils.CountryCode); err != nil {
			return utils.NewValidationError("invalid phone number")
		}
	}
	if input.CurrentStage != "" && StageIndex(input.CurrentStage) < 0 {
		return utils.NewValidationError("unknown stage")
	}
	if input.State != "" {
		var region Region
		if err := region.Parse(string(input.State)); err != nil {
			return err
		}
	}
	if input.ProjectType != "" {
		var pt ProjectType
		if err := pt.Parse(string(input.ProjectType)); err != nil {
			return err
		}
	}
	return nil
}

func CreateProject(ctx context.Context, input *NewProject) (*Project, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	project := Project{
		Name:            input.Name,
		CustomerName:    input.CustomerName,
		Email:           input.Email,
		Phone:           input.Phone,
		Address:         input.Address,
		State:           input.State,
		DealingPersonal: input.DealingPersonal,
		ProposalAmount:  input.ProposalAmount,
		AdvancePayment:  input.AdvancePayment,
		PaidAmount:      decimal.Zero,
		LoanAmount:      input.LoanAmount,
		Status:          input.Status,
		CurrentStage:    input.CurrentStage,
		ProjectType:     input.ProjectType,
		PaymentMode:     input.PaymentMode,
		Kwh:             input.Kwh,
		StartDate:       input.StartDate,
	}
	if project.Status == "" {
		project.Status = "Active"
	}
	if project.State == "" {
		project.State = RegionTelangana
	}
	if project.ProjectType == "" {
		project.ProjectType = ProjectTypeDCR
	}
	if project.PaymentMode == "" {
		project.PaymentMode = ProjectPaymentModeCash
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&project).Error; err != nil {
		return nil, err
	}
	project.computeBalance()
	return &project, nil
}

func GetProject(ctx context.Context, id int) (*Project, error) {
	project, err := utils.FetchModel[Project](ctx, id)
	if err != nil {
		return nil, err
	}
	project.computeBalance()
	return project, nil
}

// ListProjects returns every project that has not been soft-deleted.
func ListProjects(ctx context.Context) ([]*Project, error) {
	db := config.GetDB()
	var projects []*Project
	err := db.WithContext(ctx).
		Where("status <> ?", ProjectStatusDeleted).
		Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		p.computeBalance()
	}
	return projects, nil
}

func UpdateCustomerDetails(ctx context.Context, id int, input *CustomerDetailsInput) (*Project, error) {
	if input.Email != "" && !utils.IsValidEmail(input.Email) {
		return nil, utils.NewValidationError("invalid email address")
	}
	if input.Phone != "" {
		if err := utils.ValidatePhoneNumber(input.Phone, utils.CountryCode); err != nil {
			return nil, utils.NewValidationError("invalid phone number")
		}
	}
	if input.Kwh.IsNegative() || input.LoanAmount.IsNegative() {
		return nil, utils.NewValidationError("amounts must not be negative")
	}

	project, err := utils.FetchModel[Project](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(project).Updates(map[string]interface{}{
		"customer_name":    input.CustomerName,
		"email":            input.Email,
		"phone":            input.Phone,
		"address":          input.Address,
		"kwh":              input.Kwh,
		"loan_amount":      input.LoanAmount,
		"start_date":       input.StartDate,
		"dealing_personal": input.DealingPersonal,
	}).Error
	if err != nil {
		return nil, err
	}

	return GetProject(ctx, id)
}

func UpdateProjectDetails(ctx context.Context, id int, input *ProjectDetailsInput) (*Project, error) {
	if input.ProposalAmount.IsNegative() || input.LoanAmount.IsNegative() || input.Kwh.IsNegative() {
		return nil, utils.NewValidationError("amounts must not be negative")
	}
	if input.CurrentStage != "" && StageIndex(input.CurrentStage) < 0 {
		return nil, utils.NewValidationError("unknown stage")
	}
	var region Region
	if err := region.Parse(string(input.State)); err != nil {
		return nil, err
	}
	var pt ProjectType
	if err := pt.Parse(string(input.ProjectType)); err != nil {
		return nil, err
	}

	project, err := utils.FetchModel[Project](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(project).Updates(map[string]interface{}{
		"name":            input.Name,
		"status":          input.Status,
		"project_type":    input.ProjectType,
		"state":           input.State,
		"proposal_amount": input.ProposalAmount,
		"loan_amount":     input.LoanAmount,
		"start_date":      input.StartDate,
		"current_stage":   input.CurrentStage,
		"kwh":             input.Kwh,
	}).Error
	if err != nil {
		return nil, err
	}

	return GetProject(ctx, id)
}

// MarkProjectDeleted soft-deletes: the row stays, aggregation skips it.
func MarkProjectDeleted(ctx context.Context, id int) error {
	project, err := utils.FetchModel[Project](ctx, id)
	if err != nil {
		return err
	}
	db := config.GetDB()
	return db.WithContext(ctx).Model(project).
		Update("status", ProjectStatusDeleted).Error
}

// AdvanceProjectStage moves the project one stage forward and persists the
// new value. A project at the terminal stage, or with an unrecognized stage,
// is left unchanged and reported as such.
func AdvanceProjectStage(ctx context.Context, id int) (*Project, bool, error) {
	return transitionStage(ctx, id, "stage-advance", NextStage)
}

// RetreatProjectStage moves the project one stage back. A project at the
// first stage or with an unrecognized stage is left unchanged.
func RetreatProjectStage(ctx context.Context, id int) (*Project, bool, error) {
	return transitionStage(ctx, id, "stage-retreat", PrevStage)
}

func transitionStage(ctx context.Context, id int, action string, step func(string) (string, bool)) (*Project, bool, error) {
	var project *Project
	var moved bool

	err := utils.WithMutationLock(ctx, id, action, func() error {
		var err error
		project, err = utils.FetchModel[Project](ctx, id)
		if err != nil {
			return err
		}

		newStage, ok := step(project.CurrentStage)
		if !ok {
			moved = false
			return nil
		}

		db := config.GetDB()
		if err := db.WithContext(ctx).Model(project).
			Update("current_stage", newStage).Error; err != nil {
			// Stored stage is unchanged on failure; the caller surfaces a
			// store error and the UI keeps showing the old stage.
			return err
		}
		project.CurrentStage = newStage
		moved = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	project.computeBalance()
	return project, moved, nil
}
