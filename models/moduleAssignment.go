package models

import (
	"context"
	"time"

	"github.com/aakashreddy12/CRMA/config"
	"github.com/aakashreddy12/CRMA/utils"
	"github.com/shopspring/decimal"
)

// Module is a solar panel product. Watt is per-panel rated output.
type Module struct {
	ID        int             `gorm:"primary_key" json:"id"`
	Name      string          `gorm:"size:100;not null;unique" json:"name" binding:"required"`
	Watt      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"watt"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

type Inverter struct {
	ID        int       `gorm:"primary_key" json:"id"`
	Name      string    `gorm:"size:100;not null;unique" json:"name" binding:"required"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// CustomerModuleAssignment records which panel and inverter combination a
// customer's installation uses. Assignments are keyed by customer name, not
// project id: one customer can have several projects sharing hardware.
type CustomerModuleAssignment struct {
	ID           int       `gorm:"primary_key" json:"id"`
	CustomerName string    `gorm:"size:100;not null;index" json:"customer_name" binding:"required"`
	ModuleId     int       `gorm:"not null" json:"module_id"`
	Module       Module    `json:"module"`
	InverterId   int       `gorm:"not null" json:"inverter_id"`
	Inverter     Inverter  `json:"inverter"`
	Quantity     int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewCustomerModuleAssignment struct {
	CustomerName string `json:"customer_name" binding:"required"`
	ModuleId     int    `json:"module_id" binding:"required"`
	InverterId   int    `json:"inverter_id" binding:"required"`
	Quantity     int    `json:"quantity" binding:"required"`
}

// KwhContribution is the assignment's capacity in kilowatts: per-panel watts
// times panel count, scaled down from watts.
func (a *CustomerModuleAssignment) KwhContribution() decimal.Decimal {
	return a.Module.Watt.Mul(decimal.NewFromInt(int64(a.Quantity))).
		Div(decimal.NewFromInt(1000))
}

func CreateModule(ctx context.Context, name string, watt decimal.Decimal) (*Module, error) {
	if !watt.IsPositive() {
		return nil, utils.NewValidationError("watt must be greater than zero")
	}
	if err := utils.ValidateUnique[Module](ctx, "name", name, 0); err != nil {
		return nil, err
	}
	module := Module{Name: name, Watt: watt}
	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&module).Error; err != nil {
		return nil, err
	}
	return &module, nil
}

func CreateInverter(ctx context.Context, name string) (*Inverter, error) {
	if err := utils.ValidateUnique[Inverter](ctx, "name", name, 0); err != nil {
		return nil, err
	}
	inverter := Inverter{Name: name}
	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&inverter).Error; err != nil {
		return nil, err
	}
	return &inverter, nil
}

func ListModules(ctx context.Context) ([]*Module, error) {
	return utils.FetchAllModels[Module](ctx)
}

func ListInverters(ctx context.Context) ([]*Inverter, error) {
	return utils.FetchAllModels[Inverter](ctx)
}

func CreateAssignment(ctx context.Context, input *NewCustomerModuleAssignment) (*CustomerModuleAssignment, error) {
	if input.Quantity <= 0 {
		return nil, utils.NewValidationError("quantity must be greater than zero")
	}
	if err := utils.ValidateResourceId[Module](ctx, input.ModuleId); err != nil {
		return nil, utils.NewValidationError("module not found")
	}
	if err := utils.ValidateResourceId[Inverter](ctx, input.InverterId); err != nil {
		return nil, utils.NewValidationError("inverter not found")
	}

	assignment := CustomerModuleAssignment{
		CustomerName: input.CustomerName,
		ModuleId:     input.ModuleId,
		InverterId:   input.InverterId,
		Quantity:     input.Quantity,
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&assignment).Error; err != nil {
		return nil, err
	}
	return utils.FetchModel[CustomerModuleAssignment](ctx, assignment.ID, "Module", "Inverter")
}

func ListAssignmentsForCustomer(ctx context.Context, customerName string) ([]*CustomerModuleAssignment, error) {
	db := config.GetDB()
	var assignments []*CustomerModuleAssignment
	err := db.WithContext(ctx).
		Preload("Module").Preload("Inverter").
		Where("customer_name = ?", customerName).
		Order("created_at DESC").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func DeleteAssignment(ctx context.Context, id int) error {
	assignment, err := utils.FetchModel[CustomerModuleAssignment](ctx, id)
	if err != nil {
		return err
	}
	db := config.GetDB()
	return db.WithContext(ctx).Delete(assignment).Error
}
