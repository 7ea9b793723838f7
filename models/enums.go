package models

import "github.com/aakashreddy12/CRMA/utils"

type ProjectType string

const (
	ProjectTypeDCR    ProjectType = "DCR"
	ProjectTypeNonDCR ProjectType = "Non DCR"
)

func (t *ProjectType) Parse(str string) error {
	switch str {
	case "DCR":
		*t = ProjectTypeDCR
	case "Non DCR":
		*t = ProjectTypeNonDCR
	default:
		return utils.NewValidationError("invalid project type")
	}
	return nil
}

// PaymentMode is the mode of a single ledger payment.
type PaymentMode string

const (
	PaymentModeCash    PaymentMode = "Cash"
	PaymentModeUPI     PaymentMode = "UPI"
	PaymentModeCheque  PaymentMode = "Cheque"
	PaymentModeSubsidy PaymentMode = "Subsidy"
)

func (t *PaymentMode) Parse(str string) error {
	switch str {
	case "Cash":
		*t = PaymentModeCash
	case "UPI":
		*t = PaymentModeUPI
	case "Cheque":
		*t = PaymentModeCheque
	case "Subsidy":
		*t = PaymentModeSubsidy
	default:
		return utils.NewValidationError("invalid payment mode")
	}
	return nil
}

// ProjectPaymentMode is how the project as a whole is financed.
type ProjectPaymentMode string

const (
	ProjectPaymentModeLoan ProjectPaymentMode = "Loan"
	ProjectPaymentModeCash ProjectPaymentMode = "Cash"
)

// Region is the supply state of the installation.
type Region string

const (
	RegionAP        Region = "AP"
	RegionTelangana Region = "Telangana"
)

func (t *Region) Parse(str string) error {
	switch str {
	case "AP":
		*t = RegionAP
	case "Telangana":
		*t = RegionTelangana
	default:
		return utils.NewValidationError("invalid state")
	}
	return nil
}

type UserRole string

const (
	UserRoleAdmin   UserRole = "A"
	UserRoleFinance UserRole = "F"
	UserRoleStaff   UserRole = "S"
)

// ProjectStatusDeleted is the soft-delete marker. Projects with this status
// are excluded from every aggregation.
const ProjectStatusDeleted = "deleted"

type SortBy string

const (
	SortByDate   SortBy = "date"
	SortByAmount SortBy = "amount"
	SortByStage  SortBy = "stage"
)

func (t *SortBy) Parse(str string) error {
	switch str {
	case "", "date":
		*t = SortByDate
	case "amount":
		*t = SortByAmount
	case "stage":
		*t = SortByStage
	default:
		return utils.NewValidationError("invalid sort field")
	}
	return nil
}

type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

func (t *SortOrder) Parse(str string) error {
	switch str {
	case "", "desc":
		*t = SortOrderDesc
	case "asc":
		*t = SortOrderAsc
	default:
		return utils.NewValidationError("invalid sort order")
	}
	return nil
}
