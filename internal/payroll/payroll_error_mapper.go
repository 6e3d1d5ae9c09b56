package payroll

import (
	"errors"

	payrollerrors "go-finboard/internal/payroll/errors"

	"gorm.io/gorm"
)

func mapPendingCostError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollerrors.ErrPendingCostNotFound
	}
	return err
}

func mapSalaryPaymentError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollerrors.ErrSalaryPaymentNotFound
	}
	return err
}
