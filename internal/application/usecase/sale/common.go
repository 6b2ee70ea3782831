// Package sale contains sale-related use cases.
package sale

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/estate-ledger/backend/internal/domain/entity"
	domainerror "github.com/estate-ledger/backend/internal/domain/error"
	"github.com/estate-ledger/backend/internal/domain/valueobject"
)

func validateCustomerName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domainerror.NewSaleError(
			domainerror.ErrCodeCustomerNameRequired,
			"customer name is required",
			domainerror.ErrCustomerNameRequired,
		)
	}
	return name, nil
}

func validateUnitType(project *entity.Project, unitType entity.UnitType) error {
	if !unitType.IsValid() {
		return domainerror.NewSaleError(
			domainerror.ErrCodeInvalidUnitType,
			"unit type must be 'apartment' or 'shop'",
			domainerror.ErrInvalidUnitType,
		)
	}
	if !project.Offers(unitType) {
		return domainerror.NewSaleError(
			domainerror.ErrCodeUnitTypeNotOffered,
			fmt.Sprintf("project %q has no %s units", project.Name, unitType),
			domainerror.ErrUnitTypeNotOffered,
		)
	}
	return nil
}

func validateTotalPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return domainerror.NewSaleError(
			domainerror.ErrCodeInvalidTotalPrice,
			"total price must be greater than zero",
			domainerror.ErrInvalidTotalPrice,
		)
	}
	if !valueobject.HasMoneyScale(price) {
		return domainerror.NewSaleError(
			domainerror.ErrCodeInvalidTotalPrice,
			"total price cannot have more than two decimal places",
			domainerror.ErrInvalidTotalPrice,
		)
	}
	return nil
}

func validateSaleDate(date time.Time) error {
	if date.IsZero() {
		return domainerror.NewSaleError(
			domainerror.ErrCodeInvalidSaleDate,
			"sale date is required",
			domainerror.ErrInvalidSaleDate,
		)
	}
	return nil
}

// scheduleError maps a schedule generator failure to its sale error.
func scheduleError(err error) error {
	switch {
	case errors.Is(err, domainerror.ErrInvalidPaymentType):
		return domainerror.NewSaleError(
			domainerror.ErrCodeInvalidPaymentType,
			"payment type must be 'cash' or 'installment'",
			err,
		)
	case errors.Is(err, domainerror.ErrInvalidDownPayment):
		return domainerror.NewSaleError(
			domainerror.ErrCodeInvalidDownPayment,
			"down payment must be between zero and the total price, with at most two decimal places",
			err,
		)
	case errors.Is(err, domainerror.ErrInvalidInstallmentsCount):
		return domainerror.NewSaleError(
			domainerror.ErrCodeInvalidInstallmentsCount,
			fmt.Sprintf("installments count must be between 1 and %d while an amount remains after the down payment", valueobject.MaxInstallments),
			err,
		)
	default:
		return fmt.Errorf("failed to generate payment schedule: %w", err)
	}
}

func saleNotFoundOr(err error, action string) error {
	if errors.Is(err, domainerror.ErrRecordNotFound) {
		return domainerror.NewSaleError(
			domainerror.ErrCodeSaleNotFound,
			"sale not found",
			domainerror.ErrSaleNotFound,
		)
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

func projectNotFoundOr(err error, action string) error {
	if errors.Is(err, domainerror.ErrRecordNotFound) {
		return domainerror.NewSaleError(
			domainerror.ErrCodeSaleProjectNotFound,
			"project not found",
			domainerror.ErrSaleProjectNotFound,
		)
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}
