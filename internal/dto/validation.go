package dto

import (
	"reflect"

	"github.com/SscSPs/receipts_ledger/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidators installs the custom tags used by the request DTOs:
//
//	money     non-negative with at most two decimal places
//	positive  strictly greater than zero
//	paymethod one of CASH, CHEQUE, BANK_TRANSFER
func RegisterValidators(v *validator.Validate) error {
	// Decimals are structs; present them to tag validators as their string form.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	if err := v.RegisterValidation("money", validateMoney); err != nil {
		return err
	}
	if err := v.RegisterValidation("positive", validatePositive); err != nil {
		return err
	}
	return v.RegisterValidation("paymethod", validatePaymentMethod)
}

func validateMoney(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return !d.IsNegative() && d.Equal(domain.Round2(d))
}

func validatePositive(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	return err == nil && d.IsPositive()
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	return domain.PaymentMethod(fl.Field().String()).IsValid()
}
