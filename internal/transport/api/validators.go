package api

import (
	"fmt"
	"reflect"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var registerOnce sync.Once

// validateMaxBytes в отличии от тэга max который проверяет длину рун, - проверят длину байт в поле.
func validateMaxBytes(fl validator.FieldLevel) bool {
	param := fl.Param() // получаем значение из тега
	maxBytes, err := strconv.Atoi(param)
	if err != nil {
		return false
	}

	// нужно убедится что значение поля - строка.
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return len([]byte(str)) <= maxBytes
}

// decimalValue валидатор получает decimal.Decimal строкой, см. registerValidators.
func decimalValue(fl validator.FieldLevel) (decimal.Decimal, bool) {
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(str)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// validateDecimalGTE0 сумма не отрицательная.
func validateDecimalGTE0(fl validator.FieldLevel) bool {
	d, ok := decimalValue(fl)
	return ok && !d.IsNegative()
}

// validateDecimalGT0 сумма строго больше нуля.
func validateDecimalGT0(fl validator.FieldLevel) bool {
	d, ok := decimalValue(fl)
	return ok && d.IsPositive()
}

func decimalTypeFunc(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func registerValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("validator registration: unexpected engine %T", binding.Validator.Engine())
			return
		}
		v.RegisterCustomTypeFunc(decimalTypeFunc, decimal.Decimal{})

		validations := map[string]validator.Func{
			"max_bytes": validateMaxBytes,
			"dgte0":     validateDecimalGTE0,
			"dgt0":      validateDecimalGT0,
		}
		for tag, fn := range validations {
			if regErr := v.RegisterValidation(tag, fn); regErr != nil {
				err = fmt.Errorf("validator registration: %s", regErr.Error())
				return
			}
		}
	})
	return err
}
