package payment

import (
	"strings"

	"github.com/shopspring/decimal"
)

// zeroDecimalCurrencies валюты без дробных единиц: сумма у провайдера передается как есть.
var zeroDecimalCurrencies = map[string]struct{}{
	"bif": {}, "clp": {}, "djf": {}, "gnf": {}, "jpy": {}, "kmf": {}, "krw": {}, "mga": {},
	"pyg": {}, "rwf": {}, "ugx": {}, "vnd": {}, "vuv": {}, "xaf": {}, "xof": {}, "xpf": {},
}

func minorExponent(currency string) int32 {
	if _, ok := zeroDecimalCurrencies[strings.ToLower(currency)]; ok {
		return 0
	}
	return 2 //nolint:mnd
}

// toMinor переводит сумму в минимальные единицы валюты (центы) с банковским округлением.
func toMinor(amount decimal.Decimal, currency string) int64 {
	return amount.Shift(minorExponent(currency)).RoundBank(0).IntPart()
}

// fromMinor переводит минимальные единицы провайдера в сумму в основной валюте.
func fromMinor(amount int64, currency string) decimal.Decimal {
	return decimal.New(amount, -minorExponent(currency))
}
