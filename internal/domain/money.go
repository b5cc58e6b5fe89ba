package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

// Kwanza is the store currency. Prices are whole Kz, no minor units.
var Kwanza = currency.MustParseISO("AOA")

func NewKz(amount int64) Money {
	return Money{
		Amount:   decimal.NewFromInt(amount),
		Currency: Kwanza,
	}
}

func (m Money) Mul(n int) Money {
	return Money{
		Amount:   m.Amount.Mul(decimal.NewFromInt(int64(n))),
		Currency: m.Currency,
	}
}

func (m Money) Add(other Money) Money {
	return Money{
		Amount:   m.Amount.Add(other.Amount),
		Currency: m.Currency,
	}
}

func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}
