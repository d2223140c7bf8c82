package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewMoney(amount decimal.Decimal, unit currency.Unit) Money {
	return Money{Amount: amount, Currency: unit}
}

// Mul scales the amount by a whole quantity, keeping the currency.
func (m Money) Mul(quantity int) Money {
	return Money{
		Amount:   m.Amount.Mul(decimal.NewFromInt(int64(quantity))),
		Currency: m.Currency,
	}
}

func (m Money) Add(other Money) Money {
	return Money{
		Amount:   m.Amount.Add(other.Amount),
		Currency: m.Currency,
	}
}

// Prices are displayed for a Hong Kong audience regardless of host locale.
var displayPrinter = message.NewPrinter(language.MustParse("en-HK"))

// Format renders the amount with the currency symbol.
func (m Money) Format() string {
	f, _ := m.Amount.Float64()
	return displayPrinter.Sprintf("%v", currency.Symbol(m.Currency.Amount(f)))
}
