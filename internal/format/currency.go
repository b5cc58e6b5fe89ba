// Package format renders money amounts the way the storefront displays them:
// locale-grouped digits followed by the currency symbol, e.g. "12.850 Kz".
package format

import (
	"fmt"

	"github.com/lapescados/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

type Formatter struct {
	printer *message.Printer
	symbol  string
}

func New(locale, symbol string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("language.Parse[%s]: %w", locale, err)
	}

	return &Formatter{
		printer: message.NewPrinter(tag),
		symbol:  symbol,
	}, nil
}

// Amount renders the bare number with locale digit grouping.
func (f *Formatter) Amount(d decimal.Decimal) string {
	// Store prices are whole Kz, keep them free of decimal places.
	if d.IsInteger() {
		return f.printer.Sprint(number.Decimal(d.IntPart()))
	}

	v, _ := d.Float64()
	return f.printer.Sprint(number.Decimal(v))
}

func (f *Formatter) Price(m domain.Money) string {
	return f.Amount(m.Amount) + " " + f.symbol
}

// PerUnit renders "12.850 Kz / kg" style price labels.
func (f *Formatter) PerUnit(m domain.Money, unit string) string {
	return f.Price(m) + " / " + unit
}

func (f *Formatter) Total(m domain.Money) string {
	return "Total: " + f.Price(m)
}
