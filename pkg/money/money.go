// Package money formatea montos en won y porcentajes para reportes.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Korean)

// Won redondea a unidades y agrega separadores de miles: 1234567 → "1,234,567".
func Won(d decimal.Decimal) string {
	return printer.Sprintf("%d", d.Round(0).IntPart())
}

// Count formatea un conteo con separadores de miles.
func Count(n int64) string {
	return printer.Sprintf("%d", n)
}

// Rate porcentaje con dos decimales: 3.5 → "3.50%".
func Rate(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}
