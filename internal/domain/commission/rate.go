// Package commission contiene el editor de filas de comisión: filtro de entrada,
// cálculo de la comisión de casa matriz y transiciones de estado por fila.
package commission

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// rateInputRe acepta cadenas numéricas parciales con hasta 2 decimales ("", "1", "1.", "1.2", "1.25").
var rateInputRe = regexp.MustCompile(`^\d*\.?\d{0,2}$`)

// ValidInput indica si la cadena puede quedar en un campo de tasa.
func ValidInput(s string) bool {
	return rateInputRe.MatchString(s)
}

// FilterKeystroke aplica el filtro de cada pulsación: si next no es válido se conserva prev.
// Escribir "12.345" se detiene en "12.34".
func FilterKeystroke(prev, next string) string {
	if ValidInput(next) {
		return next
	}
	return prev
}

// ParseRate convierte el texto de un campo a decimal. Vacío o "." valen 0.
func ParseRate(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "." {
		return decimal.Zero, nil
	}
	if !ValidInput(s) {
		return decimal.Zero, fmt.Errorf("tasa inválida %q", s)
	}
	if strings.HasSuffix(s, ".") {
		s = strings.TrimSuffix(s, ".")
	}
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	return decimal.NewFromString(s)
}

// FormatRate representa una tasa con 2 decimales como string de campo.
func FormatRate(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Headquarters calcula la comisión de casa matriz (본사):
// round2(merchant − (branch + distributor + agent)).
func Headquarters(merchant, branch, distributor, agent decimal.Decimal) decimal.Decimal {
	return merchant.Sub(branch.Add(distributor).Add(agent)).Round(2)
}
