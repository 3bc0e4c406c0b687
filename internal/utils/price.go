package utils

import (
	"fmt"
	"strings"
)

// FormatBRL formate un prix en réal brésilien : "R$ 1.234,56".
// Séparateur de milliers ".", décimales ",", comme l'affichage pt-BR.
func FormatBRL(value float64) string {
	negative := value < 0
	if negative {
		value = -value
	}

	s := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(s, ".", 2)
	intPart, decPart := parts[0], parts[1]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := "R$ " + b.String() + "," + decPart
	if negative {
		out = "-" + out
	}
	return out
}
