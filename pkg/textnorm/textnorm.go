// Package textnorm normaliza textos en portugués para persistir y comparar.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Upper pasa a mayúsculas con las reglas de pt-BR y recorta espacios.
func Upper(s string) string {
	return cases.Upper(language.BrazilianPortuguese).String(strings.TrimSpace(s))
}

// Fold minúsculas sin acentos ni espacios en los extremos ("Fração " → "fracao").
// Se usa para comparar encabezados de planillas.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return cases.Lower(language.BrazilianPortuguese).String(strings.TrimSpace(out))
}

// Digits conserva solo los dígitos de s; max <= 0 no limita.
func Digits(s string, max int) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if max > 0 && b.Len() >= max {
				break
			}
		}
	}
	return b.String()
}

// ContainsFold búsqueda sin distinguir mayúsculas ni acentos.
func ContainsFold(s, sub string) bool {
	return strings.Contains(Fold(s), Fold(sub))
}
