package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer descompone (NFD), elimina marcas diacríticas y recompone (NFC).
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normaliza un término para comparación: minúsculas y sin acentos
// ("Resistência" → "resistencia"). Si la transformación falla devuelve el
// original en minúsculas.
func Fold(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(folded)
}

// NormalizeSKU deja el SKU en forma canónica: sin espacios alrededor, sin
// acentos y en mayúsculas.
func NormalizeSKU(sku string) string {
	folded, _, err := transform.String(foldTransformer, strings.TrimSpace(sku))
	if err != nil {
		return strings.ToUpper(strings.TrimSpace(sku))
	}
	return strings.ToUpper(folded)
}
