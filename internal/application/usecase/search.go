package usecase

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var searchNormalizer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeSearch prepara un término de búsqueda: minúsculas y sin acentos,
// para que "Núñez" y "nunez" encuentren el mismo cliente.
func NormalizeSearch(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if out, _, err := transform.String(searchNormalizer, s); err == nil {
		return out
	}
	return s
}
