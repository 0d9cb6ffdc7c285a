package validation

import (
	"net/mail"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

// Result acumula errores de validación por campo. Un payload es válido
// únicamente cuando el mapa queda vacío.
type Result struct {
	Errors map[string]string `json:"errors"`
}

func newResult() Result {
	return Result{Errors: make(map[string]string)}
}

// IsValid deriva la validez del payload del contenido del mapa de errores.
func (r Result) IsValid() bool {
	return len(r.Errors) == 0
}

// isBlank trata como ausente todo string vacío tras recortar espacios.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// normalize reduce los valores ausentes a string vacío sin alterar el resto.
func normalize(s string) string {
	if isBlank(s) {
		return ""
	}
	return s
}

// lengthBetween valida la longitud en runas del valor recortado,
// ambos extremos inclusive.
func lengthBetween(s string, min, max int) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(s))
	return n >= min && n <= max
}

func isEmail(s string) bool {
	addr, err := mail.ParseAddress(strings.TrimSpace(s))
	return err == nil && addr.Address == strings.TrimSpace(s)
}

// isURL exige una URL absoluta: esquema y host presentes.
func isURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	return err == nil && u.Scheme != "" && u.Host != ""
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseDate acepta fechas en formato 2006-01-02 o RFC3339.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func isDate(s string) bool {
	_, ok := ParseDate(s)
	return ok
}
