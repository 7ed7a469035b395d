// Package strcase converts identifiers between CamelCase and snake_case.
//
// The rest of the repository treats this as the single naming boundary:
// registry keys and extractor field names are always snake_case, Go struct
// fields are always CamelCase, and every crossing goes through this package.
package strcase

import (
	"strings"
	"unicode"
)

// CamelToSnake converts "CamelCase" to "camel_case". Runs of upper-case
// letters are kept together so "WaveformID" becomes "waveform_id" and
// "RMSDuration" becomes "rms_duration".
func CamelToSnake(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	rs := []rune(s)
	for i, r := range rs {
		if unicode.IsUpper(r) {
			// boundary: previous rune is lower/digit, or next rune is lower
			// (end of an acronym run).
			if i > 0 {
				prevLower := unicode.IsLower(rs[i-1]) || unicode.IsDigit(rs[i-1])
				nextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])
				if prevLower || nextLower {
					b.WriteByte('_')
				}
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SnakeToCamel converts "snake_case" to "SnakeCase". Segments that are known
// initialisms ("id", "uri", "snr", ...) are upper-cased whole to match Go
// field naming ("resource_id" -> "ResourceID").
func SnakeToCamel(s string) string {
	if s == "" {
		return s
	}
	parts := strings.Split(s, "_")
	var b strings.Builder
	b.Grow(len(s))
	for _, p := range parts {
		if p == "" {
			continue
		}
		if up, ok := initialisms[p]; ok {
			b.WriteString(up)
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

var initialisms = map[string]string{
	"id":  "ID",
	"uri": "URI",
	"url": "URL",
	"snr": "SNR",
}
