// Package render substitutes {{key}} placeholders in invitation layouts.
package render

import (
	"strings"

	"github.com/dhank77/undangan.love/internal/domain/value"
)

const (
	openDelim  = "{{"
	closeDelim = "}}"
)

// Token returns the placeholder marker for key.
func Token(key string) string {
	return openDelim + key + closeDelim
}

// Placeholders replaces every {{key}} in layout whose key maps to a string
// value in data. Tokens for absent keys or non-string values are kept as they
// are. Values are inserted verbatim, without HTML escaping, in a single pass:
// text coming from a value is never scanned for further tokens.
func Placeholders(layout string, data value.Object) string {
	if len(data) == 0 || !strings.Contains(layout, openDelim) {
		return layout
	}

	pairs := make([]string, 0, len(data)*2)
	for _, key := range data.Keys() {
		s, ok := data[key].AsString()
		if !ok {
			continue
		}
		pairs = append(pairs, Token(key), s)
	}
	if len(pairs) == 0 {
		return layout
	}

	return strings.NewReplacer(pairs...).Replace(layout)
}

// SampleData is the fixed demo content used to preview templates.
func SampleData() value.Object {
	return value.Object{
		"bride_name":    value.String("Sarah"),
		"groom_name":    value.String("Ahmad"),
		"wedding_date":  value.String("15 Januari 2025"),
		"wedding_time":  value.String("09:00 WIB"),
		"venue_name":    value.String("Gedung Serbaguna"),
		"venue_address": value.String("Jl. Merdeka No. 123, Jakarta"),
		"message":       value.String("Dengan memohon rahmat dan ridho Allah SWT, kami mengundang Bapak/Ibu/Saudara/i untuk hadir dalam acara pernikahan kami."),
	}
}
