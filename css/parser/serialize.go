package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Serialize returns the CSS text of a value. Tokens are separated
// by a space, and commas are followed by a space.
// The output parses back to the same tokens.
func Serialize(l []Token) string {
	var w strings.Builder
	serializeTo(l, &w)
	return w.String()
}

func serializeTo(tokens []Token, w *strings.Builder) {
	for i, token := range tokens {
		if i > 0 && !IsLiteral(token, ",") {
			w.WriteByte(' ')
		}
		token.serializeTo(w)
	}
}

func formatNumber(v Fl) string {
	if v == 0 { // avoid -0
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Serialize any string as a CSS identifier
// Returns an Unicode string
// that would parse as an `Ident`
// whose value attribute equals the passed `value` argument.
func serializeIdentifier(value string) string {
	if value == "-" {
		return `\-`
	}

	if len(value) >= 2 && value[:2] == "--" {
		return "--" + serializeName(value[2:])
	}
	var result string
	if value[0] == '-' {
		result = "-"
		value = value[1:]
	}
	c, w := utf8.DecodeRuneInString(value)
	var suffix string
	switch {
	case c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c > 0x7F:
		suffix = string(c)
	case c == '\n':
		suffix = `\A `
	case '0' <= c && c <= '9':
		suffix = fmt.Sprintf("\\%X ", c)
	default:
		suffix = "\\" + string(c)
	}
	return result + suffix + serializeName(value[w:])
}

func serializeName(value string) string {
	var chunks strings.Builder
	for _, c := range value {
		switch {
		case c == '-' || c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' || c > 0x7F:
			chunks.WriteRune(c)
		case c == '\n':
			chunks.WriteString(`\A `)
		default:
			chunks.WriteByte('\\')
			chunks.WriteRune(c)
		}
	}
	return chunks.String()
}

func serializeStringValue(value string) string {
	var chunks strings.Builder
	for _, c := range value {
		switch c {
		case '"':
			chunks.WriteString(`\"`)
		case '\\':
			chunks.WriteString(`\\`)
		case '\n':
			chunks.WriteString(`\A `)
		default:
			chunks.WriteRune(c)
		}
	}
	return chunks.String()
}

func (t Ident) serializeTo(w *strings.Builder) {
	if t.Value == "" {
		return
	}
	w.WriteString(serializeIdentifier(t.Value))
}

func (t Number) serializeTo(w *strings.Builder) { w.WriteString(formatNumber(t.Value)) }

func (t Percentage) serializeTo(w *strings.Builder) {
	w.WriteString(formatNumber(t.Value))
	w.WriteByte('%')
}

func (t Dimension) serializeTo(w *strings.Builder) {
	w.WriteString(formatNumber(t.Value))
	// Disambiguate with scientific notation
	if t.Unit == "e" || strings.HasPrefix(t.Unit, "e-") {
		w.WriteString(`\65 `)
		w.WriteString(serializeName(t.Unit[1:]))
	} else {
		w.WriteString(serializeName(t.Unit))
	}
}

func (t String) serializeTo(w *strings.Builder) {
	w.WriteByte('"')
	w.WriteString(serializeStringValue(t.Value))
	w.WriteByte('"')
}

func (t URL) serializeTo(w *strings.Builder) {
	w.WriteString(`url("`)
	w.WriteString(serializeStringValue(t.Value))
	w.WriteString(`")`)
}

func (t Hash) serializeTo(w *strings.Builder) {
	w.WriteByte('#')
	w.WriteString(serializeName(t.Value))
}

func (t Literal) serializeTo(w *strings.Builder) { w.WriteString(t.Value) }

func (t Function) serializeTo(w *strings.Builder) {
	w.WriteString(serializeIdentifier(t.Name))
	w.WriteByte('(')
	serializeTo(t.Arguments, w)
	w.WriteByte(')')
}
