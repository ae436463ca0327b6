package parser

import (
	"strings"

	"github.com/benoitkugler/webstyle/utils"
)

type Fl = utils.Fl

// Kind is the kind of a [Token]
type Kind uint8

const (
	KIdent Kind = iota
	KNumber
	KPercentage
	KDimension
	KString
	KURL
	KHash
	KLiteral
	KFunction
	KColor
)

func (k Kind) String() string {
	switch k {
	case KIdent:
		return "ident"
	case KNumber:
		return "number"
	case KPercentage:
		return "percentage"
	case KDimension:
		return "dimension"
	case KString:
		return "string"
	case KURL:
		return "url"
	case KHash:
		return "hash"
	case KLiteral:
		return "literal"
	case KFunction:
		return "function"
	case KColor:
		return "color"
	default:
		return "<invalid kind>"
	}
}

// Token is a component value of a CSS property value.
// Whitespace and comments are never represented.
//
// The concrete types are : [Ident], [Number], [Percentage],
// [Dimension], [String], [URL], [Hash], [Literal], [Function]
// and [Color].
type Token interface {
	Kind() Kind
	serializeTo(w *strings.Builder)
}

// Ident is an identifier, like `auto` or `currentColor`.
// The case is preserved.
type Ident struct {
	Value string
}

// Number is a raw number, like `1.5` or `700`.
type Number struct {
	Value     Fl
	IsInteger bool
}

type Percentage struct {
	Value Fl
}

// Dimension is a number followed by a unit.
// The unit is always lower case.
type Dimension struct {
	Value Fl
	Unit  string
}

// String is a quoted string, without the quotes
// and with escapes resolved.
type String struct {
	Value string
}

// URL is an `url(...)` token, with the URL unquoted.
type URL struct {
	Value string
}

// Hash is `#` followed by a name, stored without the `#`.
type Hash struct {
	Value string
}

// Literal is a delimiter : `/` or `,`
type Literal struct {
	Value string
}

// Function is a functional notation like `rgb(1, 2, 3)`.
// Name is lower case, and Arguments are the tokens between
// the parenthesis, whitespace excluded.
type Function struct {
	Name      string
	Arguments []Token
}

func (Ident) Kind() Kind      { return KIdent }
func (Number) Kind() Kind     { return KNumber }
func (Percentage) Kind() Kind { return KPercentage }
func (Dimension) Kind() Kind  { return KDimension }
func (String) Kind() Kind     { return KString }
func (URL) Kind() Kind        { return KURL }
func (Hash) Kind() Kind       { return KHash }
func (Literal) Kind() Kind    { return KLiteral }
func (Function) Kind() Kind   { return KFunction }
func (Color) Kind() Kind      { return KColor }

// Keyword returns the lower cased value of [t]
// if it is an [Ident], or an empty string.
func Keyword(t Token) string {
	if ident, ok := t.(Ident); ok {
		return strings.ToLower(ident.Value)
	}
	return ""
}

// SingleKeyword returns the lower cased identifier
// if [tokens] is made of exactly one [Ident].
func SingleKeyword(tokens []Token) string {
	if len(tokens) != 1 {
		return ""
	}
	return Keyword(tokens[0])
}

// IsLiteral returns true if [t] is the delimiter [value].
func IsLiteral(t Token, value string) bool {
	lit, ok := t.(Literal)
	return ok && lit.Value == value
}

// SplitOnComma splits [tokens] on top-level `,` literals.
// An empty group (leading, trailing or doubled comma) is
// returned as a nil slice.
func SplitOnComma(tokens []Token) [][]Token {
	var (
		out     [][]Token
		current []Token
	)
	for _, token := range tokens {
		if IsLiteral(token, ",") {
			out = append(out, current)
			current = nil
			continue
		}
		current = append(current, token)
	}
	return append(out, current)
}
