package parser

import (
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	tcss "github.com/tdewolff/parse/v2/css"
)

// Declaration is a property name and its (not yet validated) value.
type Declaration struct {
	Name      string // lower case
	Value     []Token
	Important bool
}

// DeclarationError is the error returned for a declaration
// whose value can't be tokenized.
type DeclarationError struct {
	Name string
	Err  error
}

func (e *DeclarationError) Error() string {
	return "declaration " + e.Name + ": " + e.Err.Error()
}

func (e *DeclarationError) Unwrap() error { return e.Err }

// ParseDeclarationList parses the content of a style attribute,
// like `color: red; margin: 0 auto !important`.
//
// Declarations which can't be tokenized are skipped and reported
// in the returned errors, the other ones are kept in source order.
// Custom properties are ignored.
func ParseDeclarationList(css string) ([]Declaration, []error) {
	p := tcss.NewParser(parse.NewInputString(css), true)
	var (
		out  []Declaration
		errs []error
	)
	for {
		gt, _, data := p.Next()
		switch gt {
		case tcss.ErrorGrammar:
			if p.HasParseError() {
				errs = append(errs, p.Err())
				continue
			}
			if err := p.Err(); err != nil && err != io.EOF {
				errs = append(errs, err)
			}
			return out, errs
		case tcss.DeclarationGrammar:
			name := strings.ToLower(string(data))
			values, important := stripImportant(p.Values())
			tokens, err := consume(&sliceSource{tokens: values}, false)
			if err != nil {
				errs = append(errs, &DeclarationError{Name: name, Err: err})
				continue
			}
			out = append(out, Declaration{Name: name, Value: tokens, Important: important})
		}
	}
}

// stripImportant removes a trailing `!important`
func stripImportant(values []tcss.Token) ([]tcss.Token, bool) {
	end := len(values)
	for end > 0 && values[end-1].TokenType == tcss.WhitespaceToken {
		end--
	}
	if end < 2 {
		return values, false
	}
	last, bang := values[end-1], values[end-2]
	if last.TokenType == tcss.IdentToken && strings.EqualFold(string(last.Data), "important") &&
		bang.TokenType == tcss.DelimToken && string(bang.Data) == "!" {
		return values[:end-2], true
	}
	return values, false
}
