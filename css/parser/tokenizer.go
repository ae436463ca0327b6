package parser

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tdewolff/parse/v2"
	tcss "github.com/tdewolff/parse/v2/css"
)

// ParseError is returned when a value can't be
// turned into a list of [Token]s.
type ParseError struct {
	Message string
}

func (e ParseError) Error() string { return "invalid CSS value: " + e.Message }

// source provides the raw tokens emitted by tdewolff,
// either directly from its lexer or from the values
// of a declaration.
type source interface {
	// next returns [tcss.ErrorToken] at the end of the input.
	next() (tcss.TokenType, []byte, error)
}

type lexerSource struct {
	lexer *tcss.Lexer
}

func (s lexerSource) next() (tcss.TokenType, []byte, error) {
	tt, data := s.lexer.Next()
	if tt == tcss.ErrorToken && s.lexer.Err() != io.EOF {
		return tt, nil, s.lexer.Err()
	}
	return tt, data, nil
}

type sliceSource struct {
	tokens []tcss.Token
	pos    int
}

func (s *sliceSource) next() (tcss.TokenType, []byte, error) {
	if s.pos >= len(s.tokens) {
		return tcss.ErrorToken, nil, nil
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok.TokenType, tok.Data, nil
}

// ParseValue tokenizes a property value, such as `1px solid red`
// or `12px/1.5 "Times New Roman", serif`.
// Whitespace and comments are dropped, function arguments are nested
// in [Function] tokens.
func ParseValue(value string) ([]Token, error) {
	lexer := tcss.NewLexer(parse.NewInputString(value))
	return consume(lexerSource{lexer: lexer}, false)
}

// MustParseValue is the same as [ParseValue] but panics on error.
// It is meant for literals written in source code.
func MustParseValue(value string) []Token {
	out, err := ParseValue(value)
	if err != nil {
		panic(fmt.Sprintf("invalid literal %q: %s", value, err))
	}
	return out
}

// consume reads tokens until the end of the input or, if [inFunction]
// is true, until the matching closing parenthesis.
func consume(src source, inFunction bool) ([]Token, error) {
	var out []Token
	for {
		tt, data, err := src.next()
		if err != nil {
			return nil, err
		}
		switch tt {
		case tcss.ErrorToken:
			if inFunction {
				return nil, ParseError{"unclosed function"}
			}
			return out, nil
		case tcss.RightParenthesisToken:
			if !inFunction {
				return nil, ParseError{"unexpected ')'"}
			}
			return out, nil
		case tcss.WhitespaceToken, tcss.CommentToken:
			continue
		case tcss.FunctionToken:
			name := strings.ToLower(strings.TrimSuffix(string(data), "("))
			args, err := consume(src, true)
			if err != nil {
				return nil, err
			}
			if name == "url" && len(args) == 1 {
				if s, ok := args[0].(String); ok {
					out = append(out, URL{Value: s.Value})
					continue
				}
			}
			out = append(out, Function{Name: name, Arguments: args})
		default:
			token, err := convertToken(tt, data)
			if err != nil {
				return nil, err
			}
			out = append(out, token)
		}
	}
}

// convertToken handles the tokens which are not blocks.
func convertToken(tt tcss.TokenType, data []byte) (Token, error) {
	switch tt {
	case tcss.IdentToken:
		return Ident{Value: unescape(string(data))}, nil
	case tcss.NumberToken:
		v, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return nil, ParseError{fmt.Sprintf("invalid number %q", data)}
		}
		return Number{Value: v, IsInteger: isIntegerRepr(string(data))}, nil
	case tcss.PercentageToken:
		v, err := strconv.ParseFloat(strings.TrimSuffix(string(data), "%"), 64)
		if err != nil {
			return nil, ParseError{fmt.Sprintf("invalid percentage %q", data)}
		}
		return Percentage{Value: v}, nil
	case tcss.DimensionToken:
		num, unit := splitDimension(string(data))
		v, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return nil, ParseError{fmt.Sprintf("invalid dimension %q", data)}
		}
		return Dimension{Value: v, Unit: strings.ToLower(unescape(unit))}, nil
	case tcss.StringToken:
		return String{Value: unquote(string(data))}, nil
	case tcss.URLToken:
		return URL{Value: parseURLToken(string(data))}, nil
	case tcss.HashToken:
		return Hash{Value: unescape(strings.TrimPrefix(string(data), "#"))}, nil
	case tcss.CommaToken:
		return Literal{Value: ","}, nil
	case tcss.DelimToken:
		if string(data) == "/" {
			return Literal{Value: "/"}, nil
		}
		return nil, ParseError{fmt.Sprintf("unexpected delimiter %q", data)}
	case tcss.BadStringToken:
		return nil, ParseError{"unterminated string"}
	case tcss.BadURLToken:
		return nil, ParseError{"invalid url"}
	default:
		return nil, ParseError{fmt.Sprintf("unexpected %s %q", tt, data)}
	}
}

// splitDimension separates the number and the unit of a dimension token,
// using the number syntax of the lexer.
func splitDimension(data string) (string, string) {
	i := 0
	if i < len(data) && (data[i] == '+' || data[i] == '-') {
		i++
	}
	for i < len(data) && isDigit(data[i]) {
		i++
	}
	if i+1 < len(data) && data[i] == '.' && isDigit(data[i+1]) {
		i++
		for i < len(data) && isDigit(data[i]) {
			i++
		}
	}
	if i < len(data) && (data[i] == 'e' || data[i] == 'E') {
		j := i + 1
		if j < len(data) && (data[j] == '+' || data[j] == '-') {
			j++
		}
		if j < len(data) && isDigit(data[j]) {
			for j < len(data) && isDigit(data[j]) {
				j++
			}
			i = j
		}
	}
	return data[:i], data[i:]
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isIntegerRepr(s string) bool {
	return !strings.ContainsAny(s, ".eE")
}

// parseURLToken strips the url( ) wrapper, and the optional quotes.
func parseURLToken(data string) string {
	data = data[strings.IndexByte(data, '(')+1:]
	data = strings.TrimSuffix(data, ")")
	data = strings.TrimSpace(data)
	if len(data) >= 2 && (data[0] == '"' || data[0] == '\'') {
		return unquote(data)
	}
	return unescape(data)
}

// unquote removes the surrounding quotes of a string token
// and resolves its escapes.
func unquote(data string) string {
	if len(data) >= 1 && (data[0] == '"' || data[0] == '\'') {
		quote := data[0]
		data = data[1:]
		if len(data) >= 1 && data[len(data)-1] == quote {
			data = data[:len(data)-1]
		}
	}
	return unescape(data)
}

// unescape resolves CSS escapes : hexadecimal code points
// (with an optional trailing whitespace), escaped newlines and
// escaped characters.
func unescape(s string) string {
	if strings.IndexByte(s, '\\') == -1 {
		return s
	}
	var out strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			out.WriteByte(c)
			continue
		}
		i++
		if s[i] == '\n' {
			continue
		}
		end := i
		for end < len(s) && end-i < 6 && isHexDigit(s[end]) {
			end++
		}
		if end == i {
			out.WriteByte(s[i])
			continue
		}
		code, _ := strconv.ParseUint(s[i:end], 16, 32)
		if code == 0 || code > utf8.MaxRune || (code >= 0xD800 && code <= 0xDFFF) {
			code = utf8.RuneError
		}
		out.WriteRune(rune(code))
		if end < len(s) && (s[end] == ' ' || s[end] == '\n' || s[end] == '\t') {
			end++
		}
		i = end - 1
	}
	return out.String()
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
