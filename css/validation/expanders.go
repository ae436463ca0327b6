package validation

import (
	"fmt"

	pa "github.com/benoitkugler/webstyle/css/parser"
	pr "github.com/benoitkugler/webstyle/css/properties"
	"github.com/benoitkugler/webstyle/utils"
)

// expander returns the values of every longhand of the shorthand.
type expander func(shorthand pr.Shorthand, tokens []Token) (pr.Properties, error)

var expanders = [pr.NbShorthands]expander{
	pr.SMargin:       expandFourSides,
	pr.SPadding:      expandFourSides,
	pr.SBorderWidth:  expandFourSides,
	pr.SBorderStyle:  expandFourSides,
	pr.SBorderColor:  expandFourSides,
	pr.SBorder:       expandBorder,
	pr.SBorderTop:    expandBorderSide,
	pr.SBorderRight:  expandBorderSide,
	pr.SBorderBottom: expandBorderSide,
	pr.SBorderLeft:   expandBorderSide,
	pr.SOutline:      expandOutline,
	pr.SListStyle:    expandListStyle,
	pr.SBackground:   expandBackground,
	pr.SFont:         expandFont,
	pr.SCue:          expandBeforeAfter,
	pr.SPause:        expandBeforeAfter,
}

// shorthandDefaults are the values given to the longhands
// omitted in a shorthand. They are not always the initial values
// of the longhands.
var shorthandDefaults [pr.NbShorthands]pr.Properties

func init() {
	literals := func(m map[pr.KnownProp]string) pr.Properties {
		out := make(pr.Properties, len(m))
		for prop, literal := range m {
			value := validators[prop](pa.MustParseValue(literal))
			if value == nil {
				panic("invalid shorthand default for " + prop.String())
			}
			out[prop] = value
		}
		return out
	}
	for _, side := range pr.Sides {
		shorthandDefaults[pr.SBorderTop+pr.Shorthand(side)] = literals(map[pr.KnownProp]string{
			pr.BorderWidth(side): "medium",
			pr.BorderStyle(side): "none",
			pr.BorderColor(side): "currentColor",
		})
	}
	shorthandDefaults[pr.SOutline] = literals(map[pr.KnownProp]string{
		pr.POutlineWidth: "medium",
		pr.POutlineStyle: "none",
		pr.POutlineColor: "invert",
	})
	shorthandDefaults[pr.SListStyle] = literals(map[pr.KnownProp]string{
		pr.PListStyleType:     "disc",
		pr.PListStylePosition: "outside",
		pr.PListStyleImage:    "none",
	})
	shorthandDefaults[pr.SBackground] = literals(map[pr.KnownProp]string{
		pr.PBackgroundColor:      "transparent",
		pr.PBackgroundImage:      "none",
		pr.PBackgroundRepeat:     "repeat",
		pr.PBackgroundAttachment: "scroll",
		pr.PBackgroundPosition:   "0% 0%",
	})
	shorthandDefaults[pr.SFont] = literals(map[pr.KnownProp]string{
		pr.PFontStyle:   "normal",
		pr.PFontVariant: "normal",
		pr.PFontWeight:  "normal",
		pr.PLineHeight:  "normal",
	})

	for sh := pr.Shorthand(1); sh < pr.NbShorthands; sh++ {
		if expanders[sh] == nil {
			panic("missing expander for " + sh.String())
		}
	}
}

// Expand returns the longhand values of the shorthand [sh].
// Omitted components get the shorthand default value.
// If the value is not valid, a [*MalformedShorthand] error is returned.
func Expand(sh pr.Shorthand, tokens []Token) (pr.Properties, error) {
	if sh == 0 || sh >= pr.NbShorthands {
		return nil, &UnknownProperty{Name: sh.String()}
	}
	if len(tokens) == 0 {
		return nil, &MalformedShorthand{Shorthand: sh, Reason: "no value"}
	}
	switch keyword := getSingleKeyword(tokens); keyword {
	case "inherit", "initial":
		out := make(pr.Properties, len(sh.Longhands()))
		for _, longhand := range sh.Longhands() {
			out[longhand] = ident(keyword)
		}
		return out, nil
	}
	return expanders[sh](sh, tokens)
}

type namedTokens struct {
	prop   pr.KnownProp
	tokens []Token
}

type beforeGeneric = func(sh pr.Shorthand, tokens []Token) ([]namedTokens, error)

// genericExpander wraps an expander so that it does not have to
// validate the components nor fill the omitted ones : it
// only has to attribute the tokens to the longhands.
func genericExpander(wrapped beforeGeneric) expander {
	return func(sh pr.Shorthand, tokens []Token) (pr.Properties, error) {
		results, err := wrapped(sh, tokens)
		if err != nil {
			return nil, err
		}
		longhands := sh.Longhands()
		out := make(pr.Properties, len(longhands))
		for _, result := range results {
			if !isLonghandOf(result.prop, longhands) {
				return nil, fmt.Errorf("internal error: %s is not a longhand of %s", result.prop, sh)
			}
			if _, isIn := out[result.prop]; isIn {
				return nil, &MalformedShorthand{
					Shorthand: sh, Token: result.tokens[0],
					Reason: fmt.Sprintf("got multiple %s values", result.prop),
				}
			}
			value := validators[result.prop](result.tokens)
			if value == nil {
				return nil, &MalformedShorthand{
					Shorthand: sh, Token: result.tokens[0],
					Reason: fmt.Sprintf("invalid value for %s", result.prop),
				}
			}
			out[result.prop] = value
		}
		for _, longhand := range longhands {
			if _, isIn := out[longhand]; !isIn {
				out[longhand] = shorthandDefaults[sh][longhand]
			}
		}
		return out, nil
	}
}

func isLonghandOf(prop pr.KnownProp, longhands []pr.KnownProp) bool {
	for _, p := range longhands {
		if p == prop {
			return true
		}
	}
	return false
}

// Expand properties setting a token for the four sides of a box.
// "border-color", "border-style", "border-width", "margin", "padding"
func expandFourSides(sh pr.Shorthand, tokens []Token) (pr.Properties, error) {
	// Make sure we have 4 tokens
	switch len(tokens) {
	case 1:
		tokens = []Token{tokens[0], tokens[0], tokens[0], tokens[0]}
	case 2:
		tokens = []Token{tokens[0], tokens[1], tokens[0], tokens[1]} // (bottom, left) defaults to (top, right)
	case 3:
		tokens = []Token{tokens[0], tokens[1], tokens[2], tokens[1]} // left defaults to right
	case 4:
	default:
		return nil, &MalformedShorthand{
			Shorthand: sh, Token: tokens[4],
			Reason: fmt.Sprintf("expected 1 to 4 components, got %d", len(tokens)),
		}
	}

	out := make(pr.Properties, 4)
	for index, longhand := range sh.Longhands() {
		token := tokens[index]
		value := validators[longhand]([]Token{token})
		if value == nil {
			return nil, &MalformedShorthand{
				Shorthand: sh, Token: token,
				Reason: fmt.Sprintf("invalid value for %s", longhand),
			}
		}
		out[longhand] = value
	}
	return out, nil
}

// Expand the “border“ shorthand property, setting the
// four sides at once.
//
//	See http://www.w3.org/TR/CSS21/box.html#propdef-border
func expandBorder(sh pr.Shorthand, tokens []Token) (pr.Properties, error) {
	out := make(pr.Properties, 12)
	for _, side := range pr.Sides {
		props, err := expandBorderSide(pr.SBorderTop+pr.Shorthand(side), tokens)
		if err != nil {
			if malformed, ok := err.(*MalformedShorthand); ok {
				malformed.Shorthand = sh
			}
			return nil, err
		}
		out.UpdateWith(props)
	}
	return out, nil
}

// Expand the “border-*“ shorthand properties.
// "border-top", "border-right", "border-bottom", "border-left"
//
//	See http://www.w3.org/TR/CSS21/box.html#propdef-border-top
var expandBorderSide = genericExpander(_expandBorderSide)

func _expandBorderSide(sh pr.Shorthand, tokens []Token) ([]namedTokens, error) {
	side := pr.Side(sh - pr.SBorderTop)
	out := make([]namedTokens, len(tokens))
	for index, token := range tokens {
		var prop pr.KnownProp
		if otherColors([]Token{token}) != nil {
			prop = pr.BorderColor(side)
		} else if borderWidth([]Token{token}) != nil {
			prop = pr.BorderWidth(side)
		} else if borderStyle([]Token{token}) != nil {
			prop = pr.BorderStyle(side)
		} else {
			return nil, &MalformedShorthand{Shorthand: sh, Token: token, Reason: "expected a width, a style or a color"}
		}
		out[index] = namedTokens{prop: prop, tokens: []Token{token}}
	}
	return out, nil
}

// Expand the “outline“ shorthand property.
//
//	See http://www.w3.org/TR/CSS21/ui.html#propdef-outline
var expandOutline = genericExpander(_expandOutline)

func _expandOutline(sh pr.Shorthand, tokens []Token) ([]namedTokens, error) {
	out := make([]namedTokens, len(tokens))
	for index, token := range tokens {
		var prop pr.KnownProp
		if outlineColor([]Token{token}) != nil {
			prop = pr.POutlineColor
		} else if borderWidth([]Token{token}) != nil {
			prop = pr.POutlineWidth
		} else if outlineStyle([]Token{token}) != nil {
			prop = pr.POutlineStyle
		} else {
			return nil, &MalformedShorthand{Shorthand: sh, Token: token, Reason: "expected a width, a style or a color"}
		}
		out[index] = namedTokens{prop: prop, tokens: []Token{token}}
	}
	return out, nil
}

// Expand the “list-style“ shorthand property.
//
//	See http://www.w3.org/TR/CSS21/generate.html#propdef-list-style
var expandListStyle = genericExpander(_expandListStyle)

func _expandListStyle(sh pr.Shorthand, tokens []Token) (out []namedTokens, err error) {
	var typeSpecified, imageSpecified bool
	noneCount := 0
	var noneToken Token
	for _, token := range tokens {
		var prop pr.KnownProp
		if getKeyword(token) == "none" {
			// Can be either -type or -image, see at the end which is not
			// otherwise specified.
			noneCount += 1
			noneToken = token
			continue
		}

		if imageOrNone([]Token{token}) != nil {
			prop = pr.PListStyleImage
			imageSpecified = true
		} else if validators[pr.PListStylePosition]([]Token{token}) != nil {
			prop = pr.PListStylePosition
		} else if listStyleType([]Token{token}) != nil {
			prop = pr.PListStyleType
			typeSpecified = true
		} else {
			return nil, &MalformedShorthand{Shorthand: sh, Token: token, Reason: "expected a type, a position or an image"}
		}
		out = append(out, namedTokens{prop: prop, tokens: []Token{token}})
	}

	if !typeSpecified && noneCount > 0 {
		out = append(out, namedTokens{prop: pr.PListStyleType, tokens: []Token{noneToken}})
		noneCount -= 1
	}

	if !imageSpecified && noneCount > 0 {
		out = append(out, namedTokens{prop: pr.PListStyleImage, tokens: []Token{noneToken}})
		noneCount -= 1
	}

	if noneCount > 0 {
		return nil, &MalformedShorthand{Shorthand: sh, Token: noneToken, Reason: "too many none values"}
	}
	return out, nil
}

// Expand the “background“ shorthand property.
//
//	See http://www.w3.org/TR/CSS21/colors.html#propdef-background
var expandBackground = genericExpander(_expandBackground)

func _expandBackground(sh pr.Shorthand, tokens []Token) (out []namedTokens, err error) {
	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		single := []Token{token}
		var prop pr.KnownProp
		switch {
		case otherColors(single) != nil:
			prop = pr.PBackgroundColor
		case imageOrNone(single) != nil:
			prop = pr.PBackgroundImage
		case validators[pr.PBackgroundRepeat](single) != nil:
			prop = pr.PBackgroundRepeat
		case validators[pr.PBackgroundAttachment](single) != nil:
			prop = pr.PBackgroundAttachment
		default:
			// position may span two tokens
			if i+1 < len(tokens) && backgroundPosition(tokens[i:i+2]) != nil {
				out = append(out, namedTokens{prop: pr.PBackgroundPosition, tokens: tokens[i : i+2]})
				i++
				continue
			}
			if backgroundPosition(single) != nil {
				prop = pr.PBackgroundPosition
			} else {
				return nil, &MalformedShorthand{Shorthand: sh, Token: token, Reason: "unexpected background component"}
			}
		}
		out = append(out, namedTokens{prop: prop, tokens: single})
	}
	return out, nil
}

var systemFonts = utils.NewSet("caption", "icon", "menu", "message-box", "small-caption", "status-bar")

// Expand the “font“ shorthand property.
//
//	See http://www.w3.org/TR/CSS21/fonts.html#font-shorthand
var expandFont = genericExpander(_expandFont)

func _expandFont(sh pr.Shorthand, tokens []Token) ([]namedTokens, error) {
	if systemFonts.Has(getSingleKeyword(tokens)) {
		return nil, &MalformedShorthand{Shorthand: sh, Token: tokens[0], Reason: "system fonts are not supported"}
	}
	var out []namedTokens
	// Values for font-style, font-variant and font-weight
	// can come in any order and are all optional.
	i := 0
prefix:
	for ; i < len(tokens) && i < 3; i++ {
		token := tokens[i]
		if getKeyword(token) == "normal" {
			// Just ignore "normal" keywords. Unspecified properties will get
			// their default value, which is "normal" for all three here.
			continue
		}
		single := []Token{token}
		var prop pr.KnownProp
		switch {
		case validators[pr.PFontStyle](single) != nil:
			prop = pr.PFontStyle
		case validators[pr.PFontVariant](single) != nil:
			prop = pr.PFontVariant
		case fontWeight(single) != nil:
			prop = pr.PFontWeight
		default:
			// We’re done with these three, continue with font-size
			break prefix
		}
		out = append(out, namedTokens{prop: prop, tokens: single})
	}

	// Then font-size is mandatory
	if i == len(tokens) {
		return nil, &MalformedShorthand{Shorthand: sh, Reason: "font-size is mandatory"}
	}
	out = append(out, namedTokens{prop: pr.PFontSize, tokens: tokens[i : i+1]})
	i++

	// Then line-height is optional, but font-family is not
	if i < len(tokens) && pa.IsLiteral(tokens[i], "/") {
		i++
		if i == len(tokens) {
			return nil, &MalformedShorthand{Shorthand: sh, Token: tokens[i-1], Reason: "expected a line-height after '/'"}
		}
		out = append(out, namedTokens{prop: pr.PLineHeight, tokens: tokens[i : i+1]})
		i++
	}
	if i == len(tokens) {
		return nil, &MalformedShorthand{Shorthand: sh, Reason: "font-family is mandatory"}
	}
	out = append(out, namedTokens{prop: pr.PFontFamily, tokens: tokens[i:]})
	return out, nil
}

// Expand the “cue“ and “pause“ shorthand properties : one value
// sets both longhands, two values set the `-before` and `-after` ones.
//
//	See http://www.w3.org/TR/CSS21/aural.html#propdef-cue
func expandBeforeAfter(sh pr.Shorthand, tokens []Token) (pr.Properties, error) {
	switch len(tokens) {
	case 1:
		tokens = []Token{tokens[0], tokens[0]}
	case 2:
	default:
		return nil, &MalformedShorthand{
			Shorthand: sh, Token: tokens[2],
			Reason: fmt.Sprintf("expected 1 or 2 components, got %d", len(tokens)),
		}
	}
	out := make(pr.Properties, 2)
	for index, longhand := range sh.Longhands() {
		value := validators[longhand](tokens[index : index+1])
		if value == nil {
			return nil, &MalformedShorthand{
				Shorthand: sh, Token: tokens[index],
				Reason: fmt.Sprintf("invalid value for %s", longhand),
			}
		}
		out[longhand] = value
	}
	return out, nil
}
