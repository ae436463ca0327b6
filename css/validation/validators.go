package validation

import (
	pa "github.com/benoitkugler/webstyle/css/parser"
	pr "github.com/benoitkugler/webstyle/css/properties"
	"github.com/benoitkugler/webstyle/utils"
)

// Validate property values.
// See http://www.w3.org/TR/CSS21/propidx.html

var (
	LENGTHUNITS    = utils.NewSet("ex", "em", "ch", "rem", "px", "pt", "pc", "in", "cm", "mm", "q")
	ANGLEUNITS     = utils.NewSet("deg", "rad", "grad", "turn")
	TIMEUNITS      = utils.NewSet("s", "ms")
	FREQUENCYUNITS = utils.NewSet("hz", "khz")

	borderStyles = []string{"none", "hidden", "dotted", "dashed", "solid", "double", "groove", "ridge", "inset", "outset"}

	// Page sizes, see http://www.w3.org/TR/css3-page/#page-size
	pageSizes = utils.NewSet("a5", "a4", "a3", "b5", "b4", "letter", "legal", "ledger")

	// canonical order of the text decorations
	textDecorations = []string{"underline", "overline", "line-through", "blink"}

	fontSizeKeywords = utils.NewSet("xx-small", "x-small", "small", "medium", "large", "x-large", "xx-large", "larger", "smaller")
)

// validator returns nil for invalid values.
// Keywords are returned lower cased.
type validator func(tokens []Token) pr.Value

// validators for longhand properties
var validators = [pr.NbProps]validator{
	pr.PBottom:        lengthPercOrAuto,
	pr.PCaptionSide:   keywords("top", "bottom"),
	pr.PClear:         keywords("none", "left", "right", "both"),
	pr.PClip:          clip,
	pr.PColor:         color,
	pr.PDirection:     keywords("ltr", "rtl"),
	pr.PDisplay:       display,
	pr.PEmptyCells:    keywords("show", "hide"),
	pr.PFloat:         keywords("left", "right", "none"),
	pr.PLeft:          lengthPercOrAuto,
	pr.PRight:         lengthPercOrAuto,
	pr.PLineHeight:    lineHeight,
	pr.PPosition:      keywords("static", "relative", "absolute", "fixed"),
	pr.PTableLayout:   keywords("auto", "fixed"),
	pr.PTop:           lengthPercOrAuto,
	pr.PUnicodeBidi:   keywords("normal", "embed", "bidi-override"),
	pr.PVerticalAlign: verticalAlign,
	pr.PVisibility:    keywords("visible", "hidden", "collapse"),
	pr.PZIndex:        zIndex,

	pr.PBackgroundColor:      otherColors,
	pr.PBackgroundImage:      imageOrNone,
	pr.PBackgroundRepeat:     keywords("repeat", "repeat-x", "repeat-y", "no-repeat"),
	pr.PBackgroundAttachment: keywords("scroll", "fixed"),
	pr.PBackgroundPosition:   backgroundPosition,

	pr.PBorderTopStyle:    borderStyle,
	pr.PBorderTopWidth:    borderWidth,
	pr.PBorderTopColor:    otherColors,
	pr.PBorderRightStyle:  borderStyle,
	pr.PBorderRightWidth:  borderWidth,
	pr.PBorderRightColor:  otherColors,
	pr.PBorderBottomStyle: borderStyle,
	pr.PBorderBottomWidth: borderWidth,
	pr.PBorderBottomColor: otherColors,
	pr.PBorderLeftStyle:   borderStyle,
	pr.PBorderLeftWidth:   borderWidth,
	pr.PBorderLeftColor:   otherColors,
	pr.PBorderCollapse:    keywords("collapse", "separate"),
	pr.PBorderSpacing:     borderSpacing,

	pr.PContent:          content,
	pr.PCounterIncrement: counters,
	pr.PCounterReset:     counters,
	pr.PQuotes:           quotes,

	pr.PFontFamily:  fontFamily,
	pr.PFontSize:    fontSize,
	pr.PFontStyle:   keywords("normal", "italic", "oblique"),
	pr.PFontVariant: keywords("normal", "small-caps"),
	pr.PFontWeight:  fontWeight,

	pr.PLetterSpacing:  spacing,
	pr.PTextAlign:      keywords("left", "right", "center", "justify", "start", "end"),
	pr.PTextDecoration: textDecoration,
	pr.PTextIndent:     lengthOrPercentage,
	pr.PTextTransform:  keywords("capitalize", "uppercase", "lowercase", "none"),
	pr.PWhiteSpace:     keywords("normal", "pre", "nowrap", "pre-wrap", "pre-line"),
	pr.PWordSpacing:    spacing,

	pr.PListStyleImage:    imageOrNone,
	pr.PListStylePosition: keywords("inside", "outside"),
	pr.PListStyleType:     listStyleType,

	pr.PMarginTop:    lengthPercOrAuto,
	pr.PMarginRight:  lengthPercOrAuto,
	pr.PMarginBottom: lengthPercOrAuto,
	pr.PMarginLeft:   lengthPercOrAuto,

	pr.PPaddingTop:    padding,
	pr.PPaddingRight:  padding,
	pr.PPaddingBottom: padding,
	pr.PPaddingLeft:   padding,

	pr.PHeight:    widthHeight,
	pr.PMaxHeight: maxWidthHeight,
	pr.PMaxWidth:  maxWidthHeight,
	pr.PMinHeight: padding,
	pr.PMinWidth:  padding,
	pr.PWidth:     widthHeight,
	pr.POverflow:  keywords("visible", "hidden", "scroll", "auto"),

	pr.POrphans:         orphansWidows,
	pr.PWidows:          orphansWidows,
	pr.PPageBreakAfter:  keywords("auto", "always", "avoid", "left", "right"),
	pr.PPageBreakBefore: keywords("auto", "always", "avoid", "left", "right"),
	pr.PPageBreakInside: keywords("auto", "avoid"),
	pr.PSize:            size,

	pr.PAzimuth:          azimuth,
	pr.PCueAfter:         imageOrNone,
	pr.PCueBefore:        imageOrNone,
	pr.PCursor:           cursor,
	pr.PElevation:        elevation,
	pr.PPauseAfter:       pause,
	pr.PPauseBefore:      pause,
	pr.PPitch:            pitch,
	pr.PPitchRange:       number0To100,
	pr.PPlayDuring:       playDuring,
	pr.PRichness:         number0To100,
	pr.PSpeak:            keywords("normal", "none", "spell-out"),
	pr.PSpeakHeader:      keywords("once", "always"),
	pr.PSpeakNumeral:     keywords("digits", "continuous"),
	pr.PSpeakPunctuation: keywords("code", "none"),
	pr.PSpeechRate:       speechRate,
	pr.PStress:           number0To100,
	pr.PVoiceFamily:      fontFamily,
	pr.PVolume:           volume,
	pr.POutlineStyle:     outlineStyle,
	pr.POutlineWidth:     borderWidth,
	pr.POutlineColor:     outlineColor,
}

func init() {
	for p := pr.KnownProp(1); p < pr.NbProps; p++ {
		if validators[p] == nil {
			panic("missing validator for " + p.String())
		}
	}
}

// If `token` is [pa.Ident], return its lower name.
// Otherwise return empty string.
func getKeyword(token Token) string { return pa.Keyword(token) }

// If `tokens` is a 1-element list of [pa.Ident], return its name.
// Otherwise return empty string.
func getSingleKeyword(tokens []Token) string { return pa.SingleKeyword(tokens) }

func ident(keyword string) pr.Value { return pr.Value{pa.Ident{Value: keyword}} }

// keywords returns a validator accepting one of the given keywords.
func keywords(values ...string) validator {
	set := utils.NewSet(values...)
	return func(tokens []Token) pr.Value {
		if keyword := getSingleKeyword(tokens); set.Has(keyword) {
			return ident(keyword)
		}
		return nil
	}
}

// isLength returns true for a length, the number 0,
// or a percentage if [percentage] is true.
func isLength(token Token, negative, percentage bool) bool {
	switch token := token.(type) {
	case pa.Percentage:
		return percentage && (negative || token.Value >= 0)
	case pa.Dimension:
		return LENGTHUNITS.Has(token.Unit) && (negative || token.Value >= 0)
	case pa.Number:
		return token.Value == 0
	}
	return false
}

func isDimension(token Token, units utils.Set, negative bool) bool {
	dim, ok := token.(pa.Dimension)
	return ok && units.Has(dim.Unit) && (negative || dim.Value >= 0)
}

func isAngle(token Token) bool { return isDimension(token, ANGLEUNITS, true) }

func isInteger(token Token) (int, bool) {
	if number, ok := token.(pa.Number); ok && number.IsInteger {
		return int(number.Value), true
	}
	return 0, false
}

// singleToken wraps a validator for one token.
func singleToken(tokens []Token, accept func(Token) bool) pr.Value {
	if len(tokens) == 1 && accept(tokens[0]) {
		return pr.Value{tokens[0]}
	}
	return nil
}

// @validator()
// “color“ property validation.
func color(tokens []Token) pr.Value {
	return otherColors(tokens)
}

// @validator("background-color")
// @validator("border-*-color")
// @singleToken
func otherColors(tokens []Token) pr.Value {
	if len(tokens) != 1 {
		return nil
	}
	switch c := pa.ParseColor(tokens[0]); c.Type {
	case pa.ColorCurrentColor:
		return ident("currentColor")
	case pa.ColorRGBA:
		return pr.Value{c}
	}
	return nil
}

// @validator()
// @singleToken
func outlineColor(tokens []Token) pr.Value {
	if getSingleKeyword(tokens) == "invert" {
		return ident("invert")
	}
	return otherColors(tokens)
}

// @validator("border-*-style")
// @singleKeyword
func borderStyle(tokens []Token) pr.Value {
	keyword := getSingleKeyword(tokens)
	if utils.IsIn(borderStyles, keyword) {
		return ident(keyword)
	}
	return nil
}

// @validator()
// @singleKeyword
func outlineStyle(tokens []Token) pr.Value {
	if getSingleKeyword(tokens) == "hidden" {
		return nil
	}
	return borderStyle(tokens)
}

// @validator("border-*-width")
// @validator("outline-width")
// @singleToken
func borderWidth(tokens []Token) pr.Value {
	if len(tokens) != 1 {
		return nil
	}
	if isLength(tokens[0], false, false) {
		return pr.Value{tokens[0]}
	}
	switch keyword := getKeyword(tokens[0]); keyword {
	case "thin", "medium", "thick":
		return ident(keyword)
	}
	return nil
}

// @validator()
// one or two non negative lengths
func borderSpacing(tokens []Token) pr.Value {
	if len(tokens) != 1 && len(tokens) != 2 {
		return nil
	}
	for _, token := range tokens {
		if !isLength(token, false, false) {
			return nil
		}
	}
	return pr.Value(tokens)
}

// @validator("margin-*")
// @validator("top", "right", "bottom", "left")
// @singleToken
func lengthPercOrAuto(tokens []Token) pr.Value {
	if getSingleKeyword(tokens) == "auto" {
		return ident("auto")
	}
	return lengthOrPercentage(tokens)
}

// @validator("text-indent")
// @singleToken
func lengthOrPercentage(tokens []Token) pr.Value {
	return singleToken(tokens, func(t Token) bool { return isLength(t, true, true) })
}

// @validator("padding-*")
// @validator("min-width", "min-height")
// @singleToken
func padding(tokens []Token) pr.Value {
	return singleToken(tokens, func(t Token) bool { return isLength(t, false, true) })
}

// @validator("width", "height")
// @singleToken
func widthHeight(tokens []Token) pr.Value {
	if getSingleKeyword(tokens) == "auto" {
		return ident("auto")
	}
	return padding(tokens)
}

// @validator("max-width", "max-height")
// @singleToken
func maxWidthHeight(tokens []Token) pr.Value {
	if getSingleKeyword(tokens) == "none" {
		return ident("none")
	}
	return padding(tokens)
}

// @validator("letter-spacing", "word-spacing")
// @singleToken
func spacing(tokens []Token) pr.Value {
	if getSingleKeyword(tokens) == "normal" {
		return ident("normal")
	}
	return singleToken(tokens, func(t Token) bool { return isLength(t, true, false) })
}

// @validator()
// @singleToken
func lineHeight(tokens []Token) pr.Value {
	if getSingleKeyword(tokens) == "normal" {
		return ident("normal")
	}
	return singleToken(tokens, func(t Token) bool {
		if number, ok := t.(pa.Number); ok {
			return number.Value >= 0
		}
		return isLength(t, false, true)
	})
}

// @validator()
// @singleToken
func verticalAlign(tokens []Token) pr.Value {
	switch keyword := getSingleKeyword(tokens); keyword {
	case "baseline", "sub", "super", "top", "text-top", "middle", "bottom", "text-bottom":
		return ident(keyword)
	}
	return lengthOrPercentage(tokens)
}

// @validator()
// @singleToken
func zIndex(tokens []Token) pr.Value {
	if getSingleKeyword(tokens) == "auto" {
		return ident("auto")
	}
	return singleToken(tokens, func(t Token) bool { _, ok := isInteger(t); return ok })
}

// @validator("orphans", "widows")
// @singleToken
func orphansWidows(tokens []Token) pr.Value {
	return singleToken(tokens, func(t Token) bool { v, ok := isInteger(t); return ok && v >= 1 })
}

// @validator()
// @singleKeyword
func display(tokens []Token) pr.Value {
	switch keyword := getSingleKeyword(tokens); keyword {
	case "inline", "block", "list-item", "inline-block", "table", "inline-table",
		"table-row-group", "table-header-group", "table-footer-group", "table-row",
		"table-column-group", "table-column", "table-cell", "table-caption", "none":
		return ident(keyword)
	}
	return nil
}

// @validator()
// Validation for the “clip“ property : `auto` or `rect(<top>, <right>, <bottom>, <left>)`,
// with commas optional.
func clip(tokens []Token) pr.Value {
	if getSingleKeyword(tokens) == "auto" {
		return ident("auto")
	}
	if len(tokens) != 1 {
		return nil
	}
	fn, ok := tokens[0].(pa.Function)
	if !ok || fn.Name != "rect" {
		return nil
	}
	var args []Token
	for _, group := range pa.SplitOnComma(fn.Arguments) {
		args = append(args, group...)
	}
	if len(args) != 4 {
		return nil
	}
	out := pa.Function{Name: "rect"}
	for i, arg := range args {
		if getKeyword(arg) == "auto" {
			arg = pa.Ident{Value: "auto"}
		} else if !isLength(arg, true, false) {
			return nil
		}
		if i > 0 {
			out.Arguments = append(out.Arguments, pa.Literal{Value: ","})
		}
		out.Arguments = append(out.Arguments, arg)
	}
	return pr.Value{out}
}

// @validator("background-image", "list-style-image", "cue-before", "cue-after")
// @singleToken
func imageOrNone(tokens []Token) pr.Value {
	if getSingleKeyword(tokens) == "none" {
		return ident("none")
	}
	return singleToken(tokens, func(t Token) bool { _, ok := t.(pa.URL); return ok })
}

var (
	horizontalPositions = utils.NewSet("left", "center", "right")
	verticalPositions   = utils.NewSet("top", "center", "bottom")
)

// @validator()
// “background-position“ property validation : one or two
// components, lengths or keywords.
func backgroundPosition(tokens []Token) pr.Value {
	if len(tokens) != 1 && len(tokens) != 2 {
		return nil
	}
	out := make(pr.Value, len(tokens))
	for i, token := range tokens {
		if isLength(token, true, true) {
			out[i] = token
		} else if keyword := getKeyword(token); horizontalPositions.Has(keyword) || verticalPositions.Has(keyword) {
			out[i] = pa.Ident{Value: keyword}
		} else {
			return nil
		}
	}
	if len(out) == 1 {
		return out
	}
	k1, k2 := getKeyword(out[0]), getKeyword(out[1])
	switch {
	case k1 != "" && k2 != "":
		// keywords may come in any order, but not twice the same axis
		if (horizontalPositions.Has(k1) && verticalPositions.Has(k2)) ||
			(verticalPositions.Has(k1) && horizontalPositions.Has(k2)) {
			return out
		}
	case k1 != "": // second is a length, first is horizontal
		if horizontalPositions.Has(k1) {
			return out
		}
	case k2 != "": // first is a length, second is vertical
		if verticalPositions.Has(k2) {
			return out
		}
	default:
		return out
	}
	return nil
}

// @validator()
// “content“ property validation.
func content(tokens []Token) pr.Value {
	switch keyword := getSingleKeyword(tokens); keyword {
	case "normal", "none":
		return ident(keyword)
	}
	if len(tokens) == 0 {
		return nil
	}
	out := make(pr.Value, 0, len(tokens))
	for _, token := range tokens {
		switch token := token.(type) {
		case pa.String, pa.URL:
			out = append(out, token)
		case pa.Ident:
			switch keyword := getKeyword(token); keyword {
			case "open-quote", "close-quote", "no-open-quote", "no-close-quote":
				out = append(out, pa.Ident{Value: keyword})
			default:
				return nil
			}
		case pa.Function:
			if !validContentFunction(token) {
				return nil
			}
			out = append(out, token)
		default:
			return nil
		}
	}
	return out
}

// counter(name[, style]), counters(name, separator[, style]) or attr(name)
func validContentFunction(fn pa.Function) bool {
	args := pa.SplitOnComma(fn.Arguments)
	isIdent := func(group []Token) bool {
		if len(group) != 1 {
			return false
		}
		_, ok := group[0].(pa.Ident)
		return ok
	}
	isString := func(group []Token) bool {
		if len(group) != 1 {
			return false
		}
		_, ok := group[0].(pa.String)
		return ok
	}
	isStyle := func(group []Token) bool {
		return listStyleType(group) != nil
	}
	switch fn.Name {
	case "attr":
		return len(args) == 1 && isIdent(args[0])
	case "counter":
		switch len(args) {
		case 1:
			return isIdent(args[0])
		case 2:
			return isIdent(args[0]) && isStyle(args[1])
		}
	case "counters":
		switch len(args) {
		case 2:
			return isIdent(args[0]) && isString(args[1])
		case 3:
			return isIdent(args[0]) && isString(args[1]) && isStyle(args[2])
		}
	}
	return false
}

// @validator("counter-increment", "counter-reset")
// `none` or a list of counter names, each one optionally followed
// by an integer.
func counters(tokens []Token) pr.Value {
	if getSingleKeyword(tokens) == "none" {
		return ident("none")
	}
	if len(tokens) == 0 {
		return nil
	}
	for i, token := range tokens {
		switch token.(type) {
		case pa.Ident:
			switch getKeyword(token) {
			case "none", "initial", "inherit":
				return nil
			}
		case pa.Number:
			if _, ok := isInteger(token); !ok || i == 0 {
				return nil
			}
			if _, prevIsName := tokens[i-1].(pa.Ident); !prevIsName {
				return nil
			}
		default:
			return nil
		}
	}
	return pr.Value(tokens)
}

// @validator()
// `none` or pairs of strings
func quotes(tokens []Token) pr.Value {
	if getSingleKeyword(tokens) == "none" {
		return ident("none")
	}
	if len(tokens) == 0 || len(tokens)%2 != 0 {
		return nil
	}
	for _, token := range tokens {
		if _, ok := token.(pa.String); !ok {
			return nil
		}
	}
	return pr.Value(tokens)
}

// @validator("font-family", "voice-family")
// Comma separated list of strings or sequences of identifiers.
func fontFamily(tokens []Token) pr.Value {
	if len(tokens) == 0 {
		return nil
	}
	for _, part := range pa.SplitOnComma(tokens) {
		switch {
		case len(part) == 1:
			switch part[0].(type) {
			case pa.String, pa.Ident:
			default:
				return nil
			}
		case len(part) > 1:
			for _, token := range part {
				if _, ok := token.(pa.Ident); !ok {
					return nil
				}
			}
		default:
			return nil
		}
	}
	return pr.Value(tokens)
}

// @validator()
// @singleToken
func fontSize(tokens []Token) pr.Value {
	if keyword := getSingleKeyword(tokens); fontSizeKeywords.Has(keyword) {
		return ident(keyword)
	}
	return padding(tokens)
}

// @validator()
// @singleToken
func fontWeight(tokens []Token) pr.Value {
	switch keyword := getSingleKeyword(tokens); keyword {
	case "normal", "bold", "bolder", "lighter":
		return ident(keyword)
	}
	return singleToken(tokens, func(t Token) bool {
		v, ok := isInteger(t)
		return ok && v >= 100 && v <= 900 && v%100 == 0
	})
}

// @validator()
// `none` or any combination of the decorations, each at most once.
func textDecoration(tokens []Token) pr.Value {
	if getSingleKeyword(tokens) == "none" {
		return ident("none")
	}
	if len(tokens) == 0 {
		return nil
	}
	seen := utils.Set{}
	for _, token := range tokens {
		keyword := getKeyword(token)
		if !utils.IsIn(textDecorations, keyword) || seen.Has(keyword) {
			return nil
		}
		seen.Add(keyword)
	}
	var out pr.Value
	for _, decoration := range textDecorations {
		if seen.Has(decoration) {
			out = append(out, pa.Ident{Value: decoration})
		}
	}
	return out
}

// @validator()
// @singleKeyword
func listStyleType(tokens []Token) pr.Value {
	switch keyword := getSingleKeyword(tokens); keyword {
	case "disc", "circle", "square", "decimal", "decimal-leading-zero",
		"lower-roman", "upper-roman", "lower-greek", "lower-latin", "upper-latin",
		"armenian", "georgian", "lower-alpha", "upper-alpha", "none":
		return ident(keyword)
	}
	return nil
}

// @validator()
// “size“ property validation.
// See http://www.w3.org/TR/css3-page/#page-size-prop
func size(tokens []Token) pr.Value {
	switch len(tokens) {
	case 1:
		switch keyword := getKeyword(tokens[0]); keyword {
		case "auto", "portrait", "landscape":
			return ident(keyword)
		default:
			if pageSizes.Has(keyword) {
				return ident(keyword)
			}
		}
		if isLength(tokens[0], false, false) {
			return pr.Value(tokens)
		}
	case 2:
		if isLength(tokens[0], false, false) && isLength(tokens[1], false, false) {
			return pr.Value(tokens)
		}
		k1, k2 := getKeyword(tokens[0]), getKeyword(tokens[1])
		isOrientation := func(k string) bool { return k == "portrait" || k == "landscape" }
		if pageSizes.Has(k1) && isOrientation(k2) {
			return pr.Value{pa.Ident{Value: k1}, pa.Ident{Value: k2}}
		}
		if isOrientation(k1) && pageSizes.Has(k2) {
			return pr.Value{pa.Ident{Value: k2}, pa.Ident{Value: k1}}
		}
	}
	return nil
}

var azimuthPositions = utils.NewSet("left-side", "far-left", "left", "center-left", "center",
	"center-right", "right", "far-right", "right-side")

// @validator()
// <angle> | [ <position> || behind ] | leftwards | rightwards
func azimuth(tokens []Token) pr.Value {
	if out := singleToken(tokens, isAngle); out != nil {
		return out
	}
	switch len(tokens) {
	case 1:
		switch keyword := getKeyword(tokens[0]); keyword {
		case "leftwards", "rightwards", "behind":
			return ident(keyword)
		default:
			if azimuthPositions.Has(keyword) {
				return ident(keyword)
			}
		}
	case 2:
		k1, k2 := getKeyword(tokens[0]), getKeyword(tokens[1])
		if azimuthPositions.Has(k1) && k2 == "behind" || k1 == "behind" && azimuthPositions.Has(k2) {
			return pr.Value{pa.Ident{Value: k1}, pa.Ident{Value: k2}}
		}
	}
	return nil
}

// @validator()
// @singleToken
func elevation(tokens []Token) pr.Value {
	switch keyword := getSingleKeyword(tokens); keyword {
	case "below", "level", "above", "higher", "lower":
		return ident(keyword)
	}
	return singleToken(tokens, isAngle)
}

// @validator("pause-before", "pause-after")
// @singleToken
func pause(tokens []Token) pr.Value {
	return singleToken(tokens, func(t Token) bool {
		if p, ok := t.(pa.Percentage); ok {
			return p.Value >= 0
		}
		if n, ok := t.(pa.Number); ok {
			return n.Value == 0
		}
		return isDimension(t, TIMEUNITS, false)
	})
}

// @validator()
// @singleToken
func pitch(tokens []Token) pr.Value {
	switch keyword := getSingleKeyword(tokens); keyword {
	case "x-low", "low", "medium", "high", "x-high":
		return ident(keyword)
	}
	return singleToken(tokens, func(t Token) bool { return isDimension(t, FREQUENCYUNITS, false) })
}

// @validator("pitch-range", "richness", "stress")
// @singleToken
func number0To100(tokens []Token) pr.Value {
	return singleToken(tokens, func(t Token) bool {
		n, ok := t.(pa.Number)
		return ok && n.Value >= 0 && n.Value <= 100
	})
}

// @validator()
// auto | none | <uri> [ mix || repeat ]?
func playDuring(tokens []Token) pr.Value {
	switch keyword := getSingleKeyword(tokens); keyword {
	case "auto", "none":
		return ident(keyword)
	}
	if len(tokens) == 0 || len(tokens) > 3 {
		return nil
	}
	if _, ok := tokens[0].(pa.URL); !ok {
		return nil
	}
	out := pr.Value{tokens[0]}
	seen := utils.Set{}
	for _, token := range tokens[1:] {
		keyword := getKeyword(token)
		if (keyword != "mix" && keyword != "repeat") || seen.Has(keyword) {
			return nil
		}
		seen.Add(keyword)
		out = append(out, pa.Ident{Value: keyword})
	}
	return out
}

// @validator()
// @singleToken
func speechRate(tokens []Token) pr.Value {
	switch keyword := getSingleKeyword(tokens); keyword {
	case "x-slow", "slow", "medium", "fast", "x-fast", "faster", "slower":
		return ident(keyword)
	}
	return singleToken(tokens, func(t Token) bool {
		n, ok := t.(pa.Number)
		return ok && n.Value >= 0
	})
}

// @validator()
// @singleToken
func volume(tokens []Token) pr.Value {
	switch keyword := getSingleKeyword(tokens); keyword {
	case "silent", "x-soft", "soft", "medium", "loud", "x-loud":
		return ident(keyword)
	}
	return singleToken(tokens, func(t Token) bool {
		switch t := t.(type) {
		case pa.Number:
			return t.Value >= 0 && t.Value <= 100
		case pa.Percentage:
			return true
		}
		return false
	})
}

// @validator()
// [ <uri> , ]* <keyword>
func cursor(tokens []Token) pr.Value {
	parts := pa.SplitOnComma(tokens)
	var out pr.Value
	for i, part := range parts {
		if len(part) != 1 {
			return nil
		}
		if i < len(parts)-1 {
			if _, ok := part[0].(pa.URL); !ok {
				return nil
			}
			out = append(out, part[0], pa.Literal{Value: ","})
			continue
		}
		switch keyword := getKeyword(part[0]); keyword {
		case "auto", "crosshair", "default", "pointer", "move", "e-resize", "ne-resize",
			"nw-resize", "n-resize", "se-resize", "sw-resize", "s-resize", "w-resize",
			"text", "wait", "help", "progress":
			out = append(out, pa.Ident{Value: keyword})
		default:
			return nil
		}
	}
	return out
}
