package tree

import (
	"fmt"

	pa "github.com/benoitkugler/webstyle/css/parser"
	pr "github.com/benoitkugler/webstyle/css/properties"
	"github.com/benoitkugler/webstyle/utils"
)

// Convert *specified* property values (the result of the cascade and
// inheritance) into *computed* values (that are inherited).

type Fl = utils.Fl

const (
	// initial font-size, in pixels
	mediumFontSize Fl = 16

	// ratio between the x-height (and the advance of "0") and the font size.
	// Fonts are not loaded, so the usual approximation is used.
	exRatio Fl = 0.5
)

var (
	// These are unspecified, other than 'thin' <='medium' <= 'thick'.
	// Values are in pixels.
	borderWidthKeywords = map[string]Fl{
		"thin":   1,
		"medium": 3,
		"thick":  5,
	}

	// http://www.w3.org/TR/CSS21/fonts.html#propdef-font-size
	// Values are in pixels.
	fontSizeKeywords = map[string]Fl{
		"xx-small": 3. / 5 * mediumFontSize,
		"x-small":  3. / 4 * mediumFontSize,
		"small":    8. / 9 * mediumFontSize,
		"medium":   mediumFontSize,
		"large":    6. / 5 * mediumFontSize,
		"x-large":  3. / 2 * mediumFontSize,
		"xx-large": 2 * mediumFontSize,
	}

	fontSizeKeywordsOrder = [...]string{"xx-small", "x-small", "small", "medium", "large", "x-large", "xx-large"}

	// increasing values of [fontSizeKeywords]
	keywordsValues []Fl

	// http://www.w3.org/TR/CSS21/fonts.html#propdef-font-weight
	fontWeightRelative = struct {
		bolder, lighter map[int]int
	}{
		bolder: map[int]int{
			100: 400,
			200: 400,
			300: 400,
			400: 700,
			500: 700,
			600: 900,
			700: 900,
			800: 900,
			900: 900,
		},
		lighter: map[int]int{
			100: 100,
			200: 100,
			300: 100,
			400: 100,
			500: 100,
			600: 400,
			700: 400,
			800: 700,
			900: 700,
		},
	}

	// Conversion factors to pixels, at 96 dpi.
	lengthsToPixels = map[string]Fl{
		"px": 1,
		"pt": 1. / 0.75,
		"pc": 16,          // lengthsToPixels["pt"] * 12
		"in": 96,          // lengthsToPixels["pt"] * 72
		"cm": 96. / 2.54,  // lengthsToPixels["in"] / 2.54
		"mm": 96. / 25.4,  // lengthsToPixels["in"] / 25.4
		"q":  96. / 101.6, // lengthsToPixels["mm"] / 4
	}

	// Page sizes, in pixels, in "portrait" orientation.
	// See http://www.w3.org/TR/css3-page/#page-size
	pageSizes = map[string][2]Fl{
		"a5":     {148 * 96 / 25.4, 210 * 96 / 25.4},
		"a4":     {210 * 96 / 25.4, 297 * 96 / 25.4},
		"a3":     {297 * 96 / 25.4, 420 * 96 / 25.4},
		"b5":     {176 * 96 / 25.4, 250 * 96 / 25.4},
		"b4":     {250 * 96 / 25.4, 353 * 96 / 25.4},
		"letter": {8.5 * 96, 11 * 96},
		"legal":  {8.5 * 96, 14 * 96},
		"ledger": {11 * 96, 17 * 96},
	}

	// canonical order of the decorations
	textDecorationsOrder = [...]string{"underline", "overline", "line-through", "blink"}

	zeroPixels = pa.Dimension{Value: 0, Unit: "px"}
)

// computerFunc returns the computed value of a specified value, which is
// not `inherit` nor `initial`. The value must not be mutated.
type computerFunc = func(ctx *Context, prop pr.KnownProp, value pr.Value) (pr.Value, error)

// Maps property names to functions returning the computed values.
// Properties without entry are computed as specified.
var computerFunctions = [pr.NbProps]computerFunc{
	pr.PTop:    lengths,
	pr.PRight:  lengths,
	pr.PBottom: lengths,
	pr.PLeft:   lengths,

	pr.PMarginTop:    lengths,
	pr.PMarginRight:  lengths,
	pr.PMarginBottom: lengths,
	pr.PMarginLeft:   lengths,

	pr.PPaddingTop:    lengths,
	pr.PPaddingRight:  lengths,
	pr.PPaddingBottom: lengths,
	pr.PPaddingLeft:   lengths,

	pr.PHeight:    lengths,
	pr.PWidth:     lengths,
	pr.PMinWidth:  lengths,
	pr.PMinHeight: lengths,
	pr.PMaxWidth:  lengths,
	pr.PMaxHeight: lengths,

	pr.PTextIndent:         lengths,
	pr.PBorderSpacing:      lengths,
	pr.PClip:               lengths,
	pr.PBackgroundPosition: lengths,
	pr.PLetterSpacing:      letterSpacing,
	pr.PWordSpacing:        wordSpacing,

	pr.PBorderTopWidth:    borderWidth,
	pr.PBorderRightWidth:  borderWidth,
	pr.PBorderBottomWidth: borderWidth,
	pr.PBorderLeftWidth:   borderWidth,
	pr.POutlineWidth:      borderWidth,

	pr.PColor:             color,
	pr.PBackgroundColor:   otherColor,
	pr.PBorderTopColor:    otherColor,
	pr.PBorderRightColor:  otherColor,
	pr.PBorderBottomColor: otherColor,
	pr.PBorderLeftColor:   otherColor,
	pr.POutlineColor:      otherColor,

	pr.PFontSize:       fontSize,
	pr.PFontWeight:     fontWeight,
	pr.PLineHeight:     lineHeight,
	pr.PVerticalAlign:  verticalAlign,
	pr.PTextDecoration: textDecoration,
	pr.PSize:           size,
}

func init() {
	if borderWidthKeywords[pr.InitialValue(pr.PBorderTopWidth).Keyword()] != borderWidthKeywords["medium"] {
		panic("border-top-width and medium should be the same !")
	}

	// In "portrait" orientation.
	for _, pageSize := range pageSizes {
		if pageSize[0] > pageSize[1] {
			panic("page size should be in portrait orientation")
		}
	}

	keywordsValues = make([]Fl, len(fontSizeKeywordsOrder))
	for i, k := range fontSizeKeywordsOrder {
		keywordsValues[i] = fontSizeKeywords[k]
	}
}

func px(v Fl) pa.Token { return pa.Dimension{Value: v, Unit: "px"} }

// length converts a length to pixels, using [fontSize] for
// the font relative units. Percentages and keywords are returned unchanged.
func (ctx *Context) length(token pa.Token, fontSize Fl) pa.Token {
	switch token := token.(type) {
	case pa.Number:
		if token.Value == 0 {
			return zeroPixels
		}
	case pa.Dimension:
		if token.Value == 0 {
			return zeroPixels
		}
		if factor, ok := lengthsToPixels[token.Unit]; ok {
			// Convert absolute lengths to pixels
			return px(token.Value * factor)
		}
		switch token.Unit {
		case "em":
			return px(token.Value * fontSize)
		case "ex", "ch":
			return px(token.Value * fontSize * exRatio)
		case "rem":
			return px(token.Value * ctx.rootFontSize())
		}
	}
	return token
}

// lengths applies [length] to each token, including
// function arguments.
func (ctx *Context) lengths(value []pa.Token, fontSize Fl) pr.Value {
	out := make(pr.Value, len(value))
	for i, token := range value {
		if fn, ok := token.(pa.Function); ok {
			fn.Arguments = ctx.lengths(fn.Arguments, fontSize)
			out[i] = fn
			continue
		}
		out[i] = ctx.length(token, fontSize)
	}
	return out
}

// Compute the lists of lengths that can be percentages.
func lengths(ctx *Context, _ pr.KnownProp, value pr.Value) (pr.Value, error) {
	return ctx.lengths(value, ctx.fontSize()), nil
}

func letterSpacing(ctx *Context, name pr.KnownProp, value pr.Value) (pr.Value, error) {
	if value.Keyword() == "normal" {
		return value, nil
	}
	return lengths(ctx, name, value)
}

// Compute the “word-spacing“ property.
func wordSpacing(ctx *Context, name pr.KnownProp, value pr.Value) (pr.Value, error) {
	if value.Keyword() == "normal" {
		return pr.Value{zeroPixels}, nil
	}
	return lengths(ctx, name, value)
}

// Compute the “border-*-width“ and “outline-width“ properties.
func borderWidth(ctx *Context, name pr.KnownProp, value pr.Value) (pr.Value, error) {
	// style prop is just before width
	switch ctx.Self.Get(name - 1).Keyword() {
	case "none", "hidden":
		return pr.Value{zeroPixels}, nil
	}
	if bw, in := borderWidthKeywords[value.Keyword()]; in {
		return pr.Value{px(bw)}, nil
	}
	return lengths(ctx, name, value)
}

// Compute the “color“ property : `currentColor` is the same as `inherit`.
func color(ctx *Context, _ pr.KnownProp, value pr.Value) (pr.Value, error) {
	if value.Keyword() == "currentcolor" {
		return ctx.parentValue(pr.PColor), nil
	}
	return value, nil
}

// Compute the color properties other than “color“, replacing
// `currentColor` by the color of the element.
func otherColor(ctx *Context, name pr.KnownProp, value pr.Value) (pr.Value, error) {
	if value.Keyword() == "currentcolor" {
		color := ctx.Self.ResolveColor(pr.PColor)
		if color.IsNone() {
			return nil, &UnresolvableRelativeValue{Property: name, Value: value, Reason: "missing color"}
		}
		return pr.Value{color}, nil
	}
	return value, nil
}

// Compute the “font-size“ property.
func fontSize(ctx *Context, _ pr.KnownProp, value pr.Value) (pr.Value, error) {
	keyword := value.Keyword()
	if fs, in := fontSizeKeywords[keyword]; in {
		return pr.Value{px(fs)}, nil
	}

	parentFontSize := ctx.Parent.FontSize()

	switch keyword {
	case "larger":
		for _, keywordValue := range keywordsValues {
			if keywordValue > parentFontSize {
				return pr.Value{px(keywordValue)}, nil
			}
		}
		return pr.Value{px(parentFontSize * 1.2)}, nil
	case "smaller":
		for i := len(keywordsValues) - 1; i >= 0; i -= 1 {
			if keywordsValues[i] < parentFontSize {
				return pr.Value{px(keywordsValues[i])}, nil
			}
		}
		return pr.Value{px(parentFontSize * 0.8)}, nil
	}

	if len(value) != 1 {
		return nil, &UnresolvableRelativeValue{Property: pr.PFontSize, Value: value, Reason: "expected one token"}
	}
	if perc, ok := value[0].(pa.Percentage); ok {
		return pr.Value{px(perc.Value * parentFontSize / 100.)}, nil
	}
	return pr.Value{ctx.length(value[0], parentFontSize)}, nil
}

// numericWeight returns the weight of a computed font-weight value.
func numericWeight(value pr.Value) (int, bool) {
	switch value.Keyword() {
	case "normal":
		return 400, true
	case "bold":
		return 700, true
	}
	if len(value) == 1 {
		if n, ok := value[0].(pa.Number); ok && n.IsInteger {
			return int(n.Value), true
		}
	}
	return 0, false
}

// Compute the “font-weight“ property.
func fontWeight(ctx *Context, _ pr.KnownProp, value pr.Value) (pr.Value, error) {
	var table map[int]int
	switch value.Keyword() {
	case "normal":
		return pr.Value{pa.Number{Value: 400, IsInteger: true}}, nil
	case "bold":
		return pr.Value{pa.Number{Value: 700, IsInteger: true}}, nil
	case "bolder":
		table = fontWeightRelative.bolder
	case "lighter":
		table = fontWeightRelative.lighter
	default:
		return value, nil
	}
	parentValue := ctx.parentValue(pr.PFontWeight)
	parentWeight, ok := numericWeight(parentValue)
	if !ok {
		return nil, &UnresolvableRelativeValue{
			Property: pr.PFontWeight, Value: value,
			Reason: fmt.Sprintf("parent font-weight `%s` is not numeric", parentValue),
		}
	}
	out, ok := table[parentWeight]
	if !ok {
		return nil, &UnresolvableRelativeValue{
			Property: pr.PFontWeight, Value: value,
			Reason: fmt.Sprintf("unexpected parent font-weight %d", parentWeight),
		}
	}
	return pr.Value{pa.Number{Value: Fl(out), IsInteger: true}}, nil
}

// Compute the “line-height“ property.
func lineHeight(ctx *Context, name pr.KnownProp, value pr.Value) (pr.Value, error) {
	if value.Keyword() == "normal" || len(value) != 1 {
		return value, nil
	}
	switch token := value[0].(type) {
	case pa.Number:
		return value, nil
	case pa.Percentage:
		return pr.Value{px(token.Value / 100. * ctx.fontSize())}, nil
	default:
		return lengths(ctx, name, value)
	}
}

// Compute the “vertical-align“ property.
func verticalAlign(ctx *Context, name pr.KnownProp, value pr.Value) (pr.Value, error) {
	// Use +/- half an em for super and sub, same as Pango.
	// (See the SUPERSUBRISE constant in pango-markup.c)
	switch value.Keyword() {
	case "baseline", "middle", "text-top", "text-bottom", "top", "bottom":
		return value, nil
	case "super":
		return pr.Value{px(ctx.fontSize() * 0.5)}, nil
	case "sub":
		return pr.Value{px(ctx.fontSize() * -0.5)}, nil
	}
	if len(value) != 1 {
		return value, nil
	}
	perc, ok := value[0].(pa.Percentage)
	if !ok {
		return lengths(ctx, name, value)
	}
	// percentages refer to the line-height of the element itself
	lh := ctx.Self.Get(pr.PLineHeight)
	var height Fl
	if len(lh) == 1 {
		switch token := lh[0].(type) {
		case pa.Number:
			height = token.Value * ctx.fontSize()
		case pa.Dimension:
			height = token.Value // computed, so in pixels
		default:
			return nil, &UnresolvableRelativeValue{
				Property: name, Value: value,
				Reason: fmt.Sprintf("percentage of a `%s` line-height", lh),
			}
		}
	} else {
		return nil, &UnresolvableRelativeValue{
			Property: name, Value: value,
			Reason: "missing line-height",
		}
	}
	return pr.Value{px(height * perc.Value / 100)}, nil
}

// Compute the “text-decoration“ property : the decorations
// of the ancestors are always kept.
func textDecoration(ctx *Context, _ pr.KnownProp, value pr.Value) (pr.Value, error) {
	parentValue := ctx.parentValue(pr.PTextDecoration)
	switch value.Keyword() {
	case "inherit":
		return parentValue, nil
	case "initial", "none":
		value = nil
	}
	decorations := utils.NewSet()
	for _, token := range parentValue {
		decorations.Add(pa.Keyword(token))
	}
	for _, token := range value {
		decorations.Add(pa.Keyword(token))
	}
	var out pr.Value
	for _, decoration := range textDecorationsOrder {
		if decorations.Has(decoration) {
			out = append(out, pa.Ident{Value: decoration})
		}
	}
	if len(out) == 0 {
		return pr.InitialValue(pr.PTextDecoration), nil
	}
	return out, nil
}

// Compute the “size“ property : the result is always two lengths,
// width and height, in pixels.
func size(ctx *Context, name pr.KnownProp, value pr.Value) (pr.Value, error) {
	var out [2]Fl
	landscape := false
	for _, token := range value {
		keyword := pa.Keyword(token)
		switch {
		case keyword == "landscape":
			landscape = true
		case keyword == "auto" || keyword == "portrait":
			out = pageSizes["a4"]
		case keyword != "":
			pageSize, ok := pageSizes[keyword]
			if !ok {
				return nil, &UnresolvableRelativeValue{Property: name, Value: value, Reason: "unknown page size " + keyword}
			}
			out = pageSize
		}
	}
	if landscape {
		if out == [2]Fl{} {
			out = pageSizes["a4"]
		}
		out[0], out[1] = out[1], out[0]
	}
	if out != [2]Fl{} {
		return pr.Value{px(out[0]), px(out[1])}, nil
	}

	// explicit lengths : one length gives a square page
	computed := ctx.lengths(value, ctx.fontSize())
	if len(computed) == 1 {
		computed = append(computed, computed[0])
	}
	return computed, nil
}
