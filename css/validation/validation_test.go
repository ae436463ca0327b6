package validation

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	pa "github.com/benoitkugler/webstyle/css/parser"
	pr "github.com/benoitkugler/webstyle/css/properties"
	tu "github.com/benoitkugler/webstyle/utils/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func px(v pa.Fl) pa.Token  { return pa.Dimension{Value: v, Unit: "px"} }
func em(v pa.Fl) pa.Token  { return pa.Dimension{Value: v, Unit: "em"} }
func kw(s string) pr.Value { return pr.Value{pa.Ident{Value: s}} }

var zero = pa.Number{Value: 0, IsInteger: true}

// Helper to test shorthand properties expander functions.
func expandToDict(t *testing.T, css string, expectedError string) pr.Properties {
	t.Helper()

	declarations, errs := pa.ParseDeclarationList(css)
	require.Empty(t, errs)

	capt := tu.CaptureLogs(t)
	validated, err := PreprocessDeclarations(declarations)
	logs := capt.Warnings()

	if expectedError != "" {
		require.Error(t, err)
		require.Len(t, logs, 1, css)
		require.Contains(t, logs[0], expectedError, css)
	} else {
		require.NoError(t, err)
		capt.AssertNoLogs(t)
	}
	return Merge(validated)
}

func assertInvalid(t *testing.T, css, message string) {
	t.Helper()

	d := expandToDict(t, css, message)
	require.Empty(t, d, css)
}

func assertValidDict(t *testing.T, css string, ref pr.Properties) {
	t.Helper()

	got := expandToDict(t, css, "")
	require.Equal(t, ref, got, css)
}

func TestValidate(t *testing.T) {
	for _, test := range []struct {
		prop     pr.KnownProp
		css      string
		expected pr.Value
	}{
		{pr.PDisplay, "BLOCK", kw("block")},
		{pr.PDisplay, "inherit", kw("inherit")},
		{pr.PMarginTop, "INITIAL", kw("initial")},
		{pr.PMarginTop, "-1em", pr.Value{em(-1)}},
		{pr.PWidth, "0", pr.Value{zero}},
		{pr.PLineHeight, "1.5", pr.Value{pa.Number{Value: 1.5}}},
		{pr.PColor, "red", pr.Value{pa.Color{Type: pa.ColorRGBA, RGBA: pa.RGBA{R: 1, A: 1}}}},
		{pr.PColor, "currentcolor", kw("currentColor")},
		{pr.POutlineColor, "Invert", kw("invert")},
		{pr.PFontWeight, "700", pr.Value{pa.Number{Value: 700, IsInteger: true}}},
		{pr.PTextDecoration, "blink underline", pr.Value{pa.Ident{Value: "underline"}, pa.Ident{Value: "blink"}}},
		{pr.PSize, "landscape A4", pr.Value{pa.Ident{Value: "a4"}, pa.Ident{Value: "landscape"}}},
		{pr.PClip, "rect(1px 2px auto 4px)", pr.Value{pa.Function{Name: "rect", Arguments: []pa.Token{
			px(1), pa.Literal{Value: ","}, px(2), pa.Literal{Value: ","},
			pa.Ident{Value: "auto"}, pa.Literal{Value: ","}, px(4),
		}}}},
		{pr.PFontFamily, `"Times New Roman", serif`, pr.Value{
			pa.String{Value: "Times New Roman"}, pa.Literal{Value: ","}, pa.Ident{Value: "serif"},
		}},
		{pr.PBackgroundPosition, "top left", pr.Value{pa.Ident{Value: "top"}, pa.Ident{Value: "left"}}},
		{pr.PContent, `"a" counter(item, upper-roman) attr(title)`, pa.MustParseValue(`"a" counter(item, upper-roman) attr(title)`)},
	} {
		got, err := Validate(test.prop, pa.MustParseValue(test.css))
		require.NoError(t, err, test.css)
		assert.Equal(t, test.expected, got, test.css)
	}
}

func TestValidateInvalid(t *testing.T) {
	for _, test := range []struct {
		prop pr.KnownProp
		css  string
	}{
		{pr.PDisplay, "blocks"},
		{pr.PDisplay, "block inline"},
		{pr.PPaddingTop, "-1px"},
		{pr.PPaddingTop, "auto"},
		{pr.PWidth, "12"},
		{pr.PBorderTopWidth, "12%"},
		{pr.PColor, "invert"},
		{pr.POutlineStyle, "hidden"},
		{pr.PFontWeight, "650"},
		{pr.PTextDecoration, "underline underline"},
		{pr.PZIndex, "1.5"},
		{pr.POrphans, "0"},
		{pr.PQuotes, `"a"`},
		{pr.PBackgroundPosition, "left right"},
		{pr.PCounterReset, "3 item"},
		{pr.PContent, "counter(item, foo)"},
	} {
		_, err := Validate(test.prop, pa.MustParseValue(test.css))
		var invalid *InvalidValue
		require.ErrorAs(t, err, &invalid, test.css)
		assert.Equal(t, test.prop, invalid.Property)
	}

	_, err := Validate(pr.PColor, nil)
	assert.EqualError(t, err, "invalid value for color: no value")
	_, err = Validate(pr.NbProps, nil)
	var unknown *UnknownProperty
	assert.ErrorAs(t, err, &unknown)
}

func TestExpandFourSides(t *testing.T) {
	assertValidDict(t, "margin: inherit", pr.Properties{
		pr.PMarginTop:    kw("inherit"),
		pr.PMarginRight:  kw("inherit"),
		pr.PMarginBottom: kw("inherit"),
		pr.PMarginLeft:   kw("inherit"),
	})
	assertValidDict(t, "margin: 1em", pr.Properties{
		pr.PMarginTop:    {em(1)},
		pr.PMarginRight:  {em(1)},
		pr.PMarginBottom: {em(1)},
		pr.PMarginLeft:   {em(1)},
	})
	assertValidDict(t, "margin: -1em auto 20%", pr.Properties{
		pr.PMarginTop:    {em(-1)},
		pr.PMarginRight:  kw("auto"),
		pr.PMarginBottom: {pa.Percentage{Value: 20}},
		pr.PMarginLeft:   kw("auto"),
	})
	assertValidDict(t, "padding: 1em 0", pr.Properties{
		pr.PPaddingTop:    {em(1)},
		pr.PPaddingRight:  {zero},
		pr.PPaddingBottom: {em(1)},
		pr.PPaddingLeft:   {zero},
	})
	assertValidDict(t, "padding: 1em 0 2em 5px", pr.Properties{
		pr.PPaddingTop:    {em(1)},
		pr.PPaddingRight:  {zero},
		pr.PPaddingBottom: {em(2)},
		pr.PPaddingLeft:   {px(5)},
	})
	assertValidDict(t, "border-style: solid none", pr.Properties{
		pr.PBorderTopStyle:    kw("solid"),
		pr.PBorderRightStyle:  kw("none"),
		pr.PBorderBottomStyle: kw("solid"),
		pr.PBorderLeftStyle:   kw("none"),
	})

	assertInvalid(t, "padding: 1px 2px 3px 4px 5px", "expected 1 to 4 components, got 5")
	assertInvalid(t, "margin: rgb(0, 0, 0)", "invalid value for margin-top")
	assertInvalid(t, "padding: auto", "invalid value for padding-top")
	assertInvalid(t, "padding: 1px -12px", "invalid value for padding-right")
	assertInvalid(t, "border-width: -3em", "invalid")
	assertInvalid(t, "border-width: 12%", "invalid")
}

func TestThreeValuesLeftCopiesRight(t *testing.T) {
	got, err := ExpandDeclaration("margin", pa.MustParseValue("1px 2px 3px"))
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, Declaration{Name: pr.PMarginLeft, Value: pr.Value{px(2)}}, got[3])
	assert.Equal(t, Declaration{Name: pr.PMarginBottom, Value: pr.Value{px(3)}}, got[2])
}

func TestExpandBorderSide(t *testing.T) {
	props, err := Expand(pr.SBorderTop, pa.MustParseValue("2px solid"))
	require.NoError(t, err)
	assert.Equal(t, pr.Properties{
		pr.PBorderTopWidth: {px(2)},
		pr.PBorderTopStyle: kw("solid"),
		pr.PBorderTopColor: kw("currentColor"),
	}, props)

	assertValidDict(t, "border-left: #00f dashed thick", pr.Properties{
		pr.PBorderLeftWidth: kw("thick"),
		pr.PBorderLeftStyle: kw("dashed"),
		pr.PBorderLeftColor: {pa.Color{Type: pa.ColorRGBA, RGBA: pa.RGBA{B: 1, A: 1}}},
	})
	assertValidDict(t, "border-right: none", pr.Properties{
		pr.PBorderRightWidth: kw("medium"),
		pr.PBorderRightStyle: kw("none"),
		pr.PBorderRightColor: kw("currentColor"),
	})
	assertInvalid(t, "border-top: 1px 2px", "got multiple border-top-width values")
	assertInvalid(t, "border-bottom: 1px solid foo", "expected a width, a style or a color")
}

func TestExpandBorder(t *testing.T) {
	props, err := Expand(pr.SBorder, pa.MustParseValue("6px dashed green"))
	require.NoError(t, err)
	require.Len(t, props, 12)
	green := pa.ParseColor(pa.Ident{Value: "green"})
	for _, side := range pr.Sides {
		assert.Equal(t, pr.Value{px(6)}, props[pr.BorderWidth(side)])
		assert.Equal(t, kw("dashed"), props[pr.BorderStyle(side)])
		assert.Equal(t, pr.Value{green}, props[pr.BorderColor(side)])
	}

	_, err = Expand(pr.SBorder, pa.MustParseValue("6px 6px"))
	var malformed *MalformedShorthand
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, pr.SBorder, malformed.Shorthand)
	assert.Equal(t, px(6), malformed.Token)
}

func TestExpandOutline(t *testing.T) {
	assertValidDict(t, "outline: dotted", pr.Properties{
		pr.POutlineWidth: kw("medium"),
		pr.POutlineStyle: kw("dotted"),
		pr.POutlineColor: kw("invert"),
	})
	assertInvalid(t, "outline: hidden", "expected a width, a style or a color")
}

func TestExpandListStyle(t *testing.T) {
	assertValidDict(t, "list-style: inherit", pr.Properties{
		pr.PListStyleType:     kw("inherit"),
		pr.PListStylePosition: kw("inherit"),
		pr.PListStyleImage:    kw("inherit"),
	})
	assertValidDict(t, "list-style: url(foo.png)", pr.Properties{
		pr.PListStyleType:     kw("disc"),
		pr.PListStylePosition: kw("outside"),
		pr.PListStyleImage:    {pa.URL{Value: "foo.png"}},
	})
	assertValidDict(t, "list-style: square inside", pr.Properties{
		pr.PListStyleType:     kw("square"),
		pr.PListStylePosition: kw("inside"),
		pr.PListStyleImage:    kw("none"),
	})
	assertValidDict(t, "list-style: none", pr.Properties{
		pr.PListStyleType:     kw("none"),
		pr.PListStylePosition: kw("outside"),
		pr.PListStyleImage:    kw("none"),
	})
	assertValidDict(t, "list-style: none none", pr.Properties{
		pr.PListStyleType:     kw("none"),
		pr.PListStylePosition: kw("outside"),
		pr.PListStyleImage:    kw("none"),
	})
	assertInvalid(t, "list-style: none none none", "too many none values")
	assertInvalid(t, "list-style: circle disc", "got multiple list-style-type values")
	assertInvalid(t, "list-style: red", "expected a type, a position or an image")
}

func TestExpandBackground(t *testing.T) {
	transparent := pa.Color{Type: pa.ColorRGBA}
	assertValidDict(t, "background: red", pr.Properties{
		pr.PBackgroundColor:      {pa.Color{Type: pa.ColorRGBA, RGBA: pa.RGBA{R: 1, A: 1}}},
		pr.PBackgroundImage:      kw("none"),
		pr.PBackgroundRepeat:     kw("repeat"),
		pr.PBackgroundAttachment: kw("scroll"),
		pr.PBackgroundPosition:   {pa.Percentage{Value: 0}, pa.Percentage{Value: 0}},
	})
	assertValidDict(t, "background: url(bar) center no-repeat fixed", pr.Properties{
		pr.PBackgroundColor:      {transparent},
		pr.PBackgroundImage:      {pa.URL{Value: "bar"}},
		pr.PBackgroundRepeat:     kw("no-repeat"),
		pr.PBackgroundAttachment: kw("fixed"),
		pr.PBackgroundPosition:   kw("center"),
	})
	assertValidDict(t, "background: 10px top repeat-x", pr.Properties{
		pr.PBackgroundColor:      {transparent},
		pr.PBackgroundImage:      kw("none"),
		pr.PBackgroundRepeat:     kw("repeat-x"),
		pr.PBackgroundAttachment: kw("scroll"),
		pr.PBackgroundPosition:   {px(10), pa.Ident{Value: "top"}},
	})
	assertInvalid(t, "background: red blue", "got multiple background-color values")
	assertInvalid(t, "background: 12deg", "unexpected background component")
}

func TestExpandFont(t *testing.T) {
	assertValidDict(t, "font: 12px My Fancy Font, serif", pr.Properties{
		pr.PFontStyle:   kw("normal"),
		pr.PFontVariant: kw("normal"),
		pr.PFontWeight:  kw("normal"),
		pr.PFontSize:    {px(12)},
		pr.PLineHeight:  kw("normal"),
		pr.PFontFamily: {
			pa.Ident{Value: "My"}, pa.Ident{Value: "Fancy"}, pa.Ident{Value: "Font"},
			pa.Literal{Value: ","}, pa.Ident{Value: "serif"},
		},
	})
	assertValidDict(t, `font: small/1.2 "Some Font", serif`, pr.Properties{
		pr.PFontStyle:   kw("normal"),
		pr.PFontVariant: kw("normal"),
		pr.PFontWeight:  kw("normal"),
		pr.PFontSize:    kw("small"),
		pr.PLineHeight:  {pa.Number{Value: 1.2}},
		pr.PFontFamily:  {pa.String{Value: "Some Font"}, pa.Literal{Value: ","}, pa.Ident{Value: "serif"}},
	})
	assertValidDict(t, "font: small-caps italic 700 large serif", pr.Properties{
		pr.PFontStyle:   kw("italic"),
		pr.PFontVariant: kw("small-caps"),
		pr.PFontWeight:  {pa.Number{Value: 700, IsInteger: true}},
		pr.PFontSize:    kw("large"),
		pr.PLineHeight:  kw("normal"),
		pr.PFontFamily:  kw("serif"),
	})
	assertValidDict(t, "font: normal normal bold 2em/150% monospace", pr.Properties{
		pr.PFontStyle:   kw("normal"),
		pr.PFontVariant: kw("normal"),
		pr.PFontWeight:  kw("bold"),
		pr.PFontSize:    {em(2)},
		pr.PLineHeight:  {pa.Percentage{Value: 150}},
		pr.PFontFamily:  kw("monospace"),
	})

	assertInvalid(t, "font: menu", "system fonts are not supported")
	assertInvalid(t, "font: 12px", "font-family is mandatory")
	assertInvalid(t, "font: bold", "font-size is mandatory")
	assertInvalid(t, "font: italic", "font-size is mandatory")
	assertInvalid(t, "font: 12px/ serif", "invalid value for line-height")
	assertInvalid(t, "font: 12px /", "expected a line-height after '/'")
	assertInvalid(t, "font: italic oblique 12px serif", "got multiple font-style values")
	assertInvalid(t, "font: -12px serif", "invalid value for font-size")
}

func TestExpandCueAndPause(t *testing.T) {
	assertValidDict(t, "pause: 20ms", pr.Properties{
		pr.PPauseBefore: {pa.Dimension{Value: 20, Unit: "ms"}},
		pr.PPauseAfter:  {pa.Dimension{Value: 20, Unit: "ms"}},
	})
	assertValidDict(t, "cue: url(a.wav) none", pr.Properties{
		pr.PCueBefore: {pa.URL{Value: "a.wav"}},
		pr.PCueAfter:  kw("none"),
	})
	assertInvalid(t, "pause: 1s 2s 3s", "expected 1 or 2 components, got 3")
	assertInvalid(t, "cue: red", "invalid value for cue-before")
}

func TestExpandDeclarationOrder(t *testing.T) {
	got, err := ExpandDeclaration("font", pa.MustParseValue("bold 12px serif"))
	require.NoError(t, err)
	var names []pr.KnownProp
	for _, d := range got {
		names = append(names, d.Name)
	}
	assert.Equal(t, pr.SFont.Longhands(), names)
}

func TestUnknownProperty(t *testing.T) {
	_, err := ExpandDeclaration("colour", pa.MustParseValue("red"))
	var unknown *UnknownProperty
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "colour", unknown.Name)

	assertInvalid(t, "-moz-box-sizing: border-box", "unknown property -moz-box-sizing")

	_, err = Expand(0, pa.MustParseValue("1px"))
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "unknown property <invalid shorthand 0>", err.Error())
	_, err = Expand(pr.NbShorthands, pa.MustParseValue("1px"))
	assert.EqualError(t, err, fmt.Sprintf("unknown property <invalid shorthand %d>", pr.NbShorthands))
}

func TestPreprocessDeclarations(t *testing.T) {
	declarations, errs := pa.ParseDeclarationList(`color: red; foo: bar; margin: 1px !important; display: nope`)
	require.Empty(t, errs)

	capt := tu.CaptureLogs(t)
	validated, err := PreprocessDeclarations(declarations)
	require.Len(t, multierr.Errors(err), 2)

	warnings := capt.Warnings()
	require.Len(t, warnings, 2)
	assert.True(t, strings.HasPrefix(warnings[0], "Ignored `foo: bar`"), warnings[0])
	assert.True(t, strings.HasPrefix(warnings[1], "Ignored `display: nope`"), warnings[1])

	var unknown *UnknownProperty
	assert.True(t, errors.As(err, &unknown))

	require.Len(t, validated, 5)
	assert.Equal(t, pr.PColor, validated[0].Name)
	assert.False(t, validated[0].Important)
	for _, decl := range validated[1:] {
		assert.True(t, decl.Important)
	}
}

func TestPreprocessDeclarationsWith(t *testing.T) {
	declarations, errs := pa.ParseDeclarationList(`color: red; margin: nope`)
	require.Empty(t, errs)

	capt := tu.CaptureLogs(t)
	core, observed := observer.New(zapcore.WarnLevel)
	validated, err := PreprocessDeclarationsWith(declarations, zap.New(core).Sugar())
	require.Error(t, err)
	require.Len(t, validated, 1)

	require.Equal(t, 1, observed.Len())
	assert.True(t, strings.HasPrefix(observed.All()[0].Message, "Ignored `margin: nope`"))
	capt.AssertNoLogs(t)
}

func TestMerge(t *testing.T) {
	props := expandToDict(t, "color: red; color: blue", "")
	assert.Equal(t, pr.Value{pa.ParseColor(pa.Ident{Value: "blue"})}, props[pr.PColor])

	props = expandToDict(t, "color: red !important; color: blue", "")
	assert.Equal(t, pr.Value{pa.ParseColor(pa.Ident{Value: "red"})}, props[pr.PColor])

	props = expandToDict(t, "margin: 0 !important; margin-top: 1px; margin-left: 2px !important", "")
	assert.Equal(t, pr.Value{zero}, props[pr.PMarginTop])
	assert.Equal(t, pr.Value{px(2)}, props[pr.PMarginLeft])
}

func TestMalformedShorthandError(t *testing.T) {
	_, err := Expand(pr.SMargin, nil)
	assert.EqualError(t, err, "malformed margin shorthand: no value")

	_, err = Expand(pr.SPadding, pa.MustParseValue("1px red"))
	assert.EqualError(t, err, "malformed padding shorthand at `red`: invalid value for padding-right")
}
