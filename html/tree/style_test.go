package tree

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	pa "github.com/benoitkugler/webstyle/css/parser"
	pr "github.com/benoitkugler/webstyle/css/properties"
	"github.com/benoitkugler/webstyle/utils/testutils"
)

// Test the inheritance and computed values.

func resolveTree(t *testing.T, root *Node, medium pr.Medium) *StyleFor {
	t.Helper()
	styles, err := NewResolver(Options{Medium: medium}).Resolve(root)
	require.NoError(t, err)
	return styles
}

// pixels returns the length of a single px dimension
func pixels(t *testing.T, value pr.Value) Fl {
	t.Helper()
	require.Len(t, value, 1)
	d, ok := value[0].(pa.Dimension)
	require.True(t, ok, "expected a dimension, got %s", value)
	require.Equal(t, "px", d.Unit)
	return d.Value
}

func TestRootUsesInitialValues(t *testing.T) {
	capt := testutils.CaptureLogs(t)
	defer capt.AssertNoLogs(t)

	root := MustNode("html", "")
	style := resolveTree(t, root, pr.Screen).Get(root)
	require.NotNil(t, style)
	assert.Nil(t, style.Parent())
	assert.Equal(t, root, style.Element())

	for _, prop := range pr.ApplicableProps(pr.Screen) {
		value, ok := style.Lookup(prop)
		assert.True(t, ok, prop.String())
		assert.Equal(t, pr.InitialValue(prop), value, prop.String())
	}
	assert.Equal(t, Fl(16), style.FontSize())
}

func TestMediumFilter(t *testing.T) {
	capt := testutils.CaptureLogs(t)
	defer capt.AssertNoLogs(t)

	root := MustNode("html", "cursor: pointer; outline: 2px solid red")
	screen := resolveTree(t, root, pr.Screen).Get(root)
	printStyle := resolveTree(t, root, pr.Print).Get(root)

	assert.Equal(t, "pointer", screen.Get(pr.PCursor).Keyword())
	for _, prop := range []pr.KnownProp{pr.PCursor, pr.POutlineWidth, pr.PAzimuth, pr.PVolume} {
		assert.False(t, printStyle.Has(prop), prop.String())
		assert.Nil(t, printStyle.Get(prop))
		_, in := printStyle.Map()[prop.String()]
		assert.False(t, in)
	}
	assert.Len(t, printStyle.Props(), len(pr.ApplicableProps(pr.Print)))
	assert.Len(t, screen.Props(), int(pr.NbProps)-1)
}

func TestInheritance(t *testing.T) {
	capt := testutils.CaptureLogs(t)
	defer capt.AssertNoLogs(t)

	child := MustNode("p", "")
	root := MustNode("html", "color: red; margin: 4px; font-family: monospace; border-spacing: 1em", child)
	styles := resolveTree(t, root, pr.Screen)
	parent, style := styles.Get(root), styles.Get(child)
	assert.Equal(t, parent, style.Parent())

	for _, prop := range []pr.KnownProp{pr.PColor, pr.PFontFamily, pr.PBorderSpacing} {
		assert.True(t, pr.IsInherited(prop))
		assert.Equal(t, parent.Get(prop), style.Get(prop), prop.String())
	}
	assert.Equal(t, pr.Value{px(16)}, style.Get(pr.PBorderSpacing))

	// not inherited
	assert.Equal(t, Fl(4), pixels(t, parent.Get(pr.PMarginLeft)))
	assert.Equal(t, pr.InitialValue(pr.PMarginLeft), style.Get(pr.PMarginLeft))
}

func TestInheritAndInitialKeywords(t *testing.T) {
	capt := testutils.CaptureLogs(t)
	defer capt.AssertNoLogs(t)

	child := MustNode("p", "margin-top: inherit; color: initial; padding-left: inherit")
	root := MustNode("html", "margin-top: 3px; color: blue", child)
	styles := resolveTree(t, root, pr.Screen)
	style := styles.Get(child)

	assert.Equal(t, Fl(3), pixels(t, style.Get(pr.PMarginTop)))
	assert.Equal(t, pr.InitialValue(pr.PColor), style.Get(pr.PColor))
	assert.Equal(t, pr.InitialValue(pr.PPaddingLeft), style.Get(pr.PPaddingLeft))

	// inherit on the root is the initial value
	root = MustNode("html", "margin-top: inherit")
	assert.Equal(t, pr.InitialValue(pr.PMarginTop), resolveTree(t, root, pr.Screen).Get(root).Get(pr.PMarginTop))
}

func TestShorthandRoundTrip(t *testing.T) {
	capt := testutils.CaptureLogs(t)
	defer capt.AssertNoLogs(t)

	short := MustNode("div", "margin: 1px 2px; border-top: 3px dotted green")
	long := MustNode("div", "margin-top: 1px; margin-right: 2px; margin-bottom: 1px; margin-left: 2px;"+
		"border-top-width: 3px; border-top-style: dotted; border-top-color: green")
	s1 := resolveTree(t, short, pr.Screen).Get(short)
	s2 := resolveTree(t, long, pr.Screen).Get(long)
	assert.Equal(t, s2.Serialize(), s1.Serialize())
	assert.Equal(t, s2.Map(), s1.Map())
}

func TestCurrentColor(t *testing.T) {
	capt := testutils.CaptureLogs(t)
	defer capt.AssertNoLogs(t)

	child := MustNode("p", "color: currentColor; border-left-color: currentColor")
	root := MustNode("html", "color: rgb(255, 0, 0); border-top: 1px solid; background-color: currentColor", child)
	styles := resolveTree(t, root, pr.Screen)

	red := pa.Color{Type: pa.ColorRGBA, RGBA: pa.RGBA{R: 1, A: 1}}
	style := styles.Get(root)
	assert.Equal(t, pr.Value{red}, style.Get(pr.PColor))
	assert.Equal(t, pr.Value{red}, style.Get(pr.PBorderTopColor))
	assert.Equal(t, pr.Value{red}, style.Get(pr.PBackgroundColor))
	assert.Equal(t, red, style.ResolveColor(pr.PBorderTopColor))

	// currentColor on color is inherit
	style = styles.Get(child)
	assert.Equal(t, pr.Value{red}, style.Get(pr.PColor))
	assert.Equal(t, pr.Value{red}, style.Get(pr.PBorderLeftColor))
	// unspecified : still the initial keyword
	assert.Equal(t, "currentcolor", style.Get(pr.PBorderRightColor).Keyword())
	assert.Equal(t, red, style.ResolveColor(pr.PBorderRightColor))

	assert.True(t, style.ResolveColor(pr.PMarginTop).IsNone())
}

func TestDefaultColorIsBlack(t *testing.T) {
	root := MustNode("html", "border-bottom-color: currentColor")
	style := resolveTree(t, root, pr.Screen).Get(root)
	black := pa.Color{Type: pa.ColorRGBA, RGBA: pa.RGBA{A: 1}}
	assert.Equal(t, black, style.ResolveColor(pr.PColor))
	assert.Equal(t, pr.Value{black}, style.Get(pr.PBorderBottomColor))
}

type testFontSize struct {
	parentCss  string
	parentSize Fl
	childCss   string
	childSize  Fl
}

var testsFs = []testFontSize{
	{parentCss: "10px", parentSize: 10, childCss: "10px", childSize: 10},
	{parentCss: "x-small", parentSize: 12, childCss: "xx-large", childSize: 32},
	{parentCss: "x-large", parentSize: 24, childCss: "2em", childSize: 48},
	{parentCss: "1em", parentSize: 16, childCss: "1em", childSize: 16},
	{parentCss: "1em", parentSize: 16, childCss: "larger", childSize: 6. / 5 * 16},
	{parentCss: "medium", parentSize: 16, childCss: "larger", childSize: 6. / 5 * 16},
	{parentCss: "x-large", parentSize: 24, childCss: "larger", childSize: 32},
	{parentCss: "xx-large", parentSize: 32, childCss: "larger", childSize: 1.2 * 32},
	{parentCss: "1px", parentSize: 1, childCss: "larger", childSize: 3. / 5 * 16},
	{parentCss: "28px", parentSize: 28, childCss: "larger", childSize: 32},
	{parentCss: "100px", parentSize: 100, childCss: "larger", childSize: 120},
	{parentCss: "xx-small", parentSize: 3. / 5 * 16, childCss: "larger", childSize: 12},
	{parentCss: "1em", parentSize: 16, childCss: "smaller", childSize: 8. / 9 * 16},
	{parentCss: "medium", parentSize: 16, childCss: "smaller", childSize: 8. / 9 * 16},
	{parentCss: "x-large", parentSize: 24, childCss: "smaller", childSize: 6. / 5 * 16},
	{parentCss: "xx-large", parentSize: 32, childCss: "smaller", childSize: 24},
	{parentCss: "xx-small", parentSize: 3. / 5 * 16, childCss: "smaller", childSize: 0.8 * 3. / 5 * 16},
	{parentCss: "1px", parentSize: 1, childCss: "smaller", childSize: 0.8},
	{parentCss: "28px", parentSize: 28, childCss: "smaller", childSize: 24},
	{parentCss: "100px", parentSize: 100, childCss: "smaller", childSize: 32},
	{parentCss: "12pt", parentSize: 16, childCss: "150%", childSize: 24},
	{parentCss: "20px", parentSize: 20, childCss: "2ex", childSize: 20},
	{parentCss: "2rem", parentSize: 32, childCss: "2rem", childSize: 32},
}

func TestFontSize(t *testing.T) {
	capt := testutils.CaptureLogs(t)
	defer capt.AssertNoLogs(t)

	for _, te := range testsFs {
		span := MustNode("span", "font-size: "+te.childCss)
		p := MustNode("p", "font-size: "+te.parentCss, span)
		root := MustNode("html", "", MustNode("body", "", p))
		styles := resolveTree(t, root, pr.Screen)

		assert.InDelta(t, te.parentSize, styles.Get(p).FontSize(), 1e-5, "parent %s", te.parentCss)
		assert.InDelta(t, te.childSize, styles.Get(span).FontSize(), 1e-5, "child %s in %s", te.childCss, te.parentCss)
	}
}

func TestRelativeLengths(t *testing.T) {
	capt := testutils.CaptureLogs(t)
	defer capt.AssertNoLogs(t)

	child := MustNode("p", "font-size: 10px; margin-left: 2em; margin-right: 2rem; padding-top: 3ex; text-indent: 1in; width: 50%")
	root := MustNode("html", "font-size: 2em; margin-left: 1rem", child)
	styles := resolveTree(t, root, pr.Screen)

	rootStyle := styles.Get(root)
	assert.Equal(t, Fl(32), rootStyle.FontSize())
	assert.Equal(t, Fl(32), pixels(t, rootStyle.Get(pr.PMarginLeft)))

	style := styles.Get(child)
	assert.Equal(t, Fl(20), pixels(t, style.Get(pr.PMarginLeft)))
	assert.Equal(t, Fl(64), pixels(t, style.Get(pr.PMarginRight)))
	assert.Equal(t, Fl(15), pixels(t, style.Get(pr.PPaddingTop)))
	assert.Equal(t, Fl(96), pixels(t, style.Get(pr.PTextIndent)))
	assert.Equal(t, pr.Value{pa.Percentage{Value: 50}}, style.Get(pr.PWidth))
}

func TestLineHeightAndVerticalAlign(t *testing.T) {
	capt := testutils.CaptureLogs(t)
	defer capt.AssertNoLogs(t)

	child1 := MustNode("span", "vertical-align: 50%")
	child2 := MustNode("span", "line-height: 2; vertical-align: 25%")
	child3 := MustNode("span", "vertical-align: super; font-size: 10px")
	root := MustNode("html", "font-size: 20px; line-height: 150%", child1, child2, child3)
	styles := resolveTree(t, root, pr.Screen)

	assert.Equal(t, Fl(30), pixels(t, styles.Get(root).Get(pr.PLineHeight)))
	// the computed line-height is inherited, not the percentage
	assert.Equal(t, Fl(30), pixels(t, styles.Get(child1).Get(pr.PLineHeight)))
	assert.Equal(t, Fl(15), pixels(t, styles.Get(child1).Get(pr.PVerticalAlign)))

	assert.Equal(t, pr.Value{pa.Number{Value: 2, IsInteger: true}}, styles.Get(child2).Get(pr.PLineHeight))
	assert.Equal(t, Fl(10), pixels(t, styles.Get(child2).Get(pr.PVerticalAlign)))

	assert.Equal(t, Fl(5), pixels(t, styles.Get(child3).Get(pr.PVerticalAlign)))
}

func TestUnresolvableValue(t *testing.T) {
	capt := testutils.CaptureLogs(t)

	root := MustNode("html", "vertical-align: 50%; margin-top: 1px")
	styles, err := NewResolver(Options{}).Resolve(root)
	require.Error(t, err)

	var unresolvable *UnresolvableRelativeValue
	require.True(t, errors.As(err, &unresolvable))
	assert.Equal(t, pr.PVerticalAlign, unresolvable.Property)

	style := styles.Get(root)
	assert.Equal(t, pr.InitialValue(pr.PVerticalAlign), style.Get(pr.PVerticalAlign))
	assert.Equal(t, Fl(1), pixels(t, style.Get(pr.PMarginTop)))
	assert.Len(t, capt.Warnings(), 1)
}

func TestInvalidDeclarations(t *testing.T) {
	capt := testutils.CaptureLogs(t)

	child := MustNode("p", "margin: 1px 2px 3px 4px 5px; color: green; foo: bar")
	root := MustNode("html", "", child)
	styles, err := NewResolver(Options{}).Resolve(root)
	require.Error(t, err)
	assert.Len(t, capt.Warnings(), 2)

	// the style is still complete
	style := styles.Get(child)
	assert.Len(t, style.Props(), int(pr.NbProps)-1)
	assert.Equal(t, pr.InitialValue(pr.PMarginTop), style.Get(pr.PMarginTop))
	assert.Equal(t, "rgb(0, 128, 0)", style.Get(pr.PColor).String())
}

func TestImportantDeclarations(t *testing.T) {
	root := MustNode("html", "margin-top: 1px !important; margin-top: 2px; margin-left: 1px; margin-left: 2px")
	style := resolveTree(t, root, pr.Screen).Get(root)
	assert.Equal(t, Fl(1), pixels(t, style.Get(pr.PMarginTop)))
	assert.Equal(t, Fl(2), pixels(t, style.Get(pr.PMarginLeft)))
}

func TestFontWeight(t *testing.T) {
	capt := testutils.CaptureLogs(t)
	defer capt.AssertNoLogs(t)

	for _, te := range []struct {
		parent, child string
		expected      Fl
	}{
		{"normal", "bolder", 700},
		{"bold", "bolder", 900},
		{"bold", "lighter", 400},
		{"300", "lighter", 100},
		{"600", "bold", 700},
		{"600", "inherit", 600},
	} {
		child := MustNode("b", "font-weight: "+te.child)
		root := MustNode("html", "font-weight: "+te.parent, child)
		got := resolveTree(t, root, pr.Screen).Get(child).Get(pr.PFontWeight)
		assert.Equal(t, pr.Value{pa.Number{Value: te.expected, IsInteger: true}}, got, "%s in %s", te.child, te.parent)
	}
}

func TestTextDecoration(t *testing.T) {
	capt := testutils.CaptureLogs(t)
	defer capt.AssertNoLogs(t)

	grandChild := MustNode("em", "text-decoration: none")
	child := MustNode("span", "text-decoration: line-through underline", grandChild)
	sibling := MustNode("span", "")
	root := MustNode("html", "text-decoration: overline", child, sibling)
	styles := resolveTree(t, root, pr.Screen)

	assert.Equal(t, "overline", styles.Get(root).Get(pr.PTextDecoration).String())
	assert.Equal(t, "underline overline line-through", styles.Get(child).Get(pr.PTextDecoration).String())
	assert.Equal(t, "underline overline line-through", styles.Get(grandChild).Get(pr.PTextDecoration).String())
	assert.Equal(t, "overline", styles.Get(sibling).Get(pr.PTextDecoration).String())
}

func TestBorderWidth(t *testing.T) {
	capt := testutils.CaptureLogs(t)
	defer capt.AssertNoLogs(t)

	root := MustNode("html", "border-top-width: 4px; border-right: thick solid; border-bottom: 2px hidden; border-left: 1em double;"+
		"outline-width: thin; font-size: 10px")
	style := resolveTree(t, root, pr.Screen).Get(root)

	assert.Equal(t, Fl(0), pixels(t, style.Get(pr.PBorderTopWidth)))
	assert.Equal(t, Fl(5), pixels(t, style.Get(pr.PBorderRightWidth)))
	assert.Equal(t, Fl(0), pixels(t, style.Get(pr.PBorderBottomWidth)))
	assert.Equal(t, Fl(10), pixels(t, style.Get(pr.PBorderLeftWidth)))
	assert.Equal(t, Fl(0), pixels(t, style.Get(pr.POutlineWidth)))
}

func TestSpacing(t *testing.T) {
	root := MustNode("html", "word-spacing: normal; letter-spacing: normal")
	style := resolveTree(t, root, pr.Screen).Get(root)
	assert.Equal(t, Fl(0), pixels(t, style.Get(pr.PWordSpacing)))
	assert.Equal(t, "normal", style.Get(pr.PLetterSpacing).Keyword())

	root = MustNode("html", "word-spacing: 0.5em; letter-spacing: 3pt")
	style = resolveTree(t, root, pr.Screen).Get(root)
	assert.Equal(t, Fl(8), pixels(t, style.Get(pr.PWordSpacing)))
	assert.Equal(t, Fl(4), pixels(t, style.Get(pr.PLetterSpacing)))
}

func TestPageSize(t *testing.T) {
	capt := testutils.CaptureLogs(t)
	defer capt.AssertNoLogs(t)

	a4 := pageSizes["a4"]
	for _, te := range []struct {
		css           string
		width, height Fl
	}{
		{"auto", a4[0], a4[1]},
		{"portrait", a4[0], a4[1]},
		{"landscape", a4[1], a4[0]},
		{"letter", 816, 1056},
		{"a3 landscape", pageSizes["a3"][1], pageSizes["a3"][0]},
		{"10cm", 10 * 96 / 2.54, 10 * 96 / 2.54},
		{"2in 3in", 192, 288},
	} {
		root := MustNode("html", "size: "+te.css)
		got := resolveTree(t, root, pr.Print).Get(root).Get(pr.PSize)
		require.Len(t, got, 2, te.css)
		assert.InDelta(t, te.width, got[0].(pa.Dimension).Value, 1e-5, te.css)
		assert.InDelta(t, te.height, got[1].(pa.Dimension).Value, 1e-5, te.css)
	}
}

func TestParallelResolution(t *testing.T) {
	capt := testutils.CaptureLogs(t)
	defer capt.AssertNoLogs(t)

	root := MustNode("html", "font-size: 12px; color: navy")
	for i := 0; i < 20; i++ {
		section := MustNode("section", fmt.Sprintf("margin: %dem; text-decoration: underline", i))
		for j := 0; j < 5; j++ {
			section.AppendChild(MustNode("p", fmt.Sprintf("font-size: %d%%; padding: 1ex", 50+10*j)))
		}
		root.AppendChild(section)
	}

	sequential := resolveTree(t, root, pr.Screen)
	parallel, err := NewResolver(Options{Medium: pr.Screen, Parallel: true}).Resolve(root)
	require.NoError(t, err)

	require.Equal(t, len(root.Iter()), parallel.Len())
	for _, node := range root.Iter() {
		assert.Equal(t, sequential.Get(node).Serialize(), parallel.Get(node).Serialize(), node.Path())
	}
}

func TestResolutionIsIdempotent(t *testing.T) {
	child := MustNode("p", "font-size: larger; margin: 1em auto; border: 2px solid currentColor")
	root := MustNode("html", "color: teal; font: italic bold 12px/1.5 serif", child)

	first := resolveTree(t, root, pr.Print)
	second := resolveTree(t, root, pr.Print)
	for _, node := range root.Iter() {
		assert.Equal(t, first.Get(node).Serialize(), second.Get(node).Serialize())
	}
}

func TestCustomLogger(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	root := MustNode("html", "margin: nope")
	_, err := NewResolver(Options{Logger: zap.New(core)}).Resolve(root)
	require.Error(t, err)

	assert.Equal(t, 2, observed.FilterLoggerName("progress").Len())
	warnings := observed.FilterLoggerName("warning").All()
	require.Len(t, warnings, 1)
	assert.True(t, strings.HasPrefix(warnings[0].Message, "Ignored `margin: nope`"), warnings[0].Message)
}

func TestStyleForUnknownElement(t *testing.T) {
	root := MustNode("html", "")
	styles := resolveTree(t, root, pr.Screen)
	assert.Nil(t, styles.Get(MustNode("html", "")))
	assert.Equal(t, 1, styles.Len())
}

func TestSerialize(t *testing.T) {
	root := MustNode("html", "")
	serialized := resolveTree(t, root, pr.Screen).Get(root).Serialize()
	assert.Contains(t, serialized, "\ncolor: #000;\n")
	assert.Contains(t, serialized, "\nfont-size: medium;\n")
	assert.Regexp(t, "^azimuth: center;\n", serialized)

	serialized = resolveTree(t, root, pr.Print).Get(root).Serialize()
	assert.NotContains(t, serialized, "cursor")
	assert.Regexp(t, "^background-attachment: scroll;\n", serialized)
}
