package properties

import "fmt"

// Shorthand is a property setting several longhands at once.
type Shorthand uint8

const (
	_ Shorthand = iota
	SMargin
	SPadding
	SBorderWidth
	SBorderStyle
	SBorderColor
	SBorder
	SBorderTop
	SBorderRight
	SBorderBottom
	SBorderLeft
	SOutline
	SListStyle
	SBackground
	SFont
	SCue
	SPause

	NbShorthands
)

var shorthandNames = [NbShorthands]string{
	SMargin:       "margin",
	SPadding:      "padding",
	SBorderWidth:  "border-width",
	SBorderStyle:  "border-style",
	SBorderColor:  "border-color",
	SBorder:       "border",
	SBorderTop:    "border-top",
	SBorderRight:  "border-right",
	SBorderBottom: "border-bottom",
	SBorderLeft:   "border-left",
	SOutline:      "outline",
	SListStyle:    "list-style",
	SBackground:   "background",
	SFont:         "font",
	SCue:          "cue",
	SPause:        "pause",
}

// ShorthandsFromNames maps CSS shorthand names to internal enum tags.
var ShorthandsFromNames = map[string]Shorthand{}

// longhands of each shorthand, in the canonical order
var shorthandLonghands = [NbShorthands][]KnownProp{
	SMargin:      {PMarginTop, PMarginRight, PMarginBottom, PMarginLeft},
	SPadding:     {PPaddingTop, PPaddingRight, PPaddingBottom, PPaddingLeft},
	SBorderWidth: {PBorderTopWidth, PBorderRightWidth, PBorderBottomWidth, PBorderLeftWidth},
	SBorderStyle: {PBorderTopStyle, PBorderRightStyle, PBorderBottomStyle, PBorderLeftStyle},
	SBorderColor: {PBorderTopColor, PBorderRightColor, PBorderBottomColor, PBorderLeftColor},
	SBorder: {
		PBorderTopWidth, PBorderRightWidth, PBorderBottomWidth, PBorderLeftWidth,
		PBorderTopStyle, PBorderRightStyle, PBorderBottomStyle, PBorderLeftStyle,
		PBorderTopColor, PBorderRightColor, PBorderBottomColor, PBorderLeftColor,
	},
	SBorderTop:    {PBorderTopWidth, PBorderTopStyle, PBorderTopColor},
	SBorderRight:  {PBorderRightWidth, PBorderRightStyle, PBorderRightColor},
	SBorderBottom: {PBorderBottomWidth, PBorderBottomStyle, PBorderBottomColor},
	SBorderLeft:   {PBorderLeftWidth, PBorderLeftStyle, PBorderLeftColor},
	SOutline:      {POutlineWidth, POutlineStyle, POutlineColor},
	SListStyle:    {PListStyleType, PListStylePosition, PListStyleImage},
	SBackground: {
		PBackgroundColor, PBackgroundImage, PBackgroundRepeat,
		PBackgroundAttachment, PBackgroundPosition,
	},
	SFont: {PFontStyle, PFontVariant, PFontWeight, PFontSize, PLineHeight, PFontFamily},
	SCue:  {PCueBefore, PCueAfter},
	SPause: {PPauseBefore, PPauseAfter},
}

func init() {
	for s := Shorthand(1); s < NbShorthands; s++ {
		if shorthandNames[s] == "" || len(shorthandLonghands[s]) == 0 {
			panic("incomplete shorthand table")
		}
		ShorthandsFromNames[shorthandNames[s]] = s
	}
}

func (s Shorthand) String() string {
	if s == 0 || s >= NbShorthands {
		return fmt.Sprintf("<invalid shorthand %d>", s)
	}
	return shorthandNames[s]
}

// Longhands returns the properties set by the shorthand.
// The returned slice must not be mutated.
func (s Shorthand) Longhands() []KnownProp { return shorthandLonghands[s] }

// Side is one of the four sides of a box.
type Side uint8

const (
	Top Side = iota
	Right
	Bottom
	Left
)

// Sides are the sides, in the order used by the four-values shorthands.
var Sides = [4]Side{Top, Right, Bottom, Left}

// BorderStyle, BorderWidth and BorderColor return the longhands of
// the given side.
func BorderStyle(s Side) KnownProp { return PBorderTopStyle + 3*KnownProp(s) }
func BorderWidth(s Side) KnownProp { return PBorderTopWidth + 3*KnownProp(s) }
func BorderColor(s Side) KnownProp { return PBorderTopColor + 3*KnownProp(s) }
