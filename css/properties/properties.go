package properties

import (
	"fmt"

	"github.com/benoitkugler/webstyle/css/parser"
)

// This file is used to generate the property names
//go:generate go run gen/gen.go

const (
	_ KnownProp = iota
	PBottom
	PCaptionSide
	PClear
	PClip
	PColor
	PDirection
	PDisplay
	PEmptyCells
	PFloat
	PLeft
	PRight
	PLineHeight
	PPosition
	PTableLayout
	PTop
	PUnicodeBidi
	PVerticalAlign
	PVisibility
	PZIndex

	PBackgroundColor
	PBackgroundImage
	PBackgroundRepeat
	PBackgroundAttachment
	PBackgroundPosition

	// The border properties are grouped by side,
	// in the order style, width, color.
	PBorderTopStyle
	PBorderTopWidth
	PBorderTopColor
	PBorderRightStyle
	PBorderRightWidth
	PBorderRightColor
	PBorderBottomStyle
	PBorderBottomWidth
	PBorderBottomColor
	PBorderLeftStyle
	PBorderLeftWidth
	PBorderLeftColor
	PBorderCollapse
	PBorderSpacing

	PContent
	PCounterIncrement
	PCounterReset
	PQuotes

	PFontFamily
	PFontSize
	PFontStyle
	PFontVariant
	PFontWeight

	PLetterSpacing
	PTextAlign
	PTextDecoration
	PTextIndent
	PTextTransform
	PWhiteSpace
	PWordSpacing

	PListStyleImage
	PListStylePosition
	PListStyleType

	PMarginTop
	PMarginRight
	PMarginBottom
	PMarginLeft

	PPaddingTop
	PPaddingRight
	PPaddingBottom
	PPaddingLeft

	PHeight
	PMaxHeight
	PMaxWidth
	PMinHeight
	PMinWidth
	PWidth
	POverflow

	POrphans
	PWidows
	PPageBreakAfter
	PPageBreakBefore
	PPageBreakInside
	PSize

	// The following properties only apply
	// to the screen medium.
	PAzimuth
	PCueAfter
	PCueBefore
	PCursor
	PElevation
	PPauseAfter
	PPauseBefore
	PPitch
	PPitchRange
	PPlayDuring
	PRichness
	PSpeak
	PSpeakHeader
	PSpeakNumeral
	PSpeakPunctuation
	PSpeechRate
	PStress
	PVoiceFamily
	PVolume
	POutlineStyle
	POutlineWidth
	POutlineColor

	NbProps
)

// Initial values, written as CSS.
// See http://www.w3.org/TR/CSS21/propidx.html
var initialLiterals = [NbProps]string{
	PBottom:        "auto",
	PCaptionSide:   "top",
	PClear:         "none",
	PClip:          "auto",
	PColor:         "#000",
	PDirection:     "ltr",
	PDisplay:       "inline",
	PEmptyCells:    "show",
	PFloat:         "none",
	PLeft:          "auto",
	PRight:         "auto",
	PLineHeight:    "normal",
	PPosition:      "static",
	PTableLayout:   "auto",
	PTop:           "auto",
	PUnicodeBidi:   "normal",
	PVerticalAlign: "baseline",
	PVisibility:    "visible",
	PZIndex:        "auto",

	PBackgroundColor:      "transparent",
	PBackgroundImage:      "none",
	PBackgroundRepeat:     "repeat",
	PBackgroundAttachment: "scroll",
	PBackgroundPosition:   "0% 0%",

	PBorderTopStyle:    "none",
	PBorderTopWidth:    "medium",
	PBorderTopColor:    "currentColor",
	PBorderRightStyle:  "none",
	PBorderRightWidth:  "medium",
	PBorderRightColor:  "currentColor",
	PBorderBottomStyle: "none",
	PBorderBottomWidth: "medium",
	PBorderBottomColor: "currentColor",
	PBorderLeftStyle:   "none",
	PBorderLeftWidth:   "medium",
	PBorderLeftColor:   "currentColor",
	PBorderCollapse:    "separate",
	PBorderSpacing:     "0",

	PContent:          "normal",
	PCounterIncrement: "none",
	PCounterReset:     "none",
	PQuotes:           `"\201C" "\201D" "\2018" "\2019"`,

	PFontFamily:  "serif",
	PFontSize:    "medium",
	PFontStyle:   "normal",
	PFontVariant: "normal",
	PFontWeight:  "normal",

	PLetterSpacing:  "normal",
	PTextAlign:      "start",
	PTextDecoration: "none",
	PTextIndent:     "0",
	PTextTransform:  "none",
	PWhiteSpace:     "normal",
	PWordSpacing:    "normal",

	PListStyleImage:    "none",
	PListStylePosition: "outside",
	PListStyleType:     "disc",

	PMarginTop:    "0",
	PMarginRight:  "0",
	PMarginBottom: "0",
	PMarginLeft:   "0",

	PPaddingTop:    "0",
	PPaddingRight:  "0",
	PPaddingBottom: "0",
	PPaddingLeft:   "0",

	PHeight:    "auto",
	PMaxHeight: "none",
	PMaxWidth:  "none",
	PMinHeight: "0",
	PMinWidth:  "0",
	PWidth:     "auto",
	POverflow:  "visible",

	POrphans:         "2",
	PWidows:          "2",
	PPageBreakAfter:  "auto",
	PPageBreakBefore: "auto",
	PPageBreakInside: "auto",
	PSize:            "auto",

	PAzimuth:          "center",
	PCueAfter:         "none",
	PCueBefore:        "none",
	PCursor:           "auto",
	PElevation:        "level",
	PPauseAfter:       "0",
	PPauseBefore:      "0",
	PPitch:            "medium",
	PPitchRange:       "50",
	PPlayDuring:       "auto",
	PRichness:         "50",
	PSpeak:            "normal",
	PSpeakHeader:      "once",
	PSpeakNumeral:     "continuous",
	PSpeakPunctuation: "none",
	PSpeechRate:       "medium",
	PStress:           "50",
	PVoiceFamily:      "female",
	PVolume:           "medium",
	POutlineStyle:     "none",
	POutlineWidth:     "medium",
	POutlineColor:     "invert",
}

// parsed from [initialLiterals] at startup
var initialValues [NbProps]Value

// Inherited is the set of inherited properties.
// See http://www.w3.org/TR/CSS21/propidx.html
var Inherited = NewPropSet(
	PBorderCollapse,
	PBorderSpacing,
	PCaptionSide,
	PColor,
	PDirection,
	PEmptyCells,
	PFontFamily,
	PFontSize,
	PFontStyle,
	PFontVariant,
	PFontWeight,
	PLetterSpacing,
	PLineHeight,
	PListStyleImage,
	PListStylePosition,
	PListStyleType,
	POrphans,
	PQuotes,
	PTextAlign,
	PTextDecoration,
	PTextIndent,
	PTextTransform,
	PVisibility,
	PWhiteSpace,
	PWidows,
	PWordSpacing,

	PAzimuth,
	PCursor,
	PElevation,
	PPitch,
	PPitchRange,
	PRichness,
	PSpeak,
	PSpeakHeader,
	PSpeakNumeral,
	PSpeakPunctuation,
	PSpeechRate,
	PStress,
	PVoiceFamily,
	PVolume,
)

func init() {
	if NbProps > maxProps {
		panic("too many properties for PropSet")
	}
	for p := KnownProp(1); p < NbProps; p++ {
		if propsNames[p] == "" {
			panic(fmt.Sprintf("missing name for property %d", p))
		}
		literal := initialLiterals[p]
		if literal == "" {
			panic(fmt.Sprintf("missing initial value for %s", p))
		}
		value, err := parser.ParseValue(literal)
		if err != nil || len(value) == 0 {
			panic(fmt.Sprintf("invalid initial value for %s: %q", p, literal))
		}
		initialValues[p] = value
	}
}

// InitialValue returns the initial value of the property.
// The returned value is shared and must not be mutated.
func InitialValue(p KnownProp) Value { return initialValues[p] }

// IsInherited returns true if the property is inherited
// when not specified.
func IsInherited(p KnownProp) bool { return Inherited.Has(p) }
