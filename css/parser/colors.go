package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/benoitkugler/webstyle/utils"
	"golang.org/x/image/colornames"
)

type ColorType uint8

const (
	ColorInvalid ColorType = iota
	ColorCurrentColor
	ColorRGBA
)

// RGBA stores color channels in [0, 1].
type RGBA struct {
	R, G, B, A Fl
}

// Color is either `currentColor` or an RGBA value.
// The zero value is an invalid color.
type Color struct {
	Type ColorType
	RGBA RGBA
}

func (c Color) IsNone() bool { return c.Type == ColorInvalid }

// String serializes the color, as `currentColor`, `rgb(r, g, b)`
// or `rgba(r, g, b, a)`.
func (c Color) String() string {
	var w strings.Builder
	c.serializeTo(&w)
	return w.String()
}

func channel(v Fl) int { return int(math.Round(v * 255)) }

func (c Color) serializeTo(w *strings.Builder) {
	switch c.Type {
	case ColorCurrentColor:
		w.WriteString("currentColor")
	case ColorRGBA:
		r, g, b := channel(c.RGBA.R), channel(c.RGBA.G), channel(c.RGBA.B)
		if c.RGBA.A == 1 {
			fmt.Fprintf(w, "rgb(%d, %d, %d)", r, g, b)
		} else {
			fmt.Fprintf(w, "rgba(%d, %d, %d, %s)", r, g, b, formatNumber(c.RGBA.A))
		}
	default:
		w.WriteString("<invalid color>")
	}
}

// ParseColor parses a color value from a token, returning
// the zero [Color] if the token is not a color.
//
// Supported syntaxes are the named colors, `transparent`, `currentColor`,
// hexadecimal notations and the rgb(), rgba(), hsl() and hsla() functions.
func ParseColor(token Token) Color {
	switch token := token.(type) {
	case Color:
		return token
	case Ident:
		keyword := strings.ToLower(token.Value)
		switch keyword {
		case "currentcolor":
			return Color{Type: ColorCurrentColor}
		case "transparent":
			return Color{Type: ColorRGBA}
		}
		if c, ok := colornames.Map[keyword]; ok {
			return Color{Type: ColorRGBA, RGBA: RGBA{
				R: Fl(c.R) / 255, G: Fl(c.G) / 255, B: Fl(c.B) / 255, A: Fl(c.A) / 255,
			}}
		}
	case Hash:
		return parseHashColor(token.Value)
	case Function:
		switch token.Name {
		case "rgb", "rgba":
			return parseRGB(token.Arguments)
		case "hsl", "hsla":
			return parseHSL(token.Arguments)
		}
	}
	return Color{}
}

func parseHashColor(value string) Color {
	var digits [4]uint64
	switch len(value) {
	case 3, 4:
		for i := range value {
			v, err := strconv.ParseUint(value[i:i+1], 16, 8)
			if err != nil {
				return Color{}
			}
			digits[i] = v * 17
		}
	case 6, 8:
		for i := 0; i < len(value); i += 2 {
			v, err := strconv.ParseUint(value[i:i+2], 16, 8)
			if err != nil {
				return Color{}
			}
			digits[i/2] = v
		}
	default:
		return Color{}
	}
	if len(value) == 3 || len(value) == 6 {
		digits[3] = 255
	}
	return Color{Type: ColorRGBA, RGBA: RGBA{
		R: Fl(digits[0]) / 255, G: Fl(digits[1]) / 255, B: Fl(digits[2]) / 255, A: Fl(digits[3]) / 255,
	}}
}

// colorArguments accepts both comma separated and space separated
// arguments, with an optional alpha after a `/`.
func colorArguments(args []Token) (channels []Token, alpha Token, ok bool) {
	split := SplitOnComma(args)
	switch {
	case len(split) == 3 || len(split) == 4:
		for _, group := range split {
			if len(group) != 1 {
				return nil, nil, false
			}
			channels = append(channels, group[0])
		}
		if len(channels) == 4 {
			return channels[:3], channels[3], true
		}
		return channels, nil, true
	case len(split) == 1:
		group := split[0]
		if len(group) == 5 && IsLiteral(group[3], "/") {
			return group[:3], group[4], true
		}
		if len(group) == 3 {
			return group, nil, true
		}
	}
	return nil, nil, false
}

func parseAlpha(token Token) (Fl, bool) {
	switch token := token.(type) {
	case nil:
		return 1, true
	case Number:
		return clamp01(token.Value), true
	case Percentage:
		return clamp01(token.Value / 100), true
	}
	return 0, false
}

func clamp01(v Fl) Fl { return utils.Clamp(v, 0, 1) }

func parseRGB(args []Token) Color {
	channels, alphaToken, ok := colorArguments(args)
	if !ok {
		return Color{}
	}
	alpha, ok := parseAlpha(alphaToken)
	if !ok {
		return Color{}
	}
	var values [3]Fl
	// channels are either all numbers or all percentages
	switch channels[0].(type) {
	case Number:
		for i, c := range channels {
			n, ok := c.(Number)
			if !ok {
				return Color{}
			}
			values[i] = clamp01(n.Value / 255)
		}
	case Percentage:
		for i, c := range channels {
			p, ok := c.(Percentage)
			if !ok {
				return Color{}
			}
			values[i] = clamp01(p.Value / 100)
		}
	default:
		return Color{}
	}
	return Color{Type: ColorRGBA, RGBA: RGBA{R: values[0], G: values[1], B: values[2], A: alpha}}
}

func parseHSL(args []Token) Color {
	channels, alphaToken, ok := colorArguments(args)
	if !ok {
		return Color{}
	}
	alpha, ok := parseAlpha(alphaToken)
	if !ok {
		return Color{}
	}
	var hue Fl
	switch h := channels[0].(type) {
	case Number:
		hue = h.Value
	case Dimension:
		if h.Unit != "deg" {
			return Color{}
		}
		hue = h.Value
	default:
		return Color{}
	}
	s, ok1 := channels[1].(Percentage)
	l, ok2 := channels[2].(Percentage)
	if !ok1 || !ok2 {
		return Color{}
	}
	r, g, b := hslToRGB(hue, clamp01(s.Value/100), clamp01(l.Value/100))
	return Color{Type: ColorRGBA, RGBA: RGBA{R: r, G: g, B: b, A: alpha}}
}

func hslToRGB(hue, saturation, lightness Fl) (Fl, Fl, Fl) {
	hue = math.Mod(hue/360, 1)
	if hue < 0 {
		hue += 1
	}
	var m2 Fl
	if lightness <= 0.5 {
		m2 = lightness * (saturation + 1)
	} else {
		m2 = lightness + saturation - lightness*saturation
	}
	m1 := lightness*2 - m2
	return hueToRGB(m1, m2, hue+1./3), hueToRGB(m1, m2, hue), hueToRGB(m1, m2, hue-1./3)
}

func hueToRGB(m1, m2, h Fl) Fl {
	if h < 0 {
		h += 1
	}
	if h > 1 {
		h -= 1
	}
	switch {
	case h*6 < 1:
		return m1 + (m2-m1)*h*6
	case h*2 < 1:
		return m2
	case h*3 < 2:
		return m1 + (m2-m1)*(2./3-h)*6
	default:
		return m1
	}
}
