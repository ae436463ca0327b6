package tree

import (
	"fmt"

	pa "github.com/benoitkugler/webstyle/css/parser"
	pr "github.com/benoitkugler/webstyle/css/properties"
)

// Dependency is the context a specified value needs
// to be computed.
type Dependency uint8

const (
	// Independent values are computed without context.
	Independent Dependency = iota
	// NeedsParent is used for `inherit`, the relative font sizes and weights
	// and the text decorations.
	NeedsParent
	// NeedsFontSize is used for the font relative lengths.
	NeedsFontSize
	// NeedsColor is used for `currentColor`, except on the `color` property.
	NeedsColor
	// NeedsRoot is used for `rem` lengths.
	NeedsRoot
	// NeedsBorderStyle is used for border and outline widths, which
	// are zero when the matching style is `none` or `hidden`.
	NeedsBorderStyle
)

func (d Dependency) String() string {
	switch d {
	case Independent:
		return "independent"
	case NeedsParent:
		return "parent"
	case NeedsFontSize:
		return "font-size"
	case NeedsColor:
		return "color"
	case NeedsRoot:
		return "root"
	case NeedsBorderStyle:
		return "border-style"
	default:
		return fmt.Sprintf("<invalid dependency %d>", d)
	}
}

// Result is either a computed value, or the kind of context
// required to compute it.
type Result struct {
	Value    pr.Value   // nil if deferred
	Deferred Dependency // Independent if Value is set
}

// IsDeferred returns true if the value has not been computed yet.
func (r Result) IsDeferred() bool { return r.Deferred != Independent }

// UnresolvableRelativeValue is returned when the context needed by
// a relative value is missing or not usable.
// The property then takes its initial value.
type UnresolvableRelativeValue struct {
	Property pr.KnownProp
	Value    pr.Value
	Reason   string
}

func (e *UnresolvableRelativeValue) Error() string {
	return fmt.Sprintf("can't resolve %s: %s (%s)", e.Property, e.Value, e.Reason)
}

// Context gives access to the styles a value may depend on.
type Context struct {
	Parent *ComputedStyle // nil for the root element
	Root   *ComputedStyle // nil for the root element
	// Self is the style being computed : the properties
	// preceding the current one in [resolutionOrder] are available.
	// A nil style is treated as empty.
	Self *ComputedStyle
}

// parentValue returns the computed value of the parent,
// or the initial value for the root element.
func (ctx *Context) parentValue(prop pr.KnownProp) pr.Value {
	if ctx.Parent == nil {
		return pr.InitialValue(prop)
	}
	return ctx.Parent.Get(prop)
}

// fontSize returns the computed font size of the element, in pixels.
func (ctx *Context) fontSize() Fl { return ctx.Self.FontSize() }

// rootFontSize returns the computed font size of the root element.
// When specified on the font-size property of the root element, the
// rem units refer to the property’s initial value.
func (ctx *Context) rootFontSize() Fl {
	if ctx.Root == nil {
		return ctx.Self.FontSize()
	}
	return ctx.Root.FontSize()
}

// Resolve computes the [specified] value of [prop].
//
// With a nil [ctx], only the values which do not depend on the element
// context are computed : the others are returned as deferred, with the
// kind of context they need. With a non nil [ctx], the value is always
// computed. [specified] must have been validated.
func Resolve(prop pr.KnownProp, specified pr.Value, ctx *Context) (Result, error) {
	if ctx == nil {
		if dep := dependencyOf(prop, specified); dep != Independent {
			return Result{Deferred: dep}, nil
		}
		// never accessed by independent values
		ctx = &Context{}
	}

	// text-decoration handles inherit and initial itself
	if prop != pr.PTextDecoration {
		switch specified.Keyword() {
		case "initial":
			return Result{Value: pr.InitialValue(prop)}, nil
		case "inherit":
			return Result{Value: ctx.parentValue(prop)}, nil
		}
	}

	fn := computerFunctions[prop]
	if fn == nil {
		return Result{Value: specified}, nil
	}
	value, err := fn(ctx, prop, specified)
	if err != nil {
		return Result{}, err
	}
	return Result{Value: value}, nil
}

// dependencyOf returns the context needed by [value].
func dependencyOf(prop pr.KnownProp, value pr.Value) Dependency {
	keyword := value.Keyword()
	if keyword == "inherit" {
		return NeedsParent
	}

	switch prop {
	case pr.PTextDecoration:
		return NeedsParent
	case pr.PColor:
		if keyword == "currentcolor" {
			return NeedsParent
		}
	case pr.PBackgroundColor, pr.PBorderTopColor, pr.PBorderRightColor,
		pr.PBorderBottomColor, pr.PBorderLeftColor, pr.POutlineColor:
		if keyword == "currentcolor" {
			return NeedsColor
		}
	case pr.PFontSize:
		if keyword == "larger" || keyword == "smaller" {
			return NeedsParent
		}
		if len(value) == 1 {
			switch token := value[0].(type) {
			case pa.Percentage:
				return NeedsParent
			case pa.Dimension:
				switch token.Unit {
				case "em", "ex", "ch":
					return NeedsParent
				case "rem":
					return NeedsRoot
				}
			}
		}
		return Independent
	case pr.PFontWeight:
		if keyword == "bolder" || keyword == "lighter" {
			return NeedsParent
		}
	case pr.PBorderTopWidth, pr.PBorderRightWidth, pr.PBorderBottomWidth,
		pr.PBorderLeftWidth, pr.POutlineWidth:
		if keyword != "initial" {
			return NeedsBorderStyle
		}
	case pr.PLineHeight:
		if len(value) == 1 {
			if _, ok := value[0].(pa.Percentage); ok {
				return NeedsFontSize
			}
		}
	case pr.PVerticalAlign:
		if keyword == "super" || keyword == "sub" {
			return NeedsFontSize
		}
		if len(value) == 1 {
			if _, ok := value[0].(pa.Percentage); ok {
				return NeedsFontSize
			}
		}
	}
	return unitsDependency(value)
}

func unitsDependency(tokens []pa.Token) Dependency {
	for _, token := range tokens {
		switch token := token.(type) {
		case pa.Dimension:
			switch token.Unit {
			case "em", "ex", "ch":
				return NeedsFontSize
			case "rem":
				return NeedsRoot
			}
		case pa.Function:
			if dep := unitsDependency(token.Arguments); dep != Independent {
				return dep
			}
		}
	}
	return Independent
}

// resolutionOrder is the order in which the properties of one element
// are computed : the properties used by other ones come first.
var resolutionOrder []pr.KnownProp

func init() {
	priority := []pr.KnownProp{
		pr.PFontSize, pr.PColor, pr.PLineHeight, pr.PPosition, pr.PFloat,
		pr.PBorderTopStyle, pr.PBorderRightStyle, pr.PBorderBottomStyle, pr.PBorderLeftStyle,
		pr.POutlineStyle,
	}
	resolutionOrder = append(resolutionOrder, priority...)
	seen := pr.NewPropSet(priority...)
	for p := pr.KnownProp(1); p < pr.NbProps; p++ {
		if !seen.Has(p) {
			resolutionOrder = append(resolutionOrder, p)
		}
	}
}
