// Package tree annotates every element of a document with a computed
// value for every CSS property applying to the output medium.
//
// This is step 4 of the “CSS 2.1 processing model”, the cascade being
// resolved upstream : each element provides its winning declarations.
//
// http://www.w3.org/TR/CSS21/intro.html#processing-model
//
// The declarations are first validated and the shorthands expanded.
// Each specified value is then resolved : most values are computed
// immediately, the others are deferred until the style of the parent
// (or of the element itself, for font-size relative units) is known.
// The deferred values are completed during a single top-down walk of
// the tree, which also applies inheritance and initial values.
package tree

import (
	"sort"
	"strings"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	pa "github.com/benoitkugler/webstyle/css/parser"
	pr "github.com/benoitkugler/webstyle/css/properties"
	"github.com/benoitkugler/webstyle/css/validation"
	"github.com/benoitkugler/webstyle/logger"
)

// ComputedStyle stores the computed values of one element.
// It is built once during the resolution and is read-only afterwards.
type ComputedStyle struct {
	values  [pr.NbProps]pr.Value
	present pr.PropSet // properties applying to the medium

	parent  *ComputedStyle
	element Element
}

func (c *ComputedStyle) set(prop pr.KnownProp, value pr.Value) {
	c.values[prop] = value
	c.present.Add(prop)
}

// Get returns the computed value of [prop], or nil if the
// property does not apply to the medium.
// The returned value is shared and must not be mutated.
// A nil style has no property.
func (c *ComputedStyle) Get(prop pr.KnownProp) pr.Value {
	if c == nil {
		return nil
	}
	return c.values[prop]
}

// Has returns true if [prop] applies to the medium.
func (c *ComputedStyle) Has(prop pr.KnownProp) bool { return c != nil && c.present.Has(prop) }

// Lookup returns the computed value of [prop] and
// true if it applies to the medium.
func (c *ComputedStyle) Lookup(prop pr.KnownProp) (pr.Value, bool) {
	if c == nil {
		return nil, false
	}
	return c.values[prop], c.present.Has(prop)
}

// Parent returns the style of the parent element, or nil for the root.
func (c *ComputedStyle) Parent() *ComputedStyle { return c.parent }

// Element returns the element annotated by the style.
func (c *ComputedStyle) Element() Element { return c.element }

// Props returns the properties present, in enum order.
func (c *ComputedStyle) Props() []pr.KnownProp { return c.present.Props() }

// FontSize returns the computed font size in pixels.
// It is safe to call on a nil style, returning the initial font size.
func (c *ComputedStyle) FontSize() Fl {
	if c == nil {
		return mediumFontSize
	}
	value := c.values[pr.PFontSize]
	if fs, in := fontSizeKeywords[value.Keyword()]; in {
		return fs
	}
	if len(value) == 1 {
		if d, ok := value[0].(pa.Dimension); ok && d.Unit == "px" {
			return d.Value
		}
	}
	return mediumFontSize
}

// ResolveColor return the color for [prop], replacing
// `currentColor` with the "color" property.
// An invalid color is returned for properties which are not colors,
// and for a nil style.
func (c *ComputedStyle) ResolveColor(prop pr.KnownProp) pa.Color {
	value := c.Get(prop)
	if len(value) != 1 {
		return pa.Color{}
	}
	color := pa.ParseColor(value[0])
	if color.Type == pa.ColorCurrentColor {
		if prop == pr.PColor { // computed as inherit
			return pa.Color{}
		}
		return c.ResolveColor(pr.PColor)
	}
	return color
}

// Map returns the serialized computed values, keyed by property names.
func (c *ComputedStyle) Map() map[string]string {
	out := make(map[string]string, c.present.Len())
	for _, prop := range c.present.Props() {
		out[prop.String()] = c.values[prop].String()
	}
	return out
}

// Serialize returns a deterministic text representation of the style,
// one `name: value;` per line, sorted by name.
func (c *ComputedStyle) Serialize() string {
	m := c.Map()
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	for _, name := range names {
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(m[name])
		b.WriteString(";\n")
	}
	return b.String()
}

// StyleFor provides a convenience function `Get` to get the computed styles for an Element.
type StyleFor struct {
	lock           sync.Mutex
	computedStyles map[Element]*ComputedStyle
}

func newStyleFor() *StyleFor {
	return &StyleFor{computedStyles: make(map[Element]*ComputedStyle)}
}

// Get returns the style of [element], or nil if it is not
// part of the resolved tree.
func (s *StyleFor) Get(element Element) *ComputedStyle {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.computedStyles[element]
}

// Len returns the number of resolved elements.
func (s *StyleFor) Len() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.computedStyles)
}

func (s *StyleFor) set(element Element, style *ComputedStyle) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.computedStyles[element] = style
}

// Options configures a [Resolver].
type Options struct {
	// Medium is the output medium, which selects
	// the applicable properties.
	Medium pr.Medium

	// Parallel enables the concurrent resolution
	// of sibling subtrees.
	Parallel bool

	// Logger is used for progress and warnings messages. If nil,
	// the package [logger] is used.
	Logger *zap.Logger
}

// Resolver computes the styles of element trees.
// It may be used concurrently on different trees.
type Resolver struct {
	medium     pr.Medium
	parallel   bool
	applicable []pr.KnownProp // in resolution order

	logger *zap.Logger // nil for the package loggers
}

// NewResolver returns a resolver for the given options.
func NewResolver(opts Options) *Resolver {
	out := &Resolver{
		medium:   opts.Medium,
		parallel: opts.Parallel,
		logger:   opts.Logger,
	}
	for _, prop := range resolutionOrder {
		if pr.Applies(prop, opts.Medium) {
			out.applicable = append(out.applicable, prop)
		}
	}
	return out
}

// loggers returns the progress and warning loggers.
func (r *Resolver) loggers() (progress, warning *zap.SugaredLogger) {
	if r.logger == nil {
		return logger.ProgressLogger, logger.WarningLogger
	}
	return r.logger.Named("progress").Sugar(), r.logger.Named("warning").Sugar()
}

// Resolve computes the style of every element in the tree starting at [root].
//
// Invalid declarations and values which can't be resolved never abort the
// resolution : they are logged, replaced by a default, and returned
// combined in the error. The returned [StyleFor] is always complete.
func (r *Resolver) Resolve(root Element) (*StyleFor, error) {
	progress, warning := r.loggers()
	progress.Infof("Step 2 - Resolving styles for the %s medium", r.medium)

	w := walker{resolver: r, out: newStyleFor(), warning: warning}
	rootStyle := w.computeStyle(root, nil, nil)
	if r.parallel {
		var g errgroup.Group
		w.walkParallel(&g, root, rootStyle, rootStyle)
		_ = g.Wait() // errors are collected by the walker
	} else {
		w.walk(root, rootStyle, rootStyle)
	}

	progress.Infof("Step 3 - %d element(s) resolved", w.out.Len())
	return w.out, w.errs
}

// walker holds the state of one resolution
type walker struct {
	resolver *Resolver
	out      *StyleFor
	warning  *zap.SugaredLogger

	lock sync.Mutex
	errs error
}

func (w *walker) addError(err error) {
	if err == nil {
		return
	}
	w.lock.Lock()
	defer w.lock.Unlock()
	w.errs = multierr.Append(w.errs, err)
}

// walk computes the styles of the descendants of [element],
// whose style must be finalized.
func (w *walker) walk(element Element, style, rootStyle *ComputedStyle) {
	for _, child := range element.Children() {
		childStyle := w.computeStyle(child, style, rootStyle)
		w.walk(child, childStyle, rootStyle)
	}
}

// walkParallel is the same as [walk] but forks a goroutine
// per child subtree.
func (w *walker) walkParallel(g *errgroup.Group, element Element, style, rootStyle *ComputedStyle) {
	for _, child := range element.Children() {
		child := child
		g.Go(func() error {
			childStyle := w.computeStyle(child, style, rootStyle)
			w.walkParallel(g, child, childStyle, rootStyle)
			return nil
		})
	}
}

// computeStyle computes the style of [element], whose parent
// style is [parent], nil for the root.
func (w *walker) computeStyle(element Element, parent, root *ComputedStyle) *ComputedStyle {
	r := w.resolver

	declarations, err := validation.PreprocessDeclarationsWith(element.Declarations(), w.warning)
	w.addError(err)
	specified := validation.Merge(declarations)

	// first pass : compute the values which don't depend on the context
	results := make(map[pr.KnownProp]Result, len(specified))
	for prop, value := range specified {
		if !pr.Applies(prop, r.medium) {
			continue
		}
		result, err := Resolve(prop, value, nil)
		if err != nil {
			w.recover(prop, err)
			result = Result{Value: pr.InitialValue(prop)}
		}
		results[prop] = result
	}

	// second pass : inheritance, initial values and deferred values
	style := &ComputedStyle{parent: parent, element: element}
	ctx := &Context{Parent: parent, Root: root, Self: style}
	for _, prop := range r.applicable {
		result, isSpecified := results[prop]
		switch {
		case !isSpecified && pr.IsInherited(prop) && parent != nil:
			style.set(prop, parent.values[prop])
		case !isSpecified:
			style.set(prop, pr.InitialValue(prop))
		case result.IsDeferred():
			result, err := Resolve(prop, specified[prop], ctx)
			if err != nil {
				w.recover(prop, err)
				result = Result{Value: pr.InitialValue(prop)}
			}
			style.set(prop, result.Value)
		default:
			style.set(prop, result.Value)
		}
	}

	w.out.set(element, style)
	return style
}

func (w *walker) recover(prop pr.KnownProp, err error) {
	w.warning.Warnf("Using the initial value of %s: %s", prop, err)
	w.addError(err)
}
