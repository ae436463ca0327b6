// Package properties defines the registry of the supported CSS properties:
// their names, initial values, inheritance and the media they apply to.
//
// The style computation is schematically :
//
//	declarations (validation)-> specified values (resolution)-> computed values
//
// Specified and computed values share the same representation, [Value].
package properties

import (
	"fmt"

	"github.com/benoitkugler/webstyle/css/parser"
	"github.com/benoitkugler/webstyle/utils"
)

type Fl = utils.Fl

// KnownProp efficiently encode a known CSS property
type KnownProp uint8

func (p KnownProp) String() string {
	if p == 0 || p >= NbProps {
		return fmt.Sprintf("<invalid property %d>", p)
	}
	return propsNames[p]
}

// Value is a list of tokens, used for initial, specified and computed values.
type Value []parser.Token

func (v Value) String() string { return parser.Serialize(v) }

// Keyword returns the lower cased identifier if [v]
// is made of exactly one identifier, or an empty string.
func (v Value) Keyword() string { return parser.SingleKeyword(v) }

// Properties is a general container for specified or computed properties.
type Properties map[KnownProp]Value

// UpdateWith merge the entries from `other` to `p`.
func (p Properties) UpdateWith(other Properties) {
	for k, v := range other {
		p[k] = v
	}
}

const maxProps = 128

// PropSet is a set of properties, stored as a bitmap.
type PropSet [maxProps / 64]uint64

func NewPropSet(props ...KnownProp) PropSet {
	var s PropSet
	for _, p := range props {
		s.Add(p)
	}
	return s
}

func (s *PropSet) Add(p KnownProp) { s[p/64] |= 1 << (p % 64) }

func (s PropSet) Has(p KnownProp) bool { return s[p/64]&(1<<(p%64)) != 0 }

// Len returns the number of properties in the set.
func (s PropSet) Len() int {
	n := 0
	for p := KnownProp(1); p < NbProps; p++ {
		if s.Has(p) {
			n++
		}
	}
	return n
}

// Props returns the properties in enum order.
func (s PropSet) Props() []KnownProp {
	var out []KnownProp
	for p := KnownProp(1); p < NbProps; p++ {
		if s.Has(p) {
			out = append(out, p)
		}
	}
	return out
}
