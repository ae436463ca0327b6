package validation

import (
	"fmt"

	pa "github.com/benoitkugler/webstyle/css/parser"
	pr "github.com/benoitkugler/webstyle/css/properties"
)

// MalformedShorthand is returned when a shorthand value has
// the wrong number of components, or a component not matching
// any of its longhands.
type MalformedShorthand struct {
	Shorthand pr.Shorthand
	Token     pa.Token // the offending token, nil if the value as a whole is wrong
	Reason    string
}

func (e *MalformedShorthand) Error() string {
	if e.Token == nil {
		return fmt.Sprintf("malformed %s shorthand: %s", e.Shorthand, e.Reason)
	}
	return fmt.Sprintf("malformed %s shorthand at `%s`: %s", e.Shorthand, pa.Serialize([]pa.Token{e.Token}), e.Reason)
}

// UnknownProperty is returned for names which are neither a
// supported longhand nor a supported shorthand.
type UnknownProperty struct {
	Name string
}

func (e *UnknownProperty) Error() string { return fmt.Sprintf("unknown property %s", e.Name) }

// InvalidValue is returned when a longhand value does not
// match the grammar of the property.
type InvalidValue struct {
	Property pr.KnownProp
	Value    pr.Value
}

func (e *InvalidValue) Error() string {
	if len(e.Value) == 0 {
		return fmt.Sprintf("invalid value for %s: no value", e.Property)
	}
	return fmt.Sprintf("invalid value for %s: `%s`", e.Property, e.Value)
}
