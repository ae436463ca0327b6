// Package validation expands shorthand properties and validates
// the values of the longhand ones.
package validation

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"

	pa "github.com/benoitkugler/webstyle/css/parser"
	pr "github.com/benoitkugler/webstyle/css/properties"
	"github.com/benoitkugler/webstyle/logger"
)

type Token = pa.Token

// Declaration is a validated longhand declaration.
type Declaration struct {
	Name      pr.KnownProp
	Value     pr.Value
	Important bool
}

// Validate validates one longhand property value, returning
// its normalized form. The `inherit` and `initial` keywords are accepted
// for every property.
func Validate(prop pr.KnownProp, tokens []Token) (pr.Value, error) {
	if prop == 0 || prop >= pr.NbProps {
		return nil, &UnknownProperty{Name: prop.String()}
	}
	switch keyword := getSingleKeyword(tokens); keyword {
	case "inherit", "initial":
		return ident(keyword), nil
	}
	if value := validators[prop](tokens); value != nil {
		return value, nil
	}
	return nil, &InvalidValue{Property: prop, Value: tokens}
}

// ExpandDeclaration validates the declaration [name], expanding it
// if it is a shorthand. The returned declarations are in the canonical
// order of the shorthand longhands.
func ExpandDeclaration(name string, tokens []Token) ([]Declaration, error) {
	if sh, ok := pr.ShorthandsFromNames[name]; ok {
		props, err := Expand(sh, tokens)
		if err != nil {
			return nil, err
		}
		out := make([]Declaration, 0, len(props))
		for _, longhand := range sh.Longhands() {
			out = append(out, Declaration{Name: longhand, Value: props[longhand]})
		}
		return out, nil
	}

	prop, ok := pr.PropsFromNames[name]
	if !ok {
		return nil, &UnknownProperty{Name: name}
	}
	value, err := Validate(prop, tokens)
	if err != nil {
		return nil, err
	}
	return []Declaration{{Name: prop, Value: value}}, nil
}

// PreprocessDeclarations filters unsupported properties or invalid values,
// and expands shorthand properties.
//
// A warning is logged for every ignored declaration, and the corresponding
// errors are combined in the returned error, which is nil if every
// declaration is valid. The kept declarations preserve the source order.
func PreprocessDeclarations(declarations []pa.Declaration) ([]Declaration, error) {
	return PreprocessDeclarationsWith(declarations, logger.WarningLogger)
}

// PreprocessDeclarationsWith is the same as [PreprocessDeclarations],
// but reports the ignored declarations to [warning].
func PreprocessDeclarationsWith(declarations []pa.Declaration, warning *zap.SugaredLogger) ([]Declaration, error) {
	var (
		out  []Declaration
		errs error
	)
	for _, declaration := range declarations {
		expanded, err := ExpandDeclaration(declaration.Name, declaration.Value)
		if err != nil {
			warning.Warnf("Ignored `%s: %s`, %s.", declaration.Name, pa.Serialize(declaration.Value), err)
			errs = multierr.Append(errs, err)
			continue
		}
		for _, decl := range expanded {
			decl.Important = declaration.Important
			out = append(out, decl)
		}
	}
	return out, errs
}

// Merge collects the declarations in a map, the later ones overriding
// the earlier ones unless they are less important.
func Merge(declarations []Declaration) pr.Properties {
	out := make(pr.Properties, len(declarations))
	important := pr.PropSet{}
	for _, decl := range declarations {
		if important.Has(decl.Name) && !decl.Important {
			continue
		}
		if decl.Important {
			important.Add(decl.Name)
		}
		out[decl.Name] = decl.Value
	}
	return out
}
