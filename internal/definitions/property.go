package definitions

import (
	"unicode"

	"github.com/turin-lang/turin/internal/ast"
	"github.com/turin-lang/turin/internal/typesystem"
)

// Property is a named, typed slot of a source-defined type, materialized
// either from an inline declaration or from a property reference resolved
// against a peer top-level declaration.
type Property struct {
	Name         string
	Type         typesystem.TypeUsage
	InitialValue ast.Expression
	DefaultValue ast.Expression
}

// PropertyFromDeclaration materializes a property from an inline or
// top-level declaration.
func PropertyFromDeclaration(decl *ast.PropertyDeclaration) *Property {
	return &Property{
		Name:         decl.Name,
		Type:         decl.Type.Usage,
		InitialValue: decl.InitialValue,
		DefaultValue: decl.DefaultValue,
	}
}

// PropertyFromReference materializes a property by resolving the reference
// against a peer top-level property declaration.
func PropertyFromReference(reference *ast.PropertyReference, resolver SymbolResolver) (*Property, bool) {
	decl, ok := Root(resolver).FindDefinition(reference)
	if !ok {
		return nil, false
	}
	return PropertyFromDeclaration(decl), true
}

func (p *Property) HasInitialValue() bool { return p.InitialValue != nil }
func (p *Property) HasDefaultValue() bool { return p.DefaultValue != nil }

// GetterName is the synthesized accessor name: get plus the property name
// in PascalCase.
func (p *Property) GetterName() string {
	return "get" + pascalCase(p.Name)
}

// SetterName is the synthesized mutator name: set plus the property name in
// PascalCase.
func (p *Property) SetterName() string {
	return "set" + pascalCase(p.Name)
}

func (p *Property) SymbolName() string               { return p.Name }
func (p *Property) SymbolType() typesystem.TypeUsage { return p.Type }

func pascalCase(name string) string {
	if name == "" {
		return name
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
