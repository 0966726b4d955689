// Package resolvers provides the symbol resolution providers and their
// composition. A composed resolver owns an ordered list of children and
// answers every lookup with the first present result; leaf providers only
// understand canonical names, so the composed layer also expands simple
// names through the enclosing unit's namespace and imports.
package resolvers

import (
	"strings"

	"github.com/turin-lang/turin/internal/ast"
	"github.com/turin-lang/turin/internal/definitions"
	"github.com/turin-lang/turin/internal/jvm"
	"github.com/turin-lang/turin/internal/typesystem"
)

// parentHolder carries the back-pointer every resolver needs once it is
// composed into another.
type parentHolder struct {
	parent definitions.SymbolResolver
}

func (h *parentHolder) Parent() definitions.SymbolResolver          { return h.parent }
func (h *parentHolder) SetParent(parent definitions.SymbolResolver) { h.parent = parent }

// ComposedResolver delegates to its children in order and keeps the first
// present answer. Composition wires each child's parent pointer back to
// the composite.
type ComposedResolver struct {
	parentHolder
	children []definitions.SymbolResolver
}

func NewComposedResolver(children ...definitions.SymbolResolver) *ComposedResolver {
	c := &ComposedResolver{children: children}
	for _, child := range children {
		child.SetParent(c)
	}
	return c
}

func (c *ComposedResolver) FindDefinition(reference *ast.PropertyReference) (*ast.PropertyDeclaration, bool) {
	for _, child := range c.children {
		if decl, ok := child.FindDefinition(reference); ok {
			return decl, true
		}
	}
	return nil, false
}

// FindTypeDefinition expands a simple name to its candidate canonical
// names using the context's enclosing unit, then tries every candidate
// against the children in order.
func (c *ComposedResolver) FindTypeDefinition(name string, context ast.Node) (definitions.TypeDefinition, bool) {
	for _, candidate := range c.candidateNames(name, context) {
		for _, child := range c.children {
			if def, ok := child.FindTypeDefinition(candidate, context); ok {
				return def, true
			}
		}
	}
	return nil, false
}

func (c *ComposedResolver) FindTypeUsage(name string, context ast.Node) (typesystem.TypeUsage, bool) {
	if primitive, ok := typesystem.Primitive(name); ok {
		return primitive, true
	}
	def, ok := c.FindTypeDefinition(name, context)
	if !ok {
		return nil, false
	}
	return typesystem.NewReferenceUsage(def.QualifiedName()), true
}

func (c *ComposedResolver) FindJvmDefinition(call *ast.FunctionCall) (*jvm.MethodDefinition, bool) {
	for _, child := range c.children {
		if def, ok := child.FindJvmDefinition(call); ok {
			return def, true
		}
	}
	return nil, false
}

func (c *ComposedResolver) FindSymbol(name string, context ast.Node) (ast.Node, bool) {
	for _, child := range c.children {
		if node, ok := child.FindSymbol(name, context); ok {
			return node, true
		}
	}
	return nil, false
}

func (c *ComposedResolver) HasPackage(name string) bool {
	for _, child := range c.children {
		if child.HasPackage(name) {
			return true
		}
	}
	return false
}

// candidateNames lists the canonical names a name can resolve to, most
// specific first: the unit's own namespace, explicit single-type imports,
// package imports, java.lang, and finally the name itself. Qualified
// names are taken as-is.
func (c *ComposedResolver) candidateNames(name string, context ast.Node) []string {
	if strings.Contains(name, ".") {
		return []string{name}
	}

	var candidates []string
	if unit, ok := ast.EnclosingUnit(context); ok {
		if unit.Namespace != nil && unit.Namespace.Name != "" {
			candidates = append(candidates, unit.Namespace.Name+"."+name)
		}
		for _, imported := range unit.Imports {
			if imported.AllOfPackage {
				continue
			}
			if jvm.SimpleName(imported.Path) == name {
				candidates = append(candidates, imported.Path)
			}
		}
		for _, imported := range unit.Imports {
			if imported.AllOfPackage {
				candidates = append(candidates, imported.Path+"."+name)
			}
		}
	}
	candidates = append(candidates, "java.lang."+name, name)
	return candidates
}
