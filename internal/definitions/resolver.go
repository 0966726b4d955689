package definitions

import (
	"github.com/turin-lang/turin/internal/ast"
	"github.com/turin-lang/turin/internal/jvm"
	"github.com/turin-lang/turin/internal/typesystem"
)

// SymbolResolver maps names, in a syntactic context, to definitions, type
// usages, symbols and callable signatures. Absence is part of the return
// contract: a resolver never fails on a name it simply does not know.
type SymbolResolver interface {
	// Parent returns the resolver this one was composed into, or nil.
	// It is used only to walk outward when a lookup fails locally.
	Parent() SymbolResolver
	SetParent(parent SymbolResolver)

	// FindDefinition resolves a property reference against a peer
	// top-level property declaration.
	FindDefinition(reference *ast.PropertyReference) (*ast.PropertyDeclaration, bool)

	// FindTypeDefinition resolves a simple or qualified type name in the
	// given syntactic context.
	FindTypeDefinition(name string, context ast.Node) (TypeDefinition, bool)

	// FindTypeUsage resolves a type name to a usage in the given context.
	FindTypeUsage(name string, context ast.Node) (typesystem.TypeUsage, bool)

	// FindJvmDefinition resolves a free function call to the low-level
	// method it invokes.
	FindJvmDefinition(call *ast.FunctionCall) (*jvm.MethodDefinition, bool)

	// FindSymbol resolves a value name in the given syntactic context.
	FindSymbol(name string, context ast.Node) (ast.Node, bool)

	// HasPackage reports whether any backing source knows the package.
	HasPackage(name string) bool
}

// Root walks the parent chain outward to the outermost resolver, the one
// every definition-level lookup should go through.
func Root(resolver SymbolResolver) SymbolResolver {
	r := resolver
	for r.Parent() != nil {
		r = r.Parent()
	}
	return r
}
