package definitions

import (
	"github.com/turin-lang/turin/internal/ast"
	"github.com/turin-lang/turin/internal/jvm"
	"github.com/turin-lang/turin/internal/typesystem"
)

// ObjectQualifiedName is the root of every ancestor chain.
const ObjectQualifiedName = "java.lang.Object"

// Symbol is a named entity a type definition can surface during symbol
// lookup, such as a property or a field.
type Symbol interface {
	SymbolName() string
	SymbolType() typesystem.TypeUsage
}

// TypeDefinition is the polymorphic view over a type of any origin: parsed
// from source, reified from the host runtime registry, or read out of a
// class archive. Every variant answers the same queries.
//
// Find operations report absence as (nil, nil); errors are reserved for
// ill-formed calls and initialization failures.
type TypeDefinition interface {
	Name() string

	// QualifiedName is the canonical dotted name; InternalName the
	// '/'-separated form used in descriptors.
	QualifiedName() string
	InternalName() string

	IsClass() bool
	IsInterface() bool

	// AllAncestors is the transitive ancestor chain. Its root is
	// java.lang.Object when no explicit base is declared.
	AllAncestors() []*typesystem.ReferenceUsage

	// Superclass resolves the direct superclass definition. It is nil for
	// java.lang.Object itself.
	Superclass() (TypeDefinition, error)

	// Constructors returns the internal constructors, triggering lazy
	// initialization on first call.
	Constructors() ([]*InternalConstructorDefinition, error)

	// FindConstructor returns the first constructor matching the actual
	// argument list, or nil when none matches.
	FindConstructor(actuals []*ast.ActualParam) (*InternalConstructorDefinition, error)

	// ResolveConstructorCall resolves a constructor call site to its
	// low-level definition, failing when no candidate matches.
	ResolveConstructorCall(actuals []*ast.ActualParam) (*jvm.ConstructorDefinition, error)

	// FindMethod returns the first method with the given name matching the
	// actual argument list, or nil when none matches.
	FindMethod(name string, actuals []*ast.ActualParam, staticContext bool) (*InternalMethodDefinition, error)

	// FindMethodByDescriptors returns the single method matching the
	// already-type-checked argument descriptors. Any mismatch is a
	// compiler bug and fails fast.
	FindMethodByDescriptors(name string, argTypes []jvm.Type, staticContext bool) (*jvm.MethodDefinition, error)

	// FieldType returns the declared type of a field or property.
	FieldType(name string, staticContext bool) (typesystem.TypeUsage, error)

	CanFieldBeAssigned(name string) bool

	// FindSymbol scans the type's own members for a named symbol.
	FindSymbol(name string, resolver SymbolResolver) (Symbol, bool)
}
