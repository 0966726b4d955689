package resolvers

import (
	"strings"

	"github.com/turin-lang/turin/internal/ast"
	"github.com/turin-lang/turin/internal/definitions"
	"github.com/turin-lang/turin/internal/jvm"
	"github.com/turin-lang/turin/internal/typesystem"
)

// InSourceResolver resolves names against the compilation units being
// compiled. Type definitions are memoized per qualified name so that lazy
// initialization state is shared by every lookup.
type InSourceResolver struct {
	parentHolder
	units []*ast.CompilationUnit
	types map[string]*definitions.SourceType
}

func NewInSourceResolver(units ...*ast.CompilationUnit) *InSourceResolver {
	return &InSourceResolver{
		units: units,
		types: map[string]*definitions.SourceType{},
	}
}

// Units returns the compilation units this resolver serves.
func (r *InSourceResolver) Units() []*ast.CompilationUnit { return r.units }

func (r *InSourceResolver) FindDefinition(reference *ast.PropertyReference) (*ast.PropertyDeclaration, bool) {
	for _, unit := range r.units {
		for _, decl := range unit.TopPropertyDeclarations() {
			if decl.Name == reference.Name {
				return decl, true
			}
		}
	}
	return nil, false
}

func (r *InSourceResolver) FindTypeDefinition(name string, context ast.Node) (definitions.TypeDefinition, bool) {
	if memoized, ok := r.types[name]; ok {
		return memoized, true
	}
	for _, unit := range r.units {
		decl, ok := unit.TopTypeDeclaration(simpleNameIn(unit, name))
		if !ok || decl.QualifiedName() != name {
			continue
		}
		def := definitions.NewSourceType(decl, r)
		r.types[name] = def
		return def, true
	}
	return nil, false
}

// simpleNameIn strips the unit's namespace prefix from a canonical name,
// returning the input unchanged when it does not belong to the unit.
func simpleNameIn(unit *ast.CompilationUnit, name string) string {
	if unit.Namespace == nil || unit.Namespace.Name == "" {
		return name
	}
	prefix := unit.Namespace.Name + "."
	if !strings.HasPrefix(name, prefix) {
		return name
	}
	rest := strings.TrimPrefix(name, prefix)
	if strings.Contains(rest, ".") {
		return name
	}
	return rest
}

func (r *InSourceResolver) FindTypeUsage(name string, context ast.Node) (typesystem.TypeUsage, bool) {
	def, ok := r.FindTypeDefinition(name, context)
	if !ok {
		return nil, false
	}
	return typesystem.NewReferenceUsage(def.QualifiedName()), true
}

// Free functions do not exist in source units.
func (r *InSourceResolver) FindJvmDefinition(call *ast.FunctionCall) (*jvm.MethodDefinition, bool) {
	return nil, false
}

func (r *InSourceResolver) FindSymbol(name string, context ast.Node) (ast.Node, bool) {
	for _, unit := range r.units {
		for _, decl := range unit.TopPropertyDeclarations() {
			if decl.Name == name {
				return decl, true
			}
		}
	}
	return nil, false
}

func (r *InSourceResolver) HasPackage(name string) bool {
	for _, unit := range r.units {
		if unit.Namespace == nil {
			continue
		}
		namespace := unit.Namespace.Name
		if namespace == name || strings.HasPrefix(namespace, name+".") {
			return true
		}
	}
	return false
}
