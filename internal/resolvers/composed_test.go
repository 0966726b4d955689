package resolvers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turin-lang/turin/internal/ast"
	"github.com/turin-lang/turin/internal/definitions"
	"github.com/turin-lang/turin/internal/jvm"
	"github.com/turin-lang/turin/internal/typesystem"
)

// stubResolver answers only the names it was seeded with.
type stubResolver struct {
	parentHolder
	types   map[string]definitions.TypeDefinition
	symbols map[string]ast.Node
}

func (s *stubResolver) FindDefinition(*ast.PropertyReference) (*ast.PropertyDeclaration, bool) {
	return nil, false
}

func (s *stubResolver) FindTypeDefinition(name string, context ast.Node) (definitions.TypeDefinition, bool) {
	def, ok := s.types[name]
	return def, ok
}

func (s *stubResolver) FindTypeUsage(name string, context ast.Node) (typesystem.TypeUsage, bool) {
	def, ok := s.types[name]
	if !ok {
		return nil, false
	}
	return typesystem.NewReferenceUsage(def.QualifiedName()), true
}

func (s *stubResolver) FindJvmDefinition(*ast.FunctionCall) (*jvm.MethodDefinition, bool) {
	return nil, false
}

func (s *stubResolver) FindSymbol(name string, context ast.Node) (ast.Node, bool) {
	node, ok := s.symbols[name]
	return node, ok
}

func (s *stubResolver) HasPackage(name string) bool { return false }

func jdkType(t *testing.T, name string) definitions.TypeDefinition {
	t.Helper()
	def, ok := NewJdkResolver().FindTypeDefinition(name, nil)
	require.True(t, ok, name)
	return def
}

func TestComposedFirstChildWins(t *testing.T) {
	str := jdkType(t, "java.lang.String")
	obj := jdkType(t, "java.lang.Object")
	first := &stubResolver{types: map[string]definitions.TypeDefinition{"X": str}}
	second := &stubResolver{types: map[string]definitions.TypeDefinition{"X": obj}}
	composed := NewComposedResolver(first, second)

	def, ok := composed.FindTypeDefinition("X", nil)
	require.True(t, ok)
	assert.Same(t, str, def)
}

func TestComposedCandidatePrecedenceBeatsChildOrder(t *testing.T) {
	str := jdkType(t, "java.lang.String")
	obj := jdkType(t, "java.lang.Object")
	first := &stubResolver{types: map[string]definitions.TypeDefinition{"X": str}}
	second := &stubResolver{types: map[string]definitions.TypeDefinition{"java.lang.X": obj}}
	composed := NewComposedResolver(first, second)

	def, ok := composed.FindTypeDefinition("X", nil)
	require.True(t, ok)
	assert.Same(t, obj, def)
}

func TestCompositionWiresParents(t *testing.T) {
	first := &stubResolver{}
	second := &stubResolver{}
	composed := NewComposedResolver(first, second)

	assert.Same(t, definitions.SymbolResolver(composed), first.Parent())
	assert.Same(t, definitions.SymbolResolver(composed), second.Parent())
	assert.Same(t, definitions.SymbolResolver(composed), definitions.Root(first))
	assert.Same(t, definitions.SymbolResolver(composed), definitions.Root(composed))
}

func TestCandidateNames(t *testing.T) {
	unit := ast.NewCompilationUnit("demo")
	unit.AddImport(&ast.ImportDeclaration{Path: "java.util.Map"})
	unit.AddImport(&ast.ImportDeclaration{Path: "java.io", AllOfPackage: true})
	decl := ast.NewTypeDeclaration("Holder")
	unit.AddType(decl)
	ast.AssignParents(unit)

	composed := NewComposedResolver(NewInSourceResolver(unit))

	assert.Equal(t,
		[]string{"demo.Map", "java.util.Map", "java.io.Map", "java.lang.Map", "Map"},
		composed.candidateNames("Map", decl))
	assert.Equal(t,
		[]string{"demo.Thing", "java.io.Thing", "java.lang.Thing", "Thing"},
		composed.candidateNames("Thing", decl))
	assert.Equal(t,
		[]string{"a.b.C"},
		composed.candidateNames("a.b.C", decl))
	assert.Equal(t,
		[]string{"java.lang.String", "String"},
		composed.candidateNames("String", nil))
}

func TestInSourceShadowsPlatform(t *testing.T) {
	unit := ast.NewCompilationUnit("java.lang")
	decl := ast.NewTypeDeclaration("String")
	unit.AddType(decl)
	ast.AssignParents(unit)

	composed := NewComposedResolver(NewInSourceResolver(unit), NewJdkResolver())

	def, ok := composed.FindTypeDefinition("java.lang.String", decl)
	require.True(t, ok)
	_, isSource := def.(*definitions.SourceType)
	assert.True(t, isSource, "source unit must shadow the platform registry")
}

func TestComposedFindTypeUsage(t *testing.T) {
	composed := NewComposedResolver(NewJdkResolver())

	usage, ok := composed.FindTypeUsage("int", nil)
	require.True(t, ok)
	_, isPrimitive := usage.(*typesystem.PrimitiveUsage)
	assert.True(t, isPrimitive)

	usage, ok = composed.FindTypeUsage("String", nil)
	require.True(t, ok)
	assert.Equal(t, "java.lang.String", usage.String())

	_, ok = composed.FindTypeUsage("NoSuchType", nil)
	assert.False(t, ok)
}

func TestComposedHasPackage(t *testing.T) {
	unit := ast.NewCompilationUnit("demo.app")
	composed := NewComposedResolver(NewInSourceResolver(unit), NewJdkResolver())

	assert.True(t, composed.HasPackage("demo"))
	assert.True(t, composed.HasPackage("demo.app"))
	assert.True(t, composed.HasPackage("java.util"))
	assert.False(t, composed.HasPackage("com.example"))
}
