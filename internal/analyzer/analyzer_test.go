package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turin-lang/turin/internal/ast"
	"github.com/turin-lang/turin/internal/diagnostics"
	"github.com/turin-lang/turin/internal/resolvers"
	"github.com/turin-lang/turin/internal/typesystem"
)

func intNode(t *testing.T) *ast.TypeUsageNode {
	t.Helper()
	u, ok := typesystem.Primitive("int")
	require.True(t, ok)
	return ast.NewTypeUsageNode(u)
}

func refNode(name string) *ast.TypeUsageNode {
	return ast.NewTypeUsageNode(typesystem.NewReferenceUsage(name))
}

func validate(t *testing.T, unit *ast.CompilationUnit) *diagnostics.ListCollector {
	t.Helper()
	resolver := resolvers.NewComposedResolver(
		resolvers.NewInSourceResolver(unit),
		resolvers.NewJdkResolver(),
	)
	collector := diagnostics.NewListCollector()
	New(resolver, collector).Validate(unit)
	return collector
}

func messages(c *diagnostics.ListCollector) []string {
	var out []string
	for _, e := range c.Errors() {
		out = append(out, e.Message)
	}
	return out
}

func TestCleanTypeHasNoErrors(t *testing.T) {
	unit := ast.NewCompilationUnit("demo")
	point := ast.NewTypeDeclaration("Point")
	point.AddProperty(ast.NewPropertyDeclaration("x", intNode(t)))
	point.AddProperty(ast.NewPropertyDeclaration("y", intNode(t)))
	norm := ast.NewMethodDeclaration("norm", refNode("java.lang.String"))
	norm.Body = []ast.Statement{
		ast.NewReturnStatement(&ast.ValueReference{Name: "x"}),
	}
	point.AddMethod(norm)
	unit.AddType(point)

	collector := validate(t, unit)
	assert.Empty(t, collector.Errors())
}

func TestMultipleExplicitConstructors(t *testing.T) {
	unit := ast.NewCompilationUnit("demo")
	decl := ast.NewTypeDeclaration("Pair")
	decl.AddConstructor(ast.NewConstructorDeclaration())
	decl.AddConstructor(ast.NewConstructorDeclaration(
		ast.NewFormalParameterNode("x", intNode(t)),
	))
	unit.AddType(decl)

	collector := validate(t, unit)
	require.Equal(t, 2, collector.Count())
	for _, msg := range messages(collector) {
		assert.Contains(t, msg, "more than one explicit constructor")
	}
}

func TestExtensionChecks(t *testing.T) {
	t.Run("base must be a class", func(t *testing.T) {
		unit := ast.NewCompilationUnit("demo")
		decl := ast.NewTypeDeclaration("Sorted")
		decl.SetBaseType(refNode("java.lang.Comparable"))
		unit.AddType(decl)

		collector := validate(t, unit)
		require.Equal(t, 1, collector.Count())
		assert.Contains(t, collector.Errors()[0].Message, "not a class")
	})

	t.Run("implemented type must be an interface", func(t *testing.T) {
		unit := ast.NewCompilationUnit("demo")
		decl := ast.NewTypeDeclaration("Labeled")
		decl.AddInterface(refNode("java.lang.String"))
		unit.AddType(decl)

		collector := validate(t, unit)
		require.Equal(t, 1, collector.Count())
		assert.Contains(t, collector.Errors()[0].Message, "not an interface")
	})

	t.Run("unresolved base", func(t *testing.T) {
		unit := ast.NewCompilationUnit("demo")
		decl := ast.NewTypeDeclaration("Derived")
		decl.SetBaseType(refNode("demo.Missing"))
		unit.AddType(decl)

		collector := validate(t, unit)
		require.Equal(t, 1, collector.Count())
		assert.Contains(t, collector.Errors()[0].Message, "demo.Missing not resolved")
	})
}

func TestBaseWithManyConstructorsRejected(t *testing.T) {
	unit := ast.NewCompilationUnit("demo")
	decl := ast.NewTypeDeclaration("AppError")
	decl.SetBaseType(refNode("java.lang.Exception"))
	unit.AddType(decl)

	collector := validate(t, unit)
	require.Equal(t, 1, collector.Count())
	assert.Contains(t, collector.Errors()[0].Message, "cannot inherit from java.lang.Exception")
}

func TestDuplicateMembers(t *testing.T) {
	unit := ast.NewCompilationUnit("demo")
	decl := ast.NewTypeDeclaration("Box")
	decl.AddProperty(ast.NewPropertyDeclaration("value", intNode(t)))
	decl.AddProperty(ast.NewPropertyDeclaration("value", intNode(t)))
	decl.AddMethod(ast.NewMethodDeclaration("peek", intNode(t)))
	decl.AddMethod(ast.NewMethodDeclaration("peek", intNode(t)))
	unit.AddType(decl)

	collector := validate(t, unit)
	msgs := messages(collector)
	assert.Contains(t, msgs, "property value declared more than once in Box")
	assert.Contains(t, msgs, "method peek declared more than once in Box")
}

func TestGetterCollidesWithDirectMethod(t *testing.T) {
	unit := ast.NewCompilationUnit("demo")
	decl := ast.NewTypeDeclaration("Box")
	decl.AddProperty(ast.NewPropertyDeclaration("value", intNode(t)))
	decl.AddMethod(ast.NewMethodDeclaration("getValue", intNode(t)))
	unit.AddType(decl)

	collector := validate(t, unit)
	require.Equal(t, 1, collector.Count())
	assert.Contains(t, collector.Errors()[0].Message, "method getValue declared more than once in demo.Box")
}

func TestUnresolvedPropertyReference(t *testing.T) {
	unit := ast.NewCompilationUnit("demo")
	decl := ast.NewTypeDeclaration("Box")
	decl.AddPropertyReference(&ast.PropertyReference{Name: "shared"})
	unit.AddType(decl)

	collector := validate(t, unit)
	require.Equal(t, 1, collector.Count())
	assert.Contains(t, collector.Errors()[0].Message, "property shared not resolved")
}

func TestDuplicateProgramNames(t *testing.T) {
	unit := ast.NewCompilationUnit("demo")
	unit.AddProgram(ast.NewProgram("tool", nil))
	unit.AddProgram(ast.NewProgram("tool", nil))

	collector := validate(t, unit)
	require.Equal(t, 1, collector.Count())
	assert.Contains(t, collector.Errors()[0].Message, "program tool declared more than once")
}

func TestProgramStatementValidation(t *testing.T) {
	t.Run("locals and params are visible", func(t *testing.T) {
		unit := ast.NewCompilationUnit("demo")
		program := ast.NewProgram("tool",
			ast.NewFormalParameterNode("args", refNode("java.lang.String")),
			ast.NewVariableDeclaration("n", nil, &ast.IntLiteral{Value: 1}),
			ast.NewExpressionStatement(&ast.ValueReference{Name: "n"}),
			ast.NewExpressionStatement(&ast.ValueReference{Name: "args"}),
		)
		unit.AddProgram(program)

		collector := validate(t, unit)
		assert.Empty(t, collector.Errors())
	})

	t.Run("unknown symbol", func(t *testing.T) {
		unit := ast.NewCompilationUnit("demo")
		program := ast.NewProgram("tool", nil,
			ast.NewExpressionStatement(&ast.ValueReference{Name: "ghost"}),
		)
		unit.AddProgram(program)

		collector := validate(t, unit)
		require.Equal(t, 1, collector.Count())
		assert.Contains(t, collector.Errors()[0].Message, "symbol ghost not resolved")
	})
}

func TestCreationValidation(t *testing.T) {
	newPointUnit := func(creation *ast.Creation) *ast.CompilationUnit {
		unit := ast.NewCompilationUnit("demo")
		point := ast.NewTypeDeclaration("Point")
		point.AddProperty(ast.NewPropertyDeclaration("x", intNode(t)))
		point.AddProperty(ast.NewPropertyDeclaration("y", intNode(t)))
		unit.AddType(point)
		unit.AddProgram(ast.NewProgram("tool", nil, ast.NewExpressionStatement(creation)))
		return unit
	}

	t.Run("matching call", func(t *testing.T) {
		creation := ast.NewCreation("Point",
			ast.NewActualParam(&ast.IntLiteral{Value: 1}),
			ast.NewActualParam(&ast.IntLiteral{Value: 2}),
		)
		collector := validate(t, newPointUnit(creation))
		assert.Empty(t, collector.Errors())
	})

	t.Run("arity mismatch", func(t *testing.T) {
		creation := ast.NewCreation("Point",
			ast.NewActualParam(&ast.IntLiteral{Value: 1}),
		)
		collector := validate(t, newPointUnit(creation))
		require.Equal(t, 1, collector.Count())
		assert.Contains(t, collector.Errors()[0].Message, "no constructor of demo.Point matches")
	})

	t.Run("positional after named", func(t *testing.T) {
		creation := ast.NewCreation("Point",
			ast.NewNamedActualParam("x", &ast.IntLiteral{Value: 1}),
			ast.NewActualParam(&ast.IntLiteral{Value: 2}),
		)
		collector := validate(t, newPointUnit(creation))
		require.Equal(t, 1, collector.Count())
		assert.Contains(t, collector.Errors()[0].Message, "named parameters should all be grouped")
	})

	t.Run("unresolved type", func(t *testing.T) {
		creation := ast.NewCreation("Nowhere")
		collector := validate(t, newPointUnit(creation))
		require.Equal(t, 1, collector.Count())
		assert.Contains(t, collector.Errors()[0].Message, "type Nowhere not resolved")
	})
}

func TestMethodCallOnCreation(t *testing.T) {
	unit := ast.NewCompilationUnit("demo")
	point := ast.NewTypeDeclaration("Point")
	point.AddProperty(ast.NewPropertyDeclaration("x", intNode(t)))
	unit.AddType(point)

	creation := ast.NewCreation("Point", ast.NewActualParam(&ast.IntLiteral{Value: 1}))
	call := ast.NewFunctionCall(creation, "vanish")
	unit.AddProgram(ast.NewProgram("tool", nil, ast.NewExpressionStatement(call)))

	collector := validate(t, unit)
	require.Equal(t, 1, collector.Count())
	assert.Contains(t, collector.Errors()[0].Message, "no method vanish of demo.Point matches")
}

func TestFreeFunctionCallsAreUnresolved(t *testing.T) {
	unit := ast.NewCompilationUnit("demo")
	call := ast.NewFunctionCall(nil, "println")
	unit.AddProgram(ast.NewProgram("tool", nil, ast.NewExpressionStatement(call)))

	collector := validate(t, unit)
	require.Equal(t, 1, collector.Count())
	assert.Contains(t, collector.Errors()[0].Message, "function println not resolved")
}
