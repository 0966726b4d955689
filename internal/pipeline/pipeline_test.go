package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turin-lang/turin/internal/analyzer"
	"github.com/turin-lang/turin/internal/ast"
	"github.com/turin-lang/turin/internal/pipeline"
	"github.com/turin-lang/turin/internal/resolvers"
	"github.com/turin-lang/turin/internal/typesystem"
)

func intNode(t *testing.T) *ast.TypeUsageNode {
	t.Helper()
	u, ok := typesystem.Primitive("int")
	require.True(t, ok)
	return ast.NewTypeUsageNode(u)
}

func pointUnit(t *testing.T) *ast.CompilationUnit {
	t.Helper()
	unit := ast.NewCompilationUnit("geometry")
	point := ast.NewTypeDeclaration("Point")
	point.AddProperty(ast.NewPropertyDeclaration("x", intNode(t)))
	point.AddProperty(ast.NewPropertyDeclaration("y", intNode(t)))
	unit.AddType(point)
	ast.AssignParents(unit)
	return unit
}

func newContext(t *testing.T, units ...*ast.CompilationUnit) *pipeline.PipelineContext {
	t.Helper()
	resolver := resolvers.NewComposedResolver(
		resolvers.NewInSourceResolver(units...),
		resolvers.NewJdkResolver(),
	)
	return pipeline.NewContext(resolver, units...)
}

func TestCleanRunProducesOutputs(t *testing.T) {
	ctx := newContext(t, pointUnit(t))
	ctx = pipeline.New(&analyzer.SemanticAnalyzerProcessor{}, &pipeline.OutputProcessor{}).Run(ctx)

	assert.False(t, ctx.HasErrors())
	require.Len(t, ctx.Outputs, 1)
	out := ctx.Outputs[0]
	assert.Equal(t, "geometry/Point", out.InternalName)
	assert.Equal(t, "java/lang/Object", out.SuperclassInternalName)
	assert.Len(t, out.Fields, 2)
	require.NotNil(t, out.Constructor)
	assert.Equal(t, "(II)V", out.Constructor.JvmDefinition.Descriptor)
	assert.True(t, out.NeedToString)
	assert.True(t, out.NeedHashCode)
	assert.True(t, out.NeedEquals)
}

func TestErroredRunSkipsOutputs(t *testing.T) {
	unit := ast.NewCompilationUnit("geometry")
	broken := ast.NewTypeDeclaration("Broken")
	broken.SetBaseType(ast.NewTypeUsageNode(typesystem.NewReferenceUsage("geometry.Missing")))
	unit.AddType(broken)
	ast.AssignParents(unit)

	ctx := newContext(t, unit)
	ctx = pipeline.New(&analyzer.SemanticAnalyzerProcessor{}, &pipeline.OutputProcessor{}).Run(ctx)

	assert.True(t, ctx.HasErrors())
	assert.Empty(t, ctx.Outputs)
}

func TestContextsGetDistinctIDs(t *testing.T) {
	first := newContext(t, pointUnit(t))
	second := newContext(t, pointUnit(t))
	assert.NotEqual(t, first.CompilationID, second.CompilationID)
}

func TestPipelineRunsEveryStage(t *testing.T) {
	var order []string
	stage := func(name string) pipeline.Processor {
		return processorFunc(func(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
			order = append(order, name)
			return ctx
		})
	}

	ctx := newContext(t, pointUnit(t))
	pipeline.New(stage("validate"), stage("output")).Run(ctx)
	assert.Equal(t, []string{"validate", "output"}, order)
}

type processorFunc func(ctx *pipeline.PipelineContext) *pipeline.PipelineContext

func (f processorFunc) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	return f(ctx)
}
