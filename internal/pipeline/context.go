package pipeline

import (
	"github.com/google/uuid"

	"github.com/turin-lang/turin/internal/ast"
	"github.com/turin-lang/turin/internal/definitions"
	"github.com/turin-lang/turin/internal/diagnostics"
)

// Processor is one stage of the compilation pipeline.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// PipelineContext carries one compilation through the stages: the units
// under compilation, the composed resolver, the error collector and the
// artifacts each stage produces for the next.
type PipelineContext struct {
	// CompilationID identifies this run in verbose diagnostics.
	CompilationID uuid.UUID

	Units    []*ast.CompilationUnit
	Resolver definitions.SymbolResolver
	Errors   *diagnostics.ListCollector

	// Outputs are the emitter handoffs built by the last stage, one per
	// source type, in declaration order.
	Outputs []*definitions.ClassOutput

	Verbose bool
}

func NewContext(resolver definitions.SymbolResolver, units ...*ast.CompilationUnit) *PipelineContext {
	return &PipelineContext{
		CompilationID: uuid.New(),
		Units:         units,
		Resolver:      resolver,
		Errors:        diagnostics.NewListCollector(),
	}
}

func (ctx *PipelineContext) HasErrors() bool {
	return ctx.Errors.HasErrors()
}
