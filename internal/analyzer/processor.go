package analyzer

import (
	"github.com/turin-lang/turin/internal/pipeline"
)

// SemanticAnalyzerProcessor is the validation stage of the compilation
// pipeline. It records every semantic error into the context's collector
// and never aborts: later stages decide what an errored run still does.
type SemanticAnalyzerProcessor struct{}

func (sap *SemanticAnalyzerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Resolver == nil {
		return ctx
	}
	validator := New(ctx.Resolver, ctx.Errors)
	for _, unit := range ctx.Units {
		validator.Validate(unit)
	}
	return ctx
}
