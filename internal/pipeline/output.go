package pipeline

import (
	"github.com/turin-lang/turin/internal/ast"
	"github.com/turin-lang/turin/internal/definitions"
)

// OutputProcessor is the last stage: it resolves every source type into
// its emitter handoff. It runs only on a clean validation pass, so any
// failure here is a compiler bug surfacing as an InternalError-style
// diagnostic at the type's position.
type OutputProcessor struct{}

func (op *OutputProcessor) Process(ctx *PipelineContext) *PipelineContext {
	if ctx.HasErrors() {
		return ctx
	}
	for _, unit := range ctx.Units {
		for _, node := range unit.TopNodes {
			decl, ok := node.(*ast.TypeDeclaration)
			if !ok {
				continue
			}
			def, found := ctx.Resolver.FindTypeDefinition(decl.QualifiedName(), decl)
			if !found {
				ctx.Errors.RecordSemanticError(decl.Position(), "type "+decl.QualifiedName()+" not resolved")
				continue
			}
			source, isSource := def.(*definitions.SourceType)
			if !isSource {
				continue
			}
			output, err := definitions.BuildClassOutput(source)
			if err != nil {
				ctx.Errors.RecordSemanticError(decl.Position(), err.Error())
				continue
			}
			ctx.Outputs = append(ctx.Outputs, output)
		}
	}
	return ctx
}
