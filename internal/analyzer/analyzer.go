// Package analyzer walks resolved compilation units and records every
// semantic error it can surface in one pass. Resolution absence, member
// table synthesis failures and call-site mismatches all end up in the
// collector with their source positions; only postcondition violations
// abort.
package analyzer

import (
	"fmt"

	"github.com/turin-lang/turin/internal/ast"
	"github.com/turin-lang/turin/internal/definitions"
	"github.com/turin-lang/turin/internal/diagnostics"
)

// Validator performs semantic validation over compilation units.
type Validator struct {
	resolver definitions.SymbolResolver
	errors   diagnostics.Collector
}

func New(resolver definitions.SymbolResolver, errors diagnostics.Collector) *Validator {
	return &Validator{resolver: resolver, errors: errors}
}

// Validate checks one compilation unit. Parent back-references are
// reconstructed first so positional context walks always work, whichever
// way the unit was assembled.
func (v *Validator) Validate(unit *ast.CompilationUnit) {
	ast.AssignParents(unit)

	v.checkProgramNames(unit)
	for _, node := range unit.TopNodes {
		switch n := node.(type) {
		case *ast.TypeDeclaration:
			v.validateTypeDeclaration(n)
		case *ast.Program:
			v.validateProgram(n)
		case *ast.PropertyDeclaration:
			v.validateTopLevelProperty(n)
		}
	}
}

func (v *Validator) record(pos diagnostics.Position, format string, args ...interface{}) {
	v.errors.RecordSemanticError(pos, fmt.Sprintf(format, args...))
}

// checkProgramNames rejects two entry points with the same name in one
// unit: both would compile to the same class.
func (v *Validator) checkProgramNames(unit *ast.CompilationUnit) {
	seen := map[string]bool{}
	for _, program := range unit.Programs() {
		if seen[program.Name] {
			v.record(program.Position(), "program %s declared more than once", program.Name)
			continue
		}
		seen[program.Name] = true
	}
}

func (v *Validator) validateTopLevelProperty(decl *ast.PropertyDeclaration) {
	v.checkTypeUsage(decl.Type, decl)
	if decl.InitialValue != nil {
		v.validateExpression(decl.InitialValue, newScope(nil))
	}
	if decl.DefaultValue != nil {
		v.validateExpression(decl.DefaultValue, newScope(nil))
	}
}

// checkTypeUsage confirms a declared reference type resolves to a known
// definition.
func (v *Validator) checkTypeUsage(node *ast.TypeUsageNode, context ast.Node) {
	if node == nil {
		return
	}
	ref := node.AsReference()
	if ref == nil {
		return
	}
	if _, ok := v.resolver.FindTypeDefinition(ref.Name, context); !ok {
		v.record(node.Position(), "type %s not resolved", ref.Name)
	}
}
