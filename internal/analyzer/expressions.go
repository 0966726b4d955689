package analyzer

import (
	"github.com/turin-lang/turin/internal/ast"
	"github.com/turin-lang/turin/internal/definitions"
)

// scope tracks the value names visible at a point in a body. Lookup walks
// outward through enclosing scopes before falling back to the resolver.
type scope struct {
	parent *scope
	names  map[string]bool
}

func newScope(parent *scope) *scope {
	return &scope{parent: parent, names: map[string]bool{}}
}

func (s *scope) declare(name string) { s.names[name] = true }

func (s *scope) knows(name string) bool {
	for current := s; current != nil; current = current.parent {
		if current.names[name] {
			return true
		}
	}
	return false
}

func (v *Validator) validateProgram(program *ast.Program) {
	s := newScope(nil)
	if program.Param != nil {
		v.checkTypeUsage(program.Param.Type, program)
		s.declare(program.Param.Name)
	}
	v.validateStatements(program.Statements, s)
}

func (v *Validator) validateStatements(statements []ast.Statement, s *scope) {
	for _, statement := range statements {
		switch st := statement.(type) {
		case *ast.VariableDeclaration:
			if st.Type != nil {
				v.checkTypeUsage(st.Type, st)
			}
			v.validateExpression(st.Value, s)
			s.declare(st.Name)
		case *ast.ExpressionStatement:
			v.validateExpression(st.Expr, s)
		case *ast.ReturnStatement:
			if st.Value != nil {
				v.validateExpression(st.Value, s)
			}
		}
	}
}

func (v *Validator) validateExpression(expr ast.Expression, s *scope) {
	switch e := expr.(type) {
	case *ast.ValueReference:
		if s.knows(e.Name) {
			return
		}
		if _, ok := v.resolver.FindSymbol(e.Name, e); ok {
			return
		}
		if _, ok := v.resolver.FindTypeDefinition(e.Name, e); ok {
			return
		}
		v.record(e.Position(), "symbol %s not resolved", e.Name)
	case *ast.FieldAccess:
		v.validateExpression(e.Receiver, s)
	case *ast.FunctionCall:
		v.validateFunctionCall(e, s)
	case *ast.Creation:
		v.validateCreation(e, s)
	}
}

func (v *Validator) validateActualParams(params []*ast.ActualParam, s *scope) bool {
	for _, param := range params {
		v.validateExpression(param.Value, s)
	}
	if !definitions.VerifyParamOrder(params) {
		return false
	}
	seen := map[string]bool{}
	for _, param := range params {
		if !param.IsNamed() {
			continue
		}
		if seen[param.Name] {
			return false
		}
		seen[param.Name] = true
	}
	return true
}

func (v *Validator) validateCreation(creation *ast.Creation, s *scope) {
	if !v.validateActualParams(creation.Params, s) {
		v.record(creation.Position(), "named parameters should all be grouped after the positional ones")
		return
	}
	def, ok := v.resolver.FindTypeDefinition(creation.TypeName, creation)
	if !ok {
		v.record(creation.Position(), "type %s not resolved", creation.TypeName)
		return
	}
	if _, err := def.ResolveConstructorCall(creation.Params); err != nil {
		v.record(creation.Position(), "%s", err.Error())
	}
}

// validateFunctionCall checks argument ordering on every call and resolves
// the callee where the receiver's type is syntactically evident: a
// creation, or no receiver at all (a free function the resolver may know).
func (v *Validator) validateFunctionCall(call *ast.FunctionCall, s *scope) {
	if !v.validateActualParams(call.Params, s) {
		v.record(call.Position(), "named parameters should all be grouped after the positional ones")
		return
	}

	switch receiver := call.Receiver.(type) {
	case nil:
		if _, ok := v.resolver.FindJvmDefinition(call); !ok {
			v.record(call.Position(), "function %s not resolved", call.Name)
		}
	case *ast.Creation:
		v.validateExpression(receiver, s)
		def, ok := v.resolver.FindTypeDefinition(receiver.TypeName, call)
		if !ok {
			return
		}
		method, err := def.FindMethod(call.Name, call.Params, false)
		if err != nil {
			v.record(call.Position(), "%s", err.Error())
			return
		}
		if method == nil {
			v.record(call.Position(), "%s", definitions.NewUnresolvedMethodError(def.QualifiedName(), call.Name, call.Params).Error())
		}
	default:
		v.validateExpression(receiver, s)
	}
}
