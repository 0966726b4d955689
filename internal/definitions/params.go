package definitions

import (
	"github.com/turin-lang/turin/internal/ast"
)

// VerifyParamOrder reports whether all positional arguments precede all
// named ones.
func VerifyParamOrder(actuals []*ast.ActualParam) bool {
	seenNamed := false
	for _, actual := range actuals {
		if actual.IsNamed() {
			seenNamed = true
		} else if seenNamed {
			return false
		}
	}
	return true
}

// matchFormalParams decides whether an actual argument list binds a formal
// parameter list. The order of actuals must already be verified.
//
// Binding rules: positional arguments bind the parameters without default
// values in their relative order; named arguments bind any parameter by
// name. A parameter without a default must end up bound exactly once; a
// defaulted parameter may stay unbound or be bound by name. Positional
// excess, unknown names and duplicate bindings reject the candidate.
func matchFormalParams(params []FormalParameter, actuals []*ast.ActualParam) bool {
	bound := make([]bool, len(params))

	next := 0
	for _, actual := range actuals {
		if actual.IsNamed() {
			continue
		}
		for next < len(params) && params[next].HasDefaultValue() {
			next++
		}
		if next == len(params) {
			return false
		}
		bound[next] = true
		next++
	}

	for _, actual := range actuals {
		if !actual.IsNamed() {
			continue
		}
		idx := -1
		for i, p := range params {
			if p.Name == actual.Name {
				idx = i
				break
			}
		}
		if idx < 0 || bound[idx] {
			return false
		}
		bound[idx] = true
	}

	for i, p := range params {
		if !p.HasDefaultValue() && !bound[i] {
			return false
		}
	}
	return true
}
