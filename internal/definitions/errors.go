package definitions

import (
	"fmt"
	"strings"

	"github.com/turin-lang/turin/internal/ast"
)

// UnresolvedConstructorError indicates no constructor of the type matched
// the actual argument list.
type UnresolvedConstructorError struct {
	TypeName string
	Params   []*ast.ActualParam
}

func (e *UnresolvedConstructorError) Error() string {
	return fmt.Sprintf("no constructor of %s matches (%s)", e.TypeName, describeActualParams(e.Params))
}

func NewUnresolvedConstructorError(typeName string, params []*ast.ActualParam) *UnresolvedConstructorError {
	return &UnresolvedConstructorError{TypeName: typeName, Params: params}
}

// UnresolvedMethodError indicates no method with the given name matched the
// actual argument list.
type UnresolvedMethodError struct {
	TypeName   string
	MethodName string
	Params     []*ast.ActualParam
}

func (e *UnresolvedMethodError) Error() string {
	return fmt.Sprintf("no method %s of %s matches (%s)", e.MethodName, e.TypeName, describeActualParams(e.Params))
}

func NewUnresolvedMethodError(typeName, methodName string, params []*ast.ActualParam) *UnresolvedMethodError {
	return &UnresolvedMethodError{TypeName: typeName, MethodName: methodName, Params: params}
}

// IllOrderedParametersError indicates a named argument appears before a
// positional one.
type IllOrderedParametersError struct{}

func (e *IllOrderedParametersError) Error() string {
	return "named parameters should all be grouped after the positional ones"
}

func NewIllOrderedParametersError() *IllOrderedParametersError {
	return &IllOrderedParametersError{}
}

// UnsupportedInheritanceError indicates the declared base type does not
// have exactly one constructor, so the implicit constructor cannot chain.
type UnsupportedInheritanceError struct {
	BaseTypeName     string
	ConstructorCount int
}

func (e *UnsupportedInheritanceError) Error() string {
	return fmt.Sprintf("cannot inherit from %s: it has %d constructors, exactly one is required", e.BaseTypeName, e.ConstructorCount)
}

func NewUnsupportedInheritanceError(baseTypeName string, constructorCount int) *UnsupportedInheritanceError {
	return &UnsupportedInheritanceError{BaseTypeName: baseTypeName, ConstructorCount: constructorCount}
}

// DuplicateMethodError indicates two direct members of a source type would
// register under the same method name.
type DuplicateMethodError struct {
	TypeName   string
	MethodName string
}

func (e *DuplicateMethodError) Error() string {
	return fmt.Sprintf("method %s declared more than once in %s", e.MethodName, e.TypeName)
}

func NewDuplicateMethodError(typeName, methodName string) *DuplicateMethodError {
	return &DuplicateMethodError{TypeName: typeName, MethodName: methodName}
}

// InternalError indicates a postcondition violation: the compiler called an
// operation with arguments that type checking should have made impossible.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string {
	return "internal error: " + e.Message
}

func NewInternalError(format string, args ...interface{}) *InternalError {
	return &InternalError{Message: fmt.Sprintf(format, args...)}
}

func describeActualParams(params []*ast.ActualParam) string {
	parts := make([]string, len(params))
	for i, p := range params {
		if p.IsNamed() {
			parts[i] = p.Name + "=..."
		} else {
			parts[i] = "..."
		}
	}
	return strings.Join(parts, ", ")
}
