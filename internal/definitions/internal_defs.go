package definitions

import (
	"strings"

	"github.com/turin-lang/turin/internal/ast"
	"github.com/turin-lang/turin/internal/jvm"
	"github.com/turin-lang/turin/internal/typesystem"
)

// FormalParameter is a parameter of an internal method or constructor
// signature: a name, a declared type and an optional default value.
type FormalParameter struct {
	Name         string
	Type         typesystem.TypeUsage
	DefaultValue ast.Expression
}

func (p FormalParameter) HasDefaultValue() bool { return p.DefaultValue != nil }

// formalParamsFromNodes converts declared parameter nodes to signature
// parameters, preserving order.
func formalParamsFromNodes(nodes []*ast.FormalParameterNode) []FormalParameter {
	params := make([]FormalParameter, len(nodes))
	for i, node := range nodes {
		params[i] = FormalParameter{
			Name:         node.Name,
			Type:         node.Type.Usage,
			DefaultValue: node.DefaultValue,
		}
	}
	return params
}

// InternalMethodDefinition is a method signature lazily built on first
// query, backed by its low-level JVM definition.
type InternalMethodDefinition struct {
	Name          string
	Params        []FormalParameter
	ReturnType    typesystem.TypeUsage
	JvmDefinition *jvm.MethodDefinition
}

func NewInternalMethodDefinition(name string, params []FormalParameter, returnType typesystem.TypeUsage, jvmDef *jvm.MethodDefinition) *InternalMethodDefinition {
	return &InternalMethodDefinition{Name: name, Params: params, ReturnType: returnType, JvmDefinition: jvmDef}
}

// Match reports whether the actual argument list binds this signature.
func (m *InternalMethodDefinition) Match(actuals []*ast.ActualParam) bool {
	return matchFormalParams(m.Params, actuals)
}

// MatchJvmTypes reports whether the given low-level types equal the
// parameter segment of the backing descriptor exactly.
func (m *InternalMethodDefinition) MatchJvmTypes(argTypes []jvm.Type) bool {
	params, err := m.JvmDefinition.ParamTypes()
	if err != nil {
		return false
	}
	if len(params) != len(argTypes) {
		return false
	}
	for i, p := range params {
		if p != argTypes[i] {
			return false
		}
	}
	return true
}

// InternalConstructorDefinition is a constructor signature owned by a type,
// backed by its low-level JVM definition.
type InternalConstructorDefinition struct {
	Owner         *typesystem.ReferenceUsage
	Params        []FormalParameter
	JvmDefinition *jvm.ConstructorDefinition
}

func NewInternalConstructorDefinition(owner *typesystem.ReferenceUsage, params []FormalParameter, jvmDef *jvm.ConstructorDefinition) *InternalConstructorDefinition {
	return &InternalConstructorDefinition{Owner: owner, Params: params, JvmDefinition: jvmDef}
}

// Match reports whether the actual argument list binds this signature.
func (c *InternalConstructorDefinition) Match(actuals []*ast.ActualParam) bool {
	return matchFormalParams(c.Params, actuals)
}

// HasDefaultParams reports whether any parameter carries a default value,
// which is when the descriptor grows the trailing named-overrides map.
func (c *InternalConstructorDefinition) HasDefaultParams() bool {
	for _, p := range c.Params {
		if p.HasDefaultValue() {
			return true
		}
	}
	return false
}

// defaultsMapSignature is the descriptor of the trailing bag of named
// overrides appended when any parameter has a default value.
const defaultsMapSignature = "Ljava/util/Map;"

// invokableDescriptor assembles the descriptor shared by constructors and
// methods: the signatures of the parameters without defaults, a trailing
// map iff any parameter has a default, then the return type.
func invokableDescriptor(params []FormalParameter, returnType jvm.Type) string {
	var sb strings.Builder
	sb.WriteByte('(')
	hasDefaults := false
	for _, p := range params {
		if p.HasDefaultValue() {
			hasDefaults = true
			continue
		}
		sb.WriteString(p.Type.JvmType().Signature())
	}
	if hasDefaults {
		sb.WriteString(defaultsMapSignature)
	}
	sb.WriteByte(')')
	sb.WriteString(returnType.Descriptor())
	return sb.String()
}
