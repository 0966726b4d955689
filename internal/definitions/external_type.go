package definitions

import (
	"github.com/turin-lang/turin/internal/ast"
	"github.com/turin-lang/turin/internal/jvm"
	"github.com/turin-lang/turin/internal/typesystem"
)

// ExternalType is a type definition loaded from outside the compilation
// unit: a host runtime registry entry or a class read from an archive.
// Its members are fully described by low-level definitions; signatures
// surface lazily through descriptor reconstruction.
type ExternalType struct {
	qualifiedName string
	isInterface   bool

	// superclassName is the canonical name of the direct superclass,
	// empty only for java.lang.Object.
	superclassName string
	interfaceNames []string

	resolver SymbolResolver

	constructors []*InternalConstructorDefinition
	methods      map[string][]*InternalMethodDefinition
	fields       map[string]*jvm.FieldDefinition
}

// NewExternalClass builds an external class definition. superclassName is
// canonical and may be empty only for java.lang.Object.
func NewExternalClass(qualifiedName, superclassName string, resolver SymbolResolver) *ExternalType {
	return &ExternalType{
		qualifiedName:  qualifiedName,
		superclassName: superclassName,
		resolver:       resolver,
		methods:        map[string][]*InternalMethodDefinition{},
		fields:         map[string]*jvm.FieldDefinition{},
	}
}

// NewExternalInterface builds an external interface definition.
func NewExternalInterface(qualifiedName string, resolver SymbolResolver) *ExternalType {
	ext := NewExternalClass(qualifiedName, ObjectQualifiedName, resolver)
	ext.isInterface = true
	return ext
}

func (e *ExternalType) AddInterface(canonicalName string) {
	e.interfaceNames = append(e.interfaceNames, canonicalName)
}

// AddMethod registers a method from its low-level definition, deriving
// the signature parameters from the descriptor. Parameter names are not
// recorded in descriptors, so externally loaded methods accept positional
// arguments only.
func (e *ExternalType) AddMethod(jvmDef *jvm.MethodDefinition) error {
	paramTypes, err := jvmDef.ParamTypes()
	if err != nil {
		return err
	}
	params, err := formalParamsFromJvmTypes(paramTypes)
	if err != nil {
		return err
	}
	returnJvm, err := jvmDef.ReturnType()
	if err != nil {
		return err
	}
	returnType, err := typesystem.UsageFromJvmType(returnJvm)
	if err != nil {
		return err
	}
	method := NewInternalMethodDefinition(jvmDef.Name, params, returnType, jvmDef)
	e.methods[jvmDef.Name] = append(e.methods[jvmDef.Name], method)
	return nil
}

// AddConstructor registers a constructor from its low-level definition.
func (e *ExternalType) AddConstructor(jvmDef *jvm.ConstructorDefinition) error {
	paramTypes, err := jvmDef.ParamTypes()
	if err != nil {
		return err
	}
	params, err := formalParamsFromJvmTypes(paramTypes)
	if err != nil {
		return err
	}
	owner := typesystem.NewReferenceUsage(e.qualifiedName)
	e.constructors = append(e.constructors, NewInternalConstructorDefinition(owner, params, jvmDef))
	return nil
}

// AddField registers a field from its low-level definition.
func (e *ExternalType) AddField(jvmDef *jvm.FieldDefinition) {
	e.fields[jvmDef.Name] = jvmDef
}

func formalParamsFromJvmTypes(types []jvm.Type) ([]FormalParameter, error) {
	params := make([]FormalParameter, len(types))
	for i, t := range types {
		usage, err := typesystem.UsageFromJvmType(t)
		if err != nil {
			return nil, err
		}
		params[i] = FormalParameter{Type: usage}
	}
	return params, nil
}

func (e *ExternalType) Name() string          { return jvm.SimpleName(e.qualifiedName) }
func (e *ExternalType) QualifiedName() string { return e.qualifiedName }
func (e *ExternalType) InternalName() string  { return jvm.CanonicalToInternal(e.qualifiedName) }
func (e *ExternalType) IsClass() bool         { return !e.isInterface }
func (e *ExternalType) IsInterface() bool     { return e.isInterface }

// AllAncestors walks the superclass chain through the resolver and appends
// the direct interfaces. The chain roots at java.lang.Object.
func (e *ExternalType) AllAncestors() []*typesystem.ReferenceUsage {
	var ancestors []*typesystem.ReferenceUsage
	if e.superclassName != "" {
		ancestors = append(ancestors, typesystem.NewReferenceUsage(e.superclassName))
		if base, ok := Root(e.resolver).FindTypeDefinition(e.superclassName, nil); ok {
			ancestors = append(ancestors, base.AllAncestors()...)
		}
	}
	for _, name := range e.interfaceNames {
		ancestors = append(ancestors, typesystem.NewReferenceUsage(name))
	}
	return ancestors
}

// Superclass resolves the direct superclass, nil for java.lang.Object.
func (e *ExternalType) Superclass() (TypeDefinition, error) {
	if e.superclassName == "" {
		return nil, nil
	}
	base, ok := Root(e.resolver).FindTypeDefinition(e.superclassName, nil)
	if !ok {
		return nil, typesystem.NewUnresolvedTypeError(e.superclassName)
	}
	return base, nil
}

func (e *ExternalType) Constructors() ([]*InternalConstructorDefinition, error) {
	return e.constructors, nil
}

func (e *ExternalType) FindConstructor(actuals []*ast.ActualParam) (*InternalConstructorDefinition, error) {
	if !VerifyParamOrder(actuals) {
		return nil, NewIllOrderedParametersError()
	}
	for _, ctor := range e.constructors {
		if ctor.Match(actuals) {
			return ctor, nil
		}
	}
	return nil, nil
}

func (e *ExternalType) ResolveConstructorCall(actuals []*ast.ActualParam) (*jvm.ConstructorDefinition, error) {
	ctor, err := e.FindConstructor(actuals)
	if err != nil {
		return nil, err
	}
	if ctor == nil {
		return nil, NewUnresolvedConstructorError(e.qualifiedName, actuals)
	}
	return ctor.JvmDefinition, nil
}

func (e *ExternalType) FindMethod(name string, actuals []*ast.ActualParam, staticContext bool) (*InternalMethodDefinition, error) {
	if !VerifyParamOrder(actuals) {
		return nil, NewIllOrderedParametersError()
	}
	for _, method := range e.methods[name] {
		if staticContext && !method.JvmDefinition.Static {
			continue
		}
		if method.Match(actuals) {
			return method, nil
		}
	}
	return nil, nil
}

func (e *ExternalType) FindMethodByDescriptors(name string, argTypes []jvm.Type, staticContext bool) (*jvm.MethodDefinition, error) {
	for _, method := range e.methods[name] {
		if staticContext && !method.JvmDefinition.Static {
			continue
		}
		if method.MatchJvmTypes(argTypes) {
			return method.JvmDefinition, nil
		}
	}
	return nil, NewInternalError("no method %s on %s matches the checked argument types", name, e.qualifiedName)
}

func (e *ExternalType) FieldType(name string, staticContext bool) (typesystem.TypeUsage, error) {
	field, ok := e.fields[name]
	if !ok {
		return nil, typesystem.NewUnresolvedSymbolError(name)
	}
	if staticContext && !field.Static {
		return nil, typesystem.NewUnresolvedSymbolError(name)
	}
	t, err := jvm.TypeFromDescriptor(field.Descriptor)
	if err != nil {
		return nil, err
	}
	return typesystem.UsageFromJvmType(t)
}

func (e *ExternalType) CanFieldBeAssigned(name string) bool {
	field, ok := e.fields[name]
	if !ok {
		return false
	}
	return !field.Final
}

// FindSymbol surfaces fields as symbols. Descriptors that fail to decode
// are skipped, matching absence semantics.
func (e *ExternalType) FindSymbol(name string, resolver SymbolResolver) (Symbol, bool) {
	field, ok := e.fields[name]
	if !ok {
		return nil, false
	}
	t, err := jvm.TypeFromDescriptor(field.Descriptor)
	if err != nil {
		return nil, false
	}
	usage, err := typesystem.UsageFromJvmType(t)
	if err != nil {
		return nil, false
	}
	return &fieldSymbol{name: field.Name, usage: usage}, true
}

type fieldSymbol struct {
	name  string
	usage typesystem.TypeUsage
}

func (s *fieldSymbol) SymbolName() string               { return s.name }
func (s *fieldSymbol) SymbolType() typesystem.TypeUsage { return s.usage }
