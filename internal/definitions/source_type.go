package definitions

import (
	"sort"

	"github.com/turin-lang/turin/internal/ast"
	"github.com/turin-lang/turin/internal/jvm"
	"github.com/turin-lang/turin/internal/typesystem"
)

// SourceType is the type definition of a declaration in the current
// compilation unit. Constructor and method tables are built lazily on the
// first query that needs them and memoized for the rest of the
// compilation, errors included.
type SourceType struct {
	decl     *ast.TypeDeclaration
	resolver SymbolResolver

	constructorsInit bool
	constructors     []*InternalConstructorDefinition
	constructorsErr  error

	methodsInit   bool
	methodsByName map[string]*InternalMethodDefinition
	methodsErr    error
}

func NewSourceType(decl *ast.TypeDeclaration, resolver SymbolResolver) *SourceType {
	return &SourceType{decl: decl, resolver: resolver}
}

// Declaration returns the backing AST declaration.
func (t *SourceType) Declaration() *ast.TypeDeclaration { return t.decl }

func (t *SourceType) Name() string          { return t.decl.Name }
func (t *SourceType) QualifiedName() string { return t.decl.QualifiedName() }

func (t *SourceType) InternalName() string {
	return jvm.CanonicalToInternal(t.QualifiedName())
}

// Interfaces cannot be declared yet, so every source type is a class.
func (t *SourceType) IsClass() bool     { return true }
func (t *SourceType) IsInterface() bool { return false }

// DirectProperties materializes the properties declared directly on the
// type, resolving property references against their peer declarations.
// References that resolve to nothing are skipped here; validation reports
// them with their positions.
func (t *SourceType) DirectProperties() []*Property {
	var properties []*Property
	for _, member := range t.decl.Members {
		switch m := member.(type) {
		case *ast.PropertyDeclaration:
			properties = append(properties, PropertyFromDeclaration(m))
		case *ast.PropertyReference:
			if p, ok := PropertyFromReference(m, t.resolver); ok {
				properties = append(properties, p)
			}
		}
	}
	return properties
}

// AllProperties returns direct and inherited properties. Inherited
// properties are not modelled yet, so this is the direct set.
func (t *SourceType) AllProperties() []*Property {
	return t.DirectProperties()
}

// AssignableProperties are the properties callers can supply at
// construction: the ones without an initial value.
func (t *SourceType) AssignableProperties() []*Property {
	var assignable []*Property
	for _, p := range t.DirectProperties() {
		if !p.HasInitialValue() {
			assignable = append(assignable, p)
		}
	}
	return assignable
}

// DefinesExplicitConstructor reports whether the declaration carries at
// least one explicit constructor.
func (t *SourceType) DefinesExplicitConstructor() bool {
	return len(t.decl.ExplicitConstructors()) > 0
}

// ---------------------------------------------------------------------------
// Lazy initialization.
//
// A source type moves from Declared to ConstructorsInitialized on the first
// query needing constructors, and to FullyInitialized on the first query
// needing methods. Both transitions are idempotent.

func (t *SourceType) ensureConstructorsInitialized() error {
	if !t.constructorsInit {
		t.constructorsInit = true
		t.constructorsErr = t.initializeConstructors()
	}
	return t.constructorsErr
}

func (t *SourceType) ensureFullyInitialized() error {
	if err := t.ensureConstructorsInitialized(); err != nil {
		return err
	}
	if !t.methodsInit {
		t.methodsInit = true
		t.methodsErr = t.initializeMethodsByName()
	}
	return t.methodsErr
}

func (t *SourceType) initializeConstructors() error {
	explicit := t.decl.ExplicitConstructors()
	switch {
	case len(explicit) == 0:
		return t.initializeImplicitConstructor()
	case len(explicit) == 1:
		t.addConstructorWithParams(formalParamsFromNodes(explicit[0].Params))
		return nil
	default:
		// Validation rejects these declarations before resolution runs.
		return NewInternalError("type %s declares %d explicit constructors", t.QualifiedName(), len(explicit))
	}
}

// initializeImplicitConstructor synthesizes the sole constructor from the
// base type's constructor parameters followed by the assignable
// properties, stable-sorted so that parameters without defaults come
// first.
func (t *SourceType) initializeImplicitConstructor() error {
	var inherited []FormalParameter
	if t.decl.BaseType != nil {
		baseRef := t.decl.BaseType.AsReference()
		if baseRef == nil {
			return NewInternalError("base type of %s is not a reference type", t.QualifiedName())
		}
		baseDef, ok := Root(t.resolver).FindTypeDefinition(baseRef.Name, t.decl)
		if !ok {
			return typesystem.NewUnresolvedTypeError(baseRef.Name)
		}
		baseConstructors, err := baseDef.Constructors()
		if err != nil {
			return err
		}
		if len(baseConstructors) != 1 {
			return NewUnsupportedInheritanceError(baseDef.QualifiedName(), len(baseConstructors))
		}
		inherited = baseConstructors[0].Params
	}

	assignable := t.AssignableProperties()
	params := make([]FormalParameter, 0, len(inherited)+len(assignable))
	params = append(params, inherited...)
	for _, p := range assignable {
		params = append(params, FormalParameter{Name: p.Name, Type: p.Type, DefaultValue: p.DefaultValue})
	}
	sort.SliceStable(params, func(i, j int) bool {
		return !params[i].HasDefaultValue() && params[j].HasDefaultValue()
	})
	t.addConstructorWithParams(params)
	return nil
}

func (t *SourceType) addConstructorWithParams(params []FormalParameter) {
	jvmDef := jvm.NewConstructorDefinition(t.InternalName(), invokableDescriptor(params, jvm.Void))
	owner := typesystem.NewReferenceUsage(t.QualifiedName())
	t.constructors = append(t.constructors, NewInternalConstructorDefinition(owner, params, jvmDef))
}

// initializeMethodsByName registers a getter and a setter per direct
// property plus every directly declared method, under unique names.
func (t *SourceType) initializeMethodsByName() error {
	t.methodsByName = make(map[string]*InternalMethodDefinition)

	for _, property := range t.DirectProperties() {
		getterDescriptor := "()" + property.Type.JvmType().Descriptor()
		getter := NewInternalMethodDefinition(
			property.GetterName(),
			nil,
			property.Type,
			jvm.NewMethodDefinition(t.InternalName(), property.GetterName(), getterDescriptor, false, false),
		)
		if err := t.registerMethod(getter); err != nil {
			return err
		}

		setterDescriptor := "(" + property.Type.JvmType().Descriptor() + ")V"
		setterParam := FormalParameter{Name: property.Name, Type: property.Type}
		setter := NewInternalMethodDefinition(
			property.SetterName(),
			[]FormalParameter{setterParam},
			&typesystem.VoidUsage{},
			jvm.NewMethodDefinition(t.InternalName(), property.SetterName(), setterDescriptor, false, false),
		)
		if err := t.registerMethod(setter); err != nil {
			return err
		}
	}

	for _, method := range t.decl.DirectMethods() {
		params := formalParamsFromNodes(method.Params)
		descriptor := invokableDescriptor(params, method.ReturnType.Usage.JvmType())
		definition := NewInternalMethodDefinition(
			method.Name,
			params,
			method.ReturnType.Usage,
			jvm.NewMethodDefinition(t.InternalName(), method.Name, descriptor, method.Static, false),
		)
		if err := t.registerMethod(definition); err != nil {
			return err
		}
	}
	return nil
}

func (t *SourceType) registerMethod(method *InternalMethodDefinition) error {
	if _, exists := t.methodsByName[method.Name]; exists {
		return NewDuplicateMethodError(t.QualifiedName(), method.Name)
	}
	t.methodsByName[method.Name] = method
	return nil
}

// ---------------------------------------------------------------------------
// Queries.

func (t *SourceType) Constructors() ([]*InternalConstructorDefinition, error) {
	if err := t.ensureConstructorsInitialized(); err != nil {
		return nil, err
	}
	return t.constructors, nil
}

// OnlyConstructor returns the sole constructor of the type.
func (t *SourceType) OnlyConstructor() (*InternalConstructorDefinition, error) {
	constructors, err := t.Constructors()
	if err != nil {
		return nil, err
	}
	if len(constructors) != 1 {
		return nil, NewInternalError("type %s has %d constructors, expected one", t.QualifiedName(), len(constructors))
	}
	return constructors[0], nil
}

// Methods returns the materialized method table sorted by name, forcing
// full initialization.
func (t *SourceType) Methods() ([]*InternalMethodDefinition, error) {
	if err := t.ensureFullyInitialized(); err != nil {
		return nil, err
	}
	return sortedMethods(t.methodsByName), nil
}

func (t *SourceType) FindConstructor(actuals []*ast.ActualParam) (*InternalConstructorDefinition, error) {
	if !VerifyParamOrder(actuals) {
		return nil, NewIllOrderedParametersError()
	}
	if err := t.ensureConstructorsInitialized(); err != nil {
		return nil, err
	}
	for _, constructor := range t.constructors {
		if constructor.Match(actuals) {
			return constructor, nil
		}
	}
	return nil, nil
}

func (t *SourceType) ResolveConstructorCall(actuals []*ast.ActualParam) (*jvm.ConstructorDefinition, error) {
	constructor, err := t.FindConstructor(actuals)
	if err != nil {
		return nil, err
	}
	if constructor == nil {
		return nil, NewUnresolvedConstructorError(t.QualifiedName(), actuals)
	}
	return constructor.JvmDefinition, nil
}

func (t *SourceType) FindMethod(name string, actuals []*ast.ActualParam, staticContext bool) (*InternalMethodDefinition, error) {
	if !VerifyParamOrder(actuals) {
		return nil, NewIllOrderedParametersError()
	}
	if err := t.ensureFullyInitialized(); err != nil {
		return nil, err
	}
	method, ok := t.methodsByName[name]
	if !ok {
		return nil, nil
	}
	if staticContext && !method.JvmDefinition.Static {
		return nil, nil
	}
	if !method.Match(actuals) {
		return nil, nil
	}
	return method, nil
}

func (t *SourceType) FindMethodByDescriptors(name string, argTypes []jvm.Type, staticContext bool) (*jvm.MethodDefinition, error) {
	if err := t.ensureFullyInitialized(); err != nil {
		return nil, err
	}
	method, ok := t.methodsByName[name]
	if !ok {
		return nil, NewInternalError("no method named %s in %s", name, t.QualifiedName())
	}
	if staticContext && !method.JvmDefinition.Static {
		return nil, NewInternalError("method %s of %s is not static", name, t.QualifiedName())
	}
	if !method.MatchJvmTypes(argTypes) {
		return nil, NewInternalError("method %s of %s does not match descriptors %v", name, t.QualifiedName(), argTypes)
	}
	return method.JvmDefinition, nil
}

func (t *SourceType) FieldType(name string, staticContext bool) (typesystem.TypeUsage, error) {
	for _, property := range t.AllProperties() {
		if property.Name == name {
			return property.Type, nil
		}
	}
	return nil, typesystem.NewUnresolvedSymbolError(name)
}

// Properties are always assignable through their synthesized setters.
func (t *SourceType) CanFieldBeAssigned(name string) bool { return true }

func (t *SourceType) FindSymbol(name string, resolver SymbolResolver) (Symbol, bool) {
	for _, property := range t.AllProperties() {
		if property.Name == name {
			return property, true
		}
	}
	return nil, false
}

func (t *SourceType) AllAncestors() []*typesystem.ReferenceUsage {
	if t.decl.BaseType != nil {
		baseRef := t.decl.BaseType.AsReference()
		if baseRef == nil {
			return nil
		}
		ancestors := []*typesystem.ReferenceUsage{baseRef}
		if baseDef, ok := Root(t.resolver).FindTypeDefinition(baseRef.Name, t.decl); ok {
			ancestors = append(ancestors, baseDef.AllAncestors()...)
		}
		return ancestors
	}
	return []*typesystem.ReferenceUsage{typesystem.NewReferenceUsage(ObjectQualifiedName)}
}

func (t *SourceType) Superclass() (TypeDefinition, error) {
	name := ObjectQualifiedName
	if t.decl.BaseType != nil {
		baseRef := t.decl.BaseType.AsReference()
		if baseRef == nil {
			return nil, NewInternalError("base type of %s is not a reference type", t.QualifiedName())
		}
		name = baseRef.Name
	}
	superclass, ok := Root(t.resolver).FindTypeDefinition(name, t.decl)
	if !ok {
		return nil, typesystem.NewUnresolvedTypeError(name)
	}
	return superclass, nil
}

// ---------------------------------------------------------------------------
// Overridden-method interrogation for emitter hooks. A direct method counts
// iff its name and the JVM descriptors of its formal parameters match
// exactly; staticness is not considered.

// DefinesToString reports whether the type redeclares Object.toString.
func (t *SourceType) DefinesToString() bool {
	return t.definesMethod("toString", nil)
}

// DefinesHashCode reports whether the type redeclares Object.hashCode.
func (t *SourceType) DefinesHashCode() bool {
	return t.definesMethod("hashCode", nil)
}

// DefinesEquals reports whether the type redeclares Object.equals.
func (t *SourceType) DefinesEquals() bool {
	return t.definesMethod("equals", []jvm.Type{jvm.Reference("java/lang/Object")})
}

func (t *SourceType) definesMethod(name string, paramTypes []jvm.Type) bool {
	for _, method := range t.decl.DirectMethods() {
		if method.Name != name || len(method.Params) != len(paramTypes) {
			continue
		}
		matches := true
		for i, param := range method.Params {
			if param.Type.Usage.JvmType() != paramTypes[i] {
				matches = false
				break
			}
		}
		if matches {
			return true
		}
	}
	return false
}
