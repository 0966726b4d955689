package ast

// TypeDeclaration is a source-defined type: an ordered list of members with
// an optional base type and a list of implemented interfaces.
type TypeDeclaration struct {
	baseNode
	Name        string
	Members     []Node
	BaseType    *TypeUsageNode
	Interfaces  []*TypeUsageNode
	Annotations []*AnnotationUsage
}

func NewTypeDeclaration(name string) *TypeDeclaration {
	return &TypeDeclaration{Name: name}
}

func (t *TypeDeclaration) Children() []Node {
	children := make([]Node, 0, len(t.Members)+len(t.Annotations)+len(t.Interfaces)+1)
	children = append(children, t.Members...)
	for _, a := range t.Annotations {
		children = append(children, a)
	}
	if t.BaseType != nil {
		children = append(children, t.BaseType)
	}
	for _, i := range t.Interfaces {
		children = append(children, i)
	}
	return children
}

func (t *TypeDeclaration) SetBaseType(baseType *TypeUsageNode) {
	baseType.SetParent(t)
	t.BaseType = baseType
}

func (t *TypeDeclaration) AddInterface(iface *TypeUsageNode) {
	iface.SetParent(t)
	t.Interfaces = append(t.Interfaces, iface)
}

func (t *TypeDeclaration) AddAnnotation(annotation *AnnotationUsage) {
	annotation.SetParent(t)
	t.Annotations = append(t.Annotations, annotation)
}

func (t *TypeDeclaration) AddProperty(property *PropertyDeclaration) {
	property.SetParent(t)
	t.Members = append(t.Members, property)
}

func (t *TypeDeclaration) AddPropertyReference(reference *PropertyReference) {
	reference.SetParent(t)
	t.Members = append(t.Members, reference)
}

func (t *TypeDeclaration) AddMethod(method *MethodDeclaration) {
	method.SetParent(t)
	t.Members = append(t.Members, method)
}

func (t *TypeDeclaration) AddConstructor(constructor *ConstructorDeclaration) {
	constructor.SetParent(t)
	t.Members = append(t.Members, constructor)
}

// ExplicitConstructors returns the constructor declarations among the
// members. At most one is legal; validation reports every extra one.
func (t *TypeDeclaration) ExplicitConstructors() []*ConstructorDeclaration {
	var constructors []*ConstructorDeclaration
	for _, member := range t.Members {
		if c, ok := member.(*ConstructorDeclaration); ok {
			constructors = append(constructors, c)
		}
	}
	return constructors
}

// DirectMethods returns the method declarations among the members.
func (t *TypeDeclaration) DirectMethods() []*MethodDeclaration {
	var methods []*MethodDeclaration
	for _, member := range t.Members {
		if m, ok := member.(*MethodDeclaration); ok {
			methods = append(methods, m)
		}
	}
	return methods
}

// QualifiedName derives the fully qualified name from the enclosing unit's
// namespace.
func (t *TypeDeclaration) QualifiedName() string {
	for node := t.Parent(); node != nil; node = node.Parent() {
		if unit, ok := node.(*CompilationUnit); ok && unit.Namespace != nil && unit.Namespace.Name != "" {
			return unit.Namespace.Name + "." + t.Name
		}
	}
	return t.Name
}

// PropertyDeclaration declares a named, typed slot, either inside a type
// body or at the top level of a unit. The initial value, when present,
// removes the property from the synthesized constructor; the default value
// makes it overridable through the trailing named-arguments map.
type PropertyDeclaration struct {
	baseNode
	Name         string
	Type         *TypeUsageNode
	InitialValue Expression
	DefaultValue Expression
}

func NewPropertyDeclaration(name string, typeUsage *TypeUsageNode) *PropertyDeclaration {
	p := &PropertyDeclaration{Name: name, Type: typeUsage}
	typeUsage.SetParent(p)
	return p
}

func (p *PropertyDeclaration) SetInitialValue(value Expression) {
	value.SetParent(p)
	p.InitialValue = value
}

func (p *PropertyDeclaration) SetDefaultValue(value Expression) {
	value.SetParent(p)
	p.DefaultValue = value
}

func (p *PropertyDeclaration) Children() []Node {
	children := []Node{p.Type}
	if p.InitialValue != nil {
		children = append(children, p.InitialValue)
	}
	if p.DefaultValue != nil {
		children = append(children, p.DefaultValue)
	}
	return children
}

// PropertyReference pulls a top-level property declaration into a type body
// by name.
type PropertyReference struct {
	baseNode
	Name string
}

func (p *PropertyReference) Children() []Node { return nil }

// FormalParameterNode is a declared parameter of a constructor or method.
type FormalParameterNode struct {
	baseNode
	Name         string
	Type         *TypeUsageNode
	DefaultValue Expression
}

func NewFormalParameterNode(name string, typeUsage *TypeUsageNode) *FormalParameterNode {
	p := &FormalParameterNode{Name: name, Type: typeUsage}
	typeUsage.SetParent(p)
	return p
}

func NewDefaultedFormalParameterNode(name string, typeUsage *TypeUsageNode, defaultValue Expression) *FormalParameterNode {
	p := NewFormalParameterNode(name, typeUsage)
	defaultValue.SetParent(p)
	p.DefaultValue = defaultValue
	return p
}

func (p *FormalParameterNode) HasDefaultValue() bool { return p.DefaultValue != nil }

func (p *FormalParameterNode) Children() []Node {
	children := []Node{p.Type}
	if p.DefaultValue != nil {
		children = append(children, p.DefaultValue)
	}
	return children
}

// MethodDeclaration is a method declared directly on a source type. Method
// names must be unique within a type: no overloading among direct methods.
type MethodDeclaration struct {
	baseNode
	Name       string
	Params     []*FormalParameterNode
	ReturnType *TypeUsageNode
	Static     bool
	Body       []Statement
}

func NewMethodDeclaration(name string, returnType *TypeUsageNode, params ...*FormalParameterNode) *MethodDeclaration {
	m := &MethodDeclaration{Name: name, ReturnType: returnType, Params: params}
	returnType.SetParent(m)
	for _, p := range params {
		p.SetParent(m)
	}
	return m
}

func (m *MethodDeclaration) Children() []Node {
	children := make([]Node, 0, len(m.Params)+len(m.Body)+1)
	for _, p := range m.Params {
		children = append(children, p)
	}
	children = append(children, m.ReturnType)
	for _, s := range m.Body {
		children = append(children, s)
	}
	return children
}

// ConstructorDeclaration is an explicitly declared constructor. A type may
// declare at most one.
type ConstructorDeclaration struct {
	baseNode
	Params []*FormalParameterNode
	Body   []Statement
}

func NewConstructorDeclaration(params ...*FormalParameterNode) *ConstructorDeclaration {
	c := &ConstructorDeclaration{Params: params}
	for _, p := range params {
		p.SetParent(c)
	}
	return c
}

func (c *ConstructorDeclaration) Children() []Node {
	children := make([]Node, 0, len(c.Params)+len(c.Body))
	for _, p := range c.Params {
		children = append(children, p)
	}
	for _, s := range c.Body {
		children = append(children, s)
	}
	return children
}

// AnnotationUsage records an annotation applied to a type declaration. The
// annotation's arguments are not modelled.
type AnnotationUsage struct {
	baseNode
	Name string // qualified or simple annotation type name
}

func (a *AnnotationUsage) Children() []Node { return nil }
