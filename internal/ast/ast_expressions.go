package ast

// Expression is a Node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// IntLiteral is an integer literal.
type IntLiteral struct {
	baseNode
	Value int64
}

func (l *IntLiteral) Children() []Node { return nil }
func (l *IntLiteral) expressionNode()  {}

// DoubleLiteral is a floating point literal.
type DoubleLiteral struct {
	baseNode
	Value float64
}

func (l *DoubleLiteral) Children() []Node { return nil }
func (l *DoubleLiteral) expressionNode()  {}

// BoolLiteral is a boolean literal.
type BoolLiteral struct {
	baseNode
	Value bool
}

func (l *BoolLiteral) Children() []Node { return nil }
func (l *BoolLiteral) expressionNode()  {}

// StringLiteral is a string literal.
type StringLiteral struct {
	baseNode
	Value string
}

func (l *StringLiteral) Children() []Node { return nil }
func (l *StringLiteral) expressionNode()  {}

// ValueReference is a use of a name as an expression.
type ValueReference struct {
	baseNode
	Name string
}

func (v *ValueReference) Children() []Node { return nil }
func (v *ValueReference) expressionNode()  {}

// FieldAccess is receiver.field.
type FieldAccess struct {
	baseNode
	Receiver Expression
	Name     string
}

func NewFieldAccess(receiver Expression, name string) *FieldAccess {
	f := &FieldAccess{Receiver: receiver, Name: name}
	receiver.SetParent(f)
	return f
}

func (f *FieldAccess) Children() []Node { return []Node{f.Receiver} }
func (f *FieldAccess) expressionNode()  {}

// ActualParam is one argument at a call site, positional or named.
type ActualParam struct {
	baseNode
	Name  string // empty for positional arguments
	Value Expression
}

func NewActualParam(value Expression) *ActualParam {
	p := &ActualParam{Value: value}
	value.SetParent(p)
	return p
}

func NewNamedActualParam(name string, value Expression) *ActualParam {
	p := NewActualParam(value)
	p.Name = name
	return p
}

func (a *ActualParam) IsNamed() bool    { return a.Name != "" }
func (a *ActualParam) Children() []Node { return []Node{a.Value} }

// FunctionCall is an invocation of a method by name.
type FunctionCall struct {
	baseNode
	Receiver Expression // nil for implicit-receiver calls
	Name     string
	Params   []*ActualParam
}

func NewFunctionCall(receiver Expression, name string, params ...*ActualParam) *FunctionCall {
	c := &FunctionCall{Receiver: receiver, Name: name, Params: params}
	if receiver != nil {
		receiver.SetParent(c)
	}
	for _, p := range params {
		p.SetParent(c)
	}
	return c
}

func (c *FunctionCall) Children() []Node {
	children := make([]Node, 0, len(c.Params)+1)
	if c.Receiver != nil {
		children = append(children, c.Receiver)
	}
	for _, p := range c.Params {
		children = append(children, p)
	}
	return children
}

func (c *FunctionCall) expressionNode() {}

// Creation instantiates a type: Point(1, y=2).
type Creation struct {
	baseNode
	TypeName string // simple or qualified
	Params   []*ActualParam
}

func NewCreation(typeName string, params ...*ActualParam) *Creation {
	c := &Creation{TypeName: typeName, Params: params}
	for _, p := range params {
		p.SetParent(c)
	}
	return c
}

func (c *Creation) Children() []Node {
	children := make([]Node, 0, len(c.Params))
	for _, p := range c.Params {
		children = append(children, p)
	}
	return children
}

func (c *Creation) expressionNode() {}
