package ast

import (
	"github.com/turin-lang/turin/internal/diagnostics"
	"github.com/turin-lang/turin/internal/typesystem"
)

// Node is the base interface for all AST nodes. Every non-root node has a
// parent back-reference; the tree itself is acyclic and owned top-down.
type Node interface {
	Position() diagnostics.Position
	SetPosition(pos diagnostics.Position)
	Parent() Node
	SetParent(parent Node)
	Children() []Node
}

// baseNode carries the position and the non-owning parent back-reference
// shared by every concrete node.
type baseNode struct {
	pos    diagnostics.Position
	parent Node
}

func (b *baseNode) Position() diagnostics.Position       { return b.pos }
func (b *baseNode) SetPosition(pos diagnostics.Position) { b.pos = pos }
func (b *baseNode) Parent() Node                         { return b.parent }
func (b *baseNode) SetParent(parent Node)                { b.parent = parent }

// TypeUsageNode attaches a source position to a type usage appearing in a
// declaration or an expression.
type TypeUsageNode struct {
	baseNode
	Usage typesystem.TypeUsage
}

func NewTypeUsageNode(usage typesystem.TypeUsage) *TypeUsageNode {
	return &TypeUsageNode{Usage: usage}
}

func (t *TypeUsageNode) Children() []Node { return nil }

// IsReference reports whether the underlying usage refers to a class or
// interface type.
func (t *TypeUsageNode) IsReference() bool {
	_, ok := t.Usage.(*typesystem.ReferenceUsage)
	return ok
}

// AsReference returns the underlying reference usage, or nil when the usage
// is not a reference.
func (t *TypeUsageNode) AsReference() *typesystem.ReferenceUsage {
	ref, _ := t.Usage.(*typesystem.ReferenceUsage)
	return ref
}

// NamespaceDeclaration names the namespace of a compilation unit.
type NamespaceDeclaration struct {
	baseNode
	Name string
}

func (n *NamespaceDeclaration) Children() []Node { return nil }

// ImportDeclaration brings an external type, or a whole package, into the
// unit's simple-name scope.
// import java.util.Map / import java.util.*
type ImportDeclaration struct {
	baseNode
	Path    string // qualified type name, or package name for star imports
	AllOfPackage bool
}

func (i *ImportDeclaration) Children() []Node { return nil }

// CompilationUnit is the root node produced by the parser for one input
// file: a namespace plus an ordered list of top-level declarations.
type CompilationUnit struct {
	baseNode
	Namespace *NamespaceDeclaration
	Imports   []*ImportDeclaration
	TopNodes  []Node
}

func NewCompilationUnit(namespace string) *CompilationUnit {
	unit := &CompilationUnit{}
	ns := &NamespaceDeclaration{Name: namespace}
	ns.SetParent(unit)
	unit.Namespace = ns
	return unit
}

func (u *CompilationUnit) Children() []Node {
	children := make([]Node, 0, 1+len(u.Imports)+len(u.TopNodes))
	if u.Namespace != nil {
		children = append(children, u.Namespace)
	}
	for _, imp := range u.Imports {
		children = append(children, imp)
	}
	children = append(children, u.TopNodes...)
	return children
}

func (u *CompilationUnit) AddImport(imp *ImportDeclaration) {
	imp.SetParent(u)
	u.Imports = append(u.Imports, imp)
}

func (u *CompilationUnit) AddType(decl *TypeDeclaration) {
	decl.SetParent(u)
	u.TopNodes = append(u.TopNodes, decl)
}

func (u *CompilationUnit) AddProperty(decl *PropertyDeclaration) {
	decl.SetParent(u)
	u.TopNodes = append(u.TopNodes, decl)
}

func (u *CompilationUnit) AddProgram(program *Program) {
	program.SetParent(u)
	u.TopNodes = append(u.TopNodes, program)
}

// TopTypeDeclaration finds a top-level type declaration by simple name.
func (u *CompilationUnit) TopTypeDeclaration(name string) (*TypeDeclaration, bool) {
	for _, node := range u.TopNodes {
		if decl, ok := node.(*TypeDeclaration); ok && decl.Name == name {
			return decl, true
		}
	}
	return nil, false
}

// TopPropertyDeclarations returns the top-level property declarations of
// the unit, the targets of property references inside type bodies.
func (u *CompilationUnit) TopPropertyDeclarations() []*PropertyDeclaration {
	var props []*PropertyDeclaration
	for _, node := range u.TopNodes {
		if decl, ok := node.(*PropertyDeclaration); ok {
			props = append(props, decl)
		}
	}
	return props
}

// Programs returns the program entry nodes of the unit.
func (u *CompilationUnit) Programs() []*Program {
	var programs []*Program
	for _, node := range u.TopNodes {
		if program, ok := node.(*Program); ok {
			programs = append(programs, program)
		}
	}
	return programs
}
