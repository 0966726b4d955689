package ast

// Walk visits node and its whole subtree depth-first, parents before
// children. The walk stops early when fn returns false.
func Walk(node Node, fn func(Node) bool) bool {
	if node == nil {
		return true
	}
	if !fn(node) {
		return false
	}
	for _, child := range node.Children() {
		if !Walk(child, fn) {
			return false
		}
	}
	return true
}

// AssignParents reconstructs parent back-references over the whole subtree
// in one pass. Parsers that do not maintain parents call this once per unit
// before the semantic phase.
func AssignParents(root Node) {
	Walk(root, func(n Node) bool {
		for _, child := range n.Children() {
			child.SetParent(n)
		}
		return true
	})
}

// Ancestors returns the ancestor chain of node, innermost first.
func Ancestors(node Node) []Node {
	var ancestors []Node
	for n := node.Parent(); n != nil; n = n.Parent() {
		ancestors = append(ancestors, n)
	}
	return ancestors
}

// EnclosingUnit walks outward to the compilation unit containing node.
func EnclosingUnit(node Node) (*CompilationUnit, bool) {
	for n := node; n != nil; n = n.Parent() {
		if unit, ok := n.(*CompilationUnit); ok {
			return unit, true
		}
	}
	return nil, false
}

// EnclosingType walks outward to the type declaration containing node.
func EnclosingType(node Node) (*TypeDeclaration, bool) {
	for n := node; n != nil; n = n.Parent() {
		if decl, ok := n.(*TypeDeclaration); ok {
			return decl, true
		}
	}
	return nil, false
}
