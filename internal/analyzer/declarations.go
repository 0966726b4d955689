package analyzer

import (
	"github.com/turin-lang/turin/internal/ast"
	"github.com/turin-lang/turin/internal/definitions"
)

func (v *Validator) validateTypeDeclaration(decl *ast.TypeDeclaration) {
	v.checkExplicitConstructors(decl)
	baseOK := v.checkExtension(decl)
	v.checkAnnotations(decl)
	v.checkMembers(decl)

	// Force constructor synthesis and method materialization so latent
	// failures (unsupported inheritance, colliding method names) surface
	// here with the declaration's position instead of deep inside a
	// later query. Skip when multiple explicit constructors were already
	// reported: no constructors get registered for such a type. Skip too
	// when the implicit constructor would chain to a base type already
	// reported as invalid, so that base is reported once.
	explicitCount := len(decl.ExplicitConstructors())
	if explicitCount > 1 || (explicitCount == 0 && !baseOK) {
		return
	}
	def, ok := v.resolver.FindTypeDefinition(decl.QualifiedName(), decl)
	if !ok {
		v.record(decl.Position(), "type %s not resolved", decl.QualifiedName())
		return
	}
	source, ok := def.(*definitions.SourceType)
	if !ok {
		return
	}
	if _, err := source.Constructors(); err != nil {
		v.record(decl.Position(), "%s", err.Error())
		return
	}
	if _, err := source.Methods(); err != nil {
		v.record(decl.Position(), "%s", err.Error())
	}
}

// checkExplicitConstructors reports every constructor of an
// over-constructed type, one error per declaration.
func (v *Validator) checkExplicitConstructors(decl *ast.TypeDeclaration) {
	constructors := decl.ExplicitConstructors()
	if len(constructors) <= 1 {
		return
	}
	for _, constructor := range constructors {
		v.record(constructor.Position(), "type %s declares more than one explicit constructor", decl.Name)
	}
}

// checkExtension confirms the declared base type is a class and every
// implemented type is an interface. It reports whether the base type, when
// declared, passed its checks.
func (v *Validator) checkExtension(decl *ast.TypeDeclaration) bool {
	baseOK := true
	if decl.BaseType != nil {
		ref := decl.BaseType.AsReference()
		if ref == nil {
			v.record(decl.BaseType.Position(), "type %s extends a non-reference type", decl.Name)
			baseOK = false
		} else if base, ok := v.resolver.FindTypeDefinition(ref.Name, decl); !ok {
			v.record(decl.BaseType.Position(), "type %s not resolved", ref.Name)
			baseOK = false
		} else if !base.IsClass() {
			v.record(decl.BaseType.Position(), "type %s extends %s, which is not a class", decl.Name, base.QualifiedName())
			baseOK = false
		}
	}
	for _, ifaceNode := range decl.Interfaces {
		ref := ifaceNode.AsReference()
		if ref == nil {
			v.record(ifaceNode.Position(), "type %s implements a non-reference type", decl.Name)
			continue
		}
		iface, ok := v.resolver.FindTypeDefinition(ref.Name, decl)
		if !ok {
			v.record(ifaceNode.Position(), "type %s not resolved", ref.Name)
			continue
		}
		if !iface.IsInterface() {
			v.record(ifaceNode.Position(), "type %s implements %s, which is not an interface", decl.Name, iface.QualifiedName())
		}
	}
	return baseOK
}

func (v *Validator) checkAnnotations(decl *ast.TypeDeclaration) {
	for _, annotation := range decl.Annotations {
		if _, ok := v.resolver.FindTypeDefinition(annotation.Name, decl); !ok {
			v.record(annotation.Position(), "annotation %s not resolved", annotation.Name)
		}
	}
}

func (v *Validator) checkMembers(decl *ast.TypeDeclaration) {
	propertyNames := map[string]bool{}
	methodNames := map[string]bool{}

	for _, member := range decl.Members {
		switch m := member.(type) {
		case *ast.PropertyDeclaration:
			v.checkTypeUsage(m.Type, decl)
			v.registerPropertyName(decl, m, m.Name, propertyNames)
			scope := newScope(nil)
			if m.InitialValue != nil {
				v.validateExpression(m.InitialValue, scope)
			}
			if m.DefaultValue != nil {
				v.validateExpression(m.DefaultValue, scope)
			}
		case *ast.PropertyReference:
			peer, ok := v.resolver.FindDefinition(m)
			if !ok {
				v.record(m.Position(), "property %s not resolved", m.Name)
				continue
			}
			v.registerPropertyName(decl, m, peer.Name, propertyNames)
		case *ast.MethodDeclaration:
			if methodNames[m.Name] {
				v.record(m.Position(), "method %s declared more than once in %s", m.Name, decl.Name)
			}
			methodNames[m.Name] = true
			v.validateMethodDeclaration(decl, m)
		case *ast.ConstructorDeclaration:
			v.validateConstructorDeclaration(decl, m)
		}
	}
}

func (v *Validator) registerPropertyName(decl *ast.TypeDeclaration, member ast.Node, name string, seen map[string]bool) {
	if seen[name] {
		v.record(member.Position(), "property %s declared more than once in %s", name, decl.Name)
		return
	}
	seen[name] = true
}

func (v *Validator) validateMethodDeclaration(decl *ast.TypeDeclaration, method *ast.MethodDeclaration) {
	v.checkTypeUsage(method.ReturnType, decl)
	scope := v.typeScope(decl)
	v.checkFormalParameters(decl, method.Params, scope)
	v.validateStatements(method.Body, scope)
}

func (v *Validator) validateConstructorDeclaration(decl *ast.TypeDeclaration, constructor *ast.ConstructorDeclaration) {
	scope := v.typeScope(decl)
	v.checkFormalParameters(decl, constructor.Params, scope)
	v.validateStatements(constructor.Body, scope)
}

func (v *Validator) checkFormalParameters(context ast.Node, params []*ast.FormalParameterNode, scope *scope) {
	seen := map[string]bool{}
	for _, param := range params {
		v.checkTypeUsage(param.Type, context)
		if seen[param.Name] {
			v.record(param.Position(), "parameter %s declared more than once", param.Name)
		}
		seen[param.Name] = true
		if param.DefaultValue != nil {
			v.validateExpression(param.DefaultValue, scope)
		}
		scope.declare(param.Name)
	}
}

// typeScope seeds a scope with the names visible inside a type body: its
// direct properties.
func (v *Validator) typeScope(decl *ast.TypeDeclaration) *scope {
	s := newScope(nil)
	for _, member := range decl.Members {
		switch m := member.(type) {
		case *ast.PropertyDeclaration:
			s.declare(m.Name)
		case *ast.PropertyReference:
			s.declare(m.Name)
		}
	}
	return s
}
