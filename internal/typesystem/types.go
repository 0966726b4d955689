package typesystem

import (
	"fmt"
	"strings"

	"github.com/turin-lang/turin/internal/jvm"
)

// TypeUsage is a reference to a type at a use site. It is one of a closed
// set of variants: primitive, void, reference, array or type variable.
type TypeUsage interface {
	// JvmType returns the JVM-level type this usage compiles to.
	JvmType() jvm.Type
	String() string
	typeUsage()
}

// PrimitiveUsage is a use of one of the JVM primitive types.
type PrimitiveUsage struct {
	Name string // int, boolean, byte, char, short, long, float, double
}

var primitiveDescriptors = map[string]jvm.Type{
	"boolean": jvm.Boolean,
	"byte":    jvm.Byte,
	"char":    jvm.Char,
	"short":   jvm.Short,
	"int":     jvm.Int,
	"long":    jvm.Long,
	"float":   jvm.Float,
	"double":  jvm.Double,
}

// Primitive returns the usage for a primitive type name, or false when the
// name does not denote a primitive type.
func Primitive(name string) (*PrimitiveUsage, bool) {
	if _, ok := primitiveDescriptors[name]; !ok {
		return nil, false
	}
	return &PrimitiveUsage{Name: name}, true
}

func (p *PrimitiveUsage) JvmType() jvm.Type {
	t, ok := primitiveDescriptors[p.Name]
	if !ok {
		panic(fmt.Sprintf("unknown primitive type %q", p.Name))
	}
	return t
}

func (p *PrimitiveUsage) String() string { return p.Name }
func (p *PrimitiveUsage) typeUsage()     {}

// VoidUsage is the use of void as a return type.
type VoidUsage struct{}

func (v *VoidUsage) JvmType() jvm.Type { return jvm.Void }
func (v *VoidUsage) String() string    { return "void" }
func (v *VoidUsage) typeUsage()        {}

// ReferenceUsage is a use of a class or interface type by qualified name,
// optionally parameterized with type arguments. Type arguments are carried
// but never emitted in descriptors.
type ReferenceUsage struct {
	Name     string // canonical, dotted
	TypeArgs []TypeUsage
}

func NewReferenceUsage(canonicalName string, typeArgs ...TypeUsage) *ReferenceUsage {
	return &ReferenceUsage{Name: canonicalName, TypeArgs: typeArgs}
}

func (r *ReferenceUsage) JvmType() jvm.Type {
	return jvm.ReferenceFromCanonical(r.Name)
}

func (r *ReferenceUsage) String() string {
	if len(r.TypeArgs) == 0 {
		return r.Name
	}
	args := make([]string, len(r.TypeArgs))
	for i, a := range r.TypeArgs {
		args[i] = a.String()
	}
	return r.Name + "<" + strings.Join(args, ", ") + ">"
}

func (r *ReferenceUsage) typeUsage() {}

// ArrayUsage is a use of an array type.
type ArrayUsage struct {
	Element TypeUsage
}

func (a *ArrayUsage) JvmType() jvm.Type { return jvm.Array(a.Element.JvmType()) }
func (a *ArrayUsage) String() string    { return a.Element.String() + "[]" }
func (a *ArrayUsage) typeUsage()        {}

// TypeVariableDeclarer identifies the kind of declaration a type variable
// belongs to.
type TypeVariableDeclarer int

const (
	DeclaredOnClass TypeVariableDeclarer = iota
	DeclaredOnMethod
	DeclaredOnConstructor
)

func (d TypeVariableDeclarer) String() string {
	switch d {
	case DeclaredOnClass:
		return "class"
	case DeclaredOnMethod:
		return "method"
	case DeclaredOnConstructor:
		return "constructor"
	default:
		return "unknown"
	}
}

// TypeVariableUsage is a use of a generic type variable. Type variables are
// carried through the data model but never resolved to concrete types.
type TypeVariableUsage struct {
	Name       string
	DeclaredBy TypeVariableDeclarer
	Bounds     []TypeUsage
}

// JvmType erases the variable to java.lang.Object, the standard erasure of
// an unbounded variable.
func (t *TypeVariableUsage) JvmType() jvm.Type {
	return jvm.Reference("java/lang/Object")
}

func (t *TypeVariableUsage) String() string { return t.Name }
func (t *TypeVariableUsage) typeUsage()     {}
