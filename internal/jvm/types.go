package jvm

import (
	"fmt"
	"strings"
)

// Type is a JVM-level type identified by its field descriptor.
// The zero value is not a valid type.
type Type struct {
	descriptor string
}

// Predefined primitive types and void.
var (
	Void    = Type{"V"}
	Boolean = Type{"Z"}
	Byte    = Type{"B"}
	Char    = Type{"C"}
	Short   = Type{"S"}
	Int     = Type{"I"}
	Long    = Type{"J"}
	Float   = Type{"F"}
	Double  = Type{"D"}
)

// Reference builds a reference type from an internal name.
func Reference(internalName string) Type {
	return Type{"L" + internalName + ";"}
}

// ReferenceFromCanonical builds a reference type from a dotted name.
func ReferenceFromCanonical(canonical string) Type {
	return Reference(CanonicalToInternal(canonical))
}

// Array builds an array type with the given element type.
func Array(element Type) Type {
	return Type{"[" + element.descriptor}
}

// TypeFromDescriptor parses a single field descriptor.
func TypeFromDescriptor(descriptor string) (Type, error) {
	rest, t, err := readType(descriptor)
	if err != nil {
		return Type{}, err
	}
	if rest != "" {
		return Type{}, fmt.Errorf("trailing characters in descriptor %q", descriptor)
	}
	return t, nil
}

// Descriptor returns the JVM field descriptor of the type.
func (t Type) Descriptor() string {
	return t.descriptor
}

// Signature returns the signature encoding of the type. Generic type
// variables are never emitted, so this is the descriptor itself.
func (t Type) Signature() string {
	return t.descriptor
}

func (t Type) IsVoid() bool {
	return t.descriptor == "V"
}

func (t Type) IsPrimitive() bool {
	return len(t.descriptor) == 1 && t.descriptor != "V"
}

func (t Type) IsReference() bool {
	return strings.HasPrefix(t.descriptor, "L")
}

func (t Type) IsArray() bool {
	return strings.HasPrefix(t.descriptor, "[")
}

// InternalName returns the internal name of a reference type.
func (t Type) InternalName() string {
	if !t.IsReference() {
		panic(fmt.Sprintf("internal name requested for non-reference type %q", t.descriptor))
	}
	return strings.TrimSuffix(strings.TrimPrefix(t.descriptor, "L"), ";")
}

// ElementType returns the element type of an array type.
func (t Type) ElementType() (Type, error) {
	if !t.IsArray() {
		return Type{}, fmt.Errorf("element type requested for non-array type %q", t.descriptor)
	}
	return TypeFromDescriptor(strings.TrimPrefix(t.descriptor, "["))
}

func (t Type) String() string {
	return t.descriptor
}

// MethodDescriptor assembles a method descriptor from parameter and return
// types.
func MethodDescriptor(params []Type, returnType Type) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for _, p := range params {
		sb.WriteString(p.descriptor)
	}
	sb.WriteByte(')')
	sb.WriteString(returnType.descriptor)
	return sb.String()
}

// ParseMethodDescriptor splits a method descriptor into its parameter types
// and return type.
func ParseMethodDescriptor(descriptor string) ([]Type, Type, error) {
	if !strings.HasPrefix(descriptor, "(") {
		return nil, Type{}, fmt.Errorf("method descriptor %q does not start with '('", descriptor)
	}
	closing := strings.IndexByte(descriptor, ')')
	if closing < 0 {
		return nil, Type{}, fmt.Errorf("method descriptor %q has no ')'", descriptor)
	}
	var params []Type
	rest := descriptor[1:closing]
	for rest != "" {
		var (
			t   Type
			err error
		)
		rest, t, err = readType(rest)
		if err != nil {
			return nil, Type{}, err
		}
		params = append(params, t)
	}
	returnType, err := TypeFromDescriptor(descriptor[closing+1:])
	if err != nil {
		return nil, Type{}, err
	}
	return params, returnType, nil
}

// readType consumes one type from the front of s and returns the remainder.
func readType(s string) (string, Type, error) {
	if s == "" {
		return "", Type{}, fmt.Errorf("empty descriptor")
	}
	switch s[0] {
	case 'V', 'Z', 'B', 'C', 'S', 'I', 'J', 'F', 'D':
		return s[1:], Type{s[:1]}, nil
	case 'L':
		end := strings.IndexByte(s, ';')
		if end < 0 {
			return "", Type{}, fmt.Errorf("unterminated reference descriptor %q", s)
		}
		return s[end+1:], Type{s[:end+1]}, nil
	case '[':
		rest, elem, err := readType(s[1:])
		if err != nil {
			return "", Type{}, err
		}
		return rest, Type{"[" + elem.descriptor}, nil
	default:
		return "", Type{}, fmt.Errorf("unknown descriptor character %q", s[0])
	}
}
