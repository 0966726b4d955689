package jvm

// MethodDefinition is the low-level identity of a JVM method: everything
// the bytecode emitter needs to produce an invocation.
type MethodDefinition struct {
	OwnerInternalName string
	Name              string
	Descriptor        string
	Static            bool
	DeclaredOnInterface bool
}

func NewMethodDefinition(ownerInternalName, name, descriptor string, static, declaredOnInterface bool) *MethodDefinition {
	return &MethodDefinition{
		OwnerInternalName:   ownerInternalName,
		Name:                name,
		Descriptor:          descriptor,
		Static:              static,
		DeclaredOnInterface: declaredOnInterface,
	}
}

// ParamTypes returns the parameter types encoded in the descriptor.
func (m *MethodDefinition) ParamTypes() ([]Type, error) {
	params, _, err := ParseMethodDescriptor(m.Descriptor)
	return params, err
}

// ReturnType returns the return type encoded in the descriptor.
func (m *MethodDefinition) ReturnType() (Type, error) {
	_, ret, err := ParseMethodDescriptor(m.Descriptor)
	return ret, err
}

// ConstructorDefinition is the low-level identity of a JVM constructor.
// Constructors are always instance initializers named <init> returning void.
type ConstructorDefinition struct {
	OwnerInternalName string
	Descriptor        string
}

func NewConstructorDefinition(ownerInternalName, descriptor string) *ConstructorDefinition {
	return &ConstructorDefinition{OwnerInternalName: ownerInternalName, Descriptor: descriptor}
}

// ParamTypes returns the parameter types encoded in the descriptor.
func (c *ConstructorDefinition) ParamTypes() ([]Type, error) {
	params, _, err := ParseMethodDescriptor(c.Descriptor)
	return params, err
}

// FieldDefinition is the low-level identity of a JVM field.
type FieldDefinition struct {
	OwnerInternalName string
	Name              string
	Descriptor        string
	Static            bool
	Final             bool
}

func NewFieldDefinition(ownerInternalName, name, descriptor string, static, final bool) *FieldDefinition {
	return &FieldDefinition{
		OwnerInternalName: ownerInternalName,
		Name:              name,
		Descriptor:        descriptor,
		Static:            static,
		Final:             final,
	}
}

// Type returns the field's type decoded from its descriptor.
func (f *FieldDefinition) Type() (Type, error) {
	return TypeFromDescriptor(f.Descriptor)
}
