package typesystem

import (
	"fmt"

	"github.com/turin-lang/turin/internal/jvm"
)

var primitiveNamesByDescriptor = map[string]string{
	"Z": "boolean",
	"B": "byte",
	"C": "char",
	"S": "short",
	"I": "int",
	"J": "long",
	"F": "float",
	"D": "double",
}

// UsageFromJvmType reconstructs a type usage from a low-level JVM type.
// Externally loaded members carry only descriptors, so this is how their
// signatures surface in the front end.
func UsageFromJvmType(t jvm.Type) (TypeUsage, error) {
	switch {
	case t.IsVoid():
		return &VoidUsage{}, nil
	case t.IsPrimitive():
		name, ok := primitiveNamesByDescriptor[t.Descriptor()]
		if !ok {
			return nil, fmt.Errorf("unknown primitive descriptor %q", t.Descriptor())
		}
		return &PrimitiveUsage{Name: name}, nil
	case t.IsReference():
		return NewReferenceUsage(jvm.InternalToCanonical(t.InternalName())), nil
	case t.IsArray():
		element, err := t.ElementType()
		if err != nil {
			return nil, err
		}
		elementUsage, err := UsageFromJvmType(element)
		if err != nil {
			return nil, err
		}
		return &ArrayUsage{Element: elementUsage}, nil
	default:
		return nil, fmt.Errorf("unsupported descriptor %q", t.Descriptor())
	}
}
