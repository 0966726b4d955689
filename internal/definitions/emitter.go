package definitions

import (
	"sort"

	"github.com/turin-lang/turin/internal/jvm"
)

// ClassOutput is the flattened description of a source type handed to the
// class file emitter: resolved names, field slots, the constructor and the
// method table, plus which Object methods still need synthesizing.
type ClassOutput struct {
	InternalName           string
	SuperclassInternalName string

	Fields       []*jvm.FieldDefinition
	Constructor  *InternalConstructorDefinition
	Methods      []*InternalMethodDefinition
	NeedToString bool
	NeedHashCode bool
	NeedEquals   bool
}

// BuildClassOutput resolves a fully analyzed source type into its emitter
// handoff. It forces full initialization, so any latent synthesis error
// surfaces here.
func BuildClassOutput(t *SourceType) (*ClassOutput, error) {
	constructor, err := t.OnlyConstructor()
	if err != nil {
		return nil, err
	}
	if err := t.ensureFullyInitialized(); err != nil {
		return nil, err
	}

	superclass, err := t.Superclass()
	if err != nil {
		return nil, err
	}
	superclassInternalName := jvm.CanonicalToInternal(ObjectQualifiedName)
	if superclass != nil {
		superclassInternalName = superclass.InternalName()
	}

	out := &ClassOutput{
		InternalName:           t.InternalName(),
		SuperclassInternalName: superclassInternalName,
		Constructor:            constructor,
		NeedToString:           !t.DefinesToString(),
		NeedHashCode:           !t.DefinesHashCode(),
		NeedEquals:             !t.DefinesEquals(),
	}

	for _, property := range t.DirectProperties() {
		out.Fields = append(out.Fields, jvm.NewFieldDefinition(
			t.InternalName(),
			property.Name,
			property.Type.JvmType().Descriptor(),
			false,
			false,
		))
	}

	methods, err := t.Methods()
	if err != nil {
		return nil, err
	}
	out.Methods = methods
	return out, nil
}

func sortedMethods(byName map[string]*InternalMethodDefinition) []*InternalMethodDefinition {
	methods := make([]*InternalMethodDefinition, 0, len(byName))
	for _, m := range byName {
		methods = append(methods, m)
	}
	sort.Slice(methods, func(i, j int) bool { return methods[i].Name < methods[j].Name })
	return methods
}
