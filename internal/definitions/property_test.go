package definitions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/turin-lang/turin/internal/ast"
	"github.com/turin-lang/turin/internal/typesystem"
)

func TestAccessorNames(t *testing.T) {
	tests := []struct {
		property string
		getter   string
		setter   string
	}{
		{"x", "getX", "setX"},
		{"name", "getName", "setName"},
		{"fullName", "getFullName", "setFullName"},
		{"URL", "getURL", "setURL"},
	}
	for _, tt := range tests {
		p := &Property{Name: tt.property}
		assert.Equal(t, tt.getter, p.GetterName())
		assert.Equal(t, tt.setter, p.SetterName())
	}
}

func TestPropertyFromDeclaration(t *testing.T) {
	intT := intUsage(t)
	decl := ast.NewPropertyDeclaration("age", ast.NewTypeUsageNode(intT))
	decl.SetDefaultValue(&ast.IntLiteral{Value: 18})

	p := PropertyFromDeclaration(decl)
	assert.Equal(t, "age", p.Name)
	assert.Equal(t, typesystem.TypeUsage(intT), p.Type)
	assert.False(t, p.HasInitialValue())
	assert.True(t, p.HasDefaultValue())
	assert.Equal(t, "age", p.SymbolName())
	assert.Equal(t, typesystem.TypeUsage(intT), p.SymbolType())
}
