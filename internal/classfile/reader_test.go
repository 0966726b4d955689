package classfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// image builds a class file byte by byte.
type image struct {
	data []byte
}

func (b *image) u1(v byte)    { b.data = append(b.data, v) }
func (b *image) u2(v uint16)  { b.data = append(b.data, byte(v>>8), byte(v)) }
func (b *image) u4(v uint32)  { b.data = append(b.data, byte(v>>24), byte(v>>16), byte(v>>8), byte(v)) }
func (b *image) str(s string) { b.data = append(b.data, s...) }

func (b *image) utf8(s string) {
	b.u1(tagUtf8)
	b.u2(uint16(len(s)))
	b.str(s)
}

func (b *image) class(nameIndex uint16) {
	b.u1(tagClass)
	b.u2(nameIndex)
}

// greeterClass is com/acme/Greeter extends java/lang/Object implementing
// java/lang/Runnable, with an int field, a constructor and two methods.
func greeterClass() []byte {
	b := &image{}
	b.u4(0xCAFEBABE)
	b.u2(0)  // minor
	b.u2(52) // major

	b.u2(15) // constant pool count (slots 1..14, Long takes two)
	b.utf8("com/acme/Greeter")     // 1
	b.class(1)                     // 2
	b.utf8("java/lang/Object")     // 3
	b.class(3)                     // 4
	b.utf8("<init>")               // 5
	b.utf8("()V")                  // 6
	b.utf8("greet")                // 7
	b.utf8("(Ljava/lang/String;)Ljava/lang/String;") // 8
	b.utf8("count")                // 9
	b.utf8("I")                    // 10
	b.u1(tagLong)                  // 11 and 12
	b.u4(0)
	b.u4(42)
	b.utf8("java/lang/Runnable") // 13
	b.class(13)                  // 14

	b.u2(AccPublic)
	b.u2(2) // this: com/acme/Greeter
	b.u2(4) // super: java/lang/Object
	b.u2(1) // one interface
	b.u2(14)

	b.u2(1) // fields
	b.u2(AccPublic | AccFinal)
	b.u2(9)
	b.u2(10)
	b.u2(0) // no attributes

	b.u2(2) // methods
	b.u2(AccPublic)
	b.u2(5)
	b.u2(6)
	b.u2(0)
	b.u2(AccPublic | AccStatic)
	b.u2(7)
	b.u2(8)
	b.u2(0)

	b.u2(0) // class attributes
	return b.data
}

func TestParseClass(t *testing.T) {
	cf, err := Parse(greeterClass())
	require.NoError(t, err)

	assert.Equal(t, uint16(52), cf.MajorVersion)
	assert.Equal(t, "com/acme/Greeter", cf.ThisClassInternalName)
	assert.Equal(t, "java/lang/Object", cf.SuperClassInternalName)
	assert.Equal(t, []string{"java/lang/Runnable"}, cf.InterfaceInternalNames)
	assert.False(t, cf.IsInterface())

	require.Len(t, cf.Fields, 1)
	assert.Equal(t, "count", cf.Fields[0].Name)
	assert.Equal(t, "I", cf.Fields[0].Descriptor)
	assert.True(t, cf.Fields[0].IsFinal())
	assert.False(t, cf.Fields[0].IsStatic())

	require.Len(t, cf.Methods, 2)
	assert.Equal(t, "<init>", cf.Methods[0].Name)
	assert.Equal(t, "()V", cf.Methods[0].Descriptor)
	assert.Equal(t, "greet", cf.Methods[1].Name)
	assert.True(t, cf.Methods[1].IsStatic())
}

func TestParseInterface(t *testing.T) {
	b := &image{}
	b.u4(0xCAFEBABE)
	b.u2(0)
	b.u2(52)
	b.u2(3)
	b.utf8("com/acme/Named") // 1
	b.class(1)               // 2
	b.u2(AccPublic | AccInterface | AccAbstract)
	b.u2(2)
	b.u2(0) // no superclass
	b.u2(0)
	b.u2(0)
	b.u2(0)
	b.u2(0)

	cf, err := Parse(b.data)
	require.NoError(t, err)
	assert.True(t, cf.IsInterface())
	assert.Equal(t, "com/acme/Named", cf.ThisClassInternalName)
	assert.Empty(t, cf.SuperClassInternalName)
}

func TestParseRejectsBadMagic(t *testing.T) {
	data := greeterClass()
	data[0] = 0xDE
	_, err := Parse(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "magic")
}

func TestParseRejectsTruncatedImage(t *testing.T) {
	data := greeterClass()
	for _, n := range []int{0, 4, 7, 20, len(data) / 2} {
		_, err := Parse(data[:n])
		assert.Error(t, err, "length %d", n)
	}
}
