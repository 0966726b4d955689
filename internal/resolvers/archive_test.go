package resolvers

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turin-lang/turin/internal/jvm"
	"github.com/turin-lang/turin/internal/typesystem"
)

type classImage struct {
	data []byte
}

func (b *classImage) u1(v byte)   { b.data = append(b.data, v) }
func (b *classImage) u2(v uint16) { b.data = append(b.data, byte(v>>8), byte(v)) }
func (b *classImage) u4(v uint32) {
	b.data = append(b.data, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

func (b *classImage) utf8(s string) {
	b.u1(1)
	b.u2(uint16(len(s)))
	b.data = append(b.data, s...)
}

func (b *classImage) class(nameIndex uint16) {
	b.u1(7)
	b.u2(nameIndex)
}

// greeterClassBytes encodes com/acme/Greeter extends java/lang/Object with
// one constructor and one instance method.
func greeterClassBytes() []byte {
	b := &classImage{}
	b.u4(0xCAFEBABE)
	b.u2(0)
	b.u2(52)

	b.u2(9)
	b.utf8("com/acme/Greeter") // 1
	b.class(1)                 // 2
	b.utf8("java/lang/Object") // 3
	b.class(3)                 // 4
	b.utf8("<init>")           // 5
	b.utf8("()V")              // 6
	b.utf8("greet")            // 7
	b.utf8("(Ljava/lang/String;)Ljava/lang/String;") // 8

	b.u2(0x0001) // public
	b.u2(2)
	b.u2(4)
	b.u2(0) // interfaces
	b.u2(0) // fields

	b.u2(2) // methods
	b.u2(0x0001)
	b.u2(5)
	b.u2(6)
	b.u2(0)
	b.u2(0x0001)
	b.u2(7)
	b.u2(8)
	b.u2(0)

	b.u2(0)
	return b.data
}

func writeArchive(t *testing.T, entries map[string][]byte) string {
	t.Helper()
	archivePath := filepath.Join(t.TempDir(), "deps.jar")
	f, err := os.Create(archivePath)
	require.NoError(t, err)
	w := zip.NewWriter(f)
	for name, data := range entries {
		entry, err := w.Create(name)
		require.NoError(t, err)
		_, err = entry.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())
	return archivePath
}

func TestArchiveResolverFindsClass(t *testing.T) {
	archivePath := writeArchive(t, map[string][]byte{
		"com/acme/Greeter.class": greeterClassBytes(),
		"META-INF/MANIFEST.MF":   []byte("Manifest-Version: 1.0\n"),
	})
	r, err := OpenArchiveResolver(archivePath)
	require.NoError(t, err)
	defer r.Close()

	def, ok := r.FindTypeDefinition("com.acme.Greeter", nil)
	require.True(t, ok)
	assert.Equal(t, "com.acme.Greeter", def.QualifiedName())
	assert.Equal(t, "com/acme/Greeter", def.InternalName())
	assert.True(t, def.IsClass())

	constructors, err := def.Constructors()
	require.NoError(t, err)
	assert.Len(t, constructors, 1)

	greet, err := def.FindMethodByDescriptors("greet", []jvm.Type{jvm.Reference("java/lang/String")}, false)
	require.NoError(t, err)
	require.NotNil(t, greet)
	assert.Equal(t, "(Ljava/lang/String;)Ljava/lang/String;", greet.Descriptor)

	again, ok := r.FindTypeDefinition("com.acme.Greeter", nil)
	require.True(t, ok)
	assert.Same(t, def, again)
}

func TestArchiveResolverPackages(t *testing.T) {
	archivePath := writeArchive(t, map[string][]byte{
		"com/acme/Greeter.class": greeterClassBytes(),
	})
	r, err := OpenArchiveResolver(archivePath)
	require.NoError(t, err)
	defer r.Close()

	assert.True(t, r.HasPackage("com.acme"))
	assert.True(t, r.HasPackage("com"))
	assert.False(t, r.HasPackage("org"))
	assert.False(t, r.HasPackage("com.acme.Greeter"))
}

func TestArchiveResolverAbsence(t *testing.T) {
	archivePath := writeArchive(t, map[string][]byte{
		"com/acme/Greeter.class": greeterClassBytes(),
	})
	r, err := OpenArchiveResolver(archivePath)
	require.NoError(t, err)
	defer r.Close()

	_, ok := r.FindTypeDefinition("com.acme.Missing", nil)
	assert.False(t, ok)

	_, err = r.LoadClass("com.acme.Missing")
	var unresolved *typesystem.UnresolvedTypeError
	require.ErrorAs(t, err, &unresolved)
	assert.Equal(t, "com.acme.Missing", unresolved.Name)
}

func TestArchiveResolverMalformedEntry(t *testing.T) {
	archivePath := writeArchive(t, map[string][]byte{
		"com/acme/Bad.class": []byte("not a class file"),
	})
	r, err := OpenArchiveResolver(archivePath)
	require.NoError(t, err)
	defer r.Close()

	_, ok := r.FindTypeDefinition("com.acme.Bad", nil)
	assert.False(t, ok)

	_, err = r.LoadClass("com.acme.Bad")
	var malformed *MalformedArchiveError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, archivePath, malformed.Path)
}

func TestOpenArchiveResolverRejectsNonArchive(t *testing.T) {
	bogus := filepath.Join(t.TempDir(), "not.jar")
	require.NoError(t, os.WriteFile(bogus, []byte("plain text"), 0o644))

	_, err := OpenArchiveResolver(bogus)
	var malformed *MalformedArchiveError
	require.ErrorAs(t, err, &malformed)
}
