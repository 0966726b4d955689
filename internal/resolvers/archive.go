package resolvers

import (
	"archive/zip"
	"io"
	"path"
	"strings"

	"github.com/pkg/errors"

	"github.com/turin-lang/turin/internal/ast"
	"github.com/turin-lang/turin/internal/classfile"
	"github.com/turin-lang/turin/internal/definitions"
	"github.com/turin-lang/turin/internal/jvm"
	"github.com/turin-lang/turin/internal/typesystem"
)

// MalformedArchiveError indicates an archive container could not be opened
// or one of its class entries could not be decoded.
type MalformedArchiveError struct {
	Path  string
	Cause error
}

func (e *MalformedArchiveError) Error() string {
	return "malformed archive " + e.Path + ": " + e.Cause.Error()
}

func (e *MalformedArchiveError) Unwrap() error { return e.Cause }

// ArchiveResolver resolves names against one archive of precompiled
// classes. The archive's entry index is read once at open time; class
// bodies are decoded lazily per lookup and memoized.
type ArchiveResolver struct {
	parentHolder
	path    string
	archive *zip.ReadCloser

	// entries maps class resource paths (com/acme/Foo.class) to their
	// archive entries.
	entries  map[string]*zip.File
	packages map[string]bool
	cache    map[string]*definitions.ExternalType
}

// OpenArchiveResolver opens an archive container and indexes its class
// entries.
func OpenArchiveResolver(archivePath string) (*ArchiveResolver, error) {
	archive, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, &MalformedArchiveError{Path: archivePath, Cause: errors.Wrap(err, "opening container")}
	}
	r := &ArchiveResolver{
		path:     archivePath,
		archive:  archive,
		entries:  map[string]*zip.File{},
		packages: map[string]bool{},
		cache:    map[string]*definitions.ExternalType{},
	}
	for _, file := range archive.File {
		if !strings.HasSuffix(file.Name, ".class") {
			continue
		}
		r.entries[file.Name] = file
		for dir := path.Dir(file.Name); dir != "." && dir != "/"; dir = path.Dir(dir) {
			r.packages[jvm.InternalToCanonical(dir)] = true
		}
	}
	return r, nil
}

// Close releases the underlying container.
func (r *ArchiveResolver) Close() error { return r.archive.Close() }

// Path returns the archive path this resolver was opened over.
func (r *ArchiveResolver) Path() string { return r.path }

func (r *ArchiveResolver) FindDefinition(reference *ast.PropertyReference) (*ast.PropertyDeclaration, bool) {
	return nil, false
}

func (r *ArchiveResolver) FindTypeDefinition(name string, context ast.Node) (definitions.TypeDefinition, bool) {
	if memoized, ok := r.cache[name]; ok {
		return memoized, true
	}
	entry, ok := r.entries[jvm.CanonicalToInternal(name)+".class"]
	if !ok {
		return nil, false
	}
	def, err := r.load(entry)
	if err != nil {
		// A present but undecodable entry is a malformed archive, not
		// absence. The find contract has no error channel, so it reads
		// as absent here; LoadClass reports the decode failure.
		return nil, false
	}
	r.cache[name] = def
	return def, true
}

// LoadClass decodes one class entry eagerly, surfacing decode failures as
// MalformedArchiveError and a missing entry as UnresolvedTypeError.
func (r *ArchiveResolver) LoadClass(qualifiedName string) (*definitions.ExternalType, error) {
	if memoized, ok := r.cache[qualifiedName]; ok {
		return memoized, nil
	}
	entry, ok := r.entries[jvm.CanonicalToInternal(qualifiedName)+".class"]
	if !ok {
		return nil, typesystem.NewUnresolvedTypeError(qualifiedName)
	}
	def, err := r.load(entry)
	if err != nil {
		return nil, err
	}
	r.cache[qualifiedName] = def
	return def, nil
}

func (r *ArchiveResolver) load(entry *zip.File) (*definitions.ExternalType, error) {
	rc, err := entry.Open()
	if err != nil {
		return nil, &MalformedArchiveError{Path: r.path, Cause: errors.Wrapf(err, "opening entry %s", entry.Name)}
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, &MalformedArchiveError{Path: r.path, Cause: errors.Wrapf(err, "reading entry %s", entry.Name)}
	}
	parsed, err := classfile.Parse(data)
	if err != nil {
		return nil, &MalformedArchiveError{Path: r.path, Cause: errors.Wrapf(err, "decoding entry %s", entry.Name)}
	}
	return r.build(parsed)
}

func (r *ArchiveResolver) build(parsed *classfile.ClassFile) (*definitions.ExternalType, error) {
	qualified := jvm.InternalToCanonical(parsed.ThisClassInternalName)
	var def *definitions.ExternalType
	if parsed.IsInterface() {
		def = definitions.NewExternalInterface(qualified, r)
	} else {
		super := ""
		if parsed.SuperClassInternalName != "" {
			super = jvm.InternalToCanonical(parsed.SuperClassInternalName)
		}
		def = definitions.NewExternalClass(qualified, super, r)
	}
	for _, iface := range parsed.InterfaceInternalNames {
		def.AddInterface(jvm.InternalToCanonical(iface))
	}
	for _, method := range parsed.Methods {
		switch method.Name {
		case "<clinit>":
			continue
		case "<init>":
			ctor := jvm.NewConstructorDefinition(parsed.ThisClassInternalName, method.Descriptor)
			if err := def.AddConstructor(ctor); err != nil {
				return nil, &MalformedArchiveError{Path: r.path, Cause: err}
			}
		default:
			jvmDef := jvm.NewMethodDefinition(
				parsed.ThisClassInternalName,
				method.Name,
				method.Descriptor,
				method.IsStatic(),
				parsed.IsInterface(),
			)
			if err := def.AddMethod(jvmDef); err != nil {
				return nil, &MalformedArchiveError{Path: r.path, Cause: err}
			}
		}
	}
	for _, field := range parsed.Fields {
		def.AddField(jvm.NewFieldDefinition(
			parsed.ThisClassInternalName,
			field.Name,
			field.Descriptor,
			field.IsStatic(),
			field.IsFinal(),
		))
	}
	return def, nil
}

func (r *ArchiveResolver) FindTypeUsage(name string, context ast.Node) (typesystem.TypeUsage, bool) {
	def, ok := r.FindTypeDefinition(name, context)
	if !ok {
		return nil, false
	}
	return typesystem.NewReferenceUsage(def.QualifiedName()), true
}

func (r *ArchiveResolver) FindJvmDefinition(call *ast.FunctionCall) (*jvm.MethodDefinition, bool) {
	return nil, false
}

func (r *ArchiveResolver) FindSymbol(name string, context ast.Node) (ast.Node, bool) {
	return nil, false
}

func (r *ArchiveResolver) HasPackage(name string) bool {
	return r.packages[name]
}
