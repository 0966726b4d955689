package resolvers

import (
	"strings"

	"github.com/turin-lang/turin/internal/ast"
	"github.com/turin-lang/turin/internal/definitions"
	"github.com/turin-lang/turin/internal/jvm"
	"github.com/turin-lang/turin/internal/typesystem"
)

// JdkResolver resolves names against the host platform's standard class
// library. Class shapes are reified on demand from a registry of member
// tables and memoized per qualified name; absence is the answer for any
// name the registry does not know.
type JdkResolver struct {
	parentHolder
	cache map[string]*definitions.ExternalType
}

func NewJdkResolver() *JdkResolver {
	return &JdkResolver{cache: map[string]*definitions.ExternalType{}}
}

func (r *JdkResolver) FindDefinition(reference *ast.PropertyReference) (*ast.PropertyDeclaration, bool) {
	return nil, false
}

func (r *JdkResolver) FindTypeDefinition(name string, context ast.Node) (definitions.TypeDefinition, bool) {
	if memoized, ok := r.cache[name]; ok {
		return memoized, true
	}
	spec, ok := runtimeClasses[name]
	if !ok {
		return nil, false
	}
	def, err := r.reify(name, spec)
	if err != nil {
		return nil, false
	}
	r.cache[name] = def
	return def, true
}

func (r *JdkResolver) reify(name string, spec runtimeClass) (*definitions.ExternalType, error) {
	var def *definitions.ExternalType
	if spec.isInterface {
		def = definitions.NewExternalInterface(name, r)
	} else {
		def = definitions.NewExternalClass(name, spec.super, r)
	}
	owner := jvm.CanonicalToInternal(name)
	for _, iface := range spec.interfaces {
		def.AddInterface(iface)
	}
	for _, descriptor := range spec.constructors {
		if err := def.AddConstructor(jvm.NewConstructorDefinition(owner, descriptor)); err != nil {
			return nil, err
		}
	}
	for _, m := range spec.methods {
		jvmDef := jvm.NewMethodDefinition(owner, m.name, m.descriptor, m.static, spec.isInterface)
		if err := def.AddMethod(jvmDef); err != nil {
			return nil, err
		}
	}
	for _, f := range spec.fields {
		def.AddField(jvm.NewFieldDefinition(owner, f.name, f.descriptor, f.static, f.final))
	}
	return def, nil
}

func (r *JdkResolver) FindTypeUsage(name string, context ast.Node) (typesystem.TypeUsage, bool) {
	def, ok := r.FindTypeDefinition(name, context)
	if !ok {
		return nil, false
	}
	return typesystem.NewReferenceUsage(def.QualifiedName()), true
}

func (r *JdkResolver) FindJvmDefinition(call *ast.FunctionCall) (*jvm.MethodDefinition, bool) {
	return nil, false
}

func (r *JdkResolver) FindSymbol(name string, context ast.Node) (ast.Node, bool) {
	return nil, false
}

func (r *JdkResolver) HasPackage(name string) bool {
	for qualified := range runtimeClasses {
		pkg := jvm.PackageName(qualified)
		if pkg == name || strings.HasPrefix(pkg, name+".") {
			return true
		}
	}
	return false
}

type runtimeMethod struct {
	name       string
	descriptor string
	static     bool
}

type runtimeField struct {
	name       string
	descriptor string
	static     bool
	final      bool
}

type runtimeClass struct {
	super        string
	interfaces   []string
	isInterface  bool
	constructors []string
	methods      []runtimeMethod
	fields       []runtimeField
}

const (
	objectParam = "Ljava/lang/Object;"
	stringRef   = "Ljava/lang/String;"
)

// runtimeClasses is the registry of standard library shapes the compiler
// knows about. The tables list the members Turin programs reach for; a
// name outside this registry resolves to nothing, exactly like a class the
// host cannot load.
var runtimeClasses = map[string]runtimeClass{
	"java.lang.Object": {
		constructors: []string{"()V"},
		methods: []runtimeMethod{
			{name: "toString", descriptor: "()" + stringRef},
			{name: "hashCode", descriptor: "()I"},
			{name: "equals", descriptor: "(" + objectParam + ")Z"},
			{name: "getClass", descriptor: "()Ljava/lang/Class;"},
		},
	},
	"java.lang.String": {
		super:      "java.lang.Object",
		interfaces: []string{"java.lang.CharSequence", "java.lang.Comparable"},
		constructors: []string{
			"()V",
			"(" + stringRef + ")V",
		},
		methods: []runtimeMethod{
			{name: "length", descriptor: "()I"},
			{name: "charAt", descriptor: "(I)C"},
			{name: "isEmpty", descriptor: "()Z"},
			{name: "concat", descriptor: "(" + stringRef + ")" + stringRef},
			{name: "substring", descriptor: "(I)" + stringRef},
			{name: "substring", descriptor: "(II)" + stringRef},
			{name: "indexOf", descriptor: "(" + stringRef + ")I"},
			{name: "toUpperCase", descriptor: "()" + stringRef},
			{name: "toLowerCase", descriptor: "()" + stringRef},
			{name: "toString", descriptor: "()" + stringRef},
			{name: "hashCode", descriptor: "()I"},
			{name: "equals", descriptor: "(" + objectParam + ")Z"},
			{name: "valueOf", descriptor: "(I)" + stringRef, static: true},
			{name: "valueOf", descriptor: "(J)" + stringRef, static: true},
			{name: "valueOf", descriptor: "(D)" + stringRef, static: true},
			{name: "valueOf", descriptor: "(Z)" + stringRef, static: true},
			{name: "valueOf", descriptor: "(" + objectParam + ")" + stringRef, static: true},
			{name: "format", descriptor: "(" + stringRef + "[" + objectParam + ")" + stringRef, static: true},
		},
	},
	"java.lang.StringBuilder": {
		super:      "java.lang.Object",
		interfaces: []string{"java.lang.CharSequence"},
		constructors: []string{
			"()V",
			"(" + stringRef + ")V",
			"(I)V",
		},
		methods: []runtimeMethod{
			{name: "append", descriptor: "(" + stringRef + ")Ljava/lang/StringBuilder;"},
			{name: "append", descriptor: "(I)Ljava/lang/StringBuilder;"},
			{name: "append", descriptor: "(J)Ljava/lang/StringBuilder;"},
			{name: "append", descriptor: "(D)Ljava/lang/StringBuilder;"},
			{name: "append", descriptor: "(Z)Ljava/lang/StringBuilder;"},
			{name: "append", descriptor: "(" + objectParam + ")Ljava/lang/StringBuilder;"},
			{name: "toString", descriptor: "()" + stringRef},
			{name: "length", descriptor: "()I"},
		},
	},
	"java.lang.Integer": {
		super:      "java.lang.Number",
		interfaces: []string{"java.lang.Comparable"},
		constructors: []string{
			"(I)V",
		},
		methods: []runtimeMethod{
			{name: "intValue", descriptor: "()I"},
			{name: "toString", descriptor: "()" + stringRef},
			{name: "parseInt", descriptor: "(" + stringRef + ")I", static: true},
			{name: "valueOf", descriptor: "(I)Ljava/lang/Integer;", static: true},
			{name: "valueOf", descriptor: "(" + stringRef + ")Ljava/lang/Integer;", static: true},
		},
		fields: []runtimeField{
			{name: "MAX_VALUE", descriptor: "I", static: true, final: true},
			{name: "MIN_VALUE", descriptor: "I", static: true, final: true},
		},
	},
	"java.lang.Long": {
		super:      "java.lang.Number",
		interfaces: []string{"java.lang.Comparable"},
		constructors: []string{
			"(J)V",
		},
		methods: []runtimeMethod{
			{name: "longValue", descriptor: "()J"},
			{name: "parseLong", descriptor: "(" + stringRef + ")J", static: true},
			{name: "valueOf", descriptor: "(J)Ljava/lang/Long;", static: true},
		},
	},
	"java.lang.Double": {
		super:      "java.lang.Number",
		interfaces: []string{"java.lang.Comparable"},
		constructors: []string{
			"(D)V",
		},
		methods: []runtimeMethod{
			{name: "doubleValue", descriptor: "()D"},
			{name: "parseDouble", descriptor: "(" + stringRef + ")D", static: true},
			{name: "valueOf", descriptor: "(D)Ljava/lang/Double;", static: true},
		},
	},
	"java.lang.Boolean": {
		super:      "java.lang.Object",
		interfaces: []string{"java.lang.Comparable"},
		constructors: []string{
			"(Z)V",
		},
		methods: []runtimeMethod{
			{name: "booleanValue", descriptor: "()Z"},
			{name: "parseBoolean", descriptor: "(" + stringRef + ")Z", static: true},
			{name: "valueOf", descriptor: "(Z)Ljava/lang/Boolean;", static: true},
		},
		fields: []runtimeField{
			{name: "TRUE", descriptor: "Ljava/lang/Boolean;", static: true, final: true},
			{name: "FALSE", descriptor: "Ljava/lang/Boolean;", static: true, final: true},
		},
	},
	"java.lang.Number": {
		super:        "java.lang.Object",
		constructors: []string{"()V"},
		methods: []runtimeMethod{
			{name: "intValue", descriptor: "()I"},
			{name: "longValue", descriptor: "()J"},
			{name: "doubleValue", descriptor: "()D"},
		},
	},
	"java.lang.Math": {
		super: "java.lang.Object",
		methods: []runtimeMethod{
			{name: "abs", descriptor: "(I)I", static: true},
			{name: "abs", descriptor: "(D)D", static: true},
			{name: "max", descriptor: "(II)I", static: true},
			{name: "min", descriptor: "(II)I", static: true},
			{name: "sqrt", descriptor: "(D)D", static: true},
			{name: "pow", descriptor: "(DD)D", static: true},
		},
		fields: []runtimeField{
			{name: "PI", descriptor: "D", static: true, final: true},
		},
	},
	"java.lang.System": {
		super: "java.lang.Object",
		methods: []runtimeMethod{
			{name: "currentTimeMillis", descriptor: "()J", static: true},
			{name: "exit", descriptor: "(I)V", static: true},
			{name: "getProperty", descriptor: "(" + stringRef + ")" + stringRef, static: true},
		},
		fields: []runtimeField{
			{name: "out", descriptor: "Ljava/io/PrintStream;", static: true, final: true},
			{name: "err", descriptor: "Ljava/io/PrintStream;", static: true, final: true},
		},
	},
	"java.io.PrintStream": {
		super: "java.lang.Object",
		methods: []runtimeMethod{
			{name: "println", descriptor: "(" + stringRef + ")V"},
			{name: "println", descriptor: "(I)V"},
			{name: "println", descriptor: "(J)V"},
			{name: "println", descriptor: "(D)V"},
			{name: "println", descriptor: "(Z)V"},
			{name: "println", descriptor: "(" + objectParam + ")V"},
			{name: "println", descriptor: "()V"},
			{name: "print", descriptor: "(" + stringRef + ")V"},
		},
	},
	"java.lang.CharSequence": {
		isInterface: true,
		methods: []runtimeMethod{
			{name: "length", descriptor: "()I"},
			{name: "charAt", descriptor: "(I)C"},
			{name: "toString", descriptor: "()" + stringRef},
		},
	},
	"java.lang.Comparable": {
		isInterface: true,
		methods: []runtimeMethod{
			{name: "compareTo", descriptor: "(" + objectParam + ")I"},
		},
	},
	"java.lang.Runnable": {
		isInterface: true,
		methods: []runtimeMethod{
			{name: "run", descriptor: "()V"},
		},
	},
	"java.lang.Exception": {
		super: "java.lang.Throwable",
		constructors: []string{
			"()V",
			"(" + stringRef + ")V",
		},
		methods: []runtimeMethod{
			{name: "getMessage", descriptor: "()" + stringRef},
		},
	},
	"java.lang.RuntimeException": {
		super: "java.lang.Exception",
		constructors: []string{
			"()V",
			"(" + stringRef + ")V",
		},
	},
	"java.lang.Throwable": {
		super: "java.lang.Object",
		constructors: []string{
			"()V",
			"(" + stringRef + ")V",
		},
		methods: []runtimeMethod{
			{name: "getMessage", descriptor: "()" + stringRef},
			{name: "printStackTrace", descriptor: "()V"},
		},
	},
	"java.util.Map": {
		isInterface: true,
		methods: []runtimeMethod{
			{name: "get", descriptor: "(" + objectParam + ")" + objectParam},
			{name: "put", descriptor: "(" + objectParam + objectParam + ")" + objectParam},
			{name: "containsKey", descriptor: "(" + objectParam + ")Z"},
			{name: "size", descriptor: "()I"},
			{name: "isEmpty", descriptor: "()Z"},
		},
	},
	"java.util.HashMap": {
		super:      "java.lang.Object",
		interfaces: []string{"java.util.Map"},
		constructors: []string{
			"()V",
			"(I)V",
		},
		methods: []runtimeMethod{
			{name: "get", descriptor: "(" + objectParam + ")" + objectParam},
			{name: "put", descriptor: "(" + objectParam + objectParam + ")" + objectParam},
			{name: "containsKey", descriptor: "(" + objectParam + ")Z"},
			{name: "size", descriptor: "()I"},
		},
	},
	"java.util.List": {
		isInterface: true,
		interfaces:  []string{"java.util.Collection"},
		methods: []runtimeMethod{
			{name: "get", descriptor: "(I)" + objectParam},
			{name: "add", descriptor: "(" + objectParam + ")Z"},
			{name: "size", descriptor: "()I"},
			{name: "isEmpty", descriptor: "()Z"},
		},
	},
	"java.util.ArrayList": {
		super:      "java.lang.Object",
		interfaces: []string{"java.util.List"},
		constructors: []string{
			"()V",
			"(I)V",
		},
		methods: []runtimeMethod{
			{name: "get", descriptor: "(I)" + objectParam},
			{name: "add", descriptor: "(" + objectParam + ")Z"},
			{name: "size", descriptor: "()I"},
		},
	},
	"java.util.Collection": {
		isInterface: true,
		methods: []runtimeMethod{
			{name: "size", descriptor: "()I"},
			{name: "isEmpty", descriptor: "()Z"},
		},
	},
	"java.util.Optional": {
		super: "java.lang.Object",
		methods: []runtimeMethod{
			{name: "isPresent", descriptor: "()Z"},
			{name: "get", descriptor: "()" + objectParam},
			{name: "empty", descriptor: "()Ljava/util/Optional;", static: true},
			{name: "of", descriptor: "(" + objectParam + ")Ljava/util/Optional;", static: true},
		},
	},
}
