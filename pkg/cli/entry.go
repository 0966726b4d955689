// Package cli is the reusable entry point of the turin compiler driver.
// The textual parser and the bytecode emitter are external collaborators:
// embedders wire them in, the driver owns everything between the two.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"

	"github.com/turin-lang/turin/internal/analyzer"
	"github.com/turin-lang/turin/internal/ast"
	"github.com/turin-lang/turin/internal/config"
	"github.com/turin-lang/turin/internal/definitions"
	"github.com/turin-lang/turin/internal/diagnostics"
	"github.com/turin-lang/turin/internal/pipeline"
	"github.com/turin-lang/turin/internal/resolvers"
)

// Frontend turns a source file into a compilation unit.
type Frontend interface {
	ParseFile(path string) (*ast.CompilationUnit, error)
}

// Emitter consumes the resolved class outputs of a clean compilation.
type Emitter interface {
	Emit(destination string, outputs []*definitions.ClassOutput) error
}

// Options are the command-line options of the driver.
type Options struct {
	Destination string   `short:"d" long:"destination" description:"directory class files are written to"`
	Classpath   []string `short:"c" long:"classpath" description:"archive entry or glob, repeatable; order is shadowing order"`
	Project     string   `short:"p" long:"project" description:"project file" default:"turin.yml"`
	VerifyOnly  bool     `long:"verify-only" description:"stop after semantic validation"`
	Verbose     bool     `short:"v" long:"verbose" description:"verbose output"`
	NoColor     bool     `long:"no-color" description:"disable colored diagnostics"`
}

// Driver runs compilations from command-line arguments.
type Driver struct {
	frontend Frontend
	emitter  Emitter
}

func NewDriver(frontend Frontend, emitter Emitter) *Driver {
	return &Driver{frontend: frontend, emitter: emitter}
}

// Run parses the arguments, compiles the named source files and reports
// diagnostics. The return value is the process exit code.
func (d *Driver) Run(args []string) int {
	options := &Options{}
	files, err := flags.ParseArgs(options, args)
	if err != nil {
		return 2
	}

	project, err := config.LoadProject(options.Project)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	renderer := diagnostics.NewRenderer(options.NoColor || project.NoColor)
	renderer.Verbose = options.Verbose || project.Verbose

	classpath, err := config.ExpandClasspath(append(project.Classpath, options.Classpath...))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "no source files given")
		return 2
	}
	if d.frontend == nil {
		fmt.Fprintln(os.Stderr, "no front end wired into this driver")
		return 2
	}

	units := make([]*ast.CompilationUnit, 0, len(files))
	for _, file := range files {
		unit, err := d.frontend.ParseFile(file)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		units = append(units, unit)
	}

	ctx, archives, err := NewCompilation(units, classpath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	defer closeArchives(archives)
	ctx.Verbose = renderer.Verbose
	renderer.RenderInfo(fmt.Sprintf("compilation %s: %d unit(s), %d archive(s)", ctx.CompilationID, len(units), len(archives)))

	stages := []pipeline.Processor{&analyzer.SemanticAnalyzerProcessor{}}
	if !options.VerifyOnly {
		stages = append(stages, &pipeline.OutputProcessor{})
	}
	ctx = pipeline.New(stages...).Run(ctx)

	if ctx.HasErrors() {
		renderer.RenderErrors(ctx.Errors.Errors())
		return 1
	}
	if options.VerifyOnly {
		renderer.RenderSuccess("verification passed")
		return 0
	}

	destination := options.Destination
	if destination == "" {
		destination = project.Destination
	}
	if destination == "" {
		destination = config.DefaultDestination
	}
	if d.emitter != nil {
		if err := d.emitter.Emit(destination, ctx.Outputs); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}
	renderer.RenderSuccess(fmt.Sprintf("compiled %d class(es) to %s", len(ctx.Outputs), filepath.Clean(destination)))
	return 0
}

// NewCompilation composes the resolver stack for the given units and
// archive paths and returns a fresh pipeline context over it. The
// resolver order realizes shadowing: source units first, then the
// archives in declaration order, the platform registry last.
func NewCompilation(units []*ast.CompilationUnit, classpath []string) (*pipeline.PipelineContext, []*resolvers.ArchiveResolver, error) {
	children := []definitions.SymbolResolver{resolvers.NewInSourceResolver(units...)}
	archives := make([]*resolvers.ArchiveResolver, 0, len(classpath))
	for _, entry := range classpath {
		archive, err := resolvers.OpenArchiveResolver(entry)
		if err != nil {
			closeArchives(archives)
			return nil, nil, err
		}
		archives = append(archives, archive)
		children = append(children, archive)
	}
	children = append(children, resolvers.NewJdkResolver())
	composed := resolvers.NewComposedResolver(children...)
	return pipeline.NewContext(composed, units...), archives, nil
}

func closeArchives(archives []*resolvers.ArchiveResolver) {
	for _, archive := range archives {
		archive.Close()
	}
}
