package diagnostics

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// Renderer prints collected diagnostics to the terminal. Colors are dropped
// when stderr is not a terminal or when disabled explicitly.
type Renderer struct {
	Verbose bool
}

func NewRenderer(noColor bool) *Renderer {
	if noColor || !isatty.IsTerminal(os.Stderr.Fd()) {
		pterm.DisableColor()
	}
	return &Renderer{}
}

// RenderErrors prints every semantic error in recording order and a final
// count line.
func (r *Renderer) RenderErrors(errors []SemanticError) {
	for _, err := range errors {
		pterm.Error.Println(err.Error())
	}
	if len(errors) > 0 {
		pterm.Error.Println(fmt.Sprintf("%d error(s) found", len(errors)))
	}
}

// RenderSuccess prints a completion message.
func (r *Renderer) RenderSuccess(message string) {
	pterm.Success.Println(message)
}

// RenderInfo prints an informational message when verbose output is on.
func (r *Renderer) RenderInfo(message string) {
	if r.Verbose {
		pterm.Info.Println(message)
	}
}
