package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// Renderer writes command output to stdout and diagnostics to stderr.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	styles *Styles
	errSty *Styles
}

// NewRenderer creates a renderer.
func NewRenderer(out, errOut io.Writer) *Renderer {
	return &Renderer{
		out:    out,
		errOut: errOut,
		styles: NewStyles(out),
		errSty: NewStyles(errOut),
	}
}

// Writer returns the stdout writer.
func (r *Renderer) Writer() io.Writer { return r.out }

// Styles returns the styles for stdout.
func (r *Renderer) Styles() *Styles { return r.styles }

// Println writes a line to stdout.
func (r *Renderer) Println(s string) {
	_, _ = fmt.Fprintln(r.out, s)
}

// Printf writes formatted text to stdout.
func (r *Renderer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

// JSON writes v to stdout as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Error writes a styled error line to stderr.
func (r *Renderer) Error(err error) {
	_, _ = fmt.Fprintf(r.errOut, "%s %v\n", r.errSty.Error.Render("Error:"), err)
}

// Warning writes a styled warning line to stderr.
func (r *Renderer) Warning(msg string) {
	_, _ = fmt.Fprintf(r.errOut, "%s %s\n", r.errSty.Warning.Render("Warning:"), msg)
}

// Muted writes a dimmed line to stderr.
func (r *Renderer) Muted(msg string) {
	_, _ = fmt.Fprintln(r.errOut, r.errSty.Muted.Render(msg))
}
