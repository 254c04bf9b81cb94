package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Printer writes operator-facing output.
type Printer struct {
	out    io.Writer
	styles Styles
	color  bool
}

// New creates a printer writing to out. Colors are used only when out is a
// terminal and noColor is false.
func New(out io.Writer, noColor bool) *Printer {
	color := !noColor && IsTerminal(out)

	r := lipgloss.NewRenderer(out)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{out: out, styles: NewStyles(r), color: color}
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Color reports whether the printer emits colors.
func (p *Printer) Color() bool {
	return p.color
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Banner prints a bold one-line heading.
func (p *Printer) Banner(text string) {
	fmt.Fprintln(p.out, p.styles.Banner.Render(text))
}

// SectionTitle prints a boxed "<emoji>  <TITLE>" heading.
func (p *Printer) SectionTitle(emoji, title string) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.styles.Section.Render(emoji+"  "+strings.ToUpper(title)))
}

// Panel prints body in a bordered box with a title line and an optional
// subtitle line.
func (p *Printer) Panel(title, subtitle, body string) {
	var b strings.Builder
	b.WriteString(p.styles.Title.Render(title))
	if subtitle != "" {
		b.WriteString("\n")
		b.WriteString(p.styles.Subtitle.Render(subtitle))
	}
	b.WriteString("\n\n")
	b.WriteString(strings.TrimRight(body, "\n"))

	fmt.Fprintln(p.out, p.styles.Panel.Render(b.String()))
}

// Preview prints body between "--- <label> ---" and "--- End preview ---".
func (p *Printer) Preview(label, body string) {
	fmt.Fprintf(p.out, "\n--- %s ---\n\n%s\n\n--- End preview ---\n\n", label, strings.TrimRight(body, "\n"))
}

// Repo prints a repository heading.
func (p *Printer) Repo(emoji, text, repo string) {
	fmt.Fprintf(p.out, "\n%s %s %s\n", emoji, text, p.styles.Repo.Render(repo))
}

// Success prints a success line.
func (p *Printer) Success(format string, args ...any) {
	p.line(p.styles.Success, "✅", format, args...)
}

// Warn prints a warning line.
func (p *Printer) Warn(format string, args ...any) {
	p.line(p.styles.Warning, "⚠️ ", format, args...)
}

// Error prints an error line.
func (p *Printer) Error(format string, args ...any) {
	p.line(p.styles.Error, "❌", format, args...)
}

// Info prints a neutral line prefixed by emoji.
func (p *Printer) Info(emoji, format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", emoji, fmt.Sprintf(format, args...))
}

// Muted prints a dimmed line prefixed by emoji.
func (p *Printer) Muted(emoji, format string, args ...any) {
	p.line(p.styles.Muted, emoji, format, args...)
}

// List prints an indented bullet list.
func (p *Printer) List(items []string) {
	for _, item := range items {
		fmt.Fprintf(p.out, "  • %s\n", item)
	}
}

func (p *Printer) line(style lipgloss.Style, emoji, format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", emoji, style.Render(fmt.Sprintf(format, args...)))
}
