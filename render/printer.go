package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes formatted results to w. The first write error is kept and
// returned by every later call, so callers may check once at the end.
type Printer struct {
	w   io.Writer
	err error

	heading func(string) string
	accent  func(string) string
	muted   func(string) string
	warn    func(string) string
}

// New returns a Printer for w. color enables terminal styling.
func New(w io.Writer, color bool) *Printer {
	p := &Printer{w: w}
	plain := func(s string) string { return s }
	p.heading, p.accent, p.muted, p.warn = plain, plain, plain, plain
	if color {
		p.heading = styled(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")))
		p.accent = styled(lipgloss.NewStyle().Foreground(lipgloss.Color("42")))
		p.muted = styled(lipgloss.NewStyle().Foreground(lipgloss.Color("241")))
		p.warn = styled(lipgloss.NewStyle().Foreground(lipgloss.Color("214")))
	}

	return p
}

// styled adapts a style's variadic Render to a single-string func.
func styled(st lipgloss.Style) func(string) string {
	return func(s string) string { return st.Render(s) }
}

// Err returns the first write error, if any.
func (p *Printer) Err() error { return p.err }

// Message writes one line of free text.
func (p *Printer) Message(format string, args ...interface{}) error {
	p.printf(format+"\n", args...)

	return p.err
}

// Warning writes one highlighted line.
func (p *Printer) Warning(format string, args ...interface{}) error {
	p.printf("%s\n", p.warn(fmt.Sprintf(format, args...)))

	return p.err
}

func (p *Printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) title(s string) {
	p.printf("%s\n", p.heading(s))
}

// table writes rows aligned in columns; the first row is the header.
func (p *Printer) table(rows [][]string) {
	if p.err != nil || len(rows) == 0 {
		return
	}
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	for i, r := range rows {
		line := strings.Join(r, "\t")
		if i == 0 {
			line = strings.ToUpper(line)
		}
		if _, err := fmt.Fprintln(tw, line); err != nil {
			p.err = err

			return
		}
	}
	p.err = tw.Flush()
}

func joinOrNone(items []string, sep string) string {
	if len(items) == 0 {
		return "(none)"
	}

	return strings.Join(items, sep)
}
