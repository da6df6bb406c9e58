package style

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// Printer writes the user-facing progress lines of a run: echoed
// commands, filesystem actions and group headings
type Printer struct {
	out    io.Writer
	color  bool
	styles Styles
}

// NewPrinter creates a printer writing to out, colored only when color is set
func NewPrinter(out io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(out)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{
		out:    out,
		color:  color,
		styles: NewStyles(r),
	}
}

// NewConsolePrinter creates a printer on stdout with color auto-detected
func NewConsolePrinter() *Printer {
	return NewPrinter(os.Stdout, DetectColor(os.Stdout))
}

// DetectColor decides whether output to f should be colored
func DetectColor(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return termenv.NewOutput(f).Profile != termenv.Ascii
}

// Command echoes a command line
func (p *Printer) Command(args []string) {
	p.line(p.styles.Command, strings.Join(args, " "))
}

// Action prints a filesystem action
func (p *Printer) Action(format string, args ...interface{}) {
	p.line(p.styles.Action, fmt.Sprintf(format, args...))
}

// Heading prints a group heading
func (p *Printer) Heading(format string, args ...interface{}) {
	p.line(p.styles.Heading, fmt.Sprintf(format, args...))
}

// Success prints a success line prefixed with a check mark
func (p *Printer) Success(format string, args ...interface{}) {
	p.line(p.styles.Success, SuccessIcon+" "+fmt.Sprintf(format, args...))
}

// Warning prints a warning line
func (p *Printer) Warning(format string, args ...interface{}) {
	p.line(p.styles.Warning, WarningIcon+" "+fmt.Sprintf(format, args...))
}

// Error prints a failure line
func (p *Printer) Error(format string, args ...interface{}) {
	p.line(p.styles.Error, FailureIcon+" "+fmt.Sprintf(format, args...))
}

// Table renders rows under a header
func (p *Printer) Table(header []string, rows [][]string) error {
	data := make(pterm.TableData, 0, len(rows)+1)
	data = append(data, header)
	data = append(data, rows...)

	table := pterm.DefaultTable.WithHasHeader().WithData(data)
	if !p.color {
		plain := pterm.NewStyle()
		table = table.WithStyle(plain).WithHeaderStyle(plain).WithSeparatorStyle(plain)
	}

	rendered, err := table.Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(p.out, rendered)
	return err
}

func (p *Printer) line(s lipgloss.Style, msg string) {
	fmt.Fprintln(p.out, s.Render(msg))
}
