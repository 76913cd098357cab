package display

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// TerminalSink writes progress and diagnostics for a human operator.
// Progress bars are only drawn when interactive is set.
type TerminalSink struct {
	out         io.Writer
	interactive bool
	bar         *pterm.ProgressbarPrinter
}

// NewTerminalSink returns a sink writing to out.
func NewTerminalSink(out io.Writer, interactive bool) *TerminalSink {
	return &TerminalSink{out: out, interactive: interactive}
}

func (s *TerminalSink) Start(title string, total int) {
	s.Finish()
	if !s.interactive || total == 0 {
		_, _ = fmt.Fprintln(s.out, titleStyle.Render(title))
		return
	}
	bar, err := pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle(title).
		WithWriter(s.out).
		Start()
	if err != nil {
		_, _ = fmt.Fprintln(s.out, titleStyle.Render(title))
		return
	}
	s.bar = bar
}

func (s *TerminalSink) Advance(label string) {
	if s.bar == nil {
		return
	}
	s.bar.Increment()
}

func (s *TerminalSink) Finish() {
	if s.bar == nil {
		return
	}
	_, _ = s.bar.Stop()
	s.bar = nil
}

func (s *TerminalSink) Notice(kind Kind, message string) {
	switch kind {
	case KindWarning:
		pterm.Warning.WithWriter(s.out).Println(message)
	case KindSkipped, KindNoMatch:
		_, _ = fmt.Fprintln(s.out, mutedStyle.Render("      "+message))
	case KindOverwriting, KindRestoring:
		_, _ = fmt.Fprintln(s.out, "      "+message)
	default:
		_, _ = fmt.Fprintln(s.out, message)
	}
}

func (s *TerminalSink) List(title string, items []string) {
	if title != "" {
		_, _ = fmt.Fprintln(s.out, titleStyle.Render(title))
	}
	for _, item := range items {
		_, _ = fmt.Fprintln(s.out, itemStyle.Render("- "+item))
	}
}

func (s *TerminalSink) Table(header []string, rows [][]string) {
	data := pterm.TableData{header}
	data = append(data, rows...)
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).WithWriter(s.out).Render(); err != nil {
		for _, row := range rows {
			_, _ = fmt.Fprintln(s.out, row)
		}
	}
}
