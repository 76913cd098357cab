// Package confirmations provides the yes/no oracle workflows ask before
// touching the filesystem.
package confirmations

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// MsgNotUnderstood is printed when an answer is neither yes, no nor empty.
const MsgNotUnderstood = "I didn't understand you. Please specify '(y)es' or '(n)o'."

// Confirmer answers yes/no questions. defaultYes is the answer used when the
// operator just presses enter.
type Confirmer interface {
	Confirm(question string, defaultYes bool) (bool, error)
}

// ConsoleDialog asks questions on a terminal.
type ConsoleDialog struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsoleDialog creates a dialog reading answers from in and writing
// prompts to out.
func NewConsoleDialog(in io.Reader, out io.Writer) *ConsoleDialog {
	return &ConsoleDialog{in: bufio.NewReader(in), out: out}
}

// Confirm prompts until it gets y, yes, n, no or an empty line (case
// insensitive). End of input counts as no.
func (d *ConsoleDialog) Confirm(question string, defaultYes bool) (bool, error) {
	suffix := "[y/N]"
	if defaultYes {
		suffix = "[Y/n]"
	}

	for {
		if _, err := fmt.Fprintf(d.out, "%s %s ", question, suffix); err != nil {
			return false, err
		}

		line, err := d.in.ReadString('\n')
		if err != nil && err != io.EOF {
			return false, fmt.Errorf("failed to read user input: %w", err)
		}
		eof := err == io.EOF

		response := strings.ToLower(strings.TrimSpace(line))
		switch {
		case response == "" && eof:
			_, _ = fmt.Fprintln(d.out)
			return false, nil
		case response == "":
			return defaultYes, nil
		case response == "y" || response == "yes":
			return true, nil
		case response == "n" || response == "no":
			return false, nil
		}

		if _, err := fmt.Fprintln(d.out, MsgNotUnderstood); err != nil {
			return false, err
		}
		if eof {
			return false, nil
		}
	}
}

// AssumeYes approves every question without asking.
type AssumeYes struct{}

// Confirm always returns true.
func (AssumeYes) Confirm(string, bool) (bool, error) {
	return true, nil
}
