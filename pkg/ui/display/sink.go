// Package display renders workflow progress and diagnostics.
//
// Workflows report through the Sink interface and never print directly.
// TerminalSink draws progress bars and styled messages for an operator;
// RecordingSink keeps everything in memory for tests.
package display

// Kind classifies a diagnostic.
type Kind string

const (
	// KindInfo is general information
	KindInfo Kind = "info"
	// KindNoMatch reports a directory without files matching the pattern
	KindNoMatch Kind = "no-match"
	// KindSkipped reports an existing destination left untouched
	KindSkipped Kind = "skipped"
	// KindOverwriting reports an existing destination being replaced
	KindOverwriting Kind = "overwriting"
	// KindRestoring reports a file restored to a fresh destination
	KindRestoring Kind = "restoring"
	// KindWarning is a warning for the operator
	KindWarning Kind = "warning"
)

// Sink receives progress and diagnostics from workflows.
type Sink interface {
	// Start begins a progress section of total steps.
	Start(title string, total int)
	// Advance completes one step.
	Advance(label string)
	// Finish ends the current progress section.
	Finish()
	// Notice reports a diagnostic.
	Notice(kind Kind, message string)
	// List shows a titled list of items.
	List(title string, items []string)
	// Table shows rows under a header.
	Table(header []string, rows [][]string)
}

// Discard is a Sink that drops everything.
type Discard struct{}

func (Discard) Start(string, int) {}
func (Discard) Advance(string) {}
func (Discard) Finish() {}
func (Discard) Notice(Kind, string) {}
func (Discard) List(string, []string) {}
func (Discard) Table([]string, [][]string) {}
