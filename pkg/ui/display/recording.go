package display

// Event is one call recorded by RecordingSink.
type Event struct {
	Kind    Kind
	Message string
	Items   []string
}

// RecordingSink stores notices and lists in call order.
type RecordingSink struct {
	Events   []Event
	Sections []string
	Steps    []string
}

// NewRecordingSink returns an empty recorder.
func NewRecordingSink() *RecordingSink {
	return &RecordingSink{}
}

func (r *RecordingSink) Start(title string, total int) {
	r.Sections = append(r.Sections, title)
}

func (r *RecordingSink) Advance(label string) {
	r.Steps = append(r.Steps, label)
}

func (r *RecordingSink) Finish() {}

func (r *RecordingSink) Notice(kind Kind, message string) {
	r.Events = append(r.Events, Event{Kind: kind, Message: message})
}

func (r *RecordingSink) List(title string, items []string) {
	r.Events = append(r.Events, Event{Kind: KindInfo, Message: title, Items: append([]string(nil), items...)})
}

func (r *RecordingSink) Table(header []string, rows [][]string) {
	items := make([]string, 0, len(rows))
	for _, row := range rows {
		if len(row) > 0 {
			items = append(items, row[0])
		}
	}
	r.Events = append(r.Events, Event{Kind: KindInfo, Message: "table", Items: items})
}

// Count returns how many notices of kind were recorded.
func (r *RecordingSink) Count(kind Kind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Messages returns the messages of every notice of kind.
func (r *RecordingSink) Messages(kind Kind) []string {
	var out []string
	for _, e := range r.Events {
		if e.Kind == kind {
			out = append(out, e.Message)
		}
	}
	return out
}
