package testutil

import "fmt"

// ScriptedConfirmer answers questions from a fixed script and records them.
type ScriptedConfirmer struct {
	Answers   []bool
	Questions []string
	Defaults  []bool
}

// NewScriptedConfirmer answers with answers in order.
func NewScriptedConfirmer(answers ...bool) *ScriptedConfirmer {
	return &ScriptedConfirmer{Answers: answers}
}

// Confirm returns the next scripted answer. Running out of answers is an error.
func (s *ScriptedConfirmer) Confirm(question string, defaultYes bool) (bool, error) {
	s.Questions = append(s.Questions, question)
	s.Defaults = append(s.Defaults, defaultYes)
	i := len(s.Questions) - 1
	if i >= len(s.Answers) {
		return false, fmt.Errorf("unexpected confirmation %q", question)
	}
	return s.Answers[i], nil
}
