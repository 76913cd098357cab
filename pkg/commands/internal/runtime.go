// Package internal holds collaborators shared by milton's commands.
package internal

import (
	"time"

	"github.com/arthur-debert/milton/pkg/filesystem"
	"github.com/arthur-debert/milton/pkg/ui/confirmations"
	"github.com/arthur-debert/milton/pkg/ui/display"
	"github.com/spf13/afero"
)

// Runtime bundles the side-effecting collaborators of a command. Zero
// fields are filled by Defaults.
type Runtime struct {
	FS        afero.Fs
	Confirmer confirmations.Confirmer
	Sink      display.Sink
	Now       func() time.Time
}

// Defaults returns r with unset collaborators replaced by the OS filesystem,
// a yes-to-everything confirmer, a discarding sink and the wall clock.
func (r Runtime) Defaults() Runtime {
	if r.FS == nil {
		r.FS = filesystem.NewOS()
	}
	if r.Confirmer == nil {
		r.Confirmer = confirmations.AssumeYes{}
	}
	if r.Sink == nil {
		r.Sink = display.Discard{}
	}
	if r.Now == nil {
		r.Now = time.Now
	}
	return r
}
