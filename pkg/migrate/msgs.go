package migrate

// Diagnostic messages
const (
	MsgNoMatch     = "nothing matching %s"
	MsgSkipping    = "skipping existing %s. Call with --overwrite to force overwrite."
	MsgOverwriting = "overwriting %s."
	MsgRestoring   = "restoring %s."
)
