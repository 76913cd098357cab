package obfuscate

const (
	MsgFound         = "Found %d folders matching %v."
	MsgWillObfuscate = "Files in %s and %s for these folders will be obfuscated to %s/."
	MsgContinue      = "Do you want to continue?"
)
