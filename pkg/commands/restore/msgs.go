package restore

const (
	MsgFound         = "Found %d obfuscated folders in '%s'."
	MsgWillRestore   = "All files in these folders matching %s will be restored to their original in %s:"
	MsgOverwrite     = "Existing files *WILL BE OVERWRITTEN* (call without --overwrite to prevent overwrites)."
	MsgNoOverwrite   = "Existing files will *NOT* be overwritten (call with --overwrite to force overwrites)."
	MsgContinue      = "Do you want to continue?"
	MsgConfirmDelete = "Do you really want to delete the folder %s?"
)
