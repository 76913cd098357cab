package milton

import (
	"github.com/spf13/pflag"
)

// configFlags maps command-line flags to the configuration keys they
// override.
var configFlags = map[string]string{
	"target": "target",
	"mask":   "restore.mask",
}

// configOverrides collects the configuration keys set through flags.
// Flags left at their default do not override anything.
func configOverrides(flags *pflag.FlagSet) map[string]interface{} {
	overrides := make(map[string]interface{})
	flags.Visit(func(f *pflag.Flag) {
		if key, ok := configFlags[f.Name]; ok {
			overrides[key] = f.Value.String()
		}
	})
	return overrides
}
