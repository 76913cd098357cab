// Package types defines the result values returned by milton's commands.
// Commands return these structures and the CLI layer renders them.
package types
