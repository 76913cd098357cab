// Package migrate copies or moves experiment files between two directory
// trees while renaming them through a pseudonym mapping.
//
// For each pair of the mapping, files matching a shell pattern in
// <source>/<prefix><original> land in <target>/<prefix><replacement>, with
// every literal occurrence of the original identifier in the file name
// replaced by the replacement. The rename is a plain substring replacement:
// a file name that happens to contain the identifier for another reason is
// rewritten as well.
//
// Existing destinations are skipped unless overwriting is requested. A
// source directory with no matching files is reported and skipped. There is
// no rollback: an error stops the migration and leaves the pairs done so far
// in place, and a rerun with overwriting enabled completes it.
package migrate
