// Package testutil provides utilities for testing milton components.
//
// Key components:
//   - NewTestFS: in-memory afero filesystem
//   - FailingFS: filesystem wrapper injecting write or stat errors on chosen paths
//   - Volume: declarative builder for dat/res experiment trees
//   - ScriptedConfirmer: confirmation oracle answering from a script
//
// All test data is defined inline; each test builds its own filesystem.
package testutil
