// Package paths resolves the three roots ricer works between: the
// repository holding the configuration units, the user's home directory,
// and the user's XDG config home.
//
// The repository root is determined, in order, from:
//   - an explicit root (the --root flag)
//   - the RICER_ROOT environment variable
//   - the enclosing git repository (git rev-parse --show-toplevel)
//   - the current working directory, flagged as a fallback
package paths
