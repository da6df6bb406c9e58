// Package testutil holds helpers shared by ricer's tests: real-filesystem
// fixtures under t.TempDir, command executors that record instead of
// spawning processes, and a printer that writes to a buffer.
package testutil
