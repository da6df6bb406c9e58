// Package runner runs external commands on behalf of ricer.
//
// Every command is echoed before it runs so an operator can follow along,
// and is skipped entirely in dry-run mode. Privileged commands first drop
// any cached credentials (sudo -k by default) and then run behind the
// elevation prefix.
//
// A Runner never fails a run by itself: each invocation yields a Result
// carrying the exit code and error, and callers decide whether a failure
// matters.
package runner
