// Package types defines the core types and interfaces shared across ricer:
// the run Mode, configuration Units, package Groups and the FS abstraction
// every component touches the filesystem through.
package types
