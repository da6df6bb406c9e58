// Package packages installs and removes the package groups of a rice.
//
// Two handlers exist. Pacman installs a whole batch with one privileged
// pacman invocation. AUR builds each package on its own: clone the
// package repository into a fresh temporary directory, run makepkg there,
// then drop the directory. Uninstalling goes through pacman for both.
//
// The Orchestrator walks the configured groups in order, printing a
// numbered heading per group, and collects a Report per handler call so
// the caller can tell which packages failed.
package packages
