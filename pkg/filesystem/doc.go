// Package filesystem provides filesystem implementations for ricer.
//
// Every implementation satisfies types.FS and is backed by afero, so the
// OS filesystem and sandboxed test filesystems share one code path.
package filesystem
