// Package rice links configuration directories from the repository into
// the user's profile.
//
// Linking a unit replaces whatever sits at the destination, be it an old
// link, a directory or a plain file, with a symlink back to the
// repository copy. Uninstalling removes the destination and stops there.
// Each step is printed before it happens and dry-run performs only the
// inspection.
package rice
