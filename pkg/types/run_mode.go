package types

// Mode carries the two process-wide switches of a run. It is built once
// from parsed flags and passed by value; nothing mutates it afterwards.
type Mode struct {
	// DryRun logs intended actions without performing them
	DryRun bool
	// Uninstall reverses install operations
	Uninstall bool
}

// Verb returns the action word used in headings and log lines
func (m Mode) Verb() string {
	if m.Uninstall {
		return "uninstall"
	}
	return "install"
}
