package cli

// Command descriptions
const (
	MsgRootShort = "Rice an Arch Linux desktop with sway and friends"
	MsgRootLong  = `ricer beautifies an Arch Linux desktop running the sway window manager.

It links the configuration directories kept in this repository into your
profile and installs the packages they need, from the official
repositories with pacman and from the AUR with makepkg.

Run with --dryrun first to see every command and filesystem change.`

	MsgStatusShort    = "Show the link state of every configuration unit"
	MsgListShort      = "List the configured package groups"
	MsgGenConfigShort = "Print a configuration file"
	MsgGenConfigLong  = `Print the built-in configuration with every value commented out, ready
to be saved as ricer.toml in the repository root and edited.

With --effective, print the configuration ricer would actually use after
merging defaults, config file and environment.`
	MsgVersionShort = "Print version information"
	MsgVersionLong  = "Print detailed version information including commit hash and build date"
)

// Flag descriptions
const (
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Config file to use instead of ricer.toml in the repository root"
	MsgFlagRoot      = "Repository root holding the configuration units"
	MsgFlagDryRun    = "Print commands and file changes without performing them"
	MsgFlagNoRice    = "Don't rice. Use this to simply update packages."
	MsgFlagNoDeps    = "Don't install dependencies. Use this when you've edited a configuration file."
	MsgFlagInstall   = "Link configuration files and install packages (default)"
	MsgFlagUninstall = "Revert configuration files and packages"
	MsgFlagFailFast  = "Stop building AUR packages after the first failure"
	MsgFlagEffective = "Print the merged configuration instead of the commented defaults"
	MsgFlagFormat    = "Output format: toml or yaml"
)

// Output
const (
	MsgVersionFormat   = "ricer version %s\n"
	MsgCommitFormat    = "Commit: %s\n"
	MsgBuiltFormat     = "Built:  %s\n"
	MsgDone            = "%s finished"
	MsgDryRunDone      = "Dry run finished, nothing was changed"
	MsgPackagesFailed  = "Failed packages: %s"
	MsgPackagesSkipped = "Skipped packages: %s"
	MsgNoUnits         = "No units configured."
	MsgNoGroups        = "No package groups configured."

	MsgWarnFallback = "Warning: not in a git repository and RICER_ROOT not set.\nUsing current directory: %s\n\n"
)

// Errors
const (
	MsgErrInitPaths      = "failed to initialize paths: %w"
	MsgErrPackagesFailed = "%d package(s) failed"
)
