package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Numbered, colorized status lines for long-running pipelines"
	MsgVersionShort = "Print version information"
	MsgVersionLong  = "Print detailed version information including commit hash and build date"
	MsgDemoShort    = "Run a demo pipeline that exercises every kind of status line"
	MsgHeaderShort  = "Print a banner line"
	MsgColorsShort  = "Show the escape palette"
	MsgETAShort     = "Estimate the time remaining for a loop"
	MsgConfigShort  = "Inspect the configuration"
	MsgShowShort    = "Print the resolved configuration"
	MsgDefaultShort = "Print the built-in defaults"
	MsgManShort     = "Generate man pages"

	// Output formats
	MsgETAFormat     = "ETA %s (elapsed %s)\n"
	MsgManWritten    = "Man pages written to %s\n"
	MsgVersionFormat = "pipelog version %s\n"

	// Error hints
	MsgHintUsage  = "Run 'pipelog --help' for usage."
	MsgHintConfig = "Run 'pipelog config show' or 'pipelog help config' to check the configuration."
)

// MsgRootLong is the root command description.
const MsgRootLong = `pipelog prints numbered, colorized and animated progress lines while a
pipeline runs. Lines can be nested under a numbered step, grown in place
with carriage-return redraws, and framed by banners.

Configuration is read from $XDG_CONFIG_HOME/pipelog/config.yaml (or
--config) and PIPELOG_* environment variables.`
