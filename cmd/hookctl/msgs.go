package hookctl

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Inspect and call the hooks linked into this binary"
	MsgRootLong        = `hookctl lists the extension points and named hooks registered by the
packages linked into it, and can invoke them from the command line.`
	MsgListShort       = "List declared points and named hooks"
	MsgDescribeShort   = "Describe the implementations of a hook"
	MsgInvokeShort     = "Invoke a (string) -> string named hook"
	MsgInvokeLong      = `Invoke calls every implementation of a named hook with shape
(string) -> string and prints the results in dispatch order.

With --try the hook must have shape (string) -> (string, error); dispatch
stops at the first implementation that fails.`
	MsgGreetShort      = "Greet someone through the greeting hooks"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flags
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file (default is $XDG_CONFIG_HOME/hooks/config.toml)"
	MsgFlagFormat  = "Output format: table, yaml, json or toml"
	MsgFlagIDs     = "Include implementation IDs"
	MsgFlagTry     = "Use the fallible (string) -> (string, error) shape"

	// Errors
	MsgErrNoCommand = "no command specified"
)
