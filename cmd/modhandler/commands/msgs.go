package commands

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Your simple Minecraft Mod Manager"
	MsgListShort       = "List all profiles"
	MsgListLong        = "List displays every profile in the profiles directory with its number and mod count."
	MsgApplyShort      = "Copy a profile into the mods directory"
	MsgClearShort      = "Remove everything from the mods directory"
	MsgPathShort       = "Show the resolved directories"
	MsgPathLong        = "Path prints the root, profiles and mods directories as modhandler resolves them, plus where the override, config and log files live."
	MsgGenConfigShort  = "Print the default configuration"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics, or one topic when a name is given."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate the man page"

	// Interactive session
	MsgDone         = "\nDone! Press any key to exit..."
	MsgDoneNoPause  = "\nDone!"
	MsgErrorFormat  = "Error: %s"
	MsgPressAnyKey  = "Press any key to exit..."
	MsgDryRunNotice = "\nDRY RUN MODE - No changes were made"

	// Flag descriptions
	MsgFlagVerbose         = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRoot            = "Directory holding profiles, path.txt and modhandler.toml (default: $MODHANDLER_ROOT or the current directory)"
	MsgFlagNoPause         = "Do not wait for a key press before exiting the interactive session"
	MsgFlagDryRun          = "Preview changes without executing them"
	MsgFlagClear           = "Empty the mods directory before copying"
	MsgFlagKeep            = "Keep existing files in the mods directory (default)"
	MsgFlagContinueOnError = "Copy as much as possible and report every failure at the end"
	MsgFlagFormat          = "Output format: auto, term, text, json or yaml"
	MsgFlagEffective       = "Print the configuration in use instead of the commented defaults"
	MsgFlagWrite           = "Write modhandler.toml into the root directory instead of stdout"
	MsgFlagManDir          = "Directory the man pages are written to"

	// genconfig
	MsgConfigWritten = "Wrote %s\n"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/apply-long.txt
	msgApplyLongRaw string
	MsgApplyLong    = strings.TrimSpace(msgApplyLongRaw)

	//go:embed msgs/apply-example.txt
	msgApplyExampleRaw string
	MsgApplyExample    = strings.TrimRight(msgApplyExampleRaw, "\n")

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")

	//go:embed msgs/clear-long.txt
	msgClearLongRaw string
	MsgClearLong    = strings.TrimSpace(msgClearLongRaw)

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
