package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/cmd"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/logging"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/uniyaml"
)

// logger is the root logger shared by every command, configured from the
// persistent --log-level flag before any command runs.
var logger *logging.Logger

func rootMain(command *cobra.Command, arguments []string) {
	// Print version information, if requested.
	if rootConfiguration.version {
		command.Println(uniyaml.Version)
		return
	}

	// If no flags were set, then print help information and bail.
	command.Help()
}

var rootCommand = &cobra.Command{
	Use:   "uniyaml",
	Short: "uniyaml performs format-preserving edits on Unity scenes, prefabs, and assets.",
	Run:   rootMain,
	PersistentPreRun: func(command *cobra.Command, arguments []string) {
		level, ok := logging.NameToLevel(rootConfiguration.logLevel)
		if !ok {
			cmd.Warning("unknown log level \"" + rootConfiguration.logLevel + "\"; logging disabled")
		}
		logger = logging.NewLogger(level, os.Stderr)
	},
}

var rootConfiguration struct {
	// help indicates whether or not help information should be shown for
	// the command.
	help bool
	// version indicates whether or not version information should be shown.
	version bool
	// logLevel is the logging level name.
	logLevel string
}

func init() {
	// Grab a handle for the command line flags.
	flags := rootCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&rootConfiguration.help, "help", "h", false, "Show help information")
	flags.BoolVarP(&rootConfiguration.version, "version", "V", false, "Show version information")
	rootCommand.PersistentFlags().StringVar(&rootConfiguration.logLevel, "log-level", "error", "Set the log level (disabled, error, warn, info, debug, trace)")

	// Disable Cobra's command sorting behavior. By default, it sorts commands
	// alphabetically in the help output.
	cobra.EnableCommandSorting = false

	// Register commands. We do this here (rather than in individual init
	// functions) so that we can control the order.
	rootCommand.AddCommand(
		createGameObjectCommand,
		createSceneCommand,
		createPrefabVariantCommand,
		createScriptableObjectCommand,
		createMetaCommand,
		addComponentCommand,
		copyComponentCommand,
		editGameObjectCommand,
		editComponentCommand,
		editTransformCommand,
		editOverrideCommand,
		removeOverrideCommand,
		reparentCommand,
		removeComponentCommand,
		deleteGameObjectCommand,
		deletePrefabInstanceCommand,
		duplicateGameObjectCommand,
		unpackPrefabCommand,
		versionCommand,
	)
}

func main() {
	// Execute the root command.
	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
