package main

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/cmd"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/update"
)

func removeOverrideMain(command *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) != 3 {
		return errors.New("expected a scene file, a PrefabInstance, and a property path")
	}

	// Perform the removal.
	result, err := update.RemovePrefabOverride(arguments[0], arguments[1], arguments[2], removeOverrideConfiguration.target, logger)
	if err != nil {
		return errors.Wrap(err, "unable to remove prefab override")
	}

	// Report the result.
	fmt.Println("Removed override", arguments[2], "from PrefabInstance", result.PrefabInstanceID)

	// Success.
	return nil
}

var removeOverrideCommand = &cobra.Command{
	Use:   "remove-override <file> <prefab-instance> <property-path>",
	Short: "Remove a prefab instance override",
	Run:   cmd.Mainify(removeOverrideMain),
}

var removeOverrideConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
	// target narrows the match to a specific target reference.
	target string
}

func init() {
	// Grab a handle for the command line flags.
	flags := removeOverrideCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&removeOverrideConfiguration.help, "help", "h", false, "Show help information")

	// Wire up removal flags.
	flags.StringVar(&removeOverrideConfiguration.target, "target", "", "Match only overrides with this target reference")
}
