package main

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/cmd"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/update"
)

func editOverrideMain(command *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) != 4 {
		return errors.New("expected a scene file, a PrefabInstance, a property path, and a value")
	}

	// Perform the edit.
	result, err := update.EditPrefabOverride(
		arguments[0], arguments[1], arguments[2], arguments[3],
		editOverrideConfiguration.objectReference,
		editOverrideConfiguration.target,
		logger,
	)
	if err != nil {
		return errors.Wrap(err, "unable to edit prefab override")
	}

	// Report the result.
	fmt.Println("Override", arguments[2], string(result.Action), "on PrefabInstance", result.PrefabInstanceID)

	// Success.
	return nil
}

var editOverrideCommand = &cobra.Command{
	Use:   "edit-override <file> <prefab-instance> <property-path> <value>",
	Short: "Add or update a prefab instance override",
	Run:   cmd.Mainify(editOverrideMain),
}

var editOverrideConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
	// objectReference is the serialized object reference for the override.
	objectReference string
	// target is the serialized target reference for fresh entries.
	target string
}

func init() {
	// Grab a handle for the command line flags.
	flags := editOverrideCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&editOverrideConfiguration.help, "help", "h", false, "Show help information")

	// Wire up edit flags.
	flags.StringVar(&editOverrideConfiguration.objectReference, "object-reference", "", "Object reference ({fileID: N}) carried by the override")
	flags.StringVar(&editOverrideConfiguration.target, "target", "", "Target reference ({fileID: N, guid: …, type: 3}) for fresh entries")
}
