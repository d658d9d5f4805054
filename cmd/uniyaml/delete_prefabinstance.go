package main

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/cmd"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/remove"
)

func deletePrefabInstanceMain(command *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) != 2 {
		return errors.New("expected a scene file and a PrefabInstance")
	}

	// Perform the deletion.
	result, err := remove.DeletePrefabInstance(arguments[0], arguments[1], logger)
	if err != nil {
		return errors.Wrap(err, "unable to delete PrefabInstance")
	}

	// Report the result.
	fmt.Println("Deleted", result.DeletedCount, "blocks")

	// Success.
	return nil
}

var deletePrefabInstanceCommand = &cobra.Command{
	Use:   "delete-prefabinstance <file> <prefab-instance>",
	Short: "Delete a PrefabInstance with its stripped handles and additions",
	Run:   cmd.Mainify(deletePrefabInstanceMain),
}

var deletePrefabInstanceConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := deletePrefabInstanceCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&deletePrefabInstanceConfiguration.help, "help", "h", false, "Show help information")
}
