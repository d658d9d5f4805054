package main

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/cmd"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/remove"
)

func deleteGameObjectMain(command *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) != 2 {
		return errors.New("expected a scene file and a GameObject")
	}

	// Perform the deletion.
	result, err := remove.DeleteGameObject(arguments[0], arguments[1], logger)
	if err != nil {
		return errors.Wrap(err, "unable to delete GameObject")
	}

	// Report the result.
	fmt.Println("Deleted", result.DeletedCount, "blocks")

	// Success.
	return nil
}

var deleteGameObjectCommand = &cobra.Command{
	Use:   "delete-gameobject <file> <gameobject>",
	Short: "Delete a GameObject and its subtree",
	Run:   cmd.Mainify(deleteGameObjectMain),
}

var deleteGameObjectConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := deleteGameObjectCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&deleteGameObjectConfiguration.help, "help", "h", false, "Show help information")
}
