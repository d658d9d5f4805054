package main

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/cmd"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/remove"
)

func duplicateGameObjectMain(command *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) != 2 {
		return errors.New("expected a scene file and a GameObject")
	}

	// Perform the duplication.
	result, err := remove.DuplicateGameObject(arguments[0], arguments[1], duplicateGameObjectConfiguration.name, logger)
	if err != nil {
		return errors.Wrap(err, "unable to duplicate GameObject")
	}

	// Report the result.
	for _, warning := range result.Warnings {
		cmd.Warning(warning)
	}
	fmt.Println("Duplicated as", result.Name, "("+result.GameObjectID+"),", result.TotalDuplicated, "blocks cloned")

	// Success.
	return nil
}

var duplicateGameObjectCommand = &cobra.Command{
	Use:   "duplicate-gameobject <file> <gameobject>",
	Short: "Duplicate a GameObject subtree with fresh fileIDs",
	Run:   cmd.Mainify(duplicateGameObjectMain),
}

var duplicateGameObjectConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
	// name is the clone's name (defaults to "<original> (1)").
	name string
}

func init() {
	// Grab a handle for the command line flags.
	flags := duplicateGameObjectCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&duplicateGameObjectConfiguration.help, "help", "h", false, "Show help information")

	// Wire up duplication flags.
	flags.StringVarP(&duplicateGameObjectConfiguration.name, "name", "n", "", "Name for the clone")
}
