package main

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/cmd"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/create"
)

func createGameObjectMain(command *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) != 2 {
		return errors.New("expected a scene file and a GameObject name")
	}

	// Perform the creation.
	result, err := create.CreateGameObject(arguments[0], arguments[1], createGameObjectConfiguration.parent, logger)
	if err != nil {
		return errors.Wrap(err, "unable to create GameObject")
	}

	// Report the result.
	for _, warning := range result.Warnings {
		cmd.Warning(warning)
	}
	fmt.Println("Created GameObject", result.GameObjectID, "with Transform", result.TransformID)
	if result.PrefabInstanceID != "" {
		fmt.Println("Registered as added object on PrefabInstance", result.PrefabInstanceID)
	}

	// Success.
	return nil
}

var createGameObjectCommand = &cobra.Command{
	Use:   "create-gameobject <file> <name>",
	Short: "Create a GameObject in a scene or prefab",
	Run:   cmd.Mainify(createGameObjectMain),
}

var createGameObjectConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
	// parent is the parent GameObject name or Transform fileID.
	parent string
}

func init() {
	// Grab a handle for the command line flags.
	flags := createGameObjectCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&createGameObjectConfiguration.help, "help", "h", false, "Show help information")

	// Wire up creation flags.
	flags.StringVarP(&createGameObjectConfiguration.parent, "parent", "p", "", "Parent GameObject name or Transform fileID")
}
