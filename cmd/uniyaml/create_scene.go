package main

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/cmd"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/create"
)

func createSceneMain(command *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) != 1 {
		return errors.New("expected an output scene path")
	}

	// Perform the creation.
	result, err := create.CreateScene(arguments[0], createSceneConfiguration.includeDefaults, createSceneConfiguration.guid, logger)
	if err != nil {
		return errors.Wrap(err, "unable to create scene")
	}

	// Report the result.
	for _, warning := range result.Warnings {
		cmd.Warning(warning)
	}
	fmt.Println("Created scene", result.Path, "with GUID", result.GUID)
	fmt.Println("Wrote meta file", result.MetaPath)

	// Success.
	return nil
}

var createSceneCommand = &cobra.Command{
	Use:   "create-scene <output>",
	Short: "Create a scene file with its required settings blocks",
	Run:   cmd.Mainify(createSceneMain),
}

var createSceneConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
	// includeDefaults requests the default Main Camera and Directional
	// Light objects.
	includeDefaults bool
	// guid is an explicit scene GUID (generated when empty).
	guid string
}

func init() {
	// Grab a handle for the command line flags.
	flags := createSceneCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&createSceneConfiguration.help, "help", "h", false, "Show help information")

	// Wire up creation flags.
	flags.BoolVar(&createSceneConfiguration.includeDefaults, "include-defaults", false, "Include the default Main Camera and Directional Light")
	flags.StringVar(&createSceneConfiguration.guid, "guid", "", "Use an explicit scene GUID instead of generating one")
}
