package main

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/cmd"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/remove"
)

func unpackPrefabMain(command *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) != 2 {
		return errors.New("expected a scene file and a PrefabInstance")
	}
	if unpackPrefabConfiguration.sourcePrefab == "" {
		return errors.New("--source-prefab is required: the CLI resolves the instance's source by explicit path")
	}

	// Perform the unpack.
	result, err := remove.UnpackPrefabInstance(
		arguments[0], arguments[1],
		unpackPrefabConfiguration.project,
		pathPrefabResolver{path: unpackPrefabConfiguration.sourcePrefab},
		logger,
	)
	if err != nil {
		return errors.Wrap(err, "unable to unpack prefab")
	}

	// Report the result.
	for _, warning := range result.Warnings {
		cmd.Warning(warning)
	}
	fmt.Println("Unpacked", result.UnpackedCount, "blocks; root GameObject", result.GameObjectID)

	// Success.
	return nil
}

var unpackPrefabCommand = &cobra.Command{
	Use:   "unpack-prefab <file> <prefab-instance>",
	Short: "Unpack a PrefabInstance into plain scene objects",
	Run:   cmd.Mainify(unpackPrefabMain),
}

var unpackPrefabConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
	// sourcePrefab is the path of the instance's source prefab.
	sourcePrefab string
	// project is the Unity project path.
	project string
}

func init() {
	// Grab a handle for the command line flags.
	flags := unpackPrefabCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&unpackPrefabConfiguration.help, "help", "h", false, "Show help information")

	// Wire up unpack flags.
	flags.StringVar(&unpackPrefabConfiguration.sourcePrefab, "source-prefab", "", "Path of the instance's source prefab")
	flags.StringVar(&unpackPrefabConfiguration.project, "project", "", "Unity project path")
}
