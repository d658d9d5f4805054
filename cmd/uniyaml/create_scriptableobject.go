package main

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/cmd"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/create"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/project"
)

func createScriptableObjectMain(command *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) != 2 {
		return errors.New("expected an output path and a script GUID")
	}

	// Perform the creation.
	result, err := create.CreateScriptableObject(
		arguments[0], arguments[1],
		createScriptableObjectConfiguration.project,
		guidScriptResolver{}, project.Reader{}, logger,
	)
	if err != nil {
		return errors.Wrap(err, "unable to create ScriptableObject")
	}

	// Report the result.
	for _, warning := range result.Warnings {
		cmd.Warning(warning)
	}
	fmt.Println("Created ScriptableObject", result.Path, "with GUID", result.AssetGUID)
	fmt.Println("Backed by script", result.ScriptGUID)

	// Success.
	return nil
}

var createScriptableObjectCommand = &cobra.Command{
	Use:   "create-scriptableobject <output> <script-guid>",
	Short: "Create a ScriptableObject asset backed by a script",
	Run:   cmd.Mainify(createScriptableObjectMain),
}

var createScriptableObjectConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
	// project is the Unity project path for version-gated defaults.
	project string
}

func init() {
	// Grab a handle for the command line flags.
	flags := createScriptableObjectCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&createScriptableObjectConfiguration.help, "help", "h", false, "Show help information")

	// Wire up creation flags.
	flags.StringVar(&createScriptableObjectConfiguration.project, "project", "", "Unity project path")
}
