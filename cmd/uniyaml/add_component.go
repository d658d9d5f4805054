package main

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/cmd"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/create"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/project"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/unity"
)

func addComponentMain(command *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) != 3 {
		return errors.New("expected a scene file, a GameObject, and a component name or script GUID")
	}

	// Perform the attachment.
	result, err := create.AddComponent(
		arguments[0], arguments[1], arguments[2],
		addComponentConfiguration.project,
		guidScriptResolver{}, project.Reader{}, logger,
	)
	if err != nil {
		return errors.Wrap(err, "unable to add component")
	}

	// Report the result.
	for _, warning := range result.Warnings {
		cmd.Warning(warning)
	}
	fmt.Println("Attached", unity.ClassName(result.ClassID), "as", result.ComponentID)
	if result.ScriptGUID != "" {
		fmt.Println("Backed by script", result.ScriptGUID)
	}

	// Success.
	return nil
}

var addComponentCommand = &cobra.Command{
	Use:   "add-component <file> <gameobject> <component>",
	Short: "Attach a built-in component or custom script to a GameObject",
	Run:   cmd.Mainify(addComponentMain),
}

var addComponentConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
	// project is the Unity project path.
	project string
}

func init() {
	// Grab a handle for the command line flags.
	flags := addComponentCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&addComponentConfiguration.help, "help", "h", false, "Show help information")

	// Wire up attachment flags.
	flags.StringVar(&addComponentConfiguration.project, "project", "", "Unity project path")
}
