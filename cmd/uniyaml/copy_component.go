package main

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/cmd"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/create"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/unity"
)

func copyComponentMain(command *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) != 3 {
		return errors.New("expected a scene file, a source component fileID, and a target GameObject")
	}

	// Perform the copy.
	result, err := create.CopyComponent(arguments[0], arguments[1], arguments[2], logger)
	if err != nil {
		return errors.Wrap(err, "unable to copy component")
	}

	// Report the result.
	for _, warning := range result.Warnings {
		cmd.Warning(warning)
	}
	fmt.Println("Copied", unity.ClassName(result.ClassID), "as", result.ComponentID)

	// Success.
	return nil
}

var copyComponentCommand = &cobra.Command{
	Use:   "copy-component <file> <source-id> <target-gameobject>",
	Short: "Copy a component onto another GameObject",
	Run:   cmd.Mainify(copyComponentMain),
}

var copyComponentConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := copyComponentCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&copyComponentConfiguration.help, "help", "h", false, "Show help information")
}
