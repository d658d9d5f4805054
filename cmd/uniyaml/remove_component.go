package main

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/cmd"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/remove"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/unity"
)

func removeComponentMain(command *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) != 2 {
		return errors.New("expected a scene file and a component fileID")
	}

	// Perform the removal.
	result, err := remove.RemoveComponent(arguments[0], arguments[1], logger)
	if err != nil {
		return errors.Wrap(err, "unable to remove component")
	}

	// Report the result.
	fmt.Println("Removed", unity.ClassName(result.RemovedClassID), "component", arguments[1])

	// Success.
	return nil
}

var removeComponentCommand = &cobra.Command{
	Use:   "remove-component <file> <file-id>",
	Short: "Remove a component from its GameObject",
	Run:   cmd.Mainify(removeComponentMain),
}

var removeComponentConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := removeComponentCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&removeComponentConfiguration.help, "help", "h", false, "Show help information")
}
