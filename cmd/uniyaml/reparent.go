package main

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/cmd"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/update"
)

func reparentMain(command *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) != 3 {
		return errors.New("expected a scene file, a child, and a new parent (or \"root\")")
	}

	// Perform the reparent.
	result, err := update.Reparent(arguments[0], arguments[1], arguments[2], logger)
	if err != nil {
		return errors.Wrap(err, "unable to reparent")
	}

	// Report the result.
	fmt.Println("Reparented Transform", result.TransformID, "from", result.OldParentID, "to", result.NewParentID)

	// Success.
	return nil
}

var reparentCommand = &cobra.Command{
	Use:   "reparent <file> <child> <new-parent>",
	Short: "Move a GameObject under a new parent (or \"root\")",
	Run:   cmd.Mainify(reparentMain),
}

var reparentConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := reparentCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&reparentConfiguration.help, "help", "h", false, "Show help information")
}
