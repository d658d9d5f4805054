package main

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/cmd"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/unity"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/update"
)

func editComponentMain(command *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) != 4 {
		return errors.New("expected a scene file, a fileID, a property, and a value")
	}

	// Perform the edit.
	result, err := update.EditComponentByFileID(arguments[0], arguments[1], arguments[2], arguments[3], logger)
	if err != nil {
		return errors.Wrap(err, "unable to edit component")
	}

	// Report the result.
	fmt.Println("Edited", result.Property, "on", unity.ClassName(result.ClassID), result.FileID,
		"("+humanize.Bytes(uint64(result.BytesWritten)), "written)")

	// Success.
	return nil
}

var editComponentCommand = &cobra.Command{
	Use:   "edit-component <file> <file-id> <property> <value>",
	Short: "Edit a component property by fileID",
	Run:   cmd.Mainify(editComponentMain),
}

var editComponentConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := editComponentCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&editComponentConfiguration.help, "help", "h", false, "Show help information")
}
