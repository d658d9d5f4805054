package main

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/cmd"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/create"
)

func createMetaMain(command *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) != 1 {
		return errors.New("expected a script path")
	}

	// Perform the creation.
	result, err := create.CreateMeta(arguments[0], logger)
	if err != nil {
		return errors.Wrap(err, "unable to create meta file")
	}

	// Report the result.
	fmt.Println("Created meta file", result.MetaPath, "with GUID", result.GUID)

	// Success.
	return nil
}

var createMetaCommand = &cobra.Command{
	Use:   "create-meta <script>",
	Short: "Create a MonoImporter meta file for a script",
	Run:   cmd.Mainify(createMetaMain),
}

var createMetaConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := createMetaCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&createMetaConfiguration.help, "help", "h", false, "Show help information")
}
