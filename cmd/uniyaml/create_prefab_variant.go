package main

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/cmd"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/create"
)

func createPrefabVariantMain(command *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) != 2 {
		return errors.New("expected a source prefab and an output path")
	}

	// Perform the creation.
	result, err := create.CreatePrefabVariant(arguments[0], arguments[1], createPrefabVariantConfiguration.name, logger)
	if err != nil {
		return errors.Wrap(err, "unable to create prefab variant")
	}

	// Report the result.
	for _, warning := range result.Warnings {
		cmd.Warning(warning)
	}
	fmt.Println("Created prefab variant", result.Path, "(source GUID", result.SourceGUID+")")
	fmt.Println("PrefabInstance", result.PrefabInstanceID)

	// Success.
	return nil
}

var createPrefabVariantCommand = &cobra.Command{
	Use:   "create-prefab-variant <source> <output>",
	Short: "Create a prefab variant of an existing prefab",
	Run:   cmd.Mainify(createPrefabVariantMain),
}

var createPrefabVariantConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
	// name is the variant's name override.
	name string
}

func init() {
	// Grab a handle for the command line flags.
	flags := createPrefabVariantCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&createPrefabVariantConfiguration.help, "help", "h", false, "Show help information")

	// Wire up creation flags.
	flags.StringVarP(&createPrefabVariantConfiguration.name, "name", "n", "", "Variant name (defaults to \"<source root> Variant\")")
}
