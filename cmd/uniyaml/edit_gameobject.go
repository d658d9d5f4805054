package main

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/cmd"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/project"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/update"
)

func editGameObjectMain(command *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) != 4 {
		return errors.New("expected a scene file, a GameObject, a property, and a value")
	}

	// Perform the edit.
	result, err := update.EditGameObjectProperty(
		arguments[0], arguments[1], arguments[2], arguments[3],
		editGameObjectConfiguration.project, project.Reader{}, logger,
	)
	if err != nil {
		return errors.Wrap(err, "unable to edit GameObject")
	}

	// Report the result.
	for _, warning := range result.Warnings {
		cmd.Warning(warning)
	}
	fmt.Println("Edited GameObject", result.GameObjectID, "("+humanize.Bytes(uint64(result.BytesWritten)), "written)")

	// Success.
	return nil
}

var editGameObjectCommand = &cobra.Command{
	Use:   "edit-gameobject <file> <gameobject> <property> <value>",
	Short: "Edit a GameObject property (Name, TagString, IsActive, Layer, …)",
	Run:   cmd.Mainify(editGameObjectMain),
}

var editGameObjectConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
	// project is the Unity project path for tag validation.
	project string
}

func init() {
	// Grab a handle for the command line flags.
	flags := editGameObjectCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&editGameObjectConfiguration.help, "help", "h", false, "Show help information")

	// Wire up edit flags.
	flags.StringVar(&editGameObjectConfiguration.project, "project", "", "Unity project path")
}
