package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/cmd"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/update"
)

// parseTriple parses an "x,y,z" flag value into a vector. Empty input yields
// nil (the component is left untouched).
func parseTriple(value, flag string) (*update.Vector3, error) {
	if value == "" {
		return nil, nil
	}
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return nil, errors.Errorf("--%s expects three comma-separated numbers", flag)
	}
	var components [3]float64
	for index, part := range parts {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, errors.Errorf("--%s component %q is not a number", flag, part)
		}
		components[index] = parsed
	}
	return &update.Vector3{X: components[0], Y: components[1], Z: components[2]}, nil
}

func editTransformMain(command *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) != 2 {
		return errors.New("expected a scene file and a Transform")
	}

	// Parse the vector flags.
	position, err := parseTriple(editTransformConfiguration.position, "position")
	if err != nil {
		return err
	}
	rotation, err := parseTriple(editTransformConfiguration.rotation, "rotation")
	if err != nil {
		return err
	}
	scale, err := parseTriple(editTransformConfiguration.scale, "scale")
	if err != nil {
		return err
	}

	// Perform the edit.
	result, err := update.EditTransform(arguments[0], arguments[1], position, rotation, scale, logger)
	if err != nil {
		return errors.Wrap(err, "unable to edit Transform")
	}

	// Report the result.
	fmt.Println("Edited Transform", result.TransformID,
		"("+humanize.Bytes(uint64(result.BytesWritten)), "written)")

	// Success.
	return nil
}

var editTransformCommand = &cobra.Command{
	Use:   "edit-transform <file> <transform>",
	Short: "Edit a Transform's position, rotation (Euler degrees), and scale",
	Run:   cmd.Mainify(editTransformMain),
}

var editTransformConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
	// position, rotation, and scale are "x,y,z" triples.
	position string
	rotation string
	scale    string
}

func init() {
	// Grab a handle for the command line flags.
	flags := editTransformCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&editTransformConfiguration.help, "help", "h", false, "Show help information")

	// Wire up edit flags.
	flags.StringVar(&editTransformConfiguration.position, "position", "", "Local position as x,y,z")
	flags.StringVar(&editTransformConfiguration.rotation, "rotation", "", "Local rotation as Euler degrees x,y,z")
	flags.StringVar(&editTransformConfiguration.scale, "scale", "", "Local scale as x,y,z")
}
