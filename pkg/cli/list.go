package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/robot-runner/pkg/scenario"
)

var scenariosCommand = &cli.Command{
	Name:  "scenarios",
	Usage: "List available scenarios",
	Action: func(c *cli.Context) error {
		out := c.App.Writer
		for _, sc := range scenario.Catalog() {
			fmt.Fprintf(out, "  %-16s %s\n", sc.Name, sc.Description)
		}
		return nil
	},
}

var elementsCommand = &cli.Command{
	Name:  "elements",
	Usage: "Validate and print the element registry",
	Description: `Loads the registry (--registry, config.yaml, or built-in), checks that
every logical element has a unique identifier, and prints it.

Use --yaml to print a registry file you can edit and pass back with --registry.`,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "yaml",
			Usage: "Print the registry in registry-file format",
		},
	},
	Action: func(c *cli.Context) error {
		s, err := loadSettings(c)
		if err != nil {
			return err
		}
		out := c.App.Writer

		if c.Bool("yaml") {
			data, err := s.registry.Marshal()
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		}

		fmt.Fprintf(out, "  %-20s %-18s %s\n", "Element", "ID", "Kind")
		fmt.Fprintln(out, "  "+strings.Repeat("─", 50))
		for _, e := range s.registry.Entries() {
			fmt.Fprintf(out, "  %-20s %-18s %s\n", e.Name, e.Key, e.Kind)
		}
		fmt.Fprintf(out, "\n  %d elements (%s)\n", len(s.registry.Entries()), registryLabel(s))
		return nil
	},
}
