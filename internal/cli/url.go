package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// urlCommand creates the url command for printing artifact locations.
func (c *CLI) urlCommand() *cobra.Command {
	var localDir string

	cmd := &cobra.Command{
		Use:   "url <template> <version>",
		Short: "Print the download URL for a template version",
		Long: `Print the download URL for a template version.

The URL is derived from the name and version alone; no network request is
made and the version's existence is not checked.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := c.newSource(localDir)
			if err != nil {
				return err
			}
			fmt.Println(src.TemplateURL(args[0], args[1]))
			return nil
		},
	}

	cmd.Flags().StringVar(&localDir, "local", "", "use a local template directory instead of the catalog")

	return cmd
}
