package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// listCommand creates the list command for enumerating available templates.
func (c *CLI) listCommand() *cobra.Command {
	var (
		count    bool
		localDir string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available template packages",
		Long: `List available template packages.

Names come from the configured catalog repository (or a local template
directory with --local) in the order the backend reports them. With
--count only the total number of packages is printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := c.newSource(localDir)
			if err != nil {
				return err
			}

			spinner := newSpinner(cmd.Context(), "Fetching templates...")
			spinner.Start()

			if count {
				n, err := src.PackageCount(cmd.Context())
				if err != nil {
					spinner.StopWithError("Could not reach the template catalog")
					return err
				}
				spinner.Stop()
				fmt.Println(n)
				return nil
			}

			names, err := src.List(cmd.Context(), nil)
			if err != nil {
				spinner.StopWithError("Could not reach the template catalog")
				return err
			}
			spinner.Stop()

			if len(names) == 0 {
				printInfo("No templates available in %s", src.Name())
				return nil
			}
			c.Logger.Debug("Listed templates", "source", src.Name(), "count", len(names))
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&count, "count", false, "print only the number of available packages")
	cmd.Flags().StringVar(&localDir, "local", "", "use a local template directory instead of the catalog")

	return cmd
}
