package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moldtool/mold/pkg/source"
)

// infoCommand creates the info command for showing template metadata.
func (c *CLI) infoCommand() *cobra.Command {
	var localDir string

	cmd := &cobra.Command{
		Use:   "info <template>",
		Short: "Show metadata for a template package",
		Long: `Show metadata for a template package.

The three failure modes are reported distinctly: a template that does not
exist, a template with no published versions, and a catalog that could
not be reached.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			src, err := c.newSource(localDir)
			if err != nil {
				return err
			}

			spinner := newSpinner(cmd.Context(), fmt.Sprintf("Looking up %s...", name))
			spinner.Start()

			info, found, err := src.Get(cmd.Context(), name)
			spinner.Stop()

			var nv *source.NoVersionsError
			switch {
			case errors.As(err, &nv):
				return fmt.Errorf("template %q exists but has no published versions", nv.Name)
			case err != nil:
				return fmt.Errorf("could not look up template %q: %w", name, err)
			case !found:
				return fmt.Errorf("template %q not found in %s", name, src.Name())
			}

			printKeyValue("Name", info.Name)
			printKeyValue("Latest", info.LatestVersion)
			printKeyValue("Versions", strings.Join(info.Versions, ", "))
			if info.Owner != "" {
				printKeyValue("Owner", info.Owner)
			}
			if info.Description != "" {
				printKeyValue("Description", info.Description)
			}
			if info.InfoURL != "" {
				printKeyValue("Info", info.InfoURL)
			}
			printKeyValue("Download", info.Source.TemplateURL(info.Name, info.LatestVersion).String())
			return nil
		},
	}

	cmd.Flags().StringVar(&localDir, "local", "", "use a local template directory instead of the catalog")

	return cmd
}
