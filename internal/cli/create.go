package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moldtool/mold/pkg/scaffold"
	"github.com/moldtool/mold/pkg/source"
)

// createCommand creates the create command for scaffolding new projects.
func (c *CLI) createCommand() *cobra.Command {
	var (
		localDir string
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "create [template] [version] <dir>",
		Short: "Create a new project from a template package",
		Long: `Create a new project from a template package.

With one argument (the target directory) an interactive picker lists the
available templates. The version defaults to the latest published one.

Examples:
  mold create my-app                    # pick a template interactively
  mold create web-app my-app            # latest version of web-app
  mold create web-app 1.2 my-app        # exact version`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name, version, dir string
			switch len(args) {
			case 1:
				dir = args[0]
			case 2:
				name, dir = args[0], args[1]
			case 3:
				name, version, dir = args[0], args[1], args[2]
			}

			src, err := c.newSource(localDir)
			if err != nil {
				return err
			}

			if name == "" {
				name, err = c.pickTemplate(cmd.Context(), src)
				if err != nil {
					return err
				}
				if name == "" {
					printInfo("No template selected")
					return nil
				}
			}

			artifactCache := c.newCache(cmd.Context(), noCache)
			defer artifactCache.Close()

			fetcher := scaffold.NewFetcher(artifactCache, c.newHTTPClient())

			spinner := newSpinner(cmd.Context(), fmt.Sprintf("Creating %s from %s...", dir, name))
			spinner.Start()

			resolved, err := fetcher.Create(cmd.Context(), src, name, version, dir)
			if err != nil {
				spinner.StopWithError("Project creation failed")
				return describeCreateError(err, name)
			}
			spinner.Stop()

			printSuccess("Created %s from %s %s", dir, name, resolved)
			return nil
		},
	}

	cmd.Flags().StringVar(&localDir, "local", "", "use a local template directory instead of the catalog")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the template archive cache")

	return cmd
}

// describeCreateError maps scaffolding failures onto the three distinct
// user-facing outcomes.
func describeCreateError(err error, name string) error {
	var nf *scaffold.NotFoundError
	if errors.As(err, &nf) {
		return fmt.Errorf("template %q not found in source %q", nf.Template, nf.Source)
	}
	var nv *source.NoVersionsError
	if errors.As(err, &nv) {
		return fmt.Errorf("template %q exists but has no published versions", nv.Name)
	}
	return err
}
