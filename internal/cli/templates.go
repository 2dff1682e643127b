package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/devbrain/neutrino-new/internal/project"
	"github.com/devbrain/neutrino-new/internal/scaffold"
	"github.com/spf13/cobra"
)

func newTemplatesCmd() *cobra.Command {
	var typ string

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the built-in project templates",
		Long: `List every template in the generator's table with the path it is written to
and the condition under which it is included.

With --type, only templates selected for that project type (with tests and
examples enabled) are listed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := scaffold.Templates()

			if typ != "" {
				t, err := project.ParseType(typ)
				if err != nil {
					return err
				}
				opts := project.DefaultOptions()
				opts.Name = "<name>"
				opts.Type = t
				ctx := project.NewContext(opts, now())

				var selected []scaffold.Entry
				for _, e := range entries {
					if e.When(ctx) {
						selected = append(selected, e)
					}
				}
				entries = selected
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TEMPLATE\tTARGET\tINCLUDED WHEN")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, e.Target, e.Condition)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&typ, "type", "t", "", "Only show templates used by this project type")
	return cmd
}
