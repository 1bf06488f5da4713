package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func listCmd(newAPI func() API) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the project grid",
		Long: `List fetches every project and renders one card per record.

With --search the list is filtered locally: a project matches when the
term appears, case-insensitively, in its title, description, or any
tech-stack entry. Filtering never issues another server call.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := NewController(newAPI())
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Loading projects...")
			if err := ctrl.Load(cmd.Context()); err != nil {
				renderNotice(out, ctrl.TakeNotice())
				return err
			}

			ctrl.SetSearch(search)

			filtered := ctrl.Filtered()
			if search != "" {
				fmt.Fprintf(out, "%d of %d projects match %q\n\n", len(filtered), len(ctrl.Projects()), search)
			}
			renderProjects(out, filtered)
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Filter by title, description, or tech stack")

	return cmd
}
