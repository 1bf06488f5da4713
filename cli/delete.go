package cli

import (
	"bufio"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func deleteCmd(newAPI func() API) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project",
		Long: `Delete removes the project with the given id after an explicit
confirmation. Nothing is removed locally until the server confirms.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid project id %q", args[0])
			}

			ctrl := NewController(newAPI())
			in := bufio.NewReader(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			if !yes && !confirm(in, out, fmt.Sprintf("Delete project %s?", id)) {
				fmt.Fprintln(out, "Aborted.")
				return nil
			}

			if err := ctrl.Delete(cmd.Context(), id); err != nil {
				renderNotice(out, ctrl.TakeNotice())
				return err
			}

			renderNotice(out, ctrl.TakeNotice())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
