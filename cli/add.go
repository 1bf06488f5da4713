package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rjhade/project-portfolio/errs"
)

func addCmd(newAPI func() API) *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Create a new project",
		Long: `Add prompts for the project fields, validates them locally, and
submits the create call. When the server rejects the submission the
message is shown and the form re-opens with the draft retained.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := NewController(newAPI())
			in := bufio.NewReader(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			draft, err := promptDraft(in, out, nil)
			if err != nil {
				return err
			}

			for {
				fmt.Fprintln(out, "Submitting...")
				err := ctrl.SubmitCreate(cmd.Context(), draft)
				if err == nil {
					renderNotice(out, ctrl.TakeNotice())
					return nil
				}

				// Server-side rejection: show the message and keep the
				// form open with the current draft.
				if errs.IsValidation(err) {
					fmt.Fprintf(out, "error: %v\n", err)
					draft, err = promptDraft(in, out, &draft)
					if err != nil {
						return err
					}
					continue
				}

				return err
			}
		},
	}
}
