package cli

import (
	"bufio"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rjhade/project-portfolio/client"
	"github.com/rjhade/project-portfolio/errs"
)

func editCmd(newAPI func() API) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id>",
		Short: "Update an existing project",
		Long: `Edit loads the project with the given id, prompts for each field
with the current value as the default, and submits a full-replacement
update. Fields are replaced, not merged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid project id %q", args[0])
			}

			ctrl := NewController(newAPI())
			in := bufio.NewReader(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			if err := ctrl.Load(cmd.Context()); err != nil {
				renderNotice(out, ctrl.TakeNotice())
				return err
			}

			existing := ctrl.Find(id)
			if existing == nil {
				return fmt.Errorf("no project with id %s", id)
			}

			current := client.ProjectDraft{
				Title:       existing.Title,
				Description: existing.Description,
				TechStack:   existing.TechStack,
				GithubLink:  existing.GithubLink,
			}

			draft, err := promptDraft(in, out, &current)
			if err != nil {
				return err
			}

			for {
				fmt.Fprintln(out, "Submitting...")
				err := ctrl.SubmitEdit(cmd.Context(), id, draft)
				if err == nil {
					renderNotice(out, ctrl.TakeNotice())
					return nil
				}

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
