package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rjhade/project-portfolio/client"
	"github.com/rjhade/project-portfolio/models"
)

// promptDraft reads a project draft field by field, validating title
// and link locally with the same rules the server enforces so the user
// gets immediate feedback. When editing, the existing values are shown
// and kept on empty input.
func promptDraft(in *bufio.Reader, out io.Writer, existing *client.ProjectDraft) (client.ProjectDraft, error) {
	var draft client.ProjectDraft

	title, err := promptField(in, out, "Title", currentTitle(existing), validateTitle)
	if err != nil {
		return draft, err
	}
	draft.Title = title

	description, err := promptField(in, out, "Description", currentDescription(existing), nil)
	if err != nil {
		return draft, err
	}
	draft.Description = description

	techLine, err := promptField(in, out, "Tech stack (comma-separated)", currentTech(existing), nil)
	if err != nil {
		return draft, err
	}
	draft.TechStack = parseTechStack(techLine)

	link, err := promptField(in, out, "GitHub link", currentLink(existing), validateLink)
	if err != nil {
		return draft, err
	}
	draft.GithubLink = link

	return draft, nil
}

// promptField prompts until validate accepts the value or input ends.
// An empty answer keeps the shown current value.
func promptField(in *bufio.Reader, out io.Writer, label, current string, validate func(string) error) (string, error) {
	for {
		if current != "" {
			fmt.Fprintf(out, "%s [%s]: ", label, current)
		} else {
			fmt.Fprintf(out, "%s: ", label)
		}

		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("reading %s: %w", label, err)
		}

		value := strings.TrimSpace(line)
		if value == "" {
			value = current
		}

		if validate != nil {
			if err := validate(value); err != nil {
				fmt.Fprintf(out, "  %v\n", err)
				continue
			}
		}
		return value, nil
	}
}

func validateTitle(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}

func validateLink(value string) error {
	if !models.ValidGithubLink(value) {
		return fmt.Errorf("link must start with http:// or https://")
	}
	return nil
}

// parseTechStack splits a comma-separated line into trimmed, non-empty
// tokens, preserving order.
func parseTechStack(line string) []string {
	parts := strings.Split(line, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if token := strings.TrimSpace(part); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// confirm asks a yes/no question and only returns true on an explicit
// "y" or "yes".
func confirm(in *bufio.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func currentTitle(d *client.ProjectDraft) string {
	if d == nil {
		return ""
	}
	return d.Title
}

func currentDescription(d *client.ProjectDraft) string {
	if d == nil {
		return ""
	}
	return d.Description
}

func currentTech(d *client.ProjectDraft) string {
	if d == nil {
		return ""
	}
	return strings.Join(d.TechStack, ", ")
}

func currentLink(d *client.ProjectDraft) string {
	if d == nil {
		return ""
	}
	return d.GithubLink
}
