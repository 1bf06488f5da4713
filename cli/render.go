package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/rjhade/project-portfolio/models"
)

const noDescriptionPlaceholder = "No description provided"

// renderProjects writes one card per project to w. Pure function of
// its inputs: no controller access, no I/O beyond the writer.
func renderProjects(w io.Writer, projects []models.Project) {
	if len(projects) == 0 {
		fmt.Fprintln(w, "No projects found.")
		return
	}

	for i, p := range projects {
		if i > 0 {
			fmt.Fprintln(w)
		}
		renderCard(w, p)
	}
}

// renderCard writes a single project card.
func renderCard(w io.Writer, p models.Project) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s\n", p.Title))
	sb.WriteString(fmt.Sprintf("  id: %s\n", p.ID))

	description := p.Description
	if description == "" {
		description = noDescriptionPlaceholder
	}
	sb.WriteString(fmt.Sprintf("  %s\n", description))

	if len(p.TechStack) > 0 {
		tags := make([]string, len(p.TechStack))
		for i, tech := range p.TechStack {
			tags[i] = "[" + tech + "]"
		}
		sb.WriteString(fmt.Sprintf("  %s\n", strings.Join(tags, " ")))
	}

	if p.GithubLink != "" {
		sb.WriteString(fmt.Sprintf("  link: %s\n", p.GithubLink))
	}

	sb.WriteString(fmt.Sprintf("  created: %s\n", p.CreatedAt.Format("2006-01-02 15:04")))

	fmt.Fprint(w, sb.String())
}

// renderNotice writes a one-shot success/error banner. Nil notices
// render nothing.
func renderNotice(w io.Writer, n *Notice) {
	if n == nil {
		return
	}
	switch n.Kind {
	case NoticeError:
		fmt.Fprintf(w, "error: %s\n", n.Message)
	default:
		fmt.Fprintf(w, "%s\n", n.Message)
	}
}
