package cli

import (
	"bufio"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rjhade/project-portfolio/client"
	"github.com/rjhade/project-portfolio/models"
)

func TestRenderCard(t *testing.T) {
	var out strings.Builder
	renderCard(&out, models.Project{
		ID:          uuid.New(),
		Title:       "Brain Tumor Detection",
		Description: "deep learning on MRI scans",
		TechStack:   []string{"Python", "Keras"},
		GithubLink:  "https://github.com/u/r",
		CreatedAt:   time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	})

	got := out.String()
	assert.Contains(t, got, "Brain Tumor Detection")
	assert.Contains(t, got, "deep learning on MRI scans")
	assert.Contains(t, got, "[Python] [Keras]")
	assert.Contains(t, got, "link: https://github.com/u/r")
	assert.Contains(t, got, "2024-03-01")
}

func TestRenderCardPlaceholders(t *testing.T) {
	var out strings.Builder
	renderCard(&out, models.Project{ID: uuid.New(), Title: "Bare"})

	got := out.String()
	assert.Contains(t, got, noDescriptionPlaceholder)
	assert.NotContains(t, got, "link:")
}

func TestRenderProjectsEmpty(t *testing.T) {
	var out strings.Builder
	renderProjects(&out, nil)
	assert.Contains(t, out.String(), "No projects found")
}

func TestRenderNotice(t *testing.T) {
	var out strings.Builder
	renderNotice(&out, &Notice{Kind: NoticeError, Message: "boom"})
	assert.Equal(t, "error: boom\n", out.String())

	out.Reset()
	renderNotice(&out, &Notice{Kind: NoticeSuccess, Message: "done"})
	assert.Equal(t, "done\n", out.String())

	out.Reset()
	renderNotice(&out, nil)
	assert.Empty(t, out.String())
}

func TestPromptDraftValidatesLocally(t *testing.T) {
	// First title is blank and rejected, link without a scheme is
	// rejected and re-prompted.
	input := strings.NewReader(strings.Join([]string{
		"",
		"My Project",
		"a description",
		"Go, chi , ",
		"github.com/u/r",
		"https://github.com/u/r",
	}, "\n") + "\n")

	var out strings.Builder
	draft, err := promptDraft(bufio.NewReader(input), &out, nil)
	require.NoError(t, err)

	assert.Equal(t, "My Project", draft.Title)
	assert.Equal(t, "a description", draft.Description)
	assert.Equal(t, []string{"Go", "chi"}, draft.TechStack)
	assert.Equal(t, "https://github.com/u/r", draft.GithubLink)

	assert.Contains(t, out.String(), "title is required")
	assert.Contains(t, out.String(), "http:// or https://")
}

func TestPromptDraftKeepsExistingOnEmptyInput(t *testing.T) {
	existing := client.ProjectDraft{
		Title:       "Original",
		Description: "old",
		TechStack:   []string{"Python"},
		GithubLink:  "https://github.com/u/old",
	}

	// Keep title and link, change description, clear nothing.
	input := strings.NewReader("\nnew description\n\n\n")

	var out strings.Builder
	draft, err := promptDraft(bufio.NewReader(input), &out, &existing)
	require.NoError(t, err)

	assert.Equal(t, "Original", draft.Title)
	assert.Equal(t, "new description", draft.Description)
	assert.Equal(t, []string{"Python"}, draft.TechStack)
	assert.Equal(t, "https://github.com/u/old", draft.GithubLink)
}

func TestConfirm(t *testing.T) {
	testCases := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"\n", false},
		{"whatever\n", false},
	}

	for _, tc := range testCases {
		var out strings.Builder
		got := confirm(bufio.NewReader(strings.NewReader(tc.input)), &out, "Delete?")
		assert.Equal(t, tc.want, got, "input %q", tc.input)
	}
}
