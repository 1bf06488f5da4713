package cli

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/rjhade/project-portfolio/client"
	"github.com/rjhade/project-portfolio/errs"
	"github.com/rjhade/project-portfolio/models"
)

// API is the slice of the portfolio client the controller needs.
// *client.Client satisfies it; tests substitute a stub.
type API interface {
	List(ctx context.Context) ([]models.Project, error)
	Create(ctx context.Context, draft client.ProjectDraft) (*models.Project, error)
	Update(ctx context.Context, id uuid.UUID, draft client.ProjectDraft) (*models.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is a one-shot user-facing message.
type Notice struct {
	Kind    NoticeKind
	Message string
}

// Controller owns the client-side view of the project list: the full
// fetched sequence, the derived filtered sequence, the active search
// term, and a transient notice. Local state changes only after a
// confirmed server success; filtering never touches the server.
type Controller struct {
	api API

	projects []models.Project
	filtered []models.Project
	search   string

	loading    bool
	submitting bool
	notice     *Notice
}

func NewController(api API) *Controller {
	return &Controller{api: api}
}

// Load fetches the full project list. On failure the list stays empty
// and an error notice tells the user to check the server.
func (c *Controller) Load(ctx context.Context) error {
	c.loading = true
	defer func() { c.loading = false }()

	projects, err := c.api.List(ctx)
	if err != nil {
		c.projects = nil
		c.refilter()
		c.notice = &Notice{
			Kind:    NoticeError,
			Message: "could not load projects; check that the portfolio server is running",
		}
		return err
	}

	c.projects = projects
	c.refilter()
	return nil
}

// SetSearch updates the search term and recomputes the filtered view
// locally and synchronously.
func (c *Controller) SetSearch(term string) {
	c.search = term
	c.refilter()
}

// refilter derives the filtered sequence from the full one. A project
// matches when the term appears, case-insensitively, as a substring of
// its title, its description, or any single tech-stack token. An empty
// term keeps every project.
func (c *Controller) refilter() {
	term := strings.ToLower(strings.TrimSpace(c.search))
	if term == "" {
		c.filtered = c.projects
		return
	}

	filtered := make([]models.Project, 0, len(c.projects))
	for _, p := range c.projects {
		if projectMatches(p, term) {
			filtered = append(filtered, p)
		}
	}
	c.filtered = filtered
}

func projectMatches(p models.Project, term string) bool {
	if strings.Contains(strings.ToLower(p.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}
	for _, tech := range p.TechStack {
		if strings.Contains(strings.ToLower(tech), term) {
			return true
		}
	}
	return false
}

// SubmitCreate sends a create call. On success the returned record is
// prepended to local state. On failure the server's message is
// returned to the form untouched; local state does not change.
func (c *Controller) SubmitCreate(ctx context.Context, draft client.ProjectDraft) error {
	c.submitting = true
	defer func() { c.submitting = false }()

	created, err := c.api.Create(ctx, draft)
	if err != nil {
		return err
	}

	c.projects = append([]models.Project{*created}, c.projects...)
	c.refilter()
	c.notice = &Notice{Kind: NoticeSuccess, Message: "project \"" + created.Title + "\" created"}
	return nil
}

// SubmitEdit sends an update call and replaces the matching record in
// place by id on success.
func (c *Controller) SubmitEdit(ctx context.Context, id uuid.UUID, draft client.ProjectDraft) error {
	c.submitting = true
	defer func() { c.submitting = false }()

	updated, err := c.api.Update(ctx, id, draft)
	if err != nil {
		return err
	}

	for i := range c.projects {
		if c.projects[i].ID == id {
			c.projects[i] = *updated
			break
		}
	}
	c.refilter()
	c.notice = &Notice{Kind: NoticeSuccess, Message: "project \"" + updated.Title + "\" updated"}
	return nil
}

// Delete removes the record by id after a confirmed server success.
// There is no optimistic removal: a failed call leaves state unchanged
// and surfaces an error notice.
func (c *Controller) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.api.Delete(ctx, id); err != nil {
		message := "failed to delete project"
		if errs.IsNotFound(err) {
			message = "project not found"
		} else if errs.IsServiceUnreachableError(err) {
			message = "could not reach the portfolio server"
		}
		c.notice = &Notice{Kind: NoticeError, Message: message}
		return err
	}

	kept := c.projects[:0]
	for _, p := range c.projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	c.projects = kept
	c.refilter()
	c.notice = &Notice{Kind: NoticeSuccess, Message: "project deleted"}
	return nil
}

// Find returns the locally held project with the given id, or nil.
func (c *Controller) Find(id uuid.UUID) *models.Project {
	for i := range c.projects {
		if c.projects[i].ID == id {
			return &c.projects[i]
		}
	}
	return nil
}

func (c *Controller) Projects() []models.Project { return c.projects }
func (c *Controller) Filtered() []models.Project { return c.filtered }
func (c *Controller) Search() string             { return c.search }
func (c *Controller) Loading() bool              { return c.loading }
func (c *Controller) Submitting() bool           { return c.submitting }

// TakeNotice returns the pending notice and dismisses it.
func (c *Controller) TakeNotice() *Notice {
	n := c.notice
	c.notice = nil
	return n
}
