// Package client is the HTTP transport for the portfolio API: it issues
// the REST calls, unwraps the data envelope, and converts failures into
// the error taxonomy the terminal client acts on.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/rjhade/project-portfolio/errs"
	"github.com/rjhade/project-portfolio/models"
)

// ProjectDraft is the caller-editable portion of a project, sent on
// create and update. Field names match the wire shape exactly.
type ProjectDraft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TechStack   []string `json:"techStack"`
	GithubLink  string   `json:"githubLink"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

// List fetches every project, newest first.
func (c *Client) List(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := c.do(ctx, http.MethodGet, "/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// Create submits a new project and returns the stored record including
// its server-assigned id and timestamp.
func (c *Client) Create(ctx context.Context, draft ProjectDraft) (*models.Project, error) {
	var project models.Project
	if err := c.do(ctx, http.MethodPost, "/projects", draft, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// Update replaces the mutable fields of the project with the given id.
func (c *Client) Update(ctx context.Context, id uuid.UUID, draft ProjectDraft) (*models.Project, error) {
	var project models.Project
	if err := c.do(ctx, http.MethodPut, "/projects/"+id.String(), draft, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// Delete removes the project with the given id.
func (c *Client) Delete(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/projects/"+id.String(), nil, nil)
}

// do performs one round-trip: marshals the body, sends the request,
// and either decodes the data envelope into out or maps the error
// envelope onto an ApiErr. A failure before any HTTP response becomes
// a service-unreachable (transport) error.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return errs.NewInternalErrorWithCause("encoding request body", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errs.NewInternalErrorWithCause("building request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.NewServiceUnreachableError("portfolio api", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return errs.NewInternalErrorWithCause("decoding response envelope", err)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return errs.NewInternalErrorWithCause("decoding response data", err)
	}
	return nil
}

// decodeError turns a non-2xx response into the matching ApiErr so the
// controller can distinguish validation failures from unknown ids.
func decodeError(resp *http.Response) error {
	var envelope struct {
		Message string `json:"message"`
		Field   string `json:"field"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Message == "" {
		envelope.Message = fmt.Sprintf("server returned status %d", resp.StatusCode)
	}

	switch resp.StatusCode {
	case http.StatusBadRequest:
		return errs.NewValidationError(envelope.Message, envelope.Field)
	case http.StatusNotFound:
		return errs.NewNotFoundError(envelope.Message)
	default:
		return errs.NewApiErr(resp.StatusCode, envelope.Message)
	}
}
