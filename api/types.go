package api

import "github.com/google/uuid"

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler projectHandler
	healthHandler  healthHandler
}

// dataEnvelope wraps every successful payload so clients can extract
// results uniformly from the `data` field.
type dataEnvelope struct {
	Data any `json:"data"`
}

// errorEnvelope is the shape of every error response.
type errorEnvelope struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// deleteResult confirms a completed delete.
type deleteResult struct {
	ID      uuid.UUID `json:"id"`
	Deleted bool      `json:"deleted"`
}

// projectRequest is the caller-supplied portion of a project. The id
// and creation timestamp are never accepted from the wire.
type projectRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TechStack   []string `json:"techStack"`
	GithubLink  string   `json:"githubLink"`
}
