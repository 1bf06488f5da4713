package api

import (
	"time"

	"github.com/rjhade/project-portfolio/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		projectHandler: newProjectHandler(database.ProjectRepo()),
		healthHandler:  newHealthHandler(startupTime),
	}
}
