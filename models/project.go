package models

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rjhade/project-portfolio/errs"
)

// githubLinkPattern accepts absolute http(s) URLs with a non-empty remainder.
var githubLinkPattern = regexp.MustCompile(`^https?://.+`)

// Project represents a single portfolio item
type Project struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string    `json:"title" gorm:"type:text;not null"`
	Description string    `json:"description" gorm:"type:text"`
	TechStack   []string  `json:"techStack" gorm:"serializer:json"`
	GithubLink  string    `json:"githubLink" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Normalize trims surrounding whitespace from the text fields and
// defaults TechStack to an empty slice so it serializes as [] rather
// than null.
func (p *Project) Normalize() {
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
	p.GithubLink = strings.TrimSpace(p.GithubLink)
	if p.TechStack == nil {
		p.TechStack = []string{}
	}
}

// Validate enforces the write-time invariants: title must be non-empty
// after trimming, and githubLink, when present, must be an absolute
// http:// or https:// URL. Field order of checks is stable so the
// first failing field is reported.
func (p *Project) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return errs.NewMissingRequiredFieldError("title")
	}
	if link := strings.TrimSpace(p.GithubLink); link != "" && !githubLinkPattern.MatchString(link) {
		return errs.NewInvalidFieldError("githubLink", "must be an absolute http:// or https:// URL")
	}
	return nil
}

// ValidGithubLink reports whether link passes the URL rule on its own.
// Shared with the terminal client so pre-submission validation mirrors
// the server exactly.
func ValidGithubLink(link string) bool {
	link = strings.TrimSpace(link)
	return link == "" || githubLinkPattern.MatchString(link)
}
