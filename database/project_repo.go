package database

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rjhade/project-portfolio/errs"
	"github.com/rjhade/project-portfolio/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns all projects, newest first. The id tiebreak keeps the
// order stable when timestamps collide.
func (r *ProjectRepo) FindAll() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Order("created_at DESC, id DESC").Find(&projects).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find", "projects", err)
	}
	return projects, nil
}

// FindByID returns a project by its ID, or nil when no row exists.
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.NewDatabaseError("find", "project", err)
	}
	return &project, nil
}

// Add validates and inserts a new project, assigning its id and
// creation timestamp. The caller's struct is updated in place.
func (r *ProjectRepo) Add(project *models.Project) error {
	project.Normalize()
	if err := project.Validate(); err != nil {
		return err
	}
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now().UTC()
	}
	if err := r.db.Create(project).Error; err != nil {
		return errs.NewDatabaseError("create", "project", err)
	}
	return nil
}

// Update replaces the mutable fields of an existing project. The id and
// creation timestamp never change; every other field is overwritten,
// including fields the caller left empty. Returns a not-found error
// when no project has the given id.
func (r *ProjectRepo) Update(id uuid.UUID, project *models.Project) error {
	existing, err := r.FindByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return errs.NewNotFound("project")
	}

	project.Normalize()
	if err := project.Validate(); err != nil {
		return err
	}

	existing.Title = project.Title
	existing.Description = project.Description
	existing.TechStack = project.TechStack
	existing.GithubLink = project.GithubLink

	if err := r.db.Save(existing).Error; err != nil {
		return errs.NewDatabaseError("update", "project", err)
	}
	*project = *existing
	return nil
}

// Delete removes a project by id. Returns a not-found error when no
// row was deleted.
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Project{}, "id = ?", id)
	if result.Error != nil {
		return errs.NewDatabaseError("delete", "project", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFound("project")
	}
	return nil
}

// Count returns the number of stored projects.
func (r *ProjectRepo) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Project{}).Count(&count).Error; err != nil {
		return 0, errs.NewDatabaseError("count", "projects", err)
	}
	return count, nil
}

// ReplaceAll clears the collection and inserts the given projects in
// order, first element newest. Every record is validated before
// anything is deleted, so a bad seed set never empties the store.
// Used by the seed utility.
func (r *ProjectRepo) ReplaceAll(projects []models.Project) error {
	now := time.Now().UTC()
	for i := range projects {
		projects[i].Normalize()
		if err := projects[i].Validate(); err != nil {
			return err
		}
		if projects[i].ID == uuid.Nil {
			projects[i].ID = uuid.New()
		}
		// Descending timestamps keep FindAll aligned with slice order.
		projects[i].CreatedAt = now.Add(-time.Duration(i) * time.Second)
	}

	if err := r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Project{}).Error; err != nil {
		return errs.NewDatabaseError("clear", "projects", err)
	}
	if len(projects) == 0 {
		return nil
	}
	if err := r.db.Create(&projects).Error; err != nil {
		return errs.NewDatabaseError("seed", "projects", err)
	}
	return nil
}
