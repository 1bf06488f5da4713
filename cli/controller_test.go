package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rjhade/project-portfolio/client"
	"github.com/rjhade/project-portfolio/errs"
	"github.com/rjhade/project-portfolio/models"
)

// stubAPI implements API with canned responses.
type stubAPI struct {
	listProjects []models.Project
	listErr      error
	createResult *models.Project
	createErr    error
	updateResult *models.Project
	updateErr    error
	deleteErr    error

	deleteCalls int
}

func (s *stubAPI) List(ctx context.Context) ([]models.Project, error) {
	return s.listProjects, s.listErr
}

func (s *stubAPI) Create(ctx context.Context, draft client.ProjectDraft) (*models.Project, error) {
	return s.createResult, s.createErr
}

func (s *stubAPI) Update(ctx context.Context, id uuid.UUID, draft client.ProjectDraft) (*models.Project, error) {
	return s.updateResult, s.updateErr
}

func (s *stubAPI) Delete(ctx context.Context, id uuid.UUID) error {
	s.deleteCalls++
	return s.deleteErr
}

func sampleProjects() []models.Project {
	return []models.Project{
		{
			ID:          uuid.New(),
			Title:       "Brain Tumor Detection",
			Description: "CNN architecture for medical image classification",
			TechStack:   []string{"Python", "TensorFlow", "Keras"},
			CreatedAt:   time.Now().UTC(),
		},
		{
			ID:          uuid.New(),
			Title:       "Face Recognition",
			Description: "real-time face detection",
			TechStack:   []string{"C++", "OpenCV"},
			CreatedAt:   time.Now().UTC().Add(-time.Hour),
		},
	}
}

func TestLoadPopulatesState(t *testing.T) {
	ctrl := NewController(&stubAPI{listProjects: sampleProjects()})

	require.NoError(t, ctrl.Load(context.Background()))

	assert.Len(t, ctrl.Projects(), 2)
	assert.Len(t, ctrl.Filtered(), 2)
	assert.False(t, ctrl.Loading())
	assert.Nil(t, ctrl.TakeNotice())
}

func TestLoadFailureLeavesListEmpty(t *testing.T) {
	api := &stubAPI{listErr: errs.NewServiceUnreachableError("portfolio api", errors.New("connection refused"))}
	ctrl := NewController(api)

	err := ctrl.Load(context.Background())
	require.Error(t, err)

	assert.Empty(t, ctrl.Projects())
	assert.Empty(t, ctrl.Filtered())

	notice := ctrl.TakeNotice()
	require.NotNil(t, notice)
	assert.Equal(t, NoticeError, notice.Kind)
	assert.Contains(t, notice.Message, "server")
	assert.Nil(t, ctrl.TakeNotice(), "notices are one-shot")
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	ctrl := NewController(&stubAPI{listProjects: sampleProjects()})
	require.NoError(t, ctrl.Load(context.Background()))

	// Matches only through the tech-stack token, lowercased.
	ctrl.SetSearch("python")
	require.Len(t, ctrl.Filtered(), 1)
	assert.Equal(t, "Brain Tumor Detection", ctrl.Filtered()[0].Title)

	// Substring of a title.
	ctrl.SetSearch("recog")
	require.Len(t, ctrl.Filtered(), 1)
	assert.Equal(t, "Face Recognition", ctrl.Filtered()[0].Title)

	// Substring of a description.
	ctrl.SetSearch("MEDICAL")
	require.Len(t, ctrl.Filtered(), 1)
	assert.Equal(t, "Brain Tumor Detection", ctrl.Filtered()[0].Title)

	// No match.
	ctrl.SetSearch("rust")
	assert.Empty(t, ctrl.Filtered())

	// Empty term restores the full sequence.
	ctrl.SetSearch("")
	assert.Len(t, ctrl.Filtered(), 2)
}

func TestSubmitCreatePrepends(t *testing.T) {
	created := models.Project{ID: uuid.New(), Title: "New Project", CreatedAt: time.Now().UTC()}
	api := &stubAPI{listProjects: sampleProjects(), createResult: &created}
	ctrl := NewController(api)
	require.NoError(t, ctrl.Load(context.Background()))

	require.NoError(t, ctrl.SubmitCreate(context.Background(), client.ProjectDraft{Title: "New Project"}))

	require.Len(t, ctrl.Projects(), 3)
	assert.Equal(t, created.ID, ctrl.Projects()[0].ID, "created record is prepended")

	notice := ctrl.TakeNotice()
	require.NotNil(t, notice)
	assert.Equal(t, NoticeSuccess, notice.Kind)
}

func TestSubmitCreateFailureLeavesState(t *testing.T) {
	api := &stubAPI{
		listProjects: sampleProjects(),
		createErr:    errs.NewValidationError("missing required field: title", "title"),
	}
	ctrl := NewController(api)
	require.NoError(t, ctrl.Load(context.Background()))

	err := ctrl.SubmitCreate(context.Background(), client.ProjectDraft{})
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
	assert.Equal(t, "missing required field: title", err.Error(), "server message propagates to the form")

	assert.Len(t, ctrl.Projects(), 2, "failed create must not mutate local state")
	assert.Nil(t, ctrl.TakeNotice())
}

func TestSubmitEditReplacesInPlace(t *testing.T) {
	projects := sampleProjects()
	target := projects[1]
	updated := target
	updated.Title = "Renamed"
	updated.TechStack = []string{"Go"}

	api := &stubAPI{listProjects: projects, updateResult: &updated}
	ctrl := NewController(api)
	require.NoError(t, ctrl.Load(context.Background()))

	require.NoError(t, ctrl.SubmitEdit(context.Background(), target.ID, client.ProjectDraft{
		Title:     "Renamed",
		TechStack: []string{"Go"},
	}))

	require.Len(t, ctrl.Projects(), 2, "edit replaces, never adds")
	assert.Equal(t, "Renamed", ctrl.Projects()[1].Title)
	assert.Equal(t, []string{"Go"}, ctrl.Projects()[1].TechStack)
}

func TestDeleteRemovesOnSuccess(t *testing.T) {
	projects := sampleProjects()
	api := &stubAPI{listProjects: projects}
	ctrl := NewController(api)
	require.NoError(t, ctrl.Load(context.Background()))

	require.NoError(t, ctrl.Delete(context.Background(), projects[0].ID))

	require.Len(t, ctrl.Projects(), 1)
	assert.Equal(t, projects[1].ID, ctrl.Projects()[0].ID)
	assert.Equal(t, 1, api.deleteCalls)

	notice := ctrl.TakeNotice()
	require.NotNil(t, notice)
	assert.Equal(t, NoticeSuccess, notice.Kind)
}

func TestDeleteFailureIsNotOptimistic(t *testing.T) {
	projects := sampleProjects()
	api := &stubAPI{listProjects: projects, deleteErr: errs.NewNotFound("project")}
	ctrl := NewController(api)
	require.NoError(t, ctrl.Load(context.Background()))

	err := ctrl.Delete(context.Background(), projects[0].ID)
	require.Error(t, err)

	assert.Len(t, ctrl.Projects(), 2, "failed delete must leave state unchanged")

	notice := ctrl.TakeNotice()
	require.NotNil(t, notice)
	assert.Equal(t, NoticeError, notice.Kind)
}

func TestFind(t *testing.T) {
	projects := sampleProjects()
	ctrl := NewController(&stubAPI{listProjects: projects})
	require.NoError(t, ctrl.Load(context.Background()))

	found := ctrl.Find(projects[1].ID)
	require.NotNil(t, found)
	assert.Equal(t, projects[1].Title, found.Title)

	assert.Nil(t, ctrl.Find(uuid.New()))
}
