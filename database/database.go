package database

import (
	"gorm.io/gorm"

	"github.com/rjhade/project-portfolio/models"
)

type Database struct {
	db          *gorm.DB
	projectRepo *ProjectRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:          db,
		projectRepo: NewProjectRepo(db),
	}
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

// Migrate creates or updates the backing tables.
func (d Database) Migrate() error {
	return d.db.AutoMigrate(&models.Project{})
}

// Ping verifies the connection is usable before the server starts.
func (d Database) Ping() error {
	var result int
	return d.db.Raw("SELECT 1").Scan(&result).Error
}
