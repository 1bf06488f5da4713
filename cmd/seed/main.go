// Command seed clears the project collection and repopulates it with
// the sample portfolio records. One-shot: it exits non-zero if the
// store cannot be reset.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rjhade/project-portfolio/config"
	"github.com/rjhade/project-portfolio/database"
	"github.com/rjhade/project-portfolio/models"
)

// seedProjects is the explicit input to the reset-and-populate run.
// First element ends up newest in the listing.
var seedProjects = []models.Project{
	{
		Title:       "Brain Tumor Detection",
		Description: "A machine learning application that uses deep learning to detect brain tumors from MRI scans with high accuracy. Implements CNN architecture for medical image classification.",
		TechStack:   []string{"Python", "TensorFlow", "Keras", "NumPy", "OpenCV"},
		GithubLink:  "https://github.com/yourusername/brain-tumor-detection",
	},
	{
		Title:       "Real-Time Face Recognition System",
		Description: "An advanced computer vision system that performs real-time face detection and recognition using OpenCV. Features include face tracking, recognition accuracy optimization, and live video processing.",
		TechStack:   []string{"Python", "OpenCV", "NumPy", "dlib"},
		GithubLink:  "https://github.com/yourusername/face-recognition-system",
	},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("No .env file loaded")
	}

	c := config.New()

	dsn, err := config.Require(c, "DATABASE_URL")
	if err != nil {
		log.Error().Err(err).Msg("Missing database configuration")
		os.Exit(1)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Error().Err(err).Msg("Error connecting to database")
		os.Exit(1)
	}

	currentDB := database.New(db)

	if err := currentDB.Migrate(); err != nil {
		log.Error().Err(err).Msg("Error migrating database schema")
		os.Exit(1)
	}

	log.Info().Msg("Clearing existing projects and seeding...")

	if err := currentDB.ProjectRepo().ReplaceAll(seedProjects); err != nil {
		log.Error().Err(err).Msg("Error seeding database")
		os.Exit(1)
	}

	log.Info().Int("count", len(seedProjects)).Msg("Database seeded successfully")
}
