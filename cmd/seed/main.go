package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/joho/godotenv"

	"portfolio/internal/config"
	"portfolio/internal/db"
	apperrors "portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

// Seeds the database with a starter profile and sample content. Safe to run
// repeatedly: rows that already exist (by unique key) are left untouched.
func main() {
	log.Println("Starting seed script...")

	_ = godotenv.Load()
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.Profile{},
		&model.Skill{},
		&model.Project{},
		&model.Certificate{},
		&model.Message{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	profileRepo := repository.NewProfileRepository(gormDB)
	profile, err := profileRepo.GetOrCreate(ctx, &model.Profile{
		Email:    cfg.AdminEmail,
		Name:     "Portfolio Owner",
		Tagline:  "Full Stack Developer",
		Location: "Remote",
		Summary:  "I build web applications end to end, from data model to deployment.",
	})
	if err != nil {
		log.Fatalf("Failed to seed profile: %v", err)
	}
	log.Printf("Profile ready: %s", profile.Email)

	skillRepo := repository.NewSkillRepository(gormDB)
	skills := []model.Skill{
		{Name: "Go", SvgIcon: "<svg viewBox=\"0 0 24 24\"><title>Go</title></svg>", Category: "Technical", Order: 1},
		{Name: "TypeScript", SvgIcon: "<svg viewBox=\"0 0 24 24\"><title>TypeScript</title></svg>", Category: "Technical", Order: 2},
		{Name: "MySQL", SvgIcon: "<svg viewBox=\"0 0 24 24\"><title>MySQL</title></svg>", Category: "Technical", Order: 3},
		{Name: "Redis", SvgIcon: "<svg viewBox=\"0 0 24 24\"><title>Redis</title></svg>", Category: "Technical", Order: 4},
	}
	created := 0
	for i := range skills {
		err := skillRepo.Create(ctx, &skills[i])
		switch {
		case err == nil:
			created++
		case errors.Is(err, apperrors.ErrDuplicate):
			// already seeded
		default:
			log.Fatalf("Failed to seed skill %q: %v", skills[i].Name, err)
		}
	}
	log.Printf("Skills: %d created", created)

	projectRepo := repository.NewProjectRepository(gormDB)
	projects := []model.Project{
		{
			Title:       "Portfolio Backend",
			Description: "The API serving this very site: content management, uploads and a contact inbox.",
			TechStack:   "Go, Echo, MySQL, Redis",
			GithubUrl:   "https://github.com/example/portfolio",
			Featured:    true,
			Order:       1,
		},
		{
			Title:       "URL Shortener",
			Description: "A small link shortener with click analytics.",
			TechStack:   "Go, Redis",
			LiveUrl:     "https://short.example.com",
			Order:       2,
		},
	}
	created = 0
	for i := range projects {
		err := projectRepo.Create(ctx, &projects[i])
		switch {
		case err == nil:
			created++
		case errors.Is(err, apperrors.ErrDuplicate):
		default:
			log.Fatalf("Failed to seed project %q: %v", projects[i].Title, err)
		}
	}
	log.Printf("Projects: %d created", created)

	certificateRepo := repository.NewCertificateRepository(gormDB)
	certificates := []model.Certificate{
		{
			Title:     "AWS Certified Cloud Practitioner",
			Issuer:    "Amazon Web Services",
			IssueDate: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
			Order:     1,
		},
	}
	created = 0
	for i := range certificates {
		err := certificateRepo.Create(ctx, &certificates[i])
		switch {
		case err == nil:
			created++
		case errors.Is(err, apperrors.ErrDuplicate):
		default:
			log.Fatalf("Failed to seed certificate %q: %v", certificates[i].Title, err)
		}
	}
	log.Printf("Certificates: %d created", created)

	log.Println("Seed completed successfully!")
}
