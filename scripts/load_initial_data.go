package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"onboarding-backend/internal/config"
	"onboarding-backend/internal/database"
	"onboarding-backend/internal/database/models"
	"onboarding-backend/internal/repository"
	"onboarding-backend/internal/scheduler"
	"onboarding-backend/internal/service"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// EnterpriseData mirrors the enterprise columns a fixture may set
type EnterpriseData struct {
	LegalName               string `yaml:"legal_name"`
	Email                   string `yaml:"email"`
	SubDomainName           string `yaml:"sub_domain_name"`
	LegalRegistrationNumber string `yaml:"legal_registration_number"`
	LegalRegistrationType   string `yaml:"legal_registration_type"`
	HeadquarterAddress      string `yaml:"headquarter_address"`
	LegalAddress            string `yaml:"legal_address"`
	ConnectionID            string `yaml:"connection_id"`
	Status                  string `yaml:"status"`
	// Schedule enqueues the DOMAIN step so the dispatcher picks the fixture up
	Schedule bool `yaml:"schedule"`
}

type EnterprisesFile struct {
	Enterprises []EnterpriseData `yaml:"enterprises"`
}

func main() {
	log.Println("Loading initial enterprises from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	jobs := scheduler.NewScheduler(repository.NewScheduledJobRepository(db), scheduler.Options{
		InitialDelay:   cfg.SchedulerInitialDelay,
		RepeatInterval: cfg.SchedulerRepeatInterval,
	})
	if err := loadDataFromYAMLFiles(repository.NewEnterpriseRepository(db), jobs, cfg.BaseDomain, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial enterprises loaded")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(repo repository.EnterpriseRepositoryInterface, jobs *scheduler.Scheduler, baseDomain, dataDir string) error {
	enterprises, err := loadEnterprises(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load enterprises: %w", err)
	}

	created := 0
	for _, data := range enterprises {
		ok, err := createEnterprise(repo, jobs, baseDomain, data)
		if err != nil {
			log.Printf("Warning: failed to create enterprise %s: %v", data.LegalName, err)
			continue
		}
		if ok {
			created++
		}
	}
	log.Printf("Enterprises: %d created, %d total", created, len(enterprises))
	return nil
}

func loadEnterprises(dataDir string) ([]EnterpriseData, error) {
	var all []EnterpriseData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "enterprises") {
			var file EnterprisesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			all = append(all, file.Enterprises...)
		}
		return nil
	})

	return all, err
}

// createEnterprise stores one fixture unless an enterprise with the same legal name exists
func createEnterprise(repo repository.EnterpriseRepositoryInterface, jobs *scheduler.Scheduler, baseDomain string, data EnterpriseData) (bool, error) {
	exists, err := repo.ExistsByLegalName(data.LegalName)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	status := models.StatusStarted
	if data.Status != "" {
		status = models.RegistrationStatus(data.Status)
		if !status.IsValid() {
			return false, fmt.Errorf("unknown status %q", data.Status)
		}
	}

	enterprise := &models.Enterprise{
		LegalName:               data.LegalName,
		Email:                   data.Email,
		SubDomainName:           service.SubDomainFor(data.SubDomainName, baseDomain),
		LegalRegistrationNumber: data.LegalRegistrationNumber,
		LegalRegistrationType:   data.LegalRegistrationType,
		HeadquarterAddress:      data.HeadquarterAddress,
		LegalAddress:            data.LegalAddress,
		Status:                  status,
		ConnectionID:            data.ConnectionID,
	}

	var job *models.ScheduledJob
	if data.Schedule {
		if status != models.StatusStarted {
			return false, fmt.Errorf("only %s fixtures can be scheduled", models.StatusStarted)
		}
		job = jobs.NewJob(uuid.Nil, models.JobTypeDomain, 0)
	}
	if err := repo.CreateWithJob(enterprise, job); err != nil {
		return false, err
	}
	return true, nil
}
