package main

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"postl-admin-backend/internal/app"
	"postl-admin-backend/internal/config"
	"postl-admin-backend/internal/logger"
	"postl-admin-backend/internal/service"

	"gopkg.in/yaml.v3"
)

// TenantData mirrors the create form
type TenantData struct {
	Name      string `yaml:"name"`
	OwnerName string `yaml:"owner_name"`
	Email     string `yaml:"email"`
	Password  string `yaml:"password,omitempty"`
	StartDate string `yaml:"start_date,omitempty"`
	EndDate   string `yaml:"end_date,omitempty"`
}

type TenantsFile struct {
	Tenants []TenantData `yaml:"tenants"`
}

func main() {
	log.Println("🚀 Loading initial tenants from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.Setup(cfg.LogLevel)

	// Wire the store with retry (for dockerized Postgres startup)
	application, err := connectWithRetry(cfg, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			log.Printf("⚠️  Warning: failed to close application: %v", err)
		}
	}()

	if err := loadDataFromYAMLFiles(context.Background(), application, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial tenants loaded successfully!")
}

// connectWithRetry attempts to wire the application with retries to wait for Postgres readiness.
func connectWithRetry(cfg *config.Config, maxAttempts int, delay time.Duration) (*app.App, error) {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		application, err := app.New(cfg)
		if err == nil {
			return application, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Store not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("store not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(ctx context.Context, application *app.App, dataDir string) error {
	tenants, err := loadTenants(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load tenants: %w", err)
	}

	existing, err := application.Tenants.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list existing tenants: %w", err)
	}
	known := make(map[string]bool, len(existing))
	for _, t := range existing {
		known[strings.ToLower(t.Email)] = true
	}

	defaults := application.TenantService.Defaults()
	created := 0
	for _, td := range tenants {
		if known[strings.ToLower(td.Email)] {
			continue
		}

		req := &service.CreateTenantRequest{
			Name:      td.Name,
			OwnerName: td.OwnerName,
			Email:     td.Email,
			Password:  td.Password,
			StartDate: firstNonEmpty(td.StartDate, defaults.StartDate),
			EndDate:   firstNonEmpty(td.EndDate, defaults.EndDate),
		}
		if _, err := application.TenantService.Create(ctx, req); err != nil {
			log.Printf("⚠️  Warning: failed to create tenant %s: %v", td.Name, err)
			continue
		}
		known[strings.ToLower(td.Email)] = true
		created++
	}
	log.Printf("📋 Tenants: %d created, %d total", created, len(tenants))

	return nil
}

func loadTenants(dataDir string) ([]TenantData, error) {
	var all []TenantData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "tenants") {
			var file TenantsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			all = append(all, file.Tenants...)
		}
		return nil
	})

	return all, err
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
