package app

import (
	"fmt"

	"postl-admin-backend/internal/config"
	"postl-admin-backend/internal/database"
	"postl-admin-backend/internal/logger"
	"postl-admin-backend/internal/repository"
	"postl-admin-backend/internal/service"
	"postl-admin-backend/internal/supabase"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// App holds the wired components shared by the server and the seed script
type App struct {
	Config        *config.Config
	Tenants       repository.TenantRepositoryInterface
	Profiles      repository.ProfileRepositoryInterface
	Identity      *service.IdentityService
	TenantService *service.TenantService

	db *gorm.DB
}

// New wires the store selected by STORE_DRIVER, the identity client and the tenant service
func New(cfg *config.Config) (*App, error) {
	log := logger.New()

	checkKeys(cfg)

	adminClient, err := supabase.NewClient(cfg.SupabaseURL, cfg.AdminKey(), cfg.BackendTimeout())
	if err != nil {
		return nil, fmt.Errorf("failed to create admin backend client: %w", err)
	}

	a := &App{Config: cfg, Identity: service.NewIdentityService(adminClient)}

	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		db, err := database.Initialize(cfg.DatabaseURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		a.db = db
		a.Tenants = repository.NewTenantRepository(db)
		a.Profiles = repository.NewProfileRepository(db)
	default:
		publicClient, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseAnonKey, cfg.BackendTimeout())
		if err != nil {
			return nil, fmt.Errorf("failed to create backend client: %w", err)
		}
		a.Tenants = repository.NewTenantRESTRepository(publicClient, cfg.TenantsTable)
		a.Profiles = repository.NewProfileRESTRepository(adminClient, cfg.ProfilesTable)
	}
	log.WithField("store_driver", cfg.StoreDriver).Info("Tenant store initialized")

	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("invalid timezone: %w", err)
	}

	a.TenantService = service.NewTenantService(a.Tenants, a.Profiles, a.Identity, validator.New(), service.TenantServiceConfig{
		DefaultPassword:            cfg.DefaultTenantPassword,
		ContractYears:              cfg.DefaultContractYears,
		Location:                   loc,
		CompensateOrphanedAccounts: cfg.CompensateOrphanedAccounts,
		ReconcileTimeout:           cfg.ReconcileTimeout(),
	})

	return a, nil
}

// Close waits for pending corrections and releases the database connection
func (a *App) Close() error {
	a.TenantService.Wait()

	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// checkKeys warns about key misconfiguration; the backend has the final say
func checkKeys(cfg *config.Config) {
	log := logger.New()

	if role, err := supabase.KeyRole(cfg.SupabaseAnonKey); err != nil {
		log.WithError(err).Warn("Could not read the role of SUPABASE_ANON_KEY")
	} else if role == supabase.RoleServiceRole {
		log.Warn("SUPABASE_ANON_KEY is a service_role key; tenant access will bypass row level security")
	}

	if !cfg.HasServiceKey() {
		log.Warn("No service key configured; account creation and password resets will be rejected")
		return
	}
	role, err := supabase.KeyRole(cfg.ServiceKey())
	if err != nil {
		log.WithError(err).Warn("Could not read the role of the service key")
		return
	}
	if role != supabase.RoleServiceRole {
		log.WithField("role", role).Warn("Service key does not carry the service_role role")
	}
}
