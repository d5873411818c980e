package app

import (
	"testing"

	"postl-admin-backend/internal/config"
	"postl-admin-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restConfig() *config.Config {
	return &config.Config{
		SupabaseURL:                "https://project.supabase.co",
		SupabaseAnonKey:            "sb_publishable_test",
		StoreDriver:                config.StoreDriverREST,
		TenantsTable:               "tenants",
		ProfilesTable:              "profiles",
		DefaultTenantPassword:      "123456",
		DefaultContractYears:       1,
		Timezone:                   "UTC",
		CompensateOrphanedAccounts: true,
	}
}

func TestNew_RESTStore(t *testing.T) {
	a, err := New(restConfig())
	require.NoError(t, err)

	assert.IsType(t, &repository.TenantRESTRepository{}, a.Tenants)
	assert.IsType(t, &repository.ProfileRESTRepository{}, a.Profiles)
	assert.NotNil(t, a.Identity)
	require.NotNil(t, a.TenantService)

	form := a.TenantService.Defaults()
	assert.Equal(t, "123456", form.Password)

	assert.NoError(t, a.Close())
}

func TestNew_MissingBackendURL(t *testing.T) {
	cfg := restConfig()
	cfg.SupabaseURL = ""

	_, err := New(cfg)

	assert.Error(t, err)
}

func TestNew_InvalidTimezone(t *testing.T) {
	cfg := restConfig()
	cfg.Timezone = "Mars/Olympus_Mons"

	_, err := New(cfg)

	assert.Error(t, err)
}
