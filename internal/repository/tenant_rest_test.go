package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"postl-admin-backend/internal/database/models"
	apperrors "postl-admin-backend/internal/errors"
	"postl-admin-backend/internal/supabase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func jsonResponse(status int, body string) *http.Response {
	resp := &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

func newRESTClient(t *testing.T, rt roundTripFunc) *supabase.Client {
	t.Helper()
	c, err := supabase.NewClient("https://project.supabase.co", "anon-key", time.Second)
	require.NoError(t, err)
	return c.WithHTTPClient(&http.Client{Transport: rt})
}

const tenantRow = `{
	"id": "6f1c1c9e-8a43-4c1b-9a55-0a4f0c0f9a11",
	"name": "Warung Kopi",
	"owner_name": "Rina",
	"email": "rina@kopi.example",
	"logo_url": null,
	"start_date": "2024-01-01T00:00:00+00:00",
	"expired_at": "2025-01-01T00:00:00+00:00",
	"active": true,
	"owner_id": "0d5e7a52-3c1f-4b7e-8f0a-2c9b5d1e4f33",
	"created_at": "2024-01-01T08:30:00.123456+00:00"
}`

func TestTenantREST_GetAll(t *testing.T) {
	rt := func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, http.MethodGet, req.Method)
		assert.Equal(t, "/rest/v1/tenants", req.URL.Path)
		assert.Equal(t, "*", req.URL.Query().Get("select"))
		assert.Equal(t, "created_at.desc", req.URL.Query().Get("order"))
		return jsonResponse(200, "["+tenantRow+"]"), nil
	}

	repo := NewTenantRESTRepository(newRESTClient(t, rt), "tenants")
	tenants, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, tenants, 1)
	tenant := tenants[0]
	assert.Equal(t, uuid.MustParse("6f1c1c9e-8a43-4c1b-9a55-0a4f0c0f9a11"), tenant.ID)
	assert.Equal(t, "Warung Kopi", tenant.Name)
	assert.Equal(t, "", tenant.LogoURL)
	assert.True(t, tenant.Active)
	require.NotNil(t, tenant.OwnerID)
	assert.Equal(t, "0d5e7a52-3c1f-4b7e-8f0a-2c9b5d1e4f33", tenant.OwnerID.String())
	assert.True(t, tenant.ExpiredAt.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestTenantREST_GetAll_Error(t *testing.T) {
	rt := func(*http.Request) (*http.Response, error) {
		return jsonResponse(401, `{"message":"Invalid API key"}`), nil
	}

	repo := NewTenantRESTRepository(newRESTClient(t, rt), "tenants")
	_, err := repo.GetAll(context.Background())

	require.Error(t, err)
	assert.True(t, apperrors.IsBackend(err))
	assert.Contains(t, err.Error(), "Invalid API key")
}

func TestTenantREST_GetByID(t *testing.T) {
	id := uuid.MustParse("6f1c1c9e-8a43-4c1b-9a55-0a4f0c0f9a11")

	t.Run("found", func(t *testing.T) {
		rt := func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "eq."+id.String(), req.URL.Query().Get("id"))
			return jsonResponse(200, "["+tenantRow+"]"), nil
		}
		repo := NewTenantRESTRepository(newRESTClient(t, rt), "tenants")

		tenant, err := repo.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, id, tenant.ID)
	})

	t.Run("not found", func(t *testing.T) {
		rt := func(*http.Request) (*http.Response, error) {
			return jsonResponse(200, `[]`), nil
		}
		repo := NewTenantRESTRepository(newRESTClient(t, rt), "tenants")

		_, err := repo.GetByID(context.Background(), id)
		assert.ErrorIs(t, err, apperrors.ErrTenantNotFound)
	})
}

func TestTenantREST_Create(t *testing.T) {
	ownerID := uuid.MustParse("0d5e7a52-3c1f-4b7e-8f0a-2c9b5d1e4f33")

	rt := func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "return=representation", req.Header.Get("Prefer"))

		var rows []map[string]interface{}
		require.NoError(t, json.NewDecoder(req.Body).Decode(&rows))
		require.Len(t, rows, 1)
		row := rows[0]
		assert.Equal(t, "Warung Kopi", row["name"])
		assert.Equal(t, true, row["active"])
		assert.Equal(t, ownerID.String(), row["owner_id"])
		assert.Equal(t, "2024-01-01T00:00:00Z", row["start_date"])
		assert.NotContains(t, row, "id")
		assert.NotContains(t, row, "logo_url")

		return jsonResponse(201, "["+tenantRow+"]"), nil
	}
	repo := NewTenantRESTRepository(newRESTClient(t, rt), "tenants")

	tenant := &models.Tenant{
		Name:      "Warung Kopi",
		OwnerName: "Rina",
		Email:     "rina@kopi.example",
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ExpiredAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Active:    true,
		OwnerID:   &ownerID,
	}
	err := repo.Create(context.Background(), tenant)

	require.NoError(t, err)
	assert.Equal(t, "6f1c1c9e-8a43-4c1b-9a55-0a4f0c0f9a11", tenant.ID.String())
	assert.False(t, tenant.CreatedAt.IsZero())
}

func TestTenantREST_Create_Rejected(t *testing.T) {
	rt := func(*http.Request) (*http.Response, error) {
		return jsonResponse(403, `{"code":"42501","message":"new row violates row-level security policy for table \"tenants\""}`), nil
	}
	repo := NewTenantRESTRepository(newRESTClient(t, rt), "tenants")

	err := repo.Create(context.Background(), &models.Tenant{Name: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row-level security")
}

func TestTenantREST_Update(t *testing.T) {
	id := uuid.MustParse("6f1c1c9e-8a43-4c1b-9a55-0a4f0c0f9a11")

	t.Run("partial body", func(t *testing.T) {
		rt := func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, http.MethodPatch, req.Method)
			assert.Equal(t, "eq."+id.String(), req.URL.Query().Get("id"))

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			assert.Equal(t, map[string]interface{}{"active": false}, body)

			return jsonResponse(200, "["+tenantRow+"]"), nil
		}
		repo := NewTenantRESTRepository(newRESTClient(t, rt), "tenants")

		err := repo.Update(context.Background(), id, map[string]interface{}{"active": false})
		assert.NoError(t, err)
	})

	t.Run("no matching row", func(t *testing.T) {
		rt := func(*http.Request) (*http.Response, error) {
			return jsonResponse(200, `[]`), nil
		}
		repo := NewTenantRESTRepository(newRESTClient(t, rt), "tenants")

		err := repo.Update(context.Background(), id, map[string]interface{}{"active": true})
		assert.ErrorIs(t, err, apperrors.ErrTenantNotFound)
	})
}

func TestTenantREST_Deactivate(t *testing.T) {
	id := uuid.MustParse("6f1c1c9e-8a43-4c1b-9a55-0a4f0c0f9a11")
	now := time.Date(2025, 1, 2, 9, 0, 0, 0, time.FixedZone("WIB", 7*3600))

	t.Run("filters on current state", func(t *testing.T) {
		rt := func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, http.MethodPatch, req.Method)
			q := req.URL.Query()
			assert.Equal(t, "eq."+id.String(), q.Get("id"))
			assert.Equal(t, "is.true", q.Get("active"))
			assert.Equal(t, "lt.2025-01-02T02:00:00Z", q.Get("expired_at"))
			assert.Equal(t, "return=representation", req.Header.Get("Prefer"))

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			assert.Equal(t, map[string]interface{}{"active": false}, body)

			return jsonResponse(200, "["+tenantRow+"]"), nil
		}
		repo := NewTenantRESTRepository(newRESTClient(t, rt), "tenants")

		changed, err := repo.Deactivate(context.Background(), id, now)
		require.NoError(t, err)
		assert.True(t, changed)
	})

	t.Run("row changed since fetch", func(t *testing.T) {
		rt := func(*http.Request) (*http.Response, error) {
			return jsonResponse(200, `[]`), nil
		}
		repo := NewTenantRESTRepository(newRESTClient(t, rt), "tenants")

		changed, err := repo.Deactivate(context.Background(), id, now)
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("backend error", func(t *testing.T) {
		rt := func(*http.Request) (*http.Response, error) {
			return jsonResponse(500, `{"message":"boom"}`), nil
		}
		repo := NewTenantRESTRepository(newRESTClient(t, rt), "tenants")

		changed, err := repo.Deactivate(context.Background(), id, now)
		assert.Error(t, err)
		assert.False(t, changed)
	})
}

func TestTenantREST_GetAll_NaiveTimestamps(t *testing.T) {
	row := `{
		"id": "6f1c1c9e-8a43-4c1b-9a55-0a4f0c0f9a11",
		"name": "Warung Kopi",
		"start_date": "2024-01-01",
		"expired_at": "2025-01-01T00:00:00",
		"active": true,
		"created_at": "2024-01-01 08:30:00.123456"
	}`
	rt := func(*http.Request) (*http.Response, error) {
		return jsonResponse(200, "["+row+"]"), nil
	}

	repo := NewTenantRESTRepository(newRESTClient(t, rt), "tenants")
	tenants, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, tenants, 1)
	assert.True(t, tenants[0].StartDate.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, tenants[0].ExpiredAt.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, tenants[0].CreatedAt.Equal(time.Date(2024, 1, 1, 8, 30, 0, 123456000, time.UTC)))
}

func TestTenantREST_Delete(t *testing.T) {
	id := uuid.MustParse("6f1c1c9e-8a43-4c1b-9a55-0a4f0c0f9a11")

	t.Run("removed", func(t *testing.T) {
		rt := func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, http.MethodDelete, req.Method)
			assert.Equal(t, "eq."+id.String(), req.URL.Query().Get("id"))
			return jsonResponse(200, "["+tenantRow+"]"), nil
		}
		repo := NewTenantRESTRepository(newRESTClient(t, rt), "tenants")
		assert.NoError(t, repo.Delete(context.Background(), id))
	})

	t.Run("already gone", func(t *testing.T) {
		rt := func(*http.Request) (*http.Response, error) {
			return jsonResponse(200, `[]`), nil
		}
		repo := NewTenantRESTRepository(newRESTClient(t, rt), "tenants")
		assert.ErrorIs(t, repo.Delete(context.Background(), id), apperrors.ErrTenantNotFound)
	})
}

func TestTenantREST_Ping(t *testing.T) {
	rt := func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "id", req.URL.Query().Get("select"))
		assert.Equal(t, "1", req.URL.Query().Get("limit"))
		return jsonResponse(200, `[]`), nil
	}
	repo := NewTenantRESTRepository(newRESTClient(t, rt), "")
	assert.NoError(t, repo.Ping(context.Background()))
}
