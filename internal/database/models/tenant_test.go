package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenantUnmarshalJSON_TimestampColumns(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{name: "timestamptz", value: `"2024-01-01T08:30:00+02:00"`, want: time.Date(2024, 1, 1, 6, 30, 0, 0, time.UTC)},
		{name: "timestamptz fractional", value: `"2024-01-01T08:30:00.123456+00:00"`, want: time.Date(2024, 1, 1, 8, 30, 0, 123456000, time.UTC)},
		{name: "timestamp without time zone", value: `"2024-01-01T00:00:00"`, want: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "space separated", value: `"2024-01-01 12:00:00"`, want: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)},
		{name: "date", value: `"2024-01-01"`, want: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "null", value: `null`},
		{name: "garbage", value: `"next tuesday"`, wantErr: true},
		{name: "number", value: `20240101`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tenant Tenant
			err := json.Unmarshal([]byte(`{"name":"Kopi","active":true,"expired_at":`+tt.value+`}`), &tenant)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(tenant.ExpiredAt), "got %s", tenant.ExpiredAt)
			assert.Equal(t, "Kopi", tenant.Name)
			assert.True(t, tenant.Active)
		})
	}
}

func TestTenantUnmarshalJSON_AllDateFields(t *testing.T) {
	body := `{
		"id": "6f1c2a52-8c1e-4a8e-9a55-0f6f2b7f6d10",
		"name": "Warung Sari",
		"start_date": "2024-01-01",
		"expired_at": "2024-12-31T00:00:00",
		"created_at": "2023-12-30T10:00:00Z",
		"owner_id": null
	}`

	var tenant Tenant
	require.NoError(t, json.Unmarshal([]byte(body), &tenant))

	assert.Equal(t, "6f1c2a52-8c1e-4a8e-9a55-0f6f2b7f6d10", tenant.ID.String())
	assert.True(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Equal(tenant.StartDate))
	assert.True(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC).Equal(tenant.ExpiredAt))
	assert.True(t, time.Date(2023, 12, 30, 10, 0, 0, 0, time.UTC).Equal(tenant.CreatedAt))
	assert.Nil(t, tenant.OwnerID)
}

func TestTenantJSONRoundTripKeepsInstant(t *testing.T) {
	in := Tenant{
		Name:      "Toko Maju",
		StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		ExpiredAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Active:    true,
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out Tenant
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, in.ExpiredAt.Equal(out.ExpiredAt))
	assert.True(t, in.StartDate.Equal(out.StartDate))
	assert.Equal(t, in.Name, out.Name)
}
