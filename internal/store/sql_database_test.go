package store

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/climate-dashboard/internal/config"
)

func TestNewDB_PlaceholderFormatFollowsDriver(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		wantSQL string
	}{
		{
			name:    "postgres uses numbered placeholders",
			driver:  config.DriverPostgres,
			wantSQL: "SELECT id FROM climate_data WHERE id = $1 AND country = $2",
		},
		{
			name:    "sqlite uses question marks",
			driver:  config.DriverSQLite,
			wantSQL: "SELECT id FROM climate_data WHERE id = ? AND country = ?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, _, raw := newMockDB(t, tt.driver)
			defer raw.Close()

			query, args, err := db.builder.
				Select("id").
				From("climate_data").
				Where(sq.Eq{"id": 4}).
				Where(sq.Eq{"country": "India"}).
				ToSql()

			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, query)
			assert.Equal(t, []any{4, "India"}, args)
			assert.Equal(t, tt.driver, db.driver)
		})
	}
}
