package postgres

import (
	"context"
	"strings"
	"testing"

	"servicemap/internal/domain/entity"
	domainerrors "servicemap/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type capturedQuery struct {
	sql  string
	vars []any
}

// newDryRunDB builds SQL against the postgres dialect without a server.
func newDryRunDB(t *testing.T) (*gorm.DB, *capturedQuery) {
	t.Helper()

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		DSN: "host=127.0.0.1 user=servicemap dbname=servicemap sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)

	captured := &capturedQuery{}
	err = db.Callback().Query().After("gorm:query").Register("test:capture_sql", func(tx *gorm.DB) {
		captured.sql = tx.Statement.SQL.String()
		captured.vars = tx.Statement.Vars
	})
	require.NoError(t, err)

	return db, captured
}

func TestServiceLocationRepository_FindServiceLocations_SQL(t *testing.T) {
	t.Run("category filter, soft delete scope and directory order", func(t *testing.T) {
		db, captured := newDryRunDB(t)
		repo := NewServiceLocationRepository(db)

		locations, err := repo.FindServiceLocations(context.Background(), []entity.Category{entity.CategoryDorm})

		require.NoError(t, err)
		assert.Empty(t, locations)

		sql := captured.sql
		assert.True(t, strings.HasPrefix(sql, "SELECT "), sql)
		assert.Contains(t, sql, `FROM "service_locations"`)
		assert.Contains(t, sql, `"category" IN ($1)`)
		assert.Contains(t, sql, `"deleted_at" IS NULL`)
		assert.Equal(t, []any{"dorm"}, captured.vars)

		orderBy := strings.Index(sql, "ORDER BY")
		require.NotEqual(t, -1, orderBy, sql)
		sortOrder := strings.Index(sql[orderBy:], `"sort_order" ASC`)
		createdAt := strings.Index(sql[orderBy:], `"created_at" ASC`)
		require.NotEqual(t, -1, sortOrder, sql)
		require.NotEqual(t, -1, createdAt, sql)
		assert.Less(t, sortOrder, createdAt)
	})

	t.Run("several categories bind one parameter each", func(t *testing.T) {
		db, captured := newDryRunDB(t)
		repo := NewServiceLocationRepository(db)

		_, err := repo.FindServiceLocations(context.Background(), []entity.Category{entity.CategoryDorm, entity.CategoryLibrary})

		require.NoError(t, err)
		assert.Contains(t, captured.sql, `"category" IN ($1,$2)`)
		assert.Equal(t, []any{"dorm", "library"}, captured.vars)
	})

	t.Run("no categories selects everything", func(t *testing.T) {
		db, captured := newDryRunDB(t)
		repo := NewServiceLocationRepository(db)

		_, err := repo.FindServiceLocations(context.Background(), nil)

		require.NoError(t, err)
		assert.NotContains(t, captured.sql, " IN ")
		assert.Contains(t, captured.sql, `"deleted_at" IS NULL`)
		assert.Empty(t, captured.vars)
	})
}

func TestServiceLocationRepository_FindServiceLocations_DatabaseError(t *testing.T) {
	db, _ := newDryRunDB(t)
	driverErr := errors.New("relation \"service_locations\" does not exist")
	err := db.Callback().Query().Before("gorm:query").Register("test:fail_query", func(tx *gorm.DB) {
		_ = tx.AddError(driverErr)
	})
	require.NoError(t, err)

	repo := NewServiceLocationRepository(db)

	locations, err := repo.FindServiceLocations(context.Background(), nil)

	assert.Nil(t, locations)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	assert.ErrorIs(t, err, driverErr)
}
