// Package pgtest opens migrated databases for adapter and query tests:
// an in-memory SQLite database per test, or a PostgreSQL container per suite.
package pgtest

import (
	"context"
	"fmt"
	"testing"
	"time"

	postgres_adapter "fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/actorrepo"
	"fulfillment/internal/adapters/out/postgres/orderitemrepo"
	"fulfillment/internal/adapters/out/postgres/rolerepo"
	"fulfillment/internal/adapters/out/postgres/statusrepo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenSQLite returns a migrated in-memory database private to t.
func OpenSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := postgres_adapter.Open(postgres_adapter.Settings{
		Driver:     postgres_adapter.DriverSQLite,
		SQLitePath: fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString()),
		LogLevel:   logger.Silent,
	})
	require.NoError(t, err)
	require.NoError(t, postgres_adapter.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// RunPostgres starts a PostgreSQL container and returns a migrated connection.
func RunPostgres(ctx context.Context) (*postgres.PostgresContainer, *gorm.DB, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	host, err := container.Host(ctx)
	if err != nil {
		return container, nil, err
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return container, nil, err
	}

	db, err := postgres_adapter.Open(postgres_adapter.Settings{
		Driver:   postgres_adapter.DriverPostgres,
		Host:     host,
		Port:     port.Port(),
		User:     "testuser",
		Password: "testpass",
		Name:     "testdb",
		SSLMode:  "disable",
		LogLevel: logger.Silent,
	})
	if err != nil {
		return container, nil, err
	}

	if err = postgres_adapter.Migrate(db); err != nil {
		return container, nil, err
	}
	return container, db, nil
}

// Reset empties every table except the seeded sentinel status.
func Reset(db *gorm.DB) error {
	for _, table := range []string{
		"order_history", "role_statuses", "roles", "users",
		"order_items", "workflow_steps", "workflows",
	} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	if err := db.Exec("UPDATE order_statuses SET depends_on_id = NULL").Error; err != nil {
		return err
	}
	return db.Exec("DELETE FROM order_statuses WHERE id <> 1").Error
}

// Status inserts a catalog row with an explicit ID.
func Status(t testing.TB, db *gorm.DB, id int64, label string, dependsOn *int64) {
	t.Helper()
	dto := statusrepo.StatusDTO{ID: id, Label: label, VisibleToCustomer: true, DependsOnID: dependsOn}
	require.NoError(t, db.Omit("Parent").Create(&dto).Error)
}

// OrderItem inserts a workflow template and an order item following it.
func OrderItem(t testing.TB, db *gorm.DB, id, orderID int64, lifecycle string, sequence ...int64) {
	t.Helper()
	workflow := orderitemrepo.WorkflowDTO{ID: id * 1000, Name: fmt.Sprintf("workflow-%d", id)}
	for i, statusID := range sequence {
		workflow.Steps = append(workflow.Steps, orderitemrepo.WorkflowStepDTO{Position: i + 1, StatusID: statusID})
	}
	require.NoError(t, db.Create(&workflow).Error)

	item := orderitemrepo.OrderItemDTO{ID: id, OrderID: orderID, WorkflowID: workflow.ID, Lifecycle: lifecycle}
	require.NoError(t, db.Omit("Workflow").Create(&item).Error)
}

// Role inserts a role with an ordered capability list.
func Role(t testing.TB, db *gorm.DB, id int64, name string, capabilities ...int64) {
	t.Helper()
	dto := rolerepo.RoleDTO{ID: id, Name: name}
	for i, statusID := range capabilities {
		dto.Capabilities = append(dto.Capabilities, rolerepo.RoleStatusDTO{Position: i + 1, StatusID: statusID})
	}
	require.NoError(t, db.Create(&dto).Error)
}

// User inserts an actor.
func User(t testing.TB, db *gorm.DB, id int64, name string) {
	t.Helper()
	require.NoError(t, db.Create(&actorrepo.UserDTO{ID: id, Name: name}).Error)
}
