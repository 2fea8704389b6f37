package rolerepo_test

import (
	"context"
	"testing"

	"fulfillment/internal/adapters/out/postgres/pgtest"
	"fulfillment/internal/adapters/out/postgres/rolerepo"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GormRoleRepository_GetAll(t *testing.T) {
	// Arrange
	db := pgtest.OpenSQLite(t)
	pgtest.Role(t, db, 3, "packer", 20, 10)
	pgtest.Role(t, db, 1, "admin")
	pgtest.Role(t, db, 2, "driver", 30)
	repo := rolerepo.NewGormRoleRepository(db)

	// Act
	roles, err := repo.GetAll(context.Background())

	// Assert
	require.NoError(t, err)
	require.Len(t, roles, 3)
	assert.Equal(t, kernel.ID(1), roles[0].ID())
	assert.True(t, roles[0].SeesEverything())
	assert.Equal(t, "driver", roles[1].Name())
	assert.Equal(t, []kernel.ID{20, 10}, roles[2].Capabilities())
	assert.True(t, roles[2].CanView(10))
	assert.False(t, roles[2].CanView(30))
}

func Test_GormRoleRepository_GetAllEmpty(t *testing.T) {
	repo := rolerepo.NewGormRoleRepository(pgtest.OpenSQLite(t))

	roles, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, roles)
}
