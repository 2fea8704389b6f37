package statusrepo_test

import (
	"context"
	"testing"

	"fulfillment/internal/adapters/out/postgres/pgtest"
	"fulfillment/internal/adapters/out/postgres/statusrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/status"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idPtr(id kernel.ID) *kernel.ID {
	return &id
}

func parentID(id int64) *int64 {
	return &id
}

func Test_GormStatusRepository_AddAndGet(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := statusrepo.NewGormStatusRepository(pgtest.OpenSQLite(t))

	root, err := status.NewStatus("Packing", "items are packed", true, nil)
	require.NoError(t, err)

	// Act
	stored, err := repo.Add(ctx, root)
	require.NoError(t, err)

	child, err := status.NewStatus("Labelled", "", false, idPtr(stored.ID()))
	require.NoError(t, err)
	storedChild, err := repo.Add(ctx, child)
	require.NoError(t, err)

	// Assert
	assert.Greater(t, stored.ID().Int64(), status.CancelSentinelID.Int64())

	got, err := repo.Get(ctx, storedChild.ID())
	require.NoError(t, err)
	assert.Equal(t, "Labelled", got.Label())
	assert.False(t, got.VisibleToCustomer())
	require.NotNil(t, got.DependsOn())
	assert.Equal(t, stored.ID(), *got.DependsOn())
}

func Test_GormStatusRepository_SentinelIsSeeded(t *testing.T) {
	repo := statusrepo.NewGormStatusRepository(pgtest.OpenSQLite(t))

	got, err := repo.Get(context.Background(), status.CancelSentinelID)

	require.NoError(t, err)
	assert.Equal(t, "Cancelled", got.Label())
	assert.True(t, got.IsSentinel())
}

func Test_GormStatusRepository_GetUnknownIsNotFound(t *testing.T) {
	repo := statusrepo.NewGormStatusRepository(pgtest.OpenSQLite(t))

	_, err := repo.Get(context.Background(), 404)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func Test_GormStatusRepository_Update(t *testing.T) {
	// Arrange
	ctx := context.Background()
	db := pgtest.OpenSQLite(t)
	pgtest.Status(t, db, 10, "Packing", nil)
	pgtest.Status(t, db, 11, "Labelled", parentID(10))
	repo := statusrepo.NewGormStatusRepository(db)

	s, err := repo.Get(ctx, 11)
	require.NoError(t, err)
	label := "Label printed"
	require.NoError(t, s.Apply(status.Patch{Label: &label, ClearDependsOn: true}))

	// Act
	err = repo.Update(ctx, s)

	// Assert
	require.NoError(t, err)
	got, err := repo.Get(ctx, 11)
	require.NoError(t, err)
	assert.Equal(t, "Label printed", got.Label())
	assert.True(t, got.IsRoot())
}

func Test_GormStatusRepository_UpdateUnknownIsNotFound(t *testing.T) {
	repo := statusrepo.NewGormStatusRepository(pgtest.OpenSQLite(t))
	s, err := status.RestoreStatus(404, "Ghost", "", true, nil)
	require.NoError(t, err)

	err = repo.Update(context.Background(), s)

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func Test_GormStatusRepository_GetManyAndExists(t *testing.T) {
	ctx := context.Background()
	db := pgtest.OpenSQLite(t)
	pgtest.Status(t, db, 10, "Packing", nil)
	pgtest.Status(t, db, 20, "Shipped", nil)
	repo := statusrepo.NewGormStatusRepository(db)

	found, err := repo.GetMany(ctx, []kernel.ID{10, 20, 30})
	require.NoError(t, err)
	assert.Len(t, found, 2)
	assert.Equal(t, "Shipped", found[20].Label())
	assert.NotContains(t, found, kernel.ID(30))

	empty, err := repo.GetMany(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	exists, err := repo.Exists(ctx, 10)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, 30)
	require.NoError(t, err)
	assert.False(t, exists)
}

func Test_GormStatusRepository_Remove(t *testing.T) {
	tests := []struct {
		name    string
		id      kernel.ID
		wantErr error
	}{
		{name: "leaf is removed", id: 11},
		{name: "node with dependants is a conflict", id: 10, wantErr: errs.ErrConflict},
		{name: "unknown node is not found", id: 404, wantErr: errs.ErrObjectNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			ctx := context.Background()
			db := pgtest.OpenSQLite(t)
			pgtest.Status(t, db, 10, "Packing", nil)
			pgtest.Status(t, db, 11, "Labelled", parentID(10))
			repo := statusrepo.NewGormStatusRepository(db)

			// Act
			err := repo.Remove(ctx, tt.id)

			// Assert
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			exists, err := repo.Exists(ctx, tt.id)
			require.NoError(t, err)
			assert.False(t, exists)
		})
	}
}

func Test_GormStatusRepository_ListBranches(t *testing.T) {
	// Arrange
	ctx := context.Background()
	db := pgtest.OpenSQLite(t)
	pgtest.Status(t, db, 2, "R1", nil)
	pgtest.Status(t, db, 3, "R2", nil)
	pgtest.Status(t, db, 4, "C1", parentID(2))
	pgtest.Status(t, db, 5, "G1", parentID(4))
	pgtest.Status(t, db, 6, "C2", parentID(2))
	repo := statusrepo.NewGormStatusRepository(db)

	// Act
	branches, err := repo.ListBranches(ctx)

	// Assert
	require.NoError(t, err)
	require.Len(t, branches, 2)
	assert.Equal(t, kernel.ID(2), branches[0].Root.ID())
	require.Len(t, branches[0].Children, 2)
	assert.Equal(t, kernel.ID(4), branches[0].Children[0].ID())
	assert.Equal(t, kernel.ID(6), branches[0].Children[1].ID())
	assert.Equal(t, kernel.ID(3), branches[1].Root.ID())
	assert.Empty(t, branches[1].Children)

	labels := make([]string, 0)
	for _, s := range status.Flatten(branches) {
		labels = append(labels, s.Label())
	}
	assert.Equal(t, []string{"R1", "C1", "C2", "R2"}, labels)
}
