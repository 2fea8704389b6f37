package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/status"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateStatusCommand(t *testing.T) {
	t.Run("valid root", func(t *testing.T) {
		cmd, err := commands.NewCreateStatusCommand("Created", "order placed", true, nil)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "Created", cmd.Label())
		assert.Equal(t, "order placed", cmd.Description())
		assert.True(t, cmd.VisibleToCustomer())
		assert.Nil(t, cmd.DependsOn())
	})

	t.Run("valid child", func(t *testing.T) {
		cmd, err := commands.NewCreateStatusCommand("Out for delivery", "", false, idPtr(20))
		require.NoError(t, err)
		assert.Equal(t, kernel.ID(20), *cmd.DependsOn())
	})

	t.Run("missing label", func(t *testing.T) {
		_, err := commands.NewCreateStatusCommand("", "", false, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid parent", func(t *testing.T) {
		_, err := commands.NewCreateStatusCommand("X", "", false, idPtr(0))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		err := commands.CreateStatusCommand{}.Validate()
		require.ErrorIs(t, err, commands.ErrCreateStatusCommandIsNotConstructed)
	})
}

func TestNewUpdateStatusCommand(t *testing.T) {
	label := "Packed"

	cmd, err := commands.NewUpdateStatusCommand(20, status.Patch{Label: &label})
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, kernel.ID(20), cmd.StatusID())
	assert.Equal(t, &label, cmd.Patch().Label)

	_, err = commands.NewUpdateStatusCommand(0, status.Patch{})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewUpdateStatusCommand(20, status.Patch{DependsOn: idPtr(-3)})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	require.ErrorIs(t, commands.UpdateStatusCommand{}.Validate(), commands.ErrUpdateStatusCommandIsNotConstructed)
}

func TestNewRemoveStatusCommand(t *testing.T) {
	cmd, err := commands.NewRemoveStatusCommand(20)
	require.NoError(t, err)
	assert.Equal(t, kernel.ID(20), cmd.StatusID())

	_, err = commands.NewRemoveStatusCommand(status.CancelSentinelID)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, errs.KindBadRequest, errs.KindOf(err))

	require.ErrorIs(t, commands.RemoveStatusCommand{}.Validate(), commands.ErrRemoveStatusCommandIsNotConstructed)
}

func TestNewCancelOrderItemCommand(t *testing.T) {
	cmd, err := commands.NewCancelOrderItemCommand(42, 20, 7)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, kernel.ID(42), cmd.OrderItemID())
	assert.Equal(t, kernel.ID(20), cmd.StatusID())
	assert.Equal(t, kernel.ID(7), cmd.ActorID())

	_, err = commands.NewCancelOrderItemCommand(0, 20, 7)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewCancelOrderItemCommand(42, 20, 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	require.ErrorIs(t, commands.CancelOrderItemCommand{}.Validate(), commands.ErrCancelOrderItemCommandIsNotConstructed)
}

func TestNewCompleteOrderItemCommand(t *testing.T) {
	cmd, err := commands.NewCompleteOrderItemCommand(42)
	require.NoError(t, err)
	assert.Equal(t, kernel.ID(42), cmd.OrderItemID())

	_, err = commands.NewCompleteOrderItemCommand(-1)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewRecordProgressCommand(t *testing.T) {
	cmd, err := commands.NewRecordProgressCommand(42, 20, 7)
	require.NoError(t, err)
	assert.Equal(t, kernel.ID(20), cmd.StatusID())

	_, err = commands.NewRecordProgressCommand(42, status.CancelSentinelID, 7)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	require.ErrorIs(t, commands.RecordProgressCommand{}.Validate(), commands.ErrRecordProgressCommandIsNotConstructed)
}

func TestNewAssignOrderItemCommand(t *testing.T) {
	at := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

	cmd, err := commands.NewAssignOrderItemCommand(42, 9, &at)
	require.NoError(t, err)
	assert.Equal(t, kernel.ID(9), cmd.AssigneeID())
	require.NotNil(t, cmd.ExpectedBy())
	assert.True(t, at.Equal(*cmd.ExpectedBy()))

	at = at.Add(time.Hour)
	assert.False(t, at.Equal(*cmd.ExpectedBy()), "command keeps its own copy")

	cmd, err = commands.NewAssignOrderItemCommand(42, 9, nil)
	require.NoError(t, err)
	assert.Nil(t, cmd.ExpectedBy())

	_, err = commands.NewAssignOrderItemCommand(42, 0, nil)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
