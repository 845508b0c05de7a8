package commands_test

import (
	"testing"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderFieldCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, order.CategoryB2C)

	cmd, err := commands.NewUpdateOrderFieldCommand(stored.ID(), order.FieldCategory, "B2G")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderFieldCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, order.CategoryB2G, stored.Category())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderFieldCommandHandler_Handle_ParseError(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, order.CategoryB2C)

	cmd, err := commands.NewUpdateOrderFieldCommand(stored.ID(), order.FieldCreditDays, "not-a-number")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderFieldCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateOrderFieldCommandHandler_Handle_UnknownField(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, order.CategoryB2C)

	cmd, err := commands.NewUpdateOrderFieldCommand(stored.ID(), order.Field("dispatchStatus"), "Dispatched")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderFieldCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an editable field")
}

func TestUpdateOrderFieldCommand_Validation(t *testing.T) {
	stored := newStoredOrder(t, order.CategoryB2C)

	_, err := commands.NewUpdateOrderFieldCommand(stored.ID(), "", "value")
	require.ErrorIs(t, err, commands.ErrFieldNameIsRequired)

	var cmd commands.UpdateOrderFieldCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrUpdateOrderFieldCommandIsNotConstructed)
}
