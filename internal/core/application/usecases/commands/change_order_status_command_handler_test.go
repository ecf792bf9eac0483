package commands_test

import (
	"context"
	"testing"

	"appraise/internal/core/application/usecases/commands"
	"appraise/internal/core/domain/model/order"
	"appraise/internal/core/domain/model/user"
	"appraise/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeOrderStatusCommandHandler(t *testing.T) {
	ctx := context.Background()
	appraiserID := int64(5)

	newHandler := func(uow *fakeUnitOfWork, publisher *capturePublisher) commands.ChangeOrderStatusCommandHandler {
		return commands.NewChangeOrderStatusCommandHandler(fakeOrderUoWFactory{uow}, publisher)
	}

	t.Run("appraiser claims order in search", func(t *testing.T) {
		uow := newFakeUnitOfWork()
		publisher := &capturePublisher{}
		seeded := seedOrder(t, uow, 1, order.AppraiserSearch, nil, nil)

		cmd, err := commands.NewChangeOrderStatusCommand(seeded.ID(), order.Assigned, appraiserID, user.Appraiser)
		require.NoError(t, err)

		changed, err := newHandler(uow, publisher).Handle(ctx, cmd)
		require.NoError(t, err)

		assert.Equal(t, order.Assigned, changed.Status())
		require.NotNil(t, changed.AppraiserID())
		assert.Equal(t, appraiserID, *changed.AppraiserID())

		require.Len(t, publisher.statusChanged, 1)
		event := publisher.statusChanged[0]
		assert.Equal(t, order.Assigned, event.Status)
		require.NotNil(t, event.AppraiserID)
		assert.Equal(t, appraiserID, *event.AppraiserID)
	})

	t.Run("done without report fails with invalid state", func(t *testing.T) {
		uow := newFakeUnitOfWork()
		publisher := &capturePublisher{}
		seeded := seedOrder(t, uow, 1, order.InProgress, &appraiserID, nil)

		cmd, err := commands.NewChangeOrderStatusCommand(seeded.ID(), order.Done, appraiserID, user.Appraiser)
		require.NoError(t, err)

		_, err = newHandler(uow, publisher).Handle(ctx, cmd)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Zero(t, uow.committed)
		assert.Empty(t, publisher.statusChanged)
	})

	t.Run("foreign appraiser is unauthorized", func(t *testing.T) {
		uow := newFakeUnitOfWork()
		publisher := &capturePublisher{}
		seeded := seedOrder(t, uow, 1, order.Assigned, &appraiserID, nil)

		cmd, err := commands.NewChangeOrderStatusCommand(seeded.ID(), order.InProgress, 99, user.Appraiser)
		require.NoError(t, err)

		_, err = newHandler(uow, publisher).Handle(ctx, cmd)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("transition on final state is rejected", func(t *testing.T) {
		uow := newFakeUnitOfWork()
		publisher := &capturePublisher{}
		reportID := int64(3)
		seeded := seedOrder(t, uow, 1, order.Done, &appraiserID, &reportID)

		cmd, err := commands.NewChangeOrderStatusCommand(seeded.ID(), order.InProgress, appraiserID, user.Appraiser)
		require.NoError(t, err)

		_, err = newHandler(uow, publisher).Handle(ctx, cmd)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("missing order is not found", func(t *testing.T) {
		uow := newFakeUnitOfWork()
		publisher := &capturePublisher{}

		cmd, err := commands.NewChangeOrderStatusCommand(404, order.Paid, 1, user.Client)
		require.NoError(t, err)

		_, err = newHandler(uow, publisher).Handle(ctx, cmd)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestAssignOrderCommandHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns appraiser to order in assigned status", func(t *testing.T) {
		uow := newFakeUnitOfWork()
		publisher := &capturePublisher{}
		previous := int64(4)
		seeded := seedOrder(t, uow, 1, order.Assigned, &previous, nil)

		cmd, err := commands.NewAssignOrderCommand(seeded.ID(), 9)
		require.NoError(t, err)

		handler := commands.NewAssignOrderCommandHandler(fakeOrderUoWFactory{uow}, publisher)
		assigned, err := handler.Handle(ctx, cmd)
		require.NoError(t, err)

		require.NotNil(t, assigned.AppraiserID())
		assert.Equal(t, int64(9), *assigned.AppraiserID())
		require.Len(t, publisher.statusChanged, 1)
	})

	t.Run("rejects order not in assigned status", func(t *testing.T) {
		uow := newFakeUnitOfWork()
		publisher := &capturePublisher{}
		seeded := seedOrder(t, uow, 1, order.Paid, nil, nil)

		cmd, err := commands.NewAssignOrderCommand(seeded.ID(), 9)
		require.NoError(t, err)

		handler := commands.NewAssignOrderCommandHandler(fakeOrderUoWFactory{uow}, publisher)
		_, err = handler.Handle(ctx, cmd)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Empty(t, publisher.statusChanged)
	})
}

func TestStartAppraiserSearchCommandHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("advances created order", func(t *testing.T) {
		uow := newFakeUnitOfWork()
		seeded := seedOrder(t, uow, 1, order.Created, nil, nil)

		cmd, err := commands.NewStartAppraiserSearchCommand(seeded.ID())
		require.NoError(t, err)

		handler := commands.NewStartAppraiserSearchCommandHandler(fakeOrderUoWFactory{uow})
		require.NoError(t, handler.Handle(ctx, cmd))

		persisted, err := uow.orders.Get(ctx, seeded.ID())
		require.NoError(t, err)
		assert.Equal(t, order.AppraiserSearch, persisted.Status())
	})

	t.Run("cannot rewind a later state", func(t *testing.T) {
		uow := newFakeUnitOfWork()
		appraiserID := int64(5)
		seeded := seedOrder(t, uow, 1, order.InProgress, &appraiserID, nil)

		cmd, err := commands.NewStartAppraiserSearchCommand(seeded.ID())
		require.NoError(t, err)

		handler := commands.NewStartAppraiserSearchCommandHandler(fakeOrderUoWFactory{uow})
		err = handler.Handle(ctx, cmd)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)

		persisted, err := uow.orders.Get(ctx, seeded.ID())
		require.NoError(t, err)
		assert.Equal(t, order.InProgress, persisted.Status())
	})
}
