package commands_test

import (
	"errors"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func inProgressShipment(t *testing.T, id kernel.UUID, dueAt time.Time) *shipment.Shipment {
	t.Helper()
	s, err := shipment.RestoreShipment(
		id, shipment.TypeNovaPost, "order-1", []string{"Book"},
		shipment.InProgress, time.Now().UTC(), dueAt)
	require.NoError(t, err)
	return s
}

func TestProcessShipmentBatchCommandHandler_Handle_ResolvesBothBranches(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewProcessShipmentBatchCommand(0)
	require.NoError(t, err)
	require.Equal(t, commands.DefaultBatchSize, cmd.BatchSize())

	overdueID := kernel.NewUUID()
	onTimeID := kernel.NewUUID()
	overdue := inProgressShipment(t, overdueID, time.Now().UTC().Add(-time.Minute))
	onTime := inProgressShipment(t, onTimeID, time.Now().UTC().Add(time.Hour))

	queue := new(MockShipmentQueue)
	queue.On("Poll", mock.Anything, commands.DefaultBatchSize).
		Return([]kernel.UUID{overdueID, onTimeID}, nil).Once()

	overdueRepo := new(MockShipmentRepository)
	overdueUoW := new(MockShipmentUoW)
	mock.InOrder(
		overdueUoW.On("Begin", ctx).Return(nil).Once(),
		overdueUoW.On("ShipmentRepository").Return(overdueRepo).Once(),
		overdueRepo.On("Get", mock.Anything, overdueID).Return(overdue, nil).Once(),
		overdueRepo.On("UpdateStatus", mock.Anything, overdueID, shipment.Failed).Return(nil).Once(),
		overdueUoW.On("Commit", ctx).Return(nil).Once(),
		overdueUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	onTimeRepo := new(MockShipmentRepository)
	onTimeUoW := new(MockShipmentUoW)
	mock.InOrder(
		onTimeUoW.On("Begin", ctx).Return(nil).Once(),
		onTimeUoW.On("ShipmentRepository").Return(onTimeRepo).Once(),
		onTimeRepo.On("Get", mock.Anything, onTimeID).Return(onTime, nil).Once(),
		onTimeRepo.On("UpdateStatus", mock.Anything, onTimeID, shipment.Completed).Return(nil).Once(),
		onTimeUoW.On("Commit", ctx).Return(nil).Once(),
		onTimeUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(overdueUoW).Once()
	factory.On("Create").Return(onTimeUoW).Once()

	h := commands.NewProcessShipmentBatchCommandHandler(factory, queue)
	resolutions, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Len(t, resolutions, 2)

	require.Equal(t, overdueID, resolutions[0].ShippingID)
	require.Equal(t, shipment.Failed, resolutions[0].Status)
	require.NoError(t, resolutions[0].Err)

	require.Equal(t, onTimeID, resolutions[1].ShippingID)
	require.Equal(t, shipment.Completed, resolutions[1].Status)
	require.NoError(t, resolutions[1].Err)

	queue.AssertExpectations(t)
	factory.AssertExpectations(t)
	overdueRepo.AssertExpectations(t)
	onTimeRepo.AssertExpectations(t)
}

func TestProcessShipmentBatchCommandHandler_Handle_EmptyQueue(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewProcessShipmentBatchCommand(5)
	require.NoError(t, err)

	queue := new(MockShipmentQueue)
	queue.On("Poll", mock.Anything, 5).Return([]kernel.UUID{}, nil).Once()

	factory := new(MockShipmentUoWFactory)

	h := commands.NewProcessShipmentBatchCommandHandler(factory, queue)
	resolutions, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Empty(t, resolutions)

	queue.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestProcessShipmentBatchCommandHandler_Handle_PollError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewProcessShipmentBatchCommand(5)
	require.NoError(t, err)

	queue := new(MockShipmentQueue)
	queue.On("Poll", mock.Anything, 5).Return(nil, errors.New("broker down")).Once()

	factory := new(MockShipmentUoWFactory)

	h := commands.NewProcessShipmentBatchCommandHandler(factory, queue)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)

	queue.AssertExpectations(t)
}

func TestProcessShipmentBatchCommandHandler_Handle_UnknownShipmentDoesNotStopBatch(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewProcessShipmentBatchCommand(5)
	require.NoError(t, err)

	unknownID := kernel.NewUUID()
	knownID := kernel.NewUUID()
	known := inProgressShipment(t, knownID, time.Now().UTC().Add(time.Hour))

	queue := new(MockShipmentQueue)
	queue.On("Poll", mock.Anything, 5).Return([]kernel.UUID{unknownID, knownID}, nil).Once()

	unknownRepo := new(MockShipmentRepository)
	unknownUoW := new(MockShipmentUoW)
	mock.InOrder(
		unknownUoW.On("Begin", ctx).Return(nil).Once(),
		unknownUoW.On("ShipmentRepository").Return(unknownRepo).Once(),
		unknownRepo.On("Get", mock.Anything, unknownID).
			Return(nil, errs.NewObjectNotFoundError("shipment", unknownID.String())).Once(),
		unknownUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	knownRepo := new(MockShipmentRepository)
	knownUoW := new(MockShipmentUoW)
	mock.InOrder(
		knownUoW.On("Begin", ctx).Return(nil).Once(),
		knownUoW.On("ShipmentRepository").Return(knownRepo).Once(),
		knownRepo.On("Get", mock.Anything, knownID).Return(known, nil).Once(),
		knownRepo.On("UpdateStatus", mock.Anything, knownID, shipment.Completed).Return(nil).Once(),
		knownUoW.On("Commit", ctx).Return(nil).Once(),
		knownUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(unknownUoW).Once()
	factory.On("Create").Return(knownUoW).Once()

	h := commands.NewProcessShipmentBatchCommandHandler(factory, queue)
	resolutions, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Len(t, resolutions, 2)

	var notFoundErr *errs.ObjectNotFoundError
	require.ErrorAs(t, resolutions[0].Err, &notFoundErr)
	require.Equal(t, shipment.Unknown, resolutions[0].Status)

	require.NoError(t, resolutions[1].Err)
	require.Equal(t, shipment.Completed, resolutions[1].Status)

	queue.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestNewProcessShipmentBatchCommand_NegativeBatchSize(t *testing.T) {
	_, err := commands.NewProcessShipmentBatchCommand(-1)
	require.Error(t, err)
}

func TestProcessShipmentBatchCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ProcessShipmentBatchCommand{} // not constructed properly

	h := commands.NewProcessShipmentBatchCommandHandler(new(MockShipmentUoWFactory), new(MockShipmentQueue))
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrProcessShipmentBatchCommandIsNotConstructed)
}
