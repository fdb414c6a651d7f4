package commands_test

import (
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingCustomerShipment(t *testing.T, agencyID, customerID kernel.UUID) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewCustomerShipment(
		kernel.NewUUID(), agencyID,
		"SHP-20260829-A1B-000001", "spare parts",
		customerID, kernel.NewUUID(), time.Now())
	require.NoError(t, err)
	return s
}

func TestCancelCustomerShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cancelled := pendingCustomerShipment(t, kernel.NewUUID(), customerID)

	cmd, err := commands.NewCancelCustomerShipmentCommand(mustCustomer(customerID), cancelled.ID())
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	shipmentRepo.On("Get", mock.Anything, cancelled.ID()).Return(cancelled, nil).Once()
	shipmentRepo.On("Delete", mock.Anything, cancelled.ID()).Return(nil).Once()

	uow := new(MockShipmentUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo).Once()
	uow.On("RegisterEvent", mock.AnythingOfType("events.ShipmentCancelled")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelCustomerShipmentCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	shipmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelCustomerShipmentCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()
	cancelled := pendingCustomerShipment(t, kernel.NewUUID(), kernel.NewUUID())

	cmd, err := commands.NewCancelCustomerShipmentCommand(mustCustomer(kernel.NewUUID()), cancelled.ID())
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	shipmentRepo.On("Get", mock.Anything, cancelled.ID()).Return(cancelled, nil).Once()

	uow := new(MockShipmentUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelCustomerShipmentCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrSecurityViolation)
	shipmentRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCancelCustomerShipmentCommandHandler_Handle_NoLongerModifiable(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cancelled := pendingCustomerShipment(t, kernel.NewUUID(), customerID)
	require.NoError(t, cancelled.MarkValidated(kernel.NewUUID(), time.Now()))

	cmd, err := commands.NewCancelCustomerShipmentCommand(mustCustomer(customerID), cancelled.ID())
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	shipmentRepo.On("Get", mock.Anything, cancelled.ID()).Return(cancelled, nil).Once()

	uow := new(MockShipmentUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelCustomerShipmentCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
	shipmentRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}
