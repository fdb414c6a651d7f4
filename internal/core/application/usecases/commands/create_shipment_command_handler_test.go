package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/agency"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func activeAgency(t *testing.T, id kernel.UUID) *agency.Agency {
	t.Helper()
	a, err := agency.NewAgency(id, "Acme Logistics", "ops@acme.example", "+1-555-0100", "1 Depot Rd", 10, 1000)
	require.NoError(t, err)
	return a
}

func suspendedAgency(t *testing.T, id kernel.UUID) *agency.Agency {
	t.Helper()
	a := activeAgency(t, id)
	require.NoError(t, a.Suspend("unpaid invoices"))
	return a
}

func TestCreateShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	agencyID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(mustEmployee(agencyID), kernel.NewUUID(), agencyID, "spare parts")
	require.NoError(t, err)

	agencyRepo := new(MockAgencyRepository)
	agencyRepo.On("Get", mock.Anything, agencyID).Return(activeAgency(t, agencyID), nil).Once()

	shipmentRepo := new(MockShipmentRepository)
	shipmentRepo.On("CountByNumberPrefix", mock.Anything, mock.AnythingOfType("string")).Return(int64(0), nil).Once()
	shipmentRepo.On("ExistsByNumber", mock.Anything, mock.AnythingOfType("string")).Return(false, nil).Once()
	shipmentRepo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once()

	uow := new(MockShipmentUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AgencyRepository").Return(agencyRepo).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo).Once()
	uow.On("RegisterEvent", mock.Anything).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	agencyRepo.AssertExpectations(t)
	shipmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_SuspendedAgencyConsumesNoNumber(t *testing.T) {
	ctx := t.Context()
	agencyID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(mustEmployee(agencyID), kernel.NewUUID(), agencyID, "spare parts")
	require.NoError(t, err)

	agencyRepo := new(MockAgencyRepository)
	agencyRepo.On("Get", mock.Anything, agencyID).Return(suspendedAgency(t, agencyID), nil).Once()

	uow := new(MockShipmentUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AgencyRepository").Return(agencyRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
	// The number generator must never run for a blocked agency.
	uow.AssertNotCalled(t, "ShipmentRepository")
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_WrongTenantDeniedBeforeWork(t *testing.T) {
	ctx := t.Context()
	agencyID := kernel.NewUUID()
	otherAgencyID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(mustEmployee(otherAgencyID), kernel.NewUUID(), agencyID, "spare parts")
	require.NoError(t, err)

	factory := new(MockShipmentUoWFactory)

	h := commands.NewCreateShipmentCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrTenantViolation)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateShipmentCommandHandler_Handle_CustomerDenied(t *testing.T) {
	ctx := t.Context()
	agencyID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(mustCustomer(kernel.NewUUID()), kernel.NewUUID(), agencyID, "spare parts")
	require.NoError(t, err)

	factory := new(MockShipmentUoWFactory)

	h := commands.NewCreateShipmentCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrSecurityViolation)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateShipmentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockShipmentUoWFactory)

	h := commands.NewCreateShipmentCommandHandler(factory)
	err := h.Handle(ctx, commands.CreateShipmentCommand{})

	require.ErrorIs(t, err, commands.ErrCreateShipmentCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
