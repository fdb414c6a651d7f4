package commands_test

import (
	"context"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/events"
	"logistics/internal/core/domain/model/agency"
	"logistics/internal/core/domain/model/auth"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

func mustPlatformAdmin() auth.Principal {
	principal, err := auth.NewPrincipal(kernel.NewUUID(), auth.ActorTypePlatformAdmin, nil, nil)
	if err != nil {
		panic(err)
	}
	return principal
}

func mustEmployee(agencyID kernel.UUID, roles ...string) auth.Principal {
	principal, err := auth.NewPrincipal(kernel.NewUUID(), auth.ActorTypeAgencyEmployee, &agencyID, roles)
	if err != nil {
		panic(err)
	}
	return principal
}

func mustCustomer(userID kernel.UUID) auth.Principal {
	principal, err := auth.NewPrincipal(userID, auth.ActorTypeCustomer, nil, nil)
	if err != nil {
		panic(err)
	}
	return principal
}

type MockAgencyRepository struct{ mock.Mock }

func (m *MockAgencyRepository) Add(ctx context.Context, a *agency.Agency) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAgencyRepository) Update(ctx context.Context, a *agency.Agency) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAgencyRepository) Get(ctx context.Context, id kernel.UUID) (*agency.Agency, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agency.Agency), args.Error(1)
}

func (m *MockAgencyRepository) GetAll(ctx context.Context) ([]*agency.Agency, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*agency.Agency), args.Error(1)
}

func (m *MockAgencyRepository) AddLocation(ctx context.Context, l *agency.AgencyLocation) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockAgencyRepository) UpdateLocation(ctx context.Context, l *agency.AgencyLocation) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockAgencyRepository) GetLocation(ctx context.Context, id kernel.UUID) (*agency.AgencyLocation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agency.AgencyLocation), args.Error(1)
}

func (m *MockAgencyRepository) GetLocations(ctx context.Context, agencyID kernel.UUID) ([]*agency.AgencyLocation, error) {
	args := m.Called(ctx, agencyID)
	return args.Get(0).([]*agency.AgencyLocation), args.Error(1)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetByAgency(ctx context.Context, agencyID kernel.UUID) ([]*shipment.Shipment, error) {
	args := m.Called(ctx, agencyID)
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) CountByNumberPrefix(ctx context.Context, prefix string) (int64, error) {
	args := m.Called(ctx, prefix)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockShipmentRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*parcel.Parcel, error) {
	args := m.Called(ctx, trackingNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetByShipment(ctx context.Context, shipmentID kernel.UUID) ([]*parcel.Parcel, error) {
	args := m.Called(ctx, shipmentID)
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetIncludingDeleted(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetRoleByCode(ctx context.Context, code string) (*user.Role, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Role), args.Error(1)
}

// mockTx implements the transaction lifecycle shared by all unit of work
// mocks.
type mockTx struct{ mock.Mock }

func (m *mockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) RegisterEvent(event events.DomainEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

type MockAgencyUoW struct{ mockTx }

func (m *MockAgencyUoW) AgencyRepository() ports.AgencyRepository {
	args := m.Called()
	return args.Get(0).(ports.AgencyRepository)
}

type MockAgencyUoWFactory struct{ mock.Mock }

func (m *MockAgencyUoWFactory) Create() commands.AgencyUoW {
	args := m.Called()
	return args.Get(0).(commands.AgencyUoW)
}

type MockShipmentUoW struct{ mockTx }

func (m *MockShipmentUoW) AgencyRepository() ports.AgencyRepository {
	args := m.Called()
	return args.Get(0).(ports.AgencyRepository)
}

func (m *MockShipmentUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockParcelUoW struct{ mockTx }

func (m *MockParcelUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockParcelUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

type MockParcelUoWFactory struct{ mock.Mock }

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	args := m.Called()
	return args.Get(0).(commands.ParcelUoW)
}

type MockUserUoW struct{ mockTx }

func (m *MockUserUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}
